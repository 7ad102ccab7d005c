package handler

import (
	"net/http"
	"time"

	"github.com/worlddata/insights-api/pkg/log"
)

// HealthcheckHandler responde à sonda de liveness com o horário atual. Rota
// aberta: não passa pelo gate de autenticação.
func HealthcheckHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, err := w.Write([]byte(time.Now().String())); err != nil {
			log.ForContext(r.Context()).WithError(err).Warn("healthcheck: error writing liveness response")
		}
	})
}
