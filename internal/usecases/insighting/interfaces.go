package insighting

import (
	"context"

	"github.com/worlddata/insights-api/internal/domain"
)

// Warehouse é a porta de consulta analítica usada pelo pipeline de insight.
type Warehouse interface {
	RunQuery(ctx context.Context, sql string, params map[string]any) ([]domain.Row, error)
}

// Completer gera o texto final de insight a partir do prompt montado.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}
