package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/worlddata/insights-api/infrastructure/llm/openai"
	"github.com/worlddata/insights-api/infrastructure/warehouse/bigquery"
	"github.com/worlddata/insights-api/internal/api"
	"github.com/worlddata/insights-api/internal/config"
	"github.com/worlddata/insights-api/internal/scheduler"
	"github.com/worlddata/insights-api/internal/usecases/authenticating"
	"github.com/worlddata/insights-api/internal/usecases/cataloging"
	"github.com/worlddata/insights-api/internal/usecases/insighting"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	warehouse := bqconn(ctx, cfg.BigQuery)
	defer warehouse.Close()

	completer := openai.NewClient(cfg.OpenAI)

	authenticator := authenticating.NewService(cfg.Auth)

	insightService := insighting.NewService(cfg.BigQuery, warehouse, completer)
	catalogService := cataloging.NewService(cfg.BigQuery, warehouse)

	catalogSyncService := scheduler.NewCatalogSyncService(catalogService, cfg.CatalogSync)
	if err := catalogSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de sincronização de catálogo")
	} else {
		logrus.Info("Agendador de sincronização de catálogo iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		insightService,
		catalogService,
		authenticator,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// bqconn abre a conexão com o warehouse analítico
func bqconn(ctx context.Context, cfg config.BigQuery) bigquery.Client {
	conn, err := bigquery.NewClient(ctx, cfg)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao BigQuery")
	}

	logrus.Info("Conexão com BigQuery estabelecida com sucesso")
	return conn
}
