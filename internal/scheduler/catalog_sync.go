package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/worlddata/insights-api/internal/config"
	"github.com/worlddata/insights-api/internal/usecases/cataloging"
)

// CatalogSyncService agenda o aquecimento periódico do catálogo de clientes e
// campanhas, para que os filtros do portal não dependam de consulta ao vivo.
type CatalogSyncService struct {
	scheduler           *gocron.Scheduler
	config              config.CatalogSync
	catalog             cataloging.Cataloger
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

// NewCatalogSyncService cria uma nova instância do serviço de sincronização do catálogo
func NewCatalogSyncService(catalog cataloging.Cataloger, cfg config.CatalogSync) *CatalogSyncService {
	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": cfg.CronSchedule,
		"sync_enabled":  cfg.Enabled,
	}).Info("Configuração do agendador de catálogo carregada")

	return &CatalogSyncService{
		scheduler: scheduler,
		config:    cfg,
		catalog:   catalog,
	}
}

// Start inicia o agendador
func (s *CatalogSyncService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Sincronização de catálogo desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de sincronização de catálogo")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncCatalog(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização de catálogo: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de sincronização de catálogo")
		s.scheduler.Stop()
	}()

	return nil
}

// syncCatalog aquece o catálogo de todas as origens, uma execução por vez
func (s *CatalogSyncService) syncCatalog(ctx context.Context) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de catálogo já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.syncMutex.Unlock()

	s.lastSyncStartedAt = time.Now()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	logrus.Info("Iniciando sincronização do catálogo de clientes e campanhas")

	if err := s.catalog.WarmUp(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao sincronizar catálogo")
		return
	}

	s.lastSyncCompletedAt = time.Now()
	logrus.WithField("duration", time.Since(s.lastSyncStartedAt).String()).
		Info("Sincronização de catálogo concluída")
}
