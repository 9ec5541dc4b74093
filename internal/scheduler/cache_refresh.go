package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/retail-analytics-api/internal/config"
	"github.com/vfg2006/retail-analytics-api/internal/usecases/querying"
)

// CacheRefreshConfig representa a configuração do agendador de recarga do snapshot
type CacheRefreshConfig struct {
	CronSchedule string
	Enabled      bool
}

// CacheRefreshService agenda a recarga periódica do snapshot de métricas
type CacheRefreshService struct {
	scheduler            *gocron.Scheduler
	config               CacheRefreshConfig
	querier              querying.Querier
	refreshRunning       bool
	refreshMutex         sync.Mutex
	lastRefreshStartedAt time.Time
	lastRefreshEndedAt   time.Time
}

// NewCacheRefreshService cria uma nova instância do serviço de recarga agendada
func NewCacheRefreshService(querier querying.Querier, appConfig *config.Config) *CacheRefreshService {
	refreshConfig := CacheRefreshConfig{
		CronSchedule: appConfig.CacheRefresh.CronSchedule,
		Enabled:      appConfig.CacheRefresh.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule":   refreshConfig.CronSchedule,
		"refresh_enabled": refreshConfig.Enabled,
	}).Info("Configuração do agendador de recarga do snapshot carregada")

	return &CacheRefreshService{
		scheduler: gocron.NewScheduler(time.Local),
		config:    refreshConfig,
		querier:   querier,
	}
}

// Start inicia o agendador
func (s *CacheRefreshService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Recarga agendada do snapshot desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de recarga do snapshot")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.refreshSnapshot(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar recarga do snapshot: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de recarga do snapshot")
		s.scheduler.Stop()
	}()

	return nil
}

// refreshSnapshot dispara uma recarga, ignorando o tick se outra ainda roda
func (s *CacheRefreshService) refreshSnapshot(ctx context.Context) {
	s.refreshMutex.Lock()
	if s.refreshRunning {
		s.refreshMutex.Unlock()
		logrus.Info("Recarga do snapshot já em andamento, ignorando")
		return
	}
	s.refreshRunning = true
	s.refreshMutex.Unlock()

	s.lastRefreshStartedAt = time.Now()

	defer func() {
		s.refreshMutex.Lock()
		s.refreshRunning = false
		s.refreshMutex.Unlock()
	}()

	snapshot, err := s.querier.RefreshCache(ctx)
	s.lastRefreshEndedAt = time.Now()

	if err != nil {
		logrus.WithError(err).Error("Recarga agendada do snapshot falhou, snapshot anterior mantido")
		return
	}

	logrus.WithFields(logrus.Fields{
		"generation": snapshot.Generation,
		"duration":   s.lastRefreshEndedAt.Sub(s.lastRefreshStartedAt).String(),
	}).Info("Recarga agendada do snapshot concluída")
}
