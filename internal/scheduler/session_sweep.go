// Package scheduler contém as rotinas agendadas de manutenção
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-tracker-api/infrastructure/repository"
	"github.com/vfg2006/sales-tracker-api/internal/config"
)

const sweepTimeout = 30 * time.Second

type SessionSweepConfig struct {
	CronSchedule string
	SyncEnabled  bool
}

// SessionSweepService remove periodicamente as sessões expiradas
type SessionSweepService struct {
	scheduler           *gocron.Scheduler
	sessionRepo         repository.SessionRepository
	config              SessionSweepConfig
	now                 func() time.Time
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastRemoved         int64
}

func NewSessionSweepService(sessionRepo repository.SessionRepository, cfg *config.Config) *SessionSweepService {
	sweepConfig := SessionSweepConfig{
		CronSchedule: cfg.SessionSweep.CronSchedule, // Default: a cada 30 minutos
		SyncEnabled:  cfg.SessionSweep.Enabled,
	}

	location := cfg.App.Location
	if location == nil {
		location = time.Local
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": sweepConfig.CronSchedule,
	}).Info("Configuração da limpeza de sessões carregada")

	return &SessionSweepService{
		scheduler:   gocron.NewScheduler(location),
		sessionRepo: sessionRepo,
		config:      sweepConfig,
		now:         time.Now,
	}
}

func (s *SessionSweepService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Limpeza de sessões desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron de limpeza de sessões")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.SweepExpiredSessions(ctx); err != nil {
			logrus.WithError(err).Error("Erro na limpeza de sessões expiradas")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar limpeza de sessões: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron de limpeza de sessões")
		s.scheduler.Stop()
	}()

	return nil
}

// SweepExpiredSessions remove as sessões vencidas. Execuções sobrepostas são ignoradas.
func (s *SessionSweepService) SweepExpiredSessions(ctx context.Context) error {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Warn("Limpeza de sessões já está em execução")
		return nil
	}
	s.syncRunning = true
	s.lastSyncStartedAt = s.now()
	s.syncMutex.Unlock()

	var removed int64
	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.lastSyncCompletedAt = s.now()
		s.lastRemoved = removed
		s.syncMutex.Unlock()
	}()

	ctx, cancel := context.WithTimeout(ctx, sweepTimeout)
	defer cancel()

	removed, err := s.sessionRepo.DeleteExpired(ctx, s.now())
	if err != nil {
		return err
	}

	logrus.WithField("removed", removed).Info("Limpeza de sessões expiradas concluída")
	return nil
}

// TriggerManualSync inicia uma limpeza fora do horário agendado
func (s *SessionSweepService) TriggerManualSync() bool {
	s.syncMutex.Lock()
	running := s.syncRunning
	s.syncMutex.Unlock()

	if running {
		logrus.Info("Limpeza de sessões já em andamento, ignorando solicitação manual")
		return false
	}

	logrus.Info("Iniciando limpeza manual de sessões")
	go func() {
		if err := s.SweepExpiredSessions(context.Background()); err != nil {
			logrus.WithError(err).Error("Erro na limpeza manual de sessões")
		}
	}()

	return true
}

// GetStatus retorna o status atual do agendador
func (s *SessionSweepService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_running":           s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_removed":           s.lastRemoved,
	}
}
