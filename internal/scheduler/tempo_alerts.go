// Package scheduler contém os serviços agendados da API
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-tempo-api/infrastructure/repository"
	"github.com/vfg2006/sales-tempo-api/internal/config"
	"github.com/vfg2006/sales-tempo-api/internal/domain"
	"github.com/vfg2006/sales-tempo-api/pkg/utils"
)

// AlertSource é a parte do relatório que o agendador consome
type AlertSource interface {
	Today() domain.Date
	TempoAlerts(ctx context.Context, target domain.Date, office string) ([]domain.TempoAlert, error)
}

type RunObserver interface {
	ObserveTempoRun(duration time.Duration)
}

type TempoAlertsConfig struct {
	CronSchedule string
	SyncEnabled  bool
}

// RunResult resume uma execução da checagem de ritmo
type RunResult struct {
	RunID      string      `json:"run_id"`
	TargetDate domain.Date `json:"target_date"`
	Alerts     int         `json:"alerts"`
	Critical   int         `json:"critical"`
	Duration   string      `json:"duration"`
}

type TempoAlertsService struct {
	scheduler  *gocron.Scheduler
	source     AlertSource
	alertRepo  repository.TempoAlertRepository
	observer   RunObserver
	config     TempoAlertsConfig
	runTimeout time.Duration

	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastResult          *RunResult
	lastError           string
}

func NewTempoAlertsService(
	source AlertSource,
	alertRepo repository.TempoAlertRepository,
	observer RunObserver,
	cfg *config.Config,
) *TempoAlertsService {
	alertsConfig := TempoAlertsConfig{
		CronSchedule: cfg.TempoAlerts.CronSchedule,
		SyncEnabled:  cfg.TempoAlerts.Enabled,
	}

	location := cfg.App.Location
	if location == nil {
		location = time.Local
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": alertsConfig.CronSchedule,
		"timezone":      location.String(),
	}).Info("Configuração do agendador de alertas de ritmo carregada")

	return &TempoAlertsService{
		scheduler:  gocron.NewScheduler(location),
		source:     source,
		alertRepo:  alertRepo,
		observer:   observer,
		config:     alertsConfig,
		runTimeout: 2 * time.Minute,
	}
}

func (s *TempoAlertsService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Cron de alertas de ritmo desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron de alertas de ritmo")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if _, err := s.RunTempoCheck(ctx); err != nil {
			logrus.WithError(err).Error("Erro na checagem de ritmo agendada")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar checagem de ritmo: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron de alertas de ritmo")
		s.scheduler.Stop()
	}()

	return nil
}

// RunTempoCheck calcula os alertas do dia corrente e grava o lote com um id de
// execução. Devolve nil sem erro quando outra execução já está em andamento.
func (s *TempoAlertsService) RunTempoCheck(ctx context.Context) (*RunResult, error) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Warn("Checagem de ritmo já está em execução")
		return nil, nil
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	s.syncMutex.Unlock()

	result, err := s.runTempoCheck(ctx)

	s.syncMutex.Lock()
	s.syncRunning = false
	s.lastSyncCompletedAt = time.Now()
	if err != nil {
		s.lastError = err.Error()
	} else {
		s.lastError = ""
		s.lastResult = result
	}
	s.syncMutex.Unlock()

	return result, err
}

func (s *TempoAlertsService) runTempoCheck(ctx context.Context) (*RunResult, error) {
	if s.runTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.runTimeout)
		defer cancel()
	}

	start := time.Now()
	runID, err := utils.GenerateID()
	if err != nil {
		return nil, fmt.Errorf("erro ao gerar id da execução: %w", err)
	}
	target := s.source.Today()

	logger := logrus.WithFields(logrus.Fields{
		"run_id":      runID,
		"target_date": target.String(),
	})
	logger.Info("Iniciando checagem de ritmo")

	alerts, err := s.source.TempoAlerts(ctx, target, "")
	if err != nil {
		logger.WithError(err).Error("Erro ao calcular alertas de ritmo")
		return nil, err
	}

	if len(alerts) > 0 {
		if err := s.alertRepo.SaveBatch(ctx, runID, target, alerts); err != nil {
			logger.WithError(err).Error("Erro ao salvar alertas de ritmo")
			return nil, err
		}
	}

	duration := time.Since(start)
	if s.observer != nil {
		s.observer.ObserveTempoRun(duration)
	}

	result := &RunResult{
		RunID:      runID,
		TargetDate: target,
		Alerts:     len(alerts),
		Critical:   countCritical(alerts),
		Duration:   duration.String(),
	}

	logger.WithFields(logrus.Fields{
		"alerts":   result.Alerts,
		"critical": result.Critical,
	}).Info("Checagem de ritmo concluída")

	return result, nil
}

func countCritical(alerts []domain.TempoAlert) int {
	total := 0
	for _, alert := range alerts {
		if alert.Level == domain.AlertLevelCritical {
			total++
		}
	}
	return total
}

// TriggerManualSync inicia manualmente uma checagem de ritmo
func (s *TempoAlertsService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Checagem de ritmo já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando checagem manual de ritmo")
	go func() {
		if _, err := s.RunTempoCheck(context.Background()); err != nil {
			logrus.WithError(err).Error("Erro na checagem manual de ritmo")
		}
	}()
}

// GetStatus retorna o status atual do agendador
func (s *TempoAlertsService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_running":           s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_result":            s.lastResult,
		"last_error":             s.lastError,
	}
}

// History devolve os alertas gravados para a data alvo
func (s *TempoAlertsService) History(ctx context.Context, target domain.Date) ([]domain.StoredTempoAlert, error) {
	return s.alertRepo.ListByTargetDate(ctx, target)
}
