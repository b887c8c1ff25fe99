package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-tempo-api/infrastructure/repository/mocks"
	"github.com/vfg2006/sales-tempo-api/internal/config"
	"github.com/vfg2006/sales-tempo-api/internal/domain"
	reportingmocks "github.com/vfg2006/sales-tempo-api/internal/usecases/reporting/mocks"
	"go.uber.org/mock/gomock"
)

type runObserverStub struct {
	runs int
}

func (s *runObserverStub) ObserveTempoRun(time.Duration) {
	s.runs++
}

func newTestService(t *testing.T, enabled bool) (*TempoAlertsService, *reportingmocks.MockReporter, *mocks.MockTempoAlertRepository, *runObserverStub) {
	ctrl := gomock.NewController(t)

	source := reportingmocks.NewMockReporter(ctrl)
	repo := mocks.NewMockTempoAlertRepository(ctrl)
	observer := &runObserverStub{}

	cfg := &config.Config{
		App:         config.App{Location: time.FixedZone("MSK", 3*60*60)},
		TempoAlerts: config.TempoAlerts{CronSchedule: "0 18 * * 1-5", Enabled: enabled},
	}

	return NewTempoAlertsService(source, repo, observer, cfg), source, repo, observer
}

func TestTempoAlertsService_RunTempoCheck(t *testing.T) {
	target := domain.NewDate(2027, time.February, 12)
	alerts := []domain.TempoAlert{
		{Manager: "ivanov", Metric: domain.MetricCalls, Actual: 40, Expected: 100, DeviationPercent: -60, Level: domain.AlertLevelCritical},
		{Manager: "petrov", Metric: domain.MetricCalls, Actual: 75, Expected: 100, DeviationPercent: -25, Level: domain.AlertLevelWarning},
	}

	tests := []struct {
		name         string
		setup        func(source *reportingmocks.MockReporter, repo *mocks.MockTempoAlertRepository)
		wantErr      bool
		wantAlerts   int
		wantCritical int
		wantRuns     int
	}{
		{
			name: "alertas calculados são gravados com o id da execução",
			setup: func(source *reportingmocks.MockReporter, repo *mocks.MockTempoAlertRepository) {
				source.EXPECT().Today().Return(target)
				source.EXPECT().TempoAlerts(gomock.Any(), target, "").Return(alerts, nil)
				repo.EXPECT().
					SaveBatch(gomock.Any(), gomock.Any(), target, alerts).
					DoAndReturn(func(_ context.Context, runID string, _ domain.Date, _ []domain.TempoAlert) error {
						assert.Len(t, runID, 10)
						return nil
					})
			},
			wantAlerts:   2,
			wantCritical: 1,
			wantRuns:     1,
		},
		{
			name: "sem alertas não grava nada",
			setup: func(source *reportingmocks.MockReporter, repo *mocks.MockTempoAlertRepository) {
				source.EXPECT().Today().Return(target)
				source.EXPECT().TempoAlerts(gomock.Any(), target, "").Return(nil, nil)
			},
			wantRuns: 1,
		},
		{
			name: "falha da fonte interrompe a execução",
			setup: func(source *reportingmocks.MockReporter, repo *mocks.MockTempoAlertRepository) {
				source.EXPECT().Today().Return(target)
				source.EXPECT().TempoAlerts(gomock.Any(), target, "").Return(nil, errors.New("planilha indisponível"))
			},
			wantErr: true,
		},
		{
			name: "falha ao gravar devolve erro",
			setup: func(source *reportingmocks.MockReporter, repo *mocks.MockTempoAlertRepository) {
				source.EXPECT().Today().Return(target)
				source.EXPECT().TempoAlerts(gomock.Any(), target, "").Return(alerts, nil)
				repo.EXPECT().SaveBatch(gomock.Any(), gomock.Any(), target, alerts).Return(errors.New("conexão recusada"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, source, repo, observer := newTestService(t, false)
			tt.setup(source, repo)

			result, err := service.RunTempoCheck(context.Background())

			status := service.GetStatus()
			assert.Equal(t, false, status["sync_running"])
			assert.Equal(t, tt.wantRuns, observer.runs)

			if tt.wantErr {
				require.Error(t, err)
				assert.NotEmpty(t, status["last_error"])
				return
			}

			require.NoError(t, err)
			require.NotNil(t, result)
			assert.Equal(t, target, result.TargetDate)
			assert.Equal(t, tt.wantAlerts, result.Alerts)
			assert.Equal(t, tt.wantCritical, result.Critical)
			assert.Equal(t, result, status["last_result"])
		})
	}
}

func TestTempoAlertsService_RunTempoCheck_EmAndamento(t *testing.T) {
	service, _, _, observer := newTestService(t, false)
	service.syncRunning = true

	result, err := service.RunTempoCheck(context.Background())

	require.NoError(t, err)
	assert.Nil(t, result)
	assert.Zero(t, observer.runs)
}

func TestTempoAlertsService_Start_Desabilitado(t *testing.T) {
	service, _, _, _ := newTestService(t, false)

	require.NoError(t, service.Start(context.Background()))
	assert.Equal(t, false, service.GetStatus()["sync_enabled"])
}

func TestTempoAlertsService_Start_CronInvalida(t *testing.T) {
	service, _, _, _ := newTestService(t, true)
	service.config.CronSchedule = "todo dia"

	assert.Error(t, service.Start(context.Background()))
}

func TestTempoAlertsService_History(t *testing.T) {
	service, _, repo, _ := newTestService(t, false)
	target := domain.NewDate(2027, time.February, 12)

	stored := []domain.StoredTempoAlert{{ID: "a1", RunID: "r1", TargetDate: target}}
	repo.EXPECT().ListByTargetDate(gomock.Any(), target).Return(stored, nil)

	got, err := service.History(context.Background(), target)

	require.NoError(t, err)
	assert.Equal(t, stored, got)
}
