package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-tempo-api/internal/api/handler/router"
	"github.com/vfg2006/sales-tempo-api/internal/domain"
	"github.com/vfg2006/sales-tempo-api/internal/usecases/reporting"
	"github.com/vfg2006/sales-tempo-api/internal/usecases/reporting/mocks"
	"github.com/vfg2006/sales-tempo-api/pkg/apiErrors"
	"github.com/vfg2006/sales-tempo-api/pkg/log"
	"github.com/vfg2006/sales-tempo-api/pkg/middleware"
	"go.uber.org/mock/gomock"
)

var (
	hqUser     = &domain.Claims{UserID: "1", UserName: "Matriz", UserRoleID: domain.RoleHQ}
	officeUser = &domain.Claims{UserID: "2", UserName: "Kazan", UserRoleID: domain.RoleOffice, Office: "Kazan"}

	feb12 = domain.NewDate(2027, time.February, 12)
	week  = domain.Period{Kind: domain.PeriodWeek, Start: domain.NewDate(2027, time.February, 8), End: feb12}
)

type historyStub struct {
	alerts []domain.StoredTempoAlert
	err    error
	asked  domain.Date
}

func (h *historyStub) History(_ context.Context, target domain.Date) ([]domain.StoredTempoAlert, error) {
	h.asked = target
	return h.alerts, h.err
}

type cronStub struct {
	triggered int
}

func (c *cronStub) TriggerManualSync() { c.triggered++ }

func (c *cronStub) GetStatus() map[string]any {
	return map[string]any{"sync_enabled": true}
}

func newTestRouter(service reporting.Reporter, history AlertHistory, cron CronJob) router.Router {
	return router.New(
		router.WithRoutes(Healthcheck()...),
		router.WithRoutes(Reports(service)...),
		router.WithRoutes(Tempo(service, history)...),
		router.WithRoutes(CronJobs(CronJobServices{TempoAlertsService: cron})...),
	)
}

func serve(t *testing.T, rt http.Handler, method, target string, claims *domain.Claims) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, nil)
	if claims != nil {
		req = req.WithContext(context.WithValue(req.Context(), middleware.ContextKeyUser, claims))
	}
	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) apiErrors.APIError {
	t.Helper()
	var body apiErrors.APIError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestGetSummary(t *testing.T) {
	log.SetupTestLogger()

	custom := domain.Period{Kind: domain.PeriodCustom, Start: domain.NewDate(2025, time.March, 1), End: domain.NewDate(2025, time.March, 4)}

	tests := []struct {
		name       string
		target     string
		claims     *domain.Claims
		setup      func(m *mocks.MockReporter)
		wantStatus int
		wantCode   string
	}{
		{
			name:   "semana corrente da matriz",
			target: "/v1/summary/week",
			claims: hqUser,
			setup: func(m *mocks.MockReporter) {
				m.EXPECT().ResolvePeriod(domain.PeriodWeek, nil, nil).Return(week, nil)
				m.EXPECT().Summary(gomock.Any(), week, "").Return(&domain.PeriodSummary{Current: domain.Aggregation{Period: week}}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:   "período custom com datas digitadas",
			target: "/v1/summary/custom?start=01.03.2025&end=2025%E2%80%9303%E2%80%9304",
			claims: hqUser,
			setup: func(m *mocks.MockReporter) {
				start := domain.NewDate(2025, time.March, 1)
				end := domain.NewDate(2025, time.March, 4)
				m.EXPECT().ResolvePeriod(domain.PeriodCustom, &start, &end).Return(custom, nil)
				m.EXPECT().Summary(gomock.Any(), custom, "").Return(&domain.PeriodSummary{Current: domain.Aggregation{Period: custom}}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "data ilegível",
			target:     "/v1/summary/custom?start=ontem&end=2025-03-04",
			claims:     hqUser,
			setup:      func(m *mocks.MockReporter) {},
			wantStatus: http.StatusBadRequest,
			wantCode:   apiErrors.ErrInvalidFormat,
		},
		{
			name:   "intervalo invertido",
			target: "/v1/summary/custom?start=2025-03-04&end=2025-03-01",
			claims: hqUser,
			setup: func(m *mocks.MockReporter) {
				m.EXPECT().ResolvePeriod(domain.PeriodCustom, gomock.Any(), gomock.Any()).
					Return(domain.Period{}, reporting.NewReportError(reporting.ErrInvalidRange, apiErrors.ErrInvalidRange, ""))
			},
			wantStatus: http.StatusBadRequest,
			wantCode:   apiErrors.ErrInvalidRange,
		},
		{
			name:   "usuário de escritório fica no próprio escritório",
			target: "/v1/summary/week",
			claims: officeUser,
			setup: func(m *mocks.MockReporter) {
				m.EXPECT().ResolvePeriod(domain.PeriodWeek, nil, nil).Return(week, nil)
				m.EXPECT().Summary(gomock.Any(), week, "Kazan").Return(&domain.PeriodSummary{}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "usuário de escritório pedindo outro escritório",
			target:     "/v1/summary/week?office=Samara",
			claims:     officeUser,
			setup:      func(m *mocks.MockReporter) {},
			wantStatus: http.StatusForbidden,
			wantCode:   apiErrors.ErrOfficeNotAllowed,
		},
		{
			name:   "fonte de registros indisponível",
			target: "/v1/summary/month",
			claims: hqUser,
			setup: func(m *mocks.MockReporter) {
				m.EXPECT().ResolvePeriod(domain.PeriodMonth, nil, nil).Return(week, nil)
				m.EXPECT().Summary(gomock.Any(), week, "").
					Return(nil, reporting.NewReportError(reporting.ErrRecordSource, apiErrors.ErrExternalService, "timeout"))
			},
			wantStatus: http.StatusBadGateway,
			wantCode:   apiErrors.ErrExternalService,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			service := mocks.NewMockReporter(ctrl)
			tt.setup(service)

			rec := serve(t, newTestRouter(service, &historyStub{}, &cronStub{}), http.MethodGet, tt.target, tt.claims)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, decodeError(t, rec).Code)
			}
		})
	}
}

func TestGetComparison(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockReporter(ctrl)
	rt := newTestRouter(service, &historyStub{}, &cronStub{})

	first := domain.Period{Kind: domain.PeriodCustom, Start: domain.NewDate(2027, time.January, 1), End: domain.NewDate(2027, time.January, 31)}
	second := domain.Period{Kind: domain.PeriodCustom, Start: domain.NewDate(2027, time.February, 1), End: domain.NewDate(2027, time.February, 28)}

	service.EXPECT().ResolvePeriod(domain.PeriodCustom, gomock.Any(), gomock.Any()).Return(first, nil)
	service.EXPECT().ResolvePeriod(domain.PeriodCustom, gomock.Any(), gomock.Any()).Return(second, nil)
	service.EXPECT().Compare(gomock.Any(), first, second, "").
		Return(&domain.PeriodComparison{First: domain.Aggregation{Period: first}, Second: domain.Aggregation{Period: second}}, nil)

	rec := serve(t, rt, http.MethodGet, "/v1/compare?a_start=2027-01-01&a_end=2027-01-31&b_start=2027-02-01&b_end=2027-02-28", hqUser)

	require.Equal(t, http.StatusOK, rec.Code)
	var body domain.PeriodComparison
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, second, body.Second.Period)

	rec = serve(t, rt, http.MethodGet, "/v1/compare?a_start=2027-01-01", hqUser)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, apiErrors.ErrMissingRequiredData, decodeError(t, rec).Code)
}

func TestGetOfficeSummary_SomenteMatriz(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockReporter(ctrl)
	rt := newTestRouter(service, &historyStub{}, &cronStub{})

	service.EXPECT().ResolvePeriod(domain.PeriodWeek, nil, nil).Return(week, nil)
	service.EXPECT().OfficeSummary(gomock.Any(), week).Return(&domain.OfficeBreakdown{Period: week}, nil)

	rec := serve(t, rt, http.MethodGet, "/v1/offices/summary?period=week", hqUser)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = serve(t, rt, http.MethodGet, "/v1/offices/summary?period=week", officeUser)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, apiErrors.ErrInsufficientPrivilege, decodeError(t, rec).Code)
}

func TestGetDailySeries(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockReporter(ctrl)
	rt := newTestRouter(service, &historyStub{}, &cronStub{})

	service.EXPECT().ResolvePeriod(domain.PeriodWeek, nil, nil).Return(week, nil)
	service.EXPECT().DailySeries(gomock.Any(), week, "Kazan").
		Return(&domain.DailySeries{Period: week, Office: "Kazan"}, nil)

	rec := serve(t, rt, http.MethodGet, "/v1/series?period=week", officeUser)

	require.Equal(t, http.StatusOK, rec.Code)
	var body domain.DailySeries
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Kazan", body.Office)
}

func TestGetDailySeries_PeriodoLongoDemais(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockReporter(ctrl)
	rt := newTestRouter(service, &historyStub{}, &cronStub{})

	start, end := domain.NewDate(1, time.January, 1), domain.NewDate(9999, time.December, 31)
	huge := domain.Period{Kind: domain.PeriodCustom, Start: start, End: end}
	service.EXPECT().ResolvePeriod(domain.PeriodCustom, &start, &end).Return(huge, nil)

	rec := serve(t, rt, http.MethodGet, "/v1/series?period=custom&start=0001-01-01&end=9999-12-31", hqUser)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, apiErrors.ErrPeriodTooLong, decodeError(t, rec).Code)
}

func TestGetDiagnostics(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockReporter(ctrl)
	rt := newTestRouter(service, &historyStub{}, &cronStub{})

	service.EXPECT().ResolvePeriod(domain.PeriodWeek, nil, nil).Return(week, nil)
	service.EXPECT().Diagnose(gomock.Any(), week, "").
		Return([]domain.RowDiagnostic{{Row: 3, Skipped: "date_unparseable"}}, nil)

	rec := serve(t, rt, http.MethodGet, "/v1/diagnose?period=week", hqUser)

	require.Equal(t, http.StatusOK, rec.Code)
	var body []domain.RowDiagnostic
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Len(t, body, 1)
}

func TestGetOffices(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockReporter(ctrl)
	service.EXPECT().Offices().Return([]string{"Kazan", "Samara"})

	rec := serve(t, newTestRouter(service, &historyStub{}, &cronStub{}), http.MethodGet, "/v1/offices", officeUser)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"offices":["Kazan","Samara"]}`, rec.Body.String())
}

func TestGetTempoAlerts(t *testing.T) {
	alerts := []domain.TempoAlert{
		{Manager: "ivanov", Metric: domain.MetricCalls, Actual: 40, Expected: 100, DeviationPercent: -60, Level: domain.AlertLevelCritical},
	}

	tests := []struct {
		name       string
		target     string
		claims     *domain.Claims
		setup      func(m *mocks.MockReporter)
		wantStatus int
		wantAlerts int
	}{
		{
			name:   "sem data usa o dia de hoje",
			target: "/v1/tempo/alerts",
			claims: hqUser,
			setup: func(m *mocks.MockReporter) {
				m.EXPECT().Today().Return(feb12)
				m.EXPECT().TempoAlerts(gomock.Any(), feb12, "").Return(alerts, nil)
			},
			wantStatus: http.StatusOK,
			wantAlerts: 1,
		},
		{
			name:   "data informada e escritório do usuário",
			target: "/v1/tempo/alerts?date=12.02.2027",
			claims: officeUser,
			setup: func(m *mocks.MockReporter) {
				m.EXPECT().TempoAlerts(gomock.Any(), feb12, "Kazan").Return(nil, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:   "planos indisponíveis",
			target: "/v1/tempo/alerts?date=2027-02-12",
			claims: hqUser,
			setup: func(m *mocks.MockReporter) {
				m.EXPECT().TempoAlerts(gomock.Any(), feb12, "").
					Return(nil, reporting.NewReportError(reporting.ErrPlanSource, apiErrors.ErrDatabaseOperation, ""))
			},
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			service := mocks.NewMockReporter(ctrl)
			tt.setup(service)

			rec := serve(t, newTestRouter(service, &historyStub{}, &cronStub{}), http.MethodGet, tt.target, tt.claims)

			require.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus != http.StatusOK {
				return
			}

			var body struct {
				TargetDate domain.Date         `json:"target_date"`
				Alerts     []domain.TempoAlert `json:"alerts"`
			}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, feb12, body.TargetDate)
			assert.Len(t, body.Alerts, tt.wantAlerts)
			assert.NotNil(t, body.Alerts)
		})
	}
}

func TestGetPacing(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockReporter(ctrl)

	service.EXPECT().Pacing(gomock.Any(), feb12, "").
		Return(&domain.PacingReport{TargetDate: feb12, WorkingDaysTotal: 20, WorkingDaysPast: 10}, nil)

	rec := serve(t, newTestRouter(service, &historyStub{}, &cronStub{}), http.MethodGet, "/v1/tempo/pacing?date=2027-02-12", hqUser)

	require.Equal(t, http.StatusOK, rec.Code)
	var body domain.PacingReport
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 20, body.WorkingDaysTotal)
	assert.Equal(t, 10, body.WorkingDaysPast)
}

func TestGetTempoHistory(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockReporter(ctrl)

	history := &historyStub{alerts: []domain.StoredTempoAlert{{ID: "a1", RunID: "r1", TargetDate: feb12}}}
	rt := newTestRouter(service, history, &cronStub{})

	rec := serve(t, rt, http.MethodGet, "/v1/tempo/history?date=2027-02-12", hqUser)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, feb12, history.asked)
	assert.Contains(t, rec.Body.String(), `"run_id":"r1"`)

	history.err = errors.New("conexão recusada")
	rec = serve(t, rt, http.MethodGet, "/v1/tempo/history?date=2027-02-12", hqUser)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, apiErrors.ErrDatabaseOperation, decodeError(t, rec).Code)
}

func TestCronJobs(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockReporter(ctrl)
	cron := &cronStub{}
	rt := newTestRouter(service, &historyStub{}, cron)

	rec := serve(t, rt, http.MethodPost, "/v1/cron/tempo-alerts/run", hqUser)
	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.Equal(t, 1, cron.triggered)

	rec = serve(t, rt, http.MethodPost, "/v1/cron/meta/run", hqUser)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = serve(t, rt, http.MethodPost, "/v1/cron/tempo-alerts/run", officeUser)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, 1, cron.triggered)

	rec = serve(t, rt, http.MethodGet, "/v1/cron/status", hqUser)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"tempo-alerts":{"sync_enabled":true}}`, rec.Body.String())
}

func TestRotaDesconhecida(t *testing.T) {
	ctrl := gomock.NewController(t)
	rec := serve(t, newTestRouter(mocks.NewMockReporter(ctrl), &historyStub{}, &cronStub{}), http.MethodGet, "/v1/nada", hqUser)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, apiErrors.ErrNotFound, decodeError(t, rec).Code)
}
