// Package reporting monta os relatórios de período e de ritmo a partir das
// fontes de registros e de planos.
package reporting

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-tempo-api/internal/calendar"
	"github.com/vfg2006/sales-tempo-api/internal/domain"
	"github.com/vfg2006/sales-tempo-api/internal/usecases/aggregating"
	"github.com/vfg2006/sales-tempo-api/internal/usecases/pacing"
	"github.com/vfg2006/sales-tempo-api/pkg/apiErrors"
)

type Service struct {
	records    RecordSource
	sourceName string
	plans      PlanSource
	reference  *ReferenceStore
	aggregator aggregating.Aggregator
	engine     *pacing.Engine
	observer   Observer
	location   *time.Location
	now        func() time.Time
	timeout    time.Duration
}

type Option func(*Service)

func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

func WithObserver(o Observer) Option {
	return func(s *Service) {
		s.observer = o
	}
}

// WithSourceTimeout limita o tempo de cada carga de registros
func WithSourceTimeout(timeout time.Duration) Option {
	return func(s *Service) {
		s.timeout = timeout
	}
}

// WithSourceName define o rótulo da fonte nas métricas
func WithSourceName(name string) Option {
	return func(s *Service) {
		s.sourceName = name
	}
}

func NewService(
	records RecordSource,
	plans PlanSource,
	reference *ReferenceStore,
	aggregator aggregating.Aggregator,
	engine *pacing.Engine,
	location *time.Location,
	opts ...Option,
) *Service {
	if location == nil {
		location = time.UTC
	}

	s := &Service{
		records:    records,
		sourceName: "records",
		plans:      plans,
		reference:  reference,
		aggregator: aggregator,
		engine:     engine,
		location:   location,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) Today() domain.Date {
	return s.resolver().Today()
}

func (s *Service) Offices() []string {
	return s.reference.Load().Offices
}

func (s *Service) resolver() calendar.PeriodResolver {
	return calendar.NewPeriodResolver(s.now().In(s.location))
}

// ResolvePeriod devolve o período corrente do tipo pedido. Para o tipo custom
// as duas datas são obrigatórias e a inicial não pode passar da final.
func (s *Service) ResolvePeriod(kind domain.PeriodKind, start, end *domain.Date) (domain.Period, error) {
	if !kind.IsValid() {
		return domain.Period{}, NewReportError(ErrUnknownPeriod, apiErrors.ErrInvalidFormat, string(kind))
	}

	if kind != domain.PeriodCustom {
		return s.resolver().Resolve(kind)
	}

	if start == nil || end == nil {
		return domain.Period{}, NewReportError(ErrMissingDates, apiErrors.ErrMissingRequiredData, "")
	}

	period, err := calendar.ValidateRange(*start, *end)
	if err != nil {
		if errors.Is(err, calendar.ErrInvalidRange) {
			return domain.Period{}, NewReportError(ErrInvalidRange, apiErrors.ErrInvalidRange, err.Error())
		}
		return domain.Period{}, err
	}
	return period, nil
}

func (s *Service) validateOffice(office string) error {
	if office == "" {
		return nil
	}

	ref := s.reference.Load()
	// Sem lista de escritórios configurada qualquer filtro vale
	if len(ref.Offices) == 0 || ref.HasOffice(office) {
		return nil
	}
	return NewReportError(ErrUnknownOffice, apiErrors.ErrUnknownOffice, office)
}

func (s *Service) loadRecords(ctx context.Context) ([]domain.RawRecord, error) {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	start := time.Now()
	records, err := s.records.ListRecords(ctx)
	if s.observer != nil {
		s.observer.ObserveRecordSource(s.sourceName, time.Since(start), err)
	}

	if err != nil {
		logrus.WithError(err).WithField("source", s.sourceName).Error("Erro ao carregar relatórios diários")
		return nil, NewReportError(ErrRecordSource, apiErrors.ErrExternalService, err.Error())
	}

	return records, nil
}

// Summary agrega o período e o período anterior de mesmo tipo
func (s *Service) Summary(ctx context.Context, period domain.Period, office string) (*domain.PeriodSummary, error) {
	if err := s.validateOffice(office); err != nil {
		return nil, err
	}

	records, err := s.loadRecords(ctx)
	if err != nil {
		return nil, err
	}

	previous := s.aggregator.AggregateDetailed(records, calendar.PreviousPeriod(period), office)

	return &domain.PeriodSummary{
		Current:  s.aggregator.AggregateDetailed(records, period, office),
		Previous: &previous,
	}, nil
}

func (s *Service) Compare(ctx context.Context, first, second domain.Period, office string) (*domain.PeriodComparison, error) {
	if err := s.validateOffice(office); err != nil {
		return nil, err
	}

	records, err := s.loadRecords(ctx)
	if err != nil {
		return nil, err
	}

	return &domain.PeriodComparison{
		First:  s.aggregator.AggregateDetailed(records, first, office),
		Second: s.aggregator.AggregateDetailed(records, second, office),
	}, nil
}

func (s *Service) OfficeSummary(ctx context.Context, period domain.Period) (*domain.OfficeBreakdown, error) {
	records, err := s.loadRecords(ctx)
	if err != nil {
		return nil, err
	}

	breakdown := s.aggregator.AggregateOffices(records, period, s.reference.Load().Offices)
	return &breakdown, nil
}

// MaxSeriesDays limita a série diária a um ano, um ponto por dia
const MaxSeriesDays = 366

// ValidateSeriesPeriod recusa séries com mais de MaxSeriesDays dias
func ValidateSeriesPeriod(period domain.Period) error {
	if days := period.Days(); days > MaxSeriesDays {
		return NewReportError(ErrSeriesTooLong, apiErrors.ErrPeriodTooLong, fmt.Sprintf("%d dias, máximo %d", days, MaxSeriesDays))
	}
	return nil
}

func (s *Service) DailySeries(ctx context.Context, period domain.Period, office string) (*domain.DailySeries, error) {
	if err := ValidateSeriesPeriod(period); err != nil {
		return nil, err
	}
	if err := s.validateOffice(office); err != nil {
		return nil, err
	}

	records, err := s.loadRecords(ctx)
	if err != nil {
		return nil, err
	}

	series := s.aggregator.DailySeries(records, period, office)
	return &series, nil
}

func (s *Service) Diagnose(ctx context.Context, period domain.Period, office string) ([]domain.RowDiagnostic, error) {
	if err := s.validateOffice(office); err != nil {
		return nil, err
	}

	records, err := s.loadRecords(ctx)
	if err != nil {
		return nil, err
	}

	return s.aggregator.Diagnose(records, period, office), nil
}

// monthToDate reúne o realizado do dia 1 até a data alvo e os planos do mês.
// Com filtro de escritório só entram os planos dos gerentes que aparecem nele.
func (s *Service) monthToDate(ctx context.Context, target domain.Date, office string) (map[string]domain.ActualValues, domain.PlanTable, error) {
	if err := s.validateOffice(office); err != nil {
		return nil, nil, err
	}

	records, err := s.loadRecords(ctx)
	if err != nil {
		return nil, nil, err
	}

	plans, err := s.plans.GetMonthlyPlans(ctx, target.Year, target.Month)
	if err != nil {
		logrus.WithError(err).WithField("target_date", target.String()).Error("Erro ao carregar planos mensais")
		return nil, nil, NewReportError(ErrPlanSource, apiErrors.ErrDatabaseOperation, err.Error())
	}

	metrics := s.aggregator.Aggregate(records, calendar.MonthToDate(target), office)

	if office != "" {
		scoped := make(domain.PlanTable, len(metrics))
		for manager := range metrics {
			if plan, ok := plans[manager]; ok {
				scoped[manager] = plan
			}
		}
		plans = scoped
	}

	return domain.ActualsFromMetrics(metrics), plans, nil
}

// TempoAlerts lista os gerentes abaixo do ritmo no mês da data alvo
func (s *Service) TempoAlerts(ctx context.Context, target domain.Date, office string) ([]domain.TempoAlert, error) {
	actual, plans, err := s.monthToDate(ctx, target, office)
	if err != nil {
		return nil, err
	}

	alerts := s.engine.Analyze(actual, plans, target, s.reference.Load().Calendar)
	if s.observer != nil {
		s.observer.ObserveAlerts(alerts)
	}

	return alerts, nil
}

func (s *Service) Pacing(ctx context.Context, target domain.Date, office string) (*domain.PacingReport, error) {
	actual, plans, err := s.monthToDate(ctx, target, office)
	if err != nil {
		return nil, err
	}

	report := s.engine.Report(actual, plans, target, s.reference.Load().Calendar)
	return &report, nil
}
