// Package aggregating soma os relatórios diários por gerente, escritório e dia.
package aggregating

import (
	"sort"

	"github.com/vfg2006/sales-tempo-api/internal/calendar"
	"github.com/vfg2006/sales-tempo-api/internal/domain"
)

// Observer recebe as contagens de cada agregação
type Observer interface {
	ObserveAggregation(stats domain.AggregationStats)
}

type Aggregator interface {
	Aggregate(records []domain.RawRecord, period domain.Period, office string) map[string]domain.ManagerPeriodMetrics
	AggregateDetailed(records []domain.RawRecord, period domain.Period, office string) domain.Aggregation
	AggregateOffices(records []domain.RawRecord, period domain.Period, offices []string) domain.OfficeBreakdown
	DailySeries(records []domain.RawRecord, period domain.Period, office string) domain.DailySeries
	Diagnose(records []domain.RawRecord, period domain.Period, office string) []domain.RowDiagnostic
}

type Service struct {
	observer Observer
}

type Option func(*Service)

func WithObserver(o Observer) Option {
	return func(s *Service) {
		s.observer = o
	}
}

func NewService(opts ...Option) *Service {
	s := &Service{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

type skipReason int

const (
	included skipReason = iota
	skipNoDate
	skipBadDate
	skipOutOfRange
	skipOffice
	skipNoManager
)

// classify aplica os filtros na ordem: data ausente, data inválida, fora do
// período, escritório diferente do filtro e gerente vazio
func classify(r domain.RawRecord, period domain.Period, office string) (domain.Date, skipReason) {
	if isBlank(r.Date) {
		return domain.Date{}, skipNoDate
	}

	date, ok := calendar.NormalizeDate(r.Date)
	if !ok {
		return domain.Date{}, skipBadDate
	}

	if !period.Contains(date) {
		return date, skipOutOfRange
	}

	if office != "" && r.Office != office {
		return date, skipOffice
	}

	if r.Manager == "" {
		return date, skipNoManager
	}

	return date, included
}

func isBlank(v any) bool {
	if v == nil {
		return true
	}
	if s, ok := v.(string); ok {
		for _, r := range s {
			if r != ' ' && r != '\t' && r != '\n' && r != '\r' {
				return false
			}
		}
		return true
	}
	return false
}

func (s *Service) count(stats *domain.AggregationStats, reason skipReason) {
	stats.RowsTotal++
	switch reason {
	case included:
		stats.RowsIncluded++
	case skipNoDate:
		stats.SkippedNoDate++
	case skipBadDate:
		stats.SkippedBadDate++
	case skipOutOfRange:
		stats.SkippedOutOfRange++
	case skipOffice:
		stats.SkippedOffice++
	case skipNoManager:
		stats.SkippedNoManager++
	}
}

func (s *Service) observe(stats domain.AggregationStats) {
	if s.observer != nil {
		s.observer.ObserveAggregation(stats)
	}
}

// Aggregate soma as linhas de cada gerente dentro do período. Um filtro de
// escritório vazio considera todos os escritórios.
func (s *Service) Aggregate(records []domain.RawRecord, period domain.Period, office string) map[string]domain.ManagerPeriodMetrics {
	return s.AggregateDetailed(records, period, office).Managers
}

func (s *Service) AggregateDetailed(records []domain.RawRecord, period domain.Period, office string) domain.Aggregation {
	var (
		stats    domain.AggregationStats
		total    accumulator
		managers = make(map[string]*accumulator)
	)

	for _, r := range records {
		_, reason := classify(r, period, office)
		s.count(&stats, reason)
		if reason != included {
			continue
		}

		values := parseValues(r)
		stats.DefaultedFields += len(values.defaulted)

		acc, ok := managers[r.Manager]
		if !ok {
			acc = &accumulator{}
			managers[r.Manager] = acc
		}
		acc.add(values)
		total.add(values)
	}

	result := domain.Aggregation{
		Period:   period,
		Office:   office,
		Managers: make(map[string]domain.ManagerPeriodMetrics, len(managers)),
		Total:    total.snapshot(),
		Stats:    stats,
	}
	for manager, acc := range managers {
		result.Managers[manager] = domain.ManagerPeriodMetrics{
			Manager:       manager,
			PeriodMetrics: acc.snapshot(),
		}
	}

	s.observe(stats)
	return result
}

// AggregateOffices soma por escritório conhecido numa única passada. Linhas de
// escritórios fora da lista vão para Unassigned e não entram no total.
func (s *Service) AggregateOffices(records []domain.RawRecord, period domain.Period, offices []string) domain.OfficeBreakdown {
	var (
		stats      domain.AggregationStats
		total      accumulator
		unassigned accumulator
		byOffice   = make(map[string]*accumulator, len(offices))
		managers   = make(map[string]map[string]struct{}, len(offices))
	)

	for _, office := range offices {
		byOffice[office] = &accumulator{}
		managers[office] = make(map[string]struct{})
	}

	for _, r := range records {
		_, reason := classify(r, period, "")
		s.count(&stats, reason)
		if reason != included {
			continue
		}

		values := parseValues(r)
		stats.DefaultedFields += len(values.defaulted)

		acc, known := byOffice[r.Office]
		if !known {
			unassigned.add(values)
			continue
		}

		acc.add(values)
		total.add(values)
		managers[r.Office][r.Manager] = struct{}{}
	}

	breakdown := domain.OfficeBreakdown{
		Period:     period,
		Offices:    make([]domain.OfficePeriodMetrics, 0, len(offices)),
		Total:      total.snapshot(),
		Unassigned: unassigned.snapshot(),
		Stats:      stats,
	}
	for _, office := range offices {
		breakdown.Offices = append(breakdown.Offices, domain.OfficePeriodMetrics{
			Office:        office,
			Managers:      len(managers[office]),
			PeriodMetrics: byOffice[office].snapshot(),
		})
	}

	s.observe(stats)
	return breakdown
}

// DailySeries devolve um total por dia do período, com zero nos dias sem linhas
func (s *Service) DailySeries(records []domain.RawRecord, period domain.Period, office string) domain.DailySeries {
	var stats domain.AggregationStats
	days := make(map[domain.Date]*accumulator)

	for _, r := range records {
		date, reason := classify(r, period, office)
		s.count(&stats, reason)
		if reason != included {
			continue
		}

		values := parseValues(r)
		stats.DefaultedFields += len(values.defaulted)

		acc, ok := days[date]
		if !ok {
			acc = &accumulator{}
			days[date] = acc
		}
		acc.add(values)
	}

	dates := period.Dates()
	series := domain.DailySeries{
		Period: period,
		Office: office,
		Days:   make([]domain.DailyTotals, 0, len(dates)),
	}
	for _, date := range dates {
		var metrics domain.PeriodMetrics
		if acc, ok := days[date]; ok {
			metrics = acc.snapshot()
		}
		series.Days = append(series.Days, domain.DailyTotals{Date: date, PeriodMetrics: metrics})
	}

	s.observe(stats)
	return series
}

// SortedManagers lista os gerentes de uma agregação em ordem alfabética
func SortedManagers(metrics map[string]domain.ManagerPeriodMetrics) []domain.ManagerPeriodMetrics {
	sorted := make([]domain.ManagerPeriodMetrics, 0, len(metrics))
	for _, m := range metrics {
		sorted = append(sorted, m)
	}
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Manager < sorted[j].Manager })
	return sorted
}
