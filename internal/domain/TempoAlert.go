package domain

import "sort"

// Chaves de plano mensal
const (
	PlanKeyCalls        = "calls_plan"
	PlanKeyIssuedVolume = "issued_volume_plan"
	PlanKeyLeadsVolume  = "leads_volume_plan"
)

// MonthlyPlan guarda as metas mensais de um gerente por chave de plano
type MonthlyPlan map[string]float64

// Target devolve o valor da primeira chave presente
func (p MonthlyPlan) Target(keys ...string) (float64, bool) {
	for _, key := range keys {
		if value, ok := p[key]; ok {
			return value, true
		}
	}
	return 0, false
}

// PlanTable mapeia gerente para plano mensal
type PlanTable map[string]MonthlyPlan

func (t PlanTable) Managers() []string {
	managers := make([]string, 0, len(t))
	for manager := range t {
		managers = append(managers, manager)
	}
	sort.Strings(managers)
	return managers
}

type Metric string

const (
	MetricCalls        Metric = "calls"
	MetricIssuedVolume Metric = "issued_volume"
)

// TrackedMetric liga uma métrica acompanhada às chaves do plano e ao valor realizado
type TrackedMetric struct {
	ID       Metric
	PlanKeys []string
	Actual   func(PeriodMetrics) float64
}

var TrackedMetrics = []TrackedMetric{
	{
		ID:       MetricCalls,
		PlanKeys: []string{PlanKeyCalls},
		Actual:   func(m PeriodMetrics) float64 { return float64(m.CallsFact) },
	},
	{
		ID:       MetricIssuedVolume,
		PlanKeys: []string{PlanKeyIssuedVolume, PlanKeyLeadsVolume},
		Actual:   func(m PeriodMetrics) float64 { return m.IssuedVolume },
	},
}

// ActualValues são os valores realizados até a data, por métrica
type ActualValues map[Metric]float64

// ActualsFromMetrics extrai os valores realizados das métricas agregadas
func ActualsFromMetrics(metrics map[string]ManagerPeriodMetrics) map[string]ActualValues {
	actuals := make(map[string]ActualValues, len(metrics))
	for manager, m := range metrics {
		values := make(ActualValues, len(TrackedMetrics))
		for _, tracked := range TrackedMetrics {
			values[tracked.ID] = tracked.Actual(m.PeriodMetrics)
		}
		actuals[manager] = values
	}
	return actuals
}

type AlertLevel string

const (
	AlertLevelWarning  AlertLevel = "warning"
	AlertLevelCritical AlertLevel = "critical"
)

type TempoAlert struct {
	Manager          string     `json:"manager"`
	Metric           Metric     `json:"metric"`
	Actual           float64    `json:"actual"`
	Expected         float64    `json:"expected"`
	DeviationPercent float64    `json:"deviation_percent"`
	Level            AlertLevel `json:"level"`
}

// MetricPace é o ritmo de uma métrica de um gerente. Plan, Expected e
// DeviationPercent ficam nil quando o gerente não tem plano para a métrica.
type MetricPace struct {
	Metric           Metric   `json:"metric"`
	Actual           float64  `json:"actual"`
	Plan             *float64 `json:"plan"`
	Expected         *float64 `json:"expected"`
	DeviationPercent *float64 `json:"deviation_percent"`
}

type PacingLine struct {
	Manager string       `json:"manager"`
	Metrics []MetricPace `json:"metrics"`
}

// PacingReport resume o ritmo do mês até a data alvo
type PacingReport struct {
	TargetDate       Date         `json:"target_date"`
	WorkingDaysTotal int          `json:"working_days_total"`
	WorkingDaysPast  int          `json:"working_days_past"`
	Lines            []PacingLine `json:"lines"`
	Alerts           []TempoAlert `json:"alerts"`
}
