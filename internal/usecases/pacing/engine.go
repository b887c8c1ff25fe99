// Package pacing compara o realizado no mês com o esperado pelo plano até a data.
package pacing

import (
	"sort"

	"github.com/vfg2006/sales-tempo-api/internal/calendar"
	"github.com/vfg2006/sales-tempo-api/internal/domain"
)

// Thresholds são os limites de desvio percentual, ambos inclusivos e negativos
type Thresholds struct {
	Warning  float64
	Critical float64
}

var DefaultThresholds = Thresholds{Warning: -20, Critical: -40}

type Engine struct {
	thresholds Thresholds
	metrics    []domain.TrackedMetric
}

func NewEngine(thresholds Thresholds) *Engine {
	return &Engine{
		thresholds: thresholds,
		metrics:    domain.TrackedMetrics,
	}
}

// Evaluation é o ritmo de uma métrica isolada
type Evaluation struct {
	Expected         float64
	DeviationPercent float64
}

// Evaluate calcula o esperado proporcional aos dias úteis passados. Devolve false
// quando não há base de comparação: plano zerado, mês sem dia útil passado ou
// esperado não positivo.
func Evaluate(planTotal, actual float64, totalDays, elapsedDays int) (Evaluation, bool) {
	if planTotal <= 0 || totalDays <= 0 || elapsedDays <= 0 {
		return Evaluation{}, false
	}

	expected := planTotal / float64(totalDays) * float64(elapsedDays)
	if expected <= 0 {
		return Evaluation{}, false
	}

	return Evaluation{
		Expected:         expected,
		DeviationPercent: (actual - expected) / expected * 100,
	}, true
}

// Classify devolve o nível do alerta, ou false quando o desvio não cruza nenhum limite
func (e *Engine) Classify(deviationPercent float64) (domain.AlertLevel, bool) {
	switch {
	case deviationPercent <= e.thresholds.Critical:
		return domain.AlertLevelCritical, true
	case deviationPercent <= e.thresholds.Warning:
		return domain.AlertLevelWarning, true
	}
	return "", false
}

// Analyze gera um alerta para cada par gerente/métrica abaixo do ritmo. Gerentes
// do plano sem realizado contam como zero. A saída vem ordenada por gerente e
// métrica.
func (e *Engine) Analyze(
	actual map[string]domain.ActualValues,
	plans domain.PlanTable,
	target domain.Date,
	cal *calendar.WorkingDayCalendar,
) []domain.TempoAlert {
	alerts := make([]domain.TempoAlert, 0)

	totalDays := cal.CountWorkingDaysInMonth(target.Year, target.Month)
	elapsedDays := cal.CountWorkingDaysThrough(target)
	if elapsedDays == 0 {
		return alerts
	}

	for _, manager := range plans.Managers() {
		plan := plans[manager]
		values := actual[manager]

		for _, metric := range e.metrics {
			planTotal, _ := plan.Target(metric.PlanKeys...)
			value := values[metric.ID]

			evaluation, ok := Evaluate(planTotal, value, totalDays, elapsedDays)
			if !ok {
				continue
			}

			level, alert := e.Classify(evaluation.DeviationPercent)
			if !alert {
				continue
			}

			alerts = append(alerts, domain.TempoAlert{
				Manager:          manager,
				Metric:           metric.ID,
				Actual:           value,
				Expected:         evaluation.Expected,
				DeviationPercent: evaluation.DeviationPercent,
				Level:            level,
			})
		}
	}

	return alerts
}

// Lines monta uma linha de ritmo para cada gerente com realizado no mês, com ou
// sem alerta. Métricas sem plano saem com esperado e desvio nulos.
func (e *Engine) Lines(
	actual map[string]domain.ActualValues,
	plans domain.PlanTable,
	target domain.Date,
	cal *calendar.WorkingDayCalendar,
) []domain.PacingLine {
	lines := make([]domain.PacingLine, 0, len(actual))

	totalDays := cal.CountWorkingDaysInMonth(target.Year, target.Month)
	elapsedDays := cal.CountWorkingDaysThrough(target)
	if totalDays == 0 || elapsedDays == 0 {
		return lines
	}

	managers := make([]string, 0, len(actual))
	for manager := range actual {
		managers = append(managers, manager)
	}
	sort.Strings(managers)

	for _, manager := range managers {
		line := domain.PacingLine{
			Manager: manager,
			Metrics: make([]domain.MetricPace, 0, len(e.metrics)),
		}

		for _, metric := range e.metrics {
			pace := domain.MetricPace{Metric: metric.ID, Actual: actual[manager][metric.ID]}

			if planTotal, ok := plans[manager].Target(metric.PlanKeys...); ok && planTotal > 0 {
				plan := planTotal
				pace.Plan = &plan

				if evaluation, ok := Evaluate(planTotal, pace.Actual, totalDays, elapsedDays); ok {
					pace.Expected = &evaluation.Expected
					pace.DeviationPercent = &evaluation.DeviationPercent
				}
			}

			line.Metrics = append(line.Metrics, pace)
		}

		lines = append(lines, line)
	}

	return lines
}

// Report junta linhas e alertas do mês até a data alvo
func (e *Engine) Report(
	actual map[string]domain.ActualValues,
	plans domain.PlanTable,
	target domain.Date,
	cal *calendar.WorkingDayCalendar,
) domain.PacingReport {
	return domain.PacingReport{
		TargetDate:       target,
		WorkingDaysTotal: cal.CountWorkingDaysInMonth(target.Year, target.Month),
		WorkingDaysPast:  cal.CountWorkingDaysThrough(target),
		Lines:            e.Lines(actual, plans, target, cal),
		Alerts:           e.Analyze(actual, plans, target, cal),
	}
}
