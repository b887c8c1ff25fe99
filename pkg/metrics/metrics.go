package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/vfg2006/sales-tempo-api/internal/domain"
)

// Collector concentra as métricas da aplicação
type Collector struct {
	registry *prometheus.Registry

	// Agregação
	RowsProcessedTotal   *prometheus.CounterVec
	FieldsDefaultedTotal prometheus.Counter

	// Ritmo
	TempoAlertsTotal *prometheus.CounterVec
	TempoRunDuration prometheus.Histogram

	// Fonte de registros
	RecordSourceDuration *prometheus.HistogramVec
	RecordSourceErrors   *prometheus.CounterVec

	// API
	APIRequestsTotal   *prometheus.CounterVec
	APIRequestDuration *prometheus.HistogramVec
}

func NewCollector(namespace string) *Collector {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	return &Collector{
		registry: registry,

		RowsProcessedTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "report_rows_total",
				Help:      "Linhas de relatório processadas por resultado",
			},
			[]string{"outcome"},
		),

		FieldsDefaultedTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "report_fields_defaulted_total",
				Help:      "Células numéricas inválidas tratadas como zero",
			},
		),

		TempoAlertsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "tempo_alerts_total",
				Help:      "Alertas de ritmo emitidos por nível",
			},
			[]string{"level"},
		),

		TempoRunDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "tempo_run_duration_seconds",
				Help:      "Duração das verificações agendadas de ritmo",
				Buckets:   []float64{0.01, 0.05, 0.1, 0.5, 1, 2, 5, 10, 30},
			},
		),

		RecordSourceDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "record_source_duration_seconds",
				Help:      "Tempo para carregar os registros da fonte",
				Buckets:   []float64{0.005, 0.01, 0.05, 0.1, 0.5, 1, 2, 5},
			},
			[]string{"source"},
		),

		RecordSourceErrors: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "record_source_errors_total",
				Help:      "Falhas ao carregar registros da fonte",
			},
			[]string{"source"},
		),

		APIRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "api_requests_total",
				Help:      "Requisições HTTP por método e status",
			},
			[]string{"method", "status"},
		),

		APIRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "api_request_duration_seconds",
				Help:      "Duração das requisições HTTP",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method"},
		),
	}
}

// ObserveAggregation registra as contagens de uma agregação
func (c *Collector) ObserveAggregation(stats domain.AggregationStats) {
	c.RowsProcessedTotal.WithLabelValues("included").Add(float64(stats.RowsIncluded))
	c.RowsProcessedTotal.WithLabelValues("skipped_no_date").Add(float64(stats.SkippedNoDate))
	c.RowsProcessedTotal.WithLabelValues("skipped_bad_date").Add(float64(stats.SkippedBadDate))
	c.RowsProcessedTotal.WithLabelValues("skipped_out_of_range").Add(float64(stats.SkippedOutOfRange))
	c.RowsProcessedTotal.WithLabelValues("skipped_office").Add(float64(stats.SkippedOffice))
	c.RowsProcessedTotal.WithLabelValues("skipped_no_manager").Add(float64(stats.SkippedNoManager))
	c.FieldsDefaultedTotal.Add(float64(stats.DefaultedFields))
}

func (c *Collector) ObserveAlerts(alerts []domain.TempoAlert) {
	for _, alert := range alerts {
		c.TempoAlertsTotal.WithLabelValues(string(alert.Level)).Inc()
	}
}

func (c *Collector) ObserveTempoRun(duration time.Duration) {
	c.TempoRunDuration.Observe(duration.Seconds())
}

func (c *Collector) ObserveRecordSource(source string, duration time.Duration, err error) {
	c.RecordSourceDuration.WithLabelValues(source).Observe(duration.Seconds())
	if err != nil {
		c.RecordSourceErrors.WithLabelValues(source).Inc()
	}
}

func (c *Collector) ObserveRequest(method string, status int, duration time.Duration) {
	c.APIRequestsTotal.WithLabelValues(method, strconv.Itoa(status)).Inc()
	c.APIRequestDuration.WithLabelValues(method).Observe(duration.Seconds())
}

// Handler expõe o registro no formato do Prometheus
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}
