package reporting

import (
	"context"
	"time"

	"github.com/vfg2006/sales-tempo-api/internal/domain"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/interfaces.go -package=mocks

// RecordSource entrega todas as linhas do relatório diário, sem filtro
type RecordSource interface {
	ListRecords(ctx context.Context) ([]domain.RawRecord, error)
}

// PlanSource entrega os planos mensais por gerente
type PlanSource interface {
	GetMonthlyPlans(ctx context.Context, year int, month time.Month) (domain.PlanTable, error)
}

// Observer recebe as medições dos relatórios; pkg/metrics implementa
type Observer interface {
	ObserveAlerts(alerts []domain.TempoAlert)
	ObserveRecordSource(source string, duration time.Duration, err error)
}

type Reporter interface {
	// Today é a data de hoje no fuso configurado
	Today() domain.Date
	Offices() []string
	ResolvePeriod(kind domain.PeriodKind, start, end *domain.Date) (domain.Period, error)

	Summary(ctx context.Context, period domain.Period, office string) (*domain.PeriodSummary, error)
	Compare(ctx context.Context, first, second domain.Period, office string) (*domain.PeriodComparison, error)
	OfficeSummary(ctx context.Context, period domain.Period) (*domain.OfficeBreakdown, error)
	DailySeries(ctx context.Context, period domain.Period, office string) (*domain.DailySeries, error)
	Diagnose(ctx context.Context, period domain.Period, office string) ([]domain.RowDiagnostic, error)

	TempoAlerts(ctx context.Context, target domain.Date, office string) ([]domain.TempoAlert, error)
	Pacing(ctx context.Context, target domain.Date, office string) (*domain.PacingReport, error)
}
