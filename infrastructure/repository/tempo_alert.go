package repository

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/vfg2006/sales-tempo-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-tempo-api/internal/domain"
)

const (
	tempoAlertTable = "tempo_alerts"
)

//go:generate mockgen -source=tempo_alert.go -destination=mocks/tempo_alert.go -package=mocks
type TempoAlertRepository interface {
	SaveBatch(ctx context.Context, runID string, target domain.Date, alerts []domain.TempoAlert) error
	ListByTargetDate(ctx context.Context, target domain.Date) ([]domain.StoredTempoAlert, error)
}

type tempoAlertRepository struct {
	conn postgres.Queryer
}

func NewTempoAlertRepository(conn postgres.Queryer) TempoAlertRepository {
	return &tempoAlertRepository{
		conn: conn,
	}
}

type tempoAlertRow struct {
	ID               string  `db:"id"`
	RunID            string  `db:"run_id"`
	TargetDate       string  `db:"target_date"`
	Manager          string  `db:"manager"`
	Metric           string  `db:"metric"`
	Actual           float64 `db:"actual"`
	Expected         float64 `db:"expected"`
	DeviationPercent float64 `db:"deviation_percent"`
	Level            string  `db:"level"`
}

func (r tempoAlertRow) toDomain() (domain.StoredTempoAlert, error) {
	target, err := domain.ParseISODate(r.TargetDate)
	if err != nil {
		return domain.StoredTempoAlert{}, fmt.Errorf("data alvo inválida no alerta %s: %w", r.ID, err)
	}

	return domain.StoredTempoAlert{
		ID:         r.ID,
		RunID:      r.RunID,
		TargetDate: target,
		TempoAlert: domain.TempoAlert{
			Manager:          r.Manager,
			Metric:           domain.Metric(r.Metric),
			Actual:           r.Actual,
			Expected:         r.Expected,
			DeviationPercent: r.DeviationPercent,
			Level:            domain.AlertLevel(r.Level),
		},
	}, nil
}

func (r *tempoAlertRepository) SaveBatch(ctx context.Context, runID string, target domain.Date, alerts []domain.TempoAlert) error {
	if len(alerts) == 0 {
		return nil
	}

	query, args, err := insertAlertsQuery(runID, target, alerts).ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de inserção: %w", err)
	}

	if _, err := r.conn.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("erro ao executar query de inserção: %w", err)
	}

	return nil
}

func insertAlertsQuery(runID string, target domain.Date, alerts []domain.TempoAlert) squirrel.InsertBuilder {
	query := squirrel.StatementBuilder.
		Insert(tempoAlertTable).
		Columns(
			"id",
			"run_id",
			"target_date",
			"manager",
			"metric",
			"actual",
			"expected",
			"deviation_percent",
			"level",
		).
		PlaceholderFormat(squirrel.Dollar)

	for _, alert := range alerts {
		query = query.Values(
			uuid.NewString(),
			runID,
			target.String(),
			alert.Manager,
			string(alert.Metric),
			alert.Actual,
			alert.Expected,
			alert.DeviationPercent,
			string(alert.Level),
		)
	}

	return query
}

func (r *tempoAlertRepository) ListByTargetDate(ctx context.Context, target domain.Date) ([]domain.StoredTempoAlert, error) {
	query, args, err := squirrel.
		Select(
			"id",
			"run_id",
			"to_char(target_date, 'YYYY-MM-DD') AS target_date",
			"manager",
			"metric",
			"actual",
			"expected",
			"deviation_percent",
			"level",
		).
		From(tempoAlertTable).
		Where(squirrel.Eq{"target_date": target.String()}).
		OrderBy("created_at DESC", "manager ASC", "metric ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var rows []tempoAlertRow
	if err := r.conn.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("erro ao buscar alertas de ritmo: %w", err)
	}

	alerts := make([]domain.StoredTempoAlert, 0, len(rows))
	for _, row := range rows {
		alert, err := row.toDomain()
		if err != nil {
			return nil, err
		}
		alerts = append(alerts, alert)
	}

	return alerts, nil
}
