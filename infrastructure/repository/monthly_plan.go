package repository

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/sales-tempo-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-tempo-api/internal/domain"
)

const (
	monthlyPlanTable = "monthly_plans"
)

//go:generate mockgen -source=monthly_plan.go -destination=mocks/monthly_plan.go -package=mocks
type MonthlyPlanRepository interface {
	GetMonthlyPlans(ctx context.Context, year int, month time.Month) (domain.PlanTable, error)
	SaveMonthlyPlans(ctx context.Context, year int, month time.Month, plans domain.PlanTable) error
}

type monthlyPlanRepository struct {
	conn postgres.Queryer
}

func NewMonthlyPlanRepository(conn postgres.Queryer) MonthlyPlanRepository {
	return &monthlyPlanRepository{
		conn: conn,
	}
}

type monthlyPlanRow struct {
	Manager string  `db:"manager"`
	PlanKey string  `db:"plan_key"`
	Value   float64 `db:"value"`
}

// periodKey segue o formato mm-yyyy das tabelas mensais
func periodKey(year int, month time.Month) string {
	return fmt.Sprintf("%02d-%04d", int(month), year)
}

func (r *monthlyPlanRepository) GetMonthlyPlans(ctx context.Context, year int, month time.Month) (domain.PlanTable, error) {
	query, args, err := squirrel.
		Select("manager", "plan_key", "value").
		From(monthlyPlanTable).
		Where(squirrel.Eq{"period": periodKey(year, month)}).
		OrderBy("manager ASC", "plan_key ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var rows []monthlyPlanRow
	if err := r.conn.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("erro ao buscar planos mensais: %w", err)
	}

	return planTableFromRows(rows), nil
}

func planTableFromRows(rows []monthlyPlanRow) domain.PlanTable {
	plans := make(domain.PlanTable)
	for _, row := range rows {
		plan, ok := plans[row.Manager]
		if !ok {
			plan = make(domain.MonthlyPlan)
			plans[row.Manager] = plan
		}
		plan[row.PlanKey] = row.Value
	}
	return plans
}

func (r *monthlyPlanRepository) SaveMonthlyPlans(ctx context.Context, year int, month time.Month, plans domain.PlanTable) error {
	if len(plans) == 0 {
		return nil
	}

	query, args, err := upsertPlansQuery(periodKey(year, month), plans).ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de inserção: %w", err)
	}

	if _, err := r.conn.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("erro ao executar query de inserção: %w", err)
	}

	return nil
}

func upsertPlansQuery(period string, plans domain.PlanTable) squirrel.InsertBuilder {
	query := squirrel.StatementBuilder.
		Insert(monthlyPlanTable).
		Columns("period", "manager", "plan_key", "value").
		PlaceholderFormat(squirrel.Dollar)

	for _, manager := range plans.Managers() {
		keys := make([]string, 0, len(plans[manager]))
		for key := range plans[manager] {
			keys = append(keys, key)
		}
		sort.Strings(keys)

		for _, key := range keys {
			query = query.Values(period, manager, key, plans[manager][key])
		}
	}

	return query.Suffix(`
		ON CONFLICT (period, manager, plan_key) DO UPDATE SET
			value = EXCLUDED.value,
			updated_at = CURRENT_TIMESTAMP
	`)
}
