// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/vfg2006/sales-tempo-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-tempo-api/internal/domain"
)

const (
	reportRecordTable = "daily_reports"

	// Limite de linhas por INSERT para não estourar os parâmetros do postgres
	reportInsertBatchSize = 500
)

//go:generate mockgen -source=report_record.go -destination=mocks/report_record.go -package=mocks
type ReportRecordRepository interface {
	ListRecords(ctx context.Context) ([]domain.RawRecord, error)
	SaveRows(ctx context.Context, rows []map[string]any) (int, error)
}

type reportRecordRepository struct {
	conn postgres.Queryer
}

func NewReportRecordRepository(conn postgres.Queryer) ReportRecordRepository {
	return &reportRecordRepository{
		conn: conn,
	}
}

// As células ficam em texto, como vieram da planilha; a coerção é do agregador
type reportRecordRow struct {
	ID      string         `db:"id"`
	Date    sql.NullString `db:"date"`
	Manager sql.NullString `db:"manager"`
	Office  sql.NullString `db:"office"`

	MorningCallsPlanned       sql.NullString `db:"morning_calls_planned"`
	MorningLeadsPlannedUnits  sql.NullString `db:"morning_leads_planned_units"`
	MorningLeadsPlannedVolume sql.NullString `db:"morning_leads_planned_volume"`
	MorningNewCallsPlanned    sql.NullString `db:"morning_new_calls_planned"`

	EveningCallsSuccess   sql.NullString `db:"evening_calls_success"`
	EveningLeadsUnits     sql.NullString `db:"evening_leads_units"`
	EveningLeadsVolume    sql.NullString `db:"evening_leads_volume"`
	EveningApprovedVolume sql.NullString `db:"evening_approved_volume"`
	EveningIssuedVolume   sql.NullString `db:"evening_issued_volume"`
	EveningNewCalls       sql.NullString `db:"evening_new_calls"`
}

func (r reportRecordRow) toRecord() domain.RawRecord {
	return domain.RawRecord{
		Date:    nullableCell(r.Date),
		Manager: strings.TrimSpace(r.Manager.String),
		Office:  strings.TrimSpace(r.Office.String),

		MorningCallsPlanned:       nullableCell(r.MorningCallsPlanned),
		MorningLeadsPlannedUnits:  nullableCell(r.MorningLeadsPlannedUnits),
		MorningLeadsPlannedVolume: nullableCell(r.MorningLeadsPlannedVolume),
		MorningNewCallsPlanned:    nullableCell(r.MorningNewCallsPlanned),

		EveningCallsSuccess:   nullableCell(r.EveningCallsSuccess),
		EveningLeadsUnits:     nullableCell(r.EveningLeadsUnits),
		EveningLeadsVolume:    nullableCell(r.EveningLeadsVolume),
		EveningApprovedVolume: nullableCell(r.EveningApprovedVolume),
		EveningIssuedVolume:   nullableCell(r.EveningIssuedVolume),
		EveningNewCalls:       nullableCell(r.EveningNewCalls),
	}
}

func nullableCell(v sql.NullString) any {
	if !v.Valid {
		return nil
	}
	return v.String
}

func (r *reportRecordRepository) ListRecords(ctx context.Context) ([]domain.RawRecord, error) {
	query, args, err := listRecordsQuery().ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var rows []reportRecordRow
	if err := r.conn.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("erro ao buscar relatórios diários: %w", err)
	}

	records := make([]domain.RawRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, row.toRecord())
	}

	return records, nil
}

func listRecordsQuery() squirrel.SelectBuilder {
	return squirrel.
		Select(append([]string{"id"}, domain.RecordFields...)...).
		From(reportRecordTable).
		OrderBy("created_at ASC", "id ASC").
		PlaceholderFormat(squirrel.Dollar)
}

// SaveRows grava linhas cruas de planilha e devolve quantas foram inseridas
func (r *reportRecordRepository) SaveRows(ctx context.Context, rows []map[string]any) (int, error) {
	saved := 0

	for start := 0; start < len(rows); start += reportInsertBatchSize {
		end := start + reportInsertBatchSize
		if end > len(rows) {
			end = len(rows)
		}

		query, args, err := insertRowsQuery(rows[start:end]).ToSql()
		if err != nil {
			return saved, fmt.Errorf("erro ao construir query de inserção: %w", err)
		}

		if _, err := r.conn.ExecContext(ctx, query, args...); err != nil {
			return saved, fmt.Errorf("erro ao executar query de inserção: %w", err)
		}

		saved += end - start
	}

	return saved, nil
}

func insertRowsQuery(rows []map[string]any) squirrel.InsertBuilder {
	query := squirrel.StatementBuilder.
		Insert(reportRecordTable).
		Columns(append([]string{"id"}, domain.RecordFields...)...).
		PlaceholderFormat(squirrel.Dollar)

	for _, row := range rows {
		normalized := make(map[string]any, len(row))
		for key, value := range row {
			normalized[strings.ToLower(strings.TrimSpace(key))] = value
		}

		values := make([]interface{}, 0, len(domain.RecordFields)+1)
		values = append(values, uuid.NewString())
		for _, field := range domain.RecordFields {
			values = append(values, cellToText(normalized[field]))
		}
		query = query.Values(values...)
	}

	return query
}

func cellToText(v any) sql.NullString {
	switch value := v.(type) {
	case nil:
		return sql.NullString{}
	case string:
		if strings.TrimSpace(value) == "" {
			return sql.NullString{}
		}
		return sql.NullString{String: value, Valid: true}
	default:
		return sql.NullString{String: fmt.Sprint(value), Valid: true}
	}
}
