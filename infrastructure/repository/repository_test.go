package repository

import (
	"database/sql"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-tempo-api/internal/domain"
)

func TestInsertRowsQuery(t *testing.T) {
	rows := []map[string]any{
		{"Date": "45720", "Manager": " Петров ", "Office": "Савела", "EVENING_CALLS_SUCCESS": 12, "extra": "ignorada"},
		{"date": "2025-03-05", "manager": "Иванов", "evening_leads_volume": ""},
	}

	query, args, err := insertRowsQuery(rows).ToSql()
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(query, "INSERT INTO daily_reports (id,date,manager,office,"))
	assert.Contains(t, query, "$28")
	assert.NotContains(t, query, "$29")
	require.Len(t, args, 2*(len(domain.RecordFields)+1))

	// id gerado, depois as colunas na ordem de RecordFields
	assert.Equal(t, sql.NullString{String: "45720", Valid: true}, args[1])
	assert.Equal(t, sql.NullString{String: " Петров ", Valid: true}, args[2])
	assert.Equal(t, sql.NullString{String: "12", Valid: true}, args[8])

	second := args[len(domain.RecordFields)+1:]
	assert.Equal(t, sql.NullString{String: "Иванов", Valid: true}, second[2])
	assert.Equal(t, sql.NullString{}, second[3], "escritório ausente vira NULL")
	assert.Equal(t, sql.NullString{}, second[10], "célula vazia vira NULL")
}

func TestReportRecordRow_ToRecord(t *testing.T) {
	row := reportRecordRow{
		Date:                sql.NullString{String: "05.03.2025", Valid: true},
		Manager:             sql.NullString{String: " Иванов ", Valid: true},
		EveningCallsSuccess: sql.NullString{String: "7", Valid: true},
	}

	record := row.toRecord()

	assert.Equal(t, "05.03.2025", record.Date)
	assert.Equal(t, "Иванов", record.Manager)
	assert.Equal(t, "", record.Office)
	assert.Equal(t, "7", record.EveningCallsSuccess)
	assert.Nil(t, record.EveningLeadsVolume)
}

func TestListRecordsQuery(t *testing.T) {
	query, args, err := listRecordsQuery().ToSql()
	require.NoError(t, err)

	assert.Equal(t,
		"SELECT id, date, manager, office, morning_calls_planned, morning_leads_planned_units, "+
			"morning_leads_planned_volume, morning_new_calls_planned, evening_calls_success, evening_leads_units, "+
			"evening_leads_volume, evening_approved_volume, evening_issued_volume, evening_new_calls "+
			"FROM daily_reports ORDER BY created_at ASC, id ASC",
		query,
	)
	assert.Empty(t, args)
}

func TestPeriodKey(t *testing.T) {
	assert.Equal(t, "03-2025", periodKey(2025, time.March))
	assert.Equal(t, "12-2026", periodKey(2026, time.December))
}

func TestPlanTableFromRows(t *testing.T) {
	plans := planTableFromRows([]monthlyPlanRow{
		{Manager: "Бариев", PlanKey: domain.PlanKeyCalls, Value: 0},
		{Manager: "Бариев", PlanKey: domain.PlanKeyLeadsVolume, Value: 70},
		{Manager: "Иванов", PlanKey: domain.PlanKeyCalls, Value: 400},
	})

	assert.Equal(t, domain.PlanTable{
		"Бариев": {domain.PlanKeyCalls: 0, domain.PlanKeyLeadsVolume: 70},
		"Иванов": {domain.PlanKeyCalls: 400},
	}, plans)
}

func TestUpsertPlansQuery(t *testing.T) {
	query, args, err := upsertPlansQuery("03-2025", domain.PlanTable{
		"Иванов": {domain.PlanKeyIssuedVolume: 10, domain.PlanKeyCalls: 400},
		"Бариев": {domain.PlanKeyLeadsVolume: 70},
	}).ToSql()
	require.NoError(t, err)

	assert.Contains(t, query, "ON CONFLICT (period, manager, plan_key)")
	assert.Equal(t, []interface{}{
		"03-2025", "Бариев", domain.PlanKeyLeadsVolume, 70.0,
		"03-2025", "Иванов", domain.PlanKeyCalls, 400.0,
		"03-2025", "Иванов", domain.PlanKeyIssuedVolume, 10.0,
	}, args)
}

func TestInsertAlertsQuery(t *testing.T) {
	alerts := []domain.TempoAlert{
		{Manager: "Иванов", Metric: domain.MetricCalls, Actual: 40, Expected: 50, DeviationPercent: -20, Level: domain.AlertLevelWarning},
	}

	query, args, err := insertAlertsQuery("Ab12Cd", domain.NewDate(2027, time.February, 12), alerts).ToSql()
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(query, "INSERT INTO tempo_alerts"))
	require.Len(t, args, 9)
	assert.NotEmpty(t, args[0])
	assert.Equal(t, []interface{}{"Ab12Cd", "2027-02-12", "Иванов", "calls", 40.0, 50.0, -20.0, "warning"}, args[1:])
}

func TestTempoAlertRow_ToDomain(t *testing.T) {
	row := tempoAlertRow{
		ID:               "a1",
		RunID:            "run",
		TargetDate:       "2027-02-12",
		Manager:          "Петров",
		Metric:           "issued_volume",
		Actual:           0,
		Expected:         100,
		DeviationPercent: -100,
		Level:            "critical",
	}

	alert, err := row.toDomain()
	require.NoError(t, err)
	assert.Equal(t, domain.NewDate(2027, time.February, 12), alert.TargetDate)
	assert.Equal(t, domain.MetricIssuedVolume, alert.Metric)
	assert.Equal(t, domain.AlertLevelCritical, alert.Level)

	row.TargetDate = "12.02.2027"
	_, err = row.toDomain()
	assert.Error(t, err)
}
