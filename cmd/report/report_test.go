package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-tempo-api/internal/domain"
	"github.com/vfg2006/sales-tempo-api/internal/usecases/authenticating"
	"github.com/xuri/excelize/v2"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const testReference = `
offices:
  headquarters: "HQ"
  list:
    - "Kazan"
    - "Samara"
holidays:
  "2027":
    - "2027-02-23"
plans:
  - manager: "Petrov"
    targets:
      calls_plan: 400
`

func writeFixtures(t *testing.T) (string, string) {
	t.Helper()
	dir := t.TempDir()

	f := excelize.NewFile()
	_, err := f.NewSheet("Reports")
	require.NoError(t, err)

	rows := [][]interface{}{
		{"date", "manager", "office", "evening_calls_success"},
		{"2027-02-10", "Petrov", "Kazan", 30},
		{"2027-02-11", "Petrov", "Kazan", 20},
		{"2027-02-11", "Orlova", "Samara", 7},
	}
	for idx, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, idx+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Reports", cell, &row))
	}

	xlsxPath := filepath.Join(dir, "reports.xlsx")
	require.NoError(t, f.SaveAs(xlsxPath))

	referencePath := filepath.Join(dir, "reference.yaml")
	require.NoError(t, os.WriteFile(referencePath, []byte(testReference), 0o600))

	return xlsxPath, referencePath
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	out := &bytes.Buffer{}
	cmd := newRootCommand()
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func TestSummaryCommand(t *testing.T) {
	xlsxPath, referencePath := writeFixtures(t)

	out, err := run(t, "summary", "custom",
		"--xlsx", xlsxPath, "--reference", referencePath,
		"--start", "10.02.2027", "--end", "2027-02-11")
	require.NoError(t, err)

	var summary domain.PeriodSummary
	require.NoError(t, json.Unmarshal([]byte(out), &summary))

	assert.Equal(t, domain.NewDate(2027, 2, 10), summary.Current.Period.Start)
	assert.Equal(t, 50, summary.Current.Managers["Petrov"].CallsFact)
	assert.Equal(t, 57, summary.Current.Total.CallsFact)
	require.NotNil(t, summary.Previous)
	assert.Equal(t, domain.NewDate(2027, 2, 9), summary.Previous.Period.End)
}

func TestSummaryCommand_FiltroDeEscritorio(t *testing.T) {
	xlsxPath, referencePath := writeFixtures(t)

	out, err := run(t, "summary", "custom", "--office", "Samara",
		"--xlsx", xlsxPath, "--reference", referencePath,
		"--start", "2027-02-01", "--end", "2027-02-28")
	require.NoError(t, err)

	var summary domain.PeriodSummary
	require.NoError(t, json.Unmarshal([]byte(out), &summary))
	assert.Equal(t, 7, summary.Current.Total.CallsFact)
	assert.NotContains(t, summary.Current.Managers, "Petrov")
}

func TestOfficesCommand(t *testing.T) {
	xlsxPath, referencePath := writeFixtures(t)

	out, err := run(t, "offices", "custom",
		"--xlsx", xlsxPath, "--reference", referencePath,
		"--start", "2027-02-01", "--end", "2027-02-28")
	require.NoError(t, err)

	var breakdown domain.OfficeBreakdown
	require.NoError(t, json.Unmarshal([]byte(out), &breakdown))
	require.Len(t, breakdown.Offices, 2)
	assert.Equal(t, 57, breakdown.Total.CallsFact)
}

func TestPacingCommand(t *testing.T) {
	xlsxPath, referencePath := writeFixtures(t)

	out, err := run(t, "pacing", "--now", "2027-02-12",
		"--xlsx", xlsxPath, "--reference", referencePath)
	require.NoError(t, err)

	var report domain.PacingReport
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.Equal(t, domain.NewDate(2027, 2, 12), report.TargetDate)
	assert.Equal(t, 10, report.WorkingDaysPast)
	assert.NotEmpty(t, report.Lines)
}

func TestTempoCommand(t *testing.T) {
	xlsxPath, referencePath := writeFixtures(t)

	out, err := run(t, "tempo", "--date", "2027-02-12",
		"--xlsx", xlsxPath, "--reference", referencePath)
	require.NoError(t, err)

	var body struct {
		TargetDate domain.Date         `json:"target_date"`
		Alerts     []domain.TempoAlert `json:"alerts"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &body))
	assert.Equal(t, domain.NewDate(2027, 2, 12), body.TargetDate)
	// Petrov tem 50 ligações contra 400/19*10 esperadas
	require.NotEmpty(t, body.Alerts)
	assert.Equal(t, "Petrov", body.Alerts[0].Manager)
	assert.Equal(t, domain.AlertLevelCritical, body.Alerts[0].Level)
}

func TestSummaryCommand_Erros(t *testing.T) {
	xlsxPath, referencePath := writeFixtures(t)

	tests := []struct {
		name string
		args []string
	}{
		{name: "período desconhecido", args: []string{"summary", "year"}},
		{name: "custom sem datas", args: []string{"summary", "custom"}},
		{name: "data ilegível", args: []string{"summary", "custom", "--start", "ontem", "--end", "2027-02-01"}},
		{name: "planilha ausente", args: []string{"summary", "week", "--xlsx", filepath.Join(t.TempDir(), "nada.xlsx")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append([]string{"--xlsx", xlsxPath, "--reference", referencePath}, tt.args...)
			_, err := run(t, args...)
			assert.Error(t, err)
		})
	}
}

func TestTokenCommand(t *testing.T) {
	out, err := run(t, "token", "--secret", "segredo", "--user", "u-7", "--name", "Kazan", "--user-office", "Kazan")
	require.NoError(t, err)

	claims, err := authenticating.NewService("segredo").ValidateToken(string(bytes.TrimSpace([]byte(out))))
	require.NoError(t, err)
	assert.Equal(t, "Kazan", claims.Office)
	assert.Equal(t, domain.RoleOffice, claims.UserRoleID)

	_, err = run(t, "token", "--secret", "segredo", "--user", "u-8", "--name", "Sem escritório")
	assert.Error(t, err)
}
