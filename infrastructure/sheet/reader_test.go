package sheet

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-tempo-api/internal/calendar"
	"github.com/vfg2006/sales-tempo-api/internal/domain"
	"github.com/xuri/excelize/v2"
)

func buildWorkbook(t *testing.T, sheet string, rows [][]interface{}) *excelize.File {
	t.Helper()

	f := excelize.NewFile()
	if sheet != "Sheet1" {
		_, err := f.NewSheet(sheet)
		require.NoError(t, err)
	}

	for idx, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, idx+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}

	return f
}

func workbookBytes(t *testing.T, f *excelize.File) *bytes.Reader {
	t.Helper()

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return bytes.NewReader(buf.Bytes())
}

func TestReadRows(t *testing.T) {
	f := buildWorkbook(t, "Reports", [][]interface{}{
		{"Exportação de relatórios"},
		{},
		{"Date", "Manager", "Office", "Evening_Calls_Success", "evening_issued_volume"},
		{45720, "Петров", "Савела", 12, 3.5},
		{"05.03.2025", " Иванов ", "Офис 4", "abc", nil},
		{},
		{nil, "Сидорова", "Батурлов", 1, 1},
	})

	rows, err := ReadRows(workbookBytes(t, f), "reports")
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, "45720", rows[0][domain.FieldDate])
	assert.Equal(t, "12", rows[0][domain.FieldEveningCallsSuccess])
	assert.Equal(t, "3.5", rows[0][domain.FieldEveningIssuedVolume])
	assert.Nil(t, rows[1][domain.FieldEveningIssuedVolume])
	assert.Nil(t, rows[2][domain.FieldDate])

	records := domain.RecordsFromRows(rows)
	assert.Equal(t, "Иванов", records[1].Manager)

	d, ok := calendar.NormalizeDate(records[0].Date)
	require.True(t, ok)
	assert.Equal(t, "2025-03-04", d.String())
}

func TestReadRows_AbaInexistenteUsaAPrimeira(t *testing.T) {
	f := buildWorkbook(t, "Sheet1", [][]interface{}{
		{"date", "manager"},
		{"2025-03-05", "Иванов"},
	})

	rows, err := ReadRows(workbookBytes(t, f), "Reports")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Иванов", rows[0][domain.FieldManager])
}

func TestReadRows_SemCabecalho(t *testing.T) {
	f := buildWorkbook(t, "Sheet1", [][]interface{}{
		{"data", "gerente"},
		{"2025-03-05", "Иванов"},
	})

	_, err := ReadRows(workbookBytes(t, f), "")
	assert.ErrorIs(t, err, ErrHeaderNotFound)
}

func TestReader_ListRecords(t *testing.T) {
	f := buildWorkbook(t, "Sheet1", [][]interface{}{
		{"date", "manager", "office"},
		{"2025-03-05", "Иванов", "Офис 4"},
	})

	path := filepath.Join(t.TempDir(), "reports.xlsx")
	require.NoError(t, f.SaveAs(path))

	records, err := NewReader(path, "Sheet1").ListRecords(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Офис 4", records[0].Office)

	_, err = NewReader(filepath.Join(t.TempDir(), "nao-existe.xlsx"), "").ListRecords(context.Background())
	assert.Error(t, err)
}
