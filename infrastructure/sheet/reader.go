// Package sheet lê a exportação em xlsx da planilha de relatórios diários.
package sheet

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
	"github.com/vfg2006/sales-tempo-api/internal/domain"
	"github.com/xuri/excelize/v2"
)

var ErrHeaderNotFound = errors.New("cabeçalho da planilha não encontrado")

// Colunas que identificam a linha de cabeçalho
var requiredHeaders = []string{domain.FieldDate, domain.FieldManager}

// Reader carrega os registros a partir de um arquivo xlsx. O arquivo é aberto
// a cada leitura para acompanhar exportações novas.
type Reader struct {
	path  string
	sheet string
}

func NewReader(path, sheet string) *Reader {
	return &Reader{path: path, sheet: sheet}
}

func (r *Reader) ListRecords(ctx context.Context) ([]domain.RawRecord, error) {
	rows, err := r.ReadRows(ctx)
	if err != nil {
		return nil, err
	}
	return domain.RecordsFromRows(rows), nil
}

func (r *Reader) ReadRows(ctx context.Context) ([]map[string]any, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := excelize.OpenFile(r.path)
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao abrir planilha %s", r.path)
	}
	defer f.Close()

	return readRows(f, r.sheet)
}

// ReadRows lê as linhas de uma planilha vinda de um stream qualquer
func ReadRows(src io.Reader, sheet string) ([]map[string]any, error) {
	f, err := excelize.OpenReader(src)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao abrir planilha")
	}
	defer f.Close()

	return readRows(f, sheet)
}

func readRows(f *excelize.File, sheet string) ([]map[string]any, error) {
	name, err := pickSheet(f, sheet)
	if err != nil {
		return nil, err
	}

	// Valores crus: datas chegam como número serial e o normalizador resolve
	rows, err := f.GetRows(name, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao ler aba %s", name)
	}

	headerRow, headers := findHeader(rows)
	if headerRow < 0 {
		return nil, fmt.Errorf("%w na aba %s", ErrHeaderNotFound, name)
	}

	records := make([]map[string]any, 0, len(rows)-headerRow-1)
	for _, row := range rows[headerRow+1:] {
		if isEmptyRow(row) {
			continue
		}

		record := make(map[string]any, len(headers))
		for idx, header := range headers {
			if header == "" {
				continue
			}

			var value any
			if idx < len(row) && strings.TrimSpace(row[idx]) != "" {
				value = row[idx]
			}
			record[header] = value
		}
		records = append(records, record)
	}

	return records, nil
}

// pickSheet usa a aba pedida ou, se ela não existir, a primeira
func pickSheet(f *excelize.File, sheet string) (string, error) {
	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return "", errors.New("planilha sem abas")
	}

	for _, name := range sheets {
		if strings.EqualFold(name, sheet) {
			return name, nil
		}
	}

	return sheets[0], nil
}

// findHeader devolve o índice da primeira linha com as colunas obrigatórias e
// os nomes normalizados de cada coluna
func findHeader(rows [][]string) (int, []string) {
	for idx, row := range rows {
		headers := make([]string, len(row))
		found := make(map[string]bool, len(row))

		for col, cell := range row {
			header := strings.ToLower(strings.TrimSpace(cell))
			headers[col] = header
			found[header] = true
		}

		complete := true
		for _, required := range requiredHeaders {
			if !found[required] {
				complete = false
				break
			}
		}

		if complete {
			return idx, headers
		}
	}

	return -1, nil
}

func isEmptyRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
