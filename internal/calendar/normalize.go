// Package calendar resolve datas: normalização de valores de planilha, dias úteis
// e limites de períodos.
package calendar

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/vfg2006/sales-tempo-api/internal/domain"
)

const (
	// acima disso um número é sempre tratado como data serial de planilha
	serialThreshold = 40000
	// 9999-12-31
	maxSerial = 2958465
)

var serialEpoch = domain.Date{Year: 1899, Month: time.December, Day: 30}

// A ordem importa: DD/MM vence MM/DD quando os dois servem.
var dateLayouts = []string{
	"2006-1-2",
	"2.1.2006",
	"2006/1/2",
	"2/1/2006",
	"1/2/2006",
	"2006-1-2 15:4:5",
	"2.1.2006 15:4:5",
	"2.1.06",
	"2.1.06 15:4:5",
	"2-1-2006",
	"2006.1.2",
}

// NormalizeDate converte o valor bruto de uma célula em data de calendário.
// Retorna false quando nenhuma regra reconhece o valor.
func NormalizeDate(raw any) (domain.Date, bool) {
	switch v := raw.(type) {
	case nil:
		return domain.Date{}, false
	case domain.Date:
		return v, !v.IsZero()
	case time.Time:
		if v.IsZero() {
			return domain.Date{}, false
		}
		return domain.DateOf(v), true
	case *time.Time:
		if v == nil || v.IsZero() {
			return domain.Date{}, false
		}
		return domain.DateOf(*v), true
	case string:
		return normalizeText(v)
	case []byte:
		return normalizeText(string(v))
	}

	if serial, ok := numericValue(raw); ok {
		return fromSerial(serial, 1)
	}

	return domain.Date{}, false
}

func normalizeText(raw string) (domain.Date, bool) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return domain.Date{}, false
	}

	numeric := isNumericText(value)
	if numeric {
		serial, err := strconv.ParseFloat(value, 64)
		if err == nil && serial > serialThreshold {
			return fromSerial(serial, serialThreshold)
		}
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return domain.DateOf(t), true
		}
	}

	// números pequenos que nenhum formato reconheceu ainda são seriais válidos
	if numeric {
		serial, err := strconv.ParseFloat(value, 64)
		if err == nil {
			return fromSerial(serial, 1)
		}
	}

	return domain.Date{}, false
}

func fromSerial(serial float64, min float64) (domain.Date, bool) {
	if math.IsNaN(serial) || serial < min || serial > maxSerial {
		return domain.Date{}, false
	}
	return serialEpoch.AddDays(int(serial)), true
}

// isNumericText aceita apenas dígitos com no máximo um ponto decimal
func isNumericText(s string) bool {
	digits := 0
	dots := 0
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			digits++
		case r == '.':
			dots++
		default:
			return false
		}
	}
	return digits > 0 && dots <= 1
}

func numericValue(raw any) (float64, bool) {
	switch v := raw.(type) {
	case int:
		return float64(v), true
	case int8:
		return float64(v), true
	case int16:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint:
		return float64(v), true
	case uint8:
		return float64(v), true
	case uint16:
		return float64(v), true
	case uint32:
		return float64(v), true
	case uint64:
		return float64(v), true
	case float32:
		return float64(v), true
	case float64:
		return v, true
	}
	return 0, false
}
