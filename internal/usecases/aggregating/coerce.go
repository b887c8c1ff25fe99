package aggregating

import (
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/sales-tempo-api/internal/domain"
)

// coerceCount converte uma célula de contagem. Célula vazia vale zero sem ser
// falha; qualquer outra coisa que não seja inteiro devolve (0, false).
func coerceCount(v any) (int64, bool) {
	switch n := v.(type) {
	case nil:
		return 0, true
	case int:
		return int64(n), true
	case int8:
		return int64(n), true
	case int16:
		return int64(n), true
	case int32:
		return int64(n), true
	case int64:
		return n, true
	case uint:
		return int64(n), true
	case uint8:
		return int64(n), true
	case uint16:
		return int64(n), true
	case uint32:
		return int64(n), true
	case uint64:
		if n > math.MaxInt64 {
			return 0, false
		}
		return int64(n), true
	case float32:
		return truncate(float64(n))
	case float64:
		return truncate(n)
	case bool:
		if n {
			return 1, true
		}
		return 0, true
	case string:
		s := strings.TrimSpace(n)
		if s == "" {
			return 0, true
		}
		parsed, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return 0, false
		}
		return parsed, true
	}
	return 0, false
}

func truncate(f float64) (int64, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) || math.Abs(f) >= math.MaxInt64 {
		return 0, false
	}
	return int64(f), true
}

// coerceVolume converte uma célula de volume para decimal exato
func coerceVolume(v any) (decimal.Decimal, bool) {
	switch n := v.(type) {
	case nil:
		return decimal.Zero, true
	case int:
		return decimal.NewFromInt(int64(n)), true
	case int32:
		return decimal.NewFromInt32(n), true
	case int64:
		return decimal.NewFromInt(n), true
	case float32:
		return fromFloat(float64(n))
	case float64:
		return fromFloat(n)
	case decimal.Decimal:
		return n, true
	case string:
		s := strings.TrimSpace(n)
		if s == "" {
			return decimal.Zero, true
		}
		parsed, err := decimal.NewFromString(s)
		if err != nil {
			return decimal.Zero, false
		}
		return parsed, true
	}

	if count, ok := coerceCount(v); ok {
		return decimal.NewFromInt(count), true
	}
	return decimal.Zero, false
}

func fromFloat(f float64) (decimal.Decimal, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return decimal.Zero, false
	}
	return decimal.NewFromFloat(f), true
}

// recordValues são os campos numéricos de um registro já convertidos
type recordValues struct {
	callsPlan       int64
	leadsUnitsPlan  int64
	leadsVolumePlan decimal.Decimal
	newCallsPlan    int64

	callsFact       int64
	leadsUnitsFact  int64
	leadsVolumeFact decimal.Decimal
	approvedVolume  decimal.Decimal
	issuedVolume    decimal.Decimal
	newCalls        int64

	defaulted []string
}

func parseValues(r domain.RawRecord) recordValues {
	var v recordValues

	count := func(field string, raw any) int64 {
		n, ok := coerceCount(raw)
		if !ok {
			v.defaulted = append(v.defaulted, field)
		}
		return n
	}
	volume := func(field string, raw any) decimal.Decimal {
		d, ok := coerceVolume(raw)
		if !ok {
			v.defaulted = append(v.defaulted, field)
		}
		return d
	}

	v.callsPlan = count(domain.FieldMorningCallsPlanned, r.MorningCallsPlanned)
	v.leadsUnitsPlan = count(domain.FieldMorningLeadsPlannedUnits, r.MorningLeadsPlannedUnits)
	v.leadsVolumePlan = volume(domain.FieldMorningLeadsPlannedVolume, r.MorningLeadsPlannedVolume)
	v.newCallsPlan = count(domain.FieldMorningNewCallsPlanned, r.MorningNewCallsPlanned)

	v.callsFact = count(domain.FieldEveningCallsSuccess, r.EveningCallsSuccess)
	v.leadsUnitsFact = count(domain.FieldEveningLeadsUnits, r.EveningLeadsUnits)
	v.leadsVolumeFact = volume(domain.FieldEveningLeadsVolume, r.EveningLeadsVolume)
	v.approvedVolume = volume(domain.FieldEveningApprovedVolume, r.EveningApprovedVolume)
	v.issuedVolume = volume(domain.FieldEveningIssuedVolume, r.EveningIssuedVolume)
	v.newCalls = count(domain.FieldEveningNewCalls, r.EveningNewCalls)

	return v
}
