package aggregating

import (
	"github.com/shopspring/decimal"
	"github.com/vfg2006/sales-tempo-api/internal/domain"
)

// accumulator soma contagens em inteiros e volumes em decimal exato, de modo que a
// ordem das linhas nunca muda o resultado.
type accumulator struct {
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
}

func (a *accumulator) add(v recordValues) {
	a.callsPlan += v.callsPlan
	a.leadsUnitsPlan += v.leadsUnitsPlan
	a.leadsVolumePlan = a.leadsVolumePlan.Add(v.leadsVolumePlan)
	a.newCallsPlan += v.newCallsPlan

	a.callsFact += v.callsFact
	a.leadsUnitsFact += v.leadsUnitsFact
	a.leadsVolumeFact = a.leadsVolumeFact.Add(v.leadsVolumeFact)
	a.approvedVolume = a.approvedVolume.Add(v.approvedVolume)
	a.issuedVolume = a.issuedVolume.Add(v.issuedVolume)
	a.newCalls += v.newCalls
}

func (a *accumulator) snapshot() domain.PeriodMetrics {
	return domain.PeriodMetrics{
		CallsPlan:       int(a.callsPlan),
		LeadsUnitsPlan:  int(a.leadsUnitsPlan),
		LeadsVolumePlan: a.leadsVolumePlan.InexactFloat64(),
		NewCallsPlan:    int(a.newCallsPlan),

		CallsFact:       int(a.callsFact),
		LeadsUnitsFact:  int(a.leadsUnitsFact),
		LeadsVolumeFact: a.leadsVolumeFact.InexactFloat64(),
		ApprovedVolume:  a.approvedVolume.InexactFloat64(),
		IssuedVolume:    a.issuedVolume.InexactFloat64(),
		NewCalls:        int(a.newCalls),
	}
}
