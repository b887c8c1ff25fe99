package domain

type PeriodKind string

const (
	PeriodWeek    PeriodKind = "week"
	PeriodMonth   PeriodKind = "month"
	PeriodQuarter PeriodKind = "quarter"
	PeriodCustom  PeriodKind = "custom"
)

func (k PeriodKind) IsValid() bool {
	switch k {
	case PeriodWeek, PeriodMonth, PeriodQuarter, PeriodCustom:
		return true
	}
	return false
}

// Period é um intervalo fechado [Start, End]
type Period struct {
	Kind  PeriodKind `json:"kind"`
	Start Date       `json:"start"`
	End   Date       `json:"end"`
}

func (p Period) Contains(d Date) bool {
	return !d.Before(p.Start) && !d.After(p.End)
}

// Days retorna o número de dias do intervalo, inclusive nas duas pontas
func (p Period) Days() int {
	return p.Start.DaysUntil(p.End) + 1
}

// Dates lista todas as datas do intervalo em ordem
func (p Period) Dates() []Date {
	if p.End.Before(p.Start) {
		return nil
	}

	dates := make([]Date, 0, p.Days())
	for d := p.Start; !d.After(p.End); d = d.AddDays(1) {
		dates = append(dates, d)
	}
	return dates
}

func (p Period) String() string {
	return p.Start.String() + ".." + p.End.String()
}
