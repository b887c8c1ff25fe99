package calendar

import (
	"errors"
	"fmt"
	"time"

	"github.com/vfg2006/sales-tempo-api/internal/domain"
)

var (
	ErrInvalidRange      = errors.New("data inicial posterior à data final")
	ErrUnknownPeriodKind = errors.New("tipo de período desconhecido")
)

// PeriodResolver calcula os limites dos períodos a partir de um "agora" fixo.
// O dia de hoje é a data de now no fuso do próprio now.
type PeriodResolver struct {
	today domain.Date
}

func NewPeriodResolver(now time.Time) PeriodResolver {
	return PeriodResolver{today: domain.DateOf(now)}
}

func (r PeriodResolver) Today() domain.Date {
	return r.today
}

// CurrentWeek vai de segunda a domingo da semana de hoje
func (r PeriodResolver) CurrentWeek() domain.Period {
	offset := (int(r.today.Weekday()) + 6) % 7
	start := r.today.AddDays(-offset)
	return domain.Period{Kind: domain.PeriodWeek, Start: start, End: start.AddDays(6)}
}

func (r PeriodResolver) CurrentMonth() domain.Period {
	return monthOf(r.today)
}

func (r PeriodResolver) CurrentQuarter() domain.Period {
	return quarterOf(r.today)
}

// Resolve devolve o período corrente do tipo pedido. Períodos customizados
// precisam de ValidateRange.
func (r PeriodResolver) Resolve(kind domain.PeriodKind) (domain.Period, error) {
	switch kind {
	case domain.PeriodWeek:
		return r.CurrentWeek(), nil
	case domain.PeriodMonth:
		return r.CurrentMonth(), nil
	case domain.PeriodQuarter:
		return r.CurrentQuarter(), nil
	}
	return domain.Period{}, fmt.Errorf("%w: %s", ErrUnknownPeriodKind, kind)
}

func ValidateRange(start, end domain.Date) (domain.Period, error) {
	if start.After(end) {
		return domain.Period{}, fmt.Errorf("%w: %s > %s", ErrInvalidRange, start, end)
	}
	return domain.Period{Kind: domain.PeriodCustom, Start: start, End: end}, nil
}

// PreviousPeriod devolve o período imediatamente anterior de mesmo tipo.
// Períodos customizados recuam uma janela de mesmo tamanho.
func PreviousPeriod(p domain.Period) domain.Period {
	switch p.Kind {
	case domain.PeriodWeek:
		return domain.Period{Kind: p.Kind, Start: p.Start.AddDays(-7), End: p.Start.AddDays(-1)}
	case domain.PeriodMonth:
		return monthOf(p.Start.AddDays(-1))
	case domain.PeriodQuarter:
		return quarterOf(p.Start.AddDays(-1))
	}

	end := p.Start.AddDays(-1)
	return domain.Period{Kind: p.Kind, Start: end.AddDays(-(p.Days() - 1)), End: end}
}

// MonthToDate vai do dia 1 do mês de d até d
func MonthToDate(d domain.Date) domain.Period {
	return domain.Period{Kind: domain.PeriodCustom, Start: d.FirstOfMonth(), End: d}
}

func monthOf(d domain.Date) domain.Period {
	return domain.Period{Kind: domain.PeriodMonth, Start: d.FirstOfMonth(), End: d.LastOfMonth()}
}

func quarterOf(d domain.Date) domain.Period {
	firstMonth := time.Month((int(d.Month)-1)/3*3 + 1)
	start := domain.Date{Year: d.Year, Month: firstMonth, Day: 1}
	return domain.Period{Kind: domain.PeriodQuarter, Start: start, End: start.AddMonths(2).LastOfMonth()}
}
