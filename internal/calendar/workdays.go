package calendar

import (
	"sort"
	"time"

	"github.com/vfg2006/sales-tempo-api/internal/domain"
)

// HolidayTable lista os feriados de cada ano
type HolidayTable map[int][]domain.Date

// WorkingDayCalendar decide se uma data é dia útil. Sábado e domingo nunca são;
// os demais dias só deixam de ser se estiverem na tabela de feriados do ano.
// Imutável depois de criado.
type WorkingDayCalendar struct {
	holidays map[int]map[domain.Date]struct{}
}

func NewWorkingDayCalendar(table HolidayTable) *WorkingDayCalendar {
	holidays := make(map[int]map[domain.Date]struct{}, len(table))
	// cada data vale pelo próprio ano, não pela chave em que foi listada
	for _, dates := range table {
		for _, d := range dates {
			set, ok := holidays[d.Year]
			if !ok {
				set = make(map[domain.Date]struct{})
				holidays[d.Year] = set
			}
			set[d] = struct{}{}
		}
	}

	return &WorkingDayCalendar{holidays: holidays}
}

func (c *WorkingDayCalendar) IsWorkingDay(d domain.Date) bool {
	switch d.Weekday() {
	case time.Saturday, time.Sunday:
		return false
	}

	if c == nil {
		return true
	}

	_, holiday := c.holidays[d.Year][d]
	return !holiday
}

func (c *WorkingDayCalendar) CountWorkingDaysInMonth(year int, month time.Month) int {
	first := domain.Date{Year: year, Month: month, Day: 1}
	return c.countBetween(first, first.LastOfMonth())
}

// CountWorkingDaysThrough conta os dias úteis do dia 1 do mês até d, inclusive
func (c *WorkingDayCalendar) CountWorkingDaysThrough(d domain.Date) int {
	return c.countBetween(d.FirstOfMonth(), d)
}

func (c *WorkingDayCalendar) countBetween(start, end domain.Date) int {
	count := 0
	for day := start; !day.After(end); day = day.AddDays(1) {
		if c.IsWorkingDay(day) {
			count++
		}
	}
	return count
}

// Holidays devolve os feriados do ano em ordem
func (c *WorkingDayCalendar) Holidays(year int) []domain.Date {
	if c == nil {
		return nil
	}

	dates := make([]domain.Date, 0, len(c.holidays[year]))
	for d := range c.holidays[year] {
		dates = append(dates, d)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })
	return dates
}
