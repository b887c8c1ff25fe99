package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-tempo-api/internal/domain"
)

func TestPeriodResolver_PeriodosCorrentes(t *testing.T) {
	moscow := time.FixedZone("MSK", 3*60*60)

	tests := []struct {
		name        string
		now         time.Time
		wantWeek    [2]domain.Date
		wantMonth   [2]domain.Date
		wantQuarter [2]domain.Date
	}{
		{
			name:        "segunda-feira no último trimestre",
			now:         time.Date(2026, 10, 19, 10, 0, 0, 0, moscow),
			wantWeek:    [2]domain.Date{domain.NewDate(2026, 10, 19), domain.NewDate(2026, 10, 25)},
			wantMonth:   [2]domain.Date{domain.NewDate(2026, 10, 1), domain.NewDate(2026, 10, 31)},
			wantQuarter: [2]domain.Date{domain.NewDate(2026, 10, 1), domain.NewDate(2026, 12, 31)},
		},
		{
			name:        "domingo fecha a semana iniciada na segunda",
			now:         time.Date(2025, 2, 16, 12, 0, 0, 0, moscow),
			wantWeek:    [2]domain.Date{domain.NewDate(2025, 2, 10), domain.NewDate(2025, 2, 16)},
			wantMonth:   [2]domain.Date{domain.NewDate(2025, 2, 1), domain.NewDate(2025, 2, 28)},
			wantQuarter: [2]domain.Date{domain.NewDate(2025, 1, 1), domain.NewDate(2025, 3, 31)},
		},
		{
			name:        "fevereiro bissexto",
			now:         time.Date(2024, 2, 29, 8, 0, 0, 0, moscow),
			wantWeek:    [2]domain.Date{domain.NewDate(2024, 2, 26), domain.NewDate(2024, 3, 3)},
			wantMonth:   [2]domain.Date{domain.NewDate(2024, 2, 1), domain.NewDate(2024, 2, 29)},
			wantQuarter: [2]domain.Date{domain.NewDate(2024, 1, 1), domain.NewDate(2024, 3, 31)},
		},
		{
			name:        "instante UTC de domingo já é segunda em Moscou",
			now:         time.Date(2026, 10, 18, 22, 30, 0, 0, time.UTC).In(moscow),
			wantWeek:    [2]domain.Date{domain.NewDate(2026, 10, 19), domain.NewDate(2026, 10, 25)},
			wantMonth:   [2]domain.Date{domain.NewDate(2026, 10, 1), domain.NewDate(2026, 10, 31)},
			wantQuarter: [2]domain.Date{domain.NewDate(2026, 10, 1), domain.NewDate(2026, 12, 31)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resolver := NewPeriodResolver(tt.now)

			week := resolver.CurrentWeek()
			assert.Equal(t, tt.wantWeek[0], week.Start)
			assert.Equal(t, tt.wantWeek[1], week.End)
			assert.Equal(t, time.Monday, week.Start.Weekday())
			assert.Equal(t, time.Sunday, week.End.Weekday())
			assert.True(t, week.Contains(resolver.Today()))

			month := resolver.CurrentMonth()
			assert.Equal(t, tt.wantMonth[0], month.Start)
			assert.Equal(t, tt.wantMonth[1], month.End)

			quarter := resolver.CurrentQuarter()
			assert.Equal(t, tt.wantQuarter[0], quarter.Start)
			assert.Equal(t, tt.wantQuarter[1], quarter.End)
		})
	}
}

func TestPeriodResolver_Resolve(t *testing.T) {
	resolver := NewPeriodResolver(time.Date(2026, 10, 19, 10, 0, 0, 0, time.UTC))

	p, err := resolver.Resolve(domain.PeriodQuarter)
	require.NoError(t, err)
	assert.Equal(t, domain.PeriodQuarter, p.Kind)

	_, err = resolver.Resolve(domain.PeriodCustom)
	assert.ErrorIs(t, err, ErrUnknownPeriodKind)

	_, err = resolver.Resolve("year")
	assert.ErrorIs(t, err, ErrUnknownPeriodKind)
}

func TestValidateRange(t *testing.T) {
	tests := []struct {
		name    string
		start   domain.Date
		end     domain.Date
		wantErr error
	}{
		{name: "intervalo normal", start: domain.NewDate(2025, 3, 1), end: domain.NewDate(2025, 3, 10)},
		{name: "um único dia", start: domain.NewDate(2025, 3, 1), end: domain.NewDate(2025, 3, 1)},
		{name: "início depois do fim", start: domain.NewDate(2025, 3, 10), end: domain.NewDate(2025, 3, 1), wantErr: ErrInvalidRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := ValidateRange(tt.start, tt.end)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, domain.PeriodCustom, p.Kind)
			assert.Equal(t, tt.start, p.Start)
			assert.Equal(t, tt.end, p.End)
		})
	}
}

func TestPreviousPeriod(t *testing.T) {
	tests := []struct {
		name   string
		period domain.Period
		want   domain.Period
	}{
		{
			name:   "semana anterior",
			period: domain.Period{Kind: domain.PeriodWeek, Start: domain.NewDate(2026, 10, 19), End: domain.NewDate(2026, 10, 25)},
			want:   domain.Period{Kind: domain.PeriodWeek, Start: domain.NewDate(2026, 10, 12), End: domain.NewDate(2026, 10, 18)},
		},
		{
			name:   "mês anterior com tamanho diferente",
			period: domain.Period{Kind: domain.PeriodMonth, Start: domain.NewDate(2025, 3, 1), End: domain.NewDate(2025, 3, 31)},
			want:   domain.Period{Kind: domain.PeriodMonth, Start: domain.NewDate(2025, 2, 1), End: domain.NewDate(2025, 2, 28)},
		},
		{
			name:   "trimestre anterior atravessa o ano",
			period: domain.Period{Kind: domain.PeriodQuarter, Start: domain.NewDate(2025, 1, 1), End: domain.NewDate(2025, 3, 31)},
			want:   domain.Period{Kind: domain.PeriodQuarter, Start: domain.NewDate(2024, 10, 1), End: domain.NewDate(2024, 12, 31)},
		},
		{
			name:   "intervalo customizado recua o mesmo tamanho",
			period: domain.Period{Kind: domain.PeriodCustom, Start: domain.NewDate(2025, 3, 11), End: domain.NewDate(2025, 3, 20)},
			want:   domain.Period{Kind: domain.PeriodCustom, Start: domain.NewDate(2025, 3, 1), End: domain.NewDate(2025, 3, 10)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PreviousPeriod(tt.period))
		})
	}
}

func TestMonthToDate(t *testing.T) {
	p := MonthToDate(domain.NewDate(2025, 3, 14))

	assert.Equal(t, domain.NewDate(2025, 3, 1), p.Start)
	assert.Equal(t, domain.NewDate(2025, 3, 14), p.End)
	assert.Equal(t, 14, p.Days())
}
