package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/sales-tempo-api/internal/domain"
)

func TestNormalizeDate(t *testing.T) {
	moscow := time.FixedZone("MSK", 3*60*60)

	tests := []struct {
		name   string
		raw    any
		want   domain.Date
		wantOK bool
	}{
		{name: "ISO", raw: "2025-03-14", want: domain.NewDate(2025, time.March, 14), wantOK: true},
		{name: "dia.mês.ano", raw: "14.03.2025", want: domain.NewDate(2025, time.March, 14), wantOK: true},
		{name: "ano/mês/dia", raw: "2025/03/14", want: domain.NewDate(2025, time.March, 14), wantOK: true},
		{name: "dia/mês/ano", raw: "14/03/2025", want: domain.NewDate(2025, time.March, 14), wantOK: true},
		{name: "ambíguo resolve como dia primeiro", raw: "03/04/2025", want: domain.NewDate(2025, time.April, 3), wantOK: true},
		{name: "mês/dia/ano quando dia/mês é inválido", raw: "12/31/2025", want: domain.NewDate(2025, time.December, 31), wantOK: true},
		{name: "ISO com hora", raw: "2025-03-14 18:30:00", want: domain.NewDate(2025, time.March, 14), wantOK: true},
		{name: "dia.mês.ano com hora", raw: "14.03.2025 09:05:10", want: domain.NewDate(2025, time.March, 14), wantOK: true},
		{name: "ano com dois dígitos", raw: "14.03.25", want: domain.NewDate(2025, time.March, 14), wantOK: true},
		{name: "ano com dois dígitos e hora", raw: "14.03.25 10:00:00", want: domain.NewDate(2025, time.March, 14), wantOK: true},
		{name: "dia-mês-ano", raw: "14-03-2025", want: domain.NewDate(2025, time.March, 14), wantOK: true},
		{name: "ano.mês.dia", raw: "2025.03.14", want: domain.NewDate(2025, time.March, 14), wantOK: true},
		{name: "sem zero à esquerda", raw: "1.3.2025", want: domain.NewDate(2025, time.March, 1), wantOK: true},
		{name: "espaços nas pontas", raw: "  14.03.2025 ", want: domain.NewDate(2025, time.March, 14), wantOK: true},
		{name: "serial de planilha em texto", raw: "45000", want: domain.NewDate(2023, time.March, 15), wantOK: true},
		{name: "serial com fração", raw: "45000.75", want: domain.NewDate(2023, time.March, 15), wantOK: true},
		{name: "serial numérico", raw: 45000.0, want: domain.NewDate(2023, time.March, 15), wantOK: true},
		{name: "serial inteiro", raw: 45658, want: domain.NewDate(2025, time.January, 1), wantOK: true},
		{name: "serial pequeno", raw: "2", want: domain.NewDate(1900, time.January, 1), wantOK: true},
		{name: "zero não é serial", raw: "0", wantOK: false},
		{name: "time.Time usa o fuso próprio", raw: time.Date(2025, 3, 14, 23, 30, 0, 0, moscow), want: domain.NewDate(2025, time.March, 14), wantOK: true},
		{name: "Date é aceita como está", raw: domain.NewDate(2024, time.February, 29), want: domain.NewDate(2024, time.February, 29), wantOK: true},
		{name: "texto livre", raw: "ontem", wantOK: false},
		{name: "vazio", raw: "", wantOK: false},
		{name: "só espaços", raw: "   ", wantOK: false},
		{name: "nil", raw: nil, wantOK: false},
		{name: "data inexistente", raw: "31.02.2025", wantOK: false},
		{name: "dois pontos decimais", raw: "45000.1.2", wantOK: false},
		{name: "número negativo", raw: -5, wantOK: false},
		{name: "serial fora do calendário", raw: "99999999", wantOK: false},
		{name: "booleano", raw: true, wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := NormalizeDate(tt.raw)

			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			} else {
				assert.True(t, got.IsZero())
			}
		})
	}
}

func TestNormalizeDate_NuncaEntraEmPanico(t *testing.T) {
	inputs := []any{
		"2025-13-40", "..", ".", "00.00.0000", "9999-12-31 99:99:99", struct{}{},
		[]byte("14.03.2025"), (*time.Time)(nil), float32(45000), uint8(7), "٣٤٥", "١٤.٠٣.٢٠٢٥",
	}

	for _, in := range inputs {
		assert.NotPanics(t, func() { NormalizeDate(in) })
	}
}
