package domain

import (
	"fmt"
	"strings"
)

// Nomes das colunas da planilha de relatórios, já em minúsculas
const (
	FieldDate                      = "date"
	FieldManager                   = "manager"
	FieldOffice                    = "office"
	FieldMorningCallsPlanned       = "morning_calls_planned"
	FieldMorningLeadsPlannedUnits  = "morning_leads_planned_units"
	FieldMorningLeadsPlannedVolume = "morning_leads_planned_volume"
	FieldMorningNewCallsPlanned    = "morning_new_calls_planned"
	FieldEveningCallsSuccess       = "evening_calls_success"
	FieldEveningLeadsUnits         = "evening_leads_units"
	FieldEveningLeadsVolume        = "evening_leads_volume"
	FieldEveningApprovedVolume     = "evening_approved_volume"
	FieldEveningIssuedVolume       = "evening_issued_volume"
	FieldEveningNewCalls           = "evening_new_calls"
)

// RecordFields lista as colunas reconhecidas, na ordem da planilha
var RecordFields = []string{
	FieldDate,
	FieldManager,
	FieldOffice,
	FieldMorningCallsPlanned,
	FieldMorningLeadsPlannedUnits,
	FieldMorningLeadsPlannedVolume,
	FieldMorningNewCallsPlanned,
	FieldEveningCallsSuccess,
	FieldEveningLeadsUnits,
	FieldEveningLeadsVolume,
	FieldEveningApprovedVolume,
	FieldEveningIssuedVolume,
	FieldEveningNewCalls,
}

// RawRecord é uma linha do relatório diário. Os campos numéricos guardam o valor
// da célula sem conversão (string, número ou nil); a coerção fica com o agregador.
type RawRecord struct {
	Date    any
	Manager string
	Office  string

	MorningCallsPlanned       any
	MorningLeadsPlannedUnits  any
	MorningLeadsPlannedVolume any
	MorningNewCallsPlanned    any

	EveningCallsSuccess   any
	EveningLeadsUnits     any
	EveningLeadsVolume    any
	EveningApprovedVolume any
	EveningIssuedVolume   any
	EveningNewCalls       any
}

// RecordFromRow monta um RawRecord a partir de uma linha com cabeçalhos em qualquer
// caixa. Colunas desconhecidas são ignoradas.
func RecordFromRow(row map[string]any) RawRecord {
	normalized := make(map[string]any, len(row))
	for key, value := range row {
		normalized[strings.ToLower(strings.TrimSpace(key))] = value
	}

	return RawRecord{
		Date:    normalized[FieldDate],
		Manager: cellText(normalized[FieldManager]),
		Office:  cellText(normalized[FieldOffice]),

		MorningCallsPlanned:       normalized[FieldMorningCallsPlanned],
		MorningLeadsPlannedUnits:  normalized[FieldMorningLeadsPlannedUnits],
		MorningLeadsPlannedVolume: normalized[FieldMorningLeadsPlannedVolume],
		MorningNewCallsPlanned:    normalized[FieldMorningNewCallsPlanned],

		EveningCallsSuccess:   normalized[FieldEveningCallsSuccess],
		EveningLeadsUnits:     normalized[FieldEveningLeadsUnits],
		EveningLeadsVolume:    normalized[FieldEveningLeadsVolume],
		EveningApprovedVolume: normalized[FieldEveningApprovedVolume],
		EveningIssuedVolume:   normalized[FieldEveningIssuedVolume],
		EveningNewCalls:       normalized[FieldEveningNewCalls],
	}
}

// RecordsFromRows converte um lote de linhas
func RecordsFromRows(rows []map[string]any) []RawRecord {
	records := make([]RawRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, RecordFromRow(row))
	}
	return records
}

func cellText(v any) string {
	if v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return strings.TrimSpace(s)
	}
	return strings.TrimSpace(fmt.Sprint(v))
}
