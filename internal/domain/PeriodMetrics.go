package domain

import "github.com/vfg2006/sales-tempo-api/pkg/utils"

// PeriodMetrics soma o plano da manhã e o fato da noite de um período
type PeriodMetrics struct {
	CallsPlan       int     `json:"calls_plan"`
	LeadsUnitsPlan  int     `json:"leads_units_plan"`
	LeadsVolumePlan float64 `json:"leads_volume_plan"`
	NewCallsPlan    int     `json:"new_calls_plan"`

	CallsFact       int     `json:"calls_fact"`
	LeadsUnitsFact  int     `json:"leads_units_fact"`
	LeadsVolumeFact float64 `json:"leads_volume_fact"`
	ApprovedVolume  float64 `json:"approved_volume"`
	IssuedVolume    float64 `json:"issued_volume"`
	NewCalls        int     `json:"new_calls"`
}

func (m PeriodMetrics) CallsPercentage() float64 {
	return percentage(float64(m.CallsFact), float64(m.CallsPlan))
}

func (m PeriodMetrics) LeadsUnitsPercentage() float64 {
	return percentage(float64(m.LeadsUnitsFact), float64(m.LeadsUnitsPlan))
}

func (m PeriodMetrics) LeadsVolumePercentage() float64 {
	return percentage(m.LeadsVolumeFact, m.LeadsVolumePlan)
}

// Completion agrupa os percentuais de cumprimento do plano
type Completion struct {
	Calls       float64 `json:"calls"`
	LeadsUnits  float64 `json:"leads_units"`
	LeadsVolume float64 `json:"leads_volume"`
}

func (m PeriodMetrics) Completion() Completion {
	return Completion{
		Calls:       m.CallsPercentage(),
		LeadsUnits:  m.LeadsUnitsPercentage(),
		LeadsVolume: m.LeadsVolumePercentage(),
	}
}

func percentage(fact, plan float64) float64 {
	if plan <= 0 {
		return 0
	}
	return utils.RoundWithTwoDecimalPlace(fact / plan * 100)
}

type ManagerPeriodMetrics struct {
	Manager string `json:"manager"`
	PeriodMetrics
}

type OfficePeriodMetrics struct {
	Office   string `json:"office"`
	Managers int    `json:"managers"`
	PeriodMetrics
}

// AggregationStats conta o que ficou de fora de uma agregação
type AggregationStats struct {
	RowsTotal         int `json:"rows_total"`
	RowsIncluded      int `json:"rows_included"`
	SkippedNoDate     int `json:"skipped_no_date"`
	SkippedBadDate    int `json:"skipped_bad_date"`
	SkippedOutOfRange int `json:"skipped_out_of_range"`
	SkippedOffice     int `json:"skipped_office"`
	SkippedNoManager  int `json:"skipped_no_manager"`
	DefaultedFields   int `json:"defaulted_fields"`
}

func (s AggregationStats) Skipped() int {
	return s.SkippedNoDate + s.SkippedBadDate + s.SkippedOutOfRange + s.SkippedOffice + s.SkippedNoManager
}

// Aggregation é o resultado completo de uma agregação por gerente
type Aggregation struct {
	Period   Period                          `json:"period"`
	Office   string                          `json:"office,omitempty"`
	Managers map[string]ManagerPeriodMetrics `json:"managers"`
	Total    PeriodMetrics                   `json:"total"`
	Stats    AggregationStats                `json:"stats"`
}

// OfficeBreakdown traz os totais por escritório conhecido
type OfficeBreakdown struct {
	Period     Period                `json:"period"`
	Offices    []OfficePeriodMetrics `json:"offices"`
	Total      PeriodMetrics         `json:"total"`
	Unassigned PeriodMetrics         `json:"unassigned"`
	Stats      AggregationStats      `json:"stats"`
}

// DailyTotals são os totais de um único dia, usados em gráficos
type DailyTotals struct {
	Date Date `json:"date"`
	PeriodMetrics
}

// RowDiagnostic explica o que aconteceu com uma linha do relatório
type RowDiagnostic struct {
	Row             int      `json:"row"`
	Manager         string   `json:"manager,omitempty"`
	Date            *Date    `json:"date,omitempty"`
	Skipped         string   `json:"skipped,omitempty"`
	DefaultedFields []string `json:"defaulted_fields,omitempty"`
}
