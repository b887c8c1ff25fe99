package domain

// PeriodSummary compara um período com o anterior
type PeriodSummary struct {
	Current  Aggregation  `json:"current"`
	Previous *Aggregation `json:"previous,omitempty"`
}

// PeriodComparison compara dois períodos arbitrários
type PeriodComparison struct {
	First  Aggregation `json:"first"`
	Second Aggregation `json:"second"`
}

type DailySeries struct {
	Period Period        `json:"period"`
	Office string        `json:"office,omitempty"`
	Days   []DailyTotals `json:"days"`
}

// StoredTempoAlert é um alerta persistido por uma execução agendada
type StoredTempoAlert struct {
	ID         string `json:"id"`
	RunID      string `json:"run_id"`
	TargetDate Date   `json:"target_date"`
	TempoAlert
}
