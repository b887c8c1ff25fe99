package aggregating

import "github.com/vfg2006/sales-tempo-api/internal/domain"

var skipReasonNames = map[skipReason]string{
	skipNoDate:     "no_date",
	skipBadDate:    "bad_date",
	skipOutOfRange: "out_of_range",
	skipOffice:     "office",
	skipNoManager:  "no_manager",
}

// Diagnose percorre as linhas com os mesmos filtros da agregação e devolve uma
// entrada para cada linha descartada ou com campo zerado. Linhas limpas não
// aparecem. Row começa em zero e segue a ordem de records.
func (s *Service) Diagnose(records []domain.RawRecord, period domain.Period, office string) []domain.RowDiagnostic {
	diagnostics := make([]domain.RowDiagnostic, 0)

	for i, r := range records {
		date, reason := classify(r, period, office)

		diagnostic := domain.RowDiagnostic{Row: i, Manager: r.Manager}
		if !date.IsZero() {
			d := date
			diagnostic.Date = &d
		}

		if reason != included {
			diagnostic.Skipped = skipReasonNames[reason]
			diagnostics = append(diagnostics, diagnostic)
			continue
		}

		values := parseValues(r)
		if len(values.defaulted) == 0 {
			continue
		}

		diagnostic.DefaultedFields = values.defaulted
		diagnostics = append(diagnostics, diagnostic)
	}

	return diagnostics
}
