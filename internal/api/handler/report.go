package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/sales-tempo-api/internal/domain"
	"github.com/vfg2006/sales-tempo-api/internal/usecases/reporting"
	"github.com/vfg2006/sales-tempo-api/pkg/log"
)

// GetSummary agrega o período do path e o período anterior de mesmo tipo.
// O tipo custom usa start e end da query na mesma rota.
func GetSummary(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		kind := httprouter.ParamsFromContext(r.Context()).ByName("period")
		query := periodQueryFrom(r, kind)

		office, ok := scopeOffice(w, r, query.Office)
		if !ok {
			return
		}

		period, ok := resolvePeriod(w, r, service, query)
		if !ok {
			return
		}

		log.ForContext(r.Context()).WithFields(log.Fields{
			"period": period.String(),
			"office": office,
		}).Info("summary: agregando período")

		summary, err := service.Summary(r.Context(), period, office)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao agregar período")
			return
		}

		writeJSON(w, r, summary)
	})
}

// GetComparison compara dois períodos arbitrários
func GetComparison(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		values := r.URL.Query()
		query := compareQuery{
			AStart: values.Get("a_start"),
			AEnd:   values.Get("a_end"),
			BStart: values.Get("b_start"),
			BEnd:   values.Get("b_end"),
			Office: values.Get("office"),
		}
		if err := validate.Struct(query); err != nil {
			writeValidationError(w, err)
			return
		}

		office, ok := scopeOffice(w, r, query.Office)
		if !ok {
			return
		}

		dates, ok := parseDates(w, query.AStart, query.AEnd, query.BStart, query.BEnd)
		if !ok {
			return
		}

		first, err := service.ResolvePeriod(domain.PeriodCustom, dates[0], dates[1])
		if err != nil {
			writeServiceError(w, r, err, "Primeiro período inválido")
			return
		}

		second, err := service.ResolvePeriod(domain.PeriodCustom, dates[2], dates[3])
		if err != nil {
			writeServiceError(w, r, err, "Segundo período inválido")
			return
		}

		comparison, err := service.Compare(r.Context(), first, second, office)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao comparar períodos")
			return
		}

		writeJSON(w, r, comparison)
	})
}

// GetOfficeSummary devolve os totais por escritório, só para a matriz
func GetOfficeSummary(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		period, ok := resolvePeriod(w, r, service, periodQueryFrom(r, ""))
		if !ok {
			return
		}

		breakdown, err := service.OfficeSummary(r.Context(), period)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao agregar escritórios")
			return
		}

		writeJSON(w, r, breakdown)
	})
}

func GetDailySeries(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query := periodQueryFrom(r, "")

		office, ok := scopeOffice(w, r, query.Office)
		if !ok {
			return
		}

		period, ok := resolvePeriod(w, r, service, query)
		if !ok {
			return
		}

		if err := reporting.ValidateSeriesPeriod(period); err != nil {
			writeServiceError(w, r, err, "Período da série diária recusado")
			return
		}

		series, err := service.DailySeries(r.Context(), period, office)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao montar série diária")
			return
		}

		writeJSON(w, r, series)
	})
}

// GetDiagnostics explica por que cada linha entrou ou ficou fora do período
func GetDiagnostics(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query := periodQueryFrom(r, "")

		office, ok := scopeOffice(w, r, query.Office)
		if !ok {
			return
		}

		period, ok := resolvePeriod(w, r, service, query)
		if !ok {
			return
		}

		diagnostics, err := service.Diagnose(r.Context(), period, office)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao diagnosticar linhas")
			return
		}

		writeJSON(w, r, diagnostics)
	})
}

// GetOffices lista os escritórios conhecidos
func GetOffices(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		offices := service.Offices()
		if offices == nil {
			offices = []string{}
		}
		writeJSON(w, r, map[string]any{"offices": offices})
	})
}
