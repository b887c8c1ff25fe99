package handler

import (
	"context"
	"net/http"

	"github.com/vfg2006/sales-tempo-api/internal/domain"
	"github.com/vfg2006/sales-tempo-api/internal/usecases/reporting"
	"github.com/vfg2006/sales-tempo-api/pkg/apiErrors"
	"github.com/vfg2006/sales-tempo-api/pkg/log"
)

// AlertHistory lê os alertas gravados pelas execuções agendadas
type AlertHistory interface {
	History(ctx context.Context, target domain.Date) ([]domain.StoredTempoAlert, error)
}

// targetDate lê a data alvo da query; sem data vale o dia de hoje
func targetDate(w http.ResponseWriter, service reporting.Reporter, value string) (domain.Date, bool) {
	dates, ok := parseDates(w, value)
	if !ok {
		return domain.Date{}, false
	}
	if dates[0] == nil {
		return service.Today(), true
	}
	return *dates[0], true
}

func targetQueryFrom(r *http.Request) targetQuery {
	return targetQuery{
		Date:   r.URL.Query().Get("date"),
		Office: r.URL.Query().Get("office"),
	}
}

// GetTempoAlerts lista os gerentes abaixo do ritmo esperado no mês
func GetTempoAlerts(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query := targetQueryFrom(r)
		if err := validate.Struct(query); err != nil {
			writeValidationError(w, err)
			return
		}

		office, ok := scopeOffice(w, r, query.Office)
		if !ok {
			return
		}

		target, ok := targetDate(w, service, query.Date)
		if !ok {
			return
		}

		alerts, err := service.TempoAlerts(r.Context(), target, office)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao calcular alertas de ritmo")
			return
		}
		if alerts == nil {
			alerts = []domain.TempoAlert{}
		}

		log.ForContext(r.Context()).WithFields(log.Fields{
			"target_date": target.String(),
			"office":      office,
			"alerts":      len(alerts),
		}).Info("tempo: alertas calculados")

		writeJSON(w, r, map[string]any{
			"target_date": target,
			"office":      office,
			"alerts":      alerts,
		})
	})
}

// GetPacing devolve as linhas de ritmo de todos os gerentes
func GetPacing(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query := targetQueryFrom(r)
		if err := validate.Struct(query); err != nil {
			writeValidationError(w, err)
			return
		}

		office, ok := scopeOffice(w, r, query.Office)
		if !ok {
			return
		}

		target, ok := targetDate(w, service, query.Date)
		if !ok {
			return
		}

		report, err := service.Pacing(r.Context(), target, office)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao calcular ritmo")
			return
		}

		writeJSON(w, r, report)
	})
}

// GetTempoHistory devolve os alertas gravados para a data
func GetTempoHistory(service reporting.Reporter, history AlertHistory) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query := targetQueryFrom(r)
		if err := validate.Struct(query); err != nil {
			writeValidationError(w, err)
			return
		}

		target, ok := targetDate(w, service, query.Date)
		if !ok {
			return
		}

		alerts, err := history.History(r.Context(), target)
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("tempo: erro ao buscar histórico de alertas")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar histórico de alertas", nil)
			return
		}
		if alerts == nil {
			alerts = []domain.StoredTempoAlert{}
		}

		writeJSON(w, r, map[string]any{
			"target_date": target,
			"alerts":      alerts,
		})
	})
}
