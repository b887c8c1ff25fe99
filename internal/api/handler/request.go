package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/sales-tempo-api/internal/domain"
	"github.com/vfg2006/sales-tempo-api/internal/usecases/reporting"
	"github.com/vfg2006/sales-tempo-api/pkg/apiErrors"
	"github.com/vfg2006/sales-tempo-api/pkg/log"
	"github.com/vfg2006/sales-tempo-api/pkg/middleware"
	"github.com/vfg2006/sales-tempo-api/pkg/utils"
)

var (
	json     = jsoniter.ConfigCompatibleWithStandardLibrary
	validate = validator.New()
)

// periodQuery são os parâmetros comuns às rotas de período
type periodQuery struct {
	Kind   string `validate:"required"`
	Start  string `validate:"omitempty,max=32"`
	End    string `validate:"omitempty,max=32"`
	Office string `validate:"omitempty,max=128"`
}

type compareQuery struct {
	AStart string `validate:"required,max=32"`
	AEnd   string `validate:"required,max=32"`
	BStart string `validate:"required,max=32"`
	BEnd   string `validate:"required,max=32"`
	Office string `validate:"omitempty,max=128"`
}

type targetQuery struct {
	Date   string `validate:"omitempty,max=32"`
	Office string `validate:"omitempty,max=128"`
}

func writeJSON(w http.ResponseWriter, r *http.Request, payload any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.ForContext(r.Context()).WithError(err).Error("Erro ao codificar resposta")
	}
}

// writeServiceError traduz o erro do relatório para o código da API
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, message string) {
	code := reporting.ErrorCode(err)

	var details any
	var reportErr *reporting.ReportError
	if errors.As(err, &reportErr) && reportErr.Details != "" {
		details = map[string]string{"reason": reportErr.Details}
	}

	logger := log.ForContext(r.Context()).WithError(err).WithField("code", code)
	if apiErrors.StatusFor(code) >= http.StatusInternalServerError {
		logger.Error(message)
	} else {
		logger.Warn(message)
	}

	apiErrors.WriteError(w, code, message, details)
}

func writeValidationError(w http.ResponseWriter, err error) {
	code := apiErrors.ErrInvalidFormat

	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		for _, fieldErr := range validationErrs {
			if fieldErr.Tag() == "required" {
				code = apiErrors.ErrMissingRequiredData
				break
			}
		}
	}

	apiErrors.WriteError(w, code, "Parâmetros inválidos", err.Error())
}

// scopeOffice aplica o escopo do usuário ao filtro de escritório pedido
func scopeOffice(w http.ResponseWriter, r *http.Request, requested string) (string, bool) {
	office, err := middleware.ScopeOffice(r, requested)
	switch {
	case err == nil:
		return office, true
	case errors.Is(err, middleware.ErrOfficeNotAllowed):
		apiErrors.WriteError(w, apiErrors.ErrOfficeNotAllowed, "Escritório fora do escopo do usuário", requested)
	default:
		apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
	}
	return "", false
}

// parseOptionalDate aceita os formatos de data digitada; vazio vira nil
func parseOptionalDate(value string) (*domain.Date, error) {
	if strings.TrimSpace(value) == "" {
		return nil, nil
	}

	parsed, err := utils.ParseDate(value)
	if err != nil {
		return nil, err
	}

	date := domain.DateOf(parsed)
	return &date, nil
}

func parseDates(w http.ResponseWriter, values ...string) ([]*domain.Date, bool) {
	dates := make([]*domain.Date, 0, len(values))
	for _, value := range values {
		date, err := parseOptionalDate(value)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Data inválida", err.Error())
			return nil, false
		}
		dates = append(dates, date)
	}
	return dates, true
}

// resolvePeriod valida a query e resolve o período pedido
func resolvePeriod(w http.ResponseWriter, r *http.Request, service reporting.Reporter, query periodQuery) (domain.Period, bool) {
	if err := validate.Struct(query); err != nil {
		writeValidationError(w, err)
		return domain.Period{}, false
	}

	dates, ok := parseDates(w, query.Start, query.End)
	if !ok {
		return domain.Period{}, false
	}

	period, err := service.ResolvePeriod(domain.PeriodKind(strings.ToLower(query.Kind)), dates[0], dates[1])
	if err != nil {
		writeServiceError(w, r, err, "Período inválido")
		return domain.Period{}, false
	}
	return period, true
}

func periodQueryFrom(r *http.Request, kind string) periodQuery {
	query := r.URL.Query()
	if kind == "" {
		kind = query.Get("period")
	}
	return periodQuery{
		Kind:   kind,
		Start:  query.Get("start"),
		End:    query.Get("end"),
		Office: query.Get("office"),
	}
}
