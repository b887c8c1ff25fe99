package reporting

import (
	"errors"
	"fmt"

	"github.com/vfg2006/sales-tempo-api/pkg/apiErrors"
)

var (
	// Erros de validação
	ErrUnknownPeriod = errors.New("tipo de período desconhecido")
	ErrMissingDates  = errors.New("período customizado exige data inicial e final")
	ErrInvalidRange  = errors.New("data inicial posterior à data final")
	ErrUnknownOffice = errors.New("escritório desconhecido")
	ErrSeriesTooLong = errors.New("período longo demais para a série diária")

	// Erros de fontes externas
	ErrRecordSource = errors.New("erro ao carregar relatórios diários")
	ErrPlanSource   = errors.New("erro ao carregar planos mensais")
)

// ReportError é um erro com o código que a API devolve ao cliente
type ReportError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	Details string // Detalhes adicionais
}

func (e *ReportError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *ReportError) Unwrap() error {
	return e.Err
}

func NewReportError(err error, code string, details string) *ReportError {
	return &ReportError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

// ErrorCode extrai o código da API de um erro, SRV_001 quando não houver
func ErrorCode(err error) string {
	var reportErr *ReportError
	if errors.As(err, &reportErr) {
		return reportErr.Code
	}
	return apiErrors.ErrInternalServer
}
