package valuing

import (
	"errors"
	"fmt"
)

// Erros específicos do simulador de valuation
var (
	// ErrInvalidDiscountRate indica WACC menor ou igual ao crescimento na perpetuidade,
	// caso em que o valor terminal não é definido
	ErrInvalidDiscountRate = errors.New("wacc must exceed terminal growth")
	ErrReportID            = errors.New("error generating report ID")
)

// ValuationError é um erro com contexto adicional para o valuation
type ValuationError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	Details string // Detalhes adicionais
}

// Error implementa a interface error
func (e *ValuationError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *ValuationError) Unwrap() error {
	return e.Err
}

// NewValuationError cria um novo ValuationError
func NewValuationError(err error, code string, details string) *ValuationError {
	return &ValuationError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}
