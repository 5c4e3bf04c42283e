package planning

import (
	"errors"
	"fmt"
)

// Erros do ciclo de vida do plano
var (
	// Erros de entrada
	ErrInvalidInput       = errors.New("invalid input")
	ErrMissingInstruction = errors.New("refinement instruction is required")

	// Erros de estado
	ErrPlanNotFound           = errors.New("plan not found")
	ErrAlreadyApproved        = errors.New("plan already approved")
	ErrConcurrentModification = errors.New("plan was modified concurrently")

	// Erros de extração
	ErrExtractionFailed   = errors.New("content extraction failed")
	ErrExtractionTimedOut = errors.New("content extraction timed out")
	ErrNoContentExtracted = errors.New("no content extracted")

	// Erros do modelo
	ErrGenerationFailed      = errors.New("generation provider error")
	ErrPlanGenerationFailed  = errors.New("plan generation failed")
	ErrRefinementParseFailed = errors.New("refinement response could not be parsed")

	// Erros de banco de dados
	ErrStoreFailure = errors.New("plan store operation failed")
)

// PlanError é um erro com contexto adicional para o ciclo de vida do plano
type PlanError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	PlanID  string // ID do plano envolvido (quando aplicável)
	Details string // Detalhes adicionais
	Raw     string // Resposta crua do modelo quando a decodificação falha
}

func (e *PlanError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *PlanError) Unwrap() error {
	return e.Err
}

func NewPlanError(err error, code string, details string) *PlanError {
	return &PlanError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

func NewPlanErrorWithID(err error, code string, planID string, details string) *PlanError {
	return &PlanError{
		Err:     err,
		Code:    code,
		PlanID:  planID,
		Details: details,
	}
}
