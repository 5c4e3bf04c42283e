package apiErrors

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Códigos de erro estáveis expostos pela API
const (
	// Erros de autenticação
	ErrInvalidToken          = "AUTH_006" // Token inválido
	ErrExpiredToken          = "AUTH_007" // Token expirado
	ErrInsufficientPrivilege = "AUTH_008" // Privilégios insuficientes

	// Erros de validação
	ErrInvalidRequest      = "VAL_001" // Requisição inválida
	ErrMissingRequiredData = "VAL_002" // Dados obrigatórios ausentes
	ErrInvalidFormat       = "VAL_003" // Formato de dados inválido
	ErrInvalidInput        = "VAL_004" // Entrada do plano inválida (texto/artefato)
	ErrMissingInstruction  = "VAL_005" // Instrução de refinamento vazia

	// Erros do ciclo de vida do plano
	ErrPlanNotFound           = "PLAN_001" // Plano não encontrado
	ErrAlreadyApproved        = "PLAN_002" // Plano já aprovado
	ErrConcurrentModification = "PLAN_003" // Plano alterado por outra requisição
	ErrNoMetrics              = "PLAN_004" // Nenhuma métrica disponível

	// Erros de extração e geração
	ErrExtractionFailed      = "AI_001" // Extração de conteúdo falhou
	ErrExtractionTimedOut    = "AI_002" // Extração não terminou no prazo
	ErrNoContentExtracted    = "AI_003" // Extração não retornou texto
	ErrPlanGenerationFailed  = "AI_004" // Resposta do modelo inválida na geração do plano
	ErrRefinementParseFailed = "AI_005" // Resposta do modelo inválida no refinamento
	ErrAnalysisParseFailed   = "AI_006" // Resposta do modelo inválida no monitoramento

	// Erros do servidor
	ErrInternalServer    = "SRV_001" // Erro interno do servidor
	ErrDatabaseOperation = "SRV_002" // Erro de operação de banco de dados
	ErrExternalService   = "SRV_003" // Erro em serviço externo
	ErrCommunication     = "SRV_004" // Erro de comunicação
	ErrNotFound          = "SRV_005" // Rota não encontrada
	ErrMethodNotAllowed  = "SRV_006" // Método não permitido
)

// Mapeamento de códigos de erro para status HTTP
var httpStatusMap = map[string]int{
	ErrInvalidToken:           http.StatusUnauthorized,
	ErrExpiredToken:           http.StatusUnauthorized,
	ErrInsufficientPrivilege:  http.StatusForbidden,
	ErrInvalidRequest:         http.StatusBadRequest,
	ErrMissingRequiredData:    http.StatusBadRequest,
	ErrInvalidFormat:          http.StatusBadRequest,
	ErrInvalidInput:           http.StatusBadRequest,
	ErrMissingInstruction:     http.StatusBadRequest,
	ErrPlanNotFound:           http.StatusNotFound,
	ErrAlreadyApproved:        http.StatusConflict,
	ErrConcurrentModification: http.StatusConflict,
	ErrNoMetrics:              http.StatusNotFound,
	ErrExtractionFailed:       http.StatusBadGateway,
	ErrExtractionTimedOut:     http.StatusGatewayTimeout,
	ErrNoContentExtracted:     http.StatusUnprocessableEntity,
	ErrPlanGenerationFailed:   http.StatusBadGateway,
	ErrRefinementParseFailed:  http.StatusBadGateway,
	ErrAnalysisParseFailed:    http.StatusBadGateway,
	ErrInternalServer:         http.StatusInternalServerError,
	ErrDatabaseOperation:      http.StatusInternalServerError,
	ErrExternalService:        http.StatusBadGateway,
	ErrCommunication:          http.StatusServiceUnavailable,
	ErrNotFound:               http.StatusNotFound,
	ErrMethodNotAllowed:       http.StatusMethodNotAllowed,
}

// APIError representa um erro de API padronizado
type APIError struct {
	Code    string `json:"code"`              // Código de erro para o cliente
	Message string `json:"message,omitempty"` // Mensagem descritiva (opcional)
	Details any    `json:"details,omitempty"` // Detalhes adicionais (opcional)
}

// StatusFor retorna o status HTTP do código, ou 500 para códigos desconhecidos.
func StatusFor(code string) int {
	if status, exists := httpStatusMap[code]; exists {
		return status
	}
	return http.StatusInternalServerError
}

// WriteError escreve o erro padronizado para a resposta HTTP
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	apiErr := APIError{
		Code:    code,
		Message: message,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(StatusFor(code))
	json.NewEncoder(w).Encode(apiErr)
}
