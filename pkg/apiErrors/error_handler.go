package apiErrors

import (
	"errors"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/campaign-health-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Códigos de erro da API
const (
	// Erros de autenticação
	ErrMissingToken          = "AUTH_001" // Cabeçalho Authorization ausente
	ErrInvalidToken          = "AUTH_006" // Token inválido
	ErrExpiredToken          = "AUTH_007" // Token expirado
	ErrInsufficientPrivilege = "AUTH_008" // Sem acesso à conta

	// Erros de validação
	ErrInvalidRequest      = "VAL_001" // Requisição inválida
	ErrMissingRequiredData = "VAL_002" // Dados obrigatórios ausentes
	ErrInvalidFormat       = "VAL_003" // Formato de dados inválido

	// Erros de recurso
	ErrResourceNotFound = "RES_001" // Recurso não encontrado
	ErrConflict         = "RES_002" // Rotina já em execução

	// Erros do servidor
	ErrInternalServer    = "SRV_001" // Erro interno do servidor
	ErrDatabaseOperation = "SRV_002" // Erro de operação de banco de dados
	ErrExternalService   = "SRV_003" // Erro em serviço externo
	ErrCommunication     = "SRV_004" // Erro de comunicação
)

// Mapeamento de códigos de erro para status HTTP
var httpStatusMap = map[string]int{
	ErrMissingToken:          http.StatusUnauthorized,
	ErrInvalidToken:          http.StatusUnauthorized,
	ErrExpiredToken:          http.StatusUnauthorized,
	ErrInsufficientPrivilege: http.StatusForbidden,
	ErrInvalidRequest:        http.StatusBadRequest,
	ErrMissingRequiredData:   http.StatusBadRequest,
	ErrInvalidFormat:         http.StatusBadRequest,
	ErrResourceNotFound:      http.StatusNotFound,
	ErrConflict:              http.StatusConflict,
	ErrInternalServer:        http.StatusInternalServerError,
	ErrDatabaseOperation:     http.StatusInternalServerError,
	ErrExternalService:       http.StatusBadGateway,
	ErrCommunication:         http.StatusServiceUnavailable,
}

// APIError representa um erro de API padronizado
type APIError struct {
	Code    string `json:"code"`              // Código de erro para o cliente
	Message string `json:"message,omitempty"` // Mensagem descritiva (opcional)
	Details any    `json:"details,omitempty"` // Detalhes adicionais (opcional)
}

// StatusFor devolve o status HTTP de um código, ou 500 para códigos desconhecidos
func StatusFor(code string) int {
	status, exists := httpStatusMap[code]
	if !exists {
		return http.StatusInternalServerError
	}
	return status
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

// FromError traduz um erro da taxonomia do domínio para o erro da API.
// Erros fora da taxonomia viram SRV_001 sem expor a causa.
func FromError(err error) APIError {
	switch {
	case err == nil:
		return APIError{Code: ErrInternalServer, Message: "Erro desconhecido"}
	case errors.Is(err, domain.ErrValidation):
		return APIError{Code: ErrInvalidFormat, Message: "Requisição inválida", Details: err.Error()}
	case errors.Is(err, domain.ErrNotFound):
		return APIError{Code: ErrResourceNotFound, Message: "Recurso não encontrado", Details: err.Error()}
	case errors.Is(err, domain.ErrJobRunning):
		return APIError{Code: ErrConflict, Message: "Rotina já está em execução"}
	case errors.Is(err, domain.ErrUnauthorized):
		return APIError{Code: ErrInvalidToken, Message: "Credencial rejeitada pelo serviço externo"}
	case errors.Is(err, domain.ErrExternalService):
		return APIError{Code: ErrExternalService, Message: "Falha no serviço externo"}
	case errors.Is(err, domain.ErrPersistence):
		return APIError{Code: ErrDatabaseOperation, Message: "Falha ao acessar o banco de dados"}
	default:
		return APIError{Code: ErrInternalServer, Message: "Erro interno do servidor"}
	}
}

// WriteDomainError escreve um erro do domínio usando o mapeamento de FromError
func WriteDomainError(w http.ResponseWriter, err error) {
	apiErr := FromError(err)
	WriteError(w, apiErr.Code, apiErr.Message, apiErr.Details)
}
