package apiErrors

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Códigos de erro para autenticação
const (
	// Erros de autenticação (1000-1999)
	ErrInvalidCredentials = "AUTH_001" // Credenciais inválidas
	ErrUserDisabled       = "AUTH_002" // Usuário desativado
	ErrUserNotFound       = "AUTH_003" // Usuário não encontrado
	ErrInvalidToken       = "AUTH_006" // Token inválido
	ErrExpiredToken       = "AUTH_007" // Token expirado
	ErrTenantNotResolved  = "AUTH_010" // Sessão sem tenant

	// Erros de validação (2000-2999)
	ErrInvalidRequest      = "VAL_001" // Requisição inválida
	ErrMissingRequiredData = "VAL_002" // Dados obrigatórios ausentes
	ErrInvalidFormat       = "VAL_003" // Formato de dados inválido
	ErrInvalidAmount       = "VAL_004" // Valor monetário inválido
	ErrInvalidMonth        = "VAL_005" // Mês fora do formato YYYY-MM
	ErrMethodNotAllowed    = "VAL_006" // Método HTTP não aceito pela rota

	// Erros de recursos (4000-4999)
	ErrResourceNotFound = "RES_001" // Registro não encontrado para o tenant

	// Erros do servidor (5000-5999)
	ErrInternalServer    = "SRV_001" // Erro interno do servidor
	ErrDatabaseOperation = "SRV_002" // Erro de operação de banco de dados
)

// Mapeamento de códigos de erro para status HTTP
var httpStatusMap = map[string]int{
	ErrInvalidCredentials:  http.StatusUnauthorized,
	ErrUserDisabled:        http.StatusForbidden,
	ErrUserNotFound:        http.StatusNotFound,
	ErrInvalidToken:        http.StatusUnauthorized,
	ErrExpiredToken:        http.StatusUnauthorized,
	ErrTenantNotResolved:   http.StatusUnauthorized,
	ErrInvalidRequest:      http.StatusBadRequest,
	ErrMissingRequiredData: http.StatusBadRequest,
	ErrInvalidFormat:       http.StatusBadRequest,
	ErrInvalidAmount:       http.StatusBadRequest,
	ErrInvalidMonth:        http.StatusBadRequest,
	ErrMethodNotAllowed:    http.StatusMethodNotAllowed,
	ErrResourceNotFound:    http.StatusNotFound,
	ErrInternalServer:      http.StatusInternalServerError,
	ErrDatabaseOperation:   http.StatusInternalServerError,
}

// APIError representa um erro de API padronizado
type APIError struct {
	Code    string `json:"code"`              // Código de erro para o cliente
	Message string `json:"message,omitempty"` // Mensagem descritiva (opcional)
	Details any    `json:"details,omitempty"` // Detalhes adicionais (opcional)
}

// WriteError escreve o erro padronizado para a resposta HTTP
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	status, exists := httpStatusMap[code]
	if !exists {
		status = http.StatusInternalServerError
	}

	apiErr := APIError{
		Code:    code,
		Message: message,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(apiErr)
}
