package managing

import (
	"errors"
	"fmt"

	"github.com/advisorhub/revenue-engine/infrastructure/gateway"
	"github.com/advisorhub/revenue-engine/internal/session"
	"github.com/advisorhub/revenue-engine/pkg/apiErrors"
)

// Erros das operações de cadastro
var (
	// Erros de validação
	ErrMissingRequiredData = errors.New("dados obrigatórios ausentes")
	ErrInvalidAmount       = errors.New("valor inválido")
	ErrInvalidMonth        = errors.New("mês inválido, use YYYY-MM")
	ErrInvalidStatus       = errors.New("status de alocação inválido")

	// Erros de registros inexistentes
	ErrClientNotFound     = errors.New("cliente não encontrado")
	ErrProductNotFound    = errors.New("produto não encontrado")
	ErrAllocationNotFound = errors.New("alocação não encontrada")
	ErrBonusNotFound      = errors.New("bônus não encontrado")

	// Erros de banco de dados
	ErrDatabaseOperation = errors.New("erro ao realizar operação no banco de dados")
	ErrGenerateID        = errors.New("erro ao gerar identificador")
)

// ManagementError é um erro com contexto adicional para a API
type ManagementError struct {
	Err      error  // Erro base
	Code     string // Código de erro para API
	EntityID string // ID do registro envolvido (quando aplicável)
	Details  string // Detalhes adicionais
}

func (e *ManagementError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *ManagementError) Unwrap() error {
	return e.Err
}

func NewManagementError(err error, code string, details string) *ManagementError {
	return &ManagementError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

func NewEntityError(err error, code string, entityID string, details string) *ManagementError {
	return &ManagementError{
		Err:      err,
		Code:     code,
		EntityID: entityID,
		Details:  details,
	}
}

// storageError traduz falhas de repositório para o erro da API
func storageError(err error, notFound error, entityID string) *ManagementError {
	switch {
	case errors.Is(err, session.ErrTenantNotResolved), errors.Is(err, gateway.ErrMissingTenantFilter):
		return NewEntityError(err, apiErrors.ErrTenantNotResolved, entityID, "Sessão sem tenant")
	case errors.Is(err, gateway.ErrNoRowsAffected):
		return NewEntityError(notFound, apiErrors.ErrResourceNotFound, entityID, "")
	default:
		return NewEntityError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, entityID, err.Error())
	}
}
