package gateway

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingTenantFilter indica uma operação em tabela com escopo de
	// tenant sem o filtro explícito de tenant; nada é enviado ao banco
	ErrMissingTenantFilter = errors.New("operação sem filtro de tenant em tabela com escopo de tenant")

	// ErrNoRowsAffected indica que a escrita não encontrou linhas para o tenant
	ErrNoRowsAffected = errors.New("nenhuma linha afetada")
)

// DataAccessError é a falha de uma chamada ao banco
type DataAccessError struct {
	Table string
	Op    string
	Err   error
}

func (e *DataAccessError) Error() string {
	return fmt.Sprintf("erro de acesso a dados (%s %s): %v", e.Op, e.Table, e.Err)
}

func (e *DataAccessError) Unwrap() error {
	return e.Err
}
