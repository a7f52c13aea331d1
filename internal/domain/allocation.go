package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// AllocationStatus é a etapa da alocação no funil comercial
type AllocationStatus string

const (
	StatusMapped    AllocationStatus = "MAPPED"
	StatusPresented AllocationStatus = "PRESENTED"
	StatusPushSent  AllocationStatus = "PUSH_SENT"
	StatusConfirmed AllocationStatus = "CONFIRMED"
)

// AllStatuses lista as etapas na ordem em que aparecem no kanban
var AllStatuses = []AllocationStatus{StatusMapped, StatusPresented, StatusPushSent, StatusConfirmed}

var (
	pushSentThreshold  = decimal.NewFromInt(75)
	presentedThreshold = decimal.NewFromInt(50)
)

func (s AllocationStatus) Valid() bool {
	switch s {
	case StatusMapped, StatusPresented, StatusPushSent, StatusConfirmed:
		return true
	}
	return false
}

// ParseAllocationStatus converte texto em status; desconhecido vira MAPPED
func ParseAllocationStatus(s string) AllocationStatus {
	status := AllocationStatus(s)
	if status.Valid() {
		return status
	}
	return StatusMapped
}

// StatusFromLegacy deriva o status dos campos antigos (percentual e efetivada).
// Usado apenas na importação de dados legados.
func StatusFromLegacy(percentual decimal.Decimal, isEffective bool) AllocationStatus {
	switch {
	case isEffective:
		return StatusConfirmed
	case percentual.GreaterThanOrEqual(pushSentThreshold):
		return StatusPushSent
	case percentual.GreaterThanOrEqual(presentedThreshold):
		return StatusPresented
	default:
		return StatusMapped
	}
}

type Allocation struct {
	ID         string           `json:"id"`
	TenantID   string           `json:"-"`
	ClientID   string           `json:"client_id"`
	ProductID  string           `json:"product_id"`
	Amount     decimal.Decimal  `json:"amount"`
	Percentual decimal.Decimal  `json:"percentual"`
	Status     AllocationStatus `json:"status"`
	CreatedAt  time.Time        `json:"created_at"`
	UpdatedAt  time.Time        `json:"updated_at"`
}

type CreateAllocationRequest struct {
	ClientID    string           `json:"client_id"`
	ProductID   string           `json:"product_id"`
	Amount      decimal.Decimal  `json:"amount"`
	Status      AllocationStatus `json:"status"`
	Percentual  *decimal.Decimal `json:"percentual"`
	IsEffective *bool            `json:"is_effective"`
}

type UpdateAllocationRequest struct {
	Amount      *decimal.Decimal  `json:"amount"`
	Status      *AllocationStatus `json:"status"`
	Percentual  *decimal.Decimal  `json:"percentual"`
	IsEffective *bool             `json:"is_effective"`
}

func (a *Allocation) IsConfirmed() bool {
	return a != nil && a.Status == StatusConfirmed
}
