package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// RevenueLineItem é uma linha do relatório histórico de comissões importado
type RevenueLineItem struct {
	ID                string          `json:"id"`
	TenantID          string          `json:"-"`
	Month             string          `json:"month"`
	ClientCode        string          `json:"client_code"`
	Product           string          `json:"product"`
	Family            string          `json:"family"`
	Gross             decimal.Decimal `json:"gross"`
	NetToAdvisorValue decimal.Decimal `json:"net_to_advisor_value"`
	OfficeCommission  decimal.Decimal `json:"office_commission"`
	CreatedAt         time.Time       `json:"created_at"`
}

// RecurringCategories é a preferência do assessor sobre quais produtos entram na receita recorrente.
// Configured=false significa que nunca foi definida.
type RecurringCategories struct {
	Configured bool     `json:"configured"`
	Categories []string `json:"categories"`
}
