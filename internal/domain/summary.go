package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// KanbanCard é uma alocação já enriquecida com cliente, produto e receitas calculadas
type KanbanCard struct {
	AllocationID   string           `json:"allocation_id"`
	ClientID       string           `json:"client_id"`
	ClientName     string           `json:"client_name"`
	ProductID      string           `json:"product_id"`
	ProductName    string           `json:"product_name"`
	ProductClass   string           `json:"product_class"`
	Status         AllocationStatus `json:"status"`
	Amount         decimal.Decimal  `json:"amount"`
	BaseRevenue    decimal.Decimal  `json:"base_revenue"`
	OfficeRevenue  decimal.Decimal  `json:"office_revenue"`
	AdvisorRevenue decimal.Decimal  `json:"advisor_revenue"`
	CreatedAt      time.Time        `json:"created_at"`
}

type KanbanColumn struct {
	Status AllocationStatus `json:"status"`
	Cards  []KanbanCard     `json:"cards"`
}

type ProductRevenue struct {
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	Revenue     decimal.Decimal `json:"revenue"`
}

// RevenueSummary é o resultado da agregação das alocações de um assessor
type RevenueSummary struct {
	Kanban                   []KanbanColumn                       `json:"kanban"`
	TotalAmount              decimal.Decimal                      `json:"total_amount"`
	TotalsByStatus           map[AllocationStatus]decimal.Decimal `json:"totals_by_status"`
	RevenueByStatus          map[AllocationStatus]decimal.Decimal `json:"revenue_by_status"`
	TotalOfficeRevenue       decimal.Decimal                      `json:"total_office_revenue"`
	TotalAdvisorRevenue      decimal.Decimal                      `json:"total_advisor_revenue"`
	RevenueByProduct         map[string]decimal.Decimal           `json:"revenue_by_product"`
	ConfirmedAmountByProduct map[string]decimal.Decimal           `json:"confirmed_amount_by_product"`
	TotalsByClient           map[string]decimal.Decimal           `json:"totals_by_client"`
	TotalsBySegment          map[ClientSegment]decimal.Decimal    `json:"totals_by_segment"`
	ProductNames             map[string]string                    `json:"product_names"`
}

// Column retorna os cards de um status do kanban
func (s *RevenueSummary) Column(status AllocationStatus) []KanbanCard {
	if s == nil {
		return nil
	}
	for _, column := range s.Kanban {
		if column.Status == status {
			return column.Cards
		}
	}
	return nil
}
