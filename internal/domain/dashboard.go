package domain

import (
	"github.com/shopspring/decimal"
)

type Quadrant string

const (
	QuadrantQ1 Quadrant = "Q1"
	QuadrantQ2 Quadrant = "Q2"
	QuadrantQ3 Quadrant = "Q3"
	QuadrantQ4 Quadrant = "Q4"
)

type QuadrantClient struct {
	ClientID   string          `json:"client_id"`
	ClientName string          `json:"client_name"`
	RevenueYTD decimal.Decimal `json:"revenue_ytd"`
	NetTotal   decimal.Decimal `json:"net_total"`
	Quadrant   Quadrant        `json:"quadrant"`
}

type QuadrantBreakdown struct {
	MedianRevenue decimal.Decimal               `json:"median_revenue"`
	MedianNet     decimal.Decimal               `json:"median_net"`
	Clients       map[Quadrant][]QuadrantClient `json:"clients"`
	Counts        map[Quadrant]int              `json:"counts"`
}

type Penetration struct {
	Month           string          `json:"month"`
	CampaignClients int             `json:"campaign_clients"`
	BaseClients     int             `json:"base_clients"`
	Percent         decimal.Decimal `json:"percent"`
}

// DashboardMetrics reúne os indicadores do mês corrente do assessor
type DashboardMetrics struct {
	Month                   string            `json:"month"`
	ActiveRevenue           decimal.Decimal   `json:"active_revenue"`
	RecurringMonth          string            `json:"recurring_month"`
	RecurringAdvisorRevenue decimal.Decimal   `json:"recurring_advisor_revenue"`
	RecurringOfficeRevenue  decimal.Decimal   `json:"recurring_office_revenue"`
	OfficeRevenueMonth      decimal.Decimal   `json:"office_revenue_month"`
	AdvisorRevenueMonth     decimal.Decimal   `json:"advisor_revenue_month"`
	BonusRevenue            decimal.Decimal   `json:"bonus_revenue"`
	WeightedAvgSplit        decimal.Decimal   `json:"weighted_avg_split"`
	TotalNet                decimal.Decimal   `json:"total_net"`
	ROA                     decimal.Decimal   `json:"roa"`
	Quadrants               QuadrantBreakdown `json:"quadrants"`
	Penetration             Penetration       `json:"penetration"`
}

// Dashboard é a tela principal: métricas, funil e progresso da meta mensal
type Dashboard struct {
	Metrics             *DashboardMetrics                    `json:"metrics"`
	TotalsByStatus      map[AllocationStatus]decimal.Decimal `json:"totals_by_status"`
	RevenueByStatus     map[AllocationStatus]decimal.Decimal `json:"revenue_by_status"`
	TotalsBySegment     map[ClientSegment]decimal.Decimal    `json:"totals_by_segment"`
	TotalOfficeRevenue  decimal.Decimal                      `json:"total_office_revenue"`
	TotalAdvisorRevenue decimal.Decimal                      `json:"total_advisor_revenue"`
	TopProducts         []ProductRevenue                     `json:"top_products"`
	MonthlyTarget       decimal.Decimal                      `json:"monthly_target"`
	RealizedRevenue     decimal.Decimal                      `json:"realized_revenue"`
	ProgressPct         decimal.Decimal                      `json:"progress_pct"`
	Gap                 decimal.Decimal                      `json:"gap"`
}
