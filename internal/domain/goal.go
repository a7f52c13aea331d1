package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type MonthlyGoal struct {
	TenantID      string          `json:"-"`
	Month         string          `json:"month"`
	TargetRevenue decimal.Decimal `json:"target_revenue"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

type ClassGoal struct {
	TenantID      string          `json:"-"`
	Month         string          `json:"month"`
	ProductClass  string          `json:"product_class"`
	TargetRevenue decimal.Decimal `json:"target_revenue"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

type Bonus struct {
	ID           string          `json:"id"`
	TenantID     string          `json:"-"`
	Month        string          `json:"month"`
	Description  string          `json:"description"`
	Amount       decimal.Decimal `json:"amount"`
	NetToAdvisor bool            `json:"net_to_advisor"`
	Active       bool            `json:"active"`
	CreatedAt    time.Time       `json:"created_at"`
}

// ProductSuggestion é quanto falta aplicar em um produto para cumprir a meta da classe
type ProductSuggestion struct {
	ProductID           string          `json:"product_id"`
	ProductName         string          `json:"product_name"`
	ProductClass        string          `json:"product_class"`
	ROAPct              decimal.Decimal `json:"roa_pct"`
	ClassGoal           decimal.Decimal `json:"class_goal"`
	ProductGoal         decimal.Decimal `json:"product_goal"`
	ValueNeeded         decimal.Decimal `json:"value_needed"`
	ValueAlreadyApplied decimal.Decimal `json:"value_already_applied"`
	ValueRemaining      decimal.Decimal `json:"value_remaining"`
}

type GoalSimulation struct {
	Month            string              `json:"month"`
	Suggestions      []ProductSuggestion `json:"suggestions"`
	TotalClassGoals  decimal.Decimal     `json:"total_class_goals"`
	ActiveRevenue    decimal.Decimal     `json:"active_revenue"`
	RecurringRevenue decimal.Decimal     `json:"recurring_revenue"`
	BonusRevenue     decimal.Decimal     `json:"bonus_revenue"`
	ExpectedRevenue  decimal.Decimal     `json:"expected_revenue"`
	RealizedRevenue  decimal.Decimal     `json:"realized_revenue"`
	Gap              decimal.Decimal     `json:"gap"`
}
