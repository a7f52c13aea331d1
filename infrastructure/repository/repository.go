package repository

import (
	"context"

	"github.com/advisorhub/revenue-engine/infrastructure/database/postgres"
	"github.com/advisorhub/revenue-engine/infrastructure/gateway"
	"github.com/advisorhub/revenue-engine/internal/domain"
	"github.com/advisorhub/revenue-engine/internal/session"
)

//go:generate mockgen -source=repository.go -destination=mocks/repository.go -package=mocks

const (
	clientsTable      = "clients"
	productsTable     = "products"
	allocationsTable  = "allocations"
	monthlyGoalsTable = "monthly_goals"
	classGoalsTable   = "class_goals"
	bonusesTable      = "bonuses"
	revenueItemsTable = "revenue_line_items"
	preferencesTable  = "user_preferences"
	usersTable        = "users"
)

// TenantScopedTables são as tabelas cujas operações exigem filtro de tenant
var TenantScopedTables = []string{
	clientsTable,
	productsTable,
	allocationsTable,
	monthlyGoalsTable,
	classGoalsTable,
	bonusesTable,
	revenueItemsTable,
	preferencesTable,
}

// NewGateway cria o gateway com as tabelas de tenant registradas
func NewGateway(db postgres.Queryer) *gateway.Gateway {
	return gateway.New(db, TenantScopedTables...)
}

type ClientRepository interface {
	ListClients(ctx context.Context) ([]*domain.Client, error)
	GetClient(ctx context.Context, clientID string) (*domain.Client, error)
	CreateClient(ctx context.Context, client *domain.Client) error
	UpdateClient(ctx context.Context, client *domain.Client) error
	DeleteClient(ctx context.Context, clientID string) error
}

type ProductRepository interface {
	ListProducts(ctx context.Context) ([]*domain.Product, error)
	GetProduct(ctx context.Context, productID string) (*domain.Product, error)
	CreateProduct(ctx context.Context, product *domain.Product) error
	UpdateProduct(ctx context.Context, product *domain.Product) error
	DeleteProduct(ctx context.Context, productID string) error
}

type AllocationRepository interface {
	// ListAllocations retorna as alocações do tenant; clientID vazio retorna todas
	ListAllocations(ctx context.Context, clientID string) ([]*domain.Allocation, error)
	GetAllocation(ctx context.Context, allocationID string) (*domain.Allocation, error)
	CreateAllocation(ctx context.Context, allocation *domain.Allocation) error
	UpdateAllocation(ctx context.Context, allocation *domain.Allocation) error
	DeleteAllocation(ctx context.Context, allocationID string) error
}

type GoalRepository interface {
	GetMonthlyGoal(ctx context.Context, month string) (*domain.MonthlyGoal, error)
	UpsertMonthlyGoal(ctx context.Context, goal *domain.MonthlyGoal) error
	ListClassGoals(ctx context.Context, month string) ([]*domain.ClassGoal, error)
	UpsertClassGoal(ctx context.Context, goal *domain.ClassGoal) error
}

type BonusRepository interface {
	// ListBonuses retorna os bônus do mês; month vazio retorna todos
	ListBonuses(ctx context.Context, month string) ([]*domain.Bonus, error)
	CreateBonus(ctx context.Context, bonus *domain.Bonus) error
	DeleteBonus(ctx context.Context, bonusID string) error
}

type RevenueItemRepository interface {
	ListRevenueItems(ctx context.Context) ([]*domain.RevenueLineItem, error)
	// ReplaceMonth remove os itens do mês e insere os novos
	ReplaceMonth(ctx context.Context, month string, items []*domain.RevenueLineItem) error
}

type PreferenceRepository interface {
	GetRecurringCategories(ctx context.Context) (domain.RecurringCategories, error)
	SetRecurringCategories(ctx context.Context, categories []string) error
}

type UserRepository interface {
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
}

func tenantFrom(ctx context.Context) (string, error) {
	return session.TenantID(ctx)
}
