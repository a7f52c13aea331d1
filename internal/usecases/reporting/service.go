// Package reporting expõe as leituras do painel: listas, funil de alocações,
// métricas do mês e simulação de metas, todas memorizadas por tenant.
//
// As leituras nunca falham para o chamador. Falhas de acesso a dados (já
// registradas no gateway) ou ausência de tenant resultam em listas vazias e
// valores zerados, que não são gravados em cache.
package reporting

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/advisorhub/revenue-engine/infrastructure/repository"
	"github.com/advisorhub/revenue-engine/internal/config"
	"github.com/advisorhub/revenue-engine/internal/domain"
	"github.com/advisorhub/revenue-engine/internal/usecases/aggregating"
	"github.com/advisorhub/revenue-engine/internal/usecases/caching"
	"github.com/advisorhub/revenue-engine/internal/usecases/dashboarding"
	"github.com/advisorhub/revenue-engine/internal/usecases/simulating"
	"github.com/advisorhub/revenue-engine/pkg/utils"
)

const defaultTopProducts = 5

type Reporter interface {
	ListClients(ctx context.Context) []*domain.Client
	ListProducts(ctx context.Context) []*domain.Product
	RevenueSummary(ctx context.Context, clientID string) *domain.RevenueSummary
	DashboardMetrics(ctx context.Context) *domain.DashboardMetrics
	Dashboard(ctx context.Context) *domain.Dashboard
	GoalSimulation(ctx context.Context, month string) *domain.GoalSimulation
	MonthlyGoal(ctx context.Context, month string) *domain.MonthlyGoal
	ClassGoals(ctx context.Context, month string) []*domain.ClassGoal
	ListBonuses(ctx context.Context, month string) []*domain.Bonus
	RecurringCategories(ctx context.Context) domain.RecurringCategories
	AvailableRecurringCategories(ctx context.Context) []string
}

// Repositories agrupa as dependências de leitura
type Repositories struct {
	Clients      repository.ClientRepository
	Products     repository.ProductRepository
	Allocations  repository.AllocationRepository
	Goals        repository.GoalRepository
	Bonuses      repository.BonusRepository
	RevenueItems repository.RevenueItemRepository
	Preferences  repository.PreferenceRepository
}

type Service struct {
	repos       Repositories
	cache       *caching.Service
	topProducts int
	now         func() time.Time
}

func NewService(repos Repositories, cache *caching.Service, cfg *config.Config) *Service {
	topProducts := defaultTopProducts
	if cfg != nil && cfg.Dashboard.TopProducts > 0 {
		topProducts = cfg.Dashboard.TopProducts
	}

	return &Service{
		repos:       repos,
		cache:       cache,
		topProducts: topProducts,
		now:         time.Now,
	}
}

// WithClock troca o relógio usado para determinar o mês corrente
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

func (s *Service) ListClients(ctx context.Context) []*domain.Client {
	clients, _ := s.clients(ctx)
	if clients == nil {
		return []*domain.Client{}
	}
	return clients
}

func (s *Service) ListProducts(ctx context.Context) []*domain.Product {
	products, _ := s.products(ctx)
	if products == nil {
		return []*domain.Product{}
	}
	return products
}

// RevenueSummary agrega as alocações do tenant; clientID restringe a um cliente
func (s *Service) RevenueSummary(ctx context.Context, clientID string) *domain.RevenueSummary {
	summary, _ := s.summary(ctx, clientID)
	return summary
}

func (s *Service) DashboardMetrics(ctx context.Context) *domain.DashboardMetrics {
	metrics, _ := s.metrics(ctx, s.now())
	return metrics
}

// Dashboard combina funil, métricas do mês e progresso da meta mensal
func (s *Service) Dashboard(ctx context.Context) *domain.Dashboard {
	now := s.now()

	dashboard, _ := caching.Remember(ctx, s.cache, caching.DashboardData, func(ctx context.Context) (*domain.Dashboard, error) {
		summary, summaryErr := s.summary(ctx, "")
		metrics, metricsErr := s.metrics(ctx, now)
		goal, goalErr := s.monthlyGoal(ctx, utils.MonthKey(now))

		target := decimal.Zero
		if goal != nil {
			target = goal.TargetRevenue
		}
		realized := metrics.OfficeRevenueMonth.Add(metrics.BonusRevenue)

		return &domain.Dashboard{
			Metrics:             metrics,
			TotalsByStatus:      summary.TotalsByStatus,
			RevenueByStatus:     summary.RevenueByStatus,
			TotalsBySegment:     summary.TotalsBySegment,
			TotalOfficeRevenue:  summary.TotalOfficeRevenue,
			TotalAdvisorRevenue: summary.TotalAdvisorRevenue,
			TopProducts:         aggregating.TopProducts(summary, s.topProducts),
			MonthlyTarget:       target,
			RealizedRevenue:     realized,
			ProgressPct:         utils.Percent(realized, target),
			Gap:                 utils.NonNegative(target.Sub(realized)),
		}, errors.Join(summaryErr, metricsErr, goalErr)
	}, caching.Month("month", now))

	return dashboard
}

// GoalSimulation projeta o mês informado (YYYY-MM); vazio ou inválido usa o mês corrente
func (s *Service) GoalSimulation(ctx context.Context, month string) *domain.GoalSimulation {
	ref := s.monthTime(month)
	month = utils.MonthKey(ref)

	simulation, _ := caching.Remember(ctx, s.cache, caching.GoalsData, func(ctx context.Context) (*domain.GoalSimulation, error) {
		goals, goalsErr := s.repos.Goals.ListClassGoals(ctx, month)
		products, productsErr := s.products(ctx)
		summary, summaryErr := s.summary(ctx, "")
		metrics, metricsErr := s.metrics(ctx, ref)

		result := simulating.Simulate(simulating.Input{
			Month:              month,
			ClassGoals:         goals,
			Products:           products,
			ConfirmedByProduct: summary.ConfirmedAmountByProduct,
			ActiveRevenue:      metrics.ActiveRevenue,
			RecurringRevenue:   metrics.RecurringOfficeRevenue,
			BonusRevenue:       metrics.BonusRevenue,
		})

		return result, errors.Join(goalsErr, productsErr, summaryErr, metricsErr)
	}, caching.String("view", "simulation"), caching.String("month", month))

	return simulation
}

func (s *Service) MonthlyGoal(ctx context.Context, month string) *domain.MonthlyGoal {
	month = utils.MonthKey(s.monthTime(month))

	goal, _ := s.monthlyGoal(ctx, month)
	if goal == nil {
		return &domain.MonthlyGoal{Month: month, TargetRevenue: decimal.Zero}
	}
	return goal
}

func (s *Service) ClassGoals(ctx context.Context, month string) []*domain.ClassGoal {
	month = utils.MonthKey(s.monthTime(month))

	goals, _ := caching.Remember(ctx, s.cache, caching.GoalsData, func(ctx context.Context) ([]*domain.ClassGoal, error) {
		return s.repos.Goals.ListClassGoals(ctx, month)
	}, caching.String("view", "class_goals"), caching.String("month", month))

	if goals == nil {
		return []*domain.ClassGoal{}
	}
	return goals
}

// ListBonuses lista os bônus do mês; month vazio lista todos
func (s *Service) ListBonuses(ctx context.Context, month string) []*domain.Bonus {
	month = utils.NormalizeMonth(month)

	bonuses, _ := caching.Remember(ctx, s.cache, caching.GoalsData, func(ctx context.Context) ([]*domain.Bonus, error) {
		return s.repos.Bonuses.ListBonuses(ctx, month)
	}, caching.String("view", "bonuses"), caching.String("month", month))

	if bonuses == nil {
		return []*domain.Bonus{}
	}
	return bonuses
}

func (s *Service) RecurringCategories(ctx context.Context) domain.RecurringCategories {
	categories, _ := s.recurringCategories(ctx)
	if categories.Categories == nil {
		categories.Categories = []string{}
	}
	return categories
}

// AvailableRecurringCategories lista os produtos distintos presentes nos itens importados
func (s *Service) AvailableRecurringCategories(ctx context.Context) []string {
	available, _ := caching.Remember(ctx, s.cache, caching.UserMetadata, func(ctx context.Context) ([]string, error) {
		items, err := s.repos.RevenueItems.ListRevenueItems(ctx)
		return distinctProducts(items), err
	}, caching.String("view", "available_categories"))

	if available == nil {
		return []string{}
	}
	return available
}

func (s *Service) clients(ctx context.Context) ([]*domain.Client, error) {
	return caching.Remember(ctx, s.cache, caching.ClientsList, s.repos.Clients.ListClients)
}

func (s *Service) products(ctx context.Context) ([]*domain.Product, error) {
	return caching.Remember(ctx, s.cache, caching.ProductsList, s.repos.Products.ListProducts)
}

func (s *Service) summary(ctx context.Context, clientID string) (*domain.RevenueSummary, error) {
	var params []caching.Param
	if clientID != "" {
		params = append(params, caching.String("client_id", clientID))
	}

	return caching.Remember(ctx, s.cache, caching.RevenueCalc, func(ctx context.Context) (*domain.RevenueSummary, error) {
		allocations, allocationsErr := s.repos.Allocations.ListAllocations(ctx, clientID)
		clients, clientsErr := s.clients(ctx)
		products, productsErr := s.products(ctx)

		return aggregating.Aggregate(allocations, clients, products), errors.Join(allocationsErr, clientsErr, productsErr)
	}, params...)
}

func (s *Service) metrics(ctx context.Context, ref time.Time) (*domain.DashboardMetrics, error) {
	return caching.Remember(ctx, s.cache, caching.DashboardMetrics, func(ctx context.Context) (*domain.DashboardMetrics, error) {
		clients, clientsErr := s.clients(ctx)
		products, productsErr := s.products(ctx)
		allocations, allocationsErr := s.repos.Allocations.ListAllocations(ctx, "")
		items, itemsErr := s.repos.RevenueItems.ListRevenueItems(ctx)
		categories, categoriesErr := s.recurringCategories(ctx)
		bonuses, bonusesErr := s.repos.Bonuses.ListBonuses(ctx, utils.MonthKey(ref))

		metrics := dashboarding.Compute(dashboarding.Input{
			Now:                 ref,
			Clients:             clients,
			Products:            products,
			Allocations:         allocations,
			RevenueItems:        items,
			RecurringCategories: categories,
			Bonuses:             bonuses,
		})

		return metrics, errors.Join(clientsErr, productsErr, allocationsErr, itemsErr, categoriesErr, bonusesErr)
	}, caching.Month("month", ref))
}

func (s *Service) monthlyGoal(ctx context.Context, month string) (*domain.MonthlyGoal, error) {
	return caching.Remember(ctx, s.cache, caching.GoalsData, func(ctx context.Context) (*domain.MonthlyGoal, error) {
		return s.repos.Goals.GetMonthlyGoal(ctx, month)
	}, caching.String("view", "monthly_goal"), caching.String("month", month))
}

func (s *Service) recurringCategories(ctx context.Context) (domain.RecurringCategories, error) {
	return caching.Remember(ctx, s.cache, caching.UserMetadata, s.repos.Preferences.GetRecurringCategories,
		caching.String("view", "recurring_categories"))
}

// monthTime devolve o primeiro instante do mês informado, ou o agora para mês vazio,
// inválido ou igual ao corrente
func (s *Service) monthTime(month string) time.Time {
	now := s.now()
	month = utils.NormalizeMonth(month)
	if month == "" || month == utils.MonthKey(now) {
		return now
	}

	t, err := time.ParseInLocation(utils.MonthLayout, month, now.Location())
	if err != nil {
		return now
	}
	return t
}

func distinctProducts(items []*domain.RevenueLineItem) []string {
	seen := make(map[string]bool)
	products := make([]string, 0)

	for _, item := range items {
		if item == nil || item.Product == "" {
			continue
		}
		key := utils.NormalizeText(item.Product)
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		products = append(products, item.Product)
	}

	sort.Slice(products, func(i, j int) bool {
		return utils.NormalizeText(products[i]) < utils.NormalizeText(products[j])
	})
	return products
}
