package repository

import (
	"context"
	"fmt"

	"github.com/advisorhub/revenue-engine/infrastructure/gateway"
	"github.com/advisorhub/revenue-engine/internal/domain"
)

type goalRepository struct {
	gw *gateway.Gateway
}

func NewGoalRepository(gw *gateway.Gateway) GoalRepository {
	return &goalRepository{
		gw: gw,
	}
}

func (r *goalRepository) GetMonthlyGoal(ctx context.Context, month string) (*domain.MonthlyGoal, error) {
	goal := &domain.MonthlyGoal{}

	found, err := r.gw.Scoped(ctx, monthlyGoalsTable).
		Select("month", "COALESCE(target_revenue, 0)", "updated_at").
		Eq("month", month).
		First(ctx, func(row gateway.RowScanner) error {
			return row.Scan(&goal.Month, &goal.TargetRevenue, &goal.UpdatedAt)
		})
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar meta mensal de %s: %w", month, err)
	}
	if !found {
		return nil, nil
	}

	return goal, nil
}

func (r *goalRepository) UpsertMonthlyGoal(ctx context.Context, goal *domain.MonthlyGoal) error {
	tenantID, err := tenantFrom(ctx)
	if err != nil {
		return err
	}

	_, err = r.gw.Insert(monthlyGoalsTable, gateway.TenantColumn, "month", "target_revenue", "updated_at").
		Values(tenantID, goal.Month, goal.TargetRevenue, goal.UpdatedAt).
		OnConflict([]string{gateway.TenantColumn, "month"}, "target_revenue", "updated_at").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("erro ao salvar meta mensal de %s: %w", goal.Month, err)
	}

	goal.TenantID = tenantID
	return nil
}

func (r *goalRepository) ListClassGoals(ctx context.Context, month string) ([]*domain.ClassGoal, error) {
	goals := make([]*domain.ClassGoal, 0)

	err := r.gw.Scoped(ctx, classGoalsTable).
		Select("month", "product_class", "COALESCE(target_revenue, 0)", "updated_at").
		Eq("month", month).
		Order("product_class", false).
		FetchAll(ctx, func(row gateway.RowScanner) error {
			goal := &domain.ClassGoal{}
			if err := row.Scan(&goal.Month, &goal.ProductClass, &goal.TargetRevenue, &goal.UpdatedAt); err != nil {
				return err
			}
			goals = append(goals, goal)
			return nil
		})
	if err != nil {
		return nil, fmt.Errorf("erro ao listar metas por classe de %s: %w", month, err)
	}

	return goals, nil
}

func (r *goalRepository) UpsertClassGoal(ctx context.Context, goal *domain.ClassGoal) error {
	tenantID, err := tenantFrom(ctx)
	if err != nil {
		return err
	}

	_, err = r.gw.Insert(classGoalsTable, gateway.TenantColumn, "month", "product_class", "target_revenue", "updated_at").
		Values(tenantID, goal.Month, goal.ProductClass, goal.TargetRevenue, goal.UpdatedAt).
		OnConflict([]string{gateway.TenantColumn, "month", "product_class"}, "target_revenue", "updated_at").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("erro ao salvar meta da classe %s: %w", goal.ProductClass, err)
	}

	goal.TenantID = tenantID
	return nil
}
