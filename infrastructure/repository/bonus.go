package repository

import (
	"context"
	"fmt"

	"github.com/advisorhub/revenue-engine/infrastructure/gateway"
	"github.com/advisorhub/revenue-engine/internal/domain"
)

type bonusRepository struct {
	gw *gateway.Gateway
}

func NewBonusRepository(gw *gateway.Gateway) BonusRepository {
	return &bonusRepository{
		gw: gw,
	}
}

func (r *bonusRepository) ListBonuses(ctx context.Context, month string) ([]*domain.Bonus, error) {
	bonuses := make([]*domain.Bonus, 0)

	query := r.gw.Scoped(ctx, bonusesTable).
		Select("id", "month", "COALESCE(description, '')", "COALESCE(amount, 0)", "net_to_advisor", "active", "created_at")
	if month != "" {
		query = query.Eq("month", month)
	}

	err := query.
		Order("created_at", false).
		FetchAll(ctx, func(row gateway.RowScanner) error {
			bonus := &domain.Bonus{}
			if err := row.Scan(
				&bonus.ID,
				&bonus.Month,
				&bonus.Description,
				&bonus.Amount,
				&bonus.NetToAdvisor,
				&bonus.Active,
				&bonus.CreatedAt,
			); err != nil {
				return err
			}
			bonuses = append(bonuses, bonus)
			return nil
		})
	if err != nil {
		return nil, fmt.Errorf("erro ao listar bônus: %w", err)
	}

	return bonuses, nil
}

func (r *bonusRepository) CreateBonus(ctx context.Context, bonus *domain.Bonus) error {
	tenantID, err := tenantFrom(ctx)
	if err != nil {
		return err
	}

	_, err = r.gw.Insert(bonusesTable,
		"id", gateway.TenantColumn, "month", "description", "amount", "net_to_advisor", "active", "created_at",
	).Values(
		bonus.ID, tenantID, bonus.Month, bonus.Description, bonus.Amount, bonus.NetToAdvisor, bonus.Active, bonus.CreatedAt,
	).Exec(ctx)
	if err != nil {
		return fmt.Errorf("erro ao criar bônus: %w", err)
	}

	bonus.TenantID = tenantID
	return nil
}

func (r *bonusRepository) DeleteBonus(ctx context.Context, bonusID string) error {
	err := r.gw.ScopedDelete(ctx, bonusesTable).Eq("id", bonusID).ExecOne(ctx)
	if err != nil {
		return fmt.Errorf("erro ao remover bônus %s: %w", bonusID, err)
	}

	return nil
}
