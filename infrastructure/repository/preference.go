package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/lib/pq"

	"github.com/advisorhub/revenue-engine/infrastructure/gateway"
	"github.com/advisorhub/revenue-engine/internal/domain"
)

type preferenceRepository struct {
	gw *gateway.Gateway
}

func NewPreferenceRepository(gw *gateway.Gateway) PreferenceRepository {
	return &preferenceRepository{
		gw: gw,
	}
}

// GetRecurringCategories devolve Configured=false quando o tenant nunca salvou a preferência
func (r *preferenceRepository) GetRecurringCategories(ctx context.Context) (domain.RecurringCategories, error) {
	var categories pq.StringArray

	found, err := r.gw.Scoped(ctx, preferencesTable).
		Select("recurring_categories").
		First(ctx, func(row gateway.RowScanner) error {
			return row.Scan(&categories)
		})
	if err != nil {
		return domain.RecurringCategories{}, fmt.Errorf("erro ao buscar categorias recorrentes: %w", err)
	}

	// NULL na coluna equivale a preferência não definida
	if !found || categories == nil {
		return domain.RecurringCategories{}, nil
	}

	return domain.RecurringCategories{
		Configured: true,
		Categories: []string(categories),
	}, nil
}

func (r *preferenceRepository) SetRecurringCategories(ctx context.Context, categories []string) error {
	tenantID, err := tenantFrom(ctx)
	if err != nil {
		return err
	}

	if categories == nil {
		categories = []string{}
	}

	_, err = r.gw.Insert(preferencesTable, gateway.TenantColumn, "recurring_categories", "updated_at").
		Values(tenantID, pq.StringArray(categories), time.Now().UTC()).
		OnConflict([]string{gateway.TenantColumn}, "recurring_categories", "updated_at").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("erro ao salvar categorias recorrentes: %w", err)
	}

	return nil
}
