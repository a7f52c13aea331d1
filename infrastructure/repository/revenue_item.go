package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/advisorhub/revenue-engine/infrastructure/database/postgres"
	"github.com/advisorhub/revenue-engine/infrastructure/gateway"
	"github.com/advisorhub/revenue-engine/internal/domain"
)

// revenueItemsBatchSize limita as linhas por INSERT na importação
const revenueItemsBatchSize = 500

type revenueItemRepository struct {
	gw *gateway.Gateway
	tx postgres.Transactor
}

// NewRevenueItemRepository cria o repositório; com tx informado a substituição
// do mês roda em uma única transação
func NewRevenueItemRepository(gw *gateway.Gateway, tx postgres.Transactor) RevenueItemRepository {
	return &revenueItemRepository{
		gw: gw,
		tx: tx,
	}
}

func (r *revenueItemRepository) ListRevenueItems(ctx context.Context) ([]*domain.RevenueLineItem, error) {
	items := make([]*domain.RevenueLineItem, 0)

	err := r.gw.Scoped(ctx, revenueItemsTable).
		Select(
			"id",
			"month",
			"COALESCE(client_code, '')",
			"COALESCE(product, '')",
			"COALESCE(family, '')",
			"COALESCE(gross, 0)",
			"COALESCE(net_to_advisor_value, 0)",
			"COALESCE(office_commission, 0)",
			"created_at",
		).
		Order("month", true).
		Order("id", false).
		FetchAll(ctx, func(row gateway.RowScanner) error {
			item := &domain.RevenueLineItem{}
			if err := row.Scan(
				&item.ID,
				&item.Month,
				&item.ClientCode,
				&item.Product,
				&item.Family,
				&item.Gross,
				&item.NetToAdvisorValue,
				&item.OfficeCommission,
				&item.CreatedAt,
			); err != nil {
				return err
			}
			items = append(items, item)
			return nil
		})
	if err != nil {
		return nil, fmt.Errorf("erro ao listar itens de receita: %w", err)
	}

	return items, nil
}

func (r *revenueItemRepository) ReplaceMonth(ctx context.Context, month string, items []*domain.RevenueLineItem) error {
	tenantID, err := tenantFrom(ctx)
	if err != nil {
		return err
	}

	if r.tx == nil {
		return replaceMonth(ctx, r.gw, tenantID, month, items)
	}

	return r.tx.RunInTransaction(ctx, func(tx *sql.Tx) error {
		return replaceMonth(ctx, r.gw.WithQueryer(tx), tenantID, month, items)
	})
}

// replaceMonth remove o mês e insere os itens em lotes. Sem transação, uma falha
// no meio deixa o mês parcialmente importado até a próxima importação.
func replaceMonth(ctx context.Context, gw *gateway.Gateway, tenantID, month string, items []*domain.RevenueLineItem) error {
	if _, err := gw.ScopedDelete(ctx, revenueItemsTable).Eq("month", month).Exec(ctx); err != nil {
		return fmt.Errorf("erro ao limpar itens de receita de %s: %w", month, err)
	}

	for start := 0; start < len(items); start += revenueItemsBatchSize {
		end := start + revenueItemsBatchSize
		if end > len(items) {
			end = len(items)
		}

		insert := gw.Insert(revenueItemsTable,
			"id", gateway.TenantColumn, "month", "client_code", "product", "family",
			"gross", "net_to_advisor_value", "office_commission", "created_at",
		)
		for _, item := range items[start:end] {
			insert = insert.Values(
				item.ID, tenantID, month, item.ClientCode, item.Product, item.Family,
				item.Gross, item.NetToAdvisorValue, item.OfficeCommission, item.CreatedAt,
			)
			item.TenantID = tenantID
			item.Month = month
		}

		if _, err := insert.Exec(ctx); err != nil {
			return fmt.Errorf("erro ao importar itens de receita de %s: %w", month, err)
		}
	}

	return nil
}
