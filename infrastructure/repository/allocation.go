package repository

import (
	"context"
	"fmt"

	"github.com/advisorhub/revenue-engine/infrastructure/gateway"
	"github.com/advisorhub/revenue-engine/internal/domain"
)

var allocationColumns = []string{
	"id",
	"client_id",
	"product_id",
	"COALESCE(amount, 0)",
	"COALESCE(percentual, 0)",
	"status",
	"created_at",
	"updated_at",
}

type allocationRepository struct {
	gw *gateway.Gateway
}

func NewAllocationRepository(gw *gateway.Gateway) AllocationRepository {
	return &allocationRepository{
		gw: gw,
	}
}

func (r *allocationRepository) ListAllocations(ctx context.Context, clientID string) ([]*domain.Allocation, error) {
	allocations := make([]*domain.Allocation, 0)

	query := r.gw.Scoped(ctx, allocationsTable).Select(allocationColumns...)
	if clientID != "" {
		query = query.Eq("client_id", clientID)
	}

	err := query.
		Order("created_at", false).
		Order("id", false).
		FetchAll(ctx, func(row gateway.RowScanner) error {
			allocation, err := scanAllocation(row)
			if err != nil {
				return err
			}
			allocations = append(allocations, allocation)
			return nil
		})
	if err != nil {
		return nil, fmt.Errorf("erro ao listar alocações: %w", err)
	}

	return allocations, nil
}

func (r *allocationRepository) GetAllocation(ctx context.Context, allocationID string) (*domain.Allocation, error) {
	var allocation *domain.Allocation

	found, err := r.gw.Scoped(ctx, allocationsTable).
		Select(allocationColumns...).
		Eq("id", allocationID).
		First(ctx, func(row gateway.RowScanner) error {
			var err error
			allocation, err = scanAllocation(row)
			return err
		})
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar alocação %s: %w", allocationID, err)
	}
	if !found {
		return nil, nil
	}

	return allocation, nil
}

func (r *allocationRepository) CreateAllocation(ctx context.Context, allocation *domain.Allocation) error {
	tenantID, err := tenantFrom(ctx)
	if err != nil {
		return err
	}

	_, err = r.gw.Insert(allocationsTable,
		"id", gateway.TenantColumn, "client_id", "product_id", "amount", "percentual", "status", "created_at", "updated_at",
	).Values(
		allocation.ID, tenantID, allocation.ClientID, allocation.ProductID, allocation.Amount,
		allocation.Percentual, string(allocation.Status), allocation.CreatedAt, allocation.UpdatedAt,
	).Exec(ctx)
	if err != nil {
		return fmt.Errorf("erro ao criar alocação: %w", err)
	}

	allocation.TenantID = tenantID
	return nil
}

func (r *allocationRepository) UpdateAllocation(ctx context.Context, allocation *domain.Allocation) error {
	err := r.gw.ScopedUpdate(ctx, allocationsTable).
		Set("amount", allocation.Amount).
		Set("percentual", allocation.Percentual).
		Set("status", string(allocation.Status)).
		Set("updated_at", allocation.UpdatedAt).
		Eq("id", allocation.ID).
		ExecOne(ctx)
	if err != nil {
		return fmt.Errorf("erro ao atualizar alocação %s: %w", allocation.ID, err)
	}

	return nil
}

func (r *allocationRepository) DeleteAllocation(ctx context.Context, allocationID string) error {
	err := r.gw.ScopedDelete(ctx, allocationsTable).Eq("id", allocationID).ExecOne(ctx)
	if err != nil {
		return fmt.Errorf("erro ao remover alocação %s: %w", allocationID, err)
	}

	return nil
}

func scanAllocation(row gateway.RowScanner) (*domain.Allocation, error) {
	allocation := &domain.Allocation{}
	var status string

	if err := row.Scan(
		&allocation.ID,
		&allocation.ClientID,
		&allocation.ProductID,
		&allocation.Amount,
		&allocation.Percentual,
		&status,
		&allocation.CreatedAt,
		&allocation.UpdatedAt,
	); err != nil {
		return nil, err
	}

	allocation.Status = domain.ParseAllocationStatus(status)
	return allocation, nil
}
