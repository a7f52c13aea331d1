package repository

import (
	"context"
	"fmt"

	"github.com/advisorhub/revenue-engine/infrastructure/gateway"
	"github.com/advisorhub/revenue-engine/internal/domain"
)

var clientColumns = []string{
	"id",
	"code",
	"name",
	"model",
	"repasse",
	"COALESCE(net_total, 0)",
	"COALESCE(net_xp, 0)",
	"COALESCE(net_xp_global, 0)",
	"COALESCE(net_mb, 0)",
	"created_at",
	"updated_at",
}

type clientRepository struct {
	gw *gateway.Gateway
}

func NewClientRepository(gw *gateway.Gateway) ClientRepository {
	return &clientRepository{
		gw: gw,
	}
}

func (r *clientRepository) ListClients(ctx context.Context) ([]*domain.Client, error) {
	clients := make([]*domain.Client, 0)

	err := r.gw.Scoped(ctx, clientsTable).
		Select(clientColumns...).
		Order("name", false).
		FetchAll(ctx, func(row gateway.RowScanner) error {
			client, err := scanClient(row)
			if err != nil {
				return err
			}
			clients = append(clients, client)
			return nil
		})
	if err != nil {
		return nil, fmt.Errorf("erro ao listar clientes: %w", err)
	}

	return clients, nil
}

func (r *clientRepository) GetClient(ctx context.Context, clientID string) (*domain.Client, error) {
	var client *domain.Client

	found, err := r.gw.Scoped(ctx, clientsTable).
		Select(clientColumns...).
		Eq("id", clientID).
		First(ctx, func(row gateway.RowScanner) error {
			var err error
			client, err = scanClient(row)
			return err
		})
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar cliente %s: %w", clientID, err)
	}
	if !found {
		return nil, nil
	}

	return client, nil
}

func (r *clientRepository) CreateClient(ctx context.Context, client *domain.Client) error {
	tenantID, err := tenantFrom(ctx)
	if err != nil {
		return err
	}

	_, err = r.gw.Insert(clientsTable,
		"id", gateway.TenantColumn, "code", "name", "model", "repasse",
		"net_total", "net_xp", "net_xp_global", "net_mb", "created_at", "updated_at",
	).Values(
		client.ID, tenantID, client.Code, client.Name, string(client.Model), client.Repasse,
		client.NetTotal, client.NetXP, client.NetXPGlobal, client.NetMB, client.CreatedAt, client.UpdatedAt,
	).Exec(ctx)
	if err != nil {
		return fmt.Errorf("erro ao criar cliente: %w", err)
	}

	client.TenantID = tenantID
	return nil
}

func (r *clientRepository) UpdateClient(ctx context.Context, client *domain.Client) error {
	err := r.gw.ScopedUpdate(ctx, clientsTable).
		Set("code", client.Code).
		Set("name", client.Name).
		Set("model", string(client.Model)).
		Set("repasse", client.Repasse).
		Set("net_total", client.NetTotal).
		Set("net_xp", client.NetXP).
		Set("net_xp_global", client.NetXPGlobal).
		Set("net_mb", client.NetMB).
		Set("updated_at", client.UpdatedAt).
		Eq("id", client.ID).
		ExecOne(ctx)
	if err != nil {
		return fmt.Errorf("erro ao atualizar cliente %s: %w", client.ID, err)
	}

	return nil
}

func (r *clientRepository) DeleteClient(ctx context.Context, clientID string) error {
	err := r.gw.ScopedDelete(ctx, clientsTable).Eq("id", clientID).ExecOne(ctx)
	if err != nil {
		return fmt.Errorf("erro ao remover cliente %s: %w", clientID, err)
	}

	return nil
}

func scanClient(row gateway.RowScanner) (*domain.Client, error) {
	client := &domain.Client{}
	var model string

	if err := row.Scan(
		&client.ID,
		&client.Code,
		&client.Name,
		&model,
		&client.Repasse,
		&client.NetTotal,
		&client.NetXP,
		&client.NetXPGlobal,
		&client.NetMB,
		&client.CreatedAt,
		&client.UpdatedAt,
	); err != nil {
		return nil, err
	}

	client.Model = domain.NormalizeClientModel(model)
	client.Repasse = domain.NormalizeRepasse(client.Repasse)
	return client, nil
}
