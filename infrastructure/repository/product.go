package repository

import (
	"context"
	"fmt"

	"github.com/advisorhub/revenue-engine/infrastructure/gateway"
	"github.com/advisorhub/revenue-engine/internal/domain"
	"github.com/advisorhub/revenue-engine/pkg/utils"
)

var productColumns = []string{
	"id",
	"name",
	"class",
	"COALESCE(roa_pct, 0)",
	"in_campaign",
	"COALESCE(campaign_month, '')",
	"created_at",
	"updated_at",
}

type productRepository struct {
	gw *gateway.Gateway
}

func NewProductRepository(gw *gateway.Gateway) ProductRepository {
	return &productRepository{
		gw: gw,
	}
}

func (r *productRepository) ListProducts(ctx context.Context) ([]*domain.Product, error) {
	products := make([]*domain.Product, 0)

	err := r.gw.Scoped(ctx, productsTable).
		Select(productColumns...).
		Order("class", false).
		Order("name", false).
		FetchAll(ctx, func(row gateway.RowScanner) error {
			product, err := scanProduct(row)
			if err != nil {
				return err
			}
			products = append(products, product)
			return nil
		})
	if err != nil {
		return nil, fmt.Errorf("erro ao listar produtos: %w", err)
	}

	return products, nil
}

func (r *productRepository) GetProduct(ctx context.Context, productID string) (*domain.Product, error) {
	var product *domain.Product

	found, err := r.gw.Scoped(ctx, productsTable).
		Select(productColumns...).
		Eq("id", productID).
		First(ctx, func(row gateway.RowScanner) error {
			var err error
			product, err = scanProduct(row)
			return err
		})
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar produto %s: %w", productID, err)
	}
	if !found {
		return nil, nil
	}

	return product, nil
}

func (r *productRepository) CreateProduct(ctx context.Context, product *domain.Product) error {
	tenantID, err := tenantFrom(ctx)
	if err != nil {
		return err
	}

	_, err = r.gw.Insert(productsTable,
		"id", gateway.TenantColumn, "name", "class", "roa_pct", "in_campaign", "campaign_month", "created_at", "updated_at",
	).Values(
		product.ID, tenantID, product.Name, product.Class, product.ROAPct, product.InCampaign, product.CampaignMonth, product.CreatedAt, product.UpdatedAt,
	).Exec(ctx)
	if err != nil {
		return fmt.Errorf("erro ao criar produto: %w", err)
	}

	product.TenantID = tenantID
	return nil
}

func (r *productRepository) UpdateProduct(ctx context.Context, product *domain.Product) error {
	err := r.gw.ScopedUpdate(ctx, productsTable).
		Set("name", product.Name).
		Set("class", product.Class).
		Set("roa_pct", product.ROAPct).
		Set("in_campaign", product.InCampaign).
		Set("campaign_month", product.CampaignMonth).
		Set("updated_at", product.UpdatedAt).
		Eq("id", product.ID).
		ExecOne(ctx)
	if err != nil {
		return fmt.Errorf("erro ao atualizar produto %s: %w", product.ID, err)
	}

	return nil
}

func (r *productRepository) DeleteProduct(ctx context.Context, productID string) error {
	err := r.gw.ScopedDelete(ctx, productsTable).Eq("id", productID).ExecOne(ctx)
	if err != nil {
		return fmt.Errorf("erro ao remover produto %s: %w", productID, err)
	}

	return nil
}

func scanProduct(row gateway.RowScanner) (*domain.Product, error) {
	product := &domain.Product{}

	if err := row.Scan(
		&product.ID,
		&product.Name,
		&product.Class,
		&product.ROAPct,
		&product.InCampaign,
		&product.CampaignMonth,
		&product.CreatedAt,
		&product.UpdatedAt,
	); err != nil {
		return nil, err
	}

	product.ROAPct = utils.NonNegative(product.ROAPct)
	return product, nil
}
