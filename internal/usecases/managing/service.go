// Package managing aplica as alterações feitas pelo assessor e invalida, antes de
// responder, os resultados em cache derivados das entidades alteradas.
package managing

import (
	"context"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/advisorhub/revenue-engine/infrastructure/repository"
	"github.com/advisorhub/revenue-engine/internal/domain"
	"github.com/advisorhub/revenue-engine/internal/usecases/caching"
	"github.com/advisorhub/revenue-engine/pkg/apiErrors"
	"github.com/advisorhub/revenue-engine/pkg/utils"
)

type Manager interface {
	CreateClient(ctx context.Context, client *domain.Client) (*domain.Client, error)
	UpdateClient(ctx context.Context, clientID string, request *domain.UpdateClientRequest) (*domain.Client, error)
	DeleteClient(ctx context.Context, clientID string) error

	CreateProduct(ctx context.Context, product *domain.Product) (*domain.Product, error)
	UpdateProduct(ctx context.Context, productID string, request *domain.UpdateProductRequest) (*domain.Product, error)
	DeleteProduct(ctx context.Context, productID string) error

	CreateAllocation(ctx context.Context, request *domain.CreateAllocationRequest) (*domain.Allocation, error)
	UpdateAllocation(ctx context.Context, allocationID string, request *domain.UpdateAllocationRequest) (*domain.Allocation, error)
	ConfirmAllocation(ctx context.Context, allocationID string) (*domain.Allocation, error)
	DeleteAllocation(ctx context.Context, allocationID string) error

	SetMonthlyGoal(ctx context.Context, month string, target decimal.Decimal) (*domain.MonthlyGoal, error)
	SetClassGoal(ctx context.Context, month, productClass string, target decimal.Decimal) (*domain.ClassGoal, error)
	CreateBonus(ctx context.Context, bonus *domain.Bonus) (*domain.Bonus, error)
	DeleteBonus(ctx context.Context, bonusID string) error

	ImportRevenueItems(ctx context.Context, month string, items []*domain.RevenueLineItem) (int, error)
	SetRecurringCategories(ctx context.Context, categories []string) (domain.RecurringCategories, error)
}

// Repositories agrupa as dependências de escrita
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
	coordinator *caching.Coordinator
	now         func() time.Time
	generateID  func() (string, error)
}

func NewService(repos Repositories, coordinator *caching.Coordinator) *Service {
	return &Service{
		repos:       repos,
		coordinator: coordinator,
		now:         func() time.Time { return time.Now().UTC() },
		generateID:  utils.GenerateID,
	}
}

// WithClock troca o relógio usado nos carimbos de data
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// invalidate é síncrono; uma falha já foi registrada pelo coordenador e não
// desfaz a escrita, o valor antigo expira pelo TTL
func (s *Service) invalidate(ctx context.Context, entities ...caching.Entity) {
	if s.coordinator == nil {
		return
	}
	_ = s.coordinator.Invalidate(ctx, entities...)
}

func (s *Service) newID() (string, error) {
	id, err := s.generateID()
	if err != nil {
		return "", NewManagementError(ErrGenerateID, apiErrors.ErrInternalServer, err.Error())
	}
	return id, nil
}

func (s *Service) CreateClient(ctx context.Context, client *domain.Client) (*domain.Client, error) {
	if client == nil || strings.TrimSpace(client.Name) == "" {
		return nil, NewManagementError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "Nome do cliente é obrigatório")
	}

	id, err := s.newID()
	if err != nil {
		return nil, err
	}

	now := s.now()
	client.ID = id
	client.Name = strings.TrimSpace(client.Name)
	client.Code = strings.TrimSpace(client.Code)
	client.Model = domain.NormalizeClientModel(string(client.Model))
	client.Repasse = domain.NormalizeRepasse(client.Repasse)
	client.CreatedAt = now
	client.UpdatedAt = now

	if err := s.repos.Clients.CreateClient(ctx, client); err != nil {
		return nil, storageError(err, nil, "")
	}

	s.invalidate(ctx, caching.EntityClients)
	return client, nil
}

func (s *Service) UpdateClient(ctx context.Context, clientID string, request *domain.UpdateClientRequest) (*domain.Client, error) {
	client, err := s.findClient(ctx, clientID)
	if err != nil {
		return nil, err
	}

	if request.Code != nil {
		client.Code = strings.TrimSpace(*request.Code)
	}
	if request.Name != nil {
		if strings.TrimSpace(*request.Name) == "" {
			return nil, NewEntityError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, clientID, "Nome do cliente é obrigatório")
		}
		client.Name = strings.TrimSpace(*request.Name)
	}
	if request.Model != nil {
		client.Model = domain.NormalizeClientModel(*request.Model)
	}
	if request.Repasse != nil {
		client.Repasse = domain.NormalizeRepasse(*request.Repasse)
	}
	if request.NetTotal != nil {
		client.NetTotal = *request.NetTotal
	}
	if request.NetXP != nil {
		client.NetXP = *request.NetXP
	}
	if request.NetXPGlobal != nil {
		client.NetXPGlobal = *request.NetXPGlobal
	}
	if request.NetMB != nil {
		client.NetMB = *request.NetMB
	}
	client.UpdatedAt = s.now()

	if err := s.repos.Clients.UpdateClient(ctx, client); err != nil {
		return nil, storageError(err, ErrClientNotFound, clientID)
	}

	s.invalidate(ctx, caching.EntityClients)
	return client, nil
}

func (s *Service) DeleteClient(ctx context.Context, clientID string) error {
	if err := s.repos.Clients.DeleteClient(ctx, clientID); err != nil {
		return storageError(err, ErrClientNotFound, clientID)
	}

	s.invalidate(ctx, caching.EntityClients, caching.EntityAllocations)
	return nil
}

func (s *Service) CreateProduct(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	if product == nil || strings.TrimSpace(product.Name) == "" || strings.TrimSpace(product.Class) == "" {
		return nil, NewManagementError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "Nome e classe do produto são obrigatórios")
	}
	if product.ROAPct.IsNegative() {
		return nil, NewManagementError(ErrInvalidAmount, apiErrors.ErrInvalidAmount, "ROA não pode ser negativo")
	}

	campaignMonth, err := optionalMonth(product.CampaignMonth)
	if err != nil {
		return nil, err
	}

	id, err := s.newID()
	if err != nil {
		return nil, err
	}

	now := s.now()
	product.ID = id
	product.Name = strings.TrimSpace(product.Name)
	product.Class = strings.TrimSpace(product.Class)
	product.CampaignMonth = campaignMonth
	product.CreatedAt = now
	product.UpdatedAt = now

	if err := s.repos.Products.CreateProduct(ctx, product); err != nil {
		return nil, storageError(err, nil, "")
	}

	s.invalidate(ctx, caching.EntityProducts)
	return product, nil
}

func (s *Service) UpdateProduct(ctx context.Context, productID string, request *domain.UpdateProductRequest) (*domain.Product, error) {
	product, err := s.findProduct(ctx, productID)
	if err != nil {
		return nil, err
	}

	if request.Name != nil && strings.TrimSpace(*request.Name) != "" {
		product.Name = strings.TrimSpace(*request.Name)
	}
	if request.Class != nil && strings.TrimSpace(*request.Class) != "" {
		product.Class = strings.TrimSpace(*request.Class)
	}
	if request.ROAPct != nil {
		if request.ROAPct.IsNegative() {
			return nil, NewEntityError(ErrInvalidAmount, apiErrors.ErrInvalidAmount, productID, "ROA não pode ser negativo")
		}
		product.ROAPct = *request.ROAPct
	}
	if request.InCampaign != nil {
		product.InCampaign = *request.InCampaign
	}
	if request.CampaignMonth != nil {
		month, err := optionalMonth(*request.CampaignMonth)
		if err != nil {
			return nil, err
		}
		product.CampaignMonth = month
	}
	product.UpdatedAt = s.now()

	if err := s.repos.Products.UpdateProduct(ctx, product); err != nil {
		return nil, storageError(err, ErrProductNotFound, productID)
	}

	s.invalidate(ctx, caching.EntityProducts)
	return product, nil
}

func (s *Service) DeleteProduct(ctx context.Context, productID string) error {
	if err := s.repos.Products.DeleteProduct(ctx, productID); err != nil {
		return storageError(err, ErrProductNotFound, productID)
	}

	s.invalidate(ctx, caching.EntityProducts, caching.EntityAllocations)
	return nil
}

// CreateAllocation aceita o status explícito ou, em dados legados, o par
// percentual / is_effective convertido por domain.StatusFromLegacy
func (s *Service) CreateAllocation(ctx context.Context, request *domain.CreateAllocationRequest) (*domain.Allocation, error) {
	if request == nil || request.ClientID == "" || request.ProductID == "" {
		return nil, NewManagementError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "Cliente e produto são obrigatórios")
	}
	if !request.Amount.IsPositive() {
		return nil, NewManagementError(ErrInvalidAmount, apiErrors.ErrInvalidAmount, "Valor da alocação deve ser positivo")
	}

	status, err := resolveStatus(request.Status, request.Percentual, request.IsEffective)
	if err != nil {
		return nil, err
	}

	if _, err := s.findClient(ctx, request.ClientID); err != nil {
		return nil, err
	}
	if _, err := s.findProduct(ctx, request.ProductID); err != nil {
		return nil, err
	}

	id, err := s.newID()
	if err != nil {
		return nil, err
	}

	now := s.now()
	allocation := &domain.Allocation{
		ID:         id,
		ClientID:   request.ClientID,
		ProductID:  request.ProductID,
		Amount:     request.Amount,
		Percentual: decimal.Zero,
		Status:     status,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if request.Percentual != nil {
		allocation.Percentual = *request.Percentual
	}

	if err := s.repos.Allocations.CreateAllocation(ctx, allocation); err != nil {
		return nil, storageError(err, nil, "")
	}

	s.invalidate(ctx, caching.EntityAllocations)
	return allocation, nil
}

func (s *Service) UpdateAllocation(ctx context.Context, allocationID string, request *domain.UpdateAllocationRequest) (*domain.Allocation, error) {
	allocation, err := s.findAllocation(ctx, allocationID)
	if err != nil {
		return nil, err
	}

	if request.Amount != nil {
		if !request.Amount.IsPositive() {
			return nil, NewEntityError(ErrInvalidAmount, apiErrors.ErrInvalidAmount, allocationID, "Valor da alocação deve ser positivo")
		}
		allocation.Amount = *request.Amount
	}
	if request.Percentual != nil {
		allocation.Percentual = *request.Percentual
	}

	switch {
	case request.Status != nil:
		if !request.Status.Valid() {
			return nil, NewEntityError(ErrInvalidStatus, apiErrors.ErrInvalidFormat, allocationID, string(*request.Status))
		}
		allocation.Status = *request.Status
	case request.Percentual != nil || request.IsEffective != nil:
		isEffective := allocation.IsConfirmed()
		if request.IsEffective != nil {
			isEffective = *request.IsEffective
		}
		allocation.Status = domain.StatusFromLegacy(allocation.Percentual, isEffective)
	}

	return s.saveAllocation(ctx, allocation)
}

// ConfirmAllocation move a alocação para Confirmed
func (s *Service) ConfirmAllocation(ctx context.Context, allocationID string) (*domain.Allocation, error) {
	allocation, err := s.findAllocation(ctx, allocationID)
	if err != nil {
		return nil, err
	}

	allocation.Status = domain.StatusConfirmed
	return s.saveAllocation(ctx, allocation)
}

func (s *Service) saveAllocation(ctx context.Context, allocation *domain.Allocation) (*domain.Allocation, error) {
	allocation.UpdatedAt = s.now()

	if err := s.repos.Allocations.UpdateAllocation(ctx, allocation); err != nil {
		return nil, storageError(err, ErrAllocationNotFound, allocation.ID)
	}

	s.invalidate(ctx, caching.EntityAllocations)
	return allocation, nil
}

func (s *Service) DeleteAllocation(ctx context.Context, allocationID string) error {
	if err := s.repos.Allocations.DeleteAllocation(ctx, allocationID); err != nil {
		return storageError(err, ErrAllocationNotFound, allocationID)
	}

	s.invalidate(ctx, caching.EntityAllocations)
	return nil
}

func (s *Service) SetMonthlyGoal(ctx context.Context, month string, target decimal.Decimal) (*domain.MonthlyGoal, error) {
	month, err := requiredMonth(month)
	if err != nil {
		return nil, err
	}
	if target.IsNegative() {
		return nil, NewManagementError(ErrInvalidAmount, apiErrors.ErrInvalidAmount, "Meta não pode ser negativa")
	}

	goal := &domain.MonthlyGoal{Month: month, TargetRevenue: target, UpdatedAt: s.now()}
	if err := s.repos.Goals.UpsertMonthlyGoal(ctx, goal); err != nil {
		return nil, storageError(err, nil, month)
	}

	s.invalidate(ctx, caching.EntityGoals)
	return goal, nil
}

func (s *Service) SetClassGoal(ctx context.Context, month, productClass string, target decimal.Decimal) (*domain.ClassGoal, error) {
	month, err := requiredMonth(month)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(productClass) == "" {
		return nil, NewManagementError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "Classe do produto é obrigatória")
	}
	if target.IsNegative() {
		return nil, NewManagementError(ErrInvalidAmount, apiErrors.ErrInvalidAmount, "Meta não pode ser negativa")
	}

	goal := &domain.ClassGoal{
		Month:         month,
		ProductClass:  strings.TrimSpace(productClass),
		TargetRevenue: target,
		UpdatedAt:     s.now(),
	}
	if err := s.repos.Goals.UpsertClassGoal(ctx, goal); err != nil {
		return nil, storageError(err, nil, month)
	}

	s.invalidate(ctx, caching.EntityGoals)
	return goal, nil
}

func (s *Service) CreateBonus(ctx context.Context, bonus *domain.Bonus) (*domain.Bonus, error) {
	if bonus == nil {
		return nil, NewManagementError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "Bônus é obrigatório")
	}

	month, err := requiredMonth(bonus.Month)
	if err != nil {
		return nil, err
	}
	if !bonus.Amount.IsPositive() {
		return nil, NewManagementError(ErrInvalidAmount, apiErrors.ErrInvalidAmount, "Valor do bônus deve ser positivo")
	}

	id, err := s.newID()
	if err != nil {
		return nil, err
	}

	bonus.ID = id
	bonus.Month = month
	bonus.Description = strings.TrimSpace(bonus.Description)
	bonus.CreatedAt = s.now()

	if err := s.repos.Bonuses.CreateBonus(ctx, bonus); err != nil {
		return nil, storageError(err, nil, "")
	}

	s.invalidate(ctx, caching.EntityBonuses)
	return bonus, nil
}

func (s *Service) DeleteBonus(ctx context.Context, bonusID string) error {
	if err := s.repos.Bonuses.DeleteBonus(ctx, bonusID); err != nil {
		return storageError(err, ErrBonusNotFound, bonusID)
	}

	s.invalidate(ctx, caching.EntityBonuses)
	return nil
}

// ImportRevenueItems substitui os itens de receita do mês pelos itens recebidos
func (s *Service) ImportRevenueItems(ctx context.Context, month string, items []*domain.RevenueLineItem) (int, error) {
	month, err := requiredMonth(month)
	if err != nil {
		return 0, err
	}

	now := s.now()
	valid := make([]*domain.RevenueLineItem, 0, len(items))
	for _, item := range items {
		if item == nil {
			continue
		}

		id, err := s.newID()
		if err != nil {
			return 0, err
		}

		item.ID = id
		item.Month = month
		item.ClientCode = strings.TrimSpace(item.ClientCode)
		item.Product = strings.TrimSpace(item.Product)
		item.Family = strings.TrimSpace(item.Family)
		item.CreatedAt = now
		valid = append(valid, item)
	}

	if err := s.repos.RevenueItems.ReplaceMonth(ctx, month, valid); err != nil {
		return 0, storageError(err, nil, month)
	}

	s.invalidate(ctx, caching.EntityRevenueItems)
	return len(valid), nil
}

// SetRecurringCategories salva as categorias de produto aceitas na receita recorrente.
// Uma lista vazia mantém apenas itens sem produto.
func (s *Service) SetRecurringCategories(ctx context.Context, categories []string) (domain.RecurringCategories, error) {
	seen := make(map[string]bool, len(categories))
	cleaned := make([]string, 0, len(categories))
	for _, c := range categories {
		c = strings.TrimSpace(c)
		key := utils.NormalizeText(c)
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		cleaned = append(cleaned, c)
	}

	if err := s.repos.Preferences.SetRecurringCategories(ctx, cleaned); err != nil {
		return domain.RecurringCategories{}, storageError(err, nil, "")
	}

	s.invalidate(ctx, caching.EntityPreferences)
	return domain.RecurringCategories{Configured: true, Categories: cleaned}, nil
}

func (s *Service) findClient(ctx context.Context, clientID string) (*domain.Client, error) {
	client, err := s.repos.Clients.GetClient(ctx, clientID)
	if err != nil {
		return nil, storageError(err, ErrClientNotFound, clientID)
	}
	if client == nil {
		return nil, NewEntityError(ErrClientNotFound, apiErrors.ErrResourceNotFound, clientID, "")
	}
	return client, nil
}

func (s *Service) findProduct(ctx context.Context, productID string) (*domain.Product, error) {
	product, err := s.repos.Products.GetProduct(ctx, productID)
	if err != nil {
		return nil, storageError(err, ErrProductNotFound, productID)
	}
	if product == nil {
		return nil, NewEntityError(ErrProductNotFound, apiErrors.ErrResourceNotFound, productID, "")
	}
	return product, nil
}

func (s *Service) findAllocation(ctx context.Context, allocationID string) (*domain.Allocation, error) {
	allocation, err := s.repos.Allocations.GetAllocation(ctx, allocationID)
	if err != nil {
		return nil, storageError(err, ErrAllocationNotFound, allocationID)
	}
	if allocation == nil {
		return nil, NewEntityError(ErrAllocationNotFound, apiErrors.ErrResourceNotFound, allocationID, "")
	}
	return allocation, nil
}

func resolveStatus(status domain.AllocationStatus, percentual *decimal.Decimal, isEffective *bool) (domain.AllocationStatus, error) {
	if status != "" {
		if !status.Valid() {
			return "", NewManagementError(ErrInvalidStatus, apiErrors.ErrInvalidFormat, string(status))
		}
		return status, nil
	}

	if percentual == nil && isEffective == nil {
		return domain.StatusMapped, nil
	}

	p := decimal.Zero
	if percentual != nil {
		p = *percentual
	}
	return domain.StatusFromLegacy(p, isEffective != nil && *isEffective), nil
}

func requiredMonth(month string) (string, error) {
	normalized := utils.NormalizeMonth(month)
	if normalized == "" {
		return "", NewManagementError(ErrInvalidMonth, apiErrors.ErrInvalidMonth, month)
	}
	return normalized, nil
}

func optionalMonth(month string) (string, error) {
	if strings.TrimSpace(month) == "" {
		return "", nil
	}
	return requiredMonth(month)
}
