package caching

import (
	"context"
	"errors"

	"github.com/advisorhub/revenue-engine/internal/session"
)

// Entity é o tipo de dado de origem cuja alteração invalida resultados
type Entity string

const (
	EntityAllocations  Entity = "allocations"
	EntityClients      Entity = "clients"
	EntityProducts     Entity = "products"
	EntityGoals        Entity = "goals"
	EntityBonuses      Entity = "bonuses"
	EntityRevenueItems Entity = "revenue_items"
	EntityPreferences  Entity = "preferences"
)

// derived são os namespaces calculados a partir de alocações, clientes e produtos
var derived = []Namespace{RevenueCalc, DashboardData, DashboardMetrics, GoalsData}

var invalidationGroups = map[Entity][]Namespace{
	EntityAllocations:  derived,
	EntityClients:      append([]Namespace{ClientsList}, derived...),
	EntityProducts:     append([]Namespace{ProductsList}, derived...),
	EntityGoals:        {GoalsData, DashboardData},
	EntityBonuses:      {GoalsData, DashboardData, DashboardMetrics},
	EntityRevenueItems: {UserMetadata, DashboardData, DashboardMetrics, GoalsData},
	EntityPreferences:  {UserMetadata, DashboardData, DashboardMetrics, GoalsData},
}

// NamespacesFor retorna, sem repetição, os namespaces afetados pelas entidades
func NamespacesFor(entities ...Entity) []Namespace {
	seen := make(map[Namespace]bool)
	var namespaces []Namespace
	for _, entity := range entities {
		for _, ns := range invalidationGroups[entity] {
			if seen[ns] {
				continue
			}
			seen[ns] = true
			namespaces = append(namespaces, ns)
		}
	}
	return namespaces
}

// Coordinator remove as chaves emitidas para os namespaces de uma alteração
type Coordinator struct {
	service *Service
}

func NewCoordinator(service *Service) *Coordinator {
	return &Coordinator{service: service}
}

// Invalidate remove, para o tenant da sessão, a chave padrão e todas as chaves
// registradas no índice de cada namespace afetado
func (c *Coordinator) Invalidate(ctx context.Context, entities ...Entity) error {
	tenantID, err := session.TenantID(ctx)
	if err != nil {
		return err
	}

	var errs []error
	for _, ns := range NamespacesFor(entities...) {
		if err := c.invalidateNamespace(ctx, ns, tenantID); err != nil {
			c.service.logBackendError(ctx, err, ns, tenantID)
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

func (c *Coordinator) invalidateNamespace(ctx context.Context, ns Namespace, tenantID string) error {
	s := c.service
	backend := s.backend

	keys, err := s.trackedKeys(ctx, ns, tenantID)
	if err != nil {
		return err
	}

	keys = append(keys, DefaultKey(s.prefix, ns, tenantID))
	for _, key := range keys {
		if err := backend.Delete(ctx, key); err != nil {
			return err
		}
	}

	return backend.Delete(ctx, indexKey(s.prefix, ns, tenantID))
}
