// Package aggregating transforma as alocações de um assessor em funil (kanban),
// totais por status e consolidações por cliente e produto.
package aggregating

import (
	"sort"
	"strings"

	"github.com/advisorhub/revenue-engine/internal/domain"
	"github.com/advisorhub/revenue-engine/internal/usecases/commissioning"
	"github.com/shopspring/decimal"
)

// Aggregate consolida as alocações já filtradas por tenant (e opcionalmente por cliente).
// A soma de TotalsByStatus é sempre igual à soma dos valores das alocações.
func Aggregate(allocations []*domain.Allocation, clients []*domain.Client, products []*domain.Product) *domain.RevenueSummary {
	clientsByID := indexClients(clients)
	productsByID := indexProducts(products)

	summary := newSummary()
	columns := make(map[domain.AllocationStatus][]domain.KanbanCard, len(domain.AllStatuses))

	for _, allocation := range allocations {
		if allocation == nil {
			continue
		}

		status := allocation.Status
		if !status.Valid() {
			status = domain.StatusMapped
		}

		client := clientsByID[allocation.ClientID]
		product := productsByID[allocation.ProductID]
		revenue := commissioning.ForAllocation(allocation, client, product)

		summary.TotalAmount = summary.TotalAmount.Add(allocation.Amount)
		summary.TotalsByStatus[status] = summary.TotalsByStatus[status].Add(allocation.Amount)
		summary.RevenueByStatus[status] = summary.RevenueByStatus[status].Add(revenue.Office)
		summary.TotalsByClient[allocation.ClientID] = summary.TotalsByClient[allocation.ClientID].Add(allocation.Amount)

		segment := domain.SegmentTraditional
		if client != nil {
			segment = domain.NormalizeClientModel(string(client.Model)).Segment()
		}
		summary.TotalsBySegment[segment] = summary.TotalsBySegment[segment].Add(allocation.Amount)

		if status == domain.StatusConfirmed {
			summary.TotalOfficeRevenue = summary.TotalOfficeRevenue.Add(revenue.Office)
			summary.TotalAdvisorRevenue = summary.TotalAdvisorRevenue.Add(revenue.Advisor)
			summary.RevenueByProduct[allocation.ProductID] = summary.RevenueByProduct[allocation.ProductID].
				Add(revenue.Office).
				Add(revenue.Advisor)
			summary.ConfirmedAmountByProduct[allocation.ProductID] = summary.ConfirmedAmountByProduct[allocation.ProductID].
				Add(allocation.Amount)

			if product != nil {
				summary.ProductNames[product.ID] = product.Name
			}
		}

		columns[status] = append(columns[status], newCard(allocation, status, client, product, revenue))
	}

	for _, status := range domain.AllStatuses {
		cards := columns[status]
		sortCards(cards)
		if cards == nil {
			cards = []domain.KanbanCard{}
		}
		summary.Kanban = append(summary.Kanban, domain.KanbanColumn{Status: status, Cards: cards})
	}

	return summary
}

// TopProducts devolve os n produtos com maior receita confirmada (escritório + assessor)
func TopProducts(summary *domain.RevenueSummary, n int) []domain.ProductRevenue {
	if summary == nil || n <= 0 {
		return []domain.ProductRevenue{}
	}

	ranking := make([]domain.ProductRevenue, 0, len(summary.RevenueByProduct))
	for productID, revenue := range summary.RevenueByProduct {
		ranking = append(ranking, domain.ProductRevenue{
			ProductID:   productID,
			ProductName: summary.ProductNames[productID],
			Revenue:     revenue,
		})
	}

	sort.Slice(ranking, func(i, j int) bool {
		if c := ranking[i].Revenue.Cmp(ranking[j].Revenue); c != 0 {
			return c > 0
		}
		return ranking[i].ProductID < ranking[j].ProductID
	})

	if len(ranking) > n {
		ranking = ranking[:n]
	}

	return ranking
}

// FilterByClient mantém apenas as alocações do cliente informado; vazio mantém todas
func FilterByClient(allocations []*domain.Allocation, clientID string) []*domain.Allocation {
	if clientID == "" {
		return allocations
	}

	filtered := make([]*domain.Allocation, 0, len(allocations))
	for _, allocation := range allocations {
		if allocation != nil && allocation.ClientID == clientID {
			filtered = append(filtered, allocation)
		}
	}
	return filtered
}

func newSummary() *domain.RevenueSummary {
	summary := &domain.RevenueSummary{
		Kanban:                   make([]domain.KanbanColumn, 0, len(domain.AllStatuses)),
		TotalAmount:              decimal.Zero,
		TotalsByStatus:           make(map[domain.AllocationStatus]decimal.Decimal, len(domain.AllStatuses)),
		RevenueByStatus:          make(map[domain.AllocationStatus]decimal.Decimal, len(domain.AllStatuses)),
		TotalOfficeRevenue:       decimal.Zero,
		TotalAdvisorRevenue:      decimal.Zero,
		RevenueByProduct:         make(map[string]decimal.Decimal),
		ConfirmedAmountByProduct: make(map[string]decimal.Decimal),
		TotalsByClient:           make(map[string]decimal.Decimal),
		TotalsBySegment: map[domain.ClientSegment]decimal.Decimal{
			domain.SegmentTraditional: decimal.Zero,
			domain.SegmentFeeBased:    decimal.Zero,
		},
		ProductNames: make(map[string]string),
	}

	for _, status := range domain.AllStatuses {
		summary.TotalsByStatus[status] = decimal.Zero
		summary.RevenueByStatus[status] = decimal.Zero
	}

	return summary
}

func newCard(
	allocation *domain.Allocation,
	status domain.AllocationStatus,
	client *domain.Client,
	product *domain.Product,
	revenue commissioning.Revenue,
) domain.KanbanCard {
	card := domain.KanbanCard{
		AllocationID:   allocation.ID,
		ClientID:       allocation.ClientID,
		ProductID:      allocation.ProductID,
		Status:         status,
		Amount:         allocation.Amount,
		BaseRevenue:    revenue.Base,
		OfficeRevenue:  revenue.Office,
		AdvisorRevenue: revenue.Advisor,
		CreatedAt:      allocation.CreatedAt,
	}

	if client != nil {
		card.ClientName = client.Name
	}

	if product != nil {
		card.ProductName = product.Name
		card.ProductClass = product.Class
	}

	return card
}

// sortCards ordena por nome do cliente sem diferenciar maiúsculas; empate pelo id da alocação
func sortCards(cards []domain.KanbanCard) {
	sort.SliceStable(cards, func(i, j int) bool {
		a, b := strings.ToLower(cards[i].ClientName), strings.ToLower(cards[j].ClientName)
		if a != b {
			return a < b
		}
		return cards[i].AllocationID < cards[j].AllocationID
	})
}

func indexClients(clients []*domain.Client) map[string]*domain.Client {
	index := make(map[string]*domain.Client, len(clients))
	for _, client := range clients {
		if client != nil {
			index[client.ID] = client
		}
	}
	return index
}

func indexProducts(products []*domain.Product) map[string]*domain.Product {
	index := make(map[string]*domain.Product, len(products))
	for _, product := range products {
		if product != nil {
			index[product.ID] = product
		}
	}
	return index
}
