// Package dashboarding calcula os indicadores do painel do assessor: receita
// ativa e recorrente, ROA, quadrantes por mediana e penetração de campanha.
package dashboarding

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/advisorhub/revenue-engine/internal/domain"
	"github.com/advisorhub/revenue-engine/internal/usecases/commissioning"
	"github.com/advisorhub/revenue-engine/pkg/utils"
)

var (
	hundred = decimal.NewFromInt(100)
	twelve  = decimal.NewFromInt(12)
	two     = decimal.NewFromInt(2)

	// DefaultSplit é o repasse médio usado quando nenhum cliente tem patrimônio
	DefaultSplit = decimal.RequireFromString("0.35")
)

// administrativeFamilies não compõem a receita recorrente
var administrativeFamilies = []string{"admin", "corretagem", "custódia", "escritório"}

// Input reúne os dados do tenant usados no cálculo das métricas
type Input struct {
	Now                 time.Time
	Clients             []*domain.Client
	Products            []*domain.Product
	Allocations         []*domain.Allocation
	RevenueItems        []*domain.RevenueLineItem
	RecurringCategories domain.RecurringCategories
	Bonuses             []*domain.Bonus
}

// Compute monta as métricas do mês de in.Now
func Compute(in Input) *domain.DashboardMetrics {
	month := utils.MonthKey(in.Now)
	split := WeightedAverageSplit(in.Clients)
	totalNet := TotalNet(in.Clients)

	active := ActiveRevenue(in.Allocations, in.Clients, in.Products, in.Now)
	recurringMonth, recurringAdvisor := RecurringAdvisorRevenue(in.RevenueItems, in.RecurringCategories)
	recurringOffice := commissioning.OfficeFromAdvisor(recurringAdvisor, split)

	officeMonth := active.Add(recurringOffice)
	revenueYTD := ClientRevenueYTD(in.Clients, in.Products, in.Allocations, in.RevenueItems, in.Now)

	return &domain.DashboardMetrics{
		Month:                   month,
		ActiveRevenue:           active,
		RecurringMonth:          recurringMonth,
		RecurringAdvisorRevenue: recurringAdvisor,
		RecurringOfficeRevenue:  recurringOffice,
		OfficeRevenueMonth:      officeMonth,
		AdvisorRevenueMonth:     commissioning.AdvisorFromOffice(officeMonth, split),
		BonusRevenue:            BonusRevenue(in.Bonuses, month, split),
		WeightedAvgSplit:        split,
		TotalNet:                totalNet,
		ROA:                     ROA(officeMonth, totalNet),
		Quadrants:               Quadrants(in.Clients, revenueYTD),
		Penetration:             CampaignPenetration(in.Clients, in.Products, in.Allocations, in.Now),
	}
}

// ActiveRevenue soma a receita de escritório das alocações confirmadas criadas no mês de now
func ActiveRevenue(allocations []*domain.Allocation, clients []*domain.Client, products []*domain.Product, now time.Time) decimal.Decimal {
	clientByID := indexClients(clients)
	productByID := indexProducts(products)

	total := decimal.Zero
	for _, allocation := range allocations {
		if !allocation.IsConfirmed() || !utils.SameMonth(allocation.CreatedAt, now) {
			continue
		}
		revenue := commissioning.ForAllocation(allocation, clientByID[allocation.ClientID], productByID[allocation.ProductID])
		total = total.Add(revenue.Office)
	}
	return total
}

// WeightedAverageSplit é Σ(net_total * repasse/100) / Σ(net_total) dos clientes com patrimônio.
// Sem clientes com patrimônio retorna DefaultSplit.
func WeightedAverageSplit(clients []*domain.Client) decimal.Decimal {
	weighted := decimal.Zero
	total := decimal.Zero

	for _, client := range clients {
		if !client.HasNet() {
			continue
		}
		repasse := decimal.NewFromInt(int64(domain.NormalizeRepasse(client.Repasse)))
		weighted = weighted.Add(client.NetTotal.Mul(repasse).Div(hundred))
		total = total.Add(client.NetTotal)
	}

	if !total.IsPositive() {
		return DefaultSplit
	}
	return weighted.Div(total)
}

// TotalNet soma o patrimônio dos clientes com net_total positivo
func TotalNet(clients []*domain.Client) decimal.Decimal {
	total := decimal.Zero
	for _, client := range clients {
		if client.HasNet() {
			total = total.Add(client.NetTotal)
		}
	}
	return total
}

// IsAdministrativeFamily indica se a família do item é administrativa, ignorando caixa e acentos
func IsAdministrativeFamily(family string) bool {
	return utils.ContainsFolded(family, administrativeFamilies...)
}

// LatestMonth retorna o mês mais recente presente nos itens
func LatestMonth(items []*domain.RevenueLineItem) string {
	latest := ""
	for _, item := range items {
		if item == nil {
			continue
		}
		if month := utils.NormalizeMonth(item.Month); month > latest {
			latest = month
		}
	}
	return latest
}

// RecurringAdvisorRevenue soma o valor líquido ao assessor dos itens do mês mais recente,
// exceto famílias administrativas. Itens com produto só entram se o produto estiver nas
// categorias configuradas; sem preferência salva todos os produtos entram.
func RecurringAdvisorRevenue(items []*domain.RevenueLineItem, categories domain.RecurringCategories) (string, decimal.Decimal) {
	month := LatestMonth(items)
	if month == "" {
		return "", decimal.Zero
	}

	var allowed map[string]bool
	if categories.Configured {
		allowed = make(map[string]bool, len(categories.Categories))
		for _, c := range categories.Categories {
			allowed[utils.NormalizeText(c)] = true
		}
	}

	total := decimal.Zero
	for _, item := range items {
		if item == nil || utils.NormalizeMonth(item.Month) != month {
			continue
		}
		if IsAdministrativeFamily(item.Family) {
			continue
		}

		product := utils.NormalizeText(item.Product)
		if product != "" && allowed != nil && !allowed[product] {
			continue
		}

		total = total.Add(item.NetToAdvisorValue)
	}

	return month, total
}

// ROA é (receita de escritório do mês * 12) / patrimônio total * 100
func ROA(officeRevenueMonth, totalNet decimal.Decimal) decimal.Decimal {
	if !officeRevenueMonth.IsPositive() || !totalNet.IsPositive() {
		return decimal.Zero
	}
	return officeRevenueMonth.Mul(twelve).Div(totalNet).Mul(hundred)
}

// BonusRevenue soma os bônus ativos do mês em valor de escritório. Bônus líquidos ao
// assessor são convertidos pelo repasse médio.
func BonusRevenue(bonuses []*domain.Bonus, month string, split decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, bonus := range bonuses {
		if bonus == nil || !bonus.Active || utils.NormalizeMonth(bonus.Month) != month {
			continue
		}
		if bonus.NetToAdvisor {
			total = total.Add(commissioning.OfficeFromAdvisor(bonus.Amount, split))
			continue
		}
		total = total.Add(bonus.Amount)
	}
	return total
}

// Median retorna a mediana; com quantidade par é a média dos dois valores do meio
func Median(values []decimal.Decimal) decimal.Decimal {
	if len(values) == 0 {
		return decimal.Zero
	}

	sorted := make([]decimal.Decimal, len(values))
	copy(sorted, values)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].LessThan(sorted[j]) })

	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		return sorted[mid-1].Add(sorted[mid]).Div(two)
	}
	return sorted[mid]
}

// ClientRevenueYTD soma, por cliente, a comissão de escritório dos itens importados do
// ano corrente (pelo código do cliente) e a receita das alocações confirmadas no ano
func ClientRevenueYTD(
	clients []*domain.Client,
	products []*domain.Product,
	allocations []*domain.Allocation,
	items []*domain.RevenueLineItem,
	now time.Time,
) map[string]decimal.Decimal {
	revenue := make(map[string]decimal.Decimal, len(clients))
	clientByID := indexClients(clients)
	productByID := indexProducts(products)

	clientByCode := make(map[string]string, len(clients))
	for _, client := range clients {
		if client == nil {
			continue
		}
		revenue[client.ID] = decimal.Zero
		if code := strings.TrimSpace(client.Code); code != "" {
			clientByCode[code] = client.ID
		}
	}

	yearPrefix := fmt.Sprintf("%04d-", now.Year())
	for _, item := range items {
		if item == nil || !strings.HasPrefix(utils.NormalizeMonth(item.Month), yearPrefix) {
			continue
		}
		if IsAdministrativeFamily(item.Family) {
			continue
		}
		if clientID, ok := clientByCode[strings.TrimSpace(item.ClientCode)]; ok {
			revenue[clientID] = revenue[clientID].Add(item.OfficeCommission)
		}
	}

	for _, allocation := range allocations {
		if !allocation.IsConfirmed() || !utils.SameYear(allocation.CreatedAt, now) {
			continue
		}
		client, ok := clientByID[allocation.ClientID]
		if !ok {
			continue
		}
		r := commissioning.ForAllocation(allocation, client, productByID[allocation.ProductID])
		revenue[client.ID] = revenue[client.ID].Add(r.Office)
	}

	return revenue
}

// Quadrants classifica os clientes pela mediana de receita no ano e de patrimônio.
// Empates ficam no lado alto.
func Quadrants(clients []*domain.Client, revenueYTD map[string]decimal.Decimal) domain.QuadrantBreakdown {
	var revenues, nets []decimal.Decimal
	for _, client := range clients {
		if client == nil {
			continue
		}
		if r := revenueYTD[client.ID]; r.IsPositive() {
			revenues = append(revenues, r)
		}
		if client.HasNet() {
			nets = append(nets, client.NetTotal)
		}
	}

	breakdown := domain.QuadrantBreakdown{
		MedianRevenue: Median(revenues),
		MedianNet:     Median(nets),
		Clients:       make(map[domain.Quadrant][]domain.QuadrantClient, 4),
		Counts:        make(map[domain.Quadrant]int, 4),
	}
	for _, q := range []domain.Quadrant{domain.QuadrantQ1, domain.QuadrantQ2, domain.QuadrantQ3, domain.QuadrantQ4} {
		breakdown.Clients[q] = []domain.QuadrantClient{}
		breakdown.Counts[q] = 0
	}

	for _, client := range clients {
		if client == nil {
			continue
		}
		revenue := revenueYTD[client.ID]
		if !revenue.IsPositive() && !client.HasNet() {
			continue
		}

		q := Classify(revenue, client.NetTotal, breakdown.MedianRevenue, breakdown.MedianNet)
		breakdown.Clients[q] = append(breakdown.Clients[q], domain.QuadrantClient{
			ClientID:   client.ID,
			ClientName: client.Name,
			RevenueYTD: revenue,
			NetTotal:   client.NetTotal,
			Quadrant:   q,
		})
		breakdown.Counts[q]++
	}

	for _, list := range breakdown.Clients {
		sort.SliceStable(list, func(i, j int) bool {
			if c := list[i].RevenueYTD.Cmp(list[j].RevenueYTD); c != 0 {
				return c > 0
			}
			return strings.ToLower(list[i].ClientName) < strings.ToLower(list[j].ClientName)
		})
	}

	return breakdown
}

// Classify retorna o quadrante de um cliente dadas as medianas. Empate fica no
// lado alto. Receita ou patrimônio zerado fica sempre no lado baixo, inclusive
// quando a base da mediana é vazia e a mediana vale zero.
func Classify(revenue, net, medianRevenue, medianNet decimal.Decimal) domain.Quadrant {
	highRevenue := revenue.IsPositive() && revenue.GreaterThanOrEqual(medianRevenue)
	highNet := net.IsPositive() && net.GreaterThanOrEqual(medianNet)

	switch {
	case highRevenue && highNet:
		return domain.QuadrantQ1
	case highRevenue:
		return domain.QuadrantQ2
	case highNet:
		return domain.QuadrantQ3
	default:
		return domain.QuadrantQ4
	}
}

// CampaignPenetration é o percentual dos clientes com patrimônio que têm ao menos uma
// alocação confirmada no mês em produto de campanha. Sem base o percentual é zero.
func CampaignPenetration(clients []*domain.Client, products []*domain.Product, allocations []*domain.Allocation, now time.Time) domain.Penetration {
	month := utils.MonthKey(now)
	productByID := indexProducts(products)

	base := make(map[string]bool)
	for _, client := range clients {
		if client.HasNet() {
			base[client.ID] = true
		}
	}

	reached := make(map[string]bool)
	for _, allocation := range allocations {
		if !allocation.IsConfirmed() || !base[allocation.ClientID] || !utils.SameMonth(allocation.CreatedAt, now) {
			continue
		}
		if productByID[allocation.ProductID].InCampaignFor(month) {
			reached[allocation.ClientID] = true
		}
	}

	return domain.Penetration{
		Month:           month,
		CampaignClients: len(reached),
		BaseClients:     len(base),
		Percent:         utils.Percent(decimal.NewFromInt(int64(len(reached))), decimal.NewFromInt(int64(len(base)))),
	}
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
