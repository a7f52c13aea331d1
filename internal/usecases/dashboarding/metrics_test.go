package dashboarding

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/advisorhub/revenue-engine/internal/domain"
)

var now = time.Date(2024, 5, 20, 15, 0, 0, 0, time.UTC)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func assertDecimal(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.True(t, d(want).Equal(got), "esperado %s, obtido %s", want, got.String())
}

func TestMedian(t *testing.T) {
	tests := []struct {
		name   string
		values []string
		want   string
	}{
		{name: "vazio", values: nil, want: "0"},
		{name: "ímpar", values: []string{"30", "10", "20"}, want: "20"},
		{name: "par usa a média dos dois do meio", values: []string{"40", "10", "20", "30"}, want: "25"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var values []decimal.Decimal
			for _, v := range tt.values {
				values = append(values, d(v))
			}
			assertDecimal(t, tt.want, Median(values))
		})
	}
}

func TestQuadrants_EmpateVaiParaOLadoAlto(t *testing.T) {
	clients := []*domain.Client{
		{ID: "c1", Name: "Ana", NetTotal: d("100")},
		{ID: "c2", Name: "Bruno", NetTotal: d("200")},
		{ID: "c3", Name: "Carla", NetTotal: d("300")},
	}
	revenue := map[string]decimal.Decimal{
		"c1": d("10"),
		"c2": d("20"),
		"c3": d("30"),
	}

	breakdown := Quadrants(clients, revenue)

	assertDecimal(t, "20", breakdown.MedianRevenue)
	assertDecimal(t, "200", breakdown.MedianNet)

	// c2 está exatamente nas duas medianas
	require.Len(t, breakdown.Clients[domain.QuadrantQ1], 2)
	assert.Equal(t, "c3", breakdown.Clients[domain.QuadrantQ1][0].ClientID)
	assert.Equal(t, "c2", breakdown.Clients[domain.QuadrantQ1][1].ClientID)
	assert.Equal(t, 1, breakdown.Counts[domain.QuadrantQ4])
	assert.Equal(t, 0, breakdown.Counts[domain.QuadrantQ2])
	assert.NotNil(t, breakdown.Clients[domain.QuadrantQ3])
}

func TestClassify(t *testing.T) {
	med := d("100")
	assert.Equal(t, domain.QuadrantQ1, Classify(d("100"), d("100"), med, med))
	assert.Equal(t, domain.QuadrantQ2, Classify(d("150"), d("50"), med, med))
	assert.Equal(t, domain.QuadrantQ3, Classify(d("50"), d("150"), med, med))
	assert.Equal(t, domain.QuadrantQ4, Classify(d("50"), d("50"), med, med))
	assert.Equal(t, domain.QuadrantQ3, Classify(d("0"), d("150"), d("0"), med))
	assert.Equal(t, domain.QuadrantQ4, Classify(d("0"), d("0"), d("0"), d("0")))
}

func TestQuadrants_SemReceitaNoAnoFicaNoLadoBaixo(t *testing.T) {
	clients := []*domain.Client{
		{ID: "c1", Name: "Ana", NetTotal: d("100")},
		{ID: "c2", Name: "Bruno", NetTotal: d("300")},
	}

	breakdown := Quadrants(clients, map[string]decimal.Decimal{})

	assertDecimal(t, "0", breakdown.MedianRevenue)
	assertDecimal(t, "200", breakdown.MedianNet)
	assert.Equal(t, 0, breakdown.Counts[domain.QuadrantQ1])
	assert.Equal(t, 0, breakdown.Counts[domain.QuadrantQ2])
	assert.Equal(t, 1, breakdown.Counts[domain.QuadrantQ3])
	assert.Equal(t, 1, breakdown.Counts[domain.QuadrantQ4])
	require.Len(t, breakdown.Clients[domain.QuadrantQ3], 1)
	assert.Equal(t, "c2", breakdown.Clients[domain.QuadrantQ3][0].ClientID)
}

func TestSemClientesComPatrimonio(t *testing.T) {
	clients := []*domain.Client{
		{ID: "c1", Name: "Ana", NetTotal: d("0")},
		{ID: "c2", Name: "Bruno", NetTotal: d("-10")},
	}
	products := []*domain.Product{{ID: "p1", Class: "Offshore", ROAPct: d("1"), InCampaign: true}}
	allocations := []*domain.Allocation{
		{ID: "a1", ClientID: "c1", ProductID: "p1", Amount: d("1000"), Status: domain.StatusConfirmed, CreatedAt: now},
	}

	metrics := Compute(Input{Now: now, Clients: clients, Products: products, Allocations: allocations})

	assertDecimal(t, "0", metrics.Penetration.Percent)
	assert.Equal(t, 0, metrics.Penetration.BaseClients)
	assertDecimal(t, "0", metrics.ROA)
	assertDecimal(t, "0.35", metrics.WeightedAvgSplit)
	assertDecimal(t, "10", metrics.ActiveRevenue)
}

func TestWeightedAverageSplit(t *testing.T) {
	clients := []*domain.Client{
		{ID: "c1", Repasse: 50, NetTotal: d("1000")},
		{ID: "c2", Repasse: 35, NetTotal: d("3000")},
		{ID: "c3", Repasse: 50, NetTotal: d("0")},
	}

	// (1000*0.5 + 3000*0.35) / 4000
	assertDecimal(t, "0.3875", WeightedAverageSplit(clients))
	assertDecimal(t, "0.35", WeightedAverageSplit(nil))
}

func TestRecurringAdvisorRevenue(t *testing.T) {
	items := []*domain.RevenueLineItem{
		{Month: "2024-03", Product: "Fundos", Family: "Investimentos", NetToAdvisorValue: d("999")},
		{Month: "2024-04", Product: "Fundos", Family: "Investimentos", NetToAdvisorValue: d("100")},
		{Month: "2024-04", Product: "Previdência", Family: "Investimentos", NetToAdvisorValue: d("50")},
		{Month: "2024-04", Product: "", Family: "Seguros", NetToAdvisorValue: d("20")},
		{Month: "2024-04", Product: "Fundos", Family: "CUSTODIA", NetToAdvisorValue: d("70")},
		{Month: "2024-04", Product: "Fundos", Family: "Taxa de Escritorio", NetToAdvisorValue: d("80")},
	}

	tests := []struct {
		name       string
		categories domain.RecurringCategories
		want       string
	}{
		{
			name:       "sem preferência todos os produtos entram",
			categories: domain.RecurringCategories{},
			want:       "170",
		},
		{
			name:       "apenas categorias configuradas, ignorando acentos",
			categories: domain.RecurringCategories{Configured: true, Categories: []string{"previdencia"}},
			want:       "70",
		},
		{
			name:       "lista configurada vazia mantém só itens sem produto",
			categories: domain.RecurringCategories{Configured: true, Categories: []string{}},
			want:       "20",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			month, total := RecurringAdvisorRevenue(items, tt.categories)
			assert.Equal(t, "2024-04", month)
			assertDecimal(t, tt.want, total)
		})
	}

	month, total := RecurringAdvisorRevenue(nil, domain.RecurringCategories{})
	assert.Equal(t, "", month)
	assertDecimal(t, "0", total)
}

func TestCompute(t *testing.T) {
	lastMonth := now.AddDate(0, -1, 0)

	clients := []*domain.Client{
		{ID: "c1", Code: "111", Name: "Ana", Model: domain.ClientModelTraditional, Repasse: 50, NetTotal: d("100000")},
		{ID: "c2", Code: "222", Name: "Bruno", Model: domain.ClientModelFeeBased, Repasse: 50, NetTotal: d("100000")},
	}
	products := []*domain.Product{
		{ID: "p1", Name: "CDB", Class: "Renda Fixa", ROAPct: d("1"), InCampaign: true, CampaignMonth: "2024-05"},
		{ID: "p2", Name: "Fundo Global", Class: "Offshore", ROAPct: d("2")},
	}
	allocations := []*domain.Allocation{
		// confirmada no mês em produto de campanha
		{ID: "a1", ClientID: "c1", ProductID: "p1", Amount: d("10000"), Status: domain.StatusConfirmed, CreatedAt: now},
		// fee based em renda fixa não gera receita
		{ID: "a2", ClientID: "c2", ProductID: "p1", Amount: d("10000"), Status: domain.StatusConfirmed, CreatedAt: now},
		// confirmada no mês anterior não entra na receita ativa
		{ID: "a3", ClientID: "c2", ProductID: "p2", Amount: d("10000"), Status: domain.StatusConfirmed, CreatedAt: lastMonth},
		// não confirmada
		{ID: "a4", ClientID: "c2", ProductID: "p2", Amount: d("50000"), Status: domain.StatusPushSent, CreatedAt: now},
	}
	items := []*domain.RevenueLineItem{
		{Month: "2024-04", ClientCode: "222", Product: "", Family: "Seguros", NetToAdvisorValue: d("40"), OfficeCommission: d("100")},
	}
	bonuses := []*domain.Bonus{
		{Month: "2024-05", Amount: d("200"), Active: true},
		{Month: "2024-05", Amount: d("40"), NetToAdvisor: true, Active: true},
		{Month: "2024-05", Amount: d("999"), Active: false},
		{Month: "2024-04", Amount: d("999"), Active: true},
	}

	metrics := Compute(Input{
		Now:          now,
		Clients:      clients,
		Products:     products,
		Allocations:  allocations,
		RevenueItems: items,
		Bonuses:      bonuses,
	})

	assert.Equal(t, "2024-05", metrics.Month)
	assertDecimal(t, "100", metrics.ActiveRevenue)
	assert.Equal(t, "2024-04", metrics.RecurringMonth)
	assertDecimal(t, "40", metrics.RecurringAdvisorRevenue)
	// 40 / 0.8 / 0.5
	assertDecimal(t, "100", metrics.RecurringOfficeRevenue)
	assertDecimal(t, "200", metrics.OfficeRevenueMonth)
	assertDecimal(t, "80", metrics.AdvisorRevenueMonth)
	assertDecimal(t, "300", metrics.BonusRevenue)
	assertDecimal(t, "200000", metrics.TotalNet)
	// 200 * 12 / 200000 * 100
	assertDecimal(t, "1.2", metrics.ROA)

	// penetração não depende da elegibilidade da receita
	assert.Equal(t, 2, metrics.Penetration.CampaignClients)
	assert.Equal(t, 2, metrics.Penetration.BaseClients)
	assertDecimal(t, "100", metrics.Penetration.Percent)

	// Ana: 100 da alocação. Bruno: 100 do item importado e 200 da alocação de abril
	assertDecimal(t, "200", metrics.Quadrants.MedianRevenue)
	assert.Equal(t, 1, metrics.Quadrants.Counts[domain.QuadrantQ1])
	assert.Equal(t, 1, metrics.Quadrants.Counts[domain.QuadrantQ3])
}

func TestCampaignPenetration(t *testing.T) {
	clients := []*domain.Client{
		{ID: "c1", NetTotal: d("10")},
		{ID: "c2", NetTotal: d("10")},
		{ID: "c3", NetTotal: d("10")},
		{ID: "c4", NetTotal: d("10")},
		{ID: "sem-net", NetTotal: d("0")},
	}
	products := []*domain.Product{
		{ID: "camp", InCampaign: true},
		{ID: "camp-abril", InCampaign: true, CampaignMonth: "2024-04"},
		{ID: "normal"},
	}
	allocations := []*domain.Allocation{
		{ClientID: "c1", ProductID: "camp", Status: domain.StatusConfirmed, CreatedAt: now},
		{ClientID: "c1", ProductID: "camp", Status: domain.StatusConfirmed, CreatedAt: now},
		{ClientID: "c2", ProductID: "camp", Status: domain.StatusPresented, CreatedAt: now},
		{ClientID: "c3", ProductID: "camp-abril", Status: domain.StatusConfirmed, CreatedAt: now},
		{ClientID: "c4", ProductID: "normal", Status: domain.StatusConfirmed, CreatedAt: now},
		{ClientID: "sem-net", ProductID: "camp", Status: domain.StatusConfirmed, CreatedAt: now},
		{ClientID: "c2", ProductID: "camp", Status: domain.StatusConfirmed, CreatedAt: now.AddDate(0, -1, 0)},
	}

	p := CampaignPenetration(clients, products, allocations, now)

	assert.Equal(t, 1, p.CampaignClients)
	assert.Equal(t, 4, p.BaseClients)
	assertDecimal(t, "25", p.Percent)
}

func TestIsAdministrativeFamily(t *testing.T) {
	assert.True(t, IsAdministrativeFamily("Taxa ADMINISTRAÇÃO"))
	assert.True(t, IsAdministrativeFamily("corretagem bolsa"))
	assert.True(t, IsAdministrativeFamily("Custodia"))
	assert.True(t, IsAdministrativeFamily("ESCRITÓRIO"))
	assert.False(t, IsAdministrativeFamily("Renda Fixa"))
	assert.False(t, IsAdministrativeFamily(""))
}
