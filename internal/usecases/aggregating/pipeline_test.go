package aggregating

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/advisorhub/revenue-engine/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func fixtures() ([]*domain.Client, []*domain.Product) {
	clients := []*domain.Client{
		{ID: "c1", Name: "bruno", Model: domain.ClientModelTraditional, Repasse: 35},
		{ID: "c2", Name: "Ana", Model: domain.ClientModelFeeBased, Repasse: 50},
		{ID: "c3", Name: "Carla", Model: domain.ClientModelFeeBasedNoRV, Repasse: 50},
	}
	products := []*domain.Product{
		{ID: "p1", Name: "Offshore Global", Class: "Offshore", ROAPct: dec("1.2")},
		{ID: "p2", Name: "CDB Banco X", Class: "Renda Fixa", ROAPct: dec("0.5")},
		{ID: "p3", Name: "CDB Digital", Class: "Renda Fixa Digital", ROAPct: dec("1")},
	}
	return clients, products
}

func TestAggregate(t *testing.T) {
	clients, products := fixtures()

	allocations := []*domain.Allocation{
		{ID: "a1", ClientID: "c1", ProductID: "p2", Amount: dec("10000"), Status: domain.StatusConfirmed},
		{ID: "a2", ClientID: "c2", ProductID: "p1", Amount: dec("100000"), Status: domain.StatusConfirmed},
		{ID: "a3", ClientID: "c2", ProductID: "p2", Amount: dec("50000"), Status: domain.StatusConfirmed},
		{ID: "a4", ClientID: "c3", ProductID: "p3", Amount: dec("20000"), Status: domain.StatusPushSent},
		{ID: "a5", ClientID: "c1", ProductID: "p1", Amount: dec("5000"), Status: domain.StatusPresented},
		{ID: "a6", ClientID: "c2", ProductID: "p3", Amount: dec("7000"), Status: domain.StatusMapped},
	}

	summary := Aggregate(allocations, clients, products)

	t.Run("totais por status", func(t *testing.T) {
		assert.True(t, dec("160000").Equal(summary.TotalsByStatus[domain.StatusConfirmed]))
		assert.True(t, dec("20000").Equal(summary.TotalsByStatus[domain.StatusPushSent]))
		assert.True(t, dec("5000").Equal(summary.TotalsByStatus[domain.StatusPresented]))
		assert.True(t, dec("7000").Equal(summary.TotalsByStatus[domain.StatusMapped]))
		assert.True(t, dec("192000").Equal(summary.TotalAmount))
	})

	t.Run("receita por status inclui não confirmadas", func(t *testing.T) {
		// a1: 50 (tradicional) + a2: 1200 + a3: 0 (fee based em renda fixa)
		assert.True(t, dec("1250").Equal(summary.RevenueByStatus[domain.StatusConfirmed]))
		assert.True(t, dec("200").Equal(summary.RevenueByStatus[domain.StatusPushSent]))
		assert.True(t, dec("60").Equal(summary.RevenueByStatus[domain.StatusPresented]))
	})

	t.Run("receita total considera apenas confirmadas", func(t *testing.T) {
		assert.True(t, dec("1250").Equal(summary.TotalOfficeRevenue))
		// a1: 50 * 0.8 * 0.35 = 14 ; a2: 1200 * 0.8 * 0.5 = 480
		assert.True(t, dec("494").Equal(summary.TotalAdvisorRevenue))
		assert.True(t, dec("1680").Equal(summary.RevenueByProduct["p1"]))
		assert.True(t, dec("64").Equal(summary.RevenueByProduct["p2"]))
		_, hasP3 := summary.RevenueByProduct["p3"]
		assert.False(t, hasP3)
		assert.True(t, dec("60000").Equal(summary.ConfirmedAmountByProduct["p2"]))
	})

	t.Run("totais por cliente e segmento independem do status", func(t *testing.T) {
		assert.True(t, dec("15000").Equal(summary.TotalsByClient["c1"]))
		assert.True(t, dec("157000").Equal(summary.TotalsByClient["c2"]))
		assert.True(t, dec("15000").Equal(summary.TotalsBySegment[domain.SegmentTraditional]))
		assert.True(t, dec("177000").Equal(summary.TotalsBySegment[domain.SegmentFeeBased]))
	})

	t.Run("kanban ordenado pelo nome do cliente", func(t *testing.T) {
		require.Len(t, summary.Kanban, 4)
		for i, status := range domain.AllStatuses {
			assert.Equal(t, status, summary.Kanban[i].Status)
		}

		confirmed := summary.Column(domain.StatusConfirmed)
		require.Len(t, confirmed, 3)
		assert.Equal(t, []string{"Ana", "Ana", "bruno"}, []string{confirmed[0].ClientName, confirmed[1].ClientName, confirmed[2].ClientName})
		assert.Equal(t, "a2", confirmed[0].AllocationID)
		assert.Equal(t, "a3", confirmed[1].AllocationID)
	})

	t.Run("top produtos", func(t *testing.T) {
		top := TopProducts(summary, 1)
		require.Len(t, top, 1)
		assert.Equal(t, "p1", top[0].ProductID)
		assert.Equal(t, "Offshore Global", top[0].ProductName)
		assert.Len(t, TopProducts(summary, 10), 2)
		assert.Empty(t, TopProducts(summary, 0))
	})
}

func TestAggregate_Empty(t *testing.T) {
	summary := Aggregate(nil, nil, nil)

	require.Len(t, summary.Kanban, 4)
	for _, column := range summary.Kanban {
		assert.NotNil(t, column.Cards)
		assert.Empty(t, column.Cards)
	}
	assert.True(t, summary.TotalAmount.IsZero())
	assert.True(t, summary.TotalOfficeRevenue.IsZero())
	assert.True(t, summary.TotalsByStatus[domain.StatusConfirmed].IsZero())
}

func TestAggregate_DanglingReferencesStillCount(t *testing.T) {
	allocations := []*domain.Allocation{
		{ID: "a1", ClientID: "ghost", ProductID: "ghost", Amount: dec("300"), Status: domain.StatusConfirmed},
		{ID: "a2", ClientID: "c1", ProductID: "p1", Amount: dec("200"), Status: "LIXO"},
	}

	summary := Aggregate(allocations, nil, nil)

	assert.True(t, dec("300").Equal(summary.TotalsByStatus[domain.StatusConfirmed]))
	assert.True(t, dec("200").Equal(summary.TotalsByStatus[domain.StatusMapped]))
	assert.True(t, summary.TotalOfficeRevenue.IsZero())
}

func TestAggregate_TotalsByStatusMatchAllocationSum(t *testing.T) {
	clients, products := fixtures()
	rng := rand.New(rand.NewSource(42))

	for round := 0; round < 50; round++ {
		allocations := make([]*domain.Allocation, 0)
		expected := decimal.Zero

		count := rng.Intn(40)
		for i := 0; i < count; i++ {
			amount := decimal.New(rng.Int63n(10_000_000), -2)
			expected = expected.Add(amount)
			allocations = append(allocations, &domain.Allocation{
				ID:        fmt.Sprintf("a%d", i),
				ClientID:  clients[rng.Intn(len(clients))].ID,
				ProductID: products[rng.Intn(len(products))].ID,
				Amount:    amount,
				Status:    domain.AllStatuses[rng.Intn(len(domain.AllStatuses))],
			})
		}

		summary := Aggregate(allocations, clients, products)

		sum := decimal.Zero
		for _, total := range summary.TotalsByStatus {
			sum = sum.Add(total)
		}

		assert.True(t, expected.Equal(sum), "round %d: esperado %s, obtido %s", round, expected, sum)
	}
}

func TestFilterByClient(t *testing.T) {
	allocations := []*domain.Allocation{
		{ID: "a1", ClientID: "c1"},
		{ID: "a2", ClientID: "c2"},
		nil,
	}

	assert.Len(t, FilterByClient(allocations, ""), 3)
	filtered := FilterByClient(allocations, "c2")
	require.Len(t, filtered, 1)
	assert.Equal(t, "a2", filtered[0].ID)
}
