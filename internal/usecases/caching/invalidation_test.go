package caching

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/advisorhub/revenue-engine/infrastructure/cache"
	"github.com/advisorhub/revenue-engine/infrastructure/cache/mocks"
	"github.com/advisorhub/revenue-engine/internal/session"
)

func TestNamespacesFor(t *testing.T) {
	assert.ElementsMatch(t,
		[]Namespace{RevenueCalc, DashboardData, DashboardMetrics, GoalsData},
		NamespacesFor(EntityAllocations))

	assert.ElementsMatch(t,
		[]Namespace{ClientsList, ProductsList, RevenueCalc, DashboardData, DashboardMetrics, GoalsData},
		NamespacesFor(EntityClients, EntityProducts, EntityAllocations))

	assert.ElementsMatch(t,
		[]Namespace{UserMetadata, DashboardData, DashboardMetrics, GoalsData},
		NamespacesFor(EntityRevenueItems))

	assert.Empty(t, NamespacesFor(Entity("desconhecida")))
}

func TestCoordinator_Invalidate(t *testing.T) {
	backend := cache.NewMemoryBackend(time.Minute)
	s := NewService(backend, nil, "rv")
	coordinator := NewCoordinator(s)
	ctx := tenantContext("t1")
	other := tenantContext("t2")

	version := 1
	compute := func(context.Context) (int, error) { return version, nil }

	// chave padrão, chave com parâmetro e chave de outro tenant
	_, _ = Remember(ctx, s, RevenueCalc, compute)
	_, _ = Remember(ctx, s, RevenueCalc, compute, String("client_id", "c1"))
	_, _ = Remember(ctx, s, ClientsList, compute)
	_, _ = Remember(other, s, RevenueCalc, compute)

	version = 2
	require.NoError(t, coordinator.Invalidate(ctx, EntityAllocations))

	v, _ := Remember(ctx, s, RevenueCalc, compute)
	assert.Equal(t, 2, v)

	v, _ = Remember(ctx, s, RevenueCalc, compute, String("client_id", "c1"))
	assert.Equal(t, 2, v)

	// namespaces fora do grupo continuam em cache
	v, _ = Remember(ctx, s, ClientsList, compute)
	assert.Equal(t, 1, v)

	// outro tenant não é afetado
	v, _ = Remember(other, s, RevenueCalc, compute)
	assert.Equal(t, 1, v)
}

func TestCoordinator_Invalidate_Erros(t *testing.T) {
	t.Run("sem tenant não remove nada", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := mocks.NewMockBackend(ctrl)
		err := NewCoordinator(NewService(m, nil, "rv")).Invalidate(context.Background(), EntityGoals)
		assert.ErrorIs(t, err, session.ErrTenantNotResolved)
	})

	t.Run("falha do backend é devolvida", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := mocks.NewMockBackend(ctrl)
		boom := errors.New("conexão perdida")

		m.EXPECT().Name().Return(cache.BackendMemcached).AnyTimes()
		m.EXPECT().Get(gomock.Any(), gomock.Any()).Return(nil, false, nil).AnyTimes()
		m.EXPECT().Delete(gomock.Any(), "rv:goals_data:t1").Return(boom)
		m.EXPECT().Delete(gomock.Any(), "rv:dashboard_data:t1").Return(nil)
		m.EXPECT().Delete(gomock.Any(), "rv:idx:dashboard_data:t1").Return(nil)

		err := NewCoordinator(NewService(m, nil, "rv")).Invalidate(tenantContext("t1"), EntityGoals)
		assert.ErrorIs(t, err, boom)
	})
}

// clockBackend expira as chaves por um relógio controlado pelo teste
type clockBackend struct {
	now     time.Time
	entries map[string]clockEntry
}

type clockEntry struct {
	value     []byte
	expiresAt time.Time
}

func newClockBackend(start time.Time) *clockBackend {
	return &clockBackend{now: start, entries: map[string]clockEntry{}}
}

func (b *clockBackend) Name() string { return cache.BackendMemory }

func (b *clockBackend) Get(_ context.Context, key string) ([]byte, bool, error) {
	entry, ok := b.entries[key]
	if !ok || !b.now.Before(entry.expiresAt) {
		return nil, false, nil
	}
	return entry.value, true, nil
}

func (b *clockBackend) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	b.entries[key] = clockEntry{value: value, expiresAt: b.now.Add(ttl)}
	return nil
}

func (b *clockBackend) Delete(_ context.Context, key string) error {
	delete(b.entries, key)
	return nil
}

func (b *clockBackend) advance(d time.Duration) { b.now = b.now.Add(d) }

func TestCoordinator_Invalidate_ChaveRegravadaContinuaNoIndice(t *testing.T) {
	start := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		setup func(t *testing.T, b *clockBackend, s *Service, compute func(context.Context) (int, error))
		read  func(s *Service, compute func(context.Context) (int, error)) int
	}{
		{
			name: "chave que expirou e foi recalculada depois de outra",
			setup: func(t *testing.T, b *clockBackend, s *Service, compute func(context.Context) (int, error)) {
				ctx := tenantContext("t1")
				_, _ = Remember(ctx, s, GoalsData, compute, String("view", "simulation"))
				b.advance(100 * time.Second)
				_, _ = Remember(ctx, s, GoalsData, compute, String("view", "bonuses"))
				b.advance(1701 * time.Second)
				_, _ = Remember(ctx, s, GoalsData, compute, String("view", "simulation"))
				b.advance(200 * time.Second)
			},
			read: func(s *Service, compute func(context.Context) (int, error)) int {
				v, _ := Remember(tenantContext("t1"), s, GoalsData, compute, String("view", "simulation"))
				return v
			},
		},
		{
			name: "TTL próprio mais longo não é encurtado pelo índice",
			setup: func(t *testing.T, b *clockBackend, s *Service, compute func(context.Context) (int, error)) {
				ctx := tenantContext("t1")
				_, _ = RememberFor(ctx, s, GoalsData, 2*time.Hour, compute, String("view", "longa"))
				_, _ = Remember(ctx, s, GoalsData, compute, String("view", "curta"))
				b.advance(time.Hour)
			},
			read: func(s *Service, compute func(context.Context) (int, error)) int {
				v, _ := RememberFor(tenantContext("t1"), s, GoalsData, 2*time.Hour, compute, String("view", "longa"))
				return v
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			backend := newClockBackend(start)
			s := NewService(backend, nil, "rv").WithClock(func() time.Time { return backend.now })

			version := 1
			compute := func(context.Context) (int, error) { return version, nil }

			tt.setup(t, backend, s, compute)
			require.Equal(t, 1, tt.read(s, compute))

			version = 2
			require.NoError(t, NewCoordinator(s).Invalidate(tenantContext("t1"), EntityGoals))

			assert.Equal(t, 2, tt.read(s, compute))
		})
	}
}
