package scheduler

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/advisorhub/revenue-engine/infrastructure/cache"
	"github.com/advisorhub/revenue-engine/internal/config"
	"github.com/advisorhub/revenue-engine/internal/usecases/caching"
)

type stubProber struct {
	calls   atomic.Int32
	err     error
	release chan struct{}
}

func (p *stubProber) Probe(ctx context.Context) error {
	p.calls.Add(1)
	if p.release != nil {
		<-p.release
	}
	return p.err
}

func (p *stubProber) BackendName() string {
	return "stub"
}

func newConfig(enabled bool) *config.Config {
	return &config.Config{CacheHealthCheck: config.CacheHealthCheck{CronSchedule: "*/5 * * * *", Enabled: enabled}}
}

func TestCacheHealthService_CheckHealth(t *testing.T) {
	tests := []struct {
		name     string
		prober   *stubProber
		runs     int
		validate func(t *testing.T, service *CacheHealthService, err error)
	}{
		{
			name:   "backend saudável",
			prober: &stubProber{},
			runs:   1,
			validate: func(t *testing.T, service *CacheHealthService, err error) {
				require.NoError(t, err)
				status := service.GetStatus()
				assert.Equal(t, true, status["healthy"])
				assert.Equal(t, 0, status["consecutive_failures"])
				assert.NotContains(t, status, "last_error")
			},
		},
		{
			name:   "falhas consecutivas são contadas",
			prober: &stubProber{err: errors.New("conexão recusada")},
			runs:   3,
			validate: func(t *testing.T, service *CacheHealthService, err error) {
				require.Error(t, err)
				status := service.GetStatus()
				assert.Equal(t, false, status["healthy"])
				assert.Equal(t, 3, status["consecutive_failures"])
				assert.Equal(t, "conexão recusada", status["last_error"])
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewCacheHealthService(tt.prober, newConfig(false))

			var err error
			for i := 0; i < tt.runs; i++ {
				err = service.CheckHealth(context.Background())
			}

			assert.Equal(t, int32(tt.runs), tt.prober.calls.Load())
			tt.validate(t, service, err)
		})
	}
}

func TestCacheHealthService_IgnoraExecucaoConcorrente(t *testing.T) {
	prober := &stubProber{release: make(chan struct{})}
	service := NewCacheHealthService(prober, newConfig(false))

	done := make(chan error)
	go func() { done <- service.CheckHealth(context.Background()) }()

	require.Eventually(t, func() bool { return prober.calls.Load() == 1 }, time.Second, 5*time.Millisecond)

	assert.NoError(t, service.CheckHealth(context.Background()))
	assert.Equal(t, int32(1), prober.calls.Load())

	close(prober.release)
	assert.NoError(t, <-done)
}

func TestCacheHealthService_StartDesabilitado(t *testing.T) {
	service := NewCacheHealthService(&stubProber{}, newConfig(false))
	assert.NoError(t, service.Start(context.Background()))
}

func TestCacheHealthService_CronInvalido(t *testing.T) {
	cfg := newConfig(true)
	cfg.CacheHealthCheck.CronSchedule = "não é cron"

	service := NewCacheHealthService(&stubProber{}, cfg)
	assert.Error(t, service.Start(context.Background()))
}

func TestCacheHealthService_SondaReal(t *testing.T) {
	cacheService := caching.NewService(cache.NewMemoryBackend(time.Minute), nil, "test")
	service := NewCacheHealthService(cacheService, newConfig(false))

	require.NoError(t, service.CheckHealth(context.Background()))
	assert.Equal(t, "memory", service.GetStatus()["cache_backend"])
}
