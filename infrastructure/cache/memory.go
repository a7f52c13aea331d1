package cache

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

const defaultCleanupInterval = 10 * time.Minute

// MemoryBackend guarda os valores no processo usando go-cache
type MemoryBackend struct {
	store *gocache.Cache
}

func NewMemoryBackend(cleanupInterval time.Duration) *MemoryBackend {
	if cleanupInterval <= 0 {
		cleanupInterval = defaultCleanupInterval
	}

	return &MemoryBackend{
		store: gocache.New(gocache.NoExpiration, cleanupInterval),
	}
}

func (b *MemoryBackend) Name() string {
	return BackendMemory
}

func (b *MemoryBackend) Get(_ context.Context, key string) ([]byte, bool, error) {
	value, found := b.store.Get(key)
	if !found {
		return nil, false, nil
	}

	data, ok := value.([]byte)
	if !ok {
		b.store.Delete(key)
		return nil, false, nil
	}

	// cópia para que o chamador não altere o valor armazenado
	return append([]byte(nil), data...), true, nil
}

func (b *MemoryBackend) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = gocache.NoExpiration
	}

	b.store.Set(key, append([]byte(nil), value...), ttl)
	return nil
}

func (b *MemoryBackend) Delete(_ context.Context, key string) error {
	b.store.Delete(key)
	return nil
}

// Len retorna a quantidade de itens ainda não removidos pela limpeza
func (b *MemoryBackend) Len() int {
	return b.store.ItemCount()
}
