package cache

import (
	"context"
	"errors"
	"time"

	"github.com/bradfitz/gomemcache/memcache"
)

// maxRelativeExpiration é o limite do memcached para expiração relativa (30 dias)
const maxRelativeExpiration = 30 * 24 * time.Hour

type memcacheClient interface {
	Get(key string) (*memcache.Item, error)
	Set(item *memcache.Item) error
	Delete(key string) error
}

type MemcachedBackend struct {
	client memcacheClient
}

func NewMemcachedBackend(servers ...string) *MemcachedBackend {
	return &MemcachedBackend{client: memcache.New(servers...)}
}

func (b *MemcachedBackend) Name() string {
	return BackendMemcached
}

func (b *MemcachedBackend) Get(_ context.Context, key string) ([]byte, bool, error) {
	item, err := b.client.Get(key)
	if errors.Is(err, memcache.ErrCacheMiss) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, newBackendError(b.Name(), "get", key, err)
	}

	return item.Value, true, nil
}

func (b *MemcachedBackend) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	if ttl > maxRelativeExpiration {
		ttl = maxRelativeExpiration
	}

	expiration := int32(0)
	if ttl > 0 {
		expiration = int32(ttl / time.Second)
		if expiration == 0 {
			expiration = 1
		}
	}

	err := b.client.Set(&memcache.Item{Key: key, Value: value, Expiration: expiration})
	if err != nil {
		return newBackendError(b.Name(), "set", key, err)
	}
	return nil
}

func (b *MemcachedBackend) Delete(_ context.Context, key string) error {
	err := b.client.Delete(key)
	if err != nil && !errors.Is(err, memcache.ErrCacheMiss) {
		return newBackendError(b.Name(), "delete", key, err)
	}
	return nil
}
