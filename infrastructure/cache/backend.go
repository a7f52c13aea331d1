// Package cache contém os backends de armazenamento do cache de resultados derivados.
// Todos armazenam bytes já serializados, de forma que o comportamento é o mesmo
// independentemente do backend escolhido.
package cache

import (
	"context"
	"fmt"
	"strings"
	"time"
)

//go:generate mockgen -source=backend.go -destination=mocks/backend.go -package=mocks

const (
	BackendMemory    = "memory"
	BackendRedis     = "redis"
	BackendMemcached = "memcached"
)

type Backend interface {
	// Get retorna o valor e found=false quando a chave não existe ou expirou
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Name() string
}

// BackendError é a falha de uma operação no backend de cache
type BackendError struct {
	Backend string
	Op      string
	Key     string
	Err     error
}

func (e *BackendError) Error() string {
	return fmt.Sprintf("erro no cache %s (%s %s): %v", e.Backend, e.Op, e.Key, e.Err)
}

func (e *BackendError) Unwrap() error {
	return e.Err
}

func newBackendError(backend, op, key string, err error) error {
	return &BackendError{Backend: backend, Op: op, Key: key, Err: err}
}

// Options configura a criação do backend
type Options struct {
	Backend          string
	RedisAddr        string
	RedisPassword    string
	RedisDB          int
	MemcachedServers []string
	CleanupInterval  time.Duration
}

// New cria o backend indicado em opts.Backend; vazio usa memória
func New(opts Options) (Backend, error) {
	switch strings.ToLower(strings.TrimSpace(opts.Backend)) {
	case "", BackendMemory:
		return NewMemoryBackend(opts.CleanupInterval), nil
	case BackendRedis:
		if opts.RedisAddr == "" {
			return nil, fmt.Errorf("endereço do redis não configurado")
		}
		return NewRedisBackend(opts.RedisAddr, opts.RedisPassword, opts.RedisDB), nil
	case BackendMemcached:
		if len(opts.MemcachedServers) == 0 {
			return nil, fmt.Errorf("servidores do memcached não configurados")
		}
		return NewMemcachedBackend(opts.MemcachedServers...), nil
	default:
		return nil, fmt.Errorf("backend de cache desconhecido: %s", opts.Backend)
	}
}
