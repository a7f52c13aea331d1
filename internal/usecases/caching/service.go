package caching

import (
	"context"
	"errors"
	"fmt"
	"time"

	jsoniter "github.com/json-iterator/go"

	"github.com/advisorhub/revenue-engine/infrastructure/cache"
	"github.com/advisorhub/revenue-engine/internal/session"
	"github.com/advisorhub/revenue-engine/pkg/log"
	"github.com/advisorhub/revenue-engine/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const DefaultPrefix = "revenue"

// Service memoriza resultados por tenant sobre um backend plugável
type Service struct {
	backend cache.Backend
	ttls    TTLConfig
	prefix  string
	now     func() time.Time
}

func NewService(backend cache.Backend, ttls TTLConfig, prefix string) *Service {
	if ttls == nil {
		ttls = DefaultTTLs()
	}
	if prefix == "" {
		prefix = DefaultPrefix
	}

	return &Service{
		backend: backend,
		ttls:    ttls,
		prefix:  prefix,
		now:     time.Now,
	}
}

// WithClock troca o relógio usado para calcular a validade do índice de chaves
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// BackendName retorna o nome do backend em uso
func (s *Service) BackendName() string {
	return s.backend.Name()
}

// TTL retorna o tempo de vida configurado do namespace
func (s *Service) TTL(ns Namespace) time.Duration {
	return s.ttls.For(ns)
}

// Remember devolve o valor em cache do namespace para o tenant da sessão ou
// calcula, grava com o TTL do namespace e devolve.
//
// Sem tenant na sessão o cálculo é feito direto e nada é gravado. Falhas do
// backend são registradas e o cálculo segue sem cache. Resultados de cálculos
// que retornaram erro nunca são gravados.
func Remember[T any](ctx context.Context, s *Service, ns Namespace, compute func(context.Context) (T, error), params ...Param) (T, error) {
	return RememberFor(ctx, s, ns, 0, compute, params...)
}

// RememberFor é Remember com TTL próprio; ttl <= 0 usa o do namespace
func RememberFor[T any](ctx context.Context, s *Service, ns Namespace, ttl time.Duration, compute func(context.Context) (T, error), params ...Param) (T, error) {
	if s == nil {
		return compute(ctx)
	}

	tenantID, err := session.TenantID(ctx)
	if err != nil {
		return compute(ctx)
	}

	key := NewKey(ns, tenantID, params...)
	rawKey := key.String(s.prefix)

	data, found, err := s.backend.Get(ctx, rawKey)
	if err != nil {
		s.logBackendError(ctx, err, ns, tenantID)
		return compute(ctx)
	}

	if found {
		var cached T
		if err := json.Unmarshal(data, &cached); err == nil {
			return cached, nil
		}

		s.logger(ctx, ns, tenantID).Warn("Valor em cache inválido, recalculando")
		_ = s.backend.Delete(ctx, rawKey)
	}

	value, err := compute(ctx)
	if err != nil {
		return value, err
	}

	payload, err := json.Marshal(value)
	if err != nil {
		s.logger(ctx, ns, tenantID).WithError(err).Warn("Erro ao serializar valor para o cache")
		return value, nil
	}

	if ttl <= 0 {
		ttl = s.ttls.For(ns)
	}

	if err := s.backend.Set(ctx, rawKey, payload, ttl); err != nil {
		s.logBackendError(ctx, err, ns, tenantID)
		return value, nil
	}

	if !key.IsDefault() {
		if err := s.track(ctx, ns, tenantID, rawKey, ttl); err != nil {
			s.logBackendError(ctx, err, ns, tenantID)
		}
	}

	return value, nil
}

// indexEntry é uma chave emitida e o instante em que ela expira no backend
type indexEntry struct {
	Key       string    `json:"key"`
	ExpiresAt time.Time `json:"expires_at"`
}

// track registra a chave emitida no índice do namespace, usado na invalidação.
// O índice é regravado a cada gravação da chave e vive até a expiração da
// chave mais longa que ele contém. Sem trava: duas gravações simultâneas podem
// perder uma entrada, que então expira pelo TTL.
func (s *Service) track(ctx context.Context, ns Namespace, tenantID, rawKey string, ttl time.Duration) error {
	entries, err := s.indexEntries(ctx, ns, tenantID)
	if err != nil {
		return err
	}

	now := s.now()
	kept := make([]indexEntry, 0, len(entries)+1)
	for _, entry := range entries {
		if entry.Key == rawKey || !entry.ExpiresAt.After(now) {
			continue
		}
		kept = append(kept, entry)
	}
	kept = append(kept, indexEntry{Key: rawKey, ExpiresAt: now.Add(ttl)})

	indexTTL := ttl
	for _, entry := range kept {
		if remaining := entry.ExpiresAt.Sub(now); remaining > indexTTL {
			indexTTL = remaining
		}
	}

	payload, err := json.Marshal(kept)
	if err != nil {
		return err
	}

	return s.backend.Set(ctx, indexKey(s.prefix, ns, tenantID), payload, indexTTL)
}

func (s *Service) trackedKeys(ctx context.Context, ns Namespace, tenantID string) ([]string, error) {
	entries, err := s.indexEntries(ctx, ns, tenantID)
	if err != nil {
		return nil, err
	}

	keys := make([]string, 0, len(entries))
	for _, entry := range entries {
		keys = append(keys, entry.Key)
	}
	return keys, nil
}

func (s *Service) indexEntries(ctx context.Context, ns Namespace, tenantID string) ([]indexEntry, error) {
	data, found, err := s.backend.Get(ctx, indexKey(s.prefix, ns, tenantID))
	if err != nil || !found {
		return nil, err
	}

	var entries []indexEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		// índice corrompido é descartado
		return nil, nil
	}
	return entries, nil
}

// Probe grava, lê e remove uma chave de teste no backend
func (s *Service) Probe(ctx context.Context) error {
	id, err := utils.GenerateID()
	if err != nil {
		return err
	}

	key := joinKey(s.prefix, "health", id)
	value := []byte(time.Now().UTC().Format(time.RFC3339Nano))

	if err := s.backend.Set(ctx, key, value, time.Minute); err != nil {
		return err
	}

	data, found, err := s.backend.Get(ctx, key)
	if err != nil {
		return err
	}
	if !found || string(data) != string(value) {
		return fmt.Errorf("chave de teste não encontrada no cache %s", s.backend.Name())
	}

	return s.backend.Delete(ctx, key)
}

func (s *Service) logger(ctx context.Context, ns Namespace, tenantID string) log.Logger {
	return log.ForContext(ctx).WithFields(log.Fields{
		"cache_backend":   s.backend.Name(),
		"cache_namespace": string(ns),
		"tenant_id":       tenantID,
	})
}

func (s *Service) logBackendError(ctx context.Context, err error, ns Namespace, tenantID string) {
	logger := s.logger(ctx, ns, tenantID).WithError(err)

	var backendErr *cache.BackendError
	if errors.As(err, &backendErr) {
		logger = logger.WithField("cache_op", backendErr.Op)
	}

	logger.Warn("Falha no backend de cache, seguindo sem cache")
}
