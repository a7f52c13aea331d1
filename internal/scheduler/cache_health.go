// Package scheduler contém os jobs agendados da aplicação
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"

	"github.com/advisorhub/revenue-engine/internal/config"
)

const probeTimeout = 5 * time.Second

// Prober verifica se o backend de cache responde a escrita, leitura e remoção
type Prober interface {
	Probe(ctx context.Context) error
	BackendName() string
}

type CacheHealthConfig struct {
	CronSchedule string
	Enabled      bool
}

// CacheHealthService executa periodicamente a sonda do backend de cache
type CacheHealthService struct {
	scheduler          *gocron.Scheduler
	prober             Prober
	config             CacheHealthConfig
	checkRunning       bool
	checkMutex         sync.Mutex
	lastCheckStartedAt time.Time
	lastCheckAt        time.Time
	lastError          error
	failures           int
}

func NewCacheHealthService(prober Prober, cfg *config.Config) *CacheHealthService {
	healthConfig := CacheHealthConfig{
		CronSchedule: cfg.CacheHealthCheck.CronSchedule, // Default: a cada 5 minutos
		Enabled:      cfg.CacheHealthCheck.Enabled,      // Default: desabilitado
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": healthConfig.CronSchedule,
		"cache_backend": prober.BackendName(),
	}).Info("Configuração da verificação de saúde do cache carregada")

	return &CacheHealthService{
		scheduler: gocron.NewScheduler(time.Local),
		prober:    prober,
		config:    healthConfig,
	}
}

func (s *CacheHealthService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Verificação de saúde do cache desabilitada por configuração")
		return nil
	}

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.CheckHealth(ctx); err != nil {
			logrus.WithError(err).Warn("Backend de cache indisponível")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar verificação de saúde do cache: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando verificação de saúde do cache")
		s.scheduler.Stop()
	}()

	return nil
}

// CheckHealth executa a sonda uma vez; uma execução em andamento faz a chamada retornar sem efeito
func (s *CacheHealthService) CheckHealth(ctx context.Context) error {
	s.checkMutex.Lock()
	if s.checkRunning {
		s.checkMutex.Unlock()
		logrus.Warn("Verificação de saúde do cache já está em execução")
		return nil
	}
	s.checkRunning = true
	s.lastCheckStartedAt = time.Now()
	s.checkMutex.Unlock()

	probeCtx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	err := s.prober.Probe(probeCtx)

	s.checkMutex.Lock()
	defer s.checkMutex.Unlock()

	s.checkRunning = false
	s.lastCheckAt = time.Now()
	s.lastError = err
	if err != nil {
		s.failures++
		return err
	}

	s.failures = 0
	logrus.WithField("cache_backend", s.prober.BackendName()).Debug("Backend de cache saudável")
	return nil
}

// TriggerManualCheck inicia uma verificação fora do agendamento
func (s *CacheHealthService) TriggerManualCheck() {
	s.checkMutex.Lock()
	if s.checkRunning {
		s.checkMutex.Unlock()
		logrus.Info("Verificação de saúde do cache já em andamento, ignorando solicitação manual")
		return
	}
	s.checkMutex.Unlock()

	go func() {
		if err := s.CheckHealth(context.Background()); err != nil {
			logrus.WithError(err).Warn("Backend de cache indisponível")
		}
	}()
}

// GetStatus retorna o resultado da última verificação
func (s *CacheHealthService) GetStatus() map[string]any {
	s.checkMutex.Lock()
	defer s.checkMutex.Unlock()

	status := map[string]any{
		"enabled":               s.config.Enabled,
		"cron":                  s.config.CronSchedule,
		"cache_backend":         s.prober.BackendName(),
		"healthy":               s.lastError == nil,
		"consecutive_failures":  s.failures,
		"last_check_started_at": s.lastCheckStartedAt,
		"last_check_at":         s.lastCheckAt,
	}
	if s.lastError != nil {
		status["last_error"] = s.lastError.Error()
	}
	return status
}
