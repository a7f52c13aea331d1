package main

import (
	"context"
	"os"
	"path"
	"runtime"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/advisorhub/revenue-engine/infrastructure/cache"
	"github.com/advisorhub/revenue-engine/infrastructure/database/postgres"
	"github.com/advisorhub/revenue-engine/infrastructure/repository"
	"github.com/advisorhub/revenue-engine/internal/api"
	"github.com/advisorhub/revenue-engine/internal/config"
	"github.com/advisorhub/revenue-engine/internal/scheduler"
	"github.com/advisorhub/revenue-engine/internal/usecases/authenticating"
	"github.com/advisorhub/revenue-engine/internal/usecases/caching"
	"github.com/advisorhub/revenue-engine/internal/usecases/managing"
	"github.com/advisorhub/revenue-engine/internal/usecases/reporting"
	"github.com/advisorhub/revenue-engine/pkg/log"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	// Valores monetários saem como número no JSON
	decimal.MarshalJSONWithoutQuotes = true

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := log.Configure(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
	}
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	gw := repository.NewGateway(pgConn)

	repos := reporting.Repositories{
		Clients:      repository.NewClientRepository(gw),
		Products:     repository.NewProductRepository(gw),
		Allocations:  repository.NewAllocationRepository(gw),
		Goals:        repository.NewGoalRepository(gw),
		Bonuses:      repository.NewBonusRepository(gw),
		RevenueItems: repository.NewRevenueItemRepository(gw, pgConn),
		Preferences:  repository.NewPreferenceRepository(gw),
	}
	userRepo := repository.NewUserRepository(gw)

	cacheService := newCacheService(cfg)
	coordinator := caching.NewCoordinator(cacheService)

	reporter := reporting.NewService(repos, cacheService, cfg)
	manager := managing.NewService(managing.Repositories(repos), coordinator)
	authenticator := authenticating.NewService(userRepo, cfg)

	cacheHealthService := scheduler.NewCacheHealthService(cacheService, cfg)
	if err := cacheHealthService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de verificação do cache")
	} else if cfg.CacheHealthCheck.Enabled {
		logrus.Info("Agendador de verificação do cache iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		reporter,
		manager,
		authenticator,
		cacheHealthService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	_, _ = log.Configure(logrus.InfoLevel.String())
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}

// newCacheService cria o backend configurado e a tabela de TTL por namespace
func newCacheService(cfg *config.Config) *caching.Service {
	backend, err := cache.New(cache.Options{
		Backend:          cfg.Cache.Backend,
		RedisAddr:        cfg.Cache.RedisAddr,
		RedisPassword:    cfg.Cache.RedisPassword,
		RedisDB:          cfg.Cache.RedisDB,
		MemcachedServers: cfg.Cache.MemcachedServers,
		CleanupInterval:  cfg.Cache.CleanupInterval,
	})
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao criar o backend de cache")
	}

	ttls := caching.TTLFromSeconds(map[caching.Namespace]int{
		caching.ClientsList:      cfg.CacheTTL.ClientsList,
		caching.ProductsList:     cfg.CacheTTL.ProductsList,
		caching.RevenueCalc:      cfg.CacheTTL.RevenueCalc,
		caching.DashboardData:    cfg.CacheTTL.DashboardData,
		caching.GoalsData:        cfg.CacheTTL.GoalsData,
		caching.UserMetadata:     cfg.CacheTTL.UserMetadata,
		caching.DashboardMetrics: cfg.CacheTTL.DashboardMetrics,
	})

	logrus.WithField("cache_backend", backend.Name()).Info("Backend de cache configurado")
	return caching.NewService(backend, ttls, cfg.Cache.KeyPrefix)
}
