package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App              App              `mapstructure:",squash"`
	Server           Server           `mapstructure:",squash"`
	Database         Database         `mapstructure:",squash"`
	Cache            Cache            `mapstructure:",squash"`
	CacheTTL         CacheTTL         `mapstructure:",squash"`
	CacheHealthCheck CacheHealthCheck `mapstructure:",squash"`
	Dashboard        Dashboard        `mapstructure:",squash"`
	SecretKey        string           `mapstructure:"secret_key"`
}

type Server struct {
	Host           string   `mapstructure:"host"`
	Port           string   `mapstructure:"port"`
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

type Database struct {
	DSN          string `mapstructure:"-"`
	Driver       string `mapstructure:"database_driver"`
	Password     string `mapstructure:"database_password"`
	URL          string `mapstructure:"database_url"`
	User         string `mapstructure:"database_user"`
	MaxOpenConns int    `mapstructure:"database_max_open_conns"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

// Cache seleciona o backend do cache de resultados
type Cache struct {
	Backend          string        `mapstructure:"cache_backend"`
	KeyPrefix        string        `mapstructure:"cache_key_prefix"`
	CleanupInterval  time.Duration `mapstructure:"cache_cleanup_interval"`
	RedisAddr        string        `mapstructure:"redis_addr"`
	RedisPassword    string        `mapstructure:"redis_password"`
	RedisDB          int           `mapstructure:"redis_db"`
	MemcachedServers []string      `mapstructure:"memcached_servers"`
}

// CacheTTL guarda o tempo de vida, em segundos, de cada namespace
type CacheTTL struct {
	ClientsList      int `mapstructure:"cache_ttl_clients_list"`
	ProductsList     int `mapstructure:"cache_ttl_products_list"`
	RevenueCalc      int `mapstructure:"cache_ttl_revenue_calc"`
	DashboardData    int `mapstructure:"cache_ttl_dashboard_data"`
	GoalsData        int `mapstructure:"cache_ttl_goals_data"`
	UserMetadata     int `mapstructure:"cache_ttl_user_metadata"`
	DashboardMetrics int `mapstructure:"cache_ttl_dashboard_metrics"`
}

type CacheHealthCheck struct {
	CronSchedule string `mapstructure:"cache_health_check_cron"`
	Enabled      bool   `mapstructure:"cache_health_check_enabled"`
}

type Dashboard struct {
	TopProducts int `mapstructure:"dashboard_top_products"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/revenue?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")
	viper.SetDefault("DATABASE_MAX_OPEN_CONNS", 10)

	viper.SetDefault("SECRET_KEY", "your_secret_key")

	viper.SetDefault("CACHE_BACKEND", "memory")
	viper.SetDefault("CACHE_KEY_PREFIX", "revenue")
	viper.SetDefault("CACHE_CLEANUP_INTERVAL", "10m")
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_DB", 0)
	viper.SetDefault("MEMCACHED_SERVERS", "localhost:11211")

	// TTL em segundos por namespace
	viper.SetDefault("CACHE_TTL_CLIENTS_LIST", 900)
	viper.SetDefault("CACHE_TTL_PRODUCTS_LIST", 1200)
	viper.SetDefault("CACHE_TTL_REVENUE_CALC", 300)
	viper.SetDefault("CACHE_TTL_DASHBOARD_DATA", 600)
	viper.SetDefault("CACHE_TTL_GOALS_DATA", 1800)
	viper.SetDefault("CACHE_TTL_USER_METADATA", 3600)
	viper.SetDefault("CACHE_TTL_DASHBOARD_METRICS", 180)

	viper.SetDefault("CACHE_HEALTH_CHECK_CRON", "*/5 * * * *") // A cada 5 minutos
	viper.SetDefault("CACHE_HEALTH_CHECK_ENABLED", false)

	viper.SetDefault("DASHBOARD_TOP_PRODUCTS", 5)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	// Configurar valores padrão
	SetDefaults()

	// Configurar o Viper
	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv() // Isso permite que o Viper leia variáveis de ambiente

	// Tentar ler o arquivo .env com o Viper (opcional, já que usamos godotenv)
	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	// Tentar várias localizações possíveis para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),               // Diretório atual
		filepath.Join(filepath.Dir(cwd), ".env"), // Diretório pai
		filepath.Join(cwd, "../../.env"),         // Dois diretórios acima
	}

	for _, location := range locations {
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
