// Package log concentra o logging da API sobre o logrus.
//
// Cada linha de log emitida a partir de um contexto de requisição leva o
// correlation_id e, depois da autenticação, o tenant_id. Em desenvolvimento só
// os campos de depuração (requisição, tenant, acesso a dados e cache) são
// mantidos.
package log

import (
	"context"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Fields é um alias para logrus.Fields
type Fields logrus.Fields

// Logger é a interface de log usada pelas camadas da API
type Logger interface {
	WithField(key string, value interface{}) Logger
	WithFields(fields Fields) Logger
	WithError(err error) Logger
	WithContext(ctx context.Context) Logger

	Debug(args ...interface{})
	Debugf(format string, args ...interface{})
	Info(args ...interface{})
	Infof(format string, args ...interface{})
	Warn(args ...interface{})
	Warnf(format string, args ...interface{})
	Error(args ...interface{})
	Errorf(format string, args ...interface{})
	Fatal(args ...interface{})
	Fatalf(format string, args ...interface{})
	Panic(args ...interface{})
	Panicf(format string, args ...interface{})
}

type contextKey string

const (
	// CorrelationIDKey guarda o ID de correlação da requisição
	CorrelationIDKey contextKey = "correlation_id"
	tenantIDKey      contextKey = "tenant_id"

	correlationIDField = "correlation_id"
	tenantIDField      = "tenant_id"
)

// relevantFields são mantidos mesmo em desenvolvimento
var relevantFields = map[string]bool{
	correlationIDField: true,
	tenantIDField:      true,
	"method":           true,
	"path":             true,
	"status_code":      true,
	"duration_ms":      true,
	"error":            true,
	"table":            true,
	"op":               true,
}

type logger struct {
	entry *logrus.Entry
}

// L é o logger global, sobre o logger padrão do logrus
var L Logger = &logger{entry: logrus.NewEntry(logrus.StandardLogger())}

// Configure aplica o formato de texto com timestamp RFC3339 e o nível informado.
// Nível inválido cai para info e o erro de parse é devolvido.
func Configure(level string) (logrus.Level, error) {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})

	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		parsed = logrus.InfoLevel
	}
	logrus.SetLevel(parsed)

	return parsed, err
}

// IsDevelopment retorna verdadeiro se estamos em ambiente de desenvolvimento
func IsDevelopment() bool {
	env := os.Getenv("APP_ENV")
	return env == "" || env == "development" || env == "dev"
}

func isRelevantField(key string) bool {
	return relevantFields[key] || strings.HasPrefix(key, "user_") || strings.HasPrefix(key, "cache_")
}

func (l *logger) WithField(key string, value interface{}) Logger {
	if IsDevelopment() && !isRelevantField(key) {
		return l
	}
	return &logger{entry: l.entry.WithField(key, value)}
}

func (l *logger) WithFields(fields Fields) Logger {
	if !IsDevelopment() {
		return &logger{entry: l.entry.WithFields(logrus.Fields(fields))}
	}

	kept := make(logrus.Fields, len(fields))
	for k, v := range fields {
		if isRelevantField(k) {
			kept[k] = v
		}
	}
	if len(kept) == 0 {
		return l
	}
	return &logger{entry: l.entry.WithFields(kept)}
}

func (l *logger) WithError(err error) Logger {
	return &logger{entry: l.entry.WithError(err)}
}

// WithContext anexa o correlation_id e o tenant_id presentes no contexto
func (l *logger) WithContext(ctx context.Context) Logger {
	if ctx == nil {
		return l
	}

	fields := Fields{}
	if correlationID := GetCorrelationID(ctx); correlationID != "" {
		fields[correlationIDField] = correlationID
	}
	if tenantID := GetTenantID(ctx); tenantID != "" {
		fields[tenantIDField] = tenantID
	}
	if len(fields) == 0 {
		return l
	}
	return l.WithFields(fields)
}

func (l *logger) Debug(args ...interface{}) { l.entry.Debug(args...) }
func (l *logger) Debugf(format string, args ...interface{}) { l.entry.Debugf(format, args...) }
func (l *logger) Info(args ...interface{}) { l.entry.Info(args...) }
func (l *logger) Infof(format string, args ...interface{}) { l.entry.Infof(format, args...) }
func (l *logger) Warn(args ...interface{}) { l.entry.Warn(args...) }
func (l *logger) Warnf(format string, args ...interface{}) { l.entry.Warnf(format, args...) }
func (l *logger) Error(args ...interface{}) { l.entry.Error(args...) }
func (l *logger) Errorf(format string, args ...interface{}) { l.entry.Errorf(format, args...) }
func (l *logger) Fatal(args ...interface{}) { l.entry.Fatal(args...) }
func (l *logger) Fatalf(format string, args ...interface{}) { l.entry.Fatalf(format, args...) }
func (l *logger) Panic(args ...interface{}) { l.entry.Panic(args...) }
func (l *logger) Panicf(format string, args ...interface{}) { l.entry.Panicf(format, args...) }

// WithCorrelationID gera um ID de correlação e o coloca no contexto
func WithCorrelationID(ctx context.Context) (context.Context, string) {
	correlationID := uuid.New().String()
	return context.WithValue(ctx, CorrelationIDKey, correlationID), correlationID
}

func GetCorrelationID(ctx context.Context) string {
	correlationID, _ := ctx.Value(CorrelationIDKey).(string)
	return correlationID
}

// WithTenant marca o contexto com o tenant da sessão para os logs seguintes.
// O tenant dos logs é só informativo; o isolamento de dados usa a sessão.
func WithTenant(ctx context.Context, tenantID string) context.Context {
	return context.WithValue(ctx, tenantIDKey, tenantID)
}

func GetTenantID(ctx context.Context) string {
	tenantID, _ := ctx.Value(tenantIDKey).(string)
	return tenantID
}

// ForContext cria um logger com os campos de rastreio do contexto
func ForContext(ctx context.Context) Logger {
	return L.WithContext(ctx)
}
