package middleware

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"runtime"
	"time"

	"github.com/advisorhub/revenue-engine/pkg/apiErrors"
	"github.com/advisorhub/revenue-engine/pkg/log"
)

// slowRequestThreshold marca requisições lentas no log de conclusão
const slowRequestThreshold = 500 * time.Millisecond

type contextKeyRequestTenant string

// requestTenantKey guarda o tenant resolvido pela autenticação para o log de conclusão
const requestTenantKey contextKeyRequestTenant = "requestTenant"

type requestTenant struct {
	id string
}

// recordTenant anota o tenant da sessão na requisição em andamento
func recordTenant(ctx context.Context, tenantID string) {
	if holder, ok := ctx.Value(requestTenantKey).(*requestTenant); ok {
		holder.id = tenantID
	}
}

// LoggingMiddleware registra o início e a conclusão de cada requisição HTTP.
// A conclusão leva o tenant quando a autenticação o resolveu.
func LoggingMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, correlationID := log.WithCorrelationID(r.Context())
			tenant := &requestTenant{}
			ctx = context.WithValue(ctx, requestTenantKey, tenant)
			r = r.WithContext(ctx)

			lrw := newLoggingResponseWriter(w)
			startTime := time.Now()
			isDev := log.IsDevelopment()

			if isDev {
				log.L.WithFields(log.Fields{
					"method": r.Method,
					"path":   r.URL.Path,
				}).Info("→ Iniciando requisição")
			} else {
				log.L.WithFields(log.Fields{
					"correlation_id": correlationID,
					"remote_addr":    r.RemoteAddr,
					"method":         r.Method,
					"path":           r.URL.Path,
					"query":          r.URL.RawQuery,
					"user_agent":     r.UserAgent(),
					"content_length": r.ContentLength,
				}).Info("Requisição iniciada")
			}

			next.ServeHTTP(lrw, r)

			elapsed := time.Since(startTime)
			fields := log.Fields{
				"method":      r.Method,
				"path":        r.URL.Path,
				"status_code": lrw.statusCode,
				"duration_ms": elapsed.Milliseconds(),
			}
			if !isDev {
				fields["correlation_id"] = correlationID
			}
			if tenant.id != "" {
				fields["tenant_id"] = tenant.id
			}

			logCompletion(log.L.WithFields(fields), lrw.statusCode, completionMessage(isDev, lrw.statusCode, elapsed))

			if elapsed > slowRequestThreshold {
				log.L.WithFields(fields).Warnf("Requisição lenta: %s %s (%s)", r.Method, r.URL.Path, formatDuration(elapsed))
			}
		})
	}
}

func completionMessage(isDev bool, statusCode int, elapsed time.Duration) string {
	if isDev {
		symbol := "✓"
		if statusCode >= 400 {
			symbol = "✗"
		}
		return fmt.Sprintf("%s Completada em %s", symbol, formatDuration(elapsed))
	}

	switch {
	case statusCode >= 500:
		return "Requisição finalizada com erro"
	case statusCode >= 400:
		return "Requisição finalizada com aviso"
	default:
		return "Requisição finalizada com sucesso"
	}
}

func logCompletion(logger log.Logger, statusCode int, msg string) {
	switch {
	case statusCode >= 500:
		logger.Error(msg)
	case statusCode >= 400:
		logger.Warn(msg)
	default:
		logger.Info(msg)
	}
}

// formatDuration formata a duração de forma humana
func formatDuration(d time.Duration) string {
	switch {
	case d < time.Millisecond:
		return fmt.Sprintf("%d µs", d.Microseconds())
	case d < time.Second:
		return fmt.Sprintf("%d ms", d.Milliseconds())
	default:
		return fmt.Sprintf("%.2f s", d.Seconds())
	}
}

// loggingResponseWriter captura o status code escrito pelo handler
type loggingResponseWriter struct {
	http.ResponseWriter
	statusCode int
}

func newLoggingResponseWriter(w http.ResponseWriter) *loggingResponseWriter {
	return &loggingResponseWriter{w, http.StatusOK}
}

func (lrw *loggingResponseWriter) WriteHeader(code int) {
	lrw.statusCode = code
	lrw.ResponseWriter.WriteHeader(code)
}

// LogPanicMiddleware recupera panics, registra a pilha e responde 500 em JSON
func LogPanicMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					stack := make([]byte, 4096)
					stackTrace := string(stack[:runtime.Stack(stack, false)])

					logger := log.ForContext(r.Context()).WithFields(log.Fields{
						"error":  err,
						"method": r.Method,
						"path":   r.URL.Path,
					})

					if log.IsDevelopment() {
						logger.Error("❌ PANIC na aplicação")
						fmt.Fprintf(os.Stderr, "\n\n=== STACK TRACE ===\n%s\n=================\n\n", stackTrace)
					} else {
						logger.WithField("stack_trace", stackTrace).Error("Erro não tratado na aplicação")
					}

					apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno no servidor", nil)
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
