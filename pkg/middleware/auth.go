package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/advisorhub/revenue-engine/internal/session"
	"github.com/advisorhub/revenue-engine/internal/usecases/authenticating"
	"github.com/advisorhub/revenue-engine/pkg/apiErrors"
	"github.com/advisorhub/revenue-engine/pkg/log"
)

// publicPaths não exigem token
var publicPaths = map[string]bool{
	"/v1/login":    true,
	"/healthcheck": true,
}

func AuthMiddleware(authService authenticating.Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if publicPaths[r.URL.Path] || r.Method == http.MethodOptions {
				next.ServeHTTP(w, r)
				return
			}

			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Authorization header is required", nil)
				return
			}

			tokenString := strings.TrimPrefix(authHeader, "Bearer ")
			if tokenString == authHeader {
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Bearer token is required", nil)
				return
			}

			claims, err := authService.ValidateToken(tokenString)
			if err != nil {
				code := apiErrors.ErrInvalidToken
				var authErr *authenticating.AuthError
				if errors.As(err, &authErr) {
					code = authErr.Code
				}

				logger := log.ForContext(r.Context()).WithError(err)
				if authenticating.IsAuthorizationError(err) {
					logger.Warn("Token rejeitado")
				} else {
					logger.Error("Erro ao validar token")
				}
				apiErrors.WriteError(w, code, "Invalid token", nil)
				return
			}

			recordTenant(r.Context(), claims.TenantID)
			ctx := log.WithTenant(session.WithClaims(r.Context(), claims), claims.TenantID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// TenantRequired bloqueia a requisição quando a sessão não identifica o tenant
func TenantRequired() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, err := session.TenantID(r.Context()); err != nil {
				log.ForContext(r.Context()).WithField("path", r.URL.Path).Warn("Tentativa de acesso sem tenant")
				apiErrors.WriteError(w, apiErrors.ErrTenantNotResolved, "Sessão sem tenant", nil)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
