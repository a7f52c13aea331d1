// Package session guarda no contexto os dados do usuário autenticado.
// O tenant usado em consultas e chaves de cache vem exclusivamente daqui.
package session

import (
	"context"
	"errors"
	"strings"

	"github.com/advisorhub/revenue-engine/internal/domain"
)

type contextKey string

const claimsKey contextKey = "session_claims"

// ErrTenantNotResolved indica que não há sessão válida com tenant no contexto
var ErrTenantNotResolved = errors.New("tenant não resolvido a partir da sessão")

// WithClaims devolve um contexto carregando as claims da sessão
func WithClaims(ctx context.Context, claims *domain.Claims) context.Context {
	return context.WithValue(ctx, claimsKey, claims)
}

// ClaimsFromContext obtém as claims gravadas pelo middleware de autenticação
func ClaimsFromContext(ctx context.Context) (*domain.Claims, bool) {
	if ctx == nil {
		return nil, false
	}
	claims, ok := ctx.Value(claimsKey).(*domain.Claims)
	return claims, ok && claims != nil
}

// TenantID resolve o tenant da sessão
func TenantID(ctx context.Context) (string, error) {
	claims, ok := ClaimsFromContext(ctx)
	if !ok {
		return "", ErrTenantNotResolved
	}

	tenantID := strings.TrimSpace(claims.TenantID)
	if tenantID == "" {
		return "", ErrTenantNotResolved
	}

	return tenantID, nil
}
