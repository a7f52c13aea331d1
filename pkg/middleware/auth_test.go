package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/advisorhub/revenue-engine/internal/domain"
	"github.com/advisorhub/revenue-engine/internal/session"
	"github.com/advisorhub/revenue-engine/internal/usecases/authenticating"
	"github.com/advisorhub/revenue-engine/pkg/apiErrors"
	"github.com/advisorhub/revenue-engine/pkg/log"
)

type stubAuthenticator struct {
	authenticating.Authenticator
	claims *domain.Claims
	err    error
}

func (s stubAuthenticator) ValidateToken(string) (*domain.Claims, error) {
	return s.claims, s.err
}

func TestAuthMiddleware(t *testing.T) {
	tenantEcho := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tenantID, _ := session.TenantID(r.Context())
		w.Header().Set("X-Log-Tenant", log.GetTenantID(r.Context()))
		_, _ = w.Write([]byte(tenantID))
	})

	tests := []struct {
		name     string
		path     string
		header   string
		auth     stubAuthenticator
		validate func(t *testing.T, rec *httptest.ResponseRecorder)
	}{
		{
			name:   "token válido coloca o tenant na sessão",
			path:   "/v1/clients",
			header: "Bearer abc",
			auth:   stubAuthenticator{claims: &domain.Claims{UserID: "u1", TenantID: "u1"}},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusOK, rec.Code)
				assert.Equal(t, "u1", rec.Body.String())
				assert.Equal(t, "u1", rec.Header().Get("X-Log-Tenant"))
			},
		},
		{
			name: "rota pública dispensa token",
			path: "/healthcheck",
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusOK, rec.Code)
			},
		},
		{
			name: "sem cabeçalho",
			path: "/v1/clients",
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusUnauthorized, rec.Code)
				assert.Contains(t, rec.Body.String(), apiErrors.ErrInvalidToken)
			},
		},
		{
			name:   "token expirado mantém o código do erro",
			path:   "/v1/clients",
			header: "Bearer abc",
			auth: stubAuthenticator{err: authenticating.NewAuthError(
				authenticating.ErrExpiredToken, apiErrors.ErrExpiredToken, "")},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusUnauthorized, rec.Code)
				assert.Contains(t, rec.Body.String(), apiErrors.ErrExpiredToken)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			AuthMiddleware(tt.auth)(tenantEcho).ServeHTTP(rec, req)
			tt.validate(t, rec)
		})
	}
}

func TestTenantRequired(t *testing.T) {
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusNoContent) })

	rec := httptest.NewRecorder()
	TenantRequired()(ok).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/dashboard", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), apiErrors.ErrTenantNotResolved)

	ctx := session.WithClaims(context.Background(), &domain.Claims{TenantID: "t1"})
	rec = httptest.NewRecorder()
	TenantRequired()(ok).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/dashboard", nil).WithContext(ctx))
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestCors(t *testing.T) {
	handler := Cors([]string{"http://localhost:3000"})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	req := httptest.NewRequest(http.MethodOptions, "/v1/clients", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/v1/clients", nil)
	req.Header.Set("Origin", "http://evil.example")
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}
