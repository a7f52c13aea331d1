package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/advisorhub/revenue-engine/internal/domain"
)

func TestLoggingMiddleware_RegistraTenant(t *testing.T) {
	tests := []struct {
		name     string
		env      string
		header   string
		validate func(t *testing.T, entry *logrus.Entry)
	}{
		{
			name:   "produção com sessão",
			env:    "production",
			header: "Bearer abc",
			validate: func(t *testing.T, entry *logrus.Entry) {
				assert.Equal(t, "t1", entry.Data["tenant_id"])
				assert.Equal(t, http.StatusOK, entry.Data["status_code"])
				assert.NotEmpty(t, entry.Data["correlation_id"])
			},
		},
		{
			name:   "desenvolvimento com sessão",
			env:    "development",
			header: "Bearer abc",
			validate: func(t *testing.T, entry *logrus.Entry) {
				assert.Equal(t, "t1", entry.Data["tenant_id"])
			},
		},
		{
			name: "sem token não registra tenant",
			env:  "production",
			validate: func(t *testing.T, entry *logrus.Entry) {
				_, ok := entry.Data["tenant_id"]
				assert.False(t, ok)
				assert.Equal(t, http.StatusUnauthorized, entry.Data["status_code"])
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("APP_ENV", tt.env)
			hook := test.NewGlobal()
			defer hook.Reset()

			auth := stubAuthenticator{claims: &domain.Claims{UserID: "t1", TenantID: "t1"}}
			ok := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusOK)
			})
			h := LoggingMiddleware()(AuthMiddleware(auth)(ok))

			req := httptest.NewRequest(http.MethodGet, "/v1/clients", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			h.ServeHTTP(httptest.NewRecorder(), req)

			var last *logrus.Entry
			for _, entry := range hook.AllEntries() {
				if _, has := entry.Data["status_code"]; has {
					last = entry
				}
			}
			require.NotNil(t, last)
			tt.validate(t, last)
		})
	}
}

func TestLogPanicMiddleware(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	hook := test.NewGlobal()
	defer hook.Reset()

	boom := http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("falhou")
	})

	rec := httptest.NewRecorder()
	LogPanicMiddleware()(boom).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/dashboard", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "SRV_001")
	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, logrus.ErrorLevel, hook.LastEntry().Level)
	assert.Contains(t, hook.LastEntry().Data, "stack_trace")
}
