package session

import (
	"context"
	"testing"

	"github.com/advisorhub/revenue-engine/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTenantID(t *testing.T) {
	t.Run("sem claims no contexto", func(t *testing.T) {
		_, err := TenantID(context.Background())
		assert.ErrorIs(t, err, ErrTenantNotResolved)
	})

	t.Run("claims com tenant vazio", func(t *testing.T) {
		ctx := WithClaims(context.Background(), &domain.Claims{UserID: "u1", TenantID: "  "})
		_, err := TenantID(ctx)
		assert.ErrorIs(t, err, ErrTenantNotResolved)
	})

	t.Run("claims nil", func(t *testing.T) {
		ctx := WithClaims(context.Background(), nil)
		_, err := TenantID(ctx)
		assert.ErrorIs(t, err, ErrTenantNotResolved)
	})

	t.Run("tenant válido", func(t *testing.T) {
		ctx := WithClaims(context.Background(), &domain.Claims{UserID: "u1", TenantID: "tenant-a"})
		tenantID, err := TenantID(ctx)
		require.NoError(t, err)
		assert.Equal(t, "tenant-a", tenantID)
	})
}
