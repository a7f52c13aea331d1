package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/advisorhub/revenue-engine/infrastructure/database/postgres"
	"github.com/advisorhub/revenue-engine/infrastructure/gateway"
	"github.com/advisorhub/revenue-engine/internal/domain"
	"github.com/advisorhub/revenue-engine/internal/session"
)

func setupGateway(t *testing.T) (*gateway.Gateway, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return NewGateway(db), mock
}

func tenantContext(tenantID string) context.Context {
	return session.WithClaims(context.Background(), &domain.Claims{TenantID: tenantID})
}

func TestClientRepository_ListClients(t *testing.T) {
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		ctx      context.Context
		setup    func(mock sqlmock.Sqlmock)
		validate func(t *testing.T, clients []*domain.Client, err error)
	}{
		{
			name: "lista os clientes do tenant normalizando modelo e repasse",
			ctx:  tenantContext("t1"),
			setup: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows([]string{"id", "code", "name", "model", "repasse", "net_total", "net_xp", "net_xp_global", "net_mb", "created_at", "updated_at"}).
					AddRow("c1", "123", "Ana", "fee based", 50, "1000.50", "0", "0", "0", now, now).
					AddRow("c2", "456", "Bruno", "", 42, "0", "0", "0", "0", now, now)

				mock.ExpectQuery(regexp.QuoteMeta("FROM clients WHERE (tenant_id = $1) ORDER BY name ASC LIMIT 1000 OFFSET 0")).
					WithArgs("t1").
					WillReturnRows(rows)
			},
			validate: func(t *testing.T, clients []*domain.Client, err error) {
				require.NoError(t, err)
				require.Len(t, clients, 2)
				assert.Equal(t, domain.ClientModelFeeBased, clients[0].Model)
				assert.Equal(t, 50, clients[0].Repasse)
				assert.True(t, decimal.RequireFromString("1000.5").Equal(clients[0].NetTotal))
				assert.Equal(t, domain.ClientModelTraditional, clients[1].Model)
				assert.Equal(t, 35, clients[1].Repasse)
			},
		},
		{
			name:  "sem sessão não consulta o banco",
			ctx:   context.Background(),
			setup: func(mock sqlmock.Sqlmock) {},
			validate: func(t *testing.T, clients []*domain.Client, err error) {
				assert.ErrorIs(t, err, session.ErrTenantNotResolved)
				assert.Nil(t, clients)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gw, mock := setupGateway(t)
			tt.setup(mock)

			clients, err := NewClientRepository(gw).ListClients(tt.ctx)

			tt.validate(t, clients, err)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestAllocationRepository_CreateAllocation(t *testing.T) {
	gw, mock := setupGateway(t)
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	allocation := &domain.Allocation{
		ID:        "a1",
		ClientID:  "c1",
		ProductID: "p1",
		Amount:    decimal.NewFromInt(100000),
		Status:    domain.StatusConfirmed,
		CreatedAt: now,
		UpdatedAt: now,
	}

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO allocations (id,tenant_id,client_id,product_id,amount,percentual,status,created_at,updated_at)")).
		WithArgs("a1", "t1", "c1", "p1", sqlmock.AnyArg(), sqlmock.AnyArg(), "CONFIRMED", now, now).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, NewAllocationRepository(gw).CreateAllocation(tenantContext("t1"), allocation))
	assert.Equal(t, "t1", allocation.TenantID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAllocationRepository_GetAllocation_NaoEncontrada(t *testing.T) {
	gw, mock := setupGateway(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM allocations WHERE (tenant_id = $1 AND id = $2)")).
		WithArgs("t1", "a9").
		WillReturnRows(sqlmock.NewRows(allocationColumns))

	allocation, err := NewAllocationRepository(gw).GetAllocation(tenantContext("t1"), "a9")
	require.NoError(t, err)
	assert.Nil(t, allocation)
}

func TestPreferenceRepository_GetRecurringCategories(t *testing.T) {
	tests := []struct {
		name string
		rows *sqlmock.Rows
		want domain.RecurringCategories
	}{
		{
			name: "sem preferência salva",
			rows: sqlmock.NewRows([]string{"recurring_categories"}),
			want: domain.RecurringCategories{},
		},
		{
			name: "lista configurada vazia",
			rows: sqlmock.NewRows([]string{"recurring_categories"}).AddRow("{}"),
			want: domain.RecurringCategories{Configured: true, Categories: []string{}},
		},
		{
			name: "lista configurada",
			rows: sqlmock.NewRows([]string{"recurring_categories"}).AddRow(`{"Fundos","Previdência"}`),
			want: domain.RecurringCategories{Configured: true, Categories: []string{"Fundos", "Previdência"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gw, mock := setupGateway(t)
			mock.ExpectQuery(regexp.QuoteMeta("SELECT recurring_categories FROM user_preferences WHERE (tenant_id = $1)")).
				WithArgs("t1").
				WillReturnRows(tt.rows)

			got, err := NewPreferenceRepository(gw).GetRecurringCategories(tenantContext("t1"))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRevenueItemRepository_ReplaceMonth(t *testing.T) {
	gw, mock := setupGateway(t)
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	items := []*domain.RevenueLineItem{
		{ID: "r1", ClientCode: "123", Product: "Fundos", Family: "Investimentos", CreatedAt: now},
		{ID: "r2", ClientCode: "456", Family: "Custódia", CreatedAt: now},
	}

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM revenue_line_items WHERE (tenant_id = $1 AND month = $2)")).
		WithArgs("t1", "2024-04").
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO revenue_line_items")).
		WillReturnResult(sqlmock.NewResult(0, 2))

	err := NewRevenueItemRepository(gw, nil).ReplaceMonth(tenantContext("t1"), "2024-04", items)
	require.NoError(t, err)
	assert.Equal(t, "2024-04", items[1].Month)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRevenueItemRepository_ReplaceMonth_Transacao(t *testing.T) {
	items := []*domain.RevenueLineItem{{ID: "r1", ClientCode: "123", Product: "Fundos", CreatedAt: time.Now()}}

	tests := []struct {
		name     string
		setup    func(mock sqlmock.Sqlmock)
		validate func(t *testing.T, err error)
	}{
		{
			name: "commit quando remoção e inserção funcionam",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec(regexp.QuoteMeta("DELETE FROM revenue_line_items")).
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectExec(regexp.QuoteMeta("INSERT INTO revenue_line_items")).
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectCommit()
			},
			validate: func(t *testing.T, err error) {
				assert.NoError(t, err)
			},
		},
		{
			name: "rollback quando a inserção falha",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec(regexp.QuoteMeta("DELETE FROM revenue_line_items")).
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectExec(regexp.QuoteMeta("INSERT INTO revenue_line_items")).
					WillReturnError(assert.AnError)
				mock.ExpectRollback()
			},
			validate: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, assert.AnError)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.setup(mock)

			conn := &postgres.Connection{DB: db}
			repo := NewRevenueItemRepository(NewGateway(db), conn)

			tt.validate(t, repo.ReplaceMonth(tenantContext("t1"), "2024-04", items))
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestUserRepository_GetUserByEmail(t *testing.T) {
	gw, mock := setupGateway(t)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, name, email, password_hash, active, created_at, updated_at FROM users WHERE (email = $1) LIMIT 1 OFFSET 0")).
		WithArgs("ana@exemplo.com").
		WillReturnRows(sqlmock.NewRows(userColumns).AddRow("u1", "Ana", "ana@exemplo.com", "hash", true, now, now))

	user, err := NewUserRepository(gw).GetUserByEmail(context.Background(), "ana@exemplo.com")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "u1", user.ID)
}
