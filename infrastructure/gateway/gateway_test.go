package gateway

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/advisorhub/revenue-engine/internal/domain"
	"github.com/advisorhub/revenue-engine/internal/session"
)

func newGateway(t *testing.T) (*Gateway, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return New(db, "clients", "allocations"), mock
}

func tenantContext(tenantID string) context.Context {
	return session.WithClaims(context.Background(), &domain.Claims{TenantID: tenantID})
}

func scanName(names *[]string) ScanFunc {
	return func(row RowScanner) error {
		var name string
		if err := row.Scan(&name); err != nil {
			return err
		}
		*names = append(*names, name)
		return nil
	}
}

func TestQuery_ToSQL(t *testing.T) {
	g := New(nil, "clients")

	tests := []struct {
		name     string
		query    *Query
		wantSQL  string
		wantArgs []any
		wantErr  error
	}{
		{
			name:     "consulta completa com tenant",
			query:    g.Table("clients").Select("id", "name").Eq(TenantColumn, "t1").Eq("model", "ASSET").Order("name", false).Range(20, 10),
			wantSQL:  "SELECT id, name FROM clients WHERE (tenant_id = $1 AND model = $2) ORDER BY name ASC LIMIT 10 OFFSET 20",
			wantArgs: []any{"t1", "ASSET"},
		},
		{
			name:    "tabela com escopo sem filtro de tenant falha fechada",
			query:   g.Table("clients").Select("id").Eq("id", "c1"),
			wantErr: ErrMissingTenantFilter,
		},
		{
			name:    "tenant vazio não conta como filtro",
			query:   g.Table("clients").Select("id").Eq(TenantColumn, ""),
			wantErr: ErrMissingTenantFilter,
		},
		{
			name:    "consulta com escopo sem sessão",
			query:   g.Scoped(context.Background(), "clients").Select("id"),
			wantErr: session.ErrTenantNotResolved,
		},
		{
			name:     "tabela sem escopo dispensa tenant",
			query:    g.Table("users").Select("id").Eq("email", "a@b.com").Order("created_at", true),
			wantSQL:  "SELECT id FROM users WHERE (email = $1) ORDER BY created_at DESC",
			wantArgs: []any{"a@b.com"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := tt.query.ToSQL()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantSQL, query)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestQuery_Execute(t *testing.T) {
	t.Run("lê as linhas do tenant da sessão", func(t *testing.T) {
		g, mock := newGateway(t)

		mock.ExpectQuery(regexp.QuoteMeta("SELECT name FROM clients WHERE (tenant_id = $1) ORDER BY name ASC")).
			WithArgs("t1").
			WillReturnRows(sqlmock.NewRows([]string{"name"}).AddRow("Ana").AddRow("Bruno"))

		var names []string
		err := g.Scoped(tenantContext("t1"), "clients").Select("name").Order("name", false).Execute(context.Background(), scanName(&names))

		require.NoError(t, err)
		assert.Equal(t, []string{"Ana", "Bruno"}, names)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("sem filtro de tenant não consulta o banco", func(t *testing.T) {
		g, mock := newGateway(t)

		var names []string
		err := g.Table("allocations").Select("name").Execute(context.Background(), scanName(&names))

		assert.ErrorIs(t, err, ErrMissingTenantFilter)
		assert.Empty(t, names)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("erro do banco vira DataAccessError", func(t *testing.T) {
		g, mock := newGateway(t)
		boom := errors.New("connection reset")

		mock.ExpectQuery("SELECT name FROM clients").WillReturnError(boom)

		var names []string
		err := g.Scoped(tenantContext("t1"), "clients").Select("name").Execute(context.Background(), scanName(&names))

		var dataErr *DataAccessError
		require.True(t, errors.As(err, &dataErr))
		assert.Equal(t, "clients", dataErr.Table)
		assert.ErrorIs(t, err, boom)
	})
}

func TestQuery_FetchAll(t *testing.T) {
	g, mock := newGateway(t)

	first := sqlmock.NewRows([]string{"name"})
	for i := 0; i < PageSize; i++ {
		first.AddRow("c")
	}

	mock.ExpectQuery(regexp.QuoteMeta("LIMIT 1000 OFFSET 0")).WithArgs("t1").WillReturnRows(first)
	mock.ExpectQuery(regexp.QuoteMeta("LIMIT 1000 OFFSET 1000")).WithArgs("t1").
		WillReturnRows(sqlmock.NewRows([]string{"name"}).AddRow("último"))

	var names []string
	err := g.Scoped(tenantContext("t1"), "clients").Select("name").FetchAll(context.Background(), scanName(&names))

	require.NoError(t, err)
	assert.Len(t, names, PageSize+1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMutation_ToSQL(t *testing.T) {
	g := New(nil, "clients", "monthly_goals")
	ctx := tenantContext("t1")

	tests := []struct {
		name     string
		mutation *Mutation
		wantSQL  string
		wantArgs []any
		wantErr  error
	}{
		{
			name:     "inserção com tenant",
			mutation: g.Insert("clients", "id", TenantColumn, "name").Values("c1", "t1", "Ana"),
			wantSQL:  "INSERT INTO clients (id,tenant_id,name) VALUES ($1,$2,$3)",
			wantArgs: []any{"c1", "t1", "Ana"},
		},
		{
			name:     "inserção sem coluna de tenant",
			mutation: g.Insert("clients", "id", "name").Values("c1", "Ana"),
			wantErr:  ErrMissingTenantFilter,
		},
		{
			name:     "inserção com uma linha sem tenant",
			mutation: g.Insert("clients", "id", TenantColumn).Values("c1", "t1").Values("c2", ""),
			wantErr:  ErrMissingTenantFilter,
		},
		{
			name: "upsert de meta mensal",
			mutation: g.Insert("monthly_goals", TenantColumn, "month", "target_revenue").
				Values("t1", "2024-05", "1000").
				OnConflict([]string{TenantColumn, "month"}, "target_revenue"),
			wantSQL:  "INSERT INTO monthly_goals (tenant_id,month,target_revenue) VALUES ($1,$2,$3) ON CONFLICT (tenant_id, month) DO UPDATE SET target_revenue = EXCLUDED.target_revenue",
			wantArgs: []any{"t1", "2024-05", "1000"},
		},
		{
			name:     "atualização com escopo da sessão",
			mutation: g.ScopedUpdate(ctx, "clients").Set("name", "Ana").Set("model", "ASSET").Eq("id", "c1"),
			wantSQL:  "UPDATE clients SET model = $1, name = $2 WHERE (tenant_id = $3 AND id = $4)",
			wantArgs: []any{"ASSET", "Ana", "t1", "c1"},
		},
		{
			name:     "atualização sem tenant",
			mutation: g.Update("clients").Set("name", "Ana").Eq("id", "c1"),
			wantErr:  ErrMissingTenantFilter,
		},
		{
			name:     "remoção com escopo da sessão",
			mutation: g.ScopedDelete(ctx, "clients").Eq("id", "c1"),
			wantSQL:  "DELETE FROM clients WHERE (tenant_id = $1 AND id = $2)",
			wantArgs: []any{"t1", "c1"},
		},
		{
			name:     "remoção sem sessão",
			mutation: g.ScopedDelete(context.Background(), "clients").Eq("id", "c1"),
			wantErr:  session.ErrTenantNotResolved,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := tt.mutation.ToSQL()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantSQL, query)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestMutation_ExecOne(t *testing.T) {
	g, mock := newGateway(t)
	ctx := tenantContext("t1")

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM clients WHERE (tenant_id = $1 AND id = $2)")).
		WithArgs("t1", "c1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM clients WHERE (tenant_id = $1 AND id = $2)")).
		WithArgs("t1", "c2").
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, g.ScopedDelete(ctx, "clients").Eq("id", "c1").ExecOne(ctx))
	assert.ErrorIs(t, g.ScopedDelete(ctx, "clients").Eq("id", "c2").ExecOne(ctx), ErrNoRowsAffected)
	assert.NoError(t, mock.ExpectationsWereMet())
}
