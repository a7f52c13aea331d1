// Package gateway é o adaptador de leitura e escrita das tabelas dos tenants.
// Toda operação em tabela com escopo de tenant exige um filtro explícito de
// tenant_id; sem ele a operação falha fechada, sem consultar o banco.
package gateway

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/Masterminds/squirrel"
	pkgerrors "github.com/pkg/errors"

	"github.com/advisorhub/revenue-engine/infrastructure/database/postgres"
	"github.com/advisorhub/revenue-engine/internal/session"
	"github.com/advisorhub/revenue-engine/pkg/log"
)

const (
	TenantColumn = "tenant_id"

	// PageSize é o tamanho da página usado por FetchAll
	PageSize = 1000
)

// RowScanner é satisfeito por *sql.Rows
type RowScanner interface {
	Scan(dest ...any) error
}

// ScanFunc é chamada uma vez para cada linha do resultado
type ScanFunc func(row RowScanner) error

type Gateway struct {
	db     postgres.Queryer
	scoped map[string]bool
}

// New cria o gateway; tenantScoped lista as tabelas que exigem filtro de tenant
func New(db postgres.Queryer, tenantScoped ...string) *Gateway {
	scoped := make(map[string]bool, len(tenantScoped))
	for _, table := range tenantScoped {
		scoped[table] = true
	}

	return &Gateway{db: db, scoped: scoped}
}

// WithQueryer devolve uma cópia do gateway executando em db, normalmente uma transação
func (g *Gateway) WithQueryer(db postgres.Queryer) *Gateway {
	return &Gateway{db: db, scoped: g.scoped}
}

// IsTenantScoped indica se a tabela exige filtro de tenant
func (g *Gateway) IsTenantScoped(table string) bool {
	return g.scoped[table]
}

type filter struct {
	column string
	value  any
}

type order struct {
	column string
	desc   bool
}

// Query é a consulta encadeada table/select/eq/order/range/execute
type Query struct {
	gateway *Gateway
	table   string
	columns []string
	filters []filter
	orders  []order
	offset  uint64
	limit   uint64
	err     error
}

// Table inicia uma consulta na tabela
func (g *Gateway) Table(name string) *Query {
	return &Query{gateway: g, table: name}
}

// Scoped inicia uma consulta já filtrada pelo tenant da sessão. Sem tenant a
// consulta falha com session.ErrTenantNotResolved ao ser executada.
func (g *Gateway) Scoped(ctx context.Context, name string) *Query {
	q := g.Table(name)

	tenantID, err := session.TenantID(ctx)
	if err != nil {
		q.err = err
		return q
	}

	return q.Eq(TenantColumn, tenantID)
}

func (q *Query) Select(columns ...string) *Query {
	q.columns = append(q.columns, columns...)
	return q
}

func (q *Query) Eq(column string, value any) *Query {
	q.filters = append(q.filters, filter{column: column, value: value})
	return q
}

func (q *Query) Order(column string, desc bool) *Query {
	q.orders = append(q.orders, order{column: column, desc: desc})
	return q
}

// Range limita o resultado a limit linhas a partir de offset
func (q *Query) Range(offset, limit uint64) *Query {
	q.offset = offset
	q.limit = limit
	return q
}

func (q *Query) hasTenantFilter() bool {
	for _, f := range q.filters {
		if f.column != TenantColumn {
			continue
		}
		if s, ok := f.value.(string); ok && strings.TrimSpace(s) != "" {
			return true
		}
	}
	return false
}

func (q *Query) where() squirrel.And {
	where := make(squirrel.And, 0, len(q.filters))
	for _, f := range q.filters {
		where = append(where, squirrel.Eq{f.column: f.value})
	}
	return where
}

// ToSQL monta o SQL da consulta
func (q *Query) ToSQL() (string, []any, error) {
	if q.err != nil {
		return "", nil, q.err
	}
	if q.gateway.IsTenantScoped(q.table) && !q.hasTenantFilter() {
		return "", nil, ErrMissingTenantFilter
	}

	columns := q.columns
	if len(columns) == 0 {
		columns = []string{"*"}
	}

	builder := squirrel.
		Select(columns...).
		From(q.table).
		PlaceholderFormat(squirrel.Dollar)

	if len(q.filters) > 0 {
		builder = builder.Where(q.where())
	}

	for _, o := range q.orders {
		if o.desc {
			builder = builder.OrderBy(o.column + " DESC")
		} else {
			builder = builder.OrderBy(o.column + " ASC")
		}
	}

	if q.limit > 0 {
		builder = builder.Limit(q.limit).Offset(q.offset)
	}

	return builder.ToSql()
}

// Execute executa a consulta chamando scan para cada linha
func (q *Query) Execute(ctx context.Context, scan ScanFunc) error {
	_, err := q.execute(ctx, scan)
	return err
}

func (q *Query) execute(ctx context.Context, scan ScanFunc) (int, error) {
	query, args, err := q.ToSQL()
	if err != nil {
		return 0, q.gateway.fail(ctx, q.table, "select", err)
	}

	rows, err := q.gateway.db.QueryContext(ctx, query, args...)
	if err != nil {
		return 0, q.gateway.fail(ctx, q.table, "select", pkgerrors.Wrapf(err, "erro ao consultar %s", q.table))
	}
	defer rows.Close()

	count := 0
	for rows.Next() {
		if err := scan(rows); err != nil {
			return count, q.gateway.fail(ctx, q.table, "scan", pkgerrors.Wrapf(err, "erro ao ler linha de %s", q.table))
		}
		count++
	}

	if err := rows.Err(); err != nil {
		return count, q.gateway.fail(ctx, q.table, "select", pkgerrors.Wrapf(err, "erro ao iterar %s", q.table))
	}

	return count, nil
}

// First executa a consulta limitada a uma linha e indica se ela existia
func (q *Query) First(ctx context.Context, scan ScanFunc) (bool, error) {
	count, err := q.Range(0, 1).execute(ctx, scan)
	return count > 0, err
}

// FetchAll percorre todas as páginas da consulta em blocos de PageSize
func (q *Query) FetchAll(ctx context.Context, scan ScanFunc) error {
	for offset := uint64(0); ; offset += PageSize {
		count, err := q.Range(offset, PageSize).execute(ctx, scan)
		if err != nil {
			return err
		}
		if count < PageSize {
			return nil
		}
	}
}

// Mutation é uma escrita (insert, update ou delete) em uma tabela
type Mutation struct {
	gateway    *Gateway
	kind       string
	table      string
	columns    []string
	rows       [][]any
	sets       map[string]any
	filters    []filter
	conflict   []string
	updateCols []string
	err        error
}

// Insert inicia uma inserção; tabelas com escopo de tenant exigem a coluna
// tenant_id preenchida em todas as linhas
func (g *Gateway) Insert(table string, columns ...string) *Mutation {
	return &Mutation{gateway: g, kind: "insert", table: table, columns: columns}
}

// Update inicia uma atualização; o filtro de tenant é obrigatório
func (g *Gateway) Update(table string) *Mutation {
	return &Mutation{gateway: g, kind: "update", table: table, sets: make(map[string]any)}
}

// Delete inicia uma remoção; o filtro de tenant é obrigatório
func (g *Gateway) Delete(table string) *Mutation {
	return &Mutation{gateway: g, kind: "delete", table: table}
}

// ScopedUpdate é Update já filtrado pelo tenant da sessão
func (g *Gateway) ScopedUpdate(ctx context.Context, table string) *Mutation {
	return g.Update(table).scope(ctx)
}

// ScopedDelete é Delete já filtrado pelo tenant da sessão
func (g *Gateway) ScopedDelete(ctx context.Context, table string) *Mutation {
	return g.Delete(table).scope(ctx)
}

func (m *Mutation) scope(ctx context.Context) *Mutation {
	tenantID, err := session.TenantID(ctx)
	if err != nil {
		m.err = err
		return m
	}
	return m.Eq(TenantColumn, tenantID)
}

func (m *Mutation) Values(values ...any) *Mutation {
	m.rows = append(m.rows, values)
	return m
}

func (m *Mutation) Set(column string, value any) *Mutation {
	m.sets[column] = value
	return m
}

func (m *Mutation) Eq(column string, value any) *Mutation {
	m.filters = append(m.filters, filter{column: column, value: value})
	return m
}

// OnConflict transforma a inserção em upsert, atualizando updateColumns
func (m *Mutation) OnConflict(conflictColumns []string, updateColumns ...string) *Mutation {
	m.conflict = conflictColumns
	m.updateCols = updateColumns
	return m
}

func (m *Mutation) hasTenantFilter() bool {
	q := Query{filters: m.filters}
	return q.hasTenantFilter()
}

func (m *Mutation) insertHasTenant() bool {
	idx := -1
	for i, c := range m.columns {
		if c == TenantColumn {
			idx = i
		}
	}
	if idx < 0 || len(m.rows) == 0 {
		return false
	}

	for _, row := range m.rows {
		if idx >= len(row) {
			return false
		}
		if s, ok := row[idx].(string); !ok || strings.TrimSpace(s) == "" {
			return false
		}
	}
	return true
}

// ToSQL monta o SQL da escrita
func (m *Mutation) ToSQL() (string, []any, error) {
	if m.err != nil {
		return "", nil, m.err
	}

	scoped := m.gateway.IsTenantScoped(m.table)
	q := Query{filters: m.filters}

	switch m.kind {
	case "insert":
		if scoped && !m.insertHasTenant() {
			return "", nil, ErrMissingTenantFilter
		}
		if len(m.rows) == 0 {
			return "", nil, fmt.Errorf("inserção em %s sem valores", m.table)
		}

		builder := squirrel.Insert(m.table).Columns(m.columns...).PlaceholderFormat(squirrel.Dollar)
		for _, row := range m.rows {
			builder = builder.Values(row...)
		}
		if len(m.conflict) > 0 {
			builder = builder.Suffix(m.conflictClause())
		}
		return builder.ToSql()

	case "update":
		if scoped && !m.hasTenantFilter() {
			return "", nil, ErrMissingTenantFilter
		}
		if len(m.sets) == 0 {
			return "", nil, fmt.Errorf("atualização em %s sem colunas", m.table)
		}

		builder := squirrel.Update(m.table).PlaceholderFormat(squirrel.Dollar)
		for _, column := range sortedKeys(m.sets) {
			builder = builder.Set(column, m.sets[column])
		}
		if len(m.filters) > 0 {
			builder = builder.Where(q.where())
		}
		return builder.ToSql()

	default:
		if scoped && !m.hasTenantFilter() {
			return "", nil, ErrMissingTenantFilter
		}

		builder := squirrel.Delete(m.table).PlaceholderFormat(squirrel.Dollar)
		if len(m.filters) > 0 {
			builder = builder.Where(q.where())
		}
		return builder.ToSql()
	}
}

func (m *Mutation) conflictClause() string {
	if len(m.updateCols) == 0 {
		return fmt.Sprintf("ON CONFLICT (%s) DO NOTHING", strings.Join(m.conflict, ", "))
	}

	sets := make([]string, 0, len(m.updateCols))
	for _, column := range m.updateCols {
		sets = append(sets, fmt.Sprintf("%s = EXCLUDED.%s", column, column))
	}
	return fmt.Sprintf("ON CONFLICT (%s) DO UPDATE SET %s", strings.Join(m.conflict, ", "), strings.Join(sets, ", "))
}

// Exec executa a escrita e retorna as linhas afetadas
func (m *Mutation) Exec(ctx context.Context) (int64, error) {
	query, args, err := m.ToSQL()
	if err != nil {
		return 0, m.gateway.fail(ctx, m.table, m.kind, err)
	}

	result, err := m.gateway.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, m.gateway.fail(ctx, m.table, m.kind, pkgerrors.Wrapf(err, "erro ao executar %s em %s", m.kind, m.table))
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, nil
	}
	return affected, nil
}

// ExecOne é Exec exigindo ao menos uma linha afetada
func (m *Mutation) ExecOne(ctx context.Context) error {
	affected, err := m.Exec(ctx)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNoRowsAffected
	}
	return nil
}

// fail registra o erro e o devolve como DataAccessError. Falhas de escopo de
// tenant não são embrulhadas para continuarem comparáveis com errors.Is.
func (g *Gateway) fail(ctx context.Context, table, op string, err error) error {
	logger := log.ForContext(ctx).WithFields(log.Fields{
		"table": table,
		"op":    op,
	}).WithError(err)

	if errors.Is(err, ErrMissingTenantFilter) || errors.Is(err, session.ErrTenantNotResolved) {
		logger.Error("Operação bloqueada por falta de filtro de tenant")
		return err
	}

	if errors.Is(err, sql.ErrNoRows) {
		return err
	}

	logger.Error("Erro de acesso a dados")
	return &DataAccessError{Table: table, Op: op, Err: err}
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
