package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Auditoria-api/internal/domain/entity"
	"github.com/jhoicas/Auditoria-api/internal/infrastructure/postgres"
)

// ──────────────────────────────────────────────────────────────────────────────
// Querier de captura: registra la última sentencia y sus argumentos.
// Sirve para verificar qué columnas toca cada sentencia sin una base real.
// ──────────────────────────────────────────────────────────────────────────────

type capturingQuerier struct {
	sql  string
	args []any
}

func (c *capturingQuerier) Exec(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	c.sql = sql
	c.args = args
	return pgconn.CommandTag{}, nil
}

func (c *capturingQuerier) Query(_ context.Context, sql string, args ...any) (pgx.Rows, error) {
	c.sql = sql
	c.args = args
	return emptyRows{}, nil
}

func (c *capturingQuerier) QueryRow(_ context.Context, sql string, args ...any) pgx.Row {
	c.sql = sql
	c.args = args
	return errRow{err: pgx.ErrNoRows}
}

var _ postgres.Querier = (*capturingQuerier)(nil)

type errRow struct{ err error }

func (r errRow) Scan(...any) error { return r.err }

// emptyRows un result set sin filas.
type emptyRows struct{}

func (emptyRows) Close()                                       {}
func (emptyRows) Err() error                                   { return nil }
func (emptyRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (emptyRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (emptyRows) Next() bool                                   { return false }
func (emptyRows) Scan(...any) error                            { return nil }
func (emptyRows) Values() ([]any, error)                       { return nil, nil }
func (emptyRows) RawValues() [][]byte                          { return nil }
func (emptyRows) Conn() *pgx.Conn                              { return nil }

// ──────────────────────────────────────────────────────────────────────────────
// Update: todos los campos de negocio viajan a la base, status nunca
// ──────────────────────────────────────────────────────────────────────────────

func TestAuditRepoUpdate_EscribeAuditNumber(t *testing.T) {
	q := &capturingQuerier{}
	repo := postgres.NewAuditRepository(q)

	audit := &entity.Audit{
		ID:           "audit-1",
		TenantID:     "tenant-1",
		AuditNumber:  "AUD-099",
		CustomerName: "Acme Ltda",
		AuditDate:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	require.NoError(t, repo.Update(context.Background(), audit))

	assert.Contains(t, q.sql, "audit_number = $3",
		"el patch de audit_number debe persistirse, no solo reflejarse en la respuesta")
	assert.Contains(t, q.sql, "customer_name = $4")
	assert.NotContains(t, q.sql, "status =",
		"Update nunca escribe status: las transiciones pasan por UpdateStatus")
	require.GreaterOrEqual(t, len(q.args), 3)
	assert.Equal(t, "AUD-099", q.args[2])
}

func TestLeadRepoUpdate_EscribeLeadNumber(t *testing.T) {
	q := &capturingQuerier{}
	repo := postgres.NewLeadRepository(q)

	lead := &entity.Lead{
		ID:          "lead-1",
		TenantID:    "tenant-1",
		LeadNumber:  "LEAD-099",
		CompanyName: "Industrias del Sur",
		Priority:    entity.LeadPriorityMedium,
		UpdatedAt:   time.Now(),
	}
	require.NoError(t, repo.Update(context.Background(), lead))

	assert.Contains(t, q.sql, "lead_number = $3",
		"el patch de lead_number debe persistirse, no solo reflejarse en la respuesta")
	assert.Contains(t, q.sql, "company_name = $4")
	assert.NotContains(t, q.sql, "status =")
	require.GreaterOrEqual(t, len(q.args), 3)
	assert.Equal(t, "LEAD-099", q.args[2])
}

// ──────────────────────────────────────────────────────────────────────────────
// Reportes: status NULL o vacío cae en el grupo "unknown"
// ──────────────────────────────────────────────────────────────────────────────

func TestReportRepo_CountsByStatus_AgrupaUnknown(t *testing.T) {
	q := &capturingQuerier{}
	repo := postgres.NewReportRepository(q)
	ctx := context.Background()

	_, err := repo.AuditCountsByStatus(ctx, "tenant-1")
	require.NoError(t, err)
	assert.Contains(t, q.sql, "COALESCE(NULLIF(status, ''), 'unknown')",
		"status NULL o vacío debe consolidarse en 'unknown', no romper el scan")

	_, err = repo.LeadCountsByStatus(ctx, "tenant-1")
	require.NoError(t, err)
	assert.Contains(t, q.sql, "COALESCE(NULLIF(status, ''), 'unknown')")
}
