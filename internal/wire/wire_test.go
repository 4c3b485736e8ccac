package wire

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"storefront/internal/data/repository"
	"storefront/pkg/token"
	"storefront/pkg/utils"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// stubDB satisfies database.PgxIface over an empty database: lookups find
// nothing, existence checks and counts scan their zero values, writes
// succeed. Lets the router be exercised end to end without Postgres.
type stubDB struct {
	execs int
}

type stubRow struct{}

func (stubRow) Scan(dest ...any) error {
	// EXISTS and COUNT queries scan a single bool/int64; leave the zero
	// value in place. Everything else behaves like a missing row.
	if len(dest) == 1 {
		switch dest[0].(type) {
		case *bool, *int64:
			return nil
		}
	}
	return pgx.ErrNoRows
}

type emptyRows struct{}

func (emptyRows) Close()                                       {}
func (emptyRows) Err() error                                   { return nil }
func (emptyRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (emptyRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (emptyRows) Next() bool                                   { return false }
func (emptyRows) Scan(dest ...any) error                       { return pgx.ErrNoRows }
func (emptyRows) Values() ([]any, error)                       { return nil, nil }
func (emptyRows) RawValues() [][]byte                          { return nil }
func (emptyRows) Conn() *pgx.Conn                              { return nil }

func (s *stubDB) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return emptyRows{}, nil
}

func (s *stubDB) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return stubRow{}
}

func (s *stubDB) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	s.execs++
	return pgconn.NewCommandTag("INSERT 0 1"), nil
}

func (s *stubDB) Begin(ctx context.Context) (pgx.Tx, error) { return nil, pgx.ErrTxClosed }
func (s *stubDB) Ping(ctx context.Context) error            { return nil }
func (s *stubDB) Close()                                    {}

func newTestApp(t *testing.T) (*App, *stubDB) {
	t.Helper()

	db := &stubDB{}
	logger := zap.NewNop()
	repos := repository.NewRepository(db, logger)
	config := &utils.Config{
		JWT: utils.JWTConfig{Secret: "test-secret", ExpiryMinutes: 60},
	}
	return Wiring(repos, config, logger), db
}

func TestRouter_NonPOSTMethodIsRejectedWithoutSideEffect(t *testing.T) {
	t.Parallel()

	app, db := newTestApp(t)

	for _, path := range []string{"/api/register", "/api/login"} {
		for _, method := range []string{http.MethodGet, http.MethodPut, http.MethodDelete} {
			req := httptest.NewRequest(method, path, nil)
			rec := httptest.NewRecorder()
			app.Router.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusMethodNotAllowed, rec.Code, "%s %s", method, path)
			assert.Contains(t, rec.Body.String(), "Method Not Allowed")
		}
	}

	req := httptest.NewRequest(http.MethodDelete, "/api/orders", nil)
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)

	// nothing was written
	assert.Zero(t, db.execs)
}

func TestRouter_UnknownPathIsJSON404(t *testing.T) {
	t.Parallel()

	app, _ := newTestApp(t)

	req := httptest.NewRequest(http.MethodPost, "/api/nope", nil)
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
}

func TestRouter_HealthCheck(t *testing.T) {
	t.Parallel()

	app, _ := newTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", rec.Body.String())
}

func TestRouter_RegisterFlowAgainstEmptyDatabase(t *testing.T) {
	t.Parallel()

	app, db := newTestApp(t)

	body := `{"username":"alice","email":"alice@example.com","password":"s3cret!"}`
	req := httptest.NewRequest(http.MethodPost, "/api/register", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "alice@example.com")
	assert.Equal(t, 1, db.execs)
}

func TestRouter_LoginUnknownEmailIs401(t *testing.T) {
	t.Parallel()

	app, _ := newTestApp(t)

	body := `{"email":"nobody@example.com","password":"s3cret!"}`
	req := httptest.NewRequest(http.MethodPost, "/api/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid credentials")
}

func TestRouter_OrderHistoryRequiresBearerToken(t *testing.T) {
	t.Parallel()

	app, _ := newTestApp(t)

	// no token
	req := httptest.NewRequest(http.MethodGet, "/api/orders", nil)
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// garbage token
	req = httptest.NewRequest(http.MethodGet, "/api/orders", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	rec = httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// valid token reaches the handler
	issuer := token.NewIssuer("test-secret", 60)
	signed, _, err := issuer.Issue(uuid.New(), "alice", "alice@example.com")
	require.NoError(t, err)

	req = httptest.NewRequest(http.MethodGet, "/api/orders", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	rec = httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}
