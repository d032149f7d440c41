package postgres

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"io"
	"strings"
	"sync"
	"testing"

	"oceankicks/pkg/domain"
)

// stubStorage emulates the single-bucket state table behind a database/sql
// driver so the store can be exercised without a Postgres server.
type stubStorage struct {
	mu      sync.Mutex
	execs   []string
	payload []byte
	has     bool
}

func (s *stubStorage) seed(payload []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.payload = append([]byte(nil), payload...)
	s.has = true
}

func (s *stubStorage) stored() ([]byte, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]byte(nil), s.payload...), s.has
}

type stubConnector struct{ storage *stubStorage }

func (c stubConnector) Connect(context.Context) (driver.Conn, error) {
	return &stubConn{storage: c.storage}, nil
}

func (c stubConnector) Driver() driver.Driver { return stubDriver{} }

type stubDriver struct{}

func (stubDriver) Open(string) (driver.Conn, error) { return nil, errors.New("use connector") }

type stubConn struct{ storage *stubStorage }

func (c *stubConn) Prepare(string) (driver.Stmt, error) { return nil, errors.New("not supported") }
func (c *stubConn) Close() error                        { return nil }
func (c *stubConn) Begin() (driver.Tx, error)           { return nil, errors.New("not supported") }
func (c *stubConn) Ping(context.Context) error          { return nil }

func (c *stubConn) ExecContext(_ context.Context, query string, args []driver.NamedValue) (driver.Result, error) {
	c.storage.mu.Lock()
	defer c.storage.mu.Unlock()
	c.storage.execs = append(c.storage.execs, query)
	if strings.Contains(query, "INSERT INTO state") && len(args) == 2 {
		if payload, ok := args[1].Value.([]byte); ok {
			c.storage.payload = append([]byte(nil), payload...)
			c.storage.has = true
		}
	}
	return driver.RowsAffected(1), nil
}

func (c *stubConn) QueryContext(_ context.Context, query string, _ []driver.NamedValue) (driver.Rows, error) {
	if !strings.Contains(query, "SELECT payload") {
		return nil, errors.New("unexpected query: " + query)
	}
	c.storage.mu.Lock()
	defer c.storage.mu.Unlock()
	rows := &stubRows{}
	if c.storage.has {
		rows.payload = append([]byte(nil), c.storage.payload...)
		rows.pending = true
	}
	return rows, nil
}

type stubRows struct {
	payload []byte
	pending bool
}

func (r *stubRows) Columns() []string { return []string{"payload"} }
func (r *stubRows) Close() error      { return nil }

func (r *stubRows) Next(dest []driver.Value) error {
	if !r.pending {
		return io.EOF
	}
	dest[0] = r.payload
	r.pending = false
	return nil
}

func withStub(t *testing.T, storage *stubStorage) {
	t.Helper()
	restore := OverrideSQLOpen(func(_, _ string) (*sql.DB, error) {
		return sql.OpenDB(stubConnector{storage: storage}), nil
	})
	t.Cleanup(restore)
}

func TestPostgresStoreStartsEmptyAndEnsuresTable(t *testing.T) {
	storage := &stubStorage{}
	withStub(t, storage)

	store, err := NewStore("")
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })

	if got := store.State(context.Background()); len(got.Items) != 0 {
		t.Fatalf("expected empty start, got %+v", got)
	}
	sawDDL := false
	for _, stmt := range storage.execs {
		if strings.Contains(strings.ToUpper(stmt), "CREATE TABLE") {
			sawDDL = true
		}
	}
	if !sawDDL {
		t.Fatalf("expected state table DDL, got execs: %v", storage.execs)
	}
}

func TestPostgresStoreSnapshotsAndHydrates(t *testing.T) {
	ctx := context.Background()
	storage := &stubStorage{}
	withStub(t, storage)

	store, err := NewStore("")
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	store.Apply(ctx, domain.AddItem{Item: domain.LineItem{ID: "1", Name: "Wave Runner X", Price: 129, Qty: 2, Size: "42", Color: "Navy"}})
	_ = store.Close()

	payload, ok := storage.stored()
	if !ok {
		t.Fatalf("expected a snapshot upsert")
	}
	if got := domain.DecodeCartSnapshot(payload); got.ItemCount() != 2 {
		t.Fatalf("snapshot payload drifted: %+v", got)
	}

	// A fresh store against the same slot hydrates the committed state.
	second := &stubStorage{}
	second.seed(payload)
	withStub(t, second)
	reloaded, err := NewStore("")
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	t.Cleanup(func() { _ = reloaded.Close() })
	if got := reloaded.State(ctx); got.ItemCount() != 2 || !got.SidebarOpen {
		t.Fatalf("hydrated state drifted: %+v", got)
	}
}

func TestPostgresStoreToleratesCorruptPayload(t *testing.T) {
	storage := &stubStorage{}
	storage.seed([]byte(`{"items":"not-an-array"}`))
	withStub(t, storage)

	store, err := NewStore("")
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	if got := store.State(context.Background()); len(got.Items) != 0 {
		t.Fatalf("corrupt payload must hydrate empty, got %+v", got)
	}
}
