package sqlite

import (
	"context"
	"path/filepath"
	"strconv"
	"sync"
	"testing"

	"oceankicks/pkg/domain"
)

func TestSQLiteStorePersistAndReload(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "cart.db")

	store, err := NewStore(path)
	if err != nil {
		t.Skipf("sqlite unavailable: %v", err)
	}
	store.Apply(ctx, domain.AddItem{Item: domain.LineItem{ID: "1", Name: "Wave Runner X", Price: 129, Qty: 1, Size: "42", Color: "Navy"}})
	store.Apply(ctx, domain.AddItem{Item: domain.LineItem{ID: "1", Name: "Wave Runner X", Price: 129, Qty: 1, Size: "42", Color: "Navy"}})
	if err := store.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	reloaded, err := NewStore(path)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	t.Cleanup(func() { _ = reloaded.Close() })

	state := reloaded.State(ctx)
	if len(state.Items) != 1 || state.Items[0].Qty != 2 {
		t.Fatalf("expected merged entry with qty 2 after reload, got %+v", state.Items)
	}
	if !state.SidebarOpen {
		t.Fatalf("sidebar flag must survive reload")
	}
}

func TestSQLiteStoreConcurrentAppliesPersistLatestState(t *testing.T) {
	ctx := context.Background()
	store, err := NewStore(filepath.Join(t.TempDir(), "cart.db"))
	if err != nil {
		t.Skipf("sqlite unavailable: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })

	const writers = 8
	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			store.Apply(ctx, domain.AddItem{Item: domain.LineItem{ID: strconv.Itoa(n), Price: 10, Qty: 1}})
		}(i)
	}
	wg.Wait()

	var payload []byte
	if err := store.DB().QueryRow(`SELECT payload FROM state WHERE bucket = ?`, domain.CartStorageKey).Scan(&payload); err != nil {
		t.Fatalf("read slot: %v", err)
	}
	durable := domain.DecodeCartSnapshot(payload)
	if len(durable.Items) != writers {
		t.Fatalf("durable snapshot lags committed state: %+v", durable.Items)
	}
}

func TestSQLiteStoreStartsEmpty(t *testing.T) {
	store, err := NewStore(filepath.Join(t.TempDir(), "cart.db"))
	if err != nil {
		t.Skipf("sqlite unavailable: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	if got := store.State(context.Background()); len(got.Items) != 0 || got.SidebarOpen {
		t.Fatalf("fresh slot must hydrate empty, got %+v", got)
	}
}

func TestSQLiteStoreToleratesCorruptPayload(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "cart.db")

	store, err := NewStore(path)
	if err != nil {
		t.Skipf("sqlite unavailable: %v", err)
	}
	store.Apply(ctx, domain.AddItem{Item: domain.LineItem{ID: "1", Price: 10, Qty: 1}})
	if _, err := store.DB().Exec(`UPDATE state SET payload = ? WHERE bucket = ?`, []byte(`{"items":"not-an-array"}`), domain.CartStorageKey); err != nil {
		t.Fatalf("corrupt payload: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	reloaded, err := NewStore(path)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	t.Cleanup(func() { _ = reloaded.Close() })
	if got := reloaded.State(ctx); len(got.Items) != 0 {
		t.Fatalf("corrupt payload must hydrate to empty state, got %+v", got)
	}
}

func TestSQLiteStoreUsesVersionedBucket(t *testing.T) {
	ctx := context.Background()
	store, err := NewStore(filepath.Join(t.TempDir(), "cart.db"))
	if err != nil {
		t.Skipf("sqlite unavailable: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })

	store.Apply(ctx, domain.SetSidebarOpen{Open: true})

	var bucket string
	if err := store.DB().QueryRow(`SELECT bucket FROM state`).Scan(&bucket); err != nil {
		t.Fatalf("lookup bucket: %v", err)
	}
	if bucket != domain.CartStorageKey {
		t.Fatalf("expected bucket %q, got %q", domain.CartStorageKey, bucket)
	}
}
