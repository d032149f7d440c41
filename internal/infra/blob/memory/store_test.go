package memory

import (
	"context"
	"io"
	"strings"
	"testing"

	"oceankicks/internal/blob/core"
)

func TestPutGetHeadDelete(t *testing.T) {
	store := New()
	ctx := context.Background()

	info, err := store.Put(ctx, "products/1.png", strings.NewReader("bytes"), core.PutOptions{ContentType: "image/png"})
	if err != nil || info.Size != 5 {
		t.Fatalf("put: %v %+v", err, info)
	}
	if _, err := store.Put(ctx, "products/1.png", strings.NewReader("again"), core.PutOptions{}); err == nil {
		t.Fatalf("duplicate put must fail")
	}

	got, rc, err := store.Get(ctx, "products/1.png")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	body, _ := io.ReadAll(rc)
	rc.Close()
	if string(body) != "bytes" || got.ContentType != "image/png" {
		t.Fatalf("get: %q %+v", body, got)
	}

	if _, err := store.Head(ctx, "missing.png"); err == nil {
		t.Fatalf("head of missing key must fail")
	}

	deleted, _ := store.Delete(ctx, "products/1.png")
	if !deleted {
		t.Fatalf("delete must report true")
	}
	deleted, _ = store.Delete(ctx, "products/1.png")
	if deleted {
		t.Fatalf("second delete must report false")
	}
}

func TestListOrdersByKey(t *testing.T) {
	store := New()
	ctx := context.Background()
	store.Put(ctx, "b.png", strings.NewReader("b"), core.PutOptions{})
	store.Put(ctx, "a.png", strings.NewReader("a"), core.PutOptions{})
	store.Put(ctx, "products/c.png", strings.NewReader("c"), core.PutOptions{})

	all, err := store.List(ctx, "")
	if err != nil || len(all) != 3 || all[0].Key != "a.png" {
		t.Fatalf("list all: %v %+v", err, all)
	}
	scoped, _ := store.List(ctx, "products/")
	if len(scoped) != 1 || scoped[0].Key != "products/c.png" {
		t.Fatalf("scoped list: %+v", scoped)
	}
}

func TestGetReturnsCopies(t *testing.T) {
	store := New()
	ctx := context.Background()
	store.Put(ctx, "a.png", strings.NewReader("abc"), core.PutOptions{Metadata: map[string]string{"k": "v"}})

	info, rc, _ := store.Get(ctx, "a.png")
	rc.Close()
	info.Metadata["k"] = "mutated"

	again, _ := store.Head(ctx, "a.png")
	if again.Metadata["k"] != "v" {
		t.Fatalf("metadata must not be shared with callers: %+v", again)
	}
}

func TestPresignUnsupported(t *testing.T) {
	if _, err := New().PresignURL(context.Background(), "a", core.SignedURLOptions{}); err != core.ErrUnsupported {
		t.Fatalf("expected ErrUnsupported, got %v", err)
	}
}
