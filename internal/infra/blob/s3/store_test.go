package s3

import (
	"context"
	"io"
	"strings"
	"testing"

	"oceankicks/internal/blob/core"
)

func TestMockPutGetRoundTrip(t *testing.T) {
	store := NewMockForTests()
	ctx := context.Background()

	info, err := store.Put(ctx, "products/placeholder-1.png", strings.NewReader("png-bytes"), core.PutOptions{ContentType: "image/png"})
	if err != nil {
		t.Fatalf("put: %v", err)
	}
	if info.Key != "products/placeholder-1.png" || info.Size != int64(len("png-bytes")) {
		t.Fatalf("put info: %+v", info)
	}

	got, rc, err := store.Get(ctx, "products/placeholder-1.png")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	defer rc.Close()
	body, _ := io.ReadAll(rc)
	if string(body) != "png-bytes" || got.ContentType != "image/png" {
		t.Fatalf("get: %q %+v", body, got)
	}
}

func TestMockPutIsCreateOnly(t *testing.T) {
	store := NewMockForTests()
	ctx := context.Background()
	if _, err := store.Put(ctx, "a.png", strings.NewReader("one"), core.PutOptions{}); err != nil {
		t.Fatalf("first put: %v", err)
	}
	if _, err := store.Put(ctx, "a.png", strings.NewReader("two"), core.PutOptions{}); err == nil {
		t.Fatalf("second put must fail")
	}
}

func TestMockListAndDelete(t *testing.T) {
	store := NewMockForTests()
	ctx := context.Background()
	store.Put(ctx, "products/1.png", strings.NewReader("a"), core.PutOptions{})
	store.Put(ctx, "products/2.png", strings.NewReader("bb"), core.PutOptions{})
	store.Put(ctx, "banners/hero.png", strings.NewReader("c"), core.PutOptions{})

	infos, err := store.List(ctx, "products/")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(infos) != 2 || infos[0].Key != "products/1.png" || infos[1].Size != 2 {
		t.Fatalf("list: %+v", infos)
	}

	if deleted, err := store.Delete(ctx, "products/1.png"); err != nil || !deleted {
		t.Fatalf("delete: %v %v", deleted, err)
	}
	if _, err := store.Head(ctx, "products/1.png"); err == nil {
		t.Fatalf("deleted key must be gone")
	}
}

func TestMockPresignURL(t *testing.T) {
	store := NewMockForTests()
	ctx := context.Background()
	store.Put(ctx, "a.png", strings.NewReader("x"), core.PutOptions{})

	url, err := store.PresignURL(ctx, "a.png", core.SignedURLOptions{})
	if err != nil || !strings.Contains(url, "a.png") {
		t.Fatalf("presign: %q %v", url, err)
	}
	if _, err := store.PresignURL(ctx, "a.png", core.SignedURLOptions{Method: "PUT"}); err != core.ErrUnsupported {
		t.Fatalf("PUT presign must be unsupported, got %v", err)
	}
}

func TestOpenFromEnvRequiresBucket(t *testing.T) {
	t.Setenv("OCEANKICKS_BLOB_S3_BUCKET", "")
	if _, err := OpenFromEnv(context.Background()); err == nil {
		t.Fatalf("missing bucket must fail")
	}
}

func TestDriverIdentifier(t *testing.T) {
	if NewMockForTests().Driver() != core.DriverS3 {
		t.Fatalf("driver mismatch")
	}
}
