package blob

import (
	"bytes"
	"context"
	"fmt"
	"strings"
)

// placeholderPNG is a 1x1 transparent PNG used when no real imagery has been
// uploaded for a product yet.
var placeholderPNG = []byte{
	0x89, 0x50, 0x4e, 0x47, 0x0d, 0x0a, 0x1a, 0x0a, 0x00, 0x00, 0x00, 0x0d,
	0x49, 0x48, 0x44, 0x52, 0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x01,
	0x08, 0x06, 0x00, 0x00, 0x00, 0x1f, 0x15, 0xc4, 0x89, 0x00, 0x00, 0x00,
	0x0d, 0x49, 0x44, 0x41, 0x54, 0x78, 0x9c, 0x62, 0x00, 0x01, 0x00, 0x00,
	0x05, 0x00, 0x01, 0x0d, 0x0a, 0x2d, 0xb4, 0x00, 0x00, 0x00, 0x00, 0x49,
	0x45, 0x4e, 0x44, 0xae, 0x42, 0x60, 0x82,
}

// SeedPlaceholders writes a placeholder image for every key that does not
// exist yet. Existing assets are left untouched, so re-running at startup is
// safe. Returns the number of assets written.
func SeedPlaceholders(ctx context.Context, store Store, keys []string) (int, error) {
	seeded := 0
	for _, key := range keys {
		if strings.TrimSpace(key) == "" {
			continue
		}
		if _, err := store.Head(ctx, key); err == nil {
			continue
		}
		opts := PutOptions{ContentType: "image/png", Metadata: map[string]string{"seeded": "true"}}
		if _, err := store.Put(ctx, key, bytes.NewReader(placeholderPNG), opts); err != nil {
			return seeded, fmt.Errorf("seed asset %s: %w", key, err)
		}
		seeded++
	}
	return seeded, nil
}
