// Package blob re-exports the asset storage abstractions and constructs the
// configured backend. Product imagery lives here and is served by the
// storefront under /assets/.
package blob

import (
	"context"

	"oceankicks/internal/blob/core"
	"oceankicks/internal/infra/blob/fs"
	memorystore "oceankicks/internal/infra/blob/memory"
	s3store "oceankicks/internal/infra/blob/s3"
)

type (
	// Driver identifies an asset backend driver.
	Driver = core.Driver
	// PutOptions configures an asset write.
	PutOptions = core.PutOptions
	// SignedURLOptions configures URL pre-signing.
	SignedURLOptions = core.SignedURLOptions
	// Info describes stored asset metadata.
	Info = core.Info
	// Store is the interface every asset backend implements.
	Store = core.Store
)

const (
	// DriverFilesystem is the local filesystem driver.
	DriverFilesystem = core.DriverFilesystem
	// DriverS3 is the S3-compatible driver.
	DriverS3 = core.DriverS3
	// DriverMemory is the in-memory test driver.
	DriverMemory = core.DriverMemory
)

// ErrUnsupported indicates an operation isn't supported by a driver.
var ErrUnsupported = core.ErrUnsupported

// NewFilesystem constructs a filesystem-backed Store rooted at the provided
// path. Call sites should depend on the interface, not the concrete type.
func NewFilesystem(root string) (Store, error) {
	return fs.New(root)
}

// NewMemory returns an in-memory Store suitable for tests.
func NewMemory() Store { return memorystore.New() }

// S3Config aliases the S3 construction parameters.
type S3Config = s3store.Config

// NewS3 constructs an S3-backed Store from the provided configuration.
func NewS3(ctx context.Context, cfg S3Config) (Store, error) {
	return s3store.New(ctx, cfg)
}

// NewMockS3ForTests exposes the in-memory S3 mock for cross-package tests.
func NewMockS3ForTests() Store { return s3store.NewMockForTests() }
