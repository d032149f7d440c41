package blob

import (
	"context"
	"fmt"
	"os"

	s3store "oceankicks/internal/infra/blob/s3"
)

// Open selects an asset Store implementation using environment variables.
//
//	OCEANKICKS_BLOB_DRIVER: fs|s3|memory (default fs)
//	OCEANKICKS_BLOB_FS_ROOT: directory root when driver=fs
//	(S3 specific variables documented in the s3 driver package)
func Open(ctx context.Context) (Store, error) {
	driver := os.Getenv("OCEANKICKS_BLOB_DRIVER")
	if driver == "" {
		driver = string(DriverFilesystem)
	}
	switch Driver(driver) {
	case DriverFilesystem:
		return NewFilesystem(os.Getenv("OCEANKICKS_BLOB_FS_ROOT"))
	case DriverS3:
		return s3store.OpenFromEnv(ctx)
	case DriverMemory:
		return NewMemory(), nil
	default:
		return nil, fmt.Errorf("unknown blob driver %s", driver)
	}
}
