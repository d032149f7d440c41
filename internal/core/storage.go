package core

import (
	"fmt"
	"os"

	"oceankicks/internal/infra/persistence/file"
	"oceankicks/internal/infra/persistence/memory"
	"oceankicks/internal/infra/persistence/postgres"
	"oceankicks/internal/infra/persistence/sqlite"
	"oceankicks/pkg/domain"
)

// StorageDriver identifies a concrete cart persistence implementation.
type StorageDriver string

const (
	StorageMemory   StorageDriver = "memory"   // in-memory only (tests / ephemeral)
	StorageFile     StorageDriver = "file"     // JSON snapshot file
	StorageSQLite   StorageDriver = "sqlite"   // embedded sqlite file
	StoragePostgres StorageDriver = "postgres" // PostgreSQL server
)

// OpenCartStore selects a backend using environment variables and wires
// snapshot-write failures into the supplied logger. Defaults to sqlite when
// unset.
//
//	OCEANKICKS_STORAGE_DRIVER: memory|file|sqlite|postgres (default sqlite)
//	OCEANKICKS_FILE_PATH: path to snapshot file (default ./oceankicks-cart.json)
//	OCEANKICKS_SQLITE_PATH: path to sqlite file (default ./oceankicks.db)
//	OCEANKICKS_POSTGRES_DSN: postgres DSN when driver=postgres
func OpenCartStore(logger Logger) (domain.CartStore, error) {
	if logger == nil {
		logger = noopLogger{}
	}
	driver := os.Getenv("OCEANKICKS_STORAGE_DRIVER")
	if driver == "" {
		driver = string(StorageSQLite)
	}
	onPersistError := func(err error) {
		logger.Warn("cart snapshot write failed; continuing from memory", "error", err)
	}
	switch StorageDriver(driver) {
	case StorageMemory:
		return memory.NewStore(), nil
	case StorageFile:
		fs, err := file.NewStore(os.Getenv("OCEANKICKS_FILE_PATH"))
		if err != nil {
			return nil, err
		}
		fs.OnPersistError(onPersistError)
		return fs, nil
	case StorageSQLite:
		ss, err := sqlite.NewStore(os.Getenv("OCEANKICKS_SQLITE_PATH"))
		if err != nil {
			return nil, err
		}
		ss.OnPersistError(onPersistError)
		return ss, nil
	case StoragePostgres:
		ps, err := postgres.NewStore(os.Getenv("OCEANKICKS_POSTGRES_DSN"))
		if err != nil {
			return nil, err
		}
		ps.OnPersistError(onPersistError)
		return ps, nil
	default:
		return nil, fmt.Errorf("unknown storage driver %s", driver)
	}
}
