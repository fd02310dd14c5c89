package data

import (
	"context"
	"database/sql"
	"fmt"
	"sort"
	"sync"

	"github.com/jarredbaird/express-jobly/data/config"
)

// DatabaseDriver defines the contract for relational database drivers.
// Following the design pattern of database/sql, drivers register themselves
// from init() and are looked up at runtime by the name in configuration.
type DatabaseDriver interface {
	// Name returns the driver identifier (e.g., "postgres", "sqlite")
	Name() string

	// Connect opens a pool for the node and verifies it with a ping.
	Connect(ctx context.Context, cfg *config.DBNode) (*sql.DB, error)

	// Close terminates the pool and releases resources.
	Close(db *sql.DB) error

	// Ping verifies the connection is alive and functional.
	Ping(ctx context.Context, db *sql.DB) error
}

var (
	databaseDrivers   = make(map[string]DatabaseDriver)
	databaseDriversMu sync.RWMutex
)

// RegisterDatabaseDriver makes a database driver available by the provided name.
// It is intended to be called from the init function in driver packages.
//
// If RegisterDatabaseDriver is called twice with the same name or if driver is nil,
// it panics.
func RegisterDatabaseDriver(driver DatabaseDriver) {
	databaseDriversMu.Lock()
	defer databaseDriversMu.Unlock()

	if driver == nil {
		panic("data: RegisterDatabaseDriver driver is nil")
	}

	name := driver.Name()
	if name == "" {
		panic("data: RegisterDatabaseDriver driver name is empty")
	}

	if _, exists := databaseDrivers[name]; exists {
		panic(fmt.Sprintf("data: RegisterDatabaseDriver called twice for driver %s", name))
	}

	databaseDrivers[name] = driver
}

// GetDatabaseDriver retrieves a registered database driver by name.
func GetDatabaseDriver(name string) (DatabaseDriver, error) {
	databaseDriversMu.RLock()
	defer databaseDriversMu.RUnlock()

	driver, ok := databaseDrivers[name]
	if !ok {
		return nil, fmt.Errorf(
			"data: database driver %q not registered\n\n"+
				"Did you forget to import the driver package?\n"+
				"Add to your imports:\n"+
				"    _ \"github.com/jarredbaird/express-jobly/data/%s\"\n\n"+
				"Available drivers: %v",
			name, name, listDatabaseDriversLocked(),
		)
	}

	return driver, nil
}

// ListDatabaseDrivers returns the sorted names of registered drivers.
func ListDatabaseDrivers() []string {
	databaseDriversMu.RLock()
	defer databaseDriversMu.RUnlock()
	return listDatabaseDriversLocked()
}

func listDatabaseDriversLocked() []string {
	names := make([]string, 0, len(databaseDrivers))
	for name := range databaseDrivers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
