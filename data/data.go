// Package data owns the SQL connection pool shared by the repositories.
//
// A driver package must be imported for its side effect before New is
// called:
//
//	import _ "github.com/jarredbaird/express-jobly/data/postgres"
package data

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"

	"github.com/jarredbaird/express-jobly/data/config"
	"github.com/jarredbaird/express-jobly/logging/logger"
)

// ErrClosed is returned once the data layer has been closed.
var ErrClosed = errors.New("data layer is closed")

// Data represents the data layer implementation
type Data struct {
	db     *sql.DB
	driver DatabaseDriver

	mu     sync.RWMutex
	closed bool
}

// New connects to the configured master database and, when enabled, creates
// the schema.
func New(ctx context.Context, cfg *config.Config) (*Data, func(), error) {
	if cfg == nil || cfg.Database == nil || cfg.Database.Master == nil {
		return nil, nil, errors.New("data: database configuration is missing")
	}

	node := cfg.Database.Master
	driver, err := GetDatabaseDriver(node.Driver)
	if err != nil {
		return nil, nil, err
	}

	db, err := driver.Connect(ctx, node)
	if err != nil {
		return nil, nil, err
	}

	d := &Data{db: db, driver: driver}

	if cfg.Database.Migrate {
		if err := EnsureSchema(ctx, db, driver.Name()); err != nil {
			_ = driver.Close(db)
			return nil, nil, fmt.Errorf("data: failed to create schema: %w", err)
		}
	}

	logger.Infof(ctx, "data: connected to %s database", driver.Name())

	cleanup := func() {
		if err := d.Close(); err != nil {
			logger.Errorf(context.Background(), "data: cleanup error: %v", err)
		}
	}

	return d, cleanup, nil
}

// DB returns the master database connection
func (d *Data) DB() *sql.DB {
	return d.db
}

// Driver returns the name of the active driver
func (d *Data) Driver() string {
	return d.driver.Name()
}

// Ping verifies the connection is alive
func (d *Data) Ping(ctx context.Context) error {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.closed {
		return ErrClosed
	}
	return d.driver.Ping(ctx, d.db)
}

// Close closes the database pool. Subsequent calls are no-ops.
func (d *Data) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		return nil
	}
	d.closed = true
	return d.driver.Close(d.db)
}
