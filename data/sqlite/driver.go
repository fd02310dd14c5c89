// Package sqlite registers the SQLite driver with the data package.
//
// This driver uses mattn/go-sqlite3 (CGO). It registers itself automatically
// when imported:
//
//	import _ "github.com/jarredbaird/express-jobly/data/sqlite"
//
// Example connection strings:
//
//	"file:jobly.db?_foreign_keys=on"          // file with FK enforcement
//	"file:jobly?mode=memory&cache=shared"     // shared in-memory database
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/jarredbaird/express-jobly/data"
	"github.com/jarredbaird/express-jobly/data/config"

	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

// driver implements data.DatabaseDriver for SQLite.
type driver struct{}

// Name returns the driver identifier used in configuration files.
func (d *driver) Name() string {
	return "sqlite"
}

// Connect opens a SQLite database. Unless configured otherwise the pool is
// limited to a single connection, which also keeps in-memory databases alive
// for the lifetime of the pool.
func (d *driver) Connect(ctx context.Context, cfg *config.DBNode) (*sql.DB, error) {
	if cfg == nil || cfg.Source == "" {
		return nil, fmt.Errorf("sqlite: connection source is empty")
	}

	db, err := sql.Open("sqlite3", withForeignKeys(cfg.Source))
	if err != nil {
		return nil, fmt.Errorf("sqlite: failed to open connection: %w", err)
	}

	if cfg.MaxIdleConn > 0 {
		db.SetMaxIdleConns(cfg.MaxIdleConn)
	} else {
		db.SetMaxIdleConns(2)
	}

	if cfg.MaxOpenConn > 0 {
		db.SetMaxOpenConns(cfg.MaxOpenConn)
	} else {
		db.SetMaxOpenConns(1)
	}

	if cfg.ConnMaxLifeTime > 0 {
		db.SetConnMaxLifetime(cfg.ConnMaxLifeTime)
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("sqlite: failed to ping database: %w", err)
	}

	return db, nil
}

// withForeignKeys turns on foreign key enforcement, which SQLite leaves off
// per connection, unless the source already sets it.
func withForeignKeys(source string) string {
	if strings.Contains(source, "_foreign_keys=") || strings.Contains(source, "_fk=") {
		return source
	}
	if strings.Contains(source, "?") {
		return source + "&_foreign_keys=on"
	}
	return source + "?_foreign_keys=on"
}

// Close terminates the SQLite connection and releases resources.
func (d *driver) Close(db *sql.DB) error {
	if err := db.Close(); err != nil {
		return fmt.Errorf("sqlite: failed to close connection: %w", err)
	}
	return nil
}

// Ping verifies the SQLite connection is alive and functional.
func (d *driver) Ping(ctx context.Context, db *sql.DB) error {
	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("sqlite: ping failed: %w", err)
	}
	return nil
}

func init() {
	data.RegisterDatabaseDriver(&driver{})
}
