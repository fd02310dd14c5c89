package data

import (
	"context"
	"database/sql"
	"fmt"
)

var schemas = map[string][]string{
	"postgres": {
		`CREATE TABLE IF NOT EXISTS companies (
			handle VARCHAR(25) PRIMARY KEY CHECK (handle = lower(handle)),
			name TEXT UNIQUE NOT NULL,
			num_employees INTEGER CHECK (num_employees >= 0),
			description TEXT NOT NULL,
			logo_url TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS jobs (
			id SERIAL PRIMARY KEY,
			title TEXT NOT NULL,
			salary INTEGER CHECK (salary >= 0),
			equity NUMERIC CHECK (equity <= 1.0),
			company_handle VARCHAR(25) NOT NULL REFERENCES companies ON DELETE CASCADE
		)`,
	},
	"sqlite": {
		`CREATE TABLE IF NOT EXISTS companies (
			handle VARCHAR(25) PRIMARY KEY CHECK (handle = lower(handle)),
			name TEXT UNIQUE NOT NULL,
			num_employees INTEGER CHECK (num_employees >= 0),
			description TEXT NOT NULL,
			logo_url TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS jobs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			title TEXT NOT NULL,
			salary INTEGER CHECK (salary >= 0),
			equity NUMERIC CHECK (equity <= 1.0),
			company_handle VARCHAR(25) NOT NULL REFERENCES companies ON DELETE CASCADE
		)`,
	},
}

// EnsureSchema creates the companies and jobs tables if they do not exist.
func EnsureSchema(ctx context.Context, db *sql.DB, driver string) error {
	stmts, ok := schemas[driver]
	if !ok {
		return fmt.Errorf("no schema for driver %q", driver)
	}
	for _, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
