// Package datatest opens seeded in-memory SQLite databases for tests.
package datatest

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jarredbaird/express-jobly/data"
	"github.com/jarredbaird/express-jobly/data/config"
	"github.com/stretchr/testify/require"

	_ "github.com/jarredbaird/express-jobly/data/sqlite"
)

var seedCompanies = []string{
	`INSERT INTO companies (handle, name, num_employees, description, logo_url)
	 VALUES ('c1', 'C1', 1, 'Desc1', 'http://c1.img'),
	        ('c2', 'C2', 2, 'Desc2', 'http://c2.img'),
	        ('c3', 'C3', 3, 'Desc3', 'http://c3.img')`,
}

var seedJobs = []struct {
	title   string
	salary  int
	equity  string
	company string
}{
	{"j1", 100000, "0.1", "c1"},
	{"j2", 200000, "0.2", "c2"},
	{"j3", 300000, "0.3", "c3"},
}

// Open returns an empty schema on a private in-memory database. The pool is
// closed when the test ends.
func Open(t testing.TB) *data.Data {
	t.Helper()

	ctx := context.Background()
	d, cleanup, err := data.New(ctx, &config.Config{Database: &config.Database{
		Master: &config.DBNode{
			Driver:      "sqlite",
			Source:      "file:" + uuid.NewString() + "?mode=memory&cache=shared&_foreign_keys=on",
			MaxOpenConn: 1,
		},
		Migrate: true,
	}})
	require.NoError(t, err)
	t.Cleanup(cleanup)
	return d
}

// Seeded returns a database holding companies c1..c3 and jobs j1..j3, along
// with the generated job ids.
func Seeded(t testing.TB) (*data.Data, []int) {
	t.Helper()

	d := Open(t)
	ctx := context.Background()

	for _, stmt := range seedCompanies {
		_, err := d.DB().ExecContext(ctx, stmt)
		require.NoError(t, err)
	}

	ids := make([]int, 0, len(seedJobs))
	for _, j := range seedJobs {
		var id int
		err := d.DB().QueryRowContext(ctx,
			`INSERT INTO jobs (title, salary, equity, company_handle) VALUES ($1, $2, $3, $4) RETURNING id`,
			j.title, j.salary, j.equity, j.company,
		).Scan(&id)
		require.NoError(t, err)
		ids = append(ids, id)
	}

	return d, ids
}
