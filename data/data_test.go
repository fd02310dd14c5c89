package data_test

import (
	"context"
	"testing"

	"github.com/jarredbaird/express-jobly/data"
	"github.com/jarredbaird/express-jobly/data/config"
	"github.com/jarredbaird/express-jobly/data/datatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMissingConfig(t *testing.T) {
	_, _, err := data.New(context.Background(), nil)
	assert.Error(t, err)

	_, _, err = data.New(context.Background(), &config.Config{Database: &config.Database{
		Master: &config.DBNode{Driver: "nope", Source: "x"},
	}})
	assert.Error(t, err)
}

func TestHealthAndClose(t *testing.T) {
	d := datatest.Open(t)
	ctx := context.Background()

	h := d.Health(ctx)
	assert.Equal(t, "healthy", h["status"])
	assert.Equal(t, "sqlite", h["driver"])
	assert.Empty(t, h["error"])

	require.NoError(t, d.Close())
	require.NoError(t, d.Close())
	assert.ErrorIs(t, d.Ping(ctx), data.ErrClosed)
	assert.Equal(t, "unhealthy", d.Health(ctx)["status"])
}

func TestEnsureSchemaIdempotent(t *testing.T) {
	d := datatest.Open(t)
	require.NoError(t, data.EnsureSchema(context.Background(), d.DB(), d.Driver()))
	assert.Error(t, data.EnsureSchema(context.Background(), d.DB(), "nope"))
}
