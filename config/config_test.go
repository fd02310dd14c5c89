package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `
app_name: jobly-test
server:
  port: 4000
logger:
  level: 5
  format: text
data:
  database:
    migrate: true
    master:
      driver: sqlite
      source: "file:test?mode=memory&cache=shared"
      max_open_conn: 1
auth:
  jwt:
    secret: s3cret
    expire: 2h
`

func writeConfig(t *testing.T, body string) Path {
	t.Helper()
	p := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
	return Path(p)
}

func TestLoadConfigFromFile(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, sample))
	require.NoError(t, err)

	assert.Equal(t, "jobly-test", cfg.AppName)
	assert.Equal(t, 4000, cfg.Port)
	assert.Equal(t, "0.0.0.0:4000", cfg.Addr())
	assert.Equal(t, 5, cfg.Logger.Level)
	assert.Equal(t, "text", cfg.Logger.Format)
	assert.Equal(t, "sqlite", cfg.Data.Database.Master.Driver)
	assert.Equal(t, 1, cfg.Data.Database.Master.MaxOpenConn)
	assert.True(t, cfg.Data.Database.Migrate)
	assert.Equal(t, "s3cret", cfg.Auth.JWT.Secret)
	assert.Equal(t, 2*time.Hour, cfg.Auth.JWT.Expire)
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, "app_name: x\n"))
	require.NoError(t, err)

	assert.Equal(t, 3001, cfg.Port)
	assert.Equal(t, 15*time.Second, cfg.ReadTimeout)
	assert.Equal(t, "postgres", cfg.Data.Database.Master.Driver)
	assert.Equal(t, 24*time.Hour, cfg.Auth.JWT.Expire)
	assert.Equal(t, 1.0, cfg.Observes.Tracer.SamplingRate)
	assert.True(t, cfg.Logger.Desensitization.Enabled)
}

func TestEnvOverride(t *testing.T) {
	t.Setenv("JOBLY_SERVER_PORT", "5005")
	t.Setenv("JOBLY_AUTH_JWT_SECRET", "from-env")

	cfg, err := LoadConfig(writeConfig(t, sample))
	require.NoError(t, err)

	assert.Equal(t, 5005, cfg.Port)
	assert.Equal(t, "from-env", cfg.Auth.JWT.Secret)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(Path(filepath.Join(t.TempDir(), "nope.yaml")))
	assert.Error(t, err)
}

func TestProviders(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, sample))
	require.NoError(t, err)

	assert.Same(t, cfg.Logger, ProvideLoggerConfig(cfg))
	assert.Same(t, cfg.Data, ProvideDataConfig(cfg))
	assert.Same(t, cfg.Auth, ProvideAuthConfig(cfg))
	assert.Same(t, cfg.Observes, ProvideObservesConfig(cfg))
	assert.Nil(t, ProvideAuthConfig(nil))
}
