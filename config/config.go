// Package config loads the application configuration with viper.
//
// Values come from a YAML file and may be overridden through environment
// variables prefixed with JOBLY_, with dots replaced by underscores:
//
//	JOBLY_SERVER_PORT=3001
//	JOBLY_DATA_DATABASE_MASTER_SOURCE=postgres://...
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	dc "github.com/jarredbaird/express-jobly/data/config"
	lc "github.com/jarredbaird/express-jobly/logging/logger/config"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of environment overrides.
const EnvPrefix = "JOBLY"

// Path is the configuration file location; empty means search the defaults.
type Path string

// Config represents the configuration implementation.
type Config struct {
	AppName         string
	RunMode         string
	Host            string
	Port            int
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
	Logger          *Logger
	Data            *Data
	Auth            *Auth
	Observes        *Observes
	Viper           *viper.Viper

	mu sync.Mutex
}

// Logger is the logger configuration.
type Logger = lc.Config

// Data represents the data configuration
type Data = dc.Config

func setDefaults(v *viper.Viper) {
	v.SetDefault("app_name", "jobly")
	v.SetDefault("run_mode", "release")
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 3001)
	v.SetDefault("server.read_timeout", 15*time.Second)
	v.SetDefault("server.write_timeout", 15*time.Second)
	v.SetDefault("server.shutdown_timeout", 30*time.Second)
	v.SetDefault("logger.level", 4)
	v.SetDefault("logger.format", "json")
	v.SetDefault("logger.output", "stdout")
	v.SetDefault("data.database.master.driver", "postgres")
	v.SetDefault("auth.jwt.expire", 24*time.Hour)
}

// LoadConfig loads the configuration from the file.
func LoadConfig(configPath Path) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(string(configPath))
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.jobly")
		if ex, err := os.Executable(); err == nil {
			v.AddConfigPath(filepath.Dir(ex))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configPath != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	return fromViper(v), nil
}

func fromViper(v *viper.Viper) *Config {
	return &Config{
		AppName:         v.GetString("app_name"),
		RunMode:         v.GetString("run_mode"),
		Host:            v.GetString("server.host"),
		Port:            v.GetInt("server.port"),
		ReadTimeout:     v.GetDuration("server.read_timeout"),
		WriteTimeout:    v.GetDuration("server.write_timeout"),
		ShutdownTimeout: v.GetDuration("server.shutdown_timeout"),
		Logger:          lc.GetConfig(v),
		Data:            dc.GetConfig(v),
		Auth:            getAuth(v),
		Observes:        getObservesConfig(v),
		Viper:           v,
	}
}

// Addr returns the listen address.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// Watch watches the configuration file and hands the reloaded configuration
// to callback after each change.
func (c *Config) Watch(callback func(*Config)) {
	c.Viper.OnConfigChange(func(e fsnotify.Event) {
		c.mu.Lock()
		defer c.mu.Unlock()
		callback(fromViper(c.Viper))
	})
	c.Viper.WatchConfig()
}
