package config

import "github.com/google/wire"

// ProviderSet is the wire provider set for the config package.
// It provides the main *Config and extracts sub-configurations for
// other modules to use.
var ProviderSet = wire.NewSet(
	LoadConfig,
	ProvideLoggerConfig,
	ProvideDataConfig,
	ProvideAuthConfig,
	ProvideObservesConfig,
)

// ProvideLoggerConfig provides the logger configuration.
func ProvideLoggerConfig(cfg *Config) *Logger {
	if cfg == nil {
		return nil
	}
	return cfg.Logger
}

// ProvideDataConfig provides the data layer configuration.
func ProvideDataConfig(cfg *Config) *Data {
	if cfg == nil {
		return nil
	}
	return cfg.Data
}

// ProvideAuthConfig provides the authentication configuration.
func ProvideAuthConfig(cfg *Config) *Auth {
	if cfg == nil {
		return nil
	}
	return cfg.Auth
}

// ProvideObservesConfig provides the observability configuration.
func ProvideObservesConfig(cfg *Config) *Observes {
	if cfg == nil {
		return nil
	}
	return cfg.Observes
}
