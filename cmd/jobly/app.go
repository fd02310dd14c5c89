package main

import (
	"context"

	"github.com/jarredbaird/express-jobly/config"
	"github.com/jarredbaird/express-jobly/internal/server"
	"github.com/jarredbaird/express-jobly/logging/logger"
	"github.com/jarredbaird/express-jobly/version"
	"github.com/sirupsen/logrus"
)

// App represents the main application.
type App struct {
	config *config.Config
	logger *logger.Logger
	server *server.Server
}

// NewApp creates a new application instance.
func NewApp(cfg *config.Config, l *logger.Logger, srv *server.Server) *App {
	l.SetVersion(version.GetVersionInfo().Version)
	return &App{config: cfg, logger: l, server: srv}
}

// Run serves until ctx is cancelled. Log level changes in the configuration
// file apply without a restart.
func (a *App) Run(ctx context.Context) error {
	if a.config.Viper != nil && a.config.Viper.ConfigFileUsed() != "" {
		a.config.Watch(func(c *config.Config) {
			if c.Logger != nil && c.Logger.Level > 0 {
				a.logger.SetLevel(logrus.Level(c.Logger.Level))
				a.logger.Infof(ctx, "log level set to %s", a.logger.GetLevel())
			}
		})
	}

	return a.server.Run(ctx)
}
