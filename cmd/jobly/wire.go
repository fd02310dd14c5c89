//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"
	"github.com/jarredbaird/express-jobly/config"
	"github.com/jarredbaird/express-jobly/data"
	"github.com/jarredbaird/express-jobly/data/repository"
	"github.com/jarredbaird/express-jobly/handler"
	"github.com/jarredbaird/express-jobly/internal/server"
	"github.com/jarredbaird/express-jobly/logging/logger"
	"github.com/jarredbaird/express-jobly/logging/observes"
	"github.com/jarredbaird/express-jobly/security/jwt"
	"github.com/jarredbaird/express-jobly/service"
)

// InitializeApp wires up the entire application with all dependencies.
func InitializeApp(path config.Path) (*App, func(), error) {
	panic(wire.Build(
		config.ProviderSet,
		logger.ProviderSet,
		observes.ProviderSet,
		data.ProviderSet,
		repository.ProviderSet,
		service.ProviderSet,
		handler.ProviderSet,
		jwt.ProviderSet,
		server.ProviderSet,
		NewApp,
	))
}
