package jwt

import (
	"github.com/google/wire"
	"github.com/jarredbaird/express-jobly/config"
)

// ProviderSet is the wire provider set for the jwt package.
var ProviderSet = wire.NewSet(
	ProvideTokenManager,
	wire.Bind(new(TokenDecoder), new(*TokenManager)),
)

// TokenDecoder decodes bearer tokens into claims.
type TokenDecoder interface {
	DecodeToken(tokenString string) (map[string]any, error)
}

// ProvideTokenManager creates a new TokenManager from configuration.
func ProvideTokenManager(cfg *config.Auth) *TokenManager {
	if cfg == nil || cfg.JWT == nil {
		return NewTokenManager("")
	}
	return NewTokenManager(cfg.JWT.Secret, cfg.JWT.Expire)
}
