// Package jwt signs and verifies the HS256 bearer tokens used by the API.
//
// Tokens carry a "payload" claim holding the principal:
//
//	{"jti": "...", "sub": "access", "exp": 1700000000,
//	 "payload": {"username": "u1", "is_admin": true}}
package jwt

import (
	"time"

	jwtstd "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenError represents JWT token related errors
type TokenError string

func (e TokenError) Error() string {
	return string(e)
}

const (
	DefaultAccessTokenExpire = time.Hour * 24

	ErrNeedTokenProvider = TokenError("cannot sign token without token provider")
	ErrInvalidToken      = TokenError("invalid token")
	ErrTokenParsing      = TokenError("token parsing error")
)

// Token represents the token body
type Token struct {
	JTI     string
	Payload map[string]any
	Subject string
	Expire  time.Duration
}

// TokenManager handles JWT token operations
type TokenManager struct {
	key    string
	expire time.Duration
}

// NewTokenManager creates a new TokenManager instance. A zero expire uses
// DefaultAccessTokenExpire.
func NewTokenManager(key string, expire ...time.Duration) *TokenManager {
	jtm := &TokenManager{key: key, expire: DefaultAccessTokenExpire}
	if len(expire) > 0 && expire[0] > 0 {
		jtm.expire = expire[0]
	}
	return jtm
}

// validateKey validates the token key
func (jtm *TokenManager) validateKey() error {
	if jtm.key == "" {
		return ErrNeedTokenProvider
	}
	return nil
}

// generateToken generates a JWT token
func (jtm *TokenManager) generateToken(token *Token) (string, error) {
	if err := jtm.validateKey(); err != nil {
		return "", err
	}

	now := time.Now()
	claims := jwtstd.MapClaims{
		"jti":     token.JTI,
		"sub":     token.Subject,
		"payload": token.Payload,
		"iat":     now.Unix(),
		"exp":     now.Add(token.Expire).Unix(),
	}

	t := jwtstd.NewWithClaims(jwtstd.SigningMethodHS256, claims)
	return t.SignedString([]byte(jtm.key))
}

// GenerateAccessToken signs an access token for the principal.
func (jtm *TokenManager) GenerateAccessToken(username string, isAdmin bool) (string, error) {
	return jtm.generateToken(&Token{
		JTI: uuid.NewString(),
		Payload: map[string]any{
			"username": username,
			"is_admin": isAdmin,
		},
		Subject: "access",
		Expire:  jtm.expire,
	})
}

// ValidateToken parses a token, accepting only HMAC signatures.
func (jtm *TokenManager) ValidateToken(tokenString string) (*jwtstd.Token, error) {
	if err := jtm.validateKey(); err != nil {
		return nil, err
	}

	return jwtstd.Parse(tokenString, func(token *jwtstd.Token) (any, error) {
		return []byte(jtm.key), nil
	}, jwtstd.WithValidMethods([]string{jwtstd.SigningMethodHS256.Alg()}))
}

// DecodeToken decodes a JWT token into its claims
func (jtm *TokenManager) DecodeToken(tokenString string) (map[string]any, error) {
	token, err := jtm.ValidateToken(tokenString)
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, ErrInvalidToken
	}
	claims, ok := token.Claims.(jwtstd.MapClaims)
	if !ok {
		return nil, ErrTokenParsing
	}
	return claims, nil
}
