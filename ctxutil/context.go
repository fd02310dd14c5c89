package ctxutil

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type contextKey string

const (
	ginContextKey contextKey = "gin_context"

	TraceIDKey     = "trace_id"
	usernameKey    = "username"
	userIsAdminKey = "user_is_admin"
	tokenKey       = "token"
)

// FromGinContext extracts the context.Context from *gin.Context.
func FromGinContext(c *gin.Context) context.Context {
	return WithGinContext(c.Request.Context(), c)
}

// WithGinContext returns a context.Context that embeds the *gin.Context.
func WithGinContext(ctx context.Context, c *gin.Context) context.Context {
	return context.WithValue(ctx, ginContextKey, c)
}

// GetGinContext extracts *gin.Context from context.Context if it exists.
func GetGinContext(ctx context.Context) (*gin.Context, bool) {
	if c, ok := ctx.Value(ginContextKey).(*gin.Context); ok {
		return c, ok
	}
	return nil, false
}

// GetValue retrieves a value from the context.
func GetValue(ctx context.Context, key string) any {
	if c, ok := GetGinContext(ctx); ok {
		if val, exists := c.Get(key); exists {
			return val
		}
	}
	return ctx.Value(contextKey(key))
}

// SetValue sets a value to the context.
func SetValue(ctx context.Context, key string, val any) context.Context {
	if c, ok := GetGinContext(ctx); ok {
		c.Set(key, val)
	}
	return context.WithValue(ctx, contextKey(key), val)
}

// SetUsername sets the authenticated username.
func SetUsername(ctx context.Context, username string) context.Context {
	return SetValue(ctx, usernameKey, username)
}

// GetUsername gets the authenticated username, empty for anonymous requests.
func GetUsername(ctx context.Context) string {
	if username, ok := GetValue(ctx, usernameKey).(string); ok {
		return username
	}
	return ""
}

// SetUserIsAdmin sets user admin status to context.Context.
func SetUserIsAdmin(ctx context.Context, isAdmin bool) context.Context {
	return SetValue(ctx, userIsAdminKey, isAdmin)
}

// GetUserIsAdmin gets user admin status from context.Context.
func GetUserIsAdmin(ctx context.Context) bool {
	if isAdmin, ok := GetValue(ctx, userIsAdminKey).(bool); ok {
		return isAdmin
	}
	return false
}

// SetToken sets the raw bearer token.
func SetToken(ctx context.Context, token string) context.Context {
	return SetValue(ctx, tokenKey, token)
}

// GetToken gets the raw bearer token.
func GetToken(ctx context.Context) string {
	if token, ok := GetValue(ctx, tokenKey).(string); ok {
		return token
	}
	return ""
}

// GetTraceID gets trace id from context.Context or gin.Context.
func GetTraceID(ctx context.Context) string {
	if traceID, ok := GetValue(ctx, TraceIDKey).(string); ok {
		return traceID
	}
	return ""
}

// SetTraceID sets trace id to context.Context and gin.Context if available.
func SetTraceID(ctx context.Context, traceID string) context.Context {
	return SetValue(ctx, TraceIDKey, traceID)
}

// EnsureTraceID ensures that a trace ID exists in the context.
func EnsureTraceID(ctx context.Context) (context.Context, string) {
	if traceID := GetTraceID(ctx); traceID != "" {
		return ctx, traceID
	}
	traceID := uuid.NewString()
	return SetTraceID(ctx, traceID), traceID
}
