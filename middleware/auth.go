package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/jarredbaird/express-jobly/ctxutil"
	"github.com/jarredbaird/express-jobly/logging/logger"
	"github.com/jarredbaird/express-jobly/net/resp"
	"github.com/jarredbaird/express-jobly/security/jwt"
)

// bearerToken extracts the token from an "Authorization: Bearer <t>" header.
func bearerToken(c *gin.Context) string {
	parts := strings.SplitN(c.GetHeader("Authorization"), " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// Authenticate stores the principal of a valid bearer token in the request
// context. Requests without a valid token continue anonymously.
func Authenticate(decoder jwt.TokenDecoder) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			c.Next()
			return
		}

		ctx := ctxutil.FromGinContext(c)
		claims, err := decoder.DecodeToken(token)
		if err != nil {
			logger.Warnf(ctx, "invalid token: %v", err)
			c.Next()
			return
		}

		ctx = ctxutil.SetToken(ctx, token)
		ctx = ctxutil.SetUsername(ctx, jwt.GetUsernameFromToken(claims))
		ctx = ctxutil.SetUserIsAdmin(ctx, jwt.IsAdminFromToken(claims))
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

// RequireAdmin rejects requests whose principal is not an admin. Anonymous
// callers get the same 401 as authenticated non-admins.
func RequireAdmin(c *gin.Context) {
	ctx := ctxutil.FromGinContext(c)
	if ctxutil.GetUsername(ctx) == "" || !ctxutil.GetUserIsAdmin(ctx) {
		resp.Fail(c.Writer, resp.UnAuthorized("Unauthorized"))
		c.Abort()
		return
	}
	c.Next()
}
