package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/jarredbaird/express-jobly/ctxutil"
)

// TraceHeader carries the request trace id in both directions.
const TraceHeader = "X-Trace-ID"

// Trace assigns each request a trace id, reusing the caller's when present,
// and exposes it on the response.
func Trace(c *gin.Context) {
	ctx := ctxutil.FromGinContext(c)
	if id := c.GetHeader(TraceHeader); id != "" {
		ctx = ctxutil.SetTraceID(ctx, id)
	}
	ctx, traceID := ctxutil.EnsureTraceID(ctx)

	c.Request = c.Request.WithContext(ctx)
	c.Header(TraceHeader, traceID)
	c.Next()
}
