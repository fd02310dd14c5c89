// Package ctxutil carries request-scoped values through context.Context.
//
// Values written while a *gin.Context is embedded are mirrored into the gin
// keys so handlers and middleware observe the same state:
//
//	ctx = ctxutil.WithGinContext(ctx, c)
//	ctx = ctxutil.SetUsername(ctx, "u1")
//	name := ctxutil.GetUsername(ctx)
//
// The trace id is minted on demand with EnsureTraceID.
package ctxutil
