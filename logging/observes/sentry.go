package observes

import (
	"context"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/jarredbaird/express-jobly/ctxutil"
)

type SentryOptions struct {
	Dsn         string
	Name        string
	Release     string
	Environment string
}

// NewSentry initializes the sentry client. A nil option or empty DSN leaves
// reporting disabled.
func NewSentry(opt *SentryOptions) (func(), error) {
	if opt == nil || opt.Dsn == "" {
		return func() {}, nil
	}

	err := sentry.Init(sentry.ClientOptions{
		Dsn:              opt.Dsn,
		AttachStacktrace: true,
		TracesSampleRate: 1.0,
		ServerName:       opt.Name,
		Release:          opt.Release,
		Environment:      opt.Environment,
	})
	if err != nil {
		return nil, err
	}

	return func() { sentry.Flush(2 * time.Second) }, nil
}

// CaptureError reports err tagged with the request trace id. It is a no-op
// when sentry is not initialized.
func CaptureError(ctx context.Context, err error) {
	if err == nil {
		return
	}
	hub := sentry.CurrentHub()
	if hub.Client() == nil {
		return
	}
	hub.WithScope(func(scope *sentry.Scope) {
		if traceID := ctxutil.GetTraceID(ctx); traceID != "" {
			scope.SetTag(ctxutil.TraceIDKey, traceID)
		}
		hub.CaptureException(err)
	})
}
