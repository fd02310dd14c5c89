package observes

import (
	"context"

	"github.com/google/wire"
	"github.com/jarredbaird/express-jobly/config"
	"github.com/jarredbaird/express-jobly/version"
)

// ProviderSet is the wire provider set for error reporting and tracing.
var ProviderSet = wire.NewSet(ProvideObserves)

// Observes reports which integrations are active.
type Observes struct {
	Sentry bool
	Tracer bool
}

// ProvideObserves starts sentry and the tracer when they are configured. The
// cleanup flushes pending events and spans.
func ProvideObserves(cfg *config.Config) (*Observes, func(), error) {
	o := &Observes{}
	if cfg == nil || cfg.Observes == nil {
		return o, func() {}, nil
	}

	release := version.GetVersionInfo().Version

	var flush func()
	if s := cfg.Observes.Sentry; s != nil {
		env := s.Environment
		if env == "" {
			env = cfg.RunMode
		}
		var err error
		flush, err = NewSentry(&SentryOptions{
			Dsn:         s.Dsn,
			Name:        cfg.AppName,
			Release:     firstNonEmpty(s.Release, release),
			Environment: env,
		})
		if err != nil {
			return nil, nil, err
		}
		o.Sentry = s.Dsn != ""
	}

	shutdown := func(context.Context) error { return nil }
	if t := cfg.Observes.Tracer; t != nil {
		var err error
		shutdown, err = NewTracer(&TracerOption{
			URL:                t.Endpoint,
			Name:               firstNonEmpty(t.ServiceName, cfg.AppName),
			Version:            firstNonEmpty(t.ServiceVersion, release),
			Environment:        firstNonEmpty(t.Environment, cfg.RunMode),
			SamplingRate:       t.SamplingRate,
			BatchTimeout:       t.BatchTimeout,
			ExportTimeout:      t.ExportTimeout,
			MaxExportBatchSize: t.MaxExportBatchSize,
		})
		if err != nil {
			if flush != nil {
				flush()
			}
			return nil, nil, err
		}
		o.Tracer = t.Endpoint != ""
	}

	cleanup := func() {
		_ = shutdown(context.Background())
		if flush != nil {
			flush()
		}
	}
	return o, cleanup, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
