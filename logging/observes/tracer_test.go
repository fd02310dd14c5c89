package observes

import (
	"context"
	"errors"
	"testing"

	"github.com/jarredbaird/express-jobly/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestNewTracerWithoutEndpoint(t *testing.T) {
	shutdown, err := NewTracer(&TracerOption{})
	require.NoError(t, err)
	assert.NoError(t, shutdown(context.Background()))
}

func TestStartSpanRecordsError(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	prev := otel.GetTracerProvider()
	otel.SetTracerProvider(sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder)))
	t.Cleanup(func() { otel.SetTracerProvider(prev) })

	_, span := StartSpan(context.Background(), LayerRepo, "Job.Get")
	EndSpan(span, errors.New("boom"))

	spans := recorder.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, "Repository.Job.Get", spans[0].Name())
	assert.Equal(t, codes.Error, spans[0].Status().Code)
}

func TestLayerString(t *testing.T) {
	assert.Equal(t, "Service", LayerService.String())
}

func TestCaptureErrorWithoutClient(t *testing.T) {
	assert.NotPanics(t, func() { CaptureError(context.Background(), errors.New("x")) })
}

func TestProvideObservesDisabled(t *testing.T) {
	o, cleanup, err := ProvideObserves(&config.Config{
		AppName:  "jobly",
		Observes: &config.Observes{Sentry: &config.Sentry{}, Tracer: &config.Tracer{}},
	})
	require.NoError(t, err)
	defer cleanup()
	assert.False(t, o.Sentry)
	assert.False(t, o.Tracer)
}
