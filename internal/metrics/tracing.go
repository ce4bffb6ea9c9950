package metrics

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	tracesdk "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

// TracerProvider owns the process tracer provider. Shutdown flushes pending spans.
type TracerProvider struct {
	provider trace.TracerProvider
	shutdown func(context.Context) error
}

// NewTracerProvider configures tracing for the process. When enabled, spans are
// batched to an OTLP/HTTP collector configured through the standard
// OTEL_EXPORTER_OTLP_* environment variables; otherwise a noop provider is used.
func NewTracerProvider(ctx context.Context, enabled bool, serviceName string) (*TracerProvider, error) {
	if !enabled {
		tp := noop.NewTracerProvider()
		otel.SetTracerProvider(tp)
		return &TracerProvider{
			provider: tp,
			shutdown: func(context.Context) error { return nil },
		}, nil
	}

	exp, err := otlptracehttp.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create otlp exporter: %w", err)
	}

	tp := tracesdk.NewTracerProvider(
		tracesdk.WithBatcher(exp),
		tracesdk.WithResource(resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceNameKey.String(serviceName),
		)),
	)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	return &TracerProvider{provider: tp, shutdown: tp.Shutdown}, nil
}

// Tracer returns a named tracer from the configured provider.
func (t *TracerProvider) Tracer(name string) trace.Tracer {
	return t.provider.Tracer(name)
}

// Shutdown flushes and stops the provider.
func (t *TracerProvider) Shutdown(ctx context.Context) error {
	if t == nil || t.shutdown == nil {
		return nil
	}
	return t.shutdown(ctx)
}

// SpanEnd sets the span status from err and ends the span.
func SpanEnd(span trace.Span, err error) {
	if err == nil {
		span.SetStatus(codes.Ok, "ok")
	} else {
		span.SetStatus(codes.Error, err.Error())
		span.RecordError(err)
	}

	span.End()
}
