package metrics

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// BusinessMetrics records use case level metrics.
type BusinessMetrics interface {
	// RecordOperation counts one operation, e.g. domain "serials",
	// operation "serial_group_create", status "success" or "error".
	RecordOperation(ctx context.Context, domain, operation, status string)

	// RecordDuration observes how long an operation took.
	RecordDuration(ctx context.Context, domain, operation string, duration time.Duration, status string)

	// RecordSerialsGenerated adds n to the number of serials produced.
	RecordSerialsGenerated(ctx context.Context, domain string, n int)
}

type businessMetrics struct {
	operations metric.Int64Counter
	duration   metric.Float64Histogram
	serials    metric.Int64Counter
}

// NewBusinessMetrics creates the business instruments, all prefixed with namespace.
func NewBusinessMetrics(meterProvider metric.MeterProvider, namespace string) (BusinessMetrics, error) {
	meter := meterProvider.Meter(namespace)

	operations, err := meter.Int64Counter(
		fmt.Sprintf("%s_operations_total", namespace),
		metric.WithDescription("Total number of business operations"),
		metric.WithUnit("{operation}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create operation counter: %w", err)
	}

	duration, err := meter.Float64Histogram(
		fmt.Sprintf("%s_operation_duration_seconds", namespace),
		metric.WithDescription("Duration of business operations in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create duration histogram: %w", err)
	}

	serials, err := meter.Int64Counter(
		fmt.Sprintf("%s_serials_generated_total", namespace),
		metric.WithDescription("Total number of serials generated"),
		metric.WithUnit("{serial}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create serials counter: %w", err)
	}

	return &businessMetrics{
		operations: operations,
		duration:   duration,
		serials:    serials,
	}, nil
}

func operationAttributes(domain, operation, status string) metric.MeasurementOption {
	return metric.WithAttributes(
		attribute.String("domain", domain),
		attribute.String("operation", operation),
		attribute.String("status", status),
	)
}

func (b *businessMetrics) RecordOperation(ctx context.Context, domain, operation, status string) {
	b.operations.Add(ctx, 1, operationAttributes(domain, operation, status))
}

func (b *businessMetrics) RecordDuration(
	ctx context.Context,
	domain, operation string,
	duration time.Duration,
	status string,
) {
	b.duration.Record(ctx, duration.Seconds(), operationAttributes(domain, operation, status))
}

func (b *businessMetrics) RecordSerialsGenerated(ctx context.Context, domain string, n int) {
	b.serials.Add(ctx, int64(n), metric.WithAttributes(attribute.String("domain", domain)))
}

// NoOpBusinessMetrics discards everything. Used when metrics are disabled.
type NoOpBusinessMetrics struct{}

// NewNoOpBusinessMetrics creates a no-op BusinessMetrics implementation.
func NewNoOpBusinessMetrics() BusinessMetrics {
	return &NoOpBusinessMetrics{}
}

func (n *NoOpBusinessMetrics) RecordOperation(context.Context, string, string, string) {}

func (n *NoOpBusinessMetrics) RecordDuration(context.Context, string, string, time.Duration, string) {}

func (n *NoOpBusinessMetrics) RecordSerialsGenerated(context.Context, string, int) {}
