package usecase

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/allisson/serials/internal/metrics"
	"github.com/allisson/serials/internal/serials/domain"
)

// serialUseCaseWithTracing decorates SerialUseCase with a span per call.
type serialUseCaseWithTracing struct {
	next   SerialUseCase
	tracer trace.Tracer
}

// NewSerialUseCaseWithTracing wraps a SerialUseCase with tracing.
func NewSerialUseCaseWithTracing(useCase SerialUseCase, tracer trace.Tracer) SerialUseCase {
	return &serialUseCaseWithTracing{next: useCase, tracer: tracer}
}

func (s *serialUseCaseWithTracing) GenerateSerials(ctx context.Context, count uint32) []domain.Serial {
	ctx, span := s.tracer.Start(ctx, "serials.GenerateSerials",
		trace.WithAttributes(attribute.Int64("serials.count", int64(count))))
	defer metrics.SpanEnd(span, nil)

	return s.next.GenerateSerials(ctx, count)
}

// serialGroupUseCaseWithTracing decorates SerialGroupUseCase with a span per call.
type serialGroupUseCaseWithTracing struct {
	next   SerialGroupUseCase
	tracer trace.Tracer
}

// NewSerialGroupUseCaseWithTracing wraps a SerialGroupUseCase with tracing.
func NewSerialGroupUseCaseWithTracing(useCase SerialGroupUseCase, tracer trace.Tracer) SerialGroupUseCase {
	return &serialGroupUseCaseWithTracing{next: useCase, tracer: tracer}
}

func (s *serialGroupUseCaseWithTracing) Create(
	ctx context.Context,
	name string,
	count uint32,
) (group *domain.SerialGroup, err error) {
	ctx, span := s.tracer.Start(ctx, "serials.CreateGroup", trace.WithAttributes(
		attribute.String("serials.group", name),
		attribute.Int64("serials.count", int64(count)),
	))
	defer func() { metrics.SpanEnd(span, err) }()

	return s.next.Create(ctx, name, count)
}

func (s *serialGroupUseCaseWithTracing) Get(ctx context.Context, name string) (group *domain.SerialGroup, err error) {
	ctx, span := s.tracer.Start(ctx, "serials.GetGroup",
		trace.WithAttributes(attribute.String("serials.group", name)))
	defer func() { metrics.SpanEnd(span, err) }()

	return s.next.Get(ctx, name)
}

func (s *serialGroupUseCaseWithTracing) List(
	ctx context.Context,
	offset, limit int,
) (groups []*domain.SerialGroup, err error) {
	ctx, span := s.tracer.Start(ctx, "serials.ListGroups", trace.WithAttributes(
		attribute.Int("offset", offset),
		attribute.Int("limit", limit),
	))
	defer func() { metrics.SpanEnd(span, err) }()

	return s.next.List(ctx, offset, limit)
}

func (s *serialGroupUseCaseWithTracing) Delete(ctx context.Context, name string) (err error) {
	ctx, span := s.tracer.Start(ctx, "serials.DeleteGroup",
		trace.WithAttributes(attribute.String("serials.group", name)))
	defer func() { metrics.SpanEnd(span, err) }()

	return s.next.Delete(ctx, name)
}

func (s *serialGroupUseCaseWithTracing) Export(ctx context.Context, name string) (key string, err error) {
	ctx, span := s.tracer.Start(ctx, "serials.ExportGroup",
		trace.WithAttributes(attribute.String("serials.group", name)))
	defer func() { metrics.SpanEnd(span, err) }()

	return s.next.Export(ctx, name)
}

func (s *serialGroupUseCaseWithTracing) ExportAll(ctx context.Context) (keys []string, err error) {
	ctx, span := s.tracer.Start(ctx, "serials.ExportAllGroups")
	defer func() {
		span.SetAttributes(attribute.Int("serials.exported", len(keys)))
		metrics.SpanEnd(span, err)
	}()

	return s.next.ExportAll(ctx)
}
