package usecase

import (
	"context"
	"time"

	"github.com/allisson/serials/internal/metrics"
	"github.com/allisson/serials/internal/serials/domain"
)

const metricsDomain = "serials"

// serialUseCaseWithMetrics decorates SerialUseCase with metrics instrumentation.
type serialUseCaseWithMetrics struct {
	next    SerialUseCase
	metrics metrics.BusinessMetrics
}

// NewSerialUseCaseWithMetrics wraps a SerialUseCase with metrics recording.
func NewSerialUseCaseWithMetrics(useCase SerialUseCase, m metrics.BusinessMetrics) SerialUseCase {
	return &serialUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// GenerateSerials records metrics for batch generation. Generation cannot fail,
// so the status is always success.
func (s *serialUseCaseWithMetrics) GenerateSerials(ctx context.Context, count uint32) []domain.Serial {
	start := time.Now()
	serials := s.next.GenerateSerials(ctx, count)

	s.metrics.RecordOperation(ctx, metricsDomain, "serials_generate", "success")
	s.metrics.RecordDuration(ctx, metricsDomain, "serials_generate", time.Since(start), "success")
	s.metrics.RecordSerialsGenerated(ctx, metricsDomain, len(serials))

	return serials
}

// serialGroupUseCaseWithMetrics decorates SerialGroupUseCase with metrics instrumentation.
type serialGroupUseCaseWithMetrics struct {
	next    SerialGroupUseCase
	metrics metrics.BusinessMetrics
}

// NewSerialGroupUseCaseWithMetrics wraps a SerialGroupUseCase with metrics recording.
func NewSerialGroupUseCaseWithMetrics(useCase SerialGroupUseCase, m metrics.BusinessMetrics) SerialGroupUseCase {
	return &serialGroupUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

func (s *serialGroupUseCaseWithMetrics) record(ctx context.Context, operation string, start time.Time, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}

	s.metrics.RecordOperation(ctx, metricsDomain, operation, status)
	s.metrics.RecordDuration(ctx, metricsDomain, operation, time.Since(start), status)
}

// Create records metrics for serial group creation.
func (s *serialGroupUseCaseWithMetrics) Create(
	ctx context.Context,
	name string,
	count uint32,
) (*domain.SerialGroup, error) {
	start := time.Now()
	group, err := s.next.Create(ctx, name, count)
	s.record(ctx, "serial_group_create", start, err)
	return group, err
}

// Get records metrics for serial group retrieval.
func (s *serialGroupUseCaseWithMetrics) Get(ctx context.Context, name string) (*domain.SerialGroup, error) {
	start := time.Now()
	group, err := s.next.Get(ctx, name)
	s.record(ctx, "serial_group_get", start, err)
	return group, err
}

// List records metrics for serial group listing.
func (s *serialGroupUseCaseWithMetrics) List(
	ctx context.Context,
	offset, limit int,
) ([]*domain.SerialGroup, error) {
	start := time.Now()
	groups, err := s.next.List(ctx, offset, limit)
	s.record(ctx, "serial_group_list", start, err)
	return groups, err
}

// Delete records metrics for serial group deletion.
func (s *serialGroupUseCaseWithMetrics) Delete(ctx context.Context, name string) error {
	start := time.Now()
	err := s.next.Delete(ctx, name)
	s.record(ctx, "serial_group_delete", start, err)
	return err
}

// Export records metrics for serial group export.
func (s *serialGroupUseCaseWithMetrics) Export(ctx context.Context, name string) (string, error) {
	start := time.Now()
	key, err := s.next.Export(ctx, name)
	s.record(ctx, "serial_group_export", start, err)
	return key, err
}

// ExportAll records metrics for exporting every serial group.
func (s *serialGroupUseCaseWithMetrics) ExportAll(ctx context.Context) ([]string, error) {
	start := time.Now()
	keys, err := s.next.ExportAll(ctx)
	s.record(ctx, "serial_group_export_all", start, err)
	return keys, err
}
