package usecase

import (
	"context"

	"github.com/allisson/serials/internal/serials/domain"
	"github.com/allisson/serials/internal/serials/service"
)

// serialUseCase implements SerialUseCase on top of a SerialGenerator.
type serialUseCase struct {
	generator service.SerialGenerator
}

// GenerateSerials delegates to the generator's batch operation.
func (s *serialUseCase) GenerateSerials(ctx context.Context, count uint32) []domain.Serial {
	return s.generator.GenerateBatch(count)
}

// NewSerialUseCase creates a new serial use case instance.
func NewSerialUseCase(generator service.SerialGenerator) SerialUseCase {
	return &serialUseCase{generator: generator}
}
