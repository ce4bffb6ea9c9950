// Package usecase defines interfaces and implementations for serial use cases.
// Covers one-shot batch generation and the lifecycle of persisted serial groups.
package usecase

import (
	"context"

	"github.com/allisson/serials/internal/serials/domain"
)

// SerialGroupRepository defines the interface for serial group persistence.
type SerialGroupRepository interface {
	// Create inserts a new group. Returns domain.ErrSerialGroupAlreadyExists on a duplicate name.
	Create(ctx context.Context, group *domain.SerialGroup) error

	// GetByName returns the group with the given name or domain.ErrSerialGroupNotFound.
	GetByName(ctx context.Context, name string) (*domain.SerialGroup, error)

	// List retrieves serial groups ordered by name ascending with pagination.
	List(ctx context.Context, offset, limit int) ([]*domain.SerialGroup, error)

	// Delete removes the group with the given name or returns domain.ErrSerialGroupNotFound.
	Delete(ctx context.Context, name string) error
}

// Exporter writes an exported document under the given object key.
type Exporter interface {
	Write(ctx context.Context, key string, data []byte) error
}

// SerialUseCase defines the stateless serial generation command.
type SerialUseCase interface {
	// GenerateSerials returns exactly count serials in generation order.
	// It never fails and stores nothing.
	GenerateSerials(ctx context.Context, count uint32) []domain.Serial
}

// SerialGroupUseCase defines the interface for serial group management operations.
type SerialGroupUseCase interface {
	// Create generates count serials and stores them under name.
	// Returns domain.ErrSerialGroupAlreadyExists if the name is taken.
	Create(ctx context.Context, name string, count uint32) (*domain.SerialGroup, error)

	// Get retrieves a serial group by name.
	Get(ctx context.Context, name string) (*domain.SerialGroup, error)

	// List retrieves serial groups ordered by name ascending with pagination.
	List(ctx context.Context, offset, limit int) ([]*domain.SerialGroup, error)

	// Delete removes a serial group by name.
	Delete(ctx context.Context, name string) error

	// Export writes the group's serials as a JSON array and returns the object key.
	Export(ctx context.Context, name string) (string, error)

	// ExportAll exports every stored group and returns the written object keys.
	ExportAll(ctx context.Context) ([]string, error)
}
