package domain

import (
	"time"

	"github.com/google/uuid"
)

// MaxGroupNameLength is the maximum allowed length of a serial group name.
const MaxGroupNameLength = 255

// SerialGroup is a named batch of serials kept for later retrieval and export.
type SerialGroup struct {
	// ID is the unique identifier of the group (UUIDv7).
	ID uuid.UUID

	// Name is the user-chosen unique name. It is also the export object name,
	// so it is restricted to [A-Za-z0-9._-].
	Name string

	// Serials holds the generated serials in generation order.
	Serials []Serial

	// CreatedAt is the timestamp when the group was created (UTC).
	CreatedAt time.Time
}

// Validate checks the group name and every serial in the group.
func (g *SerialGroup) Validate() error {
	if err := ValidateGroupName(g.Name); err != nil {
		return err
	}
	for _, s := range g.Serials {
		if err := s.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// ExportKey returns the object key used when exporting the group.
func (g *SerialGroup) ExportKey() string {
	return ExportKey(g.Name)
}

// ExportKey returns the object key for a group name: data/<name>.json.
func ExportKey(name string) string {
	return "data/" + name + ".json"
}

// ValidateGroupName checks that name is usable as a group name and object key.
func ValidateGroupName(name string) error {
	if name == "" || len(name) > MaxGroupNameLength || name == "." || name == ".." {
		return ErrInvalidGroupName
	}
	for i := 0; i < len(name); i++ {
		c := name[i]
		if isAlphanumeric(c) || c == '.' || c == '_' || c == '-' {
			continue
		}
		return ErrInvalidGroupName
	}
	return nil
}
