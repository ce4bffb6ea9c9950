package domain

import (
	"github.com/allisson/serials/internal/errors"
)

var (
	// ErrSerialGroupNotFound indicates the serial group was not found.
	ErrSerialGroupNotFound = errors.Wrap(errors.ErrNotFound, "serial group not found")

	// ErrSerialGroupAlreadyExists indicates a serial group with the same name already exists.
	ErrSerialGroupAlreadyExists = errors.Wrap(errors.ErrConflict, "serial group name already exists")

	// ErrInvalidGroupName indicates the serial group name is empty, too long or uses forbidden characters.
	ErrInvalidGroupName = errors.Wrap(
		errors.ErrInvalidInput,
		"serial group name must be 1-255 characters of [A-Za-z0-9._-]",
	)

	// ErrInvalidSerial indicates a serial does not have the expected length or alphabet.
	ErrInvalidSerial = errors.Wrap(errors.ErrInvalidInput, "serial must be 10 alphanumeric characters")
)
