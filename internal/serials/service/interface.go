// Package service provides serial generation on top of an injected randomness source.
package service

import (
	"github.com/allisson/serials/internal/serials/domain"
)

// RandomSource yields uniform integers in [0, n). *rand.Rand from math/rand/v2 satisfies it.
type RandomSource interface {
	IntN(n int) int
}

// SerialGenerator defines the interface for serial generation.
type SerialGenerator interface {
	// Generate returns one serial of domain.SerialLength characters drawn from domain.Alphabet.
	Generate() domain.Serial

	// GenerateBatch calls Generate exactly count times and returns the serials
	// in generation order. A zero count returns an empty, non-nil slice.
	GenerateBatch(count uint32) []domain.Serial
}
