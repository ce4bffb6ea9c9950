package service

import (
	cryptorand "crypto/rand"
	"math/rand/v2"
)

// NewSource returns a ChaCha8 source seeded from the operating system entropy pool.
// It panics if the seed cannot be read: serial generation has no fallback source.
func NewSource() RandomSource {
	var seed [32]byte
	if _, err := cryptorand.Read(seed[:]); err != nil {
		panic("serials: failed to seed random source: " + err.Error())
	}
	return rand.New(rand.NewChaCha8(seed))
}

// NewSeededSource returns a deterministic PCG source. Two sources created with
// the same seed produce the same sequence.
func NewSeededSource(seed uint64) RandomSource {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
