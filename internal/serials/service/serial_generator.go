package service

import (
	"sync"

	"github.com/allisson/serials/internal/serials/domain"
)

type serialGenerator struct {
	mu  sync.Mutex
	src RandomSource
}

// NewSerialGenerator creates a serial generator reading from src. Access to src is
// serialized, so the generator may be shared by concurrent callers.
func NewSerialGenerator(src RandomSource) SerialGenerator {
	return &serialGenerator{src: src}
}

// NewDefaultSerialGenerator creates a serial generator backed by NewSource.
func NewDefaultSerialGenerator() SerialGenerator {
	return NewSerialGenerator(NewSource())
}

// Generate draws domain.SerialLength independent uniform characters from domain.Alphabet.
func (g *serialGenerator) Generate() domain.Serial {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.generate()
}

// GenerateBatch generates count serials in order. The source lock is held for
// the whole batch so a seeded source yields a reproducible batch.
func (g *serialGenerator) GenerateBatch(count uint32) []domain.Serial {
	serials := make([]domain.Serial, 0, count)

	g.mu.Lock()
	defer g.mu.Unlock()

	for range count {
		serials = append(serials, g.generate())
	}

	return serials
}

func (g *serialGenerator) generate() domain.Serial {
	buf := make([]byte, domain.SerialLength)
	for i := range buf {
		buf[i] = domain.Alphabet[g.src.IntN(len(domain.Alphabet))]
	}
	return domain.Serial(buf)
}
