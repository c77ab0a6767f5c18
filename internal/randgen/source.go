package randgen

import (
	"math/rand/v2"
	"strconv"

	"github.com/google/uuid"
)

// Source yields uniformly distributed floats in [0, 1).
// *rand.Rand from math/rand/v2 satisfies it.
type Source interface {
	Float64() float64
}

// IDSource yields a fresh unique identifier per call.
type IDSource interface {
	NewID() string
}

// NewSource returns a PCG-backed Source. A zero seed draws one from the
// runtime's randomly seeded global generator.
func NewSource(seed uint64) Source {
	if seed == 0 {
		seed = rand.Uint64()
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// UUIDSource issues random (version 4) UUID strings.
type UUIDSource struct{}

func (UUIDSource) NewID() string {
	return uuid.NewString()
}

// SequenceSource replays a fixed list of samples, cycling when exhausted.
// Intended for tests.
type SequenceSource struct {
	Values []float64
	next   int
}

// NewSequenceSource creates a SequenceSource over values.
func NewSequenceSource(values ...float64) *SequenceSource {
	return &SequenceSource{Values: values}
}

func (s *SequenceSource) Float64() float64 {
	if len(s.Values) == 0 {
		return 0
	}
	v := s.Values[s.next%len(s.Values)]
	s.next++
	return v
}

// Calls returns how many samples have been drawn.
func (s *SequenceSource) Calls() int {
	return s.next
}

// SequenceIDs issues "<Prefix><n>" identifiers starting at 1. Intended for tests.
type SequenceIDs struct {
	Prefix string
	n      int
}

func (s *SequenceIDs) NewID() string {
	s.n++
	return s.Prefix + strconv.Itoa(s.n)
}
