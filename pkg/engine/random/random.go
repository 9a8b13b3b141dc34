// Package random provides the uniform draws used by map generation, item scatter and the turn loop.
package random

import (
	"math/rand"
	"time"
)

// Source produces uniform random draws.
type Source interface {
	// Intn returns a value in [0, n).
	Intn(n int) int

	// IntRange returns a value in [min, max).
	IntRange(min, max int) int

	// Float64 returns a value in [0.0, 1.0).
	Float64() float64

	// Float64n returns a value in [0.0, max).
	Float64n(max float64) float64
}

// Rand is a Source backed by math/rand.
type Rand struct {
	r    *rand.Rand
	seed int64
}

// New creates a Source seeded with seed. A zero seed uses the current time.
func New(seed int64) *Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Rand{
		r:    rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Seed returns the seed the source was created with.
func (s *Rand) Seed() int64 {
	return s.seed
}

func (s *Rand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return s.r.Intn(n)
}

func (s *Rand) IntRange(min, max int) int {
	if max <= min {
		return min
	}
	return min + s.r.Intn(max-min)
}

func (s *Rand) Float64() float64 {
	return s.r.Float64()
}

func (s *Rand) Float64n(max float64) float64 {
	return s.r.Float64() * max
}
