package rng

import (
	"math/rand"
	"sync"
)

// Generator provides a simple random number
type Generator interface {
	// Intn will return a random number up to but not including n
	Intn(n int) int
}

// Seeded is a repeatable generator
// It is safe for concurrent use, but should only be used for tests and replays
type Seeded struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewSeeded returns a generator seeded with seed
func NewSeeded(seed int64) *Seeded {
	return &Seeded{
		rng: rand.New(rand.NewSource(seed)), // nolint:gosec
	}
}

// Intn will return a random number up to but not including n
func (s *Seeded) Intn(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.rng.Intn(n)
}
