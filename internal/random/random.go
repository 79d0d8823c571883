package random

import (
	crand "crypto/rand"
	"math/rand/v2"
	"sync"
)

// Source provides the randomness used by the draw
type Source interface {
	// IntN returns a uniform value in [0, n)
	IntN(n int) int

	// Shuffle pseudo-randomizes the order of n elements
	Shuffle(n int, swap func(i, j int))
}

// Config for the random source
type Config struct {
	// Optional seed for testing. Zero seeds from crypto entropy.
	Seed uint64
}

// Rand is a Source safe for concurrent use
type Rand struct {
	mu     sync.Mutex
	random *rand.Rand
}

// New creates a new random source
func New(cfg *Config) *Rand {
	if cfg != nil && cfg.Seed != 0 {
		return &Rand{
			random: rand.New(rand.NewPCG(cfg.Seed, cfg.Seed^0x9e3779b97f4a7c15)),
		}
	}

	var seed [32]byte
	if _, err := crand.Read(seed[:]); err != nil {
		panic("random: failed to read crypto entropy: " + err.Error())
	}

	return &Rand{
		random: rand.New(rand.NewChaCha8(seed)),
	}
}

// IntN returns a uniform value in [0, n). n must be positive.
func (r *Rand) IntN(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.random.IntN(n)
}

// Shuffle runs a Fisher-Yates shuffle over n elements
func (r *Rand) Shuffle(n int, swap func(i, j int)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.random.Shuffle(n, swap)
}
