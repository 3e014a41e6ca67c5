// File: options.go
// Role: Sentinel errors and functional options shared by the generators.
//       Randomness is injected explicitly, never drawn from a global.

package gen

import (
	"errors"
	"math/rand"
)

var (
	// ErrBadSize is returned when a node count is negative.
	ErrBadSize = errors.New("gen: node count must be non-negative")

	// ErrBadProbability is returned when an edge probability falls
	// outside [0, 1].
	ErrBadProbability = errors.New("gen: probability must be in [0, 1]")

	// ErrNoRand is returned when a stochastic generator is invoked
	// without WithSeed or WithRand.
	ErrNoRand = errors.New("gen: stochastic generator needs WithSeed or WithRand")
)

// Option customizes a generator via functional arguments.
type Option func(*config)

type config struct {
	directed bool
	rng      *rand.Rand
}

func buildConfig(opts []Option) config {
	var c config
	for _, fn := range opts {
		fn(&c)
	}

	return c
}

// WithDirected makes the generator emit the directed variant of its
// topology.
func WithDirected() Option {
	return func(c *config) { c.directed = true }
}

// WithSeed locks a stochastic generator to a reproducible stream.
func WithSeed(seed int64) Option {
	return func(c *config) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithRand supplies an explicit RNG. Panics on nil; prefer WithSeed when
// reproducibility is all that is needed.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("gen: WithRand(nil)")
	}
	return func(c *config) { c.rng = r }
}
