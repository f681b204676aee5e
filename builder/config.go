// SPDX-License-Identifier: MIT
// Package: lvlath-edit/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • rng          = nil                    (pure/deterministic unless seeded)
//   • weightFn     = ConstantWeightFn(1)
//   • conn         = connectivity.LocalEdge (RandomConnected only)
//   • hamiltonian  = false
//   • attempts     = defaultAttempts

package builder

import (
	"math/rand"

	"github.com/katalvlaran/lvlath-edit/connectivity"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by value to constructors.
type builderConfig struct {
	// RNG for stochastic choices; nil means “no randomness”.
	rng *rand.Rand

	// Weight generator for every emitted edge.
	weightFn WeightFn

	// Connectivity oracle checked by RandomConnected.
	conn connectivity.Func

	// Seed RandomConnected with a random Hamiltonian cycle first.
	hamiltonian bool

	// Sampling attempts before RandomConnected gives up.
	attempts int
}

const (
	defaultConstWeight = int64(1)
	defaultAttempts    = 1 << 12
)

// newBuilderConfig applies options in order over the defaults (last wins).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		weightFn: ConstantWeightFn(defaultConstWeight),
		conn:     connectivity.LocalEdge,
		attempts: defaultAttempts,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
