// SPDX-License-Identifier: MIT
// Package: lvlath-edit/builder
//
// options.go - functional options for builderConfig.
//
// Options validate their argument eagerly and panic on nonsense values
// (nil functions, non-positive limits); constructors never panic.

package builder

import (
	"math/rand"

	"github.com/katalvlaran/lvlath-edit/connectivity"
)

// BuilderOption mutates builderConfig before a build.
type BuilderOption func(*builderConfig)

// WithRand uses r for every stochastic choice.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}

	return func(c *builderConfig) { c.rng = r }
}

// WithSeed uses a fresh RNG seeded with seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithWeightFn draws every edge weight from fn.
func WithWeightFn(fn WeightFn) BuilderOption {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}

	return func(c *builderConfig) { c.weightFn = fn }
}

// WithConnectivity selects the oracle RandomConnected checks against.
func WithConnectivity(fn connectivity.Func) BuilderOption {
	if fn == nil {
		panic("builder: WithConnectivity(nil)")
	}

	return func(c *builderConfig) { c.conn = fn }
}

// WithHamiltonianCycle makes RandomConnected start from a random Hamiltonian
// cycle, which guarantees 2-connectivity and speeds up sampling for k ≥ 2.
func WithHamiltonianCycle() BuilderOption {
	return func(c *builderConfig) { c.hamiltonian = true }
}

// WithAttempts caps RandomConnected resampling.
func WithAttempts(n int) BuilderOption {
	if n <= 0 {
		panic("builder: WithAttempts(n<=0)")
	}

	return func(c *builderConfig) { c.attempts = n }
}
