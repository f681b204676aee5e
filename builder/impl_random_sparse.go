// SPDX-License-Identifier: MIT
// Package: lvlath-edit/builder
//
// impl_random_sparse.go - implementation of RandomSparse(n, p) constructor.
//
// Canonical model:
//   - Erdős–Rényi-like generator: include each admissible edge independently with prob p.
//   - Undirected: iterate unordered pairs {i,j} with i<j.
//   - Directed: iterate ordered pairs (i,j), i≠j; each success is a single arc.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng must be non-nil unless p ∈ {0,1} (else ErrNeedRandSource).
//
// Determinism:
//   - Stable trial order: i asc, j asc. Weights drawn right after each success.

package builder

import "github.com/katalvlaran/lvlath-edit/core"

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse samples G(n,p) on vertices 0..n-1.
// Complexity: O(n²) Bernoulli trials.
func RandomSparse(n int, p float64) Constructor {
	return func(g core.Graph, cfg builderConfig) error {
		if n < minRandomSparseVertices {
			return wrapf(ErrTooFewVertices, methodRandomSparse, "n=%d < min=%d", n, minRandomSparseVertices)
		}
		if p < probMin || p > probMax {
			return wrapf(ErrInvalidProbability, methodRandomSparse, "p=%.6f not in [%.1f,%.1f]", p, probMin, probMax)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return wrapf(ErrNeedRandSource, methodRandomSparse, "p=%.6f", p)
		}
		if err := needOrder(g, methodRandomSparse, n); err != nil {
			return err
		}
		hit := func() bool {
			if cfg.rng == nil {
				return p == probMax
			}

			return cfg.rng.Float64() < p
		}
		for i := 0; i < n; i++ {
			start := i + 1
			if g.Directed() {
				start = 0
			}
			for j := start; j < n; j++ {
				if i == j || !hit() {
					continue
				}
				w := cfg.weightFn(cfg.rng)
				if err := g.AddEdge(i, j, w); err != nil {
					return wrapf(err, methodRandomSparse, "AddEdge(%d→%d, w=%d)", i, j, w)
				}
			}
		}

		return nil
	}
}
