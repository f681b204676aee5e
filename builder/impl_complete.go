// SPDX-License-Identifier: MIT
// Package: lvlath-edit/builder
//
// impl_complete.go - Complete(n) and CompleteBipartite(n1, n2).
//
// Determinism:
//   • Pair order: lexicographic by (i,j), i<j.
//   • Weights drawn in that order for a fixed cfg.rng/weightFn.

package builder

import "github.com/katalvlaran/lvlath-edit/core"

const (
	methodComplete          = "Complete"
	methodCompleteBipartite = "CompleteBipartite"
	minCompleteNodes        = 1
	minPartition            = 1
)

// Complete builds K_n on vertices 0..n-1.
// Complexity: O(n²) edges.
func Complete(n int) Constructor {
	return func(g core.Graph, cfg builderConfig) error {
		if n < minCompleteNodes {
			return wrapf(ErrTooFewVertices, methodComplete, "n=%d < min=%d", n, minCompleteNodes)
		}
		if err := needOrder(g, methodComplete, n); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := link(g, cfg, methodComplete, i, j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// CompleteBipartite builds K_{n1,n2}: left side 0..n1-1, right side
// n1..n1+n2-1.
// Complexity: O(n1·n2) edges.
func CompleteBipartite(n1, n2 int) Constructor {
	return func(g core.Graph, cfg builderConfig) error {
		if n1 < minPartition || n2 < minPartition {
			return wrapf(ErrTooFewVertices, methodCompleteBipartite, "partition sizes %d and %d must be ≥ %d", n1, n2, minPartition)
		}
		if err := needOrder(g, methodCompleteBipartite, n1+n2); err != nil {
			return err
		}
		for i := 0; i < n1; i++ {
			for j := 0; j < n2; j++ {
				if err := link(g, cfg, methodCompleteBipartite, i, n1+j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
