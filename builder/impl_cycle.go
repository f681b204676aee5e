// SPDX-License-Identifier: MIT
// Package: lvlath-edit/builder
//
// impl_cycle.go - Cycle(n) and Path(n).
//
// Contract:
//   • Cycle: n ≥ 3, edges i–(i+1) mod n for i = 0..n-1.
//   • Path:  n ≥ 2, edges i–(i+1) for i = 0..n-2.

package builder

import "github.com/katalvlaran/lvlath-edit/core"

const (
	methodCycle   = "Cycle"
	methodPath    = "Path"
	minCycleNodes = 3
	minPathNodes  = 2
)

// Cycle builds C_n on vertices 0..n-1.
func Cycle(n int) Constructor {
	return func(g core.Graph, cfg builderConfig) error {
		if n < minCycleNodes {
			return wrapf(ErrTooFewVertices, methodCycle, "n=%d < min=%d", n, minCycleNodes)
		}
		if err := needOrder(g, methodCycle, n); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			if err := link(g, cfg, methodCycle, i, (i+1)%n); err != nil {
				return err
			}
		}

		return nil
	}
}

// Path builds P_n on vertices 0..n-1.
func Path(n int) Constructor {
	return func(g core.Graph, cfg builderConfig) error {
		if n < minPathNodes {
			return wrapf(ErrTooFewVertices, methodPath, "n=%d < min=%d", n, minPathNodes)
		}
		if err := needOrder(g, methodPath, n); err != nil {
			return err
		}
		for i := 0; i+1 < n; i++ {
			if err := link(g, cfg, methodPath, i, i+1); err != nil {
				return err
			}
		}

		return nil
	}
}
