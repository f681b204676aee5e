// SPDX-License-Identifier: MIT
// Package: lvlath-edit/builder
//
// impl_star.go - Star(n) and Wheel(n).
//
// Canonical numbering: the hub is vertex 0, leaves/rim are 1..n-1.
//   • Star:  n ≥ 2, spokes 0–i.
//   • Wheel: n ≥ 4, rim cycle 1..n-1 first, then spokes 0–i.

package builder

import "github.com/katalvlaran/lvlath-edit/core"

const (
	methodStar    = "Star"
	methodWheel   = "Wheel"
	minStarNodes  = 2
	minWheelNodes = 4 // rim must be a cycle of at least 3
)

// Star builds K_{1,n-1} with hub 0.
func Star(n int) Constructor {
	return func(g core.Graph, cfg builderConfig) error {
		if n < minStarNodes {
			return wrapf(ErrTooFewVertices, methodStar, "n=%d < min=%d", n, minStarNodes)
		}
		if err := needOrder(g, methodStar, n); err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			if err := link(g, cfg, methodStar, 0, i); err != nil {
				return err
			}
		}

		return nil
	}
}

// Wheel builds W_n: hub 0 joined to every vertex of the rim cycle 1..n-1.
func Wheel(n int) Constructor {
	return func(g core.Graph, cfg builderConfig) error {
		if n < minWheelNodes {
			return wrapf(ErrTooFewVertices, methodWheel, "n=%d < min=%d", n, minWheelNodes)
		}
		if err := needOrder(g, methodWheel, n); err != nil {
			return err
		}
		rim := n - 1
		for i := 0; i < rim; i++ {
			if err := link(g, cfg, methodWheel, 1+i, 1+(i+1)%rim); err != nil {
				return err
			}
		}
		for i := 1; i < n; i++ {
			if err := link(g, cfg, methodWheel, 0, i); err != nil {
				return err
			}
		}

		return nil
	}
}
