// SPDX-License-Identifier: MIT
// Package: lvlath-edit/builder
//
// impl_random_connected.go - RandomConnected(n, m, k): random undirected
// graphs with an exact edge count and a connectivity guarantee.
//
// Canonical model:
//   - Optionally lay a Hamiltonian cycle over a random vertex permutation
//     (WithHamiltonianCycle), then add uniformly chosen missing pairs until
//     the graph has m edges.
//   - Resample until connectivity.Global(scratch, cfg.conn) ≥ k, at most
//     cfg.attempts times.
//
// Contract:
//   - n ≥ 2, k ≥ 1 (else ErrTooFewVertices).
//   - connectivity.MinEdges(n,k) ≤ m ≤ n(n-1)/2 (else ErrTooManyEdges).
//   - Undirected graphs only (else ErrUnsupportedGraphMode).
//   - cfg.rng must be non-nil (else ErrNeedRandSource).
//   - Out of attempts → ErrConstructFailed.

package builder

import (
	"github.com/katalvlaran/lvlath-edit/connectivity"
	"github.com/katalvlaran/lvlath-edit/core"
)

const (
	methodRandomConnected      = "RandomConnected"
	minRandomConnectedVertices = 2
	minRandomConnectedK        = 1
	minHamiltonianVertices     = 3
)

// RandomConnected samples a graph on vertices 0..n-1 with exactly m edges
// whose connectivity under cfg.conn is at least k.
func RandomConnected(n, m, k int) Constructor {
	return func(g core.Graph, cfg builderConfig) error {
		if n < minRandomConnectedVertices || k < minRandomConnectedK {
			return wrapf(ErrTooFewVertices, methodRandomConnected, "n=%d, k=%d", n, k)
		}
		if low, high := connectivity.MinEdges(n, k), n*(n-1)/2; m < low || m > high {
			return wrapf(ErrTooManyEdges, methodRandomConnected, "m=%d not in [%d,%d] for n=%d, k=%d", m, low, high, n, k)
		}
		if g.Directed() {
			return wrapf(ErrUnsupportedGraphMode, methodRandomConnected, "directed graph")
		}
		if cfg.rng == nil {
			return wrapf(ErrNeedRandSource, methodRandomConnected, "n=%d", n)
		}
		if err := needOrder(g, methodRandomConnected, n); err != nil {
			return err
		}

		for attempt := 0; attempt < cfg.attempts; attempt++ {
			scratch, err := sampleEdges(n, m, cfg)
			if err != nil {
				return err
			}
			if connectivity.Global(scratch, cfg.conn) < k {
				continue
			}
			for _, e := range scratch.Edges() {
				if err = g.AddEdge(e.U, e.V, e.W); err != nil {
					return wrapf(err, methodRandomConnected, "AddEdge(%d→%d, w=%d)", e.U, e.V, e.W)
				}
			}

			return nil
		}

		return wrapf(ErrConstructFailed, methodRandomConnected, "no %d-connected sample with %d edges in %d attempts", k, m, cfg.attempts)
	}
}

// sampleEdges draws one candidate graph with exactly m edges.
func sampleEdges(n, m int, cfg builderConfig) (core.Graph, error) {
	scratch, err := core.New(n)
	if err != nil {
		return nil, err
	}
	if cfg.hamiltonian && n >= minHamiltonianVertices && m >= n {
		perm := cfg.rng.Perm(n)
		for i := range perm {
			if err = scratch.AddEdge(perm[i], perm[(i+1)%n], cfg.weightFn(cfg.rng)); err != nil {
				return nil, err
			}
		}
	}
	var free []core.Pair
	for _, p := range core.Pairs(n) {
		if !scratch.HasEdge(p.U, p.V) {
			free = append(free, p)
		}
	}
	cfg.rng.Shuffle(len(free), func(i, j int) { free[i], free[j] = free[j], free[i] })
	for _, p := range free[:m-scratch.EdgeCount()] {
		if err = scratch.AddEdge(p.U, p.V, cfg.weightFn(cfg.rng)); err != nil {
			return nil, err
		}
	}

	return scratch, nil
}
