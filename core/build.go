// SPDX-License-Identifier: MIT
//
// File: build.go
// Role: Constructors resolving GraphOption into one of the two backends,
//       plus the matrix export used by storage and tests.

package core

import "github.com/pkg/errors"

// New returns an empty graph on n vertices.
// Defaults: undirected, Dense backend.
func New(n int, opts ...GraphOption) (Graph, error) {
	cfg := newGraphConfig(opts...)

	return newEmpty(n, cfg)
}

func newEmpty(n int, cfg graphConfig) (Graph, error) {
	if n <= 0 {
		return nil, errors.Wrapf(ErrInvalidShape, "order %d", n)
	}
	if cfg.backend == Sparse {
		return NewEdgeSet(n, cfg.directed)
	}

	return NewMatrix(n, cfg.directed)
}

// FromMatrix builds a graph from an adjacency matrix of optional weights,
// nil meaning "no edge". The matrix must be non-empty and square, and the
// diagonal must be nil.
//
// Orientation: unless WithDirected is given, the graph is directed exactly
// when the matrix is asymmetric. For an undirected graph built from an
// asymmetric matrix the directed-to-undirected merge policy applies
// (larger weight wins).
//
// Complexity: O(n²).
func FromMatrix(rows [][]*int64, opts ...GraphOption) (Graph, error) {
	n := len(rows)
	if n == 0 {
		return nil, ErrInvalidShape
	}
	for i, row := range rows {
		if len(row) != n {
			return nil, errors.Wrapf(ErrInvalidShape, "row %d has %d cells, want %d", i, len(row), n)
		}
		if row[i] != nil {
			return nil, errors.Wrapf(ErrSelfLoop, "cell (%d,%d)", i, i)
		}
	}
	cfg := newGraphConfig(opts...)
	wantDirected := cfg.directed
	if !cfg.directedSet {
		wantDirected = !symmetric(rows)
	}

	// load as arcs first, then fold if an undirected graph was requested
	cfg.directed = true
	g, err := newEmpty(n, cfg)
	if err != nil {
		return nil, err
	}
	for u, row := range rows {
		for v, w := range row {
			if w == nil {
				continue
			}
			if err = g.AddEdge(u, v, *w); err != nil {
				return nil, err
			}
		}
	}
	if !wantDirected {
		g.SetDirected(false)
	}

	return g, nil
}

func symmetric(rows [][]*int64) bool {
	for i := range rows {
		for j := 0; j < i; j++ {
			a, b := rows[i][j], rows[j][i]
			if (a == nil) != (b == nil) {
				return false
			}
			if a != nil && *a != *b {
				return false
			}
		}
	}

	return true
}

// FromEdges builds a graph on n vertices from an explicit edge list.
// A repeated edge overwrites the weight of the earlier one.
func FromEdges(n int, edges []Edge, opts ...GraphOption) (Graph, error) {
	g, err := New(n, opts...)
	if err != nil {
		return nil, err
	}
	for _, e := range edges {
		if err = g.AddEdge(e.U, e.V, e.W); err != nil {
			return nil, errors.Wrapf(err, "edge %d-%d", e.U, e.V)
		}
	}

	return g, nil
}

// ToMatrix exports g as an adjacency matrix of optional weights.
func ToMatrix(g Graph) [][]*int64 {
	n := g.Order()
	out := make([][]*int64, n)
	for u := 0; u < n; u++ {
		out[u] = make([]*int64, n)
	}
	for _, e := range g.Edges() {
		w := e.W
		out[e.U][e.V] = &w
		if !g.Directed() {
			out[e.V][e.U] = &w
		}
	}

	return out
}

// Convert copies g onto the requested backend, keeping orientation and weights.
func Convert(g Graph, b Backend) Graph {
	out, _ := newEmpty(g.Order(), graphConfig{directed: g.Directed(), backend: b})
	for _, e := range g.Edges() {
		_ = out.AddEdge(e.U, e.V, e.W)
	}

	return out
}

// W returns a pointer to w; handy when writing literal matrices.
func W(w int64) *int64 { return &w }
