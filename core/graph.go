// SPDX-License-Identifier: MIT
//
// File: graph.go
// Role: The Graph capability interface, Edge/Pair value types and
//       construction options shared by both storage backends.
// Determinism:
//   - Edges() and Neighbors() return ascending orders on every backend.
// Ownership:
//   - A Graph is not safe for concurrent mutation. Search nodes own their
//     graph exclusively and Clone() before any branch mutates it.

package core

// Direction selects which arcs Degree counts.
type Direction int

const (
	// Out counts arcs leaving the vertex (all incident edges if undirected).
	Out Direction = iota
	// In counts arcs entering the vertex (all incident edges if undirected).
	In
	// Both counts in+out arcs on directed graphs, incident edges otherwise.
	Both
)

// Edge is a weighted edge U→V (or {U,V} on undirected graphs).
type Edge struct {
	U, V int
	W    int64
}

// Pair returns the endpoints of e as a canonical unordered pair.
func (e Edge) Pair() Pair { return MakePair(e.U, e.V) }

// Pair is an unordered vertex pair with U < V.
type Pair struct {
	U, V int
}

// MakePair orders u and v so that the smaller index comes first.
func MakePair(u, v int) Pair {
	if u > v {
		u, v = v, u
	}

	return Pair{U: u, V: v}
}

// Graph is the capability contract of a simple graph on vertices 0..n-1.
//
// Mutators validate indices and return ErrInvalidVertex / ErrSelfLoop.
// Queries never fail: an out-of-range index behaves as an isolated vertex
// (HasEdge=false, Neighbors=nil, Degree=0), which keeps hot loops free of
// error plumbing.
//
// EdgeCount and TotalWeight are cached and maintained by every mutation.
type Graph interface {
	// Order returns the number of vertices.
	Order() int

	// Directed reports whether edges are arcs.
	Directed() bool

	// SetDirected toggles orientation. Going from directed to undirected
	// merges every pair u→v, v→u into one edge keeping the larger weight.
	// Going from undirected to directed replaces each edge by two arcs.
	SetDirected(directed bool)

	// AddEdge inserts u→v with weight w, or overwrites the weight if present.
	AddEdge(u, v int, w int64) error

	// RemoveEdge deletes u→v and reports whether an edge was removed.
	// Removing an absent edge is a no-op.
	RemoveEdge(u, v int) (bool, error)

	// HasEdge reports adjacency of u and v.
	HasEdge(u, v int) bool

	// Weight returns the weight of u→v and whether the edge exists.
	Weight(u, v int) (int64, bool)

	// Neighbors returns out-neighbors of v in ascending order.
	Neighbors(v int) []int

	// Degree counts incident arcs of v in the requested direction.
	Degree(v int, dir Direction) int

	// EdgeCount returns the cached number of edges (arcs if directed).
	EdgeCount() int

	// TotalWeight returns the cached sum of all edge weights.
	TotalWeight() int64

	// Edges lists all edges sorted by U then V; undirected edges once with U < V.
	Edges() []Edge

	// Clone returns an independent deep copy on the same backend.
	Clone() Graph
}

// Backend selects the storage layout chosen at construction.
type Backend int

const (
	// Dense stores an n×n matrix of optional weights: O(1) adjacency, O(n²) memory.
	Dense Backend = iota
	// Sparse stores one adjacency map per vertex: O(n+m) memory.
	Sparse
)

// String implements fmt.Stringer.
func (b Backend) String() string {
	switch b {
	case Dense:
		return "dense"
	case Sparse:
		return "sparse"
	default:
		return "unknown"
	}
}

// graphConfig is the resolved set of construction options.
type graphConfig struct {
	directed    bool
	directedSet bool
	backend     Backend
}

// GraphOption configures a Graph before creation.
type GraphOption func(cfg *graphConfig)

// WithDirected fixes the orientation of the new graph. Without it FromMatrix
// infers orientation from the matrix symmetry and New/FromEdges default to
// undirected.
func WithDirected(directed bool) GraphOption {
	return func(cfg *graphConfig) {
		cfg.directed = directed
		cfg.directedSet = true
	}
}

// WithBackend selects the storage layout (Dense by default).
func WithBackend(b Backend) GraphOption {
	return func(cfg *graphConfig) { cfg.backend = b }
}

func newGraphConfig(opts ...GraphOption) graphConfig {
	var cfg graphConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
