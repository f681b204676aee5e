// SPDX-License-Identifier: MIT
//
// File: sparse.go
// Role: Edge-set backend. One out-map per vertex plus an in-set for directed
//       graphs; undirected edges are mirrored in both out-maps.
// Complexity:
//   - AddEdge/RemoveEdge/HasEdge/Weight/Degree: O(1) expected.
//   - Neighbors: O(d log d).  Edges: O(m log m).  Clone: O(n+m).

package core

import "sort"

// EdgeSet is the sparse Graph backend.
type EdgeSet struct {
	n        int
	directed bool
	out      []map[int]int64
	in       []map[int]struct{} // maintained for directed graphs only
	edges    int
	total    int64
}

// NewEdgeSet returns an empty sparse graph on n vertices.
func NewEdgeSet(n int, directed bool) (*EdgeSet, error) {
	if n <= 0 {
		return nil, ErrInvalidShape
	}
	s := &EdgeSet{n: n, directed: directed}
	s.out = make([]map[int]int64, n)
	s.in = make([]map[int]struct{}, n)
	for v := 0; v < n; v++ {
		s.out[v] = make(map[int]int64)
		s.in[v] = make(map[int]struct{})
	}

	return s, nil
}

// Order implements Graph.
func (s *EdgeSet) Order() int { return s.n }

// Directed implements Graph.
func (s *EdgeSet) Directed() bool { return s.directed }

func (s *EdgeSet) valid(v int) bool { return v >= 0 && v < s.n }

func (s *EdgeSet) check(u, v int) error {
	if !s.valid(u) {
		return vertexError(u, s.n)
	}
	if !s.valid(v) {
		return vertexError(v, s.n)
	}
	if u == v {
		return ErrSelfLoop
	}

	return nil
}

// AddEdge implements Graph.
func (s *EdgeSet) AddEdge(u, v int, w int64) error {
	if err := s.check(u, v); err != nil {
		return err
	}
	if old, ok := s.out[u][v]; ok {
		s.total += w - old
	} else {
		s.edges++
		s.total += w
	}
	s.out[u][v] = w
	if s.directed {
		s.in[v][u] = struct{}{}
	} else {
		s.out[v][u] = w
	}

	return nil
}

// RemoveEdge implements Graph.
func (s *EdgeSet) RemoveEdge(u, v int) (bool, error) {
	if err := s.check(u, v); err != nil {
		return false, err
	}
	w, ok := s.out[u][v]
	if !ok {
		return false, nil
	}
	s.edges--
	s.total -= w
	delete(s.out[u], v)
	if s.directed {
		delete(s.in[v], u)
	} else {
		delete(s.out[v], u)
	}

	return true, nil
}

// HasEdge implements Graph.
func (s *EdgeSet) HasEdge(u, v int) bool {
	if !s.valid(u) || !s.valid(v) {
		return false
	}
	_, ok := s.out[u][v]

	return ok
}

// Weight implements Graph.
func (s *EdgeSet) Weight(u, v int) (int64, bool) {
	if !s.valid(u) || !s.valid(v) {
		return 0, false
	}
	w, ok := s.out[u][v]

	return w, ok
}

// Neighbors implements Graph.
func (s *EdgeSet) Neighbors(v int) []int {
	if !s.valid(v) || len(s.out[v]) == 0 {
		return nil
	}
	out := make([]int, 0, len(s.out[v]))
	for u := range s.out[v] {
		out = append(out, u)
	}
	sort.Ints(out)

	return out
}

// Degree implements Graph.
func (s *EdgeSet) Degree(v int, dir Direction) int {
	if !s.valid(v) {
		return 0
	}
	if !s.directed {
		return len(s.out[v])
	}
	switch dir {
	case Out:
		return len(s.out[v])
	case In:
		return len(s.in[v])
	default:
		return len(s.out[v]) + len(s.in[v])
	}
}

// EdgeCount implements Graph.
func (s *EdgeSet) EdgeCount() int { return s.edges }

// TotalWeight implements Graph.
func (s *EdgeSet) TotalWeight() int64 { return s.total }

// Edges implements Graph.
func (s *EdgeSet) Edges() []Edge {
	out := make([]Edge, 0, s.edges)
	for u := 0; u < s.n; u++ {
		for v, w := range s.out[u] {
			if s.directed || u < v {
				out = append(out, Edge{U: u, V: v, W: w})
			}
		}
	}
	SortEdges(out)

	return out
}

// Clone implements Graph.
func (s *EdgeSet) Clone() Graph {
	c := &EdgeSet{
		n:        s.n,
		directed: s.directed,
		out:      make([]map[int]int64, s.n),
		in:       make([]map[int]struct{}, s.n),
		edges:    s.edges,
		total:    s.total,
	}
	for v := 0; v < s.n; v++ {
		c.out[v] = make(map[int]int64, len(s.out[v]))
		for u, w := range s.out[v] {
			c.out[v][u] = w
		}
		c.in[v] = make(map[int]struct{}, len(s.in[v]))
		for u := range s.in[v] {
			c.in[v][u] = struct{}{}
		}
	}

	return c
}

// SetDirected implements Graph.
func (s *EdgeSet) SetDirected(directed bool) {
	if s.directed == directed {
		return
	}
	s.directed = directed
	if directed {
		for v := 0; v < s.n; v++ {
			for u := range s.out[v] {
				s.in[u][v] = struct{}{}
			}
		}
		s.edges *= 2
		s.total *= 2

		return
	}
	s.edges, s.total = 0, 0
	for u := 0; u < s.n; u++ {
		for v := u + 1; v < s.n; v++ {
			a, hasA := s.out[u][v]
			b, hasB := s.out[v][u]
			if !hasA && !hasB {
				continue
			}
			w := mergeWeight(hasA, a, hasB, b)
			s.out[u][v], s.out[v][u] = w, w
			s.edges++
			s.total += w
		}
	}
	for v := 0; v < s.n; v++ {
		s.in[v] = make(map[int]struct{})
	}
}

// SortEdges orders edges by U then V in place.
func SortEdges(edges []Edge) {
	sort.Slice(edges, func(i, j int) bool {
		if edges[i].U != edges[j].U {
			return edges[i].U < edges[j].U
		}

		return edges[i].V < edges[j].V
	})
}
