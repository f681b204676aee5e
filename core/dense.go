// SPDX-License-Identifier: MIT
//
// File: dense.go
// Role: Matrix backend. Row-major flat buffers hold weights and presence
//       flags; undirected edges are mirrored in both cells.
// Complexity:
//   - AddEdge/RemoveEdge/HasEdge/Weight: O(1).
//   - Neighbors/Degree: O(n).  Edges: O(n²).  Clone: O(n²).

package core

// Matrix is the dense Graph backend.
type Matrix struct {
	n        int
	directed bool
	present  []bool  // present[u*n+v]
	weight   []int64 // weight[u*n+v], meaningful only when present
	edges    int
	total    int64
}

// NewMatrix returns an empty dense graph on n vertices.
func NewMatrix(n int, directed bool) (*Matrix, error) {
	if n <= 0 {
		return nil, ErrInvalidShape
	}

	return &Matrix{
		n:        n,
		directed: directed,
		present:  make([]bool, n*n),
		weight:   make([]int64, n*n),
	}, nil
}

// Order implements Graph.
func (m *Matrix) Order() int { return m.n }

// Directed implements Graph.
func (m *Matrix) Directed() bool { return m.directed }

func (m *Matrix) valid(v int) bool { return v >= 0 && v < m.n }

func (m *Matrix) check(u, v int) error {
	if !m.valid(u) {
		return vertexError(u, m.n)
	}
	if !m.valid(v) {
		return vertexError(v, m.n)
	}
	if u == v {
		return ErrSelfLoop
	}

	return nil
}

// AddEdge implements Graph.
func (m *Matrix) AddEdge(u, v int, w int64) error {
	if err := m.check(u, v); err != nil {
		return err
	}
	i := u*m.n + v
	if m.present[i] {
		m.total += w - m.weight[i]
	} else {
		m.edges++
		m.total += w
	}
	m.present[i], m.weight[i] = true, w
	if !m.directed {
		j := v*m.n + u
		m.present[j], m.weight[j] = true, w
	}

	return nil
}

// RemoveEdge implements Graph.
func (m *Matrix) RemoveEdge(u, v int) (bool, error) {
	if err := m.check(u, v); err != nil {
		return false, err
	}
	i := u*m.n + v
	if !m.present[i] {
		return false, nil
	}
	m.edges--
	m.total -= m.weight[i]
	m.present[i], m.weight[i] = false, 0
	if !m.directed {
		j := v*m.n + u
		m.present[j], m.weight[j] = false, 0
	}

	return true, nil
}

// HasEdge implements Graph.
func (m *Matrix) HasEdge(u, v int) bool {
	if !m.valid(u) || !m.valid(v) {
		return false
	}

	return m.present[u*m.n+v]
}

// Weight implements Graph.
func (m *Matrix) Weight(u, v int) (int64, bool) {
	if !m.HasEdge(u, v) {
		return 0, false
	}

	return m.weight[u*m.n+v], true
}

// Neighbors implements Graph.
func (m *Matrix) Neighbors(v int) []int {
	if !m.valid(v) {
		return nil
	}
	var out []int
	row := m.present[v*m.n : (v+1)*m.n]
	for u, ok := range row {
		if ok {
			out = append(out, u)
		}
	}

	return out
}

// Degree implements Graph.
func (m *Matrix) Degree(v int, dir Direction) int {
	if !m.valid(v) {
		return 0
	}
	var out, in int
	for u := 0; u < m.n; u++ {
		if m.present[v*m.n+u] {
			out++
		}
		if m.present[u*m.n+v] {
			in++
		}
	}
	if !m.directed {
		return out
	}
	switch dir {
	case Out:
		return out
	case In:
		return in
	default:
		return out + in
	}
}

// EdgeCount implements Graph.
func (m *Matrix) EdgeCount() int { return m.edges }

// TotalWeight implements Graph.
func (m *Matrix) TotalWeight() int64 { return m.total }

// Edges implements Graph.
func (m *Matrix) Edges() []Edge {
	out := make([]Edge, 0, m.edges)
	for u := 0; u < m.n; u++ {
		start := 0
		if !m.directed {
			start = u + 1
		}
		for v := start; v < m.n; v++ {
			if i := u*m.n + v; m.present[i] {
				out = append(out, Edge{U: u, V: v, W: m.weight[i]})
			}
		}
	}

	return out
}

// Clone implements Graph.
func (m *Matrix) Clone() Graph {
	c := &Matrix{
		n:        m.n,
		directed: m.directed,
		present:  make([]bool, len(m.present)),
		weight:   make([]int64, len(m.weight)),
		edges:    m.edges,
		total:    m.total,
	}
	copy(c.present, m.present)
	copy(c.weight, m.weight)

	return c
}

// SetDirected implements Graph.
func (m *Matrix) SetDirected(directed bool) {
	if m.directed == directed {
		return
	}
	m.directed = directed
	if directed {
		// every mirrored cell becomes an arc of its own
		m.edges *= 2
		m.total *= 2

		return
	}
	m.edges, m.total = 0, 0
	for u := 0; u < m.n; u++ {
		for v := u + 1; v < m.n; v++ {
			i, j := u*m.n+v, v*m.n+u
			if !m.present[i] && !m.present[j] {
				continue
			}
			w := mergeWeight(m.present[i], m.weight[i], m.present[j], m.weight[j])
			m.present[i], m.weight[i] = true, w
			m.present[j], m.weight[j] = true, w
			m.edges++
			m.total += w
		}
	}
}

// mergeWeight resolves two opposite arcs into one undirected edge: the larger
// weight wins, a lone arc keeps its own weight.
func mergeWeight(hasA bool, a int64, hasB bool, b int64) int64 {
	switch {
	case hasA && hasB:
		if a > b {
			return a
		}

		return b
	case hasA:
		return a
	default:
		return b
	}
}
