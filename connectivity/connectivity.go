package connectivity

import (
	"github.com/katalvlaran/lvlath-edit/core"
	"github.com/katalvlaran/lvlath-edit/flow"
)

// Func returns the local connectivity between u and v in g.
// Out-of-range or equal terminals yield 0.
type Func func(g core.Graph, u, v int) int

// MaxFlow is the signature shared by flow.EdmondsKarp and flow.Dinic.
type MaxFlow func(nw *flow.Network, s, t int, opts *flow.Options) (*flow.Result, error)

// LocalEdge counts edge-disjoint u→v paths with Edmonds–Karp.
func LocalEdge(g core.Graph, u, v int) int {
	return localEdge(g, u, v, flow.EdmondsKarp)
}

// LocalVertex counts internally vertex-disjoint u→v paths with Edmonds–Karp.
func LocalVertex(g core.Graph, u, v int) int {
	return localVertex(g, u, v, flow.EdmondsKarp)
}

// EdgeFunc binds local edge connectivity to the given max-flow routine.
func EdgeFunc(mf MaxFlow) Func {
	return func(g core.Graph, u, v int) int { return localEdge(g, u, v, mf) }
}

// VertexFunc binds local vertex connectivity to the given max-flow routine.
func VertexFunc(mf MaxFlow) Func {
	return func(g core.Graph, u, v int) int { return localVertex(g, u, v, mf) }
}

func terminalsOK(g core.Graph, u, v int) bool {
	n := g.Order()

	return u >= 0 && u < n && v >= 0 && v < n && u != v
}

func localEdge(g core.Graph, u, v int, mf MaxFlow) int {
	if !terminalsOK(g, u, v) {
		return 0
	}
	nw := flow.NewNetwork(g.Order())
	for _, e := range g.Edges() {
		_ = nw.AddArc(e.U, e.V, 1)
		if !g.Directed() {
			_ = nw.AddArc(e.V, e.U, 1)
		}
	}

	return run(nw, u, v, mf)
}

func localVertex(g core.Graph, u, v int, mf MaxFlow) int {
	if !terminalsOK(g, u, v) {
		return 0
	}
	n := g.Order()
	nw := flow.NewNetwork(2 * n)
	// arcs leave from the out-copy of a split vertex; terminals are not split
	out := func(i int) int {
		if i == u || i == v {
			return i
		}

		return n + i
	}
	for i := 0; i < n; i++ {
		if i != u && i != v {
			_ = nw.AddArc(i, n+i, 1)
		}
	}
	for _, e := range g.Edges() {
		_ = nw.AddArc(out(e.U), e.V, 1)
		if !g.Directed() {
			_ = nw.AddArc(out(e.V), e.U, 1)
		}
	}

	return run(nw, u, v, mf)
}

func run(nw *flow.Network, s, t int, mf MaxFlow) int {
	res, err := mf(nw, s, t, nil)
	if err != nil {
		return 0
	}

	return int(res.Value)
}

// Global returns the minimum of fn over all vertex pairs of g: unordered
// pairs when undirected, ordered pairs when directed. The scan stops at the
// first zero. Graphs with fewer than two vertices have connectivity 0.
//
// Complexity: O(n²) oracle calls.
func Global(g core.Graph, fn Func) int {
	n := g.Order()
	if n < 2 {
		return 0
	}
	best := -1
	for u := 0; u < n; u++ {
		start := u + 1
		if g.Directed() {
			start = 0
		}
		for v := start; v < n; v++ {
			if u == v {
				continue
			}
			c := fn(g, u, v)
			if c == 0 {
				return 0
			}
			if best < 0 || c < best {
				best = c
			}
		}
	}

	return best
}

// Edge returns the global edge connectivity λ(g).
func Edge(g core.Graph) int { return Global(g, LocalEdge) }

// Vertex returns the global vertex connectivity κ(g).
func Vertex(g core.Graph) int { return Global(g, LocalVertex) }

// MinEdges is the structural lower bound on the edge count of any
// k-connected graph on n vertices: a spanning tree for k = 1, and
// ⌈k·n/2⌉ for k > 1 since every vertex needs degree at least k.
func MinEdges(n, k int) int {
	if n <= 1 || k <= 0 {
		return 0
	}
	if k == 1 {
		return n - 1
	}

	return (k*n + 1) / 2
}
