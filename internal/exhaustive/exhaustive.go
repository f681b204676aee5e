// Package exhaustive holds brute-force reference solvers used to check the
// branch-and-bound solvers on small graphs (n ≤ 8).
package exhaustive

import (
	"github.com/katalvlaran/lvlath-edit/connectivity"
	"github.com/katalvlaran/lvlath-edit/core"
)

// maxEdges caps SpanningOptimum at 2^20 subsets.
const maxEdges = 20

// SpanningOptimum enumerates every edge subset of g and returns the least
// objective among subsets whose connectivity under fn is ≥ k. ok is false
// when no subset qualifies or g has too many edges to enumerate.
func SpanningOptimum(g core.Graph, k int, fn connectivity.Func, objective func(core.Graph) int64) (best int64, ok bool) {
	edges := g.Edges()
	if len(edges) > maxEdges {
		return 0, false
	}
	for mask := 0; mask < 1<<len(edges); mask++ {
		if !degreesReach(g, edges, mask, k) {
			continue
		}
		h, err := core.New(g.Order(), core.WithDirected(g.Directed()))
		if err != nil {
			return 0, false
		}
		for i, e := range edges {
			if mask&(1<<i) != 0 {
				_ = h.AddEdge(e.U, e.V, e.W)
			}
		}
		if connectivity.Global(h, fn) < k {
			continue
		}
		if v := objective(h); !ok || v < best {
			best, ok = v, true
		}
	}

	return best, ok
}

// degreesReach reports whether every vertex keeps at least k incident edges
// in the subset (k outgoing and k incoming arcs when directed), which any
// k-connected subset needs.
func degreesReach(g core.Graph, edges []core.Edge, mask, k int) bool {
	out := make([]int, g.Order())
	in := make([]int, g.Order())
	for i, e := range edges {
		if mask&(1<<i) == 0 {
			continue
		}
		out[e.U]++
		in[e.V]++
		if !g.Directed() {
			out[e.V]++
			in[e.U]++
		}
	}
	for v := range out {
		if out[v] < k || in[v] < k {
			return false
		}
	}

	return true
}

// ClusterOptimum enumerates every partition of the vertices into blocks of
// at most maxSize and returns the least number of edge edits turning g into
// that partition's cluster graph, plus the labels of one optimal partition.
func ClusterOptimum(g core.Graph, maxSize int) (int, []int) {
	return clusterOptimum(g, maxSize, false)
}

// RemovalOptimum is ClusterOptimum restricted to partitions whose blocks are
// cliques of g, i.e. clusterings reachable by deletions only.
func RemovalOptimum(g core.Graph, maxSize int) (int, []int) {
	return clusterOptimum(g, maxSize, true)
}

func clusterOptimum(g core.Graph, maxSize int, cliquesOnly bool) (int, []int) {
	n := g.Order()
	labels := make([]int, n)
	sizes := make([]int, 0, n)
	best := -1
	var bestLabels []int

	var place func(v int)
	place = func(v int) {
		if v == n {
			if c := partitionCost(g, labels); best < 0 || c < best {
				best = c
				bestLabels = append(bestLabels[:0], labels...)
			}

			return
		}
		for b := range sizes {
			if sizes[b] < maxSize && (!cliquesOnly || joins(g, labels[:v], b, v)) {
				labels[v] = b
				sizes[b]++
				place(v + 1)
				sizes[b]--
			}
		}
		labels[v] = len(sizes)
		sizes = append(sizes, 1)
		place(v + 1)
		sizes = sizes[:len(sizes)-1]
	}
	place(0)

	return best, bestLabels
}

// joins reports whether v is adjacent to every vertex already in block b.
func joins(g core.Graph, labels []int, b, v int) bool {
	for u, l := range labels {
		if l == b && !g.HasEdge(u, v) {
			return false
		}
	}

	return true
}

func partitionCost(g core.Graph, labels []int) int {
	cost := 0
	for _, p := range core.Pairs(g.Order()) {
		same := labels[p.U] == labels[p.V]
		if same != g.HasEdge(p.U, p.V) {
			cost++
		}
	}

	return cost
}
