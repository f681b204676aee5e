// SPDX-License-Identifier: MIT
//
// File: analysis.go
// Role: Read-only structural queries used by the solvers and their tests:
//       connected components, cluster-graph recognition, edit distance.

package core

// Components labels the weakly connected components of g.
// labels[v] is in 0..count-1, assigned in order of the smallest vertex of
// each component.
//
// Complexity: O(n + m) on Sparse, O(n²) on Dense.
func Components(g Graph) (labels []int, count int) {
	n := g.Order()
	labels = make([]int, n)
	for v := range labels {
		labels[v] = -1
	}
	var queue []int
	for s := 0; s < n; s++ {
		if labels[s] >= 0 {
			continue
		}
		labels[s] = count
		queue = append(queue[:0], s)
		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			for _, v := range undirectedNeighbors(g, u) {
				if labels[v] < 0 {
					labels[v] = count
					queue = append(queue, v)
				}
			}
		}
		count++
	}

	return labels, count
}

// undirectedNeighbors returns out-neighbors, plus in-neighbors on directed graphs.
func undirectedNeighbors(g Graph, u int) []int {
	nbrs := g.Neighbors(u)
	if !g.Directed() {
		return nbrs
	}
	for v := 0; v < g.Order(); v++ {
		if v != u && g.HasEdge(v, u) && !g.HasEdge(u, v) {
			nbrs = append(nbrs, v)
		}
	}

	return nbrs
}

// IsClusterGraph reports whether g is a disjoint union of cliques, each with
// at most maxSize vertices. maxSize ≤ 0 disables the size limit.
func IsClusterGraph(g Graph, maxSize int) bool {
	labels, count := Components(g)
	sizes := make([]int, count)
	for _, l := range labels {
		sizes[l]++
	}
	for v, l := range labels {
		if maxSize > 0 && sizes[l] > maxSize {
			return false
		}
		// a vertex of a clique is adjacent to every other member
		if g.Degree(v, Out) != sizes[l]-1 {
			return false
		}
	}

	return true
}

// EditDistance returns the size of the symmetric difference of the edge sets
// of a and b (weights ignored). Both graphs must have the same order.
func EditDistance(a, b Graph) int {
	d := 0
	for _, e := range a.Edges() {
		if !b.HasEdge(e.U, e.V) {
			d++
		}
	}
	for _, e := range b.Edges() {
		if !a.HasEdge(e.U, e.V) {
			d++
		}
	}

	return d
}

// Pairs lists all unordered vertex pairs of an n-vertex graph in
// lexicographic order.
func Pairs(n int) []Pair {
	if n < 2 {
		return nil
	}
	out := make([]Pair, 0, n*(n-1)/2)
	for u := 0; u < n; u++ {
		for v := u + 1; v < n; v++ {
			out = append(out, Pair{U: u, V: v})
		}
	}

	return out
}

// PairIndex maps an unordered pair to its position in Pairs(n).
func PairIndex(n int, p Pair) int {
	// rows 0..U-1 contribute (n-1)+(n-2)+...+(n-U) pairs
	return p.U*(2*n-p.U-1)/2 + (p.V - p.U - 1)
}
