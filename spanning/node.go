package spanning

import (
	"github.com/katalvlaran/lvlath-edit/connectivity"
	"github.com/katalvlaran/lvlath-edit/core"
)

// Node is one search-tree node. It owns its Graph and Undecided list; the
// keep branch mutates a node in place, the remove branch clones both.
type Node struct {
	// Graph is k-connected at every node.
	Graph core.Graph

	// Undecided lists the edges still eligible for removal, first one next.
	Undecided []core.Edge

	// Score is an admissible lower bound on any completion's objective.
	Score int64

	// K is the required connectivity.
	K int

	// Floor is the least number of edges any k-connected graph on
	// Graph.Order() vertices has.
	Floor int
}

// Floor returns the structural edge floor for g: connectivity.MinEdges on
// undirected graphs, k·n arcs on directed ones (every vertex needs
// out-degree ≥ k).
func Floor(g core.Graph, k int) int {
	n := g.Order()
	if g.Directed() {
		if n < 2 {
			return 0
		}

		return k * n
	}

	return connectivity.MinEdges(n, k)
}

// forced reports whether e must stay: one of its endpoints is already at the
// minimum degree the connectivity requirement allows.
func (nd *Node) forced(e core.Edge) bool {
	g := nd.Graph
	if g.Directed() {
		return g.Degree(e.U, core.Out) <= nd.K || g.Degree(e.V, core.In) <= nd.K
	}

	return g.Degree(e.U, core.Out) <= nd.K || g.Degree(e.V, core.Out) <= nd.K
}

// fixIncident drops forced edges touching any of the given vertices; with
// no vertices it checks the whole list.
func (nd *Node) fixIncident(vs ...int) {
	kept := nd.Undecided[:0]
	for _, e := range nd.Undecided {
		touched := len(vs) == 0
		for _, v := range vs {
			if e.U == v || e.V == v {
				touched = true

				break
			}
		}
		if touched && nd.forced(e) {
			continue
		}
		kept = append(kept, e)
	}
	nd.Undecided = kept
}

// fixedWeight sums the weights of edges present and no longer undecided.
func (nd *Node) fixedWeight() int64 {
	undecided := make(map[core.Pair]struct{}, len(nd.Undecided))
	for _, e := range nd.Undecided {
		undecided[nd.key(e)] = struct{}{}
	}
	var sum int64
	for _, e := range nd.Graph.Edges() {
		if _, ok := undecided[nd.key(e)]; !ok {
			sum += e.W
		}
	}

	return sum
}

// key identifies e: an ordered pair on directed graphs.
func (nd *Node) key(e core.Edge) core.Pair {
	if nd.Graph.Directed() {
		return core.Pair{U: e.U, V: e.V}
	}

	return e.Pair()
}
