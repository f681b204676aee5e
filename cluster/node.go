package cluster

import (
	"github.com/rhartert/sparsesets"

	"github.com/katalvlaran/lvlath-edit/core"
)

// decision is the fate of one vertex pair in the final graph.
type decision int8

const (
	undecided decision = iota
	present
	absent
)

// instance is the read-only problem data shared by all nodes of one run.
type instance struct {
	orig     core.Graph
	n        int
	maxSize  int
	origEdge []bool // by core.PairIndex

	// scratch holds the pairs taken by the conflict packing of the node
	// being evaluated; cleared per evaluation in O(1).
	scratch *sparsesets.Set
}

func newInstance(g core.Graph, maxSize int) *instance {
	n := g.Order()
	pairs := n * (n - 1) / 2
	in := &instance{
		orig:     g,
		n:        n,
		maxSize:  maxSize,
		origEdge: make([]bool, pairs),
		scratch:  sparsesets.New(pairs),
	}
	for _, e := range g.Edges() {
		in.origEdge[core.PairIndex(n, e.Pair())] = true
	}

	return in
}

// node is one search-tree node. It exclusively owns every slice and the
// working graph; branches that diverge clone first.
type node struct {
	g      core.Graph // input with the decisions applied
	dec    []decision // by core.PairIndex
	parent []int      // union-find over pairs fixed present
	size   []int
	edits  int64 // decisions that differ from the input
	open   int   // undecided pairs left
	score  int64

	// filled by evaluate
	bound    int64
	next     core.Pair
	hasNext  bool
	feasible bool
}

// root builds the initial node. It reports false when the constraints are
// contradictory from the start.
func (in *instance) root(removalsOnly bool) (*node, bool) {
	pairs := in.n * (in.n - 1) / 2
	nd := &node{
		g:      in.orig.Clone(),
		dec:    make([]decision, pairs),
		parent: make([]int, in.n),
		size:   make([]int, in.n),
		open:   pairs,
	}
	for v := range nd.parent {
		nd.parent[v] = v
		nd.size[v] = 1
	}
	if removalsOnly {
		for _, p := range core.Pairs(in.n) {
			if !in.origEdge[core.PairIndex(in.n, p)] {
				in.set(nd, p, absent)
			}
		}
	}
	if in.maxSize == 1 {
		// every singleton is already a full cluster
		for v := 0; v < in.n; v++ {
			if !in.close(nd, v) {
				return nil, false
			}
		}
	}

	return nd, true
}

func (nd *node) clone() *node {
	return &node{
		g:      nd.g.Clone(),
		dec:    append([]decision(nil), nd.dec...),
		parent: append([]int(nil), nd.parent...),
		size:   append([]int(nil), nd.size...),
		edits:  nd.edits,
		open:   nd.open,
		score:  nd.score,
	}
}

func (nd *node) find(v int) int {
	for nd.parent[v] != v {
		nd.parent[v] = nd.parent[nd.parent[v]]
		v = nd.parent[v]
	}

	return v
}

// members lists the vertices of the fixed component rooted at r.
func (in *instance) members(nd *node, r int) []int {
	out := make([]int, 0, nd.size[r])
	for v := 0; v < in.n; v++ {
		if nd.find(v) == r {
			out = append(out, v)
		}
	}

	return out
}

// set records decision d for an undecided pair and applies it to the
// working graph, charging an edit when it departs from the input.
func (in *instance) set(nd *node, p core.Pair, d decision) {
	idx := core.PairIndex(in.n, p)
	nd.dec[idx] = d
	nd.open--
	want := d == present
	if want != in.origEdge[idx] {
		nd.edits++
	}
	switch {
	case want && !nd.g.HasEdge(p.U, p.V):
		w, ok := in.orig.Weight(p.U, p.V)
		if !ok {
			w = 1
		}
		_ = nd.g.AddEdge(p.U, p.V, w)
	case !want && nd.g.HasEdge(p.U, p.V):
		_, _ = nd.g.RemoveEdge(p.U, p.V)
	}
}

// fix decides pair p and propagates. It reports false when the node
// becomes infeasible; the node must then be discarded.
func (in *instance) fix(nd *node, p core.Pair, d decision) bool {
	switch nd.dec[core.PairIndex(in.n, p)] {
	case d:
		return true
	case undecided:
	default:
		return false
	}
	if d == absent {
		if nd.find(p.U) == nd.find(p.V) {
			return false
		}
		in.set(nd, p, absent)

		return true
	}

	return in.merge(nd, p.U, p.V)
}

// merge joins the fixed components of u and v, forcing every pair inside
// the union present and closing the union if it reaches maxSize.
func (in *instance) merge(nd *node, u, v int) bool {
	ru, rv := nd.find(u), nd.find(v)
	if ru == rv {
		return true
	}
	if nd.size[ru]+nd.size[rv] > in.maxSize {
		return false
	}
	left, right := in.members(nd, ru), in.members(nd, rv)
	for _, a := range left {
		for _, b := range right {
			p := core.MakePair(a, b)
			switch nd.dec[core.PairIndex(in.n, p)] {
			case absent:
				return false
			case undecided:
				in.set(nd, p, present)
			}
		}
	}
	if nd.size[ru] < nd.size[rv] {
		ru, rv = rv, ru
	}
	nd.parent[rv] = ru
	nd.size[ru] += nd.size[rv]
	if nd.size[ru] == in.maxSize {
		return in.close(nd, ru)
	}

	return true
}

// close fixes every pair leaving the full component rooted at r absent.
func (in *instance) close(nd *node, r int) bool {
	inside := make([]bool, in.n)
	members := in.members(nd, r)
	for _, v := range members {
		inside[v] = true
	}
	for _, a := range members {
		for x := 0; x < in.n; x++ {
			if inside[x] {
				continue
			}
			p := core.MakePair(a, x)
			switch nd.dec[core.PairIndex(in.n, p)] {
			case present:
				return false
			case undecided:
				in.set(nd, p, absent)
			}
		}
	}

	return true
}
