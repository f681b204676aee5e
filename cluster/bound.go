package cluster

import (
	"github.com/rhartert/sparsesets"

	"github.com/katalvlaran/lvlath-edit/core"
)

// evaluate computes the node's lower bound and picks the next pair to
// branch on.
//
// A conflict triple is an induced path a–b–c in the working graph. Each one
// needs at least one more edit among its undecided pairs, so a set of
// triples with pairwise-disjoint undecided pairs adds its size to the bound.
// Branching takes the first undecided pair of the first packed triple; a
// graph without conflicts is a clustering, and then the next pair is an
// undecided edge of an oversized cluster, if any.
func (in *instance) evaluate(nd *node) {
	nd.hasNext = false
	used := in.scratch
	used.Clear()
	packed := 0
	for b := 0; b < in.n; b++ {
		nbrs := nd.g.Neighbors(b)
		for i := 0; i < len(nbrs); i++ {
			for j := i + 1; j < len(nbrs); j++ {
				a, c := nbrs[i], nbrs[j]
				if nd.g.HasEdge(a, c) {
					continue
				}
				if in.packTriple(nd, used, core.MakePair(a, b), core.MakePair(b, c), core.MakePair(a, c)) {
					packed++
				}
			}
		}
	}
	nd.bound = nd.edits + int64(packed)
	if packed > 0 {
		nd.feasible = false

		return
	}
	nd.feasible = core.IsClusterGraph(nd.g, in.maxSize)
	if !nd.feasible {
		in.pickOversized(nd)
	}
}

// packTriple adds the triple to the packing when none of its undecided
// pairs is taken yet.
func (in *instance) packTriple(nd *node, used *sparsesets.Set, pairs ...core.Pair) bool {
	var idx [3]int
	k := 0
	for _, p := range pairs {
		i := core.PairIndex(in.n, p)
		if nd.dec[i] != undecided {
			continue
		}
		if used.Contains(i) {
			return false
		}
		idx[k] = i
		k++
		if !nd.hasNext {
			nd.next, nd.hasNext = p, true
		}
	}
	if k == 0 {
		return false
	}
	for _, i := range idx[:k] {
		used.Insert(i)
	}

	return true
}

// pickOversized selects an undecided edge inside a cluster larger than
// maxSize. Such an edge exists: a fully fixed cluster never exceeds maxSize.
func (in *instance) pickOversized(nd *node) {
	labels, count := core.Components(nd.g)
	sizes := make([]int, count)
	for _, l := range labels {
		sizes[l]++
	}
	for _, e := range nd.g.Edges() {
		if sizes[labels[e.U]] <= in.maxSize {
			continue
		}
		p := e.Pair()
		if nd.dec[core.PairIndex(in.n, p)] == undecided {
			nd.next, nd.hasNext = p, true

			return
		}
	}
}
