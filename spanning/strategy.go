package spanning

import (
	"sort"

	"github.com/katalvlaran/lvlath-edit/core"
)

// Strategy is an immutable bundle of policies shared read-only by every node
// of one run.
type Strategy struct {
	// Name identifies the strategy in logs and CLI flags.
	Name string

	// Objective is the value minimised over feasible graphs.
	Objective func(g core.Graph) int64

	// LowerBound must not exceed Objective of any graph reachable from nd
	// by further removals.
	LowerBound func(nd *Node) int64

	// OrderEdges sorts the undecided list in place; the first edge is
	// decided next.
	OrderEdges func(g core.Graph, edges []core.Edge)

	// Candidate filters the initial undecided list; nil admits every edge.
	Candidate func(e core.Edge) bool

	// ResortAlways re-sorts the list whenever a removal changes the graph.
	// Otherwise the list is sorted once at the root.
	ResortAlways bool
}

// Unweighted minimises the number of edges. Its bound is the larger of the
// structural floor and the number of edges already fixed.
func Unweighted() Strategy {
	return Strategy{
		Name:      "unweighted",
		Objective: func(g core.Graph) int64 { return int64(g.EdgeCount()) },
		LowerBound: func(nd *Node) int64 {
			fixed := nd.Graph.EdgeCount() - len(nd.Undecided)
			if nd.Floor > fixed {
				return int64(nd.Floor)
			}

			return int64(fixed)
		},
		OrderEdges:   ByDegree,
		ResortAlways: true,
	}
}

// Weighted minimises the weight sum.
func Weighted() Strategy {
	return Strategy{
		Name:         "weighted",
		Objective:    func(g core.Graph) int64 { return g.TotalWeight() },
		LowerBound:   weightBound,
		OrderEdges:   ByWeightThenDegree,
		ResortAlways: true,
	}
}

// NegativeWeighted is Weighted for graphs with non-positive weights: such
// edges never lower the sum when removed, so they are kept from the start.
func NegativeWeighted() Strategy {
	s := Weighted()
	s.Name = "negative-weighted"
	s.Candidate = func(e core.Edge) bool { return e.W > 0 }

	return s
}

// Strategies lists the built-in strategies by name.
func Strategies() map[string]Strategy {
	return map[string]Strategy{
		"unweighted":        Unweighted(),
		"weighted":          Weighted(),
		"negative-weighted": NegativeWeighted(),
	}
}

// weightBound is the larger of
//
//	cheapest: every negative edge plus the cheapest non-negative edges
//	          needed to reach the floor; no graph with ≥ Floor edges from
//	          the current edge set weighs less;
//	fixed:    fixed edges plus every negative undecided edge.
//
// Both terms hold for arbitrary signs, so the bound stays admissible.
func weightBound(nd *Node) int64 {
	edges := nd.Graph.Edges()
	var neg int64
	nonNeg := make([]int64, 0, len(edges))
	negCount := 0
	for _, e := range edges {
		if e.W < 0 {
			neg += e.W
			negCount++
		} else {
			nonNeg = append(nonNeg, e.W)
		}
	}
	sort.Slice(nonNeg, func(i, j int) bool { return nonNeg[i] < nonNeg[j] })
	cheapest := neg
	for i := 0; i < nd.Floor-negCount && i < len(nonNeg); i++ {
		cheapest += nonNeg[i]
	}

	fixed := nd.fixedWeight()
	for _, e := range nd.Undecided {
		if e.W < 0 {
			fixed += e.W
		}
	}
	if cheapest > fixed {
		return cheapest
	}

	return fixed
}

// ByDegree orders edges ascending by (min endpoint degree, degree sum), with
// the endpoints as the final tie-break.
func ByDegree(g core.Graph, edges []core.Edge) {
	sort.SliceStable(edges, func(i, j int) bool {
		return degreeLess(g, edges[i], edges[j])
	})
}

// ByWeightThenDegree puts heavier edges first and breaks ties as ByDegree.
func ByWeightThenDegree(g core.Graph, edges []core.Edge) {
	sort.SliceStable(edges, func(i, j int) bool {
		if edges[i].W != edges[j].W {
			return edges[i].W > edges[j].W
		}

		return degreeLess(g, edges[i], edges[j])
	})
}

func degreeLess(g core.Graph, a, b core.Edge) bool {
	amin, asum := degreeKey(g, a)
	bmin, bsum := degreeKey(g, b)
	switch {
	case amin != bmin:
		return amin < bmin
	case asum != bsum:
		return asum < bsum
	case a.U != b.U:
		return a.U < b.U
	default:
		return a.V < b.V
	}
}

func degreeKey(g core.Graph, e core.Edge) (lo, sum int) {
	du, dv := g.Degree(e.U, core.Both), g.Degree(e.V, core.Both)
	if du < dv {
		return du, du + dv
	}

	return dv, du + dv
}
