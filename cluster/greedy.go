package cluster

import (
	"context"

	"github.com/pkg/errors"

	"github.com/katalvlaran/lvlath-edit/core"
	"github.com/katalvlaran/lvlath-edit/search"
)

// ctxEvery is the number of clique extensions between context checks.
const ctxEvery = 256

// Greedy builds a valid clustering of g using deletions only.
//
// For sizes maxSize down to 1 it enumerates the cliques of unclaimed vertices
// in lexicographic order; the first clique of the current size becomes a
// cluster: its outgoing edges are cut and its vertices claimed. Singletons
// always qualify, so every vertex ends up claimed.
//
// Cliques are grown only over common neighbours, so sparse graphs cost little
// regardless of maxSize. Dense graphs can still be expensive: ctx is checked
// while enumerating and its error is returned when it expires.
//
// The result is a cluster graph with clusters of at most maxSize vertices,
// and no better than optimal; Solve uses it as the initial record.
func Greedy(ctx context.Context, g core.Graph, maxSize int) (core.Graph, error) {
	if g == nil {
		return nil, errors.Wrap(search.ErrValidation, "cluster: nil graph")
	}
	if g.Directed() {
		return nil, errors.Wrap(search.ErrValidation, "cluster: directed graphs are not supported")
	}
	if maxSize < 1 {
		return nil, errors.Wrapf(search.ErrValidation, "cluster: s=%d must be positive", maxSize)
	}
	if err := ctx.Err(); err != nil {
		return nil, errors.WithStack(err)
	}
	gr := &greedy{ctx: ctx, g: g.Clone(), claimed: make([]bool, g.Order())}
	for size := maxSize; size >= 1; size-- {
		gr.size = size
		for v := 0; v < gr.g.Order(); v++ {
			if gr.claimed[v] {
				continue
			}
			if _, err := gr.grow([]int{v}, gr.later(v)); err != nil {
				return nil, err
			}
		}
	}

	return gr.g, nil
}

// greedy is the state of one Greedy run.
type greedy struct {
	ctx     context.Context
	g       core.Graph
	claimed []bool
	size    int
	ticks   int
}

// grow extends clique with the candidates in order and claims the first clique
// reaching the current size. It reports whether a claim happened; the caller
// must then unwind, since every prefix of the claimed clique is now claimed.
func (gr *greedy) grow(clique, cands []int) (bool, error) {
	if len(clique) == gr.size {
		cut(gr.g, clique)
		for _, v := range clique {
			gr.claimed[v] = true
		}

		return true, nil
	}
	if len(clique)+len(cands) < gr.size {
		return false, nil
	}
	gr.ticks++
	if gr.ticks%ctxEvery == 0 {
		if err := gr.ctx.Err(); err != nil {
			return false, errors.WithStack(err)
		}
	}
	for i, c := range cands {
		claimed, err := gr.grow(append(clique, c), gr.common(c, cands[i+1:]))
		if err != nil || claimed {
			return claimed, err
		}
	}

	return false, nil
}

// later returns the unclaimed neighbours of v above v, in ascending order.
func (gr *greedy) later(v int) []int {
	var out []int
	for _, u := range gr.g.Neighbors(v) {
		if u > v && !gr.claimed[u] {
			out = append(out, u)
		}
	}

	return out
}

// common keeps the members of pool adjacent to v.
func (gr *greedy) common(v int, pool []int) []int {
	var out []int
	for _, u := range pool {
		if gr.g.HasEdge(v, u) {
			out = append(out, u)
		}
	}

	return out
}

// cut removes every edge between vs and the rest of the graph.
func cut(g core.Graph, vs []int) {
	inside := make(map[int]bool, len(vs))
	for _, v := range vs {
		inside[v] = true
	}
	for _, v := range vs {
		for _, u := range g.Neighbors(v) {
			if !inside[u] {
				_, _ = g.RemoveEdge(v, u)
			}
		}
	}
}
