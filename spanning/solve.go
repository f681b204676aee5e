package spanning

import (
	"context"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/lvlath-edit/connectivity"
	"github.com/katalvlaran/lvlath-edit/core"
	"github.com/katalvlaran/lvlath-edit/search"
)

// Solve returns a spanning subgraph of g with connectivity ≥ k under the
// configured oracle that minimises the strategy objective.
//
// Validation (search.ErrValidation): nil graph, k ≤ 0, fewer than two
// vertices, an incomplete strategy, or a graph whose own connectivity is
// below k. The input graph is never modified.
//
// When the budget or ctx stops the search early the best graph found so far
// is returned with ProvenOptimal=false and a nil error.
//
// Complexity: exponential in |E| in the worst case; each expansion costs one
// max-flow call plus a clone of the graph.
func Solve(ctx context.Context, g core.Graph, k int, opts ...Option) (*search.Result, error) {
	cfg := newConfig(opts...)
	if err := validate(g, k, cfg); err != nil {
		return nil, err
	}
	strat := cfg.strategy

	eng := search.NewEngine[*Node](cfg.Config)
	log := eng.Logger().WithFields(logrus.Fields{"k": k, "strategy": strat.Name})
	eng.Start()

	work := g.Clone()
	eng.Seed(work, strat.Objective(work))

	root := &Node{Graph: work, K: k, Floor: Floor(work, k)}
	for _, e := range work.Edges() {
		if strat.Candidate == nil || strat.Candidate(e) {
			root.Undecided = append(root.Undecided, e)
		}
	}
	strat.OrderEdges(work, root.Undecided)
	root.fixIncident()
	root.Score = strat.LowerBound(root)
	log.WithFields(logrus.Fields{
		"edges":     work.EdgeCount(),
		"undecided": len(root.Undecided),
		"score":     root.Score,
	}).Debug("spanning: root")
	eng.Offer(root.Score, root)

	for {
		nd, score, ok := eng.Next(ctx)
		if !ok {
			break
		}
		if len(nd.Undecided) == 0 {
			continue
		}
		e := nd.Undecided[0]
		nd.Undecided = nd.Undecided[1:]

		if cfg.conn(nd.Graph, e.U, e.V) > k {
			child := removeEdge(nd, e, strat)
			child.Score = clamp(score, strat.LowerBound(child))
			cfg.traceChild(score, child.Score)
			eng.Improve(child.Graph, strat.Objective(child.Graph))
			eng.Offer(child.Score, child)
		}

		nd.Score = clamp(score, strat.LowerBound(nd))
		cfg.traceChild(score, nd.Score)
		eng.Offer(nd.Score, nd)
	}

	return eng.Finish()
}

func validate(g core.Graph, k int, cfg config) error {
	if g == nil {
		return errors.Wrap(search.ErrValidation, "spanning: nil graph")
	}
	if k <= 0 {
		return errors.Wrapf(search.ErrValidation, "spanning: k=%d must be positive", k)
	}
	if g.Order() < 2 {
		return errors.Wrapf(search.ErrValidation, "spanning: %d vertices, need at least 2", g.Order())
	}
	s := cfg.strategy
	if s.Objective == nil || s.LowerBound == nil || s.OrderEdges == nil || cfg.conn == nil {
		return errors.Wrapf(search.ErrValidation, "spanning: strategy %q is incomplete", s.Name)
	}
	if c := connectivity.Global(g, cfg.conn); c < k {
		return errors.Wrapf(search.ErrValidation, "spanning: graph connectivity %d is below k=%d", c, k)
	}

	return nil
}

// removeEdge builds the remove-branch child of nd for edge e.
func removeEdge(nd *Node, e core.Edge, strat Strategy) *Node {
	g := nd.Graph.Clone()
	_, _ = g.RemoveEdge(e.U, e.V)
	child := &Node{
		Graph:     g,
		Undecided: append([]core.Edge(nil), nd.Undecided...),
		K:         nd.K,
		Floor:     nd.Floor,
	}
	if strat.ResortAlways {
		strat.OrderEdges(g, child.Undecided)
	}
	child.fixIncident(e.U, e.V)

	return child
}

func clamp(parent, bound int64) int64 {
	if bound < parent {
		return parent
	}

	return bound
}

func (cfg config) traceChild(parent, child int64) {
	if cfg.trace != nil {
		cfg.trace(parent, child)
	}
}
