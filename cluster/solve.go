package cluster

import (
	"context"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/lvlath-edit/core"
	"github.com/katalvlaran/lvlath-edit/search"
)

// Solve returns a clustering of g into cliques of at most maxSize vertices
// with the fewest edge edits. Result.Objective is the edit count, which
// equals core.EditDistance(g, Result.Graph).
//
// Validation (search.ErrValidation): nil or directed graph, maxSize < 1 or
// maxSize > g.Order(). The input graph is never modified.
//
// When the budget or ctx stops the search early the best clustering found so
// far is returned with ProvenOptimal=false and a nil error.
//
// Complexity: exponential in the number of vertex pairs in the worst case;
// each expansion costs O(n²) for the bound plus a clone.
func Solve(ctx context.Context, g core.Graph, maxSize int, opts ...Option) (*search.Result, error) {
	cfg := newConfig(opts...)
	if err := validate(g, maxSize); err != nil {
		return nil, err
	}
	in := newInstance(g, maxSize)

	eng := search.NewEngine[*node](cfg.Config)
	log := eng.Logger().WithFields(logrus.Fields{"s": maxSize, "removals_only": cfg.removalsOnly})
	eng.Start()

	seed, cost := edgeless(g), int64(g.EdgeCount())
	if cfg.greedySeed {
		gr, err := greedySeed(ctx, eng, g, maxSize)
		switch {
		case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
			log.WithError(err).Warn("cluster: greedy seed interrupted, starting from the edgeless graph")
		case err != nil:
			return nil, err
		default:
			if c := int64(core.EditDistance(g, gr)); c < cost {
				seed, cost = gr, c
			}
		}
	}
	eng.Seed(seed, cost)

	root, ok := in.root(cfg.removalsOnly)
	if ok {
		in.evaluate(root)
		root.score = root.bound
		log.WithFields(logrus.Fields{
			"pairs": len(root.dec),
			"open":  root.open,
			"seed":  cost,
			"score": root.score,
		}).Debug("cluster: root")
		in.offer(eng, root)
	}

	for {
		nd, score, ok := eng.Next(ctx)
		if !ok {
			break
		}
		if !nd.hasNext {
			continue
		}
		p := nd.next
		keep, flip := absent, present
		if in.origEdge[core.PairIndex(in.n, p)] {
			keep, flip = present, absent
		}

		child := nd.clone()
		if in.fix(child, p, flip) {
			in.evaluate(child)
			child.score = clamp(score, child.bound)
			cfg.traceChild(score, child.score)
			in.offer(eng, child)
		}

		if in.fix(nd, p, keep) {
			in.evaluate(nd)
			nd.score = clamp(score, nd.bound)
			cfg.traceChild(score, nd.score)
			in.offer(eng, nd)
		}
	}

	return eng.Finish()
}

// greedySeed runs Greedy under ctx, cut short by the engine's time limit.
func greedySeed(ctx context.Context, eng *search.Engine[*node], g core.Graph, maxSize int) (core.Graph, error) {
	if d, ok := eng.Deadline(); ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithDeadline(ctx, d)
		defer cancel()
	}

	return Greedy(ctx, g, maxSize)
}

// offer records nd's working graph when it is already a valid clustering and
// queues the node for expansion.
func (in *instance) offer(eng *search.Engine[*node], nd *node) {
	if nd.feasible {
		eng.Improve(nd.g.Clone(), nd.edits)
	}
	eng.Offer(nd.score, nd)
}

func validate(g core.Graph, maxSize int) error {
	if g == nil {
		return errors.Wrap(search.ErrValidation, "cluster: nil graph")
	}
	if g.Directed() {
		return errors.Wrap(search.ErrValidation, "cluster: directed graphs are not supported")
	}
	if maxSize < 1 || maxSize > g.Order() {
		return errors.Wrapf(search.ErrValidation, "cluster: s=%d outside [1,%d]", maxSize, g.Order())
	}

	return nil
}

// edgeless returns g with every edge removed, on the same backend.
func edgeless(g core.Graph) core.Graph {
	out := g.Clone()
	for _, e := range out.Edges() {
		_, _ = out.RemoveEdge(e.U, e.V)
	}

	return out
}

func clamp(parent, bound int64) int64 {
	if bound < parent {
		return parent
	}

	return bound
}
