// Package search is the best-first branch-and-bound scaffolding shared by the
// spanning and cluster solvers.
//
// An Engine owns the three pieces of state every run needs:
//
//   - a Frontier: nodes ordered by (score, sequence), backed by a red-black
//     tree so PopMin and PruneFrom are logarithmic per node;
//   - the record: the best feasible graph seen so far and its objective;
//   - a watchdog enforcing the caller's Budget and context.
//
// The solver drives the loop:
//
//	eng := search.NewEngine[*node](cfg)
//	eng.Start()
//	eng.Seed(g, objective(g))
//	eng.Offer(root.score, root)
//	for {
//	    nd, score, ok := eng.Next(ctx)
//	    if !ok {
//	        break
//	    }
//	    // branch, eng.Improve(...), eng.Offer(...)
//	}
//	return eng.Finish()
//
// Next stops as soon as the lowest frontier score reaches the record: in
// ascending best-first order that proves the record optimal. A stop caused by
// the Budget or a cancelled context instead returns the record with
// ProvenOptimal=false; it is a normal Result, never an error.
//
// Events are delivered synchronously through a Hook: SearchStarted once,
// NodeExpanded per pop, RecordImproved per strict improvement after the seed,
// SearchEnded once.
//
// Errors:
//
//	ErrValidation - input rejected before the search starts.
//	ErrInvariant  - the search ended without any feasible record.
package search
