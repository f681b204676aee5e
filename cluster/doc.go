// Package cluster solves bounded cluster editing: turn a graph into a
// disjoint union of cliques, each with at most s vertices, with the fewest
// edge insertions and deletions.
//
// Solve runs a best-first branch-and-bound over decisions on vertex pairs
// ("present" or "absent" in the final graph). Each node keeps the working
// graph (the input with its decisions applied), the decision vector and a
// union-find of the components formed by pairs fixed present. Decisions
// propagate:
//
//   - merging two fixed components forces every pair inside the union
//     present; a pair already fixed absent there, or a union larger than s,
//     discards the branch;
//   - a fixed component of exactly s vertices is closed: every pair leaving
//     it is fixed absent and charged;
//   - in removals-only mode every originally absent pair starts fixed
//     absent, so a fixed component must already be a clique of the input
//     (in particular a fixed 3-vertex component must be a triangle).
//
// A node's score is the number of edits charged so far plus a greedy packing
// of pairwise-disjoint conflict triples (induced paths u–v–w) over undecided
// pairs: every such triple needs at least one more edit. Child scores are
// clamped to the parent score.
//
// The record starts as the better of the edgeless graph and Greedy's
// clustering and is refreshed whenever a node's working graph is already a
// valid clustering. Greedy runs under ctx and the budget's time limit; when
// either expires first the edgeless graph is the seed.
//
// Options:
//
//	WithHook(h)         - progress events.
//	WithBudget(b)       - step/time/frontier/memory limits.
//	WithLogger(l)       - logrus logger, silent by default.
//	WithRemovalsOnly()  - forbid insertions.
//	WithGreedySeed(on)  - seed the record with Greedy (default on).
package cluster
