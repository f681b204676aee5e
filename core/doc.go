// Package core provides the simple-graph model shared by every solver of
// lvlath-edit: vertices are dense indices 0..n-1, edges carry int64 weights,
// self-loops are rejected.
//
// One capability interface, two independent backends:
//
//   - Matrix  (WithBackend(Dense))  - n×n weight matrix, O(1) adjacency, O(n²) clone.
//   - EdgeSet (WithBackend(Sparse)) - per-vertex adjacency maps, O(n+m) clone.
//
// Both keep EdgeCount and TotalWeight cached and update them on every
// mutation, never by rescanning.
//
// Construction:
//
//	g, err := core.New(4)                                   // empty, undirected, dense
//	g, err := core.FromMatrix(rows, core.WithBackend(core.Sparse))
//	g, err := core.FromEdges(4, []core.Edge{{U: 0, V: 1, W: 1}})
//
// FromMatrix rejects an empty or non-square matrix with ErrInvalidShape and
// infers orientation from symmetry unless WithDirected is supplied.
//
// Orientation merge policy: SetDirected(false) on a directed graph folds
// u→v and v→u into a single edge carrying the larger of the two weights, so
// repeated runs over the same input always produce the same undirected graph.
//
// Errors:
//
//	ErrInvalidVertex – index outside 0..n-1 passed to a mutator
//	ErrInvalidShape  – empty or non-square matrix, non-positive order
//	ErrSelfLoop      – u == v passed to a mutator, or a non-nil diagonal cell
//
// Concurrency: a Graph is owned by one goroutine. Solvers clone before they
// branch, so sibling search nodes never observe each other's writes.
package core
