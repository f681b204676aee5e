// Package lvlath is the root of lvlath-edit: exact graph-editing solvers on
// small graphs, built on one best-first branch-and-bound engine.
//
// 🚀 What is lvlath-edit?
//
//	A toolkit for two NP-hard edit problems:
//		• Minimum k-connected spanning subgraph: drop the most expensive set
//		  of edges while keeping vertex- or edge-connectivity ≥ k
//		• Bounded cluster editing: insert and delete the fewest edges so the
//		  graph becomes disjoint cliques of at most s vertices
//
// ✨ Guarantees
//
//   - Exact: a completed search proves its record optimal
//   - Anytime: a step, time, frontier or memory budget returns the best
//     feasible graph found so far, flagged as unproven
//   - Deterministic: the same graph and options give the same result
//   - Quiet by default: solvers log through an injected logrus logger
//
// Packages:
//
//	core/         - Graph interface, dense and sparse backends, cluster checks
//	flow/         - Edmonds–Karp and Dinic max-flow on integer networks
//	connectivity/ - local and global vertex/edge connectivity via max-flow
//	search/       - frontier, budget watchdog, progress events, Result
//	spanning/     - k-connected spanning subgraph solver and strategies
//	cluster/      - cluster editing solver and greedy approximation
//	builder/      - deterministic and seeded random graph constructors
//	storage/      - text set files of named adjacency matrices
//	cmd/lvlath-edit - command line front end
//
// Quick example:
//
//	g, _ := builder.Build(4, builder.Complete(4))
//	res, _ := spanning.Solve(ctx, g, 2)   // a 4-cycle, objective 4
//	res, _ = cluster.Solve(ctx, g, 3)     // triangle + isolated vertex, 3 edits
package lvlath
