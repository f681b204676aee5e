// Package connectivity answers local and global k-connectivity questions on
// core.Graph values by reduction to maximum flow.
//
// Local edge connectivity λ(u,v) is the number of edge-disjoint u→v paths:
// every edge becomes a unit arc (two opposite arcs when undirected) and the
// answer is the max-flow value.
//
// Local vertex connectivity κ(u,v) is the number of internally
// vertex-disjoint u→v paths: every vertex i other than the terminals is split
// into an in-copy i and an out-copy n+i joined by a unit arc, so each vertex
// carries at most one path. A direct u–v edge counts as one path.
//
// Global connectivity is the minimum local value over all vertex pairs
// (ordered pairs on directed graphs) and stops at the first zero.
//
//	k := connectivity.Vertex(g)
//	ok := connectivity.Global(g, connectivity.LocalEdge) >= 2
//
// Solvers take a Func, so the oracle is swappable: LocalEdge and LocalVertex
// run Edmonds–Karp, EdgeFunc/VertexFunc bind any flow.MaxFlow routine such as
// flow.Dinic.
package connectivity
