// Package spanning finds a minimum-cost spanning subgraph whose vertex- or
// edge-connectivity is at least k.
//
// Every candidate is obtained from the input graph by deleting edges, and
// every graph the search ever holds is k-connected: an edge u–v is deleted
// only when the local connectivity between u and v exceeds k, which is
// exactly the condition under which the deletion keeps the whole graph
// k-connected. The search is best-first over nodes that carry a graph, the
// ordered list of still undecided edges and an admissible score.
//
// Expansion of a node takes its first undecided edge e and produces:
//
//   - remove: a cloned graph without e (only when conn(u,v) > k). Edges
//     incident to a vertex whose degree dropped to k or below can no longer
//     be removed and leave the undecided list.
//   - keep: the same node with e fixed, re-scored in place.
//
// A child's score is max(parent score, strategy lower bound), so scores never
// decrease along a root-to-leaf path and pruning against the record is sound.
//
// Strategies bundle the objective, the lower bound and the edge ordering:
//
//	Unweighted        - minimise the edge count.
//	Weighted          - minimise the weight sum.
//	NegativeWeighted  - as Weighted, but non-positive edges are never removed.
//
// Options:
//
//	WithStrategy(s)       - default Unweighted().
//	WithConnectivity(fn)  - default connectivity.LocalEdge.
//	WithHook(h)           - progress events.
//	WithBudget(b)         - step/time/frontier/memory limits.
//	WithLogger(l)         - logrus logger, silent by default.
package spanning
