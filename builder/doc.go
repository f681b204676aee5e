// Package builder assembles deterministic graph fixtures on core.Graph:
// classic topologies for tests and examples, and seeded random instances for
// the solvers and the CLI generator.
//
// The package offers:
//
//   - Orchestration:
//     – Constructor:   a function that adds edges to a graph of fixed order.
//     – BuildGraph:    creates the graph and applies constructors in order.
//   - Configuration primitives:
//     – BuilderOption: mutates builderConfig before use.
//     – builderConfig: RNG, weight function, connectivity oracle, retry limit.
//   - Deterministic topologies:
//     – Complete, Cycle, Path, Star, Wheel, CompleteBipartite, Grid, Hypercube.
//   - Random topologies (need WithSeed or WithRand):
//     – RandomSparse:    Erdős–Rényi G(n,p).
//     – RandomConnected: exactly m edges and connectivity ≥ k, optionally
//       seeded with a Hamiltonian cycle.
//   - Edge-weight distributions (WeightFn):
//     – ConstantWeightFn, UniformWeightFn.
//
// Vertex numbering is fixed per constructor and documented on it; a
// constructor fails with ErrTooFewVertices when the target graph is smaller
// than the topology it builds.
//
// Guarantees:
//
//   - Same inputs, options, seed and constructor order give identical graphs.
//   - Invalid option values panic in the option constructor; invalid build
//     parameters return sentinel errors wrapped with the constructor name.
package builder
