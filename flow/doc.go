// Package flow implements maximum-flow algorithms on small dense integer
// networks. It is the engine behind the connectivity oracle: every local
// connectivity query builds a unit-capacity Network and asks for the maximum
// number of disjoint s→t paths.
//
// The key algorithms offered are:
//
//   - Edmonds–Karp
//
//   - Method: breadth-first search for shortest (fewest-arc) augmenting paths.
//
//   - Time:   O(V · E²).
//
//   - Memory: O(V²) for the dense residual buffer.
//
//   - Dinic
//
//   - Method: level graph + blocking flow with an explicit DFS stack.
//
//   - Time:   O(V² · E), O(E · √V) on unit-capacity networks.
//
//   - Memory: O(V²).
//
// # Network
//
// Network stores residual capacities in a flat N×N buffer; AddArc
// accumulates parallel arcs. Both algorithms leave the input untouched and
// return the residual network in Result.Residual.
//
//	nw := flow.NewNetwork(4)
//	_ = nw.AddArc(0, 1, 3)
//	res, err := flow.EdmondsKarp(nw, 0, 3, nil)
//
// # Options
//
//	type Options struct {
//	    Logger    logrus.FieldLogger // debug entry per augmentation
//	    KeepPaths bool               // record augmenting paths in Result.Paths
//	}
//
// # Errors
//
//	ErrTerminalRange    - source or sink outside the network.
//	ErrSameTerminal     - source equals sink.
//	ErrInvalidNode      - AddArc endpoint outside the network.
//	ErrNegativeCapacity - AddArc with c < 0.
package flow
