// SPDX-License-Identifier: MIT
// Package: lvlath-edit/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Context is attached at the call site with errors.Wrapf.

package builder

import "github.com/pkg/errors"

// ErrTooFewVertices indicates a size parameter below the constructor minimum,
// or a target graph with fewer vertices than the topology needs.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor without an RNG
// (set WithSeed or WithRand).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrUnsupportedGraphMode indicates the constructor cannot honor the graph's
// orientation.
var ErrUnsupportedGraphMode = errors.New("builder: unsupported graph mode")

// ErrConstructFailed indicates the builder ran out of attempts, or a nil
// constructor was passed to BuildGraph.
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrTooManyEdges indicates an edge count above n(n-1)/2, or below the
// minimum a k-connected graph needs.
var ErrTooManyEdges = errors.New("builder: edge count out of range")

// wrapf attaches the constructor name to a sentinel.
func wrapf(err error, method, format string, args ...interface{}) error {
	return errors.Wrapf(err, method+": "+format, args...)
}
