// SPDX-License-Identifier: MIT
//
// File: errors.go
// Role: Sentinel errors of the core package.
// Policy:
//   - Callers branch with errors.Is; context is attached with errors.Wrapf at
//     the call site, never baked into the sentinel text.

package core

import "github.com/pkg/errors"

var (
	// ErrInvalidVertex indicates a vertex index outside 0..n-1.
	ErrInvalidVertex = errors.New("core: vertex index out of range")

	// ErrInvalidShape indicates an empty or non-square adjacency matrix,
	// or a non-positive vertex count.
	ErrInvalidShape = errors.New("core: adjacency matrix must be square and non-empty")

	// ErrSelfLoop indicates an attempt to store an edge v→v. Graphs are simple.
	ErrSelfLoop = errors.New("core: self-loops are not allowed")
)

// vertexError wraps ErrInvalidVertex with the offending index and order.
func vertexError(v, n int) error {
	return errors.Wrapf(ErrInvalidVertex, "vertex %d (order %d)", v, n)
}
