// SPDX-License-Identifier: MIT
//
// File: errors.go
// Role: Sentinel errors of the storage package.

package storage

import "github.com/pkg/errors"

var (
	// ErrSyntax indicates text that does not follow the set-file grammar.
	ErrSyntax = errors.New("storage: syntax error")

	// ErrShape indicates a non-square matrix, a self-loop on the diagonal
	// or a header order that disagrees with the rows.
	ErrShape = errors.New("storage: malformed adjacency matrix")

	// ErrDuplicate indicates two blocks sharing a name.
	ErrDuplicate = errors.New("storage: duplicate graph name")

	// ErrNotFound indicates a lookup of a name the set does not hold.
	ErrNotFound = errors.New("storage: graph not found")

	// ErrName indicates a name that is empty or contains whitespace or ':'.
	ErrName = errors.New("storage: invalid graph name")
)

// SyntaxError keeps the parser error, and with it the position of the
// offending token, while matching ErrSyntax under errors.Is.
type SyntaxError struct {
	Err error
}

func (e *SyntaxError) Error() string { return ErrSyntax.Error() + ": " + e.Err.Error() }

// Unwrap exposes the parser error, a participle.Error.
func (e *SyntaxError) Unwrap() error { return e.Err }

// Is reports ErrSyntax.
func (e *SyntaxError) Is(target error) bool { return target == ErrSyntax }
