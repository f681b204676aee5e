// Package storage persists named graphs as plain-text adjacency matrices.
//
// A set file holds any number of blocks. Each block opens with a header
// line carrying the graph name between colons and, optionally, the order
// and an orientation marker ("directed" or "undirected"); n rows of n cells follow. A cell is an integer weight or "-" for no edge.
// Lines starting with "#" are comments.
//
//	# two graphs
//	:triangle: 3
//	- 1 1
//	1 - 1
//	1 1 -
//
//	:arc: 2
//	- 5
//	- -
//
//	:loop: 2 directed
//	- 1
//	1 -
//
// Without a marker, a block whose matrix is asymmetric loads as a directed
// graph and a symmetric one as undirected. Format marks every directed graph. Zero and
// negative weights are kept as edges; only "-" means absent.
//
// Parse and Format handle a whole stream; Set keeps the named graphs of one
// file in memory and writes them back on Save.
//
// Errors:
//
//	ErrSyntax    - the text does not follow the grammar (*SyntaxError).
//	ErrShape     - wrong row length or header order mismatch.
//	ErrDuplicate - two blocks with the same name.
//	ErrNotFound  - Set.Get of an unknown name.
//	ErrName      - a name that cannot be written back.
package storage
