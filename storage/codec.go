// SPDX-License-Identifier: MIT
//
// File: codec.go
// Role: Parse and Format of set files.
// Determinism:
//   - Format writes rows in vertex order; Parse keeps block order.

package storage

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/katalvlaran/lvlath-edit/core"
)

// Named is one graph of a set file.
type Named struct {
	Name  string
	Graph core.Graph
}

// Parse reads every block of a set file. Graphs are built with opts
// (for instance core.WithBackend(core.Sparse)). Orientation comes from opts
// when they fix it, else from the block's "directed"/"undirected" marker,
// else from the matrix symmetry.
//
// Grammar violations are reported as *SyntaxError, which matches ErrSyntax.
func Parse(r io.Reader, opts ...core.GraphOption) ([]Named, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "storage: read")
	}
	// rows are newline-terminated in the grammar
	data = append(data, '\n')
	ast, err := setParser.ParseBytes("", data)
	if err != nil {
		return nil, errors.WithStack(&SyntaxError{Err: err})
	}

	out := make([]Named, 0, len(ast.Blocks))
	seen := make(map[string]bool, len(ast.Blocks))
	for _, b := range ast.Blocks {
		name := strings.Trim(b.Name, ":")
		if seen[name] {
			return nil, errors.Wrapf(ErrDuplicate, "%q", name)
		}
		seen[name] = true
		g, err := b.graph(opts)
		if err != nil {
			return nil, errors.Wrapf(err, "graph %q", name)
		}
		out = append(out, Named{Name: name, Graph: g})
	}

	return out, nil
}

func (b *block) graph(opts []core.GraphOption) (core.Graph, error) {
	n := len(b.Rows)
	if b.Order != nil && *b.Order != n {
		return nil, errors.Wrapf(ErrShape, "header order %d, %d rows", *b.Order, n)
	}
	rows := make([][]*int64, n)
	for i, r := range b.Rows {
		if len(r.Cells) != n {
			return nil, errors.Wrapf(ErrShape, "row %d has %d cells, want %d", i, len(r.Cells), n)
		}
		rows[i] = make([]*int64, n)
		for j, c := range r.Cells {
			rows[i][j] = c.Weight
		}
	}
	switch b.Orientation {
	case "directed":
		opts = append([]core.GraphOption{core.WithDirected(true)}, opts...)
	case "undirected":
		opts = append([]core.GraphOption{core.WithDirected(false)}, opts...)
	}
	g, err := core.FromMatrix(rows, opts...)
	if err != nil {
		return nil, errors.Wrapf(ErrShape, "%v", err)
	}

	return g, nil
}

// Format writes g as one block named name. Directed graphs carry the
// "directed" marker so that a symmetric digraph reads back as directed.
func Format(w io.Writer, name string, g core.Graph) error {
	if err := checkName(name); err != nil {
		return err
	}
	bw := bufio.NewWriter(w)
	n := g.Order()
	if g.Directed() {
		fmt.Fprintf(bw, ":%s: %d directed\n", name, n)
	} else {
		fmt.Fprintf(bw, ":%s: %d\n", name, n)
	}
	m := core.ToMatrix(g)
	for u := 0; u < n; u++ {
		for v := 0; v < n; v++ {
			if v > 0 {
				_ = bw.WriteByte(' ')
			}
			if m[u][v] == nil {
				_ = bw.WriteByte('-')

				continue
			}
			_, _ = bw.WriteString(strconv.FormatInt(*m[u][v], 10))
		}
		_ = bw.WriteByte('\n')
	}

	return errors.Wrap(bw.Flush(), "storage: write")
}

func checkName(name string) error {
	if name == "" || strings.ContainsAny(name, ": \t\r\n") {
		return errors.Wrapf(ErrName, "%q", name)
	}

	return nil
}
