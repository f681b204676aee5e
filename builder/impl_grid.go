// SPDX-License-Identifier: MIT
// Package: lvlath-edit/builder
//
// impl_grid.go - Grid(rows, cols) and Hypercube(d).
//
// Grid numbering is row-major: cell (r,c) is vertex r*cols+c. Hypercube
// vertices are the integers 0..2^d-1, adjacent when they differ in one bit.

package builder

import "github.com/katalvlaran/lvlath-edit/core"

const (
	methodGrid      = "Grid"
	methodHypercube = "Hypercube"
	minGridDim      = 1
	minCubeDim      = 1
	maxCubeDim      = 16
)

// Grid builds the rows×cols 4-neighbourhood lattice.
// Emission order: for each cell row-major, right neighbour then down neighbour.
func Grid(rows, cols int) Constructor {
	return func(g core.Graph, cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return wrapf(ErrTooFewVertices, methodGrid, "dimensions %dx%d must be ≥ %d", rows, cols, minGridDim)
		}
		if err := needOrder(g, methodGrid, rows*cols); err != nil {
			return err
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				v := r*cols + c
				if c+1 < cols {
					if err := link(g, cfg, methodGrid, v, v+1); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := link(g, cfg, methodGrid, v, v+cols); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}

// Hypercube builds Q_d, a d-regular and d-connected graph on 2^d vertices.
func Hypercube(d int) Constructor {
	return func(g core.Graph, cfg builderConfig) error {
		if d < minCubeDim || d > maxCubeDim {
			return wrapf(ErrTooFewVertices, methodHypercube, "d=%d outside [%d,%d]", d, minCubeDim, maxCubeDim)
		}
		n := 1 << d
		if err := needOrder(g, methodHypercube, n); err != nil {
			return err
		}
		for v := 0; v < n; v++ {
			for b := 0; b < d; b++ {
				u := v ^ (1 << b)
				if v < u {
					if err := link(g, cfg, methodHypercube, v, u); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
