// SPDX-License-Identifier: MIT
// Package: lvlath-edit/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract:
//   - One orchestrator: BuildGraph(n, gopts, bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig (no global state).
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical graphs.
//   - Safety: never panic at build time; return sentinel errors from constructors.

package builder

import (
	"github.com/pkg/errors"

	"github.com/katalvlaran/lvlath-edit/core"
)

// Constructor adds a topology to g using the resolved builderConfig.
// Constructors MUST:
//   - Validate parameters early and return sentinel errors (no panics).
//   - Emit edges in a stable, documented order.
//   - Mirror every edge as two arcs when g is directed.
type Constructor func(g core.Graph, cfg builderConfig) error

// BuildGraph creates a graph on n vertices with graph options gopts, resolves
// the builder configuration from bopts and applies all constructors in order.
// The first constructor error is wrapped with "BuildGraph" and returned.
//
// Complexity: O(len(bopts)) + Σ cost of each constructor.
func BuildGraph(n int, gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (core.Graph, error) {
	g, err := core.New(n, gopts...)
	if err != nil {
		return nil, errors.Wrap(err, "BuildGraph")
	}
	cfg := newBuilderConfig(bopts...)
	for i, fn := range cons {
		if fn == nil {
			return nil, errors.Wrapf(ErrConstructFailed, "BuildGraph: nil constructor at index %d", i)
		}
		if err = fn(g, cfg); err != nil {
			return nil, errors.Wrap(err, "BuildGraph")
		}
	}

	return g, nil
}

// Build is BuildGraph for a single constructor on an undirected dense graph
// sized by the topology itself.
func Build(size int, c Constructor, bopts ...BuilderOption) (core.Graph, error) {
	return BuildGraph(size, nil, bopts, c)
}

// needOrder fails when g has fewer than size vertices.
func needOrder(g core.Graph, method string, size int) error {
	if g.Order() < size {
		return wrapf(ErrTooFewVertices, method, "graph has %d vertices, topology needs %d", g.Order(), size)
	}

	return nil
}

// link emits u–v with a weight from cfg, as two arcs on directed graphs.
func link(g core.Graph, cfg builderConfig, method string, u, v int) error {
	w := cfg.weightFn(cfg.rng)
	if err := g.AddEdge(u, v, w); err != nil {
		return wrapf(err, method, "AddEdge(%d→%d, w=%d)", u, v, w)
	}
	if g.Directed() {
		if err := g.AddEdge(v, u, w); err != nil {
			return wrapf(err, method, "AddEdge(%d→%d, w=%d)", v, u, w)
		}
	}

	return nil
}
