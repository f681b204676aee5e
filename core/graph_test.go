// SPDX-License-Identifier: MIT
// Package core_test verifies the Graph contract on both backends.

package core_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/lvlath-edit/core"
)

// GraphSuite runs the same contract checks against one backend.
type GraphSuite struct {
	suite.Suite
	backend core.Backend
}

func (s *GraphSuite) newGraph(n int, directed bool) core.Graph {
	g, err := core.New(n, core.WithBackend(s.backend), core.WithDirected(directed))
	require.NoError(s.T(), err)

	return g
}

func (s *GraphSuite) TestAddEdgeUpsertsWeight() {
	g := s.newGraph(3, false)
	require.NoError(s.T(), g.AddEdge(0, 1, 4))
	require.NoError(s.T(), g.AddEdge(1, 2, 2))
	require.Equal(s.T(), 2, g.EdgeCount())
	require.Equal(s.T(), int64(6), g.TotalWeight())

	// overwrite keeps the count, adjusts the cached sum
	require.NoError(s.T(), g.AddEdge(1, 0, 10))
	require.Equal(s.T(), 2, g.EdgeCount())
	require.Equal(s.T(), int64(12), g.TotalWeight())
	w, ok := g.Weight(0, 1)
	require.True(s.T(), ok)
	require.Equal(s.T(), int64(10), w)
}

func (s *GraphSuite) TestRemoveEdgeIsSafeNoOp() {
	g := s.newGraph(3, false)
	require.NoError(s.T(), g.AddEdge(0, 2, 3))

	removed, err := g.RemoveEdge(2, 0)
	require.NoError(s.T(), err)
	require.True(s.T(), removed)
	require.False(s.T(), g.HasEdge(0, 2))
	require.Zero(s.T(), g.EdgeCount())
	require.Zero(s.T(), g.TotalWeight())

	removed, err = g.RemoveEdge(0, 2)
	require.NoError(s.T(), err)
	require.False(s.T(), removed)
}

func (s *GraphSuite) TestInvalidVertex() {
	g := s.newGraph(3, false)
	require.ErrorIs(s.T(), g.AddEdge(0, 3, 1), core.ErrInvalidVertex)
	require.ErrorIs(s.T(), g.AddEdge(-1, 0, 1), core.ErrInvalidVertex)
	_, err := g.RemoveEdge(7, 0)
	require.ErrorIs(s.T(), err, core.ErrInvalidVertex)
	require.ErrorIs(s.T(), g.AddEdge(1, 1, 1), core.ErrSelfLoop)

	// queries treat unknown vertices as isolated
	require.False(s.T(), g.HasEdge(0, 9))
	require.Nil(s.T(), g.Neighbors(9))
	require.Zero(s.T(), g.Degree(9, core.Both))
}

func (s *GraphSuite) TestNeighborsAndDegree() {
	g := s.newGraph(5, false)
	for _, e := range [][2]int{{2, 4}, {2, 0}, {2, 3}, {0, 1}} {
		require.NoError(s.T(), g.AddEdge(e[0], e[1], 1))
	}
	require.Equal(s.T(), []int{0, 3, 4}, g.Neighbors(2))
	require.Equal(s.T(), 3, g.Degree(2, core.Both))
	require.Equal(s.T(), 2, g.Degree(0, core.In))
}

func (s *GraphSuite) TestDirectedDegrees() {
	g := s.newGraph(3, true)
	require.NoError(s.T(), g.AddEdge(0, 1, 1))
	require.NoError(s.T(), g.AddEdge(2, 1, 1))
	require.NoError(s.T(), g.AddEdge(1, 0, 1))
	require.True(s.T(), g.HasEdge(2, 1))
	require.False(s.T(), g.HasEdge(1, 2))
	require.Equal(s.T(), 1, g.Degree(1, core.Out))
	require.Equal(s.T(), 2, g.Degree(1, core.In))
	require.Equal(s.T(), 3, g.Degree(1, core.Both))
	require.Equal(s.T(), 3, g.EdgeCount())
}

func (s *GraphSuite) TestEdgesDeterministic() {
	g := s.newGraph(4, false)
	require.NoError(s.T(), g.AddEdge(3, 1, 2))
	require.NoError(s.T(), g.AddEdge(2, 0, 5))
	require.NoError(s.T(), g.AddEdge(0, 1, 1))
	want := []core.Edge{{U: 0, V: 1, W: 1}, {U: 0, V: 2, W: 5}, {U: 1, V: 3, W: 2}}
	if diff := cmp.Diff(want, g.Edges()); diff != "" {
		s.T().Fatalf("Edges() mismatch (-want +got):\n%s", diff)
	}
}

func (s *GraphSuite) TestCloneIsIndependent() {
	g := s.newGraph(3, false)
	require.NoError(s.T(), g.AddEdge(0, 1, 1))
	c := g.Clone()
	require.NoError(s.T(), c.AddEdge(1, 2, 7))
	_, err := c.RemoveEdge(0, 1)
	require.NoError(s.T(), err)

	require.True(s.T(), g.HasEdge(0, 1))
	require.False(s.T(), g.HasEdge(1, 2))
	require.Equal(s.T(), 1, g.EdgeCount())
	require.Equal(s.T(), 1, c.EdgeCount())
	require.Equal(s.T(), int64(7), c.TotalWeight())
}

func (s *GraphSuite) TestSetDirectedKeepsLargerWeight() {
	g := s.newGraph(3, true)
	require.NoError(s.T(), g.AddEdge(0, 1, 2))
	require.NoError(s.T(), g.AddEdge(1, 0, 9))
	require.NoError(s.T(), g.AddEdge(2, 1, 4))

	g.SetDirected(false)
	require.False(s.T(), g.Directed())
	require.Equal(s.T(), 2, g.EdgeCount())
	require.Equal(s.T(), int64(13), g.TotalWeight())
	w, _ := g.Weight(1, 0)
	require.Equal(s.T(), int64(9), w)
	w, _ = g.Weight(1, 2)
	require.Equal(s.T(), int64(4), w)

	g.SetDirected(true)
	require.Equal(s.T(), 4, g.EdgeCount())
	require.True(s.T(), g.HasEdge(0, 1) && g.HasEdge(1, 0))
	require.Equal(s.T(), 2, g.Degree(1, core.In))
}

func TestGraphSuite(t *testing.T) {
	suite.Run(t, &GraphSuite{backend: core.Dense})
	suite.Run(t, &GraphSuite{backend: core.Sparse})
}

func TestFromMatrix(t *testing.T) {
	rows := [][]*int64{
		{nil, core.W(1), nil},
		{core.W(1), nil, core.W(3)},
		{nil, core.W(3), nil},
	}
	g, err := core.FromMatrix(rows)
	require.NoError(t, err)
	require.False(t, g.Directed())
	require.Equal(t, 2, g.EdgeCount())
	require.Equal(t, int64(4), g.TotalWeight())
	if diff := cmp.Diff(rows, core.ToMatrix(g)); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}

	rows[0][2] = core.W(5) // asymmetric → directed
	g, err = core.FromMatrix(rows, core.WithBackend(core.Sparse))
	require.NoError(t, err)
	require.True(t, g.Directed())
	require.Equal(t, 5, g.EdgeCount())

	g, err = core.FromMatrix(rows, core.WithDirected(false))
	require.NoError(t, err)
	require.Equal(t, 3, g.EdgeCount())
}

func TestFromMatrixShape(t *testing.T) {
	_, err := core.FromMatrix(nil)
	require.ErrorIs(t, err, core.ErrInvalidShape)

	_, err = core.FromMatrix([][]*int64{{nil, nil}, {nil}})
	require.ErrorIs(t, err, core.ErrInvalidShape)

	_, err = core.FromMatrix([][]*int64{{core.W(1)}})
	require.ErrorIs(t, err, core.ErrSelfLoop)

	_, err = core.New(0)
	require.ErrorIs(t, err, core.ErrInvalidShape)
}

func TestFromEdgesAndConvert(t *testing.T) {
	g, err := core.FromEdges(4, []core.Edge{{U: 0, V: 1, W: 2}, {U: 1, V: 2, W: 3}})
	require.NoError(t, err)
	sp := core.Convert(g, core.Sparse)
	require.Equal(t, g.Edges(), sp.Edges())
	require.IsType(t, &core.EdgeSet{}, sp)

	_, err = core.FromEdges(2, []core.Edge{{U: 0, V: 5}})
	require.ErrorIs(t, err, core.ErrInvalidVertex)
}
