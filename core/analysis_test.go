package core_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlath-edit/core"
)

// sevenVertexGraph: components {0,2,3,5}, {1,4}, {6}.
func sevenVertexGraph(t *testing.T) core.Graph {
	t.Helper()
	g, err := core.FromEdges(7, []core.Edge{
		{U: 1, V: 4, W: 1},
		{U: 0, V: 2, W: 1},
		{U: 2, V: 5, W: 1},
		{U: 2, V: 3, W: 1},
		{U: 3, V: 5, W: 1},
	})
	require.NoError(t, err)

	return g
}

func TestComponents(t *testing.T) {
	labels, count := core.Components(sevenVertexGraph(t))
	require.Equal(t, 3, count)
	if diff := cmp.Diff([]int{0, 1, 0, 0, 1, 0, 2}, labels); diff != "" {
		t.Fatalf("labels mismatch (-want +got):\n%s", diff)
	}
}

func TestIsClusterGraph(t *testing.T) {
	g := sevenVertexGraph(t)
	assert.False(t, core.IsClusterGraph(g, 0))

	require.NoError(t, g.AddEdge(0, 5, 1))
	require.NoError(t, g.AddEdge(0, 3, 1))
	assert.True(t, core.IsClusterGraph(g, 0))
	assert.True(t, core.IsClusterGraph(g, 4))
	assert.False(t, core.IsClusterGraph(g, 3), "K4 component exceeds the limit")

	empty, err := core.New(10, core.WithBackend(core.Sparse))
	require.NoError(t, err)
	assert.True(t, core.IsClusterGraph(empty, 1))
}

func TestEditDistance(t *testing.T) {
	a := sevenVertexGraph(t)
	b := a.Clone()
	require.Zero(t, core.EditDistance(a, b))
	_, _ = b.RemoveEdge(1, 4)
	require.NoError(t, b.AddEdge(0, 6, 9))
	require.Equal(t, 2, core.EditDistance(a, b))
	require.Equal(t, 2, core.EditDistance(b, a))
}

func TestPairIndex(t *testing.T) {
	for n := 2; n <= 7; n++ {
		for i, p := range core.Pairs(n) {
			require.Equal(t, i, core.PairIndex(n, p), "n=%d pair=%v", n, p)
		}
	}
	require.Equal(t, core.Pair{U: 1, V: 3}, core.MakePair(3, 1))
}
