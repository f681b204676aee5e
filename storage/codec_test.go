package storage_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/alecthomas/participle/v2"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlath-edit/builder"
	"github.com/katalvlaran/lvlath-edit/core"
	"github.com/katalvlaran/lvlath-edit/storage"
)

const twoGraphs = `
# comment line
:triangle: 3
- 1 1
1 - 1
1 1 -

:arc:
- -5
- -
`

func TestParse(t *testing.T) {
	got, err := storage.Parse(strings.NewReader(twoGraphs))
	require.NoError(t, err)
	require.Len(t, got, 2)

	require.Equal(t, "triangle", got[0].Name)
	tri := got[0].Graph
	require.False(t, tri.Directed())
	require.Equal(t, 3, tri.EdgeCount())

	require.Equal(t, "arc", got[1].Name)
	arc := got[1].Graph
	require.True(t, arc.Directed(), "asymmetric matrix")
	w, ok := arc.Weight(0, 1)
	require.True(t, ok)
	require.Equal(t, int64(-5), w)
	require.False(t, arc.HasEdge(1, 0))
}

func TestParseZeroWeightIsAnEdge(t *testing.T) {
	got, err := storage.Parse(strings.NewReader(":z:\n- 0\n0 -"))
	require.NoError(t, err)
	require.True(t, got[0].Graph.HasEdge(0, 1))
}

func TestParseSparseBackend(t *testing.T) {
	got, err := storage.Parse(strings.NewReader(twoGraphs), core.WithBackend(core.Sparse))
	require.NoError(t, err)
	require.IsType(t, &core.EdgeSet{}, got[0].Graph)
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		name string
		text string
		want error
	}{
		{"garbage", ":g:\n- x\n", storage.ErrSyntax},
		{"no header", "- 1\n1 -\n", storage.ErrSyntax},
		{"ragged", ":g:\n- 1\n1\n", storage.ErrShape},
		{"order mismatch", ":g: 3\n- 1\n1 -\n", storage.ErrShape},
		{"self loop", ":g:\n1 1\n1 -\n", storage.ErrShape},
		{"empty block", ":g:\n:h:\n-\n", storage.ErrShape},
		{"duplicate", ":g:\n-\n:g:\n-\n", storage.ErrDuplicate},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := storage.Parse(strings.NewReader(tc.text))
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestFormatParse(t *testing.T) {
	g, err := builder.Build(6, builder.Wheel(6), builder.WithSeed(2),
		builder.WithWeightFn(builder.UniformWeightFn(-3, 9)))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, storage.Format(&buf, "wheel", g))
	require.True(t, strings.HasPrefix(buf.String(), ":wheel: 6\n"))

	got, err := storage.Parse(&buf)
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Empty(t, cmp.Diff(core.ToMatrix(g), core.ToMatrix(got[0].Graph)))
}

// TestSymmetricDigraphKeepsOrientation: both arcs of every pair survive the
// round trip instead of folding into undirected edges.
func TestSymmetricDigraphKeepsOrientation(t *testing.T) {
	g, err := builder.BuildGraph(3, []core.GraphOption{core.WithDirected(true)}, nil, builder.Complete(3))
	require.NoError(t, err)
	require.Equal(t, 6, g.EdgeCount())

	var buf bytes.Buffer
	require.NoError(t, storage.Format(&buf, "k3", g))
	require.True(t, strings.HasPrefix(buf.String(), ":k3: 3 directed\n"))

	got, err := storage.Parse(&buf)
	require.NoError(t, err)
	require.True(t, got[0].Graph.Directed())
	require.Equal(t, 6, got[0].Graph.EdgeCount())
	require.Empty(t, cmp.Diff(core.ToMatrix(g), core.ToMatrix(got[0].Graph)))
}

func TestParseOrientationMarker(t *testing.T) {
	got, err := storage.Parse(strings.NewReader(":u: 2 undirected\n- 4\n- -\n:d: directed\n- 1\n1 -\n"))
	require.NoError(t, err)
	require.False(t, got[0].Graph.Directed(), "marker overrides the asymmetric matrix")
	require.True(t, got[0].Graph.HasEdge(1, 0))
	require.True(t, got[1].Graph.Directed())
	require.Equal(t, 2, got[1].Graph.EdgeCount())

	got, err = storage.Parse(strings.NewReader(":d: directed\n- 1\n1 -\n"), core.WithDirected(false))
	require.NoError(t, err)
	require.False(t, got[0].Graph.Directed(), "caller options win over the marker")
}

// TestSyntaxErrorKeepsPosition: the parser error stays reachable, with the
// line of the offending token.
func TestSyntaxErrorKeepsPosition(t *testing.T) {
	_, err := storage.Parse(strings.NewReader(":g: 2\n- 1\n1 x\n"))
	require.ErrorIs(t, err, storage.ErrSyntax)
	var se *storage.SyntaxError
	require.ErrorAs(t, err, &se)
	var perr participle.Error
	require.ErrorAs(t, err, &perr)
	require.Equal(t, 3, perr.Position().Line)
	require.Contains(t, err.Error(), "x")
}

func TestShapeErrorKeepsCause(t *testing.T) {
	_, err := storage.Parse(strings.NewReader(":g:\n1 1\n1 -\n"))
	require.ErrorIs(t, err, storage.ErrShape)
	require.Contains(t, err.Error(), "self-loop")
}

func TestFormatRejectsBadName(t *testing.T) {
	g, err := core.New(2)
	require.NoError(t, err)
	for _, name := range []string{"", "a b", "x:y"} {
		require.ErrorIs(t, storage.Format(&bytes.Buffer{}, name, g), storage.ErrName)
	}
}
