package cluster_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/lvlath-edit/builder"
	"github.com/katalvlaran/lvlath-edit/cluster"
	"github.com/katalvlaran/lvlath-edit/core"
	"github.com/katalvlaran/lvlath-edit/search"
)

// SolveSuite covers the solver contract on fixed instances.
type SolveSuite struct {
	suite.Suite
	ctx context.Context
}

func (s *SolveSuite) SetupTest() { s.ctx = context.Background() }

func (s *SolveSuite) edges(n int, pairs ...[2]int) core.Graph {
	es := make([]core.Edge, 0, len(pairs))
	for _, p := range pairs {
		es = append(es, core.Edge{U: p[0], V: p[1], W: 1})
	}
	g, err := core.FromEdges(n, es)
	s.Require().NoError(err)

	return g
}

func (s *SolveSuite) requireClustering(g core.Graph, res *search.Result, maxSize int) {
	s.T().Helper()
	s.True(core.IsClusterGraph(res.Graph, maxSize), "not a clustering")
	s.Equal(int64(core.EditDistance(g, res.Graph)), res.Objective)
}

// TestCompleteFourCapThree: K4 with clusters of at most 3 vertices keeps a
// triangle and isolates the fourth vertex, three deletions.
func (s *SolveSuite) TestCompleteFourCapThree() {
	g, err := builder.Build(4, builder.Complete(4))
	s.Require().NoError(err)
	res, err := cluster.Solve(s.ctx, g, 3)
	s.Require().NoError(err)
	s.True(res.ProvenOptimal)
	s.Equal(int64(3), res.Objective)
	s.requireClustering(g, res, 3)
	s.Equal(3, res.Graph.EdgeCount())
	s.Equal(6, g.EdgeCount(), "input untouched")
}

// TestTriangleKeepsPendantsCut: the pendant edges leaving a triangle are
// removed and the triangle survives.
func (s *SolveSuite) TestTriangleKeepsPendantsCut() {
	g := s.edges(5, [2]int{0, 1}, [2]int{1, 2}, [2]int{0, 2}, [2]int{0, 3}, [2]int{1, 4})
	for _, opts := range [][]cluster.Option{nil, {cluster.WithRemovalsOnly()}, {cluster.WithGreedySeed(false)}} {
		res, err := cluster.Solve(s.ctx, g, 3, opts...)
		s.Require().NoError(err)
		s.True(res.ProvenOptimal)
		s.Equal(int64(2), res.Objective)
		s.requireClustering(g, res, 3)
		want := []core.Edge{{U: 0, V: 1, W: 1}, {U: 0, V: 2, W: 1}, {U: 1, V: 2, W: 1}}
		s.Empty(cmp.Diff(want, res.Graph.Edges()))
	}
}

// TestInsertion: K4 minus one edge is completed by one insertion, or split
// by two deletions when insertions are forbidden.
func (s *SolveSuite) TestInsertion() {
	g := s.edges(4, [2]int{0, 1}, [2]int{1, 2}, [2]int{0, 2}, [2]int{2, 3}, [2]int{1, 3})
	res, err := cluster.Solve(s.ctx, g, 4)
	s.Require().NoError(err)
	s.Equal(int64(1), res.Objective, "add 0-3")
	s.True(res.Graph.HasEdge(0, 3))
	s.requireClustering(g, res, 4)

	res, err = cluster.Solve(s.ctx, g, 4, cluster.WithRemovalsOnly())
	s.Require().NoError(err)
	s.Equal(int64(2), res.Objective)
	for _, e := range res.Graph.Edges() {
		s.True(g.HasEdge(e.U, e.V), "edge %d-%d inserted", e.U, e.V)
	}
}

// TestSingletons: with s=1 every edge goes.
func (s *SolveSuite) TestSingletons() {
	g, err := builder.Build(5, builder.Wheel(5))
	s.Require().NoError(err)
	res, err := cluster.Solve(s.ctx, g, 1)
	s.Require().NoError(err)
	s.True(res.ProvenOptimal)
	s.Equal(int64(g.EdgeCount()), res.Objective)
	s.Zero(res.Graph.EdgeCount())
}

// TestAlreadyClustered: a disjoint union of cliques costs nothing.
func (s *SolveSuite) TestAlreadyClustered() {
	g := s.edges(6, [2]int{0, 1}, [2]int{1, 2}, [2]int{0, 2}, [2]int{3, 4})
	res, err := cluster.Solve(s.ctx, g, 3)
	s.Require().NoError(err)
	s.Zero(res.Objective)
	s.True(res.ProvenOptimal)
	s.Empty(cmp.Diff(g.Edges(), res.Graph.Edges()))
}

func (s *SolveSuite) TestValidation() {
	g, err := builder.Build(4, builder.Complete(4))
	s.Require().NoError(err)
	_, err = cluster.Solve(s.ctx, nil, 2)
	s.ErrorIs(err, search.ErrValidation)
	_, err = cluster.Solve(s.ctx, g, 0)
	s.ErrorIs(err, search.ErrValidation)
	_, err = cluster.Solve(s.ctx, g, 5)
	s.ErrorIs(err, search.ErrValidation)
	d, err := builder.BuildGraph(4, []core.GraphOption{core.WithDirected(true)}, nil, builder.Cycle(4))
	s.Require().NoError(err)
	_, err = cluster.Solve(s.ctx, d, 2)
	s.ErrorIs(err, search.ErrValidation)
}

func (s *SolveSuite) TestEvents() {
	var events []search.Event
	g := s.edges(5, [2]int{0, 1}, [2]int{1, 2}, [2]int{2, 3}, [2]int{3, 4}, [2]int{4, 0})
	res, err := cluster.Solve(s.ctx, g, 2,
		cluster.WithGreedySeed(false),
		cluster.WithHook(func(ev search.Event) { events = append(events, ev) }))
	s.Require().NoError(err)
	s.Equal(int64(3), res.Objective, "C5 into two edges and a singleton")
	s.Equal(search.SearchStarted, events[0])
	s.Equal(search.SearchEnded, events[len(events)-1])
	s.Contains(events, search.NodeExpanded)
	s.Contains(events, search.RecordImproved)
}

func (s *SolveSuite) TestStepBudget() {
	g, err := builder.Build(9, builder.RandomSparse(9, 0.5), builder.WithSeed(3))
	s.Require().NoError(err)
	res, err := cluster.Solve(s.ctx, g, 3, cluster.WithBudget(search.Budget{MaxSteps: 1}))
	s.Require().NoError(err)
	if res.ProvenOptimal {
		s.T().Skip("instance solved at the root")
	}
	s.Equal(search.StopSteps, res.Reason)
	s.requireClustering(g, res, 3)
}

func (s *SolveSuite) TestCancelledContext() {
	ctx, cancel := context.WithCancel(s.ctx)
	cancel()
	g, err := builder.Build(6, builder.Complete(6))
	s.Require().NoError(err)
	res, err := cluster.Solve(ctx, g, 2)
	s.Require().NoError(err)
	s.False(res.ProvenOptimal)
	s.Equal(search.StopCancelled, res.Reason)
	s.requireClustering(g, res, 2)
	s.Equal(int64(15), res.Objective, "greedy is skipped, the edgeless graph is the record")
}

// TestLongPathHonoursDeadline: a large sparse input with a big cap returns
// within the time limit with a valid clustering.
func (s *SolveSuite) TestLongPathHonoursDeadline() {
	g, err := builder.Build(32, builder.Path(32))
	s.Require().NoError(err)
	ctx, cancel := context.WithTimeout(s.ctx, 100*time.Millisecond)
	defer cancel()
	began := time.Now()
	res, err := cluster.Solve(ctx, g, 16, cluster.WithBudget(search.Budget{TimeLimit: 100 * time.Millisecond}))
	s.Require().NoError(err)
	s.Less(time.Since(began), 2*time.Second)
	s.requireClustering(g, res, 16)
	s.LessOrEqual(res.Objective, int64(15), "greedy pairs up the path")
}

func (s *SolveSuite) TestSparseBackend() {
	g := core.Convert(s.edges(5, [2]int{0, 1}, [2]int{1, 2}, [2]int{0, 2}, [2]int{0, 3}, [2]int{1, 4}), core.Sparse)
	res, err := cluster.Solve(s.ctx, g, 3)
	s.Require().NoError(err)
	s.Equal(int64(2), res.Objective)
	s.IsType(&core.EdgeSet{}, res.Graph)
}

func TestSolveSuite(t *testing.T) {
	suite.Run(t, new(SolveSuite))
}

// TestMonotoneScores: no child is ever scored below its parent.
func TestMonotoneScores(t *testing.T) {
	for seed := int64(0); seed < 6; seed++ {
		g, err := builder.Build(7, builder.RandomSparse(7, 0.5), builder.WithSeed(seed))
		require.NoError(t, err)
		for _, removals := range []bool{false, true} {
			opts := []cluster.Option{
				cluster.WithGreedySeed(false),
				cluster.WithTrace(func(parent, child int64) {
					require.GreaterOrEqual(t, child, parent, "seed %d", seed)
				}),
			}
			if removals {
				opts = append(opts, cluster.WithRemovalsOnly())
			}
			_, err = cluster.Solve(context.Background(), g, 3, opts...)
			require.NoError(t, err)
		}
	}
}

// TestDeterministicResult: repeated runs return the same graph.
func TestDeterministicResult(t *testing.T) {
	g, err := builder.Build(8, builder.RandomSparse(8, 0.45), builder.WithSeed(5))
	require.NoError(t, err)
	var first []core.Edge
	for run := 0; run < 3; run++ {
		res, err := cluster.Solve(context.Background(), g, 3)
		require.NoError(t, err)
		if run == 0 {
			first = res.Graph.Edges()

			continue
		}
		require.Empty(t, cmp.Diff(first, res.Graph.Edges()))
	}
}
