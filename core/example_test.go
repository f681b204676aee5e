package core_test

import (
	"fmt"

	"github.com/katalvlaran/lvlath-edit/core"
)

// ExampleFromMatrix builds a weighted triangle from an adjacency matrix.
func ExampleFromMatrix() {
	rows := [][]*int64{
		{nil, core.W(2), core.W(5)},
		{core.W(2), nil, core.W(1)},
		{core.W(5), core.W(1), nil},
	}
	g, _ := core.FromMatrix(rows)
	fmt.Println(g.Directed(), g.EdgeCount(), g.TotalWeight())
	fmt.Println(g.Neighbors(0))
	// Output:
	// false 3 8
	// [1 2]
}

// ExampleGraph_SetDirected shows the merge policy: the larger arc weight wins.
func ExampleGraph_SetDirected() {
	g, _ := core.New(2, core.WithDirected(true), core.WithBackend(core.Sparse))
	_ = g.AddEdge(0, 1, 3)
	_ = g.AddEdge(1, 0, 8)
	g.SetDirected(false)
	w, _ := g.Weight(0, 1)
	fmt.Println(g.EdgeCount(), w)
	// Output:
	// 1 8
}
