package flow_test

import (
	"fmt"

	"github.com/katalvlaran/lvlath-edit/flow"
)

// ExampleEdmondsKarp counts edge-disjoint paths in a 4-cycle: two routes
// lead from 0 to 2.
func ExampleEdmondsKarp() {
	nw := flow.NewNetwork(4)
	for _, e := range [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}} {
		_ = nw.AddArc(e[0], e[1], 1)
		_ = nw.AddArc(e[1], e[0], 1)
	}
	res, err := flow.EdmondsKarp(nw, 0, 2, nil)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(res.Value)
	// Output: 2
}

// ExampleDinic shows path recording on a small diamond.
func ExampleDinic() {
	nw := flow.NewNetwork(4)
	_ = nw.AddArc(0, 1, 2)
	_ = nw.AddArc(0, 2, 1)
	_ = nw.AddArc(1, 3, 1)
	_ = nw.AddArc(2, 3, 2)
	res, _ := flow.Dinic(nw, 0, 3, &flow.Options{KeepPaths: true})
	fmt.Println(res.Value, len(res.Paths))
	// Output: 2 2
}
