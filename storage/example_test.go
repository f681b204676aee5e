package storage_test

import (
	"fmt"
	"os"
	"strings"

	"github.com/katalvlaran/lvlath-edit/builder"
	"github.com/katalvlaran/lvlath-edit/storage"
)

// ExampleFormat prints a 4-cycle as a set-file block.
func ExampleFormat() {
	g, _ := builder.Build(4, builder.Cycle(4))
	_ = storage.Format(os.Stdout, "c4", g)
	// Output:
	// :c4: 4
	// - 1 - 1
	// 1 - 1 -
	// - 1 - 1
	// 1 - 1 -
}

func ExampleParse() {
	named, err := storage.Parse(strings.NewReader(":p3:\n- 2 -\n2 - 7\n- 7 -\n"))
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	g := named[0].Graph
	fmt.Println(named[0].Name, g.Order(), g.EdgeCount(), g.TotalWeight())
	// Output: p3 3 2 9
}
