package loop_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/pipeloop/gridgraph"
	"github.com/katalvlaran/pipeloop/loop"
)

// ExampleFarthest finds the loop cell farthest from S in a winding maze.
// Scenario:
//
//   - The loop has 16 cells, so two walkers leaving S in opposite
//     directions meet 8 steps later.
func ExampleFarthest() {
	maze := strings.Join([]string{
		"..F7.",
		".FJ|.",
		"SJ.L7",
		"|F--J",
		"LJ...",
	}, "\n")
	g, _ := gridgraph.Parse(strings.NewReader(maze))
	g, _ = g.ResolveStart()

	l, _ := loop.Trace(g)
	far, _ := loop.Farthest(g)
	fmt.Println("loop length:", l.Len())
	fmt.Println("farthest:", far)

	// Output:
	// loop length: 16
	// farthest: 8
}

// ExampleTrace lists the cells of the smallest possible loop in order.
func ExampleTrace() {
	g, _ := gridgraph.FromRows([]string{"S7", "LJ"})
	g, _ = g.ResolveStart()

	l, _ := loop.Trace(g)
	fmt.Println(l.Cells)

	// Output:
	// [(0,0) (1,0) (1,1) (0,1)]
}
