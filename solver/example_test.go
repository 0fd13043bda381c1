package solver_test

import (
	"fmt"

	"github.com/katalvlaran/burrow/layout"
	"github.com/katalvlaran/burrow/solver"
	"github.com/katalvlaran/burrow/state"
)

// ExampleSolve solves the classic two-deep burrow.
func ExampleSolve() {
	// 1) Place the agents: types 0..3 are A..D, vertices follow layout.Small.
	start := state.MustNew([]state.Agent{
		{Kind: 1, Vertex: 7}, {Kind: 2, Vertex: 9}, {Kind: 1, Vertex: 11}, {Kind: 3, Vertex: 13},
		{Kind: 0, Vertex: 8}, {Kind: 3, Vertex: 10}, {Kind: 2, Vertex: 12}, {Kind: 0, Vertex: 14},
	})

	// 2) Search.
	res, err := solver.Solve(layout.Small(), start)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(res.Found, res.Cost)
	// Output: true 12521
}

// ExampleReachable lists where a lone agent in the hallway may go when it
// is only allowed to head home.
func ExampleReachable() {
	cfg := layout.Small()
	s := state.MustNew([]state.Agent{{Kind: 3, Vertex: 0}})

	for _, st := range solver.Reachable(cfg, s, 0, 3, solver.RuleStrict) {
		fmt.Printf("vertex %d costs %d\n", st.Vertex, st.Cost)
	}
	// Output: vertex 14 costs 10000
}
