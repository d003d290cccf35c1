package search_test

import (
	"fmt"

	"probsim/search"
)

// ExampleBFS reaches 10 from 1 using "add one" and "double" moves.
func ExampleBFS() {
	expand := func(n int) []search.Step[int, string] {
		return []search.Step[int, string]{
			{State: n + 1, Move: "+1", Amount: 1},
			{State: 2 * n, Move: "*2", Amount: n},
		}
	}

	res, err := search.BFS(1, expand, func(n int) bool { return n == 10 })
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	for i, step := range res.Path {
		if i == 0 {
			fmt.Println("START", step.State)
			continue
		}
		fmt.Println(step.Move, step.State)
	}
	fmt.Println("transitions:", res.Path.Transitions())
	// Output:
	// START 1
	// +1 2
	// *2 4
	// +1 5
	// *2 10
	// transitions: 4
}
