package jug_test

import (
	"testing"

	"probsim/jug"
)

// BenchmarkSolve_BeerBarrel measures the classic 120/5/7 puzzle.
func BenchmarkSolve_BeerBarrel(b *testing.B) {
	start, err := jug.NewState(jug.Full(120), jug.Empty(5), jug.Empty(7))
	if err != nil {
		b.Fatal(err)
	}
	target := jug.VesselsHold(1, 1)

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = jug.Solve(start, target)
	}
}

// BenchmarkNeighbors measures one expansion with three vessels (16 moves).
func BenchmarkNeighbors(b *testing.B) {
	s, err := jug.NewState(jug.Container{Amount: 100, Capacity: 120},
		jug.Container{Amount: 1, Capacity: 3}, jug.Container{Amount: 3, Capacity: 5}, jug.Container{Amount: 4, Capacity: 7})
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = s.Neighbors()
	}
}
