package jug

import (
	"bytes"
	"errors"
	"testing"

	"probsim/search"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func mustState(t *testing.T, barrel Container, vessels ...Container) State {
	t.Helper()
	s, err := NewState(barrel, vessels...)
	require.NoError(t, err)
	return s
}

func TestPour(t *testing.T) {
	t.Run("pouring until the receiver is full", func(t *testing.T) {
		a := Container{Amount: 7, Capacity: 7}
		b := Container{Amount: 0, Capacity: 5}

		newA, newB, poured := Pour(a, b)

		require.Equal(t, Container{Amount: 2, Capacity: 7}, newA)
		require.Equal(t, Container{Amount: 5, Capacity: 5}, newB)
		require.Equal(t, 5, poured)
		require.Equal(t, Container{Amount: 7, Capacity: 7}, a, "Original containers should not change")

		again, full, poured := Pour(newA, newB)
		require.Equal(t, 0, poured, "Pouring into a full container should pour nothing")
		require.Equal(t, newA, again, "The source keeps its 2 when the receiver is full")
		require.Equal(t, newB, full)
	})

	t.Run("pouring until the source is empty", func(t *testing.T) {
		newA, newB, poured := Pour(Container{Amount: 2, Capacity: 7}, Container{Amount: 1, Capacity: 5})

		require.Equal(t, 0, newA.Amount)
		require.Equal(t, 3, newB.Amount)
		require.Equal(t, 2, poured)
	})
}

func TestDrain(t *testing.T) {
	drained, poured := Drain(Container{Amount: 6, Capacity: 7})
	require.Equal(t, Empty(7), drained)
	require.Equal(t, 6, poured, "The sink should absorb everything")

	_, poured = Drain(Empty(7))
	require.Equal(t, 0, poured, "Draining an empty container pours nothing")
}

func TestNewContainer(t *testing.T) {
	c, err := NewContainer(3, 5)
	require.NoError(t, err)
	require.Equal(t, 2, c.Space())
	require.Equal(t, "Container[3 / 5]", c.String())

	for _, tc := range [][2]int{{-1, 5}, {6, 5}, {0, -1}} {
		_, err := NewContainer(tc[0], tc[1])
		require.True(t, errors.Is(err, ErrInvalidContainer), "%d / %d should be rejected", tc[0], tc[1])
	}
}

func TestMoves(t *testing.T) {
	t.Run("three containers give the classic nine moves", func(t *testing.T) {
		names := []string{}
		for _, m := range Moves(3) {
			names = append(names, m.String())
		}

		want := []string{
			"POUR_B_1", "POUR_B_2",
			"POUR_1_B", "POUR_1_2",
			"POUR_2_B", "POUR_2_1",
			"DISCARD_B", "DISCARD_1", "DISCARD_2",
		}
		if diff := cmp.Diff(want, names); diff != "" {
			t.Errorf("move table mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("scaling with the container count", func(t *testing.T) {
		for n := 1; n <= MaxContainers; n++ {
			moves := Moves(n)
			require.Len(t, moves, n*(n-1)+n)

			seen := map[Move]bool{}
			discards := 0
			for _, m := range moves {
				require.False(t, seen[m], "move %s listed twice", m)
				seen[m] = true
				if m.Action == Discard {
					discards++
					require.Equal(t, Sink, m.To)
				} else {
					require.NotEqual(t, m.From, m.To)
				}
			}
			require.Equal(t, n, discards, "Every container should have one discard")
		}
	})

	t.Run("zero move is the start sentinel", func(t *testing.T) {
		require.Equal(t, "START", Move{}.String())
	})
}

func TestNewState(t *testing.T) {
	t.Run("rejecting a barrel without vessels", func(t *testing.T) {
		_, err := NewState(Full(10))
		require.True(t, errors.Is(err, ErrNoVessels))
	})

	t.Run("rejecting too many vessels", func(t *testing.T) {
		vessels := make([]Container, MaxContainers)
		_, err := NewState(Full(10), vessels...)
		require.True(t, errors.Is(err, ErrTooManyContainers))
	})

	t.Run("rejecting an overfull vessel", func(t *testing.T) {
		_, err := NewState(Full(10), Container{Amount: 6, Capacity: 5})
		require.True(t, errors.Is(err, ErrInvalidContainer))
	})

	t.Run("equal contents make equal keys", func(t *testing.T) {
		a := mustState(t, Full(120), Empty(5), Empty(7))
		b := mustState(t, Full(120), Empty(5), Empty(7))
		c := mustState(t, Full(120), Empty(7), Empty(5))

		require.True(t, a == b)
		require.False(t, a == c, "Order of vessels matters")
		visited := map[State]bool{a: true}
		require.True(t, visited[b])
		require.False(t, visited[c])
	})

	t.Run("accessors", func(t *testing.T) {
		s := mustState(t, Full(120), Empty(5), Container{Amount: 3, Capacity: 7})

		require.Equal(t, 3, s.Len())
		require.Equal(t, Full(120), s.Barrel())
		require.Equal(t, Empty(5), s.Vessel(1))
		require.Equal(t, []Container{Full(120), Empty(5), {Amount: 3, Capacity: 7}}, s.Containers())
		require.Equal(t, 123, s.Total())
		require.Panics(t, func() { s.Vessel(0) })
		require.Panics(t, func() { s.Container(3) })
		require.Equal(t, "State[barrel=Container[120 / 120], jug1=Container[0 / 5], jug2=Container[3 / 7]]", s.String())
	})
}

func TestNeighbors(t *testing.T) {
	t.Run("from a full barrel", func(t *testing.T) {
		s := mustState(t, Full(120), Empty(5), Empty(7))

		got := s.Neighbors()

		want := []search.Step[State, Move]{
			{State: mustState(t, Container{115, 120}, Full(5), Empty(7)), Move: Move{Transfer, 0, 1}, Amount: 5},
			{State: mustState(t, Container{113, 120}, Empty(5), Full(7)), Move: Move{Transfer, 0, 2}, Amount: 7},
			{State: mustState(t, Empty(120), Empty(5), Empty(7)), Move: Move{Discard, 0, Sink}, Amount: 120},
		}
		if diff := cmp.Diff(want, got, cmp.AllowUnexported(State{})); diff != "" {
			t.Errorf("neighbors mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("leaving the original state untouched", func(t *testing.T) {
		s := mustState(t, Container{100, 120}, Container{3, 5}, Container{4, 7})
		before := s

		_ = s.Neighbors()

		require.Equal(t, before, s)
	})

	t.Run("only productive moves", func(t *testing.T) {
		s := mustState(t, Container{100, 120}, Container{3, 5}, Container{4, 7})

		for _, step := range s.Neighbors() {
			require.Greater(t, step.Amount, 0, "%s should pour something", step.Move)
			require.NotEqual(t, s, step.State)
			next, poured := s.Apply(step.Move)
			require.Equal(t, step.State, next)
			require.Equal(t, step.Amount, poured)
		}
		// every transfer and discard is productive here
		require.Len(t, s.Neighbors(), 9)
	})

	t.Run("conserving liquid except on discard", func(t *testing.T) {
		s := mustState(t, Container{100, 120}, Container{3, 5}, Container{4, 7})

		for _, step := range s.Neighbors() {
			switch step.Move.Action {
			case Transfer:
				require.Equal(t, s.Total(), step.State.Total())
			case Discard:
				require.Equal(t, s.Total()-step.Amount, step.State.Total())
			}
		}
	})

	t.Run("ignoring invalid moves", func(t *testing.T) {
		s := mustState(t, Full(10), Empty(5))
		for _, m := range []Move{{Transfer, 0, 0}, {Transfer, 0, 5}, {Transfer, -1, 1}, {Start, 0, 1}} {
			next, poured := s.Apply(m)
			require.Equal(t, s, next)
			require.Equal(t, 0, poured)
		}
	})
}

func TestSolve(t *testing.T) {
	t.Run("beer barrel with 5 and 7 quart vessels", func(t *testing.T) {
		start := mustState(t, Full(120), Empty(5), Empty(7))
		target := VesselsHold(1, 1)

		res, err := Solve(start, target)

		require.NoError(t, err)
		require.True(t, res.Found)
		require.Equal(t, 17, res.Path.Transitions())
		require.Equal(t, 1194, res.Visited)
		require.Equal(t, search.Step[State, Move]{State: start}, res.Path[0])
		final, _ := res.Path.Final()
		require.True(t, target(final))
		require.Equal(t, 1, final.Vessel(1).Amount)
		require.Equal(t, 1, final.Vessel(2).Amount)
		for i := 1; i < len(res.Path); i++ {
			next, poured := res.Path[i-1].State.Apply(res.Path[i].Move)
			require.Equal(t, res.Path[i].State, next, "step %d should follow from its predecessor", i)
			require.Equal(t, res.Path[i].Amount, poured)
		}
	})

	t.Run("same puzzle twice gives the same length", func(t *testing.T) {
		start := mustState(t, Full(120), Empty(5), Empty(7))
		first, err := Solve(start, VesselsHold(1, 1))
		require.NoError(t, err)
		second, err := Solve(start, VesselsHold(1, 1))
		require.NoError(t, err)
		require.Equal(t, len(first.Path), len(second.Path))
	})

	t.Run("splitting eight quarts with 5 and 3", func(t *testing.T) {
		start := mustState(t, Full(8), Empty(5), Empty(3))
		target := func(s State) bool { return s.Barrel().Amount == 4 && s.Vessel(1).Amount == 4 }

		res, err := Solve(start, target)

		require.NoError(t, err)
		require.Equal(t, 7, res.Path.Transitions())
	})

	t.Run("three vessels", func(t *testing.T) {
		start := mustState(t, Full(120), Empty(3), Empty(5), Empty(7))

		res, err := Solve(start, VesselsHold(1, 1, 1))

		require.NoError(t, err)
		require.True(t, res.Found)
		require.Equal(t, 12, res.Path.Transitions())
	})

	t.Run("unreachable amount", func(t *testing.T) {
		// every amount stays even
		start := mustState(t, Full(10), Empty(4), Empty(6))

		res, err := Solve(start, VesselsHold(3))

		require.NoError(t, err)
		require.False(t, res.Found)
		require.Empty(t, res.Path)
		require.Equal(t, 37, res.Visited)
	})

	t.Run("state limit", func(t *testing.T) {
		start := mustState(t, Full(120), Empty(5), Empty(7))
		_, err := Solve(start, VesselsHold(1, 1), search.WithMaxStates(100))
		require.True(t, errors.Is(err, search.ErrStateLimit))
	})

	t.Run("nil target", func(t *testing.T) {
		start := mustState(t, Full(8), Empty(5))
		_, err := Solve(start, nil)
		require.True(t, errors.Is(err, search.ErrOptionViolation))
	})
}

func TestTargets(t *testing.T) {
	s := mustState(t, Container{4, 8}, Container{1, 5}, Container{1, 3})

	require.True(t, VesselsHold(1)(s))
	require.True(t, VesselsHold(1, 1)(s))
	require.False(t, VesselsHold(1, 2)(s))
	require.False(t, VesselsHold(1, 1, 1)(s), "More amounts than vessels never match")
	require.True(t, BarrelHolds(4)(s))
	require.False(t, BarrelHolds(8)(s))
}

func TestFormatPath(t *testing.T) {
	start := mustState(t, Full(5), Empty(3))
	res, err := Solve(start, VesselsHold(3))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, FormatPath(&buf, res.Path))

	want := "START: pour 0 -> State[barrel=Container[5 / 5], jug1=Container[0 / 3]]\n" +
		"POUR_B_1: pour 3 -> State[barrel=Container[2 / 5], jug1=Container[3 / 3]]\n" +
		"num steps: 1\n"
	require.Equal(t, want, buf.String())
}
