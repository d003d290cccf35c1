package jug

import (
	"fmt"
	"strings"

	"probsim/search"
)

// MaxContainers bounds the barrel plus vessels a State can hold; the fixed
// array keeps State comparable so it can key the search's visited set.
const MaxContainers = 8

// State is an immutable snapshot of every container. Index 0 is the barrel,
// indices 1..n-1 are the measuring vessels. Two states are equal iff all
// (amount, capacity) pairs match positionally.
type State struct {
	n          int
	containers [MaxContainers]Container
}

func NewState(barrel Container, vessels ...Container) (State, error) {
	if len(vessels) == 0 {
		return State{}, ErrNoVessels
	}
	if len(vessels)+1 > MaxContainers {
		return State{}, fmt.Errorf("%w: %d vessels, at most %d", ErrTooManyContainers, len(vessels), MaxContainers-1)
	}
	s := State{n: len(vessels) + 1}
	for i, c := range append([]Container{barrel}, vessels...) {
		if _, err := NewContainer(c.Amount, c.Capacity); err != nil {
			return State{}, fmt.Errorf("container %s: %w", label(i), err)
		}
		s.containers[i] = c
	}
	return s, nil
}

// Len is the number of containers, barrel included.
func (s State) Len() int {
	return s.n
}

func (s State) Container(i int) Container {
	if i < 0 || i >= s.n {
		panic(fmt.Sprintf("container index %d out of range [0, %d)", i, s.n))
	}
	return s.containers[i]
}

func (s State) Barrel() Container {
	return s.containers[0]
}

// Vessel returns the i-th measuring vessel, counting from 1.
func (s State) Vessel(i int) Container {
	if i < 1 {
		panic(fmt.Sprintf("vessel index %d out of range [1, %d)", i, s.n))
	}
	return s.Container(i)
}

// Containers returns a copy of all containers, barrel first.
func (s State) Containers() []Container {
	out := make([]Container, s.n)
	copy(out, s.containers[:s.n])
	return out
}

// Total is the liquid held across all containers.
func (s State) Total() int {
	total := 0
	for _, c := range s.containers[:s.n] {
		total += c.Amount
	}
	return total
}

// Apply returns the state after m and the amount it moved. Invalid moves and
// no-op pours return the unchanged state and 0.
func (s State) Apply(m Move) (State, int) {
	if m.From < 0 || m.From >= s.n {
		return s, 0
	}
	switch m.Action {
	case Transfer:
		if m.To < 0 || m.To >= s.n || m.To == m.From {
			return s, 0
		}
		from, to, poured := Pour(s.containers[m.From], s.containers[m.To])
		s.containers[m.From] = from
		s.containers[m.To] = to
		return s, poured
	case Discard:
		from, poured := Drain(s.containers[m.From])
		s.containers[m.From] = from
		return s, poured
	default:
		return s, 0
	}
}

// Neighbors lists every state one move away. Moves that pour nothing are
// left out; different moves reaching the same state are all kept.
func (s State) Neighbors() []search.Step[State, Move] {
	moves := moveTables[s.n]
	steps := make([]search.Step[State, Move], 0, len(moves))
	for _, m := range moves {
		next, poured := s.Apply(m)
		if poured > 0 {
			steps = append(steps, search.Step[State, Move]{State: next, Move: m, Amount: poured})
		}
	}
	return steps
}

func (s State) String() string {
	var b strings.Builder
	b.WriteString("State[barrel=")
	b.WriteString(s.containers[0].String())
	for i := 1; i < s.n; i++ {
		fmt.Fprintf(&b, ", jug%d=%s", i, s.containers[i])
	}
	b.WriteString("]")
	return b.String()
}
