package jug

import "fmt"

type Action uint8

const (
	Start Action = iota // Sentinel for the first step of a path
	Transfer
	Discard
)

// Sink is the To index of a discard.
const Sink = -1

// Move pours from one container into another, or into the sink.
// The zero Move is the START sentinel.
type Move struct {
	Action Action
	From   int
	To     int
}

// Moves lists every move for n containers: each ordered pair of distinct
// containers, then one discard per container.
func Moves(n int) []Move {
	moves := make([]Move, 0, n*n)
	for from := 0; from < n; from++ {
		for to := 0; to < n; to++ {
			if from != to {
				moves = append(moves, Move{Action: Transfer, From: from, To: to})
			}
		}
	}
	for from := 0; from < n; from++ {
		moves = append(moves, Move{Action: Discard, From: from, To: Sink})
	}
	return moves
}

// moveTables caches Moves(n) for every supported container count
var moveTables [MaxContainers + 1][]Move

func init() {
	for n := range moveTables {
		moveTables[n] = Moves(n)
	}
}

// String names the move the way the puzzle is usually written down:
// the barrel is B, vessels are numbered from 1.
func (m Move) String() string {
	switch m.Action {
	case Start:
		return "START"
	case Transfer:
		return fmt.Sprintf("POUR_%s_%s", label(m.From), label(m.To))
	case Discard:
		return fmt.Sprintf("DISCARD_%s", label(m.From))
	default:
		return fmt.Sprintf("Move(%d)", m.Action)
	}
}

func label(index int) string {
	if index == 0 {
		return "B"
	}
	return fmt.Sprint(index)
}
