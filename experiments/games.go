package experiments

import (
	"probsim/exact"
	"probsim/sampler"

	"golang.org/x/exp/rand"
)

// SeatingSize is the number of people at the round table.
const SeatingSize = 10

// RacquetballRules describes a game where only the server scores.
type RacquetballRules struct {
	Winning        int
	PServe         float64 // Our chance of winning a volley on our serve
	POpponentServe float64 // Opponent's chance of winning a volley on their serve
}

// PlayRacquetball plays one game serving first and reports whether we win.
func PlayRacquetball(rules RacquetballRules) sampler.Trial {
	return func(rng *rand.Rand) bool {
		ours, theirs := 0, 0
		serving := true
		for ours < rules.Winning && theirs < rules.Winning {
			r := rng.Float64()
			switch {
			case serving && r < rules.PServe:
				ours++
			case serving:
				serving = false
			case r < rules.POpponentServe:
				theirs++
			default:
				serving = true
			}
		}
		return ours == rules.Winning
	}
}

// FreshNeighbors seats n people twice at random and reports whether nobody
// sits next to the same person both times.
func FreshNeighbors(n int) sampler.Trial {
	return func(rng *rand.Rand) bool {
		return exact.NoSharedNeighbors(rng.Perm(n), rng.Perm(n))
	}
}
