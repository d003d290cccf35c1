package experiments

import (
	"probsim/sampler"

	"golang.org/x/exp/rand"
)

const (
	UrnDraws  = 10000
	FrogCycle = 100
)

// polya starts an urn with one white and one red ball and, draws times,
// doubles a ball chosen uniformly at random.
func polya(rng *rand.Rand, draws int) (white, red int) {
	white, red = 1, 1
	for i := 0; i < draws; i++ {
		if rng.Float64() < float64(white)/float64(white+red) {
			white++
		} else {
			red++
		}
	}
	return white, red
}

// UrnMajority is the share of the more common color after the draws.
func UrnMajority(draws int) sampler.Variate {
	return func(rng *rand.Rand) float64 {
		white, red := polya(rng, draws)
		return float64(max(white, red)) / float64(white+red)
	}
}

// UrnRed is the share of red after the draws.
func UrnRed(draws int) sampler.Variate {
	return func(rng *rand.Rand) float64 {
		white, red := polya(rng, draws)
		return float64(red) / float64(white+red)
	}
}

// ThoroughFrog walks a cycle of n nodes from node 0 until it reaches the
// opposite node n/2, and reports whether both of that node's neighbors were
// visited first, which means every other node was.
func ThoroughFrog(n int) sampler.Trial {
	target := n / 2
	return func(rng *rand.Rand) bool {
		x := 0
		left, right := false, false
		for x != target {
			switch x {
			case target - 1:
				left = true
			case target + 1:
				right = true
			}
			if rng.Float64() < 0.5 {
				x = (x + 1) % n
			} else {
				x = (x - 1 + n) % n
			}
		}
		return left && right
	}
}

// FlipsUntilSingular starts from the 2x2 identity, flips a uniformly chosen
// entry between 0 and 1 each step, and returns the steps until the
// determinant is zero.
func FlipsUntilSingular(rng *rand.Rand) float64 {
	m := [4]int{1, 0, 0, 1} // a, b, c, d
	steps := 0
	for m[0]*m[3]-m[1]*m[2] != 0 {
		i := rng.Intn(4)
		m[i] = 1 - m[i]
		steps++
	}
	return float64(steps)
}
