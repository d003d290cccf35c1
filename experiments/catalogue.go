package experiments

import (
	"fmt"
	"math"

	"probsim/exact"
	"probsim/sampler"
)

// Catalogue lists every experiment in a stable order.
func Catalogue() []Experiment {
	return []Experiment{
		{
			Name:        "racquetball",
			Description: "win chance serving first to 21, volley odds .6 on serve and .5 receiving",
			Variate:     sampler.Trial(PlayRacquetball(RacquetballRules{Winning: 21, PServe: 0.6, POpponentServe: 0.5})).AsVariate(),
			Samples:     1000,
			Trials:      1000,
			Expected:    racquetballExpected,
		},
		{
			Name:        "circle-pi",
			Description: "pi from the hit rate of the radius 1/2 circle in the unit square",
			Variate:     sampler.Trial(InCircle).AsVariate(),
			Samples:     1000,
			Trials:      10000,
			ResultMap:   sampler.Scale(4),
			Expected:    math.Pi,
		},
		{
			Name:        "sine-pi",
			Description: "pi from the area under sin(pi x) on the unit square",
			Variate:     sampler.Trial(UnderSine).AsVariate(),
			Samples:     1000,
			Trials:      10000,
			ResultMap:   sampler.Reciprocal(2),
			Expected:    math.Pi,
		},
		{
			Name:        "buffon-pi",
			Description: "pi from Buffon's needle crossing a line",
			Variate:     sampler.Trial(BuffonNeedle).AsVariate(),
			Samples:     1000,
			Trials:      10000,
			ResultMap:   sampler.Reciprocal(2),
			Expected:    math.Pi,
		},
		{
			Name:        "laplace-pi",
			Description: "pi from a unit needle crossing Laplace's square grid",
			Variate:     sampler.Trial(LaplaceNeedle(NeedleLength)).AsVariate(),
			Samples:     1000,
			Trials:      10000,
			ResultMap:   sampler.Reciprocal(4*NeedleLength - NeedleLength*NeedleLength),
			Expected:    math.Pi,
		},
		{
			Name:        "seating",
			Description: "ten people seated twice at a round table never repeat a neighbor",
			Variate:     sampler.Trial(FreshNeighbors(SeatingSize)).AsVariate(),
			Samples:     100,
			Trials:      1000,
			Expected:    seatingExpected.Float(),
		},
		{
			Name:        "urn-max",
			Description: "share of the majority color in a Polya urn after 10000 draws",
			Variate:     UrnMajority(UrnDraws),
			Samples:     100,
			Trials:      100,
			Expected:    math.NaN(),
		},
		{
			Name:        "urn-red",
			Description: "share of red in a Polya urn after 10000 draws",
			Variate:     UrnRed(UrnDraws),
			Samples:     100,
			Trials:      100,
			Expected:    math.NaN(),
		},
		{
			Name:        "thorough-frog",
			Description: "walk on a 100-cycle visits every node before the opposite one",
			Variate:     sampler.Trial(ThoroughFrog(FrogCycle)).AsVariate(),
			Samples:     100,
			Trials:      100,
			Expected:    1.0 / float64(FrogCycle-1),
		},
		{
			Name:        "singular-matrix",
			Description: "expected flips from the 2x2 identity until the matrix is singular",
			Variate:     FlipsUntilSingular,
			Samples:     1000,
			Trials:      1000,
			Expected:    12.0 / 7,
		},
	}
}

var (
	racquetballExpected = mustExpected(exact.RacquetballWin(21, 0.6, 0.5))

	// Enumerating all 9! seatings is too slow for package init.
	// TestCatalogue checks this against exact.SeatingNoRepeatNeighbors.
	seatingExpected = exact.Count{Hits: 29926, Total: 362880}
)

// mustExpected panics if an exact answer for fixed catalogue parameters
// cannot be computed.
func mustExpected(v float64, err error) float64 {
	if err != nil {
		panic(fmt.Sprintf("experiments: exact answer: %v", err))
	}
	return v
}
