package experiments

import (
	"errors"
	"fmt"
	"math"

	"probsim/experiments/metrics"
	"probsim/sampler"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

var ErrUnknownExperiment = errors.New("experiments: unknown experiment")

// Experiment is one catalogued exercise with the run size it was posed with.
type Experiment struct {
	Name        string
	Description string
	Variate     sampler.Variate
	Samples     int
	Trials      int               // Per sample
	ResultMap   sampler.ResultMap // nil means identity
	Expected    float64           // NaN when no exact value is known
}

// HasExpected reports whether the experiment knows its exact answer.
func (e Experiment) HasExpected() bool {
	return !math.IsNaN(e.Expected)
}

// Config overrides the catalogued run size. Zero fields keep each
// experiment's own value.
type Config struct {
	Samples int
	Trials  int
	Seed    uint64
}

// Lookup finds catalogued experiments by name, in the order given.
func Lookup(names ...string) ([]Experiment, error) {
	byName := map[string]Experiment{}
	for _, e := range Catalogue() {
		byName[e.Name] = e
	}

	exps := make([]Experiment, 0, len(names))
	for _, name := range names {
		e, ok := byName[name]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownExperiment, name)
		}
		exps = append(exps, e)
	}
	return exps, nil
}

// Run simulates each experiment in order and returns one record per
// experiment. Experiment i draws from its own stream seeded with
// config.Seed+i, so a record depends only on its position and the config.
func Run(exps []Experiment, config Config) ([]metrics.RunRecord, error) {
	records := make([]metrics.RunRecord, 0, len(exps))

	for i, e := range exps {
		log.Info().Msgf("starting experiment %d of %d: %s...", i+1, len(exps), e.Name)

		rng := rand.New(rand.NewSource(config.Seed + uint64(i)))
		record, err := runExperiment(rng, e, config)
		if err != nil {
			return records, fmt.Errorf("experiment %s: %w", e.Name, err)
		}
		record.ID = i + 1
		records = append(records, record)

		log.Info().Msgf("completed experiment %s with mean=%v, stdev=%v", e.Name, record.Mean, record.StdDev)
	}
	return records, nil
}

func runExperiment(rng *rand.Rand, e Experiment, config Config) (metrics.RunRecord, error) {
	collector := metrics.NewCollector()
	options := []sampler.Option{
		sampler.WithRand(rng),
		sampler.WithMetrics(collector),
		sampler.WithResultMap(e.ResultMap),
	}
	if samples := pick(config.Samples, e.Samples); samples > 0 {
		options = append(options, sampler.WithSamples(samples))
	}
	if trials := pick(config.Trials, e.Trials); trials > 0 {
		options = append(options, sampler.WithTrials(trials))
	}

	s, err := sampler.New(options...)
	if err != nil {
		return metrics.RunRecord{}, err
	}
	report, err := s.RunVariate(e.Variate)
	if err != nil {
		return metrics.RunRecord{}, err
	}

	return metrics.RunRecord{
		Experiment: e.Name,
		Mean:       report.Mean,
		StdDev:     report.StdDev,
		Expected:   e.Expected,
		RunMetric:  collector.Complete(),
	}, nil
}

func pick(override, fallback int) int {
	if override > 0 {
		return override
	}
	return fallback
}
