package sampler

import (
	"fmt"
	"io"

	"probsim/experiments/metrics"
	"probsim/meta"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

// Trial is one experiment; it reports true on success. Any private state it
// keeps must be reset by the trial itself.
type Trial func(rng *rand.Rand) bool

// Variate is one real-valued experiment, used to estimate expectations.
type Variate func(rng *rand.Rand) float64

// ResultMap transforms each sample's raw rate before aggregation.
type ResultMap func(rate float64) float64

func Identity(rate float64) float64 {
	return rate
}

// Scale returns a ResultMap multiplying the rate by k.
func Scale(k float64) ResultMap {
	return func(rate float64) float64 { return k * rate }
}

// Reciprocal returns a ResultMap computing k / rate.
func Reciprocal(k float64) ResultMap {
	return func(rate float64) float64 { return k / rate }
}

// AsVariate scores a trial as 1 on success and 0 otherwise.
func (t Trial) AsVariate() Variate {
	return func(rng *rand.Rand) float64 {
		if t(rng) {
			return 1
		}
		return 0
	}
}

type Option func(s *Sampler)

type Sampler struct {
	samples   int
	trials    int
	resultMap ResultMap
	rng       *rand.Rand
	metrics   metrics.Collector
	progress  int
}

// Report aggregates one run of samples.
type Report struct {
	Samples         int
	TrialsPerSample int
	Results         []float64 // Mapped result of each sample, in order
	Mean            float64
	StdDev          float64
}

func (r Report) String() string {
	return fmt.Sprintf("mean=%v, stdev=%v", r.Mean, r.StdDev)
}

func WithSamples(samples int) Option {
	return func(s *Sampler) {
		s.samples = samples
	}
}

func WithTrials(trials int) Option {
	return func(s *Sampler) {
		s.trials = trials
	}
}

func WithResultMap(resultMap ResultMap) Option {
	return func(s *Sampler) {
		if resultMap != nil {
			s.resultMap = resultMap
		}
	}
}

func WithSeed(seed uint64) Option {
	return func(s *Sampler) {
		s.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand shares an existing generator; callers running several samplers
// from one seed get a single reproducible stream.
func WithRand(rng *rand.Rand) Option {
	return func(s *Sampler) {
		if rng != nil {
			s.rng = rng
		}
	}
}

func WithMetrics(collector metrics.Collector) Option {
	return func(s *Sampler) {
		if collector != nil {
			s.metrics = collector
		}
	}
}

// WithProgress sets how many progress events a run logs; 0 disables them.
func WithProgress(steps int) Option {
	return func(s *Sampler) {
		if steps >= 0 {
			s.progress = steps
		}
	}
}

func New(options ...Option) (*Sampler, error) {
	s := &Sampler{ // Default values
		samples:   meta.DEFAULT_SAMPLES,
		trials:    meta.DEFAULT_TRIALS,
		resultMap: Identity,
		metrics:   metrics.NewDummyCollector(),
		progress:  meta.PROGRESS_STEPS,
	}
	for _, option := range options {
		option(s)
	}
	if s.samples < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSamples, s.samples)
	}
	if s.trials < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidTrials, s.trials)
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewSource(meta.DEFAULT_SEED))
	}
	return s, nil
}

// RunSingleSample runs trial exactly trials times and returns the success rate.
func RunSingleSample(rng *rand.Rand, trial Trial, trials int) (float64, error) {
	if trial == nil {
		return 0, ErrNilTrial
	}
	return RunSingleVariate(rng, trial.AsVariate(), trials)
}

// RunSingleVariate runs variate exactly trials times and returns the mean outcome.
func RunSingleVariate(rng *rand.Rand, variate Variate, trials int) (float64, error) {
	if variate == nil {
		return 0, ErrNilTrial
	}
	if trials < 1 {
		return 0, fmt.Errorf("%w: got %d", ErrInvalidTrials, trials)
	}
	return sample(rng, variate, trials), nil
}

func sample(rng *rand.Rand, variate Variate, trials int) float64 {
	total := 0.0
	for i := 0; i < trials; i++ {
		total += variate(rng)
	}
	return total / float64(trials)
}

func (s *Sampler) Run(trial Trial) (Report, error) {
	if trial == nil {
		return Report{}, ErrNilTrial
	}
	return s.RunVariate(trial.AsVariate())
}

func (s *Sampler) RunVariate(variate Variate) (Report, error) {
	if variate == nil {
		return Report{}, ErrNilTrial
	}

	s.metrics.Start(s.samples, s.trials)
	results := make([]float64, 0, s.samples)
	every := s.progressInterval()

	for i := 0; i < s.samples; i++ {
		result := s.resultMap(sample(s.rng, variate, s.trials))
		results = append(results, result)
		s.metrics.AddTrials(s.trials)
		s.metrics.AddSample()

		if every > 0 && (i+1)%every == 0 {
			log.Debug().Msgf("completed sample %d of %d", i+1, s.samples)
		}
	}

	mean, stddev := MeanStdDev(results)
	return Report{
		Samples:         s.samples,
		TrialsPerSample: s.trials,
		Results:         results,
		Mean:            mean,
		StdDev:          stddev,
	}, nil
}

func (s *Sampler) progressInterval() int {
	if s.progress == 0 {
		return 0
	}
	every := s.samples / s.progress
	if every < 1 {
		every = 1
	}
	return every
}

// RunSimsAndReport runs the trial and writes the mean and standard deviation to w.
func RunSimsAndReport(w io.Writer, trial Trial, options ...Option) (Report, error) {
	s, err := New(options...)
	if err != nil {
		return Report{}, err
	}
	report, err := s.Run(trial)
	if err != nil {
		return Report{}, err
	}
	if _, err := fmt.Fprintln(w, report); err != nil {
		return report, fmt.Errorf("failed to write report: %w", err)
	}
	return report, nil
}
