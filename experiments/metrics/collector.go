package metrics

import (
	"sync/atomic"
	"time"
)

type RunMetric struct {
	Samples         int
	TrialsPerSample int
	Trials          int // Trials actually executed
	Duration        time.Duration
}

type RunRecord struct {
	ID         int
	Experiment string
	Mean       float64
	StdDev     float64
	Expected   float64 // NaN when no exact value is known
	RunMetric
}

type Collector interface {
	Start(samples, trialsPerSample int)
	AddTrials(n int)
	AddSample()
	Complete() RunMetric
}

type collector struct {
	samples         int
	trialsPerSample int
	startTime       time.Time
	trials          atomic.Int64
	completed       atomic.Int32
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(samples, trialsPerSample int) {
	m.startTime = time.Now()
	m.samples = samples
	m.trialsPerSample = trialsPerSample
	m.trials.Store(0)
	m.completed.Store(0)
}

func (m *collector) AddTrials(n int) {
	m.trials.Add(int64(n))
}

func (m *collector) AddSample() {
	m.completed.Add(1)
}

func (m *collector) Complete() RunMetric {
	return RunMetric{
		Samples:         int(m.completed.Load()),
		TrialsPerSample: m.trialsPerSample,
		Trials:          int(m.trials.Load()),
		Duration:        time.Since(m.startTime),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(samples, trialsPerSample int) {}
func (m *dummyCollector) AddTrials(n int)                    {}
func (m *dummyCollector) AddSample()                         {}
func (m *dummyCollector) Complete() RunMetric                { return RunMetric{} }
