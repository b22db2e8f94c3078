package montecarlo

import (
	"sync/atomic"
	"time"
)

// Stats summarizes one ChooseMove invocation.
type Stats struct {
	Duration   time.Duration
	Candidates int
	Trials     int64
}

// Collector is the instrumentation hook ChooseMove reports through.
// The zero-value-friendly dummy collector is used unless a caller asks
// for real metrics with WithMetrics.
type Collector interface {
	Start(candidates, trialsPerCandidate int)
	AddTrial()
	Complete() Stats
}

type collector struct {
	startTime  time.Time
	candidates int
	trials     atomic.Int64
}

// NewCollector returns a Collector that tracks wall-clock duration and
// the number of trials actually run.
func NewCollector() Collector {
	return &collector{}
}

func (c *collector) Start(candidates, trialsPerCandidate int) {
	c.startTime = time.Now()
	c.candidates = candidates
	c.trials.Store(0)
}

func (c *collector) AddTrial() {
	c.trials.Add(1)
}

func (c *collector) Complete() Stats {
	return Stats{
		Duration:   time.Since(c.startTime),
		Candidates: c.candidates,
		Trials:     c.trials.Load(),
	}
}

type dummyCollector struct{}

// NewDummyCollector returns a Collector that discards everything;
// it's the default so ChooseMove never pays for metrics it wasn't
// asked to collect.
func NewDummyCollector() Collector { return dummyCollector{} }

func (dummyCollector) Start(int, int)  {}
func (dummyCollector) AddTrial()       {}
func (dummyCollector) Complete() Stats { return Stats{} }
