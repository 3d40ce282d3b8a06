//go:generate mockgen -source=interfaces.go -destination=mocks/mock_orchestration.go -package=mocks

package orchestration

import (
	"io"

	"github.com/agbru/sumbench/summation"
)

// SizeResult holds every trial measured for one strategy at one input size.
// It is finalized once all trials for N complete and is never mutated after.
type SizeResult struct {
	// N is the input size.
	N int64
	// Trials are the measured runs, in execution order.
	Trials []summation.Trial
	// TotalSeconds is the sum of the trial durations in seconds.
	TotalSeconds float64
	// AverageSeconds is TotalSeconds divided by the number of trials.
	AverageSeconds float64
}

// Sum returns the value computed at this size. Every trial computes the same
// value, so the first one is representative.
func (r SizeResult) Sum() summation.Sum {
	if len(r.Trials) == 0 {
		return summation.Sum{}
	}
	return r.Trials[0].Value
}

// AveragePoint is one (size, average seconds) entry of a series.
type AveragePoint struct {
	N       int64
	Seconds float64
}

// Series is the ordered list of per-size results for one strategy.
type Series struct {
	// Strategy is the registry name of the strategy.
	Strategy string
	// Label is the human-readable name used in legends and tables.
	Label string
	// Points are the per-size results, in the order sizes were given.
	Points []SizeResult
}

// Averages returns the (N, average) mapping in size order.
func (s Series) Averages() []AveragePoint {
	out := make([]AveragePoint, len(s.Points))
	for i, p := range s.Points {
		out[i] = AveragePoint{N: p.N, Seconds: p.AverageSeconds}
	}
	return out
}

// SweepInfo describes the strategy sweep that is about to start.
type SweepInfo struct {
	// Index is the position of the strategy in the run, starting at 0.
	Index int
	// Count is the number of strategies in the run.
	Count    int
	Strategy summation.Strategy
	Sizes    []int64
	Trials   int
}

// ProgressReporter receives measurement events from RunSweep. Calls are made
// synchronously from the measuring goroutine, in order, so implementations
// must return quickly and must not block.
type ProgressReporter interface {
	// SweepStarted is called before the first trial of a strategy.
	SweepStarted(info SweepInfo)
	// TrialCompleted is called after every trial.
	TrialCompleted(n int64, trial summation.Trial)
	// SizeCompleted is called once all trials for a size are done.
	SizeCompleted(result SizeResult)
	// SeriesCompleted is called once a strategy has swept every size.
	SeriesCompleted(series Series)
}

// NullProgressReporter is a no-op implementation of ProgressReporter.
type NullProgressReporter struct{}

func (NullProgressReporter) SweepStarted(SweepInfo)                {}
func (NullProgressReporter) TrialCompleted(int64, summation.Trial) {}
func (NullProgressReporter) SizeCompleted(SizeResult)              {}
func (NullProgressReporter) SeriesCompleted(Series)                {}

// MultiReporter fans every event out to several reporters in order.
type MultiReporter []ProgressReporter

func (m MultiReporter) SweepStarted(info SweepInfo) {
	for _, r := range m {
		r.SweepStarted(info)
	}
}

func (m MultiReporter) TrialCompleted(n int64, trial summation.Trial) {
	for _, r := range m {
		r.TrialCompleted(n, trial)
	}
}

func (m MultiReporter) SizeCompleted(result SizeResult) {
	for _, r := range m {
		r.SizeCompleted(result)
	}
}

func (m MultiReporter) SeriesCompleted(series Series) {
	for _, r := range m {
		r.SeriesCompleted(series)
	}
}

// ResultPresenter defines the interface for presenting a finished run.
// This interface decouples the orchestration layer from presentation concerns,
// allowing different output formats without modifying the orchestration logic.
type ResultPresenter interface {
	// PresentComparisonTable displays the per-size comparison of all series.
	PresentComparisonTable(comparisons []Comparison, series []Series, out io.Writer)
}
