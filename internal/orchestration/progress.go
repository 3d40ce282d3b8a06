package orchestration

import (
	"time"

	"github.com/agbru/sumbench/internal/format"
	"github.com/agbru/sumbench/summation"
)

// ProgressUpdate reports the completion fraction of one strategy's sweep.
type ProgressUpdate struct {
	// StrategyIndex is the position of the strategy in the run.
	StrategyIndex int
	// Value is the fraction of the strategy's trials completed (0.0 to 1.0).
	Value float64
}

// ProgressAggregator manages multi-strategy progress aggregation.
// It wraps format.ProgressWithETA and turns the event stream of a
// ProgressReporter into overall progress and an ETA. Both the quiet-mode
// spinner and tests use it to avoid duplicating the bookkeeping.
type ProgressAggregator struct {
	state         *format.ProgressWithETA
	numStrategies int

	current     int
	totalTrials int
	doneTrials  int
}

// NewProgressAggregator creates a new aggregator for the given number
// of strategies. Returns nil if numStrategies <= 0.
func NewProgressAggregator(numStrategies int) *ProgressAggregator {
	if numStrategies <= 0 {
		return nil
	}
	return &ProgressAggregator{
		state:         format.NewProgressWithETA(numStrategies),
		numStrategies: numStrategies,
	}
}

// AggregatedProgress holds the result of processing a single progress update.
type AggregatedProgress struct {
	// StrategyIndex is the index of the strategy that sent the update.
	StrategyIndex int
	// Value is the raw progress value from the update (0.0 to 1.0).
	Value float64
	// AverageProgress is the aggregated average across all strategies.
	AverageProgress float64
	// ETA is the estimated time remaining.
	ETA time.Duration
}

// Update processes a single progress update and returns the aggregated result.
func (a *ProgressAggregator) Update(update ProgressUpdate) AggregatedProgress {
	avgProgress, eta := a.state.UpdateWithETA(update.StrategyIndex, update.Value)
	return AggregatedProgress{
		StrategyIndex:   update.StrategyIndex,
		Value:           update.Value,
		AverageProgress: avgProgress,
		ETA:             eta,
	}
}

// BeginSweep resets the per-strategy trial counters for a new sweep.
func (a *ProgressAggregator) BeginSweep(info SweepInfo) {
	a.current = info.Index
	a.totalTrials = len(info.Sizes) * info.Trials
	a.doneTrials = 0
}

// TrialDone records one completed trial of the current sweep and returns
// the aggregated progress.
func (a *ProgressAggregator) TrialDone(_ summation.Trial) AggregatedProgress {
	a.doneTrials++
	value := 1.0
	if a.totalTrials > 0 {
		value = float64(a.doneTrials) / float64(a.totalTrials)
	}
	return a.Update(ProgressUpdate{StrategyIndex: a.current, Value: value})
}

// CalculateAverage returns the current average progress without updating.
// Useful for periodic refresh between updates (e.g., CLI ticker).
func (a *ProgressAggregator) CalculateAverage() float64 {
	return a.state.CalculateAverage()
}

// GetETA returns the current ETA estimate without updating.
// Useful for periodic refresh between updates (e.g., CLI ticker).
func (a *ProgressAggregator) GetETA() time.Duration {
	return a.state.GetETA()
}

// NumStrategies returns the number of strategies being tracked.
func (a *ProgressAggregator) NumStrategies() int {
	return a.numStrategies
}

// IsMultiStrategy returns true if tracking more than one strategy.
func (a *ProgressAggregator) IsMultiStrategy() bool {
	return a.numStrategies > 1
}
