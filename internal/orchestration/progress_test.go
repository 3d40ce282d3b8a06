package orchestration

import (
	"testing"

	"github.com/agbru/sumbench/summation"
)

func TestNewProgressAggregator_Positive(t *testing.T) {
	agg := NewProgressAggregator(3)
	if agg == nil {
		t.Fatal("expected non-nil aggregator for numStrategies=3")
	}
	if agg.NumStrategies() != 3 {
		t.Errorf("expected NumStrategies()=3, got %d", agg.NumStrategies())
	}
	if !agg.IsMultiStrategy() {
		t.Error("expected IsMultiStrategy()=true for 3 strategies")
	}
}

func TestNewProgressAggregator_Single(t *testing.T) {
	agg := NewProgressAggregator(1)
	if agg == nil {
		t.Fatal("expected non-nil aggregator for numStrategies=1")
	}
	if agg.IsMultiStrategy() {
		t.Error("expected IsMultiStrategy()=false for 1 strategy")
	}
}

func TestNewProgressAggregator_Zero(t *testing.T) {
	agg := NewProgressAggregator(0)
	if agg != nil {
		t.Error("expected nil aggregator for numStrategies=0")
	}
}

func TestNewProgressAggregator_Negative(t *testing.T) {
	agg := NewProgressAggregator(-1)
	if agg != nil {
		t.Error("expected nil aggregator for numStrategies=-1")
	}
}

func TestProgressAggregator_Update(t *testing.T) {
	agg := NewProgressAggregator(2)

	ap := agg.Update(ProgressUpdate{StrategyIndex: 0, Value: 0.5})
	if ap.StrategyIndex != 0 {
		t.Errorf("expected StrategyIndex=0, got %d", ap.StrategyIndex)
	}
	if ap.Value != 0.5 {
		t.Errorf("expected Value=0.5, got %f", ap.Value)
	}
	// Average of [0.5, 0.0] = 0.25
	if ap.AverageProgress != 0.25 {
		t.Errorf("expected AverageProgress=0.25, got %f", ap.AverageProgress)
	}

	ap = agg.Update(ProgressUpdate{StrategyIndex: 1, Value: 0.5})
	// Average of [0.5, 0.5] = 0.5
	if ap.AverageProgress != 0.5 {
		t.Errorf("expected AverageProgress=0.5, got %f", ap.AverageProgress)
	}
}

func TestProgressAggregator_CalculateAverage(t *testing.T) {
	agg := NewProgressAggregator(2)

	avg := agg.CalculateAverage()
	if avg != 0.0 {
		t.Errorf("expected initial average=0.0, got %f", avg)
	}

	agg.Update(ProgressUpdate{StrategyIndex: 0, Value: 1.0})
	avg = agg.CalculateAverage()
	if avg != 0.5 {
		t.Errorf("expected average=0.5 after one update, got %f", avg)
	}
}

func TestProgressAggregator_GetETA(t *testing.T) {
	agg := NewProgressAggregator(1)

	// Initially ETA should be 0 (not enough data)
	eta := agg.GetETA()
	if eta != 0 {
		t.Errorf("expected initial ETA=0, got %v", eta)
	}
}

func TestProgressAggregator_TrialDone(t *testing.T) {
	agg := NewProgressAggregator(2)
	agg.BeginSweep(SweepInfo{Index: 0, Count: 2, Sizes: []int64{10, 100}, Trials: 2})

	var ap AggregatedProgress
	for range 4 {
		ap = agg.TrialDone(summation.IterativeSum(10))
	}
	if ap.Value != 1.0 {
		t.Errorf("expected first sweep complete, got %f", ap.Value)
	}
	if ap.AverageProgress != 0.5 {
		t.Errorf("expected AverageProgress=0.5 after first sweep, got %f", ap.AverageProgress)
	}

	agg.BeginSweep(SweepInfo{Index: 1, Count: 2, Sizes: []int64{10, 100}, Trials: 2})
	ap = agg.TrialDone(summation.ClosedFormSum(10))
	if ap.StrategyIndex != 1 || ap.Value != 0.25 {
		t.Errorf("unexpected progress %+v", ap)
	}
	if ap.AverageProgress != 0.625 {
		t.Errorf("expected AverageProgress=0.625, got %f", ap.AverageProgress)
	}
}
