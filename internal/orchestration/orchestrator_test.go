package orchestration

import (
	"context"
	"errors"
	"slices"
	"strings"
	"testing"
	"time"

	apperrors "github.com/agbru/sumbench/internal/errors"
	"github.com/agbru/sumbench/summation"
)

// fixedStrategy returns a strategy whose trials take n microseconds and
// compute sum(n), so timings are deterministic.
func fixedStrategy(name string, sum func(int64) summation.Sum) summation.Strategy {
	return summation.NewStrategy(name, name, func(n int64) summation.Trial {
		return summation.Trial{Value: sum(n), Elapsed: time.Duration(n) * time.Microsecond}
	})
}

func exactSum(n int64) summation.Sum { return summation.IntSum(n * (n + 1) / 2) }

// recordingReporter records the event sequence as strings.
type recordingReporter struct {
	events []string
}

func (r *recordingReporter) SweepStarted(info SweepInfo) {
	r.events = append(r.events, "start:"+info.Strategy.Name())
}
func (r *recordingReporter) TrialCompleted(int64, summation.Trial) { r.events = append(r.events, "trial") }
func (r *recordingReporter) SizeCompleted(SizeResult)              { r.events = append(r.events, "size") }
func (r *recordingReporter) SeriesCompleted(s Series)              { r.events = append(r.events, "series:"+s.Strategy) }

func TestRunSweep_ReferenceScenario(t *testing.T) {
	t.Parallel()
	sizes := []int64{10_000, 100_000, 1_000_000}
	series, err := RunSweep(context.Background(), summation.NewDefaultRegistry().All(), sizes, 5, nil)
	if err != nil {
		t.Fatalf("RunSweep: %v", err)
	}
	if len(series) != 2 {
		t.Fatalf("expected 2 series, got %d", len(series))
	}
	if series[0].Strategy != summation.IterativeName || series[1].Strategy != summation.ClosedFormName {
		t.Errorf("unexpected series order: %s, %s", series[0].Strategy, series[1].Strategy)
	}
	for _, s := range series {
		avgs := s.Averages()
		if len(avgs) != 3 {
			t.Fatalf("%s: expected 3 entries, got %d", s.Strategy, len(avgs))
		}
		for i, p := range avgs {
			if p.N != sizes[i] {
				t.Errorf("%s: entry %d has N=%d, want %d", s.Strategy, i, p.N, sizes[i])
			}
			if p.Seconds < 0 {
				t.Errorf("%s: negative average at N=%d", s.Strategy, p.N)
			}
		}
		for _, p := range s.Points {
			if len(p.Trials) != 5 {
				t.Errorf("%s: N=%d has %d trials, want 5", s.Strategy, p.N, len(p.Trials))
			}
		}
	}
	if err := VerifyConsistency(series); err != nil {
		t.Errorf("strategies disagree: %v", err)
	}

	// Timing depends on the machine, so this is informational only.
	for i := range sizes {
		it, cf := series[0].Points[i].AverageSeconds, series[1].Points[i].AverageSeconds
		if cf >= it {
			t.Logf("closed form not faster at N=%d (iterative %g s, closed form %g s)", sizes[i], it, cf)
		}
	}
}

func TestRunSweep_AverageIsTotalOverCount(t *testing.T) {
	t.Parallel()
	s := fixedStrategy("fixed", exactSum)
	series, err := RunSweep(context.Background(), []summation.Strategy{s}, []int64{3, 7}, 3, nil)
	if err != nil {
		t.Fatalf("RunSweep: %v", err)
	}
	for _, p := range series[0].Points {
		if p.AverageSeconds != Average(p.Trials) {
			t.Errorf("N=%d: average %v != Average(trials) %v", p.N, p.AverageSeconds, Average(p.Trials))
		}
		if p.AverageSeconds != p.TotalSeconds/3 {
			t.Errorf("N=%d: average %v != total/3 %v", p.N, p.AverageSeconds, p.TotalSeconds/3)
		}
		want := float64(p.N) * 1e-6
		if p.AverageSeconds != want {
			t.Errorf("N=%d: average %v, want %v", p.N, p.AverageSeconds, want)
		}
	}
}

func TestRunSweep_EventOrder(t *testing.T) {
	t.Parallel()
	rec := &recordingReporter{}
	strategies := []summation.Strategy{fixedStrategy("a", exactSum), fixedStrategy("b", exactSum)}
	if _, err := RunSweep(context.Background(), strategies, []int64{1, 2}, 2, rec); err != nil {
		t.Fatalf("RunSweep: %v", err)
	}
	want := []string{
		"start:a", "trial", "trial", "size", "trial", "trial", "size", "series:a",
		"start:b", "trial", "trial", "size", "trial", "trial", "size", "series:b",
	}
	if !slices.Equal(rec.events, want) {
		t.Errorf("events = %v\nwant     %v", rec.events, want)
	}
}

func TestRunSweep_InvalidTrials(t *testing.T) {
	t.Parallel()
	_, err := RunSweep(context.Background(), summation.NewDefaultRegistry().All(), []int64{10}, 0, nil)
	var validationErr apperrors.ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestRunSweep_Cancellation(t *testing.T) {
	t.Parallel()

	t.Run("already canceled", func(t *testing.T) {
		t.Parallel()
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		series, err := RunSweep(ctx, summation.NewDefaultRegistry().All(), []int64{10}, 5, nil)
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("expected context.Canceled, got %v", err)
		}
		if len(series) != 0 {
			t.Errorf("expected no completed series, got %d", len(series))
		}
	})

	t.Run("canceled during second strategy", func(t *testing.T) {
		t.Parallel()
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		calls := 0
		cancelling := summation.NewStrategy("cancel", "Cancel", func(n int64) summation.Trial {
			calls++
			if calls == 2 {
				cancel()
			}
			return summation.ClosedFormSum(n)
		})
		strategies := []summation.Strategy{fixedStrategy("first", exactSum), cancelling}
		series, err := RunSweep(ctx, strategies, []int64{10, 20}, 3, nil)

		var measurementErr apperrors.MeasurementError
		if !errors.As(err, &measurementErr) {
			t.Fatalf("expected MeasurementError, got %v", err)
		}
		if measurementErr.Strategy != "cancel" || measurementErr.N != 10 {
			t.Errorf("unexpected error location: %+v", measurementErr)
		}
		if len(series) != 1 || series[0].Strategy != "first" {
			t.Errorf("expected the first series to be returned, got %+v", series)
		}
		if calls != 2 {
			t.Errorf("expected measuring to stop after 2 calls, got %d", calls)
		}
	})

	t.Run("deadline maps to timeout exit code", func(t *testing.T) {
		t.Parallel()
		ctx, cancel := context.WithTimeout(context.Background(), time.Nanosecond)
		defer cancel()
		<-ctx.Done()
		_, err := RunSweep(ctx, summation.NewDefaultRegistry().All(), []int64{10}, 1, nil)
		if code := apperrors.ExitCodeFor(err); code != apperrors.ExitErrorTimeout {
			t.Errorf("expected exit code %d, got %d (%v)", apperrors.ExitErrorTimeout, code, err)
		}
	})
}

func TestSelectStrategies(t *testing.T) {
	t.Parallel()
	registry := summation.NewDefaultRegistry()

	all, err := SelectStrategies(registry, "all")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(all) != 2 || all[0].Name() != summation.IterativeName {
		t.Errorf("unexpected strategies for all: %v", all)
	}

	one, err := SelectStrategies(registry, summation.ClosedFormName)
	if err != nil || len(one) != 1 || one[0].Name() != summation.ClosedFormName {
		t.Errorf("SelectStrategies(closed-form) = %v, %v", one, err)
	}

	_, err = SelectStrategies(registry, "bogus")
	var validationErr apperrors.ValidationError
	if !errors.As(err, &validationErr) || validationErr.Field != "strategy" {
		t.Fatalf("expected a strategy ValidationError, got %v", err)
	}
	if !strings.Contains(err.Error(), "available: iterative, closed-form, all") {
		t.Errorf("error should list the registered strategies: %v", err)
	}
}

func TestVerifyConsistency(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	sizes := []int64{1, 10, 100}

	good, err := RunSweep(ctx, []summation.Strategy{fixedStrategy("a", exactSum), summation.ClosedForm()}, sizes, 1, nil)
	if err != nil {
		t.Fatalf("RunSweep: %v", err)
	}
	if err := VerifyConsistency(good); err != nil {
		t.Errorf("unexpected mismatch: %v", err)
	}

	offByOne := fixedStrategy("b", func(n int64) summation.Sum {
		if n == 10 {
			return summation.FloatSum(56)
		}
		return exactSum(n)
	})
	bad, err := RunSweep(ctx, []summation.Strategy{fixedStrategy("a", exactSum), offByOne}, sizes, 1, nil)
	if err != nil {
		t.Fatalf("RunSweep: %v", err)
	}
	var mismatch apperrors.MismatchError
	if !errors.As(VerifyConsistency(bad), &mismatch) {
		t.Fatal("expected MismatchError")
	}
	if mismatch.N != 10 || mismatch.ReferenceSum != "55" || mismatch.Sum != "56.0" {
		t.Errorf("unexpected mismatch %+v", mismatch)
	}

	if err := VerifyConsistency(bad[:1]); err != nil {
		t.Errorf("single series cannot mismatch: %v", err)
	}
}

func TestCompare(t *testing.T) {
	t.Parallel()
	slow := Series{Strategy: "slow", Points: []SizeResult{{N: 10, AverageSeconds: 4}, {N: 20, AverageSeconds: 0}}}
	fast := Series{Strategy: "fast", Points: []SizeResult{{N: 10, AverageSeconds: 1}, {N: 20, AverageSeconds: 0}}}

	got := Compare([]Series{slow, fast})
	if len(got) != 2 {
		t.Fatalf("expected 2 comparisons, got %d", len(got))
	}
	if got[0].Fastest != 1 || got[0].Speedup != 4 {
		t.Errorf("N=10: fastest %d speedup %v, want 1 and 4", got[0].Fastest, got[0].Speedup)
	}
	if got[1].Speedup != 0 {
		t.Errorf("N=20: zero averages should give speedup 0, got %v", got[1].Speedup)
	}

	single := Compare([]Series{slow})
	if single[0].Speedup != 0 {
		t.Errorf("single series speedup = %v, want 0", single[0].Speedup)
	}
	if Compare(nil) != nil {
		t.Error("Compare(nil) should be nil")
	}
}

func TestAverage(t *testing.T) {
	t.Parallel()
	if Average(nil) != 0 {
		t.Error("Average(nil) should be 0")
	}
	trials := []summation.Trial{
		{Elapsed: time.Second},
		{Elapsed: 2 * time.Second},
		{Elapsed: 6 * time.Second},
	}
	if got := Average(trials); got != 3 {
		t.Errorf("Average = %v, want 3", got)
	}
}

func TestMultiReporter(t *testing.T) {
	t.Parallel()
	a, b := &recordingReporter{}, &recordingReporter{}
	if _, err := RunSweep(context.Background(), []summation.Strategy{fixedStrategy("x", exactSum)}, []int64{5}, 1, MultiReporter{a, b}); err != nil {
		t.Fatalf("RunSweep: %v", err)
	}
	if !slices.Equal(a.events, b.events) || len(a.events) != 4 {
		t.Errorf("reporters diverged: %v vs %v", a.events, b.events)
	}
}
