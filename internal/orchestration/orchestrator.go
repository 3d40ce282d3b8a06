package orchestration

import (
	"context"
	"fmt"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	apperrors "github.com/agbru/sumbench/internal/errors"
	"github.com/agbru/sumbench/summation"
)

const tracerName = "github.com/agbru/sumbench/internal/orchestration"

// SelectStrategies resolves a strategy selector against a registry. "all"
// returns every registered strategy in registration order; any other value
// must name a registered strategy.
func SelectStrategies(registry *summation.Registry, selector string) ([]summation.Strategy, error) {
	if selector == "all" {
		return registry.All(), nil
	}
	s, err := registry.Get(selector)
	if err != nil {
		return nil, apperrors.ValidationError{
			Field:   "strategy",
			Message: fmt.Sprintf("%v (available: %s, all)", err, strings.Join(registry.List(), ", ")),
		}
	}
	return []summation.Strategy{s}, nil
}

// Average returns the arithmetic mean of the trial durations in seconds.
// RunSweep uses exactly this computation, so callers can recompute an
// average from SizeResult.Trials and get the same value.
func Average(trials []summation.Trial) float64 {
	if len(trials) == 0 {
		return 0
	}
	return totalSeconds(trials) / float64(len(trials))
}

func totalSeconds(trials []summation.Trial) float64 {
	var total float64
	for _, t := range trials {
		total += t.Seconds()
	}
	return total
}

// SweepOption configures RunSweep.
type SweepOption func(*sweepOptions)

type sweepOptions struct {
	tracerProvider trace.TracerProvider
}

// WithTracerProvider records the sweep's spans with tp instead of the
// global provider.
func WithTracerProvider(tp trace.TracerProvider) SweepOption {
	return func(o *sweepOptions) {
		if tp != nil {
			o.tracerProvider = tp
		}
	}
}

// RunSweep measures every strategy at every size, trials times each.
//
// Strategies run one after the other in the given order, and sizes in the
// given order within a strategy, so the first strategy's full sweep
// completes before the second begins. Every event is forwarded to reporter
// (nil is treated as NullProgressReporter). The context is checked before
// each trial; when it is done, RunSweep stops and returns the series that
// completed along with a MeasurementError wrapping the context error.
//
// One span covers the run, with a child span per strategy and a grandchild
// per size carrying the size's average_seconds.
func RunSweep(ctx context.Context, strategies []summation.Strategy, sizes []int64, trials int, reporter ProgressReporter, opts ...SweepOption) ([]Series, error) {
	if trials < 1 {
		return nil, apperrors.ValidationError{Field: "trials", Message: fmt.Sprintf("must be at least 1, got %d", trials)}
	}
	if reporter == nil {
		reporter = NullProgressReporter{}
	}

	o := sweepOptions{tracerProvider: otel.GetTracerProvider()}
	for _, opt := range opts {
		opt(&o)
	}
	tracer := o.tracerProvider.Tracer(tracerName)
	ctx, span := tracer.Start(ctx, "RunSweep", trace.WithAttributes(
		attribute.Int("strategies", len(strategies)),
		attribute.Int64Slice("sizes", sizes),
		attribute.Int("trials", trials),
	))
	defer span.End()

	series := make([]Series, 0, len(strategies))
	for idx, s := range strategies {
		reporter.SweepStarted(SweepInfo{Index: idx, Count: len(strategies), Strategy: s, Sizes: sizes, Trials: trials})
		sr, err := sweepStrategy(ctx, tracer, s, sizes, trials, reporter)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			return series, err
		}
		series = append(series, sr)
		reporter.SeriesCompleted(sr)
	}
	return series, nil
}

func sweepStrategy(ctx context.Context, tracer trace.Tracer, s summation.Strategy, sizes []int64, trials int, reporter ProgressReporter) (Series, error) {
	ctx, span := tracer.Start(ctx, "sweep "+s.Name(), trace.WithAttributes(attribute.String("strategy", s.Name())))
	defer span.End()

	sr := Series{Strategy: s.Name(), Label: s.Label(), Points: make([]SizeResult, 0, len(sizes))}
	for _, n := range sizes {
		res, err := measureSize(ctx, tracer, s, n, trials, reporter)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			return sr, err
		}
		sr.Points = append(sr.Points, res)
		reporter.SizeCompleted(res)
	}
	return sr, nil
}

func measureSize(ctx context.Context, tracer trace.Tracer, s summation.Strategy, n int64, trials int, reporter ProgressReporter) (SizeResult, error) {
	_, span := tracer.Start(ctx, "measure", trace.WithAttributes(
		attribute.String("strategy", s.Name()),
		attribute.Int64("n", n),
	))
	defer span.End()

	res := SizeResult{N: n, Trials: make([]summation.Trial, 0, trials)}
	for range trials {
		if err := ctx.Err(); err != nil {
			return res, apperrors.MeasurementError{Strategy: s.Name(), N: n, Cause: err}
		}
		trial := s.Run(n)
		res.Trials = append(res.Trials, trial)
		reporter.TrialCompleted(n, trial)
	}
	res.TotalSeconds = totalSeconds(res.Trials)
	res.AverageSeconds = res.TotalSeconds / float64(len(res.Trials))
	span.SetAttributes(attribute.Float64("average_seconds", res.AverageSeconds))
	return res, nil
}

// VerifyConsistency checks that every series computed the same sum as the
// first series at every size they share. The first disagreement is returned
// as an apperrors.MismatchError.
func VerifyConsistency(series []Series) error {
	if len(series) < 2 {
		return nil
	}
	ref := series[0]
	refByN := make(map[int64]summation.Sum, len(ref.Points))
	for _, p := range ref.Points {
		refByN[p.N] = p.Sum()
	}
	for _, other := range series[1:] {
		for _, p := range other.Points {
			want, ok := refByN[p.N]
			if !ok {
				continue
			}
			for _, trial := range p.Trials {
				if !trial.Value.Equal(want) {
					return apperrors.MismatchError{
						N:            p.N,
						Reference:    ref.Strategy,
						ReferenceSum: want.String(),
						Strategy:     other.Strategy,
						Sum:          trial.Value.String(),
					}
				}
			}
		}
	}
	return nil
}

// Comparison summarizes all series at one input size.
type Comparison struct {
	N int64
	// Averages holds one average per series, in series order. A series that
	// did not measure N has a zero entry and is ignored for ranking.
	Averages []float64
	// Fastest is the index of the series with the lowest average.
	Fastest int
	// Speedup is the slowest average divided by the fastest one, or 0 when
	// the fastest average is zero or fewer than two series measured N.
	Speedup float64
}

// Compare builds one Comparison per size of the first series.
func Compare(series []Series) []Comparison {
	if len(series) == 0 {
		return nil
	}
	out := make([]Comparison, 0, len(series[0].Points))
	for _, p := range series[0].Points {
		c := Comparison{N: p.N, Averages: make([]float64, len(series))}
		measured := 0
		slowest := 0.0
		for i, s := range series {
			avg, ok := averageAt(s, p.N)
			if !ok {
				continue
			}
			c.Averages[i] = avg
			if measured == 0 || avg < c.Averages[c.Fastest] {
				c.Fastest = i
			}
			slowest = max(slowest, avg)
			measured++
		}
		if fastest := c.Averages[c.Fastest]; measured > 1 && fastest > 0 {
			c.Speedup = slowest / fastest
		}
		out = append(out, c)
	}
	return out
}

func averageAt(s Series, n int64) (float64, bool) {
	for _, p := range s.Points {
		if p.N == n {
			return p.AverageSeconds, true
		}
	}
	return 0, false
}
