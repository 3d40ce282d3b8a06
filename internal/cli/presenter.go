package cli

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/briandowns/spinner"

	apperrors "github.com/agbru/sumbench/internal/errors"
	"github.com/agbru/sumbench/internal/format"
	"github.com/agbru/sumbench/internal/metrics"
	"github.com/agbru/sumbench/internal/orchestration"
	"github.com/agbru/sumbench/internal/ui"
	"github.com/agbru/sumbench/summation"
)

// CLIProgressReporter prints one line per trial, the average per size and
// the (size, average) mapping after each strategy.
type CLIProgressReporter struct {
	Out io.Writer
}

var _ orchestration.ProgressReporter = CLIProgressReporter{}

func (CLIProgressReporter) SweepStarted(orchestration.SweepInfo) {}

// TrialCompleted prints "Sum is <value> required <seconds> seconds".
func (r CLIProgressReporter) TrialCompleted(_ int64, trial summation.Trial) {
	fmt.Fprintf(r.Out, "Sum is %s required %s seconds\n", trial.Value, format.FormatSeconds(trial.Seconds()))
}

// SizeCompleted prints "Avg: <average>".
func (r CLIProgressReporter) SizeCompleted(result orchestration.SizeResult) {
	fmt.Fprintf(r.Out, "Avg: %s\n", summation.FormatFloat(result.AverageSeconds))
}

// SeriesCompleted prints the separator and the series mapping.
func (r CLIProgressReporter) SeriesCompleted(series orchestration.Series) {
	fmt.Fprintln(r.Out, SeparatorLine)
	fmt.Fprintln(r.Out, FormatMapping(series))
}

// FormatMapping renders a series as "{10000: 0.000123, 100000: 0.00121}".
func FormatMapping(series orchestration.Series) string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, p := range series.Averages() {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%d: %s", p.N, summation.FormatFloat(p.Seconds))
	}
	sb.WriteByte('}')
	return sb.String()
}

// SpinnerProgressReporter shows a spinner with an overall progress bar and
// ETA instead of per-trial lines. Call Stop once the sweep returns, whether
// or not it succeeded.
type SpinnerProgressReporter struct {
	spinner    Spinner
	aggregator *orchestration.ProgressAggregator
	label      string
	started    bool
}

var _ orchestration.ProgressReporter = (*SpinnerProgressReporter)(nil)

// NewSpinnerProgressReporter creates a quiet-mode reporter drawing to out
// for a run of numStrategies strategies.
func NewSpinnerProgressReporter(out io.Writer, numStrategies int) *SpinnerProgressReporter {
	return &SpinnerProgressReporter{
		spinner:    newSpinner(spinner.WithWriter(out)),
		aggregator: orchestration.NewProgressAggregator(max(numStrategies, 1)),
	}
}

func (r *SpinnerProgressReporter) SweepStarted(info orchestration.SweepInfo) {
	r.aggregator.BeginSweep(info)
	r.label = info.Strategy.Label()
	if r.aggregator.IsMultiStrategy() {
		r.label = fmt.Sprintf("[%d/%d] %s", info.Index+1, r.aggregator.NumStrategies(), r.label)
	}
	r.spinner.UpdateSuffix(fmt.Sprintf(" %s %s", r.label, format.FormatProgressBarWithETA(r.aggregator.CalculateAverage(), r.aggregator.GetETA(), ProgressBarWidth)))
	if !r.started {
		r.spinner.Start()
		r.started = true
	}
}

func (r *SpinnerProgressReporter) TrialCompleted(_ int64, trial summation.Trial) {
	ap := r.aggregator.TrialDone(trial)
	r.spinner.UpdateSuffix(fmt.Sprintf(" %s %s", r.label, format.FormatProgressBarWithETA(ap.AverageProgress, ap.ETA, ProgressBarWidth)))
}

func (r *SpinnerProgressReporter) SizeCompleted(orchestration.SizeResult) {}

func (r *SpinnerProgressReporter) SeriesCompleted(orchestration.Series) {}

// Stop halts the spinner if it was started.
func (r *SpinnerProgressReporter) Stop() {
	if r.started {
		r.spinner.Stop()
		r.started = false
	}
}

// DisplaySummary prints one mapping line per series, used in quiet mode.
func DisplaySummary(series []orchestration.Series, out io.Writer) {
	for _, s := range series {
		fmt.Fprintf(out, "%s%s%s: %s\n", ui.ColorBlue(), s.Label, ui.ColorReset(), FormatMapping(s))
	}
}

// CLIResultPresenter implements orchestration.ResultPresenter for CLI output.
type CLIResultPresenter struct{}

var _ orchestration.ResultPresenter = CLIResultPresenter{}

// PresentComparisonTable displays average durations per size for every
// series, the fastest strategy and its speedup over the slowest.
// Uses manual padding to correctly handle ANSI color codes.
func (CLIResultPresenter) PresentComparisonTable(comparisons []orchestration.Comparison, series []orchestration.Series, out io.Writer) {
	fmt.Fprintf(out, "\n--- Comparison Summary ---\n")

	headers := []string{"N"}
	for _, s := range series {
		headers = append(headers, s.Label)
	}
	headers = append(headers, "Fastest", "Speedup")

	rows := make([][]string, 0, len(comparisons))
	for _, c := range comparisons {
		row := []string{format.FormatNumberString(fmt.Sprint(c.N))}
		for _, avg := range c.Averages {
			row = append(row, summation.FormatFloat(avg)+"s")
		}
		speedup := "-"
		if c.Speedup > 0 {
			speedup = fmt.Sprintf("%.1fx", c.Speedup)
		}
		row = append(row, series[c.Fastest].Label, speedup)
		rows = append(rows, row)
	}

	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			widths[i] = max(widths[i], len(cell))
		}
	}

	for i, h := range headers {
		fmt.Fprintf(out, "%s%s%s%s   ", ui.ColorUnderline(), h, ui.ColorReset(), padRight("", widths[i]-len(h)))
	}
	fmt.Fprintln(out)

	fastestCol := len(headers) - 2
	for _, row := range rows {
		for i, cell := range row {
			color := ""
			switch {
			case i == 0:
				color = ui.ColorBlue()
			case i == fastestCol:
				color = ui.ColorGreen()
			case i == fastestCol+1:
				color = ui.ColorYellow()
			}
			fmt.Fprintf(out, "%s%s%s%s   ", color, cell, ui.ColorReset(), padRight("", widths[i]-len(cell)))
		}
		fmt.Fprintln(out)
	}
}

// padRight returns s followed by length spaces.
func padRight(s string, length int) string {
	if length <= 0 {
		return s
	}
	return s + fmt.Sprintf("%*s", length, "")
}

// DisplayConsistency reports whether all strategies agreed on every sum.
func DisplayConsistency(err error, out io.Writer) {
	if err == nil {
		fmt.Fprintf(out, "\nGlobal Status: %sSuccess%s. All strategies computed the same sums.\n", ui.ColorGreen(), ui.ColorReset())
		return
	}
	fmt.Fprintf(out, "\nGlobal Status: %sCRITICAL ERROR%s! %v\n", ui.ColorRed(), ui.ColorReset(), err)
}

// DisplaySweepTime prints the wall-clock duration of the whole sweep.
func DisplaySweepTime(d time.Duration, out io.Writer) {
	fmt.Fprintf(out, "Sweep duration: %s%s%s\n", ui.ColorCyan(), format.FormatDuration(d), ui.ColorReset())
}

// CLIColorProvider supplies the active theme's colors to error handling.
type CLIColorProvider struct{}

var _ apperrors.ColorProvider = CLIColorProvider{}

func (CLIColorProvider) Red() string    { return ui.ColorRed() }
func (CLIColorProvider) Yellow() string { return ui.ColorYellow() }
func (CLIColorProvider) Reset() string  { return ui.ColorReset() }

// DisplayMemoryStats shows what the sweep did to the heap, followed by the
// heap size once it finished.
func DisplayMemoryStats(m metrics.SweepMemory, out io.Writer) {
	fmt.Fprintf(out, "\nMemory Stats (sweep):\n")
	fmt.Fprintf(out, "  Allocated:       %s in %s objects\n", format.FormatBytes(m.Allocated()), format.FormatNumberString(fmt.Sprint(m.Allocations())))
	fmt.Fprintf(out, "  GC cycles:       %d\n", m.GCCycles())
	fmt.Fprintf(out, "  GC pause total:  %s\n", format.FormatDuration(m.GCPause()))
	fmt.Fprintf(out, "  Heap in use:     %s\n", format.FormatBytes(m.After.HeapAlloc))
	fmt.Fprintf(out, "  OS reserved:     %s\n", format.FormatBytes(m.After.Sys))
}
