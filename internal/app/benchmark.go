package app

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/agbru/sumbench/internal/cli"
	"github.com/agbru/sumbench/internal/logging"
	"github.com/agbru/sumbench/internal/metrics"
	"github.com/agbru/sumbench/internal/orchestration"
	"github.com/agbru/sumbench/internal/report"
	"github.com/agbru/sumbench/internal/sysmon"
	"github.com/agbru/sumbench/internal/tui"
	"github.com/agbru/sumbench/summation"
)

// Dimensions of the chart printed by --plot-text.
const (
	staticPlotWidth  = 72
	staticPlotHeight = 18
)

// runBenchmark measures the strategies, prints the results and runs the
// optional comparison, exports and plot. A sum mismatch is returned after
// everything else has been shown.
func (a *Application) runBenchmark(ctx context.Context, strategies []summation.Strategy) error {
	cfg := a.Config
	out := a.Out
	startedAt := time.Now()
	host := sysmon.DescribeHost()

	// The banner is opt-in so that the default output is only the trial lines.
	if cfg.Verbose || cfg.Details {
		cli.PrintExecutionConfig(cfg, host, sysmon.Sample(), out)
		cli.PrintExecutionMode(strategies, out)
		fmt.Fprintln(out)
	}

	sweepStart := time.Now()
	series, err := a.measure(ctx, strategies)
	sweepTime := time.Since(sweepStart)
	if err != nil {
		return a.sweepError(err)
	}

	if cfg.Quiet {
		cli.DisplaySummary(series, out)
	}

	consistency := orchestration.VerifyConsistency(series)
	if consistency != nil {
		a.logger.Error("strategies disagree", consistency)
	}
	if cfg.Details {
		cli.CLIResultPresenter{}.PresentComparisonTable(orchestration.Compare(series), series, out)
		cli.DisplayConsistency(consistency, out)
		cli.DisplaySweepTime(sweepTime, out)
	}
	if cfg.Verbose {
		cli.DisplayMemoryStats(a.sweepMemory, out)
	}

	run := report.NewRun(startedAt, cfg.Trials, cfg.Sizes, host, series)
	outputCfg := cli.OutputConfig{
		JSONFile:     cfg.JSONFile,
		CSVFile:      cfg.CSVFile,
		MarkdownFile: cfg.MarkdownFile,
		MetricsFile:  cfg.MetricsFile,
	}
	if err := cli.WriteReports(ctx, run, outputCfg, a.recorder, out); err != nil {
		return err
	}
	for _, path := range []string{cfg.JSONFile, cfg.CSVFile, cfg.MarkdownFile, cfg.MetricsFile} {
		if path != "" {
			a.logger.Debug("report written", logging.String("path", path))
		}
	}
	a.logger.Debug("run complete", logging.String("run_id", run.ID.String()))

	if err := a.plot(ctx, series); err != nil {
		return err
	}
	return consistency
}

// measure runs the sweep with the configured reporter, GC control and
// timeout. Metrics are recorded alongside the console output.
func (a *Application) measure(ctx context.Context, strategies []summation.Strategy) ([]orchestration.Series, error) {
	cfg := a.Config
	if cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
	}

	a.recorder = metrics.NewRecorder()
	reporter := orchestration.MultiReporter{cli.CLIProgressReporter{Out: a.Out}, a.recorder}
	if cfg.Quiet {
		spinner := cli.NewSpinnerProgressReporter(a.ErrWriter, len(strategies))
		defer spinner.Stop()
		reporter[0] = spinner
	}

	gc := metrics.NewGCController(cfg.GCMode, slices.Max(cfg.Sizes))
	gc.SetLogger(a.logger.Zerolog())
	gc.Begin()
	defer gc.End()

	a.logger.Info("sweep started",
		logging.Int("strategies", len(strategies)),
		logging.Int("sizes", len(cfg.Sizes)),
		logging.Int("trials", cfg.Trials))
	start := time.Now()
	a.sweepMemory.Before = metrics.ReadMemory()
	series, err := orchestration.RunSweep(ctx, strategies, cfg.Sizes, cfg.Trials, reporter,
		orchestration.WithTracerProvider(a.tracerProvider))
	a.sweepMemory.After = metrics.ReadMemory()
	a.recorder.ObserveSweepMemory(a.sweepMemory)
	if err != nil {
		a.logger.Error("sweep interrupted", err, logging.Int("completed_series", len(series)))
		return series, err
	}
	a.logger.Info("sweep finished",
		logging.Duration("elapsed", time.Since(start)),
		logging.Uint64("allocated_bytes", a.sweepMemory.Allocated()))
	return series, nil
}

// plot shows the chart when requested. --plot-text wins over --plot.
func (a *Application) plot(ctx context.Context, series []orchestration.Series) error {
	if !a.Config.ShowPlot && !a.Config.PlotText {
		return nil
	}
	scale, err := tui.ParseScale(a.Config.PlotScale)
	if err != nil {
		return err
	}
	if a.Config.PlotText {
		fmt.Fprintln(a.Out, tui.RenderStatic(series, scale, staticPlotWidth, staticPlotHeight))
		return nil
	}
	return tui.Run(ctx, series, scale, Version)
}
