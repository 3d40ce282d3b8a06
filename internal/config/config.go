// Package config defines the benchmark configuration, binds it to command-line
// flags and applies SUMBENCH_* environment overrides.
package config

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/pflag"

	apperrors "github.com/agbru/sumbench/internal/errors"
	"github.com/agbru/sumbench/summation"
)

// EnvPrefix is prepended to every environment variable read by the config.
const EnvPrefix = "SUMBENCH_"

// StrategyAll selects every registered strategy.
const StrategyAll = "all"

// Plot scales.
const (
	ScaleLinear = "linear"
	ScaleLog    = "log"
)

// Defaults used when neither a flag nor an environment variable is set.
const (
	DefaultTrials   = 5
	DefaultLogLevel = "warn"
)

// DefaultSizes returns the input sizes swept when none are configured.
func DefaultSizes() []int64 {
	return []int64{10_000, 100_000, 1_000_000}
}

// GCModes and ProfileModes list the accepted values of --gc and --profile.
var (
	GCModes      = []string{"off", "auto", "aggressive"}
	ProfileModes = []string{"", "cpu", "mem", "block", "mutex", "trace"}
)

// AppConfig aggregates the application's configuration parameters.
type AppConfig struct {
	// Trials is the number of timed runs per (strategy, size).
	Trials int
	// Sizes are the input sizes, swept in the given order.
	Sizes []int64
	// Strategy is a registered strategy name or "all".
	Strategy string
	// ShowPlot opens the interactive chart once both series are complete.
	ShowPlot bool
	// PlotScale is the y-axis scale of the chart: "linear" or "log".
	PlotScale string
	// PlotText renders the chart once to stdout instead of interactively.
	PlotText bool
	// Timeout bounds the whole sweep; zero means no limit.
	Timeout time.Duration
	// Quiet replaces per-trial lines with a progress spinner.
	Quiet bool
	// Details prints a comparison table after the sweep.
	Details bool
	// Verbose prints memory statistics after the run.
	Verbose bool
	// NoColor disables ANSI colors.
	NoColor bool
	// JSONFile, CSVFile and MarkdownFile name optional report files.
	JSONFile     string
	CSVFile      string
	MarkdownFile string
	// MetricsFile names an optional Prometheus textfile.
	MetricsFile string
	// Profile selects a pprof profile mode; empty disables profiling.
	Profile string
	// GCMode controls the garbage collector while measuring.
	GCMode string
	// LogLevel is the zerolog level name for diagnostic logging.
	LogLevel string
	// TraceFile receives the sweep's OpenTelemetry spans as JSON; empty
	// disables tracing.
	TraceFile string
}

// Default returns the configuration used when nothing is overridden.
func Default() AppConfig {
	return AppConfig{
		Trials:    DefaultTrials,
		Sizes:     DefaultSizes(),
		Strategy:  StrategyAll,
		PlotScale: ScaleLinear,
		GCMode:    GCModes[0],
		LogLevel:  DefaultLogLevel,
	}
}

// BindFlags registers every configuration flag on fs, using the current
// values of c as defaults.
func (c *AppConfig) BindFlags(fs *pflag.FlagSet) {
	fs.IntVarP(&c.Trials, "trials", "t", c.Trials, "Number of timed trials per size.")
	fs.Int64SliceVarP(&c.Sizes, "sizes", "n", c.Sizes, "Comma-separated input sizes N, swept in order.")
	fs.StringVarP(&c.Strategy, "strategy", "s", c.Strategy, "Strategy to run: iterative, closed-form or all.")
	fs.BoolVar(&c.ShowPlot, "plot", c.ShowPlot, "Show an interactive chart of the averages.")
	fs.StringVar(&c.PlotScale, "plot-scale", c.PlotScale, "Chart y-axis scale: linear or log.")
	fs.BoolVar(&c.PlotText, "plot-text", c.PlotText, "Print the chart to stdout instead of opening the viewer.")
	fs.DurationVar(&c.Timeout, "timeout", c.Timeout, "Maximum duration of the sweep (0 for none).")
	fs.BoolVarP(&c.Quiet, "quiet", "q", c.Quiet, "Show a progress spinner instead of per-trial lines.")
	fs.BoolVarP(&c.Details, "details", "d", c.Details, "Print a comparison table after the sweep.")
	fs.BoolVarP(&c.Verbose, "verbose", "v", c.Verbose, "Print memory statistics after the run.")
	fs.BoolVar(&c.NoColor, "no-color", c.NoColor, "Disable colored output.")
	fs.StringVar(&c.JSONFile, "json", c.JSONFile, "Write a JSON report to this file.")
	fs.StringVar(&c.CSVFile, "csv", c.CSVFile, "Write a CSV report to this file.")
	fs.StringVar(&c.MarkdownFile, "markdown", c.MarkdownFile, "Write a Markdown report to this file.")
	fs.StringVar(&c.MetricsFile, "metrics-file", c.MetricsFile, "Write Prometheus metrics in textfile format.")
	fs.StringVar(&c.Profile, "profile", c.Profile, "Enable profiling: cpu, mem, block, mutex or trace.")
	fs.StringVar(&c.GCMode, "gc", c.GCMode, "Garbage collector mode while measuring: off, auto or aggressive.")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "Diagnostic log level: debug, info, warn or error.")
	fs.StringVar(&c.TraceFile, "trace", c.TraceFile, "Write OpenTelemetry spans of the sweep to this file as JSON.")
}

// Finalize applies environment overrides for flags left unset on fs and
// validates the result.
func (c *AppConfig) Finalize(fs *pflag.FlagSet) error {
	if err := applyEnvOverrides(c, fs); err != nil {
		return err
	}
	return c.Validate()
}

// Validate checks the configuration for semantic errors.
func (c AppConfig) Validate() error {
	if c.Trials < 1 {
		return apperrors.ValidationError{Field: "trials", Message: fmt.Sprintf("must be at least 1, got %d", c.Trials)}
	}
	if len(c.Sizes) == 0 {
		return apperrors.ValidationError{Field: "sizes", Message: "at least one size is required"}
	}
	for _, n := range c.Sizes {
		if n < 1 || n > summation.MaxN {
			return apperrors.ValidationError{
				Field:   "sizes",
				Message: fmt.Sprintf("size %d is outside [1, %d]", n, summation.MaxN),
			}
		}
	}
	// Strategy names are resolved against the application's registry when
	// the run starts.
	if strings.TrimSpace(c.Strategy) == "" {
		return apperrors.ValidationError{Field: "strategy", Message: "must not be empty"}
	}
	if c.PlotScale != ScaleLinear && c.PlotScale != ScaleLog {
		return apperrors.ValidationError{Field: "plot-scale", Message: fmt.Sprintf("unknown scale %q (want linear or log)", c.PlotScale)}
	}
	if !slices.Contains(GCModes, c.GCMode) {
		return apperrors.ValidationError{Field: "gc", Message: fmt.Sprintf("unknown mode %q (want %s)", c.GCMode, strings.Join(GCModes, ", "))}
	}
	if !slices.Contains(ProfileModes, c.Profile) {
		return apperrors.ValidationError{Field: "profile", Message: fmt.Sprintf("unknown mode %q", c.Profile)}
	}
	if c.Timeout < 0 {
		return apperrors.ValidationError{Field: "timeout", Message: "must not be negative"}
	}
	return nil
}

// ParseSizes parses a comma-separated list of sizes such as "10000,100000".
func ParseSizes(s string) ([]int64, error) {
	var sizes []int64
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		n, err := strconv.ParseInt(strings.ReplaceAll(part, "_", ""), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid size %q: %w", part, err)
		}
		sizes = append(sizes, n)
	}
	if len(sizes) == 0 {
		return nil, fmt.Errorf("no sizes in %q", s)
	}
	return sizes, nil
}
