// This file contains environment variable utilities for configuration override.

package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/pflag"

	apperrors "github.com/agbru/sumbench/internal/errors"
)

// envOverride declares a single environment variable override.
// Each entry maps an env key (without the SUMBENCH_ prefix) to the CLI flag
// it corresponds to and a function that applies the env value.
type envOverride struct {
	envKey string
	flag   string
	apply  func(*AppConfig, string) error
}

// envOverrides is the declarative table of all environment variable overrides.
var envOverrides = []envOverride{
	// Numeric overrides
	{"TRIALS", "trials", func(c *AppConfig, v string) error {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			return err
		}
		c.Trials = parsed
		return nil
	}},
	{"SIZES", "sizes", func(c *AppConfig, v string) error {
		sizes, err := ParseSizes(v)
		if err != nil {
			return err
		}
		c.Sizes = sizes
		return nil
	}},

	// Duration overrides
	{"TIMEOUT", "timeout", func(c *AppConfig, v string) error {
		parsed, err := time.ParseDuration(v)
		if err != nil {
			return err
		}
		c.Timeout = parsed
		return nil
	}},

	// String overrides
	{"STRATEGY", "strategy", stringSetter(func(c *AppConfig) *string { return &c.Strategy })},
	{"PLOT_SCALE", "plot-scale", stringSetter(func(c *AppConfig) *string { return &c.PlotScale })},
	{"JSON", "json", stringSetter(func(c *AppConfig) *string { return &c.JSONFile })},
	{"CSV", "csv", stringSetter(func(c *AppConfig) *string { return &c.CSVFile })},
	{"MARKDOWN", "markdown", stringSetter(func(c *AppConfig) *string { return &c.MarkdownFile })},
	{"METRICS_FILE", "metrics-file", stringSetter(func(c *AppConfig) *string { return &c.MetricsFile })},
	{"PROFILE", "profile", stringSetter(func(c *AppConfig) *string { return &c.Profile })},
	{"GC", "gc", stringSetter(func(c *AppConfig) *string { return &c.GCMode })},
	{"LOG_LEVEL", "log-level", stringSetter(func(c *AppConfig) *string { return &c.LogLevel })},
	{"TRACE", "trace", stringSetter(func(c *AppConfig) *string { return &c.TraceFile })},

	// Boolean overrides
	{"PLOT", "plot", boolSetter(func(c *AppConfig) *bool { return &c.ShowPlot })},
	{"PLOT_TEXT", "plot-text", boolSetter(func(c *AppConfig) *bool { return &c.PlotText })},
	{"QUIET", "quiet", boolSetter(func(c *AppConfig) *bool { return &c.Quiet })},
	{"DETAILS", "details", boolSetter(func(c *AppConfig) *bool { return &c.Details })},
	{"VERBOSE", "verbose", boolSetter(func(c *AppConfig) *bool { return &c.Verbose })},
	{"NO_COLOR", "no-color", boolSetter(func(c *AppConfig) *bool { return &c.NoColor })},
}

func stringSetter(field func(*AppConfig) *string) func(*AppConfig, string) error {
	return func(c *AppConfig, v string) error {
		*field(c) = v
		return nil
	}
}

func boolSetter(field func(*AppConfig) *bool) func(*AppConfig, string) error {
	return func(c *AppConfig, v string) error {
		p := field(c)
		*p = parseBoolEnv(v, *p)
		return nil
	}
}

// parseBoolEnv parses a boolean environment variable value.
// Accepts "true", "1", "yes" as true; "false", "0", "no" as false (case-insensitive).
// Returns defaultVal if the value is not recognized.
func parseBoolEnv(val string, defaultVal bool) bool {
	switch strings.ToLower(val) {
	case "true", "1", "yes":
		return true
	case "false", "0", "no":
		return false
	}
	return defaultVal
}

// isFlagSet reports whether the named flag was explicitly set on the command
// line. A nil FlagSet means no flag was set.
func isFlagSet(fs *pflag.FlagSet, name string) bool {
	return fs != nil && fs.Changed(name)
}

// applyEnvOverrides applies environment variable values to the configuration
// for any flags that were not explicitly set on the command line.
// This implements the priority: CLI flags > Environment variables > Defaults.
// A malformed value is a configuration error rather than being ignored.
func applyEnvOverrides(config *AppConfig, fs *pflag.FlagSet) error {
	for _, o := range envOverrides {
		if isFlagSet(fs, o.flag) {
			continue
		}
		val := os.Getenv(EnvPrefix + o.envKey)
		if val == "" {
			continue
		}
		if err := o.apply(config, val); err != nil {
			return apperrors.NewConfigError("invalid %s%s=%q: %v", EnvPrefix, o.envKey, val, err)
		}
	}
	return nil
}
