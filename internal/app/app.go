package app

import (
	"context"
	"errors"
	"io"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel/trace"

	"github.com/agbru/sumbench/internal/cli"
	"github.com/agbru/sumbench/internal/config"
	apperrors "github.com/agbru/sumbench/internal/errors"
	"github.com/agbru/sumbench/internal/logging"
	"github.com/agbru/sumbench/internal/metrics"
	"github.com/agbru/sumbench/internal/orchestration"
	"github.com/agbru/sumbench/internal/ui"
	"github.com/agbru/sumbench/summation"
)

// Application represents the sumbench application instance.
type Application struct {
	Config    config.AppConfig
	Registry  *summation.Registry
	Out       io.Writer
	ErrWriter io.Writer
	// ProfileDir is where --profile output is written.
	ProfileDir string

	logger         *logging.ZerologAdapter
	recorder       *metrics.Recorder
	tracerProvider trace.TracerProvider
	sweepMemory    metrics.SweepMemory
}

// AppOption configures an Application during construction.
type AppOption func(*Application)

// WithRegistry sets the strategies the application can measure.
func WithRegistry(r *summation.Registry) AppOption {
	return func(a *Application) { a.Registry = r }
}

// WithProfileDir sets the directory receiving profiles.
func WithProfileDir(dir string) AppOption {
	return func(a *Application) { a.ProfileDir = dir }
}

// New creates an Application writing results to out and diagnostics to
// errWriter.
func New(out, errWriter io.Writer, opts ...AppOption) *Application {
	a := &Application{
		Config:     config.Default(),
		Out:        out,
		ErrWriter:  errWriter,
		ProfileDir: ".",
		logger:     logging.Nop(),
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.Registry == nil {
		a.Registry = summation.NewDefaultRegistry()
	}
	return a
}

// NewRootCmd builds the command tree: the root command runs the benchmark,
// "version" prints build information and cobra adds "completion".
func (a *Application) NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "sumbench",
		Short: "Compare iterative and closed-form summation of 1..N",
		Long: `sumbench times two ways of summing the integers 1..N: a loop that adds
every term, and the closed form N(N+1)/2. Each strategy is run several times
per input size and the average wall-clock time is reported.`,
		Version:       VersionString(),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ui.InitTheme(a.Config.NoColor)
			if err := a.Config.Finalize(cmd.Flags()); err != nil {
				return err
			}
			return a.Run(cmd.Context())
		},
	}
	root.SetOut(a.Out)
	root.SetErr(a.ErrWriter)
	root.SetVersionTemplate("{{.Version}}\n")
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return apperrors.NewConfigError("%v", err)
	})
	a.Config.BindFlags(root.Flags())

	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			PrintVersion(cmd.OutOrStdout())
		},
	})
	return root
}

// Execute runs the command line args and returns the process exit code.
// Errors are reported on errOut.
func Execute(ctx context.Context, args []string, out, errOut io.Writer, opts ...AppOption) int {
	a := New(out, errOut, opts...)
	root := a.NewRootCmd()
	root.SetArgs(args)
	if err := root.ExecuteContext(ctx); err != nil {
		return apperrors.HandleError(err, errOut, cli.CLIColorProvider{})
	}
	return apperrors.ExitSuccess
}

// Run executes a benchmark with the current configuration. The returned
// error carries the exit status: see apperrors.ExitCodeFor.
func (a *Application) Run(ctx context.Context) error {
	ui.InitTheme(a.Config.NoColor)

	logger, err := logging.NewConsoleLogger(a.ErrWriter, "sumbench", a.Config.LogLevel, a.Config.NoColor)
	if err != nil {
		return apperrors.ValidationError{Field: "log-level", Message: err.Error()}
	}
	a.logger = logger

	tp, shutdownTracing, err := startTracing(a.Config.TraceFile)
	if err != nil {
		return err
	}
	a.tracerProvider = tp
	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			a.logger.Error("flushing traces", err, logging.String("path", a.Config.TraceFile))
		}
	}()

	if a.Config.Profile != "" {
		defer startProfile(a.Config.Profile, a.ProfileDir, a.logger).Stop()
	}

	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	strategies, err := orchestration.SelectStrategies(a.Registry, a.Config.Strategy)
	if err != nil {
		return err
	}
	return a.runBenchmark(ctx, strategies)
}

// sweepError turns a deadline hit while measuring into a TimeoutError.
func (a *Application) sweepError(err error) error {
	if a.Config.Timeout > 0 && errors.Is(err, context.DeadlineExceeded) {
		return apperrors.TimeoutError{Operation: "benchmark", Limit: a.Config.Timeout}
	}
	return err
}
