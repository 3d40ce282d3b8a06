// # Naming Conventions
//
// Functions in this package follow consistent naming patterns based on their behavior:
//
//   - Display* functions write formatted output to an [io.Writer].
//     They handle presentation logic and colorization.
//     Examples: [DisplaySummary], [DisplayMemoryStats], [DisplayConsistency].
//
//   - Format* functions return a formatted string without performing I/O.
//     They are pure functions suitable for composition.
//     Examples: [FormatMapping].
//
//   - Write* functions write data to files on the filesystem.
//     They handle file creation, directory setup, and error handling.
//     Examples: [WriteReports].

package cli

import (
	"context"
	"fmt"
	"io"

	"golang.org/x/sync/errgroup"

	"github.com/agbru/sumbench/internal/report"
	"github.com/agbru/sumbench/internal/ui"
)

// OutputConfig holds the optional report destinations of a run.
type OutputConfig struct {
	JSONFile     string
	CSVFile      string
	MarkdownFile string
	MetricsFile  string
}

// TextfileWriter writes metrics in the Prometheus textfile format.
type TextfileWriter interface {
	WriteTextfile(path string) error
}

// WriteReports writes every configured report concurrently and, once all
// have succeeded, prints one confirmation line per file in a fixed order.
// The first error is returned.
func WriteReports(ctx context.Context, run report.Run, cfg OutputConfig, metrics TextfileWriter, out io.Writer) error {
	type job struct {
		path  string
		write func() error
	}
	var jobs []job
	addReport := func(path string, write func(io.Writer, report.Run) error) {
		if path != "" {
			jobs = append(jobs, job{path, func() error { return report.WriteFile(path, run, write) }})
		}
	}
	addReport(cfg.JSONFile, report.WriteJSON)
	addReport(cfg.CSVFile, report.WriteCSV)
	addReport(cfg.MarkdownFile, report.WriteMarkdown)
	if cfg.MetricsFile != "" && metrics != nil {
		jobs = append(jobs, job{cfg.MetricsFile, func() error { return metrics.WriteTextfile(cfg.MetricsFile) }})
	}
	if len(jobs) == 0 {
		return nil
	}

	g, ctx := errgroup.WithContext(ctx)
	for _, j := range jobs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := j.write(); err != nil {
				return fmt.Errorf("writing %s: %w", j.path, err)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for _, j := range jobs {
		fmt.Fprintf(out, "%s✓ Report saved to: %s%s%s\n", ui.ColorGreen(), ui.ColorCyan(), j.path, ui.ColorReset())
	}
	return nil
}
