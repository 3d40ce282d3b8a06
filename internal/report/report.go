// Package report exports a finished benchmark run as JSON, CSV or a
// Markdown comparison table.
package report

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/agbru/sumbench/internal/orchestration"
	"github.com/agbru/sumbench/internal/sysmon"
	"github.com/agbru/sumbench/summation"
)

// Run is the exported record of one benchmark invocation.
type Run struct {
	ID          uuid.UUID     `json:"id"`
	StartedAt   time.Time     `json:"started_at"`
	Trials      int           `json:"trials"`
	Sizes       []int64       `json:"sizes"`
	Host        sysmon.Host   `json:"host"`
	Consistent  bool          `json:"consistent"`
	Series      []SeriesEntry `json:"series"`
	Comparisons []Comparison  `json:"comparisons"`
}

// SeriesEntry is the exported form of an orchestration.Series.
type SeriesEntry struct {
	Strategy string       `json:"strategy"`
	Label    string       `json:"label"`
	Points   []PointEntry `json:"points"`
}

// PointEntry is the exported form of an orchestration.SizeResult.
type PointEntry struct {
	N              int64     `json:"n"`
	Sum            string    `json:"sum"`
	TrialSeconds   []float64 `json:"trial_seconds"`
	AverageSeconds float64   `json:"average_seconds"`
}

// Comparison is the exported form of an orchestration.Comparison.
type Comparison struct {
	N       int64   `json:"n"`
	Fastest string  `json:"fastest"`
	Speedup float64 `json:"speedup"`
}

// NewRun builds a Run from measured series. Each call gets a fresh ID.
func NewRun(startedAt time.Time, trials int, sizes []int64, host sysmon.Host, series []orchestration.Series) Run {
	r := Run{
		ID:         uuid.New(),
		StartedAt:  startedAt.UTC(),
		Trials:     trials,
		Sizes:      sizes,
		Host:       host,
		Consistent: orchestration.VerifyConsistency(series) == nil,
	}
	for _, s := range series {
		entry := SeriesEntry{Strategy: s.Strategy, Label: s.Label}
		for _, p := range s.Points {
			secs := make([]float64, len(p.Trials))
			for i, t := range p.Trials {
				secs[i] = t.Seconds()
			}
			entry.Points = append(entry.Points, PointEntry{
				N:              p.N,
				Sum:            p.Sum().String(),
				TrialSeconds:   secs,
				AverageSeconds: p.AverageSeconds,
			})
		}
		r.Series = append(r.Series, entry)
	}
	for _, c := range orchestration.Compare(series) {
		r.Comparisons = append(r.Comparisons, Comparison{
			N:       c.N,
			Fastest: series[c.Fastest].Strategy,
			Speedup: c.Speedup,
		})
	}
	return r
}

// WriteJSON writes the run as indented JSON.
func WriteJSON(w io.Writer, r Run) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(r)
}

// WriteCSV writes one row per trial: run id, strategy, n, trial index,
// seconds, sum, and the size's average.
func WriteCSV(w io.Writer, r Run) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"run_id", "strategy", "n", "trial", "seconds", "sum", "average_seconds"}); err != nil {
		return err
	}
	id := r.ID.String()
	for _, s := range r.Series {
		for _, p := range s.Points {
			for i, secs := range p.TrialSeconds {
				row := []string{
					id,
					s.Strategy,
					strconv.FormatInt(p.N, 10),
					strconv.Itoa(i + 1),
					strconv.FormatFloat(secs, 'g', -1, 64),
					p.Sum,
					strconv.FormatFloat(p.AverageSeconds, 'g', -1, 64),
				}
				if err := cw.Write(row); err != nil {
					return err
				}
			}
		}
	}
	cw.Flush()

	return cw.Error()
}

// WriteMarkdown writes a comparison table of average durations per size.
func WriteMarkdown(w io.Writer, r Run) error {
	if len(r.Series) == 0 {
		return fmt.Errorf("no results to report")
	}

	fmt.Fprintln(w, "## Summation Benchmark Results")
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Run `%s`, %d trials per size, %s/%s, %s.\n", r.ID, r.Trials, r.Host.OS, r.Host.Arch, r.Host.GoVersion)
	fmt.Fprintln(w)

	if r.Consistent {
		fmt.Fprintln(w, "Sums: **all match**")
	} else {
		fmt.Fprintln(w, "Sums: **MISMATCH**")
	}

	fmt.Fprintln(w)

	fmt.Fprint(w, "| N |")
	for _, s := range r.Series {
		fmt.Fprintf(w, " %s |", s.Label)
	}
	fmt.Fprintln(w, " Fastest | Speedup |")

	fmt.Fprint(w, "|---|")
	for range r.Series {
		fmt.Fprint(w, "---|")
	}
	fmt.Fprintln(w, "---|---|")

	for i, c := range r.Comparisons {
		fmt.Fprintf(w, "| %d |", c.N)
		for _, s := range r.Series {
			if i < len(s.Points) {
				fmt.Fprintf(w, " %ss |", summation.FormatFloat(s.Points[i].AverageSeconds))
			} else {
				fmt.Fprint(w, " - |")
			}
		}
		speedup := "-"
		if c.Speedup > 0 {
			speedup = fmt.Sprintf("%.2fx", c.Speedup)
		}
		fmt.Fprintf(w, " %s | %s |\n", c.Fastest, speedup)
	}

	return nil
}

// WriteFile creates path (and its directory) and writes the run with write.
func WriteFile(path string, r Run, write func(io.Writer, Run) error) (err error) {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create report file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	return write(f, r)
}
