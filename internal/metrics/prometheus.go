package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/agbru/sumbench/internal/orchestration"
	"github.com/agbru/sumbench/summation"
)

const namespace = "sumbench"

// Recorder turns sweep events into Prometheus metrics. It implements
// orchestration.ProgressReporter so it can be attached to a sweep next to
// the console reporter.
type Recorder struct {
	registry       *prometheus.Registry
	trialSeconds   *prometheus.HistogramVec
	averageSeconds *prometheus.GaugeVec
	trialsTotal    *prometheus.CounterVec
	sweepAllocated prometheus.Gauge
	sweepGCCycles  prometheus.Gauge

	current string
}

var _ orchestration.ProgressReporter = (*Recorder)(nil)

// NewRecorder creates a Recorder with its own registry.
func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		trialSeconds: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "trial_duration_seconds",
			Help:      "Wall-clock duration of a single summation trial.",
			Buckets:   prometheus.ExponentialBuckets(1e-7, 10, 9),
		}, []string{"strategy", "n"}),
		averageSeconds: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "average_duration_seconds",
			Help:      "Average trial duration per strategy and input size.",
		}, []string{"strategy", "n"}),
		trialsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "trials_total",
			Help:      "Number of trials run per strategy.",
		}, []string{"strategy"}),
		sweepAllocated: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "sweep_allocated_bytes",
			Help:      "Bytes allocated while the sweep ran.",
		}),
		sweepGCCycles: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "sweep_gc_cycles",
			Help:      "Garbage collections completed while the sweep ran.",
		}),
	}
	r.registry.MustRegister(r.trialSeconds, r.averageSeconds, r.trialsTotal, r.sweepAllocated, r.sweepGCCycles)
	return r
}

// Registry returns the registry holding the recorder's metrics.
func (r *Recorder) Registry() *prometheus.Registry { return r.registry }

func (r *Recorder) SweepStarted(info orchestration.SweepInfo) {
	r.current = info.Strategy.Name()
}

func (r *Recorder) TrialCompleted(n int64, trial summation.Trial) {
	r.trialSeconds.WithLabelValues(r.current, strconv.FormatInt(n, 10)).Observe(trial.Seconds())
	r.trialsTotal.WithLabelValues(r.current).Inc()
}

func (r *Recorder) SizeCompleted(result orchestration.SizeResult) {
	r.averageSeconds.WithLabelValues(r.current, strconv.FormatInt(result.N, 10)).Set(result.AverageSeconds)
}

func (r *Recorder) SeriesCompleted(orchestration.Series) {}

// ObserveSweepMemory records the heap activity of a finished sweep.
func (r *Recorder) ObserveSweepMemory(m SweepMemory) {
	r.sweepAllocated.Set(float64(m.Allocated()))
	r.sweepGCCycles.Set(float64(m.GCCycles()))
}

// WriteTextfile writes the metrics in the node_exporter textfile format.
func (r *Recorder) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, r.registry)
}
