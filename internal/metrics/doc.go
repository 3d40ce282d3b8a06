// Package metrics collects runtime memory statistics and exposes benchmark
// timings as Prometheus metrics.
package metrics
