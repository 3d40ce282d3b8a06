package metrics

import (
	"runtime"
	"time"
)

// MemorySnapshot is one runtime.MemStats reading, reduced to the counters
// that describe a sweep.
type MemorySnapshot struct {
	TotalAlloc uint64 // cumulative bytes allocated
	Mallocs    uint64 // cumulative heap objects allocated
	HeapAlloc  uint64 // bytes currently in use
	Sys        uint64 // bytes obtained from the OS
	NumGC      uint32
	PauseTotal time.Duration
}

// ReadMemory reads the runtime statistics. It stops the world briefly, so
// call it outside the timed trials.
func ReadMemory() MemorySnapshot {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return MemorySnapshot{
		TotalAlloc: m.TotalAlloc,
		Mallocs:    m.Mallocs,
		HeapAlloc:  m.HeapAlloc,
		Sys:        m.Sys,
		NumGC:      m.NumGC,
		PauseTotal: time.Duration(m.PauseTotalNs),
	}
}

// SweepMemory brackets a sweep with a reading taken just before the first
// trial and one taken after the last.
type SweepMemory struct {
	Before MemorySnapshot
	After  MemorySnapshot
}

// Allocated returns the bytes allocated while the sweep ran.
func (m SweepMemory) Allocated() uint64 { return m.After.TotalAlloc - m.Before.TotalAlloc }

// Allocations returns the number of heap objects allocated during the sweep.
func (m SweepMemory) Allocations() uint64 { return m.After.Mallocs - m.Before.Mallocs }

// GCCycles returns the collections that completed during the sweep.
func (m SweepMemory) GCCycles() uint32 { return m.After.NumGC - m.Before.NumGC }

// GCPause returns the stop-the-world time spent in those collections.
func (m SweepMemory) GCPause() time.Duration { return m.After.PauseTotal - m.Before.PauseTotal }
