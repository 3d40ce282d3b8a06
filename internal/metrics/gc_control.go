package metrics

import (
	"math"
	"runtime"
	"runtime/debug"

	"github.com/rs/zerolog"
)

// GCMode controls the garbage collector while trials are measured.
type GCMode string

const (
	// GCModeOff leaves the collector alone.
	GCModeOff GCMode = "off"
	// GCModeAuto pauses the collector when the largest size is at least
	// GCAutoThreshold.
	GCModeAuto GCMode = "auto"
	// GCModeAggressive collects once before measuring, then pauses the
	// collector for the whole sweep.
	GCModeAggressive GCMode = "aggressive"
)

// GCAutoThreshold is the minimum largest N for auto GC control to activate.
const GCAutoThreshold int64 = 1_000_000

// memoryLimitFactor bounds the heap while the collector is paused, as a
// multiple of the memory obtained from the OS at Begin.
const memoryLimitFactor = 3

// GCController pauses the garbage collector around a sweep so that
// collections do not land inside timed trials.
type GCController struct {
	mode              GCMode
	originalGCPercent int
	active            bool
	logger            zerolog.Logger
	startStats        runtime.MemStats
	endStats          runtime.MemStats
}

// GCStats holds collector activity between Begin and End.
type GCStats struct {
	HeapAlloc    uint64
	TotalAlloc   uint64
	NumGC        uint32
	PauseTotalNs uint64
}

// NewGCController creates a controller for mode and the largest size of the
// run. Unknown modes behave like GCModeOff.
func NewGCController(mode string, maxN int64) *GCController {
	gc := &GCController{mode: GCMode(mode), logger: zerolog.Nop()}
	switch gc.mode {
	case GCModeAggressive:
		gc.active = true
	case GCModeAuto:
		gc.active = maxN >= GCAutoThreshold
	}
	return gc
}

// SetLogger configures the logger for GC control events.
func (gc *GCController) SetLogger(l zerolog.Logger) {
	gc.logger = l
}

// Active reports whether Begin will pause the collector.
func (gc *GCController) Active() bool { return gc.active }

// Begin pauses the collector if the controller is active. A soft memory
// limit stays in place while it is paused.
func (gc *GCController) Begin() {
	if !gc.active {
		return
	}
	if gc.mode == GCModeAggressive {
		runtime.GC()
	}
	runtime.ReadMemStats(&gc.startStats)
	gc.originalGCPercent = debug.SetGCPercent(-1)
	if limit := int64(gc.startStats.Sys) * memoryLimitFactor; limit > 0 {
		debug.SetMemoryLimit(limit)
	}
	gc.logger.Debug().
		Str("mode", string(gc.mode)).
		Uint64("heap_alloc_bytes", gc.startStats.HeapAlloc).
		Msg("gc paused")
}

// End restores the original collector settings and triggers a collection.
func (gc *GCController) End() {
	if !gc.active {
		return
	}
	runtime.ReadMemStats(&gc.endStats)
	debug.SetGCPercent(gc.originalGCPercent)
	debug.SetMemoryLimit(math.MaxInt64)
	runtime.GC()
	stats := gc.Stats()
	gc.logger.Debug().
		Str("mode", string(gc.mode)).
		Uint64("heap_alloc_bytes", stats.HeapAlloc).
		Uint64("total_alloc_bytes", stats.TotalAlloc).
		Uint32("gc_cycles", stats.NumGC).
		Msg("gc resumed")
}

// Stats returns collector activity between Begin and End. It is zero when
// the controller is inactive.
func (gc *GCController) Stats() GCStats {
	return GCStats{
		HeapAlloc:    gc.endStats.HeapAlloc,
		TotalAlloc:   gc.endStats.TotalAlloc - gc.startStats.TotalAlloc,
		NumGC:        gc.endStats.NumGC - gc.startStats.NumGC,
		PauseTotalNs: gc.endStats.PauseTotalNs - gc.startStats.PauseTotalNs,
	}
}
