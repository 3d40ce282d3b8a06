package format

import (
	"fmt"
	"strings"
	"sync"
	"time"
)

// maxETA caps the estimate so a stalled run does not print absurd values.
const maxETA = 24 * time.Hour

// ProgressState tracks the completion fraction of several independent
// tracks (one per strategy) and exposes their mean.
type ProgressState struct {
	mu         sync.Mutex
	progresses []float64
	numTracks  int
}

// NewProgressState creates a ProgressState for numTracks tracks, all at 0.
func NewProgressState(numTracks int) *ProgressState {
	if numTracks < 0 {
		numTracks = 0
	}
	return &ProgressState{progresses: make([]float64, numTracks), numTracks: numTracks}
}

// Update records the progress of one track. Values are clamped to [0, 1]
// and out-of-range indices are ignored.
func (p *ProgressState) Update(index int, value float64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.update(index, value)
}

func (p *ProgressState) update(index int, value float64) {
	if index < 0 || index >= p.numTracks {
		return
	}
	p.progresses[index] = min(max(value, 0), 1)
}

// CalculateAverage returns the mean progress over all tracks.
func (p *ProgressState) CalculateAverage() float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.average()
}

func (p *ProgressState) average() float64 {
	if p.numTracks == 0 {
		return 0
	}
	var total float64
	for _, v := range p.progresses {
		total += v
	}
	return total / float64(p.numTracks)
}

// ProgressWithETA extends ProgressState with a completion-time estimate
// derived from the average progress rate since creation.
type ProgressWithETA struct {
	*ProgressState
	startTime    time.Time
	progressRate float64 // fraction per second
}

// NewProgressWithETA creates a progress tracker with ETA estimation.
func NewProgressWithETA(numTracks int) *ProgressWithETA {
	return &ProgressWithETA{
		ProgressState: NewProgressState(numTracks),
		startTime:     time.Now(),
	}
}

// UpdateWithETA records progress for one track and returns the new average
// progress and the estimated time remaining.
func (p *ProgressWithETA) UpdateWithETA(index int, value float64) (float64, time.Duration) {
	p.mu.Lock()
	p.update(index, value)
	progress := p.average()
	if elapsed := time.Since(p.startTime).Seconds(); elapsed > 0 && progress > 0 {
		p.progressRate = progress / elapsed
	}
	p.mu.Unlock()
	return progress, p.GetETA()
}

// GetETA returns the estimated remaining time, or 0 while no rate is known.
func (p *ProgressWithETA) GetETA() time.Duration {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.progressRate <= 0 {
		return 0
	}
	remaining := 1 - p.average()
	if remaining <= 0 {
		return 0
	}
	seconds := remaining / p.progressRate
	if seconds > maxETA.Seconds() {
		return maxETA
	}
	return time.Duration(seconds * float64(time.Second))
}

// FormatETA renders an estimate compactly: "< 1s", "45s", "2m30s", "1h15m".
func FormatETA(eta time.Duration) string {
	switch {
	case eta <= 0:
		return "calculating..."
	case eta < time.Second:
		return "< 1s"
	case eta < time.Minute:
		return fmt.Sprintf("%ds", int(eta.Seconds()))
	case eta < time.Hour:
		m := int(eta.Minutes())
		if s := int(eta.Seconds()) % 60; s > 0 {
			return fmt.Sprintf("%dm%ds", m, s)
		}
		return fmt.Sprintf("%dm", m)
	default:
		h := int(eta.Hours())
		if m := int(eta.Minutes()) % 60; m > 0 {
			return fmt.Sprintf("%dh%dm", h, m)
		}
		return fmt.Sprintf("%dh", h)
	}
}

// ProgressBar renders a bar of length cells for progress in [0, 1].
func ProgressBar(progress float64, length int) string {
	progress = min(max(progress, 0), 1)
	filled := int(progress * float64(length))
	return strings.Repeat("█", filled) + strings.Repeat("░", length-filled)
}

// FormatProgressBarWithETA renders "[bar]  50.0% ETA: 30s".
func FormatProgressBarWithETA(progress float64, eta time.Duration, width int) string {
	return fmt.Sprintf("[%s] %5.1f%% ETA: %s", ProgressBar(progress, width), min(max(progress, 0), 1)*100, FormatETA(eta))
}
