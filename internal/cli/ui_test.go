package cli

import (
	"bytes"
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/briandowns/spinner"

	"github.com/agbru/sumbench/internal/orchestration"
	"github.com/agbru/sumbench/summation"
)

// MockSpinner for testing
type MockSpinner struct {
	mu       sync.Mutex
	started  bool
	stopped  bool
	suffixes []string
}

func (m *MockSpinner) Start() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.started = true
}

func (m *MockSpinner) Stop() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stopped = true
}

func (m *MockSpinner) UpdateSuffix(suffix string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.suffixes = append(m.suffixes, suffix)
}

func TestRealSpinner(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	s := spinner.New(spinner.CharSets[11], 10*time.Millisecond, spinner.WithWriter(&buf))
	rs := &realSpinner{s}

	// Just verify these methods don't panic
	rs.Start()
	rs.UpdateSuffix(" test")
	rs.Stop()
}

// The spinner factory is a package variable, so these tests do not run in
// parallel with each other.
func TestSpinnerProgressReporter(t *testing.T) {
	originalNewSpinner := newSpinner
	defer func() { newSpinner = originalNewSpinner }()

	mockS := &MockSpinner{}
	newSpinner = func(options ...spinner.Option) Spinner {
		return mockS
	}

	reporter := NewSpinnerProgressReporter(&bytes.Buffer{}, 2)
	_, err := orchestration.RunSweep(context.Background(), summation.NewDefaultRegistry().All(), []int64{10, 100}, 2, reporter)
	reporter.Stop()
	if err != nil {
		t.Fatalf("RunSweep: %v", err)
	}

	if !mockS.started {
		t.Error("Spinner should have started")
	}
	if !mockS.stopped {
		t.Error("Spinner should have stopped")
	}
	// Two sweep starts plus eight trials.
	if len(mockS.suffixes) != 10 {
		t.Fatalf("expected 10 suffix updates, got %d", len(mockS.suffixes))
	}
	last := mockS.suffixes[len(mockS.suffixes)-1]
	if !strings.Contains(last, "Closed-form O(1)") || !strings.Contains(last, "100.0%") {
		t.Errorf("final suffix should show the closed form at 100%%, got %q", last)
	}
	if !strings.Contains(mockS.suffixes[0], "[1/2] Iterative O(N)") {
		t.Errorf("first suffix should name the iterative strategy as 1 of 2, got %q", mockS.suffixes[0])
	}
	if !strings.Contains(last, "[2/2] Closed-form O(1)") {
		t.Errorf("final suffix should count the closed form as 2 of 2, got %q", last)
	}
}

func TestSpinnerProgressReporter_SingleStrategyHasNoCounter(t *testing.T) {
	originalNewSpinner := newSpinner
	defer func() { newSpinner = originalNewSpinner }()

	mockS := &MockSpinner{}
	newSpinner = func(options ...spinner.Option) Spinner {
		return mockS
	}

	reporter := NewSpinnerProgressReporter(&bytes.Buffer{}, 1)
	_, err := orchestration.RunSweep(context.Background(), []summation.Strategy{summation.ClosedForm()}, []int64{10}, 1, reporter)
	reporter.Stop()
	if err != nil {
		t.Fatalf("RunSweep: %v", err)
	}
	for _, s := range mockS.suffixes {
		if strings.Contains(s, "[1/1]") {
			t.Errorf("a single strategy should not show a counter, got %q", s)
		}
	}
	if !strings.Contains(mockS.suffixes[0], " Closed-form O(1) [") {
		t.Errorf("suffix should start with the label, got %q", mockS.suffixes[0])
	}
}

func TestSpinnerProgressReporter_StopWithoutStart(t *testing.T) {
	originalNewSpinner := newSpinner
	defer func() { newSpinner = originalNewSpinner }()

	mockS := &MockSpinner{}
	newSpinner = func(options ...spinner.Option) Spinner {
		return mockS
	}

	reporter := NewSpinnerProgressReporter(&bytes.Buffer{}, 0)
	reporter.Stop()
	if mockS.stopped {
		t.Error("Stop should be a no-op before the first sweep")
	}
}
