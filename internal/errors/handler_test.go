package apperrors

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"
)

type testColors struct{}

func (testColors) Red() string    { return "<r>" }
func (testColors) Yellow() string { return "<y>" }
func (testColors) Reset() string  { return "</>" }

func TestExitCodeFor(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitSuccess},
		{"config", NewConfigError("bad flag"), ExitErrorConfig},
		{"validation", ValidationError{Field: "trials", Message: "must be at least 1"}, ExitErrorConfig},
		{"mismatch", MismatchError{N: 10, Reference: "a", ReferenceSum: "55", Strategy: "b", Sum: "56"}, ExitErrorMismatch},
		{"timeout type", TimeoutError{Operation: "sweep", Limit: time.Second}, ExitErrorTimeout},
		{"deadline", context.DeadlineExceeded, ExitErrorTimeout},
		{"wrapped deadline", MeasurementError{Strategy: "iterative", N: 10, Cause: context.DeadlineExceeded}, ExitErrorTimeout},
		{"canceled", WrapError(context.Canceled, "sweep"), ExitErrorCanceled},
		{"generic", errors.New("disk full"), ExitErrorGeneric},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := ExitCodeFor(tt.err); got != tt.want {
				t.Errorf("ExitCodeFor(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

func TestHandleError(t *testing.T) {
	t.Parallel()

	t.Run("nil prints nothing", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		if code := HandleError(nil, &buf, testColors{}); code != ExitSuccess {
			t.Errorf("expected ExitSuccess, got %d", code)
		}
		if buf.Len() != 0 {
			t.Errorf("expected no output, got %q", buf.String())
		}
	})

	tests := []struct {
		name   string
		err    error
		colors ColorProvider
		code   int
		prefix string
	}{
		{"mismatch colored", MismatchError{N: 10, Reference: "a", ReferenceSum: "55", Strategy: "b", Sum: "56"}, testColors{}, ExitErrorMismatch, "<r>CRITICAL:</>"},
		{"config uncolored", NewConfigError("bad"), nil, ExitErrorConfig, "Configuration error: bad"},
		{"timeout", context.DeadlineExceeded, testColors{}, ExitErrorTimeout, "<y>Timeout:</>"},
		{"canceled", context.Canceled, nil, ExitErrorCanceled, "Canceled:"},
		{"generic", errors.New("boom"), nil, ExitErrorGeneric, "Error: boom"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer
			if code := HandleError(tt.err, &buf, tt.colors); code != tt.code {
				t.Errorf("expected code %d, got %d", tt.code, code)
			}
			if !strings.HasPrefix(buf.String(), tt.prefix) {
				t.Errorf("output %q does not start with %q", buf.String(), tt.prefix)
			}
		})
	}
}
