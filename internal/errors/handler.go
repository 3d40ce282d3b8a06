package apperrors

import (
	"context"
	"errors"
	"fmt"
	"io"
)

// ColorProvider supplies the escape sequences used to highlight error output.
// A nil ColorProvider prints without color.
type ColorProvider interface {
	Red() string
	Yellow() string
	Reset() string
}

// ExitCodeFor maps an error to the process exit code without printing anything.
func ExitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var (
		configErr     ConfigError
		validationErr ValidationError
		mismatchErr   MismatchError
		timeoutErr    TimeoutError
	)
	switch {
	case errors.As(err, &configErr), errors.As(err, &validationErr):
		return ExitErrorConfig
	case errors.As(err, &mismatchErr):
		return ExitErrorMismatch
	case errors.As(err, &timeoutErr), errors.Is(err, context.DeadlineExceeded):
		return ExitErrorTimeout
	case errors.Is(err, context.Canceled):
		return ExitErrorCanceled
	default:
		return ExitErrorGeneric
	}
}

// HandleError prints a diagnostic for err to out and returns the matching
// exit code. It returns ExitSuccess and prints nothing when err is nil.
func HandleError(err error, out io.Writer, colors ColorProvider) int {
	if err == nil {
		return ExitSuccess
	}

	red, yellow, reset := "", "", ""
	if colors != nil {
		red, yellow, reset = colors.Red(), colors.Yellow(), colors.Reset()
	}

	code := ExitCodeFor(err)
	switch code {
	case ExitErrorTimeout:
		fmt.Fprintf(out, "%sTimeout:%s the benchmark did not finish in time (%v)\n", yellow, reset, err)
	case ExitErrorCanceled:
		fmt.Fprintf(out, "%sCanceled:%s the benchmark was interrupted\n", yellow, reset)
	case ExitErrorMismatch:
		fmt.Fprintf(out, "%sCRITICAL:%s %v\n", red, reset, err)
	case ExitErrorConfig:
		fmt.Fprintf(out, "%sConfiguration error:%s %v\n", red, reset, err)
	default:
		fmt.Fprintf(out, "%sError:%s %v\n", red, reset, err)
	}
	return code
}
