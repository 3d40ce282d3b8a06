package summation

import (
	"math"
	"strconv"
	"strings"
)

// equalityTolerance is the relative tolerance used when at least one side of
// a comparison is a floating-point sum.
const equalityTolerance = 1e-12

// Sum is the value computed by a strategy. It is either an exact integer or a
// floating-point number, mirroring the result types of the two strategies.
type Sum struct {
	i       int64
	f       float64
	isFloat bool
}

// IntSum returns an integer Sum.
func IntSum(v int64) Sum { return Sum{i: v} }

// FloatSum returns a floating-point Sum.
func FloatSum(v float64) Sum { return Sum{f: v, isFloat: true} }

// IsFloat reports whether the sum was produced as a floating-point value.
func (s Sum) IsFloat() bool { return s.isFloat }

// Int64 returns the sum as an integer. Floating-point sums are truncated.
func (s Sum) Int64() int64 {
	if s.isFloat {
		return int64(s.f)
	}
	return s.i
}

// Float64 returns the sum as a float64.
func (s Sum) Float64() float64 {
	if s.isFloat {
		return s.f
	}
	return float64(s.i)
}

// Equal reports whether two sums are numerically equal. Two integer sums must
// match exactly; otherwise the values are compared as float64 within a small
// relative tolerance.
func (s Sum) Equal(o Sum) bool {
	if !s.isFloat && !o.isFloat {
		return s.i == o.i
	}
	a, b := s.Float64(), o.Float64()
	if a == b {
		return true
	}
	scale := math.Max(1, math.Max(math.Abs(a), math.Abs(b)))
	return math.Abs(a-b) <= equalityTolerance*scale
}

// String renders integer sums in decimal ("5050") and floating-point sums in
// their shortest round-trip form with a trailing ".0" for integral values
// ("5050.0"), switching to exponent notation for very large or small values.
func (s Sum) String() string {
	if !s.isFloat {
		return strconv.FormatInt(s.i, 10)
	}
	return FormatFloat(s.f)
}

// FormatFloat formats v the way an interactive interpreter prints a float:
// shortest representation that round-trips, at least one fractional digit,
// and exponent notation when |v| >= 1e16 or 0 < |v| < 1e-4.
func FormatFloat(v float64) string {
	switch {
	case math.IsNaN(v):
		return "nan"
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	}
	abs := math.Abs(v)
	if abs >= 1e16 || (abs != 0 && abs < 1e-4) {
		return strconv.FormatFloat(v, 'e', -1, 64)
	}
	out := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.ContainsRune(out, '.') {
		out += ".0"
	}
	return out
}
