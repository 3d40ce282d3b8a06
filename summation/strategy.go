package summation

import (
	"fmt"
	"time"
)

// MaxN is the largest input size whose sum 1..N fits in a signed 64-bit
// integer: MaxN·(MaxN+1)/2 = 9223372034707292160.
const MaxN int64 = 4_294_967_295

// Trial is the outcome of one strategy invocation.
type Trial struct {
	// Value is the computed sum.
	Value Sum
	// Elapsed is the wall-clock time spent computing Value.
	Elapsed time.Duration
}

// Seconds returns the elapsed time in seconds.
func (t Trial) Seconds() float64 {
	return t.Elapsed.Seconds()
}

// IterativeSum adds the integers 1..n one at a time and reports how long the
// loop took. For n <= 0 the loop body never runs and the sum is 0.
// It panics if n > MaxN, where the sum no longer fits in an int64.
func IterativeSum(n int64) Trial {
	checkRange(n)
	start := time.Now()

	var sum int64
	for i := int64(1); i <= n; i++ {
		sum += i
	}

	elapsed := time.Since(start)
	return Trial{Value: IntSum(sum), Elapsed: elapsed}
}

// ClosedFormSum evaluates n·(n+1)/2 with true division and reports how long
// the evaluation took. The integer product is formed first so the returned
// float is the correctly rounded quotient. Negative n is not rejected.
// It panics if n > MaxN, where the integer product overflows.
func ClosedFormSum(n int64) Trial {
	checkRange(n)
	start := time.Now()
	value := closedForm(n)
	elapsed := time.Since(start)
	return Trial{Value: FloatSum(value), Elapsed: elapsed}
}

func checkRange(n int64) {
	if n > MaxN {
		panic(fmt.Sprintf("summation: n = %d exceeds MaxN = %d, the sum overflows int64", n, MaxN))
	}
}

// closedForm is valid for 0 <= n <= MaxN and for negative n down to the
// point where n·(n+1) overflows int64.
func closedForm(n int64) float64 {
	if n >= 0 {
		return float64(uint64(n)*uint64(n+1)) / 2
	}
	return float64(n*(n+1)) / 2
}

// Strategy is a named, timed summation algorithm.
type Strategy interface {
	// Name is the short identifier used on the command line.
	Name() string
	// Label is the human-readable name used in legends and tables.
	Label() string
	// Run computes the sum 1..n and times it.
	Run(n int64) Trial
}

// funcStrategy adapts a plain function to the Strategy interface.
type funcStrategy struct {
	name  string
	label string
	fn    func(int64) Trial
}

func (s funcStrategy) Name() string      { return s.name }
func (s funcStrategy) Label() string     { return s.label }
func (s funcStrategy) Run(n int64) Trial { return s.fn(n) }
func (s funcStrategy) String() string    { return s.label }

// NewStrategy wraps fn as a Strategy.
func NewStrategy(name, label string, fn func(int64) Trial) Strategy {
	return funcStrategy{name: name, label: label, fn: fn}
}

// Strategy names registered by NewDefaultRegistry.
const (
	IterativeName  = "iterative"
	ClosedFormName = "closed-form"
)

// Iterative returns the iterative strategy.
func Iterative() Strategy {
	return NewStrategy(IterativeName, "Iterative O(N)", IterativeSum)
}

// ClosedForm returns the closed-form strategy.
func ClosedForm() Strategy {
	return NewStrategy(ClosedFormName, "Closed-form O(1)", ClosedFormSum)
}

// Registry holds strategies in registration order. The order is the order in
// which a full benchmark sweeps them.
type Registry struct {
	order  []string
	byName map[string]Strategy
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{byName: make(map[string]Strategy)}
}

// NewDefaultRegistry returns a registry with the iterative strategy followed
// by the closed-form strategy.
func NewDefaultRegistry() *Registry {
	r := NewRegistry()
	_ = r.Register(Iterative())
	_ = r.Register(ClosedForm())
	return r
}

// Register adds s. Registering a name twice is an error.
func (r *Registry) Register(s Strategy) error {
	if _, exists := r.byName[s.Name()]; exists {
		return fmt.Errorf("strategy %q already registered", s.Name())
	}
	r.byName[s.Name()] = s
	r.order = append(r.order, s.Name())
	return nil
}

// Get returns the strategy registered under name.
func (r *Registry) Get(name string) (Strategy, error) {
	s, ok := r.byName[name]
	if !ok {
		return nil, fmt.Errorf("unknown strategy %q", name)
	}
	return s, nil
}

// List returns the registered names in registration order.
func (r *Registry) List() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// All returns every registered strategy in registration order.
func (r *Registry) All() []Strategy {
	out := make([]Strategy, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.byName[name])
	}
	return out
}
