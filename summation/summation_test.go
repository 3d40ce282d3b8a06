package summation

import (
	"encoding/json"
	"math/big"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestIterativeSum(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		n    int64
		want int64
	}{
		{"zero is an empty iteration", 0, 0},
		{"negative is an empty iteration", -5, 0},
		{"one", 1, 1},
		{"hundred", 100, 5050},
		{"ten thousand", 10_000, 50_005_000},
		{"one million does not overflow", 1_000_000, 500_000_500_000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			trial := IterativeSum(tt.n)
			if trial.Value.IsFloat() {
				t.Errorf("IterativeSum(%d) returned a float sum", tt.n)
			}
			if got := trial.Value.Int64(); got != tt.want {
				t.Errorf("IterativeSum(%d) = %d, want %d", tt.n, got, tt.want)
			}
			if trial.Elapsed < 0 {
				t.Errorf("IterativeSum(%d) elapsed = %v, want >= 0", tt.n, trial.Elapsed)
			}
		})
	}
}

func TestClosedFormSum(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		n       int64
		want    float64
		wantStr string
	}{
		{"zero", 0, 0, "0.0"},
		{"hundred", 100, 5050, "5050.0"},
		{"hundred thousand", 100_000, 5_000_050_000, "5000050000.0"},
		{"one million does not overflow", 1_000_000, 500_000_500_000, "500000500000.0"},
		{"negative is unguarded", -4, 6, "6.0"},
		{"minus one", -1, 0, "0.0"},
		{"max n", MaxN, 9223372034707292160, "9.223372034707292e+18"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			trial := ClosedFormSum(tt.n)
			if !trial.Value.IsFloat() {
				t.Errorf("ClosedFormSum(%d) returned an integer sum", tt.n)
			}
			if got := trial.Value.Float64(); got != tt.want {
				t.Errorf("ClosedFormSum(%d) = %v, want %v", tt.n, got, tt.want)
			}
			if got := trial.Value.String(); got != tt.wantStr {
				t.Errorf("ClosedFormSum(%d).String() = %q, want %q", tt.n, got, tt.wantStr)
			}
			if trial.Seconds() < 0 {
				t.Errorf("ClosedFormSum(%d) elapsed = %v, want >= 0", tt.n, trial.Seconds())
			}
		})
	}
}

func TestStrategiesRejectOverflowingN(t *testing.T) {
	t.Parallel()
	for name, run := range map[string]func(int64) Trial{
		"iterative":   IterativeSum,
		"closed form": ClosedFormSum,
	} {
		t.Run(name, func(t *testing.T) {
			defer func() {
				r := recover()
				if r == nil {
					t.Fatal("expected a panic for MaxN+1")
				}
				if msg, _ := r.(string); !strings.Contains(msg, "exceeds MaxN") {
					t.Errorf("panic = %v", r)
				}
			}()
			run(MaxN + 1)
		})
	}
}

func TestStrategiesAgree(t *testing.T) {
	t.Parallel()
	for _, n := range []int64{0, 1, 2, 3, 99, 100, 10_000, 100_000, 1_000_000} {
		it := IterativeSum(n)
		cf := ClosedFormSum(n)
		if !it.Value.Equal(cf.Value) {
			t.Errorf("n=%d: iterative %s != closed-form %s", n, it.Value, cf.Value)
		}
		if it.Value.IsFloat() == cf.Value.IsFloat() {
			t.Errorf("n=%d: expected the result types to differ", n)
		}
	}
}

type goldenFile struct {
	Entries []struct {
		N     int64  `json:"n"`
		Sum   string `json:"sum"`
		Float string `json:"float"`
	} `json:"entries"`
}

// iterativeGoldenLimit bounds the sizes the loop is run for in tests.
const iterativeGoldenLimit = 10_000_000

func TestGoldenSums(t *testing.T) {
	t.Parallel()
	data, err := os.ReadFile(filepath.Join("testdata", "sums_golden.json"))
	if err != nil {
		t.Fatalf("reading golden file: %v", err)
	}
	var golden goldenFile
	if err := json.Unmarshal(data, &golden); err != nil {
		t.Fatalf("decoding golden file: %v", err)
	}
	if len(golden.Entries) == 0 {
		t.Fatal("golden file has no entries")
	}

	for _, e := range golden.Entries {
		want, ok := new(big.Int).SetString(e.Sum, 10)
		if !ok {
			t.Fatalf("n=%d: bad golden sum %q", e.N, e.Sum)
		}

		cf := ClosedFormSum(e.N)
		if got := cf.Value.String(); got != e.Float {
			t.Errorf("ClosedFormSum(%d) = %s, want %s", e.N, got, e.Float)
		}
		wantFloat, _ := new(big.Float).SetInt(want).Float64()
		if cf.Value.Float64() != wantFloat {
			t.Errorf("ClosedFormSum(%d) = %v is not the correctly rounded %v", e.N, cf.Value.Float64(), wantFloat)
		}

		if e.N > iterativeGoldenLimit {
			continue
		}
		it := IterativeSum(e.N)
		if got := it.Value.String(); got != want.String() {
			t.Errorf("IterativeSum(%d) = %s, want %s", e.N, got, want)
		}
	}
}

func TestSumEqual(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		a, b Sum
		want bool
	}{
		{"int equal", IntSum(5050), IntSum(5050), true},
		{"int differ", IntSum(5050), IntSum(5051), false},
		{"int vs float equal", IntSum(5050), FloatSum(5050), true},
		{"float vs int differ", FloatSum(5050.5), IntSum(5050), false},
		{"large within tolerance", IntSum(9007199254740993), FloatSum(9007199254740992), true},
		{"zero", IntSum(0), FloatSum(0), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.a.Equal(tt.b); got != tt.want {
				t.Errorf("%s.Equal(%s) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
			if got := tt.b.Equal(tt.a); got != tt.want {
				t.Errorf("%s.Equal(%s) = %v, want %v (symmetry)", tt.b, tt.a, got, tt.want)
			}
		})
	}
}

func TestFormatFloat(t *testing.T) {
	t.Parallel()
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0.0"},
		{2, "2.0"},
		{0.5, "0.5"},
		{0.0001, "0.0001"},
		{0.00001, "1e-05"},
		{1.2345e-05, "1.2345e-05"},
		{5000050000, "5000050000.0"},
		{1e16, "1e+16"},
		{-3.5, "-3.5"},
	}
	for _, tt := range tests {
		if got := FormatFloat(tt.in); got != tt.want {
			t.Errorf("FormatFloat(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestRegistry(t *testing.T) {
	t.Parallel()

	t.Run("default order is iterative then closed-form", func(t *testing.T) {
		t.Parallel()
		r := NewDefaultRegistry()
		got := r.List()
		want := []string{IterativeName, ClosedFormName}
		if len(got) != len(want) {
			t.Fatalf("List() = %v, want %v", got, want)
		}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("List()[%d] = %q, want %q", i, got[i], want[i])
			}
		}
		all := r.All()
		if all[0].Name() != IterativeName || all[1].Name() != ClosedFormName {
			t.Errorf("All() order = %s, %s", all[0].Name(), all[1].Name())
		}
	})

	t.Run("get known and unknown", func(t *testing.T) {
		t.Parallel()
		r := NewDefaultRegistry()
		s, err := r.Get(ClosedFormName)
		if err != nil {
			t.Fatalf("Get(%q) error: %v", ClosedFormName, err)
		}
		if s.Label() != "Closed-form O(1)" {
			t.Errorf("Label() = %q", s.Label())
		}
		if got := s.Run(100).Value.String(); got != "5050.0" {
			t.Errorf("Run(100) = %s, want 5050.0", got)
		}
		if _, err := r.Get("recursive"); err == nil {
			t.Error("expected error for unknown strategy")
		}
	})

	t.Run("duplicate registration fails", func(t *testing.T) {
		t.Parallel()
		r := NewRegistry()
		if err := r.Register(Iterative()); err != nil {
			t.Fatalf("first Register: %v", err)
		}
		if err := r.Register(Iterative()); err == nil {
			t.Error("expected error registering the same name twice")
		}
	})

	t.Run("List returns a copy", func(t *testing.T) {
		t.Parallel()
		r := NewDefaultRegistry()
		names := r.List()
		names[0] = "mutated"
		if r.List()[0] != IterativeName {
			t.Error("mutating List() result changed the registry")
		}
	})
}
