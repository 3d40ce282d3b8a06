// Command generate-golden writes summation/testdata/sums_golden.json, the
// reference sums used by the summation tests. Sums are computed with math/big
// so the file is independent of the implementations under test.
package main

import (
	"encoding/json"
	"flag"
	"math/big"
	"os"

	"github.com/agbru/sumbench/internal/logging"
	"github.com/agbru/sumbench/summation"
)

type entry struct {
	N     int64  `json:"n"`
	Sum   string `json:"sum"`
	Float string `json:"float"`
}

type goldenFile struct {
	Description string  `json:"description"`
	Entries     []entry `json:"entries"`
}

var goldenSizes = []int64{
	0, 1, 2, 10, 100, 1000, 10_000, 100_000, 1_000_000, 10_000_000,
	134_217_727, 1_000_000_000, summation.MaxN,
}

// sumBig returns 1 + 2 + ... + n using arbitrary precision.
func sumBig(n int64) *big.Int {
	if n <= 0 {
		return new(big.Int)
	}
	z := big.NewInt(n)
	z.Mul(z, big.NewInt(n+1))
	return z.Rsh(z, 1)
}

// floatRepr returns the correctly rounded float rendering of v.
func floatRepr(v *big.Int) string {
	f, _ := new(big.Float).SetInt(v).Float64()
	return summation.FormatFloat(f)
}

func buildGolden(sizes []int64) goldenFile {
	g := goldenFile{Description: "Sums 1..N computed with math/big by cmd/generate-golden"}
	for _, n := range sizes {
		s := sumBig(n)
		g.Entries = append(g.Entries, entry{N: n, Sum: s.String(), Float: floatRepr(s)})
	}
	return g
}

func main() {
	out := flag.String("o", "summation/testdata/sums_golden.json", "output path")
	flag.Parse()
	logger := logging.NewLogger(os.Stderr, "generate-golden")

	data, err := json.MarshalIndent(buildGolden(goldenSizes), "", "  ")
	if err != nil {
		logger.Error("encoding golden file", err)
		os.Exit(1)
	}
	if err := os.WriteFile(*out, append(data, '\n'), 0o644); err != nil {
		logger.Error("writing golden file", err, logging.String("path", *out))
		os.Exit(1)
	}
	logger.Info("golden file written", logging.Int("entries", len(goldenSizes)), logging.String("path", *out))
}
