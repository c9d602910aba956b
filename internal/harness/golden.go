package harness

import (
	"fmt"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"

	"github.com/efronlicht/numbertheory"
)

// RenderReport renders a result as a deterministic text report, one line
// per case. Case lines show the invocation and its actual outcome; the
// scenario's expectations are checked separately via Result.Pass, so a
// golden report pins observed behavior rather than restating the YAML.
func RenderReport(result *Result) []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "scenario: %s\n", result.Scenario)
	fmt.Fprintf(&b, "base: %s\n", result.Base)
	for _, cr := range result.Cases {
		fmt.Fprintf(&b, "%2d. %s = %s\n", cr.Index+1, cr.Input, cr.Got)
	}
	return []byte(b.String())
}

// RenderFactorTable renders the factorization of every integer in
// [lo, hi] against the base, one line per integer, with "none" marking
// the no-result outcomes. The table pins the sieve and the factorizer
// bit-for-bit across a contiguous range.
func RenderFactorTable(base numbertheory.Primes, lo, hi uint64) []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "base: %v\n", base.Slice())
	for n := lo; n <= hi; n++ {
		f, err := base.Factor(n)
		if err != nil {
			fmt.Fprintf(&b, "%d = %s\n", n, noneOutcome)
		} else {
			fmt.Fprintf(&b, "%d = %s\n", n, f)
		}
	}
	return []byte(b.String())
}

// AssertGolden runs a scenario and compares its rendered report against
// the golden file testdata/golden/{scenario.Name}.golden.
//
// To regenerate golden files, run:
//
//	go test ./internal/harness -update
//
// Golden files serve as the source of truth for expected report output;
// any change to sieve output, factorization results, or report rendering
// shows up as a golden diff. The result is returned so callers can also
// assert on Pass and per-case outcomes.
func AssertGolden(t *testing.T, scenario *Scenario) *Result {
	t.Helper()

	result := Run(scenario)

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, scenario.Name, RenderReport(result))

	return result
}
