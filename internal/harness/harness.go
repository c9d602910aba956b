package harness

import (
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strings"

	"github.com/google/go-cmp/cmp"

	"github.com/efronlicht/numbertheory"
)

// noneOutcome renders every no-result case, whatever its cause: a zero
// operand, a base that cannot certify the remainder, or an empty base
// asked for its maximum. The library collapses those causes into one
// signal and the harness renders them the same way.
const noneOutcome = "none"

// Harness is the test execution engine.
// It evaluates scenario cases against one prime base.
type Harness struct {
	base   numbertheory.Primes
	logger *slog.Logger
}

// Run executes a test scenario and returns the result.
//
// The prime base is constructed fresh for each run. Evaluation is pure
// and ordered, so repeated runs of the same scenario produce identical
// results and identical golden reports.
//
// Execution flow:
// 1. Construct the prime base from the scenario's base selector
// 2. Evaluate each case in order, recording got/want per case
// 3. Return result with pass/fail, case outcomes, and errors
func Run(scenario *Scenario) *Result {
	h := &Harness{
		base:   buildBase(scenario.Base),
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)), // Suppress logs in tests
	}

	result := NewResult(scenario.Name)
	result.Base = fmt.Sprintf("%v", h.base.Slice())

	for i, c := range scenario.Cases {
		h.evaluate(i, c, result)
	}

	return result
}

// buildBase constructs the scenario's prime base.
// Validation guarantees exactly one selector is set; a hand-built
// BaseSpec with no selector yields the empty base.
func buildBase(spec BaseSpec) numbertheory.Primes {
	switch {
	case spec.Under != nil:
		return numbertheory.Under(*spec.Under)
	case spec.First != nil:
		return numbertheory.FirstN(*spec.First)
	case spec.Raw != nil:
		return numbertheory.FromRawSlice(spec.Raw)
	default:
		return numbertheory.Primes{}
	}
}

// evaluate runs a single case and appends its outcome to the result.
func (h *Harness) evaluate(index int, c Case, result *Result) {
	var cr CaseResult
	switch c.Op {
	case OpFactor:
		cr = h.evalFactor(index, c)
	case OpGCD, OpLCM:
		cr = h.evalPair(index, c)
	case OpTotient, OpDivisors:
		cr = h.evalDerived(index, c)
	case OpRoundtrip:
		cr = h.evalRoundtrip(index, c)
	case OpMax:
		cr = h.evalMax(index, c)
	default:
		// Validated scenarios never reach here; hand-built ones might.
		cr = CaseResult{
			Index: index,
			Op:    c.Op,
			Input: c.Op,
			Got:   "unknown op",
			Want:  "one of factor, gcd, lcm, totient, divisors, roundtrip, max",
		}
	}

	result.Cases = append(result.Cases, cr)
	if !cr.Pass {
		msg := fmt.Sprintf("cases[%d]: %s: got %s, want %s", index, cr.Input, cr.Got, cr.Want)
		if cr.Diff != "" {
			msg += "\n" + cr.Diff
		}
		result.AddError(msg)
	}

	h.logger.Info("case evaluated",
		"index", index,
		"op", c.Op,
		"input", cr.Input,
		"pass", cr.Pass,
	)
}

// evalFactor factorizes n and compares against the expected
// prime->exponent map (or the no-result outcome).
func (h *Harness) evalFactor(index int, c Case) CaseResult {
	cr := CaseResult{
		Index: index,
		Op:    OpFactor,
		Input: fmt.Sprintf("factor(%d)", *c.N),
	}

	f, err := h.base.Factor(*c.N)
	if err != nil {
		cr.Got = noneOutcome
	} else {
		cr.Got = f.String()
	}

	if c.None {
		cr.Want = noneOutcome
		cr.Pass = err != nil
		return cr
	}

	cr.Want = renderFactorMap(c.Factors)
	if err != nil {
		return cr
	}

	got := termMap(f)
	cr.Pass = cmp.Equal(c.Factors, got)
	if !cr.Pass {
		cr.Diff = cmp.Diff(c.Factors, got)
	}
	return cr
}

// evalPair evaluates gcd or lcm over (a, b).
func (h *Harness) evalPair(index int, c Case) CaseResult {
	cr := CaseResult{
		Index: index,
		Op:    c.Op,
		Input: fmt.Sprintf("%s(%d, %d)", c.Op, *c.A, *c.B),
	}

	var (
		got uint64
		err error
	)
	if c.Op == OpGCD {
		got, err = h.base.GCD(*c.A, *c.B)
	} else {
		got, err = h.base.LCM(*c.A, *c.B)
	}

	if err != nil {
		cr.Got = noneOutcome
	} else {
		cr.Got = fmt.Sprintf("%d", got)
	}

	if c.None {
		cr.Want = noneOutcome
		cr.Pass = err != nil
	} else {
		cr.Want = fmt.Sprintf("%d", *c.Want)
		cr.Pass = err == nil && got == *c.Want
	}
	return cr
}

// evalDerived factorizes n and derives the totient or divisor count.
func (h *Harness) evalDerived(index int, c Case) CaseResult {
	cr := CaseResult{
		Index: index,
		Op:    c.Op,
		Input: fmt.Sprintf("%s(%d)", c.Op, *c.N),
	}

	var got uint64
	f, err := h.base.Factor(*c.N)
	if err != nil {
		cr.Got = noneOutcome
	} else {
		if c.Op == OpTotient {
			got = f.Totient()
		} else {
			got = f.DivisorCount()
		}
		cr.Got = fmt.Sprintf("%d", got)
	}

	if c.None {
		cr.Want = noneOutcome
		cr.Pass = err != nil
	} else {
		cr.Want = fmt.Sprintf("%d", *c.Want)
		cr.Pass = err == nil && got == *c.Want
	}
	return cr
}

// evalRoundtrip factorizes n and reconstructs it. The expectation is
// implicit: the product of the factorization must equal n.
func (h *Harness) evalRoundtrip(index int, c Case) CaseResult {
	cr := CaseResult{
		Index: index,
		Op:    OpRoundtrip,
		Input: fmt.Sprintf("roundtrip(%d)", *c.N),
	}

	f, err := h.base.Factor(*c.N)
	if err != nil {
		cr.Got = noneOutcome
	} else {
		cr.Got = fmt.Sprintf("%d", f.Uint64())
	}

	if c.None {
		cr.Want = noneOutcome
		cr.Pass = err != nil
	} else {
		cr.Want = fmt.Sprintf("%d", *c.N)
		cr.Pass = err == nil && f.Uint64() == *c.N
	}
	return cr
}

// evalMax reports the base's largest prime.
func (h *Harness) evalMax(index int, c Case) CaseResult {
	cr := CaseResult{
		Index: index,
		Op:    OpMax,
		Input: "max()",
	}

	m, ok := h.base.Max()
	if ok {
		cr.Got = fmt.Sprintf("%d", m)
	} else {
		cr.Got = noneOutcome
	}

	if c.None {
		cr.Want = noneOutcome
		cr.Pass = !ok
	} else {
		cr.Want = fmt.Sprintf("%d", *c.Want)
		cr.Pass = ok && m == *c.Want
	}
	return cr
}

// termMap flattens a factorization back into a plain prime->exponent map
// for structural comparison against the scenario's expectation.
func termMap(f numbertheory.Factors) map[uint64]uint8 {
	m := make(map[uint64]uint8, f.Len())
	for _, t := range f.Terms() {
		m[t.Prime] = t.Exp
	}
	return m
}

// renderFactorMap renders an expected prime->exponent map in the same
// prime-power form Factors.String uses, so got and want line up in
// reports and error messages.
func renderFactorMap(m map[uint64]uint8) string {
	if len(m) == 0 {
		return "1"
	}

	primes := make([]uint64, 0, len(m))
	for p := range m {
		primes = append(primes, p)
	}
	slices.Sort(primes)

	var b strings.Builder
	for i, p := range primes {
		if i > 0 {
			b.WriteString(" * ")
		}
		if m[p] == 1 {
			fmt.Fprintf(&b, "%d", p)
		} else {
			fmt.Fprintf(&b, "%d^%d", p, m[p])
		}
	}
	return b.String()
}
