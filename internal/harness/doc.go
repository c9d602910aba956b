// Package harness provides conformance testing for the numbertheory package.
//
// The harness loads arithmetic scenarios from YAML files, evaluates every
// case against a freshly constructed prime base, and reports per-case
// outcomes. Rendered reports are compared against golden files, so the
// observable behavior of the sieve and the factorization algebra is pinned
// bit-for-bit.
//
// # Scenario Format
//
// Scenarios are defined in YAML files with the following structure:
//
//	name: scenario_name
//	description: "What this scenario validates"
//	base:
//	  under: 12        # or first: 5, or raw: [2, 3, 5, 7, 11]
//	cases:
//	  - op: factor
//	    n: 24
//	    factors: {2: 3, 3: 1}
//	  - op: gcd
//	    a: 30
//	    b: 24
//	    want: 6
//	  - op: gcd
//	    a: 23
//	    b: 2
//	    none: true
//
// The base selector must name exactly one constructor. "raw" feeds the
// unchecked FromRawSlice constructor, so raw scenarios double as coverage
// of that trust boundary; the scenario author vouches for the values.
//
// # Operations
//
// The following ops are supported:
//
//   - factor: factorize n; expects "factors" (a prime->exponent map,
//     {} for the empty factorization) or "none"
//   - gcd, lcm: combine a and b; expect "want" or "none"
//   - totient, divisors: factorize n and derive; expect "want" or "none"
//   - roundtrip: factorize n and reconstruct; expects n back implicitly,
//     or "none" when the base cannot certify n
//   - max: the base's largest prime; expects "want" or "none"
//
// Every no-result outcome, whatever its cause, renders as "none", the
// same collapsed signal the library itself reports.
//
// # Deterministic Reports
//
// Evaluation is pure and ordered, so the same scenario always yields the
// same Result and the same rendered report. Golden files live in
// testdata/golden and are regenerated with:
//
//	go test ./internal/harness -update
//
// # Usage
//
// Load and run a scenario:
//
//	scenario, err := harness.LoadScenario("testdata/scenarios/classic_pairs.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	result := harness.Run(scenario)
//	if !result.Pass {
//	    for _, msg := range result.Errors {
//	        log.Println(msg)
//	    }
//	}
package harness
