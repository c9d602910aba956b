package harness

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Scenario defines a conformance test scenario.
// Scenarios validate the factorization algebra by evaluating a list of
// arithmetic cases against one prime base and asserting on the outcomes.
type Scenario struct {
	// Name uniquely identifies this scenario.
	// Golden report files are named after it.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description"`

	// Base selects how the prime base is constructed.
	Base BaseSpec `yaml:"base"`

	// Cases contains the main test flow. Each case invokes one operation
	// and states its expected outcome. Cases are evaluated in order.
	Cases []Case `yaml:"cases"`
}

// BaseSpec selects a prime base constructor.
// Exactly one selector must be set.
type BaseSpec struct {
	// Under builds the base of primes below the given limit.
	Under *uint64 `yaml:"under,omitempty"`

	// First builds the base of the smallest N primes.
	First *int `yaml:"first,omitempty"`

	// Raw wraps the listed values unchecked. This is the test-fixture
	// escape hatch; the scenario author vouches for the values.
	Raw []uint64 `yaml:"raw,omitempty"`
}

// Case represents a single operation invocation with its expected outcome.
// Operands depend on the op: n for factor, totient, divisors, and
// roundtrip; a and b for gcd and lcm; none for max.
type Case struct {
	// Op is the operation to evaluate. One of the Op* constants.
	Op string `yaml:"op"`

	// N is the operand for factor, totient, divisors, and roundtrip.
	N *uint64 `yaml:"n,omitempty"`

	// A and B are the operands for gcd and lcm.
	A *uint64 `yaml:"a,omitempty"`
	B *uint64 `yaml:"b,omitempty"`

	// Want is the expected integer result.
	Want *uint64 `yaml:"want,omitempty"`

	// Factors is the expected prime->exponent map for factor cases.
	// An explicitly empty map ({}) expects the empty factorization.
	Factors map[uint64]uint8 `yaml:"factors,omitempty"`

	// None expects the no-result outcome: the operation reports that no
	// certified answer exists for these operands under this base.
	None bool `yaml:"none,omitempty"`
}

// Operation constants for Case.Op.
const (
	OpFactor    = "factor"
	OpGCD       = "gcd"
	OpLCM       = "lcm"
	OpTotient   = "totient"
	OpDivisors  = "divisors"
	OpRoundtrip = "roundtrip"
	OpMax       = "max"
)

// LoadScenario reads and parses a scenario YAML file.
// Returns an error if the file doesn't exist, is malformed,
// contains unknown fields (typos), or is missing required fields.
func LoadScenario(path string) (*Scenario, error) {
	// Read file
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}

	// Parse YAML with strict field validation (catches typos like "case:" vs "cases:")
	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true) // Reject unknown fields
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	// Validate required fields
	if err := validateScenario(&scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}

	return &scenario, nil
}

// validateScenario checks that required fields are present and valid.
func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}

	if s.Description == "" {
		return fmt.Errorf("description is required")
	}

	if err := validateBase(&s.Base); err != nil {
		return err
	}

	if len(s.Cases) == 0 {
		return fmt.Errorf("cases list is required and must be non-empty")
	}

	for i, c := range s.Cases {
		if err := validateCase(i, &c); err != nil {
			return err
		}
	}

	return nil
}

// validateBase checks that exactly one base selector is set.
func validateBase(b *BaseSpec) error {
	selectors := 0
	if b.Under != nil {
		selectors++
	}
	if b.First != nil {
		selectors++
	}
	if b.Raw != nil {
		selectors++
	}
	if selectors != 1 {
		return fmt.Errorf("base: exactly one of under, first, raw is required")
	}
	return nil
}

// validateCase validates a single case based on its op.
// Each op has a fixed operand shape and a fixed expectation shape;
// anything else is a scenario authoring mistake and is rejected here
// rather than silently ignored during evaluation.
func validateCase(index int, c *Case) error {
	if c.Op == "" {
		return fmt.Errorf("cases[%d]: op is required", index)
	}

	// Count stated expectations. Every op except roundtrip requires
	// exactly one; roundtrip carries its expectation implicitly.
	expectations := 0
	if c.Want != nil {
		expectations++
	}
	if c.Factors != nil {
		expectations++
	}
	if c.None {
		expectations++
	}

	switch c.Op {
	case OpFactor:
		if c.N == nil {
			return fmt.Errorf("cases[%d]: n is required for factor", index)
		}
		if c.A != nil || c.B != nil {
			return fmt.Errorf("cases[%d]: a/b are not valid for factor", index)
		}
		if c.Want != nil {
			return fmt.Errorf("cases[%d]: factor expects factors or none, not want", index)
		}
		if expectations != 1 {
			return fmt.Errorf("cases[%d]: exactly one of factors, none is required for factor", index)
		}

	case OpGCD, OpLCM:
		if c.A == nil || c.B == nil {
			return fmt.Errorf("cases[%d]: a and b are required for %s", index, c.Op)
		}
		if c.N != nil {
			return fmt.Errorf("cases[%d]: n is not valid for %s", index, c.Op)
		}
		if c.Factors != nil {
			return fmt.Errorf("cases[%d]: %s expects want or none, not factors", index, c.Op)
		}
		if expectations != 1 {
			return fmt.Errorf("cases[%d]: exactly one of want, none is required for %s", index, c.Op)
		}

	case OpTotient, OpDivisors:
		if c.N == nil {
			return fmt.Errorf("cases[%d]: n is required for %s", index, c.Op)
		}
		if c.A != nil || c.B != nil {
			return fmt.Errorf("cases[%d]: a/b are not valid for %s", index, c.Op)
		}
		if c.Factors != nil {
			return fmt.Errorf("cases[%d]: %s expects want or none, not factors", index, c.Op)
		}
		if expectations != 1 {
			return fmt.Errorf("cases[%d]: exactly one of want, none is required for %s", index, c.Op)
		}

	case OpRoundtrip:
		if c.N == nil {
			return fmt.Errorf("cases[%d]: n is required for roundtrip", index)
		}
		if c.A != nil || c.B != nil {
			return fmt.Errorf("cases[%d]: a/b are not valid for roundtrip", index)
		}
		if c.Want != nil || c.Factors != nil {
			return fmt.Errorf("cases[%d]: roundtrip expects n back implicitly; only none is valid", index)
		}

	case OpMax:
		if c.N != nil || c.A != nil || c.B != nil {
			return fmt.Errorf("cases[%d]: max takes no operands", index)
		}
		if c.Factors != nil {
			return fmt.Errorf("cases[%d]: max expects want or none, not factors", index)
		}
		if expectations != 1 {
			return fmt.Errorf("cases[%d]: exactly one of want, none is required for max", index)
		}

	default:
		return fmt.Errorf("cases[%d]: unknown op %q", index, c.Op)
	}

	return nil
}
