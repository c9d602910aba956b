package harness

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeScenario writes scenario YAML to a temp file and returns its path.
func writeScenario(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadScenario_ValidFile(t *testing.T) {
	path := writeScenario(t, `
name: test_scenario
description: "Test scenario for validation"
base:
  under: 12
cases:
  - op: gcd
    a: 30
    b: 24
    want: 6
  - op: factor
    n: 24
    factors: {2: 3, 3: 1}
  - op: factor
    n: 23
    none: true
`)

	scenario, err := LoadScenario(path)
	require.NoError(t, err)

	assert.Equal(t, "test_scenario", scenario.Name)
	assert.Equal(t, "Test scenario for validation", scenario.Description)
	require.NotNil(t, scenario.Base.Under)
	assert.Equal(t, uint64(12), *scenario.Base.Under)
	assert.Nil(t, scenario.Base.First)
	assert.Nil(t, scenario.Base.Raw)

	require.Len(t, scenario.Cases, 3)
	assert.Equal(t, OpGCD, scenario.Cases[0].Op)
	assert.Equal(t, uint64(30), *scenario.Cases[0].A)
	assert.Equal(t, uint64(24), *scenario.Cases[0].B)
	assert.Equal(t, uint64(6), *scenario.Cases[0].Want)
	assert.Equal(t, map[uint64]uint8{2: 3, 3: 1}, scenario.Cases[1].Factors)
	assert.True(t, scenario.Cases[2].None)
}

func TestLoadScenario_EmptyFactorsMap(t *testing.T) {
	// factors: {} expects the empty factorization. The decoded map must be
	// non-nil so validation can tell "expects empty" from "no expectation".
	path := writeScenario(t, `
name: test
description: "Test"
base:
  under: 12
cases:
  - op: factor
    n: 1
    factors: {}
`)

	scenario, err := LoadScenario(path)
	require.NoError(t, err)
	require.NotNil(t, scenario.Cases[0].Factors)
	assert.Len(t, scenario.Cases[0].Factors, 0)
}

func TestLoadScenario_MissingFile(t *testing.T) {
	_, err := LoadScenario("/nonexistent/scenario.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read scenario file")
}

func TestLoadScenario_MalformedYAML(t *testing.T) {
	path := writeScenario(t, `
name: test
description: "Test"
base:
  unclosed: [bracket
`)

	_, err := LoadScenario(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse YAML")
}

func TestLoadScenario_UnknownFieldsRejected(t *testing.T) {
	// YAML files with typos (unknown fields) should be rejected.
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{
			name: "typo_case_singular",
			yaml: `
name: test
description: Test typo
base:
  under: 12
case:
  - op: max
    want: 11
cases:
  - op: max
    want: 11
`,
			wantErr: "field case not found",
		},
		{
			name: "typo_in_case",
			yaml: `
name: test
description: Test typo
base:
  under: 12
cases:
  - opp: max
    want: 11
`,
			wantErr: "field opp not found",
		},
		{
			name: "typo_in_base",
			yaml: `
name: test
description: Test typo
base:
  undr: 12
cases:
  - op: max
    want: 11
`,
			wantErr: "field undr not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadScenario(writeScenario(t, tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadScenario_MissingName(t *testing.T) {
	path := writeScenario(t, `
description: "Missing name"
base:
  under: 12
cases:
  - op: max
    want: 11
`)

	_, err := LoadScenario(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "name is required")
}

func TestLoadScenario_MissingDescription(t *testing.T) {
	path := writeScenario(t, `
name: test
base:
  under: 12
cases:
  - op: max
    want: 11
`)

	_, err := LoadScenario(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "description is required")
}

func TestLoadScenario_MissingCases(t *testing.T) {
	path := writeScenario(t, `
name: test
description: "Test"
base:
  under: 12
cases: []
`)

	_, err := LoadScenario(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cases list is required")
}

func TestLoadScenario_BaseSelectors(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{
			name: "under_valid",
			yaml: `
name: test
description: "Test"
base:
  under: 12
cases:
  - op: max
    want: 11
`,
			wantErr: "",
		},
		{
			name: "first_valid",
			yaml: `
name: test
description: "Test"
base:
  first: 5
cases:
  - op: max
    want: 11
`,
			wantErr: "",
		},
		{
			name: "raw_valid",
			yaml: `
name: test
description: "Test"
base:
  raw: [2, 3, 5, 7, 11]
cases:
  - op: max
    want: 11
`,
			wantErr: "",
		},
		{
			name: "no_selector",
			yaml: `
name: test
description: "Test"
base: {}
cases:
  - op: max
    want: 11
`,
			wantErr: "exactly one of under, first, raw",
		},
		{
			name: "two_selectors",
			yaml: `
name: test
description: "Test"
base:
  under: 12
  first: 5
cases:
  - op: max
    want: 11
`,
			wantErr: "exactly one of under, first, raw",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadScenario(writeScenario(t, tt.yaml))

			if tt.wantErr == "" {
				require.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

func TestLoadScenario_CaseShapes(t *testing.T) {
	tests := []struct {
		name     string
		caseYAML string
		wantErr  string
	}{
		{
			name: "factor_valid",
			caseYAML: `
  - op: factor
    n: 24
    factors: {2: 3, 3: 1}
`,
			wantErr: "",
		},
		{
			name: "factor_none_valid",
			caseYAML: `
  - op: factor
    n: 23
    none: true
`,
			wantErr: "",
		},
		{
			name: "factor_missing_n",
			caseYAML: `
  - op: factor
    factors: {2: 3}
`,
			wantErr: "n is required for factor",
		},
		{
			name: "factor_with_want",
			caseYAML: `
  - op: factor
    n: 24
    want: 24
`,
			wantErr: "factor expects factors or none, not want",
		},
		{
			name: "factor_missing_expectation",
			caseYAML: `
  - op: factor
    n: 24
`,
			wantErr: "exactly one of factors, none is required for factor",
		},
		{
			name: "factor_double_expectation",
			caseYAML: `
  - op: factor
    n: 24
    factors: {2: 3, 3: 1}
    none: true
`,
			wantErr: "exactly one of factors, none is required for factor",
		},
		{
			name: "factor_with_operand_pair",
			caseYAML: `
  - op: factor
    n: 24
    a: 1
    factors: {2: 3, 3: 1}
`,
			wantErr: "a/b are not valid for factor",
		},
		{
			name: "gcd_valid",
			caseYAML: `
  - op: gcd
    a: 30
    b: 24
    want: 6
`,
			wantErr: "",
		},
		{
			name: "gcd_missing_b",
			caseYAML: `
  - op: gcd
    a: 30
    want: 6
`,
			wantErr: "a and b are required for gcd",
		},
		{
			name: "lcm_with_n",
			caseYAML: `
  - op: lcm
    a: 6
    b: 10
    n: 60
    want: 30
`,
			wantErr: "n is not valid for lcm",
		},
		{
			name: "gcd_with_factors",
			caseYAML: `
  - op: gcd
    a: 30
    b: 24
    factors: {2: 1, 3: 1}
`,
			wantErr: "gcd expects want or none, not factors",
		},
		{
			name: "lcm_missing_expectation",
			caseYAML: `
  - op: lcm
    a: 6
    b: 10
`,
			wantErr: "exactly one of want, none is required for lcm",
		},
		{
			name: "totient_valid",
			caseYAML: `
  - op: totient
    n: 60
    want: 16
`,
			wantErr: "",
		},
		{
			name: "divisors_missing_n",
			caseYAML: `
  - op: divisors
    want: 12
`,
			wantErr: "n is required for divisors",
		},
		{
			name: "roundtrip_valid",
			caseYAML: `
  - op: roundtrip
    n: 360
`,
			wantErr: "",
		},
		{
			name: "roundtrip_none_valid",
			caseYAML: `
  - op: roundtrip
    n: 254
    none: true
`,
			wantErr: "",
		},
		{
			name: "roundtrip_with_want",
			caseYAML: `
  - op: roundtrip
    n: 360
    want: 360
`,
			wantErr: "roundtrip expects n back implicitly",
		},
		{
			name: "max_valid",
			caseYAML: `
  - op: max
    want: 11
`,
			wantErr: "",
		},
		{
			name: "max_none_valid",
			caseYAML: `
  - op: max
    none: true
`,
			wantErr: "",
		},
		{
			name: "max_with_operand",
			caseYAML: `
  - op: max
    n: 11
    want: 11
`,
			wantErr: "max takes no operands",
		},
		{
			name: "max_missing_expectation",
			caseYAML: `
  - op: max
`,
			wantErr: "exactly one of want, none is required for max",
		},
		{
			name: "missing_op",
			caseYAML: `
  - n: 24
    factors: {2: 3}
`,
			wantErr: "op is required",
		},
		{
			name: "unknown_op",
			caseYAML: `
  - op: pow
    n: 24
    want: 16777216
`,
			wantErr: `unknown op "pow"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			content := `
name: test
description: "Test"
base:
  under: 12
cases:
` + tt.caseYAML

			_, err := LoadScenario(writeScenario(t, content))

			if tt.wantErr == "" {
				require.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

func TestLoadScenario_CaseIndexInError(t *testing.T) {
	// The failing case's position must be reported, not just the field.
	path := writeScenario(t, `
name: test
description: "Test"
base:
  under: 12
cases:
  - op: max
    want: 11
  - op: gcd
    a: 30
    want: 6
`)

	_, err := LoadScenario(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cases[1]")
}

func TestOpConstants(t *testing.T) {
	assert.Equal(t, "factor", OpFactor)
	assert.Equal(t, "gcd", OpGCD)
	assert.Equal(t, "lcm", OpLCM)
	assert.Equal(t, "totient", OpTotient)
	assert.Equal(t, "divisors", OpDivisors)
	assert.Equal(t, "roundtrip", OpRoundtrip)
	assert.Equal(t, "max", OpMax)
}

// TestLoadExampleScenarios validates the scenario files in testdata/scenarios.
// These serve as documentation and regression tests.
func TestLoadExampleScenarios(t *testing.T) {
	tests := []struct {
		name          string
		scenarioFile  string
		wantName      string
		wantCaseCount int
	}{
		{
			name:          "classic_pairs",
			scenarioFile:  "testdata/scenarios/classic_pairs.yaml",
			wantName:      "classic_pairs",
			wantCaseCount: 11,
		},
		{
			name:          "factor_certification",
			scenarioFile:  "testdata/scenarios/factor_certification.yaml",
			wantName:      "factor_certification",
			wantCaseCount: 8,
		},
		{
			name:          "totient_divisors",
			scenarioFile:  "testdata/scenarios/totient_divisors.yaml",
			wantName:      "totient_divisors",
			wantCaseCount: 10,
		},
		{
			name:          "raw_fixture",
			scenarioFile:  "testdata/scenarios/raw_fixture.yaml",
			wantName:      "raw_fixture",
			wantCaseCount: 5,
		},
		{
			name:          "empty_base",
			scenarioFile:  "testdata/scenarios/empty_base.yaml",
			wantName:      "empty_base",
			wantCaseCount: 7,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scenario, err := LoadScenario(tt.scenarioFile)
			require.NoError(t, err, "Failed to load example scenario %s", tt.scenarioFile)

			assert.Equal(t, tt.wantName, scenario.Name)
			assert.NotEmpty(t, scenario.Description)
			assert.Len(t, scenario.Cases, tt.wantCaseCount)
		})
	}
}
