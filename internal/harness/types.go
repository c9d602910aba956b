package harness

// Result is the outcome of a test scenario execution.
type Result struct {
	// Scenario is the executed scenario's name.
	Scenario string `json:"scenario"`

	// Pass indicates overall test success.
	// True if every case matched its expected outcome.
	Pass bool `json:"pass"`

	// Base renders the constructed prime base, e.g. "[2 3 5 7 11]".
	// Included in golden reports so base construction is pinned too.
	Base string `json:"base"`

	// Cases contains one outcome per scenario case, in order.
	// Used for golden comparison and per-case assertions.
	Cases []CaseResult `json:"cases"`

	// Errors contains validation error messages.
	// Empty if Pass is true.
	Errors []string `json:"errors,omitempty"`
}

// CaseResult records the evaluation of a single case.
type CaseResult struct {
	// Index is the case's position in the scenario, 0-based.
	Index int `json:"index"`

	// Op is the evaluated operation.
	Op string `json:"op"`

	// Input renders the invocation, e.g. "gcd(30, 24)".
	Input string `json:"input"`

	// Got renders the actual outcome: an integer, a factorization in
	// prime-power form, or "none".
	Got string `json:"got"`

	// Want renders the expected outcome in the same form.
	Want string `json:"want"`

	// Pass indicates whether Got matched Want.
	Pass bool `json:"pass"`

	// Diff holds a structural diff for factor-map mismatches.
	// Empty for passing cases and for scalar ops.
	Diff string `json:"diff,omitempty"`
}

// NewResult creates a new passing result for the named scenario.
// Used as the starting point for scenario execution.
func NewResult(scenario string) *Result {
	return &Result{
		Scenario: scenario,
		Pass:     true,
		Cases:    []CaseResult{},
		Errors:   []string{},
	}
}

// AddError adds a validation error and marks the result as failed.
func (r *Result) AddError(err string) {
	r.Errors = append(r.Errors, err)
	r.Pass = false
}
