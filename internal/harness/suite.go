package harness

import (
	"fmt"
	"path/filepath"
)

// EmptySuiteError is returned when a suite directory contains no scenario
// files. An empty conformance suite almost always means a wrong path, so
// it is an error rather than a vacuous pass.
type EmptySuiteError struct {
	Dir string
}

// Error implements the error interface.
func (e *EmptySuiteError) Error() string {
	return fmt.Sprintf("no scenario files (*.yaml) found in %q", e.Dir)
}

// SuiteResult summarizes a directory-wide conformance run.
type SuiteResult struct {
	// TotalScenarios is the number of scenario files encountered.
	TotalScenarios int `json:"total_scenarios"`

	// TotalCases is the number of cases evaluated across all scenarios
	// that loaded successfully.
	TotalCases int `json:"total_cases"`

	// Passed and Failed count scenarios, not cases. A scenario that fails
	// to load counts as failed.
	Passed int `json:"passed"`
	Failed int `json:"failed"`

	// Failures carries one entry per failed scenario.
	Failures []ScenarioFailure `json:"failures,omitempty"`
}

// ScenarioFailure describes one failed scenario in a suite run.
type ScenarioFailure struct {
	// Scenario is the scenario's name; empty if the file failed to load.
	Scenario string `json:"scenario,omitempty"`

	// Path is the scenario file path.
	Path string `json:"path"`

	// Errors holds the load error or the per-case failure messages.
	Errors []string `json:"errors"`
}

// RunDir loads and runs every *.yaml scenario in dir and aggregates the
// outcomes. Files run in lexical order. A scenario that fails to load is
// recorded as a failure and does not abort the rest of the suite.
//
// For each scenario file:
// 1. Load and validate the YAML
// 2. Run it via Run
// 3. Collect pass/fail and failure messages
func RunDir(dir string) (*SuiteResult, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.yaml"))
	if err != nil {
		return nil, fmt.Errorf("failed to list scenario files: %w", err)
	}
	if len(paths) == 0 {
		return nil, &EmptySuiteError{Dir: dir}
	}

	result := &SuiteResult{}
	for _, path := range paths {
		result.TotalScenarios++

		scenario, err := LoadScenario(path)
		if err != nil {
			result.Failed++
			result.Failures = append(result.Failures, ScenarioFailure{
				Path:   path,
				Errors: []string{err.Error()},
			})
			continue
		}

		runResult := Run(scenario)
		result.TotalCases += len(runResult.Cases)

		if !runResult.Pass {
			result.Failed++
			result.Failures = append(result.Failures, ScenarioFailure{
				Scenario: scenario.Name,
				Path:     path,
				Errors:   runResult.Errors,
			})
			continue
		}

		result.Passed++
	}

	return result, nil
}
