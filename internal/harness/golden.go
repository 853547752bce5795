package harness

import (
	"encoding/json"
	"testing"

	"github.com/sebdah/goldie/v2"
)

// ReportSnapshot is the golden-file form of a scenario run: the name,
// the resolved zone label and every derived reading, marshaled with
// stable field order for deterministic comparison.
type ReportSnapshot struct {
	ScenarioName string       `json:"scenario_name"`
	Zone         string       `json:"zone"`
	Reports      []CaseReport `json:"reports"`
}

// RunWithGolden executes a scenario and compares the derived readings
// against a golden file in testdata/golden/{scenario.Name}.golden.
//
// To regenerate golden files, run:
//
//	go test ./internal/harness -update
//
// Returns error if the scenario run itself fails. Test failure (via
// goldie) occurs if the readings don't match the golden file.
func RunWithGolden(t *testing.T, scenario *Scenario) error {
	t.Helper()

	result, err := Run(scenario)
	if err != nil {
		return err
	}

	AssertGolden(t, scenario.Name, result)
	return nil
}

// AssertGolden compares an already-obtained result against the golden
// file for the given scenario name. Useful when the caller has run the
// scenario itself to check Pass first.
func AssertGolden(t *testing.T, scenarioName string, result *Result) {
	t.Helper()

	snapshot := ReportSnapshot{
		ScenarioName: scenarioName,
		Zone:         result.Zone,
		Reports:      result.Reports,
	}

	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		t.Fatalf("marshaling report snapshot: %v", err)
	}
	data = append(data, '\n')

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, scenarioName, data)
}
