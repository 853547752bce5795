package harness

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeScenarioFile writes scenario YAML to a temp file and returns
// its path.
func writeScenarioFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadScenario_ValidFile(t *testing.T) {
	path := writeScenarioFile(t, `
name: east_of_utc
description: "Eastern fixed zone readings"
zone:
  fixed: 19800
preset: full
cases:
  - epoch: 1728933069
    nanos: 500
    utc: "2024-10-14 19:11:09"
    weekday: Monday
    local_weekday: Tuesday
    offset: "+05:30"
    leap: true
    daylight: false
`)

	scenario, err := LoadScenario(path)
	require.NoError(t, err)

	assert.Equal(t, "east_of_utc", scenario.Name)
	assert.Equal(t, "Eastern fixed zone readings", scenario.Description)
	require.NotNil(t, scenario.Zone)
	require.NotNil(t, scenario.Zone.Fixed)
	assert.Equal(t, 19800, *scenario.Zone.Fixed)
	assert.Nil(t, scenario.Zone.Seasonal)
	assert.Equal(t, "full", scenario.Preset)

	require.Len(t, scenario.Cases, 1)
	c := scenario.Cases[0]
	assert.Equal(t, int64(1728933069), c.Epoch)
	assert.Equal(t, int64(500), c.Nanos)
	assert.Equal(t, "2024-10-14 19:11:09", c.UTC)
	assert.Equal(t, "Monday", c.Weekday)
	assert.Equal(t, "Tuesday", c.LocalWeekday)
	assert.Equal(t, "+05:30", c.Offset)
	require.NotNil(t, c.Leap)
	assert.True(t, *c.Leap)
	require.NotNil(t, c.Daylight)
	assert.False(t, *c.Daylight)
}

func TestLoadScenario_SeasonalZone(t *testing.T) {
	path := writeScenarioFile(t, `
name: southern_summer
description: "Southern daylight months"
zone:
  seasonal:
    standard: 36000
    daylight: 39600
    southern: true
cases:
  - epoch: 1705320000
    daylight: true
`)

	scenario, err := LoadScenario(path)
	require.NoError(t, err)

	require.NotNil(t, scenario.Zone)
	require.NotNil(t, scenario.Zone.Seasonal)
	assert.Equal(t, 36000, scenario.Zone.Seasonal.Standard)
	assert.Equal(t, 39600, scenario.Zone.Seasonal.Daylight)
	assert.True(t, scenario.Zone.Seasonal.Southern)
}

func TestLoadScenario_MissingFile(t *testing.T) {
	_, err := LoadScenario(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read scenario file")
}

func TestLoadScenario_MalformedYAML(t *testing.T) {
	path := writeScenarioFile(t, "name: [unclosed")
	_, err := LoadScenario(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse YAML")
}

func TestLoadScenario_UnknownFieldsRejected(t *testing.T) {
	path := writeScenarioFile(t, `
name: typo
description: "catches field typos"
casez:
  - epoch: 0
`)
	_, err := LoadScenario(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "casez")
}

func TestLoadScenario_MissingName(t *testing.T) {
	path := writeScenarioFile(t, `
description: "unnamed"
cases:
  - epoch: 0
`)
	_, err := LoadScenario(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "name is required")
}

func TestLoadScenario_MissingDescription(t *testing.T) {
	path := writeScenarioFile(t, `
name: undescribed
cases:
  - epoch: 0
`)
	_, err := LoadScenario(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "description is required")
}

func TestLoadScenario_MissingCases(t *testing.T) {
	path := writeScenarioFile(t, `
name: empty
description: "no cases"
`)
	_, err := LoadScenario(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cases list is required")
}

func TestLoadScenario_ZoneBothShapes(t *testing.T) {
	path := writeScenarioFile(t, `
name: overdeclared
description: "fixed and seasonal at once"
zone:
  fixed: 3600
  seasonal:
    standard: 0
    daylight: 3600
cases:
  - epoch: 0
`)
	_, err := LoadScenario(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exactly one of fixed and seasonal")
}

func TestLoadScenario_ZoneNeitherShape(t *testing.T) {
	path := writeScenarioFile(t, `
name: underdeclared
description: "zone with no shape"
zone: {}
cases:
  - epoch: 0
`)
	_, err := LoadScenario(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exactly one of fixed and seasonal")
}

func TestLoadScenario_NanosBelowRange(t *testing.T) {
	path := writeScenarioFile(t, `
name: negative_nanos
description: "nanos out of range"
cases:
  - epoch: 0
    nanos: -1
`)
	_, err := LoadScenario(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cases[0]: nanos must be in 0..999999999")
}

func TestLoadScenario_NanosAboveRange(t *testing.T) {
	path := writeScenarioFile(t, `
name: oversized_nanos
description: "nanos out of range"
cases:
  - epoch: 0
    nanos: 1000000000
`)
	_, err := LoadScenario(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cases[0]: nanos must be in 0..999999999")
}

func TestLoadScenario_NegativeEpochAllowed(t *testing.T) {
	path := writeScenarioFile(t, `
name: before_the_epoch
description: "instants before 1970 are valid"
cases:
  - epoch: -1
    utc: "1969-12-31 23:59:59"
`)
	scenario, err := LoadScenario(path)
	require.NoError(t, err)
	assert.Equal(t, int64(-1), scenario.Cases[0].Epoch)
}

func TestLoadExampleScenarios(t *testing.T) {
	paths, err := filepath.Glob(filepath.Join("testdata", "scenarios", "*.yaml"))
	require.NoError(t, err)
	require.NotEmpty(t, paths)

	for _, path := range paths {
		scenario, err := LoadScenario(path)
		require.NoError(t, err, "loading %s", path)
		assert.NotEmpty(t, scenario.Name)
		assert.NotEmpty(t, scenario.Cases)
	}
}
