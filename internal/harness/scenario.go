package harness

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Scenario defines a conversion conformance scenario.
// Scenarios decompose known epoch instants through a deterministic
// engine and check the derived readings against stated expectations.
type Scenario struct {
	// Name uniquely identifies this scenario and names its golden file.
	Name string `yaml:"name"`

	// Description explains what this scenario checks.
	Description string `yaml:"description"`

	// Zone declares the zone the engine resolves local readings in.
	// Omitted means UTC.
	Zone *ZoneSpec `yaml:"zone,omitempty"`

	// Preset names the rendering preset for the formatted report
	// field. Omitted means full.
	Preset string `yaml:"preset,omitempty"`

	// Cases are the epoch instants to decompose and check.
	Cases []Case `yaml:"cases"`
}

// ZoneSpec declares the zone a scenario runs under.
// Exactly one of Fixed and Seasonal is set.
type ZoneSpec struct {
	// Fixed is a constant displacement east of UTC in seconds.
	Fixed *int `yaml:"fixed,omitempty"`

	// Seasonal is a two-offset zone that flips on the month.
	Seasonal *SeasonalSpec `yaml:"seasonal,omitempty"`
}

// SeasonalSpec parameterizes a two-offset zone.
type SeasonalSpec struct {
	// Standard is the standard displacement east of UTC in seconds.
	Standard int `yaml:"standard"`

	// Daylight is the displacement during the daylight months.
	Daylight int `yaml:"daylight"`

	// Southern flips the daylight months to the southern hemisphere.
	Southern bool `yaml:"southern,omitempty"`
}

// Case is one epoch instant with its expected readings.
// Expectation fields are optional; empty ones are not checked.
type Case struct {
	// Epoch is the instant in seconds since 1970-01-01T00:00:00Z.
	Epoch int64 `yaml:"epoch"`

	// Nanos is the sub-second part of the instant, in 0..999999999.
	Nanos int64 `yaml:"nanos,omitempty"`

	// UTC is the expected UTC reading as "YYYY-MM-DD hh:mm:ss".
	UTC string `yaml:"utc,omitempty"`

	// Weekday is the expected UTC weekday name. Full English names and
	// their three-letter abbreviations are accepted in any case.
	Weekday string `yaml:"weekday,omitempty"`

	// Month is the expected UTC month name, spelled like Weekday.
	Month string `yaml:"month,omitempty"`

	// ISOWeek is the expected ISO week as "YYYY-Www". The week year
	// can differ from the calendar year near a year boundary.
	ISOWeek string `yaml:"iso_week,omitempty"`

	// YearDay is the expected 1-based ordinal day of the UTC year.
	YearDay int `yaml:"year_day,omitempty"`

	// Leap is the expected leap-year verdict for the UTC year.
	Leap *bool `yaml:"leap,omitempty"`

	// Local is the expected zone reading as "YYYY-MM-DD hh:mm:ss".
	Local string `yaml:"local,omitempty"`

	// LocalWeekday is the expected weekday of the zone reading, which
	// near midnight can differ from the UTC weekday.
	LocalWeekday string `yaml:"local_weekday,omitempty"`

	// Offset is the expected displacement as a signed "±HH:MM" pair.
	Offset string `yaml:"offset,omitempty"`

	// Daylight is the expected daylight-saving verdict.
	Daylight *bool `yaml:"daylight,omitempty"`

	// Formatted is the expected rendering of the UTC reading under
	// the scenario preset.
	Formatted string `yaml:"formatted,omitempty"`
}

// LoadScenario reads and parses a scenario YAML file.
// Returns an error if the file doesn't exist, is malformed, contains
// unknown fields (typos), or is missing required fields.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}

	// Strict field validation catches typos like "case:" vs "cases:"
	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

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

	if len(s.Cases) == 0 {
		return fmt.Errorf("cases list is required and must be non-empty")
	}

	if s.Zone != nil {
		if err := validateZone(s.Zone); err != nil {
			return err
		}
	}

	for i, c := range s.Cases {
		if c.Nanos < 0 || c.Nanos > 999_999_999 {
			return fmt.Errorf("cases[%d]: nanos must be in 0..999999999", i)
		}
	}

	return nil
}

// validateZone checks that the zone declaration selects exactly one
// provider shape.
func validateZone(z *ZoneSpec) error {
	if z.Fixed != nil && z.Seasonal != nil {
		return fmt.Errorf("zone: exactly one of fixed and seasonal is required")
	}
	if z.Fixed == nil && z.Seasonal == nil {
		return fmt.Errorf("zone: exactly one of fixed and seasonal is required")
	}
	return nil
}
