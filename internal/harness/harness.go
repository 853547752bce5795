package harness

import (
	"fmt"

	"github.com/roach88/tempus"
	"github.com/roach88/tempus/civil"
	"github.com/roach88/tempus/internal/testutil"
)

// Run decomposes every case in the scenario through an engine built
// from the scenario's zone and preset, records the derived readings,
// and checks them against the stated expectations.
//
// Engine construction and conversion failures abort the run; a stated
// expectation that does not match is recorded on the result instead.
func Run(scenario *Scenario) (*Result, error) {
	zone, label, err := buildZone(scenario.Zone)
	if err != nil {
		return nil, err
	}

	opts := tempus.PresetFull()
	if scenario.Preset != "" {
		opts, err = tempus.PresetByName(scenario.Preset)
		if err != nil {
			return nil, fmt.Errorf("scenario preset: %w", err)
		}
	}

	eng := tempus.New(nil, zone, tempus.WithDefaultFormat(opts))

	result := NewResult(label)
	for i, c := range scenario.Cases {
		report, err := buildReport(eng, opts, c)
		if err != nil {
			return nil, fmt.Errorf("cases[%d] (epoch %d): %w", i, c.Epoch, err)
		}
		result.Reports = append(result.Reports, report)

		for _, mismatch := range compareCase(i, c, report) {
			result.AddError(mismatch)
		}
	}

	return result, nil
}

// buildZone resolves the scenario zone declaration into a provider and
// a stable label for reports.
func buildZone(spec *ZoneSpec) (tempus.ZoneProvider, string, error) {
	if spec == nil {
		return tempus.UTC, "UTC", nil
	}
	if err := validateZone(spec); err != nil {
		return nil, "", err
	}

	if spec.Fixed != nil {
		zone, err := tempus.NewFixedZone(*spec.Fixed)
		if err != nil {
			return nil, "", fmt.Errorf("zone.fixed: %w", err)
		}
		off, err := tempus.NewOffset(*spec.Fixed)
		if err != nil {
			return nil, "", fmt.Errorf("zone.fixed: %w", err)
		}
		return zone, "fixed " + off.String(), nil
	}

	s := spec.Seasonal
	std, err := tempus.NewOffset(s.Standard)
	if err != nil {
		return nil, "", fmt.Errorf("zone.seasonal.standard: %w", err)
	}
	day, err := tempus.NewOffset(s.Daylight)
	if err != nil {
		return nil, "", fmt.Errorf("zone.seasonal.daylight: %w", err)
	}

	label := fmt.Sprintf("seasonal %s/%s", std, day)
	if s.Southern {
		label += " southern"
	}
	zone := testutil.SeasonalZone{
		Standard: s.Standard,
		Daylight: s.Daylight,
		Southern: s.Southern,
	}
	return zone, label, nil
}

// buildReport derives every report field from one snapshot of the
// case instant.
func buildReport(eng *tempus.Engine, opts tempus.FormatOptions, c Case) (CaseReport, error) {
	at := tempus.Unix(c.Epoch, c.Nanos)

	snap, err := eng.SnapshotAt(at)
	if err != nil {
		return CaseReport{}, err
	}

	localWeekday, err := snap.LocalWeekday()
	if err != nil {
		return CaseReport{}, err
	}

	daylight, err := eng.DaylightActiveAt(at)
	if err != nil {
		return CaseReport{}, err
	}

	formatted, err := snap.FormatUTC(opts)
	if err != nil {
		return CaseReport{}, err
	}

	isoYear, isoWeek := snap.ISOWeek()

	return CaseReport{
		Epoch:        c.Epoch,
		Nanos:        c.Nanos,
		UTC:          clockString(snap.UTC),
		Weekday:      snap.Weekday().String(),
		Month:        snap.UTC.Month.String(),
		ISOWeek:      fmt.Sprintf("%d-W%02d", isoYear, isoWeek),
		YearDay:      at.YearDay(),
		Leap:         civil.IsLeapYear(snap.UTC.Year),
		Local:        clockString(snap.Local),
		LocalWeekday: localWeekday.String(),
		Offset:       snap.Offset.String(),
		Daylight:     daylight,
		Formatted:    formatted,
	}, nil
}

// clockString renders a reading to seconds precision. The sub-second
// remainder is reported through the nanos and formatted fields.
func clockString(dt civil.DateTime) string {
	return fmt.Sprintf("%04d-%02d-%02d %02d:%02d:%02d",
		dt.Year, int(dt.Month), dt.Day, dt.Hour, dt.Minute, dt.Second)
}
