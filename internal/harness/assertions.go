package harness

import (
	"fmt"

	"github.com/roach88/tempus/civil"
)

// compareCase reports the mismatches between a derived report and the
// case's stated expectations. Unstated fields are skipped, so a case
// pins down exactly the readings it is about.
func compareCase(index int, c Case, report CaseReport) []string {
	var mismatches []string

	checkString := func(field, want, got string) {
		if want != "" && want != got {
			mismatches = append(mismatches, fmt.Sprintf(
				"cases[%d] (epoch %d): %s is %q, want %q",
				index, c.Epoch, field, got, want))
		}
	}
	checkBool := func(field string, want *bool, got bool) {
		if want != nil && *want != got {
			mismatches = append(mismatches, fmt.Sprintf(
				"cases[%d] (epoch %d): %s is %t, want %t",
				index, c.Epoch, field, got, *want))
		}
	}

	checkString("utc", c.UTC, report.UTC)
	checkString("weekday", wantWeekday(c.Weekday), report.Weekday)
	checkString("month", wantMonth(c.Month), report.Month)
	checkString("iso_week", c.ISOWeek, report.ISOWeek)
	checkString("local", c.Local, report.Local)
	checkString("local_weekday", wantWeekday(c.LocalWeekday), report.LocalWeekday)
	checkString("offset", c.Offset, report.Offset)
	checkString("formatted", c.Formatted, report.Formatted)

	if c.YearDay != 0 && c.YearDay != report.YearDay {
		mismatches = append(mismatches, fmt.Sprintf(
			"cases[%d] (epoch %d): year_day is %d, want %d",
			index, c.Epoch, report.YearDay, c.YearDay))
	}

	checkBool("leap", c.Leap, report.Leap)
	checkBool("daylight", c.Daylight, report.Daylight)

	return mismatches
}

// wantWeekday canonicalizes an expected weekday name, so a scenario can
// write "Mon" or "monday" for "Monday". A spelling that is not a
// weekday name at all passes through and fails the comparison as
// written.
func wantWeekday(s string) string {
	if s == "" {
		return ""
	}
	if d, err := civil.ParseWeekday(s); err == nil {
		return d.String()
	}
	return s
}

// wantMonth canonicalizes an expected month name the same way.
func wantMonth(s string) string {
	if s == "" {
		return ""
	}
	if m, err := civil.ParseMonth(s); err == nil {
		return m.String()
	}
	return s
}
