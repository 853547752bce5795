package civil

import "fmt"

// DateTime is the civil decomposition of an instant: a proleptic
// Gregorian date plus a 24-hour wall clock and a nanosecond remainder.
// Fields carry no zone information; the producer decides which zone's
// wall clock they describe.
type DateTime struct {
	Year   int
	Month  Month
	Day    int
	Hour   int
	Minute int
	Second int

	// Nanosecond is the sub-second remainder, in 0..999999999.
	Nanosecond int
}

// Validate checks every field against its domain. A month index
// outside January..December or a clock field outside its range fails
// with KindOutOfRange; a day that does not exist in the month fails
// with KindInvalidDate. Validation never normalizes.
func (dt DateTime) Validate() error {
	if err := ValidateDate(dt.Year, dt.Month, dt.Day); err != nil {
		return err
	}
	if dt.Hour < 0 || dt.Hour > 23 {
		return NewOutOfRangeError("hour", int64(dt.Hour), "hour must be in 0..23")
	}
	if dt.Minute < 0 || dt.Minute > 59 {
		return NewOutOfRangeError("minute", int64(dt.Minute), "minute must be in 0..59")
	}
	if dt.Second < 0 || dt.Second > 59 {
		return NewOutOfRangeError("second", int64(dt.Second), "second must be in 0..59")
	}
	if dt.Nanosecond < 0 || dt.Nanosecond > 999_999_999 {
		return NewOutOfRangeError("nanosecond", int64(dt.Nanosecond), "nanosecond must be in 0..999999999")
	}
	return nil
}

// Millisecond returns the whole milliseconds of the sub-second
// remainder, in 0..999.
func (dt DateTime) Millisecond() int {
	return dt.Nanosecond / 1_000_000
}

// Microsecond returns the whole microseconds of the sub-second
// remainder, in 0..999999.
func (dt DateTime) Microsecond() int {
	return dt.Nanosecond / 1_000
}

// Weekday returns the day of the week of the date part.
func (dt DateTime) Weekday() (Weekday, error) {
	days, err := DaysFromDate(dt.Year, dt.Month, dt.Day)
	if err != nil {
		return 0, err
	}
	return WeekdayFromDays(days), nil
}

// YearDay returns the 1-based ordinal day of the year of the date
// part.
func (dt DateTime) YearDay() (int, error) {
	return YearDay(dt.Year, dt.Month, dt.Day)
}

// ISOWeek returns the ISO 8601 week-numbering year and week of the
// date part.
func (dt DateTime) ISOWeek() (isoYear, week int, err error) {
	return ISOWeek(dt.Year, dt.Month, dt.Day)
}

// String renders a fixed debugging form. Configurable rendering lives
// in the formatter of the root package.
func (dt DateTime) String() string {
	return fmt.Sprintf("%04d-%02d-%02d %02d:%02d:%02d.%09d",
		dt.Year, int(dt.Month), dt.Day, dt.Hour, dt.Minute, dt.Second, dt.Nanosecond)
}
