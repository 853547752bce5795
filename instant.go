package tempus

import (
	"fmt"
	"math"
	"time"

	"github.com/roach88/tempus/civil"
)

const (
	secondsPerMinute = 60
	secondsPerHour   = 60 * secondsPerMinute
	secondsPerDay    = 24 * secondsPerHour

	nsecPerSec   = 1_000_000_000
	nsecPerMilli = 1_000_000

	// maxUnixDay and minUnixDay bound the day counts whose every
	// second of day still fits in an int64 count of Unix seconds.
	maxUnixDay = (math.MaxInt64 - secondsPerDay + 1) / secondsPerDay
	minUnixDay = math.MinInt64 / secondsPerDay
)

// Instant is a point on the global timeline: whole seconds since the
// Unix epoch plus a non-negative nanosecond remainder. Instants before
// the epoch carry negative seconds; the remainder stays in
// [0, 1e9), so the nanosecond timeline is continuous across zero.
//
// The split representation keeps the full int64 range of seconds
// addressable. A single int64 of nanoseconds would cap the range at
// roughly the years 1678..2262.
//
// Instant is a comparable value type; == reports the same point in
// time.
type Instant struct {
	sec  int64
	nsec int32
}

// Unix returns the Instant for sec seconds and nsec nanoseconds since
// the epoch. nsec may lie outside [0, 1e9); the excess is carried into
// the seconds, so Unix(0, -1) and Unix(-1, 999999999) are the same
// instant.
func Unix(sec, nsec int64) Instant {
	sec += floorDiv(nsec, nsecPerSec)
	nsec = floorMod(nsec, nsecPerSec)
	return Instant{sec: sec, nsec: int32(nsec)}
}

// UnixMilli returns the Instant for ms milliseconds since the epoch.
func UnixMilli(ms int64) Instant {
	return Instant{
		sec:  floorDiv(ms, 1000),
		nsec: int32(floorMod(ms, 1000) * nsecPerMilli),
	}
}

// UnixNano returns the Instant for ns nanoseconds since the epoch.
func UnixNano(ns int64) Instant {
	return Instant{
		sec:  floorDiv(ns, nsecPerSec),
		nsec: int32(floorMod(ns, nsecPerSec)),
	}
}

// Unix returns the whole seconds since the epoch, rounded toward
// negative infinity.
func (i Instant) Unix() int64 {
	return i.sec
}

// Nanosecond returns the sub-second remainder, in 0..999999999.
func (i Instant) Nanosecond() int {
	return int(i.nsec)
}

// UnixMilli returns the instant as milliseconds since the epoch. It
// fails with KindOverflow when the instant lies outside the range an
// int64 of milliseconds can carry.
func (i Instant) UnixMilli() (int64, error) {
	ms := i.sec * 1000
	if i.sec != 0 && ms/1000 != i.sec {
		return 0, civil.NewOverflowError("milliseconds", i.sec, "instant is not representable in milliseconds")
	}
	sum := ms + int64(i.nsec)/nsecPerMilli
	if sum < ms {
		return 0, civil.NewOverflowError("milliseconds", i.sec, "instant is not representable in milliseconds")
	}
	return sum, nil
}

// UnixNano returns the instant as nanoseconds since the epoch. It
// fails with KindOverflow when the instant lies outside the range an
// int64 of nanoseconds can carry, roughly the years 1678..2262.
func (i Instant) UnixNano() (int64, error) {
	ns := i.sec * nsecPerSec
	if i.sec != 0 && ns/nsecPerSec != i.sec {
		return 0, civil.NewOverflowError("nanoseconds", i.sec, "instant is not representable in nanoseconds")
	}
	sum := ns + int64(i.nsec)
	if sum < ns {
		return 0, civil.NewOverflowError("nanoseconds", i.sec, "instant is not representable in nanoseconds")
	}
	return sum, nil
}

// DateTime decomposes the instant into UTC civil fields. The
// decomposition is total: every int64 count of seconds, including
// negative ones, maps to exactly one proleptic-Gregorian date and
// 24-hour wall clock.
func (i Instant) DateTime() civil.DateTime {
	days := floorDiv(i.sec, secondsPerDay)
	rem := i.sec - days*secondsPerDay

	year, month, day := civil.DateFromDays(days)
	return civil.DateTime{
		Year:       year,
		Month:      month,
		Day:        day,
		Hour:       int(rem / secondsPerHour),
		Minute:     int(rem / secondsPerMinute % 60),
		Second:     int(rem % 60),
		Nanosecond: int(i.nsec),
	}
}

// Weekday returns the UTC day of the week of the instant. Day zero of
// the epoch is a Thursday.
func (i Instant) Weekday() civil.Weekday {
	return civil.WeekdayFromDays(floorDiv(i.sec, secondsPerDay))
}

// ISOWeek returns the ISO 8601 week-numbering year and week of the
// instant's UTC date.
func (i Instant) ISOWeek() (isoYear, week int) {
	return civil.ISOWeekFromDays(floorDiv(i.sec, secondsPerDay))
}

// YearDay returns the 1-based ordinal day of the year of the instant's
// UTC date.
func (i Instant) YearDay() int {
	return civil.YearDayFromDays(floorDiv(i.sec, secondsPerDay))
}

// Before reports whether i is earlier than j.
func (i Instant) Before(j Instant) bool {
	return i.sec < j.sec || (i.sec == j.sec && i.nsec < j.nsec)
}

// After reports whether i is later than j.
func (i Instant) After(j Instant) bool {
	return j.Before(i)
}

// Sub returns the elapsed time from j to i. It fails with KindOverflow
// when the span does not fit a time.Duration, whose int64 nanosecond
// representation caps at roughly 292 years.
func (i Instant) Sub(j Instant) (time.Duration, error) {
	dsec := i.sec - j.sec
	if (i.sec >= j.sec) != (dsec >= 0) {
		return 0, civil.NewOverflowError("span", dsec, "span between instants is not representable as a duration")
	}
	ns := dsec * nsecPerSec
	if dsec != 0 && ns/nsecPerSec != dsec {
		return 0, civil.NewOverflowError("span", dsec, "span between instants is not representable as a duration")
	}
	dns := int64(i.nsec) - int64(j.nsec)
	sum := ns + dns
	if (dns > 0 && sum < ns) || (dns < 0 && sum > ns) {
		return 0, civil.NewOverflowError("span", dsec, "span between instants is not representable as a duration")
	}
	return time.Duration(sum), nil
}

// String renders the fixed debugging form of the UTC decomposition
// with a "Z" suffix.
func (i Instant) String() string {
	return fmt.Sprintf("%sZ", i.DateTime())
}

// FromDateTime composes civil fields, read as UTC, into an Instant.
// Validation is strict: a nonexistent date fails with KindInvalidDate,
// a clock field outside its domain with KindOutOfRange, and a date
// whose seconds do not fit in int64 with KindOverflow. Nothing is
// normalized on the way in.
func FromDateTime(dt civil.DateTime) (Instant, error) {
	if err := dt.Validate(); err != nil {
		return Instant{}, err
	}

	days, err := civil.DaysFromDate(dt.Year, dt.Month, dt.Day)
	if err != nil {
		return Instant{}, err
	}
	if days > maxUnixDay || days < minUnixDay {
		return Instant{}, civil.NewOverflowError("year", int64(dt.Year), "date is outside the range representable in seconds")
	}

	sec := days*secondsPerDay +
		int64(dt.Hour)*secondsPerHour +
		int64(dt.Minute)*secondsPerMinute +
		int64(dt.Second)
	return Instant{sec: sec, nsec: int32(dt.Nanosecond)}, nil
}

// floorDiv returns x divided by m rounded toward negative infinity,
// assuming m > 0.
func floorDiv(x, m int64) int64 {
	q := x / m
	if x%m < 0 {
		q--
	}
	return q
}

// floorMod returns x mod m with the sign of m, assuming m > 0.
func floorMod(x, m int64) int64 {
	r := x % m
	if r < 0 {
		r += m
	}
	return r
}
