package civil

// Day arithmetic adapted from the standard library's civil calendar
// computations, re-anchored so that day 0 is the Unix epoch.

const (
	// absoluteZeroYear is the zero year of the cycle arithmetic. It
	// must be 1 mod 400 so that a fresh 400-year cycle starts there.
	absoluteZeroYear = -292277022399

	// internalYear anchors the offset constant below. The product with
	// 365.2425 is integral when taken against year 1.
	internalYear = 1

	// Offsets between the absolute day scale and the year-1 scale.
	absoluteToInternalDays = (absoluteZeroYear - internalYear) * 365.2425
	internalToAbsoluteDays = -absoluteToInternalDays

	// unixToInternalDays counts the days from 0001-01-01 to 1970-01-01.
	unixToInternalDays = 1969*365 + 1969/4 - 1969/100 + 1969/400
	unixToAbsoluteDays = unixToInternalDays + internalToAbsoluteDays

	daysPer400Years = 365*400 + 97
	daysPer100Years = 365*100 + 24
	daysPer4Years   = 365*4 + 1
)

// DateFromDays converts a count of days since the Unix epoch (day 0 is
// 1970-01-01) to its proleptic-Gregorian date. Negative counts address
// days before the epoch and decompose with the same exactness as
// positive ones. The conversion is exact for every count derivable
// from an int64 count of seconds, and far beyond.
func DateFromDays(days int64) (year int, month Month, day int) {
	year, month, day, _ = dateFromDays(days)
	return year, month, day
}

func dateFromDays(days int64) (year int, month Month, day int, yday int) {
	d := days + unixToAbsoluteDays

	// Day counts below the absolute zero are reachable only within a
	// few centuries of the minimum int64 second count. Shifting by
	// whole 400-year cycles changes the year alone, so decompose in
	// range and shift the year back afterwards.
	var cycles int64
	if d < 0 {
		cycles = (-d-1)/daysPer400Years + 1
		d += cycles * daysPer400Years
	}

	year, month, day, yday = absDate(uint64(d))
	year -= int(400 * cycles)
	return year, month, day, yday
}

// absDate converts a day count since the absolute zero year into civil
// fields. yday is 0-based.
func absDate(abs uint64) (year int, month Month, day int, yday int) {
	d := abs

	// Account for 400-year cycles.
	n := d / daysPer400Years
	y := 400 * n
	d -= daysPer400Years * n

	// Cut off 100-year cycles. The last cycle of a 400-year run has
	// one extra leap day, so on the final day the quotient reads 4
	// instead of 3. Cut it back down by subtracting n>>2.
	n = d / daysPer100Years
	n -= n >> 2
	y += 100 * n
	d -= daysPer100Years * n

	// Cut off 4-year cycles. The last cycle has a missing leap year,
	// which does not affect the computation.
	n = d / daysPer4Years
	y += 4 * n
	d -= daysPer4Years * n

	// Cut off years within a 4-year cycle. The last year is a leap
	// year, so on its final day the quotient reads 4 instead of 3.
	n = d / 365
	n -= n >> 2
	y += n
	d -= 365 * n

	year = int(int64(y) + absoluteZeroYear)
	yday = int(d)

	day = yday
	if IsLeapYear(year) {
		switch {
		case day > 31+29-1:
			// Past the leap day; pretend it was not there.
			day--
		case day == 31+29-1:
			return year, February, 29, yday
		}
	}

	// Estimate the month assuming 31-day months. The estimate is low
	// by at most one month, so adjust against the cumulative table.
	m := day / 31
	end := daysBefore[m+1]
	var begin int
	if day >= end {
		m++
		begin = end
	} else {
		begin = daysBefore[m]
	}

	month = Month(m + 1)
	day = day - begin + 1
	return year, month, day, yday
}

// DaysFromDate converts a proleptic-Gregorian date to its count of
// days since the Unix epoch. It fails with KindOutOfRange when month
// is outside January..December and with KindInvalidDate when the day
// does not exist in the month, such as February 30. Out-of-domain
// inputs are never normalized to an adjacent date.
func DaysFromDate(year int, month Month, day int) (int64, error) {
	if err := ValidateDate(year, month, day); err != nil {
		return 0, err
	}

	d := daysFromYear(year)
	d += int64(daysBefore[month-1])
	if month >= March && IsLeapYear(year) {
		d++
	}
	d += int64(day - 1)

	return d - unixToAbsoluteDays, nil
}

// ValidateDate checks a year/month/day triple without converting it.
func ValidateDate(year int, month Month, day int) error {
	limit, err := DaysInMonth(year, month)
	if err != nil {
		return err
	}
	if day < 1 || day > limit {
		return NewInvalidDateError(year, month, day)
	}
	return nil
}

// YearDayFromDays returns the 1-based ordinal day of the year of the
// given day count relative to the Unix epoch. It is total.
func YearDayFromDays(days int64) int {
	_, _, _, yday := dateFromDays(days)
	return yday + 1
}

// YearDay returns the 1-based ordinal day of the year for the given
// date, in 1..365 for common years and 1..366 for leap years.
func YearDay(year int, month Month, day int) (int, error) {
	if err := ValidateDate(year, month, day); err != nil {
		return 0, err
	}
	yd := daysBefore[month-1] + day
	if month > February && IsLeapYear(year) {
		yd++
	}
	return yd, nil
}

// daysFromYear counts the days from the absolute zero year to the
// start of the given year. Flooring the 400-year division keeps the
// count correct for years below the zero; the later divisions then
// operate on a non-negative remainder.
func daysFromYear(year int) int64 {
	y := int64(year) - absoluteZeroYear

	n := floorDiv(y, 400)
	y -= 400 * n
	d := daysPer400Years * n

	n = y / 100
	y -= 100 * n
	d += daysPer100Years * n

	n = y / 4
	y -= 4 * n
	d += daysPer4Years * n

	d += 365 * y
	return d
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
