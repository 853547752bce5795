package civil

import "strconv"

// Month numbers a month of the year, January = 1.
type Month int

const (
	January Month = 1 + iota
	February
	March
	April
	May
	June
	July
	August
	September
	October
	November
	December
)

// monthNames is the static month naming table, indexed by Month-1.
var monthNames = [12]string{
	"January",
	"February",
	"March",
	"April",
	"May",
	"June",
	"July",
	"August",
	"September",
	"October",
	"November",
	"December",
}

// Name returns the English name of the month. It fails with a
// KindOutOfRange error when m is not in January..December.
func (m Month) Name() (string, error) {
	if m < January || m > December {
		return "", NewOutOfRangeError("month", int64(m), "month index must be in 1..12")
	}
	return monthNames[m-1], nil
}

// String implements fmt.Stringer for logging and debugging. Unlike
// Name, it never fails: out-of-range values render as "Month(n)".
func (m Month) String() string {
	if name, err := m.Name(); err == nil {
		return name
	}
	return "Month(" + strconv.Itoa(int(m)) + ")"
}

// daysBefore counts the days in a non-leap year strictly before the
// month that begins at index i. daysBefore[12] is the full year.
var daysBefore = [13]int{
	0,
	31,
	31 + 28,
	31 + 28 + 31,
	31 + 28 + 31 + 30,
	31 + 28 + 31 + 30 + 31,
	31 + 28 + 31 + 30 + 31 + 30,
	31 + 28 + 31 + 30 + 31 + 30 + 31,
	31 + 28 + 31 + 30 + 31 + 30 + 31 + 31,
	31 + 28 + 31 + 30 + 31 + 30 + 31 + 31 + 30,
	31 + 28 + 31 + 30 + 31 + 30 + 31 + 31 + 30 + 31,
	31 + 28 + 31 + 30 + 31 + 30 + 31 + 31 + 30 + 31 + 30,
	31 + 28 + 31 + 30 + 31 + 30 + 31 + 31 + 30 + 31 + 30 + 31,
}

// DaysInMonth returns the number of days in the given month of the
// given year, accounting for leap-year February. It fails with a
// KindOutOfRange error when month is not in January..December.
func DaysInMonth(year int, month Month) (int, error) {
	if month < January || month > December {
		return 0, NewOutOfRangeError("month", int64(month), "month index must be in 1..12")
	}
	if month == February && IsLeapYear(year) {
		return 29, nil
	}
	return daysBefore[month] - daysBefore[month-1], nil
}

// DaysInYear returns 366 for leap years and 365 otherwise.
func DaysInYear(year int) int {
	if IsLeapYear(year) {
		return 366
	}
	return 365
}
