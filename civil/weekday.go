package civil

import "strconv"

// Weekday numbers a day of the week, Sunday = 0.
type Weekday int

const (
	Sunday Weekday = iota
	Monday
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
)

// weekdayNames is the static weekday naming table, indexed by Weekday.
var weekdayNames = [7]string{
	"Sunday",
	"Monday",
	"Tuesday",
	"Wednesday",
	"Thursday",
	"Friday",
	"Saturday",
}

// Name returns the English name of the weekday. It fails with a
// KindOutOfRange error when d is not in Sunday..Saturday.
func (d Weekday) Name() (string, error) {
	if d < Sunday || d > Saturday {
		return "", NewOutOfRangeError("weekday", int64(d), "weekday index must be in 0..6")
	}
	return weekdayNames[d], nil
}

// String implements fmt.Stringer for logging and debugging. Unlike
// Name, it never fails: out-of-range values render as "Weekday(n)".
func (d Weekday) String() string {
	if name, err := d.Name(); err == nil {
		return name
	}
	return "Weekday(" + strconv.Itoa(int(d)) + ")"
}

// WeekdayFromDays returns the weekday of the given day count relative
// to the Unix epoch. Day 0 (1970-01-01) is a Thursday, so the count is
// shifted by four before reduction. The reduction is a floor modulus,
// which keeps the seven-day cycle continuous across the epoch: day -1
// is a Wednesday, not an artifact of truncated division.
func WeekdayFromDays(days int64) Weekday {
	return Weekday(floorMod(days+int64(Thursday), 7))
}

// floorMod returns x mod m with the sign of m, assuming m > 0.
func floorMod(x, m int64) int64 {
	r := x % m
	if r < 0 {
		r += m
	}
	return r
}
