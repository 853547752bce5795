package civil

// IsLeapYear reports whether the given proleptic-Gregorian year is a
// leap year: divisible by 4, except centuries, unless divisible by 400.
// The rule is total over int, so 1900 is not a leap year, 2000 is, and
// year 0 is.
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}
