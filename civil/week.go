package civil

// ISOWeek returns the ISO 8601 week-numbering year and week for the
// given date. Weeks run Monday through Sunday and week 1 is the week
// containing the year's first Thursday, so the first days of January
// may fall in the last week of the prior year and the last days of
// December in week 1 of the next. Week is in 1..53.
func ISOWeek(year int, month Month, day int) (isoYear, week int, err error) {
	days, err := DaysFromDate(year, month, day)
	if err != nil {
		return 0, 0, err
	}
	isoYear, week = ISOWeekFromDays(days)
	return isoYear, week, nil
}

// ISOWeekFromDays returns the ISO 8601 week-numbering year and week of
// the given day count relative to the Unix epoch. It is total: every
// day count has a week.
func ISOWeekFromDays(days int64) (isoYear, week int) {
	// Shift to the Thursday of the containing Monday-based week, then
	// count whole weeks up to that Thursday within its year.
	offset := int64(Thursday - WeekdayFromDays(days))
	if offset == 4 {
		// Sunday closes the week; its Thursday is three days back.
		offset = -3
	}

	isoYear, _, _, yday := dateFromDays(days + offset)
	return isoYear, yday/7 + 1
}
