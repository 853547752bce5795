package civil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// DateFromDays Tests
// =============================================================================

func TestDateFromDays_KnownDates(t *testing.T) {
	tests := []struct {
		name  string
		days  int64
		year  int
		month Month
		day   int
	}{
		{name: "unix_epoch", days: 0, year: 1970, month: January, day: 1},
		{name: "day_after_epoch", days: 1, year: 1970, month: January, day: 2},
		{name: "day_before_epoch", days: -1, year: 1969, month: December, day: 31},
		{name: "first_march_after_epoch", days: 59, year: 1970, month: March, day: 1},
		{name: "first_new_year", days: 365, year: 1971, month: January, day: 1},
		{name: "first_leap_day", days: 789, year: 1972, month: February, day: 29},
		{name: "after_first_leap_day", days: 790, year: 1972, month: March, day: 1},
		{name: "century_leap_day", days: 11016, year: 2000, month: February, day: 29},
		{name: "after_century_leap_day", days: 11017, year: 2000, month: March, day: 1},
		{name: "modern_date", days: 20010, year: 2024, month: October, day: 14},
		{name: "skipped_century_leap", days: 47541, year: 2100, month: March, day: 1},
		{name: "gregorian_year_one", days: -719162, year: 1, month: January, day: 1},
		{name: "year_zero", days: -719528, year: 0, month: January, day: 1},
		{name: "before_year_zero", days: -719529, year: -1, month: December, day: 31},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			year, month, day := DateFromDays(tt.days)
			assert.Equal(t, tt.year, year, "year")
			assert.Equal(t, tt.month, month, "month")
			assert.Equal(t, tt.day, day, "day")
		})
	}
}

func TestDateFromDays_RoundTrip(t *testing.T) {
	// Windows chosen to cross the epoch, year zero, and the skipped
	// 2100 leap day, plus two far ranges.
	windows := []struct {
		name string
		lo   int64
		hi   int64
	}{
		{name: "around_epoch", lo: -1500, hi: 1500},
		{name: "around_year_zero", lo: -720000, hi: -719000},
		{name: "around_2100", lo: 47000, hi: 48000},
		{name: "far_future", lo: 2_000_000, hi: 2_000_100},
		{name: "far_past", lo: -2_000_100, hi: -2_000_000},
	}

	for _, w := range windows {
		t.Run(w.name, func(t *testing.T) {
			for days := w.lo; days <= w.hi; days++ {
				year, month, day := DateFromDays(days)
				got, err := DaysFromDate(year, month, day)
				require.NoError(t, err, "days=%d decomposed to %d-%02d-%02d", days, year, month, day)
				require.Equal(t, days, got, "round trip for %d-%02d-%02d", year, month, day)
			}
		})
	}
}

func TestDateFromDays_ConsecutiveDaysAreConsecutiveDates(t *testing.T) {
	// Walking one day at a time must never skip or repeat a date.
	prevYear, prevMonth, prevDay := DateFromDays(-400)
	for days := int64(-399); days <= 400; days++ {
		year, month, day := DateFromDays(days)
		switch {
		case day == prevDay+1:
			assert.Equal(t, prevMonth, month)
			assert.Equal(t, prevYear, year)
		case day == 1 && month == prevMonth+1:
			assert.Equal(t, prevYear, year)
		case day == 1 && month == January:
			assert.Equal(t, December, prevMonth)
			assert.Equal(t, prevYear+1, year)
		default:
			t.Fatalf("days=%d: %d-%02d-%02d does not follow %d-%02d-%02d",
				days, year, month, day, prevYear, prevMonth, prevDay)
		}
		prevYear, prevMonth, prevDay = year, month, day
	}
}

// =============================================================================
// DaysFromDate Tests
// =============================================================================

func TestDaysFromDate_KnownDates(t *testing.T) {
	tests := []struct {
		name  string
		year  int
		month Month
		day   int
		days  int64
	}{
		{name: "unix_epoch", year: 1970, month: January, day: 1, days: 0},
		{name: "end_of_epoch_year", year: 1970, month: December, day: 31, days: 364},
		{name: "leap_day_1972", year: 1972, month: February, day: 29, days: 789},
		{name: "modern_date", year: 2024, month: October, day: 14, days: 20010},
		{name: "before_epoch", year: 1969, month: December, day: 31, days: -1},
		{name: "non_leap_century_boundary", year: 2100, month: February, day: 28, days: 47540},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			days, err := DaysFromDate(tt.year, tt.month, tt.day)
			require.NoError(t, err)
			assert.Equal(t, tt.days, days)
		})
	}
}

func TestDaysFromDate_RejectsNonexistentDates(t *testing.T) {
	tests := []struct {
		name  string
		year  int
		month Month
		day   int
	}{
		{name: "february_30", year: 2023, month: February, day: 30},
		{name: "february_29_common_year", year: 2023, month: February, day: 29},
		{name: "february_29_skipped_century", year: 1900, month: February, day: 29},
		{name: "april_31", year: 2024, month: April, day: 31},
		{name: "day_zero", year: 2024, month: April, day: 0},
		{name: "negative_day", year: 2024, month: April, day: -3},
		{name: "day_32", year: 2024, month: January, day: 32},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DaysFromDate(tt.year, tt.month, tt.day)
			require.Error(t, err)
			assert.True(t, IsInvalidDate(err), "expected INVALID_DATE, got %v", err)
		})
	}
}

func TestDaysFromDate_RejectsMonthOutOfRange(t *testing.T) {
	for _, month := range []Month{0, 13, -2, 99} {
		_, err := DaysFromDate(2024, month, 1)
		require.Error(t, err, "month=%d", month)
		assert.True(t, IsOutOfRange(err), "expected OUT_OF_RANGE for month=%d, got %v", month, err)
	}
}

func TestDaysFromDate_AcceptsLeapDays(t *testing.T) {
	// Both the four-year rule and the 400-year exception admit a
	// February 29.
	for _, year := range []int{1972, 2000, 2024, 1600} {
		_, err := DaysFromDate(year, February, 29)
		assert.NoError(t, err, "year=%d", year)
	}
}

// =============================================================================
// ValidateDate / YearDay Tests
// =============================================================================

func TestValidateDate(t *testing.T) {
	assert.NoError(t, ValidateDate(2024, February, 29))
	assert.NoError(t, ValidateDate(2024, December, 31))

	err := ValidateDate(2023, February, 29)
	require.Error(t, err)
	assert.True(t, IsInvalidDate(err))

	err = ValidateDate(2023, Month(0), 1)
	require.Error(t, err)
	assert.True(t, IsOutOfRange(err))
}

func TestYearDay(t *testing.T) {
	tests := []struct {
		name  string
		year  int
		month Month
		day   int
		want  int
	}{
		{name: "new_year", year: 1970, month: January, day: 1, want: 1},
		{name: "march_first_common", year: 2023, month: March, day: 1, want: 60},
		{name: "march_first_leap", year: 2024, month: March, day: 1, want: 61},
		{name: "mid_october_leap", year: 2024, month: October, day: 14, want: 288},
		{name: "last_day_common", year: 2023, month: December, day: 31, want: 365},
		{name: "last_day_leap", year: 2024, month: December, day: 31, want: 366},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := YearDay(tt.year, tt.month, tt.day)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestYearDay_InvalidDate(t *testing.T) {
	_, err := YearDay(2023, February, 30)
	require.Error(t, err)
	assert.True(t, IsInvalidDate(err))
}

func TestYearDayFromDays(t *testing.T) {
	assert.Equal(t, 1, YearDayFromDays(0))
	assert.Equal(t, 365, YearDayFromDays(-1))
	assert.Equal(t, 288, YearDayFromDays(20010))
}
