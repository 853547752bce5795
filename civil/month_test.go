package civil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// Month Naming Tests
// =============================================================================

func TestMonth_Name(t *testing.T) {
	names := map[Month]string{
		January:   "January",
		February:  "February",
		March:     "March",
		April:     "April",
		May:       "May",
		June:      "June",
		July:      "July",
		August:    "August",
		September: "September",
		October:   "October",
		November:  "November",
		December:  "December",
	}

	for m, want := range names {
		got, err := m.Name()
		require.NoError(t, err, "month=%d", m)
		assert.Equal(t, want, got)
	}
}

func TestMonth_Name_OutOfRange(t *testing.T) {
	for _, m := range []Month{0, 13, -1, 255} {
		_, err := m.Name()
		require.Error(t, err, "month=%d", m)
		assert.True(t, IsOutOfRange(err), "expected OUT_OF_RANGE for month=%d, got %v", m, err)
	}
}

func TestMonth_String_NeverFails(t *testing.T) {
	assert.Equal(t, "October", October.String())
	assert.Equal(t, "Month(0)", Month(0).String())
	assert.Equal(t, "Month(13)", Month(13).String())
}

// =============================================================================
// DaysInMonth Tests
// =============================================================================

func TestDaysInMonth(t *testing.T) {
	tests := []struct {
		name  string
		year  int
		month Month
		want  int
	}{
		{name: "january", year: 2024, month: January, want: 31},
		{name: "february_leap", year: 2024, month: February, want: 29},
		{name: "february_common", year: 2023, month: February, want: 28},
		{name: "february_century_leap", year: 2000, month: February, want: 29},
		{name: "february_skipped_century", year: 1900, month: February, want: 28},
		{name: "april", year: 2024, month: April, want: 30},
		{name: "december", year: 2024, month: December, want: 31},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DaysInMonth(tt.year, tt.month)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDaysInMonth_SumsToYear(t *testing.T) {
	for _, year := range []int{2023, 2024} {
		total := 0
		for m := January; m <= December; m++ {
			days, err := DaysInMonth(year, m)
			require.NoError(t, err)
			total += days
		}
		assert.Equal(t, DaysInYear(year), total, "year=%d", year)
	}
}

func TestDaysInMonth_OutOfRange(t *testing.T) {
	_, err := DaysInMonth(2024, Month(0))
	require.Error(t, err)
	assert.True(t, IsOutOfRange(err))

	_, err = DaysInMonth(2024, Month(13))
	require.Error(t, err)
	assert.True(t, IsOutOfRange(err))
}

// =============================================================================
// ParseMonth Tests
// =============================================================================

func TestParseMonth(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Month
	}{
		{name: "exact", input: "January", want: January},
		{name: "lowercase", input: "january", want: January},
		{name: "uppercase", input: "SEPTEMBER", want: September},
		{name: "abbreviation", input: "Oct", want: October},
		{name: "lowercase_abbreviation", input: "feb", want: February},
		{name: "may_is_its_own_abbreviation", input: "may", want: May},
		{name: "surrounding_space", input: " December  ", want: December},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseMonth(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseMonth_Unknown(t *testing.T) {
	for _, input := range []string{"", "J", "Janu", "Octobre", "10"} {
		_, err := ParseMonth(input)
		require.Error(t, err, "input=%q", input)
		assert.True(t, IsOutOfRange(err), "expected OUT_OF_RANGE for %q, got %v", input, err)
	}
}
