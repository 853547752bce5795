package civil

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// Name lookup accepts the full English name or its unique three-letter
// prefix, case-insensitively. Input is NFC normalized at the boundary
// so composed and decomposed spellings of the same text match.

var nameCaser = cases.Title(language.English)

func canonicalName(s string) string {
	s = norm.NFC.String(strings.TrimSpace(s))
	return nameCaser.String(strings.ToLower(s))
}

// ParseMonth resolves an English month name, or its three-letter
// abbreviation, to a Month. Unknown names fail with KindOutOfRange.
func ParseMonth(s string) (Month, error) {
	name := canonicalName(s)
	for i, full := range monthNames {
		if full == name || (len(name) == 3 && strings.HasPrefix(full, name)) {
			return Month(i + 1), nil
		}
	}
	return 0, &Error{
		Kind:    KindOutOfRange,
		Message: fmt.Sprintf("unknown month name %q", s),
	}
}

// ParseWeekday resolves an English weekday name, or its three-letter
// abbreviation, to a Weekday. Unknown names fail with KindOutOfRange.
func ParseWeekday(s string) (Weekday, error) {
	name := canonicalName(s)
	for i, full := range weekdayNames {
		if full == name || (len(name) == 3 && strings.HasPrefix(full, name)) {
			return Weekday(i), nil
		}
	}
	return 0, &Error{
		Kind:    KindOutOfRange,
		Message: fmt.Sprintf("unknown weekday name %q", s),
	}
}
