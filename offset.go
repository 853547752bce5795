package tempus

import (
	"fmt"
	"strings"

	"github.com/roach88/tempus/civil"
)

// Offset is a timezone's signed displacement from UTC at a particular
// instant, held in whole seconds. The zero value is UTC itself.
type Offset struct {
	seconds int
}

// NewOffset creates an Offset of the given number of seconds east of
// UTC (negative is west). Displacements of a full day or more fail
// with KindOutOfRange; no real zone leaves the calendar day of the
// prime meridian that far behind.
func NewOffset(seconds int) (Offset, error) {
	if seconds <= -secondsPerDay || seconds >= secondsPerDay {
		return Offset{}, civil.NewOutOfRangeError("offset", int64(seconds), "offset must be within a day of UTC")
	}
	return Offset{seconds: seconds}, nil
}

// Seconds returns the displacement in whole seconds east of UTC.
func (o Offset) Seconds() int {
	return o.seconds
}

// Hours returns the displacement in fractional hours, so half-hour
// and quarter-hour zones keep their fraction: +05:30 is 5.5, -03:30
// is -3.5. Truncating to whole hours would misplace a third of the
// world's offset zones.
func (o Offset) Hours() float64 {
	return float64(o.seconds) / secondsPerHour
}

// String renders the displacement as a signed "±HH:MM" pair. The rare
// offset with a seconds component renders as "±HH:MM:SS" rather than
// dropping precision.
func (o Offset) String() string {
	sign := "+"
	s := o.seconds
	if s < 0 {
		sign = "-"
		s = -s
	}
	h := s / secondsPerHour
	m := s / secondsPerMinute % 60
	if rem := s % 60; rem != 0 {
		return fmt.Sprintf("%s%02d:%02d:%02d", sign, h, m, rem)
	}
	return fmt.Sprintf("%s%02d:%02d", sign, h, m)
}

// ParseOffset resolves a "±HH:MM" or "±HH:MM:SS" displacement string,
// as produced by String, into an Offset. The leading sign is
// required. Malformed input and displacements of a day or more fail
// with KindOutOfRange.
func ParseOffset(s string) (Offset, error) {
	fail := func() (Offset, error) {
		return Offset{}, &civil.Error{
			Kind:    civil.KindOutOfRange,
			Message: fmt.Sprintf("malformed offset %q, want ±HH:MM", s),
		}
	}

	body := strings.TrimSpace(s)
	if len(body) < 2 {
		return fail()
	}

	sign := 1
	switch body[0] {
	case '+':
	case '-':
		sign = -1
	default:
		return fail()
	}

	parts := strings.Split(body[1:], ":")
	if len(parts) != 2 && len(parts) != 3 {
		return fail()
	}

	total := 0
	for idx, part := range parts {
		if len(part) != 2 || !isDigit(part[0]) || !isDigit(part[1]) {
			return fail()
		}
		v := int(part[0]-'0')*10 + int(part[1]-'0')
		if idx > 0 && v > 59 {
			return fail()
		}
		total = total*60 + v
	}
	if len(parts) == 2 {
		total *= 60
	}

	return NewOffset(sign * total)
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
