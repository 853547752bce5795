package civil

import (
	"errors"
	"fmt"
)

// ErrorKind classifies calendar-domain failures.
type ErrorKind string

const (
	// KindInvalidDate marks a year/month/day triple that does not exist
	// in the proleptic Gregorian calendar, such as February 30.
	KindInvalidDate ErrorKind = "INVALID_DATE"

	// KindOutOfRange marks a single field outside its valid domain: a
	// month index beyond 1..12, a weekday beyond 0..6, an hour beyond
	// 0..23, and so on.
	KindOutOfRange ErrorKind = "OUT_OF_RANGE"

	// KindOverflow marks a value whose magnitude cannot be represented
	// in the requested unit or composed into an instant.
	KindOverflow ErrorKind = "OVERFLOW"
)

// Error is a calendar-domain failure detected during conversion,
// validation, or lookup. Callers should match on Kind (or use the
// IsInvalidDate, IsOutOfRange, and IsOverflow helpers) rather than on
// the message text.
type Error struct {
	// Kind identifies the error category.
	Kind ErrorKind

	// Message is a human-readable description.
	Message string

	// Year, Month, and Day identify the offending triple for
	// KindInvalidDate errors.
	Year  int
	Month int
	Day   int

	// Field names the offending datum for KindOutOfRange and
	// KindOverflow errors, for example "month" or "hour".
	Field string

	// Value is the offending value for KindOutOfRange and KindOverflow
	// errors.
	Value int64
}

// Error implements the error interface.
func (e *Error) Error() string {
	switch {
	case e.Kind == KindInvalidDate:
		return fmt.Sprintf("%s: %s (date %d-%02d-%02d)", e.Kind, e.Message, e.Year, e.Month, e.Day)
	case e.Field != "":
		return fmt.Sprintf("%s: %s (%s=%d)", e.Kind, e.Message, e.Field, e.Value)
	default:
		return fmt.Sprintf("%s: %s", e.Kind, e.Message)
	}
}

// IsInvalidDate reports whether err is a civil error with
// KindInvalidDate.
func IsInvalidDate(err error) bool {
	var ce *Error
	return errors.As(err, &ce) && ce.Kind == KindInvalidDate
}

// IsOutOfRange reports whether err is a civil error with
// KindOutOfRange.
func IsOutOfRange(err error) bool {
	var ce *Error
	return errors.As(err, &ce) && ce.Kind == KindOutOfRange
}

// IsOverflow reports whether err is a civil error with KindOverflow.
func IsOverflow(err error) bool {
	var ce *Error
	return errors.As(err, &ce) && ce.Kind == KindOverflow
}

// NewInvalidDateError creates an error for a year/month/day triple that
// does not exist.
func NewInvalidDateError(year int, month Month, day int) *Error {
	return &Error{
		Kind:    KindInvalidDate,
		Message: "day does not exist in month",
		Year:    year,
		Month:   int(month),
		Day:     day,
	}
}

// NewOutOfRangeError creates an error for a field outside its valid
// domain.
func NewOutOfRangeError(field string, value int64, message string) *Error {
	return &Error{
		Kind:    KindOutOfRange,
		Message: message,
		Field:   field,
		Value:   value,
	}
}

// NewOverflowError creates an error for a value that cannot be
// represented in the requested unit.
func NewOverflowError(field string, value int64, message string) *Error {
	return &Error{
		Kind:    KindOverflow,
		Message: message,
		Field:   field,
		Value:   value,
	}
}
