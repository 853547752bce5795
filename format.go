package tempus

import (
	"fmt"
	"strings"

	"github.com/roach88/tempus/civil"
)

// FormatOptions selects which blocks of a civil decomposition are
// rendered and the byte that joins the fields. The four block flags
// are orthogonal: every combination renders exactly the blocks asked
// for, and options with no blocks render the empty string.
//
// Every numeric field is zero-padded to a fixed width (year to four
// digits, the rest to two, milliseconds to three, microseconds to
// six), so renderings of equal shape are equal length and sort
// lexicographically in time order.
type FormatOptions struct {
	// Date renders the year-month-day block.
	Date bool

	// Time renders the hour-minute-second block.
	Time bool

	// Subsecond renders the millisecond and microsecond fields.
	Subsecond bool

	// Offset appends the "±HH:MM" zone displacement as a final field.
	// FormatDateTime renders it as +00:00; FormatZoned renders the
	// displacement it is given.
	Offset bool

	// Separator joins all rendered fields. The zero value renders as
	// '-'.
	Separator byte
}

// PresetFull renders every block except the offset, joined by
// hyphens: "2024-10-14-19-11-09-000-000069". The rendering is exactly
// 30 characters for four-digit years, which makes it usable as a
// sortable component of file names and generated identifiers.
func PresetFull() FormatOptions {
	return FormatOptions{Date: true, Time: true, Subsecond: true, Separator: '-'}
}

// PresetDateTime renders the date and time blocks joined by hyphens:
// "2024-10-14-19-11-09".
func PresetDateTime() FormatOptions {
	return FormatOptions{Date: true, Time: true, Separator: '-'}
}

// PresetDate renders the date block alone: "2024-10-14".
func PresetDate() FormatOptions {
	return FormatOptions{Date: true, Separator: '-'}
}

// PresetTime renders the time block alone: "19-11-09".
func PresetTime() FormatOptions {
	return FormatOptions{Time: true, Separator: '-'}
}

// PresetByName resolves a built-in preset: "full", "datetime", "date"
// or "time". Unknown names fail with KindOutOfRange. Preset packs
// loaded from CUE extend this set at the CLI layer.
func PresetByName(name string) (FormatOptions, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "full":
		return PresetFull(), nil
	case "datetime":
		return PresetDateTime(), nil
	case "date":
		return PresetDate(), nil
	case "time":
		return PresetTime(), nil
	default:
		return FormatOptions{}, &civil.Error{
			Kind:    civil.KindOutOfRange,
			Message: fmt.Sprintf("unknown preset %q", name),
		}
	}
}

func (o FormatOptions) separator() string {
	if o.Separator == 0 {
		return "-"
	}
	return string(o.Separator)
}

// FormatDateTime renders civil fields with the given options. The
// fields are taken to be a UTC reading, so the offset block, when
// requested, renders as +00:00; use FormatZoned when a zone
// displacement is in hand.
func FormatDateTime(dt civil.DateTime, opts FormatOptions) (string, error) {
	return FormatZoned(dt, Offset{}, opts)
}

// FormatZoned renders civil fields and a zone displacement with the
// given options. Rendering fails only when the fields themselves are
// out of domain; nothing invalid is ever rendered, and no option
// combination is rejected.
func FormatZoned(dt civil.DateTime, off Offset, opts FormatOptions) (string, error) {
	if err := dt.Validate(); err != nil {
		return "", err
	}

	sep := opts.separator()
	var b strings.Builder

	if opts.Date {
		fmt.Fprintf(&b, "%04d%s%02d%s%02d", dt.Year, sep, int(dt.Month), sep, dt.Day)
	}
	if opts.Time {
		if b.Len() > 0 {
			b.WriteString(sep)
		}
		fmt.Fprintf(&b, "%02d%s%02d%s%02d", dt.Hour, sep, dt.Minute, sep, dt.Second)
	}
	if opts.Subsecond {
		if b.Len() > 0 {
			b.WriteString(sep)
		}
		fmt.Fprintf(&b, "%03d%s%06d", dt.Millisecond(), sep, dt.Microsecond())
	}
	if opts.Offset {
		if b.Len() > 0 {
			b.WriteString(sep)
		}
		b.WriteString(off.String())
	}

	return b.String(), nil
}
