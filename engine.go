package tempus

import (
	"fmt"
	"time"

	"github.com/roach88/tempus/civil"
)

// Engine binds the pure conversion core to its injected capabilities:
// a Clock for the current instant, a ZoneProvider for local wall-clock
// readings, and a StampGenerator for unique identifiers.
//
// Thread-safety model:
//   - All methods are safe from any goroutine provided the injected
//     capabilities are.
//   - The engine itself holds no mutable state after construction.
type Engine struct {
	clock  Clock
	zone   ZoneProvider
	stamps StampGenerator
	format FormatOptions
}

// EngineOption configures optional engine parameters.
type EngineOption func(*Engine)

// WithStampGenerator replaces the identifier generator.
//
// Default: V7Stamper. Tests use testutil's fixed stamper for
// reproducible identifiers.
func WithStampGenerator(g StampGenerator) EngineOption {
	return func(e *Engine) {
		e.stamps = g
	}
}

// WithDefaultFormat replaces the format applied when a caller passes
// no explicit options.
//
// Default: PresetFull().
func WithDefaultFormat(opts FormatOptions) EngineOption {
	return func(e *Engine) {
		e.format = opts
	}
}

// New creates an Engine with the given clock and zone capabilities.
// Passing nil for either selects the system-backed implementation, so
// New(nil, nil) is the production engine.
func New(clock Clock, zone ZoneProvider, opts ...EngineOption) *Engine {
	if clock == nil {
		clock = SystemClock{}
	}
	if zone == nil {
		zone = SystemZone{}
	}

	e := &Engine{
		clock:  clock,
		zone:   zone,
		stamps: V7Stamper{},
		format: PresetFull(),
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Now returns the current instant from the injected clock.
func (e *Engine) Now() Instant {
	return e.clock.Now()
}

// UTCNow returns the UTC decomposition of the current instant with one
// clock read.
func (e *Engine) UTCNow() civil.DateTime {
	return e.clock.Now().DateTime()
}

// LocalNow returns the zone's wall-clock reading of the current
// instant with one clock read and one zone consult.
func (e *Engine) LocalNow() civil.DateTime {
	return e.zone.Local(e.clock.Now())
}

// DefaultFormat returns the options applied when a caller passes none.
func (e *Engine) DefaultFormat() FormatOptions {
	return e.format
}

// OffsetAt resolves the zone's displacement from UTC at the given
// instant.
//
// The resolution never subtracts civil fields directly; the zone's
// wall-clock reading is composed back onto the instant scale and the
// two second counts are differenced. Field subtraction breaks whenever
// UTC and the zone sit on different calendar days; differencing
// instants cannot.
func (e *Engine) OffsetAt(at Instant) (Offset, error) {
	return offsetFromLocal(at, e.zone.Local(at))
}

// Offset resolves the zone's displacement from UTC at the current
// instant.
func (e *Engine) Offset() (Offset, error) {
	return e.OffsetAt(e.clock.Now())
}

// DaylightActiveAt reports whether the zone appears to be observing
// daylight saving at the given instant.
//
// The zone's offset at the instant is compared against its standard
// offset, taken as the smaller of the offsets in effect near the two
// solstices of the same local year. The mid-month probe instants are
// safely inside each season in every inhabited zone, and taking the
// minimum makes the comparison hemisphere-neutral. A zone with one
// offset all year reports false.
func (e *Engine) DaylightActiveAt(at Instant) (bool, error) {
	cur, err := e.OffsetAt(at)
	if err != nil {
		return false, err
	}

	year := e.zone.Local(at).Year

	january, err := FromDateTime(civil.DateTime{Year: year, Month: civil.January, Day: 15, Hour: 12})
	if err != nil {
		return false, fmt.Errorf("composing january probe: %w", err)
	}
	july, err := FromDateTime(civil.DateTime{Year: year, Month: civil.July, Day: 15, Hour: 12})
	if err != nil {
		return false, fmt.Errorf("composing july probe: %w", err)
	}

	offJan, err := e.OffsetAt(january)
	if err != nil {
		return false, err
	}
	offJul, err := e.OffsetAt(july)
	if err != nil {
		return false, err
	}

	standard := offJan.Seconds()
	if offJul.Seconds() < standard {
		standard = offJul.Seconds()
	}

	return cur.Seconds() > standard, nil
}

// DaylightActive reports whether the zone appears to be observing
// daylight saving at the current instant.
func (e *Engine) DaylightActive() (bool, error) {
	return e.DaylightActiveAt(e.clock.Now())
}

// Since returns the elapsed time from earlier to the current instant.
// It fails with KindOverflow when the span does not fit a
// time.Duration.
func (e *Engine) Since(earlier Instant) (time.Duration, error) {
	return e.clock.Now().Sub(earlier)
}

// Stamp mints a unique identifier, reading the clock once and
// rendering that instant under the engine's default format.
func (e *Engine) Stamp() (Stamp, error) {
	at := e.clock.Now()
	formatted, err := e.FormatUTC(at, e.format)
	if err != nil {
		return Stamp{}, err
	}
	return Stamp{
		Token:     e.stamps.Stamp(),
		At:        at,
		Formatted: formatted,
	}, nil
}

// FormatUTC renders the instant's UTC decomposition with the given
// options.
func (e *Engine) FormatUTC(at Instant, opts FormatOptions) (string, error) {
	return FormatZoned(at.DateTime(), Offset{}, opts)
}

// FormatLocal renders the instant's local decomposition with the
// given options, consulting the zone once and deriving the offset
// from that single reading.
func (e *Engine) FormatLocal(at Instant, opts FormatOptions) (string, error) {
	local := e.zone.Local(at)
	off, err := offsetFromLocal(at, local)
	if err != nil {
		return "", err
	}
	return FormatZoned(local, off, opts)
}

// FormatUTCNow renders the current instant's UTC decomposition under
// the engine's default format with one clock read.
func (e *Engine) FormatUTCNow() (string, error) {
	return e.FormatUTC(e.clock.Now(), e.format)
}

// FormatLocalNow renders the current instant's local decomposition
// under the engine's default format with one clock read.
func (e *Engine) FormatLocalNow() (string, error) {
	return e.FormatLocal(e.clock.Now(), e.format)
}
