package tempus

import (
	"time"

	"github.com/roach88/tempus/civil"
)

// ZoneProvider supplies the wall-clock reading of an instant in some
// timezone.
//
// The engine never consults the host timezone database directly; it
// asks its injected ZoneProvider for the civil fields a wall clock in
// that zone would show at a given instant. Offsets are then derived by
// the engine itself (see Engine.OffsetAt), so a provider only has to
// answer one question and never does offset arithmetic.
//
// Implementations must be safe for concurrent use.
type ZoneProvider interface {
	// Local returns the civil fields a wall clock in the provider's
	// zone shows at the given instant.
	Local(at Instant) civil.DateTime
}

// SystemZone resolves wall-clock readings through the host's timezone
// database, honoring DST transitions and historical offset changes.
type SystemZone struct{}

// Local returns the host-local wall clock at the given instant.
//
// The translation goes through the standard library, which documents
// exact behavior only for instants within roughly 292 billion years of
// the epoch; the engine's own arithmetic is exact over the full int64
// range, so any drift at those extremes is the host database's, not
// ours.
func (SystemZone) Local(at Instant) civil.DateTime {
	t := time.Unix(at.Unix(), int64(at.Nanosecond())).Local()
	return civil.DateTime{
		Year:       t.Year(),
		Month:      civil.Month(t.Month()),
		Day:        t.Day(),
		Hour:       t.Hour(),
		Minute:     t.Minute(),
		Second:     t.Second(),
		Nanosecond: t.Nanosecond(),
	}
}

// FixedZone applies one constant offset at every instant. It backs the
// utc_offset configuration override and the UTC zone itself.
type FixedZone struct {
	offset int
}

// UTC is the fixed zone with zero offset.
var UTC = FixedZone{}

// NewFixedZone creates a zone displaced from UTC by a constant number
// of seconds. Offsets at or beyond a full day fail with
// KindOutOfRange.
func NewFixedZone(offsetSeconds int) (FixedZone, error) {
	if offsetSeconds <= -secondsPerDay || offsetSeconds >= secondsPerDay {
		return FixedZone{}, civil.NewOutOfRangeError("offset", int64(offsetSeconds), "zone offset must be within a day of UTC")
	}
	return FixedZone{offset: offsetSeconds}, nil
}

// Local returns the wall clock of the fixed zone at the given instant.
func (z FixedZone) Local(at Instant) civil.DateTime {
	return Instant{sec: at.sec + int64(z.offset), nsec: at.nsec}.DateTime()
}

// OffsetSeconds returns the zone's constant displacement from UTC.
func (z FixedZone) OffsetSeconds() int {
	return z.offset
}
