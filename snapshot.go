package tempus

import (
	"fmt"

	"github.com/roach88/tempus/civil"
)

// Snapshot is a self-consistent reading of the engine's environment:
// one instant with its UTC decomposition, local decomposition, and
// resolved offset.
//
// Every field derives from the single instant in At, so the fields
// can never disagree about which second, or which side of a day
// boundary, they describe.
type Snapshot struct {
	// At is the instant the snapshot was taken.
	At Instant

	// UTC is the civil decomposition of At at the prime meridian.
	UTC civil.DateTime

	// Local is the zone's wall-clock reading of At.
	Local civil.DateTime

	// Offset is the zone's displacement from UTC at At.
	Offset Offset
}

// Snapshot captures the current environment. The clock is read exactly
// once and the zone is consulted exactly once; every derived field
// comes from that one reading. Reading twice could straddle a second
// boundary and yield fields from two different instants.
func (e *Engine) Snapshot() (Snapshot, error) {
	at := e.clock.Now()
	local := e.zone.Local(at)

	off, err := offsetFromLocal(at, local)
	if err != nil {
		return Snapshot{}, err
	}

	return Snapshot{
		At:     at,
		UTC:    at.DateTime(),
		Local:  local,
		Offset: off,
	}, nil
}

// SnapshotAt builds the same self-consistent view for an arbitrary
// instant, without touching the clock.
func (e *Engine) SnapshotAt(at Instant) (Snapshot, error) {
	local := e.zone.Local(at)

	off, err := offsetFromLocal(at, local)
	if err != nil {
		return Snapshot{}, err
	}

	return Snapshot{
		At:     at,
		UTC:    at.DateTime(),
		Local:  local,
		Offset: off,
	}, nil
}

// offsetFromLocal derives the zone offset from a wall-clock reading
// already in hand, by composing the reading back onto the instant
// scale and differencing second counts.
func offsetFromLocal(at Instant, local civil.DateTime) (Offset, error) {
	composed, err := FromDateTime(local)
	if err != nil {
		return Offset{}, fmt.Errorf("composing local wall clock: %w", err)
	}

	delta := composed.Unix() - at.Unix()
	if delta <= -secondsPerDay || delta >= secondsPerDay {
		// A zone cannot be a calendar day away from UTC. A delta this
		// large means the provider answered for a different instant.
		return Offset{}, civil.NewOutOfRangeError("offset", delta, "zone reading is more than a day from UTC")
	}

	return Offset{seconds: int(delta)}, nil
}

// Weekday returns the UTC day of the week at the snapshot instant.
func (s Snapshot) Weekday() civil.Weekday {
	return s.At.Weekday()
}

// LocalWeekday returns the day of the week the zone's wall clock
// shows, which near midnight can differ from the UTC weekday.
func (s Snapshot) LocalWeekday() (civil.Weekday, error) {
	return s.Local.Weekday()
}

// ISOWeek returns the ISO 8601 week-numbering year and week of the
// snapshot's UTC date.
func (s Snapshot) ISOWeek() (isoYear, week int) {
	return s.At.ISOWeek()
}

// Format renders the local decomposition with the given options,
// without consulting the clock or zone again.
func (s Snapshot) Format(opts FormatOptions) (string, error) {
	return FormatZoned(s.Local, s.Offset, opts)
}

// FormatUTC renders the UTC decomposition with the given options.
func (s Snapshot) FormatUTC(opts FormatOptions) (string, error) {
	return FormatZoned(s.UTC, Offset{}, opts)
}
