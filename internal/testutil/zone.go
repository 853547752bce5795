package testutil

import (
	"github.com/roach88/tempus"
	"github.com/roach88/tempus/civil"
)

// SeasonalZone is a tempus.ZoneProvider with a simplified daylight
// rule: the daylight offset applies during the summer months of its
// hemisphere, the standard offset for the rest of the year. The
// switch tracks the UTC month, not real transition rules, which is
// all the daylight heuristic tests need.
type SeasonalZone struct {
	// Standard and Daylight are offsets from UTC in seconds.
	Standard int
	Daylight int

	// Southern flips the summer months to November through March.
	Southern bool
}

// Local returns the wall clock of the zone at the given instant.
func (z SeasonalZone) Local(at tempus.Instant) civil.DateTime {
	off := z.Standard
	if z.daylightActive(at.DateTime().Month) {
		off = z.Daylight
	}
	return tempus.Unix(at.Unix()+int64(off), int64(at.Nanosecond())).DateTime()
}

func (z SeasonalZone) daylightActive(m civil.Month) bool {
	summer := m >= civil.April && m <= civil.October
	if z.Southern {
		return !summer
	}
	return summer
}

// StaticZone is a tempus.ZoneProvider that reports the same wall
// clock no matter which instant it is asked about. A deliberately
// broken provider: useful for proving that the offset resolver
// rejects readings that drift more than a day from the instant.
type StaticZone struct {
	Reading civil.DateTime
}

// Local returns the frozen reading, ignoring at.
func (z StaticZone) Local(tempus.Instant) civil.DateTime {
	return z.Reading
}
