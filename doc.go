// Package tempus implements a deterministic epoch-time conversion and
// formatting engine.
//
// The engine turns instants (integral seconds plus a nanosecond
// remainder, counted from the Unix epoch) into proleptic-Gregorian
// civil fields, weekday and ISO week numbers, timezone offsets, and
// configurable text renderings.
//
// ARCHITECTURE:
//
// Injected Capabilities:
// The engine performs no ambient reads. The two environment-facing
// inputs, the wall clock and the timezone, enter through the Clock and
// ZoneProvider interfaces. Production code injects SystemClock and
// SystemZone; tests inject the fixed implementations from
// internal/testutil and get bit-for-bit reproducible output.
//
// Single Read Per Snapshot:
// Snapshot() reads the clock exactly once and derives every field of
// the result from that one instant. Two reads could straddle a second
// boundary and disagree about the date; one read cannot.
//
// Pure Core:
// All calendar arithmetic lives in the civil package and is free of
// clocks, zones, and I/O. Conversions between instants and civil
// fields at the same layer as the engine (Instant.DateTime,
// FromDateTime) are pure as well. Offsets are resolved by composing
// the zone's wall-clock reading back onto the instant scale and
// differencing, never by subtracting civil fields across a possible
// day boundary.
//
// Inputs outside their domain are reported with typed errors from the
// civil package; results are never clamped, wrapped, or defaulted.
package tempus
