package tempus

import "time"

// Clock supplies the current instant.
//
// The engine never reads the host clock directly; it asks its injected
// Clock. Production code uses SystemClock. Tests inject the fixed and
// stepping clocks from internal/testutil, which makes every derived
// value reproducible.
//
// Implementations must be safe for concurrent use.
type Clock interface {
	Now() Instant
}

// SystemClock reads the host's realtime clock.
type SystemClock struct{}

// Now returns the current instant.
func (SystemClock) Now() Instant {
	t := time.Now()
	return Unix(t.Unix(), int64(t.Nanosecond()))
}
