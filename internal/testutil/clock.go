package testutil

import (
	"sync"
	"time"

	"github.com/roach88/tempus"
)

// FixedClock is a tempus.Clock pinned to an instant that moves only
// when a test says so. It also counts reads, so tests can assert that
// an operation consulted the clock exactly once.
//
// Thread-safety: all methods are safe for concurrent use via internal
// mutex.
type FixedClock struct {
	mu    sync.Mutex
	at    tempus.Instant
	reads int64
}

// NewFixedClock creates a clock pinned to the given instant.
func NewFixedClock(at tempus.Instant) *FixedClock {
	return &FixedClock{at: at}
}

// Now returns the pinned instant and counts the read.
func (c *FixedClock) Now() tempus.Instant {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.reads++
	return c.at
}

// Set pins the clock to a new instant.
func (c *FixedClock) Set(at tempus.Instant) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.at = at
}

// Advance moves the pinned instant forward by d (backward for
// negative d).
func (c *FixedClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.at = tempus.Unix(c.at.Unix(), int64(c.at.Nanosecond())+d.Nanoseconds())
}

// Reads returns how many times Now has been called.
func (c *FixedClock) Reads() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.reads
}

// ResetReads zeroes the read counter for test reuse.
func (c *FixedClock) ResetReads() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.reads = 0
}

// SteppingClock is a tempus.Clock that returns a different instant on
// every read, stepping forward by a fixed amount. Any operation that
// reads the clock more than once will see time move, which makes
// accidental double reads visible in derived output.
//
// Thread-safety: safe for concurrent use via internal mutex.
type SteppingClock struct {
	mu   sync.Mutex
	at   tempus.Instant
	step time.Duration
}

// NewSteppingClock creates a clock that returns start on the first
// read and advances by step after each read.
func NewSteppingClock(start tempus.Instant, step time.Duration) *SteppingClock {
	return &SteppingClock{at: start, step: step}
}

// Now returns the current instant and steps the clock.
func (c *SteppingClock) Now() tempus.Instant {
	c.mu.Lock()
	defer c.mu.Unlock()
	at := c.at
	c.at = tempus.Unix(c.at.Unix(), int64(c.at.Nanosecond())+c.step.Nanoseconds())
	return at
}
