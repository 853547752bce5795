package tempus

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// StampGenerator mints unique identifiers whose creation order is
// recoverable. Implemented by V7Stamper (production) and by the fixed
// stamper in internal/testutil.
type StampGenerator interface {
	Stamp() string
}

// Stamp is one minted identifier together with the clock instant of
// minting and that instant's rendering under the engine's default
// format. Engine.Stamp reads the clock exactly once per record.
type Stamp struct {
	// Token is the minted identifier.
	Token string

	// At is the instant the engine's clock reported at minting.
	At Instant

	// Formatted is At's UTC rendering under the engine's default
	// format.
	Formatted string
}

// V7Stamper generates time-sortable UUIDv7 identifiers.
//
// UUIDv7 embeds a millisecond timestamp in the most significant bits,
// so identifiers sort by creation time and the instant of minting can
// be recovered later with StampInstant.
//
// Thread-safety: V7Stamper is stateless and safe for concurrent use.
type V7Stamper struct{}

// Stamp returns a new UUIDv7 as a hyphenated string.
//
// Panics if UUID generation fails, which requires the system entropy
// source to be broken.
func (V7Stamper) Stamp() string {
	return uuid.Must(uuid.NewV7()).String()
}

// FixedStamper returns predetermined identifiers for tests, enabling
// golden comparison of output that embeds stamps.
//
// Thread-safety: safe for concurrent use via internal mutex.
type FixedStamper struct {
	mu     sync.Mutex
	stamps []string
	idx    int
}

// NewFixedStamper creates a stamper that returns the given
// identifiers in order.
func NewFixedStamper(stamps ...string) *FixedStamper {
	return &FixedStamper{stamps: stamps}
}

// Stamp returns the next predetermined identifier.
//
// Panics once all identifiers are consumed; a test asking for more
// stamps than it declared is misconfigured.
func (g *FixedStamper) Stamp() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.idx >= len(g.stamps) {
		panic("FixedStamper: all stamps exhausted")
	}
	s := g.stamps[g.idx]
	g.idx++
	return s
}

// StampInstant recovers the minting instant embedded in a UUIDv7
// stamp. Only version 7 stamps carry a timestamp in a defined place;
// anything else is rejected.
func StampInstant(stamp string) (Instant, error) {
	u, err := uuid.Parse(stamp)
	if err != nil {
		return Instant{}, fmt.Errorf("parsing stamp: %w", err)
	}
	if u.Version() != 7 {
		return Instant{}, fmt.Errorf("stamp %s is version %d, want 7", stamp, u.Version())
	}

	sec, nsec := u.Time().UnixTime()
	return Unix(sec, nsec), nil
}
