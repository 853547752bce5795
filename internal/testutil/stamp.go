package testutil

// ConstantStamper is a tempus.StampGenerator that returns the same
// identifier every time.
//
// Unlike tempus.FixedStamper, which returns a declared sequence and
// panics on exhaustion, this stamper never runs out. It suits tests
// that mint any number of stamps but assert only on the derived
// readings, with the token as a placeholder.
type ConstantStamper struct {
	stamp string
}

// NewConstantStamper creates a stamper that always returns stamp. An
// empty stamp falls back to "test-stamp".
func NewConstantStamper(stamp string) *ConstantStamper {
	if stamp == "" {
		stamp = "test-stamp"
	}
	return &ConstantStamper{stamp: stamp}
}

// Stamp returns the constant identifier.
func (g *ConstantStamper) Stamp() string {
	return g.stamp
}
