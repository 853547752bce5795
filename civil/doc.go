// Package civil provides pure proleptic-Gregorian calendar arithmetic
// and the value types shared by the rest of tempus.
//
// This package contains computation and type definitions only. All other
// project packages import civil; civil imports nothing from the project.
// This keeps it the foundational layer with no circular dependencies.
//
// Key design constraints:
//   - No clock reads, no zone lookups, no I/O of any kind. Every function
//     is a pure mapping from its arguments to its results.
//   - The Gregorian leap rule is applied uniformly to all years, including
//     years before the calendar's historical adoption.
//   - Day counts are anchored at the Unix epoch: day 0 is 1970-01-01,
//     which is a Thursday.
//   - Validation never clamps, wraps, or substitutes defaults. Inputs
//     outside their domain surface a typed *Error with a machine-readable
//     kind.
package civil
