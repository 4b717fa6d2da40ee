package shared

import "time"

// Clock supplies the current time to billing, aging and penalty computations.
// Injecting it keeps date-sensitive logic deterministic under test.
type Clock interface {
	Now() time.Time
}

// SystemClock is the production Clock backed by time.Now.
type SystemClock struct{}

// Now returns the current wall-clock time.
func (SystemClock) Now() time.Time {
	return time.Now()
}

// FixedClock is a Clock frozen at a single instant, for tests and
// deterministic "as of" computations.
type FixedClock struct {
	Instant time.Time
}

// Now returns the frozen instant.
func (c FixedClock) Now() time.Time {
	return c.Instant
}
