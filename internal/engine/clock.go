package engine

import "time"

// Clock abstracts time.Now() to allow deterministic testing.
// The refresh loop asks it for "now" once per tick and passes the captured
// instant explicitly into the pure computation functions.
type Clock interface {
	Now() time.Time
}

// RealClock implements Clock using the standard time package.
type RealClock struct{}

// Now returns the current local time.
func (RealClock) Now() time.Time {
	return time.Now()
}
