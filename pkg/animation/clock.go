package animation

import "time"

// Clock provides time for animations. The default implementation uses
// system time. Tests can inject a fake clock via SetClock to drive
// animations deterministically instead of sleeping.
type Clock interface {
	Now() time.Time
}

// systemClock uses the wall clock.
type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// clock is the package-level time source, replaceable for testing.
var clock Clock = systemClock{}

// SetClock replaces the animation clock. Returns the previous clock
// so callers can restore it during cleanup:
//
//	prev := animation.SetClock(fake)
//	defer animation.SetClock(prev)
func SetClock(c Clock) Clock {
	prev := clock
	clock = c
	return prev
}

// Now returns the current time from the active clock.
func Now() time.Time { return clock.Now() }
