package clock

import "time"

// Clocker is the time source the service reads from.
type Clocker interface {
	Now() time.Time
}

// SystemClock is the production Clocker backed by the wall clock.
type SystemClock struct{}

// New returns the wall-clock time source.
func New() *SystemClock {
	return &SystemClock{}
}

// Now reports the current wall-clock time.
func (*SystemClock) Now() time.Time {
	return time.Now()
}
