package jalali

import "time"

// Clock abstracts time.Now() to allow deterministic testing.
// It is the package's only impurity: everything else is plain integer math.
type Clock interface {
	Now() time.Time
}

// RealClock implements Clock using the standard time package.
type RealClock struct{}

// Now returns the current local time.
func (RealClock) Now() time.Time {
	return time.Now()
}

// Today returns the current date on the clock's local calendar, converted to
// Jalali. A nil clock falls back to RealClock. It fails with ErrOutOfRange
// only when the host clock reads outside the supported span.
func Today(clock Clock) (Date, error) {
	if clock == nil {
		clock = RealClock{}
	}
	return FromTime(clock.Now())
}
