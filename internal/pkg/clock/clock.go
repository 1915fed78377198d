// Package clock abstracts the wall clock so stored timestamps can be pinned in tests
package clock

import "time"

// Clock provides the current time
type Clock interface {
	Now() time.Time
}

// Real reads the system clock, in UTC
type Real struct{}

// Now returns the current UTC time
func (Real) Now() time.Time {
	return time.Now().UTC()
}

// New returns the system clock
func New() Clock {
	return Real{}
}

// Fixed always returns the same instant
type Fixed time.Time

// Now returns the fixed instant
func (f Fixed) Now() time.Time {
	return time.Time(f)
}
