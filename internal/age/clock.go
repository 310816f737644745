package age

import (
	"time"

	"github.com/five82/taqvim/internal/calendar"
)

// Clock abstracts time.Now so callers can pin "today" in tests.
type Clock interface {
	Now() time.Time
}

// RealClock reads the local wall clock.
type RealClock struct{}

// Now returns the current local time.
func (RealClock) Now() time.Time {
	return time.Now()
}

// FixedClock always reports the same instant.
type FixedClock time.Time

// Now returns the fixed instant.
func (c FixedClock) Now() time.Time {
	return time.Time(c)
}

// Calculator computes ages against its Clock.
type Calculator struct {
	Clock Clock
}

// NewCalculator returns a Calculator on the real clock.
func NewCalculator() *Calculator {
	return &Calculator{Clock: RealClock{}}
}

// Age is Compute with now taken from the Clock.
func (c *Calculator) Age(birth calendar.Date) (Result, error) {
	clock := c.Clock
	if clock == nil {
		clock = RealClock{}
	}
	return Compute(birth, clock.Now())
}
