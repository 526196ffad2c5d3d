package goodmoney

import "time"

// Clock is a substitutable source of the current instant. Month windows and
// both projections depend on it; tests inject a fixed clock.
type Clock interface {
	Now() time.Time
}

// SystemClock returns a Clock backed by the wall clock.
func SystemClock() Clock { return systemClock{} }

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// FixedClock returns a Clock that always reports the same instant.
func FixedClock(t time.Time) Clock { return fixedClock(t) }

type fixedClock time.Time

func (c fixedClock) Now() time.Time { return time.Time(c) }
