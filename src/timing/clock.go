package timing

import "time"

// Clock abstracts time retrieval and pauses so demos stay testable.
type Clock interface {
	Now() time.Time
	Sleep(d time.Duration)
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

func (realClock) Sleep(d time.Duration) { time.Sleep(d) }

// RealClock returns the wall clock.
func RealClock() Clock {
	return realClock{}
}

// ScaledClock reports wall time but stretches or shrinks every pause by Factor.
// A zero or negative factor turns pauses into no-ops.
type ScaledClock struct {
	Factor float64
}

// Now returns the current wall time.
func (c ScaledClock) Now() time.Time {
	return time.Now()
}

// Sleep pauses for d scaled by the factor.
func (c ScaledClock) Sleep(d time.Duration) {
	if c.Factor <= 0 || d <= 0 {
		return
	}
	time.Sleep(time.Duration(float64(d) * c.Factor))
}

// NewClock picks the clock matching a configured delay scale.
func NewClock(scale float64) Clock {
	if scale == 1 {
		return RealClock()
	}
	return ScaledClock{Factor: scale}
}
