package clock

import (
	"math"
	"time"
)

// DayMillis is the length of one calendar day for reset purposes,
// independent of timezone.
const DayMillis = int64(86_400_000)

// Clock abstracts wall-clock access so engines can be driven by a fake in
// tests.
type Clock interface {
	Now() time.Time
}

// System is the real wall clock.
type System struct{}

func (System) Now() time.Time { return time.Now() }

// Fake is a manually advanced clock for tests.
type Fake struct {
	Current time.Time
}

// NewFake returns a fake clock pinned to the given instant.
func NewFake(at time.Time) *Fake {
	return &Fake{Current: at}
}

func (f *Fake) Now() time.Time { return f.Current }

// Advance moves the fake clock forward.
func (f *Fake) Advance(d time.Duration) {
	f.Current = f.Current.Add(d)
}

// DayIndex is the integer count of 86,400,000-ms periods since the epoch.
func DayIndex(t time.Time) int64 {
	ms := t.UnixMilli()
	if ms < 0 {
		return (ms - DayMillis + 1) / DayMillis
	}
	return ms / DayMillis
}

// Clamp100 floors x and clamps into [0,100].
func Clamp100(x float64) int {
	v := int(math.Floor(x))
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// Frac derives a deterministic pseudo-random value in [0,1) from a numeric
// seed: the fractional part of sin(seed)*10000. Stable across platforms for
// the seed magnitudes the shop rotation feeds it.
func Frac(seed float64) float64 {
	x := math.Sin(seed) * 10000
	return x - math.Floor(x)
}
