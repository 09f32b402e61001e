package guard

import "time"

// Clock abstracts wall time so the poll loop and the pre-lock grace wait
// are deterministic in tests.
type Clock interface {
	Now() time.Time
	After(d time.Duration) <-chan time.Time
	Sleep(d time.Duration)
}

type realClock struct{}

func (realClock) Now() time.Time                         { return time.Now() }
func (realClock) After(d time.Duration) <-chan time.Time { return time.After(d) }
func (realClock) Sleep(d time.Duration)                  { time.Sleep(d) }

// RealClock returns the wall-clock implementation used outside tests.
func RealClock() Clock { return realClock{} }
