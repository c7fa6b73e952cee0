// Package schedule provides clocks and cancellable periodic tasks.
//
// Simulation code never sleeps or reads the wall clock directly. It is handed a
// Scheduler: Real in production, Manual in tests and deterministic drivers.
package schedule

import "time"

// Timer is a pending callback.
type Timer interface {
	// Stop cancels the callback. Returns false if it already fired or was stopped.
	Stop() bool
}

// Clock reports the current time.
type Clock interface {
	Now() time.Time
}

// Scheduler runs callbacks after a delay.
type Scheduler interface {
	Clock
	AfterFunc(d time.Duration, f func()) Timer
}

// Real schedules on the wall clock. Callbacks run on their own goroutine.
type Real struct{}

// Now returns the wall-clock time.
func (Real) Now() time.Time { return time.Now() }

// AfterFunc wraps time.AfterFunc.
func (Real) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}
