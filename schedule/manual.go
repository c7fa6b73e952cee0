package schedule

import (
	"sort"
	"sync"
	"time"
)

// Manual is a Scheduler driven by explicit Advance calls.
// Callbacks run synchronously on the goroutine calling Advance.
type Manual struct {
	mu     sync.Mutex
	now    time.Time
	seq    uint64
	timers []*manualTimer
}

type manualTimer struct {
	m   *Manual
	at  time.Time
	seq uint64
	f   func()
}

// NewManual creates a manual scheduler starting at start.
func NewManual(start time.Time) *Manual {
	return &Manual{now: start}
}

// Now returns the manual clock's time.
func (m *Manual) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}

// Set moves the clock to t without firing anything.
func (m *Manual) Set(t time.Time) {
	m.mu.Lock()
	m.now = t
	m.mu.Unlock()
}

// AfterFunc schedules f to run once the clock has advanced by d.
func (m *Manual) AfterFunc(d time.Duration, f func()) Timer {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.seq++
	t := &manualTimer{m: m, at: m.now.Add(d), seq: m.seq, f: f}
	m.timers = append(m.timers, t)
	return t
}

// Advance moves the clock forward by d, firing every callback that comes due
// in due-time order (ties in scheduling order). Callbacks scheduled while
// advancing fire too if they come due before the target. Returns the number fired.
func (m *Manual) Advance(d time.Duration) int {
	m.mu.Lock()
	target := m.now.Add(d)
	m.mu.Unlock()

	fired := 0
	for {
		m.mu.Lock()
		next := m.popDue(target)
		if next == nil {
			m.now = target
			m.mu.Unlock()
			return fired
		}
		if next.at.After(m.now) {
			m.now = next.at
		}
		m.mu.Unlock()

		next.f()
		fired++
	}
}

// Pending returns the number of scheduled callbacks that have not fired.
func (m *Manual) Pending() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.timers)
}

// popDue removes and returns the earliest timer due at or before target.
func (m *Manual) popDue(target time.Time) *manualTimer {
	if len(m.timers) == 0 {
		return nil
	}
	sort.SliceStable(m.timers, func(i, j int) bool {
		a, b := m.timers[i], m.timers[j]
		if a.at.Equal(b.at) {
			return a.seq < b.seq
		}
		return a.at.Before(b.at)
	})
	first := m.timers[0]
	if first.at.After(target) {
		return nil
	}
	m.timers = m.timers[1:]
	return first
}

// Stop cancels the timer if it has not fired.
func (t *manualTimer) Stop() bool {
	m := t.m
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, other := range m.timers {
		if other == t {
			m.timers = append(m.timers[:i], m.timers[i+1:]...)
			return true
		}
	}
	return false
}
