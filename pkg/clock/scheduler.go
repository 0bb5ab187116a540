// Package clock provides the time source and timer scheduling used by the
// simulated delays of the booking and emergency flows.
package clock

import (
	"sort"
	"sync"
	"time"
)

// Scheduler runs callbacks after a delay. Scheduled callbacks are not
// cancellable; they always run to completion.
type Scheduler interface {
	Now() time.Time
	AfterFunc(d time.Duration, fn func())
}

// Real schedules callbacks on the runtime timer.
type Real struct{}

// NewReal returns a Scheduler backed by package time.
func NewReal() Real {
	return Real{}
}

// Now returns the current wall clock time.
func (Real) Now() time.Time {
	return time.Now()
}

// AfterFunc runs fn in its own goroutine once d has elapsed.
func (Real) AfterFunc(d time.Duration, fn func()) {
	time.AfterFunc(d, fn)
}

type manualTimer struct {
	at  time.Time
	seq int
	fn  func()
}

// Manual is a Scheduler driven explicitly by tests. Callbacks run
// synchronously on the goroutine that calls Advance or Flush.
type Manual struct {
	mu      sync.Mutex
	now     time.Time
	seq     int
	pending []manualTimer
}

// NewManual returns a Manual scheduler starting at start.
func NewManual(start time.Time) *Manual {
	return &Manual{now: start}
}

// Now returns the simulated time.
func (m *Manual) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}

// AfterFunc queues fn to run when the simulated clock reaches now+d.
func (m *Manual) AfterFunc(d time.Duration, fn func()) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.seq++
	m.pending = append(m.pending, manualTimer{at: m.now.Add(d), seq: m.seq, fn: fn})
}

// Pending returns the number of callbacks that have not fired yet.
func (m *Manual) Pending() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.pending)
}

// Advance moves the clock forward by d and runs every callback that is due,
// in deadline order. Callbacks scheduled while advancing run too if they fall
// inside the window.
func (m *Manual) Advance(d time.Duration) {
	m.mu.Lock()
	target := m.now.Add(d)
	m.mu.Unlock()

	for {
		next, ok := m.popDue(target)
		if !ok {
			break
		}
		next.fn()
	}

	m.mu.Lock()
	if m.now.Before(target) {
		m.now = target
	}
	m.mu.Unlock()
}

// Flush runs every pending callback regardless of its deadline, including
// callbacks scheduled by the ones it runs.
func (m *Manual) Flush() {
	for {
		m.mu.Lock()
		if len(m.pending) == 0 {
			m.mu.Unlock()
			return
		}
		latest := m.pending[0].at
		for _, t := range m.pending[1:] {
			if t.at.After(latest) {
				latest = t.at
			}
		}
		m.mu.Unlock()
		m.Advance(latest.Sub(m.Now()))
	}
}

func (m *Manual) popDue(target time.Time) (manualTimer, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if len(m.pending) == 0 {
		return manualTimer{}, false
	}
	sort.Slice(m.pending, func(i, j int) bool {
		if m.pending[i].at.Equal(m.pending[j].at) {
			return m.pending[i].seq < m.pending[j].seq
		}
		return m.pending[i].at.Before(m.pending[j].at)
	})
	next := m.pending[0]
	if next.at.After(target) {
		return manualTimer{}, false
	}
	m.pending = m.pending[1:]
	if next.at.After(m.now) {
		m.now = next.at
	}
	return next, true
}
