package loop

import (
	"sync"
	"time"

	"github.com/gogpu/ggtk/host"
)

// Manual is a scheduler driven by a virtual clock.
// Timers fire only inside Advance, on the caller's goroutine, ordered by
// deadline and then by scheduling order.
type Manual struct {
	mu     sync.Mutex
	now    time.Duration
	seq    uint64
	timers []*manualTimer
}

// NewManual returns a Manual scheduler at virtual time zero.
func NewManual() *Manual {
	return &Manual{}
}

type manualTimer struct {
	m   *Manual
	at  time.Duration
	seq uint64
	fn  func()
}

// AfterFunc schedules fn to run once the virtual clock reaches now+d.
func (m *Manual) AfterFunc(d time.Duration, fn func()) host.Timer {
	m.mu.Lock()
	defer m.mu.Unlock()

	if d < 0 {
		d = 0
	}
	m.seq++
	t := &manualTimer{m: m, at: m.now + d, seq: m.seq, fn: fn}
	m.timers = append(m.timers, t)
	return t
}

// Stop removes the timer if it has not fired yet.
func (t *manualTimer) Stop() bool {
	t.m.mu.Lock()
	defer t.m.mu.Unlock()
	return t.m.remove(t)
}

// remove deletes t from the pending list. Caller must hold m.mu.
func (m *Manual) remove(t *manualTimer) bool {
	for i, p := range m.timers {
		if p == t {
			m.timers = append(m.timers[:i], m.timers[i+1:]...)
			return true
		}
	}
	return false
}

// Advance moves the virtual clock forward by d and runs every timer that
// becomes due, including timers scheduled by callbacks within the window.
// It returns the number of callbacks run.
func (m *Manual) Advance(d time.Duration) int {
	m.mu.Lock()
	target := m.now + d
	fired := 0
	for {
		next := m.nextDue(target)
		if next == nil {
			break
		}
		m.remove(next)
		m.now = next.at
		m.mu.Unlock()
		next.fn()
		fired++
		m.mu.Lock()
	}
	m.now = target
	m.mu.Unlock()
	return fired
}

// nextDue returns the earliest timer due at or before target.
// Caller must hold m.mu.
func (m *Manual) nextDue(target time.Duration) *manualTimer {
	var best *manualTimer
	for _, t := range m.timers {
		if t.at > target {
			continue
		}
		if best == nil || t.at < best.at || (t.at == best.at && t.seq < best.seq) {
			best = t
		}
	}
	return best
}

// Now returns the elapsed virtual time.
func (m *Manual) Now() time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}

// Pending returns the number of timers that have not fired or been stopped.
func (m *Manual) Pending() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.timers)
}
