// Package osprobe queries the operating system for the light/dark
// preference and the DPI scaling of native windows.
//
// Queries that leave the process (D-Bus, subprocesses) are cached for a
// short while, so they can be called from a poll timer on the UI loop.
// Platforms without a supported query return neutral values (light,
// scaling 1) and a nil error.
package osprobe

import (
	"errors"
	"sync"
	"time"
)

// ErrUnavailable is returned when the platform facility exists in
// principle but could not be reached (no session bus, old Windows, no
// native handle).
var ErrUnavailable = errors.New("osprobe: query unavailable")

// baseDPI is the DPI that corresponds to a scaling factor of 1.
const baseDPI = 96

const (
	// callTimeout bounds one query, including a retried IPC call.
	callTimeout = 250 * time.Millisecond

	// resultTTL is how long a query result is reused. It is longer than
	// the trackers' poll intervals.
	resultTTL = time.Second

	// retryAfter is how long an unreachable facility is not asked again.
	retryAfter = 5 * time.Second
)

// cached remembers the outcome of a slow lookup. Successes are reused for
// ttl, failures for failTTL. The zero now uses time.Now.
type cached[T any] struct {
	ttl, failTTL time.Duration
	now          func() time.Time

	mu  sync.Mutex
	at  time.Time
	set bool
	val T
	err error
}

func (c *cached[T]) get(fn func() (T, error)) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now()
	if c.now != nil {
		now = c.now()
	}
	ttl := c.ttl
	if c.err != nil {
		ttl = c.failTTL
	}
	if c.set && now.Sub(c.at) < ttl {
		return c.val, c.err
	}
	c.val, c.err = fn()
	c.at, c.set = now, true
	return c.val, c.err
}

// dpiScale converts per-axis monitor DPI to a scaling factor.
func dpiScale(x, y uint32) float64 {
	if x == 0 && y == 0 {
		return 1
	}
	return float64(x+y) / (2 * baseDPI)
}
