// Package appearance tracks the light/dark appearance mode and notifies
// widgets when it changes.
//
// The mode follows the operating system until the user picks one
// explicitly with SetMode("light") or SetMode("dark"); SetMode("system")
// hands control back to the OS. While anyone is subscribed the tracker
// polls the OS on the host event loop.
package appearance

import (
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"sync"
	"time"

	"golang.org/x/text/cases"

	"github.com/gogpu/ggtk/host"
	"github.com/gogpu/ggtk/theme"
)

// SetBy records who chose the current mode.
type SetBy uint8

const (
	// BySystem means the mode follows the OS.
	BySystem SetBy = iota
	// ByUser means the mode was set explicitly and polling leaves it alone.
	ByUser
)

func (s SetBy) String() string {
	if s == ByUser {
		return "user"
	}
	return "system"
}

// Tracker holds the process-wide appearance mode.
//
// Callbacks run on the goroutine that triggered the change: the host event
// loop for OS changes, the caller of SetMode for explicit changes. A
// Tracker is safe for concurrent use; callbacks may subscribe and cancel.
type Tracker struct {
	sched    host.Scheduler
	detector Detector
	interval time.Duration
	log      *slog.Logger

	mu      sync.Mutex
	mode    theme.Mode
	setBy   SetBy
	subs    []*Subscription
	windows map[host.Window]struct{}
	timer   host.Timer
	closed  bool
}

// Subscription is a registered callback. Cancel removes it.
type Subscription struct {
	t     *Tracker
	owner host.Node
	fn    func(theme.Mode)
}

// New creates a tracker that schedules its polling on sched and starts in
// the mode the detector reports.
func New(sched host.Scheduler, opts ...Option) *Tracker {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	t := &Tracker{
		sched:    sched,
		detector: o.detector,
		interval: o.interval,
		log:      o.logger,
		windows:  make(map[host.Window]struct{}),
	}
	t.mode = t.detect()
	return t
}

// detect queries the detector. Failures resolve to Light.
func (t *Tracker) detect() theme.Mode {
	m, err := t.detector.Detect()
	if err != nil {
		t.log.Debug("appearance: detection failed", "err", err)
		return theme.Light
	}
	return m
}

// Mode returns the current mode.
func (t *Tracker) Mode() theme.Mode {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.mode
}

// ModeName returns "Light" or "Dark".
func (t *Tracker) ModeName() string { return t.Mode().String() }

// SetBy reports whether the mode follows the OS or was set explicitly.
func (t *Tracker) SetBy() SetBy {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.setBy
}

// SetMode sets the mode by name, ignoring case. "light" and "dark"
// override the OS and notify subscribers on change; "system" returns
// control to the OS and refreshes immediately.
func (t *Tracker) SetMode(name string) error {
	var m theme.Mode
	switch cases.Fold().String(strings.TrimSpace(name)) {
	case "light":
		m = theme.Light
	case "dark":
		m = theme.Dark
	case "system":
		t.mu.Lock()
		t.setBy = BySystem
		t.mu.Unlock()
		t.Refresh()
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrInvalidMode, name)
	}

	t.mu.Lock()
	t.setBy = ByUser
	changed := t.mode != m
	t.mode = m
	t.mu.Unlock()

	if changed {
		t.broadcast(m)
	}
	return nil
}

// Refresh queries the OS when the mode follows it and notifies
// subscribers on change.
func (t *Tracker) Refresh() {
	t.mu.Lock()
	if t.setBy != BySystem {
		t.mu.Unlock()
		return
	}
	t.mu.Unlock()

	m := t.detect()

	t.mu.Lock()
	changed := t.setBy == BySystem && t.mode != m
	if changed {
		t.mode = m
	}
	t.mu.Unlock()

	if changed {
		t.log.Debug("appearance: system mode changed", "mode", m)
		t.broadcast(m)
	}
}

// Subscribe registers fn, owned by the widget or window owner. The first
// subscription starts polling.
func (t *Tracker) Subscribe(owner host.Node, fn func(theme.Mode)) *Subscription {
	s := &Subscription{t: t, owner: owner, fn: fn}

	t.mu.Lock()
	defer t.mu.Unlock()
	t.subs = append(t.subs, s)
	if w := host.TopLevel(owner); w != nil {
		t.windows[w] = struct{}{}
	}
	t.startLocked()
	return s
}

// Unsubscribe cancels s. Subscriptions of other trackers and repeated
// cancellation are ignored.
func (t *Tracker) Unsubscribe(s *Subscription) {
	if s == nil || s.t != t {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	i := slices.Index(t.subs, s)
	if i < 0 {
		return
	}
	t.subs = slices.Delete(t.subs, i, i+1)
	if len(t.subs) == 0 {
		t.stopLocked()
	}
}

// Cancel removes the subscription. Calling it again is a no-op.
func (s *Subscription) Cancel() {
	if s != nil && s.t != nil {
		s.t.Unsubscribe(s)
	}
}

// Owner returns the node the subscription belongs to.
func (s *Subscription) Owner() host.Node { return s.owner }

// Len returns the number of subscriptions.
func (t *Tracker) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.subs)
}

// Polling reports whether the poll timer is armed.
func (t *Tracker) Polling() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.timer != nil
}

// Close stops polling. Subscriptions stay registered but are no longer
// notified of OS changes.
func (t *Tracker) Close() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.closed = true
	t.stopLocked()
}

func (t *Tracker) startLocked() {
	if t.timer != nil || t.closed || t.sched == nil {
		return
	}
	t.timer = t.sched.AfterFunc(t.interval, t.poll)
	t.log.Debug("appearance: polling started", "interval", t.interval)
}

func (t *Tracker) stopLocked() {
	if t.timer == nil {
		return
	}
	t.timer.Stop()
	t.timer = nil
	t.log.Debug("appearance: polling stopped")
}

func (t *Tracker) poll() {
	t.mu.Lock()
	t.timer = nil
	if t.closed || len(t.subs) == 0 {
		t.mu.Unlock()
		return
	}
	if !t.pruneWindowsLocked() {
		t.log.Debug("appearance: no live window, polling stopped")
		t.mu.Unlock()
		return
	}
	t.timer = t.sched.AfterFunc(t.interval, t.poll)
	t.mu.Unlock()

	t.Refresh()
}

// pruneWindowsLocked forgets dead windows. It reports false when windows
// were known and none is left.
func (t *Tracker) pruneWindowsLocked() bool {
	if len(t.windows) == 0 {
		return true
	}
	for w := range t.windows {
		if !w.Alive() {
			delete(t.windows, w)
		}
	}
	return len(t.windows) > 0
}

// broadcast calls every subscriber in registration order. A panicking
// subscriber is logged and skipped.
func (t *Tracker) broadcast(m theme.Mode) {
	t.mu.Lock()
	subs := slices.Clone(t.subs)
	t.mu.Unlock()

	for _, s := range subs {
		t.notify(s, m)
	}
}

func (t *Tracker) notify(s *Subscription, m theme.Mode) {
	defer func() {
		if r := recover(); r != nil {
			t.log.Debug("appearance: subscriber panicked", "panic", r)
		}
	}()
	s.fn(m)
}
