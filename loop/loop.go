// Package loop provides single-threaded event loops implementing
// host.Scheduler.
//
// Loop is a real event loop: callbacks posted to it, and timer callbacks,
// run one after another on the goroutine that calls Run. Manual is a
// virtual-clock scheduler whose timers fire only when Advance is called,
// which makes tracker polling deterministic in tests.
package loop

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gogpu/ggtk/host"
)

// Loop runs callbacks serially on a single goroutine.
//
// Post and AfterFunc are safe for concurrent use. The callbacks themselves
// never run concurrently with each other.
type Loop struct {
	mu      sync.Mutex
	pending []func()
	closed  bool

	wake     chan struct{}
	quit     chan struct{}
	quitOnce sync.Once
}

// New creates an idle loop. Call Run to start processing callbacks.
func New() *Loop {
	return &Loop{
		wake: make(chan struct{}, 1),
		quit: make(chan struct{}),
	}
}

// Post queues fn to run on the loop goroutine.
// It returns false if the loop has been quit.
func (l *Loop) Post(fn func()) bool {
	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		return false
	}
	l.pending = append(l.pending, fn)
	l.mu.Unlock()

	select {
	case l.wake <- struct{}{}:
	default:
	}
	return true
}

// AfterFunc posts fn to the loop after d has elapsed.
func (l *Loop) AfterFunc(d time.Duration, fn func()) host.Timer {
	t := &loopTimer{}
	t.t = time.AfterFunc(d, func() {
		if !t.state.CompareAndSwap(timerPending, timerQueued) {
			return
		}
		l.Post(func() {
			if t.state.CompareAndSwap(timerQueued, timerDone) {
				fn()
			}
		})
	})
	return t
}

// Run processes callbacks until ctx is done or Quit is called.
// It returns ctx.Err() when the context ends the loop, nil after Quit.
func (l *Loop) Run(ctx context.Context) error {
	for {
		l.mu.Lock()
		batch := l.pending
		l.pending = nil
		l.mu.Unlock()

		for _, fn := range batch {
			fn()
		}
		if len(batch) > 0 {
			continue
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-l.quit:
			return nil
		case <-l.wake:
		}
	}
}

// Quit stops Run after the current callback. Posting after Quit is a no-op.
func (l *Loop) Quit() {
	l.quitOnce.Do(func() {
		l.mu.Lock()
		l.closed = true
		l.pending = nil
		l.mu.Unlock()
		close(l.quit)
	})
}

const (
	timerPending int32 = iota
	timerQueued
	timerStopped
	timerDone
)

type loopTimer struct {
	t     *time.Timer
	state atomic.Int32
}

// Stop cancels the callback, including one already queued on the loop
// but not yet run.
func (t *loopTimer) Stop() bool {
	if t.state.CompareAndSwap(timerPending, timerStopped) {
		t.t.Stop()
		return true
	}
	return t.state.CompareAndSwap(timerQueued, timerStopped)
}
