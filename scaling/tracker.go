// Package scaling tracks per-window DPI scaling combined with user
// scaling multipliers.
//
// Every widget belongs to a top-level window; its effective scaling is the
// DPI factor of the window's monitor times a user multiplier. There are
// three multipliers: widget (sizes), spacing (padding) and window
// (top-level geometry). While anyone is subscribed the tracker re-probes
// the DPI of every visible window on the host event loop and notifies the
// subscribers of a window whose monitor changed.
package scaling

import (
	"log/slog"
	"math"
	"slices"
	"sync"
	"time"

	"github.com/gogpu/ggtk/host"
	"github.com/gogpu/ggtk/internal/osprobe"
)

// Factors are the effective scaling values of one window.
type Factors struct {
	Widget  float64
	Spacing float64
	Window  float64
}

// Tracker holds the DPI state of all top-level windows.
// A Tracker is safe for concurrent use.
type Tracker struct {
	sched    host.Scheduler
	prober   Prober
	interval time.Duration
	pause    time.Duration
	log      *slog.Logger

	mu         sync.Mutex
	multiplier Factors
	deactivate bool
	windows    map[host.Window]*windowState
	order      []host.Window
	timer      host.Timer
	polling    bool
	closed     bool
}

type windowState struct {
	dpi  float64
	subs []*Subscription
}

// Subscription is a registered scaling callback. Cancel removes it.
type Subscription struct {
	t      *Tracker
	window host.Window
	fn     func(Factors)
}

// New creates a tracker that schedules DPI checks on sched.
func New(sched host.Scheduler, opts ...Option) *Tracker {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Tracker{
		sched:      sched,
		prober:     o.prober,
		interval:   o.interval,
		pause:      o.pause,
		log:        o.logger,
		multiplier: Factors{Widget: 1, Spacing: 1, Window: 1},
		windows:    make(map[host.Window]*windowState),
	}
}

// probe queries the DPI of w. Failures and nonsensical values resolve
// to 1.
func (t *Tracker) probe(w host.Window) float64 {
	if w == nil {
		return 1
	}
	dpi, err := t.prober.DPIScaling(w)
	if err != nil {
		t.log.Debug("scaling: DPI probe failed", "err", err)
		return 1
	}
	if dpi <= 0 || math.IsNaN(dpi) || math.IsInf(dpi, 0) {
		return 1
	}
	return dpi
}

// stateLocked returns the state of w, probing and caching its DPI on
// first use.
func (t *Tracker) stateLocked(w host.Window) *windowState {
	st, ok := t.windows[w]
	if !ok {
		st = &windowState{dpi: t.probe(w)}
		t.windows[w] = st
		t.order = append(t.order, w)
	}
	return st
}

func (t *Tracker) factorsLocked(w host.Window) Factors {
	dpi := 1.0
	if !t.deactivate {
		dpi = t.stateLocked(w).dpi
	}
	return Factors{
		Widget:  dpi * t.multiplier.Widget,
		Spacing: dpi * t.multiplier.Spacing,
		Window:  dpi * t.multiplier.Window,
	}
}

// Factors returns the effective scaling of the window n belongs to.
func (t *Tracker) Factors(n host.Node) Factors {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.factorsLocked(host.TopLevel(n))
}

// WidgetScaling returns the widget scaling of the window n belongs to.
func (t *Tracker) WidgetScaling(n host.Node) float64 { return t.Factors(n).Widget }

// SpacingScaling returns the spacing scaling of the window n belongs to.
func (t *Tracker) SpacingScaling(n host.Node) float64 { return t.Factors(n).Spacing }

// WindowScaling returns the window scaling of the window n belongs to.
func (t *Tracker) WindowScaling(n host.Node) float64 { return t.Factors(n).Window }

// Multipliers returns the user multipliers.
func (t *Tracker) Multipliers() Factors {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.multiplier
}

// SetWidgetScaling sets the widget multiplier, floored to MinMultiplier,
// and notifies every subscriber.
func (t *Tracker) SetWidgetScaling(f float64) {
	t.setMultiplier(func(m *Factors) { m.Widget = floorMultiplier(f) })
}

// SetSpacingScaling sets the spacing multiplier, floored to
// MinMultiplier, and notifies every subscriber.
func (t *Tracker) SetSpacingScaling(f float64) {
	t.setMultiplier(func(m *Factors) { m.Spacing = floorMultiplier(f) })
}

// SetWindowScaling sets the window multiplier, floored to MinMultiplier,
// and notifies every subscriber.
func (t *Tracker) SetWindowScaling(f float64) {
	t.setMultiplier(func(m *Factors) { m.Window = floorMultiplier(f) })
}

func floorMultiplier(f float64) float64 {
	if math.IsNaN(f) || f < MinMultiplier {
		return MinMultiplier
	}
	return f
}

func (t *Tracker) setMultiplier(update func(*Factors)) {
	t.mu.Lock()
	update(&t.multiplier)
	t.mu.Unlock()
	t.broadcastAll()
}

// SetDeactivateDPIAwareness switches DPI scaling off (every window
// reports 1) or back on, and notifies every subscriber.
func (t *Tracker) SetDeactivateDPIAwareness(deactivate bool) {
	t.mu.Lock()
	changed := t.deactivate != deactivate
	t.deactivate = deactivate
	t.mu.Unlock()
	if changed {
		t.broadcastAll()
	}
}

// DPIAwarenessDeactivated reports whether DPI scaling is switched off.
func (t *Tracker) DPIAwarenessDeactivated() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.deactivate
}

// EnableDPIAwareness asks the OS to stop bitmap-scaling the process so
// the tracker's factors apply. It only has an effect on Windows and does
// nothing when DPI awareness is deactivated.
func (t *Tracker) EnableDPIAwareness() error {
	if t.DPIAwarenessDeactivated() {
		return nil
	}
	return osprobe.EnableDPIAwareness()
}

// SubscribeWidget registers fn for the window n belongs to.
func (t *Tracker) SubscribeWidget(n host.Node, fn func(Factors)) *Subscription {
	return t.subscribe(host.TopLevel(n), fn)
}

// SubscribeWindow registers fn for w itself.
func (t *Tracker) SubscribeWindow(w host.Window, fn func(Factors)) *Subscription {
	return t.subscribe(w, fn)
}

func (t *Tracker) subscribe(w host.Window, fn func(Factors)) *Subscription {
	s := &Subscription{t: t, window: w, fn: fn}

	t.mu.Lock()
	defer t.mu.Unlock()
	st := t.stateLocked(w)
	st.subs = append(st.subs, s)
	t.startLocked()
	return s
}

// Unsubscribe cancels s. Unknown subscriptions are ignored.
func (t *Tracker) Unsubscribe(s *Subscription) {
	if s == nil || s.t != t {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	st, ok := t.windows[s.window]
	if !ok {
		return
	}
	i := slices.Index(st.subs, s)
	if i < 0 {
		return
	}
	st.subs = slices.Delete(st.subs, i, i+1)
	if t.countLocked() == 0 {
		t.stopLocked()
	}
}

// Cancel removes the subscription. Calling it again is a no-op.
func (s *Subscription) Cancel() {
	if s != nil && s.t != nil {
		s.t.Unsubscribe(s)
	}
}

// Window returns the window the subscription is registered under.
func (s *Subscription) Window() host.Window { return s.window }

// RemoveWindow forgets w and all subscriptions registered under it.
func (t *Tracker) RemoveWindow(w host.Window) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.forgetLocked(w)
	if t.countLocked() == 0 {
		t.stopLocked()
	}
}

func (t *Tracker) forgetLocked(w host.Window) {
	if _, ok := t.windows[w]; !ok {
		return
	}
	delete(t.windows, w)
	t.order = slices.DeleteFunc(t.order, func(x host.Window) bool { return x == w })
}

// Len returns the number of subscriptions.
func (t *Tracker) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.countLocked()
}

func (t *Tracker) countLocked() int {
	n := 0
	for _, st := range t.windows {
		n += len(st.subs)
	}
	return n
}

// Polling reports whether a DPI check is scheduled.
func (t *Tracker) Polling() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.timer != nil
}

// Close stops DPI checks.
func (t *Tracker) Close() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.closed = true
	t.stopLocked()
}

func (t *Tracker) startLocked() {
	if t.timer != nil || t.polling || t.closed || t.sched == nil {
		return
	}
	t.timer = t.sched.AfterFunc(t.interval, t.poll)
	t.log.Debug("scaling: DPI checks started", "interval", t.interval)
}

func (t *Tracker) stopLocked() {
	if t.timer == nil {
		return
	}
	t.timer.Stop()
	t.timer = nil
	t.log.Debug("scaling: DPI checks stopped")
}

func (t *Tracker) poll() {
	t.mu.Lock()
	t.timer = nil
	if t.closed || t.countLocked() == 0 {
		t.mu.Unlock()
		return
	}
	t.polling = true
	t.mu.Unlock()

	changed := t.CheckDPI()

	t.mu.Lock()
	defer t.mu.Unlock()
	t.polling = false
	if t.closed || t.timer != nil || t.countLocked() == 0 {
		return
	}
	if !t.anyAliveLocked() {
		t.log.Debug("scaling: no live window, DPI checks stopped")
		return
	}
	delay := t.interval
	if changed {
		delay = t.pause
	}
	t.timer = t.sched.AfterFunc(delay, t.poll)
}

func (t *Tracker) anyAliveLocked() bool {
	for _, w := range t.order {
		if w != nil && w.Alive() {
			return true
		}
	}
	return false
}

// CheckDPI forgets dead windows, re-probes every live, non-minimized one
// and notifies the subscribers of each window whose DPI changed. It
// reports whether any change was found. While DPI awareness is
// deactivated only the dead windows are forgotten.
func (t *Tracker) CheckDPI() bool {
	t.mu.Lock()
	var check []host.Window
	for _, w := range slices.Clone(t.order) {
		switch {
		case w == nil:
		case !w.Alive():
			t.forgetLocked(w)
		case !w.Iconic():
			check = append(check, w)
		}
	}
	if t.deactivate {
		t.mu.Unlock()
		return false
	}
	t.mu.Unlock()

	var changed []host.Window
	for _, w := range check {
		dpi := t.probe(w)
		t.mu.Lock()
		if st, ok := t.windows[w]; ok && st.dpi != dpi {
			t.log.Debug("scaling: DPI changed", "from", st.dpi, "to", dpi)
			st.dpi = dpi
			changed = append(changed, w)
		}
		t.mu.Unlock()
	}

	for _, w := range changed {
		t.broadcastWindow(w)
	}
	return len(changed) > 0
}

// broadcastWindow notifies the subscribers of w with its dimension events
// blocked.
func (t *Tracker) broadcastWindow(w host.Window) {
	t.mu.Lock()
	st, ok := t.windows[w]
	if !ok {
		t.mu.Unlock()
		return
	}
	subs := slices.Clone(st.subs)
	f := t.factorsLocked(w)
	t.mu.Unlock()

	if b, ok := w.(host.DimensionBlocker); ok {
		b.BlockDimensionEvents()
		defer b.UnblockDimensionEvents()
	}
	for _, s := range subs {
		s.fn(f)
	}
}

// broadcastAll notifies every subscriber of every window, window by
// window in registration order.
func (t *Tracker) broadcastAll() {
	type batch struct {
		subs []*Subscription
		f    Factors
	}
	t.mu.Lock()
	batches := make([]batch, 0, len(t.order))
	for _, w := range t.order {
		st := t.windows[w]
		if len(st.subs) == 0 {
			continue
		}
		batches = append(batches, batch{subs: slices.Clone(st.subs), f: t.factorsLocked(w)})
	}
	t.mu.Unlock()

	for _, b := range batches {
		for _, s := range b.subs {
			s.fn(b.f)
		}
	}
}
