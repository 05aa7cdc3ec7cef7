package ggtk

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"slices"
	"sync"

	"github.com/gogpu/ggtk/appearance"
	"github.com/gogpu/ggtk/canvas"
	"github.com/gogpu/ggtk/config"
	"github.com/gogpu/ggtk/draw"
	"github.com/gogpu/ggtk/host"
	"github.com/gogpu/ggtk/internal/osprobe"
	"github.com/gogpu/ggtk/loop"
	"github.com/gogpu/ggtk/scaling"
	"github.com/gogpu/ggtk/theme"
	"github.com/gogpu/ggtk/widget"
)

// Toolkit owns the process-wide state widgets share: the scheduler, the
// appearance and scaling trackers, the theme and the drawing backend.
//
// Close stops the trackers' polling timers. A process normally creates
// one Toolkit.
type Toolkit struct {
	sched  host.Scheduler
	loop   *loop.Loop // nil with WithScheduler
	method draw.Method
	env    *widget.Env
	log    *slog.Logger

	mu      sync.Mutex
	windows []*widget.Window
	closed  bool
}

// New builds a Toolkit. Settings given with WithSettings are validated
// and applied before New returns.
func New(opts ...Option) (*Toolkit, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = Logger()
	}

	if s := o.settings; s != nil {
		if err := s.Validate(); err != nil {
			return nil, err
		}
		if o.method == "" && s.Method != "" {
			m, err := draw.ParseMethod(s.Method)
			if err != nil {
				return nil, err
			}
			o.method = m
		}
		if o.theme == nil && s.Theme != "" {
			th, err := theme.LoadFile(s.Theme)
			if err != nil {
				return nil, err
			}
			o.theme = th
		}
	}
	if o.method == "" {
		o.method = draw.DefaultMethod(runtime.GOOS)
	}
	backend, err := draw.NewBackend(o.method)
	if err != nil {
		return nil, fmt.Errorf("ggtk: %w", err)
	}

	t := &Toolkit{sched: o.scheduler, method: o.method, log: o.logger}
	if t.sched == nil {
		t.loop = loop.New()
		t.sched = t.loop
	}

	appOpts := []appearance.Option{appearance.WithLogger(o.logger)}
	if o.detector != nil {
		appOpts = append(appOpts, appearance.WithDetector(o.detector))
	}
	scOpts := []scaling.Option{scaling.WithLogger(o.logger)}
	if o.prober != nil {
		scOpts = append(scOpts, scaling.WithProber(o.prober))
	}

	env, err := widget.NewEnv(widget.Env{
		Scheduler:  t.sched,
		Appearance: appearance.New(t.sched, appOpts...),
		Scaling:    scaling.New(t.sched, scOpts...),
		Theme:      o.theme,
		Backend:    backend,
		Glyphs:     canvas.DefaultGlyphTable(runtime.GOOS, osprobe.WindowsBuild()),
		Logger:     o.logger,
	})
	if err != nil {
		return nil, err
	}
	t.env = env

	if o.settings != nil {
		if err := t.apply(*o.settings); err != nil {
			t.Close()
			return nil, err
		}
	}
	if !o.noDPI && !env.Scaling.DPIAwarenessDeactivated() {
		if err := env.Scaling.EnableDPIAwareness(); err != nil {
			o.logger.Debug("ggtk: DPI awareness not enabled", "err", err)
		}
	}

	o.logger.Info("ggtk: toolkit created", "method", t.method, "appearance", env.Appearance.ModeName())
	return t, nil
}

// Env returns the services passed to widgets.
func (t *Toolkit) Env() *widget.Env { return t.env }

// Appearance returns the light/dark tracker.
func (t *Toolkit) Appearance() *appearance.Tracker { return t.env.Appearance }

// Scaling returns the DPI and multiplier tracker.
func (t *Toolkit) Scaling() *scaling.Tracker { return t.env.Scaling }

// Theme returns the active theme.
func (t *Toolkit) Theme() *theme.Theme { return t.env.Theme }

// Method returns the drawing method in use.
func (t *Toolkit) Method() draw.Method { return t.method }

// NewWindow creates a top-level window. Windows still alive at Close are
// destroyed there.
func (t *Toolkit) NewWindow(opts ...widget.Option) *widget.Window {
	w := widget.NewWindow(t.env, opts...)
	t.mu.Lock()
	t.windows = append(t.windows, w)
	t.mu.Unlock()
	w.OnDestroy(func() { t.forget(w) })
	return w
}

func (t *Toolkit) forget(w *widget.Window) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.windows = slices.DeleteFunc(t.windows, func(x *widget.Window) bool { return x == w })
}

func (t *Toolkit) windowCount() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.windows)
}

// Apply sets the appearance mode, the scaling multipliers and the DPI
// awareness switch from s. Subscribers are notified on the calling
// goroutine, so call Apply where widgets live.
func (t *Toolkit) Apply(s config.Settings) error {
	if err := s.Validate(); err != nil {
		return err
	}
	if t.isClosed() {
		return ErrClosed
	}
	return t.apply(s)
}

func (t *Toolkit) apply(s config.Settings) error {
	if err := t.env.Appearance.SetMode(s.Appearance); err != nil {
		return err
	}
	sc := t.env.Scaling
	m := sc.Multipliers()
	if m.Widget != s.Scaling.Widget {
		sc.SetWidgetScaling(s.Scaling.Widget)
	}
	if m.Spacing != s.Scaling.Spacing {
		sc.SetSpacingScaling(s.Scaling.Spacing)
	}
	if m.Window != s.Scaling.Window {
		sc.SetWindowScaling(s.Scaling.Window)
	}
	if sc.DPIAwarenessDeactivated() != s.Scaling.DeactivateDPIAwareness {
		sc.SetDeactivateDPIAwareness(s.Scaling.DeactivateDPIAwareness)
	}
	return nil
}

// WatchSettings reloads the settings file at path whenever it changes and
// applies it on the scheduler. A file that fails to load is logged and
// ignored. WatchSettings blocks until ctx is done.
func (t *Toolkit) WatchSettings(ctx context.Context, path string) error {
	return config.Watch(ctx, path, func(s config.Settings, err error) {
		if err != nil {
			t.log.Warn("ggtk: settings reload failed", "path", path, "err", err)
			return
		}
		t.sched.AfterFunc(0, func() {
			if err := t.Apply(s); err != nil {
				t.log.Warn("ggtk: settings not applied", "path", path, "err", err)
				return
			}
			t.log.Info("ggtk: settings reloaded", "path", path)
		})
	})
}

// Run processes callbacks on the calling goroutine until ctx is done or
// the toolkit is closed.
func (t *Toolkit) Run(ctx context.Context) error {
	if t.loop == nil {
		return ErrExternalScheduler
	}
	if t.isClosed() {
		return ErrClosed
	}
	return t.loop.Run(ctx)
}

// Post queues fn to run on the goroutine calling Run. It is safe for
// concurrent use.
func (t *Toolkit) Post(fn func()) error {
	if t.loop == nil {
		return ErrExternalScheduler
	}
	if !t.loop.Post(fn) {
		return ErrClosed
	}
	return nil
}

func (t *Toolkit) isClosed() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.closed
}

// Close destroys the remaining windows, stops the trackers and ends Run.
// Close is idempotent.
func (t *Toolkit) Close() error {
	t.mu.Lock()
	if t.closed {
		t.mu.Unlock()
		return nil
	}
	t.closed = true
	windows := t.windows
	t.windows = nil
	t.mu.Unlock()

	for _, w := range windows {
		if w.Alive() {
			w.Destroy()
		}
	}
	t.env.Appearance.Close()
	t.env.Scaling.Close()
	if t.loop != nil {
		t.loop.Quit()
	}
	t.log.Info("ggtk: toolkit closed")
	return nil
}
