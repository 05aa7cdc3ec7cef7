package ggtk

import (
	"log/slog"

	"github.com/gogpu/ggtk/appearance"
	"github.com/gogpu/ggtk/config"
	"github.com/gogpu/ggtk/draw"
	"github.com/gogpu/ggtk/host"
	"github.com/gogpu/ggtk/scaling"
	"github.com/gogpu/ggtk/theme"
)

// Option configures a Toolkit during creation.
//
// Example:
//
//	// Defaults: own event loop, OS probes, platform drawing method
//	tk, _ := ggtk.New()
//
//	// Deterministic setup for tests
//	tk, _ := ggtk.New(ggtk.WithScheduler(loop.NewManual()), ggtk.WithMethod(draw.MethodPolygon))
type Option func(*options)

type options struct {
	scheduler host.Scheduler
	method    draw.Method
	theme     *theme.Theme
	detector  appearance.Detector
	prober    scaling.Prober
	settings  *config.Settings
	noDPI     bool
	logger    *slog.Logger
}

// WithScheduler runs timers and broadcasts on s instead of the toolkit's
// own loop. Run and Post are then unavailable.
func WithScheduler(s host.Scheduler) Option {
	return func(o *options) { o.scheduler = s }
}

// WithMethod selects the drawing method. The default is
// draw.DefaultMethod for the running OS.
func WithMethod(m draw.Method) Option {
	return func(o *options) { o.method = m }
}

// WithTheme sets the theme. The default is theme.Default.
func WithTheme(t *theme.Theme) Option {
	return func(o *options) { o.theme = t }
}

// WithDetector replaces the OS light/dark detector.
func WithDetector(d appearance.Detector) Option {
	return func(o *options) { o.detector = d }
}

// WithProber replaces the OS DPI prober.
func WithProber(p scaling.Prober) Option {
	return func(o *options) { o.prober = p }
}

// WithSettings applies user settings at creation. Its method and theme
// take effect only here; the rest can be changed later with Apply.
func WithSettings(s config.Settings) Option {
	return func(o *options) { o.settings = &s }
}

// WithoutDPIAwareness skips declaring the process DPI aware at creation.
func WithoutDPIAwareness() Option {
	return func(o *options) { o.noDPI = true }
}

// WithLogger sets the toolkit logger. The default is Logger().
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}
