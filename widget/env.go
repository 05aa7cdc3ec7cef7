// Package widget provides themed widgets drawn with the draw engine.
//
// Every widget owns a canvas.Scene holding its primitives and a
// draw.Engine bound to it. Sizes are kept in logical units and converted
// to device pixels with the widget scaling of the owning window. Widgets
// subscribe to the appearance and scaling trackers when constructed and
// redraw on every broadcast; Destroy cancels both subscriptions.
//
// Widgets are not safe for concurrent use. Create and modify them on the
// goroutine running the host event loop, the same goroutine that delivers
// tracker broadcasts.
package widget

import (
	"log/slog"
	"runtime"

	"github.com/gogpu/ggtk/appearance"
	"github.com/gogpu/ggtk/canvas"
	"github.com/gogpu/ggtk/draw"
	"github.com/gogpu/ggtk/host"
	"github.com/gogpu/ggtk/scaling"
	"github.com/gogpu/ggtk/theme"
)

// Env carries the process-wide services every widget depends on.
// A zero field is replaced by a default in NewEnv.
type Env struct {
	Scheduler  host.Scheduler
	Appearance *appearance.Tracker
	Scaling    *scaling.Tracker
	Theme      *theme.Theme
	Backend    draw.Backend
	Glyphs     *canvas.GlyphTable
	Logger     *slog.Logger
}

// NewEnv fills the missing services of e. Trackers are created on
// e.Scheduler with the system probes; the backend is the platform
// default. The scheduler itself is required.
func NewEnv(e Env) (*Env, error) {
	if e.Scheduler == nil {
		return nil, ErrNoScheduler
	}
	if e.Logger == nil {
		e.Logger = slog.New(slog.DiscardHandler)
	}
	if e.Appearance == nil {
		e.Appearance = appearance.New(e.Scheduler, appearance.WithLogger(e.Logger))
	}
	if e.Scaling == nil {
		e.Scaling = scaling.New(e.Scheduler, scaling.WithLogger(e.Logger))
	}
	if e.Theme == nil {
		e.Theme = theme.Default()
	}
	if e.Backend == nil {
		b, err := draw.NewBackend(draw.DefaultMethod(runtime.GOOS))
		if err != nil {
			return nil, err
		}
		e.Backend = b
	}
	return &e, nil
}

// newScene returns an empty scene using the environment's glyph table.
func (e *Env) newScene() *canvas.Scene {
	return canvas.NewScene(canvas.WithGlyphTable(e.Glyphs))
}
