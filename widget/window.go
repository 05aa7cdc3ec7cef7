package widget

import (
	"math"
	"slices"

	"github.com/gogpu/ggtk/appearance"
	"github.com/gogpu/ggtk/host"
	"github.com/gogpu/ggtk/scaling"
	"github.com/gogpu/ggtk/theme"
)

// Default logical size of a new window.
const (
	defaultWindowWidth  = 600
	defaultWindowHeight = 500
)

// Window is a top-level window. It implements host.Window and
// host.DimensionBlocker so the trackers can follow it.
type Window struct {
	env   *Env
	title string
	fg    theme.Color

	width, height float64

	mode    theme.Mode
	factors scaling.Factors

	children
	dead    bool
	iconic  bool
	handle  uintptr
	blocked int

	appearanceSub *appearance.Subscription
	scalingSub    *scaling.Subscription
	onDestroy     []func()
}

var (
	_ host.Window           = (*Window)(nil)
	_ host.DimensionBlocker = (*Window)(nil)
	_ Container             = (*Window)(nil)
)

// NewWindow creates a top-level window. WithSize sets its logical size,
// WithText its title and WithColor("fg_color", …) its background.
func NewWindow(env *Env, opts ...Option) *Window {
	o := newOptions(opts)
	st := style{t: env.Theme, category: "Window", o: &o}
	w := &Window{env: env, title: o.text, fg: st.color("fg_color")}
	w.width, w.height = o.size(defaultWindowWidth, defaultWindowHeight)

	w.mode = env.Appearance.Mode()
	w.factors = env.Scaling.Factors(w)
	w.appearanceSub = env.Appearance.Subscribe(w, func(m theme.Mode) { w.mode = m })
	w.scalingSub = env.Scaling.SubscribeWindow(w, func(f scaling.Factors) { w.factors = f })
	env.Logger.Debug("widget: window created", "title", w.title, "width", w.width, "height", w.height)
	return w
}

// Parent implements host.Node. Windows have no parent.
func (*Window) Parent() host.Node { return nil }

// Alive implements host.Window.
func (w *Window) Alive() bool { return !w.dead }

// Iconic implements host.Window.
func (w *Window) Iconic() bool { return w.iconic }

// Handle implements host.Window.
func (w *Window) Handle() uintptr { return w.handle }

// SetHandle records the native handle the host created for the window.
func (w *Window) SetHandle(h uintptr) { w.handle = h }

// Iconify minimizes the window. DPI checks skip minimized windows.
func (w *Window) Iconify() { w.iconic = true }

// Deiconify restores a minimized window.
func (w *Window) Deiconify() { w.iconic = false }

// BlockDimensionEvents implements host.DimensionBlocker.
func (w *Window) BlockDimensionEvents() { w.blocked++ }

// UnblockDimensionEvents implements host.DimensionBlocker.
func (w *Window) UnblockDimensionEvents() {
	if w.blocked > 0 {
		w.blocked--
	}
}

// Title returns the window title.
func (w *Window) Title() string { return w.title }

// SetTitle sets the window title.
func (w *Window) SetTitle(s string) { w.title = s }

// Mode returns the current appearance mode of the window.
func (w *Window) Mode() theme.Mode { return w.mode }

// Factors returns the scaling of the window.
func (w *Window) Factors() scaling.Factors { return w.factors }

// FgColor implements Container.
func (w *Window) FgColor() theme.Color { return w.fg }

// SetFgColor sets the background color of the window.
func (w *Window) SetFgColor(c theme.Color) { w.fg = c }

func (w *Window) environment() *Env { return w.env }

// Children implements Container.
func (w *Window) Children() []Widget { return slices.Clone(w.children) }

// SetSize sets the logical size. The device size follows the window
// scaling.
func (w *Window) SetSize(width, height float64) {
	w.width, w.height = width, height
}

// LogicalSize returns the size in logical units.
func (w *Window) LogicalSize() (float64, float64) { return w.width, w.height }

// DeviceSize returns the size in device pixels.
func (w *Window) DeviceSize() (int, int) {
	return int(math.Round(w.width * w.factors.Window)), int(math.Round(w.height * w.factors.Window))
}

// HandleResize processes a resize of the native window in device pixels.
// Resizes are ignored while dimension events are blocked, which happens
// while the window is rescaled after a DPI change. It reports whether the
// logical size changed.
func (w *Window) HandleResize(devW, devH float64) bool {
	if w.blocked > 0 {
		return false
	}
	f := w.factors.Window
	if f <= 0 {
		f = 1
	}
	width, height := math.Round(devW/f), math.Round(devH/f)
	if width == w.width && height == w.height {
		return false
	}
	w.width, w.height = width, height
	return true
}

// Destroy destroys every child, cancels the window's subscriptions and
// makes the window dead for the trackers. Calling it again is a no-op.
func (w *Window) Destroy() {
	if w.dead {
		return
	}
	w.children.destroyAll()
	w.appearanceSub.Cancel()
	w.scalingSub.Cancel()
	w.env.Scaling.RemoveWindow(w)
	w.dead = true
	w.env.Logger.Debug("widget: window destroyed", "title", w.title)
	for _, fn := range w.onDestroy {
		fn()
	}
	w.onDestroy = nil
}

// OnDestroy registers fn to run once the window is destroyed. fn runs
// immediately on a dead window.
func (w *Window) OnDestroy(fn func()) {
	if w.dead {
		fn()
		return
	}
	w.onDestroy = append(w.onDestroy, fn)
}
