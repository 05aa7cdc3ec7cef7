package widget

import (
	"log/slog"
	"math"
	"slices"

	"github.com/gogpu/ggtk/appearance"
	"github.com/gogpu/ggtk/canvas"
	"github.com/gogpu/ggtk/draw"
	"github.com/gogpu/ggtk/host"
	"github.com/gogpu/ggtk/scaling"
	"github.com/gogpu/ggtk/theme"
)

// Widget is a drawable node inside a Container.
type Widget interface {
	host.Node

	// Scene returns the primitives of the widget in device pixels,
	// relative to its top-left corner.
	Scene() *canvas.Scene

	// Position returns the device offset inside the parent.
	Position() (x, y float64)

	// Size returns the device size.
	Size() (w, h float64)

	// Destroy cancels the widget's subscriptions and detaches it.
	Destroy()
}

// Container holds widgets. Window and Frame are containers.
type Container interface {
	host.Node

	// FgColor returns the color of the container's surface. It is never
	// transparent: containers without a color report their parent's.
	FgColor() theme.Color

	// Children returns the attached widgets in creation order.
	Children() []Widget

	environment() *Env
	attach(Widget)
	detach(Widget)
}

// labelTag tags the text item of widgets that show a label.
const labelTag = "label"

// labelSize is the logical font size of labels.
const labelSize = 13

// Base implements the parts shared by all widgets: logical/device size
// conversion, tracker subscriptions, and redraw dispatch. Concrete
// widgets embed it and supply a render function.
type Base struct {
	env    *Env
	parent Container
	self   Widget
	scene  *canvas.Scene
	engine *draw.Engine
	log    *slog.Logger

	x, y               float64
	desiredW, desiredH float64
	currentW, currentH float64

	mode    theme.Mode
	factors scaling.Factors

	appearanceSub *appearance.Subscription
	scalingSub    *scaling.Subscription
	destroyed     bool

	render  func(noColorUpdates bool)
	redraws int
}

// init wires b into the widget tree and both trackers. The caller draws
// the first frame once its own fields are set.
func (b *Base) init(parent Container, self Widget, w, h float64, render func(bool)) {
	env := parent.environment()
	b.env = env
	b.parent = parent
	b.self = self
	b.log = env.Logger
	b.scene = env.newScene()
	b.engine = draw.NewEngine(b.scene, env.Backend)
	b.desiredW, b.desiredH = w, h
	b.currentW, b.currentH = w, h
	b.render = render

	b.mode = env.Appearance.Mode()
	b.factors = env.Scaling.Factors(b)
	b.appearanceSub = env.Appearance.Subscribe(b, b.setAppearanceMode)
	b.scalingSub = env.Scaling.SubscribeWidget(b, b.setScaling)
	parent.attach(self)
}

// Parent implements host.Node.
func (b *Base) Parent() host.Node {
	if b.parent == nil {
		return nil
	}
	return b.parent
}

func (b *Base) environment() *Env { return b.env }

// Scene returns the widget's primitives.
func (b *Base) Scene() *canvas.Scene { return b.scene }

// Engine returns the draw engine bound to the widget's scene.
func (b *Base) Engine() *draw.Engine { return b.engine }

// Mode returns the appearance mode the widget was last drawn in.
func (b *Base) Mode() theme.Mode { return b.mode }

// Factors returns the scaling of the widget's window.
func (b *Base) Factors() scaling.Factors { return b.factors }

// Place sets the logical position inside the parent.
func (b *Base) Place(x, y float64) { b.x, b.y = x, y }

// Position returns the device position: the logical position times the
// spacing scaling.
func (b *Base) Position() (float64, float64) {
	return b.x * b.factors.Spacing, b.y * b.factors.Spacing
}

// Size returns the current device size.
func (b *Base) Size() (float64, float64) {
	return b.scaled(b.currentW), b.scaled(b.currentH)
}

// LogicalSize returns the current size in logical units.
func (b *Base) LogicalSize() (float64, float64) { return b.currentW, b.currentH }

// DesiredSize returns the size requested with SetSize or at construction.
func (b *Base) DesiredSize() (float64, float64) { return b.desiredW, b.desiredH }

// SetSize sets the logical size and redraws the geometry.
func (b *Base) SetSize(w, h float64) {
	b.desiredW, b.desiredH = w, h
	if w == b.currentW && h == b.currentH {
		return
	}
	b.currentW, b.currentH = w, h
	b.draw(true)
}

// HandleResize processes a resize notification carrying device pixels.
// It redraws only when the size, rounded to logical units, changed, and
// then skips the color pass unless new primitives were created. It
// reports whether a redraw happened.
func (b *Base) HandleResize(devW, devH float64) bool {
	f := b.factors.Widget
	if f <= 0 {
		f = 1
	}
	w, h := math.Round(devW/f), math.Round(devH/f)
	if w == b.currentW && h == b.currentH {
		return false
	}
	b.currentW, b.currentH = w, h
	b.draw(true)
	return true
}

// Redraw draws the widget and applies all colors.
func (b *Base) Redraw() { b.draw(false) }

// Redraws returns how many times the widget has been drawn.
func (b *Base) Redraws() int { return b.redraws }

// Destroyed reports whether Destroy was called.
func (b *Base) Destroyed() bool { return b.destroyed }

// Destroy cancels both tracker subscriptions and detaches the widget from
// its parent. Calling it again is a no-op.
func (b *Base) Destroy() {
	if b.destroyed {
		return
	}
	b.destroyed = true
	b.appearanceSub.Cancel()
	b.scalingSub.Cancel()
	b.parent.detach(b.self)
}

func (b *Base) setAppearanceMode(m theme.Mode) {
	b.mode = m
	b.draw(false)
}

func (b *Base) setScaling(f scaling.Factors) {
	b.factors = f
	b.draw(false)
}

func (b *Base) draw(noColorUpdates bool) {
	if b.destroyed || b.render == nil {
		return
	}
	b.redraws++
	b.render(noColorUpdates)
}

// scaled converts a logical length to device pixels.
func (b *Base) scaled(v float64) float64 { return v * b.factors.Widget }

// resolve returns the concrete color of c in the current mode. Transparent
// and empty colors resolve to the parent's surface color.
func (b *Base) resolve(c theme.Color) string {
	if c.IsTransparent() || c.IsZero() {
		c = b.parent.FgColor()
	}
	return c.Resolve(b.mode)
}

// paint fills and outlines every primitive under tag.
func (b *Base) paint(tag string, c theme.Color) {
	col := b.resolve(c)
	b.scene.SetStyle(tag, canvas.Fill(col), canvas.Outline(col))
}

// label keeps a single text item centered at (x, y) showing text, or
// removes it when text is empty. It reports whether the item was created.
func (b *Base) label(text string, x, y float64) bool {
	if text == "" {
		b.scene.Delete(labelTag)
		return false
	}
	size := math.Round(b.scaled(labelSize))
	if len(b.scene.FindByTag(labelTag)) == 0 {
		b.scene.Create(canvas.KindText, []float64{x, y}, canvas.Style{Text: text, FontSize: size}, labelTag)
		return true
	}
	b.scene.SetCoords(labelTag, x, y)
	b.scene.SetStyle(labelTag, canvas.Text(text), canvas.FontSize(size))
	return false
}

// children is the child list of a container.
type children []Widget

func (c *children) attach(w Widget) { *c = append(*c, w) }

func (c *children) detach(w Widget) {
	*c = slices.DeleteFunc(*c, func(x Widget) bool { return x == w })
}

// destroyAll destroys a snapshot of the list, last child first.
func (c *children) destroyAll() {
	snapshot := slices.Clone(*c)
	for i := len(snapshot) - 1; i >= 0; i-- {
		snapshot[i].Destroy()
	}
}
