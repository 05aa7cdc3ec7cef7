package widget

import (
	"github.com/gogpu/ggtk/draw"
	"github.com/gogpu/ggtk/theme"
)

// options collects constructor overrides. Unset values fall back to the
// theme category of the widget, then to the widget's built-in default.
type options struct {
	width, height float64
	cornerRadius  *float64
	borderWidth   *float64
	colors        map[string]theme.Color
	text          string
	orientation   *draw.Orientation
	values        []string
	from, to      float64
	hasRange      bool
	steps         int
	command       func()
}

// Option configures a widget at construction.
type Option func(*options)

func newOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithSize sets the logical size. Non-positive values keep the default.
func WithSize(w, h float64) Option {
	return func(o *options) {
		o.width, o.height = w, h
	}
}

// WithCornerRadius overrides the theme corner radius.
func WithCornerRadius(r float64) Option {
	return func(o *options) { o.cornerRadius = &r }
}

// WithBorderWidth overrides the theme border width.
func WithBorderWidth(w float64) Option {
	return func(o *options) { o.borderWidth = &w }
}

// WithColor overrides one color role of the widget, e.g. "fg_color" or
// "button_color".
func WithColor(role string, c theme.Color) Option {
	return func(o *options) {
		if o.colors == nil {
			o.colors = make(map[string]theme.Color)
		}
		o.colors[role] = c
	}
}

// WithText sets the label of a button or the title of a window.
func WithText(s string) Option {
	return func(o *options) { o.text = s }
}

// WithOrientation sets the direction of progress bars, sliders and
// scrollbars.
func WithOrientation(or draw.Orientation) Option {
	return func(o *options) { o.orientation = &or }
}

// WithValues sets the choices of an option menu.
func WithValues(values ...string) Option {
	return func(o *options) { o.values = append([]string(nil), values...) }
}

// WithRange sets the value range of a slider.
func WithRange(from, to float64) Option {
	return func(o *options) {
		o.from, o.to, o.hasRange = from, to, true
	}
}

// WithSteps makes a slider snap to n equal steps. 0 means continuous.
func WithSteps(n int) Option {
	return func(o *options) { o.steps = n }
}

// WithCommand sets the callback run when the widget is activated or its
// value changes.
func WithCommand(fn func()) Option {
	return func(o *options) { o.command = fn }
}

// size returns the configured size or the given default per dimension.
func (o *options) size(defW, defH float64) (float64, float64) {
	w, h := defW, defH
	if o.width > 0 {
		w = o.width
	}
	if o.height > 0 {
		h = o.height
	}
	return w, h
}

// orient returns the configured orientation or def.
func (o *options) orient(def draw.Orientation) draw.Orientation {
	if o.orientation != nil {
		return *o.orientation
	}
	return def
}

// style resolves numbers and colors against one theme category.
type style struct {
	t        *theme.Theme
	category string
	o        *options
}

func (s style) color(role string) theme.Color {
	if c, ok := s.o.colors[role]; ok {
		return c
	}
	return s.t.Color(s.category, role)
}

func (s style) float(role string, override *float64) float64 {
	if override != nil {
		return *override
	}
	return s.t.Float(s.category, role)
}

func (s style) cornerRadius() float64 { return s.float("corner_radius", s.o.cornerRadius) }

func (s style) borderWidth() float64 { return s.float("border_width", s.o.borderWidth) }
