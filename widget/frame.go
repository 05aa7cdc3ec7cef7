package widget

import (
	"slices"

	"github.com/gogpu/ggtk/draw"
	"github.com/gogpu/ggtk/theme"
)

// Frame is a rounded, optionally bordered container.
type Frame struct {
	Base
	children

	cornerRadius float64
	borderWidth  float64
	fg, border   theme.Color
}

var _ Container = (*Frame)(nil)

// NewFrame creates a frame inside parent. A frame inside another frame
// defaults to the theme's top_fg_color so nesting stays visible.
func NewFrame(parent Container, opts ...Option) *Frame {
	env := parent.environment()
	o := newOptions(opts)
	st := style{t: env.Theme, category: "Frame", o: &o}
	f := &Frame{
		cornerRadius: st.cornerRadius(),
		borderWidth:  st.borderWidth(),
		fg:           st.color("fg_color"),
		border:       st.color("border_color"),
	}
	if _, nested := parent.(*Frame); nested {
		if _, set := o.colors["fg_color"]; !set {
			f.fg = st.color("top_fg_color")
		}
	}
	w, h := o.size(200, 200)
	f.init(parent, f, w, h, f.render)
	f.Redraw()
	return f
}

func (f *Frame) render(noColorUpdates bool) {
	w, h := f.Size()
	recolor := f.engine.RoundedRect(w, h, f.scaled(f.cornerRadius), f.scaled(f.borderWidth))
	if noColorUpdates && !recolor {
		return
	}
	f.paint(draw.GroupInner, f.fg)
	f.paint(draw.GroupBorder, f.border)
}

// FgColor implements Container. A transparent frame reports its parent's
// color.
func (f *Frame) FgColor() theme.Color {
	if f.fg.IsTransparent() || f.fg.IsZero() {
		return f.parent.FgColor()
	}
	return f.fg
}

// SetFgColor changes the surface color and redraws.
func (f *Frame) SetFgColor(c theme.Color) {
	f.fg = c
	f.Redraw()
}

// SetCornerRadius changes the corner radius and redraws.
func (f *Frame) SetCornerRadius(r float64) {
	f.cornerRadius = r
	f.Redraw()
}

// Children implements Container.
func (f *Frame) Children() []Widget { return slices.Clone(f.children) }

// Destroy destroys the frame's children, then the frame.
func (f *Frame) Destroy() {
	if f.destroyed {
		return
	}
	f.children.destroyAll()
	f.Base.Destroy()
}
