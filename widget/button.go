package widget

import (
	"github.com/gogpu/ggtk/draw"
	"github.com/gogpu/ggtk/theme"
)

// Button is a rounded push button with an optional label.
type Button struct {
	Base

	cornerRadius float64
	borderWidth  float64

	fg, hover, border, textColor theme.Color
	cornerColors                 *[4]theme.Color

	text    string
	hovered bool
	command func()
}

// NewButton creates a button inside parent.
func NewButton(parent Container, opts ...Option) *Button {
	o := newOptions(opts)
	st := style{t: parent.environment().Theme, category: "Button", o: &o}
	b := &Button{
		cornerRadius: st.cornerRadius(),
		borderWidth:  st.borderWidth(),
		fg:           st.color("fg_color"),
		hover:        st.color("hover_color"),
		border:       st.color("border_color"),
		textColor:    st.color("text_color"),
		text:         o.text,
		command:      o.command,
	}
	w, h := o.size(140, 28)
	b.init(parent, b, w, h, b.render)
	b.Redraw()
	return b
}

func (b *Button) render(noColorUpdates bool) {
	w, h := b.Size()
	recolor := b.engine.RoundedRect(w, h, b.scaled(b.cornerRadius), b.scaled(b.borderWidth))
	if b.cornerColors != nil {
		if b.engine.BackgroundCorners(w, h) {
			recolor = true
		}
	} else {
		b.scene.Delete(draw.GroupBackground)
	}
	if b.label(b.text, w/2, h/2) {
		recolor = true
	}
	if noColorUpdates && !recolor {
		return
	}

	inner := b.fg
	if b.hovered && !b.hover.IsZero() {
		inner = b.hover
	}
	b.paint(draw.GroupInner, inner)
	b.paint(draw.GroupBorder, b.border)
	b.paint(labelTag, b.textColor)
	if b.cornerColors != nil {
		for i, tag := range draw.BackgroundCornerTags {
			b.paint(tag, b.cornerColors[i])
		}
	}
}

// Text returns the label.
func (b *Button) Text() string { return b.text }

// SetText changes the label.
func (b *Button) SetText(s string) {
	b.text = s
	b.Redraw()
}

// SetFgColor changes the fill color.
func (b *Button) SetFgColor(c theme.Color) {
	b.fg = c
	b.Redraw()
}

// SetHover switches between the fill and the hover color.
func (b *Button) SetHover(on bool) {
	if b.hovered == on {
		return
	}
	b.hovered = on
	b.Redraw()
}

// SetBackgroundCornerColors paints the four areas behind the rounded
// corners, clockwise from the top left. This is used when a button sits on
// a boundary between differently colored surfaces. nil removes them.
func (b *Button) SetBackgroundCornerColors(c *[4]theme.Color) {
	b.cornerColors = c
	b.Redraw()
}

// Invoke runs the button's command.
func (b *Button) Invoke() {
	if b.command != nil && !b.destroyed {
		b.command()
	}
}
