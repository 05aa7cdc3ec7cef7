package widget

import (
	"github.com/gogpu/ggtk/draw"
	"github.com/gogpu/ggtk/theme"
)

// CheckBox is a rounded box that shows a checkmark when checked.
type CheckBox struct {
	Base

	cornerRadius float64
	borderWidth  float64

	fg, hover, border, checkColor theme.Color

	checked bool
	hovered bool
	command func()
}

// NewCheckBox creates an unchecked check box inside parent.
func NewCheckBox(parent Container, opts ...Option) *CheckBox {
	o := newOptions(opts)
	st := style{t: parent.environment().Theme, category: "CheckBox", o: &o}
	c := &CheckBox{
		cornerRadius: st.cornerRadius(),
		borderWidth:  st.borderWidth(),
		fg:           st.color("fg_color"),
		hover:        st.color("hover_color"),
		border:       st.color("border_color"),
		checkColor:   st.color("checkmark_color"),
		command:      o.command,
	}
	w, h := o.size(24, 24)
	c.init(parent, c, w, h, c.render)
	c.Redraw()
	return c
}

func (c *CheckBox) render(noColorUpdates bool) {
	w, h := c.Size()
	recolor := c.engine.RoundedRect(w, h, c.scaled(c.cornerRadius), c.scaled(c.borderWidth))
	if c.checked {
		if c.engine.Checkmark(w, h, c.scaled(c.currentH*0.58)) {
			recolor = true
		}
	} else {
		c.scene.Delete(draw.TagCheckmark)
	}
	if noColorUpdates && !recolor {
		return
	}

	fill := c.fg
	if c.hovered && !c.hover.IsZero() {
		fill = c.hover
	}
	if c.checked {
		c.paint(draw.GroupInner, fill)
		c.paint(draw.GroupBorder, fill)
		c.paint(draw.TagCheckmark, c.checkColor)
		return
	}
	if c.hovered {
		c.paint(draw.GroupInner, fill)
	} else {
		c.paint(draw.GroupInner, c.parent.FgColor())
	}
	c.paint(draw.GroupBorder, c.border)
}

// Checked reports whether the box is checked.
func (c *CheckBox) Checked() bool { return c.checked }

// Select checks the box without running the command.
func (c *CheckBox) Select() { c.set(false, true) }

// Deselect unchecks the box without running the command.
func (c *CheckBox) Deselect() { c.set(false, false) }

// Toggle flips the box and runs the command.
func (c *CheckBox) Toggle() { c.set(true, !c.checked) }

func (c *CheckBox) set(notify, checked bool) {
	if c.checked == checked {
		return
	}
	c.checked = checked
	c.Redraw()
	if notify && c.command != nil {
		c.command()
	}
}

// SetHover highlights the box.
func (c *CheckBox) SetHover(on bool) {
	if c.hovered == on {
		return
	}
	c.hovered = on
	c.Redraw()
}
