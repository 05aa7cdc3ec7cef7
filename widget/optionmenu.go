package widget

import (
	"slices"

	"github.com/gogpu/ggtk/draw"
	"github.com/gogpu/ggtk/theme"
)

// OptionMenu shows the selected value of a list on the left and a
// dropdown arrow on a separately colored square on the right.
type OptionMenu struct {
	Base

	cornerRadius float64

	fg, button, buttonHover, textColor theme.Color

	values  []string
	value   string
	hovered bool
	command func()
}

// NewOptionMenu creates an option menu inside parent showing the first of
// its values.
func NewOptionMenu(parent Container, opts ...Option) *OptionMenu {
	o := newOptions(opts)
	st := style{t: parent.environment().Theme, category: "OptionMenu", o: &o}
	m := &OptionMenu{
		cornerRadius: st.cornerRadius(),
		fg:           st.color("fg_color"),
		button:       st.color("button_color"),
		buttonHover:  st.color("button_hover_color"),
		textColor:    st.color("text_color"),
		values:       o.values,
		command:      o.command,
	}
	if len(m.values) > 0 {
		m.value = m.values[0]
	}
	w, h := o.size(140, 28)
	m.init(parent, m, w, h, m.render)
	m.Redraw()
	return m
}

func (m *OptionMenu) render(noColorUpdates bool) {
	w, h := m.Size()
	left := w - h
	recolor := m.engine.RoundedRectSplit(w, h, m.scaled(m.cornerRadius), 0, left)
	if m.engine.DropdownArrow(w-h/2, h/2, h/3) {
		recolor = true
	}
	if m.label(m.value, left/2, h/2) {
		recolor = true
	}
	if noColorUpdates && !recolor {
		return
	}

	m.paint(draw.GroupLeft, m.fg)
	if m.hovered && !m.buttonHover.IsZero() {
		m.paint(draw.GroupRight, m.buttonHover)
	} else {
		m.paint(draw.GroupRight, m.button)
	}
	m.paint(draw.TagDropdownArrow, m.textColor)
	m.paint(labelTag, m.textColor)
}

// Values returns the choices.
func (m *OptionMenu) Values() []string { return slices.Clone(m.values) }

// SetValues replaces the choices. The selection is kept.
func (m *OptionMenu) SetValues(values ...string) {
	m.values = append([]string(nil), values...)
}

// Get returns the selected value.
func (m *OptionMenu) Get() string { return m.value }

// Set shows v without running the command. v need not be one of the
// values.
func (m *OptionMenu) Set(v string) {
	if v == m.value {
		return
	}
	m.value = v
	m.draw(true)
}

// Choose selects v as a click in the dropdown would and runs the command.
func (m *OptionMenu) Choose(v string) {
	m.Set(v)
	if m.command != nil {
		m.command()
	}
}

// SetHover highlights the arrow square.
func (m *OptionMenu) SetHover(on bool) {
	if m.hovered == on {
		return
	}
	m.hovered = on
	m.Redraw()
}
