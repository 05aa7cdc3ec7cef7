package widget

import (
	"github.com/gogpu/ggtk/draw"
	"github.com/gogpu/ggtk/theme"
)

// Switch is an on/off toggle drawn as a two-position slider.
type Switch struct {
	Base

	cornerRadius float64
	borderWidth  float64
	buttonLength float64

	fg, border, progress, button, buttonHover theme.Color

	on      bool
	hovered bool
	command func()
}

// NewSwitch creates a switch in the off position inside parent.
func NewSwitch(parent Container, opts ...Option) *Switch {
	o := newOptions(opts)
	st := style{t: parent.environment().Theme, category: "Switch", o: &o}
	s := &Switch{
		cornerRadius: st.cornerRadius(),
		borderWidth:  st.borderWidth(),
		buttonLength: st.float("button_length", nil),
		fg:           st.color("fg_color"),
		border:       st.color("border_color"),
		progress:     st.color("progress_color"),
		button:       st.color("button_color"),
		buttonHover:  st.color("button_hover_color"),
		command:      o.command,
	}
	w, h := o.size(36, 18)
	s.init(parent, s, w, h, s.render)
	s.Redraw()
	return s
}

func (s *Switch) render(noColorUpdates bool) {
	w, h := s.Size()
	value := 0.0
	if s.on {
		value = 1
	}
	cr := s.scaled(s.cornerRadius)
	recolor := s.engine.Slider(w, h, cr, s.scaled(s.borderWidth), s.scaled(s.buttonLength), cr, value, draw.Horizontal)
	if noColorUpdates && !recolor {
		return
	}

	s.paint(draw.GroupBorder, s.border)
	s.paint(draw.GroupInner, s.fg)
	if s.on {
		s.paint(draw.GroupProgress, s.progress)
	} else {
		s.paint(draw.GroupProgress, s.fg)
	}
	if s.hovered && !s.buttonHover.IsZero() {
		s.paint(draw.GroupSlider, s.buttonHover)
	} else {
		s.paint(draw.GroupSlider, s.button)
	}
}

// On reports whether the switch is on.
func (s *Switch) On() bool { return s.on }

// Toggle flips the switch and runs the command.
func (s *Switch) Toggle() {
	s.on = !s.on
	s.Redraw()
	if s.command != nil {
		s.command()
	}
}

// SetOn moves the switch without running the command.
func (s *Switch) SetOn(on bool) {
	if s.on == on {
		return
	}
	s.on = on
	s.Redraw()
}

// SetHover highlights the button.
func (s *Switch) SetHover(on bool) {
	if s.hovered == on {
		return
	}
	s.hovered = on
	s.Redraw()
}
