package widget

import (
	"math"

	"github.com/gogpu/ggtk/draw"
	"github.com/gogpu/ggtk/theme"
)

// Slider selects a value in a range by dragging a button along a track.
type Slider struct {
	Base

	cornerRadius       float64
	buttonCornerRadius float64
	borderWidth        float64
	buttonLength       float64
	orientation        draw.Orientation

	fg, progress, button, buttonHover theme.Color

	from, to float64
	steps    int
	value    float64
	hovered  bool
	command  func()
}

// NewSlider creates a slider inside parent. The default range is [0, 1]
// and the initial value its middle.
func NewSlider(parent Container, opts ...Option) *Slider {
	o := newOptions(opts)
	st := style{t: parent.environment().Theme, category: "Slider", o: &o}
	s := &Slider{
		cornerRadius:       st.cornerRadius(),
		buttonCornerRadius: st.float("button_corner_radius", nil),
		borderWidth:        st.borderWidth(),
		buttonLength:       st.float("button_length", nil),
		orientation:        o.orient(draw.Horizontal),
		fg:                 st.color("fg_color"),
		progress:           st.color("progress_color"),
		button:             st.color("button_color"),
		buttonHover:        st.color("button_hover_color"),
		from:               0,
		to:                 1,
		steps:              max(o.steps, 0),
		command:            o.command,
	}
	if o.hasRange && o.from != o.to {
		s.from, s.to = o.from, o.to
	}
	s.value = s.snap((s.from + s.to) / 2)

	w, h := o.size(200, 16)
	if s.orientation == draw.Vertical && o.width <= 0 && o.height <= 0 {
		w, h = h, w
	}
	s.init(parent, s, w, h, s.render)
	s.Redraw()
	return s
}

func (s *Slider) render(noColorUpdates bool) {
	w, h := s.Size()
	recolor := s.engine.Slider(w, h,
		s.scaled(s.cornerRadius), s.scaled(s.borderWidth),
		s.scaled(s.buttonLength), s.scaled(s.buttonCornerRadius),
		s.fraction(), s.orientation)
	if noColorUpdates && !recolor {
		return
	}
	s.paint(draw.GroupBorder, s.parent.FgColor())
	s.paint(draw.GroupInner, s.fg)
	s.paint(draw.GroupProgress, s.progress)
	if s.hovered && !s.buttonHover.IsZero() {
		s.paint(draw.GroupSlider, s.buttonHover)
	} else {
		s.paint(draw.GroupSlider, s.button)
	}
}

// fraction maps the value to [0, 1] along the track.
func (s *Slider) fraction() float64 {
	return (s.value - s.from) / (s.to - s.from)
}

// snap clamps v to the range and rounds it to the nearest step.
func (s *Slider) snap(v float64) float64 {
	lo, hi := min(s.from, s.to), max(s.from, s.to)
	v = math.Max(lo, math.Min(hi, v))
	if s.steps > 0 {
		step := (s.to - s.from) / float64(s.steps)
		v = s.from + math.Round((v-s.from)/step)*step
	}
	return v
}

// Value returns the current value.
func (s *Slider) Value() float64 { return s.value }

// Set moves the slider to v without running the command.
func (s *Slider) Set(v float64) {
	v = s.snap(v)
	if v == s.value {
		return
	}
	s.value = v
	s.draw(true)
}

// Drag moves the slider to the device position (x, y) inside the widget,
// as a pointer drag would, and runs the command when the value changed.
func (s *Slider) Drag(x, y float64) {
	w, h := s.Size()
	var frac float64
	if s.orientation == draw.Vertical {
		if h > 0 {
			frac = 1 - y/h
		}
	} else if w > 0 {
		frac = x / w
	}
	old := s.value
	s.Set(s.from + frac*(s.to-s.from))
	if s.value != old && s.command != nil {
		s.command()
	}
}

// SetHover highlights the button.
func (s *Slider) SetHover(on bool) {
	if s.hovered == on {
		return
	}
	s.hovered = on
	s.Redraw()
}
