package widget

import (
	"math"

	"github.com/gogpu/ggtk/draw"
	"github.com/gogpu/ggtk/theme"
)

// Scrollbar shows the visible part [start, end] of a scrollable view.
type Scrollbar struct {
	Base

	cornerRadius  float64
	borderSpacing float64
	orientation   draw.Orientation

	fg, button, buttonHover theme.Color

	start, end float64
	hovered    bool
}

// NewScrollbar creates a vertical scrollbar covering the whole view
// inside parent.
func NewScrollbar(parent Container, opts ...Option) *Scrollbar {
	o := newOptions(opts)
	st := style{t: parent.environment().Theme, category: "Scrollbar", o: &o}
	s := &Scrollbar{
		cornerRadius:  st.cornerRadius(),
		borderSpacing: st.float("border_spacing", o.borderWidth),
		orientation:   o.orient(draw.Vertical),
		fg:            st.color("fg_color"),
		button:        st.color("button_color"),
		buttonHover:   st.color("button_hover_color"),
		end:           1,
	}
	w, h := o.size(16, 200)
	if s.orientation == draw.Horizontal && o.width <= 0 && o.height <= 0 {
		w, h = h, w
	}
	s.init(parent, s, w, h, s.render)
	s.Redraw()
	return s
}

func (s *Scrollbar) render(noColorUpdates bool) {
	w, h := s.Size()
	recolor := s.engine.Scrollbar(w, h, s.scaled(s.cornerRadius), s.scaled(s.borderSpacing), s.start, s.end, s.orientation)
	if noColorUpdates && !recolor {
		return
	}
	s.paint(draw.GroupBorder, s.fg)
	if s.hovered && !s.buttonHover.IsZero() {
		s.paint(draw.GroupScrollbar, s.buttonHover)
	} else {
		s.paint(draw.GroupScrollbar, s.button)
	}
}

// Get returns the visible span.
func (s *Scrollbar) Get() (start, end float64) { return s.start, s.end }

// Set sets the visible span, clamped to [0, 1].
func (s *Scrollbar) Set(start, end float64) {
	start = math.Max(0, math.Min(1, start))
	end = math.Max(start, math.Min(1, end))
	if start == s.start && end == s.end {
		return
	}
	s.start, s.end = start, end
	s.draw(true)
}

// SetHover highlights the thumb.
func (s *Scrollbar) SetHover(on bool) {
	if s.hovered == on {
		return
	}
	s.hovered = on
	s.Redraw()
}
