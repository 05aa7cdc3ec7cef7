package widget

import (
	"math"
	"time"

	"github.com/gogpu/ggtk/draw"
	"github.com/gogpu/ggtk/host"
	"github.com/gogpu/ggtk/theme"
)

const (
	// progressInterval is the time between two animation steps.
	progressInterval = 20 * time.Millisecond

	// indeterminateWidth is the fraction of the track covered by the
	// moving segment in indeterminate mode.
	indeterminateWidth = 0.4
)

// ProgressBar shows a fraction of a task, or an oscillating segment when
// the amount of work is unknown.
type ProgressBar struct {
	Base

	cornerRadius float64
	borderWidth  float64
	orientation  draw.Orientation

	fg, border, progress theme.Color

	value         float64
	indeterminate bool
	phase         float64
	speed         float64
	timer         host.Timer
}

// NewProgressBar creates a determinate progress bar at 0.5 inside parent.
func NewProgressBar(parent Container, opts ...Option) *ProgressBar {
	o := newOptions(opts)
	st := style{t: parent.environment().Theme, category: "ProgressBar", o: &o}
	p := &ProgressBar{
		cornerRadius: st.cornerRadius(),
		borderWidth:  st.borderWidth(),
		orientation:  o.orient(draw.Horizontal),
		fg:           st.color("fg_color"),
		border:       st.color("border_color"),
		progress:     st.color("progress_color"),
		value:        0.5,
		speed:        1,
	}
	w, h := o.size(200, 8)
	if p.orientation == draw.Vertical && o.width <= 0 && o.height <= 0 {
		w, h = h, w
	}
	p.init(parent, p, w, h, p.render)
	p.Redraw()
	return p
}

// span returns the covered fraction of the track.
func (p *ProgressBar) span() (float64, float64) {
	if !p.indeterminate {
		return 0, p.value
	}
	center := (math.Sin(p.phase*math.Pi/40) + 1) / 2
	return math.Max(0, center-indeterminateWidth/2), math.Min(1, center+indeterminateWidth/2)
}

func (p *ProgressBar) render(noColorUpdates bool) {
	w, h := p.Size()
	v1, v2 := p.span()
	recolor := p.engine.ProgressBar(w, h, p.scaled(p.cornerRadius), p.scaled(p.borderWidth), v1, v2, p.orientation)
	if noColorUpdates && !recolor {
		return
	}
	p.paint(draw.GroupBorder, p.border)
	p.paint(draw.GroupInner, p.fg)
	p.paint(draw.GroupProgress, p.progress)
}

// Value returns the determinate value.
func (p *ProgressBar) Value() float64 { return p.value }

// Set sets the determinate value, clamped to [0, 1].
func (p *ProgressBar) Set(v float64) {
	p.value = math.Max(0, math.Min(1, v))
	p.draw(true)
}

// SetIndeterminate switches between a fill level and an oscillating
// segment.
func (p *ProgressBar) SetIndeterminate(on bool) {
	p.indeterminate = on
	p.draw(true)
}

// Step advances the bar once: by a fiftieth in determinate mode, wrapping
// past 1, or one animation phase in indeterminate mode.
func (p *ProgressBar) Step() {
	if p.indeterminate {
		p.phase += p.speed
	} else {
		p.value += p.speed / 50
		if p.value > 1 {
			p.value--
		}
	}
	p.draw(true)
}

// Start steps the bar every 20 ms on the host loop until Stop.
func (p *ProgressBar) Start() {
	if p.timer != nil || p.destroyed {
		return
	}
	p.schedule()
}

func (p *ProgressBar) schedule() {
	p.timer = p.env.Scheduler.AfterFunc(progressInterval, func() {
		if p.timer == nil || p.destroyed {
			return
		}
		p.Step()
		p.schedule()
	})
}

// Stop ends the animation started by Start.
func (p *ProgressBar) Stop() {
	if p.timer != nil {
		p.timer.Stop()
		p.timer = nil
	}
}

// Running reports whether the animation is active.
func (p *ProgressBar) Running() bool { return p.timer != nil }

// Destroy stops the animation and destroys the bar.
func (p *ProgressBar) Destroy() {
	p.Stop()
	p.Base.Destroy()
}
