// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package draw

import (
	"math"

	"github.com/gogpu/ggtk/canvas"
)

// Group tags managed by the engine.
const (
	GroupBackground = "background_parts"
	GroupBorder     = "border_parts"
	GroupInner      = "inner_parts"
	GroupProgress   = "progress_parts"
	GroupSlider     = "slider_parts"
	GroupScrollbar  = "scrollbar_parts"

	GroupBorderLeft  = "border_parts_left"
	GroupBorderRight = "border_parts_right"
	GroupInnerLeft   = "inner_parts_left"
	GroupInnerRight  = "inner_parts_right"
	GroupLeft        = "left_parts"
	GroupRight       = "right_parts"

	TagCheckmark     = "checkmark"
	TagDropdownArrow = "dropdown_arrow"
)

// stacking lists the groups from bottom to top. After any creation the
// engine restores this order.
var stacking = []string{
	GroupBackground,
	GroupBorder,
	GroupInner,
	GroupProgress,
	GroupScrollbar,
	GroupSlider,
	TagCheckmark,
	TagDropdownArrow,
}

// Engine draws shapes on one canvas with one backend.
// An Engine is not safe for concurrent use.
type Engine struct {
	c canvas.Canvas
	b Backend
}

// NewEngine binds a backend to a canvas.
func NewEngine(c canvas.Canvas, b Backend) *Engine {
	return &Engine{c: c, b: b}
}

// New binds the backend registered under m to a canvas.
func New(c canvas.Canvas, m Method) (*Engine, error) {
	b, err := NewBackend(m)
	if err != nil {
		return nil, err
	}
	return NewEngine(c, b), nil
}

// Canvas returns the canvas the engine draws on.
func (e *Engine) Canvas() canvas.Canvas { return e.c }

// Backend returns the engine's backend.
func (e *Engine) Backend() Backend { return e.b }

// Geometry is a normalized shape size.
type Geometry struct {
	Width, Height     float64
	CornerRadius      float64
	BorderWidth       float64
	InnerCornerRadius float64
}

// Normalize floors width and height to even values, clamps the corner
// radius to half the smaller side, rounds the border width, applies the
// backend's radius rounding and derives the inner radius. Negative inputs
// clamp to zero.
func (e *Engine) Normalize(w, h, cr, bw float64) Geometry {
	g := Geometry{
		Width:  evenFloor(w),
		Height: evenFloor(h),
	}
	g.CornerRadius = e.b.RoundRadius(clampRadius(cr, g.Width, g.Height))
	g.BorderWidth = math.Max(math.Round(bw), 0)
	g.InnerCornerRadius = math.Max(g.CornerRadius-g.BorderWidth, 0)
	return g
}

func evenFloor(v float64) float64 {
	if v <= 0 || math.IsNaN(v) {
		return 0
	}
	return math.Floor(v/2) * 2
}

func clampRadius(r, w, h float64) float64 {
	if r < 0 || math.IsNaN(r) {
		return 0
	}
	return math.Min(r, math.Min(w, h)/2)
}

func clamp01(v float64) float64 {
	switch {
	case v < 0 || math.IsNaN(v):
		return 0
	case v > 1:
		return 1
	}
	return v
}

// apply brings the canvas in line with p. Parts under any of the managed
// groups that p does not name are deleted. It reports whether any part
// was created.
func (e *Engine) apply(p *Plan, managed ...string) bool {
	want := make(map[string]struct{}, len(p.parts))
	for _, part := range p.parts {
		want[part.Name] = struct{}{}
	}
	for _, group := range managed {
		for _, id := range e.c.FindByTag(group) {
			tags := e.c.Tags(id)
			if len(tags) == 0 {
				continue
			}
			if _, ok := want[tags[0]]; !ok {
				e.c.Delete(canvas.IDTag(id))
			}
		}
	}

	created := false
	for _, part := range p.parts {
		if e.update(part) {
			continue
		}
		e.create(part)
		created = true
	}
	if created {
		e.restack()
	}
	return created
}

// update moves an existing part. It reports false when the part has to be
// created, deleting a stale primitive of another kind first.
func (e *Engine) update(part Part) bool {
	ids := e.c.FindByTag(part.Name)
	if len(ids) == 0 {
		return false
	}
	if it, ok := e.c.Item(ids[0]); !ok || it.Kind != part.Kind {
		e.c.Delete(part.Name)
		return false
	}

	e.c.SetCoords(part.Name, part.Coords...)
	switch part.Kind {
	case canvas.KindGlyphCircle:
	case canvas.KindText:
		e.c.SetStyle(part.Name, canvas.Text(part.Style.Text), canvas.FontSize(part.Style.FontSize))
	default:
		e.c.SetStyle(part.Name,
			canvas.Width(part.Style.Width),
			canvas.Join(part.Style.Join),
			canvas.Cap(part.Style.Cap))
	}
	return true
}

func (e *Engine) create(part Part) {
	if part.Kind == canvas.KindGlyphCircle {
		e.c.CreateGlyphCircle(part.Coords[0], part.Coords[1], part.Coords[2], part.Style.Angle, part.Tags()...)
		return
	}
	e.c.Create(part.Kind, part.Coords, part.Style, part.Tags()...)
}

func (e *Engine) restack() {
	for i := len(stacking) - 1; i >= 0; i-- {
		e.c.Lower(stacking[i])
	}
}
