// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package draw

import (
	"math"

	"github.com/gogpu/ggtk/canvas"
)

// RoundedRect draws a border ring (omitted when bw rounds to 0) and an
// inner fill. Groups: GroupBorder, GroupInner.
func (e *Engine) RoundedRect(w, h, cr, bw float64) bool {
	g := e.Normalize(w, h, cr, bw)
	var p Plan
	e.rectParts(&p, g, [4]bool{})
	return e.apply(&p, GroupBorder, GroupInner)
}

// rectParts adds the border ring and the inner fill. covered lists the
// inner corners a progress box lies on.
func (e *Engine) rectParts(p *Plan, g Geometry, covered [4]bool) {
	if g.BorderWidth > 0 {
		e.b.Box(p, Box{
			Prefix: "border",
			Groups: []string{GroupBorder},
			X1:     g.Width,
			Y1:     g.Height,
			R:      g.CornerRadius,
		})
	}
	bw := g.BorderWidth
	e.b.Box(p, Box{
		Prefix:  "inner",
		Groups:  []string{GroupInner},
		X0:      bw,
		Y0:      bw,
		X1:      g.Width - bw,
		Y1:      g.Height - bw,
		R:       g.InnerCornerRadius,
		Shift:   innerShift(g),
		Covered: covered,
	})
}

// innerShift corrects the polygon rasterizer overshoot on inner regions
// whose corners are not rounder than the border is wide.
func innerShift(g Geometry) float64 {
	if g.CornerRadius <= g.BorderWidth {
		return -1
	}
	return 0
}

// RoundedRectSplit draws a rounded rect divided at x = left into two
// halves that can be colored separately. left is clamped to
// [2cr, w−2cr]. Groups: GroupBorder, GroupInner, their _left/_right
// variants, GroupLeft and GroupRight.
func (e *Engine) RoundedRectSplit(w, h, cr, bw, left float64) bool {
	g := e.Normalize(w, h, cr, bw)
	left = math.Max(math.Min(left, g.Width-2*g.CornerRadius), 2*g.CornerRadius)

	var p Plan
	if g.BorderWidth > 0 {
		e.splitHalves(&p, "border", GroupBorder, 0, 0, g.Width, g.Height, g.CornerRadius, left, 0)
	}
	bw = g.BorderWidth
	e.splitHalves(&p, "inner", GroupInner, bw, bw, g.Width-bw, g.Height-bw, g.InnerCornerRadius, left, innerShift(g))
	return e.apply(&p, GroupBorder, GroupInner)
}

// splitHalves adds two boxes meeting at left, each with a seam rectangle
// that squares off its corners along the split.
func (e *Engine) splitHalves(p *Plan, prefix, group string, x0, y0, x1, y1, r, left, shift float64) {
	halves := [...]struct {
		side         string
		x0, x1       float64
		seam0, seam1 float64
	}{
		{"left", x0, left, left - r, left},
		{"right", left, x1, left, left + r},
	}
	for _, hv := range halves {
		groups := []string{group + "_" + hv.side, group, hv.side + "_parts"}
		e.b.Box(p, Box{
			Prefix: prefix + "_" + hv.side,
			Groups: groups,
			X0:     hv.x0,
			Y0:     y0,
			X1:     hv.x1,
			Y1:     y1,
			R:      r,
			Shift:  shift,
		})
		p.Add(Part{
			Name:   prefix + "_rect_" + hv.side + "_1",
			Groups: groups,
			Kind:   canvas.KindRect,
			Coords: []float64{hv.seam0, y0, hv.seam1, y1},
		})
	}
}

// ProgressBar draws a rounded rect and a progress region covering the
// fraction [v1, v2] of the inner track. Horizontal fills from the left,
// Vertical from the bottom. Groups: GroupBorder, GroupInner,
// GroupProgress.
func (e *Engine) ProgressBar(w, h, cr, bw, v1, v2 float64, o Orientation) bool {
	g := e.Normalize(w, h, cr, bw)
	v1, v2 = clamp01(v1), clamp01(v2)
	if v2 < v1 {
		v1, v2 = v2, v1
	}
	var p Plan
	e.rectParts(&p, g, progressCovered(v1, v2, o))
	e.progressParts(&p, g, v1, v2, o)
	return e.apply(&p, GroupBorder, GroupInner, GroupProgress)
}

// progressCovered returns the inner corners a progress box spanning
// [v1, v2] lies on: the start corners when v1 is 0, the end corners when
// v2 is 1.
func progressCovered(v1, v2 float64, o Orientation) [4]bool {
	var c [4]bool
	if o == Vertical {
		c[2], c[3] = v1 == 0, v1 == 0
		c[0], c[1] = v2 == 1, v2 == 1
	} else {
		c[0], c[3] = v1 == 0, v1 == 0
		c[1], c[2] = v2 == 1, v2 == 1
	}
	return c
}

// progressParts adds the progress box. v1 <= v2, both in [0, 1].
func (e *Engine) progressParts(p *Plan, g Geometry, v1, v2 float64, o Orientation) {
	bw, icr := g.BorderWidth, g.InnerCornerRadius
	bx := Box{Prefix: "progress", Groups: []string{GroupProgress}, R: icr}
	if o == Vertical {
		track := g.Height - 2*bw - 2*icr
		bx.X0, bx.X1 = bw, g.Width-bw
		bx.Y0 = bw + track*(1-v2)
		bx.Y1 = bw + 2*icr + track*(1-v1)
	} else {
		track := g.Width - 2*bw - 2*icr
		bx.X0 = bw + track*v1
		bx.X1 = bw + 2*icr + track*v2
		bx.Y0, bx.Y1 = bw, g.Height-bw
	}
	e.b.Box(p, bx)
}

// Slider draws a progress bar filled to value and a button of length
// buttonLength and corner radius buttonCR centered on the value.
// Groups: GroupBorder, GroupInner, GroupProgress, GroupSlider.
func (e *Engine) Slider(w, h, cr, bw, buttonLength, buttonCR, value float64, o Orientation) bool {
	g := e.Normalize(w, h, cr, bw)
	value = clamp01(value)
	bl := math.Max(math.Round(buttonLength), 0)
	bcr := math.Round(clampRadius(buttonCR, g.Width, g.Height))

	var p Plan
	e.rectParts(&p, g, progressCovered(0, value, o))
	e.progressParts(&p, g, 0, value, o)

	bx := Box{Prefix: "slider", Groups: []string{GroupSlider}, R: bcr}
	if o == Vertical {
		c := SliderCenter(g.Height, g.CornerRadius, bl, 1-value)
		bx.X0, bx.X1 = 0, g.Width
		bx.Y0, bx.Y1 = c-bl/2-bcr, c+bl/2+bcr
	} else {
		c := SliderCenter(g.Width, g.CornerRadius, bl, value)
		bx.X0, bx.X1 = c-bl/2-bcr, c+bl/2+bcr
		bx.Y0, bx.Y1 = 0, g.Height
	}
	e.b.Box(&p, bx)
	return e.apply(&p, GroupBorder, GroupInner, GroupProgress, GroupSlider)
}

// SliderCenter returns the button center along a track of the given
// length for a value in [0, 1]. The button never leaves the straight part
// of the track: the center ranges over [cr + bl/2, length − cr − bl/2].
func SliderCenter(length, cr, buttonLength, value float64) float64 {
	return cr + buttonLength/2 + (length-2*cr-buttonLength)*clamp01(value)
}

// Scrollbar draws a background rectangle and a thumb covering [start, end]
// of the track, inset by borderSpacing. Groups: GroupBorder,
// GroupScrollbar.
func (e *Engine) Scrollbar(w, h, cr, borderSpacing, start, end float64, o Orientation) bool {
	g := e.Normalize(w, h, cr, borderSpacing)
	start, end = clamp01(start), clamp01(end)
	if end < start {
		end = start
	}
	cr, icr := g.CornerRadius, g.InnerCornerRadius

	var p Plan
	p.Add(Part{
		Name:   "border_rectangle_1",
		Groups: []string{GroupBorder},
		Kind:   canvas.KindRect,
		Coords: []float64{0, 0, g.Width, g.Height},
	})
	bx := Box{Prefix: "scrollbar", Groups: []string{GroupScrollbar}, R: icr}
	if o == Horizontal {
		track := g.Width - 2*cr
		bx.X0, bx.X1 = cr-icr+track*start, cr+icr+track*end
		bx.Y0, bx.Y1 = cr-icr, g.Height-cr+icr
	} else {
		track := g.Height - 2*cr
		bx.X0, bx.X1 = cr-icr, g.Width-cr+icr
		bx.Y0, bx.Y1 = cr-icr+track*start, cr+icr+track*end
	}
	e.b.Box(&p, bx)
	return e.apply(&p, GroupBorder, GroupScrollbar)
}

// Checkmark draws a checkmark of the given size centered in a w×h area.
// The polyline is as thick as an eighth of h.
func (e *Engine) Checkmark(w, h, size float64) bool {
	size = math.Round(size)
	x, y, r := w/2, h/2, size/2.8
	var p Plan
	e.b.Mark(&p, Mark{
		Name:  TagCheckmark,
		Shape: MarkCheck,
		X:     x,
		Y:     y,
		Size:  size,
		Points: []float64{
			x + r, y - r,
			x - r/4, y + r*0.8,
			x - r, y + r/6,
		},
		Width: math.Round(h / 8),
		Join:  canvas.JoinMiter,
	})
	return e.apply(&p, TagCheckmark)
}

// DropdownArrow draws a downward chevron of the given size centered at
// (x, y).
func (e *Engine) DropdownArrow(x, y, size float64) bool {
	x, y, size = math.Round(x), math.Round(y), math.Round(size)
	var p Plan
	e.b.Mark(&p, Mark{
		Name:  TagDropdownArrow,
		Shape: MarkArrow,
		X:     x,
		Y:     y,
		Size:  size,
		Points: []float64{
			x - size/2, y - size/5,
			x, y + size/5,
			x + size/2, y - size/5,
		},
		Width: math.Round(size / 3),
		Join:  canvas.JoinRound,
	})
	return e.apply(&p, TagDropdownArrow)
}

// BackgroundCornerTags name the four quarter rectangles drawn by
// BackgroundCorners, clockwise from the top left.
var BackgroundCornerTags = [4]string{
	"background_corner_top_left",
	"background_corner_top_right",
	"background_corner_bottom_right",
	"background_corner_bottom_left",
}

// BackgroundCorners draws four quarter rectangles below everything else,
// to be painted in the parent's color behind the rounded corners.
// Group: GroupBackground.
func (e *Engine) BackgroundCorners(w, h float64) bool {
	w, h = math.Max(w, 0), math.Max(h, 0)
	mx, my := w/2, h/2
	quarters := [4][4]float64{
		{0, 0, mx, my},
		{mx, 0, w, my},
		{mx, my, w, h},
		{0, my, mx, h},
	}
	var p Plan
	for i, q := range quarters {
		p.Add(Part{
			Name:   BackgroundCornerTags[i],
			Groups: []string{GroupBackground},
			Kind:   canvas.KindRect,
			Coords: q[:],
		})
	}
	return e.apply(&p, GroupBackground)
}
