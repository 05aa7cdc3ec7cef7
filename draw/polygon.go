// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package draw

import (
	"math"

	"github.com/gogpu/ggtk/canvas"
)

// Polygon draws every box as one closed polygon inset by the corner
// radius and stroked with width 2r and round joins, so the stroke's round
// joins form the corners.
type Polygon struct {
	// NativeAntialiasing keeps fractional radii, for canvases that
	// antialias polygon outlines.
	NativeAntialiasing bool
}

// Method implements Backend.
func (Polygon) Method() Method { return MethodPolygon }

// RoundRadius implements Backend.
func (b Polygon) RoundRadius(r float64) float64 {
	if b.NativeAntialiasing {
		return r
	}
	return math.Round(r)
}

// Box implements Backend.
func (Polygon) Box(p *Plan, bx Box) {
	r := bx.R
	x0, y0 := bx.X0+r, bx.Y0+r
	x1, y1 := bx.X1-r+bx.Shift, bx.Y1-r+bx.Shift
	p.Add(Part{
		Name:   bx.Prefix + "_line_1",
		Groups: bx.Groups,
		Kind:   canvas.KindPolygon,
		Coords: []float64{x0, y0, x1, y0, x1, y1, x0, y1},
		Style:  canvas.Style{Width: 2 * r, Join: canvas.JoinRound},
	})
}

// Mark implements Backend.
func (Polygon) Mark(p *Plan, m Mark) { polylineMark(p, m) }

func polylineMark(p *Plan, m Mark) {
	p.Add(Part{
		Name:   m.Name,
		Groups: m.Groups,
		Kind:   canvas.KindLine,
		Coords: m.Points,
		Style:  canvas.Style{Width: m.Width, Join: m.Join, Cap: canvas.CapRound},
	})
}
