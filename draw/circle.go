// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package draw

import (
	"math"
	"strconv"

	"github.com/gogpu/ggtk/canvas"
)

// Circle draws box corners with ovals and fills the rest with two
// rectangles. Oval bounding boxes end one pixel early on the right and
// bottom because canvases paint ovals inclusive of their far edge.
type Circle struct{}

// Method implements Backend.
func (Circle) Method() Method { return MethodCircle }

// RoundRadius rounds to the nearest half pixel and then moves whole radii
// to the next .5, which renders smoother ovals. Zero stays zero.
func (Circle) RoundRadius(r float64) float64 {
	r = math.Round(r/0.5) * 0.5
	if r == 0 {
		return 0
	}
	if math.Mod(r, 1) == 0 {
		return r + 0.5
	}
	return r
}

// Box implements Backend.
func (Circle) Box(p *Plan, bx Box) {
	r := bx.R
	if r > 0 {
		cornerGroups := withGroups(bx.Groups, bx.Prefix+"_corner_part")
		for i, c := range boxCorners(bx) {
			if !c.ok {
				continue
			}
			p.Add(Part{
				Name:   bx.Prefix + "_oval_" + strconv.Itoa(i+1),
				Groups: cornerGroups,
				Kind:   canvas.KindOval,
				Coords: []float64{c.x - r, c.y - r, c.x + r - 1, c.y + r - 1},
			})
		}
	}
	boxRectangles(p, bx)
}

// Mark implements Backend.
func (Circle) Mark(p *Plan, m Mark) { polylineMark(p, m) }
