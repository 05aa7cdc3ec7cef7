// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package draw

import (
	"math"
	"strconv"

	"github.com/gogpu/ggtk/canvas"
)

// Font draws box corners with shapes-font glyph circles and fills the
// rest with two overlapping rectangles.
//
// Each corner is a pair of glyphs, one upright and one rotated by 180°,
// so the antialiased edge is symmetric. Corners that would overlap a
// neighbor are skipped: the second when the box is not wider than 2r, the
// fourth when it is not taller, the third unless both hold.
type Font struct{}

// Method implements Backend.
func (Font) Method() Method { return MethodFont }

// RoundRadius implements Backend.
func (Font) RoundRadius(r float64) float64 { return math.Round(r) }

// Box implements Backend.
func (Font) Box(p *Plan, bx Box) {
	r := bx.R
	if r > 0 {
		corners := boxCorners(bx)
		cornerGroups := withGroups(bx.Groups, bx.Prefix+"_corner_part")
		for i, c := range corners {
			if !c.ok || bx.Covered[i] {
				continue
			}
			name := bx.Prefix + "_oval_" + strconv.Itoa(i+1)
			for _, half := range [...]struct {
				suffix string
				angle  float64
			}{{"_a", 0}, {"_b", 180}} {
				p.Add(Part{
					Name:   name + half.suffix,
					Groups: cornerGroups,
					Kind:   canvas.KindGlyphCircle,
					Coords: []float64{c.x, c.y, r},
					Style:  canvas.Style{Angle: half.angle},
				})
			}
		}
	}
	boxRectangles(p, bx)
}

// Mark implements Backend.
func (Font) Mark(p *Plan, m Mark) {
	size := math.Round(m.Size)
	p.Add(Part{
		Name:   m.Name,
		Groups: m.Groups,
		Kind:   canvas.KindText,
		Coords: []float64{math.Round(m.X), math.Round(m.Y)},
		Style:  canvas.Style{Text: m.Shape.glyph(), FontSize: size},
	})
}

type corner struct {
	x, y float64
	ok   bool
}

// boxCorners returns the corner centers clockwise from the top left and
// whether each corner is needed.
func boxCorners(bx Box) [4]corner {
	r := bx.R
	wide := bx.X1-bx.X0 > 2*r
	tall := bx.Y1-bx.Y0 > 2*r
	return [4]corner{
		{bx.X0 + r, bx.Y0 + r, true},
		{bx.X1 - r, bx.Y0 + r, wide},
		{bx.X1 - r, bx.Y1 - r, wide && tall},
		{bx.X0 + r, bx.Y1 - r, tall},
	}
}

// boxRectangles adds the vertical band between the corner columns and,
// when the box is taller than its corners, the horizontal band between
// the corner rows.
func boxRectangles(p *Plan, bx Box) {
	r := bx.R
	p.Add(Part{
		Name:   bx.Prefix + "_rectangle_1",
		Groups: bx.Groups,
		Kind:   canvas.KindRect,
		Coords: []float64{bx.X0 + r, bx.Y0, bx.X1 - r, bx.Y1},
	})
	if bx.Y1-bx.Y0 > 2*r {
		p.Add(Part{
			Name:   bx.Prefix + "_rectangle_2",
			Groups: bx.Groups,
			Kind:   canvas.KindRect,
			Coords: []float64{bx.X0, bx.Y0 + r, bx.X1, bx.Y1 - r},
		})
	}
}
