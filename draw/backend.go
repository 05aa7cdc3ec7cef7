// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package draw

import "github.com/gogpu/ggtk/canvas"

// Backend decides which primitives make up a shape.
//
// Backends are stateless: they append parts to a Plan and never touch the
// canvas. The Engine owns creation, updates and deletion.
type Backend interface {
	// Method returns the name the backend is registered under.
	Method() Method

	// RoundRadius applies the backend's corner radius rounding.
	RoundRadius(r float64) float64

	// Box adds the parts of a filled rounded box.
	Box(p *Plan, b Box)

	// Mark adds a checkmark or dropdown arrow.
	Mark(p *Plan, m Mark)
}

// Box is a filled rectangle with rounded corners.
type Box struct {
	// Prefix starts every part name ("border", "inner_left", …).
	Prefix string
	// Groups are added to every part.
	Groups []string

	X0, Y0, X1, Y1 float64
	R              float64

	// Shift moves the right and bottom edge. Only the polygon backend
	// needs it, to correct rasterizer overshoot.
	Shift float64

	// Covered marks corners, clockwise from the top left, that another
	// box paints over exactly. The font backend leaves them out so their
	// glyph edges do not show through.
	Covered [4]bool
}

// MarkShape selects the glyph of a Mark.
type MarkShape uint8

const (
	MarkCheck MarkShape = iota
	MarkArrow
)

// glyph returns the shapes-font glyph of the mark.
func (s MarkShape) glyph() string {
	if s == MarkArrow {
		return "Y"
	}
	return "Z"
}

// Mark is a small symbol drawn either as a polyline or as a shapes-font
// glyph centered at (X, Y).
type Mark struct {
	Name   string
	Groups []string
	Shape  MarkShape

	X, Y float64
	Size float64

	// Polyline variant.
	Points []float64
	Width  float64
	Join   canvas.JoinStyle
}

// Part is one desired primitive. Name is its unique tag; Groups are the
// group tags it belongs to.
//
// Style carries geometry only (line width, joins, glyph text). Colors are
// applied by the caller after the engine reports new parts.
type Part struct {
	Name   string
	Groups []string
	Kind   canvas.Kind

	// Coords are the canvas coordinates; glyph circles use x, y, r.
	Coords []float64
	Style  canvas.Style
}

// Tags returns the name followed by the groups.
func (p Part) Tags() []string {
	tags := make([]string, 0, 1+len(p.Groups))
	tags = append(tags, p.Name)
	return append(tags, p.Groups...)
}

// Plan is the declarative part list of one drawing call.
type Plan struct {
	parts []Part
}

// Add appends a part.
func (p *Plan) Add(part Part) { p.parts = append(p.parts, part) }

// Parts returns the parts in insertion order.
func (p *Plan) Parts() []Part { return p.parts }

// withGroups returns groups plus extra, without aliasing groups.
func withGroups(groups []string, extra ...string) []string {
	out := make([]string, 0, len(groups)+len(extra))
	out = append(out, groups...)
	return append(out, extra...)
}
