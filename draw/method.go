// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package draw composes widget shapes from canvas primitives.
//
// An Engine is bound to one canvas and one Backend. Each drawing call
// normalizes its geometry, asks the backend which primitives make up the
// shape, and brings the canvas in line with that plan: missing parts are
// created, existing parts are moved, and parts the shape no longer needs
// are deleted. Every call reports whether it created primitives, in which
// case the caller must color them:
//
//	e, _ := draw.New(scene, draw.DefaultMethod(runtime.GOOS))
//	if e.RoundedRect(140, 28, 6, 2) {
//		// new primitives: apply colors to "border_parts", "inner_parts"
//	}
package draw

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
)

// Method names a drawing backend.
type Method string

const (
	// MethodPolygon draws each region as one thick polygon with round
	// joins.
	MethodPolygon Method = "polygon"

	// MethodFont draws corners with antialiased shapes-font glyphs.
	MethodFont Method = "font"

	// MethodCircle draws corners with ovals.
	MethodCircle Method = "circle"
)

// methodPriority is the fallback order when the preferred method is not
// registered.
var methodPriority = []Method{MethodPolygon, MethodFont, MethodCircle}

// ParseMethod parses the name of a registered method. Matching ignores
// case and accepts the "_shapes" suffix ("font_shapes").
func ParseMethod(s string) (Method, error) {
	name := cases.Fold().String(strings.TrimSpace(s))
	m := Method(strings.TrimSuffix(name, "_shapes"))
	if !IsRegistered(m) {
		return "", fmt.Errorf("%w: %q", ErrUnknownMethod, s)
	}
	return m, nil
}

// PreferredMethod returns the method that looks best on an operating
// system (GOOS value): macOS antialiases polygons natively, other
// platforms get smoother corners from font glyphs.
func PreferredMethod(goos string) Method {
	if goos == "darwin" {
		return MethodPolygon
	}
	return MethodFont
}

// DefaultMethod returns PreferredMethod(goos) if it is registered, else
// the first registered method in priority order, else MethodPolygon.
func DefaultMethod(goos string) Method {
	if m := PreferredMethod(goos); IsRegistered(m) {
		return m
	}
	for _, m := range methodPriority {
		if IsRegistered(m) {
			return m
		}
	}
	return MethodPolygon
}

// Orientation is the fill direction of progress bars and sliders and the
// axis of scrollbars.
type Orientation uint8

const (
	// Horizontal fills from the left ("w").
	Horizontal Orientation = iota
	// Vertical fills from the bottom ("s").
	Vertical
)

func (o Orientation) String() string {
	if o == Vertical {
		return "vertical"
	}
	return "horizontal"
}

// ParseOrientation accepts "horizontal", "vertical" and the anchor forms
// "w" and "s".
func ParseOrientation(s string) (Orientation, error) {
	switch cases.Fold().String(strings.TrimSpace(s)) {
	case "horizontal", "w":
		return Horizontal, nil
	case "vertical", "s":
		return Vertical, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownOrientation, s)
}
