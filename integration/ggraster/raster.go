// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package ggraster

import (
	"errors"
	"fmt"
	"image"

	"github.com/gogpu/gg"

	"github.com/gogpu/ggtk/canvas"
	"github.com/gogpu/ggtk/theme"
	"github.com/gogpu/ggtk/widget"
)

var (
	// ErrInvalidDimensions is returned when a window has no device area.
	ErrInvalidDimensions = errors.New("ggraster: invalid dimensions")

	// ErrBadCoords is returned for a primitive whose coordinate list does
	// not fit its kind.
	ErrBadCoords = errors.New("ggraster: bad coordinates")
)

// DrawScene draws every primitive of s onto dc in display order.
// Drawing stops at the first primitive that cannot be drawn.
func DrawScene(dc *gg.Context, s *canvas.Scene) error {
	for _, it := range s.Items() {
		if err := drawItem(dc, it); err != nil {
			return fmt.Errorf("ggraster: item %d (%s): %w", it.ID, it.Kind, err)
		}
	}
	return nil
}

// RenderWindow rasterizes win and all its widgets at the window's device
// size.
func RenderWindow(win *widget.Window) (image.Image, error) {
	dc, err := drawWindow(win)
	if err != nil {
		return nil, err
	}
	defer dc.Close()
	return dc.Image(), nil
}

// SaveWindowPNG rasterizes win and writes it to path as PNG.
func SaveWindowPNG(win *widget.Window, path string) error {
	dc, err := drawWindow(win)
	if err != nil {
		return err
	}
	defer dc.Close()
	return dc.SavePNG(path)
}

func drawWindow(win *widget.Window) (*gg.Context, error) {
	w, h := win.DeviceSize()
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: width=%d, height=%d", ErrInvalidDimensions, w, h)
	}
	dc := gg.NewContext(w, h)
	bg, err := theme.ParseRGBA(win.FgColor().Resolve(win.Mode()))
	if err != nil {
		dc.Close()
		return nil, fmt.Errorf("ggraster: window background: %w", err)
	}
	dc.ClearWithColor(gg.FromColor(bg))
	if err := drawChildren(dc, win.Children()); err != nil {
		dc.Close()
		return nil, err
	}
	return dc, nil
}

// drawChildren draws widgets in creation order so later siblings cover
// earlier ones, then each container's own children on top of it.
func drawChildren(dc *gg.Context, children []widget.Widget) error {
	for _, c := range children {
		x, y := c.Position()
		dc.Push()
		dc.Translate(x, y)
		err := DrawScene(dc, c.Scene())
		if err == nil {
			if ct, ok := c.(widget.Container); ok {
				err = drawChildren(dc, ct.Children())
			}
		}
		dc.Pop()
		if err != nil {
			return err
		}
	}
	return nil
}

func drawItem(dc *gg.Context, it canvas.Item) error {
	st := it.Style
	c := it.Coords
	switch it.Kind {
	case canvas.KindPolygon:
		if len(c) < 6 || len(c)%2 != 0 {
			return ErrBadCoords
		}
		return paint(dc, st, func() { polyline(dc, c, true) })
	case canvas.KindRect:
		if len(c) != 4 {
			return ErrBadCoords
		}
		return paint(dc, st, func() { dc.DrawRectangle(c[0], c[1], c[2]-c[0], c[3]-c[1]) })
	case canvas.KindOval:
		if len(c) != 4 {
			return ErrBadCoords
		}
		return paint(dc, st, func() {
			dc.DrawEllipse((c[0]+c[2])/2, (c[1]+c[3])/2, (c[2]-c[0])/2, (c[3]-c[1])/2)
		})
	case canvas.KindLine:
		if len(c) < 4 || len(c)%2 != 0 {
			return ErrBadCoords
		}
		return stroke(dc, st.Fill, st, func() { polyline(dc, c, false) })
	case canvas.KindGlyphCircle:
		if len(c) != 2 {
			return ErrBadCoords
		}
		return fill(dc, st.Fill, func() { dc.DrawCircle(c[0], c[1], st.FontSize/2) })
	case canvas.KindText:
		return nil
	default:
		return fmt.Errorf("unknown kind %v", it.Kind)
	}
}

func polyline(dc *gg.Context, c []float64, closed bool) {
	dc.MoveTo(c[0], c[1])
	for i := 2; i+1 < len(c); i += 2 {
		dc.LineTo(c[i], c[i+1])
	}
	if closed {
		dc.ClosePath()
	}
}

// paint fills the shape, then strokes its outline on top so wide round
// joined outlines grow the shape outward as the canvas host does.
func paint(dc *gg.Context, st canvas.Style, shape func()) error {
	if err := fill(dc, st.Fill, shape); err != nil {
		return err
	}
	return stroke(dc, st.Outline, st, shape)
}

func fill(dc *gg.Context, col string, shape func()) error {
	if col == "" {
		return nil
	}
	rgba, err := theme.ParseRGBA(col)
	if err != nil {
		return err
	}
	if rgba.A == 0 {
		return nil
	}
	dc.ClearPath()
	shape()
	dc.SetColor(rgba)
	return dc.Fill()
}

func stroke(dc *gg.Context, col string, st canvas.Style, shape func()) error {
	if col == "" || st.Width <= 0 {
		return nil
	}
	rgba, err := theme.ParseRGBA(col)
	if err != nil {
		return err
	}
	if rgba.A == 0 {
		return nil
	}
	dc.ClearPath()
	shape()
	dc.SetColor(rgba)
	dc.SetLineWidth(st.Width)
	dc.SetLineJoin(lineJoin(st.Join))
	dc.SetLineCap(lineCap(st.Cap))
	return dc.Stroke()
}

func lineJoin(j canvas.JoinStyle) gg.LineJoin {
	switch j {
	case canvas.JoinRound:
		return gg.LineJoinRound
	case canvas.JoinBevel:
		return gg.LineJoinBevel
	default:
		return gg.LineJoinMiter
	}
}

func lineCap(c canvas.CapStyle) gg.LineCap {
	switch c {
	case canvas.CapRound:
		return gg.LineCapRound
	case canvas.CapSquare:
		return gg.LineCapSquare
	default:
		return gg.LineCapButt
	}
}
