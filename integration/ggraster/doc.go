// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package ggraster rasterizes retained canvas scenes with gg.
//
// A canvas.Scene only records primitives. This package walks the display
// list bottom first and draws each primitive onto a gg.Context:
//
//	dc := gg.NewContext(200, 40)
//	if err := ggraster.DrawScene(dc, button.Scene()); err != nil {
//		return err
//	}
//	_ = dc.SavePNG("button.png")
//
// RenderWindow draws a whole widget.Window: the window background, then
// every widget scene at its position, recursing into containers.
//
// Text items are not drawn. Glyph circles are drawn as plain circles of
// the glyph's diameter, so a font-backed widget looks the same as a
// polygon-backed one.
//
// # Thread Safety
//
// The functions here read scenes without locking. Call them from the
// goroutine that owns the widgets.
package ggraster
