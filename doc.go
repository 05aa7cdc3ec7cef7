// Package ggtk draws themed, DPI-aware widgets onto retained canvases.
//
// # Overview
//
// ggtk paints rounded buttons, frames, check boxes, switches, progress
// bars, sliders, scrollbars and option menus out of a handful of canvas
// primitives. Shapes are built by a draw.Engine on a canvas.Scene and
// kept there: a resize only moves existing primitives, a theme change
// only recolors them.
//
// Two process-wide trackers keep widgets current:
//   - appearance.Tracker follows the OS light/dark mode
//   - scaling.Tracker follows the DPI of each window's monitor and the
//     user scaling multipliers
//
// # Quick Start
//
//	tk, err := ggtk.New()
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer tk.Close()
//
//	win := tk.NewWindow(widget.WithSize(400, 300), widget.WithText("demo"))
//	btn := widget.NewButton(win, widget.WithText("OK"))
//	btn.Place(20, 20)
//
//	// Rasterize with gg.
//	_ = ggraster.SaveWindowPNG(win, "demo.png")
//
// # Threading
//
// Tracker callbacks run on the toolkit's scheduler. With the default
// scheduler that is the goroutine calling Toolkit.Run; create and modify
// widgets there, or through Toolkit.Post.
//
// # Packages
//
//   - theme: color pairs, color parsing, theme files
//   - canvas: the retained scene and glyph tables
//   - draw: shape backends and the shape engine
//   - appearance, scaling: the trackers
//   - widget: the widgets
//   - config: TOML/YAML settings files
//   - integration/ggraster: rasterization with gg
package ggtk
