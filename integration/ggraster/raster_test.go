// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package ggraster

import (
	"errors"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/gogpu/gg"

	"github.com/gogpu/ggtk/appearance"
	"github.com/gogpu/ggtk/canvas"
	"github.com/gogpu/ggtk/draw"
	"github.com/gogpu/ggtk/host"
	"github.com/gogpu/ggtk/loop"
	"github.com/gogpu/ggtk/scaling"
	"github.com/gogpu/ggtk/theme"
	"github.com/gogpu/ggtk/widget"
)

func nrgbaAt(img image.Image, x, y int) color.NRGBA {
	return color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
}

func near(a, b color.NRGBA) bool {
	d := func(x, y uint8) int {
		if x > y {
			return int(x - y)
		}
		return int(y - x)
	}
	return d(a.R, b.R) <= 2 && d(a.G, b.G) <= 2 && d(a.B, b.B) <= 2 && d(a.A, b.A) <= 2
}

func mustRGBA(t *testing.T, s string) color.NRGBA {
	t.Helper()
	c, err := theme.ParseRGBA(s)
	if err != nil {
		t.Fatal(err)
	}
	return c
}

func TestDrawScenePrimitives(t *testing.T) {
	s := canvas.NewScene()
	s.Create(canvas.KindRect, []float64{0, 0, 10, 20}, canvas.Style{Fill: "red"})
	s.Create(canvas.KindOval, []float64{20, 0, 40, 20}, canvas.Style{Fill: "#00FF00"})
	s.Create(canvas.KindPolygon, []float64{50, 4, 56, 4, 56, 16, 50, 16},
		canvas.Style{Fill: "blue", Outline: "blue", Width: 8, Join: canvas.JoinRound})
	s.Create(canvas.KindText, []float64{5, 5}, canvas.Style{Text: "ignored", Fill: "black"})

	dc := gg.NewContext(80, 20)
	defer dc.Close()
	if err := DrawScene(dc, s); err != nil {
		t.Fatal(err)
	}
	img := dc.Image()

	tests := []struct {
		name string
		x, y int
		want color.NRGBA
	}{
		{"rect", 5, 10, mustRGBA(t, "red")},
		{"oval center", 30, 10, mustRGBA(t, "#00FF00")},
		{"outside oval", 21, 1, color.NRGBA{}},
		{"polygon", 53, 10, mustRGBA(t, "blue")},
		{"polygon outline grows outward", 48, 10, mustRGBA(t, "blue")},
		{"empty", 70, 10, color.NRGBA{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := nrgbaAt(img, tt.x, tt.y); !near(got, tt.want) {
				t.Errorf("pixel (%d,%d) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestDrawSceneLineUsesFill(t *testing.T) {
	s := canvas.NewScene()
	s.Create(canvas.KindLine, []float64{0, 10, 40, 10},
		canvas.Style{Fill: "white", Width: 6, Cap: canvas.CapRound})

	dc := gg.NewContext(40, 20)
	defer dc.Close()
	if err := DrawScene(dc, s); err != nil {
		t.Fatal(err)
	}
	if got := nrgbaAt(dc.Image(), 20, 10); !near(got, mustRGBA(t, "white")) {
		t.Errorf("line pixel = %v, want white", got)
	}
	if got := nrgbaAt(dc.Image(), 20, 2); got.A != 0 {
		t.Errorf("pixel off the line = %v, want transparent", got)
	}
}

func TestDrawSceneTransparentIsSkipped(t *testing.T) {
	s := canvas.NewScene()
	s.Create(canvas.KindRect, []float64{0, 0, 10, 10}, canvas.Style{Fill: theme.Transparent})

	dc := gg.NewContext(10, 10)
	defer dc.Close()
	if err := DrawScene(dc, s); err != nil {
		t.Fatal(err)
	}
	if got := nrgbaAt(dc.Image(), 5, 5); got.A != 0 {
		t.Errorf("pixel = %v, want transparent", got)
	}
}

func TestDrawSceneErrors(t *testing.T) {
	tests := []struct {
		name  string
		kind  canvas.Kind
		coord []float64
		style canvas.Style
		want  error
	}{
		{"short polygon", canvas.KindPolygon, []float64{0, 0, 1, 1}, canvas.Style{Fill: "red"}, ErrBadCoords},
		{"odd line", canvas.KindLine, []float64{0, 0, 1}, canvas.Style{Fill: "red", Width: 1}, ErrBadCoords},
		{"rect", canvas.KindRect, []float64{0, 0}, canvas.Style{Fill: "red"}, ErrBadCoords},
		{"bad color", canvas.KindRect, []float64{0, 0, 1, 1}, canvas.Style{Fill: "nocolor"}, theme.ErrUnknownColorName},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := canvas.NewScene()
			s.Create(tt.kind, tt.coord, tt.style)
			dc := gg.NewContext(4, 4)
			defer dc.Close()
			if err := DrawScene(dc, s); !errors.Is(err, tt.want) {
				t.Errorf("DrawScene() = %v, want %v", err, tt.want)
			}
		})
	}
}

func newWindow(t *testing.T, mode theme.Mode, opts ...widget.Option) *widget.Window {
	t.Helper()
	sched := loop.NewManual()
	det := appearance.DetectorFunc(func() (theme.Mode, error) { return mode, nil })
	app := appearance.New(sched, appearance.WithDetector(det))
	one := scaling.ProberFunc(func(host.Window) (float64, error) { return 1, nil })
	sc := scaling.New(sched, scaling.WithProber(one))
	t.Cleanup(func() {
		app.Close()
		sc.Close()
	})
	b, err := draw.NewBackend(draw.MethodPolygon)
	if err != nil {
		t.Fatal(err)
	}
	env, err := widget.NewEnv(widget.Env{Scheduler: sched, Appearance: app, Scaling: sc, Backend: b})
	if err != nil {
		t.Fatal(err)
	}
	return widget.NewWindow(env, opts...)
}

func TestRenderWindow(t *testing.T) {
	tests := []struct {
		name     string
		mode     theme.Mode
		bg, fill string
	}{
		{"light", theme.Light, "gray92", "#3B8ED0"},
		{"dark", theme.Dark, "gray14", "#1F6AA5"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			win := newWindow(t, tt.mode, widget.WithSize(100, 60))
			btn := widget.NewButton(win, widget.WithSize(60, 30), widget.WithText("OK"))
			btn.Place(20, 15)

			img, err := RenderWindow(win)
			if err != nil {
				t.Fatal(err)
			}
			if b := img.Bounds(); b.Dx() != 100 || b.Dy() != 60 {
				t.Fatalf("bounds = %v, want 100x60", b)
			}
			if got := nrgbaAt(img, 2, 2); !near(got, mustRGBA(t, tt.bg)) {
				t.Errorf("background = %v, want %s", got, tt.bg)
			}
			if got := nrgbaAt(img, 35, 30); !near(got, mustRGBA(t, tt.fill)) {
				t.Errorf("button = %v, want %s", got, tt.fill)
			}
		})
	}
}

func TestRenderWindowNestedFrame(t *testing.T) {
	win := newWindow(t, theme.Light, widget.WithSize(100, 100))
	outer := widget.NewFrame(win, widget.WithSize(80, 80))
	outer.Place(10, 10)
	inner := widget.NewFrame(outer, widget.WithSize(40, 40))
	inner.Place(20, 20)

	img, err := RenderWindow(win)
	if err != nil {
		t.Fatal(err)
	}
	if got := nrgbaAt(img, 15, 50); !near(got, mustRGBA(t, "gray86")) {
		t.Errorf("outer frame = %v, want gray86", got)
	}
	if got := nrgbaAt(img, 50, 50); !near(got, mustRGBA(t, "gray81")) {
		t.Errorf("inner frame = %v, want gray81", got)
	}
}

func TestSaveWindowPNG(t *testing.T) {
	win := newWindow(t, theme.Light, widget.WithSize(40, 30))
	widget.NewCheckBox(win)

	path := filepath.Join(t.TempDir(), "win.png")
	if err := SaveWindowPNG(win, path); err != nil {
		t.Fatal(err)
	}
	fi, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if fi.Size() == 0 {
		t.Error("empty PNG")
	}
}

func TestRenderWindowInvalidSize(t *testing.T) {
	win := newWindow(t, theme.Light, widget.WithSize(0.1, 0.1))
	if _, err := RenderWindow(win); !errors.Is(err, ErrInvalidDimensions) {
		t.Errorf("RenderWindow() = %v, want ErrInvalidDimensions", err)
	}
}
