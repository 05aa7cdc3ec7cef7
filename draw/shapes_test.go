// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package draw

import (
	"errors"
	"slices"
	"testing"

	"github.com/gogpu/ggtk/canvas"
)

// maxX returns the largest x of a flat coordinate list.
func maxX(c []float64) float64 {
	m := c[0]
	for i := 0; i < len(c); i += 2 {
		m = max(m, c[i])
	}
	return m
}

func TestProgressBarRightEdge(t *testing.T) {
	e, s := newTestEngine(Polygon{})
	e.ProgressBar(200, 8, 4, 0, 0, 0.5, Horizontal)

	g := e.Normalize(200, 8, 4, 0)
	want := g.BorderWidth + g.InnerCornerRadius + (200-2*g.InnerCornerRadius)*0.5
	if got := maxX(coordsOf(t, s, "progress_line_1")); got != want {
		t.Errorf("progress right edge = %v, want %v", got, want)
	}
	if want != 100 {
		t.Errorf("expected edge = %v", want)
	}
}

func TestProgressBarVerticalFillsFromBottom(t *testing.T) {
	e, s := newTestEngine(Polygon{})
	e.ProgressBar(8, 200, 4, 0, 0, 0.25, Vertical)

	c := coordsOf(t, s, "progress_line_1")
	// Polygon corners are inset by icr = 4; the track is 192 long.
	top, bottom := c[1], c[5]
	if top != 4+192*0.75 || bottom != 196 {
		t.Errorf("vertical progress y = [%v, %v]", top, bottom)
	}
}

func TestProgressBarClampsValues(t *testing.T) {
	e1, s1 := newTestEngine(Polygon{})
	e2, s2 := newTestEngine(Polygon{})
	e1.ProgressBar(200, 8, 4, 0, -3, 7, Horizontal)
	e2.ProgressBar(200, 8, 4, 0, 0, 1, Horizontal)
	if a, b := coordsOf(t, s1, "progress_line_1"), coordsOf(t, s2, "progress_line_1"); !equalCoords(a, b) {
		t.Errorf("clamped %v != %v", a, b)
	}
}

func TestProgressBarFontSkipsCoveredCorners(t *testing.T) {
	has := func(s *canvas.Scene, corner int) bool {
		return len(s.FindByTag("inner_oval_"+string(rune('0'+corner))+"_a")) == 1
	}
	tests := []struct {
		name   string
		v1, v2 float64
		o      Orientation
		want   [4]bool
	}{
		{"w from zero", 0, 0.5, Horizontal, [4]bool{false, true, true, false}},
		{"w inside", 0.2, 0.5, Horizontal, [4]bool{true, true, true, true}},
		{"w full", 0.2, 1, Horizontal, [4]bool{true, false, false, true}},
		{"s from zero", 0, 0.5, Vertical, [4]bool{true, true, false, false}},
		{"s full", 0.2, 1, Vertical, [4]bool{false, false, true, true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, s := newTestEngine(Font{})
			e.ProgressBar(200, 40, 6, 2, tt.v1, tt.v2, tt.o)
			for i, want := range tt.want {
				if got := has(s, i+1); got != want {
					t.Errorf("inner_oval_%d present = %v, want %v", i+1, got, want)
				}
			}
		})
	}
}

func TestProgressBarFontRestoresCorners(t *testing.T) {
	e, s := newTestEngine(Font{})
	e.ProgressBar(200, 40, 6, 2, 0, 0.5, Horizontal)
	if n := len(s.FindByTag("inner_oval_1_a")); n != 0 {
		t.Fatalf("covered corner drawn %d times", n)
	}
	if !e.ProgressBar(200, 40, 6, 2, 0.3, 0.5, Horizontal) {
		t.Error("uncovering a corner reported no new primitives")
	}
	if n := len(s.FindByTag("inner_oval_1_a")); n != 1 {
		t.Fatalf("uncovered corner drawn %d times, want 1", n)
	}
	order := s.Order()
	inner := slices.Index(order, s.FindByTag("inner_oval_1_a")[0])
	progress := slices.Index(order, s.FindByTag("progress_oval_1_a")[0])
	if inner > progress {
		t.Errorf("restored corner stacked above the progress fill (%d > %d)", inner, progress)
	}

	// Ovals are not glyphs; the circle backend keeps every corner.
	e, s = newTestEngine(Circle{})
	e.ProgressBar(200, 40, 6, 2, 0, 0.5, Horizontal)
	if n := len(s.FindByTag("inner_oval_1")); n != 1 {
		t.Errorf("circle backend drew inner_oval_1 %d times, want 1", n)
	}
}

func TestSliderCenter(t *testing.T) {
	tests := []struct {
		value float64
		want  float64
	}{
		{0, 20},
		{0.5, 100},
		{1, 180},
		{-1, 20},
		{2, 180},
	}
	for _, tt := range tests {
		if got := SliderCenter(200, 10, 20, tt.value); got != tt.want {
			t.Errorf("SliderCenter(v=%v) = %v, want %v", tt.value, got, tt.want)
		}
	}
}

func TestSliderButtonPosition(t *testing.T) {
	for _, v := range []float64{0, 1} {
		e, s := newTestEngine(Polygon{})
		e.Slider(200, 20, 10, 0, 20, 10, v, Horizontal)
		c := coordsOf(t, s, "slider_line_1")
		center := (c[0] + c[2]) / 2
		if want := SliderCenter(200, 10, 20, v); center != want {
			t.Errorf("v=%v: button center = %v, want %v", v, center, want)
		}
		if it := itemOf(t, s, "slider_line_1"); it.Style.Width != 20 {
			t.Errorf("button stroke = %v, want 2×buttonCR", it.Style.Width)
		}
	}
}

func TestSliderMovesWithoutCreating(t *testing.T) {
	for _, b := range allBackends {
		e, s := newTestEngine(b)
		e.Slider(200, 16, 8, 6, 0, 8, 0.3, Horizontal)
		if e.Slider(200, 16, 8, 6, 0, 8, 0.6, Horizontal) {
			t.Errorf("%s: moving the slider created primitives", b.Method())
		}
		if n := len(s.FindByTag(GroupSlider)); n == 0 {
			t.Errorf("%s: no slider parts", b.Method())
		}
	}
}

func TestRoundedRectSplit(t *testing.T) {
	e, s := newTestEngine(Polygon{})
	e.RoundedRectSplit(100, 30, 5, 2, 500)

	counts := []struct {
		tag  string
		want int
	}{
		{GroupLeft, 4},
		{GroupRight, 4},
		{GroupBorderLeft, 2},
		{GroupInnerRight, 2},
	}
	for _, c := range counts {
		if n := len(s.FindByTag(c.tag)); n != c.want {
			t.Errorf("%s has %d parts, want %d", c.tag, n, c.want)
		}
	}
	// left clamps to w - 2cr = 90
	if got := coordsOf(t, s, "border_rect_left_1"); !equalCoords(got, []float64{85, 0, 90, 30}) {
		t.Errorf("left seam = %v", got)
	}
	if got := coordsOf(t, s, "inner_rect_right_1"); !equalCoords(got, []float64{90, 2, 93, 28}) {
		t.Errorf("inner right seam = %v", got)
	}

	e.RoundedRectSplit(100, 30, 5, 2, -10)
	if got := coordsOf(t, s, "border_rect_right_1"); !equalCoords(got, []float64{10, 0, 15, 30}) {
		t.Errorf("right seam after clamping to 2cr = %v", got)
	}
}

func TestScrollbar(t *testing.T) {
	e, s := newTestEngine(Polygon{})
	e.Scrollbar(16, 200, 8, 4, 0.25, 0.5, Vertical)

	if got := coordsOf(t, s, "border_rectangle_1"); !equalCoords(got, []float64{0, 0, 16, 200}) {
		t.Errorf("background = %v", got)
	}
	thumb := itemOf(t, s, "scrollbar_line_1")
	// Polygon coordinates sit cr = 8 from the edges; the track is 184 long.
	want := []float64{8, 8 + 46, 8, 8 + 46, 8, 8 + 92, 8, 8 + 92}
	if !equalCoords(thumb.Coords, want) {
		t.Errorf("thumb = %v, want %v", thumb.Coords, want)
	}
	if thumb.Style.Width != 8 {
		t.Errorf("thumb stroke = %v, want 2×(cr−spacing)", thumb.Style.Width)
	}

	e.Scrollbar(200, 16, 8, 4, 0.9, 0.1, Horizontal)
	thumb = itemOf(t, s, "scrollbar_line_1")
	if thumb.Coords[0] != thumb.Coords[2] {
		t.Errorf("end before start must collapse the thumb: %v", thumb.Coords)
	}
}

func TestCheckmark(t *testing.T) {
	e, s := newTestEngine(Polygon{})
	e.Checkmark(24, 24, 14)
	it := itemOf(t, s, TagCheckmark)
	if it.Kind != canvas.KindLine || len(it.Coords) != 6 {
		t.Fatalf("polyline checkmark = %+v", it)
	}
	if it.Style.Width != 3 || it.Style.Join != canvas.JoinMiter || it.Style.Cap != canvas.CapRound {
		t.Errorf("checkmark style = %+v", it.Style)
	}
	if it.Coords[0] != 12+5 || it.Coords[1] != 12-5 {
		t.Errorf("first point = (%v, %v)", it.Coords[0], it.Coords[1])
	}

	e, s = newTestEngine(Font{})
	e.Checkmark(25, 25, 14)
	it = itemOf(t, s, TagCheckmark)
	if it.Kind != canvas.KindText || it.Style.Text != "Z" || it.Style.FontSize != 14 {
		t.Errorf("glyph checkmark = %+v", it)
	}
	if !equalCoords(it.Coords, []float64{13, 13}) {
		t.Errorf("glyph checkmark position = %v", it.Coords)
	}
}

func TestDropdownArrow(t *testing.T) {
	e, s := newTestEngine(Circle{})
	e.DropdownArrow(100.4, 14, 10)
	it := itemOf(t, s, TagDropdownArrow)
	want := []float64{95, 12, 100, 16, 105, 12}
	if !equalCoords(it.Coords, want) {
		t.Errorf("arrow = %v, want %v", it.Coords, want)
	}
	if it.Style.Width != 3 || it.Style.Join != canvas.JoinRound {
		t.Errorf("arrow style = %+v", it.Style)
	}

	e, s = newTestEngine(Font{})
	e.DropdownArrow(100, 14, 12)
	if it := itemOf(t, s, TagDropdownArrow); it.Style.Text != "Y" || it.Style.FontSize != 12 {
		t.Errorf("glyph arrow = %+v", it)
	}
	e.DropdownArrow(100, 14, 16)
	if it := itemOf(t, s, TagDropdownArrow); it.Style.FontSize != 16 {
		t.Errorf("resized glyph arrow = %+v", it.Style)
	}
}

func TestBackgroundCorners(t *testing.T) {
	e, s := newTestEngine(Font{})
	e.RoundedRect(100, 40, 10, 0)
	e.BackgroundCorners(100, 40)

	if got := coordsOf(t, s, "background_corner_bottom_right"); !equalCoords(got, []float64{50, 20, 100, 40}) {
		t.Errorf("bottom right = %v", got)
	}
	bottom := s.Order()[:4]
	for _, id := range bottom {
		if !s.HasTag(id, GroupBackground) {
			t.Errorf("background corners are not at the bottom: %v", s.Tags(id))
		}
	}
}

func TestParseMethod(t *testing.T) {
	tests := []struct {
		in   string
		want Method
		err  error
	}{
		{"polygon", MethodPolygon, nil},
		{"Font_Shapes", MethodFont, nil},
		{" CIRCLE ", MethodCircle, nil},
		{"raster", "", ErrUnknownMethod},
		{"", "", ErrUnknownMethod},
	}
	for _, tt := range tests {
		got, err := ParseMethod(tt.in)
		if got != tt.want || !errors.Is(err, tt.err) {
			t.Errorf("ParseMethod(%q) = %q, %v", tt.in, got, err)
		}
	}
}

func TestParseOrientation(t *testing.T) {
	for in, want := range map[string]Orientation{"w": Horizontal, "S": Vertical, "vertical": Vertical, "horizontal": Horizontal} {
		got, err := ParseOrientation(in)
		if err != nil || got != want {
			t.Errorf("ParseOrientation(%q) = %v, %v", in, got, err)
		}
	}
	if _, err := ParseOrientation("n"); !errors.Is(err, ErrUnknownOrientation) {
		t.Errorf("ParseOrientation(n) = %v", err)
	}
}

func TestDefaultMethod(t *testing.T) {
	tests := map[string]Method{"darwin": MethodPolygon, "windows": MethodFont, "linux": MethodFont}
	for goos, want := range tests {
		if got := DefaultMethod(goos); got != want {
			t.Errorf("DefaultMethod(%s) = %s, want %s", goos, got, want)
		}
	}
}

type testBackend struct{ Polygon }

func (testBackend) Method() Method { return "test" }

func TestRegistry(t *testing.T) {
	Register("test", func() Backend { return testBackend{} })
	t.Cleanup(func() { Unregister("test") })

	if !slices.Contains(Methods(), Method("test")) {
		t.Errorf("Methods() = %v", Methods())
	}
	e, err := New(canvas.NewScene(), "test")
	if err != nil {
		t.Fatal(err)
	}
	if e.Backend().Method() != "test" {
		t.Errorf("backend = %v", e.Backend().Method())
	}
	if m, err := ParseMethod("TEST"); err != nil || m != "test" {
		t.Errorf("ParseMethod(TEST) = %q, %v", m, err)
	}

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register did not panic")
		}
	}()
	Register("test", func() Backend { return testBackend{} })
}

func TestNewUnknownMethod(t *testing.T) {
	if _, err := New(canvas.NewScene(), "nope"); !errors.Is(err, ErrUnknownMethod) {
		t.Errorf("New(nope) = %v", err)
	}
}
