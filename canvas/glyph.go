package canvas

import (
	"bytes"
	"errors"
	"fmt"
	"math"

	"github.com/go-text/typesetting/font"
)

// GlyphTable maps a circle radius in pixels to the shapes-font glyph that
// renders the best looking circle of that radius. Radii of 20 and more use
// the large glyph.
//
// The table depends on how the platform's font rasterizer hints small
// sizes, so it is data rather than code: two tables ship, and callers can
// supply their own with NewGlyphTable.
type GlyphTable struct {
	name  string
	runes [20]rune // runes[r] for 1 ≤ r ≤ 19
	large rune
}

// NewGlyphTable builds a table from radius → glyph entries for radii 1 to
// 19 and the glyph used from radius 20 on.
func NewGlyphTable(name string, small map[int]rune, large rune) (*GlyphTable, error) {
	t := &GlyphTable{name: name, large: large}
	for r := 1; r < len(t.runes); r++ {
		g, ok := small[r]
		if !ok {
			return nil, fmt.Errorf("%w: radius %d", ErrGlyphTableIncomplete, r)
		}
		t.runes[r] = g
	}
	return t, nil
}

func mustGlyphTable(name string, small map[int]rune, large rune) *GlyphTable {
	t, err := NewGlyphTable(name, small, large)
	if err != nil {
		panic(err)
	}
	return t
}

var (
	// FineGlyphTable suits rasterizers that keep small glyph sizes crisp.
	FineGlyphTable = mustGlyphTable("fine", map[int]rune{
		19: 'A', 18: 'A', 17: 'B', 16: 'B', 15: 'B', 14: 'B', 13: 'C', 12: 'C', 11: 'D',
		10: 'D', 9: 'E', 8: 'F', 7: 'C', 6: 'I', 5: 'E', 4: 'G', 3: 'P', 2: 'R', 1: 'R',
	}, 'A')

	// WarpedGlyphTable suits rasterizers that distort small glyph sizes,
	// such as the Windows 11 text stack.
	WarpedGlyphTable = mustGlyphTable("warped", map[int]rune{
		19: 'B', 18: 'B', 17: 'B', 16: 'B', 15: 'B', 14: 'B', 13: 'B', 12: 'B', 11: 'B',
		10: 'B', 9: 'C', 8: 'D', 7: 'C', 6: 'E', 5: 'F', 4: 'C', 3: 'C', 2: 'C', 1: 'C',
	}, 'A')
)

// warpedAfterBuild is the last Windows build that renders small glyphs
// with the fine table.
const warpedAfterBuild = 20000

// DefaultGlyphTable picks the table for an operating system (GOOS value)
// and, on Windows, its build number.
func DefaultGlyphTable(goos string, build int) *GlyphTable {
	if goos == "windows" && build > warpedAfterBuild {
		return WarpedGlyphTable
	}
	return FineGlyphTable
}

// Name returns the table name.
func (t *GlyphTable) Name() string { return t.name }

// Rune returns the glyph for radius r, rounded to whole pixels. Radii
// below 1 use the radius-1 glyph.
func (t *GlyphTable) Rune(r float64) rune {
	n := int(math.Round(r))
	switch {
	case n >= len(t.runes):
		return t.large
	case n < 1:
		return t.runes[1]
	default:
		return t.runes[n]
	}
}

// Runes returns the distinct glyphs the table uses.
func (t *GlyphTable) Runes() []rune {
	seen := map[rune]bool{t.large: true}
	out := []rune{t.large}
	for _, g := range t.runes[1:] {
		if !seen[g] {
			seen[g] = true
			out = append(out, g)
		}
	}
	return out
}

// Validate checks that the shapes font in fontData (TrueType or OpenType)
// maps every glyph of the table.
func (t *GlyphTable) Validate(fontData []byte) error {
	face, err := font.ParseTTF(bytes.NewReader(fontData))
	if err != nil {
		return fmt.Errorf("canvas: parse shapes font: %w", err)
	}
	var errs []error
	for _, g := range t.Runes() {
		if _, ok := face.NominalGlyph(g); !ok {
			errs = append(errs, fmt.Errorf("%w: %q", ErrGlyphMissing, g))
		}
	}
	return errors.Join(errs...)
}
