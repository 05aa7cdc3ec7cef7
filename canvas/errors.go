package canvas

import "errors"

var (
	// ErrGlyphTableIncomplete is returned when a glyph table lacks an
	// entry for a radius below the large-glyph threshold.
	ErrGlyphTableIncomplete = errors.New("canvas: glyph table incomplete")

	// ErrGlyphMissing is returned when the shapes font has no glyph for a
	// table entry.
	ErrGlyphMissing = errors.New("canvas: glyph missing from shapes font")
)
