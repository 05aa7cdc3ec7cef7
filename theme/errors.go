package theme

import "errors"

// Sentinel errors for the theme package.
var (
	// ErrInvalidColor is returned when a value is neither a color string
	// nor a light/dark pair.
	ErrInvalidColor = errors.New("theme: invalid color")

	// ErrPairLength is returned when a color pair does not have exactly
	// two entries.
	ErrPairLength = errors.New("theme: color pair must have exactly two entries")

	// ErrTransparentNotAllowed is returned when Transparent is used for a
	// role that must be opaque.
	ErrTransparentNotAllowed = errors.New("theme: transparent not allowed")

	// ErrUnknownColorName is returned for color names that are neither hex
	// nor known names.
	ErrUnknownColorName = errors.New("theme: unknown color name")

	// ErrEmptyTheme is returned when theme data contains no categories.
	ErrEmptyTheme = errors.New("theme: no categories")
)

// ColorError records the value that failed to parse.
type ColorError struct {
	Value string
	Err   error
}

func (e *ColorError) Error() string {
	return e.Err.Error() + ": " + e.Value
}

func (e *ColorError) Unwrap() error { return e.Err }
