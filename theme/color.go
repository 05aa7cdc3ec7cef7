// Package theme holds appearance-dependent color values and theme data.
//
// A Color is either one concrete color or a light/dark pair. It is resolved
// to a concrete color only at draw time, with the active Mode:
//
//	c := theme.Pair("gray92", "gray14")
//	c.Resolve(theme.Light) // "gray92"
//	c.Resolve(theme.Dark)  // "gray14"
package theme

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Mode is the binary appearance mode. It doubles as the index into a
// light/dark Color pair.
type Mode int

const (
	// Light is the default appearance (pair index 0).
	Light Mode = 0
	// Dark is the dark appearance (pair index 1).
	Dark Mode = 1
)

// String returns "Light" or "Dark".
func (m Mode) String() string {
	switch m {
	case Light:
		return "Light"
	case Dark:
		return "Dark"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Transparent is the sentinel color meaning "use the parent's color".
const Transparent = "transparent"

// Color is a single color or a light/dark pair of colors.
// The zero Color is an empty single color.
type Color struct {
	values [2]string
	paired bool
}

// Single returns a Color that resolves to c in every mode.
func Single(c string) Color {
	return Color{values: [2]string{c, c}}
}

// Pair returns a Color that resolves to light in Light mode and dark in
// Dark mode.
func Pair(light, dark string) Color {
	return Color{values: [2]string{light, dark}, paired: true}
}

// Resolve returns the concrete color for mode m.
//
// A single color is returned unchanged, including Transparent, which the
// caller must replace with its parent's color. m must be Light or Dark;
// any other value panics with an index out of range.
func (c Color) Resolve(m Mode) string {
	if c.paired {
		return c.values[m]
	}
	return c.values[0]
}

// IsPair reports whether c is a light/dark pair.
func (c Color) IsPair() bool { return c.paired }

// IsZero reports whether c is the empty Color.
func (c Color) IsZero() bool {
	return !c.paired && c.values[0] == ""
}

// IsTransparent reports whether c is the single Transparent sentinel.
func (c Color) IsTransparent() bool {
	return !c.paired && strings.EqualFold(c.values[0], Transparent)
}

// Light returns the light-mode value.
func (c Color) Light() string { return c.values[0] }

// Dark returns the dark-mode value.
func (c Color) Dark() string {
	if c.paired {
		return c.values[1]
	}
	return c.values[0]
}

// String formats c as "value" or "(light, dark)".
func (c Color) String() string {
	if c.paired {
		return "(" + c.values[0] + ", " + c.values[1] + ")"
	}
	return c.values[0]
}

// Validate checks that every value of c is a parseable color.
// Transparent is accepted only when allowTransparent is true.
func (c Color) Validate(allowTransparent bool) error {
	if c.IsTransparent() {
		if allowTransparent {
			return nil
		}
		return &ColorError{Value: c.String(), Err: ErrTransparentNotAllowed}
	}
	n := 1
	if c.paired {
		n = 2
	}
	for _, v := range c.values[:n] {
		if _, err := ParseRGBA(v); err != nil {
			return err
		}
	}
	return nil
}

// MarshalJSON encodes a single color as a string and a pair as a
// two-element array.
func (c Color) MarshalJSON() ([]byte, error) {
	if c.paired {
		return json.Marshal(c.values[:])
	}
	return json.Marshal(c.values[0])
}

// UnmarshalJSON accepts "color" or ["light", "dark"].
func (c *Color) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*c = Single(s)
		return nil
	}
	var pair []string
	if err := json.Unmarshal(data, &pair); err != nil {
		return &ColorError{Value: string(data), Err: ErrInvalidColor}
	}
	if len(pair) != 2 {
		return &ColorError{Value: string(data), Err: ErrPairLength}
	}
	*c = Pair(pair[0], pair[1])
	return nil
}
