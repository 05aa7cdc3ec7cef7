package theme

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"sync"
)

// Theme maps a widget category ("Button", "Slider", …) and a role
// ("fg_color", "corner_radius", …) to a color or a number.
//
// A Theme is immutable after loading and safe for concurrent use.
type Theme struct {
	Name string

	colors  map[string]map[string]Color
	numbers map[string]map[string]float64
}

// Load decodes a JSON theme:
//
//	{
//	  "Button": {"corner_radius": 6, "fg_color": ["#3B8ED0", "#1F6AA5"]},
//	  "Window": {"fg_color": ["gray92", "gray14"]}
//	}
//
// Roles whose values are neither numbers nor colors (e.g. nested font
// descriptions) are ignored.
func Load(r io.Reader) (*Theme, error) {
	var raw map[string]map[string]json.RawMessage
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("theme: decode: %w", err)
	}
	if len(raw) == 0 {
		return nil, ErrEmptyTheme
	}

	t := &Theme{
		colors:  make(map[string]map[string]Color, len(raw)),
		numbers: make(map[string]map[string]float64, len(raw)),
	}
	for category, roles := range raw {
		t.colors[category] = make(map[string]Color)
		t.numbers[category] = make(map[string]float64)
		for role, value := range roles {
			var n float64
			if err := json.Unmarshal(value, &n); err == nil {
				t.numbers[category][role] = n
				continue
			}
			var c Color
			if err := json.Unmarshal(value, &c); err == nil {
				t.colors[category][role] = c
			}
		}
	}
	return t, nil
}

// LoadFile reads a JSON theme from path. The theme is named after the file.
func LoadFile(path string) (*Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("theme: %w", err)
	}
	t, err := Load(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w (%s)", err, path)
	}
	t.Name = path
	return t, nil
}

//go:embed themes/blue.json
var blueTheme []byte

var (
	defaultOnce  sync.Once
	defaultTheme *Theme
)

// Default returns the built-in "blue" theme.
func Default() *Theme {
	defaultOnce.Do(func() {
		t, err := Load(bytes.NewReader(blueTheme))
		if err != nil {
			panic("theme: built-in theme is invalid: " + err.Error())
		}
		t.Name = "blue"
		defaultTheme = t
	})
	return defaultTheme
}

// Color returns the color for category/role, or the zero Color.
func (t *Theme) Color(category, role string) Color {
	c, _ := t.LookupColor(category, role)
	return c
}

// LookupColor returns the color for category/role and whether it exists.
func (t *Theme) LookupColor(category, role string) (Color, bool) {
	c, ok := t.colors[category][role]
	return c, ok
}

// Float returns the number for category/role, or 0.
func (t *Theme) Float(category, role string) float64 {
	n, _ := t.LookupFloat(category, role)
	return n
}

// LookupFloat returns the number for category/role and whether it exists.
func (t *Theme) LookupFloat(category, role string) (float64, bool) {
	n, ok := t.numbers[category][role]
	return n, ok
}

// Categories returns the sorted category names.
func (t *Theme) Categories() []string {
	names := make([]string, 0, len(t.colors))
	for name := range t.colors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Validate checks every color of the theme. Roles named "fg_color",
// "bg_color" and "border_color" may be Transparent; all others must be
// opaque colors.
func (t *Theme) Validate() error {
	for _, category := range t.Categories() {
		for role, c := range t.colors[category] {
			allowTransparent := role == "fg_color" || role == "bg_color" || role == "border_color"
			if err := c.Validate(allowTransparent); err != nil {
				return fmt.Errorf("theme: %s.%s: %w", category, role, err)
			}
		}
	}
	return nil
}
