// Package config reads end-user toolkit settings from TOML or YAML files.
//
// A settings file only names what it changes; everything else keeps the
// value of Default:
//
//	appearance = "dark"
//	method = "polygon"
//
//	[scaling]
//	widget = 1.25
//
// Watch reloads a file whenever it is written.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/cases"
	"gopkg.in/yaml.v3"

	"github.com/gogpu/ggtk/draw"
)

// Format is a settings file syntax.
type Format string

const (
	TOML Format = "toml"
	YAML Format = "yaml"
)

// FormatOf picks the format from the file extension.
func FormatOf(path string) (Format, error) {
	switch cases.Fold().String(filepath.Ext(path)) {
	case ".toml":
		return TOML, nil
	case ".yaml", ".yml":
		return YAML, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, path)
}

// Settings are the user-tunable toolkit settings.
type Settings struct {
	// Appearance is "light", "dark" or "system".
	Appearance string `toml:"appearance" yaml:"appearance"`

	// Method names the drawing backend. Empty picks the platform default.
	Method string `toml:"method" yaml:"method"`

	// Theme is the path of a theme JSON file. Empty uses the built-in
	// theme. Relative paths are resolved against the settings file.
	Theme string `toml:"theme" yaml:"theme"`

	Scaling Scaling `toml:"scaling" yaml:"scaling"`
}

// Scaling holds the user scaling multipliers.
type Scaling struct {
	Widget  float64 `toml:"widget" yaml:"widget"`
	Spacing float64 `toml:"spacing" yaml:"spacing"`
	Window  float64 `toml:"window" yaml:"window"`

	// DeactivateDPIAwareness ignores the monitor DPI.
	DeactivateDPIAwareness bool `toml:"deactivate_dpi_awareness" yaml:"deactivate_dpi_awareness"`
}

// Default returns the settings used when no file is given.
func Default() Settings {
	return Settings{
		Appearance: "system",
		Scaling:    Scaling{Widget: 1, Spacing: 1, Window: 1},
	}
}

// Decode reads settings in format f from r over Default and validates
// them. Unknown keys are errors.
func Decode(r io.Reader, f Format) (Settings, error) {
	s := Default()
	switch f {
	case TOML:
		dec := toml.NewDecoder(r)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&s); err != nil {
			return Settings{}, fmt.Errorf("%w: %w", ErrDecode, err)
		}
	case YAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(&s); err != nil && !errors.Is(err, io.EOF) {
			return Settings{}, fmt.Errorf("%w: %w", ErrDecode, err)
		}
	default:
		return Settings{}, fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// Load reads the settings file at path. The format follows the file
// extension.
func Load(path string) (Settings, error) {
	f, err := FormatOf(path)
	if err != nil {
		return Settings{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	s, err := Decode(bytes.NewReader(data), f)
	if err != nil {
		return Settings{}, fmt.Errorf("config: %s: %w", path, err)
	}
	if s.Theme != "" && !filepath.IsAbs(s.Theme) {
		s.Theme = filepath.Join(filepath.Dir(path), s.Theme)
	}
	return s, nil
}

// Validate checks names and multipliers.
func (s Settings) Validate() error {
	switch cases.Fold().String(strings.TrimSpace(s.Appearance)) {
	case "light", "dark", "system":
	default:
		return fmt.Errorf("%w: appearance %q", ErrInvalid, s.Appearance)
	}
	if s.Method != "" {
		if _, err := draw.ParseMethod(s.Method); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalid, err)
		}
	}
	for _, v := range []struct {
		name string
		val  float64
	}{
		{"widget", s.Scaling.Widget},
		{"spacing", s.Scaling.Spacing},
		{"window", s.Scaling.Window},
	} {
		if !(v.val > 0) {
			return fmt.Errorf("%w: scaling.%s = %v, must be positive", ErrInvalid, v.name, v.val)
		}
	}
	return nil
}
