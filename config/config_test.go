package config

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestFormatOf(t *testing.T) {
	tests := []struct {
		path    string
		want    Format
		wantErr bool
	}{
		{"ggtk.toml", TOML, false},
		{"dir/ggtk.TOML", TOML, false},
		{"ggtk.yaml", YAML, false},
		{"ggtk.yml", YAML, false},
		{"ggtk.json", "", true},
		{"ggtk", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := FormatOf(tt.path)
			if (err != nil) != tt.wantErr {
				t.Fatalf("FormatOf(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrUnknownFormat) {
				t.Errorf("error %v does not wrap ErrUnknownFormat", err)
			}
			if got != tt.want {
				t.Errorf("FormatOf(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name   string
		format Format
		input  string
		want   Settings
	}{
		{
			name:   "toml",
			format: TOML,
			input: `appearance = "dark"
method = "Font_Shapes"

[scaling]
widget = 1.25
deactivate_dpi_awareness = true
`,
			want: Settings{
				Appearance: "dark",
				Method:     "Font_Shapes",
				Scaling:    Scaling{Widget: 1.25, Spacing: 1, Window: 1, DeactivateDPIAwareness: true},
			},
		},
		{
			name:   "yaml",
			format: YAML,
			input: `appearance: light
scaling:
  spacing: 2
  window: 1.5
`,
			want: Settings{
				Appearance: "light",
				Scaling:    Scaling{Widget: 1, Spacing: 2, Window: 1.5},
			},
		},
		{"empty toml", TOML, "", Default()},
		{"empty yaml", YAML, "", Default()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decode(strings.NewReader(tt.input), tt.format)
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("Decode() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name   string
		format Format
		input  string
		want   error
	}{
		{"unknown toml key", TOML, `colour = "red"`, ErrDecode},
		{"unknown yaml key", YAML, "colour: red\n", ErrDecode},
		{"toml syntax", TOML, `appearance = `, ErrDecode},
		{"bad appearance", TOML, `appearance = "purple"`, ErrInvalid},
		{"bad method", YAML, "method: raytrace\n", ErrInvalid},
		{"zero scaling", TOML, "[scaling]\nwidget = 0\n", ErrInvalid},
		{"negative scaling", YAML, "scaling:\n  window: -1\n", ErrInvalid},
		{"unknown format", Format("ini"), "", ErrUnknownFormat},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tt.input), tt.format)
			if !errors.Is(err, tt.want) {
				t.Errorf("Decode() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestLoadResolvesThemePath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ggtk.toml")
	if err := os.WriteFile(path, []byte(`theme = "themes/green.json"`), 0o600); err != nil {
		t.Fatal(err)
	}
	s, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if want := filepath.Join(dir, "themes", "green.json"); s.Theme != want {
		t.Errorf("Theme = %q, want %q", s.Theme, want)
	}
}

func TestLoadMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Load() error = %v, want ErrNotExist", err)
	}
}

func TestWatch(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ggtk.yaml")
	if err := os.WriteFile(path, []byte("appearance: light\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	got := make(chan Settings, 8)
	done := make(chan error, 1)
	go func() {
		done <- Watch(ctx, path, func(s Settings, err error) {
			if err != nil {
				return
			}
			select {
			case got <- s:
			default:
			}
		})
	}()

	// The watcher is registered asynchronously; keep rewriting until a
	// reload is seen.
	deadline := time.After(5 * time.Second)
	tick := time.NewTicker(50 * time.Millisecond)
	defer tick.Stop()
	for {
		select {
		case s := <-got:
			if s.Appearance != "dark" {
				continue
			}
			cancel()
			if err := <-done; !errors.Is(err, context.Canceled) {
				t.Errorf("Watch() = %v, want context.Canceled", err)
			}
			return
		case <-tick.C:
			if err := os.WriteFile(path, []byte("appearance: dark\n"), 0o600); err != nil {
				t.Fatal(err)
			}
		case <-deadline:
			t.Fatal("no reload within 5s")
		}
	}
}

func TestWatchUnknownFormat(t *testing.T) {
	err := Watch(context.Background(), "settings.ini", func(Settings, error) {})
	if !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("Watch() = %v, want ErrUnknownFormat", err)
	}
}
