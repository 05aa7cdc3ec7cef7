package theme

import (
	"errors"
	"fmt"
	"image/color"
	"testing"
)

func TestParseRGBA(t *testing.T) {
	tests := []struct {
		in   string
		want color.NRGBA
	}{
		{"#fff", color.NRGBA{255, 255, 255, 255}},
		{"#f008", color.NRGBA{255, 0, 0, 136}},
		{"#3B8ED0", color.NRGBA{0x3B, 0x8E, 0xD0, 255}},
		{"#3b8ed080", color.NRGBA{0x3B, 0x8E, 0xD0, 0x80}},
		{"white", color.NRGBA{255, 255, 255, 255}},
		{"Dark Blue", color.NRGBA{0, 0, 139, 255}},
		{"gray", color.NRGBA{128, 128, 128, 255}},
		{"gray0", color.NRGBA{0, 0, 0, 255}},
		{"gray14", color.NRGBA{36, 36, 36, 255}},
		{"grey92", color.NRGBA{235, 235, 235, 255}},
		{"gray100", color.NRGBA{255, 255, 255, 255}},
		{"transparent", color.NRGBA{}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseRGBA(tt.in)
			if err != nil {
				t.Fatalf("ParseRGBA(%q) error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseRGBA(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseRGBAErrors(t *testing.T) {
	tests := []struct {
		in   string
		want error
	}{
		{"#", ErrInvalidColor},
		{"#12", ErrInvalidColor},
		{"#12345", ErrInvalidColor},
		{"#gggggg", ErrInvalidColor},
		{"gray101", ErrUnknownColorName},
		{"grayish", ErrUnknownColorName},
		{"", ErrUnknownColorName},
	}
	for _, tt := range tests {
		_, err := ParseRGBA(tt.in)
		if !errors.Is(err, tt.want) {
			t.Errorf("ParseRGBA(%q) = %v, want %v", tt.in, err, tt.want)
		}
		var ce *ColorError
		if !errors.As(err, &ce) || ce.Value != tt.in {
			t.Errorf("ParseRGBA(%q): error does not carry the value: %v", tt.in, err)
		}
	}
}

func TestRGBACacheEviction(t *testing.T) {
	c := newRGBACache(8)
	for i := 0; i < 9; i++ {
		if _, err := c.getOrParse(fmt.Sprintf("gray%d", i)); err != nil {
			t.Fatal(err)
		}
	}
	if got := c.len(); got != 6 {
		t.Fatalf("len after eviction = %d, want 6", got)
	}
	// The newest entries survive.
	c.mu.Lock()
	_, ok := c.entries["gray8"]
	_, gone := c.entries["gray0"]
	c.mu.Unlock()
	if !ok || gone {
		t.Errorf("eviction kept the wrong entries (gray8=%v, gray0=%v)", ok, gone)
	}
}

func TestRGBACacheKeepsRecentlyUsed(t *testing.T) {
	c := newRGBACache(4)
	for _, s := range []string{"red", "green", "blue", "white"} {
		_, _ = c.getOrParse(s)
	}
	_, _ = c.getOrParse("red") // touch
	_, _ = c.getOrParse("black")

	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.entries["red"]; !ok {
		t.Error("recently used entry was evicted")
	}
	if _, ok := c.entries["green"]; ok {
		t.Error("least recently used entry survived")
	}
}

func BenchmarkParseRGBA(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = ParseRGBA("#3B8ED0")
	}
}
