package appearance

import (
	"github.com/gogpu/ggtk/internal/osprobe"
	"github.com/gogpu/ggtk/theme"
)

// Detector reports the appearance mode the operating system prefers.
type Detector interface {
	Detect() (theme.Mode, error)
}

// DetectorFunc adapts a function to Detector.
type DetectorFunc func() (theme.Mode, error)

// Detect implements Detector.
func (f DetectorFunc) Detect() (theme.Mode, error) { return f() }

// SystemDetector queries the platform: the personalization registry key on
// Windows, the desktop portal color-scheme setting on Linux and the
// AppleInterfaceStyle default on macOS.
type SystemDetector struct{}

// Detect implements Detector.
func (SystemDetector) Detect() (theme.Mode, error) {
	dark, err := osprobe.DarkMode()
	if err != nil {
		return theme.Light, err
	}
	if dark {
		return theme.Dark, nil
	}
	return theme.Light, nil
}
