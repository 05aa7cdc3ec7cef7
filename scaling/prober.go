package scaling

import (
	"github.com/gogpu/ggtk/host"
	"github.com/gogpu/ggtk/internal/osprobe"
)

// Prober reports the DPI scaling of the monitor a window is on, as a
// factor of 96 dpi (1.0 = 100 %).
type Prober interface {
	DPIScaling(w host.Window) (float64, error)
}

// ProberFunc adapts a function to Prober.
type ProberFunc func(w host.Window) (float64, error)

// DPIScaling implements Prober.
func (f ProberFunc) DPIScaling(w host.Window) (float64, error) { return f(w) }

// SystemProber queries the platform through the window's native handle.
// macOS scales windows itself and always reports 1.
type SystemProber struct{}

// DPIScaling implements Prober.
func (SystemProber) DPIScaling(w host.Window) (float64, error) {
	return osprobe.WindowScaling(w.Handle())
}
