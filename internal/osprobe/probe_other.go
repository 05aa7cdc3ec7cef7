//go:build !windows && !darwin && !linux && !freebsd && !netbsd && !openbsd

package osprobe

// DarkMode reports light on platforms without a known preference store.
func DarkMode() (bool, error) { return false, nil }

// WindowScaling returns 1.
func WindowScaling(uintptr) (float64, error) { return 1, nil }

// EnableDPIAwareness does nothing.
func EnableDPIAwareness() error { return nil }

// WindowsBuild returns 0.
func WindowsBuild() int { return 0 }
