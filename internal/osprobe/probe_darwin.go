//go:build darwin

package osprobe

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

var interfaceStyle = cached[bool]{ttl: resultTTL, failTTL: retryAfter}

// DarkMode reads the global AppleInterfaceStyle default. The key is absent
// in light mode, which makes defaults exit non-zero.
func DarkMode() (bool, error) {
	return interfaceStyle.get(readInterfaceStyle)
}

func readInterfaceStyle() (bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), callTimeout)
	defer cancel()

	out, err := exec.CommandContext(ctx, "defaults", "read", "-g", "AppleInterfaceStyle").Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return false, nil
		}
		return false, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return strings.EqualFold(strings.TrimSpace(string(out)), "dark"), nil
}

// WindowScaling returns 1: AppKit scales backing stores itself and reports
// sizes in points.
func WindowScaling(uintptr) (float64, error) { return 1, nil }

// EnableDPIAwareness does nothing on macOS.
func EnableDPIAwareness() error { return nil }

// WindowsBuild returns 0 on macOS.
func WindowsBuild() int { return 0 }
