//go:build windows

package osprobe

import (
	"errors"
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"
	"golang.org/x/sys/windows/registry"
)

const (
	personalizeKey = `Software\Microsoft\Windows\CurrentVersion\Themes\Personalize`

	monitorDefaultToNearest = 2
	mdtEffectiveDPI         = 0
	perMonitorDPIAware      = 2

	eAccessDenied = 0x80070005
)

var (
	user32 = windows.NewLazySystemDLL("user32.dll")
	shcore = windows.NewLazySystemDLL("shcore.dll")

	procMonitorFromWindow      = user32.NewProc("MonitorFromWindow")
	procGetDpiForMonitor       = shcore.NewProc("GetDpiForMonitor")
	procSetProcessDpiAwareness = shcore.NewProc("SetProcessDpiAwareness")
)

// DarkMode reads AppsUseLightTheme from the current user's personalization
// settings. A missing value means light.
func DarkMode() (bool, error) {
	k, err := registry.OpenKey(registry.CURRENT_USER, personalizeKey, registry.QUERY_VALUE)
	if err != nil {
		return false, fmt.Errorf("osprobe: open personalize key: %w", err)
	}
	defer k.Close()

	v, _, err := k.GetIntegerValue("AppsUseLightTheme")
	if err != nil {
		if errors.Is(err, registry.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("osprobe: read AppsUseLightTheme: %w", err)
	}
	return v == 0, nil
}

// WindowScaling returns the effective DPI of the monitor nearest to the
// window, divided by 96. It needs Windows 8.1 or later.
func WindowScaling(handle uintptr) (float64, error) {
	if handle == 0 {
		return 1, fmt.Errorf("%w: no window handle", ErrUnavailable)
	}
	if err := procGetDpiForMonitor.Find(); err != nil {
		return 1, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	mon, _, _ := procMonitorFromWindow.Call(handle, monitorDefaultToNearest)
	if mon == 0 {
		return 1, fmt.Errorf("%w: no monitor for window", ErrUnavailable)
	}

	var x, y uint32
	hr, _, _ := procGetDpiForMonitor.Call(mon, mdtEffectiveDPI,
		uintptr(unsafe.Pointer(&x)), uintptr(unsafe.Pointer(&y)))
	if hr != 0 {
		return 1, fmt.Errorf("osprobe: GetDpiForMonitor: HRESULT %#x", uint32(hr))
	}
	return dpiScale(x, y), nil
}

// EnableDPIAwareness makes the process per-monitor DPI aware. Calling it
// after the awareness was already set (by the manifest or an earlier
// call) is not an error.
func EnableDPIAwareness() error {
	if err := procSetProcessDpiAwareness.Find(); err != nil {
		return nil
	}
	hr, _, _ := procSetProcessDpiAwareness.Call(perMonitorDPIAware)
	if hr != 0 && uint32(hr) != eAccessDenied {
		return fmt.Errorf("osprobe: SetProcessDpiAwareness: HRESULT %#x", uint32(hr))
	}
	return nil
}

// WindowsBuild returns the OS build number, e.g. 22631.
func WindowsBuild() int {
	return int(windows.RtlGetVersion().BuildNumber)
}
