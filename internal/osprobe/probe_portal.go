//go:build linux || freebsd || netbsd || openbsd

package osprobe

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync/atomic"

	"github.com/godbus/dbus/v5"
)

const (
	portalDest      = "org.freedesktop.portal.Desktop"
	portalPath      = dbus.ObjectPath("/org/freedesktop/portal/desktop")
	portalReadOne   = "org.freedesktop.portal.Settings.ReadOne"
	portalRead      = "org.freedesktop.portal.Settings.Read"
	appearanceNS    = "org.freedesktop.appearance"
	colorSchemeKey  = "color-scheme"
	gnomeInterface  = "org.gnome.desktop.interface"
	textScalingKey  = "text-scaling-factor"
	colorSchemeDark = 1

	unknownMethod = "org.freedesktop.DBus.Error.UnknownMethod"
)

var (
	sessionBus  = cached[*dbus.Conn]{ttl: retryAfter, failTTL: retryAfter}
	colorScheme = cached[dbus.Variant]{ttl: resultTTL, failTTL: retryAfter}
	textScaling = cached[dbus.Variant]{ttl: resultTTL, failTTL: retryAfter}

	// noReadOne is set once the portal rejects ReadOne as unknown.
	noReadOne atomic.Bool
)

// DarkMode reads the freedesktop color-scheme setting through the desktop
// portal. 1 means prefer dark; 0 (no preference) and 2 (prefer light) are
// light.
func DarkMode() (bool, error) {
	v, err := colorScheme.get(func() (dbus.Variant, error) {
		return readSetting(appearanceNS, colorSchemeKey)
	})
	if err != nil {
		return false, err
	}
	return isDarkScheme(v)
}

// WindowScaling returns GDK_SCALE when set, otherwise the desktop's text
// scaling factor. X11 and Wayland scale per output, not per window, so the
// handle is not used.
func WindowScaling(uintptr) (float64, error) {
	if f, ok := envScale(os.Getenv("GDK_SCALE")); ok {
		return f, nil
	}
	v, err := textScaling.get(func() (dbus.Variant, error) {
		return readSetting(gnomeInterface, textScalingKey)
	})
	if err != nil {
		return 1, err
	}
	f, ok := v.Value().(float64)
	if !ok || f <= 0 {
		return 1, fmt.Errorf("osprobe: %s has type %s", textScalingKey, v.Signature())
	}
	return f, nil
}

// EnableDPIAwareness does nothing on this platform.
func EnableDPIAwareness() error { return nil }

// WindowsBuild returns 0 on this platform.
func WindowsBuild() int { return 0 }

// readSetting queries one portal setting. ReadOne is tried first; portals
// older than version 2 only implement Read, which wraps the value in an
// extra variant. Both calls share one deadline.
func readSetting(namespace, key string) (dbus.Variant, error) {
	conn, err := sessionBus.get(dbus.SessionBus)
	if err != nil {
		return dbus.Variant{}, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	obj := conn.Object(portalDest, portalPath)

	ctx, cancel := context.WithTimeout(context.Background(), callTimeout)
	defer cancel()

	var v dbus.Variant
	if !noReadOne.Load() {
		err := obj.CallWithContext(ctx, portalReadOne, 0, namespace, key).Store(&v)
		if err == nil {
			return unwrapVariant(v), nil
		}
		if !isUnknownMethod(err) {
			return dbus.Variant{}, fmt.Errorf("osprobe: read %s %s: %w", namespace, key, err)
		}
		noReadOne.Store(true)
	}
	if err := obj.CallWithContext(ctx, portalRead, 0, namespace, key).Store(&v); err != nil {
		return dbus.Variant{}, fmt.Errorf("osprobe: read %s %s: %w", namespace, key, err)
	}
	return unwrapVariant(v), nil
}

func isUnknownMethod(err error) bool {
	var derr dbus.Error
	if errors.As(err, &derr) {
		return derr.Name == unknownMethod
	}
	var pderr *dbus.Error
	return errors.As(err, &pderr) && pderr.Name == unknownMethod
}

func unwrapVariant(v dbus.Variant) dbus.Variant {
	for {
		inner, ok := v.Value().(dbus.Variant)
		if !ok {
			return v
		}
		v = inner
	}
}

func isDarkScheme(v dbus.Variant) (bool, error) {
	switch n := v.Value().(type) {
	case uint32:
		return n == colorSchemeDark, nil
	case int32:
		return n == colorSchemeDark, nil
	default:
		return false, fmt.Errorf("osprobe: %s has type %s", colorSchemeKey, v.Signature())
	}
}

func envScale(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f <= 0 {
		return 0, false
	}
	return f, true
}
