package theme

import (
	"image/color"
	"strconv"
	"strings"
	"sync"

	"golang.org/x/image/colornames"
)

// ParseRGBA converts a concrete color string to a non-premultiplied color.
//
// Accepted forms:
//   - "#rgb", "#rgba", "#rrggbb", "#rrggbbaa"
//   - SVG/X11 names, case and spaces ignored ("DarkBlue", "dark blue")
//   - the X11 gray ramp "gray0" … "gray100" (also "grey")
//   - Transparent, which parses to a fully transparent color
//
// Results are memoized; ParseRGBA is safe for concurrent use.
func ParseRGBA(s string) (color.NRGBA, error) {
	return parsed.getOrParse(s)
}

func parseRGBA(s string) (color.NRGBA, error) {
	if strings.HasPrefix(s, "#") {
		return parseHexColor(s)
	}
	name := strings.ToLower(strings.ReplaceAll(s, " ", ""))
	if name == Transparent {
		return color.NRGBA{}, nil
	}
	if c, ok := colornames.Map[name]; ok {
		return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}, nil
	}
	if v, ok := grayLevel(name); ok {
		return color.NRGBA{R: v, G: v, B: v, A: 255}, nil
	}
	return color.NRGBA{}, &ColorError{Value: s, Err: ErrUnknownColorName}
}

// grayLevel maps "grayN"/"greyN" (0 ≤ N ≤ 100) to its X11 intensity.
func grayLevel(name string) (uint8, bool) {
	var digits string
	switch {
	case strings.HasPrefix(name, "gray"):
		digits = name[4:]
	case strings.HasPrefix(name, "grey"):
		digits = name[4:]
	default:
		return 0, false
	}
	n, err := strconv.Atoi(digits)
	if err != nil || n < 0 || n > 100 {
		return 0, false
	}
	return uint8(float64(n)*255/100 + 0.5), true
}

// parseHexColor parses the four hex notations. Short forms repeat each
// digit (0xf → 0xff).
func parseHexColor(s string) (color.NRGBA, error) {
	hex := s[1:]
	var r, g, b uint32
	a := uint32(255)
	ok := true

	switch len(hex) {
	case 3:
		ok = hexDigits(hex[0:1], &r) && hexDigits(hex[1:2], &g) && hexDigits(hex[2:3], &b)
		r, g, b = r*17, g*17, b*17
	case 4:
		ok = hexDigits(hex[0:1], &r) && hexDigits(hex[1:2], &g) && hexDigits(hex[2:3], &b) && hexDigits(hex[3:4], &a)
		r, g, b, a = r*17, g*17, b*17, a*17
	case 6:
		ok = hexDigits(hex[0:2], &r) && hexDigits(hex[2:4], &g) && hexDigits(hex[4:6], &b)
	case 8:
		ok = hexDigits(hex[0:2], &r) && hexDigits(hex[2:4], &g) && hexDigits(hex[4:6], &b) && hexDigits(hex[6:8], &a)
	default:
		ok = false
	}
	if !ok {
		return color.NRGBA{}, &ColorError{Value: s, Err: ErrInvalidColor}
	}
	return color.NRGBA{R: uint8(r), G: uint8(g), B: uint8(b), A: uint8(a)}, nil
}

// hexDigits accumulates s into val and reports whether every byte was a
// hex digit.
func hexDigits(s string, val *uint32) bool {
	*val = 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		*val *= 16
		switch {
		case '0' <= c && c <= '9':
			*val += uint32(c - '0')
		case 'a' <= c && c <= 'f':
			*val += uint32(c - 'a' + 10)
		case 'A' <= c && c <= 'F':
			*val += uint32(c - 'A' + 10)
		default:
			return false
		}
	}
	return true
}

// parseCacheLimit bounds the memoized color strings. Themes use a few
// dozen distinct colors; user code may generate more.
const parseCacheLimit = 512

var parsed = newRGBACache(parseCacheLimit)

// rgbaCache memoizes ParseRGBA results with a soft limit. When the limit
// is exceeded the least recently used quarter is evicted.
type rgbaCache struct {
	mu      sync.Mutex
	entries map[string]*rgbaEntry
	limit   int
	tick    int64
}

type rgbaEntry struct {
	c     color.NRGBA
	err   error
	atime int64
}

func newRGBACache(limit int) *rgbaCache {
	return &rgbaCache{entries: make(map[string]*rgbaEntry), limit: limit}
}

func (c *rgbaCache) getOrParse(s string) (color.NRGBA, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.tick++
	if e, ok := c.entries[s]; ok {
		e.atime = c.tick
		return e.c, e.err
	}
	rgba, err := parseRGBA(s)
	c.entries[s] = &rgbaEntry{c: rgba, err: err, atime: c.tick}
	if len(c.entries) > c.limit {
		c.evict()
	}
	return rgba, err
}

func (c *rgbaCache) len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// evict drops the oldest entries down to three quarters of the limit.
// Caller must hold c.mu.
func (c *rgbaCache) evict() {
	target := c.limit * 3 / 4
	for len(c.entries) > target {
		var oldest string
		var oldestTime int64 = -1
		for k, e := range c.entries {
			if oldestTime < 0 || e.atime < oldestTime {
				oldest, oldestTime = k, e.atime
			}
		}
		delete(c.entries, oldest)
	}
}
