// Package canvas defines the retained drawing surface widgets compose
// their shapes on, and Scene, its in-memory implementation.
//
// Primitives are addressed by tag. A tag names a group: every bulk
// operation (coordinates, style, deletion, z-order) applies to all
// primitives carrying the tag. A single primitive can be addressed through
// its implicit tag, IDTag(id).
package canvas

import "strconv"

// ID identifies a primitive. IDs start at 1 and are never reused.
type ID int

// IDTag returns the implicit tag that addresses only the primitive id.
func IDTag(id ID) string {
	return "#" + strconv.Itoa(int(id))
}

// parseIDTag reverses IDTag.
func parseIDTag(tag string) (ID, bool) {
	if len(tag) < 2 || tag[0] != '#' {
		return 0, false
	}
	n, err := strconv.Atoi(tag[1:])
	if err != nil || n <= 0 {
		return 0, false
	}
	return ID(n), true
}

// Kind is the primitive type.
type Kind uint8

const (
	// KindPolygon is a closed polygon: x0 y0 x1 y1 ….
	KindPolygon Kind = iota
	// KindRect is an axis-aligned rectangle: x0 y0 x1 y1.
	KindRect
	// KindOval is an ellipse inscribed in its bounding box: x0 y0 x1 y1.
	KindOval
	// KindLine is an open polyline: x0 y0 x1 y1 ….
	KindLine
	// KindText is a text item anchored at its center: x y.
	KindText
	// KindGlyphCircle is a circle drawn with a shapes-font glyph,
	// anchored at its center: x y. See Scene.CreateGlyphCircle.
	KindGlyphCircle
)

var kindNames = [...]string{"polygon", "rect", "oval", "line", "text", "glyph-circle"}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// JoinStyle is the outline join of polygons and lines.
type JoinStyle uint8

const (
	JoinMiter JoinStyle = iota
	JoinRound
	JoinBevel
)

// CapStyle is the end cap of lines.
type CapStyle uint8

const (
	CapButt CapStyle = iota
	CapRound
	CapSquare
)

// Style is the paint state of a primitive. Colors are concrete color
// strings; the empty string means "not painted".
type Style struct {
	Fill    string
	Outline string
	Width   float64
	Join    JoinStyle
	Cap     CapStyle

	// Text items and glyph circles.
	Text     string
	FontSize float64
	Angle    float64
}

// StyleOption updates part of a Style.
type StyleOption func(*Style)

// Fill sets the fill color.
func Fill(c string) StyleOption { return func(s *Style) { s.Fill = c } }

// Outline sets the outline color. Glyph circles ignore it.
func Outline(c string) StyleOption { return func(s *Style) { s.Outline = c } }

// Width sets the outline or line width.
func Width(w float64) StyleOption { return func(s *Style) { s.Width = w } }

// Join sets the join style.
func Join(j JoinStyle) StyleOption { return func(s *Style) { s.Join = j } }

// Cap sets the cap style.
func Cap(c CapStyle) StyleOption { return func(s *Style) { s.Cap = c } }

// Text sets the text of a text item.
func Text(t string) StyleOption { return func(s *Style) { s.Text = t } }

// FontSize sets the pixel size of a text item.
func FontSize(px float64) StyleOption { return func(s *Style) { s.FontSize = px } }

// Item is a snapshot of one primitive.
type Item struct {
	ID     ID
	Kind   Kind
	Coords []float64
	Style  Style
	Tags   []string
}

// Canvas is the retained drawing surface the shape engine writes to.
// Implementations need not be safe for concurrent use; callers drive a
// canvas from one goroutine.
type Canvas interface {
	// Create adds a primitive on top of the display list.
	Create(kind Kind, coords []float64, style Style, tags ...string) ID

	// CreateGlyphCircle adds a circle of radius r centered at (x, y),
	// drawn with a shapes-font glyph rotated by angle degrees.
	CreateGlyphCircle(x, y, r, angle float64, tags ...string) ID

	// FindByTag returns the primitives carrying tag in creation order.
	FindByTag(tag string) []ID

	// SetCoords replaces the coordinates of every primitive under tag.
	// For glyph circles a third value sets the radius.
	SetCoords(tag string, coords ...float64)

	// SetStyle applies opts to every primitive under tag.
	SetStyle(tag string, opts ...StyleOption)

	// Delete removes every primitive carrying any of tags.
	Delete(tags ...string)

	// Raise moves the primitives under tag to the top of the display
	// list, keeping their relative order.
	Raise(tag string)

	// Lower moves the primitives under tag to the bottom of the display
	// list, keeping their relative order.
	Lower(tag string)

	// Tags returns the tags of id, or nil if id does not exist.
	Tags(id ID) []string

	// Item returns a snapshot of id.
	Item(id ID) (Item, bool)
}
