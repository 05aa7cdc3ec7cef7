package canvas

import "slices"

// Scene is an in-memory Canvas.
//
// Primitives live in an arena indexed by ID; a tag index gives group
// membership and a separate display list gives z-order (first = bottom).
// Scene is not safe for concurrent use.
type Scene struct {
	glyphs *GlyphTable

	items []*entry // items[id-1], nil once deleted
	tags  map[string][]ID
	order []ID

	created int
	deleted int
}

type entry struct {
	kind   Kind
	coords []float64
	style  Style
	tags   []string
}

// SceneOption configures a Scene.
type SceneOption func(*Scene)

// WithGlyphTable sets the radius → glyph table used for glyph circles.
// The default is FineGlyphTable.
func WithGlyphTable(t *GlyphTable) SceneOption {
	return func(s *Scene) {
		if t != nil {
			s.glyphs = t
		}
	}
}

// NewScene returns an empty scene.
func NewScene(opts ...SceneOption) *Scene {
	s := &Scene{
		glyphs: FineGlyphTable,
		tags:   make(map[string][]ID),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// GlyphTable returns the table used for glyph circles.
func (s *Scene) GlyphTable() *GlyphTable { return s.glyphs }

// Create implements Canvas.
func (s *Scene) Create(kind Kind, coords []float64, style Style, tags ...string) ID {
	e := &entry{
		kind:   kind,
		coords: slices.Clone(coords),
		style:  style,
		tags:   dedupTags(tags),
	}
	s.items = append(s.items, e)
	id := ID(len(s.items))
	for _, t := range e.tags {
		s.tags[t] = append(s.tags[t], id)
	}
	s.order = append(s.order, id)
	s.created++
	return id
}

// CreateGlyphCircle implements Canvas.
func (s *Scene) CreateGlyphCircle(x, y, r, angle float64, tags ...string) ID {
	return s.Create(KindGlyphCircle, []float64{x, y}, Style{
		Text:     string(s.glyphs.Rune(r)),
		FontSize: 2 * r,
		Angle:    angle,
	}, tags...)
}

// FindByTag implements Canvas.
func (s *Scene) FindByTag(tag string) []ID {
	return slices.Clone(s.lookup(tag))
}

// lookup returns the live IDs under tag. The result must not be modified.
func (s *Scene) lookup(tag string) []ID {
	if id, ok := parseIDTag(tag); ok {
		if s.get(id) == nil {
			return nil
		}
		return []ID{id}
	}
	return s.tags[tag]
}

func (s *Scene) get(id ID) *entry {
	if id <= 0 || int(id) > len(s.items) {
		return nil
	}
	return s.items[id-1]
}

// SetCoords implements Canvas.
func (s *Scene) SetCoords(tag string, coords ...float64) {
	for _, id := range s.lookup(tag) {
		e := s.items[id-1]
		if e.kind == KindGlyphCircle && len(coords) >= 2 {
			e.coords = append(e.coords[:0], coords[0], coords[1])
			if len(coords) == 3 {
				e.style.FontSize = 2 * coords[2]
				e.style.Text = string(s.glyphs.Rune(coords[2]))
			}
			continue
		}
		e.coords = append(e.coords[:0], coords...)
	}
}

// SetStyle implements Canvas. Outline changes do not apply to glyph
// circles.
func (s *Scene) SetStyle(tag string, opts ...StyleOption) {
	for _, id := range s.lookup(tag) {
		e := s.items[id-1]
		outline := e.style.Outline
		for _, opt := range opts {
			opt(&e.style)
		}
		if e.kind == KindGlyphCircle {
			e.style.Outline = outline
		}
	}
}

// Delete implements Canvas.
func (s *Scene) Delete(tags ...string) {
	doomed := make(map[ID]struct{})
	for _, tag := range tags {
		for _, id := range s.lookup(tag) {
			doomed[id] = struct{}{}
		}
	}
	if len(doomed) == 0 {
		return
	}
	for id := range doomed {
		e := s.items[id-1]
		for _, t := range e.tags {
			ids := slices.DeleteFunc(s.tags[t], func(x ID) bool { return x == id })
			if len(ids) == 0 {
				delete(s.tags, t)
			} else {
				s.tags[t] = ids
			}
		}
		s.items[id-1] = nil
		s.deleted++
	}
	s.order = slices.DeleteFunc(s.order, func(id ID) bool {
		_, ok := doomed[id]
		return ok
	})
}

// Raise implements Canvas.
func (s *Scene) Raise(tag string) { s.restack(tag, true) }

// Lower implements Canvas.
func (s *Scene) Lower(tag string) { s.restack(tag, false) }

func (s *Scene) restack(tag string, top bool) {
	ids := s.lookup(tag)
	if len(ids) == 0 {
		return
	}
	sel := make(map[ID]struct{}, len(ids))
	for _, id := range ids {
		sel[id] = struct{}{}
	}
	moved := make([]ID, 0, len(ids))
	rest := make([]ID, 0, len(s.order)-len(ids))
	for _, id := range s.order {
		if _, ok := sel[id]; ok {
			moved = append(moved, id)
		} else {
			rest = append(rest, id)
		}
	}
	if top {
		s.order = append(rest, moved...)
	} else {
		s.order = append(moved, rest...)
	}
}

// Tags implements Canvas.
func (s *Scene) Tags(id ID) []string {
	e := s.get(id)
	if e == nil {
		return nil
	}
	return slices.Clone(e.tags)
}

// HasTag reports whether id carries tag.
func (s *Scene) HasTag(id ID, tag string) bool {
	e := s.get(id)
	return e != nil && slices.Contains(e.tags, tag)
}

// Item implements Canvas.
func (s *Scene) Item(id ID) (Item, bool) {
	e := s.get(id)
	if e == nil {
		return Item{}, false
	}
	return e.snapshot(id), true
}

// Items returns snapshots of all live primitives in display order,
// bottom first.
func (s *Scene) Items() []Item {
	out := make([]Item, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.items[id-1].snapshot(id))
	}
	return out
}

// Order returns the display list, bottom first.
func (s *Scene) Order() []ID { return slices.Clone(s.order) }

// Len returns the number of live primitives.
func (s *Scene) Len() int { return len(s.order) }

// Stats counts primitive churn over the scene's lifetime.
type Stats struct {
	Created int
	Deleted int
	Live    int
}

// Stats returns the creation and deletion counters.
func (s *Scene) Stats() Stats {
	return Stats{Created: s.created, Deleted: s.deleted, Live: len(s.order)}
}

func (e *entry) snapshot(id ID) Item {
	return Item{
		ID:     id,
		Kind:   e.kind,
		Coords: slices.Clone(e.coords),
		Style:  e.style,
		Tags:   slices.Clone(e.tags),
	}
}

func dedupTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		if t != "" && !slices.Contains(out, t) {
			out = append(out, t)
		}
	}
	return out
}

var _ Canvas = (*Scene)(nil)
