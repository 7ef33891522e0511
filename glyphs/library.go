// Package glyphs holds the per-character outline table the toolpath is
// generated from.
package glyphs

import (
	"fmt"
	"io"
	"maps"
	"slices"
	"unicode/utf8"

	"seehuhn.de/go/geom/vec"

	"github.com/ByLCY/penglyph/dsl"
	"github.com/ByLCY/penglyph/editor"
	"github.com/ByLCY/penglyph/layout"
)

// Library maps characters to paths in a fixed source frame. A Cartesian
// copy of every glyph is built when the library is created.
type Library struct {
	frame     layout.Frame
	source    map[rune][][]editor.Point
	cartesian map[rune][][]vec.Vec2
}

// New builds a library from source-frame entries. The entries are copied.
func New(frame layout.Frame, entries map[rune][][]editor.Point) *Library {
	l := &Library{
		frame:     frame,
		source:    make(map[rune][][]editor.Point, len(entries)),
		cartesian: make(map[rune][][]vec.Vec2, len(entries)),
	}
	for r, paths := range entries {
		l.add(r, paths)
	}
	return l
}

func (l *Library) add(r rune, paths [][]editor.Point) {
	src := make([][]editor.Point, len(paths))
	cart := make([][]vec.Vec2, len(paths))
	for i, pts := range paths {
		src[i] = slices.Clone(pts)
		cart[i] = make([]vec.Vec2, len(pts))
		for j, p := range pts {
			cart[i][j] = layout.InvertY(vec.Vec2{X: float64(p.X), Y: float64(p.Y)}, l.frame.Height)
		}
	}
	l.source[r] = src
	l.cartesian[r] = cart
}

// Load parses a library file. name is only used in error messages.
func Load(name string, r io.Reader) (*Library, error) {
	doc, err := dsl.ParseLibrary(name, r)
	if err != nil {
		return nil, fmt.Errorf("parse glyph library %s: %w", name, err)
	}
	return FromDocument(doc)
}

// FromDocument validates a parsed library: keys are single characters,
// each character appears once and the frame is not degenerate.
func FromDocument(doc *dsl.Library) (*Library, error) {
	frame := layout.DefaultFrame
	if doc.Frame != nil {
		if doc.Frame.Width <= 0 || doc.Frame.Height <= 0 {
			return nil, fmt.Errorf("%s: frame must be positive, got %dx%d", doc.Frame.Pos, doc.Frame.Width, doc.Frame.Height)
		}
		frame = layout.Frame{Width: float64(doc.Frame.Width), Height: float64(doc.Frame.Height)}
	}

	entries := make(map[rune][][]editor.Point, len(doc.Entries))
	for _, e := range doc.Entries {
		key := string(e.Key)
		if utf8.RuneCountInString(key) != 1 {
			return nil, fmt.Errorf("%s: glyph key %q must be a single character", e.Pos, key)
		}
		r, _ := utf8.DecodeRuneInString(key)
		if _, dup := entries[r]; dup {
			return nil, fmt.Errorf("%s: duplicate glyph %q", e.Pos, key)
		}
		paths := editor.PathsFromList(e.Paths)
		pts := make([][]editor.Point, len(paths))
		for i, p := range paths {
			pts[i] = p.Points
		}
		entries[r] = pts
	}
	return New(frame, entries), nil
}

// Merge returns a new library holding l's glyphs overlaid with other's.
// Both must share the same frame.
func (l *Library) Merge(other *Library) (*Library, error) {
	if l.frame != other.frame {
		return nil, fmt.Errorf("cannot merge glyph libraries with frames %gx%g and %gx%g",
			l.frame.Width, l.frame.Height, other.frame.Width, other.frame.Height)
	}
	entries := maps.Clone(l.source)
	maps.Copy(entries, other.source)
	return New(l.frame, entries), nil
}

// Frame returns the source bounding box.
func (l *Library) Frame() layout.Frame { return l.frame }

// Has reports whether r has an entry.
func (l *Library) Has(r rune) bool {
	_, ok := l.source[r]
	return ok
}

// Source returns the paths of r in the source frame.
func (l *Library) Source(r rune) ([][]editor.Point, bool) {
	paths, ok := l.source[r]
	return paths, ok
}

// Cartesian returns the paths of r with the y axis pointing up.
func (l *Library) Cartesian(r rune) ([][]vec.Vec2, bool) {
	paths, ok := l.cartesian[r]
	return paths, ok
}

// Runes lists the supported characters in ascending order.
func (l *Library) Runes() []rune {
	return slices.Sorted(maps.Keys(l.source))
}
