package toolpath

import (
	"errors"
	"fmt"

	"seehuhn.de/go/geom/vec"

	"github.com/ByLCY/penglyph/glyphs"
	"github.com/ByLCY/penglyph/layout"
)

// ErrUnsupportedGlyph matches any UnsupportedGlyphError.
var ErrUnsupportedGlyph = errors.New("unsupported glyph")

// UnsupportedGlyphError reports a character missing from the library.
// Offset is the rune index within the requested text.
type UnsupportedGlyphError struct {
	Rune   rune
	Offset int
}

func (e *UnsupportedGlyphError) Error() string {
	return fmt.Sprintf("unsupported glyph %q at position %d", e.Rune, e.Offset)
}

func (e *UnsupportedGlyphError) Is(target error) bool { return target == ErrUnsupportedGlyph }

// Options configures glyph placement, in millimetres.
type Options struct {
	Size    layout.Size // physical size of the glyph frame
	Advance float64     // horizontal cursor step after every character
}

// DefaultOptions draws 2 mm glyphs on a 2 mm pitch.
func DefaultOptions() Options {
	return Options{
		Size:    layout.Size{Width: 2, Height: 2},
		Advance: 2,
	}
}

// Generator emits commands for text drawn from a glyph library. It holds no
// mutable state and may be shared.
type Generator struct {
	lib  *glyphs.Library
	opts Options
}

// NewGenerator returns a generator for lib. Options are used as given;
// start from DefaultOptions for the standard 2 mm layout. A zero Advance
// draws every character over the first.
func NewGenerator(lib *glyphs.Library, opts Options) *Generator {
	return &Generator{lib: lib, opts: opts}
}

// Validate reports options that cannot place a glyph.
func (o Options) Validate() error {
	if o.Size.Width <= 0 || o.Size.Height <= 0 {
		return fmt.Errorf("glyph size must be positive, got %gx%g mm", o.Size.Width, o.Size.Height)
	}
	return nil
}

// Options returns the options the generator was built with.
func (g *Generator) Options() Options { return g.opts }

// Glyph emits the commands for r with its frame origin at cursor and returns
// the cursor advanced for the next character.
func (g *Generator) Glyph(r rune, cursor vec.Vec2) ([]Command, vec.Vec2, error) {
	if err := g.opts.Validate(); err != nil {
		return nil, cursor, err
	}
	return g.glyph(r, 0, cursor)
}

func (g *Generator) glyph(r rune, offset int, cursor vec.Vec2) ([]Command, vec.Vec2, error) {
	paths, ok := g.lib.Cartesian(r)
	if !ok {
		return nil, cursor, &UnsupportedGlyphError{Rune: r, Offset: offset}
	}

	m := layout.GlyphTransform(g.lib.Frame(), g.opts.Size, cursor)
	var cmds []Command
	for i, path := range paths {
		if len(path) == 0 {
			continue
		}
		for j, p := range path {
			x, y := m.Apply(p.X, p.Y)
			cmds = append(cmds, Command{Kind: Move, X: x, Y: y, Rune: r, Glyph: offset, Path: i})
			if j == 0 {
				cmds = append(cmds, Command{Kind: PenDown, Rune: r, Glyph: offset, Path: i})
			}
		}
		if len(path) > 1 {
			cmds = append(cmds, Command{Kind: PenUp, Rune: r, Glyph: offset, Path: i})
		}
	}

	cursor.X += g.opts.Advance
	return cmds, cursor, nil
}

// Generate emits a leading pen-up followed by every character of text, left
// to right from the origin. An unsupported character fails the whole
// request and no program is returned.
func (g *Generator) Generate(text string) (*Program, error) {
	if err := g.opts.Validate(); err != nil {
		return nil, err
	}
	prog := &Program{
		Text:     text,
		Commands: []Command{{Kind: PenUp, Glyph: -1, Path: -1}},
	}
	var cursor vec.Vec2
	offset := 0
	for _, r := range text {
		cmds, next, err := g.glyph(r, offset, cursor)
		if err != nil {
			return nil, err
		}
		prog.Commands = append(prog.Commands, cmds...)
		cursor = next
		offset++
	}
	prog.Cursor = cursor
	return prog, nil
}
