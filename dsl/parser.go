package dsl

import (
	"fmt"
	"io"
	"strconv"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// The three grammars below share one lexer: exported path lists, glyph
// library files and headless editing sessions.
var (
	glyphLexer = lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Comment", Pattern: `#[^\n]*`},
		{Name: "Whitespace", Pattern: `[ \t\r\n]+`},
		{Name: "Int", Pattern: `-?\d+`},
		{Name: "String", Pattern: `"(?:\\.|[^"])*"|'(?:\\.|[^'])*'`},
		{Name: "Ident", Pattern: `[A-Za-z_][A-Za-z0-9_-]*`},
		{Name: "Punct", Pattern: `[][(),:]`},
	})

	parserOptions = []participle.Option{
		participle.Lexer(glyphLexer),
		participle.Elide("Whitespace", "Comment"),
	}

	pathListParser = participle.MustBuild[PathList](parserOptions...)
	libraryParser  = participle.MustBuild[Library](parserOptions...)
	sessionParser  = participle.MustBuild[Session](parserOptions...)
)

// PathList is the exported form of an editing model: `[[(x, y), ...], ...]`.
type PathList struct {
	Pos   lexer.Position `parser:"" json:"-"`
	Paths []*PathLiteral `parser:"'[' ( @@ ( ',' @@ )* )? ']'"`
}

// PathLiteral is one bracketed list of points.
type PathLiteral struct {
	Pos    lexer.Position  `parser:"" json:"-"`
	Points []*PointLiteral `parser:"'[' ( @@ ( ',' @@ )* )? ']'"`
}

// PointLiteral is a parenthesised integer pair.
type PointLiteral struct {
	Pos lexer.Position `parser:"" json:"-"`
	X   Coord          `parser:"'(' @Int ','"`
	Y   Coord          `parser:"@Int ')'"`
}

// Library is a glyph library file: an optional frame declaration followed
// by one entry per character.
type Library struct {
	Frame   *FrameDecl    `parser:"@@?"`
	Entries []*GlyphEntry `parser:"@@*"`
}

// FrameDecl declares the source bounding box, e.g. `frame 150 200`.
type FrameDecl struct {
	Pos    lexer.Position `parser:"" json:"-"`
	Width  Coord          `parser:"'frame' @Int"`
	Height Coord          `parser:"@Int"`
}

// GlyphEntry maps a quoted character to its paths.
type GlyphEntry struct {
	Pos   lexer.Position `parser:"" json:"-"`
	Key   StringLiteral  `parser:"@String ':'"`
	Paths *PathList      `parser:"@@"`
}

// Session is a recorded sequence of editor events.
type Session struct {
	Events []*Event `parser:"@@*"`
}

// Event is one editor input: a name, integer arguments and an optional
// quoted text argument (used by `correct`).
type Event struct {
	Pos  lexer.Position `parser:"" json:"-"`
	Name string         `parser:"@Ident"`
	Args []string       `parser:"@Int*"`
	Text *StringLiteral `parser:"@String?"`
}

// Ints converts the integer arguments of the event.
func (e *Event) Ints() ([]int, error) {
	out := make([]int, 0, len(e.Args))
	for _, a := range e.Args {
		n, err := strconv.Atoi(a)
		if err != nil {
			return nil, fmt.Errorf("%s: invalid argument %q: %w", e.Pos, a, err)
		}
		out = append(out, n)
	}
	return out, nil
}

// Coord is an integer coordinate captured from an Int token.
type Coord int

// Capture implements participle.Capture.
func (c *Coord) Capture(values []string) error {
	if len(values) == 0 {
		return fmt.Errorf("coordinate capture requires value")
	}
	n, err := strconv.Atoi(values[0])
	if err != nil {
		return err
	}
	*c = Coord(n)
	return nil
}

// StringLiteral unquotes Go-style strings (double or single quoted) on capture.
type StringLiteral string

// Capture implements participle.Capture.
func (s *StringLiteral) Capture(values []string) error {
	if len(values) == 0 {
		return fmt.Errorf("string literal capture requires value")
	}
	val, err := strconv.Unquote(values[0])
	if err != nil {
		return err
	}
	*s = StringLiteral(val)
	return nil
}

// ParsePaths parses an exported path list.
func ParsePaths(name string, r io.Reader) (*PathList, error) {
	return pathListParser.Parse(name, r)
}

// ParsePathsString parses an exported path list from a string.
func ParsePathsString(input string) (*PathList, error) {
	return pathListParser.ParseString("", input)
}

// ParseLibrary parses a glyph library file.
func ParseLibrary(name string, r io.Reader) (*Library, error) {
	return libraryParser.Parse(name, r)
}

// ParseLibraryString parses a glyph library from a string.
func ParseLibraryString(input string) (*Library, error) {
	return libraryParser.ParseString("", input)
}

// ParseSession parses an editing session script.
func ParseSession(name string, r io.Reader) (*Session, error) {
	return sessionParser.Parse(name, r)
}

// ParseSessionString parses an editing session script from a string.
func ParseSessionString(input string) (*Session, error) {
	return sessionParser.ParseString("", input)
}
