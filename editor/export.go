package editor

import (
	"fmt"
	"io"
	"strings"

	"github.com/ByLCY/penglyph/dsl"
)

// Export renders every path, in insertion order, as `[[(x, y), ...], ...]`.
func Export(m *Model) string {
	var b strings.Builder
	b.WriteByte('[')
	for i, path := range m.paths {
		if i > 0 {
			b.WriteString(", ")
		}
		writePath(&b, path.Points)
	}
	b.WriteByte(']')
	return b.String()
}

func writePath(b *strings.Builder, pts []Point) {
	b.WriteByte('[')
	for i, p := range pts {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(p.String())
	}
	b.WriteByte(']')
}

// ImportPaths parses an exported artifact back into paths, preserving path
// and point order.
func ImportPaths(text string) ([]Path, error) {
	list, err := dsl.ParsePathsString(text)
	if err != nil {
		return nil, fmt.Errorf("parse exported paths: %w", err)
	}
	return PathsFromList(list), nil
}

// ReadPaths is ImportPaths for a reader; name is used in error positions.
func ReadPaths(name string, r io.Reader) ([]Path, error) {
	list, err := dsl.ParsePaths(name, r)
	if err != nil {
		return nil, fmt.Errorf("parse exported paths %s: %w", name, err)
	}
	return PathsFromList(list), nil
}

// PathsFromList converts a parsed path list. Imported paths are open: the
// closed flag is never inferred from coordinates.
func PathsFromList(list *dsl.PathList) []Path {
	paths := make([]Path, 0, len(list.Paths))
	for _, lit := range list.Paths {
		pts := make([]Point, 0, len(lit.Points))
		for _, pt := range lit.Points {
			pts = append(pts, Point{X: int(pt.X), Y: int(pt.Y)})
		}
		paths = append(paths, Path{Points: pts})
	}
	return paths
}
