// Package editor holds the interactive path-authoring model: ordered paths
// of integer points, hit-testing, the selection workflow and the textual
// export consumed when promoting drawn paths into a glyph library.
package editor

import "fmt"

// Point is a position on the drawing surface, in source units.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func (p Point) String() string { return fmt.Sprintf("(%d, %d)", p.X, p.Y) }

// Path is one continuous pen stroke. Point order is drawing order.
type Path struct {
	Points []Point `json:"points"`
	closed bool
}

// Len returns the number of points, including the closing copy if any.
func (p *Path) Len() int { return len(p.Points) }

// Closed reports whether ClosePath has looped this path back to its start.
func (p *Path) Closed() bool { return p.closed }

// Model is the ordered set of paths being edited. It always holds at least
// one path; the last one is active and is the only target of AppendPoint.
type Model struct {
	paths []*Path
}

// NewModel returns a model with a single empty active path.
func NewModel() *Model {
	m := &Model{}
	m.Clear()
	return m
}

// NewModelFromPaths seeds a model with previously exported paths. The last
// path becomes active; an empty input yields the same state as NewModel.
func NewModelFromPaths(paths []Path) *Model {
	if len(paths) == 0 {
		return NewModel()
	}
	m := &Model{paths: make([]*Path, 0, len(paths))}
	for _, p := range paths {
		pts := make([]Point, len(p.Points))
		copy(pts, p.Points)
		m.paths = append(m.paths, &Path{Points: pts, closed: p.closed})
	}
	return m
}

// Len returns the number of paths.
func (m *Model) Len() int { return len(m.paths) }

// Path returns the path at index i.
func (m *Model) Path(i int) *Path { return m.paths[i] }

// Paths returns the paths in insertion order. The slice is shared.
func (m *Model) Paths() []*Path { return m.paths }

// ActiveIndex returns the index of the active path.
func (m *Model) ActiveIndex() int { return len(m.paths) - 1 }

// Active returns the path that AppendPoint grows.
func (m *Model) Active() *Path { return m.paths[len(m.paths)-1] }

// AppendPoint adds p to the active path.
func (m *Model) AppendPoint(p Point) {
	active := m.Active()
	active.Points = append(active.Points, p)
}

// ReplacePoint overwrites one point. An index outside the model is a
// programming error and panics.
func (m *Model) ReplacePoint(path, index int, p Point) {
	if path < 0 || path >= len(m.paths) {
		panic(fmt.Sprintf("editor: path index %d out of range [0,%d)", path, len(m.paths)))
	}
	pts := m.paths[path].Points
	if index < 0 || index >= len(pts) {
		panic(fmt.Sprintf("editor: point index %d out of range [0,%d) in path %d", index, len(pts), path))
	}
	pts[index] = p
}

// ClosePath appends a copy of the first point when the path has more than
// two points and reports whether it did. Shorter paths are left alone.
func (m *Model) ClosePath(path int) bool {
	p := m.paths[path]
	if len(p.Points) <= 2 {
		return false
	}
	p.Points = append(p.Points, p.Points[0])
	p.closed = true
	return true
}

// RemoveLastPoint drops the last point of the path; no-op when empty.
func (m *Model) RemoveLastPoint(path int) {
	p := m.paths[path]
	if len(p.Points) == 0 {
		return
	}
	p.Points = p.Points[:len(p.Points)-1]
	// the closing copy is gone, so the loop is open again
	p.closed = false
}

// StartNewPath appends an empty path, which becomes active.
func (m *Model) StartNewPath() {
	m.paths = append(m.paths, &Path{})
}

// Clear resets the model to a single empty active path.
func (m *Model) Clear() {
	m.paths = []*Path{{}}
}
