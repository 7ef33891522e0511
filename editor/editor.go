package editor

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrMalformedCorrection is returned when correction text is not exactly
	// two comma-separated integers. The model is left untouched.
	ErrMalformedCorrection = errors.New("correction must be two integers separated by a comma")
	// ErrNoSelection is returned when a correction arrives with nothing selected.
	ErrNoSelection = errors.New("no point selected")
)

// Display is the drawing surface the editor drives. Implementations render
// shapes and mirror coordinates into a text field; they never call back into
// the editor.
type Display interface {
	// DrawMarker shows the small square used for single points and the selection.
	DrawMarker(p Point)
	// DrawLine (re)draws path as a connected polyline.
	DrawLine(path int, pts []Point)
	// MirrorText puts the coordinates into the editable correction field.
	MirrorText(x, y int)
	// Wipe removes every drawn shape.
	Wipe()
}

// Options tunes the editor. The zero value uses DefaultTolerance.
type Options struct {
	Tolerance int
}

// Editor owns a Model and the current selection and turns input events into
// model mutations and display requests. Events must be delivered one at a
// time; handlers run to completion and never block.
type Editor struct {
	model     *Model
	display   Display
	tolerance int

	selected *Hit
}

// New returns an editor with an empty model.
func New(display Display, opts Options) *Editor {
	return NewWithModel(NewModel(), display, opts)
}

// NewWithModel returns an editor working on an existing model, typically one
// rebuilt from an exported artifact.
func NewWithModel(m *Model, display Display, opts Options) *Editor {
	tol := opts.Tolerance
	if tol <= 0 {
		tol = DefaultTolerance
	}
	return &Editor{model: m, display: display, tolerance: tol}
}

// Model returns the edited model.
func (e *Editor) Model() *Model { return e.model }

// Selection returns the selected point, if any.
func (e *Editor) Selection() (Hit, bool) {
	if e.selected == nil {
		return Hit{}, false
	}
	return *e.selected, true
}

// Click selects the point under (x, y) or, when there is none, appends a
// new point to the active path.
func (e *Editor) Click(x, y int) {
	if hit, ok := e.model.FindNear(Point{X: x, Y: y}, e.tolerance); ok {
		e.selected = &hit
		e.showSelected()
		return
	}

	p := Point{X: x, Y: y}
	e.model.AppendPoint(p)
	active := e.model.Active()
	if active.Len() > 1 {
		e.display.DrawLine(e.model.ActiveIndex(), active.Points)
	} else {
		e.display.DrawMarker(p)
	}
}

// Drag moves the selected point to (x, y). Without a selection it does nothing.
func (e *Editor) Drag(x, y int) {
	if e.selected == nil {
		return
	}
	e.moveSelected(Point{X: x, Y: y})
}

// DoubleClick closes the path owning the point under (x, y). A double click
// on empty space is ignored.
func (e *Editor) DoubleClick(x, y int) {
	hit, ok := e.model.FindNear(Point{X: x, Y: y}, e.tolerance)
	if !ok {
		return
	}
	if e.model.ClosePath(hit.Path) {
		e.display.DrawLine(hit.Path, e.model.Path(hit.Path).Points)
	}
}

// Undo removes the last point of the active path.
func (e *Editor) Undo() {
	idx := e.model.ActiveIndex()
	e.model.RemoveLastPoint(idx)
	active := e.model.Active()
	if e.selected != nil && e.selected.Path == idx && e.selected.Index >= active.Len() {
		e.selected = nil
	}
	if active.Len() > 1 {
		e.display.DrawLine(idx, active.Points)
	}
}

// Correct applies typed coordinates ("x,y") to the selected point.
func (e *Editor) Correct(text string) error {
	p, err := ParseCorrection(text)
	if err != nil {
		return err
	}
	if e.selected == nil {
		return ErrNoSelection
	}
	e.moveSelected(p)
	return nil
}

// StartNewPath begins a new active path.
func (e *Editor) StartNewPath() {
	e.model.StartNewPath()
}

// Clear resets the model, drops the selection and wipes the display.
func (e *Editor) Clear() {
	e.model.Clear()
	e.selected = nil
	e.display.Wipe()
}

// Export renders the model in the textual export format.
func (e *Editor) Export() string {
	return Export(e.model)
}

// moveSelected is shared by dragging and typed correction.
func (e *Editor) moveSelected(p Point) {
	sel := *e.selected
	e.model.ReplacePoint(sel.Path, sel.Index, p)
	e.display.DrawLine(sel.Path, e.model.Path(sel.Path).Points)
	e.showSelected()
}

func (e *Editor) showSelected() {
	p := e.model.Path(e.selected.Path).Points[e.selected.Index]
	e.display.DrawMarker(p)
	e.display.MirrorText(p.X, p.Y)
}

// ParseCorrection parses "x,y" into a point. Surrounding spaces around each
// number are allowed; anything else wraps ErrMalformedCorrection.
func ParseCorrection(text string) (Point, error) {
	parts := strings.Split(text, ",")
	if len(parts) != 2 {
		return Point{}, fmt.Errorf("%w: got %d values in %q", ErrMalformedCorrection, len(parts), text)
	}
	var vals [2]int
	for i, part := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return Point{}, fmt.Errorf("%w: %q is not an integer", ErrMalformedCorrection, part)
		}
		vals[i] = n
	}
	return Point{X: vals[0], Y: vals[1]}, nil
}
