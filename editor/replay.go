package editor

import (
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/ByLCY/penglyph/dsl"
)

// LogDisplay is a headless Display that writes every request to a logger.
type LogDisplay struct {
	Logger *log.Logger
}

// DrawMarker logs the point a marker would be drawn at.
func (d LogDisplay) DrawMarker(p Point) { d.Logger.Printf("marker %s", p) }

// DrawLine logs which path would be redrawn and how many points it has.
func (d LogDisplay) DrawLine(path int, pts []Point) {
	d.Logger.Printf("line path=%d points=%d", path, len(pts))
}

// MirrorText logs the coordinates mirrored into the correction field.
func (d LogDisplay) MirrorText(x, y int) { d.Logger.Printf("text %d,%d", x, y) }

// Wipe logs a canvas clear.
func (d LogDisplay) Wipe() { d.Logger.Printf("wipe") }

// Replay feeds a recorded session to the editor, one event at a time.
// `export` events write the current export artifact to out, one per line.
// Rejected corrections are logged and replay continues; an unknown event or
// a wrong argument count stops it.
func Replay(e *Editor, sess *dsl.Session, out io.Writer, logger *log.Logger) error {
	for _, ev := range sess.Events {
		args, err := ev.Ints()
		if err != nil {
			return err
		}
		want, known := eventArity[ev.Name]
		if !known {
			return fmt.Errorf("%s: unknown event %q", ev.Pos, ev.Name)
		}
		if len(args) != want {
			return fmt.Errorf("%s: %s expects %d arguments, got %d", ev.Pos, ev.Name, want, len(args))
		}
		if (ev.Name == "correct") != (ev.Text != nil) {
			return fmt.Errorf("%s: only correct takes a quoted text argument", ev.Pos)
		}

		switch ev.Name {
		case "click":
			e.Click(args[0], args[1])
		case "drag":
			e.Drag(args[0], args[1])
		case "double":
			e.DoubleClick(args[0], args[1])
		case "undo":
			e.Undo()
		case "new":
			e.StartNewPath()
		case "clear":
			e.Clear()
		case "correct":
			if err := e.Correct(string(*ev.Text)); err != nil {
				if errors.Is(err, ErrMalformedCorrection) || errors.Is(err, ErrNoSelection) {
					logger.Printf("%s: correction rejected: %v", ev.Pos, err)
					continue
				}
				return err
			}
		case "export":
			if _, err := fmt.Fprintln(out, e.Export()); err != nil {
				return fmt.Errorf("write export: %w", err)
			}
		}
	}
	return nil
}

var eventArity = map[string]int{
	"click":   2,
	"drag":    2,
	"double":  2,
	"undo":    0,
	"new":     0,
	"clear":   0,
	"correct": 0,
	"export":  0,
}
