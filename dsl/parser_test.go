package dsl_test

import (
	"strings"
	"testing"

	"github.com/ByLCY/penglyph/dsl"
)

const sampleLibrary = `
# digits drawn with the polyline editor
frame 150 200

'1': [[(23, 85), (86, 13), (85, 190)]]
"4": [[(64, 12), (5, 102), (94, 101)], [(64, 187)], [(67, 6), (69, 193)]]
`

func TestParsePaths(t *testing.T) {
	list, err := dsl.ParsePathsString("[[(10, 10), (20, -5)], [], [(7, 8)]]")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if len(list.Paths) != 3 {
		t.Fatalf("expected 3 paths, got %d", len(list.Paths))
	}
	first := list.Paths[0].Points
	if len(first) != 2 {
		t.Fatalf("expected 2 points in first path, got %d", len(first))
	}
	if first[1].X != 20 || first[1].Y != -5 {
		t.Fatalf("unexpected second point: %+v", first[1])
	}
	if len(list.Paths[1].Points) != 0 {
		t.Fatalf("expected empty middle path, got %+v", list.Paths[1].Points)
	}
	if list.Paths[2].Points[0].X != 7 || list.Paths[2].Points[0].Y != 8 {
		t.Fatalf("unexpected last point: %+v", list.Paths[2].Points[0])
	}
}

func TestParsePathsEmptyModel(t *testing.T) {
	list, err := dsl.ParsePathsString("[[]]")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if len(list.Paths) != 1 || len(list.Paths[0].Points) != 0 {
		t.Fatalf("expected one empty path, got %+v", list.Paths)
	}
}

func TestParsePathsRejectsMalformed(t *testing.T) {
	for _, input := range []string{
		"[(1, 2)]",
		"[[(1, 2, 3)]]",
		"[[(1 2)]]",
		"[[(a, 2)]]",
	} {
		if _, err := dsl.ParsePathsString(input); err == nil {
			t.Fatalf("expected error for %q", input)
		}
	}
}

func TestParseLibrary(t *testing.T) {
	lib, err := dsl.ParseLibrary("digits.glyphs", strings.NewReader(sampleLibrary))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if lib.Frame == nil || lib.Frame.Width != 150 || lib.Frame.Height != 200 {
		t.Fatalf("unexpected frame: %+v", lib.Frame)
	}
	if len(lib.Entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(lib.Entries))
	}
	if got := string(lib.Entries[0].Key); got != "1" {
		t.Fatalf("expected key 1, got %q", got)
	}
	if got := string(lib.Entries[1].Key); got != "4" {
		t.Fatalf("expected key 4, got %q", got)
	}
	if n := len(lib.Entries[1].Paths.Paths); n != 3 {
		t.Fatalf("expected 3 paths for 4, got %d", n)
	}
	if lib.Entries[1].Pos.Line != 6 {
		t.Fatalf("expected entry on line 6, got %d", lib.Entries[1].Pos.Line)
	}
}

func TestParseLibraryWithoutFrame(t *testing.T) {
	lib, err := dsl.ParseLibraryString(`"7": [[(32, 26), (138, 24), (98, 178)], [(58, 96), (118, 97)]]`)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if lib.Frame != nil {
		t.Fatalf("expected no frame, got %+v", lib.Frame)
	}
	if len(lib.Entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(lib.Entries))
	}
}

func TestParseSession(t *testing.T) {
	const script = `
click 10 10
drag 12 -3
double 10 10
correct "12,34"
undo
new
export
`
	sess, err := dsl.ParseSessionString(script)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if len(sess.Events) != 7 {
		t.Fatalf("expected 7 events, got %d", len(sess.Events))
	}
	drag := sess.Events[1]
	if drag.Name != "drag" {
		t.Fatalf("expected drag, got %s", drag.Name)
	}
	args, err := drag.Ints()
	if err != nil {
		t.Fatalf("ints failed: %v", err)
	}
	if len(args) != 2 || args[0] != 12 || args[1] != -3 {
		t.Fatalf("unexpected drag args: %v", args)
	}
	correct := sess.Events[3]
	if correct.Text == nil || string(*correct.Text) != "12,34" {
		t.Fatalf("expected correction text, got %+v", correct)
	}
	if sess.Events[4].Name != "undo" || len(sess.Events[4].Args) != 0 {
		t.Fatalf("expected bare undo, got %+v", sess.Events[4])
	}
}
