package toolpath

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestFormatCommand(t *testing.T) {
	cases := []struct {
		cmd       Command
		precision int
		want      string
	}{
		{Command{Kind: PenUp}, 4, PenUpLine},
		{Command{Kind: PenDown}, 4, PenDownLine},
		{Command{Kind: Move, X: 2, Y: 0.5}, 4, "G0 X2 Y0.5"},
		{Command{Kind: Move, X: 0.30666666, Y: 1.15}, 4, "G0 X0.3067 Y1.15"},
		{Command{Kind: Move, X: -0.00001, Y: 3}, 4, "G0 X0 Y3"},
		{Command{Kind: Move, X: 1.25, Y: 3}, -1, "G0 X1.25 Y3"},
		{Command{Kind: Move, X: 1.6, Y: 3}, 0, "G0 X2 Y3"},
	}
	for _, tc := range cases {
		if got := FormatCommand(tc.cmd, tc.precision); got != tc.want {
			t.Fatalf("expected %q, got %q", tc.want, got)
		}
	}
}

func TestWriteOneCommandPerLine(t *testing.T) {
	prog, err := defaultGenerator(t).Generate("1")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	var buf bytes.Buffer
	if err := Write(&buf, prog, DefaultWriteOptions()); err != nil {
		t.Fatalf("write: %v", err)
	}
	want := strings.Join([]string{
		PenUpLine,
		"G0 X0.3067 Y1.15",
		PenDownLine,
		"G0 X1.1467 Y1.87",
		"G0 X1.1333 Y0.1",
		PenUpLine,
	}, "\n") + "\n"
	if got := buf.String(); got != want {
		t.Fatalf("unexpected output:\n%s\nwant:\n%s", got, want)
	}
}

func TestWriteZeroPrecisionRounds(t *testing.T) {
	prog, err := defaultGenerator(t).Generate("1")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	lines := Lines(prog, WriteOptions{})
	// 第一个移动指令，(0.3067, 1.15) 取整
	if lines[1] != "G0 X0 Y1" {
		t.Fatalf("expected whole-number coordinates, got %q", lines[1])
	}
}

func TestAnnotatedLines(t *testing.T) {
	prog, err := defaultGenerator(t).Generate("33")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	lines := Lines(prog, WriteOptions{Precision: DefaultPrecision, Annotate: true, Version: "0.1"})
	if lines[0] != "; version 0.1" || lines[1] != PenUpLine {
		t.Fatalf("unexpected header: %q", lines[:2])
	}
	var comments []string
	for _, l := range lines {
		if strings.HasPrefix(l, "; ") {
			comments = append(comments, l)
		}
	}
	want := []string{
		"; version 0.1",
		"; letter 3", "; path 0 for letter 3", "; path 1 for letter 3",
		"; letter 3", "; path 0 for letter 3", "; path 1 for letter 3",
	}
	if strings.Join(comments, "|") != strings.Join(want, "|") {
		t.Fatalf("expected comments %q, got %q", want, comments)
	}
	if plain := Lines(prog, DefaultWriteOptions()); len(lines)-len(plain) != len(want) {
		t.Fatalf("annotation must only add comment lines")
	}
}

func TestWriteDebugJSON(t *testing.T) {
	prog, err := defaultGenerator(t).Generate("7")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	path := filepath.Join(t.TempDir(), "debug.json")
	if err := WriteDebugJSON(prog, path); err != nil {
		t.Fatalf("write debug: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read debug: %v", err)
	}
	var decoded struct {
		Text     string `json:"text"`
		Commands []struct {
			Kind string `json:"kind"`
		} `json:"commands"`
	}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if decoded.Text != "7" || len(decoded.Commands) != len(prog.Commands) {
		t.Fatalf("unexpected debug content: %s", data)
	}
	if decoded.Commands[0].Kind != "pen-up" || decoded.Commands[2].Kind != "pen-down" {
		t.Fatalf("expected kinds by name, got %s", data)
	}
}
