// Package toolpath turns glyph outlines into pen-plotter motion commands.
package toolpath

import (
	"encoding/json"
	"fmt"

	"seehuhn.de/go/geom/vec"
)

// Kind is the type of a plotter command.
type Kind int

const (
	PenUp   Kind = iota // lift the pen
	PenDown             // lower the pen at the current position
	Move                // travel to X, Y
)

func (k Kind) String() string {
	switch k {
	case PenUp:
		return "pen-up"
	case PenDown:
		return "pen-down"
	case Move:
		return "move"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// MarshalJSON writes the kind by name in debug output.
func (k Kind) MarshalJSON() ([]byte, error) { return json.Marshal(k.String()) }

// Command is one plotter instruction. Rune, Glyph (the character's index
// in the text) and Path record what emitted it; the leading pen-up of a
// program has Glyph and Path -1.
type Command struct {
	Kind  Kind    `json:"kind"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Rune  rune    `json:"rune,omitempty"`
	Glyph int     `json:"glyph"`
	Path  int     `json:"path"`
}

// Pos returns the target of a Move.
func (c Command) Pos() vec.Vec2 { return vec.Vec2{X: c.X, Y: c.Y} }

// Program is the full command sequence for one string.
type Program struct {
	Text     string    `json:"text"`
	Commands []Command `json:"commands"`
	// Cursor is where the next character would start.
	Cursor vec.Vec2 `json:"cursor"`
}
