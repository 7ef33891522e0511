package layout

import (
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
)

// Frame is the bounding box glyph outlines are drawn in, in source units.
type Frame struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// DefaultFrame is the 150×200 box the editor canvas and digit table use.
var DefaultFrame = Frame{Width: 150, Height: 200}

// Size is the physical size of one glyph, in millimetres.
type Size struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// InvertY flips a point between the source frame (origin top-left, y down)
// and the Cartesian frame (origin bottom-left, y up). Applying it twice
// returns the original point.
func InvertY(p vec.Vec2, frameHeight float64) vec.Vec2 {
	return vec.Vec2{X: p.X, Y: frameHeight - p.Y}
}

// GlyphTransform maps Cartesian frame coordinates to drawing units so that
// the frame's origin lands on cursor and the frame fills size.
func GlyphTransform(frame Frame, size Size, cursor vec.Vec2) matrix.Matrix {
	return matrix.Scale(size.Width/frame.Width, size.Height/frame.Height).Translate(cursor.X, cursor.Y)
}

// ScaleToCursor places a Cartesian glyph point into drawing units:
// (x/fw*tw + cx, y/fh*th + cy).
func ScaleToCursor(p vec.Vec2, frame Frame, size Size, cursor vec.Vec2) vec.Vec2 {
	x, y := GlyphTransform(frame, size, cursor).Apply(p.X, p.Y)
	return vec.Vec2{X: x, Y: y}
}
