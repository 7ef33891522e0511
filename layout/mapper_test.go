package layout

import (
	"math"
	"testing"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
)

func TestInvertYIsInvolution(t *testing.T) {
	for _, p := range []vec.Vec2{{X: 0, Y: 0}, {X: 25, Y: 30}, {X: 150, Y: 200}, {X: -3, Y: 250}, {X: 0.5, Y: 7.25}} {
		if got := InvertY(InvertY(p, 200), 200); got != p {
			t.Fatalf("invert twice: expected %v, got %v", p, got)
		}
	}
	if got := InvertY(vec.Vec2{X: 25, Y: 30}, 200); got != (vec.Vec2{X: 25, Y: 170}) {
		t.Fatalf("expected (25, 170), got %v", got)
	}
}

func TestScaleToCursor(t *testing.T) {
	size := Size{Width: 2, Height: 2}
	cases := []struct {
		p, cursor, want vec.Vec2
	}{
		{vec.Vec2{X: 0, Y: 0}, vec.Vec2{X: 4, Y: 0}, vec.Vec2{X: 4, Y: 0}},
		{vec.Vec2{X: 150, Y: 200}, vec.Vec2{}, vec.Vec2{X: 2, Y: 2}},
		{vec.Vec2{X: 75, Y: 50}, vec.Vec2{X: 2, Y: 1}, vec.Vec2{X: 3, Y: 1.5}},
		{vec.Vec2{X: 23, Y: 115}, vec.Vec2{}, vec.Vec2{X: 23.0 / 150 * 2, Y: 115.0 / 200 * 2}},
	}
	for _, tc := range cases {
		got := ScaleToCursor(tc.p, DefaultFrame, size, tc.cursor)
		if math.Abs(got.X-tc.want.X) > 1e-12 || math.Abs(got.Y-tc.want.Y) > 1e-12 {
			t.Fatalf("scale %v at %v: expected %v, got %v", tc.p, tc.cursor, tc.want, got)
		}
	}
}

func TestGlyphTransformAnisotropic(t *testing.T) {
	m := GlyphTransform(Frame{Width: 100, Height: 100}, Size{Width: 10, Height: 5}, vec.Vec2{X: 1, Y: 1})
	x, y := m.Apply(100, 100)
	if math.Abs(x-11) > 1e-12 || math.Abs(y-6) > 1e-12 {
		t.Fatalf("expected (11, 6), got (%g, %g)", x, y)
	}
	if want := (matrix.Matrix{0.1, 0, 0, 0.05, 1, 1}); m != want {
		t.Fatalf("expected %v, got %v", want, m)
	}
}
