package canvasrenderer

import (
	"bytes"
	"fmt"
	"image/color"
	"math"

	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers/pdf"
	"github.com/tdewolff/canvas/renderers/svg"

	"github.com/ByLCY/penglyph/editor"
	"github.com/ByLCY/penglyph/layout"
	"github.com/ByLCY/penglyph/renderer"
	"github.com/ByLCY/penglyph/toolpath"
)

const (
	defaultMargin      = 1.0
	defaultStrokeWidth = 0.1
	markerSize         = 4.0 // editor units, matches the on-screen square
)

var (
	_ renderer.Renderer      = (*Renderer)(nil)
	_ renderer.ModelRenderer = (*Renderer)(nil)
)

// Format selects the output container.
type Format string

const (
	FormatPDF Format = "pdf"
	FormatSVG Format = "svg"
)

// Options configures the canvas renderer. Lengths are millimetres.
type Options struct {
	Format      Format
	Margin      float64
	StrokeWidth float64
	ShowTravel  bool // draw pen-up travel in light gray
}

// Renderer draws toolpaths and editing models via github.com/tdewolff/canvas.
type Renderer struct {
	opts Options
}

// NewRenderer creates a PDF renderer with default margins.
func NewRenderer() *Renderer { return NewRendererWithOptions(Options{}) }

// NewRendererWithOptions creates a renderer, filling unset options.
func NewRendererWithOptions(opts Options) *Renderer {
	if opts.Format == "" {
		opts.Format = FormatPDF
	}
	if opts.Margin <= 0 {
		opts.Margin = defaultMargin
	}
	if opts.StrokeWidth <= 0 {
		opts.StrokeWidth = defaultStrokeWidth
	}
	return &Renderer{opts: opts}
}

// Render draws what the plotter would draw for prog: pen-down moves as ink,
// optionally pen-up travel, and a dot where the pen touched without moving.
func (r *Renderer) Render(prog *toolpath.Program) ([]byte, error) {
	if prog == nil {
		return nil, fmt.Errorf("render: program is nil")
	}
	minX, minY, maxX, maxY, ok := moveBounds(prog.Commands)
	if !ok {
		return nil, fmt.Errorf("render: program %q has no moves", prog.Text)
	}

	m := r.opts.Margin
	w, h := maxX-minX+2*m, maxY-minY+2*m
	c := canvas.New(w, h)
	ctx := canvas.NewContext(c)
	// 指令坐标为笛卡尔坐标系（y 轴向上），与 canvas 默认一致
	ctx.SetCoordSystem(canvas.CartesianI)
	ox, oy := m-minX, m-minY

	ink, travel, dots := trace(prog.Commands)

	ctx.SetFillColor(color.RGBA{0, 0, 0, 0})
	ctx.SetStrokeWidth(r.opts.StrokeWidth)
	ctx.SetStrokeCapper(canvas.RoundCap)
	ctx.SetStrokeJoiner(canvas.RoundJoin)
	if r.opts.ShowTravel && !travel.Empty() {
		ctx.SetStrokeColor(canvas.Hex("#c8c8c8"))
		ctx.DrawPath(ox, oy, travel)
	}
	if !ink.Empty() {
		ctx.SetStrokeColor(canvas.Black)
		ctx.DrawPath(ox, oy, ink)
	}

	ctx.SetStrokeColor(color.RGBA{0, 0, 0, 0})
	ctx.SetFillColor(canvas.Black)
	for _, d := range dots {
		ctx.DrawPath(ox+d[0], oy+d[1], canvas.Circle(r.opts.StrokeWidth))
	}

	return r.encode(c, w, h)
}

// RenderModel draws the frame, every path as a polyline and a marker on each
// point, in editor orientation (origin top-left).
func (r *Renderer) RenderModel(model *editor.Model, frame layout.Frame) ([]byte, error) {
	if model == nil {
		return nil, fmt.Errorf("render: model is nil")
	}
	if frame.Width <= 0 || frame.Height <= 0 {
		return nil, fmt.Errorf("render: invalid frame %gx%g", frame.Width, frame.Height)
	}

	m := r.opts.Margin
	w, h := frame.Width+2*m, frame.Height+2*m
	c := canvas.New(w, h)
	ctx := canvas.NewContext(c)
	ctx.SetCoordSystem(canvas.CartesianIV) // 使坐标与编辑器保持左上角为原点

	ctx.SetFillColor(color.RGBA{0, 0, 0, 0})
	ctx.SetStrokeColor(canvas.Hex("#c8c8c8"))
	ctx.SetStrokeWidth(r.opts.StrokeWidth)
	ctx.DrawPath(m, m, canvas.Rectangle(frame.Width, frame.Height))

	ctx.SetStrokeColor(canvas.Black)
	for _, path := range model.Paths() {
		if path.Len() > 1 {
			p := &canvas.Path{}
			first := path.Points[0]
			p.MoveTo(0, 0)
			for _, pt := range path.Points[1:] {
				p.LineTo(float64(pt.X-first.X), float64(pt.Y-first.Y))
			}
			ctx.DrawPath(m+float64(first.X), m+float64(first.Y), p)
		}
		for _, pt := range path.Points {
			ctx.DrawPath(m+float64(pt.X)-markerSize/2, m+float64(pt.Y)-markerSize/2, canvas.Rectangle(markerSize, markerSize))
		}
	}

	return r.encode(c, w, h)
}

func (r *Renderer) encode(c *canvas.Canvas, w, h float64) ([]byte, error) {
	var buf bytes.Buffer
	switch r.opts.Format {
	case FormatPDF:
		writer := pdf.New(&buf, w, h, nil)
		c.RenderTo(writer)
		if err := writer.Close(); err != nil {
			return nil, fmt.Errorf("write PDF: %w", err)
		}
	case FormatSVG:
		writer := svg.New(&buf, w, h, nil)
		c.RenderTo(writer)
		if err := writer.Close(); err != nil {
			return nil, fmt.Errorf("write SVG: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported preview format %q", r.opts.Format)
	}
	return buf.Bytes(), nil
}

// trace replays the commands with a simulated pen. Every line drawn while
// the pen is down goes to ink, lines drawn while it is up go to travel, and
// pen-downs that never moved become dots.
func trace(cmds []toolpath.Command) (ink, travel *canvas.Path, dots [][2]float64) {
	ink, travel = &canvas.Path{}, &canvas.Path{}
	var x, y float64
	havePos, down, moved := false, false, false
	for _, c := range cmds {
		switch c.Kind {
		case toolpath.PenDown:
			down, moved = true, false
			ink.MoveTo(x, y)
		case toolpath.PenUp:
			if down && !moved && havePos {
				dots = append(dots, [2]float64{x, y})
			}
			down = false
		case toolpath.Move:
			if down {
				ink.LineTo(c.X, c.Y)
				moved = true
			} else if havePos {
				travel.MoveTo(x, y)
				travel.LineTo(c.X, c.Y)
			}
			x, y, havePos = c.X, c.Y, true
		}
	}
	if down && !moved && havePos {
		dots = append(dots, [2]float64{x, y})
	}
	return ink, travel, dots
}

func moveBounds(cmds []toolpath.Command) (minX, minY, maxX, maxY float64, ok bool) {
	minX, minY = math.Inf(1), math.Inf(1)
	maxX, maxY = math.Inf(-1), math.Inf(-1)
	for _, c := range cmds {
		if c.Kind != toolpath.Move {
			continue
		}
		minX, maxX = math.Min(minX, c.X), math.Max(maxX, c.X)
		minY, maxY = math.Min(minY, c.Y), math.Max(maxY, c.Y)
		ok = true
	}
	return minX, minY, maxX, maxY, ok
}
