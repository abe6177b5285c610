/*
Package canvasadapter implements a gfx.Surface on top of the Canvas
2D graphics library (github.com/tdewolff/canvas), which in turn renders
to raster images, SVG or PDF.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022–2024 Norbert Pillmayer <norbert@pillmayer.com>

*/
package canvasadapter

import (
	"image/color"
	"math"

	"github.com/npillmayer/arithm"
	"github.com/npillmayer/pilcrow/backend/gfx"
	"github.com/npillmayer/schuko/tracing"
	"github.com/tdewolff/canvas"
)

// tracer traces with key 'pilcrow.gfx'.
func tracer() tracing.Trace {
	return tracing.Select("pilcrow.gfx")
}

// graphics state of a surface, managed as a stack by Save/Restore.
type state struct {
	color color.Color
	width float64
	cap   gfx.LineCap
}

// Surface strokes gfx paths onto a Canvas drawing context.
type Surface struct {
	ctx   *canvas.Context
	state state
	saved []state
}

var _ gfx.Surface = (*Surface)(nil)

// New creates a Surface drawing to a Canvas context. The context is
// expected to use point units with a bottom-left origin, which is
// Canvas's native convention.
func New(ctx *canvas.Context) *Surface {
	return &Surface{
		ctx: ctx,
		state: state{
			color: color.Black,
			width: 1,
		},
	}
}

// Save pushes the current graphics state.
func (surf *Surface) Save() {
	surf.saved = append(surf.saved, surf.state)
}

// Restore pops the graphics state pushed by the matching Save. Calling
// Restore without a matching Save is a no-op.
func (surf *Surface) Restore() {
	if len(surf.saved) == 0 {
		tracer().Errorf("surface restore without matching save")
		return
	}
	surf.state = surf.saved[len(surf.saved)-1]
	surf.saved = surf.saved[:len(surf.saved)-1]
}

// SetColor sets the stroke color.
func (surf *Surface) SetColor(c color.Color) {
	surf.state.color = c
}

// SetLineWidth sets the stroke width in points.
func (surf *Surface) SetLineWidth(w float64) {
	surf.state.width = w
}

// SetLineCap sets the stroke endpoint style.
func (surf *Surface) SetLineCap(cap gfx.LineCap) {
	surf.state.cap = cap
}

// Stroke strokes path p, translated by at. Dot segments are rendered as
// filled circles with a radius of half the current line width.
func (surf *Surface) Stroke(p gfx.Path, at arithm.Pair) {
	if p.IsEmpty() {
		return
	}
	surf.ctx.SetFillColor(color.RGBA{})
	surf.ctx.SetStrokeColor(surf.state.color)
	surf.ctx.SetStrokeWidth(surf.state.width)
	if surf.state.cap == gfx.RoundCap {
		surf.ctx.SetStrokeCapper(canvas.RoundCap)
	} else {
		surf.ctx.SetStrokeCapper(canvas.ButtCap)
	}
	cp := &canvas.Path{}
	var cur arithm.Pair
	open := false
	for _, s := range p.Segments() {
		switch s.Op {
		case gfx.MoveOp:
			cp.MoveTo(gfx.X(s.To), gfx.Y(s.To))
			cur, open = s.To, true
		case gfx.LineOp:
			cp.LineTo(gfx.X(s.To), gfx.Y(s.To))
			cur, open = s.To, true
		case gfx.CurveOp:
			cp.CubeTo(gfx.X(s.C1), gfx.Y(s.C1), gfx.X(s.C2), gfx.Y(s.C2),
				gfx.X(s.To), gfx.Y(s.To))
			cur, open = s.To, true
		case gfx.ArcOp:
			// Canvas arcs continue from the current pen position
			start := gfx.P(
				gfx.X(s.To)+s.R*math.Cos(s.Theta),
				gfx.Y(s.To)+s.R*math.Sin(s.Theta),
			)
			if !open || !near(cur, start) {
				cp.MoveTo(gfx.X(start), gfx.Y(start))
			}
			cp.Arc(s.R, s.R, 0, deg(s.Theta), deg(s.Theta+s.Sweep))
			end := gfx.P(
				gfx.X(s.To)+s.R*math.Cos(s.Theta+s.Sweep),
				gfx.Y(s.To)+s.R*math.Sin(s.Theta+s.Sweep),
			)
			cur, open = end, true
		case gfx.DotOp:
			surf.dot(s.To, at)
		}
	}
	if !cp.Empty() {
		surf.ctx.DrawPath(gfx.X(at), gfx.Y(at), cp)
	}
}

func (surf *Surface) dot(pt, at arithm.Pair) {
	r := surf.state.width / 2
	surf.ctx.SetFillColor(surf.state.color)
	surf.ctx.DrawPath(gfx.X(at)+gfx.X(pt)-r, gfx.Y(at)+gfx.Y(pt)-r, canvas.Circle(r))
	surf.ctx.SetFillColor(color.RGBA{})
}

func deg(rad float64) float64 {
	return rad * 180 / math.Pi
}

func near(a, b arithm.Pair) bool {
	const eps = 1e-9
	return math.Abs(gfx.X(a)-gfx.X(b)) < eps && math.Abs(gfx.Y(a)-gfx.Y(b)) < eps
}
