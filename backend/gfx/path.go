package gfx

// Governed by a 3-Clause BSD license. License file may be found in the root
// folder of this module.
//
// Copyright © 2022–2024 Norbert Pillmayer <norbert@pillmayer.com>

import (
	"math"

	"github.com/npillmayer/arithm"
)

// Box is an axis-aligned bounding box for a path, anchored at the
// origin of the path's local coordinate system.
type Box struct {
	W, H float64 // width and height in points
}

// IsVoid is true for boxes with a non-positive extent in either direction.
func (box Box) IsVoid() bool {
	return box.W <= 0 || box.H <= 0
}

// P creates a pair (point) from cartesian coordinates.
func P(x, y float64) arithm.Pair {
	return arithm.Pair(complex(x, y))
}

// X returns the x-part of a pair.
func X(p arithm.Pair) float64 {
	return real(p.C())
}

// Y returns the y-part of a pair.
func Y(p arithm.Pair) float64 {
	return imag(p.C())
}

// SegmentOp classifies path segments.
type SegmentOp int8

// Operations paths are composed of.
const (
	MoveOp  SegmentOp = iota // start a new sub-path
	LineOp                   // straight line to a point
	CurveOp                  // cubic Bézier to a point
	ArcOp                    // circular arc around a center
	DotOp                    // marker dot at a point
)

// Segment is one primitive of a path. Depending on Op, not all fields
// carry meaning: To is the endpoint for moves, lines and curves, and the
// center for arcs and dots. C1 and C2 are the control points of cubic
// curves. R is the radius of arcs and is ignored for dots, which are
// scaled by the surface at stroke time. Theta and Sweep are the start
// angle and the angular extent of arcs, in radians, with positive sweep
// running counter-clockwise.
type Segment struct {
	Op           SegmentOp
	To, C1, C2   arithm.Pair
	R            float64
	Theta, Sweep float64
}

// Path is a sequence of segments, to be stroked onto a Surface.
// The zero value is an empty path, ready to use.
type Path struct {
	segs []Segment
}

// IsEmpty is true for paths without any segments.
func (p Path) IsEmpty() bool {
	return len(p.segs) == 0
}

// Segments returns the segments of a path. Clients must not modify the
// returned slice.
func (p Path) Segments() []Segment {
	return p.segs
}

// MoveTo starts a new sub-path at (x,y).
func (p Path) MoveTo(x, y float64) Path {
	p.segs = append(p.segs, Segment{Op: MoveOp, To: P(x, y)})
	return p
}

// LineTo appends a straight line to (x,y).
func (p Path) LineTo(x, y float64) Path {
	p.segs = append(p.segs, Segment{Op: LineOp, To: P(x, y)})
	return p
}

// CurveTo appends a cubic Bézier curve to (x,y), with control points
// (cx1,cy1) and (cx2,cy2).
func (p Path) CurveTo(cx1, cy1, cx2, cy2, x, y float64) Path {
	p.segs = append(p.segs, Segment{
		Op: CurveOp,
		C1: P(cx1, cy1),
		C2: P(cx2, cy2),
		To: P(x, y),
	})
	return p
}

// Arc appends a circular arc around center (cx,cy) with the given radius,
// starting at angle theta and extending by sweep (radians, positive =
// counter-clockwise). The arc forms a sub-path of its own.
func (p Path) Arc(cx, cy, r, theta, sweep float64) Path {
	p.segs = append(p.segs, Segment{
		Op:    ArcOp,
		To:    P(cx, cy),
		R:     r,
		Theta: theta,
		Sweep: sweep,
	})
	return p
}

// Dot appends a marker dot at (x,y). Dots have no inherent size; surfaces
// render them proportional to the current line width.
func (p Path) Dot(x, y float64) Path {
	p.segs = append(p.segs, Segment{Op: DotOp, To: P(x, y)})
	return p
}

// Ring appends a full circle around (cx,cy).
func (p Path) Ring(cx, cy, r float64) Path {
	return p.Arc(cx, cy, r, 0, 2*math.Pi)
}

// RoundedRect appends a rectangle with corners rounded by radius r.
// (x,y) is the bottom-left corner; r is clamped to half the smaller
// extent.
func (p Path) RoundedRect(x, y, w, h, r float64) Path {
	if r > w/2 {
		r = w / 2
	}
	if r > h/2 {
		r = h / 2
	}
	if r < 0 {
		r = 0
	}
	p = p.MoveTo(x+r, y)
	p = p.LineTo(x+w-r, y)
	p = p.Arc(x+w-r, y+r, r, -math.Pi/2, math.Pi/2)
	p = p.LineTo(x+w, y+h-r)
	p = p.Arc(x+w-r, y+h-r, r, 0, math.Pi/2)
	p = p.LineTo(x+r, y+h)
	p = p.Arc(x+r, y+h-r, r, math.Pi/2, math.Pi/2)
	p = p.LineTo(x, y+r)
	p = p.Arc(x+r, y+r, r, math.Pi, math.Pi/2)
	return p
}

// Translated returns a copy of the path, shifted by (dx,dy).
func (p Path) Translated(dx, dy float64) Path {
	d := P(dx, dy)
	segs := make([]Segment, len(p.segs))
	for i, s := range p.segs {
		s.To += d
		if s.Op == CurveOp {
			s.C1 += d
			s.C2 += d
		}
		segs[i] = s
	}
	return Path{segs: segs}
}

// Mirrored returns a copy of the path, reflected about the vertical axis
// at x = width/2, i.e., every x-coordinate is mapped to width−x. Arcs
// keep their geometric shape: the start angle is reflected and the sweep
// direction reverses.
func (p Path) Mirrored(width float64) Path {
	segs := make([]Segment, len(p.segs))
	for i, s := range p.segs {
		s.To = mirrorPt(s.To, width)
		if s.Op == CurveOp {
			s.C1 = mirrorPt(s.C1, width)
			s.C2 = mirrorPt(s.C2, width)
		}
		if s.Op == ArcOp {
			s.Theta = math.Pi - s.Theta
			s.Sweep = -s.Sweep
		}
		segs[i] = s
	}
	return Path{segs: segs}
}

func mirrorPt(pt arithm.Pair, width float64) arithm.Pair {
	return P(width-X(pt), Y(pt))
}

// Bounds returns the bounding box of all points of a path, including
// curve control points, with arcs accounted for by their full circle.
// The second return value is false for empty paths.
func (p Path) Bounds() (min, max arithm.Pair, ok bool) {
	if len(p.segs) == 0 {
		return P(0, 0), P(0, 0), false
	}
	xmin, ymin := math.Inf(1), math.Inf(1)
	xmax, ymax := math.Inf(-1), math.Inf(-1)
	include := func(pt arithm.Pair, r float64) {
		xmin = math.Min(xmin, X(pt)-r)
		ymin = math.Min(ymin, Y(pt)-r)
		xmax = math.Max(xmax, X(pt)+r)
		ymax = math.Max(ymax, Y(pt)+r)
	}
	for _, s := range p.segs {
		switch s.Op {
		case ArcOp:
			include(s.To, s.R)
		case CurveOp:
			include(s.C1, 0)
			include(s.C2, 0)
			include(s.To, 0)
		default:
			include(s.To, 0)
		}
	}
	return P(xmin, ymin), P(xmax, ymax), true
}
