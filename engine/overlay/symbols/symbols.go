package symbols

// Governed by a 3-Clause BSD license. License file may be found in the root
// folder of this module.
//
// Copyright © 2022–2024 Norbert Pillmayer <norbert@pillmayer.com>

import (
	"github.com/npillmayer/pilcrow/backend/gfx"
	"github.com/npillmayer/pilcrow/core/invisible"
	"github.com/npillmayer/pilcrow/core/percent"
)

// PathFor builds the placeholder symbol path for an invisible kind,
// fitted into a box of the given size. Newline symbols are sized from
// the box height alone, since newline glyphs carry no advance width.
// For right-to-left text, directional symbols (newline, tab) are
// mirrored about the box's vertical center axis; all other kinds are
// direction-invariant.
//
// PathFor returns an empty path for invisible.None.
func PathFor(kind invisible.Kind, box gfx.Box, rtl bool) gfx.Path {
	var p gfx.Path
	switch kind {
	case invisible.NewLine:
		p = newLine(box.H)
	case invisible.Tab:
		p = tab(box)
	case invisible.Space:
		p = space(box)
	case invisible.NoBreakSpace:
		p = noBreakSpace(box)
	case invisible.FullwidthSpace:
		p = fullwidthSpace(box)
	case invisible.OtherWhitespace:
		p = otherWhitespace(box)
	case invisible.OtherControl:
		p = otherControl(box)
	default:
		tracer().Debugf("no symbol for kind %v", kind)
		return gfx.Path{}
	}
	if rtl && (kind == invisible.NewLine || kind == invisible.Tab) {
		p = p.Mirrored(box.W)
	}
	return p
}

// newLine draws a return arrow: stem down the right side, a bend to the
// left, a horizontal shaft, and two barbs at the tip.
func newLine(h float64) gfx.Path {
	return gfx.Path{}.
		MoveTo(0.56*h, 0.85*h).
		LineTo(0.56*h, 0.55*h).
		CurveTo(0.56*h, 0.38*h, 0.48*h, 0.25*h, 0.32*h, 0.25*h).
		LineTo(0.03*h, 0.25*h).
		MoveTo(0.20*h, 0.42*h).
		LineTo(0.03*h, 0.25*h).
		LineTo(0.20*h, 0.08*h)
}

// tab draws a rightward arrow at mid-height. The margin between arrow
// tip and the right box edge shrinks with the available width, so very
// narrow boxes still render a visible arrowhead.
func tab(box gfx.Box) gfx.Path {
	arrow := 0.3 * box.H
	margin := 0.7 * (box.W - arrow)
	if max := 0.4 * box.H; margin > max {
		margin = max
	}
	if margin < 0 {
		margin = 0
	}
	tip, y := box.W-margin, box.H/2
	return gfx.Path{}.
		MoveTo(tip-arrow, y).
		LineTo(tip, y).
		MoveTo(tip-0.25*arrow, y+0.25*arrow).
		LineTo(tip, y).
		LineTo(tip-0.25*arrow, y-0.25*arrow)
}

// space draws a small centered ring. The dot at the center keeps the
// interior non-empty for rasterizers which drop hollow outlines.
func space(box gfx.Box) gfx.Path {
	r := box.H / 15
	cx, cy := box.W/2, box.H/2
	return gfx.Path{}.Ring(cx, cy, r).Dot(cx, cy)
}

// noBreakSpace draws the space ring with a caret mark above it.
func noBreakSpace(box gfx.Box) gfx.Path {
	r := box.H / 15
	cx, cy := box.W/2, box.H/2
	return gfx.Path{}.
		Ring(cx, cy, r).
		Dot(cx, cy).
		MoveTo(cx-1.8*r, cy+1.6*r).
		LineTo(cx, cy+3.2*r).
		LineTo(cx+1.8*r, cy+1.6*r)
}

// fullwidthSpace draws a centered rounded square, sized from the smaller
// box extent, inset by 5%, with a corner radius of 10% of the side.
func fullwidthSpace(box gfx.Box) gfx.Path {
	side := box.W
	if box.H < side {
		side = box.H
	}
	inset := percent.Percent(5)
	radius := percent.Percent(10)
	inner := side - 2*inset.Of(side)
	return gfx.Path{}.RoundedRect(
		(box.W-inner)/2, (box.H-inner)/2,
		inner, inner,
		radius.Of(side))
}

// otherWhitespace draws two horizontal bars.
func otherWhitespace(box gfx.Box) gfx.Path {
	left := percent.Percent(20).Of(box.W)
	right := percent.Percent(80).Of(box.W)
	low := percent.Percent(30).Of(box.H)
	high := percent.Percent(80).Of(box.H)
	return gfx.Path{}.
		MoveTo(left, low).
		LineTo(right, low).
		MoveTo(left, high).
		LineTo(right, high)
}

// otherControl draws a question mark: a cubic over the top, a cubic into
// the stem, a short stem line and a terminal dot.
func otherControl(box gfx.Box) gfx.Path {
	w, h := box.W, box.H
	return gfx.Path{}.
		MoveTo(0.1*w, 0.75*h).
		CurveTo(0.1*w, 0.95*h, 0.9*w, 0.95*h, 0.9*w, 0.75*h).
		CurveTo(0.9*w, 0.55*h, 0.5*w, 0.55*h, 0.5*w, 0.40*h).
		LineTo(0.5*w, 0.30*h).
		Dot(0.5*w, 0.15*h)
}
