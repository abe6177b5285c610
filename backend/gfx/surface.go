package gfx

// Governed by a 3-Clause BSD license. License file may be found in the root
// folder of this module.
//
// Copyright © 2022–2024 Norbert Pillmayer <norbert@pillmayer.com>

import (
	"image/color"

	"github.com/npillmayer/arithm"
)

// LineCap selects the stroke endpoint style of a surface.
type LineCap int8

// Line cap styles.
const (
	ButtCap LineCap = iota
	RoundCap
)

// Surface is a drawing target for paths. Implementations relay to a
// concrete graphics backend. Stroke parameters (color, line width, cap
// style) are part of the surface state, which Save and Restore manage as
// a stack.
type Surface interface {
	Save()    // push the current graphics state
	Restore() // pop the graphics state pushed by the matching Save
	SetColor(c color.Color)
	SetLineWidth(w float64)
	SetLineCap(cap LineCap)
	Stroke(p Path, at arithm.Pair) // stroke path p, translated by at
}
