package overlay

// Governed by a 3-Clause BSD license. License file may be found in the root
// folder of this module.
//
// Copyright © 2022–2024 Norbert Pillmayer <norbert@pillmayer.com>

import (
	"image/color"

	"github.com/npillmayer/pilcrow/backend/gfx"
	"github.com/npillmayer/pilcrow/core/dimen"
	"github.com/npillmayer/pilcrow/core/font"
	"github.com/npillmayer/pilcrow/core/invisible"
	"github.com/npillmayer/pilcrow/core/prefs"
	"github.com/npillmayer/pilcrow/engine/layout"
	"github.com/npillmayer/pilcrow/engine/overlay/symbols"
	"golang.org/x/text/unicode/bidi"
)

// Renderer strokes placeholder symbols for the invisible characters
// within a glyph range.
type Renderer struct {
	engine   layout.Engine
	typecase *font.TypeCase
	regs     *prefs.Registers
	surface  gfx.Surface
}

// NewRenderer creates a renderer drawing onto a surface, using a layout
// engine for glyph geometry and a type case for font metrics.
func NewRenderer(eng layout.Engine, tc *font.TypeCase, regs *prefs.Registers,
	surf gfx.Surface) *Renderer {
	//
	return &Renderer{
		engine:   eng,
		typecase: tc,
		regs:     regs,
		surface:  surf,
	}
}

// Draw renders placeholder symbols for every invisible character backing
// the given glyph range, restricted to the kinds in kinds. origin is the
// container's origin in surface coordinates; baselineOffset is the
// distance from a line fragment's top to its baseline, in points.
//
// Draw is a no-op if the show-invisibles preference is off or kinds is
// empty. Otherwise it saves the surface state and restores it when done.
// Symbol paths are cached per character within a single call; tab
// symbols are exempt since their width follows the individual tab stop.
func (r *Renderer) Draw(glyphs layout.GlyphRange, origin dimen.Point,
	baselineOffset float64, col color.Color, kinds invisible.KindSet) {
	//
	if !r.regs.Bool(invisible.PrefKeyShow) || kinds.IsEmpty() {
		return
	}
	container := r.engine.ContainerFor(glyphs.Location)
	if container == nil {
		tracer().Errorf("no text container for glyph range %v", glyphs)
		return
	}
	r.surface.Save()
	defer r.surface.Restore()
	r.surface.SetColor(col)
	r.surface.SetLineWidth(r.typecase.PtSize() * (1 + r.typecase.NormalizedWeight()) / 12)
	r.surface.SetLineCap(gfx.RoundCap)
	//
	capHeight := r.typecase.CapHeight()
	baseline := baselineOffset
	if container.Orientation() == layout.Vertical {
		// symbols sit visually centered between ascender and cap line
		baseline += (r.typecase.Ascender() - capHeight) / 2
	}
	rtl := container.Direction() == bidi.RightToLeft
	cache := make(map[rune]gfx.Path)
	chars := r.engine.CharRangeFor(glyphs)
	for ci := chars.Location; ci < chars.End(); ci++ {
		ch := r.engine.CharAt(ci)
		kind := invisible.Classify(ch)
		if kind == invisible.None || !kinds.Has(kind) {
			continue
		}
		gi := r.engine.GlyphIndexFor(ci)
		c := r.engine.ContainerFor(gi)
		if c == nil {
			tracer().Errorf("no text container for glyph #%d, skipping", gi)
			continue
		}
		box := gfx.Box{W: r.widthFor(kind, gi, c), H: capHeight}
		var p gfx.Path
		if kind == invisible.Tab {
			p = symbols.PathFor(kind, box, rtl)
		} else if cached, ok := cache[ch]; ok {
			p = cached
		} else {
			p = symbols.PathFor(kind, box, rtl)
			cache[ch] = p
		}
		frag := r.engine.LineFragmentRect(gi, c)
		loc := r.engine.LocationFor(gi)
		at := gfx.P(
			frag.TopL.X.Points()+origin.X.Points()+loc.X.Points(),
			frag.TopL.Y.Points()+origin.Y.Points()+baseline-capHeight,
		)
		r.surface.Stroke(p, at)
	}
}

// widthFor resolves the rendering width for an invisible character's
// symbol box. Newlines carry no advance. For no-break spaces the layout
// engine's bounding boxes are not reliable, so the font's own advance is
// measured instead; control characters get the advance of the font's
// question mark glyph.
func (r *Renderer) widthFor(kind invisible.Kind, glyphIndex int, c layout.Container) float64 {
	switch kind {
	case invisible.NewLine:
		return 0
	case invisible.NoBreakSpace:
		return r.typecase.Advance('\u00A0')
	case invisible.OtherControl:
		return r.typecase.Advance('?')
	}
	return r.engine.BoundingRect(glyphIndex, c).Width().Points()
}

// EnabledKinds collects the set of invisible kinds whose per-kind
// visibility preference is on.
func EnabledKinds(regs *prefs.Registers) invisible.KindSet {
	var s invisible.KindSet
	for _, k := range invisible.Kinds() {
		if regs.Bool(k.PrefKey()) {
			s = s.With(k)
		}
	}
	return s
}
