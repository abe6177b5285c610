package monospace

// Governed by a 3-Clause BSD license. License file may be found in the root
// folder of this module.
//
// Copyright © 2022–2024 Norbert Pillmayer <norbert@pillmayer.com>

import (
	"strings"

	"github.com/npillmayer/cords"
	"github.com/npillmayer/pilcrow/core/dimen"
	"github.com/npillmayer/pilcrow/engine/layout"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
	"golang.org/x/text/unicode/bidi"
)

// frame is the engine's single text container.
type frame struct {
	size        dimen.Rect
	dir         bidi.Direction
	orientation layout.Orientation
}

func (f *frame) Size() dimen.Rect { return f.size }

func (f *frame) Direction() bidi.Direction { return f.dir }

func (f *frame) Orientation() layout.Orientation { return f.orientation }

var _ layout.Container = &frame{}

// glyph is one positioned grapheme cluster.
type glyph struct {
	charLoc, charLen int     // rune index and rune count of the cluster
	line             int     // line fragment the cluster sits on
	x                float64 // offset from the line start, in points
	w                float64 // advance, in points
	linebreak        bool
}

// Engine is a layout.Engine for monospaced text. Create it with New,
// then query it; engines are immutable.
type Engine struct {
	text    cords.Cord
	runes   []rune
	glyphs  []glyph
	lines   int
	em      float64 // cell width in points
	ascent  float64 // baseline offset from the fragment top, in points
	descent float64
	context *uax11.Context
	frame   *frame
}

// Option configures an Engine during construction.
type Option func(*Engine)

// Direction sets the container's principal writing direction. The engine
// lays out left to right regardless, but clients may query the direction
// for symbol mirroring.
func Direction(dir bidi.Direction) Option {
	return func(eng *Engine) { eng.frame.dir = dir }
}

// Orientation sets the container's line-stacking orientation.
func Orientation(o layout.Orientation) Option {
	return func(eng *Engine) { eng.frame.orientation = o }
}

// Context sets the East Asian width resolution context. Default is
// uax11.LatinContext.
func Context(ctx *uax11.Context) Option {
	return func(eng *Engine) { eng.context = ctx }
}

// New creates an engine for a given text, with a cell width of em points.
// Lines are split at newline characters; the resulting container is
// sized to the longest line and the number of lines.
func New(text string, em float64, opts ...Option) *Engine {
	grapheme.SetupGraphemeClasses()
	eng := &Engine{
		text:    cordFromString(text),
		em:      em,
		ascent:  0.8 * em,
		descent: 0.4 * em,
		context: uax11.LatinContext,
		frame: &frame{
			dir:         bidi.LeftToRight,
			orientation: layout.Horizontal,
		},
	}
	for _, opt := range opts {
		opt(eng)
	}
	eng.runes = []rune(text)
	eng.segment(text)
	w := 0.0
	for _, g := range eng.glyphs {
		if end := g.x + g.w; end > w {
			w = end
		}
	}
	eng.frame.size = dimen.RectAt(dimen.Origin,
		dimen.FromPoints(w),
		dimen.FromPoints(float64(eng.lines)*eng.lineHeight()))
	return eng
}

// segment splits the text into positioned grapheme clusters.
func (eng *Engine) segment(text string) {
	gstr := grapheme.StringFromString(text)
	charLoc, line := 0, 0
	x := 0.0
	for i := 0; i < gstr.Len(); i++ {
		cluster := gstr.Nth(i)
		g := glyph{
			charLoc: charLoc,
			charLen: len([]rune(cluster)),
			line:    line,
			x:       x,
		}
		if cluster == "\n" {
			g.linebreak = true
		} else {
			cells := uax11.Width([]byte(cluster), eng.context)
			g.w = float64(cells) * eng.em
		}
		eng.glyphs = append(eng.glyphs, g)
		charLoc += g.charLen
		if g.linebreak {
			line++
			x = 0
		} else {
			x += g.w
		}
	}
	eng.lines = line + 1
	tracer().Debugf("segmented text into %d clusters on %d lines", len(eng.glyphs), eng.lines)
}

func (eng *Engine) lineHeight() float64 {
	return eng.ascent + eng.descent
}

// Text returns the engine's text as a cord.
func (eng *Engine) Text() cords.Cord {
	return eng.text
}

// GlyphCount returns the number of grapheme clusters laid out.
func (eng *Engine) GlyphCount() int {
	return len(eng.glyphs)
}

// --- layout.Engine queries -------------------------------------------------

// ContainerFor returns the container a glyph has been laid out in, or
// nil for glyph indexes out of range.
func (eng *Engine) ContainerFor(glyphIndex int) layout.Container {
	if glyphIndex < 0 || glyphIndex >= len(eng.glyphs) {
		tracer().Debugf("no container for glyph #%d", glyphIndex)
		return nil
	}
	return eng.frame
}

// CharRangeFor translates a glyph range into the covered character range.
func (eng *Engine) CharRangeFor(glyphs layout.GlyphRange) layout.CharRange {
	glyphs = eng.clampGlyphs(glyphs)
	if glyphs.IsEmpty() {
		return layout.CharRange{}
	}
	first := eng.glyphs[glyphs.Location]
	last := eng.glyphs[glyphs.End()-1]
	return layout.CharRange{
		Location: first.charLoc,
		Length:   last.charLoc + last.charLen - first.charLoc,
	}
}

// GlyphRangeFor translates a character range into the range of glyphs
// covering it. Partially covered clusters are included whole.
func (eng *Engine) GlyphRangeFor(chars layout.CharRange) layout.GlyphRange {
	if chars.IsEmpty() || len(eng.glyphs) == 0 {
		return layout.GlyphRange{}
	}
	first, last := -1, -1
	for i, g := range eng.glyphs {
		if g.charLoc+g.charLen > chars.Location && first < 0 {
			first = i
		}
		if g.charLoc < chars.End() {
			last = i
		}
	}
	if first < 0 || last < first {
		return layout.GlyphRange{}
	}
	return layout.GlyphRange{Location: first, Length: last - first + 1}
}

// GlyphIndexFor returns the index of the glyph covering a character.
func (eng *Engine) GlyphIndexFor(charIndex int) int {
	for i, g := range eng.glyphs {
		if charIndex >= g.charLoc && charIndex < g.charLoc+g.charLen {
			return i
		}
	}
	return -1
}

// BoundingRect returns the rectangle a glyph covers, relative to the
// container's origin (top-left, y growing downwards).
func (eng *Engine) BoundingRect(glyphIndex int, c layout.Container) dimen.Rect {
	if c == nil || glyphIndex < 0 || glyphIndex >= len(eng.glyphs) {
		return dimen.Rect{}
	}
	g := eng.glyphs[glyphIndex]
	origin := dimen.Point{
		X: dimen.FromPoints(g.x),
		Y: dimen.FromPoints(float64(g.line) * eng.lineHeight()),
	}
	return dimen.RectAt(origin, dimen.FromPoints(g.w), dimen.FromPoints(eng.lineHeight()))
}

// LineFragmentRect returns the rectangle of the line fragment a glyph
// sits on, relative to the container's origin.
func (eng *Engine) LineFragmentRect(glyphIndex int, c layout.Container) dimen.Rect {
	if c == nil || glyphIndex < 0 || glyphIndex >= len(eng.glyphs) {
		return dimen.Rect{}
	}
	g := eng.glyphs[glyphIndex]
	origin := dimen.Point{
		X: 0,
		Y: dimen.FromPoints(float64(g.line) * eng.lineHeight()),
	}
	return dimen.RectAt(origin, eng.frame.size.Width(), dimen.FromPoints(eng.lineHeight()))
}

// LocationFor returns a glyph's position within its line fragment: x is
// the offset from the fragment's left edge, y the baseline offset from
// the fragment's top.
func (eng *Engine) LocationFor(glyphIndex int) dimen.Point {
	if glyphIndex < 0 || glyphIndex >= len(eng.glyphs) {
		return dimen.Origin
	}
	g := eng.glyphs[glyphIndex]
	return dimen.Point{
		X: dimen.FromPoints(g.x),
		Y: dimen.FromPoints(eng.ascent),
	}
}

// CharAt returns the character at a given index, or utf8.RuneError out
// of range.
func (eng *Engine) CharAt(charIndex int) rune {
	if charIndex < 0 || charIndex >= len(eng.runes) {
		return '�'
	}
	return eng.runes[charIndex]
}

// FullRange returns the engine's complete character range.
func (eng *Engine) FullRange() layout.CharRange {
	return layout.CharRange{Location: 0, Length: len(eng.runes)}
}

var _ layout.Engine = &Engine{}

func (eng *Engine) clampGlyphs(glyphs layout.GlyphRange) layout.GlyphRange {
	if glyphs.Location < 0 {
		glyphs.Length += glyphs.Location
		glyphs.Location = 0
	}
	if glyphs.End() > len(eng.glyphs) {
		glyphs.Length = len(eng.glyphs) - glyphs.Location
	}
	return glyphs
}

// --- Text cord -------------------------------------------------------------

// textLeaf is the cord leaf type for the engine's text; one leaf per
// line of input.
type textLeaf struct {
	content string
}

// Weight of a leaf is its string length in bytes.
func (l textLeaf) Weight() uint64 {
	return uint64(len(l.content))
}

func (l textLeaf) String() string {
	return l.content
}

// Split splits a leaf at position i, resulting in 2 new leafs.
func (l textLeaf) Split(i uint64) (cords.Leaf, cords.Leaf) {
	return textLeaf{content: l.content[:i]}, textLeaf{content: l.content[i:]}
}

// Substring returns a string segment of the leaf's text fragment.
func (l textLeaf) Substring(i, j uint64) []byte {
	return []byte(l.content)[i:j]
}

var _ cords.Leaf = textLeaf{}

func cordFromString(text string) cords.Cord {
	b := cords.NewBuilder()
	for len(text) > 0 {
		line := text
		if i := strings.IndexByte(text, '\n'); i >= 0 {
			line, text = text[:i+1], text[i+1:]
		} else {
			text = ""
		}
		b.Append(textLeaf{content: line})
	}
	return b.Cord()
}

// --- Invalidation recording ------------------------------------------------

// Recorder is a layout.Invalidator which records every invalidation
// request it receives, in order.
type Recorder struct {
	Display []layout.CharRange
	Layout  []layout.CharRange
}

// InvalidateDisplay records a display invalidation.
func (rec *Recorder) InvalidateDisplay(chars layout.CharRange) {
	rec.Display = append(rec.Display, chars)
}

// InvalidateLayout records a layout invalidation.
func (rec *Recorder) InvalidateLayout(chars layout.CharRange) {
	rec.Layout = append(rec.Layout, chars)
}

var _ layout.Invalidator = &Recorder{}
