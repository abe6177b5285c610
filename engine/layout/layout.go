package layout

// Governed by a 3-Clause BSD license. License file may be found in the root
// folder of this module.
//
// Copyright © 2022–2024 Norbert Pillmayer <norbert@pillmayer.com>

import (
	"github.com/npillmayer/pilcrow/core/dimen"
	"golang.org/x/text/unicode/bidi"
)

// GlyphRange is a half-open range of glyph indexes.
type GlyphRange struct {
	Location, Length int
}

// End returns the index one past the last glyph of the range.
func (gr GlyphRange) End() int {
	return gr.Location + gr.Length
}

// Contains checks if a glyph index falls within the range.
func (gr GlyphRange) Contains(i int) bool {
	return i >= gr.Location && i < gr.End()
}

// IsEmpty is true for ranges of length zero or less.
func (gr GlyphRange) IsEmpty() bool {
	return gr.Length <= 0
}

// CharRange is a half-open range of character indexes.
type CharRange struct {
	Location, Length int
}

// End returns the index one past the last character of the range.
func (cr CharRange) End() int {
	return cr.Location + cr.Length
}

// Contains checks if a character index falls within the range.
func (cr CharRange) Contains(i int) bool {
	return i >= cr.Location && i < cr.End()
}

// IsEmpty is true for ranges of length zero or less.
func (cr CharRange) IsEmpty() bool {
	return cr.Length <= 0
}

// Orientation is the line-stacking orientation of a text container.
type Orientation int

// Possible container orientations.
const (
	Horizontal Orientation = iota // lines stack top to bottom
	Vertical                      // lines stack, e.g., right to left (CJK)
)

// Container identifies a text container, the region a layout engine
// fills with line fragments.
type Container interface {
	Size() dimen.Rect          // the container's extent
	Direction() bidi.Direction // principal writing direction
	Orientation() Orientation  // line-stacking orientation
}

// Engine is the query surface of a text layout engine. All coordinates
// are in points; rectangles returned for glyphs and line fragments are
// relative to the container's origin.
//
// ContainerFor may return nil for glyph indexes the engine has not laid
// out (yet); callers must be prepared for that.
type Engine interface {
	ContainerFor(glyphIndex int) Container
	CharRangeFor(glyphs GlyphRange) CharRange
	GlyphRangeFor(chars CharRange) GlyphRange
	GlyphIndexFor(charIndex int) int
	BoundingRect(glyphIndex int, c Container) dimen.Rect
	LineFragmentRect(glyphIndex int, c Container) dimen.Rect
	LocationFor(glyphIndex int) dimen.Point
	CharAt(charIndex int) rune
	FullRange() CharRange
}

// ControlAction is a set of treatments a layout engine proposes for a
// control character.
type ControlAction int

// ActionNone is the empty action set.
const ActionNone ControlAction = 0

// Control character treatments, combinable as a bitset.
const (
	ActionZeroAdvance    ControlAction = 1 << iota // glyph gets no advance
	ActionWhitespace                               // treat as whitespace
	ActionLineBreak                                // break the line here
	ActionHorizontalTab                            // advance to next tab stop
	ActionContainerBreak                           // jump to the next container
)

// Has checks if an action set includes a given action.
func (a ControlAction) Has(action ControlAction) bool {
	return a&action != 0
}

// Invalidator is the write-back surface for display and layout
// invalidation. Hosts inject an implementation; engines and overlay
// clients call it to request redraw or re-layout of a character range.
type Invalidator interface {
	InvalidateDisplay(chars CharRange)
	InvalidateLayout(chars CharRange)
}
