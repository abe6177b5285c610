/*
Package overlay renders placeholder symbols for invisible characters on
top of laid-out text. The Renderer walks a glyph range, classifies the
characters behind it and strokes a symbol path for every invisible
character the user wants to see. The Controller tracks the visibility
preferences and drives display and layout invalidation when they change.

The overlay does not lay out text itself; it queries a layout.Engine
provided by the host and draws onto a gfx.Surface the host has prepared.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022–2024 Norbert Pillmayer <norbert@pillmayer.com>

*/
package overlay

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'pilcrow.overlay'.
func tracer() tracing.Trace {
	return tracing.Select("pilcrow.overlay")
}
