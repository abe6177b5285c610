/*
Package symbols generates placeholder symbol paths for invisible
characters. Every invisible kind has a fixed geometric recipe,
parameterized proportionally by the destination box: a bent return arrow
for newlines, a rightward arrow for tabs, a centered ring for spaces,
and so on. Path generation is pure and deterministic, so callers may
cache paths per box size.

Paths use the box's local coordinate system, origin at the bottom-left
corner, y growing upwards.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022–2024 Norbert Pillmayer <norbert@pillmayer.com>

*/
package symbols

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'pilcrow.overlay'.
func tracer() tracing.Trace {
	return tracing.Select("pilcrow.overlay")
}
