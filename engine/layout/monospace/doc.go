/*
Package monospace implements a simple reference layout engine for
monospaced text. It holds the text in a cord, segments it into grapheme
clusters, and positions every cluster on a fixed grid of em-cells
(East Asian wide clusters occupy two cells). Line fragments are derived
by splitting on newline characters; text direction is left to right and
lines stack top to bottom.

The engine answers every query of layout.Engine deterministically, which
makes it a convenient collaborator for tests, demos and headless
rendering. It is not a general purpose typesetter.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022–2024 Norbert Pillmayer <norbert@pillmayer.com>

*/
package monospace

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'pilcrow.layout'.
func tracer() tracing.Trace {
	return tracing.Select("pilcrow.layout")
}
