/*
Package gfx provides a minimal vector-graphics model for decoration
rendering: paths built from move/line/cubic/arc/dot primitives, and a
Surface which strokes them. A Surface will usually relay to a concrete
graphics implementation (e.g., Canvas or Cairo); see the canvasadapter
sub-package.

Paths live in a local coordinate system with the origin at the bottom-left
corner of a bounding box. They are immutable after construction: the
geometric transforms return copies.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022–2024 Norbert Pillmayer <norbert@pillmayer.com>

*/
package gfx
