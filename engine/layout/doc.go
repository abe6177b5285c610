/*
Package layout defines the contracts between a text layout engine and
its collaborators. A layout engine positions glyphs within line fragments,
which in turn are stacked into text containers. Clients like the overlay
renderer only ever query an engine through the interfaces of this package;
the engine itself is provided by the host application (sub-package
monospace carries a simple reference implementation).

Glyph indexes and character indexes are distinct index spaces: a glyph
may cover more than one character (grapheme clusters), and engines
translate between the two.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022–2024 Norbert Pillmayer <norbert@pillmayer.com>

*/
package layout
