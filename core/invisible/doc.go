/*
Package invisible classifies characters that have no visible glyph, or a
glyph easily confused with surrounding whitespace. Editors show such
characters as placeholder symbols ("formatting marks"); this package decides
which placeholder a given code-point gets, if any.

Classification is a pure function over a closed set of kinds. Each kind is
additionally linked to the preference key which governs its individual
visibility, so that clients can subscribe to exactly the set of preferences
relevant for invisibles display.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022–2024 Norbert Pillmayer <norbert@pillmayer.com>

*/
package invisible
