/*
Package font is for typeface and font handling.

There is a certain confusion in the nomenclature of typesetting. We will
stick to the following definitions:

* A "typeface" is a family of fonts. An example is "Helvetica".

* A "scalable font" is a font, i.e. a variant of a typeface with a
certain weight, slant, etc.  An example is "Helvetica regular".

* A "typecase" is a scaled font, i.e. a font in a certain size.
The name is reminiscend on the wooden boxes of typesetters in the aera
of metal type.

Please note that Go (Golang) does use the terms "font" and "face"
differently–actually more or less in an opposite manner.

Typecases answer the metric queries which decoration renderers need:
cap height, ascender, point size, a normalized weight, and single-rune
advance widths.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022–2024 Norbert Pillmayer <norbert@pillmayer.com>

*/
package font

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/npillmayer/pilcrow/core"
	"github.com/npillmayer/schuko/tracing"
	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// tracer traces with key 'pilcrow.fonts'.
func tracer() tracing.Trace {
	return tracing.Select("pilcrow.fonts")
}

// ScalableFont is a font variant, to be scaled into typecases.
type ScalableFont struct {
	Fontname string
	Filepath string     // file path
	Binary   []byte     // raw data
	SFNT     *sfnt.Font // the font's container
}

// TypeCase is a font scaled to a point-size.
type TypeCase struct {
	scalableFontParent *ScalableFont
	font               xfont.Face // Go uses 'face' and 'font' in an inverse manner
	size               float64
	weight             xfont.Weight
}

// LoadOpenTypeFont loads an OpenType font from a file.
func LoadOpenTypeFont(fontfile string) (*ScalableFont, error) {
	bytez, err := os.ReadFile(fontfile)
	if err != nil {
		return nil, core.WrapError(err, core.EMISSING, "cannot load font %s", fontfile)
	}
	f, err := ParseOpenTypeFont(bytez)
	if f != nil {
		f.Filepath = fontfile
	}
	return f, err
}

// ParseOpenTypeFont interprets binary font data as an OpenType font.
func ParseOpenTypeFont(fbytes []byte) (f *ScalableFont, err error) {
	f = &ScalableFont{Binary: fbytes}
	f.SFNT, err = sfnt.Parse(f.Binary)
	if err != nil {
		return nil, core.WrapError(err, core.EINVALID, "invalid font data")
	}
	f.Fontname, _ = f.SFNT.Name(nil, sfnt.NameIDFull)
	return f, nil
}

// PrepareCase scales a font to a typecase of a given point-size.
// Face metrics are created at 72 dpi, i.e. metric queries on the typecase
// return (big) points.
func (sf *ScalableFont) PrepareCase(fontsize float64) (*TypeCase, error) {
	typecase := &TypeCase{}
	typecase.scalableFontParent = sf
	if fontsize < 5.0 || fontsize > 500.0 {
		tracer().Infof("font size must be 5pt < size < 500pt, is %g (set to 10pt)", fontsize)
		fontsize = 10.0
	}
	options := &opentype.FaceOptions{
		Size: fontsize,
		DPI:  72,
	}
	f, err := opentype.NewFace(sf.SFNT, options)
	if err != nil {
		return nil, core.WrapError(err, core.EINVALID, "cannot scale font %s", sf.Fontname)
	}
	typecase.font = f
	typecase.size = fontsize
	return typecase, nil
}

// ScalableFontParent returns the unscaled font this typecase has been
// prepared from.
func (tc *TypeCase) ScalableFontParent() *ScalableFont {
	return tc.scalableFontParent
}

// PtSize returns the point-size of the typecase.
func (tc *TypeCase) PtSize() float64 {
	return tc.size
}

// SetWeight marks the typecase as being of a certain weight.
// The zero value is normal/regular weight.
func (tc *TypeCase) SetWeight(w xfont.Weight) {
	tc.weight = w
}

// NormalizedWeight returns the typecase's weight on a scale from −1 to +1,
// with 0 being regular and bold around +0.3.
func (tc *TypeCase) NormalizedWeight() float64 {
	return float64(tc.weight) / 10
}

// CapHeight returns the height of capital letters above the baseline,
// in points. If the font does not carry a cap-height metric, a value
// of 0.7 × point-size is assumed.
func (tc *TypeCase) CapHeight() float64 {
	m := tc.font.Metrics()
	if m.CapHeight <= 0 {
		return 0.7 * tc.size
	}
	return fixed2pt(m.CapHeight)
}

// Ascender returns the distance from the baseline to the top of ascenders,
// in points.
func (tc *TypeCase) Ascender() float64 {
	return fixed2pt(tc.font.Metrics().Ascent)
}

// Advance returns the measured advance width of a single rune, in points.
// Runes without a glyph in the font measure as the replacement character.
func (tc *TypeCase) Advance(r rune) float64 {
	adv, ok := tc.font.GlyphAdvance(r)
	if !ok {
		adv, _ = tc.font.GlyphAdvance('�')
	}
	return fixed2pt(adv)
}

func fixed2pt(x fixed.Int26_6) float64 {
	return float64(x) / 64
}

// --- Fallback font ---------------------------------------------------------

// FallbackFont returns a font to be used if everything else failes. It is
// always present. Currently we use Go Sans.
func FallbackFont() *ScalableFont {
	fallbackFontLoading.Do(func() {
		fallbackFont = loadFallbackFont()
	})
	return fallbackFont
}

var fallbackFontLoading sync.Once

// fallbackFont is a font that is used if everything else failes.
// Currently we use Go Sans.
var fallbackFont *ScalableFont

func loadFallbackFont() *ScalableFont {
	var err error
	gofont := &ScalableFont{
		Fontname: "Go Sans",
		Filepath: "internal",
		Binary:   goregular.TTF,
	}
	gofont.SFNT, err = sfnt.Parse(gofont.Binary)
	if err != nil {
		panic("cannot load default font") // this cannot happen
	}
	return gofont
}

// --- Font Registry ---------------------------------------------------------

// Registry caches scalable fonts and typecases prepared from them.
type Registry struct {
	sync.Mutex
	fonts     map[string]*ScalableFont
	typecases map[string]*TypeCase
}

var globalFontRegistry *Registry

var globalRegistryCreation sync.Once

// GlobalRegistry is a registry shared by all clients of this package.
func GlobalRegistry() *Registry {
	globalRegistryCreation.Do(func() {
		globalFontRegistry = NewRegistry()
	})
	return globalFontRegistry
}

// NewRegistry creates an empty font registry.
func NewRegistry() *Registry {
	fr := &Registry{
		fonts:     make(map[string]*ScalableFont),
		typecases: make(map[string]*TypeCase),
	}
	return fr
}

// StoreFont puts a font into the registry.
func (fr *Registry) StoreFont(f *ScalableFont) {
	if f == nil {
		tracer().Errorf("registry cannot store null font")
		return
	}
	fr.Lock()
	defer fr.Unlock()
	fname := NormalizeFontname(f.Fontname)
	tracer().Debugf("registry stores font %s as %s", f.Fontname, fname)
	fr.fonts[fname] = f
}

// TypeCase scales a registered font to a given size, caching the result.
// If no font with the given name has been stored, the fallback font is
// used (and an error returned alongside the fallback typecase).
func (fr *Registry) TypeCase(name string, size float64) (*TypeCase, error) {
	tracer().Debugf("registry searches for font %s at %.2f", name, size)
	fname := NormalizeFontname(name)
	tname := NormalizeTypeCaseName(name, size)
	fr.Lock()
	defer fr.Unlock()
	if t, ok := fr.typecases[tname]; ok {
		tracer().Debugf("registry found font %s", tname)
		return t, nil
	}
	if f, ok := fr.fonts[fname]; ok {
		t, err := f.PrepareCase(size)
		if err != nil {
			return nil, err
		}
		tracer().Infof("font registry has font %s, caches at %.2f", fname, size)
		fr.typecases[tname] = t
		return t, nil
	}
	tracer().Infof("registry does not contain font %s", name)
	err := core.Error(core.EMISSING, "font %s not found in registry", name)
	tname = NormalizeTypeCaseName("fallback", size)
	if t, ok := fr.typecases[tname]; ok {
		return t, err
	}
	f := FallbackFont()
	t, _ := f.PrepareCase(size)
	tracer().Infof("font registry caches fallback font %s at %.2f", tname, size)
	fr.typecases[tname] = t
	return t, err
}

// NormalizeFontname normalizes a font name for registry lookup.
func NormalizeFontname(fname string) string {
	fname = strings.TrimSpace(fname)
	fname = strings.ReplaceAll(fname, " ", "_")
	if dot := strings.LastIndex(fname, "."); dot > 0 {
		fname = fname[:dot]
	}
	fname = strings.ToLower(fname)
	return fname
}

// NormalizeTypeCaseName normalizes a font name plus size for registry lookup.
func NormalizeTypeCaseName(fname string, size float64) string {
	fname = NormalizeFontname(fname)
	fname = fmt.Sprintf("%s-%.2f", fname, size)
	return fname
}
