package monospace

import (
	"testing"

	"github.com/npillmayer/pilcrow/core/dimen"
	"github.com/npillmayer/pilcrow/engine/layout"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"golang.org/x/text/unicode/bidi"
)

func TestEngineLayout(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pilcrow.layout")
	defer teardown()
	//
	eng := New("a界\nb", 10)
	if eng.GlyphCount() != 4 {
		t.Fatalf("expected 4 glyphs, got %d", eng.GlyphCount())
	}
	c := eng.ContainerFor(0)
	if c == nil {
		t.Fatal("expected a container for glyph #0")
	}
	if c.Direction() != bidi.LeftToRight || c.Orientation() != layout.Horizontal {
		t.Error("unexpected default container properties")
	}
	// 'a' is 1 cell, '界' 2 cells, LF breaks the line, 'b' 1 cell
	if w := c.Size().Width(); w != dimen.FromPoints(30) {
		t.Errorf("expected container width 30pt, got %v", w)
	}
	if h := c.Size().Height(); h != dimen.FromPoints(24) {
		t.Errorf("expected container height 24pt (2 lines), got %v", h)
	}
	wide := eng.BoundingRect(1, c)
	if wide.Width() != dimen.FromPoints(20) {
		t.Errorf("expected wide cluster advance 20pt, got %v", wide.Width())
	}
	if wide.TopL.X != dimen.FromPoints(10) {
		t.Errorf("expected wide cluster at x=10pt, got %v", wide.TopL.X)
	}
	second := eng.LineFragmentRect(3, c)
	if second.TopL.Y != dimen.FromPoints(12) {
		t.Errorf("expected 2nd line fragment at y=12pt, got %v", second.TopL.Y)
	}
	loc := eng.LocationFor(3)
	if loc.X != 0 || loc.Y != dimen.FromPoints(8) {
		t.Errorf("expected glyph #3 at (0pt, baseline 8pt), got %v", loc)
	}
}

func TestEngineContainerOutOfRange(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pilcrow.layout")
	defer teardown()
	//
	eng := New("ab", 10)
	if eng.ContainerFor(-1) != nil || eng.ContainerFor(2) != nil {
		t.Error("expected nil container for out-of-range glyph indexes")
	}
}

func TestEngineRangeRoundTrip(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pilcrow.layout")
	defer teardown()
	//
	eng := New("xéy", 10) // 'e' + combining acute is a single cluster
	if eng.GlyphCount() != 3 {
		t.Fatalf("expected 3 glyphs, got %d", eng.GlyphCount())
	}
	chars := eng.CharRangeFor(layout.GlyphRange{Location: 1, Length: 1})
	if chars != (layout.CharRange{Location: 1, Length: 2}) {
		t.Errorf("expected cluster to cover chars [1,3), got %v", chars)
	}
	glyphs := eng.GlyphRangeFor(chars)
	if glyphs != (layout.GlyphRange{Location: 1, Length: 1}) {
		t.Errorf("round trip lost the glyph range, got %v", glyphs)
	}
	// a range cutting into the cluster includes the whole cluster
	glyphs = eng.GlyphRangeFor(layout.CharRange{Location: 2, Length: 2})
	if glyphs != (layout.GlyphRange{Location: 1, Length: 2}) {
		t.Errorf("partial cluster coverage broken, got %v", glyphs)
	}
	if eng.GlyphIndexFor(2) != 1 {
		t.Errorf("expected char #2 in glyph #1, got %d", eng.GlyphIndexFor(2))
	}
	if eng.CharAt(3) != 'y' || eng.CharAt(99) != '�' {
		t.Error("CharAt broken")
	}
	if eng.FullRange() != (layout.CharRange{Location: 0, Length: 4}) {
		t.Errorf("unexpected full range %v", eng.FullRange())
	}
}

func TestEngineTextCord(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pilcrow.layout")
	defer teardown()
	//
	eng := New("hello\nworld\n", 10)
	if eng.Text().String() != "hello\nworld\n" {
		t.Errorf("cord does not reproduce the text: %q", eng.Text().String())
	}
}

func TestRecorder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pilcrow.layout")
	defer teardown()
	//
	rec := &Recorder{}
	rec.InvalidateDisplay(layout.CharRange{Location: 0, Length: 5})
	rec.InvalidateLayout(layout.CharRange{Location: 2, Length: 1})
	if len(rec.Display) != 1 || rec.Display[0].Length != 5 {
		t.Errorf("display invalidation not recorded: %v", rec.Display)
	}
	if len(rec.Layout) != 1 || rec.Layout[0].Location != 2 {
		t.Errorf("layout invalidation not recorded: %v", rec.Layout)
	}
}
