package layout

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestRanges(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pilcrow.layout")
	defer teardown()
	//
	gr := GlyphRange{Location: 3, Length: 4}
	if gr.End() != 7 {
		t.Errorf("expected range end 7, got %d", gr.End())
	}
	if !gr.Contains(3) || !gr.Contains(6) || gr.Contains(7) {
		t.Error("glyph range containment broken at boundaries")
	}
	if gr.IsEmpty() || !(CharRange{Location: 5}).IsEmpty() {
		t.Error("emptiness check broken")
	}
}

func TestControlActions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pilcrow.layout")
	defer teardown()
	//
	a := ActionZeroAdvance | ActionLineBreak
	if !a.Has(ActionZeroAdvance) || !a.Has(ActionLineBreak) {
		t.Error("combined action set misses its members")
	}
	if a.Has(ActionHorizontalTab) || ActionNone.Has(ActionZeroAdvance) {
		t.Error("action set contains actions it should not")
	}
}
