package dimen

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestUnits(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pilcrow.core")
	defer teardown()
	//
	if BP.String() != "65536sp" {
		t.Errorf("a big point BP should be 65536 scaled points SP")
	}
	if (12 * BP).Points() != 12.0 {
		t.Errorf("expected 12bp to be 12 points, is %g", (12 * BP).Points())
	}
}

func TestPointsRoundTrip(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pilcrow.core")
	defer teardown()
	//
	for _, pts := range []float64{0, 0.5, 10.2, 144} {
		d := FromPoints(pts)
		if diff := d.Points() - pts; diff > 1e-4 || diff < -1e-4 {
			t.Errorf("round trip of %gpt off by %g", pts, diff)
		}
	}
}

func TestRect(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pilcrow.core")
	defer teardown()
	//
	r := RectAt(Point{10 * BP, 20 * BP}, 100*BP, 14*BP)
	if r.Width() != 100*BP {
		t.Errorf("expected width to be 100bp, is %s", r.Width())
	}
	if r.Height() != 14*BP {
		t.Errorf("expected height to be 14bp, is %s", r.Height())
	}
	if r.IsVoid() {
		t.Errorf("rectangle should not be void")
	}
	if !(Rect{}).IsVoid() {
		t.Errorf("zero rectangle should be void")
	}
}
