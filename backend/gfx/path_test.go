package gfx

import (
	"math"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestPathBuilding(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pilcrow.gfx")
	defer teardown()
	//
	p := Path{}.MoveTo(0, 0).LineTo(10, 0).CurveTo(12, 2, 12, 8, 10, 10)
	if p.IsEmpty() {
		t.Fatal("expected non-empty path")
	}
	segs := p.Segments()
	if len(segs) != 3 {
		t.Fatalf("expected 3 segments, got %d", len(segs))
	}
	if segs[1].Op != LineOp || X(segs[1].To) != 10 {
		t.Errorf("unexpected line segment: %v", segs[1])
	}
	if segs[2].Op != CurveOp || Y(segs[2].C2) != 8 {
		t.Errorf("unexpected curve segment: %v", segs[2])
	}
}

func TestPathTranslated(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pilcrow.gfx")
	defer teardown()
	//
	p := Path{}.MoveTo(1, 1).CurveTo(2, 2, 3, 3, 4, 4).Dot(5, 5)
	q := p.Translated(10, 20)
	if X(q.Segments()[0].To) != 11 || Y(q.Segments()[0].To) != 21 {
		t.Errorf("move endpoint not translated: %v", q.Segments()[0].To)
	}
	if X(q.Segments()[1].C1) != 12 || Y(q.Segments()[1].C2) != 23 {
		t.Errorf("curve control points not translated: %v", q.Segments()[1])
	}
	// original must be untouched
	if X(p.Segments()[0].To) != 1 {
		t.Error("Translated modified its receiver")
	}
}

func TestPathMirrored(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pilcrow.gfx")
	defer teardown()
	//
	const w = 10.0
	p := Path{}.MoveTo(2, 1).LineTo(8, 1).Arc(5, 5, 2, 0, math.Pi/2)
	q := p.Mirrored(w)
	if X(q.Segments()[0].To) != 8 || X(q.Segments()[1].To) != 2 {
		t.Errorf("x-coordinates not reflected: %v", q.Segments())
	}
	if Y(q.Segments()[0].To) != 1 {
		t.Error("y-coordinate changed under mirroring")
	}
	arc := q.Segments()[2]
	if X(arc.To) != 5 || arc.Sweep != -math.Pi/2 {
		t.Errorf("arc not mirrored correctly: %v", arc)
	}
	// double reflection is the identity
	r := q.Mirrored(w)
	for i, s := range r.Segments() {
		if s != p.Segments()[i] {
			t.Errorf("segment %d differs after double mirroring: %v vs %v", i, s, p.Segments()[i])
		}
	}
}

func TestPathBounds(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pilcrow.gfx")
	defer teardown()
	//
	if _, _, ok := (Path{}).Bounds(); ok {
		t.Error("empty path should have no bounds")
	}
	p := Path{}.MoveTo(1, 2).LineTo(9, 4).Ring(5, 5, 3)
	min, max, ok := p.Bounds()
	if !ok {
		t.Fatal("expected bounds for non-empty path")
	}
	if X(min) != 1 || Y(min) != 2 {
		t.Errorf("unexpected lower bound %v", min)
	}
	if X(max) != 9 || Y(max) != 8 {
		t.Errorf("unexpected upper bound %v", max)
	}
}

func TestRoundedRectClampsRadius(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pilcrow.gfx")
	defer teardown()
	//
	p := Path{}.RoundedRect(0, 0, 4, 10, 99)
	for _, s := range p.Segments() {
		if s.Op == ArcOp && s.R > 2 {
			t.Errorf("corner radius not clamped: %v", s)
		}
	}
	min, max, _ := p.Bounds()
	if X(min) < 0 || Y(min) < 0 || X(max) > 4 || Y(max) > 10 {
		t.Errorf("rounded rect exceeds its box: %v %v", min, max)
	}
}
