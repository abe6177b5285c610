package canvasadapter

import (
	"image/color"
	"testing"

	"github.com/npillmayer/pilcrow/backend/gfx"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/tdewolff/canvas"
)

func newTestSurface() *Surface {
	c := canvas.New(100, 100)
	return New(canvas.NewContext(c))
}

func TestSurfaceStateStack(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pilcrow.gfx")
	defer teardown()
	//
	surf := newTestSurface()
	surf.SetLineWidth(2)
	surf.SetColor(color.RGBA{R: 0xff, A: 0xff})
	surf.Save()
	surf.SetLineWidth(5)
	surf.SetLineCap(gfx.RoundCap)
	if surf.state.width != 5 || surf.state.cap != gfx.RoundCap {
		t.Fatalf("state not updated: %+v", surf.state)
	}
	surf.Restore()
	if surf.state.width != 2 || surf.state.cap != gfx.ButtCap {
		t.Errorf("state not restored: %+v", surf.state)
	}
	if surf.state.color != (color.RGBA{R: 0xff, A: 0xff}) {
		t.Errorf("color not restored: %+v", surf.state.color)
	}
	surf.Restore() // unbalanced, must not panic
}

func TestSurfaceStrokesPaths(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pilcrow.gfx")
	defer teardown()
	//
	surf := newTestSurface()
	surf.SetLineWidth(0.5)
	surf.SetLineCap(gfx.RoundCap)
	p := gfx.Path{}.
		MoveTo(0, 0).LineTo(8, 0).
		CurveTo(9, 1, 9, 5, 8, 6).
		Ring(4, 3, 2).
		Dot(4, 3)
	surf.Stroke(p, gfx.P(10, 10)) // must not panic
	surf.Stroke(gfx.Path{}, gfx.P(0, 0))
	p = gfx.Path{}.RoundedRect(0, 0, 8, 6, 1.5)
	surf.Stroke(p, gfx.P(20, 20))
}
