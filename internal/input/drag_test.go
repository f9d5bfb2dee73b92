package input

import (
	"testing"

	"github.com/distatus/tilewm/internal/geom"
)

func TestApplyMoveTranslatesByPointerDelta(t *testing.T) {
	start := geom.Rect{X: 100, Y: 100, Width: 300, Height: 200}
	d := NewDrag(DragMove, 50, 50, start)

	got := d.ApplyMove(16, 70, 40)
	want := geom.Rect{X: 120, Y: 90, Width: 300, Height: 200}
	if got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}
	if d.LastMotionMS != 16 {
		t.Errorf("LastMotionMS = %d, want 16", d.LastMotionMS)
	}
}

func TestApplyResizeGrowsFromFixedOrigin(t *testing.T) {
	start := geom.Rect{X: 10, Y: 10, Width: 100, Height: 100}
	d := NewDrag(DragResize, 0, 0, start)

	got := d.ApplyResize(16, 20, -10)
	want := geom.Rect{X: 10, Y: 10, Width: 120, Height: 90}
	if got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestApplyResizeNeverCollapsesBelowOnePixel(t *testing.T) {
	start := geom.Rect{X: 0, Y: 0, Width: 50, Height: 50}
	d := NewDrag(DragResize, 0, 0, start)

	got := d.ApplyResize(16, -1000, -1000)
	if got.Width != 1 || got.Height != 1 {
		t.Errorf("got %+v, want both dimensions clamped to 1", got)
	}
}

func TestShouldApplyMotionThrottle(t *testing.T) {
	d := NewDrag(DragMove, 0, 0, geom.Rect{})
	d.LastMotionMS = 1000

	if d.ShouldApplyMotion(1010) {
		t.Error("expected throttle to reject an event only 10ms later")
	}
	if !d.ShouldApplyMotion(1016) {
		t.Error("expected throttle to accept an event exactly 16ms later")
	}
}

func TestCancelMarksDragCancelled(t *testing.T) {
	d := NewDrag(DragPlace, 0, 0, geom.Rect{})
	if d.Cancelled {
		t.Fatal("new drag should not start cancelled")
	}
	d.Cancel()
	if !d.Cancelled {
		t.Error("expected Cancel to set Cancelled")
	}
}
