package model

import (
	"testing"

	"github.com/distatus/tilewm/internal/geom"
)

// TestFullscreenRoundTrip exercises property R1: setting and then
// clearing fullscreen restores (x,y,w,h,bw,isfloating) bit-for-bit.
func TestFullscreenRoundTrip(t *testing.T) {
	c := &Client{X: 10, Y: 20, W: 300, H: 200, BW: 2, IsFloating: false}
	snapshot := *c

	c.SetFullscreen(true, geom.Rect{X: 0, Y: 0, Width: 1920, Height: 1080})
	if !c.IsFullscreen || c.BW != 0 || c.W != 1920 || c.H != 1080 {
		t.Fatalf("after SetFullscreen(true): %+v", c)
	}

	c.SetFullscreen(false, geom.Rect{})
	if c.IsFullscreen {
		t.Errorf("still fullscreen after clearing")
	}
	if c.X != snapshot.X || c.Y != snapshot.Y || c.W != snapshot.W || c.H != snapshot.H || c.BW != snapshot.BW {
		t.Errorf("geometry not restored: got %+v, want %+v", c, snapshot)
	}
	if c.IsFloating != snapshot.IsFloating {
		t.Errorf("IsFloating = %v, want %v", c.IsFloating, snapshot.IsFloating)
	}
}

// TestToggleFloatingIsInvolution exercises property R2.
func TestToggleFloatingIsInvolution(t *testing.T) {
	c := &Client{IsFloating: false}
	c.ToggleFloating()
	c.ToggleFloating()
	if c.IsFloating {
		t.Errorf("two toggles should return to the original state")
	}

	fixed := &Client{IsFixed: true, IsFloating: false}
	fixed.ToggleFloating()
	if fixed.IsFloating {
		t.Errorf("fixed clients must not become floating")
	}

	full := &Client{IsFullscreen: true, IsFloating: true}
	full.ToggleFloating()
	if !full.IsFloating {
		t.Errorf("fullscreen clients must not be affected by ToggleFloating")
	}
}

func TestApplySizeHintsRespectsIncrementsAndBounds(t *testing.T) {
	c := &Client{BaseW: 10, BaseH: 10, IncW: 8, IncH: 8, MinW: 50, MinH: 50, MaxW: 200, MaxH: 200}
	w, h := c.ApplySizeHints(57, 57, false)
	// (57-10)=47, 47 - 47%8 = 40, +10 = 50
	if w != 50 || h != 50 {
		t.Errorf("ApplySizeHints(57,57) = (%d,%d), want (50,50)", w, h)
	}
	w, h = c.ApplySizeHints(10000, 10000, false)
	if w != 200 || h != 200 {
		t.Errorf("ApplySizeHints should clamp to MaxW/MaxH, got (%d,%d)", w, h)
	}
}

func TestApplySizeHintsIgnoredVerbatim(t *testing.T) {
	c := &Client{IgnoreSizeHints: true, MinW: 500, MaxW: 10}
	w, h := c.ApplySizeHints(123, 45, false)
	if w != 123 || h != 45 {
		t.Errorf("IgnoreSizeHints should bypass clamping, got (%d,%d)", w, h)
	}
}

func TestIsVisibleOmniTagSentinel(t *testing.T) {
	c := &Client{Tags: OmniTag}
	if c.IsVisible(^uint32(0)) {
		t.Errorf("OmniTag placeholder must never report visible")
	}
}
