package model

import "github.com/distatus/tilewm/internal/geom"

// WindowID is an opaque handle onto the X window a Client wraps. The
// model package never talks to X directly (that is internal/x11's job);
// it only stores the handle so callers can correlate model state with
// wire events.
type WindowID uint32

// Client represents one managed top-level X window (spec §3).
type Client struct {
	Win  WindowID
	PID  int
	Name string // bounded title string

	// current and previous geometry, border width
	X, Y, W, H             int
	OldX, OldY, OldW, OldH int
	BW, OldBW              int

	// ICCCM/WM_NORMAL_HINTS derived sizing constraints
	BaseW, BaseH int
	IncW, IncH   int
	MaxW, MaxH   int
	MinW, MinH   int
	MinA, MaxA   float64
	IsFixed      bool

	// state flags
	IsFloating      bool
	IsUrgent        bool
	IsFullscreen    bool
	NeverFocus      bool
	OldState        bool // pre-fullscreen IsFloating snapshot
	IgnoreSizeHints bool
	BeingMoved      bool
	IsTerminal      bool
	NoSwallow       bool

	Tags uint32

	Mon        MonitorID
	Next       ClientID // next in monitor's attach-order client list
	SNext      ClientID // next in monitor's focus-order stack
	Swallowing ClientID // child client this one currently hides, or NoClient
	HiddenWin  WindowID // this client's own window id while Swallowing is valid
}

// Rect returns the client's current geometry as a geom.Rect.
func (c *Client) Rect() geom.Rect {
	return geom.Rect{X: c.X, Y: c.Y, Width: c.W, Height: c.H}
}

// SetRect updates the client's current geometry from a geom.Rect.
func (c *Client) SetRect(r geom.Rect) {
	c.X, c.Y, c.W, c.H = r.X, r.Y, r.Width, r.Height
}

// SaveGeometry snapshots the current geometry/border into the "old"
// fields, used before a fullscreen transition or an arrange pass that
// is about to overwrite the client's position.
func (c *Client) SaveGeometry() {
	c.OldX, c.OldY, c.OldW, c.OldH, c.OldBW = c.X, c.Y, c.W, c.H, c.BW
}

// RestoreGeometry writes the "old" geometry/border back as current,
// the inverse of SaveGeometry. Used by R1 (fullscreen round-trip) and
// R3 (swallow round-trip).
func (c *Client) RestoreGeometry() {
	c.X, c.Y, c.W, c.H, c.BW = c.OldX, c.OldY, c.OldW, c.OldH, c.OldBW
}

// IsVisible reports whether c should be drawn given the monitor's
// currently selected tagset, honoring the OmniTag placeholder.
func (c *Client) IsVisible(selectedTags uint32) bool {
	if c.Tags == OmniTag {
		return false
	}
	return c.Tags&selectedTags != 0
}

// ApplySizeHints clamps a candidate (w,h) pair to the client's ICCCM
// size hints (base/inc/min/max, aspect ratio) unless hint application
// is disabled. interactive is true for live resize drags, where the
// aspect-ratio clamp is skipped so a drag does not visually "fight"
// the cursor (matches the generic resize path referenced by spec §4.3).
func (c *Client) ApplySizeHints(w, h int, interactive bool) (int, int) {
	if c.IgnoreSizeHints {
		if w < 1 {
			w = 1
		}
		if h < 1 {
			h = 1
		}
		return w, h
	}

	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}

	if !interactive && !c.IsFixed {
		if c.MinA > 0 || c.MaxA > 0 {
			bw, bh := float64(w-c.BaseW), float64(h-c.BaseH)
			if c.MaxA > 0 && bw/bh > c.MaxA {
				bw = bh * c.MaxA
				w = c.BaseW + int(bw)
			} else if c.MinA > 0 && bw/bh < c.MinA {
				bh = bw / c.MinA
				h = c.BaseH + int(bh)
			}
		}
	}

	if c.IncW > 0 {
		w -= c.BaseW
		w -= w % c.IncW
		w += c.BaseW
	}
	if c.IncH > 0 {
		h -= c.BaseH
		h -= h % c.IncH
		h += c.BaseH
	}

	if c.MinW > 0 && w < c.MinW {
		w = c.MinW
	}
	if c.MinH > 0 && h < c.MinH {
		h = c.MinH
	}
	if c.MaxW > 0 && w > c.MaxW {
		w = c.MaxW
	}
	if c.MaxH > 0 && h > c.MaxH {
		h = c.MaxH
	}
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return w, h
}

// SetFullscreen transitions c into or out of fullscreen, implementing
// spec §4.7. mon provides the monitor rectangle to fill. The round trip
// SetFullscreen(true) then SetFullscreen(false) restores geometry,
// border width and IsFloating bit-for-bit (property R1).
func (c *Client) SetFullscreen(full bool, monRect geom.Rect) {
	if full == c.IsFullscreen {
		return
	}
	if full {
		c.SaveGeometry()
		c.OldState = c.IsFloating
		c.IsFloating = true
		c.IsFullscreen = true
		c.BW = 0
		c.SetRect(monRect)
		return
	}
	c.IsFullscreen = false
	c.IsFloating = c.OldState
	c.RestoreGeometry()
}

// ToggleFloating flips IsFloating for non-fixed, non-fullscreen clients
// and is its own inverse (property R2): the client's geometry is left
// untouched (the layout engine or floating-position DSL repositions it
// on the next arrange pass). Fixed-size and fullscreen clients are
// untouched, matching the "involution on non-fixed, non-fullscreen
// clients" wording of R2.
func (c *Client) ToggleFloating() {
	if c.IsFixed || c.IsFullscreen {
		return
	}
	c.IsFloating = !c.IsFloating
}
