// Package x11 is the Display Capability boundary (spec component 1):
// every call the rest of the window manager makes into X11 goes
// through the Display type here, wrapping github.com/jezek/xgbutil the
// way the teacher wraps it in gobar - a thin struct holding the
// xgbutil.XUtil connection plus the handful of derived handles
// (xwindow.Window, atom ids) call sites actually need.
package x11

import (
	"fmt"

	"github.com/jezek/xgb/xproto"
	"github.com/jezek/xgbutil"
	"github.com/jezek/xgbutil/ewmh"
	"github.com/jezek/xgbutil/icccm"
	"github.com/jezek/xgbutil/keybind"
	"github.com/jezek/xgbutil/mousebind"
	"github.com/jezek/xgbutil/xinerama"
	"github.com/jezek/xgbutil/xwindow"
)

// ErrAnotherWMRunning is returned by Open when the root window's
// SubstructureRedirect mask is already claimed by another client
// (spec §7's "startup conflict": BadAccess registering for
// substructure-redirect events).
var ErrAnotherWMRunning = fmt.Errorf("another window manager is already running")

// Display owns the X connection and the small amount of state every
// handler needs: root window, screen geometry, key/button binding
// state. It is the sole object through which internal/wm talks to X11.
type Display struct {
	X    *xgbutil.XUtil
	Root xproto.Window

	atoms   map[string]xproto.Atom
	keysyms map[uint32]xproto.Keycode
}

// Open connects to the X server named by DISPLAY, verifies no other
// window manager already owns substructure-redirect on the root
// window, and initializes key/button binding support.
func Open() (*Display, error) {
	xu, err := xgbutil.NewConn()
	if err != nil {
		return nil, fmt.Errorf("connect to X server: %w", err)
	}

	d := &Display{X: xu, Root: xu.RootWin(), atoms: make(map[string]xproto.Atom)}

	if err := d.claimSubstructureRedirect(); err != nil {
		return nil, err
	}

	keybind.Initialize(xu)
	mousebind.Initialize(xu)

	return d, nil
}

// claimSubstructureRedirect registers for the event mask that only one
// client may hold on the root window at a time; a BadAccess error here
// means another window manager is already running (spec §7).
func (d *Display) claimSubstructureRedirect() error {
	err := xproto.ChangeWindowAttributesChecked(
		d.X.Conn(), d.Root, xproto.CwEventMask,
		[]uint32{xproto.EventMaskSubstructureRedirect | xproto.EventMaskSubstructureNotify | xproto.EventMaskStructureNotify},
	).Check()
	if err != nil {
		return ErrAnotherWMRunning
	}
	return nil
}

// Close releases the X connection.
func (d *Display) Close() {
	d.X.Conn().Close()
}

// ScreenRect returns the root window's geometry.
func (d *Display) ScreenRect() (x, y int, w, h int, err error) {
	g, err := xwindow.New(d.X, d.Root).Geometry()
	if err != nil {
		return 0, 0, 0, 0, err
	}
	return g.X(), g.Y(), g.Width(), g.Height(), nil
}

// Heads returns the current Xinerama monitor geometries, one per
// physical head (spec §3's lazy Monitor creation on Xinerama change).
func (d *Display) Heads() (xinerama.Heads, error) {
	return xinerama.PhysicalHeads(d.X)
}

// SupportingCheckWindow creates the hidden child window EWMH requires
// for _NET_SUPPORTING_WM_CHECK, named "wm" (spec §6).
func (d *Display) SupportingCheckWindow() (xproto.Window, error) {
	win, err := xwindow.Generate(d.X)
	if err != nil {
		return 0, err
	}
	if err := win.CreateChecked(d.Root, -1, -1, 1, 1, 0); err != nil {
		return 0, err
	}
	if err := icccm.WmNameSet(d.X, win.Id, "wm"); err != nil {
		return 0, err
	}
	if err := ewmh.SupportingWmCheckSet(d.X, win.Id, win.Id); err != nil {
		return 0, err
	}
	if err := ewmh.SupportingWmCheckSet(d.X, d.Root, win.Id); err != nil {
		return 0, err
	}
	return win.Id, nil
}
