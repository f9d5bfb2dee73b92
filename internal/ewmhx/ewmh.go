// Package ewmhx is the EWMH/ICCCM surface (spec component 10): the
// root-window properties the window manager publishes, and the
// client-message/property-change inputs it consumes, wrapping
// github.com/jezek/xgbutil/ewmh and /icccm the way internal/x11 wraps
// the base connection.
package ewmhx

import (
	"github.com/distatus/tilewm/internal/x11"
	"github.com/jezek/xgb/xproto"
	"github.com/jezek/xgbutil/ewmh"
)

// PublishSupported sets _NET_SUPPORTED to every atom this window
// manager advertises (spec §6).
func PublishSupported(d *x11.Display) error {
	names := make([]string, len(x11.PublishedAtoms))
	copy(names, x11.PublishedAtoms)
	return ewmh.SupportedSet(d.X, names)
}

// PublishDesktopInfo sets the desktop-count, current-desktop, viewport
// and desktop-name properties from the tag configuration (spec §6).
func PublishDesktopInfo(d *x11.Display, numTags int, current int, tagNames []string) error {
	if err := ewmh.NumberOfDesktopsSet(d.X, uint(numTags)); err != nil {
		return err
	}
	if err := ewmh.CurrentDesktopSet(d.X, uint(current)); err != nil {
		return err
	}
	if err := ewmh.DesktopViewportSet(d.X, []ewmh.DesktopViewport{{X: 0, Y: 0}}); err != nil {
		return err
	}
	return ewmh.DesktopNamesSet(d.X, tagNames)
}

// PublishClientLists sets _NET_CLIENT_LIST and
// _NET_CLIENT_LIST_STACKING from the given window ids, which the
// caller derives from model.Arena.AllClientsInMonitorOrder /
// AllStackInMonitorOrder (property T5/invariant 5).
func PublishClientLists(d *x11.Display, attachOrder, stackOrder []xproto.Window) error {
	if err := ewmh.ClientListSet(d.X, attachOrder); err != nil {
		return err
	}
	return ewmh.ClientListStackingSet(d.X, stackOrder)
}

// PublishActiveWindow sets _NET_ACTIVE_WINDOW, or clears it to None
// when win is zero.
func PublishActiveWindow(d *x11.Display, win xproto.Window) error {
	return ewmh.ActiveWindowSet(d.X, win)
}

// WindowTypeIsFloating reports whether a _NET_WM_WINDOW_TYPE atom name
// implies the client should start floating (spec §6: "dialog/utility/
// toolbar/splash -> floating").
func WindowTypeIsFloating(typeName string) bool {
	switch typeName {
	case "_NET_WM_WINDOW_TYPE_DIALOG", "_NET_WM_WINDOW_TYPE_UTILITY",
		"_NET_WM_WINDOW_TYPE_TOOLBAR", "_NET_WM_WINDOW_TYPE_SPLASH":
		return true
	default:
		return false
	}
}

// WindowType reads _NET_WM_WINDOW_TYPE, returning "" if unset.
func WindowType(d *x11.Display, win xproto.Window) string {
	types, err := ewmh.WmWindowTypeGet(d.X, win)
	if err != nil || len(types) == 0 {
		return ""
	}
	return types[0]
}
