package x11

import (
	"github.com/jezek/xgb/xproto"
	"github.com/jezek/xgbutil/xprop"
)

// Atom interns name, caching the round-trip so repeated lookups of the
// same protocol atom (WM_PROTOCOLS, WM_DELETE_WINDOW, _NET_WM_STATE...)
// do not hit the wire every time a handler runs.
func (d *Display) Atom(name string) (xproto.Atom, error) {
	if a, ok := d.atoms[name]; ok {
		return a, nil
	}
	a, err := xprop.Atm(d.X, name)
	if err != nil {
		return 0, err
	}
	d.atoms[name] = a
	return a, nil
}

// MustAtom is Atom without an error return, for the fixed set of atoms
// resolved once at startup and assumed always available on a
// conforming server; a failure here is a fatal startup condition, not
// a per-window runtime error.
func (d *Display) MustAtom(name string) xproto.Atom {
	a, err := d.Atom(name)
	if err != nil {
		panic("x11: could not intern required atom " + name + ": " + err.Error())
	}
	return a
}

// Published EWMH/ICCCM atom names the root window advertises via
// _NET_SUPPORTED (spec §6).
var PublishedAtoms = []string{
	"_NET_SUPPORTED",
	"_NET_SUPPORTING_WM_CHECK",
	"_NET_NUMBER_OF_DESKTOPS",
	"_NET_CURRENT_DESKTOP",
	"_NET_DESKTOP_VIEWPORT",
	"_NET_DESKTOP_NAMES",
	"_NET_ACTIVE_WINDOW",
	"_NET_CLIENT_LIST",
	"_NET_CLIENT_LIST_STACKING",
	"_NET_WM_STATE",
	"_NET_WM_STATE_FULLSCREEN",
	"_NET_WM_WINDOW_TYPE",
	"_NET_WM_WINDOW_TYPE_DIALOG",
	"_NET_WM_WINDOW_TYPE_UTILITY",
	"_NET_WM_WINDOW_TYPE_TOOLBAR",
	"_NET_WM_WINDOW_TYPE_SPLASH",
	"_NET_SYSTEM_TRAY_S0",
	"_NET_SYSTEM_TRAY_ORIENTATION",
	"_NET_SYSTEM_TRAY_OPCODE",
	"_XEMBED",
	"_XEMBED_INFO",
	"WM_PROTOCOLS",
	"WM_TAKE_FOCUS",
	"WM_DELETE_WINDOW",
	"WM_STATE",
	"_MOTIF_WM_HINTS",
}
