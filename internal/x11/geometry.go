package x11

import (
	"github.com/jezek/xgb/xproto"
)

// MoveResize applies a client's geometry and border width to its X
// window in one ConfigureWindow request (spec §4.3's arrange step).
func (d *Display) MoveResize(win xproto.Window, x, y, w, h, bw int) {
	mask := uint16(xproto.ConfigWindowX | xproto.ConfigWindowY |
		xproto.ConfigWindowWidth | xproto.ConfigWindowHeight | xproto.ConfigWindowBorderWidth)
	values := []uint32{uint32(int32(x)), uint32(int32(y)), uint32(w), uint32(h), uint32(bw)}
	err := xproto.ConfigureWindowChecked(d.X.Conn(), win, mask, values).Check()
	HandleError("MoveResize", err)
}

// Raise stacks win above its siblings.
func (d *Display) Raise(win xproto.Window) {
	err := xproto.ConfigureWindowChecked(d.X.Conn(), win,
		xproto.ConfigWindowStackMode, []uint32{xproto.StackModeAbove}).Check()
	HandleError("Raise", err)
}

// SetBorderColor paints win's border pixel.
func (d *Display) SetBorderColor(win xproto.Window, pixel uint32) {
	err := xproto.ChangeWindowAttributesChecked(d.X.Conn(), win,
		xproto.CwBorderPixel, []uint32{pixel}).Check()
	HandleError("SetBorderColor", err)
}

// Map and Unmap show/hide win.
func (d *Display) Map(win xproto.Window) {
	HandleError("Map", xproto.MapWindowChecked(d.X.Conn(), win).Check())
}

func (d *Display) Unmap(win xproto.Window) {
	HandleError("Unmap", xproto.UnmapWindowChecked(d.X.Conn(), win).Check())
}

// SetInputFocus gives win the input focus, falling back to the root
// window when win is zero (spec §4.5: focusing nothing reverts focus
// to the root).
func (d *Display) SetInputFocus(win xproto.Window) {
	target := win
	if target == 0 {
		target = d.Root
	}
	err := xproto.SetInputFocusChecked(d.X.Conn(), xproto.InputFocusPointerRoot, target, xproto.TimeCurrentTime).Check()
	HandleError("SetInputFocus", err)
}


// DestroyWindow issues a forceful close, used when a client does not
// support WM_DELETE_WINDOW (spec §4.2/ICCCM close semantics).
func (d *Display) DestroyWindow(win xproto.Window) {
	HandleError("DestroyWindow", xproto.DestroyWindowChecked(d.X.Conn(), win).Check())
}

// SendDeleteWindow sends the WM_DELETE_WINDOW client message used for
// a graceful close request.
func (d *Display) SendDeleteWindow(win xproto.Window) error {
	protocolsAtom := d.MustAtom("WM_PROTOCOLS")
	deleteAtom := d.MustAtom("WM_DELETE_WINDOW")

	ev := xproto.ClientMessageEvent{
		Format: 32,
		Window: win,
		Type:   protocolsAtom,
		Data: xproto.ClientMessageDataUnionData32New([]uint32{
			uint32(deleteAtom), uint32(xproto.TimeCurrentTime), 0, 0, 0,
		}),
	}
	return xproto.SendEventChecked(d.X.Conn(), false, win, xproto.EventMaskNoEvent, string(ev.Bytes())).Check()
}
