package x11

import (
	"github.com/jezek/xgb/xproto"
	"github.com/jezek/xgbutil/ewmh"
	"github.com/jezek/xgbutil/xwindow"
)

// CreateBarWindow creates one dock-type window at the given geometry
// and publishes the EWMH strut properties so other clients' work-area
// queries account for it (spec §4.9), the same sequence of calls the
// teacher's Bar.create uses: generate an id, create the window,
// _NET_WM_WINDOW_TYPE_DOCK, sticky state, desktop 0xFFFFFFFF, then
// both the partial and legacy strut properties.
func (d *Display) CreateBarWindow(x, y, w, h int, top bool) (xproto.Window, error) {
	win, err := xwindow.Generate(d.X)
	if err != nil {
		return 0, err
	}
	if err := win.CreateChecked(d.Root, x, y, w, h, 0); err != nil {
		return 0, err
	}

	if err := ewmh.WmWindowTypeSet(d.X, win.Id, []string{"_NET_WM_WINDOW_TYPE_DOCK"}); err != nil {
		HandleError("CreateBarWindow: WmWindowTypeSet", err)
	}
	if err := ewmh.WmStateSet(d.X, win.Id, []string{"_NET_WM_STATE_STICKY"}); err != nil {
		HandleError("CreateBarWindow: WmStateSet", err)
	}
	if err := ewmh.WmDesktopSet(d.X, win.Id, 0xFFFFFFFF); err != nil {
		HandleError("CreateBarWindow: WmDesktopSet", err)
	}

	strutP := ewmh.WmStrutPartial{}
	strut := ewmh.WmStrut{}
	if top {
		strutP.TopStartX, strutP.TopEndX, strutP.Top = uint(x), uint(x+w), uint(h)
		strut.Top = uint(h)
	} else {
		strutP.BottomStartX, strutP.BottomEndX, strutP.Bottom = uint(x), uint(x+w), uint(h)
		strut.Bottom = uint(h)
	}
	if err := ewmh.WmStrutPartialSet(d.X, win.Id, &strutP); err != nil {
		HandleError("CreateBarWindow: WmStrutPartialSet", err)
	}
	if err := ewmh.WmStrutSet(d.X, win.Id, &strut); err != nil {
		HandleError("CreateBarWindow: WmStrutSet", err)
	}

	d.Map(win.Id)
	return win.Id, nil
}

// SelectBarInput arms Exposure and ButtonPress delivery on a bar
// window, so clicks on the bar and its damage region reach the
// dispatch table the same way client windows do.
func (d *Display) SelectBarInput(win xproto.Window) {
	err := xproto.ChangeWindowAttributesChecked(d.X.Conn(), win, xproto.CwEventMask,
		[]uint32{xproto.EventMaskExposure | xproto.EventMaskButtonPress}).Check()
	HandleError("SelectBarInput", err)
}
