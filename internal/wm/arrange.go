package wm

import (
	"github.com/distatus/tilewm/internal/layout"
	"github.com/distatus/tilewm/internal/model"
	"github.com/jezek/xgb/xproto"
	"github.com/jezek/xgbutil/xgraphics"
)

// arrange applies the monitor's selected layout to its visible tiled
// clients and repaints borders/raises the selection, the seam between
// internal/layout's pure functions and live X geometry (spec §4.3).
func (w *World) arrange(mon model.MonitorID) {
	if !mon.Valid() {
		return
	}
	m := w.Arena.Mon(mon)
	tiled := w.Arena.VisibleTiled(mon)

	params := layout.Params{
		Area:      m.WorkRect(),
		MFact:     m.MFact,
		NMaster:   m.NMaster,
		Gaps:      m.Gaps,
		SmartGaps: m.SmartGaps,
	}
	rects := layout.Arrange(m.SelectedLayout(), len(tiled), params)
	m.LtSymbol = layout.Symbol(m.SelectedLayout(), len(tiled))

	for i, id := range tiled {
		c := w.Arena.C(id)
		c.SetRect(rects[i])
	}

	if w.D == nil {
		return // no live display (unit tests exercise the model bookkeeping only)
	}

	for _, id := range tiled {
		c := w.Arena.C(id)
		w.D.MoveResize(xproto.Window(c.Win), c.X, c.Y, c.W, c.H, c.BW)
	}

	for _, id := range w.Arena.VisibleAll(mon) {
		w.restackBorder(mon, id)
	}

	if sel := m.Sel; sel.Valid() {
		w.D.Raise(xproto.Window(w.Arena.C(sel).Win))
	}
}

// restackBorder paints a client's border color according to whether it
// is the monitor's current selection or carries the urgent flag (spec
// §4.5).
func (w *World) restackBorder(mon model.MonitorID, id model.ClientID) {
	c := w.Arena.C(id)
	scheme := "norm"
	if c.IsUrgent {
		scheme = "urgent"
	} else if w.Arena.Mon(mon).Sel == id {
		scheme = "sel"
	}
	s := w.Config.Schemes.Get(scheme)
	w.D.SetBorderColor(xproto.Window(c.Win), bgraPixel(s.Border))
}

// bgraPixel packs an xgraphics.BGRA color into the 32-bit pixel value
// ChangeWindowAttributes' CwBorderPixel expects.
func bgraPixel(c xgraphics.BGRA) uint32 {
	return uint32(c.B) | uint32(c.G)<<8 | uint32(c.R)<<16 | uint32(c.A)<<24
}

// arrangeAll re-arranges every monitor, used at startup and after any
// Xinerama geometry change.
func (w *World) arrangeAll() {
	for i := range w.Arena.Monitors {
		w.arrange(model.MonitorID(i))
	}
}
