package wm

import (
	"time"

	"github.com/distatus/tilewm/internal/geom"
	"github.com/distatus/tilewm/internal/input"
	"github.com/distatus/tilewm/internal/model"
	"github.com/jezek/xgb/xproto"
)

// MoveSelected and ResizeSelected start the two re-entrant mouse-drag
// loops spec §5 names as suspension point 2, bound to mod+Button1 and
// mod+Button3 respectively (dwm's movemouse/resizemouse).
func (w *World) MoveSelected()   { w.startDrag(input.DragMove) }
func (w *World) ResizeSelected() { w.startDrag(input.DragResize) }

func (w *World) startDrag(kind input.DragKind) {
	mon := w.FocusedMonitor()
	if !mon.Valid() {
		return
	}
	sel := w.Arena.Mon(mon).Sel
	if !sel.Valid() {
		return
	}
	c := w.Arena.C(sel)
	if c.IsFullscreen {
		return
	}
	w.runDrag(kind, c)
}

// runDrag grabs the pointer and pumps events directly off the
// connection until ButtonRelease, applying input.Drag's pure geometry
// transitions live (spec §5's nested mask_event loop). Per spec §5,
// ConfigureRequest/Expose/MapRequest are still dispatched as they
// arrive so other clients' geometry stays sane; every other event is
// queued in w.deferred and replayed by drainDeferred once the drag
// ends, rather than dropped.
func (w *World) runDrag(kind input.DragKind, c *model.Client) {
	if !c.IsFloating && !c.IsFixed {
		c.IsFloating = true
	}
	mon := c.Mon

	conn := w.D.X.Conn()
	ptr, err := xproto.QueryPointer(conn, w.D.Root).Reply()
	if err != nil {
		return
	}

	grabMask := uint16(xproto.EventMaskButtonRelease | xproto.EventMaskPointerMotion)
	grab, err := xproto.GrabPointer(conn, false, w.D.Root, grabMask,
		xproto.GrabModeAsync, xproto.GrabModeAsync, 0, 0, xproto.TimeCurrentTime).Reply()
	if err != nil || grab.Status != xproto.GrabStatusSuccess {
		return
	}
	defer xproto.UngrabPointer(conn, xproto.TimeCurrentTime)

	drag := input.NewDrag(kind, int(ptr.RootX), int(ptr.RootY), c.Rect())
	start := time.Now()

	for {
		ev, err := conn.WaitForEvent()
		if err != nil {
			return
		}
		if ev == nil {
			continue
		}
		switch e := ev.(type) {
		case xproto.MotionNotifyEvent:
			now := time.Since(start).Milliseconds()
			if !drag.ShouldApplyMotion(now) {
				continue
			}
			var r geom.Rect
			if kind == input.DragResize {
				r = drag.ApplyResize(now, int(e.RootX), int(e.RootY))
			} else {
				r = drag.ApplyMove(now, int(e.RootX), int(e.RootY))
			}
			c.SetRect(r)
			w.D.MoveResize(xproto.Window(c.Win), c.X, c.Y, c.W, c.H, c.BW)
		case xproto.ButtonReleaseEvent:
			w.arrange(mon)
			w.drainDeferred()
			return
		case xproto.ConfigureRequestEvent:
			w.Table.Dispatch(xproto.ConfigureRequest, e)
		case xproto.ExposeEvent:
			w.Table.Dispatch(xproto.Expose, e)
		case xproto.MapRequestEvent:
			w.Table.Dispatch(xproto.MapRequest, e)
		default:
			w.deferred = append(w.deferred, ev)
		}
	}
}

// drainDeferred replays, in arrival order, every event a drag loop set
// aside while the pointer was grabbed.
func (w *World) drainDeferred() {
	pending := w.deferred
	w.deferred = nil
	for _, ev := range pending {
		if code, payload := decodeEvent(ev); code >= 0 {
			w.Table.Dispatch(code, payload)
		}
	}
}
