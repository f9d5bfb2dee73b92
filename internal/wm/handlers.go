package wm

import (
	"github.com/distatus/tilewm/internal/focus"
	"github.com/distatus/tilewm/internal/input"
	"github.com/distatus/tilewm/internal/model"
	"github.com/distatus/tilewm/internal/rules"
	"github.com/jezek/xgb/xproto"
	"github.com/jezek/xgbutil/icccm"
	"github.com/jezek/xgbutil/keybind"
)

// clientFor resolves a raw X window to its managed client id, or
// NoClient if it is not one of ours (spec §4.1: events for unmanaged
// windows are dropped at the handler level, not the dispatch table).
func (w *World) clientFor(win xproto.Window) model.ClientID {
	if id, ok := w.winToClient[win]; ok {
		return id
	}
	return model.NoClient
}

func (w *World) monitorOf(id model.ClientID) model.MonitorID {
	if !id.Valid() {
		return model.NoMonitor
	}
	return w.Arena.C(id).Mon
}

// handleConfigureRequest honors a client's own resize/move request
// when it is floating (tiled clients have their geometry owned by the
// layout engine and simply get an ACK), per ICCCM's "the window
// manager may override this request" allowance.
func (w *World) handleConfigureRequest(event interface{}) {
	ev, ok := event.(xproto.ConfigureRequestEvent)
	if !ok {
		return
	}
	id := w.clientFor(ev.Window)
	if !id.Valid() {
		// Unmanaged window (e.g. the bar itself): honor the request verbatim.
		mask := uint16(ev.ValueMask)
		values := configureValues(ev)
		xproto.ConfigureWindow(w.D.X.Conn(), ev.Window, mask, values)
		return
	}
	c := w.Arena.C(id)
	if !c.IsFloating && !c.IsFullscreen {
		w.D.MoveResize(ev.Window, c.X, c.Y, c.W, c.H, c.BW)
		return
	}
	if ev.ValueMask&xproto.ConfigWindowX != 0 {
		c.X = int(ev.X)
	}
	if ev.ValueMask&xproto.ConfigWindowY != 0 {
		c.Y = int(ev.Y)
	}
	if ev.ValueMask&xproto.ConfigWindowWidth != 0 {
		c.W = int(ev.Width)
	}
	if ev.ValueMask&xproto.ConfigWindowHeight != 0 {
		c.H = int(ev.Height)
	}
	w.D.MoveResize(ev.Window, c.X, c.Y, c.W, c.H, c.BW)
}

func configureValues(ev xproto.ConfigureRequestEvent) []uint32 {
	var values []uint32
	if ev.ValueMask&xproto.ConfigWindowX != 0 {
		values = append(values, uint32(ev.X))
	}
	if ev.ValueMask&xproto.ConfigWindowY != 0 {
		values = append(values, uint32(ev.Y))
	}
	if ev.ValueMask&xproto.ConfigWindowWidth != 0 {
		values = append(values, uint32(ev.Width))
	}
	if ev.ValueMask&xproto.ConfigWindowHeight != 0 {
		values = append(values, uint32(ev.Height))
	}
	if ev.ValueMask&xproto.ConfigWindowBorderWidth != 0 {
		values = append(values, uint32(ev.BorderWidth))
	}
	if ev.ValueMask&xproto.ConfigWindowSibling != 0 {
		values = append(values, uint32(ev.Sibling))
	}
	if ev.ValueMask&xproto.ConfigWindowStackMode != 0 {
		values = append(values, uint32(ev.StackMode))
	}
	return values
}

// handleDestroyNotify tears a client down immediately, restoring a
// swallowed terminal's own window if it had been hiding one (spec
// §4.6 step 4).
func (w *World) handleDestroyNotify(event interface{}) {
	ev, ok := event.(xproto.DestroyNotifyEvent)
	if !ok {
		return
	}
	if w.Systray != nil {
		before := len(w.Systray.Icons)
		w.Systray.Undock(ev.Window)
		if len(w.Systray.Icons) != before {
			w.redrawAllBars()
		}
	}
	w.teardown(ev.Window)
}

// handleUnmapNotify treats an unmap the same as a destroy once it is
// not one we generated ourselves as part of a reparent - a managed
// client that unmaps itself (rather than being withdrawn by us) is
// gone for our purposes (spec §4.2's teardown path).
func (w *World) handleUnmapNotify(event interface{}) {
	ev, ok := event.(xproto.UnmapNotifyEvent)
	if !ok {
		return
	}
	w.teardown(ev.Window)
}

func (w *World) teardown(win xproto.Window) {
	id := w.clientFor(win)
	if !id.Valid() {
		return
	}
	c := w.Arena.C(id)
	if c.Swallowing.Valid() {
		w.restoreSwallowed(id, c)
		return
	}
	w.unmanage(id)
}

// restoreSwallowed un-hides the terminal's own window when the child
// it was swallowing disappears (spec §4.6 step 4): the child's window
// (currently term.Win) goes away with it, and term.HiddenWin - the
// terminal's original window, unmapped since the swallow - takes its
// place in the model and on screen again.
func (w *World) restoreSwallowed(termID model.ClientID, term *model.Client) {
	childWin := xproto.Window(term.Win)
	rules.Restore(term, term.HiddenWin)

	delete(w.winToClient, childWin)
	w.winToClient[xproto.Window(term.Win)] = termID

	w.D.Map(xproto.Window(term.Win))
	w.arrange(term.Mon)
	w.setInputFocus(term.Mon)
	if b := w.barOf(term.Mon); b != nil {
		w.redrawBar(xproto.Window(b.Win))
	}
}

// handleEnterNotify implements focus-follows-mouse across client
// boundaries (spec §4.5).
func (w *World) handleEnterNotify(event interface{}) {
	ev, ok := event.(xproto.EnterNotifyEvent)
	if !ok {
		return
	}
	if ev.Mode != xproto.NotifyModeNormal || ev.Detail == xproto.NotifyDetailInferior {
		return
	}
	id := w.clientFor(ev.Event)
	if !id.Valid() {
		return
	}
	mon := w.monitorOf(id)
	focus.Focus(w.Arena, mon, id)
	w.afterFocusChange(mon)
}

// handleFocusIn re-asserts our own notion of focus if it drifted onto
// a window we did not select (some clients grab focus back on map).
func (w *World) handleFocusIn(event interface{}) {
	ev, ok := event.(xproto.FocusInEvent)
	if !ok {
		return
	}
	id := w.clientFor(ev.Event)
	mon := w.FocusedMonitor()
	if !mon.Valid() {
		return
	}
	sel := w.Arena.Mon(mon).Sel
	if id != sel {
		w.setInputFocus(mon)
	}
}

// handlePropertyNotify reacts to title/hints/urgency property changes
// on a managed window (spec §4.2/§6).
func (w *World) handlePropertyNotify(event interface{}) {
	ev, ok := event.(xproto.PropertyNotifyEvent)
	if !ok {
		return
	}
	if ev.Window == w.D.Root && ev.Atom == xproto.AtomWmName {
		w.readStatusText()
		return
	}
	id := w.clientFor(ev.Window)
	if !id.Valid() {
		return
	}
	c := w.Arena.C(id)
	switch ev.Atom {
	case xproto.AtomWmName:
		if name, err := icccm.WmNameGet(w.D.X, ev.Window); err == nil {
			c.Name = name
			if b := w.barOf(c.Mon); b != nil {
				w.redrawBar(xproto.Window(b.Win))
			}
		}
	case xproto.AtomWmNormalHints:
		w.readSizeHints(ev.Window, c)
		w.arrange(c.Mon)
	case xproto.AtomWmHints:
		wasUrgent := c.IsUrgent
		w.readWmHints(ev.Window, c)
		if c.IsUrgent != wasUrgent {
			if b := w.barOf(c.Mon); b != nil {
				w.redrawBar(xproto.Window(b.Win))
			}
		}
	}
}

// handleConfigureNotify keeps a monitor's geometry and bar placement in
// sync with the root window it tracks - xrandr changes (new/removed
// heads, resolution changes) land here rather than on the client path
// (spec §4.1's "reconfigure on randr events").
func (w *World) handleConfigureNotify(event interface{}) {
	ev, ok := event.(xproto.ConfigureNotifyEvent)
	if !ok {
		return
	}
	if ev.Window != w.D.Root {
		return
	}
	w.rescanMonitors()
}

// handleResizeRequest honors a bare resize request from a window that
// has not yet been reparented/mapped (some clients resize themselves
// before the WM has a chance to manage them); tiled clients still defer
// to the layout engine, matching handleConfigureRequest's split.
func (w *World) handleResizeRequest(event interface{}) {
	ev, ok := event.(xproto.ResizeRequestEvent)
	if !ok {
		return
	}
	id := w.clientFor(ev.Window)
	if !id.Valid() {
		xproto.ConfigureWindow(w.D.X.Conn(), ev.Window,
			xproto.ConfigWindowWidth|xproto.ConfigWindowHeight,
			[]uint32{uint32(ev.Width), uint32(ev.Height)})
		return
	}
	c := w.Arena.C(id)
	if !c.IsFloating && !c.IsFullscreen {
		return
	}
	c.W, c.H = int(ev.Width), int(ev.Height)
	w.D.MoveResize(ev.Window, c.X, c.Y, c.W, c.H, c.BW)
}

// handleClientMessage handles _NET_ACTIVE_WINDOW, _NET_WM_STATE
// (fullscreen) and SYSTEM_TRAY_OPCODE requests (spec §4.7, §4.10).
func (w *World) handleClientMessage(event interface{}) {
	ev, ok := event.(xproto.ClientMessageEvent)
	if !ok {
		return
	}

	if trayOpcode, err := w.D.Atom("_NET_SYSTEM_TRAY_OPCODE"); err == nil && ev.Type == trayOpcode && w.Systray != nil {
		data := ev.Data.Data32
		if len(data) >= 3 && data[1] == ewmhxSystemTrayRequestDock {
			w.Systray.Dock(xproto.Window(data[2]), w.Config.BarHeight)
			w.redrawAllBars()
		}
		return
	}

	if stateAtom, err := w.D.Atom("_NET_WM_STATE"); err == nil && ev.Type == stateAtom {
		id := w.clientFor(ev.Window)
		if !id.Valid() {
			return
		}
		fsAtom, _ := w.D.Atom("_NET_WM_STATE_FULLSCREEN")
		data := ev.Data.Data32
		if len(data) >= 2 && xproto.Atom(data[1]) == fsAtom {
			c := w.Arena.C(id)
			mon := c.Mon
			want := c.IsFullscreen
			switch data[0] {
			case 1:
				want = true
			case 0:
				want = false
			case 2:
				want = !want
			}
			c.SetFullscreen(want, w.Arena.Mon(mon).ScreenRect())
			if want {
				w.D.MoveResize(ev.Window, c.X, c.Y, c.W, c.H, c.BW)
			}
			w.arrange(mon)
		}
	}
}

const ewmhxSystemTrayRequestDock = 0

// handleKeyPress looks the chord up in the compiled-in binding table
// and runs its action (spec §4.11).
func (w *World) handleKeyPress(event interface{}) {
	ev, ok := event.(xproto.KeyPressEvent)
	if !ok {
		return
	}
	keysym := keybind.KeysymGet(w.D.X, ev.Detail, 0)
	if action := w.InputTable().MatchKey(input.Modifier(ev.State), keysym); action != nil {
		action()
	}
}

// handleButtonPress dispatches a compiled-in button binding, also
// raising the clicked client to give click-to-focus its usual effect
// (spec §4.9, §4.11). The grab is GrabModeAsync on both pointer and
// keyboard (internal/x11.GrabButton), so the click is never frozen and
// needs no explicit replay.
func (w *World) handleButtonPress(event interface{}) {
	ev, ok := event.(xproto.ButtonPressEvent)
	if !ok {
		return
	}
	id := w.clientFor(ev.Event)
	if !id.Valid() {
		id = w.clientFor(ev.Child) // root-window grab: the clicked client is the child
	}
	if id.Valid() {
		mon := w.monitorOf(id)
		focus.Focus(w.Arena, mon, id)
		w.afterFocusChange(mon)
	}
	if action := w.InputTable().MatchButton(input.Modifier(ev.State), ev.Detail); action != nil {
		action()
	}
}

// handleMotionNotify is registered for completeness with
// dispatch.CoreEventCodes; the actual drag-throttle/geometry math runs
// inside the re-entrant pointer-grab loop a movemouse/resizemouse
// button action starts (internal/input.Drag), not through the main
// dispatch table, since runDrag reads the motion events off the
// connection itself while its pointer grab is active.
func (w *World) handleMotionNotify(event interface{}) {}

// handleExpose repaints a bar window when it is newly exposed.
func (w *World) handleExpose(event interface{}) {
	ev, ok := event.(xproto.ExposeEvent)
	if !ok || ev.Count != 0 {
		return
	}
	w.redrawBar(ev.Window)
}

// handleMappingNotify refreshes the keybind cache after a keyboard
// remap (e.g. setxkbmap), per xgbutil's keybind package contract.
func (w *World) handleMappingNotify(event interface{}) {
	ev, ok := event.(xproto.MappingNotifyEvent)
	if !ok {
		return
	}
	if ev.Request == xproto.MappingKeyboard || ev.Request == xproto.MappingModifier {
		keybind.RefreshKeyboardMapping(w.D.X, ev)
	}
}
