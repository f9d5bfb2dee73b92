package wm

import (
	"github.com/distatus/tilewm/internal/focus"
	"github.com/distatus/tilewm/internal/model"
	"github.com/jezek/xgb/xproto"
)

func uint32AsWindow(id model.WindowID) xproto.Window { return xproto.Window(id) }

// The methods in this file are the exported action surface key and
// button bindings close over (spec §4.11): cmd/tilewm builds the
// compiled-in input.Table against these rather than against the
// unexported tag/focus helpers directly, keeping the binding
// definitions decoupled from this package's internal call shapes.

// FocusedMonitor returns the first monitor, in arena order, that has a
// selected client, or monitor 0 if none does. It does not track which
// monitor was focused most recently.
func (w *World) FocusedMonitor() model.MonitorID {
	for i := range w.Arena.Monitors {
		if w.Arena.Monitors[i].Sel.Valid() {
			return model.MonitorID(i)
		}
	}
	if len(w.Arena.Monitors) > 0 {
		return 0
	}
	return model.NoMonitor
}

// View switches the focused monitor to the given tag mask.
func (w *World) View(tags uint32) { w.view(w.FocusedMonitor(), tags) }

// ToggleView XORs tags into the focused monitor's visible set.
func (w *World) ToggleView(tags uint32) { w.toggleView(w.FocusedMonitor(), tags) }

// TagSelected retags the focused monitor's selected client.
func (w *World) TagSelected(tags uint32) { w.tag(w.FocusedMonitor(), tags) }

// ToggleTagSelected XORs tags into the selected client's tag mask.
func (w *World) ToggleTagSelected(tags uint32) { w.toggleTag(w.FocusedMonitor(), tags) }

// FocusOrView implements the combined navigate-or-reveal keybinding
// idiom (spec §4.8).
func (w *World) FocusOrView(tags uint32) { w.focusOrView(w.FocusedMonitor(), tags) }

// FocusNext/FocusPrev step the focused monitor's selection through its
// visible clients (spec §4.5).
func (w *World) FocusNext() { w.stepFocus(focus.StepNext) }
func (w *World) FocusPrev() { w.stepFocus(-1) }

func (w *World) stepFocus(dir int) {
	mon := w.FocusedMonitor()
	if !mon.Valid() {
		return
	}
	next := focus.FocusStack(w.Arena, mon, dir, true)
	focus.Focus(w.Arena, mon, next)
	w.afterFocusChange(mon)
}

// ZoomSelected implements dwm's "zoom" binding (spec §4.5): if the
// selected client is already master, swap it down with the next
// client in attach order; otherwise promote it to master.
func (w *World) ZoomSelected() {
	mon := w.FocusedMonitor()
	if !mon.Valid() {
		return
	}
	m := w.Arena.Mon(mon)
	order := w.Arena.ClientsOf(mon)
	if len(order) < 2 || !m.Sel.Valid() {
		return
	}
	if order[0] == m.Sel {
		focus.PushStack(w.Arena, mon, 1)
		w.arrange(mon)
		return
	}
	w.pushToMaster(mon)
}

// pushToMaster moves the selected client to the head of the attach
// order without disturbing the focus stack (spec §4.5).
func (w *World) pushToMaster(mon model.MonitorID) {
	m := w.Arena.Mon(mon)
	if !m.Sel.Valid() {
		return
	}
	sel := m.Sel
	order := w.Arena.ClientsOf(mon)
	if len(order) < 2 || order[0] == sel {
		return
	}
	for _, id := range order {
		w.Arena.Detach(id)
	}
	w.Arena.Attach(sel, mon)
	for i := len(order) - 1; i >= 0; i-- {
		if order[i] != sel {
			w.Arena.Attach(order[i], mon)
		}
	}
	w.arrange(mon)
}

// KillSelected requests the focused monitor's selected client close,
// preferring WM_DELETE_WINDOW over a forced X kill (spec §4.2).
func (w *World) KillSelected() {
	mon := w.FocusedMonitor()
	if !mon.Valid() || !w.Arena.Mon(mon).Sel.Valid() {
		return
	}
	c := w.Arena.C(w.Arena.Mon(mon).Sel)
	if w.D == nil {
		return
	}
	if err := w.D.SendDeleteWindow(uint32AsWindow(c.Win)); err != nil {
		w.D.DestroyWindow(uint32AsWindow(c.Win))
	}
}

// ToggleFloatingSelected flips the selected client's floating bit.
func (w *World) ToggleFloatingSelected() {
	mon := w.FocusedMonitor()
	if !mon.Valid() || !w.Arena.Mon(mon).Sel.Valid() {
		return
	}
	w.Arena.C(w.Arena.Mon(mon).Sel).ToggleFloating()
	w.arrange(mon)
}

// ToggleFullscreenSelected flips the selected client's fullscreen
// state (spec §4.7, property R1).
func (w *World) ToggleFullscreenSelected() {
	mon := w.FocusedMonitor()
	if !mon.Valid() || !w.Arena.Mon(mon).Sel.Valid() {
		return
	}
	c := w.Arena.C(w.Arena.Mon(mon).Sel)
	c.SetFullscreen(!c.IsFullscreen, w.Arena.Mon(mon).ScreenRect())
	w.arrange(mon)
}

// SetLayout switches the focused monitor's active layout slot.
func (w *World) SetLayout(l model.Layout) {
	mon := w.FocusedMonitor()
	if !mon.Valid() {
		return
	}
	m := w.Arena.Mon(mon)
	m.LT[m.SelLt] = l
	w.arrange(mon)
}

// IncMFact/IncNMaster adjust the focused monitor's layout parameters
// (spec boundaries B1/B2).
func (w *World) IncMFact(delta float64) {
	mon := w.FocusedMonitor()
	if !mon.Valid() {
		return
	}
	m := w.Arena.Mon(mon)
	m.SetMFact(m.MFact + delta)
	w.arrange(mon)
}

func (w *World) IncNMaster(delta int) {
	mon := w.FocusedMonitor()
	if !mon.Valid() {
		return
	}
	w.Arena.Mon(mon).SetNMaster(delta)
	w.arrange(mon)
}

// ToggleScratchpad shows or hides scratchpad index i on the focused
// monitor (spec §3/§8 scenario S1): the scratchpad tag is an ordinary
// bit in the upper S bits of the mask, so revealing/hiding it is just a
// toggleview on that one bit - any client parked there (usually by a
// matching adoption rule) appears or disappears along with it.
func (w *World) ToggleScratchpad(i int) {
	mon := w.FocusedMonitor()
	if !mon.Valid() {
		return
	}
	w.toggleView(mon, w.Config.Tags.ScratchpadBit(i))
}

// Quit stops the event loop, used by the compiled-in quit keybinding.
func (w *World) Quit() { w.Close() }
