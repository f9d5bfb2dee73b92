package wm

import (
	"github.com/distatus/tilewm/internal/focus"
	"github.com/distatus/tilewm/internal/model"
	"github.com/jezek/xgb/xproto"
)

// monitorShowing returns the id of the monitor (other than exclude)
// whose currently selected tagset exactly equals tags, or NoMonitor if
// none does. view consults this before taking a tagset for itself,
// since each tag bit may be displayed on at most one monitor at a time
// (spec §4.8).
func (w *World) monitorShowing(tags uint32, exclude model.MonitorID) model.MonitorID {
	for i := range w.Arena.Monitors {
		id := model.MonitorID(i)
		if id == exclude {
			continue
		}
		if w.Arena.Monitors[i].SelectedTags() == tags {
			return id
		}
	}
	return model.NoMonitor
}

// monitorOwning returns the id of the monitor (other than exclude)
// whose selected tagset currently includes bit, or NoMonitor if none
// does. toggleView and tag use this to find who to steal a single bit
// from, or who already owns a target mask.
func (w *World) monitorOwning(bit uint32, exclude model.MonitorID) model.MonitorID {
	for i := range w.Arena.Monitors {
		id := model.MonitorID(i)
		if id == exclude {
			continue
		}
		if w.Arena.Monitors[i].SelectedTags()&bit != 0 {
			return id
		}
	}
	return model.NoMonitor
}

// lowestUnoccupiedBit returns the lowest real tag bit no monitor other
// than exclude currently shows, falling back to tag 0 if every bit is
// owned (spec §4.8: toggleview's "if its tagset becomes empty,
// receives the lowest unoccupied bit").
func (w *World) lowestUnoccupiedBit(exclude model.MonitorID) uint32 {
	var shown uint32
	for i := range w.Arena.Monitors {
		if model.MonitorID(i) == exclude {
			continue
		}
		shown |= w.Arena.Monitors[i].SelectedTags()
	}
	for i := 0; i < w.Config.Tags.NumTags; i++ {
		if bit := model.TagBit(i); shown&bit == 0 {
			return bit
		}
	}
	return model.TagBit(0)
}

// view switches mon's selected tagset to the given mask. If another
// monitor already shows exactly that mask, the two monitors swap
// tagsets instead of letting the same bits appear on both at once
// (spec §4.8, property T2).
func (w *World) view(mon model.MonitorID, tags uint32) {
	m := w.Arena.Mon(mon)
	if tags == 0 || tags == m.SelectedTags() {
		return
	}
	if owner := w.monitorShowing(tags, mon); owner.Valid() {
		w.swapMonitorTags(mon, owner)
		return
	}
	m.SelTags ^= 1
	m.TagSet[m.SelTags] = tags
	w.afterTagChange(mon)
}

// swapMonitorTags exchanges a and b's selected tagsets and reconciles
// client ownership through attachClients (spec §4.8: "view(mask) on
// tags currently shown by another monitor swaps the two monitors'
// tagsets and re-attaches affected clients to the new owner via
// attachclients").
func (w *World) swapMonitorTags(a, b model.MonitorID) {
	ma, mb := w.Arena.Mon(a), w.Arena.Mon(b)
	aTags, bTags := ma.SelectedTags(), mb.SelectedTags()

	ma.SelTags ^= 1
	ma.TagSet[ma.SelTags] = bTags
	mb.SelTags ^= 1
	mb.TagSet[mb.SelTags] = aTags

	w.attachClients(a)
	w.attachClients(b)

	w.afterTagChange(a)
	w.afterTagChange(b)
}

// toggleView XORs tags into the currently selected tagset (spec
// property T6), stealing any bit newly turned on away from whichever
// monitor currently owns it (spec §4.8). A toggle that would leave the
// tagset empty is a no-op, since an empty view has no well-defined
// layout to arrange.
func (w *World) toggleView(mon model.MonitorID, tags uint32) {
	m := w.Arena.Mon(mon)
	oldTags := m.SelectedTags()
	newTags := oldTags ^ tags
	if newTags == 0 {
		return
	}
	added := tags &^ oldTags

	// Written before the steal loop below so lowestUnoccupiedBit sees
	// mon's new tagset rather than its stale one.
	m.TagSet[m.SelTags] = newTags

	affected := map[model.MonitorID]bool{}
	for i := 0; i < 32; i++ {
		bit := model.TagBit(i)
		if added&bit == 0 {
			continue
		}
		if owner := w.monitorOwning(bit, mon); owner.Valid() {
			w.stealBit(owner, bit)
			affected[owner] = true
		}
	}

	w.attachClients(mon)
	for other := range affected {
		w.attachClients(other)
	}

	w.afterTagChange(mon)
	for other := range affected {
		w.afterTagChange(other)
	}
}

// stealBit removes bit from owner's selected tagset; if that would
// leave the monitor showing nothing, it falls back to the lowest tag
// bit nobody currently owns (spec §4.8).
func (w *World) stealBit(owner model.MonitorID, bit uint32) {
	om := w.Arena.Mon(owner)
	remaining := om.SelectedTags() &^ bit
	if remaining == 0 {
		remaining = w.lowestUnoccupiedBit(owner)
	}
	om.TagSet[om.SelTags] = remaining
}

// tag sets the selected client's tags to an exact mask (spec property
// S2). If the target bits are already visible on mon itself the client
// simply stays put; otherwise it moves to whichever monitor currently
// owns those bits (spec §4.8). A zero mask is a no-op, since every
// client must carry at least one tag or become permanently invisible.
func (w *World) tag(mon model.MonitorID, tags uint32) {
	m := w.Arena.Mon(mon)
	if !m.Sel.Valid() || tags == 0 {
		return
	}
	id := m.Sel
	c := w.Arena.C(id)
	c.Tags = tags

	if tags&m.SelectedTags() == 0 {
		if owner := w.monitorOwning(tags, mon); owner.Valid() {
			w.Arena.Detach(id)
			w.Arena.DetachStack(id)
			c.Mon = owner
			w.Arena.AttachClient(id, owner)
			w.arrange(owner)
		}
	}
	w.afterTagChange(mon)
}

// toggleTag XORs tags into the selected client's tag mask (spec
// property S6): refuses to clear the client's last tag, same
// empty-mask guard as tag().
func (w *World) toggleTag(mon model.MonitorID, tags uint32) {
	m := w.Arena.Mon(mon)
	if !m.Sel.Valid() {
		return
	}
	c := w.Arena.C(m.Sel)
	newTags := c.Tags ^ tags
	if newTags == 0 {
		return
	}
	c.Tags = newTags
	w.afterTagChange(mon)
}

// focusOrView implements the common keybinding idiom (spec §4.8): if
// the target tag is already shown, just refocus within it; otherwise
// switch the view to it so the binding both navigates and reveals in
// one action.
func (w *World) focusOrView(mon model.MonitorID, tags uint32) {
	m := w.Arena.Mon(mon)
	if m.SelectedTags() == tags {
		if sel := focus.Pick(w.Arena, mon); sel.Valid() {
			focus.Focus(w.Arena, mon, sel)
			w.afterFocusChange(mon)
		}
		return
	}
	w.view(mon, tags)
}

// attachClients reconciles client ownership against monitor m's
// current tagset (spec §4.8's attachclients(m)): walking the shared
// client list, any client elsewhere whose tags overlap m's newly
// selected tagset, but none of the tags currently selected by any
// other monitor, transfers onto m. This is the mechanism
// view/toggleView/tag drive whenever a tag-ownership swap or steal
// changes which monitor a bit belongs to.
func (w *World) attachClients(m model.MonitorID) {
	mon := w.Arena.Mon(m)
	var utags uint32
	for i := range w.Arena.Monitors {
		if model.MonitorID(i) == m {
			continue
		}
		utags |= w.Arena.Monitors[i].SelectedTags()
	}

	moved := map[model.MonitorID]bool{}
	for _, id := range w.Arena.AllClientsInMonitorOrder() {
		c := w.Arena.C(id)
		if c.Mon == m || c.Tags == model.OmniTag {
			continue
		}
		if c.Tags&mon.SelectedTags() != 0 && c.Tags&utags == 0 {
			from := c.Mon
			w.Arena.Detach(id)
			w.Arena.DetachStack(id)
			c.Mon = m
			w.Arena.AttachClient(id, m)
			moved[from] = true
		}
	}

	w.arrange(m)
	for from := range moved {
		w.arrange(from)
	}
	w.publishClientLists()
}

// afterTagChange re-picks the focused client under the new view,
// re-arranges, and republishes EWMH state - the common tail of every
// tag-mutating operation above.
func (w *World) afterTagChange(mon model.MonitorID) {
	m := w.Arena.Mon(mon)
	if !m.Sel.Valid() || !w.Arena.C(m.Sel).IsVisible(m.SelectedTags()) {
		focus.Focus(w.Arena, mon, focus.Pick(w.Arena, mon))
	}
	w.setInputFocus(mon)
	w.arrange(mon)
	w.publishDesktopInfo()
	w.publishClientLists()
	w.publishActiveWindow(mon)
	if b := w.barOf(mon); b != nil {
		w.redrawBar(xproto.Window(b.Win))
	}
}

func (w *World) afterFocusChange(mon model.MonitorID) {
	w.setInputFocus(mon)
	w.arrange(mon)
	w.publishActiveWindow(mon)
	if b := w.barOf(mon); b != nil {
		w.redrawBar(xproto.Window(b.Win))
	}
}

// setInputFocus gives X input focus to mon's selected client, or back
// to the root window if nothing is selected (spec §4.5).
func (w *World) setInputFocus(mon model.MonitorID) {
	if w.D == nil {
		return
	}
	sel := w.Arena.Mon(mon).Sel
	if !sel.Valid() {
		w.D.SetInputFocus(0)
		return
	}
	w.D.SetInputFocus(xproto.Window(w.Arena.C(sel).Win))
}
