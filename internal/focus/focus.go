// Package focus implements the focus and stack-manager rules of spec
// §4.5: picking which client owns input focus, stepping through the
// visible order, and reordering the attach list independently of focus
// history. It operates purely on a model.Arena; painting borders,
// sending WM_TAKE_FOCUS, and warping the pointer are the caller's job
// (internal/wm), since those require a live display connection.
package focus

import "github.com/distatus/tilewm/internal/model"

// PrevSel is the focusstack sentinel meaning "the most recently
// selected visible client other than the current one" (spec §4.5).
const PrevSel = 3000

// StepNext is the dir value for a single step forward through the
// visible order: 0, 1 and 2 are position sentinels, so a forward step
// uses a positive value outside that range (FocusStack steps by sign).
const StepNext = 2001

// Pick implements the null-argument case of focus(c) (spec §4.5): the
// front of the monitor's stack that is currently visible, or NoClient
// if nothing qualifies.
func Pick(arena *model.Arena, mon model.MonitorID) model.ClientID {
	sel := arena.Mon(mon).SelectedTags()
	for _, id := range arena.StackOf(mon) {
		if arena.C(id).IsVisible(sel) {
			return id
		}
	}
	return model.NoClient
}

// Focus promotes c to the head of its monitor's stack and clears its
// urgent flag (the model-level half of spec §4.5's focus(c); border
// painting, button grabs and WM_TAKE_FOCUS are the caller's concern).
// Passing NoClient is equivalent to focus(nil): the monitor's current
// selection is simply cleared.
func Focus(arena *model.Arena, mon model.MonitorID, c model.ClientID) {
	m := arena.Mon(mon)
	if !c.Valid() {
		m.Sel = model.NoClient
		return
	}
	cl := arena.C(c)
	cl.IsUrgent = false
	arena.DetachStack(c)
	arena.AttachStack(c, mon)
	m.Sel = c
}

// FocusStack implements spec §4.5's focusstack(dir): steps by ±1 over
// the monitor's visible clients in attach order. dir == PrevSel means
// "most recent non-current visible client" (read off the MRU stack,
// skipping the current selection); dir in {0,1,2} means "jump to
// position dir in the visible order" (clamped to the last index if
// shorter); any other value steps by its sign.
//
// lockFullscreen, when true, refuses to move off a fullscreen current
// selection (spec §4.5).
func FocusStack(arena *model.Arena, mon model.MonitorID, dir int, lockFullscreen bool) model.ClientID {
	m := arena.Mon(mon)
	if lockFullscreen && m.Sel.Valid() && arena.C(m.Sel).IsFullscreen {
		return m.Sel
	}

	visible := arena.VisibleAll(mon)
	if len(visible) == 0 {
		return model.NoClient
	}

	if dir == PrevSel {
		for _, id := range arena.StackOf(mon) {
			if id != m.Sel && arena.C(id).IsVisible(m.SelectedTags()) {
				return id
			}
		}
		return m.Sel
	}

	if dir == 0 || dir == 1 || dir == 2 {
		idx := dir
		if idx >= len(visible) {
			idx = len(visible) - 1
		}
		return visible[idx]
	}

	curIdx := -1
	for i, id := range visible {
		if id == m.Sel {
			curIdx = i
			break
		}
	}
	if curIdx == -1 {
		return visible[0]
	}
	step := 1
	if dir < 0 {
		step = -1
	}
	next := (curIdx + step + len(visible)) % len(visible)
	return visible[next]
}

// PushStack implements spec §4.5's pushstack(dir): swaps the current
// selection with its dir-ward neighbor in the monitor's attach order
// (not the focus stack), leaving focus history untouched.
func PushStack(arena *model.Arena, mon model.MonitorID, dir int) {
	m := arena.Mon(mon)
	if !m.Sel.Valid() {
		return
	}
	order := arena.ClientsOf(mon)
	curIdx := -1
	for i, id := range order {
		if id == m.Sel {
			curIdx = i
			break
		}
	}
	if curIdx == -1 || len(order) < 2 {
		return
	}
	step := 1
	if dir < 0 {
		step = -1
	}
	other := curIdx + step
	if other < 0 || other >= len(order) {
		return
	}
	swapAttachOrder(arena, mon, order[curIdx], order[other])
}

// swapAttachOrder exchanges the position of a and b within mon's
// attach-order list by detaching and reattaching them in the opposite
// order, then restoring everything else's relative order around them.
func swapAttachOrder(arena *model.Arena, mon model.MonitorID, a, b model.ClientID) {
	order := arena.ClientsOf(mon)
	ai, bi := -1, -1
	for i, id := range order {
		if id == a {
			ai = i
		}
		if id == b {
			bi = i
		}
	}
	if ai == -1 || bi == -1 {
		return
	}
	order[ai], order[bi] = order[bi], order[ai]

	for _, id := range order {
		arena.Detach(id)
	}
	for i := len(order) - 1; i >= 0; i-- {
		arena.Attach(order[i], mon)
	}
}
