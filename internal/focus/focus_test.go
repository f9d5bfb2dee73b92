package focus

import (
	"testing"

	"github.com/distatus/tilewm/internal/model"
)

func newMonitorWithClients(t *testing.T, n int) (*model.Arena, model.MonitorID, []model.ClientID) {
	t.Helper()
	arena := model.NewArena()
	mon := arena.NewMonitor()
	arena.Mon(mon).TagSet[arena.Mon(mon).SelTags] = 1

	ids := make([]model.ClientID, n)
	for i := 0; i < n; i++ {
		id := arena.NewClient()
		arena.C(id).Tags = 1
		arena.AttachClient(id, mon)
		ids[i] = id
	}
	return arena, mon, ids
}

func TestPickReturnsFrontOfVisibleStack(t *testing.T) {
	arena, mon, ids := newMonitorWithClients(t, 3)
	// ids[2] attached last, so it is at the stack head.
	if got := Pick(arena, mon); got != ids[2] {
		t.Errorf("Pick = %v, want %v", got, ids[2])
	}
}

func TestPickSkipsInvisibleClients(t *testing.T) {
	arena, mon, ids := newMonitorWithClients(t, 2)
	arena.C(ids[1]).Tags = 1 << 4 // no longer on the selected tag
	if got := Pick(arena, mon); got != ids[0] {
		t.Errorf("Pick = %v, want %v (skipping invisible head)", got, ids[0])
	}
}

func TestFocusPromotesToStackHeadAndClearsUrgent(t *testing.T) {
	arena, mon, ids := newMonitorWithClients(t, 3)
	arena.C(ids[0]).IsUrgent = true

	Focus(arena, mon, ids[0])

	if arena.Mon(mon).Sel != ids[0] {
		t.Errorf("Sel = %v, want %v", arena.Mon(mon).Sel, ids[0])
	}
	if arena.C(ids[0]).IsUrgent {
		t.Error("urgent flag should be cleared on focus")
	}
	if arena.Mon(mon).Stack != ids[0] {
		t.Error("focused client should be at the head of the stack")
	}
}

func TestFocusNoClientClearsSelection(t *testing.T) {
	arena, mon, ids := newMonitorWithClients(t, 1)
	Focus(arena, mon, ids[0])
	Focus(arena, mon, model.NoClient)
	if arena.Mon(mon).Sel.Valid() {
		t.Error("expected Sel cleared after focusing NoClient")
	}
}

func TestFocusStackStepsForwardAndWraps(t *testing.T) {
	arena, mon, ids := newMonitorWithClients(t, 3)
	arena.Mon(mon).Sel = ids[2] // stack head, attach order [ids[2], ids[1], ids[0]]

	next := FocusStack(arena, mon, StepNext, false)
	if next != ids[1] {
		t.Errorf("step +1 = %v, want %v", next, ids[1])
	}

	arena.Mon(mon).Sel = ids[0] // last in visible order
	wrapped := FocusStack(arena, mon, StepNext, false)
	if wrapped != ids[2] {
		t.Errorf("step +1 past end should wrap to %v, got %v", ids[2], wrapped)
	}
}

func TestFocusStackPositionSentinel(t *testing.T) {
	arena, mon, ids := newMonitorWithClients(t, 3)
	got := FocusStack(arena, mon, 0, false)
	if got != ids[2] {
		t.Errorf("position 0 = %v, want %v (attach head)", got, ids[2])
	}
}

func TestFocusStackLockFullscreenBlocksNavigation(t *testing.T) {
	arena, mon, ids := newMonitorWithClients(t, 2)
	arena.Mon(mon).Sel = ids[0]
	arena.C(ids[0]).IsFullscreen = true

	got := FocusStack(arena, mon, 1, true)
	if got != ids[0] {
		t.Errorf("locked fullscreen selection should not change, got %v want %v", got, ids[0])
	}
}

func TestPushStackSwapsAttachOrderNotFocusStack(t *testing.T) {
	arena, mon, ids := newMonitorWithClients(t, 3)
	// attach order: [ids[2], ids[1], ids[0]]
	arena.Mon(mon).Sel = ids[1]

	PushStack(arena, mon, 1) // swap ids[1] with its successor ids[0]

	order := arena.ClientsOf(mon)
	if order[1] != ids[0] || order[2] != ids[1] {
		t.Errorf("attach order after push = %v, want ids[1] and ids[0] swapped", order)
	}
	if stackHead := arena.Mon(mon).Stack; stackHead != ids[2] {
		t.Errorf("focus stack head should be untouched by pushstack, got %v want %v", stackHead, ids[2])
	}
}
