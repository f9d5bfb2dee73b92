package wm

import (
	"testing"

	"github.com/distatus/tilewm/internal/config"
	"github.com/distatus/tilewm/internal/model"
	"github.com/jezek/xgb/xproto"
)

// newTestWorld builds a World with a bare arena and one monitor, but no
// live X display - enough to exercise the pure tag/focus bookkeeping in
// tagsops.go without a connection (arrange/publish* no-op when w.D is
// nil, see world.go/arrange.go).
func newTestWorld(t *testing.T) (*World, model.MonitorID) {
	t.Helper()
	w := &World{
		Arena:       model.NewArena(),
		Config:      config.Default(),
		winToClient: make(map[xproto.Window]model.ClientID),
	}
	mon := w.Arena.NewMonitor()
	m := w.Arena.Mon(mon)
	m.TagSet[0] = model.TagBit(0)
	m.MW, m.MH, m.WW, m.WH = 1920, 1080, 1920, 1080
	return w, mon
}

func newTestClient(w *World, mon model.MonitorID, tags uint32) model.ClientID {
	id := w.Arena.NewClient()
	c := w.Arena.C(id)
	c.Tags = tags
	w.Arena.AttachClient(id, mon)
	return id
}

func TestViewTogglesBackOnRepeat(t *testing.T) {
	w, mon := newTestWorld(t)
	m := w.Arena.Mon(mon)
	original := m.SelectedTags()

	w.view(mon, model.TagBit(2))
	if m.SelectedTags() != model.TagBit(2) {
		t.Fatalf("got %v, want tag 2 selected", m.SelectedTags())
	}

	w.view(mon, original)
	if m.SelectedTags() != original {
		t.Errorf("got %v, want back to original tagset %v", m.SelectedTags(), original)
	}
}

func TestToggleViewXorsAndRefusesEmptyResult(t *testing.T) {
	w, mon := newTestWorld(t)
	m := w.Arena.Mon(mon)
	m.TagSet[m.SelTags] = model.TagBit(0) | model.TagBit(1)

	w.toggleView(mon, model.TagBit(1))
	if m.SelectedTags() != model.TagBit(0) {
		t.Fatalf("got %v, want tag 0 only", m.SelectedTags())
	}

	w.toggleView(mon, model.TagBit(0))
	if m.SelectedTags() != model.TagBit(0) {
		t.Error("toggling the last remaining tag bit to empty should be a no-op")
	}
}

func TestTagSetsExactMaskOnSelection(t *testing.T) {
	w, mon := newTestWorld(t)
	id := newTestClient(w, mon, model.TagBit(0))
	w.Arena.Mon(mon).Sel = id

	w.tag(mon, model.TagBit(3))
	if w.Arena.C(id).Tags != model.TagBit(3) {
		t.Errorf("got %v, want tag 3", w.Arena.C(id).Tags)
	}

	w.tag(mon, 0)
	if w.Arena.C(id).Tags != model.TagBit(3) {
		t.Error("tag(0) should be a no-op")
	}
}

func TestToggleTagRefusesToClearLastTag(t *testing.T) {
	w, mon := newTestWorld(t)
	id := newTestClient(w, mon, model.TagBit(0))
	w.Arena.Mon(mon).Sel = id

	w.toggleTag(mon, model.TagBit(0))
	if w.Arena.C(id).Tags != model.TagBit(0) {
		t.Error("toggleTag should refuse to leave the client with an empty tag mask")
	}

	w.toggleTag(mon, model.TagBit(1))
	if w.Arena.C(id).Tags != model.TagBit(0)|model.TagBit(1) {
		t.Errorf("got %v, want tags 0 and 1 set", w.Arena.C(id).Tags)
	}
}

// setUpTwoMonitors builds a second monitor alongside newTestWorld's
// monA, each showing a distinct tag bit, the minimal setup for
// exercising §4.8's cross-monitor ownership rules.
func setUpTwoMonitors(t *testing.T) (w *World, monA, monB model.MonitorID) {
	t.Helper()
	w, monA = newTestWorld(t)
	monB = w.Arena.NewMonitor()
	mb := w.Arena.Mon(monB)
	mb.TagSet[0] = model.TagBit(1)
	mb.MW, mb.MH, mb.WW, mb.WH = 1920, 1080, 1920, 1080
	return w, monA, monB
}

func TestAttachClientsReclaimsByTagOwnership(t *testing.T) {
	w, monA, monB := setUpTwoMonitors(t)

	// Attached to monA, but tagged with monB's bit - as if monA just
	// lost ownership of that bit to monB.
	id := newTestClient(w, monA, model.TagBit(1))

	w.attachClients(monB)

	if w.Arena.C(id).Mon != monB {
		t.Errorf("client tagged for monB's bit was not reclaimed onto monB")
	}
	if len(w.Arena.ClientsOf(monA)) != 0 {
		t.Errorf("monA should have no clients left")
	}
	if len(w.Arena.ClientsOf(monB)) != 1 {
		t.Errorf("monB should have exactly one client")
	}
}

func TestViewSwapsTagsetsAcrossMonitors(t *testing.T) {
	w, monA, monB := setUpTwoMonitors(t)
	idOnA := newTestClient(w, monA, model.TagBit(0))
	idOnB := newTestClient(w, monB, model.TagBit(1))

	// monB already shows tag 1; monA viewing tag 1 should swap instead
	// of producing two monitors both showing tag 1.
	w.view(monA, model.TagBit(1))

	if w.Arena.Mon(monA).SelectedTags() != model.TagBit(1) {
		t.Errorf("monA got %v, want tag 1", w.Arena.Mon(monA).SelectedTags())
	}
	if w.Arena.Mon(monB).SelectedTags() != model.TagBit(0) {
		t.Errorf("monB got %v, want tag 0 (swapped from monA)", w.Arena.Mon(monB).SelectedTags())
	}
	if w.Arena.C(idOnB).Mon != monA {
		t.Errorf("client tagged 1 should have followed its bit onto monA")
	}
	if w.Arena.C(idOnA).Mon != monB {
		t.Errorf("client tagged 0 should have followed its bit onto monB")
	}
}

func TestToggleViewStealsBitFromOwningMonitor(t *testing.T) {
	w, monA, monB := setUpTwoMonitors(t)

	w.toggleView(monA, model.TagBit(1))

	if w.Arena.Mon(monA).SelectedTags() != model.TagBit(0)|model.TagBit(1) {
		t.Errorf("monA got %v, want tags 0 and 1", w.Arena.Mon(monA).SelectedTags())
	}
	if w.Arena.Mon(monB).SelectedTags()&model.TagBit(1) != 0 {
		t.Error("monB should have lost tag 1 to monA")
	}
	if w.Arena.Mon(monB).SelectedTags() == 0 {
		t.Error("monB should have received a fallback bit rather than going empty")
	}
}

func TestTagMovesClientToOwningMonitor(t *testing.T) {
	w, monA, monB := setUpTwoMonitors(t)
	id := newTestClient(w, monA, model.TagBit(0))
	w.Arena.Mon(monA).Sel = id

	w.tag(monA, model.TagBit(1))

	if w.Arena.C(id).Tags != model.TagBit(1) {
		t.Errorf("got tags %v, want tag 1", w.Arena.C(id).Tags)
	}
	if w.Arena.C(id).Mon != monB {
		t.Errorf("client should have moved to monB, the owner of tag 1")
	}
}
