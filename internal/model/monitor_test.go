package model

import "testing"

// TestMFactClamp exercises boundary B1: mfact setters clamp to
// [0.05, 0.95]; out-of-range is a no-op (not saturated to the bound).
func TestMFactClamp(t *testing.T) {
	m := &Monitor{MFact: 0.55}
	if m.SetMFact(0.04) {
		t.Errorf("SetMFact(0.04) should report rejection")
	}
	if m.MFact != 0.55 {
		t.Errorf("out-of-range SetMFact must be a no-op, got %v", m.MFact)
	}
	if !m.SetMFact(0.05) || m.MFact != 0.05 {
		t.Errorf("SetMFact(0.05) should be accepted at the lower bound")
	}
	if !m.SetMFact(0.95) || m.MFact != 0.95 {
		t.Errorf("SetMFact(0.95) should be accepted at the upper bound")
	}
	if m.SetMFact(0.96) {
		t.Errorf("SetMFact(0.96) should report rejection")
	}
}

// TestNMasterNeverNegative exercises boundary B2.
func TestNMasterNeverNegative(t *testing.T) {
	m := &Monitor{NMaster: 1}
	m.SetNMaster(-5)
	if m.NMaster != 0 {
		t.Errorf("NMaster = %d, want 0 (never negative)", m.NMaster)
	}
	m.SetNMaster(3)
	if m.NMaster != 3 {
		t.Errorf("NMaster = %d, want 3", m.NMaster)
	}
}

func TestOccupiedSkipsOmniTag(t *testing.T) {
	clients := []Client{
		{Mon: 0, Tags: 1},
		{Mon: 0, Tags: OmniTag},
		{Mon: 0, Tags: 4},
		{Mon: 1, Tags: 2},
	}
	occ := Occupied(clients, 0)
	if occ != 1|4 {
		t.Errorf("Occupied(mon 0) = %b, want %b", occ, 1|4)
	}
}
