package model

import "testing"

// TestClientInExactlyOneList exercises property T1: a client is in a
// monitor's Clients list iff it is in that monitor's Stack iff its Mon
// field names that monitor.
func TestClientInExactlyOneList(t *testing.T) {
	a := NewArena()
	m0 := a.NewMonitor()
	m1 := a.NewMonitor()

	c1 := a.NewClient()
	c2 := a.NewClient()
	a.AttachClient(c1, m0)
	a.AttachClient(c2, m1)

	for _, tc := range []struct {
		c   ClientID
		mon MonitorID
	}{{c1, m0}, {c2, m1}} {
		if a.C(tc.c).Mon != tc.mon {
			t.Fatalf("client %d: Mon = %v, want %v", tc.c, a.C(tc.c).Mon, tc.mon)
		}
		if !inList(a.ClientsOf(tc.mon), tc.c) {
			t.Errorf("client %d missing from Clients(%v)", tc.c, tc.mon)
		}
		if !inList(a.StackOf(tc.mon), tc.c) {
			t.Errorf("client %d missing from Stack(%v)", tc.c, tc.mon)
		}
	}

	if inList(a.ClientsOf(m0), c2) {
		t.Errorf("client %d should not appear on monitor %v", c2, m0)
	}
}

// TestClientListConcatenationOrder exercises property T5: the
// concatenation across monitors, in monitor order, matches the
// combined client-list / stacking order.
func TestClientListConcatenationOrder(t *testing.T) {
	a := NewArena()
	m0 := a.NewMonitor()
	m1 := a.NewMonitor()

	var ids []ClientID
	for i := 0; i < 3; i++ {
		c := a.NewClient()
		a.AttachClient(c, m0)
		ids = append(ids, c)
	}
	for i := 0; i < 2; i++ {
		c := a.NewClient()
		a.AttachClient(c, m1)
		ids = append(ids, c)
	}

	all := a.AllClientsInMonitorOrder()
	want := append(append([]ClientID{}, a.ClientsOf(m0)...), a.ClientsOf(m1)...)
	if !equalIDs(all, want) {
		t.Errorf("AllClientsInMonitorOrder() = %v, want %v", all, want)
	}

	allStack := a.AllStackInMonitorOrder()
	wantStack := append(append([]ClientID{}, a.StackOf(m0)...), a.StackOf(m1)...)
	if !equalIDs(allStack, wantStack) {
		t.Errorf("AllStackInMonitorOrder() = %v, want %v", allStack, wantStack)
	}
}

func TestDetachRemovesFromAttachOrder(t *testing.T) {
	a := NewArena()
	m0 := a.NewMonitor()
	c1 := a.NewClient()
	c2 := a.NewClient()
	a.AttachClient(c1, m0)
	a.AttachClient(c2, m0)

	a.Detach(c1)
	a.DetachStack(c1)

	if inList(a.ClientsOf(m0), c1) {
		t.Errorf("client %d should be detached from Clients", c1)
	}
	if inList(a.StackOf(m0), c1) {
		t.Errorf("client %d should be detached from Stack", c1)
	}
}

func TestDetachStackReselectsVisibleFront(t *testing.T) {
	a := NewArena()
	m0 := a.NewMonitor()
	mon := a.Mon(m0)
	mon.TagSet[0] = 1

	c1 := a.NewClient()
	a.C(c1).Tags = 1
	c2 := a.NewClient()
	a.C(c2).Tags = 1
	a.AttachClient(c1, m0)
	a.AttachClient(c2, m0)
	mon.Sel = c2

	a.DetachStack(c2)

	if mon.Sel != c1 {
		t.Errorf("Sel after detaching front = %v, want %v", mon.Sel, c1)
	}
}

func inList(ids []ClientID, id ClientID) bool {
	for _, x := range ids {
		if x == id {
			return true
		}
	}
	return false
}

func equalIDs(a, b []ClientID) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
