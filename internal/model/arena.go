package model

// Arena owns every Client and Monitor value by stable index, per the
// arena-of-ids design in spec §9. It has no knowledge of X11, EWMH, or
// drawing; it only maintains the client/stack linked lists and the
// invariants of spec §3.
type Arena struct {
	Clients  []Client
	Monitors []Monitor
	Bars     []Bar

	monitorSeq int
}

// NewArena returns an empty Arena.
func NewArena() *Arena {
	return &Arena{}
}

// NewMonitor allocates and returns a fresh Monitor id.
func (a *Arena) NewMonitor() MonitorID {
	id := MonitorID(len(a.Monitors))
	a.Monitors = append(a.Monitors, Monitor{
		ID:      id,
		MFact:   0.55,
		NMaster: 1,
		ShowBar: true,
		TagSet:  [2]uint32{1, 1},
		Sel:     NoClient,
		Clients: NoClient,
		Stack:   NoClient,
	})
	a.monitorSeq++
	return id
}

// Mon returns a pointer to the monitor with the given id. Panics on an
// invalid id, as does a slice out-of-bounds access - callers are
// expected to only ever hold ids this Arena itself handed out.
func (a *Arena) Mon(id MonitorID) *Monitor { return &a.Monitors[id] }

// NewClient allocates a fresh client record, unattached to any monitor.
func (a *Arena) NewClient() ClientID {
	id := ClientID(len(a.Clients))
	a.Clients = append(a.Clients, Client{
		Mon:        NoMonitor,
		Next:       NoClient,
		SNext:      NoClient,
		Swallowing: NoClient,
		MinA:       0,
		MaxA:       0,
	})
	return id
}

// C returns a pointer to the client with the given id.
func (a *Arena) C(id ClientID) *Client { return &a.Clients[id] }

// NewBar allocates a bar record for mon and returns its id.
func (a *Arena) NewBar(mon MonitorID) BarID {
	id := BarID(len(a.Bars))
	a.Bars = append(a.Bars, Bar{ID: id, Mon: mon})
	return id
}

// Bar returns a pointer to the bar with the given id.
func (a *Arena) Bar(id BarID) *Bar { return &a.Bars[id] }

// Attach prepends c to mon's attach-order client list (spec §4.2 step
// 7: "Attach at head of both lists"). It does not touch the stack; call
// AttachStack too to keep invariant T1.
func (a *Arena) Attach(c ClientID, mon MonitorID) {
	cl := a.C(c)
	m := a.Mon(mon)
	cl.Mon = mon
	cl.Next = m.Clients
	m.Clients = c
}

// AttachStack prepends c to mon's MRU focus stack.
func (a *Arena) AttachStack(c ClientID, mon MonitorID) {
	cl := a.C(c)
	m := a.Mon(mon)
	cl.SNext = m.Stack
	m.Stack = c
}

// AttachClient does both Attach and AttachStack, the common case for a
// newly managed window.
func (a *Arena) AttachClient(c ClientID, mon MonitorID) {
	a.Attach(c, mon)
	a.AttachStack(c, mon)
}

// Detach removes c from its monitor's attach-order list. The client's
// Mon field is left unchanged so callers (e.g. tag-transfer code) can
// still read where it came from; full unmanage clears it explicitly.
func (a *Arena) Detach(c ClientID) {
	cl := a.C(c)
	if !cl.Mon.Valid() {
		return
	}
	m := a.Mon(cl.Mon)
	removeFromList(&m.Clients, a, c, func(cl *Client) *ClientID { return &cl.Next })
	cl.Next = NoClient
}

// DetachStack removes c from its monitor's focus stack, and if c was
// the monitor's selected client, re-selects the new front of the
// (now-updated) visible stack, matching dwm's detachstack semantics.
func (a *Arena) DetachStack(c ClientID) {
	cl := a.C(c)
	if !cl.Mon.Valid() {
		return
	}
	m := a.Mon(cl.Mon)
	removeFromList(&m.Stack, a, c, func(cl *Client) *ClientID { return &cl.SNext })
	cl.SNext = NoClient

	if m.Sel == c {
		m.Sel = NoClient
		for t := m.Stack; t.Valid(); t = a.C(t).SNext {
			if a.C(t).IsVisible(m.SelectedTags()) {
				m.Sel = t
				break
			}
		}
	}
}

// removeFromList splices id out of the singly linked list rooted at
// *head, using next to access each node's link field.
func removeFromList(head *ClientID, a *Arena, id ClientID, next func(*Client) *ClientID) {
	if *head == id {
		*head = *next(a.C(id))
		return
	}
	for cur := *head; cur.Valid(); cur = *next(a.C(cur)) {
		n := next(a.C(cur))
		if *n == id {
			*n = *next(a.C(id))
			return
		}
	}
}

// ClientsOf returns the monitor's clients in attach order (most
// recently attached first).
func (a *Arena) ClientsOf(mon MonitorID) []ClientID {
	var out []ClientID
	for c := a.Mon(mon).Clients; c.Valid(); c = a.C(c).Next {
		out = append(out, c)
	}
	return out
}

// StackOf returns the monitor's focus stack in MRU order.
func (a *Arena) StackOf(mon MonitorID) []ClientID {
	var out []ClientID
	for c := a.Mon(mon).Stack; c.Valid(); c = a.C(c).SNext {
		out = append(out, c)
	}
	return out
}

// VisibleTiled returns, in attach order, the clients on mon that are
// visible under its current tagset and eligible for tiling (neither
// floating nor fullscreen-overridden).
func (a *Arena) VisibleTiled(mon MonitorID) []ClientID {
	m := a.Mon(mon)
	sel := m.SelectedTags()
	var out []ClientID
	for _, c := range a.ClientsOf(mon) {
		cl := a.C(c)
		if cl.IsFloating || !cl.IsVisible(sel) {
			continue
		}
		out = append(out, c)
	}
	return out
}

// VisibleAll returns every client visible on mon under its current
// tagset, tiled or floating, in attach order.
func (a *Arena) VisibleAll(mon MonitorID) []ClientID {
	m := a.Mon(mon)
	sel := m.SelectedTags()
	var out []ClientID
	for _, c := range a.ClientsOf(mon) {
		if a.C(c).IsVisible(sel) {
			out = append(out, c)
		}
	}
	return out
}

// AllClientsInMonitorOrder concatenates every monitor's attach-order
// client list, monitor ids ascending - the order _NET_CLIENT_LIST must
// follow (invariant/property T5).
func (a *Arena) AllClientsInMonitorOrder() []ClientID {
	var out []ClientID
	for i := range a.Monitors {
		out = append(out, a.ClientsOf(MonitorID(i))...)
	}
	return out
}

// AllStackInMonitorOrder concatenates every monitor's focus stack,
// monitor ids ascending - the order _NET_CLIENT_LIST_STACKING must
// follow (property T5).
func (a *Arena) AllStackInMonitorOrder() []ClientID {
	var out []ClientID
	for i := range a.Monitors {
		out = append(out, a.StackOf(MonitorID(i))...)
	}
	return out
}
