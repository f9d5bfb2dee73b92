// Package model holds the window-manager's core data: clients, monitors,
// bars, tag sets, rules, and the shared client/stack lists that tie them
// together. Per the arena-of-ids design (spec §9), Client and Monitor
// values live in flat slices on Arena and are referenced by stable
// integer ids rather than pointers, so every operation can be expressed
// as a pure function of ids and is trivially unit-testable.
package model

// ClientID indexes Arena.Clients. NoClient means "no client".
type ClientID int

// MonitorID indexes Arena.Monitors. NoMonitor means "no monitor".
type MonitorID int

const (
	NoClient  ClientID  = -1
	NoMonitor MonitorID = -1
)

// Valid reports whether the id refers to a real client.
func (id ClientID) Valid() bool { return id != NoClient }

// Valid reports whether the id refers to a real monitor.
func (id MonitorID) Valid() bool { return id != NoMonitor }
