package model

import "strings"

// Rule is a client-adoption predicate/effect pair (spec §3, §4.2). All
// predicate fields are optional (empty string / zero atom matches
// anything); effects apply cumulatively as rules are scanned in order.
type Rule struct {
	Class    string // substring match against WM_CLASS class field
	Instance string // substring match against WM_CLASS instance field
	Title    string // substring match against WM_NAME
	Type     string // exact match against _NET_WM_WINDOW_TYPE atom name

	Tags            uint32
	IsFloating      bool
	FloatPosition   string // float-position DSL spec, applied if IsFloating
	IsTerminal      bool
	NoSwallow       bool
	MonitorOverride int // -1 means "no override"
	MatchOnce       bool
}

// Matches reports whether the rule's non-empty predicates all hold
// against the given window identity fields (spec §4.2 step 3).
func (r *Rule) Matches(class, instance, title, windowType string) bool {
	if r.Class != "" && !strings.Contains(class, r.Class) {
		return false
	}
	if r.Instance != "" && !strings.Contains(instance, r.Instance) {
		return false
	}
	if r.Title != "" && !strings.Contains(title, r.Title) {
		return false
	}
	if r.Type != "" && r.Type != windowType {
		return false
	}
	return true
}

// MonitorRule describes per-monitor-id (or wildcard, MonitorID==-1)
// initial state applied when a Monitor is created (spec §3).
type MonitorRule struct {
	Monitor int // -1 is wildcard
	Layout  Layout
	MFact   float64
	NMaster int
	ShowBar bool
	Tags    uint32
}
