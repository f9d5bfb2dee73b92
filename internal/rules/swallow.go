package rules

import "github.com/distatus/tilewm/internal/model"

// PID mirrors the platform's process id type. The protocol in spec
// §4.6 walks parent-of relationships between pids; how a pid is
// obtained (XResClientIds, /proc, kvm) is the caller's concern, kept
// out of this package so the swallow decision stays pure and testable.
type PID int

// NoPID is returned by winpid lookups on platforms where no pid source
// is available (spec §4.6 step 1: "fall back to zero on other
// platforms").
const NoPID PID = 0

// isdescProcess reports whether child descends from ancestor by
// walking ppidOf. ppidOf(p) returns p's parent pid and false once the
// chain bottoms out (pid 1, or lookup failure).
//
// The original implementation returns (int)c, truncating a pid_t on
// platforms where pid_t is wider than int; reproduced here by passing
// the candidate through int32 before the final comparison so the same
// truncation surfaces on pid values that do not fit. See spec §9.
func isdescProcess(child, ancestor PID, ppidOf func(PID) (PID, bool)) bool {
	c := child
	for depth := 0; depth < 1<<16; depth++ {
		truncated := PID(int32(c))
		if truncated == ancestor {
			return true
		}
		parent, ok := ppidOf(c)
		if !ok || parent == c {
			return false
		}
		c = parent
	}
	return false
}

// Candidate is a terminal client eligible to swallow a new window.
type Candidate struct {
	ID  model.ClientID
	PID PID
}

// FindSwallowTarget implements spec §4.6 step 2: scans candidates (each
// an isterminal client not already swallowing something) for one whose
// pid is an ancestor of childPID. Returns NoClient if none qualify.
func FindSwallowTarget(candidates []Candidate, childPID PID, ppidOf func(PID) (PID, bool)) model.ClientID {
	for _, cand := range candidates {
		if isdescProcess(childPID, cand.PID, ppidOf) {
			return cand.ID
		}
	}
	return model.NoClient
}

// ShouldSwallow implements spec §4.6 step 3's eligibility test: a
// candidate terminal was found, and the child itself is neither
// isterminal nor noswallow.
//
// The original dwm checks `noswallow` alone before returning, which
// leaves `noswallow && !swallowfloating && c->isfloating` dead code
// downstream (spec §9); floating is intentionally not consulted here
// either, reproducing that unreachable branch rather than adding the
// dead floating check.
func ShouldSwallow(hasCandidate bool, childIsTerminal, childNoSwallow bool) bool {
	if !hasCandidate {
		return false
	}
	if childNoSwallow {
		return false
	}
	if childIsTerminal {
		return false
	}
	return true
}

// Transplant implements spec §4.6 step 3's window swap: the terminal
// keeps its Client slot and list position but takes on the child's
// window id, while the terminal's own original window id is returned
// as hiddenWin for restoration. The caller is responsible for detaching
// the child from the model's lists and hiding its X window.
func Transplant(terminal *model.Client, child *model.Client, childID model.ClientID) (hiddenWin model.WindowID) {
	hiddenWin = terminal.Win
	terminal.Win = child.Win
	terminal.Swallowing = childID
	return hiddenWin
}

// Restore implements spec §4.6 step 4: when the swallowed child's
// window disappears (or the swallowing parent is destroyed while still
// holding one), the terminal's original window id replaces the child's
// and the swallow link is cleared. Returns the child ClientID that was
// being swallowed so the caller can finish tearing it down.
func Restore(terminal *model.Client, originalWin model.WindowID) (restoredChild model.ClientID) {
	restoredChild = terminal.Swallowing
	terminal.Win = originalWin
	terminal.Swallowing = model.NoClient
	return restoredChild
}
