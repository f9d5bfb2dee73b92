package wm

import (
	"os"
	"strconv"

	"github.com/distatus/tilewm/internal/model"
	"github.com/distatus/tilewm/internal/rules"
)

// trySwallow runs spec §4.6's swallow decision for a freshly managed
// client: if a terminal client on any monitor, not already swallowing,
// is an ancestor process of child, the terminal's own window is
// unmapped and the terminal's slot takes over child's window, while
// child is detached from the client lists.
func (w *World) trySwallow(childID model.ClientID, child *model.Client) {
	if child.PID == 0 {
		return
	}

	var candidates []rules.Candidate
	for i := range w.Arena.Clients {
		cand := &w.Arena.Clients[i]
		if !cand.IsTerminal || cand.Swallowing.Valid() || cand.PID == 0 {
			continue
		}
		candidates = append(candidates, rules.Candidate{ID: model.ClientID(i), PID: rules.PID(cand.PID)})
	}

	target := rules.FindSwallowTarget(candidates, rules.PID(child.PID), ppidOf)
	if !target.Valid() {
		return
	}
	termC := w.Arena.C(target)
	if !rules.ShouldSwallow(true, child.IsTerminal, child.NoSwallow) {
		return
	}

	oldTermWin := termC.Win
	termC.HiddenWin = rules.Transplant(termC, child, childID)

	delete(w.winToClient, uint32AsWindow(oldTermWin))
	w.winToClient[uint32AsWindow(termC.Win)] = target
	if w.D != nil {
		w.D.Unmap(uint32AsWindow(oldTermWin))
	}

	w.Arena.Detach(childID)
	w.Arena.DetachStack(childID)
}

// ppidOf reads a process's parent pid from /proc, the Linux source
// spec §4.6 names; lookup failure reports false so isdescProcess stops
// walking rather than looping forever.
func ppidOf(pid rules.PID) (rules.PID, bool) {
	data, err := os.ReadFile("/proc/" + strconv.Itoa(int(pid)) + "/stat")
	if err != nil {
		return 0, false
	}
	// Format: "pid (comm) state ppid ...". comm may contain spaces or
	// parens, so scan from the last ')' rather than splitting naively.
	close := -1
	for i := len(data) - 1; i >= 0; i-- {
		if data[i] == ')' {
			close = i
			break
		}
	}
	if close < 0 || close+1 >= len(data) {
		return 0, false
	}
	fields := splitFields(string(data[close+1:]))
	if len(fields) < 2 {
		return 0, false
	}
	ppid, err := strconv.Atoi(fields[1])
	if err != nil {
		return 0, false
	}
	return rules.PID(ppid), true
}

func splitFields(s string) []string {
	var out []string
	start := -1
	for i, r := range s {
		if r == ' ' || r == '\t' {
			if start >= 0 {
				out = append(out, s[start:i])
				start = -1
			}
			continue
		}
		if start < 0 {
			start = i
		}
	}
	if start >= 0 {
		out = append(out, s[start:])
	}
	return out
}
