package rules

import (
	"testing"

	"github.com/distatus/tilewm/internal/model"
)

// fakeProcTree builds a ppidOf function from a map of pid -> parent pid;
// pid 1 (init) has no parent.
func fakeProcTree(tree map[PID]PID) func(PID) (PID, bool) {
	return func(p PID) (PID, bool) {
		parent, ok := tree[p]
		if !ok || p == 1 {
			return 0, false
		}
		return parent, true
	}
}

// TestFindSwallowTargetWalksAncestry exercises spec scenario S5: a
// terminal (pid 100) is an ancestor of a spawned GUI client (pid 200).
func TestFindSwallowTargetWalksAncestry(t *testing.T) {
	ppidOf := fakeProcTree(map[PID]PID{
		200: 100,
		100: 1,
	})
	candidates := []Candidate{{ID: 7, PID: 100}}
	got := FindSwallowTarget(candidates, 200, ppidOf)
	if got != model.ClientID(7) {
		t.Errorf("got %v, want candidate 7", got)
	}
}

func TestFindSwallowTargetNoAncestor(t *testing.T) {
	ppidOf := fakeProcTree(map[PID]PID{
		300: 1,
	})
	candidates := []Candidate{{ID: 7, PID: 100}}
	got := FindSwallowTarget(candidates, 300, ppidOf)
	if got != model.NoClient {
		t.Errorf("got %v, want NoClient", got)
	}
}

func TestShouldSwallowRejectsNoSwallowAndTerminalChild(t *testing.T) {
	if ShouldSwallow(true, false, true) {
		t.Error("noswallow child should not be swallowed")
	}
	if ShouldSwallow(true, true, false) {
		t.Error("terminal child should not be swallowed")
	}
	if !ShouldSwallow(true, false, false) {
		t.Error("plain GUI child with a candidate should be swallowed")
	}
	if ShouldSwallow(false, false, false) {
		t.Error("no candidate means no swallow")
	}
}

// TestTransplantAndRestoreRoundTrip exercises property R3: transplant
// then restore returns the terminal to its original window.
func TestTransplantAndRestoreRoundTrip(t *testing.T) {
	terminal := &model.Client{Win: 1, Swallowing: model.NoClient}
	child := &model.Client{Win: 2}
	childID := model.ClientID(42)

	hidden := Transplant(terminal, child, childID)
	if terminal.Win != 2 {
		t.Errorf("terminal.Win = %d, want 2 (child's window)", terminal.Win)
	}
	if terminal.Swallowing != childID {
		t.Errorf("terminal.Swallowing = %v, want %v", terminal.Swallowing, childID)
	}

	restored := Restore(terminal, hidden)
	if restored != childID {
		t.Errorf("Restore returned %v, want %v", restored, childID)
	}
	if terminal.Win != 1 {
		t.Errorf("terminal.Win = %d, want restored original 1", terminal.Win)
	}
	if terminal.Swallowing != model.NoClient {
		t.Error("Swallowing should be cleared after restore")
	}
}

// TestIsdescProcessTruncation documents spec §9's noted int32
// truncation of pid_t: a pid whose low 32 bits collide with the
// ancestor's pid is (by design, reproducing the original) treated as a
// match even though it is not a real ancestor.
func TestIsdescProcessTruncation(t *testing.T) {
	const ancestor PID = 100
	collidingChild := PID(int64(1)<<32 | 100)
	ppidOf := fakeProcTree(map[PID]PID{}) // no real ancestry
	if !isdescProcess(collidingChild, ancestor, ppidOf) {
		t.Error("expected truncation-induced false-positive match, reproducing spec §9's documented bug")
	}
}
