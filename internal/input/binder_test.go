package input

import "testing"

func TestMatchKeyExactChord(t *testing.T) {
	var called bool
	table := &Table{Keys: []KeyBinding{
		{Mod: 8, Keysym: 0x71, Action: func() { called = true }}, // Mod1+q
	}}

	action := table.MatchKey(8, 0x71)
	if action == nil {
		t.Fatal("expected a match")
	}
	action()
	if !called {
		t.Error("action was not the bound one")
	}

	if table.MatchKey(8, 0x72) != nil {
		t.Error("expected no match for a different keysym")
	}
	if table.MatchKey(4, 0x71) != nil {
		t.Error("expected no match for a different modifier")
	}
}

func TestMatchButtonExactChord(t *testing.T) {
	var called bool
	table := &Table{Buttons: []ButtonBinding{
		{Mod: 8, Button: 1, Action: func() { called = true }},
	}}

	action := table.MatchButton(8, 1)
	if action == nil {
		t.Fatal("expected a match")
	}
	action()
	if !called {
		t.Error("action was not the bound one")
	}

	if table.MatchButton(8, 3) != nil {
		t.Error("expected no match for a different button")
	}
}

func TestMatchOnEmptyTable(t *testing.T) {
	table := &Table{}
	if table.MatchKey(0, 0) != nil {
		t.Error("expected nil on empty table")
	}
	if table.MatchButton(0, 0) != nil {
		t.Error("expected nil on empty table")
	}
}
