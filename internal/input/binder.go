// Package input is the Input Binder (SPEC_FULL.md component 11): the
// compiled-in key/button grab table, and the pure geometry/throttle
// state (Drag) behind the re-entrant mouse-drag loop, whose event
// driver lives in internal/wm (drag.go).
package input

// Modifier is a bitmask of X modifier keys (Shift, Control, Mod1/Alt,
// Mod4/Super...); kept as a plain alias rather than importing xproto
// here so the binding table stays testable without a display.
type Modifier uint16

// KeyBinding pairs a (modifier, keysym) chord with the action it runs.
// Actions are late-bound function values so the table can be built
// once at startup from compiled-in configuration (spec §6: "no config
// file"; SPEC_FULL.md's config package supplies the table).
type KeyBinding struct {
	Mod    Modifier
	Keysym uint32
	Action func()
}

// ButtonBinding pairs a (modifier, button) chord on a client window
// with the drag or click action it starts.
type ButtonBinding struct {
	Mod    Modifier
	Button uint8
	Action func()
}

// Table holds every compiled-in key and button binding, plus the
// bindings are looked up by exact (mod, code) match - no partial
// matching, matching how keybind/mousebind resolve grabs in xgbutil.
type Table struct {
	Keys    []KeyBinding
	Buttons []ButtonBinding
}

// MatchKey returns the action bound to (mod, keysym), or nil.
func (t *Table) MatchKey(mod Modifier, keysym uint32) func() {
	for _, b := range t.Keys {
		if b.Mod == mod && b.Keysym == keysym {
			return b.Action
		}
	}
	return nil
}

// MatchButton returns the action bound to (mod, button), or nil.
func (t *Table) MatchButton(mod Modifier, button uint8) func() {
	for _, b := range t.Buttons {
		if b.Mod == mod && b.Button == button {
			return b.Action
		}
	}
	return nil
}
