// tilewm
//
// Copyright (C) 2022 Karol 'Kenji Takahashi' Woźniak
//
// Permission is hereby granted, free of charge, to any person obtaining
// a copy of this software and associated documentation files (the "Software"),
// to deal in the Software without restriction, including without limitation
// the rights to use, copy, modify, merge, publish, distribute, sublicense,
// and/or sell copies of the Software, and to permit persons to whom the
// Software is furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included
// in all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND,
// EXPRESS OR IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES
// OF MERCHANTABILITY, FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT.
// IN NO EVENT SHALL THE AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM,
// DAMAGES OR OTHER LIABILITY, WHETHER IN AN ACTION OF CONTRACT,
// TORT OR OTHERWISE, ARISING FROM, OUT OF OR IN CONNECTION WITH THE SOFTWARE
// OR THE USE OR OTHER DEALINGS IN THE SOFTWARE.

package main

import (
	"github.com/distatus/tilewm/internal/input"
	"github.com/distatus/tilewm/internal/model"
	"github.com/distatus/tilewm/internal/wm"
)

// X keysym values (X11/keysymdef.h), hardcoded rather than resolved by
// name at startup: there is no config file to parse keysym names out
// of (spec §6), so the compiled-in table can reference the numeric
// values directly, same as dwm's config.h does with XK_ macros.
const (
	xkReturn = 0xff0d
	xkQ      = 0x0071
	xkC      = 0x0063
	xkB      = 0x0062
	xkJ      = 0x006a
	xkK      = 0x006b
	xkP      = 0x0070
	xkSpace  = 0x0020
	xkComma  = 0x002c
	xkPeriod = 0x002e
	xkMinus  = 0x002d
	xkH      = 0x0068
	xkL      = 0x006c
	xkT      = 0x0074
	xkF      = 0x0066
	xkM      = 0x006d
	xk0      = 0x0030
	xk1      = 0x0031
	xk2      = 0x0032
	xk3      = 0x0033
	xk4      = 0x0034
	xk5      = 0x0035
	xk6      = 0x0036
	xk7      = 0x0037
	xk8      = 0x0038
	xk9      = 0x0039
)

const (
	modShift = input.Modifier(1 << 0)
	mod4     = input.Modifier(1 << 6) // Super/Mod4, dwm's MODKEY
)

const terminalCmd = "st"
const launcherCmd = "dmenu_run"

// buildRules returns the compiled-in adoption rule table (spec §4.2,
// §6's "no config file" - rules are Go source, not data). Terminal
// emulators are marked so the swallow pipeline (spec §4.6) can target
// them, a few common dialog classes float by default, and kitty-sp is
// parked on the first scratchpad tag until a togglescratch binding
// reveals it (spec §8 scenario S1).
func buildRules(tags model.TagsConfig) []model.Rule {
	return []model.Rule{
		{Class: "st", IsTerminal: true, MonitorOverride: -1},
		{Class: "XTerm", IsTerminal: true, MonitorOverride: -1},
		{Class: "Gimp", IsFloating: true, MonitorOverride: -1},
		{Class: "Pavucontrol", IsFloating: true, MonitorOverride: -1},
		{Type: "_NET_WM_WINDOW_TYPE_DIALOG", IsFloating: true, MonitorOverride: -1},
		{Class: "kitty-sp", Tags: tags.ScratchpadBit(0), IsFloating: true, FloatPosition: "50% 50% 90% 80%"},
	}
}

// tagMask returns the single-tag bitmask for a 0-indexed tag.
func tagMask(i int) uint32 { return 1 << uint(i) }

// buildInput returns the compiled-in key/button binding table (spec
// §4.11), closing over world's exported action surface. Mirrors dwm's
// config.h keys[]/buttons[] arrays: one MODKEY-chord per action, tag
// bindings generated over the nine digit keys.
func buildInput(world *wm.World) input.Table {
	var t input.Table

	t.Keys = append(t.Keys,
		input.KeyBinding{Mod: mod4, Keysym: xkReturn, Action: func() { world.Spawn([]string{terminalCmd}) }},
		input.KeyBinding{Mod: mod4, Keysym: xkP, Action: func() { world.Spawn([]string{launcherCmd}) }},
		input.KeyBinding{Mod: mod4 | modShift, Keysym: xkQ, Action: world.Quit},
		input.KeyBinding{Mod: mod4 | modShift, Keysym: xkC, Action: world.KillSelected},
		input.KeyBinding{Mod: mod4, Keysym: xkJ, Action: world.FocusNext},
		input.KeyBinding{Mod: mod4, Keysym: xkK, Action: world.FocusPrev},
		input.KeyBinding{Mod: mod4, Keysym: xkSpace, Action: func() { world.SetLayout(model.LayoutTile) }},
		input.KeyBinding{Mod: mod4 | modShift, Keysym: xkSpace, Action: func() { world.SetLayout(model.LayoutFloating) }},
		input.KeyBinding{Mod: mod4, Keysym: xkM, Action: func() { world.SetLayout(model.LayoutMonocle) }},
		input.KeyBinding{Mod: mod4, Keysym: xkF, Action: world.ToggleFullscreenSelected},
		input.KeyBinding{Mod: mod4 | modShift, Keysym: xkF, Action: world.ToggleFloatingSelected},
		input.KeyBinding{Mod: mod4, Keysym: xkH, Action: func() { world.IncMFact(-0.05) }},
		input.KeyBinding{Mod: mod4, Keysym: xkL, Action: func() { world.IncMFact(0.05) }},
		input.KeyBinding{Mod: mod4, Keysym: xkT, Action: func() { world.IncNMaster(1) }},
		input.KeyBinding{Mod: mod4 | modShift, Keysym: xkT, Action: func() { world.IncNMaster(-1) }},
		input.KeyBinding{Mod: mod4, Keysym: xkComma, Action: world.ZoomSelected},
		input.KeyBinding{Mod: mod4, Keysym: xk0, Action: func() { world.View(^uint32(0)) }},
		input.KeyBinding{Mod: mod4 | modShift, Keysym: xk0, Action: func() { world.TagSelected(^uint32(0)) }},
		input.KeyBinding{Mod: mod4, Keysym: xkMinus, Action: func() { world.ToggleScratchpad(0) }},
	)

	digits := []uint32{xk1, xk2, xk3, xk4, xk5, xk6, xk7, xk8, xk9}
	for i, keysym := range digits {
		mask := tagMask(i)
		t.Keys = append(t.Keys,
			input.KeyBinding{Mod: mod4, Keysym: keysym, Action: func() { world.View(mask) }},
			input.KeyBinding{Mod: mod4 | modShift, Keysym: keysym, Action: func() { world.TagSelected(mask) }},
		)
	}

	t.Buttons = append(t.Buttons,
		input.ButtonBinding{Mod: mod4, Button: 1, Action: world.MoveSelected},
		input.ButtonBinding{Mod: mod4, Button: 2, Action: world.ToggleFloatingSelected},
		input.ButtonBinding{Mod: mod4, Button: 3, Action: world.ResizeSelected},
	)

	return t
}
