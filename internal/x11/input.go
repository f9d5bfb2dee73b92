package x11

import (
	"fmt"

	"github.com/jezek/xgb/xproto"
)

// lockVariants are the extra modifier states a grab is repeated under
// so CapsLock being on does not defeat a chord (dwm's grabkeys trick;
// NumLock masking is not probed, a documented simplification).
var lockVariants = []uint16{0, xproto.ModMaskLock}

// loKeycode/hiKeycode bound the keycode range GetKeyboardMapping scans
// to build the keysym lookup table; 8..255 covers every code a real
// keyboard ever reports.
const (
	loKeycode = 8
	hiKeycode = 255
)

// keycodeForKeysym resolves a keysym to the keycode that currently
// produces it, building the reverse map from GetKeyboardMapping once
// and caching it (the map only changes on a MappingNotify, which
// handleMappingNotify does not currently invalidate - a remap requires
// a WM restart, a documented simplification).
func (d *Display) keycodeForKeysym(keysym uint32) (xproto.Keycode, bool) {
	if d.keysyms == nil {
		d.keysyms = make(map[uint32]xproto.Keycode)
		reply, err := xproto.GetKeyboardMapping(d.X.Conn(), loKeycode, hiKeycode-loKeycode+1).Reply()
		if err == nil && reply != nil {
			per := int(reply.KeysymsPerKeycode)
			for i := 0; i <= hiKeycode-loKeycode; i++ {
				row := reply.Keysyms[i*per : (i+1)*per]
				code := xproto.Keycode(loKeycode + i)
				for _, ks := range row {
					if ks == 0 {
						continue
					}
					if _, exists := d.keysyms[uint32(ks)]; !exists {
						d.keysyms[uint32(ks)] = code
					}
				}
			}
		}
	}
	code, ok := d.keysyms[keysym]
	return code, ok
}

// GrabKey registers a passive key grab on the root window for mods+
// keysym, repeated for each of lockVariants.
func (d *Display) GrabKey(mods uint16, keysym uint32) error {
	code, ok := d.keycodeForKeysym(keysym)
	if !ok {
		return fmt.Errorf("x11: no keycode for keysym 0x%x", keysym)
	}
	for _, variant := range lockVariants {
		err := xproto.GrabKeyChecked(d.X.Conn(), false, d.Root, mods|variant, code,
			xproto.GrabModeAsync, xproto.GrabModeAsync).Check()
		if err != nil {
			return err
		}
	}
	return nil
}

// GrabButton registers a passive button grab on the root window with
// owner-events set, asynchronous on both pointer and keyboard; the
// click is reported to the root window (with the client under the
// pointer as the event's child) and is not replayed to that client.
func (d *Display) GrabButton(mods uint16, button uint8) error {
	for _, variant := range lockVariants {
		err := xproto.GrabButtonChecked(d.X.Conn(), true, d.Root,
			xproto.EventMaskButtonPress,
			xproto.GrabModeAsync, xproto.GrabModeAsync,
			0, 0, xproto.Button(button), mods|variant).Check()
		if err != nil {
			return err
		}
	}
	return nil
}

// SelectClientInput arms the per-window event masks a managed client
// needs beyond what the root's substructure selection already covers:
// enter notifications for focus-follows-mouse, property changes for
// title/hints updates, and focus events for handleFocusIn's sanity
// check (spec §4.1/§4.5).
func (d *Display) SelectClientInput(win xproto.Window) {
	err := xproto.ChangeWindowAttributesChecked(d.X.Conn(), win, xproto.CwEventMask,
		[]uint32{xproto.EventMaskEnterWindow | xproto.EventMaskPropertyChange |
			xproto.EventMaskFocusChange | xproto.EventMaskStructureNotify}).Check()
	HandleError("SelectClientInput", err)
}
