package ewmhx

import (
	"github.com/distatus/tilewm/internal/x11"
	"github.com/jezek/xgb/xproto"
	"github.com/jezek/xgbutil/xwindow"
)

// SystemTrayRequestDock is the well-known XEmbed system-tray opcode
// (spec §4.10).
const SystemTrayRequestDock = 0

// Icon tracks one docked tray icon as spec §4.10 describes: "a tagless
// Client in a sibling list with tags repurposed as mapped-state". It
// deliberately does not reuse model.Client, since a tray icon carries
// no tag/monitor/focus semantics - only geometry and embed state.
type Icon struct {
	Win    xproto.Window
	Mapped bool // repurposes the spec's "tags=1 mapped, 0 unmapped" convention
	X, Y   int
	W, H   int
}

// Systray owns the _NET_SYSTEM_TRAY_S0 selection and the embedder
// window clients dock into.
type Systray struct {
	d       *x11.Display
	Win     xproto.Window
	Icons   []*Icon
	Acquired bool
}

// NewSystray attempts to acquire the _NET_SYSTEM_TRAY_S0 selection; on
// failure (another tray owns it) Acquired is false and the module
// should not be added to the bar's module table.
func NewSystray(d *x11.Display) (*Systray, error) {
	s := &Systray{d: d}

	atom, err := d.Atom("_NET_SYSTEM_TRAY_S0")
	if err != nil {
		return nil, err
	}

	win, err := xwindow.Generate(d.X)
	if err != nil {
		return nil, err
	}
	if err := win.CreateChecked(d.Root, -1, -1, 1, 1, 0); err != nil {
		return nil, err
	}

	err = xproto.SetSelectionOwnerChecked(d.X.Conn(), win.Id, atom, xproto.TimeCurrentTime).Check()
	if err != nil {
		s.Win = win.Id
		return s, nil // Acquired stays false: another tray owns the selection
	}

	orientation, _ := d.Atom("_NET_SYSTEM_TRAY_ORIENTATION")
	xproto.ChangeProperty(d.X.Conn(), xproto.PropModeReplace, win.Id, orientation,
		xproto.AtomCardinal, 32, 1, []byte{0, 0, 0, 0}) // horizontal

	s.Win = win.Id
	s.Acquired = true
	return s, nil
}

// Dock handles a SYSTEM_TRAY_REQUEST_DOCK client message, embedding
// the requesting window via XEmbed and tracking it (spec §4.10).
func (s *Systray) Dock(embed xproto.Window, fontHeight int) *Icon {
	icon := &Icon{Win: embed, Mapped: true, H: fontHeight}
	s.Icons = append(s.Icons, icon)

	xproto.ReparentWindow(s.d.X.Conn(), embed, s.Win, 0, 0)
	xproto.MapWindow(s.d.X.Conn(), embed)

	s.normalizeGeometry(icon)
	return icon
}

// normalizeGeometry sizes an icon to the bar's font height while
// preserving aspect ratio, clamping width to at most 2x that height
// (spec §4.10).
func (s *Systray) normalizeGeometry(icon *Icon) {
	g, err := xwindow.New(s.d.X, icon.Win).Geometry()
	if err != nil || g.Height() == 0 {
		icon.W = icon.H
		return
	}
	aspect := float64(g.Width()) / float64(g.Height())
	w := int(float64(icon.H) * aspect)
	if max := icon.H * 2; w > max {
		w = max
	}
	if w < 1 {
		w = 1
	}
	icon.W = w
}

// Reparent moves the tray's embedder window into parent (a bar window)
// at the composer-assigned span and lays out its docked icons left to
// right inside it (spec §4.10's sibling-list-in-the-bar placement).
func (s *Systray) Reparent(parent xproto.Window, x, y, h int) {
	if !s.Acquired {
		return
	}
	w := s.TotalWidth()
	if w < 1 {
		w = 1
	}
	xproto.ReparentWindow(s.d.X.Conn(), s.Win, parent, int16(x), int16(y))
	xproto.ConfigureWindow(s.d.X.Conn(), s.Win,
		xproto.ConfigWindowWidth|xproto.ConfigWindowHeight,
		[]uint32{uint32(w), uint32(h)})
	xproto.MapWindow(s.d.X.Conn(), s.Win)

	cx := 0
	for _, icon := range s.Icons {
		if !icon.Mapped {
			continue
		}
		icon.X, icon.Y = cx, 0
		xproto.ConfigureWindow(s.d.X.Conn(), icon.Win,
			xproto.ConfigWindowX|xproto.ConfigWindowY|xproto.ConfigWindowWidth|xproto.ConfigWindowHeight,
			[]uint32{uint32(cx), 0, uint32(icon.W), uint32(icon.H)})
		cx += icon.W
	}
}

// Undock removes a destroyed or withdrawn icon from the tray.
func (s *Systray) Undock(win xproto.Window) {
	for i, icon := range s.Icons {
		if icon.Win == win {
			s.Icons = append(s.Icons[:i], s.Icons[i+1:]...)
			return
		}
	}
}

// TotalWidth sums every mapped icon's width, the systray module's
// width-fn contribution to the bar composer.
func (s *Systray) TotalWidth() int {
	w := 0
	for _, icon := range s.Icons {
		if icon.Mapped {
			w += icon.W
		}
	}
	return w
}
