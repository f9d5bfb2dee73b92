// Package wm is the root orchestrator (spec component 12): it owns the
// model.Arena, the X11 display, the compiled-in config, and wires every
// other package's pure logic to live X state. Where the lower packages
// (model, layout, rules, focus) are deliberately X-free and
// unit-tested in isolation, this package is the seam where their
// results are actually applied to windows - the event loop, adoption
// pipeline, and arrange/focus glue all live here.
package wm

import (
	"github.com/sirupsen/logrus"

	"github.com/distatus/tilewm/internal/bar"
	"github.com/distatus/tilewm/internal/config"
	"github.com/distatus/tilewm/internal/dispatch"
	"github.com/distatus/tilewm/internal/drw"
	"github.com/distatus/tilewm/internal/ewmhx"
	"github.com/distatus/tilewm/internal/geom"
	"github.com/distatus/tilewm/internal/input"
	"github.com/distatus/tilewm/internal/model"
	"github.com/distatus/tilewm/internal/x11"
	"github.com/jezek/xgb"
	"github.com/jezek/xgb/xproto"
	"github.com/jezek/xgbutil/xrect"
	"golang.org/x/image/font"
)

// World is the single process-wide instance tying every package
// together.
type World struct {
	Arena  *model.Arena
	D      *x11.Display
	Config config.Config
	Table  *dispatch.Table

	Composers map[model.MonitorID]*bar.Composer
	Systray   *ewmhx.Systray

	// winToClient maps a managed top-level X window to its model
	// client id, the lookup every event handler starts from.
	winToClient map[xproto.Window]model.ClientID
	// winToBar maps a bar window to its Arena.Bars index.
	winToBar map[xproto.Window]model.BarID

	faces      []font.Face
	fontHeight int
	surfaces   map[model.MonitorID]*drw.Surface
	statusText string

	// deferred holds events a runDrag loop set aside while the pointer
	// was grabbed (spec §5's "all other events are queued by the X
	// server"), replayed by drainDeferred once the drag ends.
	deferred []xgb.Event

	running bool
	closed  bool
}

// New assembles a World from an already-open display and a fully
// resolved configuration; it does not yet touch X beyond what Open
// already did (scanning existing windows happens in Init).
func New(d *x11.Display, cfg config.Config) *World {
	return &World{
		Arena:       model.NewArena(),
		D:           d,
		Config:      cfg,
		Table:       dispatch.NewTable(),
		Composers:   make(map[model.MonitorID]*bar.Composer),
		winToClient: make(map[xproto.Window]model.ClientID),
		winToBar:    make(map[xproto.Window]model.BarID),
		surfaces:    make(map[model.MonitorID]*drw.Surface),
	}
}

// Init publishes EWMH capabilities, discovers monitors from Xinerama,
// attempts to acquire the system tray selection, and registers every
// core event handler (spec §4.1, §6).
func (w *World) Init() error {
	if _, err := w.D.SupportingCheckWindow(); err != nil {
		return err
	}
	if err := ewmhx.PublishSupported(w.D); err != nil {
		logrus.WithError(err).Warn("wm: publish _NET_SUPPORTED failed")
	}

	if err := w.rescanMonitors(); err != nil {
		return err
	}
	w.publishDesktopInfo()

	tray, err := ewmhx.NewSystray(w.D)
	if err != nil {
		logrus.WithError(err).Warn("wm: systray selection unavailable")
	} else {
		w.Systray = tray
	}

	w.registerHandlers()
	w.grabBindings()
	w.createBars()
	w.scanExistingWindows()
	w.arrangeAll()
	w.redrawAllBars()

	return nil
}

// grabBindings issues the passive key/button grabs on the root window
// for every compiled-in chord, so X actually delivers the KeyPress/
// ButtonPress events handleKeyPress/handleButtonPress rely on (spec
// §4.11). A grab that fails (e.g. the chord is already grabbed by
// another client) is logged and otherwise ignored.
func (w *World) grabBindings() {
	for _, kb := range w.Config.Input.Keys {
		if err := w.D.GrabKey(uint16(kb.Mod), kb.Keysym); err != nil {
			logrus.WithError(err).WithField("keysym", kb.Keysym).Warn("wm: grab key failed")
		}
	}
	for _, bb := range w.Config.Input.Buttons {
		if err := w.D.GrabButton(uint16(bb.Mod), bb.Button); err != nil {
			logrus.WithError(err).WithField("button", bb.Button).Warn("wm: grab button failed")
		}
	}
}

// rescanMonitors reconciles the arena's monitors against the current
// Xinerama head list (spec §3's lazy Monitor creation; the xrandr
// re-plug path via handleConfigureNotify). Since the arena never frees
// a Monitor slot, a head that disappears does not remove its monitor:
// retireMonitor zeroes its geometry and moves its clients onto monitor
// 0 instead. Called more than once (every root ConfigureNotify), this
// must not create duplicate monitors or bars for heads it already
// knows about.
func (w *World) rescanMonitors() error {
	var rects []geom.Rect
	if heads, err := w.D.Heads(); err == nil {
		for _, h := range heads {
			rects = append(rects, geom.Rect{X: h.X(), Y: h.Y(), Width: h.Width(), Height: h.Height()})
		}
	}
	if len(rects) == 0 {
		// No Xinerama extension, or it reported nothing usable: fall
		// back to a single monitor spanning the root window.
		x, y, width, height, err := w.D.ScreenRect()
		if err != nil {
			return err
		}
		rects = []geom.Rect{{X: x, Y: y, Width: width, Height: height}}
	}

	for i, r := range rects {
		if i < len(w.Arena.Monitors) {
			w.updateMonitor(model.MonitorID(i), r.X, r.Y, r.Width, r.Height)
		} else {
			w.addMonitor(r.X, r.Y, r.Width, r.Height)
		}
	}
	for i := len(rects); i < len(w.Arena.Monitors); i++ {
		w.retireMonitor(model.MonitorID(i))
	}
	if w.D != nil && len(w.faces) > 0 {
		w.createBars()
	}
	return nil
}

func (w *World) addMonitor(x, y, width, height int) model.MonitorID {
	id := w.Arena.NewMonitor()
	m := w.Arena.Mon(id)

	rule := config.MonitorRuleFor(w.Config.MonitorRules, int(id))
	m.MFact = rule.MFact
	m.NMaster = rule.NMaster
	m.ShowBar = rule.ShowBar
	m.LT[0] = rule.Layout
	m.LT[1] = rule.Layout
	m.Gaps = w.Config.Gaps
	m.SmartGaps = w.Config.SmartGaps
	m.TagSet[0] = rule.Tags
	m.TagSet[1] = rule.Tags
	m.ScratchpadTags = w.Config.Tags.ScratchpadMask()

	w.updateMonitor(id, x, y, width, height)
	return id
}

// updateMonitor applies a new screen rectangle to an already-allocated
// monitor and recomputes its work area; re-plugging the same physical
// head at the same geometry is then a no-op beyond the recompute.
func (w *World) updateMonitor(id model.MonitorID, x, y, width, height int) {
	m := w.Arena.Mon(id)
	m.MX, m.MY, m.MW, m.MH = x, y, width, height
	w.recomputeWorkArea(id)
}

// retireMonitor handles a head that vanished since the last scan: its
// monitor slot survives (the arena never frees one), but every client
// still attached to it moves onto monitor 0 outright, mirroring dwm's
// cleanmons() behavior for an unplugged output.
func (w *World) retireMonitor(id model.MonitorID) {
	if id == 0 || len(w.Arena.Monitors) == 0 {
		return
	}
	m := w.Arena.Mon(id)
	if m.MW == 0 && m.MH == 0 {
		return
	}
	m.MW, m.MH, m.WW, m.WH = 0, 0, 0, 0
	for _, cid := range w.Arena.ClientsOf(id) {
		c := w.Arena.C(cid)
		w.Arena.Detach(cid)
		w.Arena.DetachStack(cid)
		c.Mon = 0
		w.Arena.AttachClient(cid, 0)
	}
	w.arrange(0)
	w.publishClientLists()
}

// recomputeWorkArea sets a monitor's work rectangle from its screen
// rectangle minus bar space (spec §3): the bar is treated as a
// panel strut along the monitor's top or bottom edge and carved out
// with xrect.ApplyStrut, the same primitive EWMH panels use to publish
// _NET_WM_STRUT_PARTIAL against a set of screen rects.
func (w *World) recomputeWorkArea(id model.MonitorID) {
	m := w.Arena.Mon(id)
	rects := []xrect.Rect{xrect.New(m.MX, m.MY, m.MW, m.MH)}

	if m.ShowBar && w.Config.BarHeight > 0 {
		var top, bottom uint
		var topStartX, topEndX, bottomStartX, bottomEndX uint
		startX, endX := uint(m.MX), uint(m.MX+m.MW)
		if w.Config.TopBar {
			top, topStartX, topEndX = uint(w.Config.BarHeight), startX, endX
		} else {
			bottom, bottomStartX, bottomEndX = uint(w.Config.BarHeight), startX, endX
		}
		xrect.ApplyStrut(rects, uint(m.MX+m.MW), uint(m.MY+m.MH),
			0, 0, top, bottom,
			0, 0, 0, 0,
			topStartX, topEndX, bottomStartX, bottomEndX)
	}

	r := rects[0]
	m.WX, m.WY, m.WW, m.WH = r.X(), r.Y(), r.Width(), r.Height()
	if m.WH < 1 {
		m.WH = 1
	}
	if m.WW < 1 {
		m.WW = 1
	}
}

// publishDesktopInfo regenerates the _NET_NUMBER_OF_DESKTOPS family
// from the configured tag count and the first monitor's selection.
func (w *World) publishDesktopInfo() {
	if w.D == nil {
		return
	}
	tagNames := make([]string, w.Config.Tags.NumTags)
	for i := range tagNames {
		tagNames[i] = string(rune('1' + i))
	}
	current := 0
	if len(w.Arena.Monitors) > 0 {
		current = firstSetBit(w.Arena.Monitors[0].SelectedTags())
	}
	if err := ewmhx.PublishDesktopInfo(w.D, w.Config.Tags.NumTags, current, tagNames); err != nil {
		logrus.WithError(err).Warn("wm: publish desktop info failed")
	}
}

func firstSetBit(mask uint32) int {
	for i := 0; i < 32; i++ {
		if mask&(1<<uint(i)) != 0 {
			return i
		}
	}
	return 0
}

// publishClientLists regenerates _NET_CLIENT_LIST(_STACKING) from the
// arena's current ordering (property T5/invariant 5).
func (w *World) publishClientLists() {
	if w.D == nil {
		return
	}
	attach := w.Arena.AllClientsInMonitorOrder()
	stack := w.Arena.AllStackInMonitorOrder()

	toWins := func(ids []model.ClientID) []xproto.Window {
		out := make([]xproto.Window, len(ids))
		for i, id := range ids {
			out[i] = xproto.Window(w.Arena.C(id).Win)
		}
		return out
	}
	if err := ewmhx.PublishClientLists(w.D, toWins(attach), toWins(stack)); err != nil {
		logrus.WithError(err).Warn("wm: publish client lists failed")
	}
}

// publishActiveWindow regenerates _NET_ACTIVE_WINDOW from the focused
// monitor's current selection.
func (w *World) publishActiveWindow(mon model.MonitorID) {
	if w.D == nil {
		return
	}
	var win xproto.Window
	if sel := w.Arena.Mon(mon).Sel; sel.Valid() {
		win = xproto.Window(w.Arena.C(sel).Win)
	}
	if err := ewmhx.PublishActiveWindow(w.D, win); err != nil {
		logrus.WithError(err).Warn("wm: publish active window failed")
	}
}

// registerHandlers wires every dispatch.CoreEventCodes slot to a World
// method (internal/wm/handlers.go).
func (w *World) registerHandlers() {
	w.Table.Register(xproto.MapRequest, w.handleMapRequest)
	w.Table.Register(xproto.ConfigureRequest, w.handleConfigureRequest)
	w.Table.Register(xproto.DestroyNotify, w.handleDestroyNotify)
	w.Table.Register(xproto.UnmapNotify, w.handleUnmapNotify)
	w.Table.Register(xproto.EnterNotify, w.handleEnterNotify)
	w.Table.Register(xproto.FocusIn, w.handleFocusIn)
	w.Table.Register(xproto.PropertyNotify, w.handlePropertyNotify)
	w.Table.Register(xproto.ClientMessage, w.handleClientMessage)
	w.Table.Register(xproto.KeyPress, w.handleKeyPress)
	w.Table.Register(xproto.ButtonPress, w.handleButtonPress)
	w.Table.Register(xproto.MotionNotify, w.handleMotionNotify)
	w.Table.Register(xproto.Expose, w.handleExpose)
	w.Table.Register(xproto.MappingNotify, w.handleMappingNotify)
	w.Table.Register(xproto.ConfigureNotify, w.handleConfigureNotify)
	w.Table.Register(xproto.ResizeRequest, w.handleResizeRequest)
}

// Run pumps raw events off the X connection and routes each one
// through the dispatch table by its wire event-type code (spec §4.1:
// "direct array indexed by X event-type code", "dispatch is
// synchronous; each handler runs to completion before the next event
// is fetched"). A plain type switch decodes the handful of core event
// types the WM cares about; anything else falls through the table's
// own missing-slot no-op.
func (w *World) Run() {
	w.running = true
	conn := w.D.X.Conn()
	for w.running {
		ev, err := conn.WaitForEvent()
		if err != nil {
			if !w.running {
				return
			}
			x11.HandleError("event loop", err)
			continue
		}
		if ev == nil {
			continue
		}
		if code, payload := decodeEvent(ev); code >= 0 {
			w.Table.Dispatch(code, payload)
		}
	}
}

// decodeEvent maps a raw xgb.Event to the xproto event-type code its
// dispatch.Table slot is registered under, passing the concrete event
// value straight through for the handler's own type assertion.
func decodeEvent(ev xgb.Event) (int, interface{}) {
	switch e := ev.(type) {
	case xproto.KeyPressEvent:
		return xproto.KeyPress, e
	case xproto.ButtonPressEvent:
		return xproto.ButtonPress, e
	case xproto.MotionNotifyEvent:
		return xproto.MotionNotify, e
	case xproto.EnterNotifyEvent:
		return xproto.EnterNotify, e
	case xproto.FocusInEvent:
		return xproto.FocusIn, e
	case xproto.ExposeEvent:
		return xproto.Expose, e
	case xproto.PropertyNotifyEvent:
		return xproto.PropertyNotify, e
	case xproto.ClientMessageEvent:
		return xproto.ClientMessage, e
	case xproto.ConfigureRequestEvent:
		return xproto.ConfigureRequest, e
	case xproto.MapRequestEvent:
		return xproto.MapRequest, e
	case xproto.DestroyNotifyEvent:
		return xproto.DestroyNotify, e
	case xproto.UnmapNotifyEvent:
		return xproto.UnmapNotify, e
	case xproto.MappingNotifyEvent:
		return xproto.MappingNotify, e
	case xproto.ConfigureNotifyEvent:
		return xproto.ConfigureNotify, e
	case xproto.ResizeRequestEvent:
		return xproto.ResizeRequest, e
	default:
		return -1, nil
	}
}

// Close stops the event loop and releases the display. Idempotent,
// since Quit calls it directly to unblock Run's pending WaitForEvent
// and the deferred call in cmd/tilewm/main.go then runs again on a
// normal return.
func (w *World) Close() {
	if w.closed {
		return
	}
	w.closed = true
	w.running = false
	w.D.Close()
}

// InputTable exposes the compiled-in key/button bindings for the
// handlers in handlers.go.
func (w *World) InputTable() *input.Table {
	return &w.Config.Input
}
