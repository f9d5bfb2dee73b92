package wm

import (
	"github.com/sirupsen/logrus"

	"github.com/distatus/tilewm/internal/ewmhx"
	"github.com/distatus/tilewm/internal/focus"
	"github.com/distatus/tilewm/internal/geom"
	"github.com/distatus/tilewm/internal/model"
	"github.com/distatus/tilewm/internal/rules"
	"github.com/jezek/xgb/xproto"
	"github.com/jezek/xgbutil/icccm"
	"github.com/jezek/xgbutil/motif"
)

// scanExistingWindows adopts every already-mapped top-level window
// found on the root at startup (spec §4.2: a window manager replacing
// a crashed one, or starting fresh with clients already present from a
// session restore, must not leave them unmanaged).
func (w *World) scanExistingWindows() {
	tree, err := xproto.QueryTree(w.D.X.Conn(), w.D.Root).Reply()
	if err != nil {
		logrus.WithError(err).Error("wm: query tree failed")
		return
	}
	for _, win := range tree.Children {
		attrs, err := xproto.GetWindowAttributes(w.D.X.Conn(), win).Reply()
		if err != nil || attrs.OverrideRedirect || attrs.MapState == xproto.MapStateUnmapped {
			continue
		}
		w.manage(win)
	}
}

// handleMapRequest is the MapRequest handler: every not-yet-managed
// top-level window passes through manage before it is ever mapped
// (spec §4.2 step 0).
func (w *World) handleMapRequest(event interface{}) {
	ev, ok := event.(xproto.MapRequestEvent)
	if !ok {
		return
	}
	if _, known := w.winToClient[ev.Window]; known {
		return
	}
	w.manage(ev.Window)
}

// manage runs the full client-adoption pipeline of spec §4.2: read
// identity, match rules, resolve tags/monitor/geometry, detect a
// swallow target, attach into the model, and finally map and arrange.
func (w *World) manage(win xproto.Window) model.ClientID {
	id := w.Arena.NewClient()
	c := w.Arena.C(id)
	c.Win = model.WindowID(win)

	w.readGeometry(win, c)
	w.readSizeHints(win, c)
	w.readWmHints(win, c)
	identity := w.readIdentity(win, c)

	eff := rules.Apply(w.Config.Rules, identity)
	c.IsFloating = eff.IsFloating || c.IsFixed
	c.IsTerminal = eff.IsTerminal
	c.NoSwallow = eff.NoSwallow
	c.PID = w.windowPID(win)

	c.BW = w.Config.BorderWidth
	if !w.readDecorationHint(win) {
		c.BW = 0
	}

	targetMon := w.defaultMonitor()
	if eff.MonitorOverride >= 0 && eff.MonitorOverride < len(w.Arena.Monitors) {
		targetMon = model.MonitorID(eff.MonitorOverride)
	}

	tags := rules.ResolveTags(eff.Tags, w.Arena.Mon(targetMon), w.Config.Tags)

	// spec §4.2 step 2: a transient dialog inherits its parent's
	// monitor and tags outright, bypassing rule-based retargeting.
	if parent, ok := w.transientParent(win); ok {
		targetMon = parent.Mon
		tags = parent.Tags
	}

	targetMon = rules.RetargetMonitor(w.Arena, targetMon, tags)
	c.Tags = tags
	c.Mon = targetMon

	if wtype := ewmhx.WindowType(w.D, win); wtype != "" && ewmhx.WindowTypeIsFloating(wtype) {
		c.IsFloating = true
	}

	rules.ClampInitialGeometry(c, w.Arena.Mon(targetMon))

	if c.IsFloating && eff.FloatPosition != "" {
		w.applyFloatPosition(c, targetMon, eff.FloatPosition)
	}

	w.Arena.AttachClient(id, targetMon)
	w.winToClient[win] = id

	w.trySwallow(id, c)

	w.D.SelectClientInput(win)
	w.D.Map(win)

	if !c.NeverFocus && c.IsVisible(w.Arena.Mon(targetMon).SelectedTags()) {
		focus.Focus(w.Arena, targetMon, id)
	}
	w.arrange(targetMon)
	w.setInputFocus(targetMon)
	w.publishClientLists()
	if b := w.barOf(targetMon); b != nil {
		w.redrawBar(xproto.Window(b.Win))
	}

	return id
}

// defaultMonitor returns the monitor a new client lands on absent a
// rule override: the currently focused monitor, or monitor 0.
func (w *World) defaultMonitor() model.MonitorID {
	if len(w.Arena.Monitors) == 0 {
		return model.NoMonitor
	}
	return w.FocusedMonitor()
}

func (w *World) readGeometry(win xproto.Window, c *model.Client) {
	g, err := xproto.GetGeometry(w.D.X.Conn(), xproto.Drawable(win)).Reply()
	if err != nil {
		c.W, c.H = 1, 1
		return
	}
	c.X, c.Y = int(g.X), int(g.Y)
	c.W, c.H = int(g.Width), int(g.Height)
	c.BW = int(g.BorderWidth)
}

// readSizeHints populates a client's ICCCM sizing fields from
// WM_NORMAL_HINTS (spec §4.3's ApplySizeHints consumes these).
func (w *World) readSizeHints(win xproto.Window, c *model.Client) {
	hints, err := icccm.WmNormalHintsGet(w.D.X, win)
	if err != nil || hints == nil {
		return
	}
	c.BaseW, c.BaseH = hints.BaseWidth, hints.BaseHeight
	c.IncW, c.IncH = hints.WidthInc, hints.HeightInc
	c.MinW, c.MinH = hints.MinWidth, hints.MinHeight
	c.MaxW, c.MaxH = hints.MaxWidth, hints.MaxHeight
	if hints.MaxAspectNum > 0 && hints.MaxAspectDen > 0 {
		c.MaxA = float64(hints.MaxAspectNum) / float64(hints.MaxAspectDen)
	}
	if hints.MinAspectNum > 0 && hints.MinAspectDen > 0 {
		c.MinA = float64(hints.MinAspectNum) / float64(hints.MinAspectDen)
	}
	c.IsFixed = c.MaxW > 0 && c.MaxW == c.MinW && c.MaxH > 0 && c.MaxH == c.MinH
}

// readWmHints populates a client's urgency/input flags from WM_HINTS
// (spec §4.2 step 7, §6): IsUrgent drives the urgent border/bar
// highlighting, NeverFocus keeps manage() from focusing a newly adopted
// client that declared it does not want input focus.
func (w *World) readWmHints(win xproto.Window, c *model.Client) {
	hints, err := icccm.WmHintsGet(w.D.X, win)
	if err != nil || hints == nil {
		return
	}
	c.IsUrgent = hints.Flags&icccm.HintUrgency != 0
	c.NeverFocus = hints.Flags&icccm.HintInput != 0 && hints.Input == 0
}

// readDecorationHint reports whether win should keep its window-manager
// border, per _MOTIF_WM_HINTS (spec §6): absent the property, or on any
// read error, clients are decorated by default.
func (w *World) readDecorationHint(win xproto.Window) bool {
	hints, err := motif.WmHintsGet(w.D.X, win)
	if err != nil || hints == nil {
		return true
	}
	return motif.Decor(hints)
}

// transientParent resolves WM_TRANSIENT_FOR to an already-managed
// client, implementing spec §4.2 step 2's monitor/tag inheritance.
func (w *World) transientParent(win xproto.Window) (*model.Client, bool) {
	parentWin, err := icccm.WmTransientForGet(w.D.X, win)
	if err != nil || parentWin == 0 {
		return nil, false
	}
	id, ok := w.winToClient[parentWin]
	if !ok {
		return nil, false
	}
	return w.Arena.C(id), true
}

// applyFloatPosition evaluates a rule's float-position DSL spec (§4.4)
// against the client's current geometry and the target monitor's work
// area, then writes the resulting rectangle back onto c. Pointer
// position feeds the 'm'/'M' codes; a query failure just leaves it at
// the origin, which only affects those two codes.
func (w *World) applyFloatPosition(c *model.Client, mon model.MonitorID, spec string) {
	fs, err := geom.ParseFloatPos(spec)
	if err != nil {
		logrus.WithError(err).WithField("spec", spec).Warn("wm: malformed float-position spec")
		return
	}
	m := w.Arena.Mon(mon)
	ctx := geom.EvalContext{Current: c.Rect(), Work: m.WorkRect()}
	ctx.ScreenOrigin.X, ctx.ScreenOrigin.Y = m.MX, m.MY
	if w.D != nil {
		if ptr, err := xproto.QueryPointer(w.D.X.Conn(), w.D.Root).Reply(); err == nil {
			ctx.PointerX, ctx.PointerY = int(ptr.RootX), int(ptr.RootY)
		}
	}
	c.SetRect(geom.Evaluate(fs, ctx))
}

// readIdentity gathers WM_CLASS/WM_NAME/_NET_WM_WINDOW_TYPE for rule
// matching (spec §4.2 step 1), caching the title onto c.Name for the
// bar's wintitle module.
func (w *World) readIdentity(win xproto.Window, c *model.Client) rules.Identity {
	id := rules.Identity{}
	if class, err := icccm.WmClassGet(w.D.X, win); err == nil && class != nil {
		id.Class = class.Class
		id.Instance = class.Instance
	}
	if name, err := icccm.WmNameGet(w.D.X, win); err == nil {
		id.Title = name
		c.Name = name
	}
	id.WindowType = ewmhx.WindowType(w.D, win)
	return id
}

// windowPID reads _NET_WM_PID, returning 0 if unset (spec §4.6's
// portable pid source).
func (w *World) windowPID(win xproto.Window) int {
	atom, err := w.D.Atom("_NET_WM_PID")
	if err != nil {
		return 0
	}
	reply, err := xproto.GetProperty(w.D.X.Conn(), false, win, atom, xproto.AtomCardinal, 0, 1).Reply()
	if err != nil || reply.ValueLen == 0 || len(reply.Value) < 4 {
		return 0
	}
	v := uint32(reply.Value[0]) | uint32(reply.Value[1])<<8 | uint32(reply.Value[2])<<16 | uint32(reply.Value[3])<<24
	return int(v)
}

// unmanage fully removes a client from the model and window index
// (spec §4.2's teardown path, driven by DestroyNotify/UnmapNotify).
func (w *World) unmanage(id model.ClientID) {
	c := w.Arena.C(id)
	mon := c.Mon
	delete(w.winToClient, xproto.Window(c.Win))
	w.Arena.Detach(id)
	w.Arena.DetachStack(id)
	if mon.Valid() {
		if w.Arena.Mon(mon).Sel == id {
			focus.Focus(w.Arena, mon, focus.Pick(w.Arena, mon))
		}
		w.arrange(mon)
		w.setInputFocus(mon)
		w.publishClientLists()
		if b := w.barOf(mon); b != nil {
			w.redrawBar(xproto.Window(b.Win))
		}
	}
}
