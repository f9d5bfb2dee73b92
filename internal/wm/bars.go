package wm

import (
	"github.com/sirupsen/logrus"

	"github.com/distatus/tilewm/internal/bar"
	"github.com/distatus/tilewm/internal/drw"
	"github.com/distatus/tilewm/internal/layout"
	"github.com/distatus/tilewm/internal/model"
	"github.com/jezek/xgb/xproto"
	"github.com/jezek/xgbutil/icccm"
	"golang.org/x/image/font"
)

// monitorTagsSource adapts one monitor's state to bar.TagsSource,
// letting NewTagsModule stay free of internal/wm's concrete types.
type monitorTagsSource struct {
	w   *World
	mon model.MonitorID
}

func (s monitorTagsSource) Occupied() uint32 {
	var mask uint32
	for _, id := range s.w.Arena.ClientsOf(s.mon) {
		c := s.w.Arena.C(id)
		if c.Tags != model.OmniTag {
			mask |= c.Tags
		}
	}
	return mask
}

func (s monitorTagsSource) Selected() uint32 { return s.w.Arena.Mon(s.mon).SelectedTags() }

func (s monitorTagsSource) Urgent() uint32 {
	var mask uint32
	for _, id := range s.w.Arena.ClientsOf(s.mon) {
		c := s.w.Arena.C(id)
		if c.IsUrgent && c.Tags != model.OmniTag {
			mask |= c.Tags
		}
	}
	return mask
}

func (s monitorTagsSource) TagName(i int) string { return string(rune('1' + i)) }
func (s monitorTagsSource) NumTags() int         { return s.w.Config.Tags.NumTags }

// loadFonts resolves the compiled-in font cascade (spec §6) once, up
// front, so every bar's composer shares the same drw.FindFont results.
func (w *World) loadFonts() {
	for _, spec := range w.Config.Fonts {
		w.faces = append(w.faces, drw.FindFont(spec))
	}
	if len(w.faces) == 0 {
		return
	}
	w.fontHeight = fontHeightPixels(w.faces[0])
	if w.Config.BarHeight == 0 {
		w.Config.BarHeight = w.fontHeight + 6
	}
}

func fontHeightPixels(f font.Face) int {
	m := f.Metrics()
	return (m.Ascent + m.Descent).Ceil()
}

// createBars creates one bar window per monitor that wants one (spec
// §4.9), following the teacher's Bar.create sequence through
// x11.CreateBarWindow, then builds that monitor's Composer and
// drawing surface.
func (w *World) createBars() {
	if len(w.faces) == 0 {
		w.loadFonts()
	}
	if w.D == nil || len(w.faces) == 0 {
		return
	}
	for i := range w.Arena.Monitors {
		mon := model.MonitorID(i)
		if w.Arena.Mon(mon).ShowBar && w.barOf(mon) == nil {
			w.createBar(mon)
		}
	}
}

// createBar is a no-op if mon already has a bar window, so a re-scan
// after a monitor hot-plug never duplicates one.
func (w *World) createBar(mon model.MonitorID) {
	if w.barOf(mon) != nil {
		return
	}
	m := w.Arena.Mon(mon)
	y := m.MY
	if !w.Config.TopBar {
		y = m.MY + m.MH - w.Config.BarHeight
	}

	win, err := w.D.CreateBarWindow(m.MX, y, m.MW, w.Config.BarHeight, w.Config.TopBar)
	if err != nil {
		logrus.WithError(err).Warn("wm: could not create bar window")
		return
	}
	w.D.SelectBarInput(win)

	id := w.Arena.NewBar(mon)
	b := w.Arena.Bar(id)
	b.Win = model.WindowID(win)
	b.BX, b.BY, b.BW, b.BH = m.MX, y, m.MW, w.Config.BarHeight
	b.Top = w.Config.TopBar

	w.winToBar[win] = id
	w.Composers[mon] = w.buildComposer(mon, win)

	scheme := w.Config.Schemes.Get("norm")
	w.surfaces[mon] = drw.NewSurface(w.D.X, win, m.MW, w.Config.BarHeight, scheme.Bg)
}

// buildComposer assembles the compiled-in module chain for a monitor:
// tags, the active layout symbol, the selected client's title, the
// status2d feed, and - on the first monitor only, when a tray
// selection was acquired - the systray (spec §4.9's default rule list,
// §4.10's tray).
func (w *World) buildComposer(mon model.MonitorID, win xproto.Window) *bar.Composer {
	face := w.faces[0]
	schemes := w.Config.Schemes

	symbol := func() string {
		m := w.Arena.Mon(mon)
		n := len(w.Arena.ClientsOf(mon))
		return layout.Symbol(m.SelectedLayout(), n)
	}
	selectedName := func() string {
		m := w.Arena.Mon(mon)
		if !m.Sel.Valid() {
			return ""
		}
		return w.Arena.C(m.Sel).Name
	}
	statusText := func() string { return w.statusText }

	modules := []*bar.Module{
		bar.NewTagsModule(monitorTagsSource{w: w, mon: mon}, face, schemes, w.fontHeight),
		bar.NewLtSymbolModule(symbol, face, schemes.Get("norm")),
		bar.NewWinTitleModule(selectedName, face, schemes.Get("norm")),
		bar.NewStatus2DModule(statusText, w.faces, schemes.Get("norm")),
	}
	if mon == 0 && w.Systray != nil && w.Systray.Acquired {
		modules = append(modules, bar.NewSystrayModule(w.Systray, func() xproto.Window { return win }))
	}

	return &bar.Composer{Modules: modules}
}

// redrawBar repaints the bar owning win, if one has been wired up.
func (w *World) redrawBar(win xproto.Window) {
	id, ok := w.winToBar[win]
	if !ok {
		return
	}
	b := w.Arena.Bar(id)
	composer, ok := w.Composers[b.Mon]
	if !ok {
		return
	}
	surface, ok := w.surfaces[b.Mon]
	if !ok {
		return
	}
	ctx := bar.DrawContext{MonitorID: int(b.Mon), BarHeight: b.BH, FontHeight: w.fontHeight}
	composer.Draw(ctx, surface, b.BW)
}

// redrawAllBars repaints every monitor's bar, used after any tag,
// focus, or layout change that could alter bar content (spec §4.9).
func (w *World) redrawAllBars() {
	for mon := range w.Composers {
		if b := w.barOf(mon); b != nil {
			w.redrawBar(xproto.Window(b.Win))
		}
	}
}

// readStatusText refreshes the status2d feed from the root window's
// WM_NAME, the convention a separate status-producer process uses to
// hand text to the bar (spec §4.9/§6), then repaints every bar since
// the status module is monitor-agnostic (MonitorID -1).
func (w *World) readStatusText() {
	name, err := icccm.WmNameGet(w.D.X, w.D.Root)
	if err != nil {
		return
	}
	w.statusText = name
	w.redrawAllBars()
}

func (w *World) barOf(mon model.MonitorID) *model.Bar {
	for i := range w.Arena.Bars {
		if w.Arena.Bars[i].Mon == mon {
			return &w.Arena.Bars[i]
		}
	}
	return nil
}
