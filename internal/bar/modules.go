package bar

import (
	"strings"

	"github.com/distatus/tilewm/internal/drw"
	"github.com/distatus/tilewm/internal/ewmhx"
	"github.com/distatus/tilewm/internal/model"
	"github.com/jezek/xgb/xproto"
	"github.com/jezek/xgbutil/xgraphics"
	"golang.org/x/image/font"
)

// TagsSource supplies what the tags module needs from the model
// without depending on internal/wm directly: which tags are occupied
// (by a non-omnipresent client), which are selected, and which are
// urgent.
type TagsSource interface {
	Occupied() uint32
	Selected() uint32
	Urgent() uint32
	TagName(i int) string
	NumTags() int
}

// NewTagsModule builds the `tags` built-in (spec §4.9): one segment
// per tag that is either currently selected or occupied by a real
// (non-255-sentinel) client, selected tags drawn in the selected
// scheme, urgent tags drawn inverted.
func NewTagsModule(src TagsSource, face font.Face, schemes drw.Schemes, fontHeight int) *Module {
	visibleTags := func() []int {
		occ, sel := src.Occupied(), src.Selected()
		var tags []int
		for i := 0; i < src.NumTags(); i++ {
			bit := model.TagBit(i)
			if occ&bit != 0 || sel&bit != 0 {
				tags = append(tags, i)
			}
		}
		return tags
	}

	segWidth := func(i int) int {
		return drw.MeasureText(face, src.TagName(i)) + fontHeight // padding on both sides, proportional to the font
	}

	return &Module{
		Name:      "tags",
		Align:     AlignLeft,
		MonitorID: -1,
		Width: func(ctx DrawContext, maxWidth int) int {
			total := 0
			for _, i := range visibleTags() {
				total += segWidth(i)
			}
			if total > maxWidth {
				total = maxWidth
			}
			return total
		},
		Draw: func(ctx DrawContext, surface *drw.Surface, x, width int) {
			sel, urg := src.Selected(), src.Urgent()
			cursor := x
			for _, i := range visibleTags() {
				w := segWidth(i)
				scheme := schemes.Get("norm")
				bit := model.TagBit(i)
				switch {
				case urg&bit != 0:
					scheme = drw.Scheme{Fg: schemes.Get("urgent").Bg, Bg: schemes.Get("urgent").Fg}
				case sel&bit != 0:
					scheme = schemes.Get("sel")
				}
				surface.FillRect(cursor, 0, w, ctx.BarHeight, scheme.Bg)
				surface.Text(cursor+fontHeight/2, ctx.FontHeight, src.TagName(i), scheme.Fg, face)
				cursor += w
			}
		},
	}
}

// NewLtSymbolModule builds the `ltsymbol` built-in: the active
// layout's short symbol string (spec §4.3/§4.9), e.g. "[]=" or "[3]".
func NewLtSymbolModule(symbol func() string, face font.Face, scheme drw.Scheme) *Module {
	return &Module{
		Name:      "ltsymbol",
		Align:     AlignLeft,
		MonitorID: -1,
		Width: func(ctx DrawContext, maxWidth int) int {
			return drw.MeasureText(face, symbol())
		},
		Draw: func(ctx DrawContext, surface *drw.Surface, x, width int) {
			surface.FillRect(x, 0, width, ctx.BarHeight, scheme.Bg)
			surface.Text(x, ctx.FontHeight, symbol(), scheme.Fg, face)
		},
	}
}

// NewWinTitleModule builds the `wintitle` built-in: the selected
// client's name, truncated to its assigned width.
func NewWinTitleModule(selectedName func() string, face font.Face, scheme drw.Scheme) *Module {
	return &Module{
		Name:      "wintitle",
		Align:     AlignLeft,
		MonitorID: -1,
		Width: func(ctx DrawContext, maxWidth int) int {
			return maxWidth // wintitle greedily fills whatever is left
		},
		Draw: func(ctx DrawContext, surface *drw.Surface, x, width int) {
			surface.FillRect(x, 0, width, ctx.BarHeight, scheme.Bg)
			name := selectedName()
			for drw.MeasureText(face, name) > width && len(name) > 0 {
				name = name[:len(name)-1]
			}
			surface.Text(x, ctx.FontHeight, name, scheme.Fg, face)
		},
	}
}

// NewStatus2DModule builds the `status2d` built-in: parses statusText
// with StatusParser and draws each run with its own color/font
// (spec §4.9, §6's status-producer integration).
func NewStatus2DModule(statusText func() string, faces []font.Face, scheme drw.Scheme) *Module {
	parser := NewStatusParser()

	runsOf := func() []*StatusRun {
		return parser.Scan(strings.NewReader(statusText()))
	}
	faceFor := func(r *StatusRun) font.Face {
		if int(r.FontIndex) < len(faces) {
			return faces[r.FontIndex]
		}
		return faces[0]
	}

	return &Module{
		Name:      "status2d",
		Align:     AlignRight,
		MonitorID: -1,
		Width: func(ctx DrawContext, maxWidth int) int {
			total := 0
			for _, r := range runsOf() {
				total += drw.MeasureText(faceFor(r), r.Text)
			}
			if total > maxWidth {
				total = maxWidth
			}
			return total
		},
		Draw: func(ctx DrawContext, surface *drw.Surface, x, width int) {
			surface.FillRect(x, 0, width, ctx.BarHeight, scheme.Bg)
			runs := runsOf()
			cursor := x
			for _, r := range runs {
				face := faceFor(r)
				fg := scheme.Fg
				if r.Foreground != nil {
					fg = *r.Foreground
				}
				if r.Background != nil {
					var bg xgraphics.BGRA = *r.Background
					surface.FillRect(cursor, 0, drw.MeasureText(face, r.Text), ctx.BarHeight, bg)
				}
				cursor += surface.Text(cursor, ctx.FontHeight, r.Text, fg, face)
			}
		},
	}
}

// NewSystrayModule builds the `systray` built-in: reserves bar space
// for docked XEmbed icons (spec §4.10). Unlike the other built-ins it
// paints no pixels itself - the icons are live sibling X windows, so
// Draw just reparents the tray's embedder window into the composer-
// assigned span and lets Systray.Reparent lay the icons out inside it.
func NewSystrayModule(tray *ewmhx.Systray, barWin func() xproto.Window) *Module {
	return &Module{
		Name:      "systray",
		Align:     AlignRight,
		MonitorID: -1, // caller attaches this module only to the monitor hosting the tray
		Width: func(ctx DrawContext, maxWidth int) int {
			w := tray.TotalWidth()
			if w > maxWidth {
				w = maxWidth
			}
			return w
		},
		Draw: func(ctx DrawContext, surface *drw.Surface, x, width int) {
			tray.Reparent(barWin(), x, 0, ctx.BarHeight)
		},
	}
}
