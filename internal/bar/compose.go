package bar

import "github.com/distatus/tilewm/internal/drw"

// Composer lays out and draws a monitor's modules in Rule order,
// implementing spec §4.9's two-growing-range algorithm.
type Composer struct {
	Modules []*Module
}

// Layout computes each matching module's (x, width) span for a bar
// barWidth pixels wide, without drawing anything - kept separate from
// Draw so the placement algorithm is unit-testable without a live X
// surface (mirroring internal/layout's pure-function design).
func (c *Composer) Layout(ctx DrawContext, barWidth int) []span {
	lx, lw := 0, barWidth
	rx, rw := 0, barWidth

	var spans []span
	for _, m := range c.Modules {
		if m.MonitorID >= 0 && m.MonitorID != ctx.MonitorID {
			continue
		}

		var avail, x int
		switch m.Align {
		case AlignLeft, AlignLeftRight:
			avail = lw
		case AlignRight, AlignRightLeft:
			avail = rw
		case AlignCenter:
			avail = rx + rw - lx
			if avail < 0 {
				avail = 0
			}
		default:
			avail = barWidth
		}

		w := m.Width(ctx, avail)
		if w > avail {
			w = avail
		}
		if w < 0 {
			w = 0
		}

		switch m.Align {
		case AlignLeft:
			x = lx
			lx += w
			lw -= w
		case AlignRight:
			x = rx + rw - w
			rw -= w
		case AlignCenter:
			x = lx + (avail-w)/2
		case AlignLeftRight:
			x = lx
			lx += w
			lw -= w
			rw -= w
		case AlignRightLeft:
			x = rx + rw - w
			rw -= w
			lw -= w
		default: // AlignNone
			x = lx
		}

		spans = append(spans, span{module: m, x: x, w: w})
	}
	return spans
}

// Draw runs Layout then calls each module's Draw function with its
// assigned span, finally blitting the surface to its window.
func (c *Composer) Draw(ctx DrawContext, surface *drw.Surface, barWidth int) {
	for _, s := range c.Layout(ctx, barWidth) {
		s.module.Draw(ctx, surface, s.x, s.w)
	}
	surface.Blit()
}

// Click dispatches a button press at screen-x px within a bar of
// barWidth pixels to whichever module's last-computed span contains
// it.
func (c *Composer) Click(ctx DrawContext, barWidth, px int, button uint8) {
	for _, s := range c.Layout(ctx, barWidth) {
		if s.module.Click == nil {
			continue
		}
		if px >= s.x && px < s.x+s.w {
			s.module.Click(ctx, px-s.x, button)
			return
		}
	}
}
