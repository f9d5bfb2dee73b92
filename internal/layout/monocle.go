package layout

import "github.com/distatus/tilewm/internal/geom"

// monocle makes every tile fill the work area (property T3): every
// client gets the full, gap-shrunk work rectangle, visually stacked.
func monocle(n int, p Params) []geom.Rect {
	g := p.effectiveGaps(n)
	area := insetOuter(p.Area, g)
	out := make([]geom.Rect, n)
	for i := range out {
		out[i] = area
	}
	return out
}

// deck behaves like tile, except stack clients are fully overlapped (so
// only the topmost is practically visible) rather than split into rows.
func deck(n int, p Params) []geom.Rect {
	g := p.effectiveGaps(n)
	area := insetOuter(p.Area, g)

	nmaster := p.NMaster
	if nmaster > n {
		nmaster = n
	}
	nstack := n - nmaster
	out := make([]geom.Rect, n)

	masterWidth := area.Width
	if nmaster > 0 && nstack > 0 {
		masterWidth = clampPositive(int(float64(area.Width) * p.MFact))
	}
	if nmaster > 0 {
		layoutColumn(out[:nmaster], geom.Rect{X: area.X, Y: area.Y, Width: masterWidth, Height: area.Height}, g.InnerV)
	}
	if nstack > 0 {
		stackX := area.X
		stackW := area.Width
		if nmaster > 0 {
			stackX = area.X + masterWidth + g.InnerH
			stackW = clampPositive(area.Width - masterWidth - g.InnerH)
		}
		stackRect := geom.Rect{X: stackX, Y: area.Y, Width: stackW, Height: area.Height}
		for i := nmaster; i < n; i++ {
			out[i] = stackRect
		}
	}
	return out
}
