package layout

import (
	"github.com/distatus/tilewm/internal/geom"
	"github.com/distatus/tilewm/internal/model"
)

// tile is the classic master-column / stack-column layout (spec §4.3):
// the first NMaster clients form a height-shared column on the left
// occupying MFact of the work width; the rest stack vertically on the
// right. If NMaster is 0 or there are no stack clients, the occupied
// side takes the full width. Remainder pixels from integer division go
// to the last tile in each column (tie-break rule of §4.3).
func tile(n int, p Params) []geom.Rect {
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
		layoutColumn(out[nmaster:], geom.Rect{X: stackX, Y: area.Y, Width: stackW, Height: area.Height}, g.InnerV)
	}
	return out
}

// layoutColumn splits area into len(dst) equal-height rows stacked
// vertically, separated by gap pixels, with the remainder going to the
// last row.
func layoutColumn(dst []geom.Rect, area geom.Rect, gap int) {
	n := len(dst)
	if n == 0 {
		return
	}
	totalGap := gap * (n - 1)
	rowH := (area.Height - totalGap) / n
	if rowH < 1 {
		rowH = 1
	}
	y := area.Y
	for i := 0; i < n; i++ {
		h := rowH
		if i == n-1 {
			h = area.Y + area.Height - y
			if h < 1 {
				h = 1
			}
		}
		dst[i] = geom.Rect{X: area.X, Y: y, Width: area.Width, Height: h}
		y += h + gap
	}
}

// layoutRow splits area into len(dst) equal-width columns, remainder to
// the last column.
func layoutRow(dst []geom.Rect, area geom.Rect, gap int) {
	n := len(dst)
	if n == 0 {
		return
	}
	totalGap := gap * (n - 1)
	colW := (area.Width - totalGap) / n
	if colW < 1 {
		colW = 1
	}
	x := area.X
	for i := 0; i < n; i++ {
		w := colW
		if i == n-1 {
			w = area.X + area.Width - x
			if w < 1 {
				w = 1
			}
		}
		dst[i] = geom.Rect{X: x, Y: area.Y, Width: w, Height: area.Height}
		x += w + gap
	}
}

// insetOuter shrinks area by the outer gaps on all four edges.
func insetOuter(area geom.Rect, g model.Gaps) geom.Rect {
	return geom.Rect{
		X:      area.X + g.OuterH,
		Y:      area.Y + g.OuterV,
		Width:  area.Width - 2*g.OuterH,
		Height: area.Height - 2*g.OuterV,
	}
}

// bstack is the master-on-top layout: master row across the top taking
// MFact of the work height, stack clients across the bottom — either in
// a horizontal row of columns (bstack) or in horizontal rows
// (bstackhoriz, horiz=true).
func bstack(n int, p Params, horiz bool) []geom.Rect {
	g := p.effectiveGaps(n)
	area := insetOuter(p.Area, g)

	nmaster := p.NMaster
	if nmaster > n {
		nmaster = n
	}
	nstack := n - nmaster

	out := make([]geom.Rect, n)

	masterHeight := area.Height
	if nmaster > 0 && nstack > 0 {
		masterHeight = clampPositive(int(float64(area.Height) * p.MFact))
	}

	if nmaster > 0 {
		layoutRow(out[:nmaster], geom.Rect{X: area.X, Y: area.Y, Width: area.Width, Height: masterHeight}, g.InnerH)
	}
	if nstack > 0 {
		stackY := area.Y
		stackH := area.Height
		if nmaster > 0 {
			stackY = area.Y + masterHeight + g.InnerV
			stackH = clampPositive(area.Height - masterHeight - g.InnerV)
		}
		stackArea := geom.Rect{X: area.X, Y: stackY, Width: area.Width, Height: stackH}
		if horiz {
			layoutColumn(out[nmaster:], stackArea, g.InnerV)
		} else {
			layoutRow(out[nmaster:], stackArea, g.InnerH)
		}
	}
	return out
}

// centeredMaster centers the master column, splitting the stack
// clients between its left and right.
func centeredMaster(n int, p Params) []geom.Rect {
	g := p.effectiveGaps(n)
	area := insetOuter(p.Area, g)

	nmaster := p.NMaster
	if nmaster > n {
		nmaster = n
	}
	nstack := n - nmaster
	out := make([]geom.Rect, n)

	if nstack == 0 {
		layoutColumn(out[:nmaster], area, g.InnerV)
		return out
	}

	masterW := clampPositive(int(float64(area.Width) * p.MFact))
	leftN := nstack / 2
	rightN := nstack - leftN

	leftW, rightW := 0, 0
	if leftN > 0 {
		leftW = (area.Width - masterW) / 2
		if leftW < 1 {
			leftW = 1
		}
	}
	if rightN > 0 {
		if leftN == 0 {
			rightW = area.Width - masterW
		} else {
			rightW = area.Width - masterW - leftW
		}
		if rightW < 1 {
			rightW = 1
		}
	}
	masterX := area.X + leftW

	layoutColumn(out[:nmaster], geom.Rect{X: masterX, Y: area.Y, Width: masterW, Height: area.Height}, g.InnerV)

	idx := nmaster
	if leftN > 0 {
		layoutColumn(out[idx:idx+leftN], geom.Rect{X: area.X, Y: area.Y, Width: leftW, Height: area.Height}, g.InnerV)
		idx += leftN
	}
	if rightN > 0 {
		layoutColumn(out[idx:idx+rightN], geom.Rect{X: masterX + masterW + g.InnerH, Y: area.Y, Width: rightW, Height: area.Height}, g.InnerV)
	}
	return out
}

// centeredFloatingMaster renders the master as a floating-sized
// rectangle over the screen center, with the stack tiled behind it
// across the full work area.
func centeredFloatingMaster(n int, p Params) []geom.Rect {
	g := p.effectiveGaps(n)
	area := insetOuter(p.Area, g)

	nmaster := p.NMaster
	if nmaster > n {
		nmaster = n
	}
	nstack := n - nmaster
	out := make([]geom.Rect, n)

	if nstack > 0 {
		layoutRow(out[nmaster:], area, g.InnerH)
	}

	if nmaster > 0 {
		mw := int(float64(area.Width) * p.MFact)
		mh := area.Height
		if nstack > 0 {
			mh = int(float64(area.Height) * p.MFact)
		}
		mx := area.X + (area.Width-mw)/2
		my := area.Y + (area.Height-mh)/2
		layoutColumn(out[:nmaster], geom.Rect{X: mx, Y: my, Width: mw, Height: mh}, g.InnerV)
	}
	return out
}
