package layout

import (
	"math"

	"github.com/distatus/tilewm/internal/geom"
)

// ceilSqrt returns ceil(sqrt(n)) for n >= 1.
func ceilSqrt(n int) int {
	return int(math.Ceil(math.Sqrt(float64(n))))
}

func ceilDiv(a, b int) int {
	if b <= 0 {
		return 0
	}
	return (a + b - 1) / b
}

// columnCounts splits n items across cols columns as evenly as
// possible, with the remainder distributed to the leftmost columns
// (spec §4.3: "remainder cells distributed left-to-right").
func columnCounts(n, cols int) []int {
	base := n / cols
	rem := n % cols
	counts := make([]int, cols)
	for i := range counts {
		counts[i] = base
		if i < rem {
			counts[i]++
		}
	}
	return counts
}

// grid arranges n clients into a ceil(sqrt(n)) x ceil(n/ceil(sqrt(n)))
// grid (spec §4.3), columns outer, rows inner, remainder columns on the
// left carrying one extra cell.
func grid(n int, p Params) []geom.Rect {
	g := p.effectiveGaps(n)
	area := insetOuter(p.Area, g)

	cols := ceilSqrt(n)
	counts := columnCounts(n, cols)

	out := make([]geom.Rect, n)
	colAreas := make([]geom.Rect, cols)
	layoutRow(colAreas, area, g.InnerH)

	idx := 0
	for ci, count := range counts {
		if count == 0 {
			continue
		}
		layoutColumn(out[idx:idx+count], colAreas[ci], g.InnerV)
		idx += count
	}
	return out
}

// gaplessGrid is row-major: rows = ceil(sqrt(n)), and the last row -
// which may hold fewer items than a full row - has its cells widened
// to fill the full work width, leaving no dead space (the "gapless"
// distinction from plain grid).
func gaplessGrid(n int, p Params) []geom.Rect {
	g := p.effectiveGaps(n)
	area := insetOuter(p.Area, g)

	rows := ceilSqrt(n)
	perRow := ceilDiv(n, rows)

	rowAreas := make([]geom.Rect, rows)
	layoutColumn(rowAreas, area, g.InnerV)

	out := make([]geom.Rect, n)
	idx := 0
	for ri := 0; ri < rows; ri++ {
		remaining := n - idx
		count := perRow
		if count > remaining {
			count = remaining
		}
		if count <= 0 {
			break
		}
		layoutRow(out[idx:idx+count], rowAreas[ri], g.InnerH)
		idx += count
	}
	return out
}

// nrowgrid is gaplessGrid parameterized by an explicit row count
// (NMaster, when set, names the number of rows rather than a master
// column count) instead of always deriving rows from ceil(sqrt(n)).
func nrowgrid(n int, p Params) []geom.Rect {
	rows := p.NMaster
	if rows <= 0 {
		rows = ceilSqrt(n)
	}
	if rows > n {
		rows = n
	}
	g := p.effectiveGaps(n)
	area := insetOuter(p.Area, g)

	perRow := ceilDiv(n, rows)
	rowAreas := make([]geom.Rect, rows)
	layoutColumn(rowAreas, area, g.InnerV)

	out := make([]geom.Rect, n)
	idx := 0
	for ri := 0; ri < rows; ri++ {
		remaining := n - idx
		count := perRow
		if count > remaining {
			count = remaining
		}
		if count <= 0 {
			break
		}
		layoutRow(out[idx:idx+count], rowAreas[ri], g.InnerH)
		idx += count
	}
	return out
}

// horizgrid lays every tileable client out as a full-width horizontal
// row, one row per client - the simplest deterministic variant named
// in spec §4.3's layout list.
func horizgrid(n int, p Params) []geom.Rect {
	g := p.effectiveGaps(n)
	area := insetOuter(p.Area, g)
	out := make([]geom.Rect, n)
	layoutColumn(out, area, g.InnerV)
	return out
}
