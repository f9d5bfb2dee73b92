package layout

import "github.com/distatus/tilewm/internal/geom"

// fibonacci implements the recursive-halving family (spec §4.3): each
// remaining client gets half of whatever area is left, alternating the
// split axis; spiral additionally alternates which quadrant (the
// smaller remainder) the next split leaves behind, while dwindle always
// leaves the remainder in the bottom-right.
func fibonacci(n int, p Params, spiral bool) []geom.Rect {
	g := p.effectiveGaps(n)
	area := insetOuter(p.Area, g)
	out := make([]geom.Rect, n)

	quadrant := 0 // 0=top-left,1=top-right,2=bottom-right,3=bottom-left; spiral only
	for i := 0; i < n; i++ {
		last := i == n-1
		horizontalSplit := i%2 == 0

		if last {
			out[i] = area
			break
		}

		if horizontalSplit {
			leftW := area.Width / 2
			if leftW < 1 {
				leftW = 1
			}
			rightW := area.Width - leftW - g.InnerH
			if rightW < 1 {
				rightW = 1
			}
			var take, remain geom.Rect
			if spiral && (quadrant == 1 || quadrant == 2) {
				// leave the remainder on the left this time
				take = geom.Rect{X: area.X + leftW + g.InnerH, Y: area.Y, Width: rightW, Height: area.Height}
				remain = geom.Rect{X: area.X, Y: area.Y, Width: leftW, Height: area.Height}
			} else {
				take = geom.Rect{X: area.X, Y: area.Y, Width: leftW, Height: area.Height}
				remain = geom.Rect{X: area.X + leftW + g.InnerH, Y: area.Y, Width: rightW, Height: area.Height}
			}
			out[i] = take
			area = remain
		} else {
			topH := area.Height / 2
			if topH < 1 {
				topH = 1
			}
			bottomH := area.Height - topH - g.InnerV
			if bottomH < 1 {
				bottomH = 1
			}
			var take, remain geom.Rect
			if spiral && (quadrant == 2 || quadrant == 3) {
				take = geom.Rect{X: area.X, Y: area.Y + topH + g.InnerV, Width: area.Width, Height: bottomH}
				remain = geom.Rect{X: area.X, Y: area.Y, Width: area.Width, Height: topH}
			} else {
				take = geom.Rect{X: area.X, Y: area.Y, Width: area.Width, Height: topH}
				remain = geom.Rect{X: area.X, Y: area.Y + topH + g.InnerV, Width: area.Width, Height: bottomH}
			}
			out[i] = take
			area = remain
		}
		if spiral {
			quadrant = (quadrant + 1) % 4
		}
	}
	return out
}
