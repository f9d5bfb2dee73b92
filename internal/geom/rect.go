// Package geom implements the pure geometry helpers shared by the layout
// engine and the floating-position DSL: rectangles, clamping against a
// monitor's work area, and the compact position/size language described
// in spec §4.4.
package geom

// Rect is an axis aligned pixel rectangle. Width/Height are pre-border;
// callers that need border-inclusive geometry add 2*bw themselves.
type Rect struct {
	X, Y          int
	Width, Height int
}

// Center returns the rectangle's midpoint, rounding down.
func (r Rect) Center() (x, y int) {
	return r.X + r.Width/2, r.Y + r.Height/2
}

// Clamp moves and shrinks r so that it fits entirely within area,
// preserving r's size where possible. Used to keep floating clients
// and newly mapped windows inside a monitor's screen/work rectangle.
func (r Rect) Clamp(area Rect) Rect {
	out := r
	if out.Width > area.Width {
		out.Width = area.Width
	}
	if out.Height > area.Height {
		out.Height = area.Height
	}
	if out.X < area.X {
		out.X = area.X
	}
	if out.Y < area.Y {
		out.Y = area.Y
	}
	if out.X+out.Width > area.X+area.Width {
		out.X = area.X + area.Width - out.Width
	}
	if out.Y+out.Height > area.Y+area.Height {
		out.Y = area.Y + area.Height - out.Height
	}
	return out
}

// Intersects reports whether r and o share any pixel.
func (r Rect) Intersects(o Rect) bool {
	return r.X < o.X+o.Width && r.X+r.Width > o.X &&
		r.Y < o.Y+o.Height && r.Y+r.Height > o.Y
}
