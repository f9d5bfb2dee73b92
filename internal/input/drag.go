package input

import "github.com/distatus/tilewm/internal/geom"

// DragKind distinguishes the three grabbed-pointer operations spec §5
// names as suspension points 2: movemouse, resizemouse, placemouse.
type DragKind int

const (
	DragMove DragKind = iota
	DragResize
	DragPlace
)

// Drag is the explicit state for one in-progress mouse operation (spec
// §9: "represent drag state explicitly so cancellation, monitor
// transfer, and snapping are pure transitions"). The driver in
// internal/wm owns the actual re-entrant X event pump; this struct and
// its transition methods are the pure reducer half, making drag logic
// unit-testable without a pointer grab.
type Drag struct {
	Kind DragKind

	StartPointerX, StartPointerY int
	StartRect                    geom.Rect

	LastMotionMS int64 // timestamp of the last applied MotionNotify, for the 60Hz throttle

	Cancelled bool
}

// NewDrag begins a drag at the given pointer position and starting
// client geometry.
func NewDrag(kind DragKind, pointerX, pointerY int, start geom.Rect) *Drag {
	return &Drag{Kind: kind, StartPointerX: pointerX, StartPointerY: pointerY, StartRect: start}
}

// ThrottleIntervalMS is the minimum spacing between applied
// MotionNotify events: spec §5's "60 Hz throttle ... ignore events
// within 16 ms of the previous one".
const ThrottleIntervalMS = 16

// ShouldApplyMotion reports whether a MotionNotify at timestamp nowMS
// should be processed, enforcing the 16ms throttle. Call Apply* only
// when this returns true; it does not itself update LastMotionMS so a
// caller that decides not to move anyway (e.g. a cancelled drag) does
// not advance the clock.
func (d *Drag) ShouldApplyMotion(nowMS int64) bool {
	return nowMS-d.LastMotionMS >= ThrottleIntervalMS
}

// ApplyMove computes the new client rectangle for a movemouse drag
// given the current pointer position, keeping width/height fixed.
func (d *Drag) ApplyMove(nowMS int64, pointerX, pointerY int) geom.Rect {
	d.LastMotionMS = nowMS
	dx := pointerX - d.StartPointerX
	dy := pointerY - d.StartPointerY
	return geom.Rect{
		X: d.StartRect.X + dx, Y: d.StartRect.Y + dy,
		Width: d.StartRect.Width, Height: d.StartRect.Height,
	}
}

// ApplyResize computes the new client rectangle for a resizemouse
// drag: position is fixed, the pointer delta grows width/height,
// clamped so neither dimension drops below 1 (spec §4.3's tie-break
// rule applies here too - a resize can never collapse a client).
func (d *Drag) ApplyResize(nowMS int64, pointerX, pointerY int) geom.Rect {
	d.LastMotionMS = nowMS
	dx := pointerX - d.StartPointerX
	dy := pointerY - d.StartPointerY
	w := d.StartRect.Width + dx
	h := d.StartRect.Height + dy
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return geom.Rect{X: d.StartRect.X, Y: d.StartRect.Y, Width: w, Height: h}
}

// Cancel marks the drag as cancelled; the caller restores StartRect
// and does not commit any geometry change.
func (d *Drag) Cancel() {
	d.Cancelled = true
}
