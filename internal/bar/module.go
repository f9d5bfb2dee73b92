// Package bar implements the Bar Composer (spec §4.9): an ordered
// chain of BarModules drawn into a drw.Surface per monitor, laid out
// by growing two ranges inward from the bar's left and right edges.
// Following spec §9's "tagged variants over virtual dispatch" guidance,
// a BarModule carries no per-instance state of its own; the Rule table
// supplies width/draw/click function values at construction, the same
// shape spec's Layout enum uses for the layout engine.
package bar

import "github.com/distatus/tilewm/internal/drw"

// Alignment controls where a module's assigned span lands relative to
// the two growing ranges the composer maintains (spec §4.9 step 1).
// The LeftRight/RightLeft variants are for modules whose reserved
// space must be walled off from both directions at once - e.g. a
// floating center module that must not be overlapped as left- and
// right-anchored modules keep growing inward (an Open Question
// decision recorded in DESIGN.md, since the spec's alignment table is
// only gestured at, not reproduced in full).
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
	AlignNone
	AlignLeftRight
	AlignRightLeft
)

// Module is the (width, draw, click) triple spec §4.9 calls a "bar
// rule", plus the metadata that decides whether and where it appears.
type Module struct {
	Name      string
	Align     Alignment
	MonitorID int // -1 matches every monitor, mirroring model.Rule's wildcard convention

	// Width reports how many pixels the module needs given the
	// remaining span available to it (bar height is passed so
	// font-relative modules like systray can size icons).
	Width func(ctx DrawContext, maxWidth int) int

	// Draw paints the module into the surface at the composer-assigned
	// (x, width) span.
	Draw func(ctx DrawContext, surface *drw.Surface, x, width int)

	// Click handles a button press at the given offset within the
	// module's last-assigned span; nil if the module is not clickable.
	Click func(ctx DrawContext, xOffset int, button uint8)
}

// DrawContext bundles the read-only state a module needs to compute
// its width or paint itself, decoupling modules.go from internal/wm's
// concrete World type.
type DrawContext struct {
	MonitorID  int
	BarHeight  int
	FontHeight int
}

// span is one module's computed placement, returned by Layout.
type span struct {
	module *Module
	x, w   int
}
