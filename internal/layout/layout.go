// Package layout implements the pure geometry algorithms of spec §4.3:
// each layout maps an ordered list of tileable clients and a monitor's
// work area to one rectangle per client. Layouts never touch X11 or the
// model arena directly, so they are trivially table-tested.
package layout

import (
	"strconv"

	"github.com/distatus/tilewm/internal/geom"
	"github.com/distatus/tilewm/internal/model"
)

// Params bundles everything a layout function needs besides the client
// count: the work area to tile into, the master/stack split, and gaps.
type Params struct {
	Area geom.Rect

	MFact   float64
	NMaster int

	Gaps model.Gaps
	// SmartGaps, when non-zero, is the multiplier applied to every gap
	// when exactly one tile is visible (spec §4.3, property T4). A zero
	// value leaves gaps unmultiplied (equivalent to a multiplier of 1).
	SmartGaps int
}

// effectiveGaps returns the gap widths to use for n visible tiles,
// applying the smartgaps multiplier when n == 1 (property T4).
func (p Params) effectiveGaps(n int) model.Gaps {
	g := p.Gaps
	if n == 1 && p.SmartGaps > 1 {
		g.InnerH *= p.SmartGaps
		g.InnerV *= p.SmartGaps
		g.OuterH *= p.SmartGaps
		g.OuterV *= p.SmartGaps
	}
	return g
}

// Arrange dispatches to the named layout's pure function. n is the
// number of tileable (non-floating, visible) clients; the returned
// slice always has length n, in the same order the caller's client
// list iterates.
func Arrange(l model.Layout, n int, p Params) []geom.Rect {
	if n == 0 {
		return nil
	}
	switch l {
	case model.LayoutMonocle:
		return monocle(n, p)
	case model.LayoutDeck:
		return deck(n, p)
	case model.LayoutBstack:
		return bstack(n, p, false)
	case model.LayoutBstackHoriz:
		return bstack(n, p, true)
	case model.LayoutGrid:
		return grid(n, p)
	case model.LayoutNrowgrid:
		return nrowgrid(n, p)
	case model.LayoutHorizgrid:
		return horizgrid(n, p)
	case model.LayoutGaplessGrid:
		return gaplessGrid(n, p)
	case model.LayoutCenteredMaster:
		return centeredMaster(n, p)
	case model.LayoutCenteredFloatingMaster:
		return centeredFloatingMaster(n, p)
	case model.LayoutSpiral:
		return fibonacci(n, p, true)
	case model.LayoutDwindle:
		return fibonacci(n, p, false)
	case model.LayoutFloating:
		return nil // floating clients keep their own geometry; nothing to arrange
	case model.LayoutTile:
		fallthrough
	default:
		return tile(n, p)
	}
}

// Symbol returns the layout's bar symbol for n visible clients,
// applying the monocle/deck count overrides described in spec §4.3.
func Symbol(l model.Layout, n int) string {
	switch l {
	case model.LayoutMonocle:
		return bracketCount(n)
	case model.LayoutDeck:
		return "D" + bracketCount(n)
	default:
		return l.Symbol()
	}
}

func bracketCount(n int) string {
	return "[" + strconv.Itoa(n) + "]"
}

// clampPositive never lets a pre-border pixel dimension drop below 1
// (spec §4.3 tie-break rule).
func clampPositive(v int) int {
	if v < 1 {
		return 1
	}
	return v
}
