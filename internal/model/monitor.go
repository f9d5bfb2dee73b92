package model

import "github.com/distatus/tilewm/internal/geom"

// Layout identifies a layout algorithm by tagged variant (spec §9:
// "prefer tagged variants over virtual dispatch"). The zero value
// LayoutTile is the default.
type Layout int

const (
	LayoutTile Layout = iota
	LayoutFloating
	LayoutMonocle
	LayoutDeck
	LayoutSpiral
	LayoutDwindle
	LayoutBstack
	LayoutBstackHoriz
	LayoutGrid
	LayoutNrowgrid
	LayoutHorizgrid
	LayoutGaplessGrid
	LayoutCenteredMaster
	LayoutCenteredFloatingMaster
)

// Symbol returns the layout's default short symbol shown in bars. Some
// layouts (monocle, deck) override this at arrange time with a count.
func (l Layout) Symbol() string {
	switch l {
	case LayoutTile:
		return "[]="
	case LayoutFloating:
		return "><>"
	case LayoutMonocle:
		return "[M]"
	case LayoutDeck:
		return "[D]"
	case LayoutSpiral:
		return "(@)"
	case LayoutDwindle:
		return "[\\]"
	case LayoutBstack:
		return "TTT"
	case LayoutBstackHoriz:
		return "==="
	case LayoutGrid:
		return "###"
	case LayoutNrowgrid:
		return "###"
	case LayoutHorizgrid:
		return "---"
	case LayoutGaplessGrid:
		return ":::"
	case LayoutCenteredMaster:
		return "|M|"
	case LayoutCenteredFloatingMaster:
		return ">M>"
	default:
		return "???"
	}
}

// Gaps holds the inner/outer horizontal/vertical gap pixel widths used
// by the layout engine (spec §4.3).
type Gaps struct {
	InnerH, InnerV int
	OuterH, OuterV int
}

// Monitor represents one logical output (spec §3).
type Monitor struct {
	ID MonitorID

	// screen rectangle (full physical output)
	MX, MY, MW, MH int
	// work area (screen minus bar space)
	WX, WY, WW, WH int

	Gaps Gaps

	MFact   float64
	NMaster int

	ShowBar bool

	// tagset[0] and tagset[1], selected by SelTags
	TagSet  [2]uint32
	SelTags int

	// lt[0] and lt[1], selected by SelLt
	LT    [2]Layout
	SelLt int

	LtSymbol string

	Sel ClientID // currently selected client, NoClient if none

	Clients ClientID // head of attach-order list for this monitor
	Stack   ClientID // head of MRU focus stack for this monitor

	Bars []BarID

	SmartGaps int // gap multiplier applied when exactly one tile is visible

	ScratchpadTags uint32
}

// SelectedTags returns the tagset currently shown on the monitor.
func (m *Monitor) SelectedTags() uint32 { return m.TagSet[m.SelTags] }

// SelectedLayout returns the layout currently active on the monitor.
func (m *Monitor) SelectedLayout() Layout { return m.LT[m.SelLt] }

// ScreenRect returns the monitor's full physical rectangle.
func (m *Monitor) ScreenRect() geom.Rect {
	return geom.Rect{X: m.MX, Y: m.MY, Width: m.MW, Height: m.MH}
}

// WorkRect returns the monitor's work area (screen minus bars).
func (m *Monitor) WorkRect() geom.Rect {
	return geom.Rect{X: m.WX, Y: m.WY, Width: m.WW, Height: m.WH}
}

// SetMFact enforces the [0.05, 0.95] bound (spec boundary B1); values
// outside the range are rejected (no-op), matching "out-of-range is a
// no-op" rather than silently clamping to the nearest bound.
func (m *Monitor) SetMFact(f float64) bool {
	if f < 0.05 || f > 0.95 {
		return false
	}
	m.MFact = f
	return true
}

// SetNMaster applies a delta to NMaster, never letting it go below 0
// (spec boundary B2).
func (m *Monitor) SetNMaster(delta int) {
	n := m.NMaster + delta
	if n < 0 {
		n = 0
	}
	m.NMaster = n
}

// Occupied returns the bitmask of tags with at least one client mapped
// to the monitor's shared client list that are not the OmniTag
// placeholder. Callers supply the client slice and the monitor id
// because Monitor itself does not own the arena.
func Occupied(clients []Client, mon MonitorID) uint32 {
	var occ uint32
	for i := range clients {
		c := &clients[i]
		if c.Mon != mon || c.Tags == OmniTag {
			continue
		}
		occ |= c.Tags
	}
	return occ
}
