package drw

import "github.com/jezek/xgbutil/xgraphics"

// NewBGRA converts a 0xAARRGGBB literal into xgbutil's native pixel
// format, the same conversion the teacher uses for its foreground and
// background colors.
func NewBGRA(color uint64) xgraphics.BGRA {
	return xgraphics.BGRA{
		B: uint8(color & 0x000000ff),
		G: uint8((color & 0x0000ff00) >> 8),
		R: uint8((color & 0x00ff0000) >> 16),
		A: uint8(color >> 24),
	}
}

// Scheme is one named color pair plus the border color used for
// selected/urgent client decoration (spec §3's short layout-symbol
// string sits alongside these in the bar, but border colors belong to
// client decoration rather than bar drawing).
type Scheme struct {
	Fg     xgraphics.BGRA
	Bg     xgraphics.BGRA
	Border xgraphics.BGRA
}

// Schemes indexes the compiled-in color schemes by name: "norm" for
// unselected/unfocused chrome, "sel" for the selected client's border
// and the bar's highlighted segments, "urgent" for the urgent-client
// border and inverted urgent tag rendering (spec §4.9).
type Schemes map[string]Scheme

func (s Schemes) Get(name string) Scheme {
	if sc, ok := s[name]; ok {
		return sc
	}
	return s["norm"]
}
