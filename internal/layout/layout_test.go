package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/distatus/tilewm/internal/geom"
	"github.com/distatus/tilewm/internal/model"
)

// TestMonocleFillsWorkArea exercises property T3: every visible client
// in monocle layout gets the monitor work area shrunk by gaps.
func TestMonocleFillsWorkArea(t *testing.T) {
	p := Params{
		Area:  geom.Rect{X: 0, Y: 0, Width: 1920, Height: 1080},
		Gaps:  model.Gaps{OuterH: 10, OuterV: 10},
		MFact: 0.55, NMaster: 1,
	}
	want := geom.Rect{X: 10, Y: 10, Width: 1900, Height: 1060}
	for n := 1; n <= 4; n++ {
		rects := Arrange(model.LayoutMonocle, n, p)
		if !assert.Len(t, rects, n, "n=%d", n) {
			continue
		}
		for i, r := range rects {
			assert.Equal(t, want, r, "n=%d client %d", n, i)
		}
	}
}

// TestSmartGapsMultiplier exercises property T4: with a single visible
// tileable client, the gap multiplier equals SmartGaps (default 3).
func TestSmartGapsMultiplier(t *testing.T) {
	p := Params{
		Area:      geom.Rect{X: 0, Y: 0, Width: 1920, Height: 1080},
		Gaps:      model.Gaps{OuterH: 5, OuterV: 5},
		MFact:     0.55,
		NMaster:   1,
		SmartGaps: 3,
	}
	rects := Arrange(model.LayoutTile, 1, p)
	want := geom.Rect{X: 15, Y: 15, Width: 1890, Height: 1050}
	assert.Equal(t, want, rects[0])
}

// TestTileMasterStackSplit exercises spec scenario S3: nmaster=1,
// mfact=0.55, 1920x1080 work area, two clients, no gaps.
func TestTileMasterStackSplit(t *testing.T) {
	p := Params{
		Area:    geom.Rect{X: 0, Y: 0, Width: 1920, Height: 1080},
		MFact:   0.55,
		NMaster: 1,
	}
	rects := Arrange(model.LayoutTile, 2, p)
	assert.Equal(t, geom.Rect{X: 0, Y: 0, Width: 1056, Height: 1080}, rects[0], "master")
	assert.Equal(t, geom.Rect{X: 1056, Y: 0, Width: 864, Height: 1080}, rects[1], "stack")
}

var singleClientFullWidthTests = []struct {
	name    string
	nmaster int
}{
	{"no stack", 2},
	{"no master", 0},
}

func TestTileOneSidedLayoutTakesFullWidth(t *testing.T) {
	for _, tt := range singleClientFullWidthTests {
		p := Params{Area: geom.Rect{X: 0, Y: 0, Width: 1920, Height: 1080}, MFact: 0.55, NMaster: tt.nmaster}
		n := 1
		if tt.nmaster == 0 {
			n = 2
		}
		rects := Arrange(model.LayoutTile, n, p)
		for _, r := range rects {
			assert.Equal(t, 1920, r.Width, tt.name)
		}
	}
}

func TestGridCellCountsMatchN(t *testing.T) {
	p := Params{Area: geom.Rect{X: 0, Y: 0, Width: 900, Height: 900}}
	for n := 1; n <= 9; n++ {
		rects := Arrange(model.LayoutGrid, n, p)
		if !assert.Len(t, rects, n, "n=%d", n) {
			continue
		}
		for _, r := range rects {
			assert.True(t, r.Width >= 1 && r.Height >= 1, "n=%d: non-positive rect %+v", n, r)
		}
	}
}

func TestNoDimensionBelowOnePixel(t *testing.T) {
	p := Params{Area: geom.Rect{X: 0, Y: 0, Width: 5, Height: 5}, MFact: 0.9, NMaster: 1}
	for _, l := range []model.Layout{
		model.LayoutTile, model.LayoutBstack, model.LayoutBstackHoriz,
		model.LayoutGrid, model.LayoutSpiral, model.LayoutDwindle,
		model.LayoutCenteredMaster, model.LayoutGaplessGrid,
	} {
		rects := Arrange(l, 7, p)
		for i, r := range rects {
			assert.True(t, r.Width >= 1 && r.Height >= 1, "layout %v client %d has non-positive dimension: %+v", l, i, r)
		}
	}
}

func TestFloatingLayoutArrangesNothing(t *testing.T) {
	p := Params{Area: geom.Rect{X: 0, Y: 0, Width: 1920, Height: 1080}}
	assert.Nil(t, Arrange(model.LayoutFloating, 3, p))
}

func TestSymbolOverrides(t *testing.T) {
	assert.Equal(t, "[4]", Symbol(model.LayoutMonocle, 4))
	assert.Equal(t, "D[2]", Symbol(model.LayoutDeck, 2))
	assert.Equal(t, "[]=", Symbol(model.LayoutTile, 2))
}
