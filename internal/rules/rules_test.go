package rules

import (
	"testing"

	"github.com/distatus/tilewm/internal/model"
)

func TestApplyMatchesCumulativelyInOrder(t *testing.T) {
	table := []model.Rule{
		{Class: "Firefox", Tags: model.TagBit(2), MonitorOverride: -1},
		{Instance: "Navigator", IsFloating: true, MonitorOverride: -1},
	}
	eff := Apply(table, Identity{Class: "Firefox", Instance: "Navigator"})
	if !eff.Matched {
		t.Fatal("expected a match")
	}
	if eff.Tags != model.TagBit(2) {
		t.Errorf("tags = %d, want %d", eff.Tags, model.TagBit(2))
	}
	if !eff.IsFloating {
		t.Error("expected IsFloating true from second rule")
	}
}

func TestApplyStopsAtMatchOnce(t *testing.T) {
	table := []model.Rule{
		{Class: "Foo", Tags: model.TagBit(0), MatchOnce: true, MonitorOverride: -1},
		{Class: "Foo", Tags: model.TagBit(5), MonitorOverride: -1},
	}
	eff := Apply(table, Identity{Class: "Foo"})
	if eff.Tags != model.TagBit(0) {
		t.Errorf("tags = %d, want first rule's tag (matchonce should stop scan)", eff.Tags)
	}
}

func TestApplyNoMatch(t *testing.T) {
	table := []model.Rule{{Class: "Bar", MonitorOverride: -1}}
	eff := Apply(table, Identity{Class: "Foo"})
	if eff.Matched {
		t.Error("expected no match")
	}
}

func TestResolveTagsFallsBackToMonitorTagsMinusScratchpad(t *testing.T) {
	arena := model.NewArena()
	mid := arena.NewMonitor()
	mon := arena.Mon(mid)
	cfg := model.TagsConfig{NumTags: 9, NumScratchpads: 2}
	mon.TagSet[mon.SelTags] = model.TagBit(3) | cfg.ScratchpadBit(0)

	got := ResolveTags(0, mon, cfg)
	want := model.TagBit(3)
	if got != want {
		t.Errorf("got %d, want %d", got, want)
	}
}

func TestResolveTagsDefaultsToOneWhenEmpty(t *testing.T) {
	arena := model.NewArena()
	mid := arena.NewMonitor()
	mon := arena.Mon(mid)
	cfg := model.TagsConfig{NumTags: 9, NumScratchpads: 2}
	mon.TagSet[mon.SelTags] = cfg.ScratchpadBit(0)

	if got := ResolveTags(0, mon, cfg); got != 1 {
		t.Errorf("got %d, want 1", got)
	}
}

func TestResolveTagsKeepsRuleTags(t *testing.T) {
	arena := model.NewArena()
	mid := arena.NewMonitor()
	mon := arena.Mon(mid)
	cfg := model.TagsConfig{NumTags: 9, NumScratchpads: 2}
	if got := ResolveTags(model.TagBit(7), mon, cfg); got != model.TagBit(7) {
		t.Errorf("got %d, want rule tags preserved", got)
	}
}

func TestRetargetMonitorFindsFirstShowingMatch(t *testing.T) {
	arena := model.NewArena()
	m0 := arena.NewMonitor()
	m1 := arena.NewMonitor()
	arena.Mon(m0).TagSet[arena.Mon(m0).SelTags] = model.TagBit(0)
	arena.Mon(m1).TagSet[arena.Mon(m1).SelTags] = model.TagBit(5)

	got := RetargetMonitor(arena, m0, model.TagBit(5))
	if got != m1 {
		t.Errorf("got monitor %d, want %d", got, m1)
	}
}

func TestRetargetMonitorKeepsTargetWhenItMatches(t *testing.T) {
	arena := model.NewArena()
	m0 := arena.NewMonitor()
	arena.Mon(m0).TagSet[arena.Mon(m0).SelTags] = model.TagBit(1)
	got := RetargetMonitor(arena, m0, model.TagBit(1))
	if got != m0 {
		t.Errorf("got %d, want %d", got, m0)
	}
}

func TestClampInitialGeometryClampsToScreen(t *testing.T) {
	arena := model.NewArena()
	mid := arena.NewMonitor()
	mon := arena.Mon(mid)
	mon.MX, mon.MY, mon.MW, mon.MH = 0, 0, 1920, 1080
	mon.WX, mon.WY, mon.WW, mon.WH = 0, 20, 1920, 1060

	c := &model.Client{X: 1900, Y: 5, W: 400, H: 300}
	ClampInitialGeometry(c, mon)

	if c.X+c.W > mon.MX+mon.MW {
		t.Errorf("client overflows screen right edge: %+v", c)
	}
	if c.Y < mon.WY {
		t.Errorf("client Y=%d should have been pushed below bar (WY=%d) since it did not straddle", c.Y, mon.WY)
	}
}

func TestClampInitialGeometryLeavesStraddlingAlone(t *testing.T) {
	arena := model.NewArena()
	mid := arena.NewMonitor()
	mon := arena.Mon(mid)
	mon.MX, mon.MY, mon.MW, mon.MH = 0, 0, 1920, 1080
	mon.WX, mon.WY, mon.WW, mon.WH = 0, 20, 1920, 1060

	c := &model.Client{X: 100, Y: 0, W: 200, H: 200} // straddles the bar band
	ClampInitialGeometry(c, mon)
	if c.Y != 0 {
		t.Errorf("straddling client should keep its Y, got %d", c.Y)
	}
}
