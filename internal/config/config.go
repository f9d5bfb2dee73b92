// Package config assembles the compiled-in configuration tables spec §6
// describes in place of a config file: key/button bindings, adoption
// rules, per-monitor layout defaults, tag counts, gaps and color
// schemes. There is exactly one Config value per process, built once at
// startup from Default and then read-only for the rest of the run.
package config

import (
	"github.com/distatus/tilewm/internal/drw"
	"github.com/distatus/tilewm/internal/input"
	"github.com/distatus/tilewm/internal/model"
)

// Config is the fully assembled compiled-in configuration (spec §6:
// "no config file; everything lives in source constants read at
// compile time").
type Config struct {
	Tags model.TagsConfig

	Rules        []model.Rule
	MonitorRules []model.MonitorRule

	Gaps      model.Gaps
	SmartGaps int

	BorderWidth  int
	BarHeight    int
	TopBar       bool
	ShowBar      bool

	Fonts   []string // cascade of font specs passed to drw.FindFont
	Schemes drw.Schemes

	Input input.Table

	SnapDistance int // pixel threshold for movemouse/resizemouse edge snapping, spec §5
}

// Default returns the compiled-in baseline configuration before any
// RESOURCE_MANAGER color overrides are applied (spec §6: 9 tags, one
// scratchpad, three named schemes).
func Default() Config {
	tags := model.TagsConfig{NumTags: 9, NumScratchpads: 1}

	return Config{
		Tags: tags,

		MonitorRules: []model.MonitorRule{
			{Monitor: -1, Layout: model.LayoutTile, MFact: 0.55, NMaster: 1, ShowBar: true, Tags: model.TagBit(0)},
		},

		Rules: []model.Rule{
			// spec §8 scenario S1: a scratchpad terminal, floating and
			// centered at (50%,50%) sized (90%,80%) of the work area,
			// parked on the scratchpad tag until togglescratch(0) summons it.
			{Class: "kitty-sp", Tags: tags.ScratchpadBit(0), IsFloating: true, FloatPosition: "50% 50% 90% 80%"},
		},

		Gaps:        model.Gaps{InnerH: 6, InnerV: 6, OuterH: 6, OuterV: 6},
		SmartGaps:   3,
		BorderWidth: 1,
		BarHeight:   0, // computed from font height once a face is loaded
		TopBar:      true,
		ShowBar:     true,

		Fonts: []string{"monospace:size=10"},

		Schemes: drw.Schemes{
			"norm":   {Fg: drw.NewBGRA(0xffbbbbbb), Bg: drw.NewBGRA(0xff222222), Border: drw.NewBGRA(0xff444444)},
			"sel":    {Fg: drw.NewBGRA(0xffeeeeee), Bg: drw.NewBGRA(0xff005577), Border: drw.NewBGRA(0xff005577)},
			"urgent": {Fg: drw.NewBGRA(0xffeeeeee), Bg: drw.NewBGRA(0xffcc3333), Border: drw.NewBGRA(0xffcc3333)},
		},

		SnapDistance: 32,
	}
}

// MonitorRuleFor returns the first rule matching the monitor id,
// falling back to the wildcard (Monitor == -1) rule, or, if nothing
// matches, a tile-layout rule with MFact 0.5, one master, the bar
// shown and tag 1 selected (spec §3).
func MonitorRuleFor(rules []model.MonitorRule, mon int) model.MonitorRule {
	var wildcard model.MonitorRule
	haveWildcard := false
	for _, r := range rules {
		if r.Monitor == mon {
			return r
		}
		if r.Monitor == -1 {
			wildcard = r
			haveWildcard = true
		}
	}
	if haveWildcard {
		return wildcard
	}
	return model.MonitorRule{Layout: model.LayoutTile, MFact: 0.5, NMaster: 1, ShowBar: true, Tags: model.TagBit(0)}
}
