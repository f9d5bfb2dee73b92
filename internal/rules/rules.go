// Package rules implements the client-adoption predicate/effect pipeline
// of spec §4.2: matching incoming windows against the configured rule
// table and resolving the tag mask, monitor, and initial geometry of a
// newly adopted client. It stays pure and X-free so the matching and
// retargeting logic is unit-testable without a display connection.
package rules

import "github.com/distatus/tilewm/internal/model"

// Identity carries the window properties a rule predicate reads (spec
// §4.2 step 1), gathered by the caller from WM_CLASS/WM_NAME/EWMH.
type Identity struct {
	Class      string
	Instance   string
	Title      string
	WindowType string
}

// Effects is the cumulative result of scanning the rule table against
// an Identity (spec §4.2 step 3): later matching rules overwrite
// earlier ones field-by-field, in table order, until a matchonce rule
// fires.
type Effects struct {
	Tags            uint32
	IsFloating      bool
	FloatPosition   string
	IsTerminal      bool
	NoSwallow       bool
	MonitorOverride int // -1 means "no override"
	Matched         bool
}

// Apply scans rules in order, applying the effects of every match
// cumulatively, stopping early at the first matchonce match (spec
// §4.2 step 3).
func Apply(table []model.Rule, id Identity) Effects {
	eff := Effects{MonitorOverride: -1}
	for i := range table {
		r := &table[i]
		if !r.Matches(id.Class, id.Instance, id.Title, id.WindowType) {
			continue
		}
		eff.Matched = true
		if r.Tags != 0 {
			eff.Tags = r.Tags
		}
		if r.IsFloating {
			eff.IsFloating = true
		}
		if r.FloatPosition != "" {
			eff.FloatPosition = r.FloatPosition
		}
		if r.IsTerminal {
			eff.IsTerminal = true
		}
		if r.NoSwallow {
			eff.NoSwallow = true
		}
		if r.MonitorOverride >= 0 {
			eff.MonitorOverride = r.MonitorOverride
		}
		if r.MatchOnce {
			break
		}
	}
	return eff
}

// ResolveTags implements spec §4.2 step 4: if no rule set tags, fall
// back to the target monitor's current tagset minus scratchpad bits,
// or tag 1 if that leaves nothing.
func ResolveTags(ruleTags uint32, mon *model.Monitor, cfg model.TagsConfig) uint32 {
	if ruleTags != 0 {
		return ruleTags
	}
	t := mon.SelectedTags() &^ cfg.ScratchpadMask()
	if t == 0 {
		return 1
	}
	return t
}

// RetargetMonitor implements spec §4.2 step 5: if the rule's target
// monitor does not currently show any of the client's tags, retarget
// to the first monitor (in arena order) that does. Returns the
// original target if it already qualifies or no other monitor does.
func RetargetMonitor(arena *model.Arena, target model.MonitorID, tags uint32) model.MonitorID {
	if target.Valid() && target < model.MonitorID(len(arena.Monitors)) {
		if arena.Monitors[target].SelectedTags()&tags != 0 {
			return target
		}
	}
	for i := range arena.Monitors {
		if arena.Monitors[i].SelectedTags()&tags != 0 {
			return model.MonitorID(i)
		}
	}
	return target
}

// ClampInitialGeometry implements spec §4.2 step 6: clamp the client's
// requested rectangle to the monitor's screen rectangle, and nudge Y so
// it does not start underneath a top bar unless the requested geometry
// already straddled the bar, i.e. starts at the screen's top edge and
// extends below the bar (in which case the straddle is left alone).
func ClampInitialGeometry(c *model.Client, mon *model.Monitor) {
	screen := mon.ScreenRect()
	work := mon.WorkRect()

	if c.W > screen.Width {
		c.W = screen.Width
	}
	if c.H > screen.Height {
		c.H = screen.Height
	}
	if c.X < screen.X {
		c.X = screen.X
	}
	if c.X+c.W > screen.X+screen.Width {
		c.X = screen.X + screen.Width - c.W
	}
	if c.Y < screen.Y {
		c.Y = screen.Y
	}
	if c.Y+c.H > screen.Y+screen.Height {
		c.Y = screen.Y + screen.Height - c.H
	}

	alreadyStraddling := c.Y <= screen.Y && c.Y+c.H > work.Y
	if !alreadyStraddling && c.Y < work.Y {
		c.Y = work.Y
	}
}
