package bar

import "testing"

func fixedWidth(n int) func(DrawContext, int) int {
	return func(DrawContext, int) int { return n }
}

func TestLayoutLeftAndRightModulesGrowInward(t *testing.T) {
	c := &Composer{Modules: []*Module{
		{Name: "tags", Align: AlignLeft, MonitorID: -1, Width: fixedWidth(50)},
		{Name: "status", Align: AlignRight, MonitorID: -1, Width: fixedWidth(80)},
	}}
	spans := c.Layout(DrawContext{MonitorID: 0}, 1000)
	if len(spans) != 2 {
		t.Fatalf("got %d spans, want 2", len(spans))
	}
	if spans[0].x != 0 || spans[0].w != 50 {
		t.Errorf("left module = %+v, want x=0 w=50", spans[0])
	}
	if spans[1].x != 1000-80 || spans[1].w != 80 {
		t.Errorf("right module = %+v, want x=920 w=80", spans[1])
	}
}

func TestLayoutCenterModuleUsesRemainingSpan(t *testing.T) {
	c := &Composer{Modules: []*Module{
		{Name: "tags", Align: AlignLeft, MonitorID: -1, Width: fixedWidth(100)},
		{Name: "status", Align: AlignRight, MonitorID: -1, Width: fixedWidth(100)},
		{Name: "title", Align: AlignCenter, MonitorID: -1, Width: fixedWidth(200)},
	}}
	spans := c.Layout(DrawContext{MonitorID: 0}, 1000)
	if len(spans) != 3 {
		t.Fatalf("got %d spans", len(spans))
	}
	title := spans[2]
	// remaining span after left/right is [100, 900); a 200-wide module
	// centers within that 800px remainder.
	wantX := 100 + (800-200)/2
	if title.x != wantX || title.w != 200 {
		t.Errorf("center module = %+v, want x=%d w=200", title, wantX)
	}
}

func TestLayoutWidthClampedToAvailableSpan(t *testing.T) {
	c := &Composer{Modules: []*Module{
		{Name: "big", Align: AlignLeft, MonitorID: -1, Width: fixedWidth(5000)},
	}}
	spans := c.Layout(DrawContext{MonitorID: 0}, 100)
	if spans[0].w != 100 {
		t.Errorf("width = %d, want clamped to barWidth 100", spans[0].w)
	}
}

func TestLayoutSkipsNonMatchingMonitor(t *testing.T) {
	c := &Composer{Modules: []*Module{
		{Name: "mon1only", Align: AlignLeft, MonitorID: 1, Width: fixedWidth(10)},
	}}
	spans := c.Layout(DrawContext{MonitorID: 0}, 500)
	if len(spans) != 0 {
		t.Errorf("expected module filtered out for non-matching monitor, got %+v", spans)
	}
}

func TestLayoutLeftRightVariantShrinksBothRanges(t *testing.T) {
	c := &Composer{Modules: []*Module{
		{Name: "wall", Align: AlignLeftRight, MonitorID: -1, Width: fixedWidth(50)},
		{Name: "afterLeft", Align: AlignLeft, MonitorID: -1, Width: fixedWidth(30)},
		{Name: "afterRight", Align: AlignRight, MonitorID: -1, Width: fixedWidth(30)},
	}}
	spans := c.Layout(DrawContext{MonitorID: 0}, 1000)
	// wall takes [0,50) from the left range and also shrinks rw by 50.
	if spans[0].x != 0 || spans[0].w != 50 {
		t.Errorf("wall = %+v", spans[0])
	}
	if spans[1].x != 50 {
		t.Errorf("afterLeft.x = %d, want 50 (left range continues after wall)", spans[1].x)
	}
	// right range shrank by 50 too, so afterRight sits at 1000-50-30.
	if spans[2].x != 1000-50-30 {
		t.Errorf("afterRight.x = %d, want %d", spans[2].x, 1000-50-30)
	}
}

func TestClickDispatchesToContainingModule(t *testing.T) {
	var clicked string
	c := &Composer{Modules: []*Module{
		{Name: "a", Align: AlignLeft, MonitorID: -1, Width: fixedWidth(50),
			Click: func(DrawContext, int, uint8) { clicked = "a" }},
		{Name: "b", Align: AlignLeft, MonitorID: -1, Width: fixedWidth(50),
			Click: func(DrawContext, int, uint8) { clicked = "b" }},
	}}
	c.Click(DrawContext{MonitorID: 0}, 1000, 60, 1)
	if clicked != "b" {
		t.Errorf("clicked = %q, want b (x=60 falls in [50,100))", clicked)
	}
}
