package geom

import "testing"

func TestParseFloatPosFields(t *testing.T) {
	fs, err := ParseFloatPos("50% 50% 90% 80%")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !fs.HasSize {
		t.Fatalf("expected 8-token (with size) form")
	}
	if fs.XVal != 50 || fs.XCode != '%' {
		t.Errorf("x = %d%c, want 50%%", fs.XVal, fs.XCode)
	}
	if fs.WVal != 90 || fs.WCode != '%' {
		t.Errorf("w = %d%c, want 90%%", fs.WVal, fs.WCode)
	}
}

func TestParseFloatPosMalformed(t *testing.T) {
	cases := []string{"", "50%", "50% 50% 90%", "nope", "50 50 90 80 70"}
	for _, c := range cases {
		if _, err := ParseFloatPos(c); err == nil {
			t.Errorf("ParseFloatPos(%q) expected error, got nil", c)
		}
	}
}

// TestEvaluatePercentMidpoint reproduces spec scenario S4: on a
// 1920x1080 work area, "50% 50% 90% 80%" places the client at
// (96,108) sized (1728,864), midpoint at (960,540).
func TestEvaluatePercentMidpoint(t *testing.T) {
	fs, err := ParseFloatPos("50% 50% 90% 80%")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	ctx := EvalContext{
		Current: Rect{X: 0, Y: 0, Width: 100, Height: 100},
		Work:    Rect{X: 0, Y: 0, Width: 1920, Height: 1080},
	}
	got := Evaluate(fs, ctx)
	want := Rect{X: 96, Y: 108, Width: 1728, Height: 864}
	if got != want {
		t.Errorf("Evaluate() = %+v, want %+v", got, want)
	}
	cx, cy := got.Center()
	if cx != 960 || cy != 540 {
		t.Errorf("center = (%d,%d), want (960,540)", cx, cy)
	}
}

func TestEvaluateAbsoluteAndRelative(t *testing.T) {
	ctx := EvalContext{
		Current: Rect{X: 200, Y: 200, Width: 300, Height: 200},
		Work:    Rect{X: 0, Y: 0, Width: 1920, Height: 1080},
	}
	ctx.ScreenOrigin.X, ctx.ScreenOrigin.Y = 0, 0

	fs, err := ParseFloatPos("10A 20A")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	got := Evaluate(fs, ctx)
	if got.X != 10 || got.Y != 20 {
		t.Errorf("absolute position = (%d,%d), want (10,20)", got.X, got.Y)
	}

	fs, err = ParseFloatPos("10a -20a")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	got = Evaluate(fs, ctx)
	if got.X != 210 || got.Y != 180 {
		t.Errorf("relative position = (%d,%d), want (210,180)", got.X, got.Y)
	}
}

func TestEvaluateClampedXY(t *testing.T) {
	ctx := EvalContext{
		Current: Rect{X: 1800, Y: 1000, Width: 300, Height: 200},
		Work:    Rect{X: 0, Y: 0, Width: 1920, Height: 1080},
	}
	fs, err := ParseFloatPos("500x 500y")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	got := Evaluate(fs, ctx)
	if got.X+got.Width > ctx.Work.X+ctx.Work.Width {
		t.Errorf("x clamp failed: %+v", got)
	}
	if got.Y+got.Height > ctx.Work.Y+ctx.Work.Height {
		t.Errorf("y clamp failed: %+v", got)
	}
}

func TestEvaluateGrid(t *testing.T) {
	ctx := EvalContext{
		Current: Rect{X: 0, Y: 0, Width: 100, Height: 100},
		Work:    Rect{X: 0, Y: 0, Width: 900, Height: 900},
	}
	fs, err := ParseFloatPos("1G 1G 1p 1p")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	got := Evaluate(fs, ctx)
	if got.Width != 300 || got.Height != 300 {
		t.Fatalf("grid cell size = %dx%d, want 300x300", got.Width, got.Height)
	}
	if got.X != 300 || got.Y != 300 {
		t.Errorf("grid position = (%d,%d), want (300,300)", got.X, got.Y)
	}
}

func TestEvaluateSizeOnlyReinterpretation(t *testing.T) {
	ctx := EvalContext{
		Current: Rect{X: 100, Y: 100, Width: 200, Height: 100},
		Work:    Rect{X: 0, Y: 0, Width: 1920, Height: 1080},
	}
	fs, err := ParseFloatPos("400w 200w")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	got := Evaluate(fs, ctx)
	if got.Width != 600 || got.Height != 300 {
		t.Fatalf("resized = %dx%d, want 600x300", got.Width, got.Height)
	}
	wantCX, wantCY := 200, 150
	gotCX, gotCY := got.Center()
	if gotCX != wantCX || gotCY != wantCY {
		t.Errorf("center preserved = (%d,%d), want (%d,%d)", gotCX, gotCY, wantCX, wantCY)
	}
}
