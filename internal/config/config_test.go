package config

import "testing"

func TestDefaultHasThreeSchemes(t *testing.T) {
	cfg := Default()
	for _, name := range []string{"norm", "sel", "urgent"} {
		if _, ok := cfg.Schemes[name]; !ok {
			t.Errorf("missing scheme %q", name)
		}
	}
}

func TestMonitorRuleForFallsBackToWildcard(t *testing.T) {
	cfg := Default()
	r := MonitorRuleFor(cfg.MonitorRules, 0)
	if r.MFact != 0.55 {
		t.Errorf("expected wildcard rule to apply to monitor 0, got MFact=%v", r.MFact)
	}
}

func TestParseResourceManager(t *testing.T) {
	text := "foreground:\t#ffeedd\nbackground:\t#001122\nnot-a-pair\n\n"
	entries := parseResourceManager(text)
	if entries["foreground"] != "#ffeedd" {
		t.Errorf("got %q", entries["foreground"])
	}
	if entries["background"] != "#001122" {
		t.Errorf("got %q", entries["background"])
	}
	if _, ok := entries["not-a-pair"]; ok {
		t.Error("expected unparsable line to be skipped")
	}
}

func TestHexRejectsUnknownKeyAndBadValue(t *testing.T) {
	entries := map[string]string{"foreground": "#xyz123", "unknownkey": "#ffffff"}
	if _, ok := hex(entries, "foreground"); ok {
		t.Error("expected malformed hex value to be rejected")
	}
	if _, ok := hex(entries, "unknownkey"); ok {
		t.Error("expected unrecognized key to be rejected")
	}
}

func TestHexAcceptsValidValue(t *testing.T) {
	entries := map[string]string{"accent": "#112233"}
	v, ok := hex(entries, "accent")
	if !ok {
		t.Fatal("expected valid hex to be accepted")
	}
	if v != 0xff112233 {
		t.Errorf("got %#x, want 0xff112233", v)
	}
}
