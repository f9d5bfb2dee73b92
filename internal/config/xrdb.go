package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/distatus/tilewm/internal/drw"
	"github.com/jezek/xgbutil"
	"github.com/jezek/xgbutil/xprop"
)

// xrdbKeys lists the RESOURCE_MANAGER keys spec §6 recognizes:
// foreground/background/border feed the "norm" scheme, accent/secondary
// feed "sel"/"urgent", and color0..color15 are accepted by hex but not
// applied to anything by LoadXrdb.
var xrdbKeys = append([]string{"foreground", "background", "accent", "secondary", "border"}, colorNKeys()...)

func colorNKeys() []string {
	keys := make([]string, 16)
	for i := range keys {
		keys[i] = fmt.Sprintf("color%d", i)
	}
	return keys
}

// LoadXrdb reads the RESOURCE_MANAGER property off the root window
// (spec §6) and applies any recognized #RRGGBB color overrides onto
// cfg's schemes. Keys that are absent, malformed, or not in
// xrdbKeys are left untouched - an invalid value never partially
// applies.
func LoadXrdb(xu *xgbutil.XUtil, cfg *Config) error {
	raw, err := xprop.GetProperty(xu, xu.RootWin(), "RESOURCE_MANAGER")
	if err != nil {
		return err
	}
	entries := parseResourceManager(string(raw.Value))

	if v, ok := hex(entries, "foreground"); ok {
		applyFg(cfg.Schemes, "norm", v)
	}
	if v, ok := hex(entries, "background"); ok {
		applyBg(cfg.Schemes, "norm", v)
	}
	if v, ok := hex(entries, "border"); ok {
		applyBorder(cfg.Schemes, "norm", v)
	}
	if v, ok := hex(entries, "accent"); ok {
		applyBg(cfg.Schemes, "sel", v)
		applyBorder(cfg.Schemes, "sel", v)
	}
	if v, ok := hex(entries, "secondary"); ok {
		applyBg(cfg.Schemes, "urgent", v)
		applyBorder(cfg.Schemes, "urgent", v)
	}
	return nil
}

// parseResourceManager parses the RESOURCE_MANAGER text format: one
// "key:\tvalue" pair per line (the Xresources database dump format),
// ignoring blank lines and anything that doesn't split on the first
// colon.
func parseResourceManager(text string) map[string]string {
	out := make(map[string]string)
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimRight(line, "\x00")
		idx := strings.IndexByte(line, ':')
		if idx < 0 {
			continue
		}
		key := strings.TrimSpace(line[:idx])
		val := strings.TrimSpace(line[idx+1:])
		out[key] = val
	}
	return out
}

// hex looks up key and validates it is a well-formed #RRGGBB value
// from xrdbKeys; invalid or unknown values are reported as absent so
// the caller leaves the compiled-in default untouched.
func hex(entries map[string]string, key string) (uint64, bool) {
	if !isRecognizedKey(key) {
		return 0, false
	}
	v, ok := entries[key]
	if !ok {
		return 0, false
	}
	if !strings.HasPrefix(v, "#") {
		return 0, false
	}
	v = v[1:]
	if len(v) != 6 {
		return 0, false
	}
	n, err := strconv.ParseUint(v, 16, 32)
	if err != nil {
		return 0, false
	}
	return 0xff000000 | n, true
}

func isRecognizedKey(key string) bool {
	for _, k := range xrdbKeys {
		if k == key {
			return true
		}
	}
	return false
}

func applyFg(schemes drw.Schemes, name string, color uint64) {
	s := schemes[name]
	s.Fg = drw.NewBGRA(color)
	schemes[name] = s
}

func applyBg(schemes drw.Schemes, name string, color uint64) {
	s := schemes[name]
	s.Bg = drw.NewBGRA(color)
	schemes[name] = s
}

func applyBorder(schemes drw.Schemes, name string, color uint64) {
	s := schemes[name]
	s.Border = drw.NewBGRA(color)
	schemes[name] = s
}
