package geom

import (
	"fmt"
	"strconv"
	"strings"
)

// DefaultGridN is the grid dimension used by the 'G'/'p'/'P' codes when a
// spec does not carry its own grid size.
const DefaultGridN = 3

// FloatSpec is a parsed floating-position DSL string, as produced by
// ParseFloatPos. See spec §4.4 for the code tables.
type FloatSpec struct {
	XVal int
	XCode byte
	YVal int
	YCode byte

	HasSize bool
	WVal    int
	WCode   byte
	HVal    int
	HCode   byte

	GridN int // 0 means DefaultGridN
}

var fieldSplitter = strings.NewReplacer("\t", " ")

// ParseFloatPos parses the 4-token ("<x><xCh> <y><yCh>") or 8-token
// ("<x><xCh> <y><yCh> <w><wCh> <h><hCh>") forms. Each logical token pairs
// a signed integer with a single trailing code letter (or '%'); the
// tokens are whitespace separated pairwise, e.g. "50% 50% 90% 80%".
//
// A malformed spec returns an error; per spec §7 the caller treats that
// as a no-op, never a crash or a user-visible message.
func ParseFloatPos(spec string) (*FloatSpec, error) {
	fields := strings.Fields(fieldSplitter.Replace(spec))
	switch len(fields) {
	case 2:
		fs := &FloatSpec{}
		var err error
		fs.XVal, fs.XCode, err = parseField(fields[0])
		if err != nil {
			return nil, err
		}
		fs.YVal, fs.YCode, err = parseField(fields[1])
		if err != nil {
			return nil, err
		}
		return fs, nil
	case 4:
		fs := &FloatSpec{HasSize: true}
		var err error
		fs.XVal, fs.XCode, err = parseField(fields[0])
		if err != nil {
			return nil, err
		}
		fs.YVal, fs.YCode, err = parseField(fields[1])
		if err != nil {
			return nil, err
		}
		fs.WVal, fs.WCode, err = parseField(fields[2])
		if err != nil {
			return nil, err
		}
		fs.HVal, fs.HCode, err = parseField(fields[3])
		if err != nil {
			return nil, err
		}
		return fs, nil
	default:
		return nil, fmt.Errorf("geom: malformed float-position spec %q", spec)
	}
}

// parseField splits "50%" into (50, '%') or "-12a" into (-12, 'a').
func parseField(field string) (int, byte, error) {
	if len(field) < 2 {
		return 0, 0, fmt.Errorf("geom: float-position field %q too short", field)
	}
	code := field[len(field)-1]
	numPart := field[:len(field)-1]
	val, err := strconv.Atoi(numPart)
	if err != nil {
		return 0, 0, fmt.Errorf("geom: float-position field %q: %w", field, err)
	}
	return val, code, nil
}

// EvalContext carries everything the evaluator needs besides the spec
// itself: the client's current geometry, the owning monitor's screen
// and work rectangles, and the current pointer location.
type EvalContext struct {
	Current      Rect
	ScreenOrigin struct{ X, Y int }
	Work         Rect
	PointerX     int
	PointerY     int
}

// Evaluate computes the target rectangle for a parsed FloatSpec. It does
// not clamp the result to the monitor except where a code's own
// definition calls for clamping (lowercase x/y); callers that need a
// hard clamp (e.g. before mapping a brand new client) apply Rect.Clamp
// themselves.
func Evaluate(fs *FloatSpec, ctx EvalContext) Rect {
	gridN := fs.GridN
	if gridN <= 0 {
		gridN = DefaultGridN
	}

	out := ctx.Current

	if fs.HasSize {
		out.Width = evalSize(fs.WCode, fs.WVal, ctx.Current.Width, ctx.Work.Width, gridN)
		out.Height = evalSize(fs.HCode, fs.HVal, ctx.Current.Height, ctx.Work.Height, gridN)
	} else if isSizeReinterpretCode(fs.XCode) {
		// 4-token form with xCh in {w,p,m}: the two numbers describe a
		// size pair (or grid pair), not a position; the client keeps its
		// current center and is resized around it.
		cx, cy := ctx.Current.Center()
		out.Width = evalSize(fs.XCode, fs.XVal, ctx.Current.Width, ctx.Work.Width, gridN)
		out.Height = evalSize(fs.YCode, fs.YVal, ctx.Current.Height, ctx.Work.Height, gridN)
		out.X = cx - out.Width/2
		out.Y = cy - out.Height/2
		return out
	}

	out.X = evalPos(fs.XCode, fs.XVal, ctx.Current.X, ctx.Current.Width, ctx.Work.X, ctx.Work.Width, ctx.ScreenOrigin.X, ctx.PointerX, out.Width, gridN)
	out.Y = evalPos(fs.YCode, fs.YVal, ctx.Current.Y, ctx.Current.Height, ctx.Work.Y, ctx.Work.Height, ctx.ScreenOrigin.Y, ctx.PointerY, out.Height, gridN)
	return out
}

func isSizeReinterpretCode(c byte) bool {
	return c == 'w' || c == 'p' || c == 'm'
}

// evalPos computes one axis of position. workOrigin/workSize/size refer
// to the axis being computed (X or Y uniformly).
func evalPos(code byte, val, curPos, curSize, workOrigin, workSize, screenOrigin, pointer, size, gridN int) int {
	switch code {
	case 'A': // absolute screen coordinate
		return screenOrigin + val
	case 'a': // relative to current position, no clamp
		return curPos + val
	case 'x', 'y': // current-position-relative, clamped to work area edge
		p := curPos + val
		if p < workOrigin {
			p = workOrigin
		}
		if p+size > workOrigin+workSize {
			p = workOrigin + workSize - size
		}
		return p
	case 'X', 'Y': // offset from monitor work-area origin
		return workOrigin + val
	case '%': // midpoint as percentage of work area
		mid := workOrigin + workSize*val/100
		return mid - size/2
	case 'C': // center anchor, offset by val
		return workOrigin + (workSize-size)/2 + val
	case 'Z': // right/bottom anchor, offset by val
		return workOrigin + workSize - size - val
	case 'S': // sticky: keep current position, offset by val
		return curPos + val
	case 'G': // place on an NxN grid
		cell := workSize / gridN
		idx := val
		if idx < 0 {
			idx = 0
		}
		if idx >= gridN {
			idx = gridN - 1
		}
		return workOrigin + idx*cell
	case 'm': // pointer becomes the rectangle's origin
		return pointer + val
	case 'M': // pointer becomes the rectangle's center
		return pointer - size/2 + val
	default:
		return curPos
	}
}

func evalSize(code byte, val, curSize, workSize, gridN int) int {
	switch code {
	case 'A', 'H', 'W': // absolute
		if val <= 0 {
			return 1
		}
		return val
	case 'a', 'h', 'w': // relative to client's current size
		s := curSize + val
		if s < 1 {
			s = 1
		}
		return s
	case '%': // percent of work area
		s := workSize * val / 100
		if s < 1 {
			s = 1
		}
		return s
	case 'p', 'P': // grid-paired: one grid cell
		s := workSize / gridN
		if s < 1 {
			s = 1
		}
		return s
	default:
		if curSize < 1 {
			return 1
		}
		return curSize
	}
}
