package drw

import (
	"image"

	"github.com/jezek/xgb/xproto"
	"github.com/jezek/xgbutil"
	"github.com/jezek/xgbutil/xgraphics"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Surface is an offscreen drawing buffer for one bar window (spec
// component 2 / §4.9 step 4's "blit the offscreen surface"). Modules
// draw into the region the composer assigns them; once every module
// has drawn, Blit paints the whole buffer to its window in one shot.
type Surface struct {
	img  *xgraphics.Image
	dest xproto.Window
}

// NewSurface allocates a width x height buffer filled with bg.
func NewSurface(xu *xgbutil.XUtil, dest xproto.Window, width, height int, bg xgraphics.BGRA) *Surface {
	img := xgraphics.New(xu, image.Rect(0, 0, width, height))
	img.For(func(x, y int) xgraphics.BGRA { return bg })
	return &Surface{img: img, dest: dest}
}

// FillRect paints a solid rectangle, clipped to the surface bounds -
// used for tag backgrounds, selected/urgent highlighting, and the
// status2d color-escape language's background runs (spec §4.9).
func (s *Surface) FillRect(x, y, w, h int, c xgraphics.BGRA) {
	bounds := s.img.Bounds()
	sub := s.img.SubImage(image.Rect(x, y, x+w, y+h).Intersect(bounds))
	if sub == nil {
		return
	}
	if subimg, ok := sub.(*xgraphics.Image); ok {
		subimg.For(func(_, _ int) xgraphics.BGRA { return c })
	}
}

// Text draws s starting at (x, baselineY) in fg using face, returning
// the pixel width consumed - modules use this to advance their drawing
// cursor; width functions measure with MeasureText instead, without
// drawing (spec §4.9 step 2).
func (s *Surface) Text(x, baselineY int, text string, fg xgraphics.BGRA, face font.Face) int {
	start := fixed.I(x)
	end := s.img.Text(fixed.Point26_6{X: start, Y: fixed.I(baselineY)}, fg, face, text)
	return (end.X - start).Round()
}

// MeasureText returns the pixel width text would occupy in face,
// without drawing anything - the width-fn half of a bar module.
func MeasureText(face font.Face, text string) int {
	return font.MeasureString(face, text).Round()
}

// Blit paints the surface to its destination window and releases the
// offscreen buffer.
func (s *Surface) Blit() {
	s.img.XSurfaceSet(s.dest)
	s.img.XDraw()
	s.img.XPaint(s.dest)
	s.img.Destroy()
}
