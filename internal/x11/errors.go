package x11

import (
	"github.com/sirupsen/logrus"

	"github.com/jezek/xgb"
	"github.com/jezek/xgb/xproto"
)

// ignorable classifies the benign X error classes spec §7 lists as
// "swallow, log nothing": BadWindow on an already-destroyed client,
// BadMatch on SetInputFocus racing an unmap, BadDrawable drawing to a
// gone window, BadAccess on an already-grabbed key or button.
func ignorable(err xgb.Error) bool {
	switch err.(type) {
	case xproto.WindowError, xproto.MatchError, xproto.DrawableError, xproto.AccessError:
		return true
	default:
		return false
	}
}

// HandleError is the single place request errors (returned from
// *Checked calls) are triaged. Call sites that perform a fallible X
// request on a specific client's window should route the resulting
// error here rather than propagating it, per spec §7: "if manipulating
// a client raises BadWindow, the client is still valid in our model
// and will be cleaned up when its DestroyNotify arrives."
func HandleError(context string, err error) {
	if err == nil {
		return
	}
	if xerr, ok := err.(xgb.Error); ok && ignorable(xerr) {
		return
	}
	logrus.WithError(err).Error("x11: " + context)
}
