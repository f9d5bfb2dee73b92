// Package dispatch implements the event dispatcher (spec §4.1): a
// direct array indexed by X event-type code, so routing a fetched
// event to its handler is an O(1) slice lookup rather than a type
// switch or map probe. Missing slots drop the event, matching the
// spec's explicit "missing slots drop the event" policy.
package dispatch

import "github.com/jezek/xgb/xproto"

// Handler processes one X event payload, already decoded by the
// caller (internal/wm owns the actual event loop, a raw xgb
// WaitForEvent loop, and passes the right concrete event in).
type Handler func(event interface{})

// maxEventCode is large enough to cover every core X event type code;
// xgb reserves the low bits for core protocol events.
const maxEventCode = 128

// Table is the dispatch array itself, directly indexed by event type
// code (spec §4.1: "Direct array indexed by X event-type code").
type Table struct {
	handlers [maxEventCode]Handler
}

// NewTable builds an empty table; call Register for every event type
// the core handles.
func NewTable() *Table {
	return &Table{}
}

// Register installs h as the handler for the given core event type
// code (e.g. xproto.MapRequest).
func (t *Table) Register(code int, h Handler) {
	if code < 0 || code >= maxEventCode {
		return
	}
	t.handlers[code] = h
}

// Dispatch looks up and invokes the handler for code, synchronously
// running it to completion before returning - spec §4.1: "Dispatch is
// synchronous; each handler runs to completion before the next event
// is fetched." A missing handler is a silent no-op.
func (t *Table) Dispatch(code int, event interface{}) {
	if code < 0 || code >= maxEventCode {
		return
	}
	if h := t.handlers[code]; h != nil {
		h(event)
	}
}

// CoreEventCodes lists the event types spec §4.1 names the core
// dispatcher as handling, for callers building the registration table
// in one place.
var CoreEventCodes = []int{
	xproto.ButtonPress,
	xproto.ClientMessage,
	xproto.ConfigureRequest,
	xproto.ConfigureNotify,
	xproto.DestroyNotify,
	xproto.EnterNotify,
	xproto.Expose,
	xproto.FocusIn,
	xproto.KeyPress,
	xproto.MappingNotify,
	xproto.MapRequest,
	xproto.MotionNotify,
	xproto.PropertyNotify,
	xproto.ResizeRequest,
	xproto.UnmapNotify,
}
