package dispatch

import (
	"testing"

	"github.com/jezek/xgb/xproto"
)

func TestDispatchRoutesToRegisteredHandler(t *testing.T) {
	table := NewTable()
	var got interface{}
	table.Register(xproto.MapRequest, func(ev interface{}) { got = ev })

	table.Dispatch(xproto.MapRequest, "payload")
	if got != "payload" {
		t.Errorf("got %v, want payload", got)
	}
}

func TestDispatchMissingSlotIsNoOp(t *testing.T) {
	table := NewTable()
	// Should not panic even though nothing is registered.
	table.Dispatch(xproto.KeyPress, "ignored")
}

func TestDispatchOutOfRangeCodeIsNoOp(t *testing.T) {
	table := NewTable()
	table.Dispatch(-1, nil)
	table.Dispatch(maxEventCode+1000, nil)
}

func TestCoreEventCodesAllRegisterable(t *testing.T) {
	table := NewTable()
	for _, code := range CoreEventCodes {
		calledCode := code
		table.Register(code, func(ev interface{}) {})
		if code != calledCode {
			t.Fatalf("sanity failure")
		}
	}
	// Every listed code must dispatch without panicking.
	for _, code := range CoreEventCodes {
		table.Dispatch(code, nil)
	}
}
