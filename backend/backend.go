// Package backend defines the boundary between terminal event sources and
// the input state machine.
//
// Each terminal library gets one Adapter implementation that translates its
// own event type into input.Requests. The input package never sees backend
// event types; adapters never mutate input state directly.
package backend

import "github.com/zjrosen/tuinput/input"

// Adapter translates one backend event into zero or more edit requests.
// Unhandled events yield nil. Pasted text yields one request per codepoint.
type Adapter[E any] interface {
	Requests(evt E) []input.Request
}

// AdapterFunc adapts a plain function to the Adapter interface.
type AdapterFunc[E any] func(evt E) []input.Request

// Requests implements Adapter.
func (f AdapterFunc[E]) Requests(evt E) []input.Request {
	return f(evt)
}

// Handle translates evt with a and applies every resulting request to in,
// in order. The returned change merges the flags of each step and carries the
// final state. ok is false when the adapter produced no request.
func Handle[E any](in *input.Input, a Adapter[E], evt E) (change input.StateChange, ok bool) {
	reqs := a.Requests(evt)
	if len(reqs) == 0 {
		return input.StateChange{Value: in.Value(), Cursor: in.Cursor()}, false
	}
	return ApplyAll(in, reqs), true
}

// ApplyAll applies reqs to in in order and merges the results.
func ApplyAll(in *input.Input, reqs []input.Request) input.StateChange {
	change := input.StateChange{Value: in.Value(), Cursor: in.Cursor()}
	for _, req := range reqs {
		step := in.Apply(req)
		change.ValueChanged = change.ValueChanged || step.ValueChanged
		change.CursorChanged = change.CursorChanged || step.CursorChanged
		change.Value = step.Value
		change.Cursor = step.Cursor
	}
	return change
}

// LimitInserts drops the InsertChar requests in reqs that would take in past
// limit codepoints, keeping every other request. A limit of 0 or less means
// unlimited. Text already over the limit is left alone; only new inserts are
// refused.
func LimitInserts(in *input.Input, limit int, reqs []input.Request) []input.Request {
	if limit <= 0 {
		return reqs
	}
	room := limit - in.Len()
	out := reqs[:0:0]
	for _, r := range reqs {
		if r.Kind == input.KindInsertChar {
			if room <= 0 {
				continue
			}
			room--
		}
		out = append(out, r)
	}
	return out
}

// ClickRequest returns the request placing the cursor under a click at
// column x of a field whose text viewport is width columns wide. The current
// scroll offset is taken into account, and a click on either half of a wide
// glyph lands before it.
func ClickRequest(in *input.Input, width, x int) input.Request {
	return input.SetCursor(in.CursorForColumn(in.VisualScroll(width) + max(x, 0)))
}
