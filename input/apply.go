package input

import "slices"

// StateChange reports the outcome of Apply.
type StateChange struct {
	ValueChanged  bool
	CursorChanged bool

	// State after the request.
	Value  string
	Cursor int
}

// NoOp reports whether the request left value and cursor untouched
// (e.g. DeleteBackward at position 0).
func (c StateChange) NoOp() bool {
	return !c.ValueChanged && !c.CursorChanged
}

// CursorOnly reports whether only the cursor moved.
func (c StateChange) CursorOnly() bool {
	return c.CursorChanged && !c.ValueChanged
}

// Apply advances the input by one request and reports what changed.
// Apply never fails: requests that cannot take effect at the current
// position (deleting past either end, moving beyond the text) are no-ops.
func (in *Input) Apply(req Request) StateChange {
	prevLen, prevCursor := len(in.value), in.cursor
	in.dispatch(req)

	// Every request that edits the value inserts or removes codepoints.
	return StateChange{
		ValueChanged:  len(in.value) != prevLen,
		CursorChanged: in.cursor != prevCursor,
		Value:         in.Value(),
		Cursor:        in.cursor,
	}
}

func (in *Input) dispatch(req Request) {
	switch req.Kind {
	case KindInsertChar:
		in.value = slices.Insert(in.value, in.cursor, req.Char)
		in.cursor++

	case KindSetCursor:
		in.cursor = clamp(req.Pos, 0, len(in.value))

	case KindDeleteBackward:
		if in.cursor > 0 {
			in.value = slices.Delete(in.value, in.cursor-1, in.cursor)
			in.cursor--
		}

	case KindDeleteForward:
		if in.cursor < len(in.value) {
			in.value = slices.Delete(in.value, in.cursor, in.cursor+1)
		}

	case KindDeleteLine:
		in.value = in.value[:0]
		in.cursor = 0

	case KindDeleteTillEnd:
		in.value = in.value[:in.cursor]

	case KindDeletePrevWord:
		start := prevWordBoundary(in.value, in.cursor)
		in.value = slices.Delete(in.value, start, in.cursor)
		in.cursor = start

	case KindDeleteNextWord:
		end := nextWordBoundary(in.value, in.cursor)
		in.value = slices.Delete(in.value, in.cursor, end)

	case KindGoToStart:
		in.cursor = 0

	case KindGoToEnd:
		in.cursor = len(in.value)

	case KindGoToPrevChar:
		in.cursor = max(in.cursor-1, 0)

	case KindGoToNextChar:
		in.cursor = min(in.cursor+1, len(in.value))

	case KindGoToPrevWord:
		in.cursor = prevWordBoundary(in.value, in.cursor)

	case KindGoToNextWord:
		in.cursor = nextWordBoundary(in.value, in.cursor)
	}
}
