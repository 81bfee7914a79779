// Package input provides a backend-agnostic single-line text input state.
//
// An Input owns a text value and a cursor. It is advanced only through Apply,
// which takes an abstract Request (insert, delete, move, word jumps) and
// reports what changed. Terminal backends translate their own key events into
// Requests; renderers read Value, Cursor, VisualCursor and VisualScroll.
//
// Unit model:
//
//  1. Codepoints: the cursor counts Unicode scalar values, never bytes.
//     "¡test" has 5 codepoints and 6 bytes; the cursor ranges over 0..5.
//
//  2. Display columns: the number of terminal cells a codepoint occupies
//     (0 for combining marks, 1 for most text, 2 for wide glyphs such as CJK).
//     VisualCursor and VisualScroll are measured in columns.
//
// Example:
//
//	in := input.FromString("Hello Worl")
//	change := in.Apply(input.InsertChar('d'))
//	// change.ValueChanged == true, in.Value() == "Hello World", in.Cursor() == 11
package input

// Input is an editable line of text with a codepoint cursor.
// The zero value is an empty input with the cursor at 0.
type Input struct {
	value  []rune
	cursor int // codepoint index, 0 <= cursor <= len(value)
}

// New returns an empty input.
func New() *Input {
	return &Input{}
}

// FromString returns an input holding s with the cursor placed after the
// last codepoint.
func FromString(s string) *Input {
	value := []rune(s)
	return &Input{value: value, cursor: len(value)}
}

// WithValue replaces the value and moves the cursor to the end.
func (in *Input) WithValue(s string) *Input {
	in.value = []rune(s)
	in.cursor = len(in.value)
	return in
}

// WithCursor sets the cursor, clamped into [0, len(value)].
func (in *Input) WithCursor(cursor int) *Input {
	in.cursor = clamp(cursor, 0, len(in.value))
	return in
}

// Reset clears the value and moves the cursor to 0.
func (in *Input) Reset() {
	in.value = nil
	in.cursor = 0
}

// ValueAndReset returns the current value and resets the input.
func (in *Input) ValueAndReset() string {
	v := in.Value()
	in.Reset()
	return v
}

// Value returns the current text.
func (in *Input) Value() string {
	return string(in.value)
}

// Cursor returns the cursor as a codepoint index.
func (in *Input) Cursor() int {
	return in.cursor
}

// Len returns the number of codepoints in the value.
func (in *Input) Len() int {
	return len(in.value)
}

// String implements fmt.Stringer.
func (in *Input) String() string {
	return in.Value()
}

// Clone returns an independent copy of the input.
func (in *Input) Clone() *Input {
	value := make([]rune, len(in.value))
	copy(value, in.value)
	return &Input{value: value, cursor: in.cursor}
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
