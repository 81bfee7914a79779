// Package testutil provides fixtures for editing tests.
//
// A field is written as its value with a '|' at the cursor, so
// "hello |world" is the value "hello world" with the cursor at 6.
package testutil

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zjrosen/tuinput/input"
)

// CursorMark marks the cursor in a fixture string.
const CursorMark = "|"

// Field parses a marked fixture. It fails the test unless marked holds
// exactly one cursor mark.
func Field(t testing.TB, marked string) *input.Input {
	t.Helper()
	require.Equal(t, 1, strings.Count(marked, CursorMark), "fixture %q needs exactly one cursor mark", marked)

	before, after, _ := strings.Cut(marked, CursorMark)
	cursor := len([]rune(before))
	return input.FromString(before + after).WithCursor(cursor)
}

// Marked renders in in fixture notation.
func Marked(in *input.Input) string {
	value := []rune(in.Value())
	return string(value[:in.Cursor()]) + CursorMark + string(value[in.Cursor():])
}

// Builder accumulates requests against a fixture and applies them in order.
type Builder struct {
	t    testing.TB
	in   *input.Input
	reqs []input.Request
}

// NewBuilder starts from a marked fixture.
func NewBuilder(t testing.TB, marked string) *Builder {
	t.Helper()
	return &Builder{t: t, in: Field(t, marked)}
}

// Apply queues requests.
func (b *Builder) Apply(reqs ...input.Request) *Builder {
	b.reqs = append(b.reqs, reqs...)
	return b
}

// Type queues one InsertChar per rune of s.
func (b *Builder) Type(s string) *Builder {
	for _, r := range s {
		b.reqs = append(b.reqs, input.InsertChar(r))
	}
	return b
}

// Build applies every queued request and returns the field with the change
// each request produced.
func (b *Builder) Build() (*input.Input, []input.StateChange) {
	b.t.Helper()
	changes := make([]input.StateChange, 0, len(b.reqs))
	for _, req := range b.reqs {
		changes = append(changes, b.in.Apply(req))
	}
	b.reqs = nil
	return b.in, changes
}

// Expect builds and asserts the resulting fixture.
func (b *Builder) Expect(marked string) *input.Input {
	b.t.Helper()
	in, _ := b.Build()
	require.Equal(b.t, marked, Marked(in))
	return in
}
