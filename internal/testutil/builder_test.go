package testutil

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zjrosen/tuinput/input"
)

func TestField(t *testing.T) {
	in := Field(t, "hello |world")
	require.Equal(t, "hello world", in.Value())
	require.Equal(t, 6, in.Cursor())

	in = Field(t, "中|文")
	require.Equal(t, 1, in.Cursor(), "cursor counts codepoints")

	in = Field(t, "|")
	require.Equal(t, input.Snapshot{}, in.Snapshot())
}

func TestMarked(t *testing.T) {
	require.Equal(t, "ab|c", Marked(input.FromString("abc").WithCursor(2)))
	require.Equal(t, "|", Marked(input.New()))
	require.Equal(t, "中文|", Marked(input.FromString("中文")))
}

func TestBuilder_Build(t *testing.T) {
	in, changes := NewBuilder(t, "ab|").
		Type("c").
		Apply(input.GoToStart, input.GoToPrevChar).
		Build()

	require.Equal(t, "|abc", Marked(in))
	require.Len(t, changes, 3)
	require.True(t, changes[0].ValueChanged)
	require.True(t, changes[1].CursorOnly())
	require.True(t, changes[2].NoOp())
}

func TestBuilder_Expect(t *testing.T) {
	NewBuilder(t, "one two |three").
		Apply(input.DeletePrevWord).
		Type("2 ").
		Expect("one 2 |three")
}

func TestBuilder_BuildTwice(t *testing.T) {
	b := NewBuilder(t, "|")
	b.Type("a").Build()
	in, changes := b.Type("b").Build()

	require.Equal(t, "ab|", Marked(in))
	require.Len(t, changes, 1, "requests are consumed by Build")
}
