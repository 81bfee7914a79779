package backend

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zjrosen/tuinput/input"
)

func windowText(w Window) string {
	var sb strings.Builder
	for _, c := range w.Cells {
		sb.WriteString(c.Text)
	}
	return sb.String()
}

func TestVisible_Fits(t *testing.T) {
	w := Visible(input.FromString("hello"), 10)

	assert.Equal(t, "hello", windowText(w))
	assert.Equal(t, 0, w.Scroll)
	assert.Equal(t, 5, w.Cursor)
	assert.Equal(t, -1, w.CursorCell())
}

func TestVisible_CursorOnGlyph(t *testing.T) {
	w := Visible(input.FromString("hello").WithCursor(1), 10)

	assert.Equal(t, 1, w.Cursor)
	assert.Equal(t, 1, w.CursorCell())
	assert.Equal(t, "e", w.Cells[w.CursorCell()].Text)
}

func TestVisible_ScrollsToKeepCursor(t *testing.T) {
	w := Visible(input.FromString("hello world"), 5)

	// Four glyphs plus the free cursor column.
	assert.Equal(t, 7, w.Scroll)
	assert.Equal(t, "orld", windowText(w))
	assert.Equal(t, 4, w.Cursor)
	assert.Equal(t, -1, w.CursorCell())
}

func TestVisible_CursorAtStartShowsLeftEdge(t *testing.T) {
	w := Visible(input.FromString("hello world").WithCursor(0), 5)

	assert.Equal(t, 0, w.Scroll)
	assert.Equal(t, "hello", windowText(w))
	assert.Equal(t, 0, w.CursorCell())
}

func TestVisible_WideGlyphs(t *testing.T) {
	w := Visible(input.FromString("中文字"), 4)

	// scroll = 6-3 = 3, rounded up to the glyph start at 4.
	assert.Equal(t, 4, w.Scroll)
	assert.Equal(t, "字", windowText(w))
	require.Len(t, w.Cells, 1)
	assert.Equal(t, 0, w.Cells[0].Col)
	assert.Equal(t, 2, w.Cells[0].Width)
	assert.Equal(t, 2, w.Cursor)
}

func TestVisible_WideGlyphStraddlingRightEdgeIsDropped(t *testing.T) {
	w := Visible(input.FromString("ab中").WithCursor(0), 3)

	assert.Equal(t, "ab", windowText(w))
}

func TestVisible_WideGlyphUnderCursorInOneColumn(t *testing.T) {
	w := Visible(input.FromString("中文").WithCursor(0), 1)

	require.Len(t, w.Cells, 1)
	assert.Equal(t, "中", w.Cells[0].Text)
	assert.Equal(t, 0, w.CursorCell())

	w = Visible(input.FromString("中文").WithCursor(1), 1)

	require.Len(t, w.Cells, 1)
	assert.Equal(t, "文", w.Cells[0].Text)
	assert.Equal(t, 0, w.CursorCell())
}

func TestVisible_CombiningMarksJoinBase(t *testing.T) {
	w := Visible(input.FromString("e\u0301x").WithCursor(0), 10)

	require.Len(t, w.Cells, 2)
	assert.Equal(t, "e\u0301", w.Cells[0].Text)
	assert.Equal(t, 1, w.Cells[0].Width)
	assert.Equal(t, "x", w.Cells[1].Text)
	assert.Equal(t, 1, w.Cells[1].Col)
}

func TestVisible_ZeroWidth(t *testing.T) {
	w := Visible(input.FromString("abc"), 0)

	assert.Equal(t, 3, w.Scroll)
	assert.Equal(t, 0, w.Cursor)
	assert.Empty(t, w.Cells)
}

func TestVisible_Empty(t *testing.T) {
	w := Visible(input.New(), 8)

	assert.Empty(t, w.Cells)
	assert.Equal(t, 0, w.Cursor)
	assert.Equal(t, -1, w.CursorCell())
}
