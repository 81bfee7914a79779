package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRuneWidth(t *testing.T) {
	tests := []struct {
		name string
		r    rune
		want int
	}{
		{"ascii", 'a', 1},
		{"latin-1", '\u00e9', 1},
		{"combining acute", '\u0301', 0},
		{"control", '\x07', 0},
		{"cjk", '中', 2},
		{"fullwidth latin", 'Ｈ', 2},
		{"hiragana", 'あ', 2},
		{"emoji", '😀', 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RuneWidth(tt.r))
		})
	}
}

func TestStringWidth(t *testing.T) {
	assert.Equal(t, 0, StringWidth(""))
	assert.Equal(t, 5, StringWidth("hello"))
	assert.Equal(t, 4, StringWidth("a中b"))
	assert.Equal(t, 3, StringWidth("héy"))
}

func TestVisualCursor_WideGlyph(t *testing.T) {
	in := FromString("a中b")

	assert.Equal(t, 3, in.Cursor())
	assert.Equal(t, 4, in.VisualCursor())

	in.WithCursor(2)
	assert.Equal(t, 3, in.VisualCursor())
	in.WithCursor(1)
	assert.Equal(t, 1, in.VisualCursor())
	in.WithCursor(0)
	assert.Equal(t, 0, in.VisualCursor())
}

func TestVisualCursor_ZeroWidth(t *testing.T) {
	// e + combining acute occupies two codepoint slots but one column.
	in := FromString("e\u0301x")

	assert.Equal(t, 3, in.Cursor())
	assert.Equal(t, 2, in.VisualCursor())

	in.WithCursor(2)
	assert.Equal(t, 1, in.VisualCursor())
	in.WithCursor(1)
	assert.Equal(t, 1, in.VisualCursor())
}

func TestMultispaceCharacters(t *testing.T) {
	in := FromString("Ｈｅｌｌｏ, ｗｏｒｌｄ!")

	assert.Equal(t, 13, in.Cursor())
	assert.Equal(t, 23, in.VisualCursor())
	assert.Equal(t, 18, in.VisualScroll(6))
}

func TestVisualScroll(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		cursor int
		width  int
		want   int
	}{
		{"fits", "hello", 5, 10, 0},
		{"exact fit", "hello", 5, 5, 0},
		{"overflow by one", "hello", 5, 4, 1},
		{"cursor near start", "hello world", 2, 4, 0},
		{"wide glyph is never split", "a中中b", 5, 3, 3},
		{"zero width viewport", "abc", 3, 0, 3},
		{"negative width", "abc", 2, -5, 2},
		{"empty", "", 0, 10, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := FromString(tt.text).WithCursor(tt.cursor)
			got := in.VisualScroll(tt.width)
			assert.Equal(t, tt.want, got)
			// The cursor column is always inside the viewport.
			assert.GreaterOrEqual(t, in.VisualCursor(), got)
		})
	}
}

func TestVisualColumn(t *testing.T) {
	assert.Equal(t, 0, VisualColumn("ab", 0))
	assert.Equal(t, 1, VisualColumn("ab", 1))
	assert.Equal(t, 4, VisualColumn("a中b", 3))
	assert.Equal(t, 4, VisualColumn("a中b", 100))
	assert.Equal(t, 0, VisualColumn("a中b", -2))
}

func TestCursorForColumn(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		column int
		want   int
	}{
		{"empty", "", 3, 0},
		{"negative column", "ab", -1, 0},
		{"column zero", "ab", 0, 0},
		{"ascii", "ab", 1, 1},
		{"past end", "ab", 10, 2},
		{"before wide glyph", "a中b", 1, 1},
		{"inside wide glyph rounds to start", "a中b", 2, 1},
		{"after wide glyph", "a中b", 3, 2},
		{"end of wide text", "a中b", 4, 3},
		{"skips combining marks", "e\u0301x", 1, 2},
		{"skips several combining marks", "e\u0327\u0301x", 1, 3},
		{"second half of last wide glyph", "中", 1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CursorForColumn(tt.text, tt.column))
		})
	}
}

func TestCursorForColumn_RoundTripsWithVisualColumn(t *testing.T) {
	in := FromString("ab")

	cursor := in.CursorForColumn(1)
	assert.Equal(t, 1, cursor)
	assert.Equal(t, 1, VisualColumn(in.Value(), cursor))
}
