package input

import "github.com/mattn/go-runewidth"

// widthCondition is fixed rather than taken from the locale so that the same
// text always projects to the same columns. East-Asian ambiguous runes are
// narrow.
var widthCondition = &runewidth.Condition{
	EastAsianWidth:     false,
	StrictEmojiNeutral: true,
}

// RuneWidth returns the number of terminal columns r occupies: 0 for
// zero-width, combining and control codepoints, 2 for East-Asian wide and
// fullwidth codepoints, 1 otherwise.
func RuneWidth(r rune) int {
	return widthCondition.RuneWidth(r)
}

// StringWidth returns the summed column width of every codepoint in s.
func StringWidth(s string) int {
	w := 0
	for _, r := range s {
		w += RuneWidth(r)
	}
	return w
}

// VisualCursor returns the terminal column of the cursor, accounting for
// wide and zero-width codepoints before it.
func (in *Input) VisualCursor() int {
	return visualColumn(in.value, in.cursor)
}

// VisualScroll returns how many columns must be hidden on the left so the
// cursor stays visible in a viewport of the given width. The offset always
// falls on a glyph start, so a wide glyph is never split by the left edge.
func (in *Input) VisualScroll(width int) int {
	scroll := max(in.VisualCursor()-max(width, 0), 0)
	col := 0
	for _, r := range in.value {
		if col >= scroll {
			break
		}
		col += RuneWidth(r)
	}
	return col
}

// CursorForColumn maps a terminal column back to a cursor index in the
// input's value. See the package-level CursorForColumn.
func (in *Input) CursorForColumn(column int) int {
	return cursorForColumn(in.value, column)
}

// VisualColumn returns the terminal column of codepoint index cursor in s.
// The cursor is clamped into [0, codepoint count].
func VisualColumn(s string, cursor int) int {
	return visualColumn([]rune(s), cursor)
}

// CursorForColumn returns the cursor index that best matches a terminal
// column in s, for example a mouse click.
//
// A column inside a wide glyph resolves to the glyph's start. A column on a
// glyph boundary resolves past any zero-width codepoints sitting there, so a
// base character is never separated from its combining marks. Columns before
// the text map to 0 and columns past it map to the end.
func CursorForColumn(s string, column int) int {
	return cursorForColumn([]rune(s), column)
}

func visualColumn(value []rune, cursor int) int {
	cursor = clamp(cursor, 0, len(value))
	col := 0
	for _, r := range value[:cursor] {
		col += RuneWidth(r)
	}
	return col
}

func cursorForColumn(value []rune, column int) int {
	if column <= 0 {
		return 0
	}
	col := 0
	for i, r := range value {
		w := RuneWidth(r)
		if col+w > column {
			return i
		}
		col += w
		if col == column {
			j := i + 1
			for j < len(value) && RuneWidth(value[j]) == 0 {
				j++
			}
			return j
		}
	}
	return len(value)
}
