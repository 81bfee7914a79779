package input

import "unicode"

// Word boundaries split text into runs of whitespace and non-whitespace
// codepoints, using Unicode whitespace (unicode.IsSpace). Punctuation is part
// of a word: "foo, bar" has the two words "foo," and "bar".

// prevWordBoundary returns the start of the word before cursor: skip the
// whitespace run ending at cursor, then the non-whitespace run before it.
func prevWordBoundary(value []rune, cursor int) int {
	i := clamp(cursor, 0, len(value))
	for i > 0 && unicode.IsSpace(value[i-1]) {
		i--
	}
	for i > 0 && !unicode.IsSpace(value[i-1]) {
		i--
	}
	return i
}

// nextWordBoundary returns the start of the word after cursor: skip the
// non-whitespace run starting at cursor, then the whitespace run after it.
// Returns len(value) when no further word exists.
func nextWordBoundary(value []rune, cursor int) int {
	i := clamp(cursor, 0, len(value))
	for i < len(value) && !unicode.IsSpace(value[i]) {
		i++
	}
	for i < len(value) && unicode.IsSpace(value[i]) {
		i++
	}
	return i
}

// PrevWordBoundary returns the codepoint index GoToPrevWord would move to
// from cursor in s.
func PrevWordBoundary(s string, cursor int) int {
	return prevWordBoundary([]rune(s), cursor)
}

// NextWordBoundary returns the codepoint index GoToNextWord would move to
// from cursor in s.
func NextWordBoundary(s string, cursor int) int {
	return nextWordBoundary([]rune(s), cursor)
}
