package backend

import "github.com/zjrosen/tuinput/input"

// Cell is one glyph of a rendered field: a base codepoint plus any
// zero-width codepoints that follow it.
type Cell struct {
	Text  string
	Col   int // column relative to the window's left edge
	Width int
}

// Window is the visible slice of an input for a viewport of a given width.
type Window struct {
	Cells  []Cell
	Scroll int // columns hidden on the left
	Cursor int // cursor column relative to the window's left edge
}

// CursorCell returns the index in Cells the cursor sits on, or -1 when the
// cursor is past the last visible glyph (the end of the text).
func (w Window) CursorCell() int {
	for i, c := range w.Cells {
		if c.Col == w.Cursor && c.Width > 0 {
			return i
		}
	}
	return -1
}

// Visible computes which glyphs of in fit in width columns. One column is
// kept free for the cursor when it sits at the end of the text, so the
// scroll offset is in.VisualScroll(width-1). Glyphs that would straddle the
// right edge are left out, except the glyph under the cursor in a viewport
// narrower than that glyph: it is kept and overflows the right edge.
func Visible(in *input.Input, width int) Window {
	width = max(width, 1)
	scroll := in.VisualScroll(width - 1)
	cursor := in.VisualCursor()
	w := Window{Scroll: scroll, Cursor: cursor - scroll}

	col := 0
	for _, cell := range cells(in.Value()) {
		start := col
		col += cell.Width
		if start < scroll {
			continue
		}
		if start+cell.Width > scroll+width {
			if len(w.Cells) == 0 && start == cursor {
				cell.Col = 0
				w.Cells = append(w.Cells, cell)
			}
			break
		}
		cell.Col = start - scroll
		w.Cells = append(w.Cells, cell)
	}
	return w
}

// cells groups s into glyphs. A zero-width codepoint joins the glyph before
// it; one at the very start forms a zero-width glyph of its own.
func cells(s string) []Cell {
	var out []Cell
	for _, r := range s {
		rw := input.RuneWidth(r)
		if rw == 0 && len(out) > 0 {
			out[len(out)-1].Text += string(r)
			continue
		}
		out = append(out, Cell{Text: string(r), Width: rw})
	}
	return out
}
