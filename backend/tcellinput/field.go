package tcellinput

import (
	"github.com/gdamore/tcell/v2"

	"github.com/zjrosen/tuinput/backend"
	"github.com/zjrosen/tuinput/input"
)

// Field is the on-screen geometry and styling of one input.
type Field struct {
	X, Y  int
	Width int

	Style            tcell.Style
	Placeholder      string
	PlaceholderStyle tcell.Style

	// CharLimit caps the value length for typed and pasted text. 0 means
	// unlimited.
	CharLimit int
}

// Draw paints the visible part of in at (f.X, f.Y), pads the rest of the
// field with blanks, and moves the terminal cursor to the cursor column.
// The caller still has to call screen.Show.
func (f Field) Draw(screen tcell.Screen, in *input.Input) {
	width := max(f.Width, 1)
	f.clear(screen, width)

	if in.Len() == 0 && f.Placeholder != "" {
		f.drawText(screen, f.Placeholder, width, f.PlaceholderStyle)
		screen.ShowCursor(f.X, f.Y)
		return
	}

	w := backend.Visible(in, width)
	for _, c := range w.Cells {
		runes := []rune(c.Text)
		screen.SetContent(f.X+c.Col, f.Y, runes[0], runes[1:], f.Style)
	}
	screen.ShowCursor(f.X+w.Cursor, f.Y)
}

func (f Field) clear(screen tcell.Screen, width int) {
	for x := 0; x < width; x++ {
		screen.SetContent(f.X+x, f.Y, ' ', nil, f.Style)
	}
}

// drawText paints s from the left edge, stopping before a glyph that would
// not fit.
func (f Field) drawText(screen tcell.Screen, s string, width int, style tcell.Style) {
	col := 0
	for _, r := range s {
		rw := input.RuneWidth(r)
		if col+rw > width {
			return
		}
		if rw == 0 {
			continue
		}
		screen.SetContent(f.X+col, f.Y, r, nil, style)
		col += rw
	}
}

// Contains reports whether the screen position (x, y) is inside the field.
func (f Field) Contains(x, y int) bool {
	return y == f.Y && x >= f.X && x < f.X+max(f.Width, 1)
}

// Click turns a primary-button mouse event inside the field into a
// SetCursor request. ok is false for other buttons and for clicks outside.
func (f Field) Click(in *input.Input, ev *tcell.EventMouse) (req input.Request, ok bool) {
	if ev.Buttons()&tcell.Button1 == 0 {
		return input.Request{}, false
	}
	x, y := ev.Position()
	if !f.Contains(x, y) {
		return input.Request{}, false
	}
	return backend.ClickRequest(in, max(f.Width, 1)-1, x-f.X), true
}

// Handle applies ev to in: key events through Adapter, mouse events through
// Click. Inserts beyond CharLimit are dropped. ok is false when the event
// produced no request.
func (f Field) Handle(in *input.Input, ev tcell.Event) (input.StateChange, bool) {
	if mev, isMouse := ev.(*tcell.EventMouse); isMouse {
		req, ok := f.Click(in, mev)
		if !ok {
			return input.StateChange{Value: in.Value(), Cursor: in.Cursor()}, false
		}
		return in.Apply(req), true
	}
	limited := backend.AdapterFunc[tcell.Event](func(ev tcell.Event) []input.Request {
		return backend.LimitInserts(in, f.CharLimit, Adapter{}.Requests(ev))
	})
	return backend.Handle[tcell.Event](in, limited, ev)
}
