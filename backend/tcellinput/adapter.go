// Package tcellinput connects the input state machine to tcell.
//
// Adapter maps *tcell.EventKey values to input.Requests using the same
// readline-style bindings as the Bubble Tea backend. Field draws an input
// onto a tcell.Screen and resolves mouse clicks against what it drew.
package tcellinput

import (
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/zjrosen/tuinput/backend"
	"github.com/zjrosen/tuinput/input"
	"github.com/zjrosen/tuinput/internal/log"
)

var _ backend.Adapter[tcell.Event] = Adapter{}

// Adapter translates tcell key events into edit requests.
type Adapter struct{}

// Requests implements backend.Adapter. Only *tcell.EventKey produces
// requests; mouse events need the field geometry and go through
// Field.Click instead.
func (Adapter) Requests(ev tcell.Event) []input.Request {
	kev, ok := ev.(*tcell.EventKey)
	if !ok {
		return nil
	}
	if req, ok := keyRequest(kev); ok {
		return []input.Request{req}
	}
	log.Debug(log.CatBackend, "unmapped key", "key", kev.Name())
	return nil
}

func keyRequest(ev *tcell.EventKey) (input.Request, bool) {
	mod := ev.Modifiers()
	word := mod&(tcell.ModCtrl|tcell.ModAlt) != 0

	switch ev.Key() {
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if mod&tcell.ModAlt != 0 {
			return input.DeletePrevWord, true
		}
		return input.DeleteBackward, true
	case tcell.KeyDelete:
		if word {
			return input.DeleteNextWord, true
		}
		return input.DeleteForward, true
	case tcell.KeyLeft:
		if word {
			return input.GoToPrevWord, true
		}
		return input.GoToPrevChar, true
	case tcell.KeyRight:
		if word {
			return input.GoToNextWord, true
		}
		return input.GoToNextChar, true
	case tcell.KeyHome, tcell.KeyCtrlA:
		return input.GoToStart, true
	case tcell.KeyEnd, tcell.KeyCtrlE:
		return input.GoToEnd, true
	case tcell.KeyCtrlB:
		return input.GoToPrevChar, true
	case tcell.KeyCtrlF:
		return input.GoToNextChar, true
	case tcell.KeyCtrlD:
		return input.DeleteForward, true
	case tcell.KeyCtrlU:
		return input.DeleteLine, true
	case tcell.KeyCtrlK:
		return input.DeleteTillEnd, true
	case tcell.KeyCtrlW:
		return input.DeletePrevWord, true
	case tcell.KeyRune:
		return runeRequest(ev.Rune(), mod)
	}
	return input.Request{}, false
}

func runeRequest(r rune, mod tcell.ModMask) (input.Request, bool) {
	if mod&tcell.ModAlt != 0 {
		switch r {
		case 'b':
			return input.GoToPrevWord, true
		case 'f':
			return input.GoToNextWord, true
		case 'd':
			return input.DeleteNextWord, true
		}
		return input.Request{}, false
	}
	if mod&tcell.ModCtrl != 0 || unicode.IsControl(r) {
		return input.Request{}, false
	}
	return input.InsertChar(r), true
}
