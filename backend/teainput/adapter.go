// Package teainput connects the input state machine to Bubble Tea.
//
// Adapter maps tea.KeyMsg values to input.Requests. Model is an embeddable
// single-line text field built on top of it.
package teainput

import (
	"regexp"
	"unicode"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/zjrosen/tuinput/backend"
	"github.com/zjrosen/tuinput/input"
	"github.com/zjrosen/tuinput/internal/log"
)

var _ backend.Adapter[tea.Msg] = Adapter{}

// mouseEscapePattern matches SGR mouse tracking sequences that weren't parsed by bubbletea.
// These look like "[<65;87;15M" or "<65;87;15M" (CSI < Pb ; Px ; Py M/m format).
var mouseEscapePattern = regexp.MustCompile(`^\[?<\d+;\d+;\d+[Mm]$`)

// isMouseEscapeSequence checks if runes represent an unparsed SGR mouse tracking sequence.
func isMouseEscapeSequence(runes []rune) bool {
	if len(runes) < 6 {
		return false
	}
	return mouseEscapePattern.MatchString(string(runes))
}

// Adapter translates Bubble Tea key messages into edit requests.
type Adapter struct {
	KeyMap KeyMap
}

// NewAdapter returns an adapter using DefaultKeyMap.
func NewAdapter() Adapter {
	return Adapter{KeyMap: DefaultKeyMap()}
}

// Requests implements backend.Adapter. Only tea.KeyMsg produces requests;
// every other message, and keys with no binding, yield nil.
func (a Adapter) Requests(msg tea.Msg) []input.Request {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}

	if req, ok := a.boundRequest(keyMsg); ok {
		return []input.Request{req}
	}

	switch keyMsg.Type {
	case tea.KeySpace:
		return []input.Request{input.InsertChar(' ')}
	case tea.KeyRunes:
		if keyMsg.Alt {
			break
		}
		return runeRequests(keyMsg.Runes)
	}

	log.Debug(log.CatBackend, "unmapped key", "key", keyMsg.String())
	return nil
}

func (a Adapter) boundRequest(msg tea.KeyMsg) (input.Request, bool) {
	km := a.KeyMap
	switch {
	case key.Matches(msg, km.DeleteBackward):
		return input.DeleteBackward, true
	case key.Matches(msg, km.DeleteForward):
		return input.DeleteForward, true
	case key.Matches(msg, km.CharBackward):
		return input.GoToPrevChar, true
	case key.Matches(msg, km.CharForward):
		return input.GoToNextChar, true
	case key.Matches(msg, km.WordBackward):
		return input.GoToPrevWord, true
	case key.Matches(msg, km.WordForward):
		return input.GoToNextWord, true
	case key.Matches(msg, km.DeletePrevWord):
		return input.DeletePrevWord, true
	case key.Matches(msg, km.DeleteNextWord):
		return input.DeleteNextWord, true
	case key.Matches(msg, km.LineStart):
		return input.GoToStart, true
	case key.Matches(msg, km.LineEnd):
		return input.GoToEnd, true
	case key.Matches(msg, km.DeleteLine):
		return input.DeleteLine, true
	case key.Matches(msg, km.DeleteTillEnd):
		return input.DeleteTillEnd, true
	}
	return input.Request{}, false
}

// runeRequests turns typed or pasted runes into inserts. Control characters
// (pasted newlines, tabs) are dropped since the field is a single line.
func runeRequests(runes []rune) []input.Request {
	if isMouseEscapeSequence(runes) {
		return nil
	}
	reqs := make([]input.Request, 0, len(runes))
	for _, r := range runes {
		if unicode.IsControl(r) {
			continue
		}
		reqs = append(reqs, input.InsertChar(r))
	}
	if len(reqs) == 0 {
		return nil
	}
	return reqs
}
