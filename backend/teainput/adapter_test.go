package teainput

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zjrosen/tuinput/backend"
	"github.com/zjrosen/tuinput/input"
)

func runesKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func altKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}, Alt: true}
}

func TestAdapter_Bindings(t *testing.T) {
	a := NewAdapter()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want input.Request
	}{
		{"backspace", tea.KeyMsg{Type: tea.KeyBackspace}, input.DeleteBackward},
		{"ctrl+h", tea.KeyMsg{Type: tea.KeyCtrlH}, input.DeleteBackward},
		{"delete", tea.KeyMsg{Type: tea.KeyDelete}, input.DeleteForward},
		{"ctrl+d", tea.KeyMsg{Type: tea.KeyCtrlD}, input.DeleteForward},
		{"left", tea.KeyMsg{Type: tea.KeyLeft}, input.GoToPrevChar},
		{"ctrl+b", tea.KeyMsg{Type: tea.KeyCtrlB}, input.GoToPrevChar},
		{"right", tea.KeyMsg{Type: tea.KeyRight}, input.GoToNextChar},
		{"ctrl+f", tea.KeyMsg{Type: tea.KeyCtrlF}, input.GoToNextChar},
		{"ctrl+left", tea.KeyMsg{Type: tea.KeyCtrlLeft}, input.GoToPrevWord},
		{"alt+left", tea.KeyMsg{Type: tea.KeyLeft, Alt: true}, input.GoToPrevWord},
		{"alt+b", altKey('b'), input.GoToPrevWord},
		{"ctrl+right", tea.KeyMsg{Type: tea.KeyCtrlRight}, input.GoToNextWord},
		{"alt+right", tea.KeyMsg{Type: tea.KeyRight, Alt: true}, input.GoToNextWord},
		{"alt+f", altKey('f'), input.GoToNextWord},
		{"ctrl+w", tea.KeyMsg{Type: tea.KeyCtrlW}, input.DeletePrevWord},
		{"alt+backspace", tea.KeyMsg{Type: tea.KeyBackspace, Alt: true}, input.DeletePrevWord},
		{"alt+delete", tea.KeyMsg{Type: tea.KeyDelete, Alt: true}, input.DeleteNextWord},
		{"alt+d", altKey('d'), input.DeleteNextWord},
		{"home", tea.KeyMsg{Type: tea.KeyHome}, input.GoToStart},
		{"ctrl+a", tea.KeyMsg{Type: tea.KeyCtrlA}, input.GoToStart},
		{"end", tea.KeyMsg{Type: tea.KeyEnd}, input.GoToEnd},
		{"ctrl+e", tea.KeyMsg{Type: tea.KeyCtrlE}, input.GoToEnd},
		{"ctrl+u", tea.KeyMsg{Type: tea.KeyCtrlU}, input.DeleteLine},
		{"ctrl+k", tea.KeyMsg{Type: tea.KeyCtrlK}, input.DeleteTillEnd},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.name, tt.msg.String())
			assert.Equal(t, []input.Request{tt.want}, a.Requests(tt.msg))
		})
	}
}

func TestAdapter_Runes(t *testing.T) {
	a := NewAdapter()

	assert.Equal(t, []input.Request{input.InsertChar('x')}, a.Requests(runesKey("x")))
	assert.Equal(t, []input.Request{input.InsertChar(' ')}, a.Requests(tea.KeyMsg{Type: tea.KeySpace}))
}

func TestAdapter_PasteInsertsEachRune(t *testing.T) {
	a := NewAdapter()

	reqs := a.Requests(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("a中b"), Paste: true})

	assert.Equal(t, []input.Request{
		input.InsertChar('a'),
		input.InsertChar('中'),
		input.InsertChar('b'),
	}, reqs)
}

func TestAdapter_PasteDropsControlRunes(t *testing.T) {
	a := NewAdapter()

	reqs := a.Requests(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("a\nb\tc"), Paste: true})

	assert.Equal(t, []input.Request{
		input.InsertChar('a'),
		input.InsertChar('b'),
		input.InsertChar('c'),
	}, reqs)
	assert.Nil(t, a.Requests(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("\n")}))
}

func TestAdapter_IgnoresMouseEscapeSequences(t *testing.T) {
	a := NewAdapter()

	assert.Nil(t, a.Requests(runesKey("[<65;87;15M")))
	assert.Nil(t, a.Requests(runesKey("<0;12;3m")))
	// Short strings that merely look similar still insert.
	assert.Len(t, a.Requests(runesKey("<1;2M")), 5)
}

func TestAdapter_Unmapped(t *testing.T) {
	a := NewAdapter()

	tests := []tea.Msg{
		tea.KeyMsg{Type: tea.KeyTab},
		tea.KeyMsg{Type: tea.KeyEsc},
		tea.KeyMsg{Type: tea.KeyUp},
		tea.KeyMsg{Type: tea.KeyCtrlX},
		altKey('z'),
		tea.WindowSizeMsg{Width: 80, Height: 24},
		tea.MouseMsg{X: 1, Y: 1, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress},
	}
	for _, msg := range tests {
		assert.Nil(t, a.Requests(msg), "%#v", msg)
	}
}

func TestAdapter_CustomKeyMap(t *testing.T) {
	km := DefaultKeyMap()
	km.DeleteLine = key.NewBinding(key.WithKeys("ctrl+x"))
	a := Adapter{KeyMap: km}

	assert.Equal(t, []input.Request{input.DeleteLine}, a.Requests(tea.KeyMsg{Type: tea.KeyCtrlX}))
	assert.Nil(t, a.Requests(tea.KeyMsg{Type: tea.KeyCtrlU}))
}

func TestAdapter_DisabledBindingFallsThrough(t *testing.T) {
	km := DefaultKeyMap()
	km.WordForward.SetEnabled(false)
	a := Adapter{KeyMap: km}

	// alt+f is no longer bound and alt+rune never inserts.
	assert.Nil(t, a.Requests(altKey('f')))
}

func TestAdapter_HandleEndToEnd(t *testing.T) {
	in := input.FromString("hello world")
	a := NewAdapter()

	change, ok := backend.Handle[tea.Msg](in, a, tea.KeyMsg{Type: tea.KeyCtrlW})
	require.True(t, ok)
	assert.True(t, change.ValueChanged)
	assert.Equal(t, "hello ", in.Value())

	change, ok = backend.Handle[tea.Msg](in, a, runesKey("there"))
	require.True(t, ok)
	assert.Equal(t, "hello there", change.Value)
	assert.Equal(t, 11, change.Cursor)

	_, ok = backend.Handle[tea.Msg](in, a, tea.KeyMsg{Type: tea.KeyTab})
	assert.False(t, ok)
}

func TestKeyMap_Help(t *testing.T) {
	km := DefaultKeyMap()

	assert.NotEmpty(t, km.ShortHelp())
	full := km.FullHelp()
	require.NotEmpty(t, full)
	for _, group := range full {
		for _, b := range group {
			assert.NotEmpty(t, b.Help().Key)
		}
	}
}
