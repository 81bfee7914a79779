package input

import "fmt"

// Kind identifies an edit or navigation action.
type Kind int

const (
	KindInsertChar Kind = iota
	KindSetCursor
	KindDeleteBackward
	KindDeleteForward
	KindDeleteLine
	KindDeleteTillEnd
	KindDeletePrevWord
	KindDeleteNextWord
	KindGoToStart
	KindGoToEnd
	KindGoToPrevChar
	KindGoToNextChar
	KindGoToPrevWord
	KindGoToNextWord
)

var kindNames = [...]string{
	KindInsertChar:     "insert_char",
	KindSetCursor:      "set_cursor",
	KindDeleteBackward: "delete_backward",
	KindDeleteForward:  "delete_forward",
	KindDeleteLine:     "delete_line",
	KindDeleteTillEnd:  "delete_till_end",
	KindDeletePrevWord: "delete_prev_word",
	KindDeleteNextWord: "delete_next_word",
	KindGoToStart:      "go_to_start",
	KindGoToEnd:        "go_to_end",
	KindGoToPrevChar:   "go_to_prev_char",
	KindGoToNextChar:   "go_to_next_char",
	KindGoToPrevWord:   "go_to_prev_word",
	KindGoToNextWord:   "go_to_next_word",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	if k < 0 || int(k) >= len(kindNames) {
		return nil, fmt.Errorf("unknown request kind %d", int(k))
	}
	return []byte(kindNames[k]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(text []byte) error {
	for i, name := range kindNames {
		if name == string(text) {
			*k = Kind(i)
			return nil
		}
	}
	return fmt.Errorf("unknown request kind %q", text)
}

// Request is a backend-independent description of one edit or navigation
// action. Char is only meaningful for KindInsertChar and Pos only for
// KindSetCursor. Requests are comparable.
type Request struct {
	Kind Kind `json:"kind" yaml:"kind"`
	Char rune `json:"char,omitempty" yaml:"char,omitempty"`
	Pos  int  `json:"pos,omitempty" yaml:"pos,omitempty"`
}

// InsertChar returns a request inserting c at the cursor.
func InsertChar(c rune) Request {
	return Request{Kind: KindInsertChar, Char: c}
}

// SetCursor returns a request placing the cursor at pos (clamped on apply).
func SetCursor(pos int) Request {
	return Request{Kind: KindSetCursor, Pos: pos}
}

// Parameterless requests.
var (
	DeleteBackward = Request{Kind: KindDeleteBackward}
	DeleteForward  = Request{Kind: KindDeleteForward}
	DeleteLine     = Request{Kind: KindDeleteLine}
	DeleteTillEnd  = Request{Kind: KindDeleteTillEnd}
	DeletePrevWord = Request{Kind: KindDeletePrevWord}
	DeleteNextWord = Request{Kind: KindDeleteNextWord}
	GoToStart      = Request{Kind: KindGoToStart}
	GoToEnd        = Request{Kind: KindGoToEnd}
	GoToPrevChar   = Request{Kind: KindGoToPrevChar}
	GoToNextChar   = Request{Kind: KindGoToNextChar}
	GoToPrevWord   = Request{Kind: KindGoToPrevWord}
	GoToNextWord   = Request{Kind: KindGoToNextWord}
)

func (r Request) String() string {
	switch r.Kind {
	case KindInsertChar:
		return fmt.Sprintf("%s(%q)", r.Kind, r.Char)
	case KindSetCursor:
		return fmt.Sprintf("%s(%d)", r.Kind, r.Pos)
	default:
		return r.Kind.String()
	}
}
