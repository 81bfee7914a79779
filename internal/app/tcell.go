package app

import (
	"strconv"

	"github.com/gdamore/tcell/v2"

	"github.com/zjrosen/tuinput/backend/tcellinput"
	"github.com/zjrosen/tuinput/input"
	"github.com/zjrosen/tuinput/internal/config"
	"github.com/zjrosen/tuinput/internal/log"
)

const tcellHelp = "enter submit • esc quit • alt+b/alt+f words • ctrl+w delete word • ctrl+u clear"

// TcellRunner drives a field on a tcell screen.
type TcellRunner struct {
	screen tcell.Screen
	cfg    config.Config
	in     *input.Input
	field  tcellinput.Field
	prompt tcell.Style
}

// NewTcellRunner prepares a runner on an initialised screen. The caller
// owns the screen and must call Fini.
func NewTcellRunner(screen tcell.Screen, cfg config.Config, in *input.Input) *TcellRunner {
	if in == nil {
		in = input.New()
	}
	r := &TcellRunner{
		screen: screen,
		cfg:    cfg,
		in:     in.Clone(),
		prompt: tcell.StyleDefault,
		field: tcellinput.Field{
			X:                input.StringWidth(cfg.Input.Prompt),
			Y:                0,
			Style:            tcell.StyleDefault,
			Placeholder:      cfg.Input.Placeholder,
			PlaceholderStyle: tcell.StyleDefault.Dim(true),
			CharLimit:        cfg.Input.CharLimit,
		},
	}
	if c, ok := tcellColor(cfg.Theme.Placeholder); ok {
		r.field.PlaceholderStyle = tcell.StyleDefault.Foreground(c)
	}
	r.resize()
	return r
}

// Run processes events until the user submits or quits.
func (r *TcellRunner) Run() Result {
	for {
		r.draw()
		r.screen.Show()

		switch ev := r.screen.PollEvent().(type) {
		case nil:
			// Screen finalised underneath us.
			return Result{Input: r.in.Clone()}
		case *tcell.EventResize:
			r.resize()
			r.screen.Sync()
		case *tcell.EventKey:
			switch ev.Key() {
			case tcell.KeyEnter:
				log.Info(log.CatInput, "Submitted", "len", r.in.Len())
				return Result{Input: r.in.Clone(), Submitted: true}
			case tcell.KeyEscape, tcell.KeyCtrlC:
				log.Info(log.CatInput, "Quit without submit")
				return Result{Input: r.in.Clone()}
			}
			r.handle(ev)
		case *tcell.EventMouse:
			r.handle(ev)
		}
	}
}

func (r *TcellRunner) handle(ev tcell.Event) {
	change, ok := r.field.Handle(r.in, ev)
	if ok && !change.NoOp() {
		log.Debug(log.CatInput, "changed", "value_changed", change.ValueChanged, "cursor", change.Cursor)
	}
}

func (r *TcellRunner) resize() {
	want := r.cfg.Input.Width
	if want <= 0 {
		want = config.Defaults().Input.Width
	}
	w, _ := r.screen.Size()
	r.field.Width = min(want, max(w-r.field.X, 1))
}

func (r *TcellRunner) draw() {
	r.screen.Clear()
	x := 0
	for _, c := range r.cfg.Input.Prompt {
		r.screen.SetContent(x, 0, c, nil, r.prompt)
		x += input.RuneWidth(c)
	}
	r.field.Draw(r.screen, r.in)

	x = 0
	for _, c := range tcellHelp {
		r.screen.SetContent(x, 2, c, nil, tcell.StyleDefault.Dim(true))
		x += max(input.RuneWidth(c), 1)
	}
}

// Input returns a copy of the current state.
func (r *TcellRunner) Input() *input.Input {
	return r.in.Clone()
}

// tcellColor converts a theme color ("#RRGGBB" or a palette index).
func tcellColor(s string) (tcell.Color, bool) {
	if s == "" {
		return tcell.ColorDefault, false
	}
	if n, err := strconv.Atoi(s); err == nil && n >= 0 && n <= 255 {
		return tcell.PaletteColor(n), true
	}
	c := tcell.GetColor(s)
	return c, c != tcell.ColorDefault
}
