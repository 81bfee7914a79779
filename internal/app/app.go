// Package app contains the root models that host a single input field,
// one per terminal backend.
package app

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"github.com/zjrosen/tuinput/backend/teainput"
	"github.com/zjrosen/tuinput/input"
	"github.com/zjrosen/tuinput/internal/config"
	"github.com/zjrosen/tuinput/internal/log"
)

// fieldZoneID marks the text area for mouse hit-testing.
const fieldZoneID = "tuinput-field"

// Result is what a run leaves behind.
type Result struct {
	Input     *input.Input
	Submitted bool
}

// Value returns the final text.
func (r Result) Value() string {
	if r.Input == nil {
		return ""
	}
	return r.Input.Value()
}

type keyMap struct {
	field teainput.KeyMap
	Quit  key.Binding
	Help  key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.field.Submit, k.Quit, k.Help}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return append(k.field.FullHelp(), []key.Binding{k.Quit, k.Help})
}

func defaultKeyMap() keyMap {
	return keyMap{
		field: teainput.DefaultKeyMap(),
		Quit: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("esc", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("ctrl+g"),
			key.WithHelp("ctrl+g", "toggle help"),
		),
	}
}

// Model is the Bubble Tea root model. It requires zone.NewGlobal to have
// been called.
type Model struct {
	field  teainput.Model
	help   help.Model
	keys   keyMap
	cfg    config.Config
	result Result
}

// New creates the root model around in, focused and ready for input.
func New(cfg config.Config, in *input.Input) Model {
	field := teainput.New(teainput.Config{
		Prompt:      cfg.Input.Prompt,
		Placeholder: cfg.Input.Placeholder,
		Width:       cfg.Input.Width,
		CharLimit:   cfg.Input.CharLimit,
		ZoneID:      fieldZoneID,
	})
	field.SetStyles(teaStyles(cfg.Theme))
	if in != nil {
		field.SetInput(in)
	}
	field.Focus()

	return Model{
		field: field,
		help:  help.New(),
		keys:  defaultKeyMap(),
		cfg:   cfg,
	}
}

// teaStyles applies theme overrides to the field's default styles.
func teaStyles(theme config.ThemeConfig) teainput.Styles {
	s := teainput.DefaultStyles()
	if theme.Cursor != "" {
		s.Cursor = lipgloss.NewStyle().Background(lipgloss.Color(theme.Cursor))
	}
	if theme.Placeholder != "" {
		s.Placeholder = lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Placeholder))
	}
	return s
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return m.field.Init()
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width)
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			log.Info(log.CatInput, "Quit without submit")
			return m.finish(false)
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		}

	case teainput.SubmitMsg:
		log.Info(log.CatInput, "Submitted", "len", len([]rune(msg.Value)))
		return m.finish(true)

	case teainput.ChangeMsg:
		return m, nil
	}

	var cmd tea.Cmd
	m.field, cmd = m.field.Update(msg)
	return m, cmd
}

func (m Model) finish(submitted bool) (tea.Model, tea.Cmd) {
	m.result = Result{Input: m.field.Input(), Submitted: submitted}
	return m, tea.Quit
}

// resize shrinks the field to fit a terminal of the given width, never
// growing it past the configured width.
func (m *Model) resize(termWidth int) {
	want := m.cfg.Input.Width
	if want <= 0 {
		want = config.Defaults().Input.Width
	}
	avail := termWidth - lipgloss.Width(m.cfg.Input.Prompt)
	m.field.SetWidth(min(want, max(avail, 1)))
}

// View implements tea.Model.
func (m Model) View() string {
	return zone.Scan(m.field.View() + "\n\n" + m.help.View(m.keys))
}

// Result returns the outcome once the program has exited.
func (m Model) Result() Result {
	if m.result.Input == nil {
		return Result{Input: m.field.Input()}
	}
	return m.result
}

// Field exposes the hosted field.
func (m Model) Field() teainput.Model {
	return m.field
}
