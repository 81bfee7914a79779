package teainput

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
	"github.com/muesli/reflow/truncate"

	"github.com/zjrosen/tuinput/backend"
	"github.com/zjrosen/tuinput/input"
	"github.com/zjrosen/tuinput/internal/log"
)

// SubmitMsg is sent when the user presses the submit key.
type SubmitMsg struct {
	Value string
}

// ChangeMsg is sent after a key or click changed the value or the cursor.
type ChangeMsg struct {
	Change input.StateChange
}

// Config configures a Model.
type Config struct {
	Prompt      string
	Placeholder string
	Width       int // text columns, excluding the prompt
	CharLimit   int // 0 means unlimited

	// ZoneID enables mouse support. The host program must call
	// zone.NewGlobal and wrap its root view in zone.Scan.
	ZoneID string

	// ResetOnSubmit clears the field after a submit.
	ResetOnSubmit bool

	// Optional overrides for the emitted messages.
	OnSubmit func(value string) tea.Msg
	OnChange func(change input.StateChange) tea.Msg
}

// Styles holds the lipgloss styles used by View.
type Styles struct {
	Prompt      lipgloss.Style
	Cursor      lipgloss.Style
	Placeholder lipgloss.Style
}

// DefaultStyles returns a reverse-video cursor and a dim placeholder.
func DefaultStyles() Styles {
	return Styles{
		Prompt:      lipgloss.NewStyle(),
		Cursor:      lipgloss.NewStyle().Reverse(true),
		Placeholder: lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#9CA3AF", Dark: "#6B7280"}),
	}
}

// Model is a single-line text field.
type Model struct {
	in      *input.Input
	adapter Adapter
	cfg     Config
	styles  Styles
	focused bool
}

// New creates a blurred, empty field.
func New(cfg Config) Model {
	if cfg.Width < 1 {
		cfg.Width = 40
	}
	return Model{
		in:      input.New(),
		adapter: NewAdapter(),
		cfg:     cfg,
		styles:  DefaultStyles(),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Value returns the current text.
func (m Model) Value() string {
	return m.in.Value()
}

// Cursor returns the cursor as a codepoint index.
func (m Model) Cursor() int {
	return m.in.Cursor()
}

// Input returns a copy of the underlying state.
func (m Model) Input() *input.Input {
	return m.in.Clone()
}

// SetValue replaces the text and moves the cursor to the end.
func (m *Model) SetValue(v string) {
	m.in = input.FromString(v)
}

// SetInput replaces the underlying state, e.g. with a restored snapshot.
func (m *Model) SetInput(in *input.Input) {
	m.in = in.Clone()
}

// Reset clears the field.
func (m *Model) Reset() {
	m.in = input.New()
}

// Focused returns whether the field receives keys.
func (m Model) Focused() bool {
	return m.focused
}

// Focus focuses the field.
func (m *Model) Focus() {
	m.focused = true
}

// Blur removes focus from the field.
func (m *Model) Blur() {
	m.focused = false
}

// SetWidth sets the number of text columns.
func (m *Model) SetWidth(w int) {
	m.cfg.Width = max(w, 1)
}

// Width returns the number of text columns.
func (m Model) Width() int {
	return m.cfg.Width
}

// SetPlaceholder sets the text shown while the field is empty.
func (m *Model) SetPlaceholder(p string) {
	m.cfg.Placeholder = p
}

// SetKeyMap replaces the key bindings.
func (m *Model) SetKeyMap(km KeyMap) {
	m.adapter.KeyMap = km
}

// KeyMap returns the active key bindings.
func (m Model) KeyMap() KeyMap {
	return m.adapter.KeyMap
}

// SetStyles replaces the render styles.
func (m *Model) SetStyles(s Styles) {
	m.styles = s
}

// Update handles key and mouse messages.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.MouseMsg:
		return m.handleMouse(msg)
	case tea.KeyMsg:
		if !m.focused {
			return m, nil
		}
		if key.Matches(msg, m.adapter.KeyMap.Submit) {
			return m.submit()
		}
		reqs := backend.LimitInserts(m.in, m.cfg.CharLimit, m.adapter.Requests(msg))
		if len(reqs) == 0 {
			return m, nil
		}
		return m, m.changeCmd(backend.ApplyAll(m.in, reqs))
	}
	return m, nil
}

// Click places the cursor under column x of the text area, relative to its
// left edge. The field is focused as a side effect.
func (m *Model) Click(x int) input.StateChange {
	m.focused = true
	req := backend.ClickRequest(m.in, m.cfg.Width-1, x)
	log.Debug(log.CatInput, "click", "x", x, "request", req)
	return m.in.Apply(req)
}

func (m Model) handleMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	if m.cfg.ZoneID == "" {
		return m, nil
	}
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	z := zone.Get(m.cfg.ZoneID)
	if z == nil || !z.InBounds(msg) {
		return m, nil
	}
	x, _ := z.Pos(msg)
	change := m.Click(x)
	return m, m.changeCmd(change)
}

func (m Model) submit() (Model, tea.Cmd) {
	var value string
	if m.cfg.ResetOnSubmit {
		value = m.in.ValueAndReset()
	} else {
		value = m.in.Value()
	}
	log.Debug(log.CatInput, "submit", "len", len([]rune(value)))

	onSubmit := m.cfg.OnSubmit
	return m, func() tea.Msg {
		if onSubmit != nil {
			return onSubmit(value)
		}
		return SubmitMsg{Value: value}
	}
}

func (m Model) changeCmd(change input.StateChange) tea.Cmd {
	if change.NoOp() {
		return nil
	}
	log.Debug(log.CatInput, "changed", "value_changed", change.ValueChanged, "cursor", change.Cursor)
	onChange := m.cfg.OnChange
	return func() tea.Msg {
		if onChange != nil {
			return onChange(change)
		}
		return ChangeMsg{Change: change}
	}
}

// View renders the prompt followed by the visible part of the text,
// padded to Width columns.
func (m Model) View() string {
	field := m.fieldView()
	if m.cfg.ZoneID != "" {
		field = zone.Mark(m.cfg.ZoneID, field)
	}
	if m.cfg.Prompt == "" {
		return field
	}
	return m.styles.Prompt.Render(m.cfg.Prompt) + field
}

func (m Model) fieldView() string {
	width := m.cfg.Width

	if m.in.Len() == 0 && m.cfg.Placeholder != "" {
		if !m.focused {
			p := truncate.StringWithTail(m.cfg.Placeholder, uint(width), "…")
			return pad(m.styles.Placeholder.Render(p), width-lipgloss.Width(p))
		}
		p := truncate.StringWithTail(m.cfg.Placeholder, uint(max(width-1, 0)), "…")
		return pad(m.styles.Cursor.Render(" ")+m.styles.Placeholder.Render(p), width-1-lipgloss.Width(p))
	}

	w := backend.Visible(m.in, width)
	cursor := -1
	if m.focused {
		cursor = w.CursorCell()
	}

	var sb strings.Builder
	used := 0
	for i, c := range w.Cells {
		if i == cursor {
			sb.WriteString(m.styles.Cursor.Render(c.Text))
		} else {
			sb.WriteString(c.Text)
		}
		used = c.Col + c.Width
	}
	if m.focused && cursor < 0 {
		sb.WriteString(m.styles.Cursor.Render(" "))
		used++
	}
	return pad(sb.String(), width-used)
}

func pad(s string, n int) string {
	if n <= 0 {
		return s
	}
	return s + strings.Repeat(" ", n)
}
