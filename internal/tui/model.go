// Package tui hosts the search widget in a terminal: a text input with a results dropdown.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/hyperjump/sitesearch/internal/models"
	"github.com/hyperjump/sitesearch/internal/render"
	"github.com/hyperjump/sitesearch/internal/widget"
	"github.com/hyperjump/sitesearch/pkg/utils"
)

const (
	defaultWidth = 80
	// inputRow is the screen line of the text input; the title sits above it.
	inputRow = 1
)

// dispatchMsg carries a function scheduled through Dispatch onto the Update loop.
type dispatchMsg struct {
	fn func()
}

// Model is a bubbletea model that is also the widget's Document.
type Model struct {
	styles    *Styles
	input     textinput.Model
	results   *dropdown
	attrs     map[string]string
	inputID   string
	resultsID string

	onInput []func(string)
	onClick []func(any)
	onKey   []func(string)

	dispatch chan func()
	state    func() models.IndexState

	width  int
	height int
}

// Option configures a Model.
type Option func(*Model)

// WithElementIDs overrides the identifiers the model answers lookups for.
func WithElementIDs(inputID, resultsID string) Option {
	return func(m *Model) {
		if inputID != "" {
			m.inputID = inputID
		}
		if resultsID != "" {
			m.resultsID = resultsID
		}
	}
}

// NewModel creates the terminal document. baseURL becomes the data-baseurl attribute.
func NewModel(baseURL string, opts ...Option) *Model {
	ti := textinput.New()
	ti.Placeholder = "Search"
	ti.Prompt = "/ "
	ti.CharLimit = 256
	ti.Focus()

	m := &Model{
		styles:    NewStyles(),
		input:     ti,
		results:   &dropdown{hidden: true},
		attrs:     map[string]string{widget.BaseURLAttribute: baseURL},
		inputID:   widget.InputID,
		resultsID: widget.ResultsID,
		dispatch:  make(chan func(), 16),
		width:     defaultWidth,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Attach lets the status line report the state of w.
func (m *Model) Attach(w *widget.Widget) {
	m.state = w.State
}

// BodyAttribute implements widget.Document.
func (m *Model) BodyAttribute(name string) (string, bool) {
	v, ok := m.attrs[name]
	return v, ok
}

// Input implements widget.Document.
func (m *Model) Input(id string) (widget.Input, bool) {
	if id != m.inputID {
		return nil, false
	}
	return inputElement{m: m}, true
}

// Container implements widget.Document.
func (m *Model) Container(id string) (widget.Container, bool) {
	if id != m.resultsID {
		return nil, false
	}
	return m.results, true
}

// OnInput implements widget.Document.
func (m *Model) OnInput(fn func(value string)) { m.onInput = append(m.onInput, fn) }

// OnClick implements widget.Document.
func (m *Model) OnClick(fn func(target any)) { m.onClick = append(m.onClick, fn) }

// OnKey implements widget.Document.
func (m *Model) OnKey(fn func(key string)) { m.onKey = append(m.onKey, fn) }

// Dispatch implements widget.Document. fn runs inside Update.
func (m *Model) Dispatch(fn func()) {
	m.dispatch <- fn
}

func (m *Model) waitForDispatch() tea.Cmd {
	return func() tea.Msg {
		return dispatchMsg{fn: <-m.dispatch}
	}
}

// Init returns the initial commands.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.waitForDispatch())
}

// Update handles messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case dispatchMsg:
		msg.fn()
		return m, m.waitForDispatch()

	case tea.MouseMsg:
		if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		t := m.hitTest(msg.Y)
		for _, fn := range m.onClick {
			fn(t)
		}
		if t == targetInput && !m.input.Focused() {
			return m, m.input.Focus()
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}
	if !m.input.Focused() {
		switch msg.String() {
		case "q":
			return m, tea.Quit
		case "/", "tab":
			return m, m.input.Focus()
		}
	}

	key := keyName(msg)
	for _, fn := range m.onKey {
		fn(key)
	}
	if !m.input.Focused() {
		return m, nil
	}

	prev := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if value := m.input.Value(); value != prev {
		for _, fn := range m.onInput {
			fn(value)
		}
	}
	return m, cmd
}

// keyName maps terminal key names to DOM key names where they differ.
func keyName(msg tea.KeyMsg) string {
	switch msg.Type {
	case tea.KeyEsc:
		return widget.EscapeKey
	case tea.KeyEnter:
		return "Enter"
	case tea.KeyTab:
		return "Tab"
	}
	return msg.String()
}

// hitTest maps a screen row to the element drawn there.
func (m *Model) hitTest(y int) target {
	if y == inputRow {
		return targetInput
	}
	if m.results.hidden {
		return targetOutside
	}
	top := inputRow + 1
	if y >= top && y < top+lipgloss.Height(m.renderDropdown()) {
		return targetDropdown
	}
	return targetOutside
}

// View renders the screen.
func (m *Model) View() string {
	var b strings.Builder
	b.WriteString(m.styles.Title.Render("sitesearch"))
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")
	if !m.results.hidden {
		b.WriteString(m.renderDropdown())
		b.WriteString("\n")
	}
	b.WriteString(m.renderStatus())
	b.WriteString("\n")
	b.WriteString(m.styles.Help.Render("esc dismiss · / focus · q quit (when not typing) · ctrl+c quit"))
	return b.String()
}

func (m *Model) renderDropdown() string {
	inner := m.width - 4
	if inner < 20 {
		inner = 20
	}
	f := m.results.content
	var lines []string
	switch f.State {
	case render.StateMessage:
		lines = append(lines, m.styles.Empty.Render(f.Message))
	case render.StateResults:
		for i, item := range f.Items {
			if i > 0 {
				lines = append(lines, "")
			}
			lines = append(lines,
				m.styles.Item.Render(utils.Truncate(item.Title, inner-3)),
				m.styles.Meta.Render(utils.Truncate(item.Date+" · "+item.Categories, inner-3)),
				m.styles.Snippet.Render(utils.Truncate(item.Snippet, inner-3)),
			)
		}
	}
	return m.styles.Dropdown.Width(inner).Render(strings.Join(lines, "\n"))
}

func (m *Model) renderStatus() string {
	if m.state == nil {
		return ""
	}
	st := m.state()
	switch st.Status() {
	case models.IndexLoaded:
		idx, _ := st.Index()
		return m.styles.Status.Render(fmt.Sprintf("%d entries", len(idx)))
	case models.IndexFailed:
		return m.styles.Error.Render(fmt.Sprintf("index failed: %v", st.Err()))
	default:
		return m.styles.Status.Render(st.Status().String() + "…")
	}
}
