package uiutils

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/erikgeiser/promptkit/selection"
)

var PromptKeys = []key.Binding{
	key.NewBinding(
		key.WithKeys("up", "k", "ctrl+p"),
		key.WithHelp("↑/k", "move up"),
	),
	key.NewBinding(
		key.WithKeys("down", "j", "ctrl+n"),
		key.WithHelp("↓/j", "move down"),
	),
	key.NewBinding(
		key.WithKeys("space", "enter"),
		key.WithHelp("space/enter", "select"),
	),
	key.NewBinding(
		key.WithKeys("esc", "ctrl+c"),
		key.WithHelp("esc", "cancel"),
	),
}

// PromptModel is a single-choice list. Items are rendered with fmt's %v, so
// item types should implement fmt.Stringer.
type PromptModel[T any] struct {
	prompt   *selection.Model[T]
	help     help.Model
	callback func(T) tea.Cmd
	quitting bool
}

func NewPromptModel[T any](title string, items []T, pageSize int, callback func(T) tea.Cmd) *PromptModel[T] {
	sel := selection.New(title, items)
	sel.Filter = nil
	sel.PageSize = pageSize
	prompt := selection.NewModel(sel)
	prompt.KeyMap.Up = append(prompt.KeyMap.Up, "k", "ctrl+p")
	prompt.KeyMap.Down = append(prompt.KeyMap.Down, "j", "ctrl+n")
	return &PromptModel[T]{
		prompt:   prompt,
		help:     help.New(),
		callback: callback,
	}
}

func (m *PromptModel[T]) Init() tea.Cmd {
	return m.prompt.Init()
}

func (m *PromptModel[T]) View() string {
	// The base prompt has a new line. Leave the caller to decide whether to add a new line
	// after.
	ret := strings.TrimSpace(m.prompt.View())
	if !m.quitting {
		// Do not show help after finishing the selection.
		ret = lipgloss.JoinVertical(lipgloss.Top, ret, m.help.ShortHelpView(PromptKeys))
	}
	return ret
}

func (m *PromptModel[T]) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case " ", "space", "enter":
			m.prompt.Update(msg)
			m.quitting = true
			c, err := m.prompt.Value()
			if err != nil {
				return m, ErrCmd(err)
			}
			return m, m.callback(c)
		case "esc", "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		default:
			_, cmd := m.prompt.Update(msg)
			return m, cmd
		}
	}
	return m, nil
}
