// Package launcher implements the start screen: a single button that opens
// the repository search.
package launcher

import (
	"strings"

	"emperror.dev/errors"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/simplegithub/sgh/internal/utils/colors"
)

const ButtonLabel = "Search repositories"

var ErrNotInteractive = errors.Sentinel(
	"the launcher needs a terminal; use `sgh search <query>` or `sgh repo view <owner>/<repo>` instead",
)

var keys = struct {
	Press key.Binding
	Quit  key.Binding
}{
	Press: key.NewBinding(key.WithKeys("enter", " ", "space"), key.WithHelp("enter", "open search")),
	Quit:  key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
}

type Model struct {
	help     help.Model
	selected bool
	done     bool
}

func New() *Model {
	return &Model{help: help.New()}
}

// Selected reports whether the button was activated, i.e. whether the caller
// should open the search screen.
func (vm *Model) Selected() bool {
	return vm.selected
}

func (vm *Model) Init() tea.Cmd {
	return nil
}

func (vm *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, keys.Press):
			vm.selected = true
			vm.done = true
			return vm, tea.Quit
		case key.Matches(msg, keys.Quit):
			vm.done = true
			return vm, tea.Quit
		}
	}
	return vm, nil
}

func (vm *Model) View() string {
	if vm.done {
		return ""
	}
	var sb strings.Builder
	sb.WriteString(colors.TitleStyle.Render("Simple GitHub"))
	sb.WriteString("\n\n")
	sb.WriteString(colors.FocusedButtonStyle.Render(ButtonLabel))
	sb.WriteString("\n")
	sb.WriteString(vm.help.ShortHelpView([]key.Binding{keys.Press, keys.Quit}))
	sb.WriteString("\n")
	return sb.String()
}

func (vm *Model) ExitError() error {
	return nil
}
