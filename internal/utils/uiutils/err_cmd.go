package uiutils

import tea "github.com/charmbracelet/bubbletea"

// ErrCmd wraps an error into a tea.Cmd that returns the error as a message.
//
// Screens treat an error message as fatal: they record it and quit, and the
// command renders it after the program exits.
func ErrCmd(err error) tea.Cmd {
	return func() tea.Msg {
		return err
	}
}

// ErrExitSilently indicates that the program should exit with the given code
// without printing anything else. Screens that already rendered their own
// failure return it so that the process still exits non-zero.
type ErrExitSilently struct {
	ExitCode int
}

func (e ErrExitSilently) Error() string {
	return "<exit silently>"
}
