package uiutils

import (
	"context"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
)

type BubbleTeaModelWithExitHandling interface {
	// ExitError is called after finish running the program (tea.Quit).
	//
	// This is used as a return value of RunBubbleTea.
	ExitError() error

	tea.Model
}

// IsInteractive reports whether both stdin and stdout are terminals.
func IsInteractive() bool {
	return isatty.IsTerminal(os.Stdin.Fd()) && isatty.IsTerminal(os.Stdout.Fd())
}

// RunBubbleTea runs the model until it quits or ctx is done.
// Without a terminal, keyboard input is disabled and the model is expected to
// quit by itself.
func RunBubbleTea(ctx context.Context, model BubbleTeaModelWithExitHandling) error {
	opts := []tea.ProgramOption{tea.WithContext(ctx)}
	if !IsInteractive() {
		opts = append(opts, tea.WithInput(nil))
	}
	p := tea.NewProgram(model, opts...)
	finalModel, err := p.Run()
	if err != nil {
		return err
	}
	if err := finalModel.(BubbleTeaModelWithExitHandling).ExitError(); err != nil {
		return err
	}
	return nil
}
