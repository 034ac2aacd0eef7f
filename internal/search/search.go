// Package search implements the repository search screen.
package search

import (
	"context"
	"fmt"
	"io"
	"strings"

	"emperror.dev/errors"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/dustin/go-humanize"
	"github.com/simplegithub/sgh/internal/gh"
	"github.com/simplegithub/sgh/internal/utils/cleanup"
	"github.com/simplegithub/sgh/internal/utils/colors"
	"github.com/simplegithub/sgh/internal/utils/stringutils"
	"github.com/simplegithub/sgh/internal/utils/uiutils"
	"github.com/sirupsen/logrus"
)

const pageSize = 10

var ErrQueryRequired = errors.Sentinel("a search query is required when not running in a terminal")

type Searcher interface {
	SearchRepositories(ctx context.Context, query string, limit int) ([]gh.RepositorySearchResult, error)
}

// Result is one row of the result list.
type Result struct {
	gh.RepositorySearchResult
}

func (r Result) String() string {
	row := r.NameWithOwner + " " + colors.StarStyle.Render("★ "+humanize.Comma(int64(r.StargazerCount)))
	if r.PrimaryLanguage != nil {
		row += colors.FaintStyle.Render(" [" + r.PrimaryLanguage.Name + "]")
	}
	if desc := stringutils.FirstLine(r.Description, 72); desc != "" {
		row += " " + colors.FaintStyle.Render(desc)
	}
	return row
}

type phase int

const (
	phaseInput phase = iota
	phaseSearching
	phaseResults
	phaseDone
)

type searchDone struct {
	query   string
	results []gh.RepositorySearchResult
	err     error
}

type chosen struct {
	result Result
}

var keys = struct {
	Submit key.Binding
	Cancel key.Binding
}{
	Submit: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "search")),
	Cancel: key.NewBinding(key.WithKeys("esc", "ctrl+c"), key.WithHelp("esc", "cancel")),
}

type Model struct {
	searcher Searcher
	limit    int
	parent   context.Context

	phase   phase
	input   textinput.Model
	spinner spinner.Model
	help    help.Model
	query   string
	results *uiutils.PromptModel[Result]
	chosen  *Result
	empty   bool
	err     error

	ctx      context.Context
	teardown cleanup.Cleanup
}

// New returns a search screen. With an empty query the user is asked for one
// first.
func New(ctx context.Context, searcher Searcher, query string, limit int) *Model {
	input := textinput.New()
	input.Placeholder = "e.g. bubbletea language:go"
	input.Prompt = "Search GitHub: "
	input.SetValue(query)
	return &Model{
		searcher: searcher,
		limit:    limit,
		parent:   ctx,
		input:    input,
		spinner:  spinner.New(spinner.WithSpinner(spinner.Dot)),
		help:     help.New(),
		query:    strings.TrimSpace(query),
	}
}

// Chosen returns the repository the user picked, if any.
func (vm *Model) Chosen() (gh.RepositorySearchResult, bool) {
	if vm.chosen == nil {
		return gh.RepositorySearchResult{}, false
	}
	return vm.chosen.RepositorySearchResult, true
}

func (vm *Model) Init() tea.Cmd {
	if vm.query != "" {
		return vm.startSearch(vm.query)
	}
	return vm.input.Focus()
}

func (vm *Model) startSearch(query string) tea.Cmd {
	return tea.Batch(vm.spinner.Tick, vm.beginSearch(query))
}

// beginSearch moves to the searching phase and returns the command that
// performs the request.
func (vm *Model) beginSearch(query string) tea.Cmd {
	vm.query = query
	vm.phase = phaseSearching
	vm.input.Blur()

	ctx, cancel := context.WithCancel(vm.parent)
	vm.ctx = ctx
	vm.teardown.Add(cancel)
	limit := vm.limit
	return func() tea.Msg {
		results, err := vm.searcher.SearchRepositories(ctx, query, limit)
		return searchDone{query: query, results: results, err: err}
	}
}

func (vm *Model) stop() tea.Cmd {
	vm.phase = phaseDone
	vm.teardown.Cleanup()
	return tea.Quit
}

func (vm *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case searchDone:
		if vm.phase != phaseSearching {
			return vm, nil
		}
		if msg.err != nil {
			if errors.Is(msg.err, context.Canceled) && vm.ctx.Err() != nil {
				return vm, nil
			}
			vm.err = msg.err
			return vm, vm.stop()
		}
		logrus.WithFields(logrus.Fields{
			"query":   msg.query,
			"results": len(msg.results),
		}).Debug("repository search completed")
		if len(msg.results) == 0 {
			vm.empty = true
			return vm, vm.stop()
		}
		rows := make([]Result, 0, len(msg.results))
		for _, r := range msg.results {
			rows = append(rows, Result{r})
		}
		vm.phase = phaseResults
		vm.results = uiutils.NewPromptModel(
			fmt.Sprintf("Repositories matching %s:", colors.UserInput(msg.query)),
			rows,
			pageSize,
			func(r Result) tea.Cmd {
				return func() tea.Msg { return chosen{r} }
			},
		)
		return vm, vm.results.Init()

	case chosen:
		vm.chosen = &msg.result
		return vm, vm.stop()

	case error:
		vm.err = msg
		return vm, vm.stop()

	case spinner.TickMsg:
		if vm.phase == phaseSearching {
			var cmd tea.Cmd
			vm.spinner, cmd = vm.spinner.Update(msg)
			return vm, cmd
		}
		return vm, nil

	case tea.KeyMsg:
		switch vm.phase {
		case phaseInput:
			switch {
			case key.Matches(msg, keys.Cancel):
				return vm, vm.stop()
			case key.Matches(msg, keys.Submit):
				if q := strings.TrimSpace(vm.input.Value()); q != "" {
					return vm, vm.startSearch(q)
				}
				return vm, nil
			}
		case phaseSearching:
			if key.Matches(msg, keys.Cancel) {
				return vm, vm.stop()
			}
			return vm, nil
		case phaseResults:
			_, cmd := vm.results.Update(msg)
			if key.Matches(msg, keys.Cancel) {
				vm.phase = phaseDone
				vm.teardown.Cleanup()
			}
			return vm, cmd
		}
	}

	if vm.phase == phaseInput {
		var cmd tea.Cmd
		vm.input, cmd = vm.input.Update(msg)
		return vm, cmd
	}
	return vm, nil
}

func (vm *Model) View() string {
	var sb strings.Builder
	switch vm.phase {
	case phaseInput:
		sb.WriteString(vm.input.View())
		sb.WriteString("\n")
		sb.WriteString(vm.help.ShortHelpView([]key.Binding{keys.Submit, keys.Cancel}))
	case phaseSearching:
		sb.WriteString(colors.ProgressStyle.Render(vm.spinner.View() + "Searching for " + vm.query + "..."))
	case phaseResults:
		sb.WriteString(vm.results.View())
	case phaseDone:
		if vm.chosen != nil {
			sb.WriteString(colors.SuccessStyle.Render("✓ " + vm.chosen.NameWithOwner))
		} else if vm.empty {
			sb.WriteString(colors.FaintStyle.Render("No repositories matched " + vm.query + "."))
		}
	}
	if sb.Len() > 0 {
		sb.WriteString("\n")
	}
	return sb.String()
}

func (vm *Model) ExitError() error {
	return vm.err
}

// Print runs the search once and writes one row per result to w, for runs
// without a terminal where the interactive list can't be used.
func Print(ctx context.Context, w io.Writer, searcher Searcher, query string, limit int) error {
	query = strings.TrimSpace(query)
	if query == "" {
		return ErrQueryRequired
	}
	results, err := searcher.SearchRepositories(ctx, query, limit)
	if err != nil {
		return err
	}
	if len(results) == 0 {
		_, err := fmt.Fprintf(w, "No repositories matched %s.\n", query)
		return err
	}
	for _, r := range results {
		language := "-"
		if r.PrimaryLanguage != nil {
			language = r.PrimaryLanguage.Name
		}
		_, err := fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
			r.NameWithOwner,
			humanize.Comma(int64(r.StargazerCount)),
			language,
			stringutils.FirstLine(r.Description, 72),
		)
		if err != nil {
			return errors.Wrap(err, "failed to write search results")
		}
	}
	return nil
}
