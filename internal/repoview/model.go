// Package repoview implements the repository detail screen.
//
// The screen is started with an owner login and a repository name, issues a
// single lookup request and shows either the repository or the failure
// message. Quitting while the request is outstanding cancels it, and a result
// that arrives afterwards is dropped.
package repoview

import (
	"context"
	"strings"

	"emperror.dev/errors"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/simplegithub/sgh/internal/avatar"
	"github.com/simplegithub/sgh/internal/gh"
	"github.com/simplegithub/sgh/internal/utils/browser"
	"github.com/simplegithub/sgh/internal/utils/cleanup"
	"github.com/simplegithub/sgh/internal/utils/colors"
	"github.com/simplegithub/sgh/internal/utils/errutils"
	"github.com/simplegithub/sgh/internal/utils/uiutils"
	"github.com/sirupsen/logrus"
)

var (
	ErrMissingLogin    = errors.Sentinel("no owner login given for the repository")
	ErrMissingRepoName = errors.Sentinel("no repository name given")
)

// avatarTarget is the display target the owner avatar is loaded into.
const avatarTarget = "profile"

// RepositoryGetter is the repository-lookup service.
type RepositoryGetter interface {
	GetRepository(ctx context.Context, owner string, name string) (*gh.Repository, error)
}

type Options struct {
	// Context bounds the lookup request. Defaults to context.Background().
	Context   context.Context
	Formatter *Formatter
	Images    avatar.Loader
	// OpenURL opens the repository page. Defaults to browser.Open.
	OpenURL func(ctx context.Context, url string) error
	// QuitWhenSettled makes the screen quit as soon as it reaches Loaded or
	// Failed. Used when there's no terminal to read keys from.
	QuitWhenSettled bool
}

var keys = struct {
	Open key.Binding
	Quit key.Binding
}{
	Open: key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "open in browser")),
	Quit: key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
}

type Model struct {
	getter   RepositoryGetter
	opts     Options
	login    string
	repoName string

	state   State
	spinner spinner.Model
	help    help.Model

	ctx      context.Context
	teardown cleanup.Cleanup
}

// fetchResult carries the outcome of the lookup request back to Update.
type fetchResult struct {
	repo *gh.Repository
	err  error
}

// New validates the inputs and returns a screen in the Loading state. It
// fails with ErrMissingLogin or ErrMissingRepoName if either identifier is
// empty; the screen must not be started then.
func New(getter RepositoryGetter, login string, repoName string, opts Options) (*Model, error) {
	if err := Validate(login, repoName); err != nil {
		return nil, err
	}
	if opts.Context == nil {
		opts.Context = context.Background()
	}
	if opts.Formatter == nil {
		opts.Formatter = NewFormatter("en", nil)
	}
	if opts.OpenURL == nil {
		opts.OpenURL = browser.Open
	}
	return &Model{
		getter:   getter,
		opts:     opts,
		login:    login,
		repoName: repoName,
		state:    Loading{},
		spinner:  spinner.New(spinner.WithSpinner(spinner.Dot)),
		help:     help.New(),
	}, nil
}

// Validate checks that both identifiers are present.
func Validate(login string, repoName string) error {
	if strings.TrimSpace(login) == "" {
		return ErrMissingLogin
	}
	if strings.TrimSpace(repoName) == "" {
		return ErrMissingRepoName
	}
	return nil
}

// State returns the current state of the screen.
func (vm *Model) State() State {
	return vm.state
}

// Stopped reports whether the screen has been stopped.
func (vm *Model) Stopped() bool {
	return vm.teardown.Done()
}

// Start creates the request context and returns the command that performs
// the lookup. It's called by Init; the parent context bounds the request.
func (vm *Model) Start(parent context.Context) tea.Cmd {
	ctx, cancel := context.WithCancel(parent)
	vm.ctx = ctx
	vm.teardown.Add(cancel)
	logrus.WithFields(logrus.Fields{
		"login": vm.login,
		"repo":  vm.repoName,
	}).Debug("fetching repository")
	return func() tea.Msg {
		repo, err := vm.getter.GetRepository(ctx, vm.login, vm.repoName)
		return fetchResult{repo: repo, err: err}
	}
}

// Stop releases the outstanding request, if any. It's safe to call more
// than once and after the request completed.
func (vm *Model) Stop() {
	vm.teardown.Cleanup()
}

func (vm *Model) Init() tea.Cmd {
	return tea.Batch(vm.spinner.Tick, vm.Start(vm.opts.Context))
}

func (vm *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case fetchResult:
		return vm, vm.settle(msg)

	case avatar.Loaded:
		if loaded, ok := vm.state.(Loaded); ok && msg.Target == avatarTarget && msg.URL == loaded.Display.AvatarURL {
			loaded.Display.Avatar = msg.Rendition
			vm.state = loaded
		}
		return vm, nil

	case spinner.TickMsg:
		if _, ok := vm.state.(Loading); ok && !vm.Stopped() {
			var cmd tea.Cmd
			vm.spinner, cmd = vm.spinner.Update(msg)
			return vm, cmd
		}
		return vm, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			vm.Stop()
			return vm, tea.Quit
		case key.Matches(msg, keys.Open):
			if loaded, ok := vm.state.(Loaded); ok && loaded.Display.HTMLURL != "" {
				if err := vm.opts.OpenURL(vm.ctx, loaded.Display.HTMLURL); err != nil {
					logrus.WithError(err).Debug("failed to open browser")
				}
			}
			return vm, nil
		}
	}
	return vm, nil
}

// settle applies the lookup result. Results arriving after Stop are dropped.
func (vm *Model) settle(res fetchResult) tea.Cmd {
	if vm.Stopped() {
		logrus.Debug("screen stopped before the repository lookup completed; dropping result")
		return nil
	}
	if _, ok := vm.state.(Loading); !ok {
		return nil
	}

	if res.err != nil {
		if errors.Is(res.err, context.Canceled) && vm.ctx.Err() != nil {
			return nil
		}
		logrus.WithError(res.err).Debug("repository lookup failed")
		vm.state = Failed{Message: vm.errorMessage(res.err)}
		return vm.quitIfSettled()
	}
	if res.repo == nil {
		vm.state = Failed{Message: vm.opts.Formatter.Text(UnexpectedError)}
		return vm.quitIfSettled()
	}

	display := vm.opts.Formatter.Format(res.repo)
	vm.state = Loaded{Display: display}

	var cmds []tea.Cmd
	if vm.opts.Images != nil && !vm.opts.QuitWhenSettled {
		cmds = append(cmds, vm.opts.Images.Load(vm.ctx, display.AvatarURL, avatarTarget))
	}
	cmds = append(cmds, vm.quitIfSettled())
	return tea.Batch(cmds...)
}

func (vm *Model) quitIfSettled() tea.Cmd {
	if vm.opts.QuitWhenSettled {
		vm.Stop()
		return tea.Quit
	}
	return nil
}

// errorMessage picks the text shown for a failed lookup: the API's own
// message when there is one, otherwise the error text, otherwise a generic
// fallback.
func (vm *Model) errorMessage(err error) string {
	if apiErr, ok := errutils.As[*gh.APIError](err); ok && apiErr.Message != "" {
		return apiErr.Message
	}
	if msg := strings.TrimSpace(err.Error()); msg != "" {
		return msg
	}
	return vm.opts.Formatter.Text(UnexpectedError)
}

func (vm *Model) View() string {
	var sb strings.Builder
	switch state := vm.state.(type) {
	case Loading:
		if vm.Stopped() {
			return ""
		}
		sb.WriteString(colors.ProgressStyle.Render(vm.spinner.View() + "Loading " + vm.login + "/" + vm.repoName + "..."))
	case Loaded:
		sb.WriteString(renderDisplay(state.Display))
	case Failed:
		sb.WriteString(colors.FailureStyle.Render(state.Message))
	}
	sb.WriteString("\n")
	if !vm.Stopped() {
		bindings := []key.Binding{keys.Quit}
		if _, ok := vm.state.(Loaded); ok {
			bindings = append([]key.Binding{keys.Open}, bindings...)
		}
		sb.WriteString(vm.help.ShortHelpView(bindings))
		sb.WriteString("\n")
	}
	return sb.String()
}

func renderDisplay(d Display) string {
	lastUpdate := d.LastUpdate
	if d.UpdatedAgo != "" {
		lastUpdate += colors.FaintStyle.Render(" (" + d.UpdatedAgo + ")")
	}
	avatarText := d.Avatar
	if avatarText == "" {
		avatarText = d.AvatarURL
	}
	rows := []string{
		colors.TitleStyle.Render(d.Name),
		colors.StarStyle.Render("★ " + d.Stars),
		"",
		d.Description,
		"",
		colors.LabelStyle.Render("Language") + d.Language,
		colors.LabelStyle.Render("Last update") + lastUpdate,
		colors.LabelStyle.Render("Owner") + avatarText,
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// ExitError makes a failed lookup exit non-zero. The message is already on
// screen.
func (vm *Model) ExitError() error {
	if _, ok := vm.state.(Failed); ok {
		return uiutils.ErrExitSilently{ExitCode: 1}
	}
	return nil
}
