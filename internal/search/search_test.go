package search

import (
	"bytes"
	"context"
	"testing"
	"time"

	"emperror.dev/errors"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/simplegithub/sgh/internal/gh"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSearcher struct {
	results []gh.RepositorySearchResult
	err     error
	block   bool
	queries []string
	limits  []int
}

func (f *fakeSearcher) SearchRepositories(ctx context.Context, query string, limit int) ([]gh.RepositorySearchResult, error) {
	f.queries = append(f.queries, query)
	f.limits = append(f.limits, limit)
	if f.block {
		<-ctx.Done()
		return nil, ctx.Err()
	}
	return f.results, f.err
}

func result(nameWithOwner string, stars int) gh.RepositorySearchResult {
	var r gh.RepositorySearchResult
	r.NameWithOwner = nameWithOwner
	r.StargazerCount = stars
	return r
}

// runSearch runs the lookup command of a search and feeds its result back
// into the model.
func runSearch(t *testing.T, vm *Model, query string) tea.Cmd {
	t.Helper()
	msg := vm.beginSearch(query)()
	require.IsType(t, searchDone{}, msg)
	_, cmd := vm.Update(msg)
	return cmd
}

func TestSearchCommandUsesLimitAndQuery(t *testing.T) {
	searcher := &fakeSearcher{results: []gh.RepositorySearchResult{result("spf13/cobra", 1)}}
	vm := New(context.Background(), searcher, "", 7)

	msg := vm.beginSearch("cobra")()
	assert.Equal(t, []string{"cobra"}, searcher.queries)
	assert.Equal(t, []int{7}, searcher.limits)
	done := msg.(searchDone)
	assert.Equal(t, "cobra", done.query)
	assert.Len(t, done.results, 1)
}

func TestSearchAndChoose(t *testing.T) {
	searcher := &fakeSearcher{results: []gh.RepositorySearchResult{
		result("charmbracelet/bubbletea", 30000),
		result("charmbracelet/bubbles", 7000),
	}}
	vm := New(context.Background(), searcher, "bubbletea", 20)

	runSearch(t, vm, "bubbletea")
	require.Equal(t, phaseResults, vm.phase)
	assert.Contains(t, vm.View(), "charmbracelet/bubbletea")
	assert.Contains(t, vm.View(), "30,000")

	_, cmd := vm.Update(chosen{Result{searcher.results[1]}})
	assert.IsType(t, tea.QuitMsg{}, cmd())

	picked, ok := vm.Chosen()
	require.True(t, ok)
	assert.Equal(t, "charmbracelet/bubbles", picked.NameWithOwner)
	assert.NoError(t, vm.ExitError())
}

func TestSearchFromInput(t *testing.T) {
	searcher := &fakeSearcher{}
	vm := New(context.Background(), searcher, "", 20)
	vm.Init()
	require.Equal(t, phaseInput, vm.phase)

	// Empty queries are not submitted.
	_, cmd := vm.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd)
	assert.Equal(t, phaseInput, vm.phase)

	for _, r := range "cobra" {
		vm.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	_, cmd = vm.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.Equal(t, phaseSearching, vm.phase)
	assert.Equal(t, "cobra", vm.query)
}

func TestSearchNoResults(t *testing.T) {
	vm := New(context.Background(), &fakeSearcher{}, "zzzz", 20)
	cmd := runSearch(t, vm, "zzzz")
	assert.IsType(t, tea.QuitMsg{}, cmd())
	_, ok := vm.Chosen()
	assert.False(t, ok)
	assert.Contains(t, vm.View(), "No repositories matched zzzz.")
	assert.NoError(t, vm.ExitError())
}

func TestSearchError(t *testing.T) {
	vm := New(context.Background(), &fakeSearcher{err: errors.New("rate limit exceeded")}, "go", 20)
	runSearch(t, vm, "go")
	assert.EqualError(t, vm.ExitError(), "rate limit exceeded")
}

func TestCancelWhileSearching(t *testing.T) {
	searcher := &fakeSearcher{block: true}
	vm := New(context.Background(), searcher, "go", 20)
	search := vm.beginSearch("go")

	done := make(chan error, 1)
	go func() {
		done <- search().(searchDone).err
	}()

	_, cmd := vm.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.IsType(t, tea.QuitMsg{}, cmd())

	select {
	case err := <-done:
		require.ErrorIs(t, err, context.Canceled)
		_, cmd = vm.Update(searchDone{query: "go", err: err})
		assert.Nil(t, cmd)
	case <-time.After(5 * time.Second):
		t.Fatal("search was not cancelled")
	}
	assert.NoError(t, vm.ExitError())
	assert.Equal(t, "", vm.View())
}

func TestResultString(t *testing.T) {
	r := result("octocat/hello-world", 1234)
	r.Description = "first line\nsecond line"
	s := Result{r}.String()
	assert.Contains(t, s, "octocat/hello-world")
	assert.Contains(t, s, "1,234")
	assert.Contains(t, s, "first line")
	assert.NotContains(t, s, "second line")
}

func TestPrint(t *testing.T) {
	withLanguage := result("charmbracelet/bubbletea", 30000)
	withLanguage.PrimaryLanguage = &struct{ Name string }{Name: "Go"}
	withLanguage.Description = "A powerful little TUI framework\nmore"
	searcher := &fakeSearcher{results: []gh.RepositorySearchResult{
		withLanguage,
		result("someone/empty", 0),
	}}

	var buf bytes.Buffer
	require.NoError(t, Print(context.Background(), &buf, searcher, " bubbletea ", 5))
	assert.Equal(t,
		"charmbracelet/bubbletea\t30,000\tGo\tA powerful little TUI framework\n"+
			"someone/empty\t0\t-\t\n",
		buf.String(),
	)
	assert.Equal(t, []string{"bubbletea"}, searcher.queries)
	assert.Equal(t, []int{5}, searcher.limits)
}

func TestPrintNoResults(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Print(context.Background(), &buf, &fakeSearcher{}, "zzzz", 5))
	assert.Equal(t, "No repositories matched zzzz.\n", buf.String())
}

func TestPrintRequiresQuery(t *testing.T) {
	searcher := &fakeSearcher{}
	err := Print(context.Background(), &bytes.Buffer{}, searcher, "  ", 5)
	require.ErrorIs(t, err, ErrQueryRequired)
	assert.Empty(t, searcher.queries)
}

func TestPrintError(t *testing.T) {
	err := Print(context.Background(), &bytes.Buffer{}, &fakeSearcher{err: errors.New("rate limit exceeded")}, "go", 5)
	assert.EqualError(t, err, "rate limit exceeded")
}
