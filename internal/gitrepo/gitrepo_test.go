package gitrepo

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRemote(t *testing.T) {
	for _, tt := range []struct {
		url  string
		host string
		slug string
	}{
		{"https://github.com/octocat/hello-world.git", "github.com", "octocat/hello-world"},
		{"https://github.com/octocat/hello-world", "github.com", "octocat/hello-world"},
		{"git@github.com:octocat/hello-world.git", "github.com", "octocat/hello-world"},
		{"ssh://git@github.example.com/octocat/hello-world.git", "github.example.com", "octocat/hello-world"},
	} {
		t.Run(tt.url, func(t *testing.T) {
			r, err := ParseRemote("origin", tt.url)
			require.NoError(t, err)
			assert.Equal(t, tt.host, r.Host)
			assert.Equal(t, tt.slug, r.RepoSlug)
		})
	}

	_, err := ParseRemote("origin", "https://gitlab.com/group/subgroup/repo.git")
	assert.Error(t, err)
}

func addRemote(t *testing.T, repo *git.Repository, name string, url string) {
	t.Helper()
	_, err := repo.CreateRemote(&config.RemoteConfig{Name: name, URLs: []string{url}})
	require.NoError(t, err)
}

func TestDetectRemotePrefersOrigin(t *testing.T) {
	dir := t.TempDir()
	repo, err := git.PlainInit(dir, false)
	require.NoError(t, err)
	addRemote(t, repo, "aaa", "https://github.com/fork/hello-world.git")
	addRemote(t, repo, "origin", "git@github.com:octocat/hello-world.git")

	r, err := DetectRemote(dir)
	require.NoError(t, err)
	assert.Equal(t, "origin", r.Label)
	assert.Equal(t, "octocat/hello-world", r.RepoSlug)
}

func TestDetectRemoteFromSubdirectory(t *testing.T) {
	dir := t.TempDir()
	repo, err := git.PlainInit(dir, false)
	require.NoError(t, err)
	addRemote(t, repo, "upstream", "https://github.com/octocat/hello-world.git")
	addRemote(t, repo, "fork", "https://github.com/someone/hello-world.git")

	sub := filepath.Join(dir, "cmd", "tool")
	require.NoError(t, os.MkdirAll(sub, 0o755))

	r, err := DetectRemote(sub)
	require.NoError(t, err)
	assert.Equal(t, "fork", r.Label)
	assert.Equal(t, "someone/hello-world", r.RepoSlug)
}

func TestDetectRemoteNoRemotes(t *testing.T) {
	dir := t.TempDir()
	_, err := git.PlainInit(dir, false)
	require.NoError(t, err)

	_, err = DetectRemote(dir)
	require.ErrorIs(t, err, ErrNoRemote)
}

func TestDetectRemoteNotARepo(t *testing.T) {
	_, err := DetectRemote(t.TempDir())
	require.Error(t, err)
}

func TestIsGitHub(t *testing.T) {
	for _, tt := range []struct {
		url  string
		want bool
	}{
		{"https://github.com/octocat/hello-world.git", true},
		{"git@github.company.com:octocat/hello-world.git", true},
		{"https://git.example.com/octocat/hello-world.git", true},
		{"https://gitlab.com/octocat/hello-world.git", false},
		{"git@gitlab.company.com:octocat/hello-world.git", false},
		{"https://bitbucket.org/octocat/hello-world.git", false},
		{"git@bitbucket.org:octocat/hello-world.git", false},
		{"https://bitbucket.company.com/octocat/hello-world.git", false},
		{"https://codeberg.org/octocat/hello-world.git", false},
		{"git@git.sr.ht:octocat/hello-world", false},
	} {
		r, err := ParseRemote("origin", tt.url)
		require.NoError(t, err)
		assert.Equal(t, tt.want, r.IsGitHub(), tt.url)
	}
}
