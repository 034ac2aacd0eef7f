// Package gitrepo finds the GitHub repository a local checkout belongs to.
package gitrepo

import (
	"strings"

	"emperror.dev/errors"
	giturls "github.com/chainguard-dev/git-urls"
	"github.com/go-git/go-git/v5"
	"github.com/sirupsen/logrus"
)

var ErrNoRemote = errors.Sentinel("the repository has no remotes")

// Remote is a Git remote that points at a hosted repository.
type Remote struct {
	// Label is the name of the remote, typically "origin".
	Label string
	URL   string
	Host  string
	// RepoSlug is "<owner>/<repo>" (e.g., github.com/my-org/my-repo.git
	// becomes my-org/my-repo).
	RepoSlug string
}

// DetectRemote opens the Git repository containing dir and returns its
// "origin" remote, or the first remote in name order if there is no origin.
func DetectRemote(dir string) (*Remote, error) {
	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, errors.WrapIff(err, "failed to open git repository at %q", dir)
	}
	remotes, err := repo.Remotes()
	if err != nil {
		return nil, errors.Wrap(err, "failed to list git remotes")
	}
	if len(remotes) == 0 {
		return nil, ErrNoRemote
	}

	chosen := remotes[0].Config()
	for _, r := range remotes {
		cfg := r.Config()
		if cfg.Name == "origin" {
			chosen = cfg
			break
		}
		if cfg.Name < chosen.Name {
			chosen = cfg
		}
	}
	if len(chosen.URLs) == 0 {
		return nil, errors.Errorf("remote %q has no URL", chosen.Name)
	}
	logrus.WithFields(logrus.Fields{
		"remote": chosen.Name,
		"url":    chosen.URLs[0],
	}).Debug("detected git remote")
	return ParseRemote(chosen.Name, chosen.URLs[0])
}

// ParseRemote parses a remote URL in any form Git accepts (https, ssh,
// scp-like git@host:owner/repo).
func ParseRemote(label string, remoteURL string) (*Remote, error) {
	u, err := giturls.Parse(remoteURL)
	if err != nil {
		return nil, errors.WrapIff(err, "failed to parse remote url %q", remoteURL)
	}
	slug := strings.TrimSuffix(strings.Trim(u.Path, "/"), ".git")
	if strings.Count(slug, "/") != 1 {
		return nil, errors.Errorf("remote url %q does not point at an <owner>/<repo> repository", remoteURL)
	}
	return &Remote{
		Label:    label,
		URL:      remoteURL,
		Host:     u.Hostname(),
		RepoSlug: slug,
	}, nil
}

// Host name fragments of well-known hosting services that aren't GitHub.
var otherHosts = []string{
	"gitlab",
	"bitbucket",
	"codeberg.org",
	"gitea",
	"sr.ht",
	"dev.azure.com",
	"visualstudio.com",
	"sourceforge.net",
}

// IsGitHub makes a best guess whether the remote is hosted on GitHub
// (github.com or a GitHub Enterprise host). Hosts of other known services
// are rejected; unknown hosts are assumed to be GitHub Enterprise.
func (r *Remote) IsGitHub() bool {
	host := strings.ToLower(r.Host)
	if host == "github.com" || strings.HasSuffix(host, ".github.com") {
		return true
	}
	for _, other := range otherHosts {
		if strings.Contains(host, other) {
			return false
		}
	}
	return true
}
