package main

import (
	"context"
	"os"
	"strings"
	"time"

	"emperror.dev/errors"
	"github.com/simplegithub/sgh/internal/avatar"
	"github.com/simplegithub/sgh/internal/config"
	"github.com/simplegithub/sgh/internal/gh"
	"github.com/simplegithub/sgh/internal/gitrepo"
	"github.com/simplegithub/sgh/internal/launcher"
	"github.com/simplegithub/sgh/internal/repoview"
	"github.com/simplegithub/sgh/internal/search"
	"github.com/simplegithub/sgh/internal/utils/logutils"
	"github.com/simplegithub/sgh/internal/utils/uiutils"
	"github.com/sirupsen/logrus"
)

var (
	cachedClient *gh.Client
	// isInteractive is replaced in tests.
	isInteractive = uiutils.IsInteractive
)

func getGitHubClient() (*gh.Client, error) {
	if cachedClient != nil {
		return cachedClient, nil
	}
	logrus.WithFields(logrus.Fields{
		"api_url": config.Sgh.GitHub.ApiUrl,
		"token":   logutils.Redact(config.Sgh.GitHub.Token),
	}).Debug("creating GitHub client")
	client, err := gh.NewClient(config.Sgh.GitHub.Token, gh.WithAPIBaseURL(config.Sgh.GitHub.ApiUrl))
	if err != nil {
		return nil, err
	}
	cachedClient = client
	return client, nil
}

func displayLocation() *time.Location {
	if config.Sgh.Display.Timezone == "" {
		return time.Local
	}
	loc, err := time.LoadLocation(config.Sgh.Display.Timezone)
	if err != nil {
		logrus.WithError(err).Warnf("unknown display.timezone %q, using the local time zone", config.Sgh.Display.Timezone)
		return time.Local
	}
	return loc
}

// inferSlug returns "<owner>/<repo>" of the git repository the command runs
// in (or the one given by --repo).
func inferSlug() (string, error) {
	dir := rootFlags.Directory
	if dir == "" {
		var err error
		dir, err = os.Getwd()
		if err != nil {
			return "", errors.Wrap(err, "failed to determine working directory")
		}
	}
	remote, err := gitrepo.DetectRemote(dir)
	if err != nil {
		return "", errors.WrapIf(err, "no repository given and none could be inferred from the current directory")
	}
	if !remote.IsGitHub() {
		return "", errors.Errorf("remote %q (%s) is not a GitHub repository", remote.Label, remote.URL)
	}
	return remote.RepoSlug, nil
}

func runLauncher(ctx context.Context) error {
	if !isInteractive() {
		return launcher.ErrNotInteractive
	}
	vm := launcher.New()
	if err := uiutils.RunBubbleTea(ctx, vm); err != nil {
		return err
	}
	if !vm.Selected() {
		return nil
	}
	return runSearch(ctx, "")
}

func runSearch(ctx context.Context, query string) error {
	interactive := isInteractive()
	if !interactive && strings.TrimSpace(query) == "" {
		return search.ErrQueryRequired
	}
	client, err := getGitHubClient()
	if err != nil {
		return err
	}
	if !interactive {
		return search.Print(ctx, os.Stdout, client, query, config.Sgh.Search.Limit)
	}
	vm := search.New(ctx, client, query, config.Sgh.Search.Limit)
	if err := uiutils.RunBubbleTea(ctx, vm); err != nil {
		return err
	}
	picked, ok := vm.Chosen()
	if !ok {
		return nil
	}
	return runRepoView(ctx, picked.Owner.Login, picked.Name)
}

func runRepoView(ctx context.Context, login string, repoName string) error {
	if err := repoview.Validate(login, repoName); err != nil {
		return err
	}
	client, err := getGitHubClient()
	if err != nil {
		return err
	}
	vm, err := repoview.New(client, login, repoName, repoview.Options{
		Context:         ctx,
		Formatter:       repoview.NewFormatter(config.Sgh.Display.Locale, displayLocation()),
		Images:          avatar.NewHTTPLoader(),
		QuitWhenSettled: !isInteractive(),
	})
	if err != nil {
		return err
	}
	defer vm.Stop()
	return uiutils.RunBubbleTea(ctx, vm)
}
