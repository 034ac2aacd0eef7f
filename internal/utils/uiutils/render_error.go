package uiutils

import (
	"fmt"

	"emperror.dev/errors"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/styles"
	"github.com/charmbracelet/lipgloss"
	"github.com/simplegithub/sgh/internal/gh"
)

const noGitHubToken = `# ERROR: No GitHub Token

` + "`sgh`" + ` needs a GitHub API token to talk to GitHub. There are two ways to provide a token:

1. Set the ` + "`SGH_GITHUB_TOKEN`" + ` (or ` + "`GITHUB_TOKEN`" + `) environment variable.
2. Create a Personal Access Token on GitHub and set ` + "`github.token`" + ` in ` + "`~/.config/sgh/config.yaml`" + `.

We couldn't find a token in the environment nor in the config. Please set up the token and try again.
`

const unauthorized = `# ERROR: GitHub rejected the token

The configured GitHub token was not accepted (HTTP 401). It may have expired or been revoked.
Run ` + "`sgh auth status`" + ` after updating the token to check it.
`

func RenderError(err error) string {
	var style string
	if lipgloss.HasDarkBackground() {
		style = styles.DarkStyle
	} else {
		style = styles.LightStyle
	}
	var markdownText string
	if errors.Is(err, gh.ErrNoGitHubToken) {
		markdownText = noGitHubToken
	} else if gh.IsHTTPUnauthorized(err) {
		markdownText = unauthorized
	}

	if markdownText != "" {
		if out, rerr := glamour.Render(markdownText, style); rerr == nil {
			return out
		}
		// If there's an error, fallback to the plaintext message.
	}
	return fmt.Sprintf("error: %s\n", err)
}
