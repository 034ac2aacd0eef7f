package browser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCommandUsesBrowserEnv(t *testing.T) {
	t.Setenv("BROWSER", "lynx")
	assert.Equal(t, []string{"lynx", "https://github.com/octocat/hello-world"}, Command("https://github.com/octocat/hello-world"))
}
