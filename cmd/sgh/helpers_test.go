package main

import (
	"context"
	"testing"

	"github.com/simplegithub/sgh/internal/launcher"
	"github.com/simplegithub/sgh/internal/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withoutTerminal(t *testing.T) {
	t.Helper()
	saved, savedClient := isInteractive, cachedClient
	isInteractive = func() bool { return false }
	cachedClient = nil
	t.Cleanup(func() {
		isInteractive, cachedClient = saved, savedClient
	})
}

func TestLauncherWithoutTerminal(t *testing.T) {
	withoutTerminal(t)
	err := runLauncher(context.Background())
	require.ErrorIs(t, err, launcher.ErrNotInteractive)
}

func TestSearchWithoutTerminalNeedsQuery(t *testing.T) {
	withoutTerminal(t)
	for _, query := range []string{"", "   "} {
		err := runSearch(context.Background(), query)
		require.ErrorIs(t, err, search.ErrQueryRequired)
	}
	assert.Nil(t, cachedClient)
}
