package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("SGH_GITHUB_TOKEN", "")
	t.Setenv("GITHUB_TOKEN", "")
	t.Setenv("HOME", t.TempDir())
	t.Setenv("SGH_HOME", "")

	cfg := `
github:
  token: from-file
  apiUrl: https://ghe.example.com/api/v3
display:
  locale: ko
  timezone: Asia/Seoul
search:
  limit: 5
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(cfg), 0o644))

	saved := Sgh
	t.Cleanup(func() { Sgh = saved })

	loaded, err := Load([]string{dir})
	require.NoError(t, err)
	require.True(t, loaded)
	require.Equal(t, "from-file", Sgh.GitHub.Token)
	require.Equal(t, "https://ghe.example.com/api/v3", Sgh.GitHub.ApiUrl)
	require.Equal(t, "ko", Sgh.Display.Locale)
	require.Equal(t, "Asia/Seoul", Sgh.Display.Timezone)
	require.Equal(t, 5, Sgh.Search.Limit)
}

func TestLoadEnvOverridesToken(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("SGH_HOME", "")
	t.Setenv("SGH_GITHUB_TOKEN", "")
	t.Setenv("GITHUB_TOKEN", "generic")

	saved := Sgh
	t.Cleanup(func() { Sgh = saved })

	loaded, err := Load([]string{t.TempDir()})
	require.NoError(t, err)
	require.False(t, loaded)
	require.Equal(t, "generic", Sgh.GitHub.Token)

	t.Setenv("SGH_GITHUB_TOKEN", "specific")
	_, err = Load(nil)
	require.NoError(t, err)
	require.Equal(t, "specific", Sgh.GitHub.Token)
}
