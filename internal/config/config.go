package config

import (
	"os"
	"path/filepath"

	"emperror.dev/errors"
	"github.com/adrg/xdg"
	"github.com/spf13/viper"
)

type GitHub struct {
	Token string
	// ApiUrl is the REST API root. For GitHub Enterprise Server this is
	// usually "https://<host>/api/v3".
	ApiUrl string
}

type Display struct {
	// Locale selects the plural rules and translations used for star counts
	// (e.g., "en", "ko").
	Locale string
	// Timezone is an IANA zone name used to render timestamps. Empty means
	// the local zone.
	Timezone string
}

type Search struct {
	Limit int
}

var Sgh = struct {
	GitHub  GitHub
	Display Display
	Search  Search
}{
	GitHub: GitHub{
		ApiUrl: "https://api.github.com",
	},
	Display: Display{
		Locale: "en",
	},
	Search: Search{
		Limit: 20,
	},
}

// Load initializes the configuration values.
// It may optionally be called with a list of additional paths to check for the
// config file.
// Returns a boolean indicating whether or not a config file was loaded and an
// error if one occurred.
func Load(paths []string) (bool, error) {
	loaded, err := loadFromFile(paths)
	loadFromEnv()
	return loaded, err
}

func loadFromFile(paths []string) (bool, error) {
	config := viper.New()

	// Viper has support for various formats, so it supports json, toml, yaml,
	// and more (https://github.com/spf13/viper#reading-config-files).
	config.SetConfigName("config")

	config.AddConfigPath(filepath.Join(xdg.ConfigHome, "sgh"))
	config.AddConfigPath("$HOME/.config/sgh")
	config.AddConfigPath("$HOME/.sgh")
	config.AddConfigPath("$SGH_HOME")
	for _, path := range paths {
		config.AddConfigPath(path)
	}

	if err := config.ReadInConfig(); err != nil {
		if errors.As(err, &viper.ConfigFileNotFoundError{}) {
			return false, nil
		}
		return false, err
	}

	if err := config.Unmarshal(&Sgh); err != nil {
		return true, errors.Wrap(err, "failed to read sgh configs")
	}

	return true, nil
}

func loadFromEnv() {
	if githubToken := os.Getenv("SGH_GITHUB_TOKEN"); githubToken != "" {
		Sgh.GitHub.Token = githubToken
	} else if githubToken := os.Getenv("GITHUB_TOKEN"); githubToken != "" {
		Sgh.GitHub.Token = githubToken
	}
}
