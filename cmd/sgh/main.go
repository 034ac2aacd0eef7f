package main

import (
	"fmt"
	"os"

	"emperror.dev/errors"
	"github.com/simplegithub/sgh/internal/config"
	"github.com/simplegithub/sgh/internal/utils/colors"
	"github.com/simplegithub/sgh/internal/utils/stringutils"
	"github.com/simplegithub/sgh/internal/utils/uiutils"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var rootFlags struct {
	Debug     bool
	Directory string
}

var RootCmd = &cobra.Command{
	Use:   "sgh",
	Short: "Search GitHub repositories and view their details",
	Args:  cobra.NoArgs,

	// Don't automatically print errors or usage information (we handle that ourselves).
	// Cobra still prints usage if you return cmd.Usage() from RunE.
	SilenceErrors: true,
	SilenceUsage:  true,

	// Don't show "completion" command in help menu
	CompletionOptions: cobra.CompletionOptions{
		HiddenDefaultCmd: true,
	},

	// Run setup before invoking any child commands.
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if rootFlags.Debug {
			logrus.SetLevel(logrus.DebugLevel)
			logrus.WithField("sgh_version", config.Version).Debug("enabled debug logging")
		}
		colors.SetupBackgroundColorTypeFromEnv()

		// Note: this only returns an error if config exists and it can't be
		// read/parsed. It doesn't return an error if no config file exists.
		didLoadConfig, err := config.Load(nil)
		if err != nil {
			return errors.Wrap(err, "failed to load configuration")
		}
		if didLoadConfig {
			logrus.Debug("loaded configuration")
		} else {
			logrus.Debug("no configuration found")
		}
		return nil
	},

	// With no subcommand, show the launcher.
	RunE: func(cmd *cobra.Command, args []string) error {
		return runLauncher(cmd.Context())
	},
}

func init() {
	RootCmd.PersistentFlags().BoolVar(
		&rootFlags.Debug, "debug", false,
		"enable verbose debug logging",
	)
	RootCmd.PersistentFlags().StringVarP(
		&rootFlags.Directory, "repo", "C", "",
		"directory of the git repository used to infer <owner>/<repo>",
	)
	RootCmd.AddCommand(
		authCmd,
		repoCmd,
		searchCmd,
		versionCmd,
	)
}

func main() {
	if err := RootCmd.Execute(); err != nil {
		var exitSilently uiutils.ErrExitSilently
		if errors.As(err, &exitSilently) {
			os.Exit(exitSilently.ExitCode)
		}

		// In debug mode, show more detailed information about the error
		// (including the stack trace).
		if rootFlags.Debug {
			stackTrace := fmt.Sprintf("%+v", err)
			_, _ = fmt.Fprintf(os.Stderr, "error: %s\n%s\n", err, stringutils.Indent(stackTrace, "\t"))
		} else {
			_, _ = fmt.Fprint(os.Stderr, uiutils.RenderError(err))
		}

		os.Exit(1)
	}
}
