package main

import (
	"fmt"
	"os"

	"github.com/simplegithub/sgh/internal/utils/colors"
	"github.com/simplegithub/sgh/internal/utils/uiutils"
	"github.com/spf13/cobra"
)

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Manage authentication",
}

var authStatusCmd = &cobra.Command{
	Use:          "status",
	Short:        "check auth status",
	SilenceUsage: true,
	Args:         cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := getGitHubClient()
		if err != nil {
			return err
		}

		viewer, err := client.Viewer(cmd.Context())
		if err != nil {
			return err
		}

		if viewer.Login == "" {
			_, _ = fmt.Fprint(
				os.Stderr,
				colors.Failure(
					"You are not logged in. Please verify that your API token is correct.\n",
				),
			)
			return uiutils.ErrExitSilently{ExitCode: 1}
		}

		_, _ = fmt.Fprint(os.Stderr, colors.Success("✓ "), "Logged in as ", colors.UserInput(viewer.Login), ".\n")
		return nil
	},
}

func init() {
	authCmd.AddCommand(authStatusCmd)
}
