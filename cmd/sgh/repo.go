package main

import (
	"strings"

	"github.com/simplegithub/sgh/internal/gh"
	"github.com/spf13/cobra"
)

var repoCmd = &cobra.Command{
	Use:   "repo",
	Short: "Work with GitHub repositories",
}

var repoViewCmd = &cobra.Command{
	Use:   "view [<owner>/<repo>]",
	Short: "Show the details of a repository",
	Long: strings.TrimSpace(`
Show the name, description, language, star count, last update and owner of a
repository.

If no repository is given, it's inferred from the "origin" remote of the Git
repository in the current directory (or the one given by --repo).
`),
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var slug string
		if len(args) == 1 {
			slug = args[0]
		} else {
			var err error
			slug, err = inferSlug()
			if err != nil {
				return err
			}
		}
		owner, name, err := gh.ParseSlug(slug)
		if err != nil {
			return err
		}
		return runRepoView(cmd.Context(), owner, name)
	},
}

func init() {
	repoCmd.AddCommand(repoViewCmd)
}
