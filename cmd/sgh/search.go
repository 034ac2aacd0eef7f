package main

import (
	"strings"

	"github.com/simplegithub/sgh/internal/config"
	"github.com/spf13/cobra"
)

var searchFlags struct {
	Limit int
}

var searchCmd = &cobra.Command{
	Use:   "search [<query>...]",
	Short: "Search repositories and view one of them",
	Long: strings.TrimSpace(`
Search GitHub repositories using GitHub's search syntax
(e.g., "sgh search bubbletea language:go") and pick one to view.

Without a query, you're asked for one.
`),
	RunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Flags().Changed("limit") {
			config.Sgh.Search.Limit = searchFlags.Limit
		}
		return runSearch(cmd.Context(), strings.Join(args, " "))
	},
}

func init() {
	searchCmd.Flags().IntVarP(
		&searchFlags.Limit, "limit", "L", 20,
		"maximum number of repositories to list (at most 100)",
	)
}
