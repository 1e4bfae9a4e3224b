package main

import (
	"github.com/lerenn/adogh/cmd/adogh/internal/cli"
	"github.com/lerenn/adogh/pkg/badge"
	"github.com/spf13/cobra"
)

func createBadgeCmd() *cobra.Command {
	var tabID int

	badgeCmd := &cobra.Command{
		Use:   "badge <url> [--tab <id>]",
		Short: "Show the badge for a URL",
		Long: `Show the badge the extension displays when a tab navigates to the URL.

Examples:
  adogh badge https://dev.azure.com/acme/ProjA/_git/RepoA
  adogh badge https://github.com/acme`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := cli.NewRedirector(cli.RedirectorOpts{
				BadgeDisplay: badge.NewStyledDisplay(cmd.OutOrStdout()),
			})
			if err != nil {
				return err
			}

			r.Badge(badge.NavigationEvent{TabID: tabID, URL: args[0], Kind: badge.TabUpdated})
			return nil
		},
	}

	badgeCmd.Flags().IntVar(&tabID, "tab", 0, "Tab identifier")

	return badgeCmd
}
