package main

import (
	"fmt"

	"github.com/lerenn/adogh/cmd/adogh/internal/cli"
	"github.com/spf13/cobra"
)

func createConvertCmd() *cobra.Command {
	convertCmd := &cobra.Command{
		Use:   "convert <ado-url>",
		Short: "Print the GitHub URL for an Azure DevOps URL",
		Long: `Convert an Azure DevOps Git repository or pull request URL to its GitHub counterpart.

Examples:
  adogh convert https://dev.azure.com/acme/ProjA/_git/RepoA
  adogh convert https://dev.azure.com/acme/ProjA/_git/RepoA/pullrequest/42`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := cli.NewRedirector(cli.RedirectorOpts{})
			if err != nil {
				return err
			}

			githubURL, err := r.Convert(args[0])
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), githubURL)
			return nil
		},
	}

	return convertCmd
}
