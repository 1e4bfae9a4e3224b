package main

import (
	"fmt"
	"log"

	"github.com/lerenn/adogh/cmd/adogh/internal/cli"
	"github.com/lerenn/adogh/pkg/browser"
	"github.com/lerenn/adogh/pkg/redirector"
	"github.com/spf13/cobra"
)

func createOpenCmd() *cobra.Command {
	var opts redirector.RedirectOpts

	openCmd := &cobra.Command{
		Use:   "open <ado-url> [--dry-run] [--verify]",
		Short: "Open the GitHub page for an Azure DevOps URL",
		Long: `Convert an Azure DevOps URL and open the result in the default browser.

Examples:
  adogh open https://dev.azure.com/acme/ProjA/_git/RepoA
  adogh open https://dev.azure.com/acme/ProjA/_git/RepoA --dry-run
  adogh open https://dev.azure.com/acme/ProjA/_git/RepoA/pullrequest/42 --verify`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := cli.NewRedirector(cli.RedirectorOpts{})
			if err != nil {
				return err
			}

			githubURL, err := r.Redirect(cmd.Context(), args[0], opts)
			if err != nil {
				return fmt.Errorf("failed to redirect: %w", err)
			}

			if opts.DryRun {
				return browser.NewPrintOpener(cmd.OutOrStdout()).Open(githubURL)
			}

			// Only log success message in verbose mode
			if cli.Verbose {
				log.Printf("Opened %s", githubURL)
			}
			return nil
		},
	}

	openCmd.Flags().BoolVar(&opts.DryRun, "dry-run", false, "Print the GitHub URL instead of opening it")
	openCmd.Flags().BoolVar(&opts.Verify, "verify", false, "Check the GitHub repository exists before opening it")

	return openCmd
}
