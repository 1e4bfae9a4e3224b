package main

import (
	"fmt"
	"io"
	"os"

	"github.com/lerenn/adogh/cmd/adogh/internal/cli"
	"github.com/lerenn/adogh/pkg/redirector"
	"github.com/lerenn/adogh/pkg/repostate"
	"github.com/spf13/cobra"
)

// checkOpts selects where the page under check comes from.
type checkOpts struct {
	File string
	Text string
}

func createCheckCmd() *cobra.Command {
	var opts checkOpts

	checkCmd := &cobra.Command{
		Use:   "check [<ado-url>] [--file <page.html>] [--text <page-text>]",
		Short: "Report whether an Azure DevOps repository is disabled",
		Long: `Detect the disabled repository notice on an Azure DevOps repository page.

The page is fetched from the URL (using the ADO_TOKEN personal access token when set),
read from a saved HTML file, or given as text.

Examples:
  adogh check https://dev.azure.com/acme/ProjA/_git/RepoA
  adogh check --file repo.html
  adogh check --text "This repository has been disabled"`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := cli.NewRedirector(cli.RedirectorOpts{})
			if err != nil {
				return err
			}

			url := ""
			if len(args) > 0 {
				url = args[0]
			}

			status, err := runCheck(cmd, r, url, opts)
			if err != nil {
				return err
			}

			printStatus(cmd.OutOrStdout(), status)
			return nil
		},
	}

	checkCmd.Flags().StringVarP(&opts.File, "file", "f", "", "Check a saved HTML page")
	checkCmd.Flags().StringVarP(&opts.Text, "text", "t", "", "Check page text")

	return checkCmd
}

func runCheck(cmd *cobra.Command, r redirector.Redirector, url string, opts checkOpts) (repostate.Status, error) {
	switch {
	case opts.Text != "":
		return r.CheckPage(opts.Text), nil

	case opts.File != "":
		text, err := readPageText(opts.File)
		if err != nil {
			return repostate.Status{}, err
		}
		return r.CheckPage(text), nil

	case url != "":
		return r.CheckRepoStatus(cmd.Context(), url)
	}

	return repostate.Status{}, redirector.ErrNothingToCheck
}

func readPageText(path string) (string, error) {
	var in io.Reader = os.Stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return "", fmt.Errorf("failed to open page: %w", err)
		}
		defer func() { _ = f.Close() }()
		in = f
	}

	return repostate.VisibleText(in)
}

func printStatus(out io.Writer, status repostate.Status) {
	if status.IsDisabled {
		fmt.Fprintln(out, "disabled")
		return
	}
	fmt.Fprintln(out, "active")
}
