package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/lerenn/adogh/cmd/adogh/internal/cli"
	"github.com/lerenn/adogh/pkg/config"
	"github.com/lerenn/adogh/pkg/prompt"
	"github.com/lerenn/adogh/pkg/redirect"
	"github.com/spf13/cobra"
)

// initOpts contains the values given on the command line for init.
type initOpts struct {
	ADOOrg            string
	GitHubOrg         string
	PullRequestTarget string
	Verify            bool
	VerifySet         bool
}

var pullRequestTargetChoices = []prompt.Choice{
	{Value: string(redirect.PullRequestTargetPulls), Description: "pull request list"},
	{Value: string(redirect.PullRequestTargetClosed), Description: "closed pull requests"},
}

func createInitCmd() *cobra.Command {
	var opts initOpts

	initCmd := &cobra.Command{
		Use:   "init [--ado-org <org>] [--github-org <org>] [--pr-target pulls|closed] [--verify]",
		Short: "Configure the organization mapping",
		Long: `Save the Azure DevOps and GitHub organizations used for redirects.

Missing values are asked for interactively, with the current settings as defaults.

Examples:
  adogh init
  adogh init --ado-org acme --github-org acme-gh
  adogh init --ado-org acme --github-org acme-gh --pr-target closed`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts.VerifySet = cmd.Flags().Changed("verify")
			deps := cli.NewDependencies()
			return runInit(deps.Config, deps.Prompt, opts, cmd.OutOrStdout())
		},
	}

	initCmd.Flags().StringVar(&opts.ADOOrg, "ado-org", "", "Azure DevOps organization")
	initCmd.Flags().StringVar(&opts.GitHubOrg, "github-org", "", "GitHub organization")
	initCmd.Flags().StringVar(&opts.PullRequestTarget, "pr-target", "",
		"GitHub page for pull request URLs (pulls or closed)")
	initCmd.Flags().BoolVar(&opts.Verify, "verify", false, "Verify GitHub repositories exist before opening them")

	return initCmd
}

// runInit merges flags, prompts and current settings, then saves the result.
func runInit(manager config.Manager, p prompt.Prompter, opts initOpts, out io.Writer) error {
	current, err := manager.GetConfig()
	if errors.Is(err, config.ErrConfigNotInitialized) {
		current = manager.DefaultConfig()
	} else if err != nil {
		return err
	}

	interactive := opts.ADOOrg == "" || opts.GitHubOrg == ""
	cfg := current

	if cfg.ADOOrg, err = valueOrPrompt(p, opts.ADOOrg, "Azure DevOps organization", current.ADOOrg); err != nil {
		return err
	}
	if cfg.GitHubOrg, err = valueOrPrompt(p, opts.GitHubOrg, "GitHub organization", current.GitHubOrg); err != nil {
		return err
	}

	switch {
	case opts.PullRequestTarget != "":
		cfg.PullRequestTarget = opts.PullRequestTarget
	case interactive:
		choice, err := p.PromptSelect("Open pull request URLs on", pullRequestTargetChoices)
		if err != nil {
			return err
		}
		cfg.PullRequestTarget = choice.Value
	}

	switch {
	case opts.VerifySet:
		cfg.VerifyTarget = opts.Verify
	case interactive:
		if cfg.VerifyTarget, err = p.PromptForConfirmation(
			"Verify GitHub repositories exist before opening them?", current.VerifyTarget); err != nil {
			return err
		}
	}

	if err := manager.SaveConfig(cfg); err != nil {
		return err
	}

	if !cli.Quiet {
		fmt.Fprintf(out, "Settings saved to %s\n", manager.GetConfigPath())
	}
	return nil
}

func valueOrPrompt(p prompt.Prompter, value, label, current string) (string, error) {
	if value != "" {
		return value, nil
	}
	return p.PromptForOrganization(label, current)
}
