package main

import (
	"fmt"

	"github.com/lerenn/adogh/cmd/adogh/internal/cli"
	"github.com/spf13/cobra"
)

func createConfigCmd() *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Configuration commands",
		Long:  `Commands for inspecting the adogh configuration.`,
	}

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Show the current settings",
		Long: `Show the stored settings with environment overrides applied.

Settings not saved yet are shown as "(not set)".`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			manager := cli.NewConfigManager()
			cfg, err := manager.GetConfigWithFallback()
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Config file: %s\n%s\n", manager.GetConfigPath(), cfg)
			return nil
		},
	}

	configCmd.AddCommand(showCmd)

	return configCmd
}
