// Package main provides the command-line interface for adogh.
package main

import (
	"log"

	"github.com/lerenn/adogh/cmd/adogh/internal/cli"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "adogh",
		Short: "adogh - Azure DevOps to GitHub redirector",
		Long: `Detect Azure DevOps Git repository URLs and redirect them to the matching ` +
			`GitHub repository using a configured organization mapping.`,
		SilenceUsage: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return cli.LoadEnvFile()
		},
	}

	// Add global flags
	rootCmd.PersistentFlags().BoolVarP(&cli.Quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVarP(&cli.Verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVarP(&cli.ConfigPath, "config", "c", "", "Specify a custom config file path")

	// Add subcommands
	rootCmd.AddCommand(
		createInitCmd(),
		createConfigCmd(),
		createConvertCmd(),
		createOpenCmd(),
		createCheckCmd(),
		createBadgeCmd(),
		createNativeHostCmd(),
	)

	return rootCmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Fatal(err)
	}
}
