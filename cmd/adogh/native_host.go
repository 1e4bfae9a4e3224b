package main

import (
	"io"
	"os"

	"github.com/lerenn/adogh/cmd/adogh/internal/cli"
	"github.com/lerenn/adogh/pkg/badge"
	"github.com/lerenn/adogh/pkg/message"
	"github.com/spf13/cobra"
)

func createNativeHostCmd() *cobra.Command {
	nativeHostCmd := &cobra.Command{
		Use:   "native-host",
		Short: "Serve browser native messaging on stdin and stdout",
		Long: `Answer extension messages (showBadge, checkRepoStatus, convertUrl, getSettings,
saveSettings) using the browser native messaging protocol.

The browser starts this command; it is not meant to be run by hand.`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			// Stdout carries frames, so badges are only returned in responses.
			r, err := cli.NewRedirector(cli.RedirectorOpts{
				BadgeDisplay: badge.NewWriterDisplay(io.Discard),
			})
			if err != nil {
				return err
			}

			host := message.NewHost(r, cli.NewLogger())
			return host.Serve(cmd.Context(), os.Stdin, os.Stdout)
		},
	}

	return nativeHostCmd
}
