package main

import (
	"os"

	"github.com/spf13/cobra"

	"briefing/internal/interfaces/cli/migrate"
	"briefing/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "briefing",
		Short: "Briefing state and cross-channel request linking service",
		Long:  `Tracks per-channel briefing cursors, deduplicates surfaced items, and links related work across gmail, zendesk, gchat and sms.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
