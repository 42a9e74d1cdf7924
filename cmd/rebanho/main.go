package main

import (
	"os"

	"github.com/spf13/cobra"

	"rebanho/internal/interfaces/cli/migrate"
	"rebanho/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "rebanho",
		Short: "Rebanho - multi-tenant agribusiness SaaS backend",
		Long:  `Rebanho is the backend service for a multi-tenant veterinary/agribusiness SaaS: payment webhook ingestion, subscription state, tenant and role resolution, and team invitations.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
