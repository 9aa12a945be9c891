package main

import (
	"os"

	"github.com/spf13/cobra"

	"certhub/internal/interfaces/cli/migrate"
	"certhub/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "certhub",
		Short: "Certhub - certificate request lifecycle service",
		Long:  `Certhub manages certificate requests from submission through approval, rendering, delivery, and public verification.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
