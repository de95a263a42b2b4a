package main

import (
	"os"

	"github.com/spf13/cobra"

	"depot/internal/interfaces/cli/migrate"
	"depot/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "depot",
		Short: "Depot - repair depot backend",
		Long:  `Depot tracks repair units, pallet lifecycles, and location history for the repair floor.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
