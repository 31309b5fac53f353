package main

import (
	"os"

	"github.com/spf13/cobra"

	"fieldops/internal/interfaces/cli/migrate"
	"fieldops/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "fieldops",
		Short: "Fieldops - field service and workshop repair management",
		Long:  `Fieldops manages field service jobs and the workshop repair lifecycle, with built-in server and migration tools.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
