package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "portal-api",
		Short: "Property portal API server",
		// serve is the default when no subcommand is given.
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context())
		},
		SilenceUsage: true,
	}
	rootCmd.AddCommand(serveCmd(), migrateCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
