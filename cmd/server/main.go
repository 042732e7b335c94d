package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// main is the application composition root. Subcommands share the adapter
// wiring in app.go.
func main() {
	rootCmd := &cobra.Command{
		Use:           "server",
		Short:         "Sun-side seat recommendations for European flights",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(newServeCmd(), newCalculateCmd(), newAirportsCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
