package main

import (
	"flight-sun-service/internal/config"
	"flight-sun-service/internal/domain"
	"flight-sun-service/internal/platform/logger"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newAirportsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "airports",
		Short: "List the airports in the registry",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			a, err := newApp(cmd.Context(), cfg, logger.NewWithWriter(os.Stderr, cfg.LogLevel))
			if err != nil {
				return err
			}
			defer a.close()

			airports, err := a.airports.ListAirports(cmd.Context())
			if err != nil {
				return err
			}
			return writeAirports(cmd.OutOrStdout(), airports)
		},
	}
}

func writeAirports(w io.Writer, airports []*domain.Airport) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "CODE\tNAME\tCITY\tCOUNTRY\tLAT\tLON")
	for _, a := range airports {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%.4f\t%.4f\n",
			a.Code, a.Name, a.City, a.Country, a.Location.Latitude, a.Location.Longitude)
	}
	return tw.Flush()
}
