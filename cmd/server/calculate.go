package main

import (
	"encoding/json"
	"flight-sun-service/internal/adapters/export"
	"flight-sun-service/internal/api/dto"
	"flight-sun-service/internal/config"
	"flight-sun-service/internal/domain"
	"flight-sun-service/internal/platform/logger"
	"flight-sun-service/internal/services"
	"fmt"
	"io"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
)

const (
	outputText    = "text"
	outputJSON    = "json"
	outputParquet = "parquet"
)

func newCalculateCmd() *cobra.Command {
	var (
		at     string
		output string
		file   string
	)

	cmd := &cobra.Command{
		Use:   "calculate DEPARTURE ARRIVAL",
		Short: "Recommend a seat side for one flight",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			departAt := time.Now().UTC().Truncate(time.Minute)
			if at != "" {
				parsed, err := dto.ParseTime(at)
				if err != nil {
					return err
				}
				departAt = parsed
			}

			cfg, err := config.Load()
			if err != nil {
				return err
			}

			a, err := newApp(cmd.Context(), cfg, logger.NewWithWriter(os.Stderr, cfg.LogLevel))
			if err != nil {
				return err
			}
			defer a.close()

			plan, err := a.planner.PlanFlight(cmd.Context(), services.PlanFlightRequest{
				DepartureCode: args[0],
				ArrivalCode:   args[1],
				DepartAt:      departAt,
			})
			if err != nil {
				return err
			}

			if file != "" {
				return writePlanFile(file, plan, output)
			}
			return writePlan(cmd.OutOrStdout(), plan, output)
		},
	}

	cmd.Flags().StringVar(&at, "at", "", "departure time, ISO-8601 (default now, UTC)")
	cmd.Flags().StringVarP(&output, "output", "o", outputText, "output format (text, json, parquet)")
	cmd.Flags().StringVarP(&file, "file", "f", "", "write output to file instead of stdout")

	return cmd
}

func writePlan(w io.Writer, plan *domain.FlightPlan, output string) error {
	switch output {
	case outputText:
		return writeText(w, plan)
	case outputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(dto.FromFlightPlan(plan))
	case outputParquet:
		return export.WriteSamples(w, plan.Exposure)
	default:
		return fmt.Errorf("unknown output format %q (want text, json or parquet)", output)
	}
}

// writePlanFile writes the plan to path and reports the close error, which
// is where buffered writes to the file surface.
func writePlanFile(path string, plan *domain.FlightPlan, output string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("calculate: create %q: %w", path, err)
	}

	if err := writePlan(f, plan, output); err != nil {
		_ = f.Close()
		return fmt.Errorf("calculate: write %q: %w", path, err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("calculate: close %q: %w", path, err)
	}

	return nil
}

func writeText(w io.Writer, plan *domain.FlightPlan) error {
	r := plan.Exposure
	p := r.Profile

	fmt.Fprintf(w, "%s -> %s  departs %s  arrives %s\n",
		p.Departure.Code, p.Arrival.Code,
		p.DepartureTime.Format("2006-01-02 15:04"), p.ArrivalTime().Format("15:04"))
	fmt.Fprintf(w, "distance %.0f km, heading %.1f deg, %d min, %s solar model\n",
		p.DistanceKm, p.HeadingDegrees, p.DurationMinutes, r.SolarModel)
	fmt.Fprintf(w, "sun on left %.1f%%, right %.1f%%\n", r.LeftPercentage, r.RightPercentage)
	fmt.Fprintf(w, "recommended seat: %s (%.1f%% sun exposure)\n\n", r.RecommendedSide, r.ExposurePercentage)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "TIME\tPROGRESS\tAZIMUTH\tELEVATION\tSIDE")
	for _, s := range r.Samples {
		side := "-"
		if sd, lit := s.SideFor(p.HeadingDegrees); lit {
			side = string(sd)
		}
		fmt.Fprintf(tw, "%s\t%.0f%%\t%.1f\t%.1f\t%s\n",
			s.Time.Format("15:04"), s.Progress*100, s.Azimuth, s.Elevation, side)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	for _, d := range []domain.DaylightWindow{plan.DepartureDaylight, plan.ArrivalDaylight} {
		if d.AirportCode == "" {
			continue
		}
		if d.Sunrise.IsZero() || d.Sunset.IsZero() {
			fmt.Fprintf(w, "%s: no sunrise or sunset\n", d.AirportCode)
			continue
		}
		fmt.Fprintf(w, "%s: sunrise %s, sunset %s UTC\n",
			d.AirportCode, d.Sunrise.Format("15:04"), d.Sunset.Format("15:04"))
	}

	return nil
}
