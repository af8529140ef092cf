package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"iris/internal/application"
	"iris/internal/application/commands"
	"iris/internal/domain"
	"iris/internal/ports"
)

var (
	computeJSON      bool
	computeNoHistory bool
)

type computeOutput struct {
	Body        string  `json:"body"`
	Start       string  `json:"start"`
	End         string  `json:"end"`
	DistanceKm  float64 `json:"distance_km"`
	VelocityKmS float64 `json:"velocity_km_s"`
	OnEarth     bool    `json:"on_earth"`
}

var computeCmd = &cobra.Command{
	Use:   "compute <body> <start> <end>",
	Short: "Compute distance and radial velocity of a planet",
	Long: `Compute the Earth distance of a planet at the end time and the average
rate at which that distance changed since the start time.

A positive velocity means the planet is moving away from Earth.

Examples:
  iris-cli compute mars "2024-01-01 00:00:00" "2024-01-02 00:00:00"
  iris-cli compute Venus 2024-03-01 12:00:00 2024-03-01 18:00:00
  iris-cli compute jupiter "2024-01-01 00:00:00" "2024-06-01 00:00:00" --json`,
	Args: computeArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		body, start, end := splitComputeArgs(args)

		var history ports.HistoryRepository
		if !computeNoHistory {
			history = components.History
		}

		report, err := commands.NewComputeCommand(components.Engine, history, body, start, end).
			WithLogger(logger).
			Execute(context.Background())
		if err != nil {
			return err
		}

		if computeJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(computeOutput{
				Body:        report.Body.String(),
				Start:       domain.FormatTimestamp(report.Start),
				End:         domain.FormatTimestamp(report.End),
				DistanceKm:  report.Result.DistanceKm,
				VelocityKmS: report.Result.VelocityKmS,
				OnEarth:     report.OnEarth,
			})
		}

		if report.OnEarth {
			fmt.Println(application.EarthMessage)
			return nil
		}
		fmt.Println(application.FormatResult(report.Result))
		return nil
	},
}

// computeArgs accepts quoted times (3 args) or unquoted date and clock
// pairs (5 args).
func computeArgs(cmd *cobra.Command, args []string) error {
	if len(args) != 3 && len(args) != 5 {
		return fmt.Errorf("compute takes a body and two times, got %d arguments", len(args))
	}
	return nil
}

func splitComputeArgs(args []string) (body, start, end string) {
	if len(args) == 5 {
		return args[0], args[1] + " " + args[2], args[3] + " " + args[4]
	}
	return args[0], args[1], args[2]
}

func init() {
	computeCmd.Flags().BoolVar(&computeJSON, "json", false, "print the result as JSON")
	computeCmd.Flags().BoolVar(&computeNoHistory, "no-history", false, "do not record this calculation")
	rootCmd.AddCommand(computeCmd)
}
