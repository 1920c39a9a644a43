package cli

import (
	"fmt"
	"time"

	"car-rental-system/internal/report"

	"github.com/spf13/cobra"
)

// NewReportCommand creates the report command.
func NewReportCommand() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Print a fleet report",
		Long: `Print the fleet report for the rosters given by --vehicles and --customers,
or for the demonstration fleet when no files are given.`,
		Example: `  rentalctl report --vehicles data/vehicles.json --customers data/customers.csv
  rentalctl report --format json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := GetConfig(cmd.Context())
			m, err := newManager(cmd.Context(), cfg)
			if err != nil {
				return err
			}

			rep, err := report.Build(m, time.Now())
			if err != nil {
				return err
			}

			switch format {
			case "json":
				return report.WriteJSON(cmd.OutOrStdout(), rep)
			case "text", "":
				return report.WriteText(cmd.OutOrStdout(), rep)
			default:
				return fmt.Errorf("unknown format %q (want text or json)", format)
			}
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "text", "output format (text|json)")
	_ = cmd.RegisterFlagCompletionFunc("format", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{"text", "json"}, cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}
