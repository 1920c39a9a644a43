package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewValidateCommand creates the validate command.
func NewValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check roster files record by record",
		Long: `Load the vehicles JSON and customers CSV files and report the first invalid
record in each. Exits non-zero when either file fails.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := GetConfig(cmd.Context())
			store, err := fileStore(cfg)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			var failed int
			vehicles, err := store.LoadVehicles(cmd.Context())
			if err != nil {
				failed++
				_, _ = fmt.Fprintf(out, "FAIL %s: %v\n", cfg.Roster.VehiclesFile, err)
			} else {
				_, _ = fmt.Fprintf(out, "OK   %s: %d vehicles\n", cfg.Roster.VehiclesFile, len(vehicles))
			}

			customers, err := store.LoadCustomers(cmd.Context())
			if err != nil {
				failed++
				_, _ = fmt.Fprintf(out, "FAIL %s: %v\n", cfg.Roster.CustomersFile, err)
			} else {
				_, _ = fmt.Fprintf(out, "OK   %s: %d customers\n", cfg.Roster.CustomersFile, len(customers))
			}

			if failed > 0 {
				return fmt.Errorf("%d roster file(s) invalid", failed)
			}
			return nil
		},
	}
}
