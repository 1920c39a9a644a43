package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"car-rental-system/internal/logger"
	"car-rental-system/internal/service"

	"github.com/spf13/cobra"
)

// NewSeedCommand creates the seed command.
func NewSeedCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Write the sample fleet and customers to roster files",
		Example: `  rentalctl seed --vehicles data/vehicles.json --customers data/customers.csv`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := GetConfig(cmd.Context())
			store, err := fileStore(cfg)
			if err != nil {
				return err
			}
			for _, path := range []string{cfg.Roster.VehiclesFile, cfg.Roster.CustomersFile} {
				if dir := filepath.Dir(path); dir != "." {
					if err := os.MkdirAll(dir, 0750); err != nil {
						return fmt.Errorf("failed to create directory: %w", err)
					}
				}
			}

			m := service.NewManager()
			if err := service.LoadSampleData(m); err != nil {
				return err
			}
			if err := service.SaveRoster(cmd.Context(), store, m); err != nil {
				return err
			}

			s := m.Summary()
			logger.Info("Seeded roster files", "vehicles", cfg.Roster.VehiclesFile, "customers", cfg.Roster.CustomersFile)
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d vehicles to %s\n", s.TotalVehicles, cfg.Roster.VehiclesFile)
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d customers to %s\n", s.TotalCustomers, cfg.Roster.CustomersFile)
			return nil
		},
	}
}
