package cli

import (
	"fmt"
	"io"

	"car-rental-system/internal/domain"
	"car-rental-system/internal/service"
	"car-rental-system/internal/utils"

	"github.com/spf13/cobra"
)

// NewDemoCommand creates the demo command.
func NewDemoCommand() *cobra.Command {
	var (
		customerID string
		vehicleID  string
		days       int
	)

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Run a sample rental against the demonstration fleet",
		Example: `  # Rent C001 to CUST001 for three days
  rentalctl demo

  # Pick another car
  rentalctl demo --vehicle C003 --days 5`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := GetConfig(cmd.Context())
			m := service.NewManager(service.OptionsFromConfig(cfg.Rental)...)
			if err := service.LoadSampleData(m); err != nil {
				return err
			}
			return runDemo(cmd.OutOrStdout(), m, customerID, vehicleID, days)
		},
	}

	cmd.Flags().StringVar(&customerID, "customer", "CUST001", "customer id")
	cmd.Flags().StringVar(&vehicleID, "vehicle", "C001", "vehicle id")
	cmd.Flags().IntVar(&days, "days", 3, "rental length in days")

	return cmd
}

func runDemo(w io.Writer, m *service.Manager, customerID, vehicleID string, days int) error {
	fmt.Fprintln(w, "=== Car Rental System Demo ===")

	fmt.Fprintln(w, "\nAvailable Cars:")
	printVehicles(w, m.AvailableVehicles())

	fmt.Fprintln(w, "\n--- Demo Rental ---")
	rental, err := m.RentVehicle(customerID, vehicleID, days)
	if err != nil {
		return fmt.Errorf("demo rental failed: %w", err)
	}
	fmt.Fprintf(w, "Rental created: %s\n", rental)

	fmt.Fprintln(w, "\nAvailable Cars After Rental:")
	printVehicles(w, m.AvailableVehicles())

	fmt.Fprintln(w, "\nRental System Summary:")
	printSummary(w, m)
	return nil
}

func printVehicles(w io.Writer, vehicles []*domain.Vehicle) {
	if len(vehicles) == 0 {
		fmt.Fprintln(w, "  No cars currently available")
		return
	}
	for _, v := range vehicles {
		fmt.Fprintf(w, "  %s\n", v)
	}
}

func printSummary(w io.Writer, m *service.Manager) {
	s := m.Summary()
	fmt.Fprintf(w, "  total_cars: %d\n", s.TotalVehicles)
	fmt.Fprintf(w, "  available_cars: %d\n", s.AvailableVehicles)
	fmt.Fprintf(w, "  rented_cars: %d\n", s.RentedVehicles())
	fmt.Fprintf(w, "  total_customers: %d\n", s.TotalCustomers)
	fmt.Fprintf(w, "  active_rentals: %d\n", s.ActiveRentals)
	fmt.Fprintf(w, "  completed_rentals: %d\n", s.CompletedRentals)
	fmt.Fprintf(w, "  total_revenue: %s\n", utils.FormatCurrency(s.TotalRevenue))
	u, err := m.Utilization()
	fmt.Fprintf(w, "  utilization: %s\n", utils.FormatUtilization(u, err))
}
