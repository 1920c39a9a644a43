// Package report renders the state of a rental manager for people (text
// with tables) and for machines (JSON).
package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"time"

	"car-rental-system/internal/domain"
	"car-rental-system/internal/utils"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/shopspring/decimal"
)

// Source is the read side of the rental manager.
type Source interface {
	Summary() domain.Summary
	AvailableVehicles() []*domain.Vehicle
	ActiveRentals() []*domain.Rental
	Utilization() (decimal.Decimal, error)
}

// Report is a snapshot taken by Build.
type Report struct {
	GeneratedAt       time.Time         `json:"generated_at"`
	Summary           domain.Summary    `json:"summary"`
	Utilization       *decimal.Decimal  `json:"utilization"` // nil for an empty fleet
	AvailableVehicles []*domain.Vehicle `json:"available_vehicles"`
	ActiveRentals     []*domain.Rental  `json:"active_rentals"`
}

// Build snapshots src. Any utilization error other than an empty fleet is returned.
func Build(src Source, now time.Time) (*Report, error) {
	r := &Report{
		GeneratedAt:       now,
		Summary:           src.Summary(),
		AvailableVehicles: src.AvailableVehicles(),
		ActiveRentals:     src.ActiveRentals(),
	}
	u, err := src.Utilization()
	switch {
	case errors.Is(err, domain.ErrDivisionUndefined):
	case err != nil:
		return nil, err
	default:
		r.Utilization = &u
	}
	return r, nil
}

// UtilizationText is the utilization percentage, or N/A when undefined.
func (r *Report) UtilizationText() string {
	if r.Utilization == nil {
		return utils.FormatUtilization(decimal.Zero, domain.ErrDivisionUndefined)
	}
	return utils.FormatUtilization(*r.Utilization, nil)
}

// WriteText writes the human-readable report.
func WriteText(w io.Writer, r *Report) error {
	s := r.Summary
	lines := []string{
		"=== CAR RENTAL SYSTEM REPORT ===",
		"",
		"SUMMARY STATISTICS:",
		fmt.Sprintf("  Total Cars in Fleet: %d", s.TotalVehicles),
		fmt.Sprintf("  Available Cars: %d", s.AvailableVehicles),
		fmt.Sprintf("  Cars Currently Rented: %d", s.RentedVehicles()),
		fmt.Sprintf("  Total Customers: %d", s.TotalCustomers),
		fmt.Sprintf("  Active Rentals: %d", s.ActiveRentals),
		fmt.Sprintf("  Completed Rentals: %d", s.CompletedRentals),
		fmt.Sprintf("  Total Revenue: %s", utils.FormatCurrency(s.TotalRevenue)),
		fmt.Sprintf("  Fleet Utilization: %s", r.UtilizationText()),
		"",
		"AVAILABLE CARS:",
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}

	if len(r.AvailableVehicles) == 0 {
		fmt.Fprintln(w, "  No cars currently available")
	} else {
		VehicleTable(w, r.AvailableVehicles)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "ACTIVE RENTALS:")
	if len(r.ActiveRentals) == 0 {
		_, err := fmt.Fprintln(w, "  No active rentals")
		return err
	}
	RentalTable(w, r.ActiveRentals)
	return nil
}

// WriteJSON writes the report as indented JSON.
func WriteJSON(w io.Writer, r *Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}

// VehicleTable renders vehicles as a table.
func VehicleTable(w io.Writer, vehicles []*domain.Vehicle) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"ID", "Year", "Make", "Model", "Daily Rate", "Status"})
	for _, v := range vehicles {
		t.AppendRow(table.Row{v.ID, v.Year, v.Make, v.Model, utils.FormatCurrency(v.DailyRate), v.Status()})
	}
	t.Render()
}

// RentalTable renders rentals as a table.
func RentalTable(w io.Writer, rentals []*domain.Rental) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"ID", "Customer", "Vehicle", "Days", "Start", "End", "Total", "Status"})
	for _, r := range rentals {
		t.AppendRow(table.Row{
			r.ID,
			r.Customer.Name,
			r.Vehicle.Make + " " + r.Vehicle.Model,
			strconv.Itoa(r.Days),
			r.StartTime.Format(time.DateTime),
			r.EndTime.Format(time.DateTime),
			utils.FormatCurrency(r.TotalCost),
			r.Status(),
		})
	}
	t.Render()
}
