package domain

import "github.com/shopspring/decimal"

// Summary is a point-in-time view of the fleet and rental book.
type Summary struct {
	TotalVehicles     int             `json:"total_vehicles"`
	AvailableVehicles int             `json:"available_vehicles"`
	TotalCustomers    int             `json:"total_customers"`
	ActiveRentals     int             `json:"active_rentals"`
	CompletedRentals  int             `json:"completed_rentals"`
	TotalRevenue      decimal.Decimal `json:"total_revenue"` // returned rentals only
}

// RentedVehicles is the number of vehicles currently out on rental.
func (s Summary) RentedVehicles() int {
	return s.TotalVehicles - s.AvailableVehicles
}
