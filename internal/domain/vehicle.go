package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

type VehicleStatus string

const (
	VehicleStatusAvailable VehicleStatus = "AVAILABLE"
	VehicleStatusRented    VehicleStatus = "RENTED"
)

// MinVehicleYear is the oldest model year accepted from external records.
const MinVehicleYear = 1900

// Vehicle is a car in the rental fleet. Everything except Available is fixed
// once the vehicle is registered; Available is owned by the rental manager.
type Vehicle struct {
	ID        string          `json:"id"`
	Make      string          `json:"make"`
	Model     string          `json:"model"`
	Year      int             `json:"year"`
	DailyRate decimal.Decimal `json:"daily_rate"`
	Available bool            `json:"available"`
}

// NewVehicle returns an available vehicle.
func NewVehicle(id, vehicleMake, model string, year int, dailyRate decimal.Decimal) *Vehicle {
	return &Vehicle{
		ID:        id,
		Make:      vehicleMake,
		Model:     model,
		Year:      year,
		DailyRate: dailyRate,
		Available: true,
	}
}

func (v *Vehicle) Status() VehicleStatus {
	if v.Available {
		return VehicleStatusAvailable
	}
	return VehicleStatusRented
}

func (v *Vehicle) String() string {
	status := "Available"
	if !v.Available {
		status = "Rented"
	}
	return fmt.Sprintf("%d %s %s (ID: %s) - $%s/day - %s", v.Year, v.Make, v.Model, v.ID, v.DailyRate.StringFixed(2), status)
}
