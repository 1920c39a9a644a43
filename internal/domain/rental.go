package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

type RentalStatus string

const (
	RentalStatusActive    RentalStatus = "ACTIVE"
	RentalStatusCompleted RentalStatus = "COMPLETED"
)

// Rental links a customer to a vehicle for a number of days.
// Vehicle and Customer are shared references; a rental never owns them.
type Rental struct {
	ID        string    `json:"id"`
	Customer  *Customer `json:"customer"`
	Vehicle   *Vehicle  `json:"vehicle"`
	StartTime time.Time `json:"start_time"`
	Days      int       `json:"days"`
	// Snapshot fields, computed once at creation and never recomputed.
	EndTime   time.Time       `json:"end_time"`
	TotalCost decimal.Decimal `json:"total_cost"`
	Returned  bool            `json:"returned"`
}

// NewRental builds an un-returned rental, fixing its end time and cost from
// the vehicle's current daily rate.
func NewRental(id string, customer *Customer, vehicle *Vehicle, start time.Time, days int) *Rental {
	return &Rental{
		ID:        id,
		Customer:  customer,
		Vehicle:   vehicle,
		StartTime: start,
		Days:      days,
		EndTime:   start.AddDate(0, 0, days),
		TotalCost: vehicle.DailyRate.Mul(decimal.NewFromInt(int64(days))),
	}
}

func (r *Rental) Status() RentalStatus {
	if r.Returned {
		return RentalStatusCompleted
	}
	return RentalStatusActive
}

func (r *Rental) String() string {
	return fmt.Sprintf("Rental %s: %s renting %s %s for %d days ($%s)",
		r.ID, r.Customer.Name, r.Vehicle.Make, r.Vehicle.Model, r.Days, r.TotalCost.StringFixed(2))
}
