package domain_test

import (
	"testing"
	"time"
	_ "time/tzdata"

	"car-rental-system/internal/domain"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRental(t *testing.T) {
	start := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	v := domain.NewVehicle("V1", "Toyota", "Camry", 2022, decimal.RequireFromString("45.00"))
	c := &domain.Customer{ID: "CUST1", Name: "John Smith"}

	r := domain.NewRental("R0001", c, v, start, 3)

	assert.True(t, r.EndTime.Equal(start.Add(72*time.Hour)))
	assert.Equal(t, "135.00", r.TotalCost.StringFixed(2))
	assert.Equal(t, domain.RentalStatusActive, r.Status())
	assert.Equal(t, "Rental R0001: John Smith renting Toyota Camry for 3 days ($135.00)", r.String())
}

func TestNewRental_EndTimeCountsCalendarDays(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)
	// clocks spring forward on 2024-03-10
	start := time.Date(2024, 3, 9, 10, 0, 0, 0, loc)
	v := domain.NewVehicle("V1", "Toyota", "Camry", 2022, decimal.RequireFromString("45.00"))

	r := domain.NewRental("R0001", &domain.Customer{ID: "CUST1"}, v, start, 2)

	assert.True(t, r.EndTime.Equal(time.Date(2024, 3, 11, 10, 0, 0, 0, loc)))
	assert.Equal(t, 47*time.Hour, r.EndTime.Sub(start))
}
