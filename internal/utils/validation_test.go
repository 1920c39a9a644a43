package utils

import (
	"encoding/json"
	"testing"

	"car-rental-system/internal/domain"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validVehicle() map[string]any {
	return map[string]any{
		"car_id":     "C001",
		"make":       "Toyota",
		"model":      "Camry",
		"year":       2022,
		"daily_rate": 45.00,
	}
}

func validCustomer() map[string]any {
	return map[string]any{
		"customer_id": "CUST001",
		"name":        "John Smith",
		"email":       "john.smith@email.com",
		"phone":       "555-0101",
	}
}

func TestValidateVehicleRecord(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		assert.NoError(t, ValidateVehicleRecord(validVehicle()))
	})

	tests := []struct {
		name   string
		mutate func(rec map[string]any)
	}{
		{"Missing field", func(rec map[string]any) { delete(rec, "year") }},
		{"Year too old", func(rec map[string]any) { rec["year"] = 1800 }},
		{"Fractional year", func(rec map[string]any) { rec["year"] = 2020.5 }},
		{"Year as string", func(rec map[string]any) { rec["year"] = "2020" }},
		{"Zero rate", func(rec map[string]any) { rec["daily_rate"] = 0 }},
		{"Negative rate", func(rec map[string]any) { rec["daily_rate"] = -10.0 }},
		{"Rate as string", func(rec map[string]any) { rec["daily_rate"] = "45" }},
		{"Empty id", func(rec map[string]any) { rec["car_id"] = "" }},
		{"Available not bool", func(rec map[string]any) { rec["available"] = "yes" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := validVehicle()
			tt.mutate(rec)
			err := ValidateVehicleRecord(rec)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}

	t.Run("Year boundary", func(t *testing.T) {
		rec := validVehicle()
		rec["year"] = 1900
		assert.NoError(t, ValidateVehicleRecord(rec))
	})
}

func TestVehicleFromRecord(t *testing.T) {
	t.Run("Defaults to available", func(t *testing.T) {
		v, err := VehicleFromRecord(validVehicle())
		require.NoError(t, err)
		assert.Equal(t, "C001", v.ID)
		assert.Equal(t, 2022, v.Year)
		assert.True(t, decimal.NewFromInt(45).Equal(v.DailyRate))
		assert.True(t, v.Available)
	})

	t.Run("JSON numbers", func(t *testing.T) {
		rec := validVehicle()
		rec["year"] = json.Number("2021")
		rec["daily_rate"] = json.Number("42.50")
		rec["available"] = false
		v, err := VehicleFromRecord(rec)
		require.NoError(t, err)
		assert.Equal(t, 2021, v.Year)
		assert.Equal(t, "42.50", v.DailyRate.StringFixed(2))
		assert.False(t, v.Available)
	})
}

func TestValidateCustomerRecord(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		assert.NoError(t, ValidateCustomerRecord(validCustomer()))
	})

	tests := []struct {
		name   string
		mutate func(rec map[string]any)
	}{
		{"Missing phone", func(rec map[string]any) { delete(rec, "phone") }},
		{"Empty name", func(rec map[string]any) { rec["name"] = "" }},
		{"Non-string field", func(rec map[string]any) { rec["phone"] = 5550101 }},
		{"Email without at", func(rec map[string]any) { rec["email"] = "john.smith.email.com" }},
		{"Email without dot", func(rec map[string]any) { rec["email"] = "john@email" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := validCustomer()
			tt.mutate(rec)
			assert.ErrorIs(t, ValidateCustomerRecord(rec), domain.ErrInvalidInput)
		})
	}
}

func TestCustomerFromRecord_CSVRow(t *testing.T) {
	row := map[string]string{
		"customer_id": "CUST002",
		"name":        "Jane Doe",
		"email":       "jane.doe@email.com",
		"phone":       "555-0102",
	}
	c, err := CustomerFromRecord(StringRecord(row))
	require.NoError(t, err)
	assert.Equal(t, &domain.Customer{ID: "CUST002", Name: "Jane Doe", Email: "jane.doe@email.com", Phone: "555-0102"}, c)
}

func TestFormatUtilization(t *testing.T) {
	assert.Equal(t, "N/A", FormatUtilization(decimal.Zero, domain.ErrDivisionUndefined))
	assert.Equal(t, "40.00%", FormatUtilization(decimal.NewFromInt(40), nil))
	assert.Equal(t, "$135.00", FormatCurrency(decimal.NewFromInt(135)))
}
