package utils

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"car-rental-system/internal/domain"

	"github.com/shopspring/decimal"
)

// Vehicle record keys, shared by the JSON roster files and the HTTP API.
const (
	KeyVehicleID = "car_id"
	KeyMake      = "make"
	KeyModel     = "model"
	KeyYear      = "year"
	KeyDailyRate = "daily_rate"
	KeyAvailable = "available"
)

// Customer record keys, shared by the CSV roster files and the HTTP API.
const (
	KeyCustomerID = "customer_id"
	KeyName       = "name"
	KeyEmail      = "email"
	KeyPhone      = "phone"
)

var (
	vehicleRequiredKeys  = []string{KeyVehicleID, KeyMake, KeyModel, KeyYear, KeyDailyRate}
	customerRequiredKeys = []string{KeyCustomerID, KeyName, KeyEmail, KeyPhone}
)

// ValidateVehicleRecord checks an externally sourced vehicle record: all
// required keys present, string identity fields, an integer year no older
// than 1900 and a positive numeric daily rate.
func ValidateVehicleRecord(rec map[string]any) error {
	_, err := VehicleFromRecord(rec)
	return err
}

// VehicleFromRecord validates rec and builds the vehicle it describes.
// A missing "available" key means the vehicle is available.
func VehicleFromRecord(rec map[string]any) (*domain.Vehicle, error) {
	for _, key := range vehicleRequiredKeys {
		if _, ok := rec[key]; !ok {
			return nil, invalid("missing field %q", key)
		}
	}

	id, err := stringField(rec, KeyVehicleID)
	if err != nil {
		return nil, err
	}
	vehicleMake, err := stringField(rec, KeyMake)
	if err != nil {
		return nil, err
	}
	model, err := stringField(rec, KeyModel)
	if err != nil {
		return nil, err
	}

	year, ok := toInt(rec[KeyYear])
	if !ok {
		return nil, invalid("%s must be an integer, got %v", KeyYear, rec[KeyYear])
	}
	if year < domain.MinVehicleYear {
		return nil, invalid("%s must be at least %d, got %d", KeyYear, domain.MinVehicleYear, year)
	}

	rate, ok := toDecimal(rec[KeyDailyRate])
	if !ok {
		return nil, invalid("%s must be a number, got %v", KeyDailyRate, rec[KeyDailyRate])
	}
	if !rate.IsPositive() {
		return nil, invalid("%s must be positive, got %s", KeyDailyRate, rate)
	}

	v := domain.NewVehicle(id, vehicleMake, model, year, rate)
	if raw, ok := rec[KeyAvailable]; ok {
		available, isBool := raw.(bool)
		if !isBool {
			return nil, invalid("%s must be a boolean, got %v", KeyAvailable, raw)
		}
		v.Available = available
	}
	return v, nil
}

// ValidateCustomerRecord checks that every customer field is a non-empty
// string and that the email has an '@' and a '.'.
func ValidateCustomerRecord(rec map[string]any) error {
	_, err := CustomerFromRecord(rec)
	return err
}

// CustomerFromRecord validates rec and builds the customer it describes.
func CustomerFromRecord(rec map[string]any) (*domain.Customer, error) {
	fields := make(map[string]string, len(customerRequiredKeys))
	for _, key := range customerRequiredKeys {
		if _, ok := rec[key]; !ok {
			return nil, invalid("missing field %q", key)
		}
		s, err := stringField(rec, key)
		if err != nil {
			return nil, err
		}
		fields[key] = s
	}

	email := fields[KeyEmail]
	if !strings.Contains(email, "@") || !strings.Contains(email, ".") {
		return nil, invalid("%s %q is not a valid address", KeyEmail, email)
	}

	return &domain.Customer{
		ID:    fields[KeyCustomerID],
		Name:  fields[KeyName],
		Email: email,
		Phone: fields[KeyPhone],
	}, nil
}

// StringRecord widens a CSV row into the record shape the validators take.
func StringRecord(row map[string]string) map[string]any {
	rec := make(map[string]any, len(row))
	for k, v := range row {
		rec[k] = v
	}
	return rec
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", domain.ErrInvalidInput, fmt.Sprintf(format, args...))
}

func stringField(rec map[string]any, key string) (string, error) {
	s, ok := rec[key].(string)
	if !ok {
		return "", invalid("%s must be a string, got %v", key, rec[key])
	}
	if strings.TrimSpace(s) == "" {
		return "", invalid("%s must not be empty", key)
	}
	return s, nil
}

func toInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int32:
		return int(n), true
	case int64:
		return int(n), true
	case float64:
		if n != math.Trunc(n) || math.IsInf(n, 0) {
			return 0, false
		}
		return int(n), true
	case json.Number:
		i, err := n.Int64()
		if err != nil {
			return 0, false
		}
		return int(i), true
	default:
		return 0, false
	}
}

func toDecimal(v any) (decimal.Decimal, bool) {
	switch n := v.(type) {
	case int:
		return decimal.NewFromInt(int64(n)), true
	case int64:
		return decimal.NewFromInt(n), true
	case float64:
		if math.IsNaN(n) || math.IsInf(n, 0) {
			return decimal.Zero, false
		}
		return decimal.NewFromFloat(n), true
	case json.Number:
		d, err := decimal.NewFromString(n.String())
		if err != nil {
			return decimal.Zero, false
		}
		return d, true
	case decimal.Decimal:
		return n, true
	default:
		return decimal.Zero, false
	}
}
