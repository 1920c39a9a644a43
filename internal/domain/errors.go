package domain

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound           = errors.New("not found")
	ErrVehicleNotFound    = fmt.Errorf("vehicle %w", ErrNotFound)
	ErrCustomerNotFound   = fmt.Errorf("customer %w", ErrNotFound)
	ErrRentalNotFound     = fmt.Errorf("rental %w", ErrNotFound)
	ErrVehicleUnavailable = errors.New("vehicle is not available")
	ErrAlreadyReturned    = errors.New("rental already returned")
	ErrInvalidInput       = errors.New("invalid input")
	ErrDuplicateID        = errors.New("duplicate id")
	// ErrDivisionUndefined is returned for ratios over an empty fleet.
	ErrDivisionUndefined = errors.New("undefined: no vehicles registered")
)
