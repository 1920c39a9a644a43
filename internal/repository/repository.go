package repository

import (
	"context"

	"car-rental-system/internal/domain"
)

// VehicleRepository persists the fleet roster. It stores vehicle records
// only; rentals live in memory with the manager.
type VehicleRepository interface {
	SaveVehicles(ctx context.Context, vehicles []*domain.Vehicle) error
	LoadVehicles(ctx context.Context) ([]*domain.Vehicle, error)
}

// CustomerRepository persists the customer roster.
type CustomerRepository interface {
	SaveCustomers(ctx context.Context, customers []*domain.Customer) error
	LoadCustomers(ctx context.Context) ([]*domain.Customer, error)
}

// RosterRepository stores both rosters.
type RosterRepository interface {
	VehicleRepository
	CustomerRepository
}
