package service

import (
	"context"
	"fmt"

	"car-rental-system/internal/repository"
)

// LoadRoster registers the vehicles and customers held by repo. Rentals are
// not persisted, so every loaded vehicle starts available whatever its
// stored flag says.
func LoadRoster(ctx context.Context, repo repository.RosterRepository, m *Manager) error {
	vehicles, err := repo.LoadVehicles(ctx)
	if err != nil {
		return fmt.Errorf("failed to load vehicles: %w", err)
	}
	customers, err := repo.LoadCustomers(ctx)
	if err != nil {
		return fmt.Errorf("failed to load customers: %w", err)
	}
	for _, v := range vehicles {
		v.Available = true
	}
	return Register(m, vehicles, customers)
}

// SaveRoster writes the manager's vehicles and customers to repo.
func SaveRoster(ctx context.Context, repo repository.RosterRepository, m *Manager) error {
	if err := repo.SaveVehicles(ctx, m.Vehicles()); err != nil {
		return fmt.Errorf("failed to save vehicles: %w", err)
	}
	if err := repo.SaveCustomers(ctx, m.Customers()); err != nil {
		return fmt.Errorf("failed to save customers: %w", err)
	}
	return nil
}
