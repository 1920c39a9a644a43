package service

import (
	"fmt"

	"car-rental-system/internal/domain"

	"github.com/shopspring/decimal"
)

// SampleVehicles returns the demonstration fleet.
func SampleVehicles() []*domain.Vehicle {
	return []*domain.Vehicle{
		domain.NewVehicle("C001", "Toyota", "Camry", 2022, decimal.RequireFromString("45.00")),
		domain.NewVehicle("C002", "Honda", "Civic", 2021, decimal.RequireFromString("40.00")),
		domain.NewVehicle("C003", "Ford", "Mustang", 2023, decimal.RequireFromString("75.00")),
		domain.NewVehicle("C004", "Chevrolet", "Malibu", 2022, decimal.RequireFromString("50.00")),
		domain.NewVehicle("C005", "Nissan", "Altima", 2021, decimal.RequireFromString("42.00")),
	}
}

// SampleCustomers returns the demonstration customer roster.
func SampleCustomers() []*domain.Customer {
	return []*domain.Customer{
		{ID: "CUST001", Name: "John Smith", Email: "john.smith@email.com", Phone: "555-0101"},
		{ID: "CUST002", Name: "Jane Doe", Email: "jane.doe@email.com", Phone: "555-0102"},
		{ID: "CUST003", Name: "Bob Johnson", Email: "bob.johnson@email.com", Phone: "555-0103"},
		{ID: "CUST004", Name: "Alice Brown", Email: "alice.brown@email.com", Phone: "555-0104"},
	}
}

// LoadSampleData registers the demonstration fleet and roster.
func LoadSampleData(m *Manager) error {
	return Register(m, SampleVehicles(), SampleCustomers())
}

// Register adds vehicles then customers. Nil entries, and duplicate ids on a
// manager built WithUniqueIDs, are rejected before anything is added.
func Register(m *Manager, vehicles []*domain.Vehicle, customers []*domain.Customer) error {
	if err := m.checkRoster(vehicles, customers); err != nil {
		return err
	}
	for _, v := range vehicles {
		if err := m.AddVehicle(v); err != nil {
			return err
		}
	}
	for _, c := range customers {
		if err := m.AddCustomer(c); err != nil {
			return err
		}
	}
	return nil
}

func (m *Manager) checkRoster(vehicles []*domain.Vehicle, customers []*domain.Customer) error {
	seen := make(map[string]bool, len(vehicles))
	for _, v := range vehicles {
		if v == nil {
			return fmt.Errorf("%w: nil vehicle", domain.ErrInvalidInput)
		}
		if m.uniqueIDs {
			if _, exists := m.vehicleIndex[v.ID]; exists || seen[v.ID] {
				return fmt.Errorf("%w: vehicle %s", domain.ErrDuplicateID, v.ID)
			}
			seen[v.ID] = true
		}
	}
	seen = make(map[string]bool, len(customers))
	for _, c := range customers {
		if c == nil {
			return fmt.Errorf("%w: nil customer", domain.ErrInvalidInput)
		}
		if m.uniqueIDs {
			if _, exists := m.customerIndex[c.ID]; exists || seen[c.ID] {
				return fmt.Errorf("%w: customer %s", domain.ErrDuplicateID, c.ID)
			}
			seen[c.ID] = true
		}
	}
	return nil
}
