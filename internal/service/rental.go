package service

import (
	"fmt"
	"time"

	"car-rental-system/internal/domain"

	"github.com/shopspring/decimal"
)

// DefaultRetentionDays is how long returned rentals stay in the rental book.
const DefaultRetentionDays = 30

var hundred = decimal.NewFromInt(100)

// Manager owns the fleet, the customer roster and the rental book.
//
// A Manager does no locking: callers that share one across goroutines must
// serialize access themselves (see Guarded).
type Manager struct {
	vehicles      []*domain.Vehicle
	vehicleIndex  map[string]*domain.Vehicle
	customers     []*domain.Customer
	customerIndex map[string]*domain.Customer
	rentals       []*domain.Rental

	retentionDays int
	uniqueIDs     bool
	now           func() time.Time
	nextID        func() string
}

// NewManager returns an empty manager with a 30 day retention window.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		vehicleIndex:  make(map[string]*domain.Vehicle),
		customerIndex: make(map[string]*domain.Customer),
		retentionDays: DefaultRetentionDays,
		now:           time.Now,
		nextID:        SequenceIDs("R"),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// AddVehicle registers a vehicle. Duplicate ids are accepted unless the
// manager was built WithUniqueIDs; lookups always resolve to the first one.
func (m *Manager) AddVehicle(v *domain.Vehicle) error {
	if v == nil {
		return fmt.Errorf("%w: nil vehicle", domain.ErrInvalidInput)
	}
	if _, exists := m.vehicleIndex[v.ID]; exists {
		if m.uniqueIDs {
			return fmt.Errorf("%w: vehicle %s", domain.ErrDuplicateID, v.ID)
		}
	} else {
		m.vehicleIndex[v.ID] = v
	}
	m.vehicles = append(m.vehicles, v)
	return nil
}

// AddCustomer registers a customer, with the same duplicate rules as AddVehicle.
func (m *Manager) AddCustomer(c *domain.Customer) error {
	if c == nil {
		return fmt.Errorf("%w: nil customer", domain.ErrInvalidInput)
	}
	if _, exists := m.customerIndex[c.ID]; exists {
		if m.uniqueIDs {
			return fmt.Errorf("%w: customer %s", domain.ErrDuplicateID, c.ID)
		}
	} else {
		m.customerIndex[c.ID] = c
	}
	m.customers = append(m.customers, c)
	return nil
}

func (m *Manager) FindVehicle(id string) (*domain.Vehicle, bool) {
	v, ok := m.vehicleIndex[id]
	return v, ok
}

func (m *Manager) FindCustomer(id string) (*domain.Customer, bool) {
	c, ok := m.customerIndex[id]
	return c, ok
}

// FindRental looks a rental up in the current rental book.
func (m *Manager) FindRental(id string) (*domain.Rental, bool) {
	for _, r := range m.rentals {
		if r.ID == id {
			return r, true
		}
	}
	return nil, false
}

func (m *Manager) Vehicles() []*domain.Vehicle {
	return append([]*domain.Vehicle(nil), m.vehicles...)
}

func (m *Manager) Customers() []*domain.Customer {
	return append([]*domain.Customer(nil), m.customers...)
}

func (m *Manager) Rentals() []*domain.Rental {
	return append([]*domain.Rental(nil), m.rentals...)
}

// AvailableVehicles returns the vehicles that can be rented, in registration order.
func (m *Manager) AvailableVehicles() []*domain.Vehicle {
	var available []*domain.Vehicle
	for _, v := range m.vehicles {
		if v.Available {
			available = append(available, v)
		}
	}
	return available
}

// ActiveRentals returns the rentals that have not been returned yet.
func (m *Manager) ActiveRentals() []*domain.Rental {
	var active []*domain.Rental
	for _, r := range m.rentals {
		if !r.Returned {
			active = append(active, r)
		}
	}
	return active
}

// RentVehicle rents a vehicle to a customer starting now. The returned error
// tells which precondition failed; on error the manager is left untouched.
func (m *Manager) RentVehicle(customerID, vehicleID string, days int) (*domain.Rental, error) {
	if days <= 0 {
		return nil, fmt.Errorf("%w: rental days must be positive, got %d", domain.ErrInvalidInput, days)
	}
	customer, ok := m.FindCustomer(customerID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrCustomerNotFound, customerID)
	}
	vehicle, ok := m.FindVehicle(vehicleID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrVehicleNotFound, vehicleID)
	}
	if !vehicle.Available {
		return nil, fmt.Errorf("%w: %s", domain.ErrVehicleUnavailable, vehicleID)
	}

	rental := domain.NewRental(m.nextID(), customer, vehicle, m.now(), days)
	vehicle.Available = false
	m.rentals = append(m.rentals, rental)
	return rental, nil
}

// ReturnVehicle closes an active rental, frees its vehicle and then prunes
// the rental book.
func (m *Manager) ReturnVehicle(rentalID string) error {
	rental, ok := m.FindRental(rentalID)
	if !ok {
		return fmt.Errorf("%w: %s", domain.ErrRentalNotFound, rentalID)
	}
	if rental.Returned {
		return fmt.Errorf("%w: %s", domain.ErrAlreadyReturned, rentalID)
	}

	rental.Returned = true
	rental.Vehicle.Available = true
	m.CleanupOldRentals()
	return nil
}

// CleanupOldRentals drops returned rentals that ended before the retention
// cutoff and reports how many were dropped. Active rentals are always kept.
// A rental ending exactly at the cutoff is kept.
func (m *Manager) CleanupOldRentals() int {
	if len(m.rentals) == 0 {
		return 0
	}
	cutoff := m.now().AddDate(0, 0, -m.retentionDays)

	kept := m.rentals[:0]
	for _, r := range m.rentals {
		if !r.Returned || !r.EndTime.Before(cutoff) {
			kept = append(kept, r)
		}
	}
	removed := len(m.rentals) - len(kept)
	// release the dropped tail so the rentals can be collected
	for i := len(kept); i < len(m.rentals); i++ {
		m.rentals[i] = nil
	}
	m.rentals = kept
	return removed
}

func (m *Manager) RetentionDays() int {
	return m.retentionDays
}

// SetRetentionDays changes the retention window used by later cleanups.
func (m *Manager) SetRetentionDays(days int) error {
	if days < 0 {
		return fmt.Errorf("%w: retention days must not be negative, got %d", domain.ErrInvalidInput, days)
	}
	m.retentionDays = days
	return nil
}

// Summary aggregates the current state. Revenue counts returned rentals only.
func (m *Manager) Summary() domain.Summary {
	s := domain.Summary{
		TotalVehicles:  len(m.vehicles),
		TotalCustomers: len(m.customers),
		TotalRevenue:   decimal.Zero,
	}
	for _, v := range m.vehicles {
		if v.Available {
			s.AvailableVehicles++
		}
	}
	for _, r := range m.rentals {
		if r.Returned {
			s.CompletedRentals++
			s.TotalRevenue = s.TotalRevenue.Add(r.TotalCost)
		} else {
			s.ActiveRentals++
		}
	}
	return s
}

// Utilization is the percentage of the fleet currently rented, rounded to two
// places. It returns domain.ErrDivisionUndefined when the fleet is empty.
func (m *Manager) Utilization() (decimal.Decimal, error) {
	total := len(m.vehicles)
	if total == 0 {
		return decimal.Zero, domain.ErrDivisionUndefined
	}
	rented := total - len(m.AvailableVehicles())
	return decimal.NewFromInt(int64(rented)).
		Mul(hundred).
		Div(decimal.NewFromInt(int64(total))).
		Round(2), nil
}
