// Package file stores the rosters on disk: vehicles as a JSON array and
// customers as CSV with a header row.
package file

import (
	"car-rental-system/internal/repository"
)

type Store struct {
	vehiclesPath  string
	customersPath string
}

var _ repository.RosterRepository = (*Store)(nil)

func NewStore(vehiclesPath, customersPath string) *Store {
	return &Store{
		vehiclesPath:  vehiclesPath,
		customersPath: customersPath,
	}
}
