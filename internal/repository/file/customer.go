package file

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	"car-rental-system/internal/domain"
	"car-rental-system/internal/logger"
	"car-rental-system/internal/utils"
)

var customerHeader = []string{utils.KeyCustomerID, utils.KeyName, utils.KeyEmail, utils.KeyPhone}

// SaveCustomers writes the roster as CSV, replacing the file.
func (s *Store) SaveCustomers(_ context.Context, customers []*domain.Customer) error {
	f, err := os.Create(s.customersPath)
	if err != nil {
		return fmt.Errorf("failed to create customers file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(customerHeader); err != nil {
		return fmt.Errorf("failed to write customers header: %w", err)
	}
	for _, c := range customers {
		if err := w.Write([]string{c.ID, c.Name, c.Email, c.Phone}); err != nil {
			return fmt.Errorf("failed to write customer %s: %w", c.ID, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("failed to flush customers file: %w", err)
	}
	logger.Debug("Customers saved", "path", s.customersPath, "count", len(customers))
	return f.Close()
}

// LoadCustomers reads the CSV roster, mapping columns by header name.
func (s *Store) LoadCustomers(_ context.Context) ([]*domain.Customer, error) {
	f, err := os.Open(s.customersPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open customers file: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	header, err := r.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read customers header: %w", err)
	}

	var customers []*domain.Customer
	for line := 2; ; line++ {
		fields, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read customers line %d: %w", line, err)
		}

		row := make(map[string]string, len(header))
		for i, name := range header {
			row[name] = fields[i]
		}
		c, err := utils.CustomerFromRecord(utils.StringRecord(row))
		if err != nil {
			return nil, fmt.Errorf("customers line %d: %w", line, err)
		}
		customers = append(customers, c)
	}
	logger.Debug("Customers loaded", "path", s.customersPath, "count", len(customers))
	return customers, nil
}
