package file

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"

	"car-rental-system/internal/domain"
	"car-rental-system/internal/logger"
	"car-rental-system/internal/utils"
)

type vehicleRecord struct {
	ID        string      `json:"car_id"`
	Make      string      `json:"make"`
	Model     string      `json:"model"`
	Year      int         `json:"year"`
	DailyRate json.Number `json:"daily_rate"`
	Available bool        `json:"available"`
}

// SaveVehicles writes the fleet as an indented JSON array, replacing the file.
func (s *Store) SaveVehicles(_ context.Context, vehicles []*domain.Vehicle) error {
	records := make([]vehicleRecord, 0, len(vehicles))
	for _, v := range vehicles {
		records = append(records, vehicleRecord{
			ID:        v.ID,
			Make:      v.Make,
			Model:     v.Model,
			Year:      v.Year,
			DailyRate: json.Number(v.DailyRate.String()),
			Available: v.Available,
		})
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode vehicles: %w", err)
	}
	if err := os.WriteFile(s.vehiclesPath, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("failed to write vehicles file: %w", err)
	}
	logger.Debug("Vehicles saved", "path", s.vehiclesPath, "count", len(records))
	return nil
}

// LoadVehicles reads and validates every record in the vehicles file. The
// first invalid record aborts the load; a missing file is reported as an
// error wrapping fs.ErrNotExist.
func (s *Store) LoadVehicles(_ context.Context) ([]*domain.Vehicle, error) {
	data, err := os.ReadFile(s.vehiclesPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read vehicles file: %w", err)
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var records []map[string]any
	if err := dec.Decode(&records); err != nil {
		return nil, fmt.Errorf("failed to parse vehicles file: %w", err)
	}

	vehicles := make([]*domain.Vehicle, 0, len(records))
	for i, rec := range records {
		v, err := utils.VehicleFromRecord(rec)
		if err != nil {
			return nil, fmt.Errorf("vehicle record %d: %w", i, err)
		}
		vehicles = append(vehicles, v)
	}
	logger.Debug("Vehicles loaded", "path", s.vehiclesPath, "count", len(vehicles))
	return vehicles, nil
}
