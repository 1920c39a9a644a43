package postgres

import (
	"context"
	"database/sql"

	"car-rental-system/internal/domain"
	"car-rental-system/internal/logger"
	"car-rental-system/internal/repository"
)

type vehicleRepository struct {
	db *sql.DB
}

func NewVehicleRepository(db *sql.DB) repository.VehicleRepository {
	return &vehicleRepository{db: db}
}

func (r *vehicleRepository) SaveVehicles(ctx context.Context, vehicles []*domain.Vehicle) error {
	query := `INSERT INTO vehicles (position, id, make, model, year, daily_rate, available)
	          VALUES ($1, $2, $3, $4, $5, $6, $7)`
	rows := make([][]any, 0, len(vehicles))
	for i, v := range vehicles {
		rows = append(rows, []any{i, v.ID, v.Make, v.Model, v.Year, v.DailyRate, v.Available})
	}
	return replaceAll(ctx, r.db, "vehicles", query, rows)
}

func (r *vehicleRepository) LoadVehicles(ctx context.Context) ([]*domain.Vehicle, error) {
	query := `SELECT id, make, model, year, daily_rate, available FROM vehicles ORDER BY position`
	logger.DatabaseCall("select", query)
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		logger.DatabaseResult("select", 0, err)
		return nil, err
	}
	defer rows.Close()

	var vehicles []*domain.Vehicle
	for rows.Next() {
		v := &domain.Vehicle{}
		if err := rows.Scan(&v.ID, &v.Make, &v.Model, &v.Year, &v.DailyRate, &v.Available); err != nil {
			return nil, err
		}
		vehicles = append(vehicles, v)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	logger.DatabaseResult("select", int64(len(vehicles)), nil)
	return vehicles, nil
}
