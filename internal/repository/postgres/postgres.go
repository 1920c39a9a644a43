package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"car-rental-system/internal/logger"
	"car-rental-system/internal/repository"

	_ "github.com/lib/pq"
)

// Store is a PostgreSQL-backed roster store. Schema: migrations/001_roster.sql.
type Store struct {
	repository.VehicleRepository
	repository.CustomerRepository
}

var _ repository.RosterRepository = (*Store)(nil)

func NewStore(db *sql.DB) *Store {
	return &Store{
		VehicleRepository:  NewVehicleRepository(db),
		CustomerRepository: NewCustomerRepository(db),
	}
}

// replaceAll deletes every row of table and inserts rows in one transaction,
// so a failed save leaves the previous roster in place.
func replaceAll(ctx context.Context, db *sql.DB, table, insert string, rows [][]any) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	deleteQuery := "DELETE FROM " + table
	logger.DatabaseCall("delete", deleteQuery)
	res, err := tx.ExecContext(ctx, deleteQuery)
	if err != nil {
		logger.DatabaseResult("delete", 0, err, "table", table)
		return fmt.Errorf("failed to clear %s: %w", table, err)
	}
	deleted, _ := res.RowsAffected()
	logger.DatabaseResult("delete", deleted, nil, "table", table)

	for _, args := range rows {
		logger.DatabaseCall("insert", insert, "table", table)
		if _, err := tx.ExecContext(ctx, insert, args...); err != nil {
			logger.DatabaseResult("insert", 0, err, "table", table)
			return fmt.Errorf("failed to insert into %s: %w", table, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit %s: %w", table, err)
	}
	logger.DatabaseResult("insert", int64(len(rows)), nil, "table", table)
	return nil
}
