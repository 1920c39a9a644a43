package postgres

import (
	"context"
	"database/sql"

	"car-rental-system/internal/domain"
	"car-rental-system/internal/logger"
	"car-rental-system/internal/repository"
)

type customerRepository struct {
	db *sql.DB
}

func NewCustomerRepository(db *sql.DB) repository.CustomerRepository {
	return &customerRepository{db: db}
}

func (r *customerRepository) SaveCustomers(ctx context.Context, customers []*domain.Customer) error {
	query := `INSERT INTO customers (position, id, name, email, phone)
	          VALUES ($1, $2, $3, $4, $5)`
	rows := make([][]any, 0, len(customers))
	for i, c := range customers {
		rows = append(rows, []any{i, c.ID, c.Name, c.Email, c.Phone})
	}
	return replaceAll(ctx, r.db, "customers", query, rows)
}

func (r *customerRepository) LoadCustomers(ctx context.Context) ([]*domain.Customer, error) {
	query := `SELECT id, name, email, COALESCE(phone, '') FROM customers ORDER BY position`
	logger.DatabaseCall("select", query)
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		logger.DatabaseResult("select", 0, err)
		return nil, err
	}
	defer rows.Close()

	var customers []*domain.Customer
	for rows.Next() {
		c := &domain.Customer{}
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.Phone); err != nil {
			return nil, err
		}
		customers = append(customers, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	logger.DatabaseResult("select", int64(len(customers)), nil)
	return customers, nil
}
