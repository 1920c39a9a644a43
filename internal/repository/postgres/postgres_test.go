package postgres_test

import (
	"context"
	"errors"
	"testing"

	"car-rental-system/internal/domain"
	"car-rental-system/internal/repository/postgres"
	"car-rental-system/internal/service"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestVehicleRepository_SaveVehicles(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := postgres.NewVehicleRepository(db)
	ctx := context.Background()
	vehicles := service.SampleVehicles()[:2]

	t.Run("Success", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec("DELETE FROM vehicles").WillReturnResult(sqlmock.NewResult(0, 3))
		for i, v := range vehicles {
			mock.ExpectExec("INSERT INTO vehicles").
				WithArgs(i, v.ID, v.Make, v.Model, v.Year, v.DailyRate, v.Available).
				WillReturnResult(sqlmock.NewResult(0, 1))
		}
		mock.ExpectCommit()

		err := repo.SaveVehicles(ctx, vehicles)
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Insert failure rolls back", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec("DELETE FROM vehicles").WillReturnResult(sqlmock.NewResult(0, 2))
		mock.ExpectExec("INSERT INTO vehicles").WillReturnError(errors.New("boom"))
		mock.ExpectRollback()

		err := repo.SaveVehicles(ctx, vehicles)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to insert into vehicles")
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestVehicleRepository_LoadVehicles(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := postgres.NewVehicleRepository(db)
	ctx := context.Background()

	rows := sqlmock.NewRows([]string{"id", "make", "model", "year", "daily_rate", "available"}).
		AddRow("C001", "Toyota", "Camry", 2022, "45.00", true).
		AddRow("C002", "Honda", "Civic", 2021, "40.00", false)
	mock.ExpectQuery("SELECT (.+) FROM vehicles ORDER BY position").WillReturnRows(rows)

	vehicles, err := repo.LoadVehicles(ctx)
	assert.NoError(t, err)
	if assert.Len(t, vehicles, 2) {
		assert.Equal(t, "C001", vehicles[0].ID)
		assert.True(t, decimal.NewFromInt(45).Equal(vehicles[0].DailyRate))
		assert.True(t, vehicles[0].Available)
		assert.False(t, vehicles[1].Available)
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCustomerRepository(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	store := postgres.NewStore(db)
	ctx := context.Background()
	customer := &domain.Customer{ID: "CUST001", Name: "John Smith", Email: "john.smith@email.com", Phone: "555-0101"}

	t.Run("Save", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec("DELETE FROM customers").WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec("INSERT INTO customers").
			WithArgs(0, customer.ID, customer.Name, customer.Email, customer.Phone).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		assert.NoError(t, store.SaveCustomers(ctx, []*domain.Customer{customer}))
	})

	t.Run("Load", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"id", "name", "email", "phone"}).
			AddRow(customer.ID, customer.Name, customer.Email, customer.Phone)
		mock.ExpectQuery("SELECT (.+) FROM customers ORDER BY position").WillReturnRows(rows)

		loaded, err := store.LoadCustomers(ctx)
		assert.NoError(t, err)
		assert.Equal(t, []*domain.Customer{customer}, loaded)
	})

	t.Run("Query error", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM customers").WillReturnError(errors.New("connection refused"))
		_, err := store.LoadCustomers(ctx)
		assert.Error(t, err)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}
