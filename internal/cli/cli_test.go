package cli

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd()
	out := new(bytes.Buffer)
	cmd.SetOut(out)
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func seedFiles(t *testing.T) (string, string) {
	t.Helper()
	dir := t.TempDir()
	vehicles := filepath.Join(dir, "roster", "vehicles.json")
	customers := filepath.Join(dir, "roster", "customers.csv")
	_, err := run(t, "seed", "--vehicles", vehicles, "--customers", customers)
	require.NoError(t, err)
	return vehicles, customers
}

func TestVersionCommand(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "rentalctl v"+Version)
}

func TestDemoCommand(t *testing.T) {
	out, err := run(t, "demo")
	require.NoError(t, err)

	assert.Contains(t, out, "=== Car Rental System Demo ===")
	assert.Contains(t, out, "Rental created: Rental R0001: John Smith renting Toyota Camry for 3 days ($135.00)")
	assert.Contains(t, out, "available_cars: 4")
	assert.Contains(t, out, "utilization: 20.00%")
}

func TestDemoCommand_UnknownVehicle(t *testing.T) {
	_, err := run(t, "demo", "--vehicle", "NOPE")
	assert.ErrorContains(t, err, "vehicle not found")
}

func TestSeedAndValidate(t *testing.T) {
	vehicles, customers := seedFiles(t)

	out, err := run(t, "validate", "--vehicles", vehicles, "--customers", customers)
	require.NoError(t, err)
	assert.Contains(t, out, "5 vehicles")
	assert.Contains(t, out, "4 customers")
}

func TestValidate_ReportsBadRecords(t *testing.T) {
	vehicles, customers := seedFiles(t)
	require.NoError(t, os.WriteFile(vehicles, []byte(`[{"car_id":"C1","make":"Ford","model":"T","year":1850,"daily_rate":10}]`), 0600))

	out, err := run(t, "validate", "--vehicles", vehicles, "--customers", customers)
	assert.Error(t, err)
	assert.Contains(t, out, "FAIL "+vehicles)
	assert.Contains(t, out, "OK   "+customers)
}

func TestValidate_RequiresBothFiles(t *testing.T) {
	_, err := run(t, "validate", "--vehicles", "x.json")
	assert.ErrorContains(t, err, "--customers")
}

func TestReportCommand(t *testing.T) {
	t.Run("sample fleet as text", func(t *testing.T) {
		out, err := run(t, "report")
		require.NoError(t, err)
		assert.Contains(t, out, "Total Cars in Fleet: 5")
		assert.Contains(t, out, "Fleet Utilization: 0.00%")
		assert.Contains(t, out, "No active rentals")
	})

	t.Run("files as json", func(t *testing.T) {
		vehicles, customers := seedFiles(t)
		out, err := run(t, "report", "--vehicles", vehicles, "--customers", customers, "--format", "json")
		require.NoError(t, err)

		var body map[string]any
		require.NoError(t, json.Unmarshal([]byte(out), &body))
		summary := body["summary"].(map[string]any)
		assert.EqualValues(t, 5, summary["total_vehicles"])
		assert.EqualValues(t, 4, summary["total_customers"])
	})

	t.Run("unknown format", func(t *testing.T) {
		_, err := run(t, "report", "--format", "xml")
		assert.ErrorContains(t, err, "unknown format")
	})
}

func TestDBPush(t *testing.T) {
	vehicles, customers := seedFiles(t)

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	orig := openDB
	openDB = func(string) (*sql.DB, error) { return db, nil }
	defer func() { openDB = orig }()

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM vehicles").WillReturnResult(sqlmock.NewResult(0, 0))
	for i := 0; i < 5; i++ {
		mock.ExpectExec("INSERT INTO vehicles").WillReturnResult(sqlmock.NewResult(0, 1))
	}
	mock.ExpectCommit()
	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM customers").WillReturnResult(sqlmock.NewResult(0, 0))
	for i := 0; i < 4; i++ {
		mock.ExpectExec("INSERT INTO customers").WillReturnResult(sqlmock.NewResult(0, 1))
	}
	mock.ExpectCommit()
	mock.ExpectClose()

	out, err := run(t, "db", "push", "--vehicles", vehicles, "--customers", customers)
	require.NoError(t, err)
	assert.Contains(t, out, "Pushed 5 vehicles and 4 customers")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLogLevel_ConfigFileUnlessFlagGiven(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "rentalctl.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("log:\n  level: info\n"), 0600))
	vehicles := filepath.Join(dir, "vehicles.json")
	customers := filepath.Join(dir, "customers.csv")

	seed := func(extra ...string) string {
		cmd := NewRootCmd()
		stderr := new(bytes.Buffer)
		cmd.SetOut(new(bytes.Buffer))
		cmd.SetErr(stderr)
		cmd.SetArgs(append([]string{"seed", "--config", cfgPath, "--vehicles", vehicles, "--customers", customers}, extra...))
		require.NoError(t, cmd.Execute())
		return stderr.String()
	}

	assert.Contains(t, seed(), "Seeded roster files")
	assert.NotContains(t, seed("--log-level", "warn"), "Seeded roster files")
}
