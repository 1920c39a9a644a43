package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 30, cfg.Rental.RetentionDays)
	assert.Equal(t, IDFormatSequence, cfg.Rental.IDFormat)
	assert.Equal(t, "0 0 * * * *", cfg.Scheduler.CleanupRentals)
	assert.False(t, cfg.Database.Enabled)
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `
server:
  port: 9090
rental:
  retention_days: 0
  id_format: UUID
  unique_ids: true
roster:
  vehicles_file: data/vehicles.json
  customers_file: data/customers.csv
scheduler:
  cleanup_rentals: "0 */5 * * * *"
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "0.0.0.0", cfg.Server.Host, "unset keys keep their defaults")
	assert.Equal(t, 0, cfg.Rental.RetentionDays)
	assert.Equal(t, IDFormatUUID, cfg.Rental.IDFormat)
	assert.True(t, cfg.Rental.UniqueIDs)
	assert.Equal(t, "data/vehicles.json", cfg.Roster.VehiclesFile)
	assert.Equal(t, "0 */5 * * * *", cfg.Scheduler.CleanupRentals)
	assert.Equal(t, "0.0.0.0:9090", cfg.GetServerAddress())
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "7000")
	t.Setenv("RENTAL_RETENTION_DAYS", "7")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("VEHICLES_FILE", "/tmp/v.json")

	cfg, err := Load(writeConfig(t, "server:\n  port: 9090\n"))
	require.NoError(t, err)
	assert.Equal(t, 7000, cfg.Server.Port)
	assert.Equal(t, 7, cfg.Rental.RetentionDays)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "/tmp/v.json", cfg.Roster.VehiclesFile)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body string
		msg  string
	}{
		{"Bad port", "server:\n  port: 70000\n", "invalid server port"},
		{"Negative retention", "rental:\n  retention_days: -1\n", "retention days"},
		{"Unknown id format", "rental:\n  id_format: snowflake\n", "unknown rental id format"},
		{"Database without host", "database:\n  enabled: true\n  user: u\n  database: d\n", "database host is required"},
		{"Malformed yaml", "server: [", "failed to parse config file"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.msg)
		})
	}

	t.Run("Missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.ErrorContains(t, err, "failed to read config file")
	})
}

func TestGetDatabaseConnectionString(t *testing.T) {
	cfg := Default()
	cfg.Database = DatabaseConfig{Host: "db", Port: 5432, User: "fleet", Password: "secret", Database: "rentals", SSLMode: "disable"}
	assert.Equal(t, "postgres://fleet:secret@db:5432/rentals?sslmode=disable", cfg.GetDatabaseConnectionString())
}
