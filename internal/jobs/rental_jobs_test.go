package jobs

import (
	"bytes"
	"testing"
	"time"

	"car-rental-system/internal/config"
	"car-rental-system/internal/logger"
	"car-rental-system/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRunner(t *testing.T, now *time.Time) (*JobRunner, *service.Manager, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	logger.InitializeWithWriter(&buf, "info", "text")

	m := service.NewManager(
		service.WithClock(func() time.Time { return *now }),
		service.WithRetentionDays(1),
	)
	require.NoError(t, service.LoadSampleData(m))
	return NewJobRunner(service.NewGuarded(m), config.Default()), m, &buf
}

func TestCleanupOldRentals(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	jr, m, buf := newRunner(t, &now)

	rental, err := m.RentVehicle("CUST001", "C001", 1)
	require.NoError(t, err)
	require.NoError(t, m.ReturnVehicle(rental.ID))
	_, err = m.RentVehicle("CUST002", "C002", 1)
	require.NoError(t, err)

	now = now.Add(5 * 24 * time.Hour)
	jr.CleanupOldRentals()

	assert.Len(t, m.Rentals(), 1, "only the active rental should remain")
	assert.Contains(t, buf.String(), "Cleaned up old rentals")
	assert.Contains(t, buf.String(), "removed=1")
	assert.Contains(t, buf.String(), "job=CleanupOldRentals")
}

func TestLogFleetSummary(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	jr, _, buf := newRunner(t, &now)

	jr.LogFleetSummary()

	out := buf.String()
	assert.Contains(t, out, "Fleet summary")
	assert.Contains(t, out, "total_vehicles=5")
	assert.Contains(t, out, "utilization=0.00%")
}

func TestRunWithRecovery(t *testing.T) {
	now := time.Now()
	jr, _, buf := newRunner(t, &now)

	assert.NotPanics(t, func() {
		jr.runWithRecovery("Exploding", func() { panic("kaboom") })
	})
	assert.Contains(t, buf.String(), "Job panicked")
	assert.Contains(t, buf.String(), "kaboom")
}

func TestRunWithRecovery_EmptyFleetSummary(t *testing.T) {
	var buf bytes.Buffer
	logger.InitializeWithWriter(&buf, "info", "text")
	jr := NewJobRunner(service.NewGuarded(service.NewManager()), config.Default())

	jr.RunAll()
	assert.Contains(t, buf.String(), "utilization=N/A")
	assert.NotContains(t, buf.String(), "Job panicked")
}
