package jobs

import (
	"car-rental-system/internal/logger"
	"car-rental-system/internal/service"
	"car-rental-system/internal/utils"
)

// CleanupOldRentals prunes returned rentals that fell out of the retention window
func (jr *JobRunner) CleanupOldRentals() {
	jr.runWithRecovery("CleanupOldRentals", func() {
		var removed, remaining, retention int
		_ = jr.fleet.Do(func(m *service.Manager) error {
			removed = m.CleanupOldRentals()
			remaining = len(m.Rentals())
			retention = m.RetentionDays()
			return nil
		})

		logger.Info("Cleaned up old rentals",
			"removed", removed,
			"remaining", remaining,
			"retention_days", retention)
	})
}

// LogFleetSummary writes the current summary to the log
func (jr *JobRunner) LogFleetSummary() {
	jr.runWithRecovery("LogFleetSummary", func() {
		var line []any
		_ = jr.fleet.Do(func(m *service.Manager) error {
			s := m.Summary()
			line = []any{
				"total_vehicles", s.TotalVehicles,
				"available_vehicles", s.AvailableVehicles,
				"total_customers", s.TotalCustomers,
				"active_rentals", s.ActiveRentals,
				"completed_rentals", s.CompletedRentals,
				"total_revenue", s.TotalRevenue.StringFixed(2),
				"utilization", utils.FormatUtilization(m.Utilization()),
			}
			return nil
		})

		logger.Info("Fleet summary", line...)
	})
}
