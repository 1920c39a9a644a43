package cli

import (
	"database/sql"
	"fmt"

	"car-rental-system/internal/config"
	"car-rental-system/internal/logger"
	"car-rental-system/internal/repository/postgres"
	"car-rental-system/internal/service"

	"github.com/spf13/cobra"
)

// NewDBCommand creates the db command group.
func NewDBCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "db",
		Short: "Move rosters between files and PostgreSQL",
	}
	cmd.AddCommand(newDBPushCommand())
	cmd.AddCommand(newDBPullCommand())
	return cmd
}

func newDBPushCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "push",
		Short: "Replace the database rosters with the roster files",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := GetConfig(cmd.Context())
			files, err := fileStore(cfg)
			if err != nil {
				return err
			}

			m := service.NewManager()
			if err := service.LoadRoster(cmd.Context(), files, m); err != nil {
				return err
			}

			db, err := connect(cfg)
			if err != nil {
				return err
			}
			defer db.Close()

			if err := service.SaveRoster(cmd.Context(), postgres.NewStore(db), m); err != nil {
				return err
			}
			s := m.Summary()
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Pushed %d vehicles and %d customers\n", s.TotalVehicles, s.TotalCustomers)
			return nil
		},
	}
}

func newDBPullCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "pull",
		Short: "Write the database rosters to the roster files",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := GetConfig(cmd.Context())
			files, err := fileStore(cfg)
			if err != nil {
				return err
			}

			db, err := connect(cfg)
			if err != nil {
				return err
			}
			defer db.Close()

			m := service.NewManager()
			if err := service.LoadRoster(cmd.Context(), postgres.NewStore(db), m); err != nil {
				return err
			}
			if err := service.SaveRoster(cmd.Context(), files, m); err != nil {
				return err
			}
			s := m.Summary()
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Pulled %d vehicles and %d customers\n", s.TotalVehicles, s.TotalCustomers)
			return nil
		},
	}
}

func connect(cfg *config.Config) (*sql.DB, error) {
	logger.Info("Connecting to database...", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database)
	db, err := openDB(cfg.GetDatabaseConnectionString())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return db, nil
}
