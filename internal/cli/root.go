// Package cli provides the rentalctl command-line interface.
package cli

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	"car-rental-system/internal/config"
	"car-rental-system/internal/logger"
	"car-rental-system/internal/repository"
	"car-rental-system/internal/repository/file"
	"car-rental-system/internal/service"

	_ "github.com/lib/pq"
	"github.com/spf13/cobra"
)

// Version information (set at build time).
var Version = "0.1.0"

// configKey is used to store config in context.
type configKey struct{}

// openDB is swapped out in tests.
var openDB = func(dsn string) (*sql.DB, error) {
	return sql.Open("postgres", dsn)
}

// NewRootCmd creates and returns the root command.
func NewRootCmd() *cobra.Command {
	var (
		cfgFile       string
		vehiclesFile  string
		customersFile string
		logLevel      string
	)

	rootCmd := &cobra.Command{
		Use:   "rentalctl",
		Short: "rentalctl - car rental fleet tool",
		Long: `rentalctl works with car rental rosters offline: it runs the demo,
prints fleet reports, writes and validates roster files, and pushes rosters
to PostgreSQL.`,
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip config loading for help and completion commands
			if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "__complete" {
				return nil
			}

			cfg, err := config.Load(cfgFile)
			if err != nil {
				return err
			}
			if vehiclesFile != "" {
				cfg.Roster.VehiclesFile = vehiclesFile
			}
			if customersFile != "" {
				cfg.Roster.CustomersFile = customersFile
			}
			if logLevel != "" {
				cfg.Log.Level = logLevel
			}

			// Logs go to stderr so reports can be piped
			logger.InitializeWithWriter(cmd.ErrOrStderr(), cfg.Log.Level, cfg.Log.Format)

			cmd.SetContext(context.WithValue(cmd.Context(), configKey{}, cfg))
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: built-in defaults)")
	rootCmd.PersistentFlags().StringVar(&vehiclesFile, "vehicles", "", "vehicles JSON file")
	rootCmd.PersistentFlags().StringVar(&customersFile, "customers", "", "customers CSV file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug|info|warn|error); overrides the config file")

	rootCmd.AddCommand(NewVersionCommand(Version))
	rootCmd.AddCommand(NewDemoCommand())
	rootCmd.AddCommand(NewReportCommand())
	rootCmd.AddCommand(NewSeedCommand())
	rootCmd.AddCommand(NewValidateCommand())
	rootCmd.AddCommand(NewDBCommand())

	return rootCmd
}

// Execute runs the root command.
func Execute() error {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}

// GetConfig retrieves the config from the command context.
func GetConfig(ctx context.Context) *config.Config {
	if c, ok := ctx.Value(configKey{}).(*config.Config); ok {
		return c
	}
	return config.Default()
}

// NewVersionCommand creates the version command.
func NewVersionCommand(version string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, _ []string) {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "rentalctl v%s\n", version)
		},
	}
}

func fileStore(cfg *config.Config) (*file.Store, error) {
	if cfg.Roster.VehiclesFile == "" || cfg.Roster.CustomersFile == "" {
		return nil, fmt.Errorf("both --vehicles and --customers files are required")
	}
	return file.NewStore(cfg.Roster.VehiclesFile, cfg.Roster.CustomersFile), nil
}

// newManager builds a manager from the rental config and fills it from the
// roster files when both are set, or from the sample data otherwise.
func newManager(ctx context.Context, cfg *config.Config) (*service.Manager, error) {
	m := service.NewManager(service.OptionsFromConfig(cfg.Rental)...)

	var repo repository.RosterRepository
	if cfg.Roster.VehiclesFile != "" && cfg.Roster.CustomersFile != "" {
		repo = file.NewStore(cfg.Roster.VehiclesFile, cfg.Roster.CustomersFile)
	}
	if repo == nil || cfg.Roster.LoadSampleData {
		logger.Debug("Loading sample data")
		if err := service.LoadSampleData(m); err != nil {
			return nil, err
		}
	}
	if repo != nil {
		if err := service.LoadRoster(ctx, repo, m); err != nil {
			return nil, err
		}
	}
	return m, nil
}
