package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Rental id formats
const (
	IDFormatSequence = "sequence"
	IDFormatUUID     = "uuid"
)

// Config represents the application configuration
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Log       LogConfig       `yaml:"log"`
	Rental    RentalConfig    `yaml:"rental"`
	Roster    RosterConfig    `yaml:"roster"`
	Database  DatabaseConfig  `yaml:"database"`
	Scheduler SchedulerConfig `yaml:"scheduler"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// LogConfig contains logging settings
type LogConfig struct {
	Level  string `yaml:"level"`  // "debug", "info", "warn", "error"
	Format string `yaml:"format"` // "json" or "text"
}

// RentalConfig contains rental book settings
type RentalConfig struct {
	RetentionDays int    `yaml:"retention_days"`
	IDFormat      string `yaml:"id_format"`  // "sequence" or "uuid"
	UniqueIDs     bool   `yaml:"unique_ids"` // reject duplicate vehicle/customer ids
}

// RosterConfig tells the server where the initial fleet and customers come from
type RosterConfig struct {
	VehiclesFile   string `yaml:"vehicles_file"`  // JSON
	CustomersFile  string `yaml:"customers_file"` // CSV
	LoadSampleData bool   `yaml:"load_sample_data"`
}

// DatabaseConfig contains PostgreSQL connection settings for the roster store
type DatabaseConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Database string `yaml:"database"`
	SSLMode  string `yaml:"ssl_mode"`
}

// SchedulerConfig contains cron schedule settings (with seconds field)
type SchedulerConfig struct {
	CleanupRentals string `yaml:"cleanup_rentals"`
}

// Default returns the configuration used for keys a file leaves out
func Default() *Config {
	return &Config{
		Server: ServerConfig{Host: "0.0.0.0", Port: 8080},
		Log:    LogConfig{Level: "info", Format: "text"},
		Rental: RentalConfig{
			RetentionDays: 30,
			IDFormat:      IDFormatSequence,
		},
		Database: DatabaseConfig{Port: 5432, SSLMode: "disable"},
		Scheduler: SchedulerConfig{
			CleanupRentals: "0 0 * * * *", // hourly
		},
	}
}

// Load reads configuration from a YAML file. An empty path yields the
// defaults, still subject to environment overrides.
func Load(configPath string) (*Config, error) {
	cfg := Default()

	if configPath != "" {
		data, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	cfg.overrideWithEnv()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// overrideWithEnv overrides config values with environment variables
func (c *Config) overrideWithEnv() {
	// Server
	if val := os.Getenv("SERVER_HOST"); val != "" {
		c.Server.Host = val
	}
	if val := os.Getenv("SERVER_PORT"); val != "" {
		fmt.Sscanf(val, "%d", &c.Server.Port)
	}

	// Log
	if val := os.Getenv("LOG_LEVEL"); val != "" {
		c.Log.Level = val
	}
	if val := os.Getenv("LOG_FORMAT"); val != "" {
		c.Log.Format = val
	}

	// Rental
	if val := os.Getenv("RENTAL_RETENTION_DAYS"); val != "" {
		fmt.Sscanf(val, "%d", &c.Rental.RetentionDays)
	}
	if val := os.Getenv("RENTAL_ID_FORMAT"); val != "" {
		c.Rental.IDFormat = val
	}

	// Roster
	if val := os.Getenv("VEHICLES_FILE"); val != "" {
		c.Roster.VehiclesFile = val
	}
	if val := os.Getenv("CUSTOMERS_FILE"); val != "" {
		c.Roster.CustomersFile = val
	}

	// Database
	if val := os.Getenv("DB_HOST"); val != "" {
		c.Database.Host = val
	}
	if val := os.Getenv("DB_PORT"); val != "" {
		fmt.Sscanf(val, "%d", &c.Database.Port)
	}
	if val := os.Getenv("DB_USER"); val != "" {
		c.Database.User = val
	}
	if val := os.Getenv("DB_PASSWORD"); val != "" {
		c.Database.Password = val
	}
	if val := os.Getenv("DB_NAME"); val != "" {
		c.Database.Database = val
	}
	if val := os.Getenv("DB_SSL_MODE"); val != "" {
		c.Database.SSLMode = val
	}
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	if c.Rental.RetentionDays < 0 {
		return fmt.Errorf("retention days must not be negative: %d", c.Rental.RetentionDays)
	}
	c.Rental.IDFormat = strings.ToLower(c.Rental.IDFormat)
	switch c.Rental.IDFormat {
	case "":
		c.Rental.IDFormat = IDFormatSequence
	case IDFormatSequence, IDFormatUUID:
	default:
		return fmt.Errorf("unknown rental id format: %q", c.Rental.IDFormat)
	}

	if c.Database.Enabled {
		if c.Database.Host == "" {
			return fmt.Errorf("database host is required")
		}
		if c.Database.User == "" {
			return fmt.Errorf("database user is required")
		}
		if c.Database.Database == "" {
			return fmt.Errorf("database name is required")
		}
	}

	// Log defaults
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}

	// Scheduler defaults
	if c.Scheduler.CleanupRentals == "" {
		c.Scheduler.CleanupRentals = "0 0 * * * *"
	}

	return nil
}

// GetDatabaseConnectionString returns a PostgreSQL connection string
func (c *Config) GetDatabaseConnectionString() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Database,
		c.Database.SSLMode,
	)
}

// GetServerAddress returns the HTTP server address
func (c *Config) GetServerAddress() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}
