package service

import (
	"fmt"
	"time"

	"car-rental-system/internal/config"

	"github.com/google/uuid"
)

// Option configures a Manager.
type Option func(*Manager)

// WithRetentionDays sets the initial retention window. Negative values are ignored.
func WithRetentionDays(days int) Option {
	return func(m *Manager) {
		if days >= 0 {
			m.retentionDays = days
		}
	}
}

// WithUniqueIDs makes AddVehicle and AddCustomer reject ids already registered.
func WithUniqueIDs() Option {
	return func(m *Manager) {
		m.uniqueIDs = true
	}
}

// WithClock replaces time.Now as the source of rental start times and cleanup cutoffs.
func WithClock(now func() time.Time) Option {
	return func(m *Manager) {
		m.now = now
	}
}

// WithIDGenerator sets the rental id source. Ids must never repeat.
func WithIDGenerator(next func() string) Option {
	return func(m *Manager) {
		m.nextID = next
	}
}

// SequenceIDs returns a generator yielding prefix0001, prefix0002, ...
// The counter only moves forward, so ids are not reused after cleanup.
func SequenceIDs(prefix string) func() string {
	var n int
	return func() string {
		n++
		return fmt.Sprintf("%s%04d", prefix, n)
	}
}

// UUIDIDs returns a generator of random UUID strings.
func UUIDIDs() func() string {
	return uuid.NewString
}

// OptionsFromConfig translates the rental section of the configuration.
func OptionsFromConfig(cfg config.RentalConfig) []Option {
	opts := []Option{WithRetentionDays(cfg.RetentionDays)}
	if cfg.IDFormat == config.IDFormatUUID {
		opts = append(opts, WithIDGenerator(UUIDIDs()))
	}
	if cfg.UniqueIDs {
		opts = append(opts, WithUniqueIDs())
	}
	return opts
}
