package scribematch

import (
	"fmt"

	"github.com/steveroseik/scribematch/types"
)

// Config is the configuration for the Engine.
//
// The zero value is usable: New applies defaults for unset fields.
type Config struct {
	// MaxAttempts is the restart budget handed to the default search
	// strategy. Ignored when a custom strategy is injected via WithStrategy.
	// Default: 100.
	MaxAttempts int `yaml:"maxAttempts"`

	// DisableReportCache turns off memoization of conflict reports.
	// AnalyzeConflicts is a pure function of (roster, target count), so
	// identical requests are served from cache by default.
	DisableReportCache bool `yaml:"disableReportCache"`
}

// DefaultConfig returns a Config with production defaults.
func DefaultConfig() Config {
	return Config{
		MaxAttempts: 100,
	}
}

// Validate checks configuration validity.
//
// Returns:
//   - error: nil, or a wrap of ErrInvalidConfig naming the offending field
func (c *Config) Validate() error {
	if c.MaxAttempts < 0 {
		return fmt.Errorf("%w: MaxAttempts must not be negative, got %d",
			types.ErrInvalidConfig, c.MaxAttempts)
	}

	return nil
}

// SetDefaults fills in missing configuration values with defaults.
// Fields that are already set are not overwritten.
func (c *Config) SetDefaults() {
	if c.MaxAttempts == 0 {
		c.MaxAttempts = DefaultConfig().MaxAttempts
	}
}
