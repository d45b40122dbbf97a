// Package config holds the lvmaze run configuration and loads it in layers:
// defaults, an optional HCL file, the environment (plus an optional .env
// file), and finally command-line flags applied by the caller.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid value")

// Auto marks End and From as derived from other fields (see Resolve).
const Auto = -1

// Config holds everything one run needs.
type Config struct {
	// Side is the grid side length; the maze has Side² cells.
	Side int
	// Start and End are the path finder endpoints. End == Auto means Side²-1.
	Start int
	End   int
	// From is the cell the generator carves from. Auto means Start.
	From int
	// Seed feeds the generator RNG. 0 asks the shell for a time-based seed.
	Seed int64

	StepDelay   time.Duration
	SettleDelay time.Duration
	PathDelay   time.Duration

	Sound bool
	Log   LogConfig
}

// LogConfig selects the slog handler and its destination.
type LogConfig struct {
	Level  string
	Format string
	// File receives the logs; empty discards them.
	File string
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Side:        16,
		Start:       0,
		End:         Auto,
		From:        Auto,
		Seed:        0,
		StepDelay:   15 * time.Millisecond,
		SettleDelay: 400 * time.Millisecond,
		PathDelay:   25 * time.Millisecond,
		Sound:       false,
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Resolve fills the Auto fields from Side and Start.
func (c *Config) Resolve() {
	if c.End == Auto {
		c.End = c.Side*c.Side - 1
	}
	if c.From == Auto {
		c.From = c.Start
	}
	c.Log.Level = strings.ToLower(c.Log.Level)
	c.Log.Format = strings.ToLower(c.Log.Format)
}

// Validate checks ranges. Call Resolve first.
func (c Config) Validate() error {
	if c.Side < 1 {
		return fmt.Errorf("%w: side must be at least 1, got %d", ErrInvalid, c.Side)
	}
	cells := c.Side * c.Side
	for _, f := range []struct {
		name string
		v    int
	}{{"start", c.Start}, {"end", c.End}, {"from", c.From}} {
		if f.v < 0 || f.v >= cells {
			return fmt.Errorf("%w: %s %d not in [0,%d)", ErrInvalid, f.name, f.v, cells)
		}
	}
	for _, d := range []struct {
		name string
		v    time.Duration
	}{{"step delay", c.StepDelay}, {"settle delay", c.SettleDelay}, {"path delay", c.PathDelay}} {
		if d.v < 0 {
			return fmt.Errorf("%w: %s cannot be negative (%s)", ErrInvalid, d.name, d.v)
		}
	}
	if err := ValidateLogLevel(c.Log.Level); err != nil {
		return err
	}

	return ValidateLogFormat(c.Log.Format)
}

// ValidateLogLevel accepts debug, info, warn and error.
func ValidateLogLevel(level string) error {
	switch strings.ToLower(level) {
	case "debug", "info", "warn", "error":
		return nil
	}
	return fmt.Errorf("%w: log level must be 'debug', 'info', 'warn', or 'error', got %q", ErrInvalid, level)
}

// ValidateLogFormat accepts text and json.
func ValidateLogFormat(format string) error {
	switch strings.ToLower(format) {
	case "text", "json":
		return nil
	}
	return fmt.Errorf("%w: log format must be 'text' or 'json', got %q", ErrInvalid, format)
}
