package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Environment variable names.
const (
	EnvSide      = "LVMAZE_SIDE"
	EnvStart     = "LVMAZE_START"
	EnvEnd       = "LVMAZE_END"
	EnvFrom      = "LVMAZE_FROM"
	EnvSeed      = "LVMAZE_SEED"
	EnvStep      = "LVMAZE_STEP"
	EnvSettle    = "LVMAZE_SETTLE"
	EnvPath      = "LVMAZE_PATH_DELAY"
	EnvSound     = "LVMAZE_SOUND"
	EnvLogLevel  = "LVMAZE_LOG_LEVEL"
	EnvLogFormat = "LVMAZE_LOG_FORMAT"
	EnvLogFile   = "LVMAZE_LOG_FILE"
)

// LookupFunc has the signature of os.LookupEnv.
type LookupFunc func(key string) (string, bool)

// ReadDotEnv returns the variables of a .env file. A missing file yields an
// empty map and no error.
func ReadDotEnv(path string) (map[string]string, error) {
	vars, err := godotenv.Read(path)
	if errors.Is(err, fs.ErrNotExist) {
		return map[string]string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read env file %s: %w", path, err)
	}
	return vars, nil
}

// withFallback consults lookup first and vars second, so real environment
// variables win over the .env file.
func withFallback(lookup LookupFunc, vars map[string]string) LookupFunc {
	return func(key string) (string, bool) {
		if v, ok := lookup(key); ok {
			return v, true
		}
		v, ok := vars[key]
		return v, ok
	}
}

// ApplyEnv overrides cfg with every LVMAZE_* variable lookup finds.
func ApplyEnv(lookup LookupFunc, cfg *Config) error {
	if lookup == nil {
		lookup = os.LookupEnv
	}
	ints := []struct {
		key string
		dst *int
	}{
		{EnvSide, &cfg.Side},
		{EnvStart, &cfg.Start},
		{EnvEnd, &cfg.End},
		{EnvFrom, &cfg.From},
	}
	for _, p := range ints {
		if v, ok := lookup(p.key); ok {
			n, err := strconv.Atoi(v)
			if err != nil {
				return fmt.Errorf("%w: environment variable %s must be an integer: %v", ErrInvalid, p.key, err)
			}
			*p.dst = n
		}
	}
	if v, ok := lookup(EnvSeed); ok {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%w: environment variable %s must be an integer: %v", ErrInvalid, EnvSeed, err)
		}
		cfg.Seed = n
	}
	durations := []struct {
		key string
		dst *time.Duration
	}{
		{EnvStep, &cfg.StepDelay},
		{EnvSettle, &cfg.SettleDelay},
		{EnvPath, &cfg.PathDelay},
	}
	for _, p := range durations {
		if v, ok := lookup(p.key); ok {
			d, err := time.ParseDuration(v)
			if err != nil {
				return fmt.Errorf("%w: environment variable %s must be a duration: %v", ErrInvalid, p.key, err)
			}
			*p.dst = d
		}
	}
	if v, ok := lookup(EnvSound); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: environment variable %s must be a boolean: %v", ErrInvalid, EnvSound, err)
		}
		cfg.Sound = b
	}
	if v, ok := lookup(EnvLogLevel); ok {
		cfg.Log.Level = v
	}
	if v, ok := lookup(EnvLogFormat); ok {
		cfg.Log.Format = v
	}
	if v, ok := lookup(EnvLogFile); ok {
		cfg.Log.File = v
	}

	return nil
}
