package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// envMap returns a LookupFunc over a fixed map.
func envMap(m map[string]string) LookupFunc {
	return func(k string) (string, bool) {
		v, ok := m[k]
		return v, ok
	}
}

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))
	return p
}

func TestDefault_Resolve(t *testing.T) {
	cfg := Default()
	cfg.Resolve()
	assert.Equal(t, 16, cfg.Side)
	assert.Equal(t, 255, cfg.End)
	assert.Equal(t, 0, cfg.From)
	assert.Equal(t, 15*time.Millisecond, cfg.StepDelay)
	assert.Equal(t, 400*time.Millisecond, cfg.SettleDelay)
	assert.Equal(t, 25*time.Millisecond, cfg.PathDelay)
	assert.NoError(t, cfg.Validate())
}

func TestResolve_FromFollowsStart(t *testing.T) {
	cfg := Default()
	cfg.Side = 4
	cfg.Start = 5
	cfg.Log.Level = "DEBUG"
	cfg.Resolve()
	assert.Equal(t, 5, cfg.From)
	assert.Equal(t, 15, cfg.End)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"side", func(c *Config) { c.Side = 0 }},
		{"start", func(c *Config) { c.Start = 256 }},
		{"end", func(c *Config) { c.End = -2 }},
		{"from", func(c *Config) { c.From = 1000 }},
		{"step", func(c *Config) { c.StepDelay = -time.Second }},
		{"settle", func(c *Config) { c.SettleDelay = -time.Second }},
		{"path", func(c *Config) { c.PathDelay = -time.Second }},
		{"level", func(c *Config) { c.Log.Level = "verbose" }},
		{"format", func(c *Config) { c.Log.Format = "xml" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			cfg.Resolve()
			tc.mutate(&cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalid)
		})
	}
}

func TestValidate_SingleCell(t *testing.T) {
	cfg := Default()
	cfg.Side = 1
	cfg.Resolve()
	assert.Equal(t, 0, cfg.End)
	assert.NoError(t, cfg.Validate())
}

func TestLoadFile(t *testing.T) {
	path := writeFile(t, "lvmaze.hcl", `
side  = floor(min((terminal.cols / 2 - 1) / 2, (terminal.rows - 2) / 2))
start = 3
seed  = 42
sound = true

delays {
  step   = "10ms"
  settle = "1s"
}

log {
  level  = "debug"
  format = "json"
  file   = "run.log"
}
`)
	cfg := Default()
	require.NoError(t, LoadFile(path, Terminal{Cols: 80, Rows: 25}, &cfg))

	assert.Equal(t, 11, cfg.Side)
	assert.Equal(t, 3, cfg.Start)
	assert.Equal(t, Auto, cfg.End)
	assert.Equal(t, int64(42), cfg.Seed)
	assert.True(t, cfg.Sound)
	assert.Equal(t, 10*time.Millisecond, cfg.StepDelay)
	assert.Equal(t, time.Second, cfg.SettleDelay)
	assert.Equal(t, 25*time.Millisecond, cfg.PathDelay, "unset attributes keep their value")
	assert.Equal(t, LogConfig{Level: "debug", Format: "json", File: "run.log"}, cfg.Log)
}

func TestLoadFile_Errors(t *testing.T) {
	cfg := Default()

	bad := writeFile(t, "bad.hcl", "side = \n")
	err := LoadFile(bad, Terminal{}, &cfg)
	assert.ErrorContains(t, err, "failed to parse")

	unknown := writeFile(t, "unknown.hcl", "colour = \"red\"\n")
	err = LoadFile(unknown, Terminal{}, &cfg)
	assert.ErrorContains(t, err, "failed to decode")

	dur := writeFile(t, "dur.hcl", "delays {\n  step = \"soon\"\n}\n")
	err = LoadFile(dur, Terminal{}, &cfg)
	assert.ErrorIs(t, err, ErrInvalid)

	err = LoadFile(filepath.Join(t.TempDir(), "missing.hcl"), Terminal{}, &cfg)
	assert.Error(t, err)
}

func TestApplyEnv(t *testing.T) {
	cfg := Default()
	err := ApplyEnv(envMap(map[string]string{
		EnvSide:      "8",
		EnvStart:     "1",
		EnvEnd:       "62",
		EnvFrom:      "9",
		EnvSeed:      "-7",
		EnvStep:      "1ms",
		EnvSettle:    "2ms",
		EnvPath:      "3ms",
		EnvSound:     "true",
		EnvLogLevel:  "warn",
		EnvLogFormat: "json",
		EnvLogFile:   "/tmp/x.log",
	}), &cfg)
	require.NoError(t, err)

	assert.Equal(t, 8, cfg.Side)
	assert.Equal(t, 1, cfg.Start)
	assert.Equal(t, 62, cfg.End)
	assert.Equal(t, 9, cfg.From)
	assert.Equal(t, int64(-7), cfg.Seed)
	assert.Equal(t, time.Millisecond, cfg.StepDelay)
	assert.Equal(t, 2*time.Millisecond, cfg.SettleDelay)
	assert.Equal(t, 3*time.Millisecond, cfg.PathDelay)
	assert.True(t, cfg.Sound)
	assert.Equal(t, LogConfig{Level: "warn", Format: "json", File: "/tmp/x.log"}, cfg.Log)
}

func TestApplyEnv_Errors(t *testing.T) {
	for _, kv := range [][2]string{
		{EnvSide, "big"},
		{EnvSeed, "1.5"},
		{EnvStep, "fast"},
		{EnvSound, "loud"},
	} {
		cfg := Default()
		err := ApplyEnv(envMap(map[string]string{kv[0]: kv[1]}), &cfg)
		assert.ErrorIs(t, err, ErrInvalid, kv[0])
	}
}

// TestLoad_Precedence: defaults < file < .env < process environment.
func TestLoad_Precedence(t *testing.T) {
	file := writeFile(t, "lvmaze.hcl", "side = 10\nstart = 2\nseed = 5\n")
	dotenv := writeFile(t, ".env", "LVMAZE_START=4\nLVMAZE_SEED=6\n")

	cfg, err := Load(Sources{
		File:    file,
		EnvFile: dotenv,
		Lookup:  envMap(map[string]string{EnvSeed: "7"}),
	})
	require.NoError(t, err)
	assert.Equal(t, 10, cfg.Side, "file over default")
	assert.Equal(t, 4, cfg.Start, ".env over file")
	assert.Equal(t, int64(7), cfg.Seed, "environment over .env")
	assert.Equal(t, "info", cfg.Log.Level, "default kept")
}

func TestLoad_MissingDotEnv(t *testing.T) {
	cfg, err := Load(Sources{
		EnvFile: filepath.Join(t.TempDir(), ".env"),
		Lookup:  envMap(nil),
	})
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}
