package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"time"

	"github.com/katalvlaran/lvmaze/internal/config"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// usageError builds the exit-code-2 error for bad invocations.
func usageError(err error) *ExitError {
	return &ExitError{Code: 2, Message: err.Error()}
}

// Flags is the parsed command line. Only flags present on the command line
// override lower configuration layers.
type Flags struct {
	// ConfigPath is the optional HCL file.
	ConfigPath string
	// EnvPath is the .env file consulted before the environment.
	EnvPath string

	set map[string]bool

	side, start, end, from int
	seed                   int64
	step, settle, path     time.Duration
	sound                  bool
	logLevel, logFormat    string
	logFile                string
}

// IsSet reports whether the named flag appeared on the command line.
func (f *Flags) IsSet(name string) bool { return f.set[name] }

// Apply copies every explicitly set flag into cfg.
func (f *Flags) Apply(cfg *config.Config) {
	if f.IsSet("side") {
		cfg.Side = f.side
	}
	if f.IsSet("start") {
		cfg.Start = f.start
	}
	if f.IsSet("end") {
		cfg.End = f.end
	}
	if f.IsSet("from") {
		cfg.From = f.from
	}
	if f.IsSet("seed") {
		cfg.Seed = f.seed
	}
	if f.IsSet("step") {
		cfg.StepDelay = f.step
	}
	if f.IsSet("settle") {
		cfg.SettleDelay = f.settle
	}
	if f.IsSet("path") {
		cfg.PathDelay = f.path
	}
	if f.IsSet("sound") {
		cfg.Sound = f.sound
	}
	if f.IsSet("log-level") {
		cfg.Log.Level = f.logLevel
	}
	if f.IsSet("log-format") {
		cfg.Log.Format = f.logFormat
	}
	if f.IsSet("log-file") {
		cfg.Log.File = f.logFile
	}
}

// Parse processes command-line arguments. It returns the parsed Flags,
// a boolean indicating if the program should exit cleanly (help), or an
// *ExitError with code 2.
func Parse(args []string, output io.Writer) (*Flags, bool, error) {
	flagSet := flag.NewFlagSet("lvmaze", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
lvmaze - carve a random maze in the terminal and watch a depth-first search solve it.

Usage:
  lvmaze [options]

Keys:
  Space        start the search (once)
  Esc, Ctrl-C, q
               quit

Options:
`)
		flagSet.PrintDefaults()
	}

	def := config.Default()
	f := &Flags{set: map[string]bool{}}
	flagSet.StringVar(&f.ConfigPath, "config", "", "Path to an HCL configuration file.")
	flagSet.StringVar(&f.EnvPath, "env", ".env", "Path to a .env file; ignored when missing.")
	flagSet.IntVar(&f.side, "side", def.Side, "Grid side length; the maze has side² cells.")
	flagSet.IntVar(&f.start, "start", def.Start, "Cell the search starts from.")
	flagSet.IntVar(&f.end, "end", def.End, "Cell the search looks for (-1: last cell).")
	flagSet.IntVar(&f.from, "from", def.From, "Cell the generator carves from (-1: start).")
	flagSet.Int64Var(&f.seed, "seed", def.Seed, "Generator seed (0: time-based).")
	flagSet.DurationVar(&f.step, "step", def.StepDelay, "Pause after each explored cell.")
	flagSet.DurationVar(&f.settle, "settle", def.SettleDelay, "Pause before the path is replayed.")
	flagSet.DurationVar(&f.path, "path", def.PathDelay, "Pause after each path cell.")
	flagSet.BoolVar(&f.sound, "sound", def.Sound, "Play a tone per path cell.")
	flagSet.StringVar(&f.logLevel, "log-level", def.Log.Level, "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	flagSet.StringVar(&f.logFormat, "log-format", def.Log.Format, "Log output format. Options: 'text' or 'json'.")
	flagSet.StringVar(&f.logFile, "log-file", def.Log.File, "Write logs to this file; logs are discarded otherwise.")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, usageError(err)
	}
	if flagSet.NArg() > 0 {
		return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("unexpected argument %q", flagSet.Arg(0))}
	}
	flagSet.Visit(func(fl *flag.Flag) { f.set[fl.Name] = true })

	if f.IsSet("log-level") {
		if err := config.ValidateLogLevel(f.logLevel); err != nil {
			return nil, false, usageError(err)
		}
	}
	if f.IsSet("log-format") {
		if err := config.ValidateLogFormat(f.logFormat); err != nil {
			return nil, false, usageError(err)
		}
	}

	return f, false, nil
}
