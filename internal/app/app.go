// Package app wires one lvmaze session: configuration layers, logging,
// maze generation and verification, audio, and the terminal loop.
package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"

	"github.com/katalvlaran/lvmaze/bfs"
	"github.com/katalvlaran/lvmaze/core"
	"github.com/katalvlaran/lvmaze/dfs"
	"github.com/katalvlaran/lvmaze/gridgraph"
	"github.com/katalvlaran/lvmaze/internal/audio"
	"github.com/katalvlaran/lvmaze/internal/cli"
	"github.com/katalvlaran/lvmaze/internal/config"
	"github.com/katalvlaran/lvmaze/internal/ctxlog"
	"github.com/katalvlaran/lvmaze/internal/tui"
	"github.com/katalvlaran/lvmaze/maze"
)

// Options are the process-level dependencies of Run. Zero values select the
// real terminal, the process environment and the wall clock.
type Options struct {
	NewScreen func() (tcell.Screen, error)
	Lookup    config.LookupFunc
	Now       func() time.Time
	// Sound replaces the speaker-backed player.
	Sound Sound
}

// Sound is the audio surface the session uses.
type Sound interface {
	Initialize() error
	Close()
	PlayPath()
	PlayUnreachable()
}

// Session is a carved, verified maze ready to be solved.
type Session struct {
	Config config.Config
	Seed   int64
	Grid   *gridgraph.Grid
	View   core.View
	Report *maze.Report
}

// Run executes one session. Configuration errors are returned as
// *cli.ExitError with code 2.
func Run(ctx context.Context, flags *cli.Flags, opts Options) error {
	if opts.NewScreen == nil {
		opts.NewScreen = tcell.NewScreen
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	screen, err := opts.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err = screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize screen: %w", err)
	}
	defer screen.Fini()

	cols, rows := screen.Size()
	cfg, err := loadConfig(flags, config.Terminal{Cols: cols, Rows: rows}, opts.Lookup)
	if err != nil {
		return err
	}

	logW, closeLog, err := openLog(cfg.Log.File)
	if err != nil {
		return err
	}
	defer closeLog()
	logger := newLogger(cfg.Log.Level, cfg.Log.Format, logW).With("run", uuid.NewString())
	ctx = ctxlog.WithLogger(ctx, logger)

	sess, err := Prepare(ctx, cfg, opts.Now)
	if err != nil {
		return err
	}
	if l := tui.NewLayout(cfg.Side, cols, rows); !l.Fits(cols, rows) {
		logger.Warn("Maze does not fit the terminal and will be clipped.",
			"side", cfg.Side, "cols", cols, "rows", rows, "need_cols", l.Width(), "need_rows", l.Height()+1)
	}

	var sound Sound
	if cfg.Sound {
		sound = opts.Sound
		if sound == nil {
			sound = audio.NewPlayer()
		}
		if err = sound.Initialize(); err != nil {
			// Non-fatal, the session runs without sound.
			logger.Warn("Audio initialization failed.", "err", err)
			sound = nil
		} else {
			defer sound.Close()
		}
	}

	loop := &tui.Loop{
		Screen: screen,
		Board:  tui.NewBoard(sess.View, cfg.Side),
		Solve: func(ctx context.Context) (<-chan dfs.Event, error) {
			return dfs.Stream(sess.View, cfg.Start, cfg.End,
				dfs.WithContext(ctx),
				dfs.WithStepDelay(cfg.StepDelay),
				dfs.WithSettleDelay(cfg.SettleDelay),
				dfs.WithPathDelay(cfg.PathDelay),
			)
		},
		OnEvent: func(ev dfs.Event) {
			if sound == nil {
				return
			}
			switch ev.Kind {
			case dfs.KindPath:
				sound.PlayPath()
			case dfs.KindUnreachable:
				sound.PlayUnreachable()
			}
		},
	}
	logger.Info("Session ready.", "side", cfg.Side, "start", cfg.Start, "end", cfg.End)

	return loop.Run(ctx)
}

// loadConfig layers defaults, file, environment and flags, then validates.
func loadConfig(flags *cli.Flags, term config.Terminal, lookup config.LookupFunc) (config.Config, error) {
	src := config.Sources{Terminal: term, Lookup: lookup}
	if flags != nil {
		src.File = flags.ConfigPath
		src.EnvFile = flags.EnvPath
	}
	cfg, err := config.Load(src)
	if err != nil {
		return cfg, usage(err)
	}
	if flags != nil {
		flags.Apply(&cfg)
	}
	cfg.Resolve()
	if err = cfg.Validate(); err != nil {
		return cfg, usage(err)
	}
	return cfg, nil
}

// usage maps configuration failures to exit code 2.
func usage(err error) error {
	return &cli.ExitError{Code: 2, Message: err.Error()}
}

// openLog returns the log destination; an empty path discards logs since
// the terminal belongs to the screen.
func openLog(path string) (io.Writer, func(), error) {
	if path == "" {
		return io.Discard, func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file %s: %w", path, err)
	}
	return f, func() { _ = f.Close() }, nil
}

// Prepare builds the grid, labels the endpoints, carves and verifies the
// maze, logs its statistics and freezes it.
func Prepare(ctx context.Context, cfg config.Config, now func() time.Time) (*Session, error) {
	logger := ctxlog.FromContext(ctx)

	seed := cfg.Seed
	if seed == 0 {
		seed = now().UnixNano()
	}

	gr, err := gridgraph.NewMaze(cfg.Side)
	if err != nil {
		return nil, err
	}
	if err = gr.Graph.PushVertex(cfg.Start, core.LabelStart); err != nil {
		return nil, err
	}
	if cfg.End != cfg.Start {
		if err = gr.Graph.PushVertex(cfg.End, core.LabelEnd); err != nil {
			return nil, err
		}
	}

	began := time.Now()
	res, err := maze.Generate(gr.Graph, cfg.From, maze.WithSeed(seed), maze.WithContext(ctx))
	if err != nil {
		return nil, fmt.Errorf("failed to generate maze: %w", err)
	}
	view := gr.Graph.View()

	rep, err := maze.Verify(view, cfg.From)
	if err != nil {
		return nil, fmt.Errorf("generated maze failed verification: %w", err)
	}
	attrs := []any{
		"side", cfg.Side,
		"seed", seed,
		"from", res.Seed,
		"visited", res.Visited,
		"passages", rep.Passages,
		"elapsed", time.Since(began),
	}
	if b, err := bfs.BFS(view, cfg.Start, bfs.WithContext(ctx)); err == nil {
		if path, err := b.PathTo(cfg.End); err == nil {
			attrs = append(attrs, "shortest_path", len(path))
		}
	}
	logger.Info("Maze generated.", attrs...)
	logger.Debug("Maze verified.", slog.Int("reached", rep.Reached), slog.Bool("symmetric", rep.Symmetric))

	return &Session{Config: cfg, Seed: seed, Grid: gr, View: view, Report: rep}, nil
}
