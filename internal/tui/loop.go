package tui

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/katalvlaran/lvmaze/dfs"
	"github.com/katalvlaran/lvmaze/internal/ctxlog"
)

// DefaultTick is the redraw period (~60 FPS).
const DefaultTick = 16 * time.Millisecond

// Loop drives one interactive session: it polls keys, starts the search on
// Space, drains search events once per tick and redraws.
type Loop struct {
	Screen tcell.Screen
	Board  *Board

	// Solve starts the search; ctx is cancelled when the loop returns.
	Solve func(ctx context.Context) (<-chan dfs.Event, error)

	// OnEvent sees each search event after the board applied it.
	OnEvent func(dfs.Event)

	// OnFinish runs once when the event stream closes.
	OnFinish func()

	Tick time.Duration
}

// Run blocks until the user quits or ctx is done. The caller owns the
// screen and must Fini it afterwards, which also stops the poll goroutine.
func (l *Loop) Run(ctx context.Context) error {
	logger := ctxlog.FromContext(ctx)
	tick := l.Tick
	if tick <= 0 {
		tick = DefaultTick
	}
	ticker := time.NewTicker(tick)
	defer ticker.Stop()

	done := make(chan struct{})
	defer close(done)
	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := l.Screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case eventChan <- ev:
			case <-done:
				return
			}
		}
	}()

	solveCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	var stream <-chan dfs.Event
	l.draw()
	for {
		select {
		case <-ctx.Done():
			logger.Debug("Loop context done.", "err", ctx.Err())
			return nil

		case ev := <-eventChan:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if isQuit(ev) {
					logger.Debug("Quit requested.")
					return nil
				}
				if isSolve(ev) && stream == nil && !l.Board.started {
					s, err := l.Solve(solveCtx)
					if err != nil {
						return fmt.Errorf("tui: start search: %w", err)
					}
					stream = s
					l.Board.Start()
					logger.Info("Search started.")
				}
			case *tcell.EventResize:
				l.Screen.Sync()
			}

		case <-ticker.C:
			stream = l.drain(stream, logger)
			l.draw()
		}
	}
}

// drain applies every event already buffered without blocking. It returns
// nil once the stream is closed.
func (l *Loop) drain(stream <-chan dfs.Event, logger *slog.Logger) <-chan dfs.Event {
	for stream != nil {
		select {
		case ev, ok := <-stream:
			if !ok {
				l.Board.Finish()
				logger.Info("Search finished.", "status", l.Board.Status())
				if l.OnFinish != nil {
					l.OnFinish()
				}
				return nil
			}
			l.Board.Apply(ev)
			if l.OnEvent != nil {
				l.OnEvent(ev)
			}
		default:
			return stream
		}
	}
	return nil
}

func (l *Loop) draw() {
	l.Board.Draw(l.Screen)
	l.Screen.Show()
}

func isQuit(ev *tcell.EventKey) bool {
	return ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
		(ev.Key() == tcell.KeyRune && ev.Rune() == 'q')
}

func isSolve(ev *tcell.EventKey) bool {
	return ev.Key() == tcell.KeyRune && ev.Rune() == ' '
}
