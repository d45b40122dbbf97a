package tui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/katalvlaran/lvmaze/core"
	"github.com/katalvlaran/lvmaze/dfs"
)

var (
	wallStyle     = tcell.StyleDefault.Background(tcell.ColorGray)
	cellStyle     = tcell.StyleDefault.Background(tcell.ColorBlack)
	exploredStyle = tcell.StyleDefault.Background(tcell.ColorNavy)
	pathStyle     = tcell.StyleDefault.Background(tcell.ColorYellow).Foreground(tcell.ColorBlack)
	startStyle    = tcell.StyleDefault.Background(tcell.ColorGreen).Foreground(tcell.ColorBlack)
	endStyle      = tcell.StyleDefault.Background(tcell.ColorRed).Foreground(tcell.ColorWhite)
	statusStyle   = tcell.StyleDefault.Foreground(tcell.ColorWhite)
)

// Maze is the read side the renderer needs; core.View satisfies it.
type Maze interface {
	Label(id int) (core.Label, bool)
	IsOpen(u, v int) bool
}

// mark is how far a cell got in the search; it only moves up.
type mark uint8

const (
	markNone mark = iota
	markExplored
	markPath
)

// Board is the renderer state: the frozen maze plus search progress.
// It is owned by the loop goroutine.
type Board struct {
	maze        Maze
	side        int
	marks       []mark
	explored    int
	pathLen     int
	unreachable bool
	started     bool
	finished    bool
}

// NewBoard returns a Board for a side×side maze.
func NewBoard(m Maze, side int) *Board {
	return &Board{maze: m, side: side, marks: make([]mark, side*side)}
}

// Side returns the grid side length.
func (b *Board) Side() int { return b.side }

// Start records that the search was requested.
func (b *Board) Start() { b.started = true }

// Apply folds one search event into the board.
func (b *Board) Apply(ev dfs.Event) {
	switch ev.Kind {
	case dfs.KindExplored:
		if b.raise(ev.Cell, markExplored) {
			b.explored++
		}
	case dfs.KindPath:
		b.raise(ev.Cell, markPath)
		b.pathLen++
	case dfs.KindUnreachable:
		b.unreachable = true
	}
}

// Finish records that the event stream closed.
func (b *Board) Finish() { b.finished = true }

// Finished reports whether the stream closed.
func (b *Board) Finished() bool { return b.finished }

func (b *Board) raise(cell int, m mark) bool {
	if cell < 0 || cell >= len(b.marks) || b.marks[cell] >= m {
		return false
	}
	b.marks[cell] = m
	return true
}

// Status is the text of the bottom line.
func (b *Board) Status() string {
	switch {
	case !b.started:
		return "space: solve   q: quit"
	case b.unreachable:
		return fmt.Sprintf("end unreachable after %d cells   q: quit", b.explored)
	case b.finished:
		return fmt.Sprintf("path found: %d cells, %d explored   q: quit", b.pathLen, b.explored)
	case b.pathLen > 0:
		return fmt.Sprintf("tracing path: %d cells", b.pathLen)
	default:
		return fmt.Sprintf("searching: %d explored", b.explored)
	}
}

// Draw renders walls, cells, passages, endpoints and the status line.
func (b *Board) Draw(s tcell.Screen) {
	cols, rows := s.Size()
	l := NewLayout(b.side, cols, rows)
	s.Clear()

	for by := 0; by < l.Blocks(); by++ {
		for bx := 0; bx < l.Blocks(); bx++ {
			sx, sy := l.Block(bx, by)
			fill(s, sx, sy, ' ', wallStyle)
		}
	}

	for y := 0; y < b.side; y++ {
		for x := 0; x < b.side; x++ {
			id := x + y*b.side
			sx, sy := l.Cell(x, y)
			glyph, style := b.cellLook(id)
			fill(s, sx, sy, glyph, style)

			if x+1 < b.side && b.maze.IsOpen(id, id+1) {
				px, py := l.Block(2*x+2, 2*y+1)
				fill(s, px, py, ' ', b.passageStyle(id, id+1))
			}
			if y+1 < b.side && b.maze.IsOpen(id, id+b.side) {
				px, py := l.Block(2*x+1, 2*y+2)
				fill(s, px, py, ' ', b.passageStyle(id, id+b.side))
			}
		}
	}

	drawText(s, 0, rows-1, b.Status(), statusStyle)
}

// cellLook picks the glyph and style of a cell; endpoint labels win over marks.
func (b *Board) cellLook(id int) (rune, tcell.Style) {
	if lbl, ok := b.maze.Label(id); ok {
		switch lbl {
		case core.LabelStart:
			return 'S', startStyle
		case core.LabelEnd:
			return 'E', endStyle
		}
	}
	return ' ', markStyle(b.marks[id])
}

// passageStyle colors a passage with the lower mark of its two cells.
func (b *Board) passageStyle(u, v int) tcell.Style {
	m := b.marks[u]
	if b.marks[v] < m {
		m = b.marks[v]
	}
	return markStyle(m)
}

func markStyle(m mark) tcell.Style {
	switch m {
	case markPath:
		return pathStyle
	case markExplored:
		return exploredStyle
	default:
		return cellStyle
	}
}

// fill paints one block: glyph in the first column, blanks after.
func fill(s tcell.Screen, sx, sy int, glyph rune, style tcell.Style) {
	s.SetContent(sx, sy, glyph, nil, style)
	for i := 1; i < cellWidth; i++ {
		s.SetContent(sx+i, sy, ' ', nil, style)
	}
}

func drawText(s tcell.Screen, x, y int, text string, style tcell.Style) {
	for _, r := range text {
		s.SetContent(x, y, r, nil, style)
		x++
	}
}
