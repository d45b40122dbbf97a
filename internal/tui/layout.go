package tui

// cellWidth is the number of terminal columns per maze block, so cells
// look square.
const cellWidth = 2

// Layout maps maze coordinates to screen coordinates.
//
// The maze is drawn on a (2·side+1)² block grid: cell (x,y) sits on block
// (2x+1, 2y+1); the block between two neighbors is a wall or a passage;
// blocks with two even coordinates are always walls.
type Layout struct {
	Side    int
	OriginX int
	OriginY int
}

// NewLayout centers a side×side maze on a cols×rows screen, keeping the
// bottom row for the status line. A maze larger than the screen is
// anchored at the top-left corner and clipped.
func NewLayout(side, cols, rows int) Layout {
	l := Layout{Side: side}
	if w := l.Width(); cols > w {
		l.OriginX = (cols - w) / 2
	}
	if h := l.Height(); rows-1 > h {
		l.OriginY = (rows - 1 - h) / 2
	}
	return l
}

// Blocks is the block count per axis.
func (l Layout) Blocks() int { return 2*l.Side + 1 }

// Width in terminal columns.
func (l Layout) Width() int { return l.Blocks() * cellWidth }

// Height in terminal rows.
func (l Layout) Height() int { return l.Blocks() }

// Fits reports whether the maze and the status line fit on the screen.
func (l Layout) Fits(cols, rows int) bool {
	return l.Width() <= cols && l.Height()+1 <= rows
}

// Block returns the screen position of the left column of block (bx,by).
func (l Layout) Block(bx, by int) (sx, sy int) {
	return l.OriginX + bx*cellWidth, l.OriginY + by
}

// Cell returns the screen position of cell (x,y).
func (l Layout) Cell(x, y int) (sx, sy int) {
	return l.Block(2*x+1, 2*y+1)
}
