// Package life implements Conway's Game of Life on a bounded grid.
//
// A Grid is a value: every operation returns a fresh grid computed from its
// input, so a caller can hold one grid at a time and replace it wholesale.
// The board does not wrap; positions outside the grid read as Dead.
package life

import (
	"errors"
	"fmt"
)

// CellState is the state of a single cell.
type CellState uint8

const (
	// Dead is the zero value; new grids start fully dead.
	Dead CellState = 0
	// Alive marks a living cell.
	Alive CellState = 1
)

// Invert returns the opposite state.
func (s CellState) Invert() CellState {
	if s == Alive {
		return Dead
	}
	return Alive
}

// Position addresses a cell. X is the column, Y is the row, both zero-based.
type Position struct {
	X int
	Y int
}

// Neighbors returns the 8 positions of the Moore neighborhood around p.
// Neighbors of edge cells may fall outside any particular grid; CellAt
// resolves those to Dead.
func (p Position) Neighbors() [8]Position {
	return [8]Position{
		{p.X - 1, p.Y - 1}, {p.X, p.Y - 1}, {p.X + 1, p.Y - 1},
		{p.X - 1, p.Y}, {p.X + 1, p.Y},
		{p.X - 1, p.Y + 1}, {p.X, p.Y + 1}, {p.X + 1, p.Y + 1},
	}
}

// ErrOutOfBounds is returned by write operations addressed outside the grid.
var ErrOutOfBounds = errors.New("position out of bounds")

// Grid is a rectangular board of cells in row-major order. Dimensions are
// fixed at creation; the zero-sized grid is legal and holds no cells.
type Grid struct {
	w, h  int
	cells []uint8
}

// NewGrid returns a w×h grid with every cell Dead. Negative dimensions are
// treated as zero.
func NewGrid(w, h int) *Grid {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return &Grid{w: w, h: h, cells: make([]uint8, w*h)}
}

// GridFromCells builds a w×h grid from a row-major cell buffer. Any nonzero
// byte becomes a live cell. The buffer length must be exactly w*h.
func GridFromCells(w, h int, cells []uint8) (*Grid, error) {
	g := NewGrid(w, h)
	if len(cells) != len(g.cells) {
		return nil, fmt.Errorf("grid from cells: %d values for a %dx%d grid", len(cells), g.w, g.h)
	}
	for i, c := range cells {
		if c != 0 {
			g.cells[i] = uint8(Alive)
		}
	}
	return g, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.w }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.h }

// Cells exposes the backing slice for render paths. Treat it as read-only;
// mutating it breaks the value semantics of the grid operations.
func (g *Grid) Cells() []uint8 { return g.cells }

// InBounds reports whether p addresses a cell of g.
func (g *Grid) InBounds(p Position) bool {
	return p.X >= 0 && p.X < g.w && p.Y >= 0 && p.Y < g.h
}

// CellAt returns the state at p. Positions outside the grid are Dead: the
// board behaves as if surrounded by an infinite dead region, which keeps
// neighbor counting uniform at the edges.
func (g *Grid) CellAt(p Position) CellState {
	if !g.InBounds(p) {
		return Dead
	}
	return CellState(g.cells[p.Y*g.w+p.X])
}

// LivingNeighbors counts the live cells in p's Moore neighborhood, in [0,8].
func (g *Grid) LivingNeighbors(p Position) int {
	n := 0
	for _, q := range p.Neighbors() {
		if g.CellAt(q) == Alive {
			n++
		}
	}
	return n
}

// NextCellState applies the Conway rule to p against the current grid:
// exactly 2 living neighbors leaves the cell unchanged, exactly 3 makes it
// Alive, any other count kills it.
func (g *Grid) NextCellState(p Position) CellState {
	switch g.LivingNeighbors(p) {
	case 2:
		return g.CellAt(p)
	case 3:
		return Alive
	default:
		return Dead
	}
}

// Step returns the next generation. Every cell of the result is computed
// from g alone, so no update can observe another cell's new value.
func (g *Grid) Step() *Grid {
	next := NewGrid(g.w, g.h)
	for y := 0; y < g.h; y++ {
		for x := 0; x < g.w; x++ {
			if g.NextCellState(Position{x, y}) == Alive {
				next.cells[y*g.w+x] = 1
			}
		}
	}
	return next
}

// SetCell returns a grid identical to g except that p holds s. Writes,
// unlike reads, must stay in bounds.
func (g *Grid) SetCell(p Position, s CellState) (*Grid, error) {
	if !g.InBounds(p) {
		return nil, fmt.Errorf("set cell (%d,%d) on %dx%d grid: %w", p.X, p.Y, g.w, g.h, ErrOutOfBounds)
	}
	next := g.Clone()
	next.cells[p.Y*g.w+p.X] = uint8(s)
	return next, nil
}

// ToggleCell returns a grid with the state at p inverted.
func (g *Grid) ToggleCell(p Position) (*Grid, error) {
	return g.SetCell(p, g.CellAt(p).Invert())
}

// Clear returns a grid of the same dimensions with every cell Dead.
func (g *Grid) Clear() *Grid {
	return NewGrid(g.w, g.h)
}

// Clone returns a deep copy of g.
func (g *Grid) Clone() *Grid {
	next := &Grid{w: g.w, h: g.h, cells: make([]uint8, len(g.cells))}
	copy(next.cells, g.cells)
	return next
}

// Equal reports whether two grids have the same dimensions and cell states.
func (g *Grid) Equal(o *Grid) bool {
	if g.w != o.w || g.h != o.h {
		return false
	}
	for i := range g.cells {
		if g.cells[i] != o.cells[i] {
			return false
		}
	}
	return true
}

// Population returns the number of living cells.
func (g *Grid) Population() int {
	n := 0
	for _, c := range g.cells {
		if c != 0 {
			n++
		}
	}
	return n
}
