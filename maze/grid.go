package maze

import (
	"math"

	"github.com/jakecoffman/cp"
)

// Kind is the content of a single grid square.
type Kind uint8

const (
	Floor Kind = iota
	Wall
)

// Cell addresses a grid square by row and column.
type Cell struct {
	Row int
	Col int
}

// Add offsets c by dr rows and dc columns.
func (c Cell) Add(dr, dc int) Cell {
	return Cell{Row: c.Row + dr, Col: c.Col + dc}
}

// Manhattan returns the taxicab distance between two cells.
func (c Cell) Manhattan(o Cell) int {
	return abs(c.Row-o.Row) + abs(c.Col-o.Col)
}

// Grid is an immutable wall/floor matrix plus the pixel size of one cell.
type Grid struct {
	rows, cols int
	tile       int
	kinds      []Kind
}

// NewGrid copies kinds (row-major, rows*cols long) into a new grid.
func NewGrid(rows, cols, tile int, kinds []Kind) *Grid {
	if rows < 0 || cols < 0 || len(kinds) != rows*cols {
		panic("maze: grid dimensions do not match cell count")
	}
	if tile <= 0 {
		panic("maze: tile size must be positive")
	}
	return &Grid{
		rows:  rows,
		cols:  cols,
		tile:  tile,
		kinds: append([]Kind(nil), kinds...),
	}
}

func (g *Grid) Rows() int { return g.rows }
func (g *Grid) Cols() int { return g.cols }

// Tile returns the edge length of one cell in pixels.
func (g *Grid) Tile() int { return g.tile }

// Width returns the board width in pixels.
func (g *Grid) Width() float64 { return float64(g.cols * g.tile) }

// Height returns the board height in pixels.
func (g *Grid) Height() float64 { return float64(g.rows * g.tile) }

// Contains reports whether c lies inside the matrix.
func (g *Grid) Contains(c Cell) bool {
	return c.Row >= 0 && c.Row < g.rows && c.Col >= 0 && c.Col < g.cols
}

// At returns the kind of c. Cells outside the matrix read as Wall.
func (g *Grid) At(c Cell) Kind {
	if !g.Contains(c) {
		return Wall
	}
	return g.kinds[g.index(c)]
}

// IsWalkable reports whether c can be entered. Rows outside the grid never
// can; columns outside the grid can only when allowTunnel is set, which
// models the horizontal tunnel edge.
func (g *Grid) IsWalkable(c Cell, allowTunnel bool) bool {
	if c.Row < 0 || c.Row >= g.rows {
		return false
	}
	if c.Col < 0 || c.Col >= g.cols {
		return allowTunnel
	}
	return g.kinds[g.index(c)] != Wall
}

// FloorCells returns every non-wall cell in row-major order.
func (g *Grid) FloorCells() []Cell {
	out := make([]Cell, 0, len(g.kinds))
	for i, k := range g.kinds {
		if k != Wall {
			out = append(out, Cell{Row: i / g.cols, Col: i % g.cols})
		}
	}
	return out
}

// CellAt maps a pixel position to the cell containing it (floor division).
func (g *Grid) CellAt(p cp.Vector) Cell {
	t := float64(g.tile)
	return Cell{
		Row: int(math.Floor(p.Y / t)),
		Col: int(math.Floor(p.X / t)),
	}
}

// CellCenter returns the pixel center of c.
func (g *Grid) CellCenter(c Cell) cp.Vector {
	return cp.Vector{
		X: float64(c.Col*g.tile + g.tile/2),
		Y: float64(c.Row*g.tile + g.tile/2),
	}
}

// CellCorner returns the pixel top-left corner of c.
func (g *Grid) CellCorner(c Cell) cp.Vector {
	return cp.Vector{
		X: float64(c.Col * g.tile),
		Y: float64(c.Row * g.tile),
	}
}

func (g *Grid) index(c Cell) int {
	return c.Row*g.cols + c.Col
}

func (g *Grid) cell(idx int) Cell {
	return Cell{Row: idx / g.cols, Col: idx % g.cols}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
