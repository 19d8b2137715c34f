package levels

import (
	"errors"
	"fmt"

	"github.com/milk9111/mazechase/maze"
)

// Tile symbols used in Level.Rows.
const (
	TileWall       = '1'
	TileFloor      = '0' // floor carrying a pickup
	TileEmptyFloor = '9' // floor without a pickup
)

const DefaultTileSize = 20

// Entity types and props understood by the spawner.
const (
	EntityPlayer  = "player"
	EntityPursuer = "pursuer"
	PropRole      = "role"
	PropSpeed     = "speed"
)

var (
	ErrEmptyLevel  = errors.New("levels: level has no rows")
	ErrRaggedRow   = errors.New("levels: rows differ in length")
	ErrUnknownTile = errors.New("levels: unknown tile symbol")
)

// Tile returns the cell edge length in pixels.
func (l *Level) Tile() int {
	if l.TileSize <= 0 {
		return DefaultTileSize
	}
	return l.TileSize
}

// Grid builds the immutable maze grid described by the level rows.
func (l *Level) Grid() (*maze.Grid, error) {
	if len(l.Rows) == 0 || len(l.Rows[0]) == 0 {
		return nil, ErrEmptyLevel
	}
	cols := len(l.Rows[0])
	kinds := make([]maze.Kind, 0, len(l.Rows)*cols)
	for r, row := range l.Rows {
		if len(row) != cols {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrRaggedRow, r, len(row), cols)
		}
		for c := 0; c < len(row); c++ {
			switch row[c] {
			case TileWall:
				kinds = append(kinds, maze.Wall)
			case TileFloor, TileEmptyFloor:
				kinds = append(kinds, maze.Floor)
			default:
				return nil, fmt.Errorf("%w: %q at row %d col %d", ErrUnknownTile, row[c], r, c)
			}
		}
	}
	return maze.NewGrid(len(l.Rows), cols, l.Tile(), kinds), nil
}

// PickupCells lists the cells that start a round with a pickup.
func (l *Level) PickupCells() []maze.Cell {
	var out []maze.Cell
	for r, row := range l.Rows {
		for c := 0; c < len(row); c++ {
			if row[c] == TileFloor {
				out = append(out, maze.Cell{Row: r, Col: c})
			}
		}
	}
	return out
}

// Cell returns the entity's position in grid coordinates.
func (e Entity) Cell() maze.Cell {
	return maze.Cell{Row: e.Y, Col: e.X}
}

// StringProp returns a string property, or "" when absent.
func (e Entity) StringProp(key string) string {
	if v, ok := e.Props[key].(string); ok {
		return v
	}
	return ""
}

// FloatProp returns a numeric property. JSON numbers decode as float64.
func (e Entity) FloatProp(key string) (float64, bool) {
	switch v := e.Props[key].(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	default:
		return 0, false
	}
}
