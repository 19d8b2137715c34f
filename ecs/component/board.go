package component

import "github.com/milk9111/mazechase/maze"

// Board is the singleton holding the maze grid shared by every round.
type Board struct {
	Grid *maze.Grid
}

var BoardComponent = NewComponent[Board]()
