package component

import "github.com/milk9111/mazechase/maze"

// Pathfinding records the last search decision of a pursuer.
type Pathfinding struct {
	Cell maze.Cell
	Goal maze.Cell
	Next maze.Cell
}

var PathfindingComponent = NewComponent[Pathfinding]()
