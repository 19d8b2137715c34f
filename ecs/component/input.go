package component

import "github.com/milk9111/mazechase/maze"

// Input stores the direction requested this tick. DirNone means no new
// request; the player keeps its current heading.
type Input struct {
	Requested maze.Direction
}

var InputComponent = NewComponent[Input]()
