package component

import "github.com/jakecoffman/cp"

// Transform holds an entity's pixel position on the board.
type Transform struct {
	Pos cp.Vector
}

var TransformComponent = NewComponent[Transform]()
