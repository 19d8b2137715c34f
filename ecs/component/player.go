package component

import "github.com/milk9111/mazechase/maze"

type Player struct {
	Heading maze.Direction
	// Speed is the step length in pixels per tick.
	Speed float64
	// PickupRadius is the pixel distance under which a pickup is consumed.
	PickupRadius float64
}

var PlayerComponent = NewComponent[Player]()
