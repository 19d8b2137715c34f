package component

import "github.com/milk9111/mazechase/targeting"

// Pursuer is an autonomous chaser. Order is the spawn index and fixes the
// per-tick update order.
type Pursuer struct {
	Role     targeting.Role
	Strategy targeting.Strategy
	Order    int
	Speed    float64
	// CatchRadius is the pixel distance to the player that ends the round.
	CatchRadius float64
}

var PursuerComponent = NewComponent[Pursuer]()
