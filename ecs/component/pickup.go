package component

// Pickup is a collectible dot placed at a floor cell center.
type Pickup struct {
	Kind string
}

var PickupComponent = NewComponent[Pickup]()
