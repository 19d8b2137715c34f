package entity

import (
	"fmt"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/mazechase/ecs"
)

func NewPickupAt(w *ecs.World, pos cp.Vector) (ecs.Entity, error) {
	entity, err := BuildEntity(w, "pickup.yaml")
	if err != nil {
		return 0, err
	}
	if err := SetEntityPosition(w, entity, pos); err != nil {
		return 0, fmt.Errorf("pickup: override transform: %w", err)
	}
	return entity, nil
}
