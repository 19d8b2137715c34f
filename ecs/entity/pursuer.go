package entity

import (
	"fmt"

	"github.com/milk9111/mazechase/ecs"
	"github.com/milk9111/mazechase/ecs/component"
	"github.com/milk9111/mazechase/levels"
	"github.com/milk9111/mazechase/maze"
	"github.com/milk9111/mazechase/targeting"
)

// PursuerPrefab maps a role to its prefab file.
func PursuerPrefab(role targeting.Role) string {
	return role.String() + ".yaml"
}

// NewPursuerAt spawns the pursuer described by a level entity. Pursuers sit
// on the top-left corner of their spawn cell. order fixes the pursuer's
// position in the per-tick update sequence.
func NewPursuerAt(w *ecs.World, grid *maze.Grid, ent levels.Entity, order int) (ecs.Entity, error) {
	role, err := targeting.ParseRole(ent.StringProp(levels.PropRole))
	if err != nil {
		return 0, fmt.Errorf("pursuer at %v: %w", ent.Cell(), err)
	}

	e, err := BuildEntity(w, PursuerPrefab(role))
	if err != nil {
		return 0, err
	}

	cell := ent.Cell()
	if err := SetEntityPosition(w, e, grid.CellCorner(cell)); err != nil {
		return 0, fmt.Errorf("pursuer: override transform: %w", err)
	}

	p, ok := ecs.Get(w, e, component.PursuerComponent.Kind())
	if !ok {
		ecs.DestroyEntity(w, e)
		return 0, fmt.Errorf("pursuer: prefab %q has no pursuer component", PursuerPrefab(role))
	}
	p.Order = order
	if speed, ok := ent.FloatProp(levels.PropSpeed); ok {
		if speed <= 0 {
			ecs.DestroyEntity(w, e)
			return 0, fmt.Errorf("pursuer at %v: speed must be positive, got %v", cell, speed)
		}
		p.Speed = speed
	}

	if pf, ok := ecs.Get(w, e, component.PathfindingComponent.Kind()); ok {
		*pf = component.Pathfinding{Cell: cell, Goal: cell, Next: cell}
	}
	return e, nil
}
