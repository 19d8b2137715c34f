package system

import (
	"github.com/milk9111/mazechase/ecs"
	"github.com/milk9111/mazechase/ecs/component"
	"github.com/milk9111/mazechase/maze"
)

func currentRound(w *ecs.World) (*component.Round, bool) {
	e, ok := ecs.First(w, component.RoundComponent.Kind())
	if !ok {
		return nil, false
	}
	return ecs.Get(w, e, component.RoundComponent.Kind())
}

// roundRunning gates the integrator systems; nothing moves once the round is
// over.
func roundRunning(w *ecs.World) bool {
	r, ok := currentRound(w)
	return ok && r.Status == component.StatusRunning
}

func boardGrid(w *ecs.World) (*maze.Grid, bool) {
	e, ok := ecs.First(w, component.BoardComponent.Kind())
	if !ok {
		return nil, false
	}
	b, ok := ecs.Get(w, e, component.BoardComponent.Kind())
	if !ok || b.Grid == nil {
		return nil, false
	}
	return b.Grid, true
}

func playerEntity(w *ecs.World) (ecs.Entity, *component.Transform, bool) {
	e, ok := ecs.First(w, component.PlayerTagComponent.Kind())
	if !ok {
		return 0, nil, false
	}
	t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok {
		return 0, nil, false
	}
	return e, t, true
}
