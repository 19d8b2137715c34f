package system

import (
	"github.com/milk9111/mazechase/ecs"
	"github.com/milk9111/mazechase/ecs/component"
)

type CollisionSystem struct{}

func NewCollisionSystem() *CollisionSystem { return &CollisionSystem{} }

func (s *CollisionSystem) Update(w *ecs.World) {
	if w == nil || !roundRunning(w) {
		return
	}
	_, playerTransform, ok := playerEntity(w)
	if !ok {
		return
	}
	round, _ := currentRound(w)
	if round.Caught {
		return
	}

	ecs.ForEach2(w, component.PursuerComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, p *component.Pursuer, t *component.Transform) {
		if round.Caught {
			return
		}
		if playerTransform.Pos.DistanceSq(t.Pos) < p.CatchRadius*p.CatchRadius {
			round.Caught = true
			w.Events().Push(ecs.Event{Kind: ecs.EventPlayerCaught, Entity: e})
		}
	})
}
