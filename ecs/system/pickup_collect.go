package system

import (
	"github.com/milk9111/mazechase/ecs"
	"github.com/milk9111/mazechase/ecs/component"
)

type PickupCollectSystem struct{}

func NewPickupCollectSystem() *PickupCollectSystem { return &PickupCollectSystem{} }

func (s *PickupCollectSystem) Update(w *ecs.World) {
	if w == nil || !roundRunning(w) {
		return
	}

	player, playerTransform, ok := playerEntity(w)
	if !ok {
		return
	}
	stats, ok := ecs.Get(w, player, component.PlayerComponent.Kind())
	if !ok {
		return
	}
	round, _ := currentRound(w)
	radiusSq := stats.PickupRadius * stats.PickupRadius

	ecs.ForEach2(w, component.PickupComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, _ *component.Pickup, t *component.Transform) {
		if playerTransform.Pos.DistanceSq(t.Pos) >= radiusSq {
			return
		}
		ecs.DestroyEntity(w, e)
		round.Collected++
		if round.PickupsLeft > 0 {
			round.PickupsLeft--
		}
		w.Events().Push(ecs.Event{Kind: ecs.EventPickupCollected, Entity: e})
	})

	if round.PickupsLeft == 0 && !round.Cleared {
		round.Cleared = true
		w.Events().Push(ecs.Event{Kind: ecs.EventBoardCleared})
	}
}
