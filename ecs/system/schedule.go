package system

import "github.com/milk9111/mazechase/ecs"

// NewTickScheduler returns the systems of one game tick in execution order.
func NewTickScheduler(spawner RoundSpawner) *ecs.Scheduler {
	return ecs.NewScheduler(
		NewPlayerControllerSystem(),
		NewPickupCollectSystem(),
		NewPursuitSystem(),
		NewCollisionSystem(),
		NewRoundSystem(spawner),
	)
}
