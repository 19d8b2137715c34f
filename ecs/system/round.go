package system

import (
	"log"

	"github.com/milk9111/mazechase/ecs"
	"github.com/milk9111/mazechase/ecs/component"
	"github.com/milk9111/mazechase/ecs/entity"
)

// RoundSpawner repopulates a cleared world with a fresh round.
type RoundSpawner interface {
	Spawn(w *ecs.World) error
}

// RoundSystem drives the round state machine. It runs after the integrator
// systems: a catch reported this tick ends the round, and a restart request
// is honored only once the round is over.
type RoundSystem struct {
	spawner RoundSpawner
}

func NewRoundSystem(spawner RoundSpawner) *RoundSystem {
	return &RoundSystem{spawner: spawner}
}

func (s *RoundSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}
	round, ok := currentRound(w)
	if !ok {
		return
	}

	requested := false
	ecs.ForEach(w, component.RestartRequestComponent.Kind(), func(e ecs.Entity, _ *component.RestartRequest) {
		requested = true
		ecs.DestroyEntity(w, e)
	})

	switch round.Status {
	case component.StatusRunning:
		round.Tick++
		if requested {
			log.Printf("round: restart ignored while running (tick %d)", round.Tick)
		}
		if round.Caught {
			round.Status = component.StatusGameOver
			log.Printf("round: game over at tick %d, %d pickups collected", round.Tick, round.Collected)
		}
	case component.StatusGameOver:
		if !requested {
			return
		}
		if s.spawner == nil {
			log.Printf("round: restart requested but no spawner configured")
			return
		}
		entity.ClearRound(w)
		if err := s.spawner.Spawn(w); err != nil {
			log.Printf("round: restart failed: %v", err)
			return
		}
		w.Events().Push(ecs.Event{Kind: ecs.EventRoundRestarted})
	}
}

// RequestRestart queues a restart for the next RoundSystem update.
func RequestRestart(w *ecs.World) error {
	e := ecs.CreateEntity(w)
	return ecs.Add(w, e, component.RestartRequestComponent.Kind(), &component.RestartRequest{})
}
