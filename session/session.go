// Package session owns one game: the ECS world, the tick scheduler, and the
// level it was built from. Frontends feed it a direction per tick and draw
// from its Snapshot.
package session

import (
	"fmt"
	"image/color"
	"log"
	"math/rand"
	"sort"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/mazechase/ecs"
	"github.com/milk9111/mazechase/ecs/component"
	"github.com/milk9111/mazechase/ecs/entity"
	"github.com/milk9111/mazechase/ecs/system"
	"github.com/milk9111/mazechase/levels"
	"github.com/milk9111/mazechase/maze"
	"github.com/milk9111/mazechase/targeting"
)

type Options struct {
	// Level is a level name or a path to a level JSON file.
	Level string
	// Seed drives the random player spawn when the level has no player
	// entity.
	Seed int64
}

type Session struct {
	world     *ecs.World
	scheduler *ecs.Scheduler
	spawner   *entity.Spawner
	events    []ecs.Event
}

// PursuerView is a read-only description of one pursuer.
type PursuerView struct {
	Role     targeting.Role
	Color    color.Color
	Glyph    rune
	Position cp.Vector
}

// Snapshot is the observable state after a tick.
type Snapshot struct {
	Status      component.RoundStatus
	Tick        int
	Player      cp.Vector
	Heading     maze.Direction
	Pickups     []cp.Vector
	Pursuers    []PursuerView
	Collected   int
	PickupsLeft int
	Cleared     bool
}

func New(opts Options) (*Session, error) {
	lvl, err := levels.Load(opts.Level)
	if err != nil {
		return nil, fmt.Errorf("session: load level %q: %w", opts.Level, err)
	}
	return NewFromLevel(lvl, rand.New(rand.NewSource(opts.Seed)))
}

func NewFromLevel(lvl *levels.Level, rng *rand.Rand) (*Session, error) {
	sp, err := entity.NewSpawner(lvl, rng)
	if err != nil {
		return nil, fmt.Errorf("session: %w", err)
	}
	w := ecs.NewWorld()
	if err := entity.LoadLevelToWorld(w, sp); err != nil {
		return nil, fmt.Errorf("session: populate world: %w", err)
	}
	return &Session{
		world:     w,
		scheduler: system.NewTickScheduler(sp),
		spawner:   sp,
	}, nil
}

// Update advances the game by one tick. dir is the direction requested this
// tick; maze.DirNone keeps the current heading.
func (s *Session) Update(dir maze.Direction) {
	if dir != maze.DirNone {
		ecs.ForEach(s.world, component.InputComponent.Kind(), func(_ ecs.Entity, in *component.Input) {
			in.Requested = dir
		})
	}
	s.scheduler.Update(s.world)

	s.events = s.world.Events().Drain()
	for _, ev := range s.events {
		switch ev.Kind {
		case ecs.EventPlayerCaught, ecs.EventBoardCleared, ecs.EventRoundRestarted:
			log.Printf("session: %s", ev.Kind)
		}
	}
}

// RequestRestart asks for a fresh round. It only takes effect on the next
// Update after the round is over.
func (s *Session) RequestRestart() {
	if err := system.RequestRestart(s.world); err != nil {
		log.Printf("session: restart request: %v", err)
	}
}

func (s *Session) Status() component.RoundStatus {
	if r := s.round(); r != nil {
		return r.Status
	}
	return component.StatusGameOver
}

func (s *Session) Snapshot() Snapshot {
	var snap Snapshot
	if r := s.round(); r != nil {
		snap.Status = r.Status
		snap.Tick = r.Tick
		snap.Collected = r.Collected
		snap.PickupsLeft = r.PickupsLeft
		snap.Cleared = r.Cleared
	}

	ecs.ForEach2(s.world, component.PlayerComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, p *component.Player, t *component.Transform) {
		snap.Player = t.Pos
		snap.Heading = p.Heading
	})

	ecs.ForEach2(s.world, component.PickupComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, _ *component.Pickup, t *component.Transform) {
		snap.Pickups = append(snap.Pickups, t.Pos)
	})
	sort.Slice(snap.Pickups, func(i, j int) bool {
		if snap.Pickups[i].Y != snap.Pickups[j].Y {
			return snap.Pickups[i].Y < snap.Pickups[j].Y
		}
		return snap.Pickups[i].X < snap.Pickups[j].X
	})

	type ordered struct {
		order int
		view  PursuerView
	}
	var pursuers []ordered
	ecs.ForEach2(s.world, component.PursuerComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, p *component.Pursuer, t *component.Transform) {
		view := PursuerView{Role: p.Role, Color: color.White, Glyph: '?', Position: t.Pos}
		if a, ok := ecs.Get(s.world, e, component.AppearanceComponent.Kind()); ok {
			if a.Color != nil {
				view.Color = a.Color
			}
			view.Glyph = a.Glyph
		}
		pursuers = append(pursuers, ordered{order: p.Order, view: view})
	})
	sort.Slice(pursuers, func(i, j int) bool { return pursuers[i].order < pursuers[j].order })
	for _, p := range pursuers {
		snap.Pursuers = append(snap.Pursuers, p.view)
	}
	return snap
}

// Events returns the events raised during the last Update.
func (s *Session) Events() []ecs.Event { return s.events }

func (s *Session) World() *ecs.World { return s.world }

func (s *Session) Grid() *maze.Grid { return s.spawner.Grid }

func (s *Session) Level() *levels.Level { return s.spawner.Level }

func (s *Session) round() *component.Round {
	e, ok := ecs.First(s.world, component.RoundComponent.Kind())
	if !ok {
		return nil
	}
	r, _ := ecs.Get(s.world, e, component.RoundComponent.Kind())
	return r
}
