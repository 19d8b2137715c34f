package entity

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/milk9111/mazechase/ecs"
	"github.com/milk9111/mazechase/ecs/component"
	"github.com/milk9111/mazechase/levels"
	"github.com/milk9111/mazechase/maze"
)

// Spawner populates a world with the actors of one round of a level.
type Spawner struct {
	Level *levels.Level
	Grid  *maze.Grid
	Rand  *rand.Rand
}

// NewSpawner builds the grid for lvl. A nil rng is seeded with 1.
func NewSpawner(lvl *levels.Level, rng *rand.Rand) (*Spawner, error) {
	if lvl == nil {
		return nil, fmt.Errorf("spawner: level is nil")
	}
	grid, err := lvl.Grid()
	if err != nil {
		return nil, fmt.Errorf("spawner: %w", err)
	}
	if len(grid.FloorCells()) == 0 {
		return nil, fmt.Errorf("spawner: %w: no floor cells", levels.ErrEmptyLevel)
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	return &Spawner{Level: lvl, Grid: grid, Rand: rng}, nil
}

// LoadLevelToWorld creates the Board and Round singletons and spawns the
// first round.
func LoadLevelToWorld(w *ecs.World, sp *Spawner) error {
	board := ecs.CreateEntity(w)
	if err := ecs.Add(w, board, component.BoardComponent.Kind(), &component.Board{Grid: sp.Grid}); err != nil {
		return err
	}
	round := ecs.CreateEntity(w)
	if err := ecs.Add(w, round, component.RoundComponent.Kind(), &component.Round{}); err != nil {
		return err
	}
	return sp.Spawn(w)
}

// Spawn creates the player, the pursuers in level order, and one pickup per
// pickup cell, then resets the Round singleton to a fresh running round.
func (sp *Spawner) Spawn(w *ecs.World) error {
	if _, err := sp.spawnPlayer(w); err != nil {
		return err
	}

	order := 0
	for _, ent := range sp.Level.Entities {
		if strings.ToLower(ent.Type) != levels.EntityPursuer {
			continue
		}
		if _, err := NewPursuerAt(w, sp.Grid, ent, order); err != nil {
			return err
		}
		order++
	}

	pickups := 0
	for _, cell := range sp.Level.PickupCells() {
		if _, err := NewPickupAt(w, sp.Grid.CellCenter(cell)); err != nil {
			return err
		}
		pickups++
	}

	roundEnt, ok := ecs.First(w, component.RoundComponent.Kind())
	if !ok {
		return fmt.Errorf("spawn: round singleton missing")
	}
	round, _ := ecs.Get(w, roundEnt, component.RoundComponent.Kind())
	*round = component.Round{Status: component.StatusRunning, PickupsLeft: pickups}
	return nil
}

func (sp *Spawner) spawnPlayer(w *ecs.World) (ecs.Entity, error) {
	for _, ent := range sp.Level.Entities {
		if strings.ToLower(ent.Type) == levels.EntityPlayer {
			return NewPlayerAt(w, sp.Grid.CellCenter(ent.Cell()))
		}
	}
	floor := sp.Grid.FloorCells()
	cell := floor[sp.Rand.Intn(len(floor))]
	return NewPlayerAt(w, sp.Grid.CellCenter(cell))
}

// ClearRound destroys every entity except the Board and Round singletons.
func ClearRound(w *ecs.World) {
	for _, e := range ecs.Entities(w) {
		if ecs.Has(w, e, component.BoardComponent.Kind()) || ecs.Has(w, e, component.RoundComponent.Kind()) {
			continue
		}
		ecs.DestroyEntity(w, e)
	}
}
